package scalingagent

import (
	"net/http"
	"time"
)

// Option configures the Monitor.
type Option func(*options)

type options struct {
	metrics           []string
	reportInterval    time.Duration
	refreshInterval   time.Duration
	minReportInterval time.Duration
	requestTimeout    time.Duration
	debug             bool

	window time.Duration

	sampler         bool
	sampleInterval  time.Duration
	readTimeout     time.Duration
	latencyInterval time.Duration

	static     Binding
	lookup     func(key string) (string, bool)
	listener   StatusListener
	httpClient *http.Client
}

func defaultOptions() *options {
	return &options{
		sampler:         true,
		sampleInterval:  5 * time.Second,
		readTimeout:     2 * time.Second,
		latencyInterval: 5 * time.Second,
	}
}

// WithMetrics sets the initially enabled metric kinds by name. Unknown names are ignored.
func WithMetrics(names ...string) Option {
	return func(o *options) {
		o.metrics = names
	}
}

// WithReportInterval sets the report interval used until the service sends one.
func WithReportInterval(d time.Duration) Option {
	return func(o *options) {
		o.reportInterval = d
	}
}

// WithRefreshInterval sets how often the agent config is fetched.
func WithRefreshInterval(d time.Duration) Option {
	return func(o *options) {
		o.refreshInterval = d
	}
}

// WithMinReportInterval sets the shortest sleep between two reports.
func WithMinReportInterval(d time.Duration) Option {
	return func(o *options) {
		o.minReportInterval = d
	}
}

// WithRequestTimeout bounds every call to the auto-scaling service.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) {
		o.requestTimeout = d
	}
}

// WithDebug enables [DEBUG] logs of the agent.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithWindow sets the age after which dashboard CPU and memory lines are evicted.
func WithWindow(d time.Duration) Option {
	return func(o *options) {
		o.window = d
	}
}

// WithSampler sets the resource sampling and dispatch latency intervals.
func WithSampler(interval, readTimeout, latencyInterval time.Duration) Option {
	return func(o *options) {
		o.sampler = true
		o.sampleInterval = interval
		o.readTimeout = readTimeout
		o.latencyInterval = latencyInterval
	}
}

// WithoutSampler disables CPU, memory and latency sampling. Only HTTP traffic is measured.
func WithoutSampler() Option {
	return func(o *options) {
		o.sampler = false
	}
}

// WithStaticBinding sets the binding used when VCAP_SERVICES has none.
func WithStaticBinding(b Binding) Option {
	return func(o *options) {
		o.static = b
	}
}

// WithEnvLookup replaces os.LookupEnv for binding discovery.
func WithEnvLookup(lookup func(key string) (string, bool)) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithStatusListener sets a listener told whether the agent is enabled.
func WithStatusListener(l StatusListener) Option {
	return func(o *options) {
		o.listener = l
	}
}

// WithHTTPClient sets the client used to call the auto-scaling service.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}
