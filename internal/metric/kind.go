package metric

import "github.com/samber/lo"

// Kind - metric kind reported to the auto-scaling service
type Kind int

const (
	// KindCPU - process CPU load
	KindCPU Kind = iota
	// KindMemory - process memory usage
	KindMemory
	// KindThroughput - HTTP requests per second
	KindThroughput
	// KindResponseTime - HTTP response time
	KindResponseTime
	// KindDispatchQueueLatency - dispatch latency
	KindDispatchQueueLatency
)

var kindNames = map[Kind]string{
	KindCPU:                  "CPU",
	KindMemory:               "Memory",
	KindThroughput:           "Throughput",
	KindResponseTime:         "ResponseTime",
	KindDispatchQueueLatency: "DispatchQueueLatency",
}

// AllKinds returns every kind in the default reporting order
func AllKinds() []Kind {
	return []Kind{KindCPU, KindMemory, KindThroughput, KindResponseTime, KindDispatchQueueLatency}
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Unknown"
}

// ParseKind maps a wire name onto a Kind
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}

	return 0, false
}

// ParseKinds converts wire names into an ordered set of kinds.
// Unknown names and repeated kinds are dropped, first occurrence wins.
func ParseKinds(names []string) []Kind {
	kinds := lo.FilterMap(names, func(name string, _ int) (Kind, bool) {
		return ParseKind(name)
	})

	return lo.Uniq(kinds)
}
