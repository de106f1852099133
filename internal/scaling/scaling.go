package scaling

import "context"

// AppType - application type the agent reports as
const AppType = "swift"

// Client talks to the remote auto-scaling service.
type Client interface {
	// NotifyStatus announces the agent to the service. Called once at startup.
	NotifyStatus(ctx context.Context) error
	// SendReport pushes a single metrics report.
	SendReport(ctx context.Context, report Report) error
	// FetchConfig returns the raw agent configuration document.
	FetchConfig(ctx context.Context) ([]byte, error)
}

// Report - metrics report envelope
type Report struct {
	AppID         string         `json:"appId"`
	AppName       string         `json:"appName"`
	AppType       string         `json:"appType"`
	ServiceID     string         `json:"serviceId"`
	InstanceIndex int            `json:"instanceIndex"`
	InstanceID    string         `json:"instanceId"`
	Timestamp     int64          `json:"timestamp"`
	Metrics       []ReportMetric `json:"metrics"`
}

// ReportMetric - single metric record of a report
type ReportMetric struct {
	Category  string  `json:"category"`
	Group     string  `json:"group"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Desc      string  `json:"desc"`
	Timestamp int64   `json:"timestamp"`
}
