package agent

import (
	"github.com/r-heap47/scaling-agent/internal/aggregator"
	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/scaling"
)

// Identity - who the agent reports as
type Identity struct {
	AppID         string
	AppName       string
	ServiceID     string
	InstanceIndex int
	InstanceID    string
}

type descriptor struct {
	group string
	name  string
	unit  string
	value func(aggregator.AverageMetrics) float64
}

func describe(kind metric.Kind) (descriptor, bool) {
	switch kind {
	case metric.KindCPU:
		return descriptor{
			group: "ProcessCpuLoad",
			name:  "ProcessCpuLoad",
			unit:  "%",
			value: func(m aggregator.AverageMetrics) float64 { return m.CPU * 100 },
		}, true
	case metric.KindMemory:
		return descriptor{
			group: "memory",
			name:  "memory",
			unit:  "Bytes",
			value: func(m aggregator.AverageMetrics) float64 { return m.Memory },
		}, true
	case metric.KindThroughput:
		return descriptor{
			group: "Web",
			name:  "throughput",
			unit:  "",
			value: func(m aggregator.AverageMetrics) float64 { return m.Throughput },
		}, true
	case metric.KindResponseTime:
		return descriptor{
			group: "Web",
			name:  "responseTime",
			unit:  "ms",
			value: func(m aggregator.AverageMetrics) float64 { return m.ResponseTime },
		}, true
	case metric.KindDispatchQueueLatency:
		return descriptor{
			group: "Web",
			name:  "dispatchQueueLatency",
			unit:  "ms",
			value: func(m aggregator.AverageMetrics) float64 { return m.DispatchQueueLatency },
		}, true
	}

	return descriptor{}, false
}

// BuildReport builds a report with one record per kind, in kinds order.
// Every record shares the envelope timestamp (ms).
func BuildReport(id Identity, kinds []metric.Kind, avg aggregator.AverageMetrics, timestamp int64) scaling.Report {
	records := make([]scaling.ReportMetric, 0, len(kinds))

	for _, kind := range kinds {
		d, ok := describe(kind)
		if !ok {
			continue
		}

		records = append(records, scaling.ReportMetric{
			Category:  scaling.AppType,
			Group:     d.group,
			Name:      d.name,
			Value:     d.value(avg),
			Unit:      d.unit,
			Timestamp: timestamp,
		})
	}

	return scaling.Report{
		AppID:         id.AppID,
		AppName:       id.AppName,
		AppType:       scaling.AppType,
		ServiceID:     id.ServiceID,
		InstanceIndex: id.InstanceIndex,
		InstanceID:    id.InstanceID,
		Timestamp:     timestamp,
		Metrics:       records,
	}
}
