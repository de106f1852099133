package agent

import (
	"testing"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want configUpdate
	}{
		{
			name: "full config",
			body: `{"metricsConfig":{"agent":["Memory","CPU"]},"reportInterval":15}`,
			want: configUpdate{
				enabled:        true,
				kinds:          []metric.Kind{metric.KindMemory, metric.KindCPU},
				reportInterval: 15 * time.Second,
			},
		},
		{
			name: "missing agent",
			body: `{"metricsConfig":{}}`,
			want: configUpdate{},
		},
		{
			name: "null agent",
			body: `{"metricsConfig":{"agent":null},"reportInterval":10}`,
			want: configUpdate{},
		},
		{
			name: "missing metricsConfig",
			body: `{"reportInterval":10}`,
			want: configUpdate{},
		},
		{
			name: "metricsConfig of wrong type",
			body: `{"metricsConfig":5}`,
			want: configUpdate{},
		},
		{
			name: "not json",
			body: `<html>502 Bad Gateway</html>`,
			want: configUpdate{},
		},
		{
			name: "empty body",
			body: ``,
			want: configUpdate{},
		},
		{
			name: "missing interval",
			body: `{"metricsConfig":{"agent":["CPU"]}}`,
			want: configUpdate{
				enabled: true,
				kinds:   []metric.Kind{metric.KindCPU},
			},
		},
		{
			name: "non-numeric interval",
			body: `{"metricsConfig":{"agent":["CPU"]},"reportInterval":"soon"}`,
			want: configUpdate{
				enabled: true,
				kinds:   []metric.Kind{metric.KindCPU},
			},
		},
		{
			name: "numeric string interval",
			body: `{"metricsConfig":{"agent":["CPU"]},"reportInterval":"20"}`,
			want: configUpdate{
				enabled:        true,
				kinds:          []metric.Kind{metric.KindCPU},
				reportInterval: 20 * time.Second,
			},
		},
		{
			name: "fractional interval truncated",
			body: `{"metricsConfig":{"agent":["CPU"]},"reportInterval":7.9}`,
			want: configUpdate{
				enabled:        true,
				kinds:          []metric.Kind{metric.KindCPU},
				reportInterval: 7 * time.Second,
			},
		},
		{
			name: "unknown and duplicate kinds dropped",
			body: `{"metricsConfig":{"agent":["CPU","Heap",3,"CPU","Throughput"]},"reportInterval":5}`,
			want: configUpdate{
				enabled:        true,
				kinds:          []metric.Kind{metric.KindCPU, metric.KindThroughput},
				reportInterval: 5 * time.Second,
			},
		},
		{
			name: "agent not an array",
			body: `{"metricsConfig":{"agent":"CPU"},"reportInterval":5}`,
			want: configUpdate{
				enabled:        true,
				kinds:          []metric.Kind{},
				reportInterval: 5 * time.Second,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, parseConfig([]byte(tc.body)))
		})
	}
}

func TestApply_MissingAgentKeepsKinds(t *testing.T) {
	t.Parallel()

	a := newTestAgent(t, nil)
	a.state.Enable([]metric.Kind{metric.KindThroughput}, 9*time.Second)

	a.apply(t.Context(), parseConfig([]byte(`{"metricsConfig":{}}`)))

	assert.Equal(t, AgentConfig{
		Enabled:        false,
		Kinds:          []metric.Kind{metric.KindThroughput},
		ReportInterval: 9 * time.Second,
	}, a.state.Snapshot())
}

func TestApply_ReEnable(t *testing.T) {
	t.Parallel()

	a := newTestAgent(t, nil)
	a.state.Disable()

	a.apply(t.Context(), parseConfig([]byte(`{"metricsConfig":{"agent":["Memory"]},"reportInterval":0}`)))

	assert.Equal(t, AgentConfig{
		Enabled:        true,
		Kinds:          []metric.Kind{metric.KindMemory},
		ReportInterval: 0,
	}, a.state.Snapshot())
}
