package agent

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/r-heap47/scaling-agent/internal/pkg/utils"
	"github.com/r-heap47/scaling-agent/internal/scaling"
	"github.com/r-heap47/scaling-agent/internal/source"
	"github.com/r-heap47/scaling-agent/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enabledConfig = `{"metricsConfig":{"agent":["CPU","ResponseTime"]},"reportInterval":0}`

// newTestAgent builds an agent with millisecond schedules
func newTestAgent(t *testing.T, client scaling.Client) *Agent {
	t.Helper()

	return New(t.Context(), Config{
		Client:            client,
		Identity:          Identity{AppID: "app-1", ServiceID: "svc-1"},
		ReportInterval:    time.Millisecond,
		RefreshInterval:   utils.Const(time.Millisecond),
		MinReportInterval: utils.Const(time.Millisecond),
	})
}

// waitDone blocks until done is closed or the deadline is exceeded.
func waitDone(t *testing.T, done <-chan struct{}, timeout time.Duration, msg string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal(msg)
	}
}

type listener struct {
	mu     sync.Mutex
	states []bool
}

func (l *listener) SetEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.states = append(l.states, enabled)
}

func (l *listener) last() (bool, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.states) == 0 {
		return false, false
	}
	return l.states[len(l.states)-1], true
}

// TestRun_StartupSequence verifies that status is announced and the config is
// fetched before the first report, and that reports carry aggregated samples.
func TestRun_StartupSequence(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	var (
		notified atomic.Bool
		fetched  atomic.Bool
	)

	reports := make(chan scaling.Report, 16)

	client := mocks.NewScalingClientMock(mc).
		NotifyStatusMock.Set(func(_ context.Context) error {
			notified.Store(true)
			return nil
		}).
		FetchConfigMock.Set(func(_ context.Context) ([]byte, error) {
			fetched.Store(true)
			return []byte(enabledConfig), nil
		}).
		SendReportMock.Set(func(_ context.Context, r scaling.Report) error {
			if !notified.Load() || !fetched.Load() {
				return errors.New("report before startup finished")
			}
			select {
			case reports <- r:
			default:
			}
			return nil
		})

	hub := source.NewHub()
	a := New(t.Context(), Config{
		Client:            client,
		Source:            hub,
		Identity:          Identity{AppID: "app-1", ServiceID: "svc-1"},
		ReportInterval:    time.Hour,
		RefreshInterval:   utils.Const(time.Hour),
		MinReportInterval: utils.Const(5 * time.Millisecond),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		_ = a.Run(ctx)
		close(done)
	}()

	// the remote config sets the interval to 0, so the floor applies
	assert.Eventually(t, func() bool { return fetched.Load() }, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool { return a.State().Snapshot().ReportInterval == 0 }, time.Second, time.Millisecond)

	hub.PublishCPU(metric.CPU{AppPercent: 0.3})
	hub.PublishHTTP(metric.HTTP{URL: "/a", Duration: 40})

	var got scaling.Report
	require.Eventually(t, func() bool {
		select {
		case r := <-reports:
			if len(r.Metrics) == 2 && r.Metrics[1].Value > 0 {
				got = r
				return true
			}
		default:
		}
		return false
	}, time.Second, time.Millisecond)

	cancel()
	waitDone(t, done, time.Second, "Run did not return after ctx cancel")

	assert.Equal(t, uint64(1), client.NotifyStatusAfterCounter())
	assert.Equal(t, "app-1", got.AppID)
	assert.Equal(t, "ProcessCpuLoad", got.Metrics[0].Name)
	assert.InDelta(t, 30, got.Metrics[0].Value, 1e-9)
	assert.Equal(t, "responseTime", got.Metrics[1].Name)
	assert.InDelta(t, 40, got.Metrics[1].Value, 1e-9)
}

// TestRun_DisabledSkipsReports verifies that a config without the agent
// metrics list disables reporting while both loops keep running.
func TestRun_DisabledSkipsReports(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	client := mocks.NewScalingClientMock(mc).
		NotifyStatusMock.Return(nil).
		FetchConfigMock.Return([]byte(`{"metricsConfig":{}}`), nil).
		SendReportMock.Optional().Return(nil)

	l := &listener{}
	a := New(t.Context(), Config{
		Client:            client,
		Listener:          l,
		ReportInterval:    time.Millisecond,
		RefreshInterval:   utils.Const(time.Millisecond),
		MinReportInterval: utils.Const(time.Millisecond),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		_ = a.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return client.FetchConfigAfterCounter() >= 3 }, time.Second, time.Millisecond)

	cancel()
	waitDone(t, done, time.Second, "Run did not return after ctx cancel")

	assert.Zero(t, client.SendReportAfterCounter())
	assert.False(t, a.State().Snapshot().Enabled)

	enabled, ok := l.last()
	require.True(t, ok)
	assert.False(t, enabled)
}

// TestRun_FailuresAreLogged verifies that failing remote calls never stop the loops
// and that a failed fetch leaves the config untouched.
func TestRun_FailuresAreLogged(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	client := mocks.NewScalingClientMock(mc).
		NotifyStatusMock.Return(errors.New("connection refused")).
		FetchConfigMock.Return(nil, errors.New("connection refused")).
		SendReportMock.Return(errors.New("connection refused"))

	a := New(t.Context(), Config{
		Client:            client,
		Metrics:           []metric.Kind{metric.KindMemory},
		ReportInterval:    time.Millisecond,
		RefreshInterval:   utils.Const(time.Millisecond),
		MinReportInterval: utils.Const(time.Millisecond),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		_ = a.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return client.SendReportAfterCounter() >= 3 && client.FetchConfigAfterCounter() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	waitDone(t, done, time.Second, "Run did not return after ctx cancel")

	assert.Equal(t, AgentConfig{
		Enabled:        true,
		Kinds:          []metric.Kind{metric.KindMemory},
		ReportInterval: time.Millisecond,
	}, a.State().Snapshot())
}

// TestRun_ReEnabled verifies that the agent resumes reporting once the
// service enables it again.
func TestRun_ReEnabled(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	var calls atomic.Int64
	client := mocks.NewScalingClientMock(mc).
		NotifyStatusMock.Return(nil).
		FetchConfigMock.Set(func(_ context.Context) ([]byte, error) {
			if calls.Add(1) <= 2 {
				return []byte(`null`), nil
			}
			return []byte(enabledConfig), nil
		}).
		SendReportMock.Return(nil)

	l := &listener{}
	a := New(t.Context(), Config{
		Client:            client,
		Listener:          l,
		ReportInterval:    time.Millisecond,
		RefreshInterval:   utils.Const(time.Millisecond),
		MinReportInterval: utils.Const(time.Millisecond),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		_ = a.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return client.SendReportAfterCounter() >= 1 }, time.Second, time.Millisecond)

	cancel()
	waitDone(t, done, time.Second, "Run did not return after ctx cancel")

	enabled, ok := l.last()
	require.True(t, ok)
	assert.True(t, enabled)
	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

// TestReport_DisabledKeepsAccumulating verifies that a disabled agent neither
// sends nor flushes, so samples recorded meanwhile land in the next report.
func TestReport_DisabledKeepsAccumulating(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	var sent []scaling.Report
	client := mocks.NewScalingClientMock(mc).
		SendReportMock.Set(func(_ context.Context, r scaling.Report) error {
			sent = append(sent, r)
			return nil
		})

	a := newTestAgent(t, client)
	a.state.Disable()

	a.aggregator.RecordHTTP(metric.HTTP{URL: "/a", Duration: 100})
	a.report(t.Context())
	a.aggregator.RecordHTTP(metric.HTTP{URL: "/a", Duration: 300})

	assert.Zero(t, client.SendReportAfterCounter())

	a.state.Enable([]metric.Kind{metric.KindResponseTime}, time.Millisecond)
	a.report(t.Context())

	require.Len(t, sent, 1)
	require.Len(t, sent[0].Metrics, 1)
	assert.Equal(t, "responseTime", sent[0].Metrics[0].Name)
	assert.InDelta(t, 200, sent[0].Metrics[0].Value, 1e-9)
}

func TestReportInterval_Floor(t *testing.T) {
	t.Parallel()

	a := newTestAgent(t, nil)
	a.minReportInterval = utils.Const(time.Second)

	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{name: "zero", interval: 0, want: time.Second},
		{name: "below floor", interval: 500 * time.Millisecond, want: time.Second},
		{name: "at floor", interval: time.Second, want: time.Second},
		{name: "above floor", interval: 45 * time.Second, want: 45 * time.Second},
	}

	for _, tc := range tests {
		a.state.Enable(nil, tc.interval)
		assert.Equal(t, tc.want, a.reportInterval(t.Context()), tc.name)
		assert.Equal(t, tc.interval, a.state.Snapshot().ReportInterval, "stored interval must not change")
	}
}

func TestReportInterval_NonPositiveFloor(t *testing.T) {
	t.Parallel()

	a := newTestAgent(t, nil)
	a.minReportInterval = utils.Const(time.Duration(0))
	a.state.Enable(nil, 0)

	assert.Equal(t, defaultMinReportInterval, a.reportInterval(t.Context()))
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	a := New(t.Context(), Config{})

	assert.Equal(t, AgentConfig{
		Enabled:        true,
		Kinds:          metric.AllKinds(),
		ReportInterval: DefaultReportInterval,
	}, a.State().Snapshot())
	assert.Equal(t, DefaultRefreshInterval, a.refreshInterval(t.Context()))
}
