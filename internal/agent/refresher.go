package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
)

// remoteConfig - agent config document served by the auto-scaling service
type remoteConfig struct {
	MetricsConfig struct {
		Agent json.RawMessage `json:"agent"`
	} `json:"metricsConfig"`
	ReportInterval json.RawMessage `json:"reportInterval"`
}

// configUpdate - outcome of parsing a config document
type configUpdate struct {
	enabled        bool
	kinds          []metric.Kind
	reportInterval time.Duration
}

// parseConfig never fails: anything without metricsConfig.agent disables the agent
func parseConfig(body []byte) configUpdate {
	var doc remoteConfig
	if err := json.Unmarshal(body, &doc); err != nil {
		return configUpdate{}
	}

	if isNull(doc.MetricsConfig.Agent) {
		return configUpdate{}
	}

	return configUpdate{
		enabled:        true,
		kinds:          metric.ParseKinds(stringValues(doc.MetricsConfig.Agent)),
		reportInterval: time.Duration(intValue(doc.ReportInterval)) * time.Second,
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// stringValues returns the string elements of a JSON array, anything else yields none
func stringValues(raw json.RawMessage) []string {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	names := make([]string, 0, len(elems))
	for _, elem := range elems {
		var name string
		if err := json.Unmarshal(elem, &name); err == nil {
			names = append(names, name)
		}
	}

	return names
}

// intValue reads a JSON number, numeric string or bool as an integer, anything else is 0
func intValue(raw json.RawMessage) int64 {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}

	return int64(f)
}

// refresh fetches the remote config and applies it
func (a *Agent) refresh(ctx context.Context) {
	body, err := a.client.FetchConfig(ctx)
	if err != nil {
		log.Printf("[ERROR] refresher: failed to fetch config: %s", err)
		return
	}

	a.debugf(ctx, "refresher: received config %s", body)
	a.apply(ctx, parseConfig(body))
}

func (a *Agent) apply(ctx context.Context, update configUpdate) {
	wasEnabled := a.state.Snapshot().Enabled

	if update.enabled {
		a.state.Enable(update.kinds, update.reportInterval)
	} else {
		a.state.Disable()
	}

	switch {
	case wasEnabled && !update.enabled:
		log.Printf("[INFO] refresher: agent disabled by the auto-scaling service")
	case !wasEnabled && update.enabled:
		log.Printf("[INFO] refresher: agent enabled by the auto-scaling service")
	}

	cfg := a.state.Snapshot()
	a.debugf(ctx, "refresher: enabled=%t metrics=%v report interval=%s", cfg.Enabled, cfg.Kinds, cfg.ReportInterval)

	if a.listener != nil {
		a.listener.SetEnabled(cfg.Enabled)
	}
}
