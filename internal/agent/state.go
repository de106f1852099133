package agent

import (
	"slices"
	"sync"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
)

// AgentConfig - agent configuration as last applied
type AgentConfig struct { // nolint: revive
	Enabled bool
	// Kinds - enabled metric kinds in reporting order
	Kinds          []metric.Kind
	ReportInterval time.Duration
}

// State guards the agent configuration shared by the reporter and the refresher
type State struct {
	mu  sync.RWMutex
	cfg AgentConfig
}

// NewState creates an enabled State
func NewState(kinds []metric.Kind, reportInterval time.Duration) *State {
	return &State{
		cfg: AgentConfig{
			Enabled:        true,
			Kinds:          slices.Clone(kinds),
			ReportInterval: reportInterval,
		},
	}
}

// Snapshot returns a copy of the current configuration
func (s *State) Snapshot() AgentConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := s.cfg
	cfg.Kinds = slices.Clone(s.cfg.Kinds)

	return cfg
}

// Disable turns reporting off, kinds and interval are kept
func (s *State) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Enabled = false
}

// Enable turns reporting on and replaces kinds and interval
func (s *State) Enable(kinds []metric.Kind, reportInterval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = AgentConfig{
		Enabled:        true,
		Kinds:          slices.Clone(kinds),
		ReportInterval: reportInterval,
	}
}
