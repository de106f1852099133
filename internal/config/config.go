package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration to support YAML unmarshalling from strings like "5s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}

	d.Duration = parsed

	return nil
}

// Config is the top-level application configuration.
type Config struct {
	Agent     AgentConfig     `yaml:"agent"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Sampler   SamplerConfig   `yaml:"sampler"`
	Health    HealthConfig    `yaml:"health"`
	Binding   BindingConfig   `yaml:"binding"`

	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// AgentConfig holds the auto-scaling agent settings.
type AgentConfig struct {
	// Metrics - initially enabled metric kinds, the remote config overrides them
	Metrics               []string `yaml:"metrics"`
	ReportInterval        Duration `yaml:"report_interval"`
	ConfigRefreshInterval Duration `yaml:"config_refresh_interval"`
	// MinReportInterval - floor applied when the remote report interval is lower, e.g. 0
	MinReportInterval Duration `yaml:"min_report_interval"`
	RequestTimeout    Duration `yaml:"request_timeout"`
	Debug             bool     `yaml:"debug"`
}

// DashboardConfig holds the dashboard read API settings.
type DashboardConfig struct {
	Enabled bool     `yaml:"enabled"`
	Host    string   `yaml:"host"`
	Port    string   `yaml:"port"`
	Window  Duration `yaml:"window"`
}

// SamplerConfig holds the host instrumentation settings.
type SamplerConfig struct {
	Enabled         bool     `yaml:"enabled"`
	Interval        Duration `yaml:"interval"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	LatencyInterval Duration `yaml:"latency_interval"`
}

// HealthConfig holds the gRPC health server host and port.
type HealthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
}

// BindingConfig is used when VCAP_SERVICES carries no auto-scaling service.
type BindingConfig struct {
	URL           string `yaml:"url"`
	ServiceID     string `yaml:"service_id"`
	AppID         string `yaml:"app_id"`
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	AppName       string `yaml:"app_name"`
	InstanceIndex int    `yaml:"instance_index"`
	InstanceID    string `yaml:"instance_id"`
}

// Default returns the configuration used for keys missing from the file.
func Default() Config {
	return Config{
		Agent: AgentConfig{
			Metrics:               []string{"CPU", "Memory", "Throughput", "ResponseTime", "DispatchQueueLatency"},
			ReportInterval:        Duration{30 * time.Second},
			ConfigRefreshInterval: Duration{60 * time.Second},
			MinReportInterval:     Duration{time.Second},
			RequestTimeout:        Duration{10 * time.Second},
		},
		Dashboard: DashboardConfig{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    "8080",
			Window:  Duration{1800 * time.Second},
		},
		Sampler: SamplerConfig{
			Enabled:         true,
			Interval:        Duration{5 * time.Second},
			ReadTimeout:     Duration{2 * time.Second},
			LatencyInterval: Duration{5 * time.Second},
		},
		Health: HealthConfig{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    "8081",
		},
		ShutdownTimeout: Duration{5 * time.Second},
	}
}

// Load reads and parses the YAML config file at the given path on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return &cfg, nil
}
