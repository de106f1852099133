package binding

import (
	"encoding/json"
	"fmt"
	"os"

	pkgerrors "github.com/r-heap47/scaling-agent/internal/pkg/errors"
)

const (
	// ServiceLabel - label of the auto-scaling service in VCAP_SERVICES
	ServiceLabel = "Auto-Scaling"

	envServices    = "VCAP_SERVICES"
	envApplication = "VCAP_APPLICATION"
)

// Binding - where the auto-scaling service is and who the app is
type Binding struct {
	Host      string
	ServiceID string
	AppID     string
	Username  string
	Password  string

	AppName       string
	InstanceIndex int
	InstanceID    string
}

// Complete reports whether the service part of the binding is usable
func (b Binding) Complete() bool {
	return b.Host != "" && b.ServiceID != "" && b.AppID != ""
}

// Config - discovery config
type Config struct {
	// Lookup defaults to os.LookupEnv
	Lookup func(key string) (string, bool)
	// Static is used when the environment carries no binding
	Static Binding
}

type service struct {
	Label       string `json:"label"`
	Name        string `json:"name"`
	Credentials struct {
		URL           string `json:"url"`
		ServiceID     string `json:"service_id"`
		AppID         string `json:"app_id"`
		AgentUsername string `json:"agentUsername"`
		AgentPassword string `json:"agentPassword"`
	} `json:"credentials"`
}

type application struct {
	ApplicationName string `json:"application_name"`
	Name            string `json:"name"`
	InstanceIndex   int    `json:"instance_index"`
	InstanceID      string `json:"instance_id"`
}

// Discover finds the auto-scaling binding in the environment, then in the
// static config. Returns errors.ErrNotFound when neither has one.
func Discover(cfg Config) (Binding, error) {
	lookup := cfg.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	b, err := fromEnv(lookup)
	switch {
	case err == nil:
		return b, nil
	case cfg.Static.Complete():
		return cfg.Static, nil
	default:
		return Binding{}, err
	}
}

func fromEnv(lookup func(string) (string, bool)) (Binding, error) {
	rawServices, ok := lookup(envServices)
	if !ok || rawServices == "" {
		return Binding{}, fmt.Errorf("%s: %w", envServices, pkgerrors.ErrNotFound)
	}

	var services map[string][]service
	if err := json.Unmarshal([]byte(rawServices), &services); err != nil {
		return Binding{}, fmt.Errorf("json.Unmarshal %s: %w", envServices, err)
	}

	svc, ok := findService(services)
	if !ok {
		return Binding{}, fmt.Errorf("service %q: %w", ServiceLabel, pkgerrors.ErrNotFound)
	}

	b := Binding{
		Host:      svc.Credentials.URL,
		ServiceID: svc.Credentials.ServiceID,
		AppID:     svc.Credentials.AppID,
		Username:  svc.Credentials.AgentUsername,
		Password:  svc.Credentials.AgentPassword,
	}
	if !b.Complete() {
		return Binding{}, fmt.Errorf("service %q credentials: %w", ServiceLabel, pkgerrors.ErrNotFound)
	}

	rawApp, ok := lookup(envApplication)
	if !ok || rawApp == "" {
		return Binding{}, fmt.Errorf("%s: %w", envApplication, pkgerrors.ErrNotFound)
	}

	var app application
	if err := json.Unmarshal([]byte(rawApp), &app); err != nil {
		return Binding{}, fmt.Errorf("json.Unmarshal %s: %w", envApplication, err)
	}

	b.AppName = app.ApplicationName
	if b.AppName == "" {
		b.AppName = app.Name
	}
	b.InstanceIndex = app.InstanceIndex
	b.InstanceID = app.InstanceID

	return b, nil
}

func findService(services map[string][]service) (service, bool) {
	if list := services[ServiceLabel]; len(list) > 0 {
		return list[0], true
	}

	// user-provided services are keyed by type, look at the labels too
	for _, list := range services {
		for _, svc := range list {
			if svc.Label == ServiceLabel {
				return svc, true
			}
		}
	}

	return service{}, false
}
