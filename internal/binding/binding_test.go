package binding

import (
	"testing"

	pkgerrors "github.com/r-heap47/scaling-agent/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testServices = `{
		"Auto-Scaling": [{
			"label": "Auto-Scaling",
			"name": "scaler",
			"credentials": {
				"url": "https://scaling.example.com",
				"service_id": "svc-1",
				"app_id": "app-1",
				"agentUsername": "agent",
				"agentPassword": "s3cret"
			}
		}],
		"cloudantNoSQLDB": [{"label": "cloudantNoSQLDB", "credentials": {}}]
	}`
	testApplication = `{"application_name":"orders","name":"orders-legacy","instance_index":2,"instance_id":"inst-9"}`
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

var wantBinding = Binding{
	Host:          "https://scaling.example.com",
	ServiceID:     "svc-1",
	AppID:         "app-1",
	Username:      "agent",
	Password:      "s3cret",
	AppName:       "orders",
	InstanceIndex: 2,
	InstanceID:    "inst-9",
}

func TestDiscover_Env(t *testing.T) {
	t.Parallel()

	b, err := Discover(Config{
		Lookup: envLookup(map[string]string{
			envServices:    testServices,
			envApplication: testApplication,
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, wantBinding, b)
}

func TestDiscover_LabelUnderOtherKey(t *testing.T) {
	t.Parallel()

	b, err := Discover(Config{
		Lookup: envLookup(map[string]string{
			envServices: `{"user-provided":[{"label":"Auto-Scaling","credentials":{
				"url":"http://localhost:9000","service_id":"s","app_id":"a"}}]}`,
			envApplication: `{"name":"fallback-name","instance_index":0,"instance_id":"i"}`,
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", b.Host)
	assert.Equal(t, "fallback-name", b.AppName)
}

func TestDiscover_OSEnv(t *testing.T) {
	t.Setenv(envServices, testServices)
	t.Setenv(envApplication, testApplication)

	b, err := Discover(Config{})
	require.NoError(t, err)
	assert.Equal(t, wantBinding, b)
}

func TestDiscover_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "no services",
			env:  map[string]string{},
		},
		{
			name: "no auto-scaling service",
			env: map[string]string{
				envServices:    `{"cloudantNoSQLDB":[{"label":"cloudantNoSQLDB"}]}`,
				envApplication: testApplication,
			},
		},
		{
			name: "incomplete credentials",
			env: map[string]string{
				envServices:    `{"Auto-Scaling":[{"label":"Auto-Scaling","credentials":{"url":"https://x"}}]}`,
				envApplication: testApplication,
			},
		},
		{
			name: "no application",
			env: map[string]string{
				envServices: testServices,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Discover(Config{Lookup: envLookup(tc.env)})
			assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
		})
	}
}

func TestDiscover_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Discover(Config{
		Lookup: envLookup(map[string]string{envServices: `{not json`}),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, pkgerrors.ErrNotFound)
}

func TestDiscover_StaticFallback(t *testing.T) {
	t.Parallel()

	static := Binding{
		Host:      "http://127.0.0.1:8081",
		ServiceID: "local-svc",
		AppID:     "local-app",
		AppName:   "dev",
	}

	b, err := Discover(Config{Lookup: envLookup(nil), Static: static})
	require.NoError(t, err)
	assert.Equal(t, static, b)

	// environment wins over static config
	b, err = Discover(Config{
		Lookup: envLookup(map[string]string{
			envServices:    testServices,
			envApplication: testApplication,
		}),
		Static: static,
	})
	require.NoError(t, err)
	assert.Equal(t, wantBinding, b)
}

func TestDiscover_IncompleteStatic(t *testing.T) {
	t.Parallel()

	_, err := Discover(Config{
		Lookup: envLookup(nil),
		Static: Binding{Host: "http://127.0.0.1:8081"},
	})
	assert.ErrorIs(t, err, pkgerrors.ErrNotFound)
}
