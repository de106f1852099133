package health

import (
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName - name the agent status is published under
const ServiceName = "scaling-agent"

// Notifier publishes the agent status over the gRPC health protocol.
// The overall server status ("") is always SERVING, ServiceName follows the agent.
type Notifier struct {
	srv *health.Server
}

// New creates a Notifier reporting the agent as enabled
func New() *Notifier {
	srv := health.NewServer()
	srv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Notifier{srv: srv}
}

// Register registers the health service on s
func (n *Notifier) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, n.srv)
}

// SetEnabled implements agent.StatusListener
func (n *Notifier) SetEnabled(enabled bool) {
	status := healthpb.HealthCheckResponse_SERVING
	if !enabled {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	n.srv.SetServingStatus(ServiceName, status)
}

// Disabled marks the agent as not running at all, e.g. when no binding was found
func (n *Notifier) Disabled() {
	n.srv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	log.Printf("[INFO] health: %s reported as NOT_SERVING", ServiceName)
}

// Shutdown sets every service NOT_SERVING and ignores further updates
func (n *Notifier) Shutdown() {
	n.srv.Shutdown()
}
