package source

import (
	"net/http"
	"time"

	"github.com/r-heap47/scaling-agent/internal/metric"
)

// HTTPPublisher - sink for HTTP completion events, implemented by Hub
type HTTPPublisher interface {
	PublishHTTP(metric.HTTP)
}

// Middleware times every request served by next and publishes an HTTP
// completion event once the handler returns.
func Middleware(pub HTTPPublisher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			pub.PublishHTTP(metric.HTTP{
				URL:      r.URL.Path,
				Duration: float64(time.Since(start)) / float64(time.Millisecond),
				Time:     start.UnixMilli(),
			})
		})
	}
}
