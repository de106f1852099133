package dashboard

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
)

// RegisterRoutes registers the read API on mux
func (d *Dashboard) RegisterRoutes(mux *runtime.ServeMux) error {
	routes := []struct {
		path    string
		handler runtime.HandlerFunc
	}{
		{path: "/cpuRequest", handler: d.handleCPU},
		{path: "/memRequest", handler: d.handleMemory},
		{path: "/envRequest", handler: d.handleEnvironment},
		{path: "/cpuAverages", handler: d.handleCPUAverage},
		{path: "/httpRequest", handler: d.handleHTTP},
		{path: "/httpURLs", handler: d.handleURLs},
	}

	for _, r := range routes {
		if err := mux.HandlePath(http.MethodGet, r.path, r.handler); err != nil {
			return fmt.Errorf("mux.HandlePath %s: %w", r.path, err)
		}
	}

	return nil
}

func (d *Dashboard) handleCPU(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, "cpuRequest", d.ReadCPU())
}

func (d *Dashboard) handleMemory(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, "memRequest", d.ReadMemory())
}

func (d *Dashboard) handleEnvironment(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	writeJSON(w, "envRequest", d.ReadEnvironment(r.Context()))
}

func (d *Dashboard) handleCPUAverage(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	avg, ok := d.ReadCPUAverage()
	if !ok {
		writeJSON(w, "cpuAverages", []struct{}{})
		return
	}

	writeJSON(w, "cpuAverages", avg)
}

func (d *Dashboard) handleHTTP(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	line, ok := d.ReadHTTPAggregate()
	if !ok {
		writeJSON(w, "httpRequest", []struct{}{})
		return
	}

	writeJSON(w, "httpRequest", line)
}

func (d *Dashboard) handleURLs(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, "httpURLs", d.ReadURLAggregates())
}

func writeJSON(w http.ResponseWriter, endpoint string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ERROR] dashboard: failed to encode %s response: %s", endpoint, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		log.Printf("[ERROR] dashboard: failed to write %s response: %s", endpoint, err)
	}
}
