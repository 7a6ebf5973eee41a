package app

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// healthHandler answers liveness probes and logs each hit.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// opsMux builds the handler serving /health and /metrics.
func (a *App) opsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(a.metrics.registry, promhttp.HandlerOpts{}))
	return mux
}

// startOpsServer initializes and runs the health check and metrics HTTP
// server in the background.
func (a *App) startOpsServer(port int) {
	a.logger.Debug("Configuring ops server.")
	mux := a.opsMux()

	addr := fmt.Sprintf(":%d", port)

	go func() {
		a.logger.Info("🩺 Ops server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			a.logger.Error("Ops server failed", "error", err)
		}
	}()
}
