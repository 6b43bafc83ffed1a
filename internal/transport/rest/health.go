package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger is anything a health probe can check.
type pinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 3 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      pinger
	cache   pinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// WithCache adds the view cache to /health. The cache is optional for the
// service, so its failure degrades the report without failing readiness.
func (h *HealthHandler) WithCache(cache pinger) *HealthHandler {
	h.cache = cache
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
// Overall status is "down" when the database is down and "degraded" when
// only the cache is.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	db := probe(ctx, h.db)
	components["database"] = db
	if db.Status != "ok" {
		overallStatus = "down"
	}

	if h.cache != nil {
		cache := probe(ctx, h.cache)
		components["cache"] = cache
		if cache.Status != "ok" && overallStatus == "ok" {
			overallStatus = "degraded"
		}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
