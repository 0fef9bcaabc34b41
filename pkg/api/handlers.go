package api

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: a.Uptime(),
	})
}

// handleStatus handles GET /status.
func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	version := a.version
	if version == "" {
		version = "dev"
	}
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:     "running",
		Port:       a.port,
		Uptime:     a.Uptime(),
		ComicCount: a.store.Count(),
		Version:    version,
	})
}
