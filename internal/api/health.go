package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// HealthHandler reports healthy only while the database answers a ping.
func HealthHandler(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{
			Status:   "healthy",
			Version:  "1.0.0",
			Database: "up",
		}
		status := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			logger.Warn("health check: database ping failed", "error", err)
			resp.Status = "unhealthy"
			resp.Database = "down"
			status = http.StatusServiceUnavailable
		}

		respondJSON(w, status, resp)
	}
}
