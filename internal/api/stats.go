package api

import (
	"log/slog"
	"net/http"
)

type StatsHandler struct {
	store  StatsStore
	logger *slog.Logger
}

func NewStatsHandler(s StatsStore, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{store: s, logger: logger}
}

// Get returns catalog and newsletter counts.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetSiteStats(r.Context())
	if err != nil {
		h.logger.Error("failed to get site stats", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
