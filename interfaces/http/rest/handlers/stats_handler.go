package handlers

import (
	"net/http"

	"gogarvis-backend/application/services"
	"gogarvis-backend/pkg/common"

	"go.uber.org/zap"
)

// StatsHandler serves the dashboard statistics endpoint
type StatsHandler struct {
	stats  *services.StatsService
	logger *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *services.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

// GetDashboardStats handles GET /dashboard/stats
func (h *StatsHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.stats.Snapshot())
}
