package handler

import (
	"bank-api/internal/api/handler/dto"
	"bank-api/internal/domain/stats"
	"log/slog"
	"net/http"
)

type StatsHandler struct {
	service stats.StatsService
	logger  *slog.Logger
}

func NewStatsHandler(s stats.StatsService, l *slog.Logger) *StatsHandler {
	if s == nil {
		panic("stats service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &StatsHandler{service: s, logger: l.With("component", "StatsHandler")}
}

// GetDashboardStats handles GET /dashboard/stats
// @Summary Dashboard totals
// @Description Row counts of the customer, account, loan and transaction tables.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.StatsResponse "Totals"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (h *StatsHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetStats(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get stats", slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewStatsResponse(s))
}
