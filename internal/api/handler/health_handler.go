package handler

import (
	"bank-api/internal/api/handler/dto"
	"net/http"
)

// Health handles GET /health
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is up"
// @Router /health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.HealthStatusOK})
}
