package handler

import (
	"net/http"

	"github.com/arcadelab/wavearena-go/internal/api/response"
	"github.com/arcadelab/wavearena-go/internal/dependencies/clock"
)

// HealthHandler handles the health check endpoint
type HealthHandler struct {
	clock clock.Clock
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(clk clock.Clock) *HealthHandler {
	return &HealthHandler{clock: clk}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{
		Status: "ok",
		Time:   h.clock.Now().UTC(),
	})
}
