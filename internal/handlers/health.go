package handlers

import (
	"net/http"

	"creativista-api/internal/models"
)

// HandleHealth responds to health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "Server is running",
	})
}
