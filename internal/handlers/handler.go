package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"creativista-api/internal/gemini"
	"creativista-api/internal/models"
	"creativista-api/internal/storage"
)

// Handler carries the process-wide dependencies for all routes. The
// storage backend and AI client are constructed once at startup and
// never mutated afterwards; ai is nil when no Gemini key is
// configured, in which case the AI endpoints answer 503.
type Handler struct {
	store storage.Storage
	ai    gemini.Service
}

func New(store storage.Storage, ai gemini.Service) *Handler {
	return &Handler{
		store: store,
		ai:    ai,
	}
}

// decodeBody parses the JSON request body into v. An empty body is
// not an error here; handlers validate required fields themselves so
// the client gets a field-specific message.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message, details string) {
	respondJSON(w, r, status, models.ErrorResponse{Error: message, Details: details})
}

// requireAI answers 503 and returns false when no Gemini client is
// configured. Checked before any downstream call is attempted.
func (h *Handler) requireAI(w http.ResponseWriter, r *http.Request) bool {
	if h.ai == nil {
		respondError(w, r, http.StatusServiceUnavailable, "AI service unavailable", "Google API key not configured")
		return false
	}
	return true
}
