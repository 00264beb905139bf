package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "creativista-api/internal/errors"
	"creativista-api/internal/models"
	"creativista-api/internal/schema"
)

// HandleAdminCheck reports whether the given email belongs to an
// admin. It never errors to the client: an absent email parameter or
// a storage failure both answer {isAdmin: false}.
func (h *Handler) HandleAdminCheck(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondJSON(w, r, http.StatusOK, models.AdminCheckResponse{IsAdmin: false})
		return
	}

	admin, err := h.store.GetAdminByEmail(r.Context(), email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Error().Err(err).Msg("error checking admin status")
		}
		respondJSON(w, r, http.StatusOK, models.AdminCheckResponse{IsAdmin: false})
		return
	}

	respondJSON(w, r, http.StatusOK, models.AdminCheckResponse{IsAdmin: admin != nil})
}

// HandleAdminCreate registers a new admin after confirming the email
// is unused. Duplicate emails answer 409.
func (h *Handler) HandleAdminCreate(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertAdmin
	if err := decodeBody(r, &insert); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}
	if err := schema.Validate(insert); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	if _, err := h.store.GetAdminByEmail(r.Context(), insert.Email); err == nil {
		respondError(w, r, http.StatusConflict, "Admin already exists", "")
		return
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		log.Error().Err(err).Msg("error checking existing admin")
		respondError(w, r, http.StatusInternalServerError, "Failed to create admin", err.Error())
		return
	}

	admin, err := h.store.CreateAdmin(r.Context(), insert)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(w, r, http.StatusConflict, "Admin already exists", "")
			return
		}
		log.Error().Err(err).Msg("error creating admin")
		respondError(w, r, http.StatusInternalServerError, "Failed to create admin", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, admin)
}
