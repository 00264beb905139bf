package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"creativista-api/internal/models"
	"creativista-api/internal/schema"
)

// HandleCommunityImagesList returns every gallery image, newest first.
// No pagination: the gallery is small and the client filters by art
// style locally.
func (h *Handler) HandleCommunityImagesList(w http.ResponseWriter, r *http.Request) {
	images, err := h.store.GetAllCommunityImages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("error fetching community images")
		respondError(w, r, http.StatusInternalServerError, "Failed to fetch community images", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, images)
}

// HandleCommunityImageCreate adds a curated image to the gallery.
func (h *Handler) HandleCommunityImageCreate(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertCommunityImage
	if err := decodeBody(r, &insert); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}
	if err := schema.Validate(insert); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	image, err := h.store.CreateCommunityImage(r.Context(), insert)
	if err != nil {
		log.Error().Err(err).Msg("error creating community image")
		respondError(w, r, http.StatusInternalServerError, "Failed to create community image", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, image)
}

// HandleCommunityImageDelete removes a gallery image by id. Deleting
// an id that no longer exists still reports success.
func (h *Handler) HandleCommunityImageDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, r, http.StatusBadRequest, "Image ID is required", "")
		return
	}

	if err := h.store.DeleteCommunityImage(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("error deleting community image")
		respondError(w, r, http.StatusInternalServerError, "Failed to delete community image", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.DeleteResponse{Success: true})
}
