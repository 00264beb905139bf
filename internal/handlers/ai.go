package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"creativista-api/internal/models"
)

// HandleEnhancePrompt rewrites a basic image prompt into a detailed one.
func (h *Handler) HandleEnhancePrompt(w http.ResponseWriter, r *http.Request) {
	var req models.EnhancePromptRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Prompt == "" {
		respondError(w, r, http.StatusBadRequest, "Prompt is required and must be a string", "")
		return
	}
	if !h.requireAI(w, r) {
		return
	}

	enhanced, err := h.ai.EnhancePrompt(r.Context(), req.Prompt)
	if err != nil {
		log.Error().Err(err).Msg("error enhancing prompt")
		respondError(w, r, http.StatusInternalServerError, "Failed to enhance prompt", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.EnhancePromptResponse{EnhancedPrompt: enhanced})
}

// HandleGeneratePrompt describes an uploaded image as a reusable prompt.
func (h *Handler) HandleGeneratePrompt(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePromptRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Image == "" {
		respondError(w, r, http.StatusBadRequest, "Image data is required", "")
		return
	}
	if !h.requireAI(w, r) {
		return
	}

	prompt, err := h.ai.DescribeImage(r.Context(), req.Image)
	if err != nil {
		log.Error().Err(err).Msg("error generating prompt from image")
		respondError(w, r, http.StatusInternalServerError, "Failed to generate prompt", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.GeneratePromptResponse{Prompt: prompt})
}

// HandleSupportChat runs one conversational support turn.
func (h *Handler) HandleSupportChat(w http.ResponseWriter, r *http.Request) {
	var req models.SupportChatRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Message == "" {
		respondError(w, r, http.StatusBadRequest, "Message is required", "")
		return
	}
	if !h.requireAI(w, r) {
		return
	}

	reply, err := h.ai.SupportChat(r.Context(), req.Message, req.History)
	if err != nil {
		log.Error().Err(err).Msg("error in support chat")
		respondError(w, r, http.StatusInternalServerError, "Failed to process support chat", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.SupportChatResponse{Response: reply})
}

// HandleTextToImage generates an image from a text prompt.
func (h *Handler) HandleTextToImage(w http.ResponseWriter, r *http.Request) {
	var req models.TextToImageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Prompt == "" {
		respondError(w, r, http.StatusBadRequest, "Missing required field", "prompt is required")
		return
	}
	if !h.requireAI(w, r) {
		return
	}

	result, err := h.ai.GenerateTextToImage(r.Context(), req.Prompt)
	if err != nil {
		log.Error().Err(err).Msg("error in text-to-image generation")
		respondError(w, r, http.StatusInternalServerError, "Failed to generate text-to-image", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.GeneratedImageResponse{
		Success:        true,
		GeneratedImage: "data:image/png;base64," + result.ImageData,
		Description:    result.Description,
	})
}

// HandleImageToImage transforms uploaded images with a transform prompt.
func (h *Handler) HandleImageToImage(w http.ResponseWriter, r *http.Request) {
	var req models.ImageToImageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.TransformPrompt == "" || len(req.Images) == 0 {
		respondError(w, r, http.StatusBadRequest, "Missing required fields", "Both transformPrompt and images array are required")
		return
	}
	if !h.requireAI(w, r) {
		return
	}

	result, err := h.ai.GenerateImageToImage(r.Context(), req.Images, req.TransformPrompt)
	if err != nil {
		log.Error().Err(err).Msg("error in image-to-image generation")
		respondError(w, r, http.StatusInternalServerError, "Failed to generate image-to-image", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.GeneratedImageResponse{
		Success:        true,
		GeneratedImage: "data:image/png;base64," + result.ImageData,
		Description:    result.Description,
	})
}

// HandleSketchToImage converts a hand-drawn sketch into a photograph,
// optionally steered by an extra prompt. Internally this is an
// image-to-image transformation with a sketch-specific prompt.
func (h *Handler) HandleSketchToImage(w http.ResponseWriter, r *http.Request) {
	var req models.SketchToImageRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.SketchData == "" {
		respondError(w, r, http.StatusBadRequest, "Missing required fields", "sketchData is required")
		return
	}
	if !h.requireAI(w, r) {
		return
	}

	images := []models.InputImage{{Data: req.SketchData, Type: "image/png"}}

	transformPrompt := "This is a hand-drawn sketch. Convert it into a realistic, high-quality photograph with natural colors, proper lighting, and photorealistic details. Maintain the composition and structure from the sketch."
	if extra := strings.TrimSpace(req.Prompt); extra != "" {
		transformPrompt = "This is a hand-drawn sketch. Convert it into a realistic, high-quality photograph based on this sketch. " + extra + ". Maintain the composition and structure from the sketch while making it photorealistic."
	}

	result, err := h.ai.GenerateImageToImage(r.Context(), images, transformPrompt)
	if err != nil {
		log.Error().Err(err).Msg("error in sketch-to-image generation")
		respondError(w, r, http.StatusInternalServerError, "Failed to generate sketch-to-image", err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, models.SketchToImageResponse{
		Success:     true,
		ImageData:   result.ImageData,
		Description: result.Description,
	})
}
