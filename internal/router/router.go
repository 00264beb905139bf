package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"creativista-api/internal/handlers"
	"creativista-api/internal/middleware"
)

// Setup configures and returns the HTTP router with all application
// routes. Mutating admin routes sit behind the optional API-key check;
// admin status lookup stays open because the client polls it before
// sign-in.
func Setup(h *handlers.Handler, adminAPIKeys []string) http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HandleHealth)

		r.Post("/enhance-prompt", h.HandleEnhancePrompt)
		r.Post("/generate-prompt", h.HandleGeneratePrompt)
		r.Post("/support-chat", h.HandleSupportChat)
		r.Post("/text-to-image", h.HandleTextToImage)
		r.Post("/image-to-image", h.HandleImageToImage)
		r.Post("/sketch-to-image", h.HandleSketchToImage)

		r.Get("/admin/check", h.HandleAdminCheck)
		r.Get("/community-images", h.HandleCommunityImagesList)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminKeyAuth(adminAPIKeys))
			r.Post("/admin/create", h.HandleAdminCreate)
			r.Post("/admin/community-images", h.HandleCommunityImageCreate)
			r.Delete("/admin/community-images/{id}", h.HandleCommunityImageDelete)
		})
	})

	return r
}
