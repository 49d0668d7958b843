package quiz

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers quiz routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/ai", h.Generate)
	r.Get("/health", h.Health)
}
