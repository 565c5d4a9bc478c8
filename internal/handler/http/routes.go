package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/challenge", h.challenge)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Put("/api/blobs", h.putBlob)
		r.Get("/api/blobs/{locator}", h.getBlob)

		r.Get("/api/anchors/{owner}", h.getAnchor)
		r.Get("/api/anchors/{owner}/history", h.getAnchorHistory)
		r.Post("/api/anchors", h.postAnchor)
	})

	return router
}
