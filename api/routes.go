package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes sets up all routes with authentication
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Portfolio document endpoints
		r.Get("/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Put("/portfolio", handlers.portfolioHandler.savePortfolio())
		r.Put("/portfolio/draft", handlers.portfolioHandler.saveDraft())
		r.Get("/portfolio/autosave-status", handlers.portfolioHandler.autosaveStatus())
		r.Post("/portfolio/publish", handlers.portfolioHandler.publish())
		r.Post("/portfolio/unpublish", handlers.portfolioHandler.unpublish())
		r.Get("/portfolio/export", handlers.portfolioHandler.export())

		// Preview endpoints
		r.Post("/portfolio/preview", handlers.previewHandler.render())
		r.Post("/preview/stash", handlers.previewHandler.stash())
		r.Get("/preview/stash/{token}", handlers.previewHandler.claim())

		// Template customization endpoints
		r.Get("/templates/{templateID}/customizations", handlers.previewHandler.getCustomizations())
		r.Put("/templates/{templateID}/customizations", handlers.previewHandler.putCustomizations())

		// Wizard endpoints
		r.Post("/wizard/transition", handlers.wizardHandler.transition())
	})

	// Unauthenticated routes
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(`{"status":"ok"}`))
	})
}
