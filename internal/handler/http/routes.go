package http

import (
	"github.com/MKhiriev/go-story-nook/internal/app"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withMetrics)
	router.Use(h.withSecurityHeaders)
	router.Use(h.withCORS)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	if h.limiters != nil {
		router.Use(h.withRateLimit(h.limiters.Global, app.MsgTooManyRequests))
	}

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			// password reset is limited per client on top of the global limit
			r.Group(func(r chi.Router) {
				if h.limiters != nil {
					r.Use(h.withRateLimit(h.limiters.Reset, app.MsgTooManyResetRequests))
				}
				r.Post("/forgot-password", h.forgotPassword)
				r.Post("/reset-password", h.resetPassword)
			})

			r.With(h.auth).Get("/me", h.me)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/libraries", func(r chi.Router) {
				r.Post("/", h.createLibrary)
				r.Get("/", h.listLibraries)

				r.Route("/{libraryID}", func(r chi.Router) {
					r.Patch("/", h.renameLibrary)
					r.Delete("/", h.deleteLibrary)

					r.Route("/books", func(r chi.Router) {
						r.Post("/", h.createBook)
						r.Get("/", h.listBooks)
						r.Patch("/{bookID}", h.updateBook)
						r.Delete("/{bookID}", h.deleteBook)
						r.Post("/{bookID}/cover", h.uploadCover)
					})
				})
			})

			r.Post("/billing/checkout-session", h.createCheckoutSession)
		})

		r.Post("/billing/webhook", h.billingWebhook)
		r.Get("/version/", h.getServerVersion)
	})

	if h.gatherer != nil {
		router.Handle("/metrics", metrics.Handler(h.gatherer))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
