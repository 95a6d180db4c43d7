// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with all routes and middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.contactPage)
		r.Get("/contact", h.contactPage)
	})

	// service endpoints
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.health)
	router.Method("GET", "/metrics", h.metrics.Handler())

	// session API
	router.Route("/api/auth", func(r chi.Router) {
		r.Use(h.withOperatorAuth)
		r.Post("/signup", h.signUp)
		r.Post("/login", h.login)
		r.Get("/session", h.session)
		r.Post("/refresh", h.refresh)
		r.Post("/logout", h.logout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
