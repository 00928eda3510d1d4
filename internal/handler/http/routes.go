// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// scraped often, kept out of the access log
	router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	router.Get("/healthz", h.healthz)

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)
		r.Get("/api/status", h.getStatus)
		r.Get("/api/version", h.getVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
