// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cp-generator/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/blob", func(r chi.Router) {
		r.Get("/{id}", h.serveBlob)
		r.Head("/{id}", h.serveBlob)
		r.Delete("/{id}", h.revokeBlob)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, MsgRouteNotFound, http.StatusNotFound)
	})

	return router
}
