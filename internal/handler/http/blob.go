// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/utils"
	"github.com/go-chi/chi/v5"
)

const defaultContentType = "application/octet-stream"

// serveBlob writes the bundle registered under {id} as a download. Range and
// HEAD requests are handled by http.ServeContent.
func (h *Handler) serveBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	a, ok := h.artifacts.Resolve(id)
	if !ok {
		log.Debug().Str("artifact_id", id).Msg("unknown object url requested")
		utils.WriteJSONError(w, MsgArtifactNotFound, http.StatusNotFound)
		return
	}

	contentType := a.Bundle.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Bundle.Name}))
	w.Header().Set("X-Artifact-Size", strconv.Itoa(a.Size()))

	http.ServeContent(w, r, a.Bundle.Name, time.Time{}, bytes.NewReader(a.Bundle.Data))
}

func (h *Handler) revokeBlob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if !h.artifacts.Revoke(id) {
		utils.WriteJSONError(w, MsgArtifactNotFound, http.StatusNotFound)
		return
	}

	logger.FromRequest(r).Info().Str("artifact_id", id).Msg("object url revoked")
	w.WriteHeader(http.StatusNoContent)
}
