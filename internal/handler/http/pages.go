// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/web"
)

const pageContact = "contact"

func (h *Handler) contactPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// render into a buffer so a failed render never leaves half a page
	var buf bytes.Buffer
	if err := web.ContactDocument().Render(r.Context(), &buf); err != nil {
		log.Err(err).Msg("error rendering contact page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.metrics.ObservePageRender(pageContact)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
