// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("page"))
	})
	router.Post("/form", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := newMethodRouter()

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/page", http.StatusOK},
		{http.MethodPost, "/form", http.StatusCreated},
		{http.MethodPost, "/page", http.StatusNotFound},
		{http.MethodGet, "/form", http.StatusNotFound},
		{http.MethodPut, "/page", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_ForwardsRegisteredMethod(t *testing.T) {
	router := newMethodRouter()

	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "page", rec.Body.String())
}
