// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/homecare-jobs/internal/adapter"
	"github.com/MKhiriev/homecare-jobs/internal/client"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/store"
)

// errorStatuses is matched in order; the first target in the error chain
// wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidCredentials, http.StatusBadRequest},

	{client.ErrNoSession, http.StatusUnauthorized},
	{client.ErrMissingRefreshToken, http.StatusUnauthorized},

	{adapter.ErrBadRequest, http.StatusBadRequest},
	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrForbidden, http.StatusForbidden},
	{adapter.ErrNotFound, http.StatusNotFound},
	{adapter.ErrConflict, http.StatusConflict},
	{adapter.ErrTooManyRequests, http.StatusTooManyRequests},
	{adapter.ErrInternalServerError, http.StatusBadGateway},
	{adapter.ErrUnavailable, http.StatusServiceUnavailable},

	{store.ErrStorageRead, http.StatusInternalServerError},
	{store.ErrStorageWrite, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Client errors
// reported by the hosted service pass its message through; everything else
// gets the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	msg := http.StatusText(status)
	var remoteErr *adapter.RemoteServiceError
	switch {
	case errors.As(err, &remoteErr) && status < http.StatusInternalServerError && remoteErr.Message != "":
		msg = remoteErr.Message
	case errors.Is(err, ErrInvalidCredentials):
		msg = err.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, msg, status)
}
