// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors a [RemoteServiceError] unwraps to, one per class of
// response status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	// ErrUnavailable covers 502/503/504 and failures to reach the service at all.
	ErrUnavailable = errors.New("remote service unavailable")
)

// RemoteServiceError is any failure of a call to the hosted service. It is
// propagated unchanged to callers of the shared client.
type RemoteServiceError struct {
	// Op names the API call, e.g. "signup" or "refresh_token".
	Op string
	// StatusCode is the HTTP status of the response, or 0 when no response
	// was received.
	StatusCode int
	// Message is the human-readable message reported by the service.
	Message string
	// Err is the sentinel for the status class, possibly wrapping the
	// transport error.
	Err error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("remote service error: %s: %v", e.Op, e.Err)
	}

	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("remote service error: %s: http %d: %s", e.Op, e.StatusCode, msg)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}
