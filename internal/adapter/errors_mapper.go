// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorBody covers the error shapes the auth API uses: the current
// {"code","error_code","msg"} form and the OAuth-style
// {"error","error_description"} form returned by the token endpoint.
type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b errorBody) text() string {
	for _, s := range []string{b.Msg, b.ErrorDescription, b.Message, b.Error} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// mapHTTPError returns nil for 2xx responses and a *RemoteServiceError
// otherwise.
func mapHTTPError(op string, resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	return &RemoteServiceError{
		Op:         op,
		StatusCode: code,
		Message:    responseMessage(resp),
		Err:        statusSentinel(code),
	}
}

// mapTransportError wraps a failure to get any response at all.
func mapTransportError(op string, err error) error {
	return &RemoteServiceError{
		Op:  op,
		Err: fmt.Errorf("%w: %w", ErrUnavailable, err),
	}
}

func responseMessage(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))
	if raw == "" {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal([]byte(raw), &body); err == nil {
		if msg := body.text(); msg != "" {
			return msg
		}
	}
	return raw
}

func statusSentinel(code int) error {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}

	if code >= http.StatusInternalServerError {
		return ErrInternalServerError
	}
	return ErrBadRequest
}
