// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the hosted backend's REST auth API.
//
// The primary abstraction is [BackendAdapter], which keeps the client package
// independent of the wire format. [NewHTTPBackendAdapter] is the resty-based
// implementation.
//
// Every non-2xx response and every transport failure is returned as a
// *[RemoteServiceError]. It unwraps to one of the sentinel errors in errors.go,
// so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401) or
// [errors.As] to read the status code and service message.
package adapter

import (
	"context"

	"github.com/MKhiriev/homecare-jobs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the hosted service's auth API as used by the shared
// client. Implementations are stateless with respect to sessions: tokens are
// passed in explicitly and nothing is cached.
type BackendAdapter interface {
	// SignUp registers a new account. When the project requires email
	// confirmation the service returns no session; the result then carries
	// only the User and an empty AccessToken.
	SignUp(ctx context.Context, creds models.Credentials) (models.Session, error)

	// SignInWithPassword exchanges email and password for a new session.
	SignInWithPassword(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RefreshToken exchanges a refresh token for a new session. Refresh
	// tokens are single-use; the returned session carries its successor.
	RefreshToken(ctx context.Context, refreshToken string) (models.Session, error)

	// GetUser returns the account the access token was issued for.
	GetUser(ctx context.Context, accessToken string) (models.User, error)

	// SignOut revokes the session the access token belongs to.
	SignOut(ctx context.Context, accessToken string) error
}
