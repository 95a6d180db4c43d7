// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/homecare-jobs/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_auth_mock.go -package=mock

// Auth is the session surface of [Client] used by the HTTP handlers.
type Auth interface {
	SignUp(ctx context.Context, creds models.Credentials) (models.Session, error)
	SignInWithPassword(ctx context.Context, creds models.Credentials) (models.Session, error)
	Session(ctx context.Context) (models.Session, error)
	RefreshSession(ctx context.Context) (models.Session, error)
	User(ctx context.Context) (models.User, error)
	SignOut(ctx context.Context) error
}

// RefreshRecorder observes the outcome of each background refresh attempt.
type RefreshRecorder interface {
	ObserveSessionRefresh(result string)
}
