// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/homecare-jobs/internal/config"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/utils"
	"github.com/MKhiriev/homecare-jobs/models"
)

const (
	signUpPath = "/auth/v1/signup"
	tokenPath  = "/auth/v1/token"
	userPath   = "/auth/v1/user"
	logoutPath = "/auth/v1/logout"

	clientInfo = "homecare-jobs"
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
	now    func() time.Time
}

// signUpResponse is a session when the project auto-confirms accounts and a
// bare user object otherwise.
type signUpResponse struct {
	models.Session
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewHTTPBackendAdapter constructs the REST implementation of
// [BackendAdapter] for the project at cfg.URL.
//
// Every request carries the access key in the "apikey" header, and as the
// bearer token unless a user access token is supplied. The key is assumed to
// be validated already (see [config.ValidateBackend]).
func NewHTTPBackendAdapter(cfg config.Backend, log *logger.Logger) BackendAdapter {
	client := utils.NewHTTPClient(cfg.URL, cfg.RequestTimeout)
	client.
		SetHeader("apikey", cfg.AccessKey).
		SetAuthToken(cfg.AccessKey).
		SetHeader("X-Client-Info", clientInfo).
		SetHeader("Accept", "application/json")

	log.Debug().
		Str("endpoint", cfg.URL).
		Str("access_key", logger.Mask(cfg.AccessKey)).
		Msg("creating backend adapter")

	return &httpBackendAdapter{client: client, logger: log, now: time.Now}
}

// SignUp implements [BackendAdapter]. It POSTs the credentials to
// /auth/v1/signup.
func (h *httpBackendAdapter) SignUp(ctx context.Context, creds models.Credentials) (models.Session, error) {
	const op = "signup"

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(signUpPath)
	if err = h.check(ctx, op, resp, err); err != nil {
		return models.Session{}, err
	}

	var out signUpResponse
	if err = decodeBody(op, resp, &out); err != nil {
		return models.Session{}, err
	}

	if out.AccessToken == "" {
		return models.Session{User: models.User{ID: out.ID, Email: out.Email, Role: out.Role}}, nil
	}
	return h.normalize(out.Session), nil
}

// SignInWithPassword implements [BackendAdapter] using the password grant of
// /auth/v1/token.
func (h *httpBackendAdapter) SignInWithPassword(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return h.token(ctx, "password", creds)
}

// RefreshToken implements [BackendAdapter] using the refresh_token grant of
// /auth/v1/token.
func (h *httpBackendAdapter) RefreshToken(ctx context.Context, refreshToken string) (models.Session, error) {
	return h.token(ctx, "refresh_token", map[string]string{"refresh_token": refreshToken})
}

func (h *httpBackendAdapter) token(ctx context.Context, grantType string, body any) (models.Session, error) {
	op := grantType

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("grant_type", grantType).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(tokenPath)
	if err = h.check(ctx, op, resp, err); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = decodeBody(op, resp, &session); err != nil {
		return models.Session{}, err
	}

	return h.normalize(session), nil
}

// GetUser implements [BackendAdapter]. It GETs /auth/v1/user with the user's
// access token.
func (h *httpBackendAdapter) GetUser(ctx context.Context, accessToken string) (models.User, error) {
	const op = "get_user"

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get(userPath)
	if err = h.check(ctx, op, resp, err); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decodeBody(op, resp, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// SignOut implements [BackendAdapter]. It POSTs to /auth/v1/logout with the
// user's access token; the service answers 204.
func (h *httpBackendAdapter) SignOut(ctx context.Context, accessToken string) error {
	const op = "logout"

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post(logoutPath)

	return h.check(ctx, op, resp, err)
}

// check turns a transport error or a non-2xx response into a
// *RemoteServiceError and logs it.
func (h *httpBackendAdapter) check(ctx context.Context, op string, resp *resty.Response, err error) error {
	log := logger.FromContext(ctx)

	if err != nil {
		log.Err(err).Str("op", op).Msg("backend request failed")
		return mapTransportError(op, err)
	}

	if err = mapHTTPError(op, resp); err != nil {
		log.Warn().Str("op", op).Int("status", resp.StatusCode()).Err(err).Msg("backend returned error")
		return err
	}

	return nil
}

// normalize fills ExpiresAt when the service left it out: first from the
// access token's exp claim, then from ExpiresIn.
func (h *httpBackendAdapter) normalize(s models.Session) models.Session {
	if s.ExpiresAt > 0 {
		return s
	}

	if exp, ok := utils.TokenExpiry(s.AccessToken); ok {
		s.ExpiresAt = exp.Unix()
	} else if s.ExpiresIn > 0 {
		s.ExpiresAt = h.now().Add(time.Duration(s.ExpiresIn) * time.Second).Unix()
	}

	return s
}

func decodeBody(op string, resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return &RemoteServiceError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Message:    "malformed response body",
			Err:        fmt.Errorf("%w: %w", ErrInternalServerError, err),
		}
	}
	return nil
}
