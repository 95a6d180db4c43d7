// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/homecare-jobs/internal/adapter"
	"github.com/MKhiriev/homecare-jobs/internal/config"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/store"
	"github.com/MKhiriev/homecare-jobs/models"
)

// ExpiryMargin is how long before expiry a session is considered due for
// refresh.
const ExpiryMargin = 60 * time.Second

// Options is the frozen connection configuration of a [Client].
type Options struct {
	// EndpointURL is the base URL of the hosted project.
	EndpointURL string
	// AccessKey is the project's public (anon) key.
	AccessKey string
	// PersistSession is always true: sessions are written to Storage.
	PersistSession bool
	// AutoRefreshToken is always true: expiring sessions are renewed.
	AutoRefreshToken bool
	// Storage holds the session between process runs.
	Storage store.SessionStorage
	// StorageKey is the key the session is stored under,
	// "sb-<project-ref>-auth-token".
	StorageKey string
}

// Client is the shared handle to the hosted backend. Its options never
// change after [New]; only the session held in storage does.
//
// Client is safe for concurrent use. Refreshes are serialised because
// refresh tokens are single-use.
type Client struct {
	opts    Options
	adapter adapter.BackendAdapter
	logger  *logger.Logger
	now     func() time.Time

	mu sync.Mutex
}

// New validates cfg and returns the shared handle.
//
// A missing or malformed access key, an invalid endpoint, or a nil storage or
// adapter is reported as a *config.ConfigurationError. New does no network
// I/O.
func New(cfg config.Backend, storage store.SessionStorage, backend adapter.BackendAdapter, log *logger.Logger) (*Client, error) {
	if err := config.ValidateBackend(cfg); err != nil {
		return nil, err
	}
	if storage == nil {
		return nil, config.NewConfigurationError("storage", ErrMissingStorage)
	}
	if backend == nil {
		return nil, config.NewConfigurationError("adapter", ErrMissingAdapter)
	}

	endpoint := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	opts := Options{
		EndpointURL:      endpoint,
		AccessKey:        strings.TrimSpace(cfg.AccessKey),
		PersistSession:   true,
		AutoRefreshToken: true,
		Storage:          storage,
		StorageKey:       storageKey(endpoint),
	}

	log.Info().
		Str("endpoint", opts.EndpointURL).
		Str("access_key", logger.Mask(opts.AccessKey)).
		Str("storage_key", opts.StorageKey).
		Msg("backend client created")

	return &Client{
		opts:    opts,
		adapter: backend,
		logger:  log,
		now:     time.Now,
	}, nil
}

// storageKey follows the hosted SDKs' convention of naming the session key
// after the project ref, the first DNS label of the endpoint host.
func storageKey(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "sb-auth-token"
	}

	ref, _, _ := strings.Cut(u.Hostname(), ".")
	return "sb-" + ref + "-auth-token"
}

// Options returns the options the client was built with.
func (c *Client) Options() Options {
	return c.opts
}

// SignUp registers a new account and stores the session when the service
// returns one. Accounts awaiting email confirmation come back with only the
// User set.
func (c *Client) SignUp(ctx context.Context, creds models.Credentials) (models.Session, error) {
	session, err := c.adapter.SignUp(ctx, creds)
	if err != nil {
		return models.Session{}, err
	}

	if session.IsZero() {
		return session, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err = c.saveSession(ctx, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// SignInWithPassword signs in and stores the new session, replacing any
// previous one.
func (c *Client) SignInWithPassword(ctx context.Context, creds models.Credentials) (models.Session, error) {
	session, err := c.adapter.SignInWithPassword(ctx, creds)
	if err != nil {
		return models.Session{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err = c.saveSession(ctx, session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Session returns the stored session, refreshing it first when it expires
// within [ExpiryMargin]. It returns [ErrNoSession] when nothing usable is
// stored.
func (c *Client) Session(ctx context.Context) (models.Session, error) {
	session, _, err := c.refreshIfDue(ctx)
	return session, err
}

// RefreshSession renews the stored session regardless of its expiry.
func (c *Client) RefreshSession(ctx context.Context) (models.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.loadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	return c.refreshLocked(ctx, session)
}

// User returns the account of the current session as reported by the
// service.
func (c *Client) User(ctx context.Context) (models.User, error) {
	session, err := c.Session(ctx)
	if err != nil {
		return models.User{}, err
	}

	return c.adapter.GetUser(ctx, session.AccessToken)
}

// SignOut revokes the current session and removes it from storage.
//
// A session the service no longer knows (401, 403, 404) is removed locally
// too. Any other remote failure is returned and the session is kept. Signing
// out without a session is a no-op.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.loadSession(ctx)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = c.adapter.SignOut(ctx, session.AccessToken); err != nil && !isSessionGone(err) {
		return err
	}

	return c.removeSession(ctx)
}

// refreshIfDue is Session that also reports whether a refresh happened.
func (c *Client) refreshIfDue(ctx context.Context) (models.Session, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.loadSession(ctx)
	if err != nil {
		return models.Session{}, false, err
	}

	if !c.opts.AutoRefreshToken || !session.ExpiresWithin(c.now(), ExpiryMargin) {
		return session, false, nil
	}

	session, err = c.refreshLocked(ctx, session)
	if err != nil {
		return models.Session{}, false, err
	}
	return session, true, nil
}

// refreshLocked must be called with c.mu held.
func (c *Client) refreshLocked(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	if session.RefreshToken == "" {
		return models.Session{}, ErrMissingRefreshToken
	}

	refreshed, err := c.adapter.RefreshToken(ctx, session.RefreshToken)
	if err != nil {
		// a rejected refresh token will never work again
		if isRefreshTokenRejected(err) {
			log.Warn().Err(err).Msg("refresh token rejected, removing stored session")
			if rmErr := c.removeSession(ctx); rmErr != nil {
				log.Err(rmErr).Msg("error removing rejected session")
			}
		}
		return models.Session{}, err
	}

	if err = c.saveSession(ctx, refreshed); err != nil {
		return models.Session{}, err
	}

	log.Debug().Str("user_id", refreshed.User.ID).Int64("expires_at", refreshed.ExpiresAt).Msg("session refreshed")
	return refreshed, nil
}

func (c *Client) loadSession(ctx context.Context) (models.Session, error) {
	raw, found, err := c.opts.Storage.GetItem(ctx, c.opts.StorageKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return models.Session{}, ErrNoSession
	}

	var session models.Session
	if err = json.Unmarshal([]byte(raw), &session); err != nil || session.IsZero() {
		logger.FromContext(ctx).Warn().Err(err).Msg("stored session is unreadable, removing it")
		if rmErr := c.removeSession(ctx); rmErr != nil {
			return models.Session{}, rmErr
		}
		return models.Session{}, ErrNoSession
	}

	return session, nil
}

func (c *Client) saveSession(ctx context.Context, session models.Session) error {
	if !c.opts.PersistSession {
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = c.opts.Storage.SetItem(ctx, c.opts.StorageKey, string(payload)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (c *Client) removeSession(ctx context.Context) error {
	if err := c.opts.Storage.RemoveItem(ctx, c.opts.StorageKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func isSessionGone(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized) ||
		errors.Is(err, adapter.ErrForbidden) ||
		errors.Is(err, adapter.ErrNotFound)
}

func isRefreshTokenRejected(err error) bool {
	return errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrUnauthorized)
}
