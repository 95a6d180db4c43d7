// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the account record returned by the hosted auth service.
type User struct {
	// ID is the service-assigned user identifier (a UUID).
	ID string `json:"id"`
	// Email is the address the account was registered with.
	Email string `json:"email"`
	// Role is the database role the access token grants (e.g. "authenticated").
	Role string `json:"role,omitempty"`
	// CreatedAt is when the account was created on the service. Nil when
	// the service did not report it.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Credentials are the email/password pair used to sign up or sign in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is an authenticated session issued by the hosted auth service.
// It is what gets persisted in session storage between process restarts.
type Session struct {
	// AccessToken is the short-lived JWT sent as a bearer token.
	AccessToken string `json:"access_token"`
	// TokenType is the token scheme, always "bearer".
	TokenType string `json:"token_type"`
	// ExpiresIn is the access token lifetime in seconds, as issued.
	ExpiresIn int64 `json:"expires_in"`
	// ExpiresAt is the access token expiry as a unix timestamp (seconds).
	ExpiresAt int64 `json:"expires_at"`
	// RefreshToken is the long-lived opaque token used to renew the session.
	RefreshToken string `json:"refresh_token"`
	// User is the account the session belongs to.
	User User `json:"user"`
}

// Expiry returns ExpiresAt as a time.Time. The zero time means unknown.
func (s Session) Expiry() time.Time {
	if s.ExpiresAt <= 0 {
		return time.Time{}
	}
	return time.Unix(s.ExpiresAt, 0)
}

// ExpiresWithin reports whether the access token is already expired or will
// expire within margin of now. A session with unknown expiry never expires.
func (s Session) ExpiresWithin(now time.Time, margin time.Duration) bool {
	exp := s.Expiry()
	if exp.IsZero() {
		return false
	}
	return !now.Add(margin).Before(exp)
}

// IsZero reports whether s carries no access token.
func (s Session) IsZero() bool {
	return s.AccessToken == ""
}
