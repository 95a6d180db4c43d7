// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseUnverifiedClaims decodes the claims of a compact JWT without
// verifying its signature. It fails when tokenString is not three
// base64url segments with a JSON header and claim set.
//
// Only the issuing service holds the signing secret, so the result must never
// be used for authorization decisions; it is good for reading expiry and
// project metadata.
func ParseUnverifiedClaims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	return claims, nil
}

// TokenExpiry returns the "exp" claim of tokenString. ok is false when the
// token cannot be decoded or carries no expiry.
func TokenExpiry(tokenString string) (expiresAt time.Time, ok bool) {
	claims, err := ParseUnverifiedClaims(tokenString)
	if err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
