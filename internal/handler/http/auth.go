// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/utils"
	"github.com/MKhiriev/homecare-jobs/models"
)

// sessionResponse is a session as exposed over HTTP. The refresh token stays
// in session storage.
type sessionResponse struct {
	AccessToken string      `json:"access_token,omitempty"`
	TokenType   string      `json:"token_type,omitempty"`
	ExpiresIn   int64       `json:"expires_in,omitempty"`
	ExpiresAt   int64       `json:"expires_at,omitempty"`
	User        models.User `json:"user"`
}

func newSessionResponse(s models.Session) sessionResponse {
	return sessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   s.TokenType,
		ExpiresIn:   s.ExpiresIn,
		ExpiresAt:   s.ExpiresAt,
		User:        s.User,
	}
}

// userResponse describes the current session without its tokens. The
// session belongs to the whole process, so its bearer token is never handed
// out after sign-in.
type userResponse struct {
	ExpiresAt int64       `json:"expires_at,omitempty"`
	User      models.User `json:"user"`
}

func newUserResponse(s models.Session) userResponse {
	return userResponse{
		ExpiresAt: s.ExpiresAt,
		User:      s.User,
	}
}

func decodeCredentials(r *http.Request) (models.Credentials, error) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		return models.Credentials{}, err
	}

	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.Credentials{}, ErrInvalidCredentials
	}
	return creds, nil
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		writeError(w, r, err)
		return
	}

	session, err := h.auth.SignUp(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", session.User.ID).Bool("confirmed", !session.IsZero()).Msg("user signed up")

	status := http.StatusOK
	if session.IsZero() {
		// email confirmation pending
		status = http.StatusAccepted
	}
	utils.WriteJSON(w, newSessionResponse(session), status)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		if !errors.Is(err, ErrInvalidCredentials) {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
		writeError(w, r, err)
		return
	}

	session, err := h.auth.SignInWithPassword(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", session.User.ID).Msg("user logged in")
	utils.WriteJSON(w, newSessionResponse(session), http.StatusOK)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, err := h.auth.Session(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, newUserResponse(session), http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	session, err := h.auth.RefreshSession(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, newUserResponse(session), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.SignOut(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Msg("user logged out")
	w.WriteHeader(http.StatusNoContent)
}
