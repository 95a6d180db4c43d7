// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net"
	"net/http"

	"github.com/MKhiriev/homecare-jobs/internal/logger"
	"github.com/MKhiriev/homecare-jobs/internal/utils"
)

// withOperatorAuth restricts the session API to the operator of the process.
// The stored session is shared by the whole process, so any caller allowed
// through here acts as the signed-in user.
//
// With an operator token configured the request must present it as a bearer
// token. Without one only loopback clients are admitted.
func (h *Handler) withOperatorAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.operatorToken == "" {
			if !isLoopback(r.RemoteAddr) {
				log.Warn().Str("remote_addr", r.RemoteAddr).Msg("session API refused to non-loopback client")
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(h.operatorToken)) != 1 {
			log.Warn().Str("remote_addr", r.RemoteAddr).Msg("session API refused: missing or wrong operator token")
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isLoopback(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
