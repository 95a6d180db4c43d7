// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ExpiresWithin(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name      string
		expiresAt int64
		margin    time.Duration
		want      bool
	}{
		{name: "unknown expiry", expiresAt: 0, margin: time.Minute, want: false},
		{name: "already expired", expiresAt: now.Unix() - 10, margin: 0, want: true},
		{name: "expires exactly now", expiresAt: now.Unix(), margin: 0, want: true},
		{name: "inside margin", expiresAt: now.Unix() + 30, margin: time.Minute, want: true},
		{name: "outside margin", expiresAt: now.Unix() + 3600, margin: time.Minute, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{AccessToken: "t", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, s.ExpiresWithin(now, tt.margin))
		})
	}
}

func TestSession_IsZero(t *testing.T) {
	assert.True(t, Session{}.IsZero())
	assert.False(t, Session{AccessToken: "x"}.IsZero())
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-16", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-16", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestUser_CreatedAtJSON(t *testing.T) {
	t.Run("omitted when unknown", func(t *testing.T) {
		b, err := json.Marshal(User{ID: "user-1", Email: "alice@example.com"})
		require.NoError(t, err)
		assert.NotContains(t, string(b), "created_at")
	})

	t.Run("kept when reported", func(t *testing.T) {
		var u User
		require.NoError(t, json.Unmarshal([]byte(`{"id":"user-1","created_at":"2026-10-16T12:00:00Z"}`), &u))
		require.NotNil(t, u.CreatedAt)
		assert.True(t, u.CreatedAt.Equal(time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)))

		b, err := json.Marshal(u)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"created_at":"2026-10-16T12:00:00Z"`)
	})
}
