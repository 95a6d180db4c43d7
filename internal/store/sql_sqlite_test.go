// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/homecare-jobs/internal/config"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
)

func Test_isMemoryDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{dsn: ":memory:", want: true},
		{dsn: "file::memory:", want: true},
		{dsn: "file::memory:?cache=shared", want: true},
		{dsn: "file:session.db?mode=memory", want: true},
		{dsn: "file:/tmp/shared.db?cache=shared&mode=memory", want: true},
		{dsn: "session.db", want: false},
		{dsn: "file:session.db", want: false},
		{dsn: "file:session.db?mode=rwc", want: false},
		{dsn: "file:session.db?_busy_timeout=5000", want: false},
		{dsn: "file:memory.db", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, isMemoryDSN(tt.dsn))
		})
	}
}

func TestNewConnectSQLite_ModeMemoryLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: "file:" + path + "?mode=memory&cache=shared"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no database file expected for a mode=memory DSN")
}

func TestNewConnectSQLite_CreatesFileAndDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: "file:" + path + "?_busy_timeout=5000"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
