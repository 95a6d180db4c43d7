// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/homecare-jobs/internal/config"
	"github.com/MKhiriev/homecare-jobs/internal/logger"
)

// SQLiteSessionStorage is a [SessionStorage] persisted in a SQLite file, so a
// session survives restarts of every process that opens the same file.
type SQLiteSessionStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteSessionStorage connects to the database named by cfg.DB.DSN and
// applies the schema migrations.
func NewSQLiteSessionStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (*SQLiteSessionStorage, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error migrating session storage")
		db.Close()
		return nil, err
	}

	return newSQLiteSessionStorage(db, log), nil
}

func newSQLiteSessionStorage(db *DB, log *logger.Logger) *SQLiteSessionStorage {
	log.Debug().Msg("creating sqlite session storage")
	return &SQLiteSessionStorage{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *SQLiteSessionStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error reading session storage item")
		return "", false, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}

	return value, true, nil
}

func (s *SQLiteSessionStorage) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildSetItemQuery(key, value, s.now())
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error writing session storage item")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return nil
}

func (s *SQLiteSessionStorage) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildRemoveItemQuery(key)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error removing session storage item")
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLiteSessionStorage) Close() error {
	return s.db.Close()
}
