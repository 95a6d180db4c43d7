// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionStorageTable = "session_storage"
	columnKey           = "storage_key"
	columnValue         = "storage_value"
	columnUpdatedAt     = "updated_at"
)

func buildGetItemQuery(key string) (string, []any, error) {
	query, args, err := sq.Select(columnValue).
		From(sessionStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSetItemQuery builds an upsert keyed on storage_key.
func buildSetItemQuery(key, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(sessionStorageTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, now.UTC()).
		Suffix(fmt.Sprintf("ON CONFLICT(%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s",
			columnKey, columnValue, columnUpdatedAt)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildRemoveItemQuery(key string) (string, []any, error) {
	query, args, err := sq.Delete(sessionStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
