// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [SessionStorage] implementations. Driver errors
// are wrapped so callers can match with [errors.Is] without depending on
// the database package.
var (
	// ErrStorageRead is returned when a stored value cannot be read.
	ErrStorageRead = errors.New("session storage read failed")

	// ErrStorageWrite is returned when a value cannot be written or removed.
	ErrStorageWrite = errors.New("session storage write failed")

	// ErrBuildingSQLQuery is returned when constructing a SQL statement with
	// the query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrEmptyKey is returned when a storage key is empty.
	ErrEmptyKey = errors.New("empty storage key")
)
