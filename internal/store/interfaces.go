// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_storage_mock.go -package=mock

// SessionStorage is a string key-value store that holds auth session state
// between process runs. Its shape follows the browser's localStorage so the
// backend client can use the same storage keys the hosted service's own SDKs
// use.
//
// Implementations must be safe for concurrent use.
type SessionStorage interface {
	// GetItem returns the value stored under key. found is false when the key
	// is absent; that is not an error.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
