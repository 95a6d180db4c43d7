// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// MemorySessionStorage is a process-local [SessionStorage]. Values are lost
// when the process exits.
type MemorySessionStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemorySessionStorage() *MemorySessionStorage {
	return &MemorySessionStorage{items: make(map[string]string)}
}

func (m *MemorySessionStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemorySessionStorage) SetItem(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()

	return nil
}

func (m *MemorySessionStorage) RemoveItem(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()

	return nil
}
