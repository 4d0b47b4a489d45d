// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/toeirei/littlelemon/internal/kv"
	"github.com/toeirei/littlelemon/internal/model"
)

// MenuStorageKey is the kv key holding the serialised menu. It is distinct
// from every profile preference key.
const MenuStorageKey = "@little_lemon_menu"

// FlatStore is the key-value implementation of Store. The whole menu lives
// as one JSON array under MenuStorageKey; array order is item identity.
type FlatStore struct {
	kv  kv.Store
	key string

	mu     sync.RWMutex
	closed bool
}

// NewFlatStore binds a FlatStore to ns. The namespace is shared with other
// preference owners and is not closed by FlatStore.Close.
func NewFlatStore(ns kv.Store) *FlatStore {
	return &FlatStore{kv: ns, key: MenuStorageKey}
}

// Kind implements Store.
func (s *FlatStore) Kind() Kind { return KindFlat }

func (s *FlatStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// ReadAll implements Store. A missing or empty key reads as an empty menu.
func (s *FlatStore) ReadAll(ctx context.Context) ([]model.MenuItem, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.key, err)
	}
	items := make([]model.MenuItem, 0)
	if !ok || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	if items == nil {
		items = make([]model.MenuItem, 0)
	}
	return items, nil
}

// WriteAll implements Store by overwriting the key with the full sequence.
func (s *FlatStore) WriteAll(ctx context.Context, items []model.MenuItem) error {
	if s.isClosed() {
		return ErrClosed
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	dbLogf("db: wrote %d menu items to flat store", len(items))
	return nil
}

// Query implements Store by filtering the full sequence in memory.
func (s *FlatStore) Query(ctx context.Context, c Criteria) ([]model.MenuItem, error) {
	items, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterItems(items, c), nil
}

// Close implements Store. The underlying namespace stays open.
func (s *FlatStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
