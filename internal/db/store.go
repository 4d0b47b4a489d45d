// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"

	"github.com/toeirei/littlelemon/internal/model"
)

// Kind identifies the backend variant behind a Store.
type Kind int

const (
	// KindRelational is a SQL table backed store.
	KindRelational Kind = iota + 1
	// KindFlat is a single JSON blob in a key-value namespace.
	KindFlat
)

// String returns the lower-case backend name.
func (k Kind) String() string {
	switch k {
	case KindRelational:
		return "relational"
	case KindFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// Store defines the capability contract shared by every menu backend.
// Implementations are not required to be safe for interleaved writes and
// reads; callers serialise re-population against queries.
type Store interface {
	// Kind reports which backend variant is active.
	Kind() Kind

	// EnsureSchema idempotently prepares the backend for use. It never
	// destroys existing data.
	EnsureSchema(ctx context.Context) error

	// ReadAll returns the full cache contents in insertion order.
	ReadAll(ctx context.Context) ([]model.MenuItem, error)

	// WriteAll replaces the full cache contents with items.
	WriteAll(ctx context.Context, items []model.MenuItem) error

	// Query returns the cached items matching c, preserving stored order.
	Query(ctx context.Context, c Criteria) ([]model.MenuItem, error)

	// Close releases resources held by the backend.
	Close() error
}
