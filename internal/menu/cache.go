// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"context"
	"io"
	"sync"

	"github.com/toeirei/littlelemon/internal/db"
	"github.com/toeirei/littlelemon/internal/model"
	"github.com/toeirei/littlelemon/internal/remote"
)

// Cache bundles a store and its fetcher. Population, refresh and import take
// an exclusive lock; queries share a read lock, so a caller holding one Cache
// never observes a half-written menu through it.
type Cache struct {
	mu      sync.RWMutex
	store   db.Store
	fetcher remote.Fetcher
}

// NewCache returns a Cache over store that fills itself from fetcher.
func NewCache(store db.Store, fetcher remote.Fetcher) *Cache {
	return &Cache{store: store, fetcher: fetcher}
}

// Store returns the underlying backend.
func (c *Cache) Store() db.Store { return c.store }

// Open ensures the schema exists and the cache is populated.
func (c *Cache) Open(ctx context.Context) ([]model.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return EnsurePopulated(ctx, c.store, c.fetcher)
}

// EnsurePopulated is the locked form of the package-level EnsurePopulated.
func (c *Cache) EnsurePopulated(ctx context.Context) ([]model.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return EnsurePopulated(ctx, c.store, c.fetcher)
}

// Refresh is the locked form of the package-level Refresh.
func (c *Cache) Refresh(ctx context.Context) ([]model.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Refresh(ctx, c.store, c.fetcher)
}

// Query is the locked form of the package-level Query.
func (c *Cache) Query(ctx context.Context, search string, categories []string) []model.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Query(ctx, c.store, search, categories)
}

// Categories is the locked form of the package-level Categories.
func (c *Cache) Categories(ctx context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Categories(ctx, c.store)
}

// Export writes a snapshot of the cache to w.
func (c *Cache) Export(ctx context.Context, w io.Writer) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Export(ctx, c.store, w)
}

// Import replaces the cache with the snapshot read from r.
func (c *Cache) Import(ctx context.Context, r io.Reader) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Import(ctx, c.store, r)
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Close()
}
