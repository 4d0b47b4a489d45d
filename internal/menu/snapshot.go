// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/littlelemon/internal/db"
	"github.com/toeirei/littlelemon/internal/model"
)

// Export writes the cached menu to w as zstd-compressed JSON and returns
// the number of items written. Backend-assigned ids are dropped so the
// snapshot imports cleanly into either backend.
func Export(ctx context.Context, store db.Store, w io.Writer) (int, error) {
	items, err := store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read menu: %w", err)
	}
	for i := range items {
		items[i].ID = 0
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return 0, fmt.Errorf("create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		_ = zw.Close()
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("flush snapshot: %w", err)
	}
	return len(items), nil
}

// Import reads a snapshot written by Export and replaces the cache with
// it. An empty snapshot clears the cache.
func Import(ctx context.Context, store db.Store, r io.Reader) (int, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	var items []model.MenuItem
	if err := json.NewDecoder(zr).Decode(&items); err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}
	for i := range items {
		items[i].ID = 0
	}
	if err := store.WriteAll(ctx, items); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return len(items), nil
}
