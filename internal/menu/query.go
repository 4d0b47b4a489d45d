// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"context"

	"github.com/toeirei/littlelemon/internal/db"
	"github.com/toeirei/littlelemon/internal/logging"
	"github.com/toeirei/littlelemon/internal/model"
)

// Query returns the cached items matching search and categories. A blank
// search and no categories return the whole cache. Backend failures are
// logged and yield an empty, non-nil slice so callers can always render a
// list.
func Query(ctx context.Context, store db.Store, search string, categories []string) []model.MenuItem {
	c := db.Criteria{Search: search, Categories: categories}
	items, err := store.Query(ctx, c)
	if err != nil {
		logging.Errorf("error filtering menu items (search=%q categories=%v): %v", search, categories, err)
		return []model.MenuItem{}
	}
	if items == nil {
		return []model.MenuItem{}
	}
	logging.Debugf("filtered items: %d (search=%q categories=%v)", len(items), search, categories)
	return items
}

// Categories returns the distinct non-empty categories of the cached menu
// in first-seen order.
func Categories(ctx context.Context, store db.Store) []string {
	items := Query(ctx, store, "", nil)
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range items {
		if it.Category == "" {
			continue
		}
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}
