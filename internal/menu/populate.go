// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/toeirei/littlelemon/internal/db"
	"github.com/toeirei/littlelemon/internal/logging"
	"github.com/toeirei/littlelemon/internal/model"
	"github.com/toeirei/littlelemon/internal/remote"
)

// ErrPersist marks a failure to write the fetched menu into the backend.
// Unlike fetch and query failures it is returned to the caller.
var ErrPersist = errors.New("menu: persist failed")

// EnsurePopulated returns the cached menu, fetching and persisting the
// remote menu first when the cache is empty. A non-empty cache is returned
// unchanged and fetcher is not called.
func EnsurePopulated(ctx context.Context, store db.Store, fetcher remote.Fetcher) ([]model.MenuItem, error) {
	existing, err := store.ReadAll(ctx)
	if err != nil {
		// An unreadable cache is treated like an empty one; the write below
		// reports a broken backend.
		logging.Warnf("reading cached menu failed, treating cache as empty: %v", err)
		existing = nil
	}
	if len(existing) > 0 {
		logging.Debugf("loaded %d menu items from %s cache", len(existing), store.Kind())
		return existing, nil
	}

	logging.Infof("menu cache is empty, fetching from remote")
	fetched := safeFetch(ctx, fetcher)
	if len(fetched) == 0 {
		return []model.MenuItem{}, nil
	}
	if err := store.WriteAll(ctx, fetched); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	logging.Infof("saved %d menu items to %s cache", len(fetched), store.Kind())
	return fetched, nil
}

// Refresh re-fetches the remote menu and replaces the cache with it. When the
// fetch fails or yields nothing the cache is left as it is and its current
// contents are returned.
func Refresh(ctx context.Context, store db.Store, fetcher remote.Fetcher) ([]model.MenuItem, error) {
	fetched := safeFetch(ctx, fetcher)
	if len(fetched) == 0 {
		logging.Warnf("refresh fetched no items; keeping cached menu")
		return Query(ctx, store, "", nil), nil
	}
	if err := store.WriteAll(ctx, fetched); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	logging.Infof("refreshed %s cache with %d menu items", store.Kind(), len(fetched))
	return fetched, nil
}

// safeFetch calls fetcher and converts any failure, including a panic in
// the collaborator, into an empty result.
func safeFetch(ctx context.Context, fetcher remote.Fetcher) (items []model.MenuItem) {
	if fetcher == nil {
		logging.Warnf("no menu fetcher configured")
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("menu fetch panicked: %v", r)
			items = nil
		}
	}()
	items, err := fetcher.Fetch(ctx)
	if err != nil {
		logging.Errorf("error fetching menu from remote: %v", err)
		return nil
	}
	logging.Debugf("fetched %d menu items from remote", len(items))
	return items
}
