// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"strings"
	"testing"

	"github.com/toeirei/littlelemon/internal/kv"
	"github.com/toeirei/littlelemon/internal/model"
)

// WithTestStore opens an in-memory sqlite SQLStore with the schema applied
// for the duration of fn.
func WithTestStore(t *testing.T, fn func(s *SQLStore)) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	s, err := New(context.Background(), "sqlite", dsn)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = s.Close() }()
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	fn(s)
}

// bothBackends runs fn against a fresh sqlite store and a fresh flat store.
func bothBackends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	t.Run("relational", func(t *testing.T) {
		WithTestStore(t, func(s *SQLStore) { fn(t, s) })
	})
	t.Run("flat", func(t *testing.T) {
		fn(t, NewFlatStore(kv.NewMemoryStore()))
	})
}

func sampleMenu() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Greek Salad", Price: 12.99, Description: "Crispy lettuce, peppers, olives and our Chicago style feta cheese.", Image: "greekSalad.jpg", Category: "starters"},
		{Name: "Bruschetta", Price: 7.99, Description: "Grilled bread smeared with garlic, seasoned with salt and olive oil.", Image: "bruschetta.jpg", Category: "starters"},
		{Name: "Grilled Fish", Price: 20, Description: "Fish marinated in fresh orange and lemon juice.", Image: "grilledFish.jpg", Category: "mains"},
		{Name: "Pasta", Price: 6.99, Description: "Penne with fried aubergines, cherry tomatoes and a tomato sauce.", Image: "pasta.jpg", Category: "mains"},
		{Name: "Lemon Dessert", Price: 4.99, Description: "Light and fluffy traditional homemade Italian lemon and ricotta cake.", Image: "lemonDessert.jpg", Category: "desserts"},
		{Name: "Chocolate Cake", Price: 5.5, Description: "Dark and rich.", Category: "desserts"},
		{Name: "Chocolate Shake", Price: 4.25, Description: "Blended with ice cream.", Category: "drinks"},
		{Name: "Chocolate Pasta", Price: 9.75, Description: "An odd one.", Category: "mains"},
		{Name: "Tap Water", Price: 0, Description: "", Category: ""},
		{Name: "ÉCLAIR", Price: 3.5, Description: "Choux pastry filled with crème pâtissière.", Category: "pâtisserie"},
		{Name: "Crème Brûlée", Price: 6.25, Description: "Vanilla custard under burnt sugar.", Category: "pâtisserie"},
	}
}

func names(items []model.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

// stripIDs zeroes backend-assigned identifiers so items from both backends
// compare equal.
func stripIDs(items []model.MenuItem) []model.MenuItem {
	out := make([]model.MenuItem, len(items))
	for i, it := range items {
		it.ID = 0
		out[i] = it
	}
	return out
}
