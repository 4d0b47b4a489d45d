// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"reflect"
	"testing"
)

func TestCriteria_Normalize(t *testing.T) {
	c := Criteria{Search: "  Choco ", Categories: []string{" desserts", "", "drinks", "desserts", "  "}}
	got := c.Normalize()
	want := Criteria{Search: "choco", Categories: []string{"desserts", "drinks"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize() = %#v, want %#v", got, want)
	}
	if !(Criteria{Search: "   ", Categories: []string{""}}).IsEmpty() {
		t.Fatalf("expected blank criteria to be empty")
	}
	if (Criteria{Categories: []string{"mains"}}).IsEmpty() {
		t.Fatalf("expected category criteria to be non-empty")
	}
}

func TestFilterItems_Basic(t *testing.T) {
	items := sampleMenu()

	// Empty criteria -> original slice
	if out := FilterItems(items, Criteria{}); len(out) != len(items) {
		t.Fatalf("expected original slice for empty criteria")
	}
	if out := FilterItems(items, Criteria{Search: "   "}); len(out) != len(items) {
		t.Fatalf("expected whitespace search to be ignored")
	}

	// Search matches name, case-insensitive
	got := names(FilterItems(items, Criteria{Search: "GREEK"}))
	if !reflect.DeepEqual(got, []string{"Greek Salad"}) {
		t.Fatalf("search by name: got %v", got)
	}

	// Search matches description
	got = names(FilterItems(items, Criteria{Search: "ricotta"}))
	if !reflect.DeepEqual(got, []string{"Lemon Dessert"}) {
		t.Fatalf("search by description: got %v", got)
	}

	// Category set membership keeps stored order
	got = names(FilterItems(items, Criteria{Categories: []string{"desserts"}}))
	if !reflect.DeepEqual(got, []string{"Lemon Dessert", "Chocolate Cake"}) {
		t.Fatalf("category filter: got %v", got)
	}

	// Intersection
	got = names(FilterItems(items, Criteria{Search: "choco", Categories: []string{"desserts", "drinks"}}))
	if !reflect.DeepEqual(got, []string{"Chocolate Cake", "Chocolate Shake"}) {
		t.Fatalf("intersection: got %v", got)
	}

	// Wildcard characters are literal
	if got := FilterItems(items, Criteria{Search: "%"}); len(got) != 0 {
		t.Fatalf("expected no literal %% matches, got %v", names(got))
	}

	// Unknown category -> nothing
	if got := FilterItems(items, Criteria{Categories: []string{"breakfast"}}); len(got) != 0 {
		t.Fatalf("expected no matches for unknown category, got %v", names(got))
	}
}
