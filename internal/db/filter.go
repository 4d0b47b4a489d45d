// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"strings"

	"github.com/toeirei/littlelemon/internal/model"
)

// Criteria selects a subset of the cached menu. The zero value selects
// everything.
type Criteria struct {
	// Search is matched as a case-insensitive substring of name or
	// description. Blank means no search predicate.
	Search string
	// Categories is the set of accepted category tags. Empty means no
	// category predicate.
	Categories []string
}

// Normalize returns a copy of c with the search term trimmed and
// lower-cased and the categories trimmed, de-duplicated (first occurrence
// wins) and stripped of empty entries.
func (c Criteria) Normalize() Criteria {
	out := Criteria{Search: NormalizeSearchTerm(c.Search)}
	if len(c.Categories) == 0 {
		return out
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		cat = strings.TrimSpace(cat)
		if cat == "" {
			continue
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		out.Categories = append(out.Categories, cat)
	}
	return out
}

// IsEmpty reports whether c has neither a search nor a category predicate
// after normalisation.
func (c Criteria) IsEmpty() bool {
	n := c.Normalize()
	return n.Search == "" && len(n.Categories) == 0
}

// FilterItems returns the subset of items matching c, preserving relative
// order. An empty criteria returns items unchanged.
func FilterItems(items []model.MenuItem, c Criteria) []model.MenuItem {
	c = c.Normalize()
	if c.Search == "" && len(c.Categories) == 0 {
		return items
	}
	var cats map[string]struct{}
	if len(c.Categories) > 0 {
		cats = make(map[string]struct{}, len(c.Categories))
		for _, cat := range c.Categories {
			cats[cat] = struct{}{}
		}
	}
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if c.Search != "" &&
			!strings.Contains(strings.ToLower(it.Name), c.Search) &&
			!strings.Contains(strings.ToLower(it.Description), c.Search) {
			continue
		}
		if cats != nil {
			if _, ok := cats[it.Category]; !ok {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}
