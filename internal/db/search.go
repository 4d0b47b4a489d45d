// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "strings"

// likeEscape is the escape character used in every LIKE predicate. '!' has
// no special meaning in SQLite, PostgreSQL or MySQL string literals, unlike
// the backslash.
const likeEscape = '!'

// NormalizeSearchTerm trims whitespace and lower-cases q. An all-whitespace
// term normalises to "" which means "no search predicate".
func NormalizeSearchTerm(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// likePattern turns an already normalised search term into a
// "%term%" LIKE pattern where '%', '_' and the escape character itself
// match literally.
func likePattern(term string) string {
	var b strings.Builder
	b.Grow(len(term) + 2)
	b.WriteByte('%')
	for _, r := range term {
		switch r {
		case '%', '_', likeEscape:
			b.WriteRune(likeEscape)
		}
		b.WriteRune(r)
	}
	b.WriteByte('%')
	return b.String()
}
