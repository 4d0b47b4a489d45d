// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/toeirei/littlelemon/internal/model"
	"github.com/uptrace/bun"
)

// menuColumns is the projection shared by every menu read. NULL text
// columns read back as empty strings so rows written by other tools scan
// cleanly into model.MenuItem.
const menuColumns = "id, name, price, COALESCE(description, '') AS description, " +
	"COALESCE(image, '') AS image, COALESCE(category, '') AS category"

// SQLStore is the relational implementation of Store.
type SQLStore struct {
	db      *sql.DB
	bun     *bun.DB
	dialect Dialect

	mu     sync.RWMutex
	closed bool
}

// Kind implements Store.
func (s *SQLStore) Kind() Kind { return KindRelational }

// Dialect returns the engine the store talks to.
func (s *SQLStore) Dialect() Dialect { return s.dialect }

// Bun exposes the underlying Bun handle for maintenance tooling.
func (s *SQLStore) Bun() *bun.DB { return s.bun }

func (s *SQLStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// buildMenuQuery renders the SELECT for c with one bind parameter per
// interpolated value. User input never reaches the statement text.
func buildMenuQuery(d Dialect, c Criteria) (string, []any) {
	c = c.Normalize()
	var (
		where []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return d.placeholder(len(args))
	}
	if c.Search != "" {
		pattern := likePattern(c.Search)
		where = append(where, fmt.Sprintf(
			"(%s LIKE %s ESCAPE '%c' OR %s LIKE %s ESCAPE '%c')",
			d.lowerExpr("name"), next(pattern), likeEscape,
			d.lowerExpr("description"), next(pattern), likeEscape))
	}
	if len(c.Categories) > 0 {
		marks := make([]string, len(c.Categories))
		for i, cat := range c.Categories {
			marks[i] = next(cat)
		}
		where = append(where, d.exactExpr("category")+" IN ("+strings.Join(marks, ", ")+")")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(menuColumns)
	b.WriteString(" FROM ")
	b.WriteString(menuTable)
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY id")
	return b.String(), args
}

// buildInsert renders the single-row INSERT used by WriteAll.
func buildInsert(d Dialect) string {
	marks := make([]string, 5)
	for i := range marks {
		marks[i] = d.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (name, price, description, image, category) VALUES (%s)",
		menuTable, strings.Join(marks, ", "))
}

// ReadAll implements Store.
func (s *SQLStore) ReadAll(ctx context.Context) ([]model.MenuItem, error) {
	return s.Query(ctx, Criteria{})
}

// Query implements Store.
func (s *SQLStore) Query(ctx context.Context, c Criteria) ([]model.MenuItem, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	start := time.Now()
	query, args := buildMenuQuery(s.dialect, c)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", menuTable, err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]model.MenuItem, 0)
	if err := s.bun.ScanRows(ctx, rows, &items); err != nil {
		return nil, fmt.Errorf("scan %s rows: %w", menuTable, err)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", menuTable, err)
	}
	dbLogf("db: %s query returned %d rows in %s (args=%d)", s.dialect, len(items), time.Since(start), len(args))
	return items, nil
}

// WriteAll implements Store. The table is cleared and each item inserted by
// an independent statement; there is no enclosing transaction, so a failure
// mid-sequence leaves the rows inserted so far in place.
func (s *SQLStore) WriteAll(ctx context.Context, items []model.MenuItem) error {
	if s.isClosed() {
		return ErrClosed
	}
	start := time.Now()
	if _, err := ExecRaw(ctx, s.bun, "DELETE FROM "+menuTable); err != nil {
		return fmt.Errorf("clear %s: %w", menuTable, err)
	}

	stmt, err := s.db.PrepareContext(ctx, buildInsert(s.dialect))
	if err != nil {
		return fmt.Errorf("prepare insert into %s: %w", menuTable, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, it := range items {
		if _, err := stmt.ExecContext(ctx, it.Name, it.Price, it.Description, it.Image, it.Category); err != nil {
			return fmt.Errorf("insert item %d (%q): %w", i, it.Name, err)
		}
	}
	dbLogf("db: wrote %d menu items to %s in %s", len(items), s.dialect, time.Since(start))
	return nil
}

// Close implements Store.
func (s *SQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.bun.Close()
}
