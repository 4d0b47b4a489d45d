// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/toeirei/littlelemon/internal/model"
)

func TestBuildMenuQuery_Placeholders(t *testing.T) {
	q, args := buildMenuQuery(DialectSQLite, Criteria{})
	if strings.Contains(q, "WHERE") || len(args) != 0 {
		t.Fatalf("empty criteria should not filter: %q %v", q, args)
	}
	if !strings.HasSuffix(q, "ORDER BY id") {
		t.Fatalf("expected insertion ordering, got %q", q)
	}

	q, args = buildMenuQuery(DialectSQLite, Criteria{Search: "Choco", Categories: []string{"desserts", "drinks"}})
	want := "WHERE (ll_lower(name) LIKE ? ESCAPE '!' OR ll_lower(description) LIKE ? ESCAPE '!') AND category IN (?, ?)"
	if !strings.Contains(q, want) {
		t.Fatalf("unexpected sqlite query:\n%s", q)
	}
	if !reflect.DeepEqual(args, []any{"%choco%", "%choco%", "desserts", "drinks"}) {
		t.Fatalf("unexpected args: %#v", args)
	}

	q, _ = buildMenuQuery(DialectPostgres, Criteria{Search: "x", Categories: []string{"a", "b"}})
	if !strings.Contains(q, "LIKE $1") || !strings.Contains(q, "LIKE $2") || !strings.Contains(q, "IN ($3, $4)") {
		t.Fatalf("unexpected postgres placeholders:\n%s", q)
	}

	q, _ = buildMenuQuery(DialectPostgres, Criteria{Search: "x"})
	if !strings.Contains(q, "LOWER(name) LIKE $1") || strings.Contains(q, "COLLATE") {
		t.Fatalf("unexpected postgres search:\n%s", q)
	}
}

func TestBuildMenuQuery_MySQLBinaryCollation(t *testing.T) {
	q, _ := buildMenuQuery(DialectMySQL, Criteria{Categories: []string{"mains"}})
	if !strings.Contains(q, "WHERE category COLLATE utf8mb4_bin IN (?)") {
		t.Fatalf("unexpected mysql category filter:\n%s", q)
	}
	q, _ = buildMenuQuery(DialectMySQL, Criteria{Search: "é"})
	want := "(LOWER(name) COLLATE utf8mb4_bin LIKE ? ESCAPE '!' OR LOWER(description) COLLATE utf8mb4_bin LIKE ? ESCAPE '!')"
	if !strings.Contains(q, want) {
		t.Fatalf("unexpected mysql search:\n%s", q)
	}
}

func TestBuildMenuQuery_NeverInterpolatesInput(t *testing.T) {
	evil := "'; DROP TABLE menu; --"
	q, args := buildMenuQuery(DialectSQLite, Criteria{Search: evil, Categories: []string{evil}})
	if strings.Contains(q, "DROP") {
		t.Fatalf("user input leaked into statement text: %s", q)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 bound args, got %d", len(args))
	}
}

func TestBuildInsert(t *testing.T) {
	if got := buildInsert(DialectSQLite); got != "INSERT INTO menu (name, price, description, image, category) VALUES (?, ?, ?, ?, ?)" {
		t.Fatalf("sqlite insert: %s", got)
	}
	if got := buildInsert(DialectPostgres); !strings.HasSuffix(got, "VALUES ($1, $2, $3, $4, $5)") {
		t.Fatalf("postgres insert: %s", got)
	}
}

func TestSQLStore_EnsureSchemaIdempotent(t *testing.T) {
	WithTestStore(t, func(s *SQLStore) {
		ctx := context.Background()
		if err := s.WriteAll(ctx, sampleMenu()[:2]); err != nil {
			t.Fatalf("WriteAll: %v", err)
		}
		for i := 0; i < 3; i++ {
			if err := s.EnsureSchema(ctx); err != nil {
				t.Fatalf("EnsureSchema #%d: %v", i, err)
			}
		}
		items, err := s.ReadAll(ctx)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("EnsureSchema must not destroy data, got %d items", len(items))
		}
	})
}

func TestSQLStore_WriteAllReplacesAndAssignsIDs(t *testing.T) {
	WithTestStore(t, func(s *SQLStore) {
		ctx := context.Background()
		if err := s.WriteAll(ctx, sampleMenu()); err != nil {
			t.Fatalf("WriteAll: %v", err)
		}
		replacement := sampleMenu()[4:6]
		if err := s.WriteAll(ctx, replacement); err != nil {
			t.Fatalf("second WriteAll: %v", err)
		}
		items, err := s.ReadAll(ctx)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if !reflect.DeepEqual(names(items), names(replacement)) {
			t.Fatalf("expected full replace, got %v", names(items))
		}
		if items[0].ID == 0 || items[1].ID <= items[0].ID {
			t.Fatalf("expected increasing backend ids, got %d, %d", items[0].ID, items[1].ID)
		}
	})
}

func TestSQLStore_PricePrecision(t *testing.T) {
	WithTestStore(t, func(s *SQLStore) {
		ctx := context.Background()
		prices := []float64{12.99, 0.1, 1e-9, 123456789.123456789, 0}
		var in []model.MenuItem
		for _, p := range prices {
			in = append(in, model.MenuItem{Name: "p", Price: p})
		}
		if err := s.WriteAll(ctx, in); err != nil {
			t.Fatalf("WriteAll: %v", err)
		}
		out, err := s.ReadAll(ctx)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		for i, p := range prices {
			if out[i].Price != p {
				t.Fatalf("price %d: got %v want %v", i, out[i].Price, p)
			}
		}
	})
}

func TestSQLStore_NullColumnsReadAsEmpty(t *testing.T) {
	WithTestStore(t, func(s *SQLStore) {
		ctx := context.Background()
		if _, err := s.db.ExecContext(ctx, "INSERT INTO menu (name, price) VALUES (?, ?)", "Bare", 3.5); err != nil {
			t.Fatalf("raw insert: %v", err)
		}
		items, err := s.Query(ctx, Criteria{Search: "bare"})
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if len(items) != 1 || items[0].Description != "" || items[0].Category != "" || items[0].Image != "" {
			t.Fatalf("unexpected row: %+v", items)
		}
	})
}

func TestSQLStore_WriteAllPartialFailureKeepsPriorRows(t *testing.T) {
	WithTestStore(t, func(s *SQLStore) {
		ctx := context.Background()
		trigger := "CREATE TRIGGER reject_bad BEFORE INSERT ON menu WHEN NEW.name = 'Bad' " +
			"BEGIN SELECT RAISE(ABORT, 'rejected'); END"
		if _, err := s.db.ExecContext(ctx, trigger); err != nil {
			t.Fatalf("create trigger: %v", err)
		}
		in := []model.MenuItem{{Name: "A", Price: 1}, {Name: "B", Price: 2}, {Name: "Bad", Price: 3}, {Name: "C", Price: 4}}
		err := s.WriteAll(ctx, in)
		if err == nil {
			t.Fatalf("expected WriteAll to fail at the rejected row")
		}
		if !strings.Contains(err.Error(), `insert item 2 ("Bad")`) {
			t.Fatalf("error should name the failing item, got %v", err)
		}
		items, err := s.ReadAll(ctx)
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if !reflect.DeepEqual(names(items), []string{"A", "B"}) {
			t.Fatalf("expected rows before the failure to remain, got %v", names(items))
		}
	})
}

func TestSQLStore_Closed(t *testing.T) {
	WithTestStore(t, func(s *SQLStore) {
		if err := s.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		if _, err := s.ReadAll(context.Background()); !errors.Is(err, ErrClosed) {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("second Close should be a no-op, got %v", err)
		}
	})
}

func TestSQLStore_QueryMissingTable(t *testing.T) {
	s, err := New(context.Background(), "sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = s.Close() }()
	if _, err := s.Query(context.Background(), Criteria{}); err == nil {
		t.Fatalf("expected error querying before EnsureSchema")
	}
}
