// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"embed"
	"fmt"
	"time"
)

//go:embed schema/*.sql
var embeddedSchema embed.FS

// menuTable is the only table owned by the cache.
const menuTable = "menu"

// schemaDDL returns the CREATE TABLE IF NOT EXISTS statement for d.
func schemaDDL(d Dialect) (string, error) {
	data, err := embeddedSchema.ReadFile(fmt.Sprintf("schema/%s.sql", d))
	if err != nil {
		return "", fmt.Errorf("no embedded schema for %s: %w", d, err)
	}
	return string(data), nil
}

// EnsureSchema creates the menu table if it does not exist yet. It is safe
// to call on every startup.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	if s.isClosed() {
		return ErrClosed
	}
	start := time.Now()
	ddl, err := schemaDDL(s.dialect)
	if err != nil {
		return err
	}
	if _, err := ExecRaw(ctx, s.bun, ddl); err != nil {
		return fmt.Errorf("failed to create %s table: %w", menuTable, err)
	}
	dbLogf("db: schema for %s ensured in %s", s.dialect, time.Since(start))
	return nil
}

// EnsureSchema is a no-op: the flat store has no schema.
func (s *FlatStore) EnsureSchema(ctx context.Context) error {
	if s.isClosed() {
		return ErrClosed
	}
	return nil
}
