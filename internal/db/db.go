// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db // import "github.com/toeirei/littlelemon/internal/db"

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/toeirei/littlelemon/internal/kv"
	"github.com/toeirei/littlelemon/internal/logging"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// Capabilities describes what the host environment can run.
type Capabilities struct {
	// Relational reports whether an embedded relational engine is usable.
	Relational bool
}

// Options configures OpenStore.
type Options struct {
	Caps Capabilities
	// Dialect and DSN select the relational engine. Ignored when
	// Caps.Relational is false.
	Dialect Dialect
	DSN     string
	// Flat is the namespace used by the flat backend. A fresh in-memory
	// namespace is used when nil.
	Flat kv.Store
}

// OpenStore selects and opens the menu backend. It never fails: when the
// host has no relational engine, or the engine cannot be opened, the flat
// backend is returned instead.
func OpenStore(ctx context.Context, opts Options) Store {
	if opts.Caps.Relational {
		s, err := openRelational(ctx, opts.Dialect, opts.DSN)
		if err == nil {
			return s
		}
		logging.Warnf("relational backend unavailable, falling back to flat store: %v", err)
	}
	ns := opts.Flat
	if ns == nil {
		ns = kv.NewMemoryStore()
	}
	dbLogf("db: using flat store")
	return NewFlatStore(ns)
}

// openRelational opens a sql.DB for the dialect and DSN, verifies the
// connection and returns an SQLStore backed by a long-lived *bun.DB.
func openRelational(ctx context.Context, d Dialect, dsn string) (*SQLStore, error) {
	if d == "" {
		d = DialectSQLite
	}
	if _, err := ParseDialect(string(d)); err != nil {
		return nil, err
	}
	if dsn == "" {
		return nil, fmt.Errorf("empty DSN for %s", d)
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(d.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure DB connection pool with sensible defaults. Values can be
	// overridden via environment variables for CI or production tuning.
	const (
		defaultMaxOpenConns    = 4
		defaultMaxIdleConns    = 4
		defaultConnMaxLifetime = 5 * time.Minute
	)
	maxOpen := envInt("LITTLELEMON_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("LITTLELEMON_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)

	// For in-memory SQLite databases force a single open connection: every
	// connection to ":memory:" gets its own private database, so a pool
	// would make the schema invisible to the next query.
	if d == DialectSQLite && isPrivateMemoryDSN(dsn) {
		maxOpen = 1
		maxIdle = 1
	}
	connMax := time.Duration(envInt("LITTLELEMON_DB_CONN_MAX_LIFETIME_SECONDS", int(defaultConnMaxLifetime/time.Second))) * time.Second

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMax)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", d, err)
	}
	dbLogf("db: opened %s driver in %s (conn max open=%d, maxLifetime=%s)", d.driverName(), time.Since(start), maxOpen, connMax)

	return &SQLStore{db: sqlDB, bun: createBunDB(sqlDB, d), dialect: d}, nil
}

func isPrivateMemoryDSN(dsn string) bool {
	if dsn == ":memory:" {
		return true
	}
	return strings.Contains(dsn, "mode=memory") && !strings.Contains(dsn, "cache=shared")
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
