// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"database/sql"
	"database/sql/driver"
	"strconv"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers for the supported dialects.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteLower is a strings.ToLower fold registered with every SQLite
// connection. SQLite's built-in LOWER only folds ASCII.
const sqliteLower = "ll_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteLower, 1, func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case nil:
			return nil, nil
		case string:
			return strings.ToLower(v), nil
		case []byte:
			return strings.ToLower(string(v)), nil
		default:
			return v, nil
		}
	})
}

// Dialect names a supported relational engine.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

// ParseDialect maps a configuration value to a Dialect. An empty value
// selects SQLite.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	case "mysql", "mariadb":
		return DialectMySQL, nil
	default:
		return "", &UnsupportedDialectError{Dialect: s}
	}
}

// driverName returns the database/sql driver registered for d.
// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
func (d Dialect) driverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return string(d)
}

// placeholder returns the bind parameter marker for the n-th (1-based)
// argument of a statement.
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// lowerExpr returns SQL that folds col the same way strings.ToLower does.
// MySQL comparisons are forced to a binary collation; the default
// utf8mb4 collations are accent-insensitive and would match "e" to "é".
func (d Dialect) lowerExpr(col string) string {
	switch d {
	case DialectSQLite:
		return sqliteLower + "(" + col + ")"
	case DialectMySQL:
		return "LOWER(" + col + ") COLLATE utf8mb4_bin"
	default:
		return "LOWER(" + col + ")"
	}
}

// exactExpr returns col prepared for a case-sensitive equality test.
func (d Dialect) exactExpr(col string) string {
	if d == DialectMySQL {
		return col + " COLLATE utf8mb4_bin"
	}
	return col
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dialect.
// Centralizing construction makes it easier to apply consistent options
// and to test Bun initialization in one place.
func createBunDB(sqlDB *sql.DB, d Dialect) *bun.DB {
	switch d {
	case DialectPostgres:
		return bun.NewDB(sqlDB, pgdialect.New())
	case DialectMySQL:
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}
