// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db is the local menu cache of Little Lemon.
//
// Two interchangeable backends implement the same Store contract:
//
//   - SQLStore keeps the menu in a single relational table, using Bun on top
//     of database/sql. SQLite (modernc.org/sqlite) is the embedded default;
//     PostgreSQL (pgx) and MySQL are supported for shared deployments.
//   - FlatStore keeps the menu as one JSON array under a fixed key of a
//     kv.Store, for hosts without an embedded relational engine.
//
// OpenStore picks the backend from a host capability flag. Callers should
// depend only on Store; which variant is active is an implementation detail.
//
// Query semantics
//   - An empty Criteria returns every cached item in stored order.
//   - Search is a case-insensitive literal substring match against name or
//     description. Category is set membership. Both together are ANDed.
//   - SQLStore pushes the predicates into one parameterized statement;
//     FlatStore applies FilterItems in memory. Both must return the same set
//     for the same cache contents.
//
// Testing notes
//   - Use a "file:<name>?mode=memory&cache=shared" DSN for SQLite tests that
//     need real SQL semantics without touching disk.
//   - Postgres and MySQL equivalence tests run only when POSTGRES_DSN or
//     MYSQL_DSN is set.
package db
