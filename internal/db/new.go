// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "context"

// New opens the relational backend directly and reports failures instead of
// falling back. Maintenance commands and tests use it when a silent switch
// to the flat store would hide a misconfiguration.
func New(ctx context.Context, dialect, dsn string) (*SQLStore, error) {
	d, err := ParseDialect(dialect)
	if err != nil {
		return nil, err
	}
	return openRelational(ctx, d, dsn)
}
