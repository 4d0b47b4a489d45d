// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by a Store after Close.
var ErrClosed = errors.New("db: store is closed")

// UnsupportedDialectError is returned for a dialect name with no driver.
type UnsupportedDialectError struct {
	Dialect string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported database dialect: '%s'", e.Dialect)
}
