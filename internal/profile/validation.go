// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package profile

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ValidName reports whether name is non-blank and made of letters and spaces.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != "" && nameRe.MatchString(name)
}

// ValidEmail reports whether email looks like local@domain.tld.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// phoneDigits returns the decimal digits of s.
func phoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone formats the first ten digits of s as a US number,
// (XXX) XXX-XXXX, returning partial groups for shorter input.
func FormatPhone(s string) string {
	d := phoneDigits(s)
	if len(d) > 10 {
		d = d[:10]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return fmt.Sprintf("(%s) %s", d[:3], d[3:])
	default:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	}
}
