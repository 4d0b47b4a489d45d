// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Little Lemon.
//
// Usage:
//
//	go run . [flags]
//	./littlelemon menu --search pasta --category mains
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/littlelemon/ui/cli"
)

func main() {
	// Execute reports the error itself.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
