// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Command littlelemon is the installable entrypoint:
//
//	go install github.com/toeirei/littlelemon/cmd/littlelemon@latest
package main

import (
	"os"

	"github.com/toeirei/littlelemon/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
