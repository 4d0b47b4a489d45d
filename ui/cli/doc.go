// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Little Lemon using
// Cobra. It wires configuration and the default services and provides
// commands that delegate to the menu and profile packages. CLI code should
// remain thin.
package cli
