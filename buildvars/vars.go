// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Set at link time, e.g.
// -ldflags "-X github.com/toeirei/littlelemon/buildvars.Version=v1.0.0".
// They are empty for local or development builds.
var (
	Version string
	Commit  string
	Date    string
)

// VersionOrDefault returns Version if set, otherwise def.
func VersionOrDefault(def string) string {
	return orDefault(Version, def)
}

// CommitOrDefault returns Commit if set, otherwise def.
func CommitOrDefault(def string) string {
	return orDefault(Commit, def)
}

func orDefault(v, def string) string {
	if len(v) > 0 {
		return v
	}
	return def
}
