// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML(t *testing.T) {
	m := map[string]interface{}{
		"menu": map[string]interface{}{"empty": "x", "refresh": map[string]interface{}{"short": "y"}},
		"yes":  "yes",
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	for _, k := range []string{"menu.empty", "menu.refresh.short", "yes"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("expected %s in keys, got %v", k, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ui", "a.go"), `package ui
func f() { _ = i18n.T("menu.empty"); _ = i18n.T("menu.count", 3); _ = i18n.T("not.defined") }
`)
	writeFile(t, filepath.Join(root, "ui", "a_test.go"), `package ui
func g() { _ = i18n.T("test.only") }
`)
	writeFile(t, filepath.Join(root, "tools", "x.go"), `package x
func h() { _ = i18n.T("tool.only") }
`)
	locales := filepath.Join(root, "locales")
	writeFile(t, filepath.Join(locales, "en.yaml"), `"menu.empty": "No items"
"menu.count": "%d items"
"orphan": "unused"
`)
	writeFile(t, filepath.Join(locales, "de.yaml"), `"menu.empty": "Keine"
"orphan": "ungenutzt"
`)

	r, err := lint(root, locales, "en.yaml")
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(r.Undefined) != 1 {
		t.Fatalf("expected exactly not.defined undefined, got %v", r.Undefined)
	}
	if loc, ok := r.Undefined["not.defined"]; !ok || loc.Line != 2 {
		t.Fatalf("unexpected undefined location: %+v", r.Undefined)
	}
	if got := r.Missing["de.yaml"]; len(got) != 1 || got[0] != "menu.count" {
		t.Fatalf("expected menu.count missing from de.yaml, got %v", r.Missing)
	}
	if len(r.Orphaned) != 1 || r.Orphaned[0] != "orphan" {
		t.Fatalf("expected orphan reported, got %v", r.Orphaned)
	}
	if !r.failed() {
		t.Fatalf("expected report to fail")
	}

	var buf bytes.Buffer
	printReport(&buf, r)
	for _, want := range []string{"Undefined: not.defined", "Missing in de.yaml: menu.count", "Orphaned: orphan", "❌"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in report:\n%s", want, buf.String())
		}
	}
}

// The shipped locales must be consistent with the code.
func TestLint_Repository(t *testing.T) {
	root := filepath.Join("..", "..")
	r, err := lint(root, filepath.Join(root, localesDir), primaryLocale)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if r.failed() {
		var buf bytes.Buffer
		printReport(&buf, r)
		t.Fatalf("repository locales are inconsistent:\n%s", buf.String())
	}
}
