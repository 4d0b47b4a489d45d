// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the CLI translations for consistency. It scans the Go
// sources for i18n.T("id") calls and compares them against the yaml locale
// files:
//   - an id used in code but absent from the primary locale is an error;
//   - an id of the primary locale missing from another locale is an error;
//   - an id in the primary locale that no code uses is reported as orphaned.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

// report is the outcome of one lint run.
type report struct {
	Undefined map[string]Location // used in code, not in the primary locale
	Missing   map[string][]string // locale file -> ids absent from it
	Orphaned  []string
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

var usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func main() {
	fmt.Println("🔍 Running i18n linter...")
	r, err := lint(projectRoot, filepath.Join(projectRoot, localesDir), primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales, primary string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("finding used keys: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primary))
	if err != nil {
		return report{}, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}

	r := report{Undefined: map[string]Location{}, Missing: map[string][]string{}}
	for key, loc := range used {
		if _, ok := primaryKeys[key]; !ok {
			r.Undefined[key] = loc
		}
	}
	for key := range primaryKeys {
		if _, ok := used[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for key := range primaryKeys {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

func printReport(w io.Writer, r report) {
	fmt.Fprintln(w, "--- Keys used in code but not defined ---")
	if len(r.Undefined) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}
	undefined := make([]string, 0, len(r.Undefined))
	for k := range r.Undefined {
		undefined = append(undefined, k)
	}
	sort.Strings(undefined)
	for _, k := range undefined {
		loc := r.Undefined[k]
		fmt.Fprintf(w, "  - Undefined: %s (%s:%d)\n", k, loc.Filepath, loc.Line)
	}

	fmt.Fprintln(w, "\n--- Keys missing from secondary locales ---")
	if len(r.Missing) == 0 {
		fmt.Fprintln(w, "  ✨ All keys present.")
	}
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		for _, k := range r.Missing[f] {
			fmt.Fprintf(w, "  - Missing in %s: %s\n", f, k)
		}
	}

	fmt.Fprintln(w, "\n--- Orphaned keys ---")
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}
	for _, k := range r.Orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", k)
	}

	fmt.Fprintln(w, "\n--- Linter Finished ---")
	switch {
	case r.failed():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// findUsedKeys scans non-test .go files outside tools/ for i18n.T("id")
// calls and returns the first location of each id.
func findUsedKeys(root string) (map[string]Location, error) {
	keys := make(map[string]Location)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range usedKeyRe.FindAllStringSubmatch(line, -1) {
				if _, seen := keys[m[1]]; !seen {
					keys[m[1]] = Location{Filepath: path, Line: i + 1}
				}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a yaml locale and returns its message ids.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts nested maps into dot-separated ids.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
