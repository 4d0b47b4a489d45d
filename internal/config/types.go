// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"strings"
	"time"

	"github.com/toeirei/littlelemon/internal/db"
	"github.com/toeirei/littlelemon/internal/remote"
)

// Platform values.
const (
	PlatformNative = "native"
	PlatformWeb    = "web"
)

// Storage backend choices.
const (
	BackendAuto       = "auto"
	BackendRelational = "relational"
	BackendFlat       = "flat"
)

// Config is the application configuration.
type Config struct {
	// Platform is "native" or "web". Web hosts have no embedded
	// relational engine.
	Platform string  `mapstructure:"platform" yaml:"platform"`
	Storage  Storage `mapstructure:"storage" yaml:"storage"`
	Remote   Remote  `mapstructure:"remote" yaml:"remote"`
	Language string  `mapstructure:"language" yaml:"language"`
}

type Storage struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Dialect string `mapstructure:"dialect" yaml:"dialect"`
	DSN     string `mapstructure:"dsn" yaml:"dsn"`
	// KVPath is the file holding the flat key-value namespace.
	KVPath   string `mapstructure:"kv_path" yaml:"kv_path"`
	Compress bool   `mapstructure:"compress" yaml:"compress"`
}

type Remote struct {
	URL string `mapstructure:"url" yaml:"url"`
	// Timeout bounds a menu download. Zero leaves it to the transport.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// DefaultSQLiteDSN is the database file used when the sqlite dialect has
// no DSN configured.
const DefaultSQLiteDSN = "./little_lemon.db"

// DefaultDSN returns the DSN used for dialect when none is configured.
// Server dialects have no sensible default and get "", which the store
// opener reports as a missing DSN.
func DefaultDSN(dialect string) string {
	if d, err := db.ParseDialect(dialect); err == nil && d == db.DialectSQLite {
		return DefaultSQLiteDSN
	}
	return ""
}

// Defaults returns the default value of every config key. storage.dsn is
// empty here and resolved per dialect by ApplyDefaults.
func Defaults() map[string]any {
	return map[string]any{
		"platform":         PlatformNative,
		"storage.backend":  BackendAuto,
		"storage.dialect":  string(db.DialectSQLite),
		"storage.dsn":      "",
		"storage.kv_path":  "./little_lemon.kv",
		"storage.compress": false,
		"remote.url":       remote.DefaultMenuURL,
		"remote.timeout":   "0s",
		"language":         "en",
	}
}

// ApplyDefaults fills empty string fields of c from Defaults. An empty DSN
// gets the default for the configured dialect.
func (c *Config) ApplyDefaults() {
	d := Defaults()
	fill := func(dst *string, key string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = d[key].(string)
		}
	}
	fill(&c.Platform, "platform")
	fill(&c.Storage.Backend, "storage.backend")
	fill(&c.Storage.Dialect, "storage.dialect")
	if strings.TrimSpace(c.Storage.DSN) == "" {
		c.Storage.DSN = DefaultDSN(c.Storage.Dialect)
	}
	fill(&c.Storage.KVPath, "storage.kv_path")
	fill(&c.Remote.URL, "remote.url")
	fill(&c.Language, "language")
}

// Capabilities derives the host capability flag that drives backend
// selection.
func Capabilities(c Config) db.Capabilities {
	switch strings.ToLower(strings.TrimSpace(c.Storage.Backend)) {
	case BackendRelational:
		return db.Capabilities{Relational: true}
	case BackendFlat:
		return db.Capabilities{Relational: false}
	default:
		return db.Capabilities{Relational: !strings.EqualFold(strings.TrimSpace(c.Platform), PlatformWeb)}
	}
}
