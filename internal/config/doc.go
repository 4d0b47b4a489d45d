// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the Little Lemon configuration with viper from
// defaults, littlelemon.yaml, LITTLELEMON_* environment variables and cobra
// flags, and writes it back as yaml.
package config
