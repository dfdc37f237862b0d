/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config profiling configuration
type Config struct {
	// Parallelism is the number of columns profiled concurrently. Values <= 1 run serially.
	Parallelism int `json:"parallelism" toml:"parallelism"`
	// LogLevel one of debug, info, warn, error, off
	LogLevel string `json:"logLevel" toml:"log_level"`
	// Checks are evaluated against every record after profiling
	Checks []Check `json:"checks" toml:"checks"`
}

// Check is a named boolean expression over the fields of a ProfileRecord,
// e.g. `count_null == 0` or `min_length > 0`.
type Check struct {
	Name       string `json:"name" toml:"name"`
	Expression string `json:"expression" toml:"expression"`
	// Columns restricts the check to the named columns. Empty means all columns.
	Columns []string `json:"columns" toml:"columns"`
}

// NewConfig returns the default configuration.
func NewConfig() Config {
	return Config{
		Parallelism: 1,
		LogLevel:    "info",
	}
}

// ParseConfig decodes a TOML document on top of the defaults.
func ParseConfig(data string) (Config, error) {
	cfg := NewConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads a TOML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism)
	}
	seen := make(map[string]struct{}, len(c.Checks))
	for i, chk := range c.Checks {
		if chk.Name == "" {
			return fmt.Errorf("check %d: name is required", i)
		}
		if chk.Expression == "" {
			return fmt.Errorf("check %s: expression is required", chk.Name)
		}
		if _, ok := seen[chk.Name]; ok {
			return fmt.Errorf("check %s: duplicate name", chk.Name)
		}
		seen[chk.Name] = struct{}{}
	}
	return nil
}

// AppliesTo reports whether the check targets the named column.
func (c Check) AppliesTo(column string) bool {
	if len(c.Columns) == 0 {
		return true
	}
	for _, name := range c.Columns {
		if name == column {
			return true
		}
	}
	return false
}
