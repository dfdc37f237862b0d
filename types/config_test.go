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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 1, cfg.Parallelism)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Checks)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
parallelism = 4

[[checks]]
name = "no_nulls"
expression = "count_null == 0"

[[checks]]
name = "short_names"
expression = "max_length <= 32"
columns = ["name", "slug"]
`)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Parallelism)
	// untouched keys keep their defaults
	assert.Equal(t, "info", cfg.LogLevel)
	require.Len(t, cfg.Checks, 2)
	assert.Equal(t, Check{Name: "no_nulls", Expression: "count_null == 0"}, cfg.Checks[0])
	assert.Equal(t, []string{"name", "slug"}, cfg.Checks[1].Columns)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", `parallelism = `},
		{"wrong type", `parallelism = "four"`},
		{"negative parallelism", `parallelism = -1`},
		{"missing name", "[[checks]]\nexpression = \"count > 0\""},
		{"missing expression", "[[checks]]\nname = \"a\""},
		{"duplicate name", "[[checks]]\nname = \"a\"\nexpression = \"count > 0\"\n[[checks]]\nname = \"a\"\nexpression = \"count > 1\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colprofile.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Parallelism)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCheckAppliesTo(t *testing.T) {
	all := Check{Name: "all", Expression: "true"}
	assert.True(t, all.AppliesTo("anything"))

	some := Check{Name: "some", Expression: "true", Columns: []string{"a", "b"}}
	assert.True(t, some.AppliesTo("b"))
	assert.False(t, some.AppliesTo("c"))
}
