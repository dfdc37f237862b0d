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

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]interface{}{
		{"column": "id", "mean": 3.5, "extra": 1},
		{"column": "name", "mean": nil},
	}
	require.NoError(t, Render(&buf, rows, []string{"column", "mean"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "+--------+------+-------+", lines[0])
	assert.Equal(t, "| column | mean | extra |", lines[1])
	assert.Equal(t, "| id     | 3.5  | 1     |", lines[3])
	assert.Equal(t, "| name   | null |       |", lines[4])
	assert.Equal(t, "(2 rows)", lines[6])
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, nil))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestRenderUnicodeWidth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []map[string]interface{}{{"name": "日本語日本語"}}, nil))
	assert.Contains(t, buf.String(), "| 日本語日本語 |")
}
