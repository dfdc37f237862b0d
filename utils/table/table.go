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

// Package table renders row maps as an ASCII table.
package table

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// minWidth is the narrowest a column is drawn.
const minWidth = 4

// Render writes rows as a table. Columns follow fieldOrder; keys that are not
// listed are appended in sorted order. nil values are shown as null.
func Render(w io.Writer, rows []map[string]interface{}, fieldOrder []string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	columns := orderColumns(rows, fieldOrder)
	cells := make([][]string, len(rows))
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = max(len(col), minWidth)
	}
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for i, col := range columns {
			v, ok := row[col]
			if !ok {
				continue
			}
			s := formatValue(v)
			cells[r][i] = s
			widths[i] = max(widths[i], len([]rune(s)))
		}
	}

	var sb strings.Builder
	writeBorder(&sb, widths)
	writeRow(&sb, columns, widths)
	writeBorder(&sb, widths)
	for _, row := range cells {
		writeRow(&sb, row, widths)
	}
	writeBorder(&sb, widths)
	fmt.Fprintf(&sb, "(%d rows)\n", len(rows))
	_, err := io.WriteString(w, sb.String())
	return err
}

func orderColumns(rows []map[string]interface{}, fieldOrder []string) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for col := range row {
			seen[col] = true
		}
	}
	columns := make([]string, 0, len(seen))
	for _, f := range fieldOrder {
		if seen[f] {
			columns = append(columns, f)
			delete(seen, f)
		}
	}
	rest := make([]string, 0, len(seen))
	for col := range seen {
		rest = append(rest, col)
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func formatValue(v interface{}) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}

func writeBorder(sb *strings.Builder, widths []int) {
	sb.WriteString("+")
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, values []string, widths []int) {
	sb.WriteString("|")
	for i, v := range values {
		pad := widths[i] - len([]rune(v))
		sb.WriteString(" ")
		sb.WriteString(v)
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
