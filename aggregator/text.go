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

package aggregator

import (
	"unicode/utf8"

	"github.com/rulego/colprofile/column"
	"github.com/rulego/colprofile/types"
)

// TextSource is implemented by text columns.
type TextSource interface {
	column.Column
	Each(fn func(i int, v string))
}

// LengthSummary holds the character length statistics of a text column.
type LengthSummary struct {
	Count uint32
	Mean  uint32
	Min   uint32
	Max   uint32
}

// LengthStats measures each non-null value in characters. The mean is the
// truncated integer mean over non-null values. A column without non-null values
// reports zero for all three statistics rather than absent. The second result
// is false when col is not a text column.
func LengthStats(col column.Column) (LengthSummary, bool) {
	if col.DataType() != types.String {
		return LengthSummary{}, false
	}
	src, ok := col.(TextSource)
	if !ok {
		return LengthSummary{}, false
	}
	var (
		s     LengthSummary
		total uint64
	)
	src.Each(func(_ int, v string) {
		n := uint32(utf8.RuneCountInString(v))
		if s.Count == 0 || n < s.Min {
			s.Min = n
		}
		if s.Count == 0 || n > s.Max {
			s.Max = n
		}
		total += uint64(n)
		s.Count++
	})
	if s.Count > 0 {
		s.Mean = uint32(total / uint64(s.Count))
	}
	return s, true
}
