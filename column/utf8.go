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

package column

import "github.com/rulego/colprofile/types"

// Utf8 is a column of text values.
type Utf8 struct {
	name   string
	values []string
	nulls  *Nulls
}

// NewUtf8 creates a text column. nulls may be nil.
func NewUtf8(name string, values []string, nulls *Nulls) *Utf8 {
	return &Utf8{name: name, values: values, nulls: nulls}
}

// NewUtf8FromPtrs creates a text column where nil entries are null.
func NewUtf8FromPtrs(name string, values []*string) *Utf8 {
	data := make([]string, len(values))
	var nulls *Nulls
	for i, v := range values {
		if v == nil {
			if nulls == nil {
				nulls = NewNulls()
			}
			nulls.Add(i)
			continue
		}
		data[i] = *v
	}
	return NewUtf8(name, data, nulls)
}

func (c *Utf8) Name() string {
	return c.name
}

func (c *Utf8) DataType() types.DataType {
	return types.String
}

func (c *Utf8) Len() int {
	return len(c.values)
}

func (c *Utf8) NullCount() int {
	return c.nulls.CountBelow(len(c.values))
}

func (c *Utf8) IsNull(i int) bool {
	return c.nulls.Contains(i)
}

// Value returns row i and false when it is null or out of range.
func (c *Utf8) Value(i int) (string, bool) {
	if i < 0 || i >= len(c.values) || c.nulls.Contains(i) {
		return "", false
	}
	return c.values[i], true
}

// Each calls fn for every non-null value in row order.
func (c *Utf8) Each(fn func(i int, v string)) {
	for i, v := range c.values {
		if c.nulls.Contains(i) {
			continue
		}
		fn(i, v)
	}
}
