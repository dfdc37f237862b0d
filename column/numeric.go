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

// Numeric is a column of integer or floating point values.
type Numeric[T Number] struct {
	name   string
	values []T
	nulls  *Nulls
}

// NewNumeric creates a numeric column. nulls may be nil.
// Values at null positions are ignored.
func NewNumeric[T Number](name string, values []T, nulls *Nulls) *Numeric[T] {
	return &Numeric[T]{name: name, values: values, nulls: nulls}
}

// NewNumericFromPtrs creates a numeric column where nil entries are null.
func NewNumericFromPtrs[T Number](name string, values []*T) *Numeric[T] {
	data := make([]T, len(values))
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
	return NewNumeric(name, data, nulls)
}

func (c *Numeric[T]) Name() string {
	return c.name
}

func (c *Numeric[T]) DataType() types.DataType {
	return DataTypeOf[T]()
}

func (c *Numeric[T]) Len() int {
	return len(c.values)
}

func (c *Numeric[T]) NullCount() int {
	return c.nulls.CountBelow(len(c.values))
}

func (c *Numeric[T]) IsNull(i int) bool {
	return c.nulls.Contains(i)
}

// Value returns row i and false when it is null or out of range.
func (c *Numeric[T]) Value(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.values) || c.nulls.Contains(i) {
		return zero, false
	}
	return c.values[i], true
}

func (c *Numeric[T]) Float64s() []float64 {
	return Widen(c.values, c.nulls)
}
