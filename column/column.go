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

// Package column provides typed, nullable columns that the profiler consumes.
//
// Numeric columns are generic over the element type; the declared DataType is
// derived from the type parameter. String columns hold UTF-8 text. Struct
// columns exist so that nested data can be passed through; they are never profiled.
package column

import (
	"errors"

	"github.com/rulego/colprofile/types"
)

// ErrUnsupportedType is returned when a column cannot be built for a data type.
var ErrUnsupportedType = errors.New("unsupported column type")

// Column is a named, typed sequence of nullable values.
type Column interface {
	// Name is the column identifier. It need not be unique.
	Name() string
	// DataType is the declared element type.
	DataType() types.DataType
	// Len is the number of rows, nulls included.
	Len() int
	// NullCount is the number of null rows.
	NullCount() int
	// IsNull reports whether row i is null.
	IsNull(i int) bool
}

// Float64Source is implemented by numeric columns. Float64s returns the
// non-null values widened to float64, in row order.
type Float64Source interface {
	Column
	Float64s() []float64
}

// Number is the set of element types a numeric column can hold.
type Number interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// DataTypeOf returns the DataType tag matching T.
func DataTypeOf[T Number]() types.DataType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return types.UInt8
	case uint16:
		return types.UInt16
	case uint32:
		return types.UInt32
	case uint64:
		return types.UInt64
	case int8:
		return types.Int8
	case int16:
		return types.Int16
	case int32:
		return types.Int32
	case int64:
		return types.Int64
	case float32:
		return types.Float32
	case float64:
		return types.Float64
	}
	return types.Unknown
}

// Widen converts the non-null entries of values to float64. Integers above
// 2^53 lose precision.
func Widen[T Number](values []T, nulls *Nulls) []float64 {
	out := make([]float64, 0, len(values)-nulls.CountBelow(len(values)))
	for i, v := range values {
		if nulls.Contains(i) {
			continue
		}
		out = append(out, float64(v))
	}
	return out
}
