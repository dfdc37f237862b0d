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

import (
	"math"
	"testing"

	"github.com/rulego/colprofile/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestDataTypeOf(t *testing.T) {
	tests := []struct {
		name string
		got  types.DataType
		want types.DataType
	}{
		{"uint8", DataTypeOf[uint8](), types.UInt8},
		{"uint16", DataTypeOf[uint16](), types.UInt16},
		{"uint32", DataTypeOf[uint32](), types.UInt32},
		{"uint64", DataTypeOf[uint64](), types.UInt64},
		{"int8", DataTypeOf[int8](), types.Int8},
		{"int16", DataTypeOf[int16](), types.Int16},
		{"int32", DataTypeOf[int32](), types.Int32},
		{"int64", DataTypeOf[int64](), types.Int64},
		{"float32", DataTypeOf[float32](), types.Float32},
		{"float64", DataTypeOf[float64](), types.Float64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestNulls(t *testing.T) {
	var empty *Nulls
	assert.False(t, empty.Contains(0))
	assert.False(t, empty.Any())
	assert.Equal(t, 0, empty.Count())
	assert.Nil(t, empty.Clone())
	assert.Equal(t, "[]", empty.String())

	n := NewNulls(1, 3, 7)
	assert.True(t, n.Any())
	assert.True(t, n.Contains(3))
	assert.False(t, n.Contains(2))
	assert.False(t, n.Contains(-1))
	assert.Equal(t, 3, n.Count())
	assert.Equal(t, 2, n.CountBelow(7))
	assert.Equal(t, 3, n.CountBelow(8))
	assert.Equal(t, 0, n.CountBelow(0))

	c := n.Clone()
	c.Add(9)
	assert.Equal(t, 3, n.Count())
	assert.Equal(t, 4, c.Count())
}

func TestNumericColumn(t *testing.T) {
	col := NewNumericFromPtrs("a", []*int32{nil, ptr(int32(-2)), nil, ptr(int32(5))})
	assert.Equal(t, "a", col.Name())
	assert.Equal(t, types.Int32, col.DataType())
	assert.Equal(t, 4, col.Len())
	assert.Equal(t, 2, col.NullCount())
	assert.True(t, col.IsNull(0))
	assert.False(t, col.IsNull(1))

	v, ok := col.Value(1)
	assert.True(t, ok)
	assert.Equal(t, int32(-2), v)
	_, ok = col.Value(2)
	assert.False(t, ok)
	_, ok = col.Value(10)
	assert.False(t, ok)

	assert.Equal(t, []float64{-2, 5}, col.Float64s())
}

func TestWiden(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		assert.Equal(t, []float64{255, 0}, Widen([]uint8{255, 0}, nil))
	})
	t.Run("signed", func(t *testing.T) {
		assert.Equal(t, []float64{-128, 127}, Widen([]int8{-128, 127}, nil))
	})
	t.Run("float32", func(t *testing.T) {
		got := Widen([]float32{0.5, 1.25}, nil)
		assert.Equal(t, []float64{0.5, 1.25}, got)
	})
	t.Run("large uint64 loses precision", func(t *testing.T) {
		got := Widen([]uint64{math.MaxUint64}, nil)
		assert.Equal(t, float64(math.MaxUint64), got[0])
	})
	t.Run("nulls skipped", func(t *testing.T) {
		assert.Equal(t, []float64{2}, Widen([]int64{1, 2, 3}, NewNulls(0, 2)))
	})
	t.Run("all null", func(t *testing.T) {
		assert.Empty(t, Widen([]int64{1, 2}, NewNulls(0, 1)))
	})
}

func TestNullsBeyondLengthNotCounted(t *testing.T) {
	col := NewNumeric("a", []int64{1, 2}, NewNulls(1, 5))
	assert.Equal(t, 1, col.NullCount())
}

func TestUtf8Column(t *testing.T) {
	col := NewUtf8FromPtrs("s", []*string{ptr("x"), nil, ptr("héllo")})
	assert.Equal(t, types.String, col.DataType())
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 1, col.NullCount())

	var seen []string
	col.Each(func(i int, v string) {
		seen = append(seen, v)
	})
	assert.Equal(t, []string{"x", "héllo"}, seen)

	_, ok := col.Value(1)
	assert.False(t, ok)
}

func TestStructColumn(t *testing.T) {
	child := NewNumeric("x", []int64{1, 2, 3}, nil)
	col := NewStruct("nested", []Column{child}, NewNulls(2))
	assert.Equal(t, types.Struct, col.DataType())
	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 1, col.NullCount())
	assert.Len(t, col.Fields(), 1)
	assert.Equal(t, 0, NewStruct("empty", nil, nil).Len())
}

func TestFromValues(t *testing.T) {
	t.Run("int with nulls", func(t *testing.T) {
		col, err := FromValues("n", types.Int64, []interface{}{1, nil, "3", 4.0})
		require.NoError(t, err)
		assert.Equal(t, types.Int64, col.DataType())
		assert.Equal(t, 1, col.NullCount())
		assert.Equal(t, []float64{1, 3, 4}, col.(Float64Source).Float64s())
	})

	t.Run("float32", func(t *testing.T) {
		col, err := FromValues("f", types.Float32, []interface{}{1.5, "2.5"})
		require.NoError(t, err)
		assert.Equal(t, types.Float32, col.DataType())
	})

	t.Run("string", func(t *testing.T) {
		col, err := FromValues("s", types.String, []interface{}{"a", 12, nil})
		require.NoError(t, err)
		u := col.(*Utf8)
		v, ok := u.Value(1)
		assert.True(t, ok)
		assert.Equal(t, "12", v)
		assert.Equal(t, 1, u.NullCount())
	})

	t.Run("conversion error names row", func(t *testing.T) {
		_, err := FromValues("n", types.Int32, []interface{}{1, "abc"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `column "n" row 1`)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := FromValues("s", types.Struct, []interface{}{1})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestFromRows(t *testing.T) {
	rows := []map[string]interface{}{
		{"id": 1, "name": "a"},
		{"id": 2},
	}
	cols, err := FromRows(rows, []types.Field{
		{Name: "id", Type: types.UInt32},
		{Name: "name", Type: types.String},
	})
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "id", cols[0].Name())
	assert.Equal(t, 0, cols[0].NullCount())
	assert.Equal(t, 1, cols[1].NullCount())
}
