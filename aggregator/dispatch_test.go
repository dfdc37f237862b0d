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
	"math"
	"testing"

	"github.com/rulego/colprofile/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStats = []Stat{StatMean, StatMin, StatMax, StatMedian, StatStd}

func numericColumns() []column.Column {
	return []column.Column{
		column.NewNumeric("u8", []uint8{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("u16", []uint16{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("u32", []uint32{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("u64", []uint64{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("i8", []int8{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("i16", []int16{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("i32", []int32{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("i64", []int64{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("f32", []float32{1, 2, 3, 4, 5}, nil),
		column.NewNumeric("f64", []float64{1, 2, 3, 4, 5}, nil),
	}
}

func TestDispatchAllNumericTypes(t *testing.T) {
	want := map[Stat]float64{
		StatMean:   3,
		StatMin:    1,
		StatMax:    5,
		StatMedian: 3,
		StatStd:    math.Sqrt2,
	}
	for _, col := range numericColumns() {
		t.Run(col.Name(), func(t *testing.T) {
			for stat, w := range want {
				got, ok := Dispatch(col, stat)
				require.True(t, ok, stat)
				assert.InDelta(t, w, got, 1e-12, stat)
			}
		})
	}
}

func TestDispatchUnsupported(t *testing.T) {
	cols := []column.Column{
		column.NewUtf8("s", []string{"a"}, nil),
		column.NewStruct("st", []column.Column{column.NewNumeric("x", []int64{1}, nil)}, nil),
	}
	for _, col := range cols {
		for _, stat := range allStats {
			_, ok := Dispatch(col, stat)
			assert.False(t, ok)
		}
		_, ok := Summarize(col)
		assert.False(t, ok)
	}
}

func TestDispatchNegativeSigned(t *testing.T) {
	col := column.NewNumeric("i8", []int8{-128, 0, 127}, nil)
	minV, ok := Dispatch(col, StatMin)
	require.True(t, ok)
	assert.Equal(t, -128.0, minV)
	maxV, _ := Dispatch(col, StatMax)
	assert.Equal(t, 127.0, maxV)
	median, _ := Dispatch(col, StatMedian)
	assert.Equal(t, 0.0, median)
}

func TestSummarizeNulls(t *testing.T) {
	t.Run("partially null", func(t *testing.T) {
		col := column.NewNumeric("a", []int64{0, 0, 5}, column.NewNulls(0, 1))
		s, ok := Summarize(col)
		require.True(t, ok)
		require.True(t, s.Valid())
		assert.Equal(t, 1, s.Count)
		assert.Equal(t, 5.0, s.Mean)
		assert.Equal(t, 5.0, s.Min)
		assert.Equal(t, 5.0, s.Max)
		assert.Equal(t, 5.0, s.Median)
		assert.Equal(t, 0.0, s.Std)
	})

	t.Run("all null", func(t *testing.T) {
		col := column.NewNumeric("a", []float64{1, 2}, column.NewNulls(0, 1))
		s, ok := Summarize(col)
		require.True(t, ok)
		assert.False(t, s.Valid())
		for _, stat := range allStats {
			_, ok := s.Get(stat)
			assert.False(t, ok)
			_, ok = Dispatch(col, stat)
			assert.False(t, ok)
		}
	})

	t.Run("empty", func(t *testing.T) {
		s, ok := Summarize(column.NewNumeric[int32]("a", nil, nil))
		require.True(t, ok)
		assert.False(t, s.Valid())
	})
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{7}, 7},
		{"odd unsorted", []float64{5, 1, 3}, 3},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"duplicates", []float64{2, 2, 2, 9}, 2},
		{"large even", []float64{math.MaxFloat64, math.MaxFloat64}, math.MaxFloat64},
		{"large opposite", []float64{-math.MaxFloat64, math.MaxFloat64}, 0},
		{"smallest subnormal", []float64{math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64}, math.SmallestNonzeroFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Median(tt.values)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	values := []float64{3, 1, 2}
	_, _ = Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values, "input must not be reordered")

	_, ok := Median(nil)
	assert.False(t, ok)
}

func TestStdIsPopulation(t *testing.T) {
	got, ok := Std([]float64{1, 2, 3, 4})
	require.True(t, ok)
	assert.InDelta(t, 1.118033988749895, got, 1e-12)
}

func TestSummaryOrdering(t *testing.T) {
	inputs := [][]float64{
		{1e14, 1e14 + 499, 1e14 + 3},
		{-5, 0, 100, 7, 7},
		{0.1, 0.2, 0.3},
	}
	for _, values := range inputs {
		s := SummarizeValues(values)
		assert.LessOrEqual(t, s.Min, s.Median)
		assert.LessOrEqual(t, s.Median, s.Max)
		assert.LessOrEqual(t, s.Min, s.Mean)
		assert.LessOrEqual(t, s.Mean, s.Max)
	}
}

func TestParseStat(t *testing.T) {
	for name, want := range map[string]Stat{
		"min": StatMin, "MAX": StatMax, "avg": StatMean, "mean": StatMean,
		"median": StatMedian, "stddev": StatStd, "std": StatStd,
	} {
		got, err := ParseStat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseStat("mode")
	assert.Error(t, err)
}
