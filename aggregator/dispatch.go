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
	"github.com/rulego/colprofile/column"
)

// NumericSummary holds the statistics of a numeric column. When Count is zero
// the column had no non-null values and every statistic is absent.
type NumericSummary struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Median float64
	Std    float64
}

// Valid reports whether the statistics are defined.
func (s NumericSummary) Valid() bool {
	return s.Count > 0
}

// Get returns one statistic, or false when the summary is empty.
func (s NumericSummary) Get(stat Stat) (float64, bool) {
	if !s.Valid() {
		return 0, false
	}
	switch stat {
	case StatMin:
		return s.Min, true
	case StatMax:
		return s.Max, true
	case StatMean:
		return s.Mean, true
	case StatMedian:
		return s.Median, true
	case StatStd:
		return s.Std, true
	}
	return 0, false
}

// numericValues returns the non-null values of col widened to float64.
// The second result is false when col is not one of the numeric types.
func numericValues(col column.Column) ([]float64, bool) {
	if !col.DataType().IsNumeric() {
		return nil, false
	}
	src, ok := col.(column.Float64Source)
	if !ok {
		return nil, false
	}
	return src.Float64s(), true
}

// Dispatch computes stat for col. It returns false for non-numeric columns and
// for numeric columns without any non-null value.
func Dispatch(col column.Column, stat Stat) (float64, bool) {
	values, ok := numericValues(col)
	if !ok {
		return 0, false
	}
	return Compute(stat, values)
}

// Summarize computes every numeric statistic of col from a single widened
// buffer. The second result is false when col is not numeric.
func Summarize(col column.Column) (NumericSummary, bool) {
	values, ok := numericValues(col)
	if !ok {
		return NumericSummary{}, false
	}
	return SummarizeValues(values), true
}

// SummarizeValues computes every numeric statistic of values.
func SummarizeValues(values []float64) NumericSummary {
	acc := NewAccumulator()
	acc.AddAll(values)
	if acc.Count() == 0 {
		return NumericSummary{}
	}
	s := NumericSummary{Count: acc.Count()}
	s.Mean, _ = acc.Mean()
	s.Min, _ = acc.Min()
	s.Max, _ = acc.Max()
	s.Std, _ = acc.Std()
	s.Median, _ = Median(values)
	return s
}
