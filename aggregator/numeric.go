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
	"sort"
)

// Min returns the smallest value, or false for an empty slice.
func Min(values []float64) (float64, bool) {
	acc := NewAccumulator()
	acc.AddAll(values)
	return acc.Min()
}

// Max returns the largest value, or false for an empty slice.
func Max(values []float64) (float64, bool) {
	acc := NewAccumulator()
	acc.AddAll(values)
	return acc.Max()
}

// Mean returns the arithmetic mean, or false for an empty slice.
func Mean(values []float64) (float64, bool) {
	acc := NewAccumulator()
	acc.AddAll(values)
	return acc.Mean()
}

// Std returns the population standard deviation, or false for an empty slice.
func Std(values []float64) (float64, bool) {
	acc := NewAccumulator()
	acc.AddAll(values)
	return acc.Std()
}

// Median sorts a copy of values and returns the middle element, or the mean of
// the two middle elements for an even count.
func Median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return midpoint(sorted[mid-1], sorted[mid]), true
	}
	return sorted[mid], true
}

// midpoint averages lo <= hi without overflowing and stays within [lo, hi].
func midpoint(lo, hi float64) float64 {
	m := (lo + hi) / 2
	if math.IsInf(m, 0) && !math.IsInf(lo, 0) && !math.IsInf(hi, 0) {
		m = lo/2 + hi/2
	}
	if m < lo {
		m = lo
	}
	if m > hi {
		m = hi
	}
	return m
}

// Compute evaluates one statistic over values.
func Compute(stat Stat, values []float64) (float64, bool) {
	switch stat {
	case StatMin:
		return Min(values)
	case StatMax:
		return Max(values)
	case StatMean:
		return Mean(values)
	case StatMedian:
		return Median(values)
	case StatStd:
		return Std(values)
	}
	return 0, false
}
