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

import "math"

// Accumulator computes count, min, max, mean and population standard deviation
// incrementally. The sum is Neumaier-compensated and the variance term uses
// Welford's algorithm.
type Accumulator struct {
	count int
	sum   float64
	comp  float64 // running compensation for lost low-order bits of sum
	min   float64
	max   float64
	mean  float64 // running mean for the Welford update
	m2    float64 // sum of squared differences from the running mean
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

func (a *Accumulator) Add(v float64) {
	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.count++
	t := a.sum + v
	if math.Abs(a.sum) >= math.Abs(v) {
		a.comp += (a.sum - t) + v
	} else {
		a.comp += (v - t) + a.sum
	}
	a.sum = t
	n := float64(a.count)
	delta := v - a.mean
	if math.IsInf(delta, 0) && !math.IsInf(v, 0) && !math.IsInf(a.mean, 0) {
		a.mean += v/n - a.mean/n
	} else {
		a.mean += delta / n
	}
	a.m2 += delta * (v - a.mean)
}

// AddAll adds every value in vs.
func (a *Accumulator) AddAll(vs []float64) {
	for _, v := range vs {
		a.Add(v)
	}
}

// Count is the number of values added.
func (a *Accumulator) Count() int {
	return a.count
}

func (a *Accumulator) Min() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	return a.min, true
}

func (a *Accumulator) Max() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	return a.max, true
}

// Mean is sum divided by count, kept within [min, max]. An infinite input of
// one sign makes the mean that infinity; both signs give NaN. When the sum of
// finite values overflows the running mean is used instead.
func (a *Accumulator) Mean() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	posInf, negInf := math.IsInf(a.max, 1), math.IsInf(a.min, -1)
	switch {
	case posInf && negInf:
		return math.NaN(), true
	case posInf:
		return a.max, true
	case negInf:
		return a.min, true
	}
	mean := (a.sum + a.comp) / float64(a.count)
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		mean = a.mean
	}
	if mean < a.min {
		mean = a.min
	}
	if mean > a.max {
		mean = a.max
	}
	return mean, true
}

// Std is the population standard deviation (divisor N).
func (a *Accumulator) Std() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	return math.Sqrt(a.m2 / float64(a.count)), true
}

func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

func (a *Accumulator) Clone() *Accumulator {
	c := *a
	return &c
}
