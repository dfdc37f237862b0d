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

/*
Package aggregator computes per-column statistics for colprofile.

Numeric columns are reduced to mean, min, max, median and population standard
deviation. Text columns are reduced to the mean, min and max of their value
lengths. Every other column type is left to the caller to skip.

# Dispatch

Dispatch and Summarize accept any column.Column. Columns tagged with one of the
ten numeric data types must also implement column.Float64Source; their non-null
values are widened to float64 once and all statistics are derived from that
buffer.

	summary, ok := aggregator.Summarize(col)
	if !ok {
		// not numeric, or no non-null value
	}
	mean, _ := summary.Get(aggregator.StatMean)

Single statistics:

	median, ok := aggregator.Dispatch(col, aggregator.StatMedian)

An empty or all-null numeric column yields no statistics at all, never 0 or NaN.

# Text lengths

LengthStats counts lengths in characters, not bytes. The mean is the integer
part of the average over non-null values. A text column without non-null values
reports 0 for all three lengths.

	lengths, ok := aggregator.LengthStats(col)

# Accumulator

Accumulator keeps running min, max, mean and standard deviation:

	acc := aggregator.NewAccumulator()
	for _, v := range values {
		acc.Add(v)
	}
	mean, _ := acc.Mean()
	std, _ := acc.Std()

The sum is compensated and the variance uses Welford's update, so large
magnitudes keep their precision.
*/
package aggregator
