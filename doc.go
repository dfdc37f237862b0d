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
Package colprofile computes a per-column statistical profile of a tabular dataset.

For numeric columns (eight integer widths and two float widths) it reports
mean, min, max, median and population standard deviation. For text columns it
reports mean, min and max length in characters. Every column gets a null count
and a total count. Nested and unknown column types are left out of the result.

# Output

The result is a table with one row per profiled column and a fixed schema:

	column       string
	mean         float64, nullable
	min          float64, nullable
	max          float64, nullable
	median       float64, nullable
	std          float64, nullable
	mean_length  uint32, nullable
	min_length   uint32, nullable
	max_length   uint32, nullable
	count_null   uint32
	count        uint32

Nulls are ignored by every statistic. A numeric column without any non-null
value reports all five statistics as absent. A text column without any non-null
value reports its length statistics as 0.

# Getting Started

	cp := colprofile.New()
	result, err := cp.Profile(
		column.NewNumeric("id", []int64{1, 2, 3, 4, 5}, nil),
		column.NewUtf8("code", []string{"a", "bb", "ccc", "dddd", "eeeee"}, nil),
	)
	if err != nil {
		panic(err)
	}
	_ = cp.PrintTable(os.Stdout, result)

# Quality Checks

Checks are boolean expressions over the output fields:

	cp := colprofile.New(colprofile.WithChecks(
		types.Check{Name: "no_nulls", Expression: "count_null == 0"},
	))
	results, err := cp.Check(result)

# Configuration

Options can be given in code, or loaded from TOML with types.LoadConfig and
passed with WithConfig. WithParallelism profiles columns on a worker pool;
the output is identical to a serial run.
*/
package colprofile
