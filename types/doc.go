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
Package types provides the shared type definitions of colprofile.

# Data Types

DataType tags the element type of an input column. Eight integer widths and two
float widths are numeric, String is text, and everything else (Struct, Unknown)
is unsupported and skipped by the profiler.

# Output Schema

ProfileSchema fixes the eleven output fields and their order:

	column, mean, min, max, median, std,
	mean_length, min_length, max_length, count_null, count

ProfileRecord is one row of that schema. Absent statistics are nil pointers.

# Configuration

Config can be built in code, or loaded from TOML:

	parallelism = 4
	log_level = "debug"

	[[checks]]
	name = "no_nulls"
	expression = "count_null == 0"
*/
package types
