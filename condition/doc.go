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
Package condition evaluates boolean data quality checks over profile records.

Expressions are compiled with expr-lang. Every field of the output schema is
available by name; absent statistics are nil:

	count_null == 0
	min >= 0 && max <= 100
	is_null(mean) || mean > 10
	like_match(column, 'id_%') && min_length == max_length

Custom functions:

	like_match(text, pattern) - SQL LIKE with % and _ wildcards
	is_null(value)            - value is absent
	is_not_null(value)        - value is present

A check that compares an absent value fails with an error recorded in its
CheckResult; it does not abort the other checks.
*/
package condition
