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

package condition

import (
	"fmt"

	"github.com/rulego/colprofile/dataset"
	"github.com/rulego/colprofile/types"
)

// CheckResult is the outcome of one check on one profiled column.
type CheckResult struct {
	Check  string `json:"check"`
	Column string `json:"column"`
	Passed bool   `json:"passed"`
	// Error is set when the expression could not be evaluated for this record,
	// typically because it compares an absent statistic.
	Error string `json:"error,omitempty"`
}

// CompiledCheck pairs a check definition with its compiled expression.
type CompiledCheck struct {
	types.Check
	cond *ExprCondition
}

// Compile compiles every check. The first invalid expression is returned as an error.
func Compile(checks []types.Check) ([]CompiledCheck, error) {
	out := make([]CompiledCheck, 0, len(checks))
	for _, chk := range checks {
		cond, err := NewExprConditionWithEnv(chk.Expression, types.ProfileRecord{}.Env())
		if err != nil {
			return nil, fmt.Errorf("compile check %s: %w", chk.Name, err)
		}
		out = append(out, CompiledCheck{Check: chk, cond: cond})
	}
	return out, nil
}

// Evaluate runs every check against every record it applies to. Results are
// ordered by record, then by check.
func Evaluate(table *dataset.ProfileTable, checks []types.Check) ([]CheckResult, error) {
	compiled, err := Compile(checks)
	if err != nil {
		return nil, err
	}
	return EvaluateCompiled(table, compiled), nil
}

// EvaluateCompiled is Evaluate for checks that are already compiled.
func EvaluateCompiled(table *dataset.ProfileTable, checks []CompiledCheck) []CheckResult {
	var results []CheckResult
	for _, record := range table.Records() {
		env := record.Env()
		for _, chk := range checks {
			if !chk.AppliesTo(record.Column) {
				continue
			}
			res := CheckResult{Check: chk.Name, Column: record.Column}
			ok, err := chk.cond.EvaluateE(env)
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Passed = ok
			}
			results = append(results, res)
		}
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []CheckResult) []CheckResult {
	var out []CheckResult
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}
