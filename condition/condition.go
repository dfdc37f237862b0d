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

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Condition interface {
	Evaluate(env interface{}) bool
}

type ExprCondition struct {
	source  string
	program *vm.Program
}

// NewExprCondition compiles a boolean expression. Identifiers that are not
// known at compile time resolve to nil at run time.
func NewExprCondition(expression string) (*ExprCondition, error) {
	return NewExprConditionWithEnv(expression, nil)
}

// NewExprConditionWithEnv compiles expression against a sample environment.
// Names present in env take precedence over expr builtins of the same name,
// which matters for fields such as min, max, mean and median.
func NewExprConditionWithEnv(expression string, env map[string]interface{}) (*ExprCondition, error) {
	var options []expr.Option
	if env != nil {
		// Env switches on strict mode, so it must precede AllowUndefinedVariables
		options = append(options, expr.Env(env))
	}
	options = append(options,
		expr.Function("like_match", func(params ...any) (any, error) {
			if len(params) != 2 {
				return false, fmt.Errorf("like_match function requires 2 parameters")
			}
			text, ok1 := params[0].(string)
			pattern, ok2 := params[1].(string)
			if !ok1 || !ok2 {
				return false, fmt.Errorf("like_match function requires string parameters")
			}
			return matchesLikePattern(text, pattern), nil
		}),
		expr.Function("is_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_null function requires 1 parameter")
			}
			return params[0] == nil, nil
		}),
		expr.Function("is_not_null", func(params ...any) (any, error) {
			if len(params) != 1 {
				return false, fmt.Errorf("is_not_null function requires 1 parameter")
			}
			return params[0] != nil, nil
		}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)

	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, err
	}
	return &ExprCondition{source: expression, program: program}, nil
}

// Evaluate returns false when the expression fails at run time.
func (ec *ExprCondition) Evaluate(env interface{}) bool {
	ok, err := ec.EvaluateE(env)
	return err == nil && ok
}

// EvaluateE runs the expression and reports run time errors, such as
// comparing an absent statistic with a number.
func (ec *ExprCondition) EvaluateE(env interface{}) (bool, error) {
	result, err := expr.Run(ec.program, env)
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q returned %T, want bool", ec.source, result)
	}
	return b, nil
}

func (ec *ExprCondition) String() string {
	return ec.source
}

// matchesLikePattern implements SQL LIKE: % matches any run of characters,
// _ matches exactly one.
func matchesLikePattern(text, pattern string) bool {
	return likeMatch([]rune(text), []rune(pattern))
}

func likeMatch(text, pattern []rune) bool {
	if len(pattern) == 0 {
		return len(text) == 0
	}
	switch pattern[0] {
	case '%':
		for i := 0; i <= len(text); i++ {
			if likeMatch(text[i:], pattern[1:]) {
				return true
			}
		}
		return false
	case '_':
		return len(text) > 0 && likeMatch(text[1:], pattern[1:])
	default:
		return len(text) > 0 && text[0] == pattern[0] && likeMatch(text[1:], pattern[1:])
	}
}
