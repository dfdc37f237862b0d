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

package colprofile

import (
	"io"
	"os"

	"github.com/rulego/colprofile/column"
	"github.com/rulego/colprofile/condition"
	"github.com/rulego/colprofile/dataset"
	"github.com/rulego/colprofile/logger"
	"github.com/rulego/colprofile/profiler"
	"github.com/rulego/colprofile/types"
	"github.com/rulego/colprofile/utils/table"
)

// Colprofile is the entry point for profiling column sets.
//
// Example:
//
//	cp := colprofile.New(colprofile.WithParallelism(4))
//	result, err := cp.Profile(
//		column.NewNumeric("age", []int32{31, 45, 27}, nil),
//		column.NewUtf8("name", []string{"ann", "bob", "cyd"}, nil),
//	)
//	_ = cp.PrintTable(os.Stdout, result)
type Colprofile struct {
	config   types.Config
	log      logger.Logger
	profiler *profiler.Profiler
}

// New creates a Colprofile configured by options.
func New(options ...Option) *Colprofile {
	s := &Colprofile{
		config: types.NewConfig(),
	}
	for _, option := range options {
		option(s)
	}
	if s.log == nil {
		level, err := logger.ParseLevel(s.config.LogLevel)
		s.log = logger.NewLogger(level, os.Stderr)
		if err != nil {
			s.log.Warn("%v, falling back to %s", err, level)
		}
	}
	s.profiler = profiler.New(s.config, s.log)
	return s
}

// Config returns the effective configuration.
func (s *Colprofile) Config() types.Config {
	return s.config
}

// Profile computes the profile of cols. Unsupported columns are left out.
func (s *Colprofile) Profile(cols ...column.Column) (*dataset.ProfileTable, error) {
	return s.profiler.Profile(cols)
}

// ProfileRows builds one column per schema field from row maps and profiles them.
func (s *Colprofile) ProfileRows(rows []map[string]interface{}, schema []types.Field) (*dataset.ProfileTable, error) {
	cols, err := column.FromRows(rows, schema)
	if err != nil {
		return nil, err
	}
	return s.Profile(cols...)
}

// Check evaluates the configured checks against a profile. Failed checks are
// logged at WARN.
func (s *Colprofile) Check(result *dataset.ProfileTable) ([]condition.CheckResult, error) {
	results, err := condition.Evaluate(result, s.config.Checks)
	if err != nil {
		return nil, err
	}
	for _, r := range condition.Failed(results) {
		if r.Error != "" {
			s.log.Warn("check %s on column %q could not be evaluated: %s", r.Check, r.Column, r.Error)
			continue
		}
		s.log.Warn("check %s failed on column %q", r.Check, r.Column)
	}
	return results, nil
}

// PrintTable writes result as an ASCII table in schema order.
func (s *Colprofile) PrintTable(w io.Writer, result *dataset.ProfileTable) error {
	return table.Render(w, result.ToMaps(), types.FieldNames())
}
