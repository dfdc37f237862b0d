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

// Package profiler computes a ProfileTable from a set of typed columns.
//
// Each column is dispatched on its DataType category: numeric columns get
// mean/min/max/median/std, text columns get character length statistics,
// every other column is left out of the output. Columns are independent, so
// with Parallelism > 1 they are evaluated on an ants worker pool and then
// assembled in input order.
package profiler

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/rulego/colprofile/aggregator"
	"github.com/rulego/colprofile/column"
	"github.com/rulego/colprofile/dataset"
	"github.com/rulego/colprofile/logger"
	"github.com/rulego/colprofile/types"
)

// Profiler turns columns into profile records. It holds no per-run state and
// is safe for concurrent use.
type Profiler struct {
	parallelism int
	log         logger.Logger
}

// New creates a profiler. A nil log uses the process default logger.
func New(cfg types.Config, log logger.Logger) *Profiler {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Profiler{
		parallelism: cfg.Parallelism,
		log:         log,
	}
}

// outcome is the per-column result slot written by exactly one task.
type outcome struct {
	record    types.ProfileRecord
	supported bool
	err       error
}

// Profile computes one record per supported column, in input order.
func (p *Profiler) Profile(cols []column.Column) (*dataset.ProfileTable, error) {
	outcomes, err := p.evaluate(cols)
	if err != nil {
		return nil, err
	}

	b := dataset.NewBuilder(len(cols))
	for i, o := range outcomes {
		if o.err != nil {
			return nil, fmt.Errorf("profile column %d (%q): %w", i, cols[i].Name(), o.err)
		}
		if !o.supported {
			p.log.Debug("column %q of type %s is not supported, skipped", cols[i].Name(), cols[i].DataType())
			continue
		}
		b.Append(o.record)
	}

	table, err := b.Finish()
	if err != nil {
		return nil, fmt.Errorf("assemble profile: %w", err)
	}
	p.log.Info("profiled %d of %d columns", table.Len(), len(cols))
	return table, nil
}

func (p *Profiler) evaluate(cols []column.Column) ([]outcome, error) {
	outcomes := make([]outcome, len(cols))
	if p.parallelism <= 1 || len(cols) < 2 {
		for i, col := range cols {
			outcomes[i] = p.profileSafe(col)
		}
		return outcomes, nil
	}

	pool, err := ants.NewPool(min(p.parallelism, len(cols)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, col := range cols {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			outcomes[i] = p.profileSafe(col)
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit column %q: %w", col.Name(), submitErr)
		}
	}
	wg.Wait()
	return outcomes, nil
}

// profileSafe converts a panic raised by a column implementation into an error.
func (p *Profiler) profileSafe(col column.Column) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			o = outcome{err: fmt.Errorf("panic: %v", r)}
		}
	}()
	o.record, o.supported = p.ProfileColumn(col)
	return o
}

// ProfileColumn computes the record of a single column. The second result is
// false when the column type is not supported.
func (p *Profiler) ProfileColumn(col column.Column) (types.ProfileRecord, bool) {
	record := types.ProfileRecord{
		Column:    col.Name(),
		CountNull: uint32(col.NullCount()),
		Count:     uint32(col.Len()),
	}

	switch col.DataType().Category() {
	case types.CategoryNumeric:
		s, ok := aggregator.Summarize(col)
		if !ok {
			return types.ProfileRecord{}, false
		}
		if s.Valid() {
			record.Mean = ptr(s.Mean)
			record.Min = ptr(s.Min)
			record.Max = ptr(s.Max)
			record.Median = ptr(s.Median)
			record.Std = ptr(s.Std)
		}
	case types.CategoryText:
		s, ok := aggregator.LengthStats(col)
		if !ok {
			return types.ProfileRecord{}, false
		}
		record.MeanLength = ptr(s.Mean)
		record.MinLength = ptr(s.Min)
		record.MaxLength = ptr(s.Max)
	default:
		return types.ProfileRecord{}, false
	}

	p.log.Debug("column %q profiled: count=%d nulls=%d", record.Column, record.Count, record.CountNull)
	return record, true
}

func ptr[T any](v T) *T {
	return &v
}
