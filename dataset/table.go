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

// Package dataset holds the profile output table and the builder that assembles it.
package dataset

import (
	"errors"
	"fmt"

	"github.com/rulego/colprofile/types"
)

// ErrLengthMismatch is returned when the output fields do not all have the
// same number of rows.
var ErrLengthMismatch = errors.New("profile fields have mismatched lengths")

// Columns is the column-aligned storage of a ProfileTable, one slice per
// schema field. nil entries are absent values.
type Columns struct {
	Column     []string
	Mean       []*float64
	Min        []*float64
	Max        []*float64
	Median     []*float64
	Std        []*float64
	MeanLength []*uint32
	MinLength  []*uint32
	MaxLength  []*uint32
	CountNull  []uint32
	Count      []uint32
}

// lengths returns the row count of every field, in schema order.
func (c Columns) lengths() []int {
	return []int{
		len(c.Column),
		len(c.Mean), len(c.Min), len(c.Max), len(c.Median), len(c.Std),
		len(c.MeanLength), len(c.MinLength), len(c.MaxLength),
		len(c.CountNull), len(c.Count),
	}
}

// ProfileTable is the immutable result of a profiling run: one row per
// profiled column, with the fields of types.ProfileSchema.
type ProfileTable struct {
	cols Columns
	rows int
}

// NewProfileTable validates that every field has the same length.
func NewProfileTable(cols Columns) (*ProfileTable, error) {
	lengths := cols.lengths()
	rows := lengths[0]
	for i, n := range lengths {
		if n != rows {
			return nil, fmt.Errorf("%w: field %q has %d rows, expected %d",
				ErrLengthMismatch, types.ProfileSchema[i].Name, n, rows)
		}
	}
	return &ProfileTable{cols: cols, rows: rows}, nil
}

// Len returns the number of rows.
func (t *ProfileTable) Len() int {
	return t.rows
}

// Schema returns the output fields in order.
func (t *ProfileTable) Schema() []types.Field {
	return types.ProfileSchema
}

// Record returns row i.
func (t *ProfileTable) Record(i int) types.ProfileRecord {
	c := t.cols
	return types.ProfileRecord{
		Column:     c.Column[i],
		Mean:       c.Mean[i],
		Min:        c.Min[i],
		Max:        c.Max[i],
		Median:     c.Median[i],
		Std:        c.Std[i],
		MeanLength: c.MeanLength[i],
		MinLength:  c.MinLength[i],
		MaxLength:  c.MaxLength[i],
		CountNull:  c.CountNull[i],
		Count:      c.Count[i],
	}
}

// Records returns every row in order.
func (t *ProfileTable) Records() []types.ProfileRecord {
	out := make([]types.ProfileRecord, t.rows)
	for i := range out {
		out[i] = t.Record(i)
	}
	return out
}

// Column returns the storage slice of a field by name: []string for column,
// []*float64 for numeric statistics, []*uint32 for length statistics and
// []uint32 for the counts.
func (t *ProfileTable) Column(name string) (interface{}, bool) {
	c := t.cols
	switch name {
	case types.FieldColumn:
		return c.Column, true
	case types.FieldMean:
		return c.Mean, true
	case types.FieldMin:
		return c.Min, true
	case types.FieldMax:
		return c.Max, true
	case types.FieldMedian:
		return c.Median, true
	case types.FieldStd:
		return c.Std, true
	case types.FieldMeanLength:
		return c.MeanLength, true
	case types.FieldMinLength:
		return c.MinLength, true
	case types.FieldMaxLength:
		return c.MaxLength, true
	case types.FieldCountNull:
		return c.CountNull, true
	case types.FieldCount:
		return c.Count, true
	}
	return nil, false
}

// ToMaps converts the table into row maps keyed by field name.
// Absent values are nil.
func (t *ProfileTable) ToMaps() []map[string]interface{} {
	out := make([]map[string]interface{}, t.rows)
	for i := range out {
		out[i] = t.Record(i).Env()
	}
	return out
}
