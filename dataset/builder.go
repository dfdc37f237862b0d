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

package dataset

import "github.com/rulego/colprofile/types"

// Builder collects whole ProfileRecords and transposes them into a
// column-aligned ProfileTable on Finish. Appending a full record at a time
// keeps every output field at the same length.
type Builder struct {
	records []types.ProfileRecord
}

// NewBuilder creates a builder with room for capacity records.
func NewBuilder(capacity int) *Builder {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder{records: make([]types.ProfileRecord, 0, capacity)}
}

// Append adds one record.
func (b *Builder) Append(r types.ProfileRecord) {
	b.records = append(b.records, r)
}

// Len returns the number of records appended so far.
func (b *Builder) Len() int {
	return len(b.records)
}

// Finish transposes the records into a ProfileTable. The builder may be
// reused afterwards; the table does not share storage with it.
func (b *Builder) Finish() (*ProfileTable, error) {
	n := len(b.records)
	cols := Columns{
		Column:     make([]string, n),
		Mean:       make([]*float64, n),
		Min:        make([]*float64, n),
		Max:        make([]*float64, n),
		Median:     make([]*float64, n),
		Std:        make([]*float64, n),
		MeanLength: make([]*uint32, n),
		MinLength:  make([]*uint32, n),
		MaxLength:  make([]*uint32, n),
		CountNull:  make([]uint32, n),
		Count:      make([]uint32, n),
	}
	for i, r := range b.records {
		cols.Column[i] = r.Column
		cols.Mean[i] = r.Mean
		cols.Min[i] = r.Min
		cols.Max[i] = r.Max
		cols.Median[i] = r.Median
		cols.Std[i] = r.Std
		cols.MeanLength[i] = r.MeanLength
		cols.MinLength[i] = r.MinLength
		cols.MaxLength[i] = r.MaxLength
		cols.CountNull[i] = r.CountNull
		cols.Count[i] = r.Count
	}
	b.records = b.records[:0]
	return NewProfileTable(cols)
}
