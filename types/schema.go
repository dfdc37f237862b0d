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

package types

// Output field names, in schema order.
const (
	FieldColumn     = "column"
	FieldMean       = "mean"
	FieldMin        = "min"
	FieldMax        = "max"
	FieldMedian     = "median"
	FieldStd        = "std"
	FieldMeanLength = "mean_length"
	FieldMinLength  = "min_length"
	FieldMaxLength  = "max_length"
	FieldCountNull  = "count_null"
	FieldCount      = "count"
)

// Field describes one column of the profile output.
type Field struct {
	Name     string   `json:"name"`
	Type     DataType `json:"type"`
	Nullable bool     `json:"nullable"`
}

// ProfileSchema is the fixed output schema. Its order is part of the contract.
var ProfileSchema = []Field{
	{Name: FieldColumn, Type: String},
	{Name: FieldMean, Type: Float64, Nullable: true},
	{Name: FieldMin, Type: Float64, Nullable: true},
	{Name: FieldMax, Type: Float64, Nullable: true},
	{Name: FieldMedian, Type: Float64, Nullable: true},
	{Name: FieldStd, Type: Float64, Nullable: true},
	{Name: FieldMeanLength, Type: UInt32, Nullable: true},
	{Name: FieldMinLength, Type: UInt32, Nullable: true},
	{Name: FieldMaxLength, Type: UInt32, Nullable: true},
	{Name: FieldCountNull, Type: UInt32},
	{Name: FieldCount, Type: UInt32},
}

// FieldNames returns the schema field names in order.
func FieldNames() []string {
	names := make([]string, len(ProfileSchema))
	for i, f := range ProfileSchema {
		names[i] = f.Name
	}
	return names
}

// ProfileRecord holds the statistics of a single column.
// A nil pointer marks an absent value.
type ProfileRecord struct {
	Column     string   `json:"column"`
	Mean       *float64 `json:"mean"`
	Min        *float64 `json:"min"`
	Max        *float64 `json:"max"`
	Median     *float64 `json:"median"`
	Std        *float64 `json:"std"`
	MeanLength *uint32  `json:"mean_length"`
	MinLength  *uint32  `json:"min_length"`
	MaxLength  *uint32  `json:"max_length"`
	CountNull  uint32   `json:"count_null"`
	Count      uint32   `json:"count"`
}

// HasNumeric reports whether any numeric statistic is present.
func (r ProfileRecord) HasNumeric() bool {
	return r.Mean != nil || r.Min != nil || r.Max != nil || r.Median != nil || r.Std != nil
}

// HasLength reports whether any length statistic is present.
func (r ProfileRecord) HasLength() bool {
	return r.MeanLength != nil || r.MinLength != nil || r.MaxLength != nil
}

// Env flattens the record into a field-name keyed map. Absent values are nil.
func (r ProfileRecord) Env() map[string]interface{} {
	return map[string]interface{}{
		FieldColumn:     r.Column,
		FieldMean:       floatOrNil(r.Mean),
		FieldMin:        floatOrNil(r.Min),
		FieldMax:        floatOrNil(r.Max),
		FieldMedian:     floatOrNil(r.Median),
		FieldStd:        floatOrNil(r.Std),
		FieldMeanLength: uintOrNil(r.MeanLength),
		FieldMinLength:  uintOrNil(r.MinLength),
		FieldMaxLength:  uintOrNil(r.MaxLength),
		FieldCountNull:  r.CountNull,
		FieldCount:      r.Count,
	}
}

func floatOrNil(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func uintOrNil(v *uint32) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
