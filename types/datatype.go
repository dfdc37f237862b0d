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

import "strings"

// DataType is the declared element type of a column.
type DataType uint8

const (
	Unknown DataType = iota
	UInt8
	UInt16
	UInt32
	UInt64
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	String
	Struct
)

// Category groups data types by the statistics that apply to them.
type Category uint8

const (
	CategoryUnsupported Category = iota
	CategoryNumeric
	CategoryText
)

var dataTypeNames = map[DataType]string{
	Unknown: "unknown",
	UInt8:   "uint8",
	UInt16:  "uint16",
	UInt32:  "uint32",
	UInt64:  "uint64",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	String:  "string",
	Struct:  "struct",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return dataTypeNames[Unknown]
}

// IsInteger reports whether t is one of the eight integer widths.
func (t DataType) IsInteger() bool {
	return t >= UInt8 && t <= Int64
}

func (t DataType) IsFloat() bool {
	return t == Float32 || t == Float64
}

// IsNumeric reports whether numeric statistics are defined for t.
func (t DataType) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat()
}

// Category returns the statistic family of t. Struct and unknown types are unsupported.
func (t DataType) Category() Category {
	switch {
	case t.IsNumeric():
		return CategoryNumeric
	case t == String:
		return CategoryText
	default:
		return CategoryUnsupported
	}
}

// ParseDataType maps a type name to its tag. Unrecognised names yield Unknown.
func ParseDataType(name string) DataType {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "utf8", "str", "text":
		return String
	case "u8":
		return UInt8
	case "u16":
		return UInt16
	case "u32":
		return UInt32
	case "u64":
		return UInt64
	case "i8":
		return Int8
	case "i16":
		return Int16
	case "i32":
		return Int32
	case "i64":
		return Int64
	case "f32":
		return Float32
	case "f64":
		return Float64
	}
	for t, n := range dataTypeNames {
		if n == name {
			return t
		}
	}
	return Unknown
}
