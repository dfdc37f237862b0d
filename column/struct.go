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

package column

import "github.com/rulego/colprofile/types"

// Struct is a nested column made of named child columns. It is carried so that
// callers can pass whole frames through; statistics are never computed for it.
type Struct struct {
	name   string
	fields []Column
	length int
	nulls  *Nulls
}

// NewStruct creates a struct column. Its length is the length of the first field.
func NewStruct(name string, fields []Column, nulls *Nulls) *Struct {
	length := 0
	if len(fields) > 0 {
		length = fields[0].Len()
	}
	return &Struct{name: name, fields: fields, length: length, nulls: nulls}
}

func (c *Struct) Name() string {
	return c.name
}

func (c *Struct) DataType() types.DataType {
	return types.Struct
}

func (c *Struct) Len() int {
	return c.length
}

func (c *Struct) NullCount() int {
	return c.nulls.CountBelow(c.length)
}

func (c *Struct) IsNull(i int) bool {
	return c.nulls.Contains(i)
}

// Fields returns the child columns.
func (c *Struct) Fields() []Column {
	return c.fields
}
