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

import (
	"fmt"

	"github.com/rulego/colprofile/types"
	"github.com/spf13/cast"
)

// FromValues builds a column of type dt from loosely typed values, as produced
// by JSON decoding or row maps. nil entries become nulls; every other entry is
// converted with spf13/cast and a failed conversion is an error.
func FromValues(name string, dt types.DataType, values []interface{}) (Column, error) {
	switch dt {
	case types.UInt8:
		return fromValues(name, values, cast.ToUint8E)
	case types.UInt16:
		return fromValues(name, values, cast.ToUint16E)
	case types.UInt32:
		return fromValues(name, values, cast.ToUint32E)
	case types.UInt64:
		return fromValues(name, values, cast.ToUint64E)
	case types.Int8:
		return fromValues(name, values, cast.ToInt8E)
	case types.Int16:
		return fromValues(name, values, cast.ToInt16E)
	case types.Int32:
		return fromValues(name, values, cast.ToInt32E)
	case types.Int64:
		return fromValues(name, values, cast.ToInt64E)
	case types.Float32:
		return fromValues(name, values, cast.ToFloat32E)
	case types.Float64:
		return fromValues(name, values, cast.ToFloat64E)
	case types.String:
		data := make([]string, len(values))
		var nulls *Nulls
		for i, v := range values {
			if v == nil {
				if nulls == nil {
					nulls = NewNulls()
				}
				nulls.Add(i)
				continue
			}
			s, err := cast.ToStringE(v)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
			}
			data[i] = s
		}
		return NewUtf8(name, data, nulls), nil
	default:
		return nil, fmt.Errorf("column %q: %w: %s", name, ErrUnsupportedType, dt)
	}
}

func fromValues[T Number](name string, values []interface{}, conv func(interface{}) (T, error)) (Column, error) {
	data := make([]T, len(values))
	var nulls *Nulls
	for i, v := range values {
		if v == nil {
			if nulls == nil {
				nulls = NewNulls()
			}
			nulls.Add(i)
			continue
		}
		n, err := conv(v)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		data[i] = n
	}
	return NewNumeric(name, data, nulls), nil
}

// FromRows splits row maps into one column per entry of schema, in schema order.
// A key missing from a row is treated as null.
func FromRows(rows []map[string]interface{}, schema []types.Field) ([]Column, error) {
	cols := make([]Column, 0, len(schema))
	for _, f := range schema {
		values := make([]interface{}, len(rows))
		for i, row := range rows {
			values[i] = row[f.Name]
		}
		col, err := FromValues(f.Name, f.Type, values)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
