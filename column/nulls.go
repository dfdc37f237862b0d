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

	"github.com/RoaringBitmap/roaring"
)

// Nulls records the row positions of absent values in a column.
// A nil *Nulls means the column has no nulls; all methods are nil-safe on read.
type Nulls struct {
	np *roaring.Bitmap
}

// NewNulls builds a bitmap with the given rows marked null.
func NewNulls(rows ...int) *Nulls {
	n := &Nulls{np: roaring.New()}
	n.Add(rows...)
	return n
}

// Add marks rows as null.
func (n *Nulls) Add(rows ...int) {
	if n.np == nil {
		n.np = roaring.New()
	}
	for _, row := range rows {
		if row < 0 {
			continue
		}
		n.np.Add(uint32(row))
	}
}

// Contains reports whether row is null.
func (n *Nulls) Contains(row int) bool {
	if n == nil || n.np == nil || row < 0 {
		return false
	}
	return n.np.Contains(uint32(row))
}

// Any returns true if at least one row is null.
func (n *Nulls) Any() bool {
	return n != nil && n.np != nil && !n.np.IsEmpty()
}

// Count returns the number of null rows.
func (n *Nulls) Count() int {
	if n == nil || n.np == nil {
		return 0
	}
	return int(n.np.GetCardinality())
}

// CountBelow returns the number of null rows in [0, length).
func (n *Nulls) CountBelow(length int) int {
	if n == nil || n.np == nil || length <= 0 {
		return 0
	}
	return int(n.np.Rank(uint32(length - 1)))
}

func (n *Nulls) Clone() *Nulls {
	if n == nil {
		return nil
	}
	if n.np == nil {
		return &Nulls{}
	}
	return &Nulls{np: n.np.Clone()}
}

func (n *Nulls) String() string {
	if n == nil || n.np == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", n.np.ToArray())
}
