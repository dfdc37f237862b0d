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

package aggregator

import (
	"fmt"
	"strings"
)

// Stat names a numeric statistic.
type Stat string

const (
	StatMin    Stat = "min"
	StatMax    Stat = "max"
	StatMean   Stat = "mean"
	StatMedian Stat = "median"
	StatStd    Stat = "std"
)

func (s Stat) String() string {
	return string(s)
}

// ParseStat resolves a statistic name, case-insensitively. "avg" and "stddev"
// are accepted as aliases.
func ParseStat(name string) (Stat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "min":
		return StatMin, nil
	case "max":
		return StatMax, nil
	case "mean", "avg":
		return StatMean, nil
	case "median":
		return StatMedian, nil
	case "std", "stddev":
		return StatStd, nil
	}
	return "", fmt.Errorf("unknown statistic %q", name)
}
