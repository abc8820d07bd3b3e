// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Column is an interned column reference, e.g. "a" or "t.a". The optimizer
// treats it as an opaque symbol except in the column-set analysis.
type Column string

func (c Column) String() string { return string(c) }

// ColumnIndex is the physical position of a column in a resolved schema,
// printed as "#0", "#1", ...
type ColumnIndex uint32

func (c ColumnIndex) String() string { return fmt.Sprintf("#%d", uint32(c)) }

// ParseColumnIndex parses the "#N" syntax.
func ParseColumnIndex(s string) (ColumnIndex, error) {
	body := strings.TrimPrefix(s, "#")
	if body == s {
		return 0, fmt.Errorf("value: column index %q missing leading #", s)
	}
	n, err := strconv.ParseUint(body, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("value: invalid column index %q: %w", s, err)
	}
	return ColumnIndex(n), nil
}

// IsColumnName reports whether s has the lexical shape of a column
// reference (bare identifier, optionally "table.column") rather than a
// literal, so the S-expression parser can disambiguate leaves.
func IsColumnName(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if !isIdent(part) {
			return false
		}
	}
	return true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isLetter {
			return false
		}
		if !isLetter && !isDigit {
			return false
		}
	}
	return true
}
