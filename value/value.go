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

// Package value implements the optimizer's SQL scalar literal type: Null,
// Bool, Int32 and String, with the textual syntax, total ordering and
// three-valued arithmetic/logic the constant-folding analysis relies on.
package value

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindString
)

// Value is an immutable SQL scalar. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int32
	s    string
}

// Null is the SQL NULL value.
var Null = Value{kind: KindNull}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int constructs a 32-bit signed integer Value.
func Int(i int32) Value { return Value{kind: KindInt, i: i} }

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsZero reports whether v is the integer 0. Used to guard division and
// multiplicative cancellation rules.
func (v Value) IsZero() bool { return v.kind == KindInt && v.i == 0 }

// BoolVal returns the boolean payload of v. Only meaningful when Kind() == KindBool.
func (v Value) BoolVal() bool { return v.b }

// IntVal returns the integer payload of v. Only meaningful when Kind() == KindInt.
func (v Value) IntVal() int32 { return v.i }

// Str returns the string payload of v. Only meaningful when Kind() == KindString.
func (v Value) Str() string { return v.s }

// String renders v in the public syntax: null, true/false, decimal
// integer, or a single-quoted string.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindString:
		return "'" + v.s + "'"
	default:
		panic(fmt.Sprintf("value: unknown kind %d", v.kind))
	}
}

// Parse parses the textual syntax of Value. Order matters: null, then bool,
// then int, then a single-quoted string, so "true"/"false" never fall
// through to integer parsing.
func Parse(s string) (Value, error) {
	if s == "null" {
		return Null, nil
	}
	if b, err := cast.ToBoolE(s); err == nil && (s == "true" || s == "false") {
		return Bool(b), nil
	}
	if i, err := cast.ToInt32E(s); err == nil {
		return Int(i), nil
	}
	if strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") && len(s) >= 2 {
		return String(s[1 : len(s)-1]), nil
	}
	return Value{}, fmt.Errorf("value: invalid literal %q", s)
}

// rank orders the variants for comparison and total ordering: Null < Bool < Int < String.
func (k Kind) rank() int {
	switch k {
	case KindNull:
		return 0
	case KindBool:
		return 1
	case KindInt:
		return 2
	case KindString:
		return 3
	default:
		return -1
	}
}

// Compare returns -1, 0 or 1 following the total ordering: Null < Bool
// < Int < String, false < true within Bool, numeric order within Int,
// lexicographic within String.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		if v.kind.rank() < o.kind.rank() {
			return -1
		}
		return 1
	}
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		if v.b == o.b {
			return 0
		}
		if !v.b {
			return -1
		}
		return 1
	case KindInt:
		switch {
		case v.i < o.i:
			return -1
		case v.i > o.i:
			return 1
		default:
			return 0
		}
	case KindString:
		return strings.Compare(v.s, o.s)
	default:
		panic(fmt.Sprintf("value: unknown kind %d", v.kind))
	}
}

// Equal reports structural equality (same variant, same payload).
func (v Value) Equal(o Value) bool { return v == o }
