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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []Value{
		Null,
		Bool(true),
		Bool(false),
		Int(0),
		Int(-3),
		Int(12345),
		String("hello"),
		String(""),
	}
	for _, v := range cases {
		parsed, err := Parse(v.String())
		require.NoError(t, err)
		require.True(t, parsed.Equal(v), "round trip %q", v.String())
	}
}

func TestParseOrder(t *testing.T) {
	v, err := Parse("true")
	require.NoError(t, err)
	require.Equal(t, KindBool, v.Kind())

	v, err = Parse("false")
	require.NoError(t, err)
	require.Equal(t, KindBool, v.Kind())

	v, err = Parse("null")
	require.NoError(t, err)
	require.Equal(t, KindNull, v.Kind())

	v, err = Parse("1")
	require.NoError(t, err)
	require.Equal(t, KindInt, v.Kind())
	require.Equal(t, int32(1), v.IntVal())
}

func TestOrdering(t *testing.T) {
	require.True(t, Null.Compare(Bool(false)) < 0)
	require.True(t, Bool(false).Compare(Bool(true)) < 0)
	require.True(t, Bool(true).Compare(Int(0)) < 0)
	require.True(t, Int(0).Compare(String("")) < 0)
	require.True(t, Int(1).Compare(Int(2)) < 0)
	require.True(t, String("a").Compare(String("b")) < 0)
}

func TestArithNullPropagation(t *testing.T) {
	v, ok := Add(Null, Int(1))
	require.True(t, ok)
	require.True(t, v.IsNull())

	v, ok = Div(Int(4), Null)
	require.True(t, ok)
	require.True(t, v.IsNull())
}

func TestArithOverflowSuppressed(t *testing.T) {
	_, ok := Add(Int(1<<31-1), Int(1))
	require.False(t, ok)
}

func TestKleeneAndOr(t *testing.T) {
	v, ok := And(Bool(false), Null)
	require.True(t, ok)
	require.Equal(t, Bool(false), v)

	v, ok = Or(Bool(true), Null)
	require.True(t, ok)
	require.Equal(t, Bool(true), v)

	v, ok = And(Null, Bool(true))
	require.True(t, ok)
	require.True(t, v.IsNull())
}

func TestColumnIndexRoundTrip(t *testing.T) {
	idx, err := ParseColumnIndex("#3")
	require.NoError(t, err)
	require.Equal(t, ColumnIndex(3), idx)
	require.Equal(t, "#3", idx.String())
}
