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

package expr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sqlopt/value"
)

func assertParseValue(t *testing.T, s string, want value.Value) {
	t.Helper()
	r, err := Parse(s)
	require.NoError(t, err)
	c, ok := r[0].(Constant)
	require.True(t, ok)
	require.True(t, c.Val.Equal(want))
}

func assertRoundTrip(t *testing.T, s string) {
	t.Helper()
	r, err := Parse(s)
	require.NoError(t, err, "parsing %q", s)
	require.Equal(t, s, r.String())
}

func TestParseValues(t *testing.T) {
	assertParseValue(t, "null", value.Null)
	assertParseValue(t, "true", value.Bool(true))
	assertParseValue(t, "1", value.Int(1))
	assertParseValue(t, "'string'", value.String("string"))
}

func TestParseColumns(t *testing.T) {
	assertRoundTrip(t, "a")
	assertRoundTrip(t, "t.a")
}

func TestParseList(t *testing.T) {
	assertRoundTrip(t, "(list null 1 2)")
}

func TestParseScalarOperations(t *testing.T) {
	cases := []string{
		"(isnull null)",
		"(- a)",
		"(+ a b)",
		"(- a b)",
		"(* a b)",
		"(/ a b)",
		"(= a b)",
		"(<> a b)",
		"(> a b)",
		"(< a b)",
		"(>= a b)",
		"(<= a b)",
		"(not a)",
		"(and a b)",
		"(or a b)",
		"(xor a b)",
	}
	for _, c := range cases {
		assertRoundTrip(t, c)
	}
}

func TestParseAggregations(t *testing.T) {
	for _, c := range []string{"(max a)", "(min a)", "(sum a)", "(avg a)", "(count a)"} {
		assertRoundTrip(t, c)
	}
}

func TestParsePlans(t *testing.T) {
	assertRoundTrip(t, "(scan t (list a b))")
	assertRoundTrip(t, "(values (list (list false 1) (list true 2)))")

	child := "(scan t (list a b))"
	assertRoundTrip(t, fmt.Sprintf("(proj (list a) %s)", child))
	assertRoundTrip(t, fmt.Sprintf("(agg (list (max a)) (list b) %s)", child))
	assertRoundTrip(t, fmt.Sprintf("(filter (= a 1) %s)", child))
	assertRoundTrip(t, fmt.Sprintf("(order (list (asc a) (desc b)) %s)", child))
	assertRoundTrip(t, fmt.Sprintf("(limit 10 1 %s)", child))
	assertRoundTrip(t, fmt.Sprintf("(topn 10 1 (list (asc a) (desc b)) %s)", child))

	for _, jt := range []string{"inner", "left_outer", "right_outer", "full_outer"} {
		assertRoundTrip(t, fmt.Sprintf(
			"(join %s (list (= a c)) (scan t1 (list a b)) (scan t2 (list c d)))", jt))
	}

	assertRoundTrip(t, "(hashjoin inner (list a) (list c) (scan t1 (list a b)) (scan t2 (list c d)))")
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("(+ a")
	require.Error(t, err)

	_, err = Parse("(bogus a b)")
	require.Error(t, err)

	_, err = Parse("(+ a b c)")
	require.Error(t, err)
}

func TestInsertIntoGraphDeduplicates(t *testing.T) {
	g := egraphForTest()
	r1, err := Parse("(+ a b)")
	require.NoError(t, err)
	r2, err := Parse("(+ a b)")
	require.NoError(t, err)

	id1 := Insert(g, r1)
	id2 := Insert(g, r2)
	require.Equal(t, id1, id2)
}
