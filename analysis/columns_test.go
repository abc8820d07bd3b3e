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

package analysis

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sqlopt/value"
)

func sortedNames(s ColumnSet) []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

func TestColumnsOfJoinUnionsBothSidesNames(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(join inner (= t1.id t2.id) (scan t1 (list t1.id t1.age)) (scan t2 (list t2.id)))")

	got := sortedNames(g.Data(id).Columns)
	want := []string{"t1.age", "t1.id", "t2.id"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("columns of join (-want +got):\n%s", diff)
	}
}

func TestColumnsOfColumnPruneReportsFilterClassNotPrunedResult(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(column-prune (list a) (list a b c))")

	got := sortedNames(g.Data(id).Columns)
	want := []string{"a", "b", "c"}
	require.Equal(t, want, got, "column-prune's Columns analysis is the unpruned filter class, the acknowledged imprecision")
	if diff := cmp.Diff(want, got, cmp.Transformer("sorted", func(s []string) []string { return s })); diff != "" {
		t.Errorf("unexpected column-prune columns (-want +got):\n%s", diff)
	}
}

func TestColumnSetIsSubsetAndIsDisjoint(t *testing.T) {
	a := newColumnSet(value.Column("x"), value.Column("y"))
	b := newColumnSet(value.Column("x"), value.Column("y"), value.Column("z"))
	c := newColumnSet(value.Column("p"))

	require.True(t, a.IsSubset(b))
	require.False(t, b.IsSubset(a))
	require.True(t, a.IsDisjoint(c))
	require.False(t, a.IsDisjoint(b))
}
