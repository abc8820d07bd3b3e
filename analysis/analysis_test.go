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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/value"
)

func newGraph() *Graph { return egraph.New[Data](ExprAnalysis{}) }

func insert(t *testing.T, g *Graph, s string) egraph.Id {
	t.Helper()
	r, err := expr.Parse(s)
	require.NoError(t, err)
	return expr.Insert(g, r)
}

func TestConstantFolding(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(+ 1 2)")
	c, ok := constOf(g, id)
	require.True(t, ok)
	require.Equal(t, value.Int(3), c)
}

func TestConstantFoldingUnknownForColumn(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(+ a 2)")
	_, ok := constOf(g, id)
	require.False(t, ok)
}

func TestConstantFoldingSuppressesDivByZero(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(/ 1 0)")
	_, ok := constOf(g, id)
	require.False(t, ok)
}

func TestConstantFoldingSuppressesOverflow(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(+ 2147483647 1)")
	_, ok := constOf(g, id)
	require.False(t, ok)
}

func TestUnionConstantFoldsEquivalentLiteral(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(+ 1 2)")
	lit := insert(t, g, "3")
	require.Equal(t, g.Find(id), g.Find(lit), "(+ 1 2) must be unioned with the literal 3")
}

func TestColumnsOfBinaryOp(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(= a b)")
	cols := g.Data(id).Columns
	require.Len(t, cols, 2)
	_, hasA := cols[value.Column("a")]
	_, hasB := cols[value.Column("b")]
	require.True(t, hasA)
	require.True(t, hasB)
}

func TestColumnsOfConstantIsEmpty(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "1")
	require.Empty(t, g.Data(id).Columns)
}

func TestAggsDetectsAggregateCall(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(+ (sum a) 1)")
	aggs := g.Data(id).Aggs
	require.Len(t, aggs, 1)
	_, ok := aggs[0].(expr.Sum)
	require.True(t, ok)
}

func TestAggsDoesNotRecurseIntoNestedAggOperand(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(sum (count a))")
	aggs := g.Data(id).Aggs
	require.Len(t, aggs, 1, "only the outer sum is reported")
	_, ok := aggs[0].(expr.Sum)
	require.True(t, ok)
}

func TestAggsEmptyForPlanNode(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(scan t (list a b))")
	require.Empty(t, g.Data(id).Aggs)
}

func TestSchemaOfScanIsItsColumnList(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(scan t (list a b))")
	require.Len(t, g.Data(id).Schema, 2)
}

func TestSchemaPropagatesThroughFilterAndOrder(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(order (list (asc a)) (filter true (scan t (list a b))))")
	require.Len(t, g.Data(id).Schema, 2)
}

func TestSchemaUnknownForColumnPrune(t *testing.T) {
	g := newGraph()
	id := insert(t, g, "(column-prune (list a) (list a b))")
	require.Nil(t, g.Data(id).Schema)
}

func TestSchemaIsEqRequiresBothKnown(t *testing.T) {
	g := newGraph()
	list1 := insert(t, g, "(list a b)")
	list2 := insert(t, g, "(list a b)")
	require.True(t, schemaIsEq(g, list1, list2))

	scalar := insert(t, g, "(+ a b)")
	require.False(t, schemaIsEq(g, list1, scalar))
}
