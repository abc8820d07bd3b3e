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

package pattern

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
)

func newGraph() *analysis.Graph { return egraph.New[analysis.Data](analysis.ExprAnalysis{}) }

func TestParsePatternRoundTripsVars(t *testing.T) {
	p := MustParse("(+ ?a ?b)")
	op, ok := p.(OpNode)
	require.True(t, ok)
	require.Equal(t, "+", op.Op)
	require.Len(t, op.Children, 2)
	_, ok = op.Children[0].(VarNode)
	require.True(t, ok)
}

func TestMatchBindsRepeatedVariableConsistently(t *testing.T) {
	g := newGraph()
	id := expr.Insert(g, mustParseExpr(t, "(+ a a)"))

	matches := Match(g, MustParse("(+ ?x ?x)"), id)
	require.Len(t, matches, 1)

	matches = Match(g, MustParse("(+ ?x ?y)"), id)
	require.Len(t, matches, 1)
}

func TestMatchRejectsInconsistentRepeatedVariable(t *testing.T) {
	g := newGraph()
	id := expr.Insert(g, mustParseExpr(t, "(+ a b)"))

	matches := Match(g, MustParse("(+ ?x ?x)"), id)
	require.Empty(t, matches)
}

func TestInstantiateBuildsNewTerm(t *testing.T) {
	g := newGraph()
	id := expr.Insert(g, mustParseExpr(t, "(+ a b)"))

	matches := Match(g, MustParse("(+ ?x ?y)"), id)
	require.Len(t, matches, 1)

	result := Instantiate(g, MustParse("(+ ?y ?x)"), matches[0])
	// (+ b a) is a distinct e-class from (+ a b) until a rewrite unions them.
	require.NotEqual(t, id, g.Find(result))
}

func TestRunnerAppliesAddZeroToSaturation(t *testing.T) {
	g := newGraph()
	id := expr.Insert(g, mustParseExpr(t, "(+ a 0)"))

	rules := []Rewrite{Rw("add-zero", "(+ ?a 0)", "?a")}
	runner := NewRunner(DefaultLimits())
	reason := runner.Run(context.Background(), g, rules)
	require.Equal(t, Saturated, reason)

	aID := expr.Insert(g, mustParseExpr(t, "a"))
	require.Equal(t, g.Find(id), g.Find(aID))
}

func TestRunnerHonorsCondition(t *testing.T) {
	g := newGraph()
	id := expr.Insert(g, mustParseExpr(t, "(/ (* a 0) 0)"))

	rule := Rw("mul-div-cancel", "(/ (* ?a ?b) ?b)", "?a").If(isNotZero("?b"))
	runner := NewRunner(DefaultLimits())
	runner.Run(context.Background(), g, []Rewrite{rule})

	aID := expr.Insert(g, mustParseExpr(t, "a"))
	require.NotEqual(t, g.Find(id), g.Find(aID), "rule must not fire when ?b is the zero constant")
}

func isNotZero(v string) Condition {
	name := Var(v)
	return func(g *analysis.Graph, _ egraph.Id, subst Subst) bool {
		id, ok := subst.Ids[name]
		if !ok {
			return false
		}
		c := g.Data(id).Constant
		return c == nil || !c.IsZero()
	}
}

func mustParseExpr(t *testing.T, s string) expr.RecExpr {
	t.Helper()
	r, err := expr.Parse(s)
	require.NoError(t, err)
	return r
}
