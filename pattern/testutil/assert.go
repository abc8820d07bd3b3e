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

// Package testutil provides helpers shared by the rule-set tests, mirroring
// egg's test_fn! macro: parse two expressions, saturate one with a rule
// set, and assert it became equivalent to the other.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/pattern"
)

// AssertEquivalent parses lhs and rhs, runs rules to saturation over a
// graph seeded with lhs, and asserts lhs and rhs ended up in the same
// e-class.
func AssertEquivalent(t *testing.T, rules []pattern.Rewrite, lhs, rhs string) {
	t.Helper()

	g := egraph.New[analysis.Data](analysis.ExprAnalysis{})

	lhsExpr, err := expr.Parse(lhs)
	require.NoError(t, err, "parsing lhs %q", lhs)
	lhsID := expr.Insert(g, lhsExpr)

	runner := pattern.NewRunner(pattern.DefaultLimits())
	reason := runner.Run(context.Background(), g, rules)
	require.Contains(t, []pattern.StopReason{pattern.Saturated, pattern.IterationLimit}, reason,
		"saturation run stopped unexpectedly: %s", reason)

	rhsExpr, err := expr.Parse(rhs)
	require.NoError(t, err, "parsing rhs %q", rhs)
	rhsID := expr.Insert(g, rhsExpr)
	g.Rebuild()

	require.Equal(t, g.Find(lhsID), g.Find(rhsID),
		"expected %q to rewrite to %q, but they ended up in different e-classes", lhs, rhs)
}

// AssertNotEquivalent is the negative counterpart, used by rule tests that
// assert a rewrite must NOT fire (e.g. a condition correctly blocking it).
func AssertNotEquivalent(t *testing.T, rules []pattern.Rewrite, lhs, rhs string) {
	t.Helper()

	g := egraph.New[analysis.Data](analysis.ExprAnalysis{})

	lhsExpr, err := expr.Parse(lhs)
	require.NoError(t, err)
	lhsID := expr.Insert(g, lhsExpr)

	runner := pattern.NewRunner(pattern.DefaultLimits())
	runner.Run(context.Background(), g, rules)

	rhsExpr, err := expr.Parse(rhs)
	require.NoError(t, err)
	rhsID := expr.Insert(g, rhsExpr)
	g.Rebuild()

	require.NotEqual(t, g.Find(lhsID), g.Find(rhsID),
		"expected %q NOT to rewrite to %q", lhs, rhs)
}
