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

// Package rules assembles the optimizer's rewrite-rule sets:
// expression simplification, plan cancellation and merging, predicate
// pushdown, join reordering/hash-join selection, and projection pushdown
// with column pruning, each built from package pattern's Rewrite type.
package rules

import (
	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/pattern"
)

// isNotZero lets a rule fire only when var is known to be a constant other
// than the integer 0; an unknown (non-constant) var also blocks it
// (mul-div-cancel: (a*b)/b => a only when b is a known non-zero).
func isNotZero(v string) pattern.Condition {
	name := pattern.Var(v)
	return func(g *analysis.Graph, _ egraph.Id, subst pattern.Subst) bool {
		id, ok := subst.Ids[name]
		if !ok {
			return false
		}
		c := g.Data(id).Constant
		return c != nil && !c.IsZero()
	}
}

// columnsIsSubset requires var1's column set to be a subset of var2's,
// used to decide which side of a join a predicate can be pushed to.
func columnsIsSubset(v1, v2 string) pattern.Condition {
	return columnsAre(v1, v2, analysis.ColumnSet.IsSubset)
}

// columnsIsDisjoint requires var1 and var2 to share no columns, used by
// the join-reorder rule to check a predicate doesn't reference the
// subtree being rotated past.
func columnsIsDisjoint(v1, v2 string) pattern.Condition {
	return columnsAre(v1, v2, analysis.ColumnSet.IsDisjoint)
}

func columnsAre(v1, v2 string, f func(analysis.ColumnSet, analysis.ColumnSet) bool) pattern.Condition {
	name1, name2 := pattern.Var(v1), pattern.Var(v2)
	return func(g *analysis.Graph, _ egraph.Id, subst pattern.Subst) bool {
		id1, ok := subst.Ids[name1]
		if !ok {
			return false
		}
		id2, ok := subst.Ids[name2]
		if !ok {
			return false
		}
		return f(g.Data(id1).Columns, g.Data(id2).Columns)
	}
}

// schemaIsEq requires var1 and var2 to both have a known and identical
// schema, used by the "proj-identity" rule to drop a no-op
// projection.
func schemaIsEq(v1, v2 string) pattern.Condition {
	name1, name2 := pattern.Var(v1), pattern.Var(v2)
	return func(g *analysis.Graph, _ egraph.Id, subst pattern.Subst) bool {
		id1, ok := subst.Ids[name1]
		if !ok {
			return false
		}
		id2, ok := subst.Ids[name2]
		if !ok {
			return false
		}
		s1, s2 := g.Data(id1).Schema, g.Data(id2).Schema
		return s1 != nil && s2 != nil && len(s1) == len(s2) && schemaEqual(s1, s2)
	}
}

func schemaEqual(a, b analysis.Schema) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isList requires var to be a List node in at least one of its e-class's
// representations, the condition guarding the column-prune applier
// from firing before the list it would prune has actually been built.
func isList(v string) pattern.Condition {
	name := pattern.Var(v)
	return func(g *analysis.Graph, _ egraph.Id, subst pattern.Subst) bool {
		id, ok := subst.Ids[name]
		if !ok {
			return false
		}
		for _, n := range g.Nodes(id) {
			if _, ok := n.(expr.List); ok {
				return true
			}
		}
		return false
	}
}
