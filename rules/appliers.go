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

package rules

import (
	"sort"

	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/pattern"
	"github.com/dolthub/go-sqlopt/value"
)

// ColumnMergeApplier implements the column-merge programmatic applier: it
// reads Data.Columns off the two matched e-classes, unions the symbols, and
// builds a List of Column nodes sorted by name so the result is independent
// of match order and iteration order.
type ColumnMergeApplier struct{ A, B pattern.Var }

// Apply implements pattern.Applier.
func (a ColumnMergeApplier) Apply(g *analysis.Graph, _ egraph.Id, subst pattern.Subst) []egraph.Id {
	aid, ok := subst.Ids[a.A]
	if !ok {
		return nil
	}
	bid, ok := subst.Ids[a.B]
	if !ok {
		return nil
	}

	seen := map[value.Column]struct{}{}
	for c := range g.Data(aid).Columns {
		seen[c] = struct{}{}
	}
	for c := range g.Data(bid).Columns {
		seen[c] = struct{}{}
	}
	cols := make([]value.Column, 0, len(seen))
	for c := range seen {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

	items := make([]egraph.Id, len(cols))
	for i, c := range cols {
		items[i] = g.Add(expr.ColumnRef{Name: c})
	}
	return []egraph.Id{g.Add(expr.List{Items: items})}
}

// ColumnPruneApplier implements the column-prune programmatic applier: it
// finds the List e-node already present in the "list" e-class (typically
// put there by ColumnMergeApplier) and keeps only the elements whose
// column set is a subset of "filter"'s, dropping the rest.
type ColumnPruneApplier struct{ Filter, List pattern.Var }

// Apply implements pattern.Applier.
func (a ColumnPruneApplier) Apply(g *analysis.Graph, _ egraph.Id, subst pattern.Subst) []egraph.Id {
	fid, ok := subst.Ids[a.Filter]
	if !ok {
		return nil
	}
	lid, ok := subst.Ids[a.List]
	if !ok {
		return nil
	}
	allowed := g.Data(fid).Columns

	var list expr.List
	found := false
	for _, n := range g.Nodes(lid) {
		if l, ok := n.(expr.List); ok {
			list = l
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	kept := make([]egraph.Id, 0, len(list.Items))
	for _, item := range list.Items {
		if g.Data(item).Columns.IsSubset(allowed) {
			kept = append(kept, item)
		}
	}
	return []egraph.Id{g.Add(expr.List{Items: kept})}
}

// ColumnPruningRules resolves the column-merge/column-prune helper nodes
// that the projection-pushdown rules insert: once a column-prune's list
// operand has a concrete List e-node (column-merge having already run),
// evaluate both into their final pruned List.
func ColumnPruningRules() []pattern.Rewrite {
	return []pattern.Rewrite{
		{
			Name:     "column-merge",
			Searcher: pattern.Op("column-merge", pattern.V("?a"), pattern.V("?b")),
			Applier:  ColumnMergeApplier{A: "?a", B: "?b"},
		},
		{
			Name:       "column-prune",
			Searcher:   pattern.Op("column-prune", pattern.V("?filter"), pattern.V("?list")),
			Applier:    ColumnPruneApplier{Filter: "?filter", List: "?list"},
			Conditions: []pattern.Condition{isList("?list")},
		},
	}
}
