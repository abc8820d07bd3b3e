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
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
)

// analyzeColumns computes the set of columns referenced anywhere under
// node, used by the pushdown rules' "is this predicate confined to the
// left/right side" conditions.
func analyzeColumns(g *Graph, node egraph.Language) ColumnSet {
	switch n := node.(type) {
	case expr.ColumnRef:
		return newColumnSet(n.Name)

	case expr.Proj:
		return g.Data(n.Exprs).Columns

	case expr.Agg:
		return unionColumnSets(g.Data(n.Aggs).Columns, g.Data(n.GroupKeys).Columns)

	case expr.ColumnPrune:
		// Inaccurate by construction: this reports the filter class's full
		// column set rather than the pruned result, since the prune hasn't
		// been evaluated yet at Make time and the filter class may itself
		// be an arbitrary plan subtree with columns beyond what's truly
		// needed. DESIGN.md "column-prune imprecision" records why this is
		// kept rather than tightened.
		return g.Data(n.Filter).Columns

	default:
		sets := make([]ColumnSet, 0, len(node.Children()))
		for _, c := range node.Children() {
			sets = append(sets, g.Data(c).Columns)
		}
		return unionColumnSets(sets...)
	}
}
