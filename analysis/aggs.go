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

// analyzeAggs collects every aggregate-function call under node. An
// aggregate's own operand is not recursed into, so sum(count(a)) reports
// only the outer sum(count(a)) call; the aggregate planner's nested-agg
// check relies on that operand's own Aggs set being non-empty to
// reject it.
func analyzeAggs(g *Graph, node egraph.Language) []egraph.Language {
	if expr.IsAggregate(node) {
		return []egraph.Language{node}
	}

	switch node.(type) {
	case expr.Nested, expr.List, expr.Neg, expr.Not, expr.IsNull,
		expr.Add, expr.Sub, expr.Mul, expr.Div,
		expr.Eq, expr.NotEq, expr.Gt, expr.Lt, expr.GtEq, expr.LtEq,
		expr.And, expr.Or, expr.Xor, expr.Asc, expr.Desc:
		var out []egraph.Language
		for _, c := range node.Children() {
			out = append(out, g.Data(c).Aggs...)
		}
		return out

	default:
		// Plan nodes (scan, proj, filter, join, ...) and leaves
		// (constant, column, column-index) never themselves carry an
		// aggregate call up through this analysis; the aggregate
		// planner builds Agg nodes explicitly instead of discovering
		// them this way.
		return nil
	}
}
