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

// analyzeSchema computes the output expression list for plan nodes.
// It is nil ("unknown") for scalar expressions and for any plan node whose
// schema depends on an unresolved column-prune.
func analyzeSchema(g *Graph, node egraph.Language) Schema {
	concat := func(a, b Schema) Schema {
		if a == nil || b == nil {
			return nil
		}
		out := make(Schema, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		return out
	}

	switch n := node.(type) {
	case expr.Filter:
		return g.Data(n.Child).Schema
	case expr.Order:
		return g.Data(n.Child).Schema
	case expr.Limit:
		return g.Data(n.Child).Schema
	case expr.TopN:
		return g.Data(n.Child).Schema
	case expr.Empty:
		return g.Data(n.Child).Schema

	case expr.Join:
		return concat(g.Data(n.Left).Schema, g.Data(n.Right).Schema)
	case expr.HashJoin:
		return concat(g.Data(n.Left).Schema, g.Data(n.Right).Schema)

	case expr.List:
		return Schema(n.Items)

	case expr.Scan:
		return g.Data(n.Columns).Schema
	case expr.Values:
		// The schema of a Values node is its single row's own schema, so a
		// Values node with heterogeneous rows is simply not schema-stable;
		// callers only ever build it from rows sharing a row shape.
		rows := g.Nodes(n.Rows)
		for _, rn := range rows {
			if l, ok := rn.(expr.List); ok && len(l.Items) > 0 {
				return g.Data(l.Items[0]).Schema
			}
		}
		return nil
	case expr.Proj:
		return g.Data(n.Exprs).Schema
	case expr.Agg:
		return concat(g.Data(n.Aggs).Schema, g.Data(n.GroupKeys).Schema)

	case expr.ColumnPrune:
		// The prune hasn't been evaluated yet; schema is unknown until
		// the column-prune rewrite rule resolves it to a concrete List.
		return nil

	default:
		return nil
	}
}

// schemaIsEq reports whether a and b's e-classes both have a known and
// identical schema. Package rules carries its own copy of this check as
// the condition of the "proj-identity" rewrite.
func schemaIsEq(g *Graph, a, b egraph.Id) bool {
	sa, sb := g.Data(a).Schema, g.Data(b).Schema
	return sa != nil && schemaEqual(sa, sb)
}
