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

import "github.com/dolthub/go-sqlopt/pattern"

// ProjectionPushdownRules returns the rules that push a projection's column
// needs down through the plan. A no-op projection (one whose expression
// list already matches its child's schema) is dropped outright; projection
// commutes freely through limit. Under order, topn, filter and agg, the
// projection inserts an inner "proj (column-merge target needed-by-node)
// child" that ColumnPruningRules later resolves into a concrete column
// list: these nodes pass every input column straight through to their
// output, so the inner list only needs to merge what the node itself
// additionally requires (its keys/condition/aggregate inputs) with the
// outer target, never prune them away. Under join, the inner projection on
// each side instead prunes the merged target+condition columns down to
// that side's own Data.Columns ("column-prune left (column-merge target
// cond)"), since a column belonging to the other side can never be
// satisfied there. Under scan, the column list is pruned directly by the
// target. See DESIGN.md "column-prune imprecision" for the one place this
// boundary is deliberately left coarser than the true minimal need.
func ProjectionPushdownRules() []pattern.Rewrite {
	return []pattern.Rewrite{
		pattern.Rw("proj-identity", "(proj ?exprs ?child)", "?child").If(schemaIsEq("?exprs", "?child")),

		pattern.Rw("proj-limit-commute", "(proj ?exprs (limit ?n ?offset ?child))", "(limit ?n ?offset (proj ?exprs ?child))"),
		pattern.Rw("limit-proj-commute", "(limit ?n ?offset (proj ?exprs ?child))", "(proj ?exprs (limit ?n ?offset ?child))"),

		pattern.Rw("push-proj-order",
			"(proj ?target (order ?keys ?child))",
			"(proj ?target (order ?keys (proj (column-merge ?target ?keys) ?child)))",
		),
		pattern.Rw("push-proj-topn",
			"(proj ?target (topn ?n ?offset ?keys ?child))",
			"(proj ?target (topn ?n ?offset ?keys (proj (column-merge ?target ?keys) ?child)))",
		),
		pattern.Rw("push-proj-filter",
			"(proj ?target (filter ?cond ?child))",
			"(proj ?target (filter ?cond (proj (column-merge ?target ?cond) ?child)))",
		),
		pattern.Rw("push-proj-agg",
			"(proj ?target (agg ?aggs ?groupkeys ?child))",
			"(proj ?target (agg ?aggs ?groupkeys (proj (column-merge ?target (column-merge ?aggs ?groupkeys)) ?child)))",
		),
		pattern.Rw("push-proj-join-left",
			"(proj ?target (join ?t ?cond ?l ?r))",
			"(proj ?target (join ?t ?cond (proj (column-prune ?l (column-merge ?target ?cond)) ?l) ?r))",
		),
		pattern.Rw("push-proj-join-right",
			"(proj ?target (join ?t ?cond ?l ?r))",
			"(proj ?target (join ?t ?cond ?l (proj (column-prune ?r (column-merge ?target ?cond)) ?r)))",
		),
		pattern.Rw("push-proj-scan",
			"(proj ?target (scan ?table ?cols))",
			"(proj ?target (scan ?table (column-prune ?target ?cols)))",
		),
	}
}
