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

// PushdownRules returns the predicate-pushdown rules: filter commutes
// through order/limit/topn towards the scan, and filter over an inner join
// folds its condition into the join's "on" expression, which a second pass
// of rules then splits across the two sides whenever a conjunct is confined
// to one side's columns. No outer-join variant is included: this family is
// deliberately limited to inner joins.
func PushdownRules() []pattern.Rewrite {
	return []pattern.Rewrite{
		pattern.Rw("filter-order-commute", "(filter ?cond (order ?keys ?child))", "(order ?keys (filter ?cond ?child))"),
		pattern.Rw("order-filter-commute", "(order ?keys (filter ?cond ?child))", "(filter ?cond (order ?keys ?child))"),

		pattern.Rw("filter-limit-commute", "(filter ?cond (limit ?n ?offset ?child))", "(limit ?n ?offset (filter ?cond ?child))"),
		pattern.Rw("limit-filter-commute", "(limit ?n ?offset (filter ?cond ?child))", "(filter ?cond (limit ?n ?offset ?child))"),

		pattern.Rw("filter-topn-commute", "(filter ?cond (topn ?n ?offset ?keys ?child))", "(topn ?n ?offset ?keys (filter ?cond ?child))"),
		pattern.Rw("topn-filter-commute", "(topn ?n ?offset ?keys (filter ?cond ?child))", "(filter ?cond (topn ?n ?offset ?keys ?child))"),

		// Fold a filter sitting above an inner join into the join's own
		// condition, so the conjunct-splitting rules below get a chance to
		// push each half toward the scan it belongs to.
		pattern.Rw("filter-into-join", "(filter ?cond (join inner ?on ?l ?r))", "(join inner (and ?on ?cond) ?l ?r)"),

		// Two-conjunct form: split "and(c1,c2)" and push whichever half is
		// confined to one side, leaving the other as the residual on-clause.
		pattern.Rw("push-join-cond-left",
			"(join inner (and ?c1 ?c2) ?l ?r)",
			"(join inner ?c2 (filter ?c1 ?l) ?r)",
		).If(columnsIsSubset("?c1", "?l")),
		pattern.Rw("push-join-cond-right",
			"(join inner (and ?c1 ?c2) ?l ?r)",
			"(join inner ?c1 ?l (filter ?c2 ?r))",
		).If(columnsIsSubset("?c2", "?r")),

		// Single-condition form: the whole "on" expression is confined to
		// one side, so it pushes entirely, leaving "true" as the residual.
		pattern.Rw("push-join-single-left",
			"(join inner ?cond ?l ?r)",
			"(join inner true (filter ?cond ?l) ?r)",
		).If(columnsIsSubset("?cond", "?l")),
		pattern.Rw("push-join-single-right",
			"(join inner ?cond ?l ?r)",
			"(join inner true ?l (filter ?cond ?r))",
		).If(columnsIsSubset("?cond", "?r")),
	}
}
