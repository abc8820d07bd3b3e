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

// JoinRules returns the join-shape transforms: right-rotating a left-deep
// join chain so a condition confined to the rotated-past subtree can still
// be applied early, and rewriting an equi-join condition into a physical
// hash join once each side of the equality is confined to one input.
//
// join-reorder only rotates right; the initial plan is assumed left-deep,
// so there is no matching left-rotation rule.
func JoinRules() []pattern.Rewrite {
	return []pattern.Rewrite{
		pattern.Rw("join-reorder",
			"(join ?t ?c2 (join ?t ?c1 ?l ?m) ?r)",
			"(join ?t ?c1 ?l (join ?t ?c2 ?m ?r))",
		).If(columnsIsDisjoint("?c2", "?l")),

		pattern.Rw("join-to-hashjoin-single-key",
			"(join ?t (= ?el ?er) ?l ?r)",
			"(hashjoin ?t (list ?el) (list ?er) ?l ?r)",
		).If(columnsIsSubset("?el", "?l")).If(columnsIsSubset("?er", "?r")),

		pattern.Rw("join-to-hashjoin-two-key",
			"(join ?t (and (= ?el1 ?er1) (= ?el2 ?er2)) ?l ?r)",
			"(hashjoin ?t (list ?el1 ?el2) (list ?er1 ?er2) ?l ?r)",
		).If(columnsIsSubset("?el1", "?l")).If(columnsIsSubset("?er1", "?r")).
			If(columnsIsSubset("?el2", "?l")).If(columnsIsSubset("?er2", "?r")),
	}
}
