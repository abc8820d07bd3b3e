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

// MergeRules returns rules that fuse adjacent plan nodes into a single,
// cheaper node: limit-over-order into a physical topn, consecutive filters
// into one conjunction, and consecutive projections into the outer list.
func MergeRules() []pattern.Rewrite {
	return []pattern.Rewrite{
		pattern.Rw("limit-order-fuse", "(limit ?n ?offset (order ?keys ?child))", "(topn ?n ?offset ?keys ?child)"),

		pattern.Rw("filter-filter-merge", "(filter ?c1 (filter ?c2 ?child))", "(filter (and ?c1 ?c2) ?child)"),

		pattern.Rw("proj-proj-merge", "(proj ?outer (proj ?inner ?child))", "(proj ?outer ?child)"),
	}
}
