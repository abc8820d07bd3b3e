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

// CancelRules returns rules that drop or collapse plan nodes that can never
// affect the result: null/zero limits, vacuously true/false filters, and any
// operator sitting over a statically-empty child.
func CancelRules() []pattern.Rewrite {
	return []pattern.Rewrite{
		pattern.Rw("limit-null-offset-zero", "(limit null 0 ?child)", "?child"),
		pattern.Rw("limit-zero", "(limit 0 ?offset ?child)", "(empty ?child)"),
		pattern.Rw("order-null", "(order null ?child)", "?child"),

		pattern.Rw("filter-true", "(filter true ?child)", "?child"),
		pattern.Rw("filter-false", "(filter false ?child)", "(empty ?child)"),

		pattern.Rw("inner-join-false", "(join inner false ?left ?right)", "(empty (join inner false ?left ?right))"),

		pattern.Rw("proj-on-empty", "(proj ?exprs (empty ?child))", "(empty ?exprs)"),
		pattern.Rw("filter-on-empty", "(filter ?cond (empty ?child))", "(empty ?child)"),
		pattern.Rw("order-on-empty", "(order ?keys (empty ?child))", "(empty ?child)"),
		pattern.Rw("limit-on-empty", "(limit ?n ?offset (empty ?child))", "(empty ?child)"),
		pattern.Rw("topn-on-empty", "(topn ?n ?offset ?keys (empty ?child))", "(empty ?child)"),

		pattern.Rw("inner-join-on-left-empty", "(join inner ?cond (empty ?left) ?right)", "(empty (join inner ?cond (empty ?left) ?right))"),
		pattern.Rw("inner-join-on-right-empty", "(join inner ?cond ?left (empty ?right))", "(empty (join inner ?cond ?left (empty ?right)))"),
	}
}
