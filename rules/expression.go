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

// ExpressionRules returns the scalar-expression simplification rules:
// arithmetic identities, comparison normalization, and three-valued boolean
// simplification.
func ExpressionRules() []pattern.Rewrite {
	return []pattern.Rewrite{
		pattern.Rw("add-zero", "(+ ?a 0)", "?a"),
		pattern.Rw("add-comm", "(+ ?a ?b)", "(+ ?b ?a)"),
		pattern.Rw("add-assoc", "(+ ?a (+ ?b ?c))", "(+ (+ ?a ?b) ?c)"),
		pattern.Rw("add-same", "(+ ?a ?a)", "(* ?a 2)"),
		pattern.Rw("add-neg", "(+ ?a (- ?b))", "(- ?a ?b)"),

		pattern.Rw("mul-zero", "(* ?a 0)", "0"),
		pattern.Rw("mul-one", "(* ?a 1)", "?a"),
		pattern.Rw("mul-minus", "(* ?a -1)", "(- ?a)"),
		pattern.Rw("mul-comm", "(* ?a ?b)", "(* ?b ?a)"),
		pattern.Rw("mul-assoc", "(* ?a (* ?b ?c))", "(* (* ?a ?b) ?c)"),

		pattern.Rw("neg-neg", "(- (- ?a))", "?a"),
		pattern.Rw("neg-sub", "(- (- ?a ?b))", "(- ?b ?a)"),

		pattern.Rw("sub-zero", "(- ?a 0)", "?a"),
		pattern.Rw("zero-sub", "(- 0 ?a)", "(- ?a)"),
		pattern.Rw("sub-cancel", "(- ?a ?a)", "0"),

		pattern.Rw("mul-add-distri", "(* ?a (+ ?b ?c))", "(+ (* ?a ?b) (* ?a ?c))"),
		pattern.Rw("mul-add-factor", "(+ (* ?a ?b) (* ?a ?c))", "(* ?a (+ ?b ?c))"),

		pattern.Rw("mul-div-cancel", "(/ (* ?a ?b) ?b)", "?a").If(isNotZero("?b")),

		pattern.Rw("eq-eq", "(= ?a ?a)", "true"),
		pattern.Rw("ne-eq", "(<> ?a ?a)", "false"),
		pattern.Rw("gt-eq", "(> ?a ?a)", "false"),
		pattern.Rw("lt-eq", "(< ?a ?a)", "false"),
		pattern.Rw("ge-eq", "(>= ?a ?a)", "true"),
		pattern.Rw("le-eq", "(<= ?a ?a)", "true"),
		pattern.Rw("eq-comm", "(= ?a ?b)", "(= ?b ?a)"),
		pattern.Rw("ne-comm", "(<> ?a ?b)", "(<> ?b ?a)"),
		pattern.Rw("gt-comm", "(> ?a ?b)", "(< ?b ?a)"),
		pattern.Rw("lt-comm", "(< ?a ?b)", "(> ?b ?a)"),
		pattern.Rw("ge-comm", "(>= ?a ?b)", "(<= ?b ?a)"),
		pattern.Rw("le-comm", "(<= ?a ?b)", "(>= ?b ?a)"),
		pattern.Rw("eq-add", "(= (+ ?a ?b) ?c)", "(= ?a (- ?c ?b))"),
		pattern.Rw("ne-add", "(<> (+ ?a ?b) ?c)", "(<> ?a (- ?c ?b))"),
		pattern.Rw("gt-add", "(> (+ ?a ?b) ?c)", "(> ?a (- ?c ?b))"),
		pattern.Rw("lt-add", "(< (+ ?a ?b) ?c)", "(< ?a (- ?c ?b))"),
		pattern.Rw("ge-add", "(>= (+ ?a ?b) ?c)", "(>= ?a (- ?c ?b))"),
		pattern.Rw("le-add", "(<= (+ ?a ?b) ?c)", "(<= ?a (- ?c ?b))"),
		pattern.Rw("eq-trans", "(and (= ?a ?b) (= ?b ?c))", "(and (= ?a ?b) (= ?a ?c))"),

		pattern.Rw("not-eq", "(not (= ?a ?b))", "(<> ?a ?b)"),
		pattern.Rw("not-ne", "(not (<> ?a ?b))", "(= ?a ?b)"),
		pattern.Rw("not-gt", "(not (> ?a ?b))", "(<= ?a ?b)"),
		pattern.Rw("not-ge", "(not (>= ?a ?b))", "(< ?a ?b)"),
		pattern.Rw("not-lt", "(not (< ?a ?b))", "(>= ?a ?b)"),
		pattern.Rw("not-le", "(not (<= ?a ?b))", "(> ?a ?b)"),
		pattern.Rw("not-and", "(not (and ?a ?b))", "(or (not ?a) (not ?b))"),
		pattern.Rw("not-or", "(not (or ?a ?b))", "(and (not ?a) (not ?b))"),
		pattern.Rw("not-not", "(not (not ?a))", "?a"),

		pattern.Rw("and-false", "(and false ?a)", "false"),
		pattern.Rw("and-true", "(and true ?a)", "?a"),
		pattern.Rw("and-null", "(and null ?a)", "null"),
		pattern.Rw("and-same", "(and ?a ?a)", "?a"),
		pattern.Rw("and-comm", "(and ?a ?b)", "(and ?b ?a)"),
		pattern.Rw("and-not", "(and ?a (not ?a))", "false"),
		pattern.Rw("and-assoc", "(and ?a (and ?b ?c))", "(and (and ?a ?b) ?c)"),

		pattern.Rw("or-false", "(or false ?a)", "?a"),
		pattern.Rw("or-true", "(or true ?a)", "true"),
		pattern.Rw("or-null", "(or null ?a)", "null"),
		pattern.Rw("or-same", "(or ?a ?a)", "?a"),
		pattern.Rw("or-comm", "(or ?a ?b)", "(or ?b ?a)"),
		pattern.Rw("or-not", "(or ?a (not ?a))", "true"),
		pattern.Rw("or-assoc", "(or ?a (or ?b ?c))", "(or (or ?a ?b) ?c)"),
		pattern.Rw("or-and", "(or (and ?a ?b) (and ?a ?c))", "(and ?a (or ?b ?c))"),

		pattern.Rw("xor-false", "(xor false ?a)", "?a"),
		pattern.Rw("xor-true", "(xor true ?a)", "(not ?a)"),
		pattern.Rw("xor-null", "(xor null ?a)", "null"),
		pattern.Rw("xor-same", "(xor ?a ?a)", "false"),
		pattern.Rw("xor-comm", "(xor ?a ?b)", "(xor ?b ?a)"),
		pattern.Rw("xor-not", "(xor ?a (not ?a))", "true"),
		pattern.Rw("xor-assoc", "(xor ?a (xor ?b ?c))", "(xor (xor ?a ?b) ?c)"),
	}
}
