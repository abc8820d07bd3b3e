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
	"testing"

	"github.com/dolthub/go-sqlopt/pattern/testutil"
)

// These mirror the end-to-end scenarios run against the full rule set: every
// bundle saturating together from a literal input to its known-equivalent
// term.

func TestScenarioAdditionCancelsNegatedSelf(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(), "(+ (- (- a 0)) (+ a b))", "b")
}

func TestScenarioMultiplicationCancelsOppositeSigns(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(), "(+ (* (- b) a) (* b a))", "0")
}

func TestScenarioComparisonWithAdditionNormalizes(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(), "(> (+ a b) a)", "(< 0 b)")
}

func TestScenarioBooleanIdentityCollapsesToFalse(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(),
		"(and (xor a true) (or (and a b) (and (not b) a)))", "false")
}

func TestScenarioConstantFoldingThroughDivByNull(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(),
		"(isnull (- (+ 1 (- 2 (* 3 (/ 4 null))))))", "true")
}

func TestScenarioEmptyPropagatesThroughWholePlan(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(),
		"(proj (list b) (limit 1 1 (order (list (asc (sum a))) (filter (= a 1) (join inner false (scan t1 (list a b)) (scan t2 (list c d)))))))",
		"(empty (list b))")
}

func TestScenarioHashJoinRewriteWithResidualFilter(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(),
		"(filter (and (= t1.id t2.id) (> t1.age 2)) (join inner true (scan t1 (list t1.id t1.age)) (scan t2 (list t2.id))))",
		"(hashjoin inner (list t1.id) (list t2.id) (filter (> t1.age 2) (scan t1 (list t1.id t1.age))) (scan t2 (list t2.id)))")
}

func TestScenarioStudentEnrolledPredicatePushdown(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(),
		"(filter (and (= s.sid e.sid) (and (> s.gpa 3) (< e.grade 60))) (join inner true (scan student (list s.sid s.gpa)) (scan enrolled (list e.sid e.grade))))",
		"(join inner (= s.sid e.sid) (filter (> s.gpa 3) (scan student (list s.sid s.gpa))) (filter (< e.grade 60) (scan enrolled (list e.sid e.grade))))")
}

func TestScenarioColumnPruningThroughGroupByOrderByHaving(t *testing.T) {
	testutil.AssertEquivalent(t, AllRules(),
		"(proj (list a (sum b)) (order (list (asc a)) (filter (> (sum b) 1) (agg (list (sum b)) (list a) (scan t (list a b c d))))))",
		"(proj (list a (sum b)) (order (list (asc a)) (filter (> (sum b) 1) (proj (list a b) (agg (list (sum b)) (list a) (scan t (list a b)))))))")
}

func TestPlanRulesIsCancelMergeAndPushdownCombined(t *testing.T) {
	plan := PlanRules()
	require := len(CancelRules()) + len(MergeRules()) + len(PushdownRules())
	if len(plan) != require {
		t.Fatalf("PlanRules returned %d rules, want %d", len(plan), require)
	}
}

func TestAllRulesIncludesEveryBundle(t *testing.T) {
	all := AllRules()
	want := len(ExpressionRules()) + len(PlanRules()) + len(ProjectionPushdownRules()) +
		len(ColumnPruningRules()) + len(JoinRules())
	if len(all) != want {
		t.Fatalf("AllRules returned %d rules, want %d", len(all), want)
	}
}
