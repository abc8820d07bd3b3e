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

// PlanRules returns the plan-shape bundle: cancellation of dead subplans,
// fusing/merging of adjacent nodes, and predicate pushdown toward scans.
// These three families are grouped together because they all operate on
// plan structure rather than scalar expressions or column lists, and
// commonly need to interleave (a pushed filter immediately cancels, a
// fused topn immediately absorbs a filter commuted through it).
func PlanRules() []pattern.Rewrite {
	var rules []pattern.Rewrite
	rules = append(rules, CancelRules()...)
	rules = append(rules, MergeRules()...)
	rules = append(rules, PushdownRules()...)
	return rules
}

// AllRules returns every rule in every bundle, the rule set a caller reaches
// for when it just wants full saturation rather than a staged pipeline.
func AllRules() []pattern.Rewrite {
	var rules []pattern.Rewrite
	rules = append(rules, ExpressionRules()...)
	rules = append(rules, PlanRules()...)
	rules = append(rules, ProjectionPushdownRules()...)
	rules = append(rules, ColumnPruningRules()...)
	rules = append(rules, JoinRules()...)
	return rules
}
