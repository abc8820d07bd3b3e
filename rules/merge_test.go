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

func TestLimitOverOrderFusesToTopN(t *testing.T) {
	testutil.AssertEquivalent(t, MergeRules(),
		"(limit 5 0 (order (list (asc a)) (scan t (list a))))",
		"(topn 5 0 (list (asc a)) (scan t (list a)))")
}

func TestConsecutiveFiltersMergeIntoConjunction(t *testing.T) {
	testutil.AssertEquivalent(t, MergeRules(),
		"(filter (> a 1) (filter (< a 10) (scan t (list a))))",
		"(filter (and (> a 1) (< a 10)) (scan t (list a)))")
}

func TestConsecutiveProjectionsMergeIntoOuter(t *testing.T) {
	testutil.AssertEquivalent(t, MergeRules(),
		"(proj (list a) (proj (list a b) (scan t (list a b))))",
		"(proj (list a) (scan t (list a b)))")
}
