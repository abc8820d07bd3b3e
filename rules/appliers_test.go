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

func TestColumnMergeUnionsAndSortsByName(t *testing.T) {
	testutil.AssertEquivalent(t, ColumnPruningRules(),
		"(column-merge (list b) (list a c))",
		"(list a b c)")
}

func TestColumnMergeDedupesSharedColumns(t *testing.T) {
	testutil.AssertEquivalent(t, ColumnPruningRules(),
		"(column-merge (list a b) (list b c))",
		"(list a b c)")
}

func TestColumnPruneKeepsOnlySubsetColumns(t *testing.T) {
	testutil.AssertEquivalent(t, ColumnPruningRules(),
		"(column-prune (list a b) (list a b c))",
		"(list a b)")
}

func TestColumnPruneResolvesOnceItsListOperandIsMerged(t *testing.T) {
	testutil.AssertEquivalent(t, ColumnPruningRules(),
		"(column-prune (list a) (column-merge (list a) (list b)))",
		"(list a)")
}
