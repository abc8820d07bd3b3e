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

package pattern

import (
	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
)

// Condition guards a Rewrite: the match only fires if every Condition
// returns true for the match's Subst, egg's `rw!(... if cond)` syntax.
type Condition func(g *analysis.Graph, matched egraph.Id, subst Subst) bool

// Rewrite is a single named rule: search for Searcher, and for every match
// that satisfies every Condition, union the matched class with whatever
// Applier computes.
type Rewrite struct {
	Name       string
	Searcher   Node
	Applier    Applier
	Conditions []Condition
}

// Rw builds the common case: a rule whose right-hand side is itself a
// pattern, parsing both sides from text the way egg's rewrite! macro does.
func Rw(name, lhs, rhs string) Rewrite {
	return Rewrite{
		Name:     name,
		Searcher: MustParse(lhs),
		Applier:  PatternApplier{Rhs: MustParse(rhs)},
	}
}

// If attaches a condition to r and returns it, for chaining: Rw(...).If(cond).
func (r Rewrite) If(c Condition) Rewrite {
	r.Conditions = append(r.Conditions, c)
	return r
}

func (r Rewrite) satisfied(g *analysis.Graph, matched egraph.Id, subst Subst) bool {
	for _, c := range r.Conditions {
		if !c(g, matched, subst) {
			return false
		}
	}
	return true
}
