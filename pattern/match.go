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
	"github.com/dolthub/go-sqlopt/expr"
)

// Subst is a variable binding produced by a successful match: Ids binds
// scalar/plan pattern variables to e-classes, Types binds a join-type
// pattern variable ("?type") to the concrete JoinType it matched, since
// JoinType isn't itself an e-class (see JoinTypeSpec).
type Subst struct {
	Ids   map[Var]egraph.Id
	Types map[Var]expr.JoinType
}

func newSubst() Subst {
	return Subst{Ids: map[Var]egraph.Id{}, Types: map[Var]expr.JoinType{}}
}

func (s Subst) clone() Subst {
	c := newSubst()
	for k, v := range s.Ids {
		c.Ids[k] = v
	}
	for k, v := range s.Types {
		c.Types[k] = v
	}
	return c
}

// Match searches e-class id for every way pat can bind its variables,
// implementing e-matching: a structural pattern matches if ANY node stored
// in the class has the right shape, and each of its children is matched
// (possibly several ways) against the corresponding child pattern.
func Match(g *analysis.Graph, pat Node, id egraph.Id) []Subst {
	return matchInto(g, pat, id, newSubst())
}

func matchInto(g *analysis.Graph, pat Node, id egraph.Id, subst Subst) []Subst {
	id = g.Find(id)

	switch p := pat.(type) {
	case VarNode:
		if bound, ok := subst.Ids[p.Name]; ok {
			if g.Find(bound) == id {
				return []Subst{subst}
			}
			return nil
		}
		next := subst.clone()
		next.Ids[p.Name] = id
		return []Subst{next}

	case LiteralNode:
		for _, n := range g.Nodes(id) {
			if n.Equal(p.Node) {
				return []Subst{subst.clone()}
			}
		}
		return nil

	case OpNode:
		var results []Subst
		for _, n := range g.Nodes(id) {
			if n.Op() != p.Op {
				continue
			}
			children := n.Children()
			if len(children) != len(p.Children) {
				continue
			}
			base := subst.clone()
			if p.JoinType != nil {
				jt, ok := joinTypeOf(n)
				if !ok {
					continue
				}
				if p.JoinType.isVar() {
					if bound, ok := base.Types[p.JoinType.Var]; ok {
						if bound != jt {
							continue
						}
					} else {
						base.Types[p.JoinType.Var] = jt
					}
				} else if *p.JoinType.Lit != jt {
					continue
				}
			}

			frontier := []Subst{base}
			ok := true
			for i, childPat := range p.Children {
				var next []Subst
				for _, s := range frontier {
					next = append(next, matchInto(g, childPat, children[i], s)...)
				}
				frontier = next
				if len(frontier) == 0 {
					ok = false
					break
				}
			}
			if ok {
				results = append(results, frontier...)
			}
		}
		return results

	default:
		return nil
	}
}

func joinTypeOf(n egraph.Language) (expr.JoinType, bool) {
	switch j := n.(type) {
	case expr.Join:
		return j.Type, true
	case expr.HashJoin:
		return j.Type, true
	default:
		return 0, false
	}
}
