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
	"fmt"

	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
)

// Applier produces the Ids that should be unioned with a matched e-class,
// for one successful Subst. A pattern applier (the common case) simply
// instantiates its right-hand-side pattern; a handful of rules (the
// column-merge/column-prune) need to inspect analysis data to compute their
// result and so implement this directly instead (see rules.ColumnMergeApplier,
// rules.ColumnPruneApplier).
type Applier interface {
	Apply(g *analysis.Graph, matched egraph.Id, subst Subst) []egraph.Id
}

// PatternApplier instantiates Rhs against the match's Subst and returns the
// single resulting Id, egg's ordinary Pattern-as-Applier behavior.
type PatternApplier struct{ Rhs Node }

// Apply implements Applier.
func (a PatternApplier) Apply(g *analysis.Graph, matched egraph.Id, subst Subst) []egraph.Id {
	return []egraph.Id{Instantiate(g, a.Rhs, subst)}
}

// Instantiate builds pat against subst, inserting every newly-built node
// into g (hash-consing as usual), and returns the Id of the root.
func Instantiate(g *analysis.Graph, pat Node, subst Subst) egraph.Id {
	switch p := pat.(type) {
	case VarNode:
		id, ok := subst.Ids[p.Name]
		if !ok {
			panic(fmt.Sprintf("pattern: unbound variable %s in applier", p.Name))
		}
		return g.Find(id)

	case LiteralNode:
		return g.Add(p.Node)

	case OpNode:
		children := make([]egraph.Id, len(p.Children))
		for i, c := range p.Children {
			children[i] = Instantiate(g, c, subst)
		}
		node := buildNode(p, subst, children)
		return g.Add(node)

	default:
		panic(fmt.Sprintf("pattern: unknown pattern node %T", pat))
	}
}

func buildNode(p OpNode, subst Subst, c []egraph.Id) egraph.Language {
	switch p.Op {
	case "list":
		return expr.List{Items: c}
	case "`":
		return expr.Nested{X: c[0]}
	case "-":
		switch len(c) {
		case 1:
			return expr.Neg{X: c[0]}
		case 2:
			return expr.NewSub(c[0], c[1])
		}
	case "not":
		return expr.Not{X: c[0]}
	case "isnull":
		return expr.IsNull{X: c[0]}
	case "+":
		return expr.NewAdd(c[0], c[1])
	case "*":
		return expr.NewMul(c[0], c[1])
	case "/":
		return expr.NewDiv(c[0], c[1])
	case "=":
		return expr.NewEq(c[0], c[1])
	case "<>":
		return expr.NewNotEq(c[0], c[1])
	case ">":
		return expr.NewGt(c[0], c[1])
	case "<":
		return expr.NewLt(c[0], c[1])
	case ">=":
		return expr.NewGtEq(c[0], c[1])
	case "<=":
		return expr.NewLtEq(c[0], c[1])
	case "and":
		return expr.NewAnd(c[0], c[1])
	case "or":
		return expr.NewOr(c[0], c[1])
	case "xor":
		return expr.NewXor(c[0], c[1])
	case "max":
		return expr.Max{X: c[0]}
	case "min":
		return expr.Min{X: c[0]}
	case "sum":
		return expr.Sum{X: c[0]}
	case "avg":
		return expr.Avg{X: c[0]}
	case "count":
		return expr.Count{X: c[0]}
	case "asc":
		return expr.Asc{Key: c[0]}
	case "desc":
		return expr.Desc{Key: c[0]}
	case "empty":
		return expr.Empty{Child: c[0]}
	case "scan":
		return expr.Scan{Table: c[0], Columns: c[1]}
	case "values":
		return expr.Values{Rows: c[0]}
	case "proj":
		return expr.Proj{Exprs: c[0], Child: c[1]}
	case "filter":
		return expr.Filter{Cond: c[0], Child: c[1]}
	case "order":
		return expr.Order{Keys: c[0], Child: c[1]}
	case "limit":
		return expr.Limit{N: c[0], Offset: c[1], Child: c[2]}
	case "topn":
		return expr.TopN{N: c[0], Offset: c[1], Keys: c[2], Child: c[3]}
	case "join":
		return expr.Join{Type: joinTypeFor(p, subst), Cond: c[0], Left: c[1], Right: c[2]}
	case "hashjoin":
		return expr.HashJoin{Type: joinTypeFor(p, subst), LeftKeys: c[0], RightKeys: c[1], Left: c[2], Right: c[3]}
	case "agg":
		return expr.Agg{Aggs: c[0], GroupKeys: c[1], Child: c[2]}
	case "column-merge":
		return expr.ColumnMerge{A: c[0], B: c[1]}
	case "column-prune":
		return expr.ColumnPrune{Filter: c[0], List: c[1]}
	}
	panic(fmt.Sprintf("pattern: unknown applier operator %q", p.Op))
}

func joinTypeFor(p OpNode, subst Subst) expr.JoinType {
	if p.JoinType == nil {
		panic(fmt.Sprintf("pattern: %q applier missing join type", p.Op))
	}
	if p.JoinType.Lit != nil {
		return *p.JoinType.Lit
	}
	jt, ok := subst.Types[p.JoinType.Var]
	if !ok {
		panic(fmt.Sprintf("pattern: unbound join-type variable %s in applier", p.JoinType.Var))
	}
	return jt
}
