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

package analysis

import (
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/value"
)

// constOf returns the known constant value of e-class id, or ok=false if
// the class isn't (yet) known to be constant.
func constOf(g *Graph, id egraph.Id) (value.Value, bool) {
	c := g.Data(id).Constant
	if c == nil {
		return value.Value{}, false
	}
	return *c, true
}

// evalConstant computes the constant-folding result for a freshly added
// node: every operand must already be known-constant, short-circuiting to
// "unknown" the moment one isn't.
func evalConstant(g *Graph, node egraph.Language) *value.Value {
	result, ok := tryEvalConstant(g, node)
	if !ok {
		return nil
	}
	return &result
}

func tryEvalConstant(g *Graph, node egraph.Language) (value.Value, bool) {
	switch n := node.(type) {
	case expr.Constant:
		return n.Val, true

	case expr.Neg:
		a, ok := constOf(g, n.X)
		if !ok {
			return value.Value{}, false
		}
		return value.Neg(a)
	case expr.Not:
		a, ok := constOf(g, n.X)
		if !ok {
			return value.Value{}, false
		}
		return value.Not(a)
	case expr.IsNull:
		a, ok := constOf(g, n.X)
		if !ok {
			return value.Value{}, false
		}
		return value.Bool(a.IsNull()), true

	case expr.Add:
		return binConst(g, n.L, n.R, value.Add)
	case expr.Sub:
		return binConst(g, n.L, n.R, value.Sub)
	case expr.Mul:
		return binConst(g, n.L, n.R, value.Mul)
	case expr.Div:
		a, b, ok := constPair(g, n.L, n.R)
		if !ok {
			return value.Value{}, false
		}
		if b.IsZero() {
			return value.Value{}, false
		}
		return value.Div(a, b)
	case expr.Eq:
		return binConst(g, n.L, n.R, value.Eq)
	case expr.NotEq:
		return binConst(g, n.L, n.R, value.NotEq)
	case expr.Gt:
		return binConst(g, n.L, n.R, value.Gt)
	case expr.Lt:
		return binConst(g, n.L, n.R, value.Lt)
	case expr.GtEq:
		return binConst(g, n.L, n.R, value.GtEq)
	case expr.LtEq:
		return binConst(g, n.L, n.R, value.LtEq)
	case expr.And:
		return binConst(g, n.L, n.R, value.And)
	case expr.Or:
		return binConst(g, n.L, n.R, value.Or)
	case expr.Xor:
		return binConst(g, n.L, n.R, value.Xor)

	// max/min/avg of a single already-constant operand fold to that
	// operand (the degenerate single-row case); sum/count are deliberately
	// excluded since their identity differs from their operand's value.
	case expr.Max:
		return constOf(g, n.X)
	case expr.Min:
		return constOf(g, n.X)
	case expr.Avg:
		return constOf(g, n.X)

	default:
		return value.Value{}, false
	}
}

func constPair(g *Graph, l, r egraph.Id) (value.Value, value.Value, bool) {
	a, ok := constOf(g, l)
	if !ok {
		return value.Value{}, value.Value{}, false
	}
	b, ok := constOf(g, r)
	if !ok {
		return value.Value{}, value.Value{}, false
	}
	return a, b, true
}

func binConst(g *Graph, l, r egraph.Id, f func(value.Value, value.Value) (value.Value, bool)) (value.Value, bool) {
	a, b, ok := constPair(g, l, r)
	if !ok {
		return value.Value{}, false
	}
	return f(a, b)
}

// unionConstant implements the Modify hook: when an e-class is discovered
// to be constant, fold a Constant node for that value into it so later
// searches can match it directly as a literal.
func unionConstant(g *Graph, id egraph.Id) {
	c := g.Data(id).Constant
	if c == nil {
		return
	}
	added := g.Add(expr.Constant{Val: *c})
	g.Union(id, added)
}
