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

// Package pattern implements the rewrite-rule searcher/applier machinery
// S-expression patterns with "?var" placeholders, e-matching
// against an e-graph, instantiation of an applier pattern's right-hand side,
// and the Runner that drives match-then-apply to saturation.
package pattern

import (
	"fmt"

	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"github.com/dolthub/go-sqlopt/value"
)

// Var is a pattern placeholder, written "?name" in the textual syntax.
type Var string

func (v Var) String() string { return string(v) }

// Node is the pattern AST: either a Var, a literal leaf (Constant, Column,
// ColumnIndex), or a structural node matching a concrete expr.Language op.
type Node interface {
	isPatternNode()
}

// VarNode matches anything and binds it to a variable; repeated
// occurrences of the same Var within one pattern must bind to the same
// e-class.
type VarNode struct{ Name Var }

func (VarNode) isPatternNode() {}

// LiteralNode matches exactly one concrete leaf node (no children, no
// variables): a literal value, a bare column name, or a column index.
type LiteralNode struct{ Node egraph.Language }

func (LiteralNode) isPatternNode() {}

// OpNode matches any e-node with the given Op and recursively matching
// children. JoinType, when non-nil, additionally constrains (or binds, if
// it wraps a Var) the JoinType field of a Join/HashJoin node; it is nil for
// every other op.
type OpNode struct {
	Op       string
	Children []Node
	JoinType *JoinTypeSpec
}

func (OpNode) isPatternNode() {}

// JoinTypeSpec is either a concrete JoinType or a Var bound to one, since
// JoinType is a Go struct field rather than an e-class (see
// expr.JoinType's doc comment).
type JoinTypeSpec struct {
	Lit *expr.JoinType
	Var Var
}

func (j JoinTypeSpec) isVar() bool { return j.Lit == nil }

func litJoinType(jt expr.JoinType) *JoinTypeSpec { return &JoinTypeSpec{Lit: &jt} }
func varJoinType(v Var) *JoinTypeSpec            { return &JoinTypeSpec{Var: v} }

// Op builds an OpNode with no join-type constraint.
func Op(op string, children ...Node) Node {
	return OpNode{Op: op, Children: children}
}

// V builds a VarNode, the pattern-side equivalent of a "?foo" token.
func V(name string) Node { return VarNode{Name: Var(name)} }

// Lit builds a LiteralNode around a constant value.
func Lit(v value.Value) Node { return LiteralNode{Node: expr.Constant{Val: v}} }

// Col builds a LiteralNode matching a bare column reference.
func Col(name string) Node { return LiteralNode{Node: expr.ColumnRef{Name: value.Column(name)}} }

func (j *JoinTypeSpec) String() string {
	if j == nil {
		return ""
	}
	if j.Lit != nil {
		return j.Lit.String()
	}
	return string(j.Var)
}

func validateArity(op string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("pattern: %q expects %d operands, got %d", op, want, got))
	}
}
