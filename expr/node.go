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

// Package expr defines the node language of the optimizer: every
// expression and logical-plan operator the e-graph can hold, each
// implementing egraph.Language so they can be stored, hash-consed and
// pattern-matched by the generic kernel in package egraph.
package expr

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/value"
)

// JoinType enumerates the four join kinds. egg-based e-graph languages
// usually model a field like this as a nullary e-node variant ("inner",
// "left_outer", ...) so a rewrite can pattern-match it with a variable;
// here it is a plain Go field on Join/HashJoin instead. Rules that rewrite
// the join type itself (this rule set has none) would need a different
// Applier shape.
type JoinType uint8

const (
	Inner JoinType = iota
	LeftOuter
	RightOuter
	FullOuter
)

func (jt JoinType) String() string {
	switch jt {
	case Inner:
		return "inner"
	case LeftOuter:
		return "left_outer"
	case RightOuter:
		return "right_outer"
	case FullOuter:
		return "full_outer"
	default:
		panic(fmt.Sprintf("expr: unknown join type %d", jt))
	}
}

func ParseJoinType(s string) (JoinType, bool) {
	switch s {
	case "inner":
		return Inner, true
	case "left_outer":
		return LeftOuter, true
	case "right_outer":
		return RightOuter, true
	case "full_outer":
		return FullOuter, true
	default:
		return 0, false
	}
}

type Id = egraph.Id

// Every concrete type below implements the egraph.Language methods itself
// (the binary operators share Children through the embedded binaryNode);
// Equal is written per type since each compares against its own type.

// ---- leaves --------------------------------------------------------------

// Constant is a SQL literal: null, true, 1, 'hello'.
type Constant struct{ Val value.Value }

func (n Constant) Op() string                        { return "constant" }
func (n Constant) Children() []Id                    { return nil }
func (n Constant) WithChildren([]Id) egraph.Language  { return n }
func (n Constant) String() string                    { return n.Val.String() }
func (n Constant) Equal(o egraph.Language) bool {
	other, ok := o.(Constant)
	return ok && other.Val.Equal(n.Val)
}

// ColumnIndexRef is a resolved physical column reference: #0, #1, ...
type ColumnIndexRef struct{ Idx value.ColumnIndex }

func (n ColumnIndexRef) Op() string                       { return "column-index" }
func (n ColumnIndexRef) Children() []Id                   { return nil }
func (n ColumnIndexRef) WithChildren([]Id) egraph.Language { return n }
func (n ColumnIndexRef) String() string                   { return n.Idx.String() }
func (n ColumnIndexRef) Equal(o egraph.Language) bool {
	other, ok := o.(ColumnIndexRef)
	return ok && other.Idx == n.Idx
}

// ColumnRef is an unresolved column name: a, t.a.
type ColumnRef struct{ Name value.Column }

func (n ColumnRef) Op() string                       { return "column" }
func (n ColumnRef) Children() []Id                   { return nil }
func (n ColumnRef) WithChildren([]Id) egraph.Language { return n }
func (n ColumnRef) String() string                   { return n.Name.String() }
func (n ColumnRef) Equal(o egraph.Language) bool {
	other, ok := o.(ColumnRef)
	return ok && other.Name == n.Name
}

// ---- utility nodes --------------------------------------------------------

// Nested wraps an expression to pin it against further rewriting: used by
// the aggregate planner to mark references into an Agg node's output schema
// so later rules don't try to rewrite through the aggregate boundary.
type Nested struct{ X Id }

func (n Nested) Op() string     { return "`" }
func (n Nested) Children() []Id { return []Id{n.X} }
func (n Nested) WithChildren(c []Id) egraph.Language {
	mustArity(c, 1, "`")
	return Nested{X: c[0]}
}
func (n Nested) String() string { return "(` " + render(n.X) + ")" }
func (n Nested) Equal(o egraph.Language) bool {
	other, ok := o.(Nested)
	return ok && other.X == n.X
}

// List is a variable-length ordered list of expressions, used for projection
// lists, scan column lists, order-by keys, agg/group-key lists and join
// key lists.
type List struct{ Items []Id }

func (n List) Op() string     { return "list" }
func (n List) Children() []Id { return n.Items }
func (n List) WithChildren(c []Id) egraph.Language {
	return List{Items: append([]Id(nil), c...)}
}
func (n List) String() string {
	parts := make([]string, len(n.Items))
	for i, id := range n.Items {
		parts[i] = render(id)
	}
	return "(list" + joinPrefixed(parts) + ")"
}
func (n List) Equal(o egraph.Language) bool {
	other, ok := o.(List)
	if !ok || len(other.Items) != len(n.Items) {
		return false
	}
	for i := range n.Items {
		if n.Items[i] != other.Items[i] {
			return false
		}
	}
	return true
}

// ---- unary operators ------------------------------------------------------

// Neg is arithmetic negation: -a.
type Neg struct{ X Id }

func (n Neg) Op() string     { return "-" }
func (n Neg) Children() []Id { return []Id{n.X} }
func (n Neg) WithChildren(c []Id) egraph.Language {
	mustArity(c, 1, "-")
	return Neg{X: c[0]}
}
func (n Neg) String() string { return "(- " + render(n.X) + ")" }
func (n Neg) Equal(o egraph.Language) bool {
	other, ok := o.(Neg)
	return ok && other.X == n.X
}

// Not is three-valued logical negation.
type Not struct{ X Id }

func (n Not) Op() string     { return "not" }
func (n Not) Children() []Id { return []Id{n.X} }
func (n Not) WithChildren(c []Id) egraph.Language {
	mustArity(c, 1, "not")
	return Not{X: c[0]}
}
func (n Not) String() string { return "(not " + render(n.X) + ")" }
func (n Not) Equal(o egraph.Language) bool {
	other, ok := o.(Not)
	return ok && other.X == n.X
}

// IsNull tests whether its operand is SQL NULL.
type IsNull struct{ X Id }

func (n IsNull) Op() string     { return "isnull" }
func (n IsNull) Children() []Id { return []Id{n.X} }
func (n IsNull) WithChildren(c []Id) egraph.Language {
	mustArity(c, 1, "isnull")
	return IsNull{X: c[0]}
}
func (n IsNull) String() string { return "(isnull " + render(n.X) + ")" }
func (n IsNull) Equal(o egraph.Language) bool {
	other, ok := o.(IsNull)
	return ok && other.X == n.X
}

// ---- binary operators ------------------------------------------------------

// binaryNode is the shape shared by every two-operand scalar operator; each
// concrete type below is a distinct Go type (so type switches in analysis
// and rules dispatch cleanly) but shares this layout and rendering.
type binaryNode struct {
	L, R Id
}

func (n binaryNode) Children() []Id { return []Id{n.L, n.R} }

func renderBinary(op string, l, r Id) string {
	return "(" + op + " " + render(l) + " " + render(r) + ")"
}

func mustBinary(c []Id, op string) (Id, Id) {
	mustArity(c, 2, op)
	return c[0], c[1]
}

type Add struct{ binaryNode }
type Sub struct{ binaryNode }
type Mul struct{ binaryNode }
type Div struct{ binaryNode }
type Eq struct{ binaryNode }
type NotEq struct{ binaryNode }
type Gt struct{ binaryNode }
type Lt struct{ binaryNode }
type GtEq struct{ binaryNode }
type LtEq struct{ binaryNode }
type And struct{ binaryNode }
type Or struct{ binaryNode }
type Xor struct{ binaryNode }

func (Add) Op() string   { return "+" }
func (Sub) Op() string   { return "-" }
func (Mul) Op() string   { return "*" }
func (Div) Op() string   { return "/" }
func (Eq) Op() string    { return "=" }
func (NotEq) Op() string { return "<>" }
func (Gt) Op() string    { return ">" }
func (Lt) Op() string    { return "<" }
func (GtEq) Op() string  { return ">=" }
func (LtEq) Op() string  { return "<=" }
func (And) Op() string   { return "and" }
func (Or) Op() string    { return "or" }
func (Xor) Op() string   { return "xor" }

func (n Add) String() string   { return renderBinary("+", n.L, n.R) }
func (n Sub) String() string   { return renderBinary("-", n.L, n.R) }
func (n Mul) String() string   { return renderBinary("*", n.L, n.R) }
func (n Div) String() string   { return renderBinary("/", n.L, n.R) }
func (n Eq) String() string    { return renderBinary("=", n.L, n.R) }
func (n NotEq) String() string { return renderBinary("<>", n.L, n.R) }
func (n Gt) String() string    { return renderBinary(">", n.L, n.R) }
func (n Lt) String() string    { return renderBinary("<", n.L, n.R) }
func (n GtEq) String() string  { return renderBinary(">=", n.L, n.R) }
func (n LtEq) String() string  { return renderBinary("<=", n.L, n.R) }
func (n And) String() string   { return renderBinary("and", n.L, n.R) }
func (n Or) String() string    { return renderBinary("or", n.L, n.R) }
func (n Xor) String() string   { return renderBinary("xor", n.L, n.R) }

func (n Add) WithChildren(c []Id) egraph.Language   { l, r := mustBinary(c, "+"); return Add{binaryNode{l, r}} }
func (n Sub) WithChildren(c []Id) egraph.Language   { l, r := mustBinary(c, "-"); return Sub{binaryNode{l, r}} }
func (n Mul) WithChildren(c []Id) egraph.Language   { l, r := mustBinary(c, "*"); return Mul{binaryNode{l, r}} }
func (n Div) WithChildren(c []Id) egraph.Language   { l, r := mustBinary(c, "/"); return Div{binaryNode{l, r}} }
func (n Eq) WithChildren(c []Id) egraph.Language    { l, r := mustBinary(c, "="); return Eq{binaryNode{l, r}} }
func (n NotEq) WithChildren(c []Id) egraph.Language { l, r := mustBinary(c, "<>"); return NotEq{binaryNode{l, r}} }
func (n Gt) WithChildren(c []Id) egraph.Language    { l, r := mustBinary(c, ">"); return Gt{binaryNode{l, r}} }
func (n Lt) WithChildren(c []Id) egraph.Language    { l, r := mustBinary(c, "<"); return Lt{binaryNode{l, r}} }
func (n GtEq) WithChildren(c []Id) egraph.Language  { l, r := mustBinary(c, ">="); return GtEq{binaryNode{l, r}} }
func (n LtEq) WithChildren(c []Id) egraph.Language  { l, r := mustBinary(c, "<="); return LtEq{binaryNode{l, r}} }
func (n And) WithChildren(c []Id) egraph.Language   { l, r := mustBinary(c, "and"); return And{binaryNode{l, r}} }
func (n Or) WithChildren(c []Id) egraph.Language    { l, r := mustBinary(c, "or"); return Or{binaryNode{l, r}} }
func (n Xor) WithChildren(c []Id) egraph.Language   { l, r := mustBinary(c, "xor"); return Xor{binaryNode{l, r}} }

func (n Add) Equal(o egraph.Language) bool   { other, ok := o.(Add); return ok && other.L == n.L && other.R == n.R }
func (n Sub) Equal(o egraph.Language) bool   { other, ok := o.(Sub); return ok && other.L == n.L && other.R == n.R }
func (n Mul) Equal(o egraph.Language) bool   { other, ok := o.(Mul); return ok && other.L == n.L && other.R == n.R }
func (n Div) Equal(o egraph.Language) bool   { other, ok := o.(Div); return ok && other.L == n.L && other.R == n.R }
func (n Eq) Equal(o egraph.Language) bool    { other, ok := o.(Eq); return ok && other.L == n.L && other.R == n.R }
func (n NotEq) Equal(o egraph.Language) bool { other, ok := o.(NotEq); return ok && other.L == n.L && other.R == n.R }
func (n Gt) Equal(o egraph.Language) bool    { other, ok := o.(Gt); return ok && other.L == n.L && other.R == n.R }
func (n Lt) Equal(o egraph.Language) bool    { other, ok := o.(Lt); return ok && other.L == n.L && other.R == n.R }
func (n GtEq) Equal(o egraph.Language) bool  { other, ok := o.(GtEq); return ok && other.L == n.L && other.R == n.R }
func (n LtEq) Equal(o egraph.Language) bool  { other, ok := o.(LtEq); return ok && other.L == n.L && other.R == n.R }
func (n And) Equal(o egraph.Language) bool   { other, ok := o.(And); return ok && other.L == n.L && other.R == n.R }
func (n Or) Equal(o egraph.Language) bool    { other, ok := o.(Or); return ok && other.L == n.L && other.R == n.R }
func (n Xor) Equal(o egraph.Language) bool   { other, ok := o.(Xor); return ok && other.L == n.L && other.R == n.R }

// ---- aggregate functions ----------------------------------------------------

type Max struct{ X Id }
type Min struct{ X Id }
type Sum struct{ X Id }
type Avg struct{ X Id }
type Count struct{ X Id }

func (Max) Op() string   { return "max" }
func (Min) Op() string   { return "min" }
func (Sum) Op() string   { return "sum" }
func (Avg) Op() string   { return "avg" }
func (Count) Op() string { return "count" }

func (n Max) Children() []Id   { return []Id{n.X} }
func (n Min) Children() []Id   { return []Id{n.X} }
func (n Sum) Children() []Id   { return []Id{n.X} }
func (n Avg) Children() []Id   { return []Id{n.X} }
func (n Count) Children() []Id { return []Id{n.X} }

func (n Max) String() string   { return "(max " + render(n.X) + ")" }
func (n Min) String() string   { return "(min " + render(n.X) + ")" }
func (n Sum) String() string   { return "(sum " + render(n.X) + ")" }
func (n Avg) String() string   { return "(avg " + render(n.X) + ")" }
func (n Count) String() string { return "(count " + render(n.X) + ")" }

func (n Max) WithChildren(c []Id) egraph.Language   { mustArity(c, 1, "max"); return Max{c[0]} }
func (n Min) WithChildren(c []Id) egraph.Language   { mustArity(c, 1, "min"); return Min{c[0]} }
func (n Sum) WithChildren(c []Id) egraph.Language   { mustArity(c, 1, "sum"); return Sum{c[0]} }
func (n Avg) WithChildren(c []Id) egraph.Language   { mustArity(c, 1, "avg"); return Avg{c[0]} }
func (n Count) WithChildren(c []Id) egraph.Language { mustArity(c, 1, "count"); return Count{c[0]} }

func (n Max) Equal(o egraph.Language) bool   { other, ok := o.(Max); return ok && other.X == n.X }
func (n Min) Equal(o egraph.Language) bool   { other, ok := o.(Min); return ok && other.X == n.X }
func (n Sum) Equal(o egraph.Language) bool   { other, ok := o.(Sum); return ok && other.X == n.X }
func (n Avg) Equal(o egraph.Language) bool   { other, ok := o.(Avg); return ok && other.X == n.X }
func (n Count) Equal(o egraph.Language) bool { other, ok := o.(Count); return ok && other.X == n.X }

// IsAggregate reports whether node is one of Max/Min/Sum/Avg/Count, used by
// the agg-detection analysis and the aggregate planner to find
// aggregate calls without recursing into them.
func IsAggregate(n egraph.Language) bool {
	switch n.(type) {
	case Max, Min, Sum, Avg, Count:
		return true
	default:
		return false
	}
}

// AggOperand returns the single operand Id of an aggregate node; panics if
// n is not one of Max/Min/Sum/Avg/Count.
func AggOperand(n egraph.Language) Id {
	switch a := n.(type) {
	case Max:
		return a.X
	case Min:
		return a.X
	case Sum:
		return a.X
	case Avg:
		return a.X
	case Count:
		return a.X
	default:
		panic(fmt.Sprintf("expr: %T is not an aggregate", n))
	}
}

func mustArity(c []Id, n int, op string) {
	if len(c) != n {
		panic(fmt.Sprintf("expr: %q expects %d children, got %d", op, n, len(c)))
	}
}

func render(id Id) string { return id.String() }

func joinPrefixed(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	return b.String()
}
