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

package expr

import (
	"fmt"

	"github.com/dolthub/go-sqlopt/egraph"
)

// Scan is a table scan: (scan table [column..]).
type Scan struct{ Table, Columns Id }

func (Scan) Op() string         { return "scan" }
func (n Scan) Children() []Id   { return []Id{n.Table, n.Columns} }
func (n Scan) String() string   { return renderBinary("scan", n.Table, n.Columns) }
func (n Scan) WithChildren(c []Id) egraph.Language {
	mustArity(c, 2, "scan")
	return Scan{Table: c[0], Columns: c[1]}
}
func (n Scan) Equal(o egraph.Language) bool {
	other, ok := o.(Scan)
	return ok && other.Table == n.Table && other.Columns == n.Columns
}

// Values is a literal row constructor: (values (list row..)), each row
// itself a List of scalar expressions.
type Values struct{ Rows Id }

func (Values) Op() string       { return "values" }
func (n Values) Children() []Id { return []Id{n.Rows} }
func (n Values) String() string { return "(values " + render(n.Rows) + ")" }
func (n Values) WithChildren(c []Id) egraph.Language {
	mustArity(c, 1, "values")
	return Values{Rows: c[0]}
}
func (n Values) Equal(o egraph.Language) bool {
	other, ok := o.(Values)
	return ok && other.Rows == n.Rows
}

// Proj is a projection: (proj [expr..] child).
type Proj struct{ Exprs, Child Id }

func (Proj) Op() string       { return "proj" }
func (n Proj) Children() []Id { return []Id{n.Exprs, n.Child} }
func (n Proj) String() string { return renderBinary("proj", n.Exprs, n.Child) }
func (n Proj) WithChildren(c []Id) egraph.Language {
	mustArity(c, 2, "proj")
	return Proj{Exprs: c[0], Child: c[1]}
}
func (n Proj) Equal(o egraph.Language) bool {
	other, ok := o.(Proj)
	return ok && other.Exprs == n.Exprs && other.Child == n.Child
}

// Filter is a selection: (filter expr child).
type Filter struct{ Cond, Child Id }

func (Filter) Op() string       { return "filter" }
func (n Filter) Children() []Id { return []Id{n.Cond, n.Child} }
func (n Filter) String() string { return renderBinary("filter", n.Cond, n.Child) }
func (n Filter) WithChildren(c []Id) egraph.Language {
	mustArity(c, 2, "filter")
	return Filter{Cond: c[0], Child: c[1]}
}
func (n Filter) Equal(o egraph.Language) bool {
	other, ok := o.(Filter)
	return ok && other.Cond == n.Cond && other.Child == n.Child
}

// Order is a sort: (order [order_key..] child), each key itself Asc/Desc.
type Order struct{ Keys, Child Id }

func (Order) Op() string       { return "order" }
func (n Order) Children() []Id { return []Id{n.Keys, n.Child} }
func (n Order) String() string { return renderBinary("order", n.Keys, n.Child) }
func (n Order) WithChildren(c []Id) egraph.Language {
	mustArity(c, 2, "order")
	return Order{Keys: c[0], Child: c[1]}
}
func (n Order) Equal(o egraph.Language) bool {
	other, ok := o.(Order)
	return ok && other.Keys == n.Keys && other.Child == n.Child
}

// Asc and Desc wrap an order-by key to record its direction.
type Asc struct{ Key Id }
type Desc struct{ Key Id }

func (Asc) Op() string          { return "asc" }
func (n Asc) Children() []Id    { return []Id{n.Key} }
func (n Asc) String() string    { return "(asc " + render(n.Key) + ")" }
func (n Asc) WithChildren(c []Id) egraph.Language { mustArity(c, 1, "asc"); return Asc{Key: c[0]} }
func (n Asc) Equal(o egraph.Language) bool        { other, ok := o.(Asc); return ok && other.Key == n.Key }

func (Desc) Op() string       { return "desc" }
func (n Desc) Children() []Id { return []Id{n.Key} }
func (n Desc) String() string { return "(desc " + render(n.Key) + ")" }
func (n Desc) WithChildren(c []Id) egraph.Language {
	mustArity(c, 1, "desc")
	return Desc{Key: c[0]}
}
func (n Desc) Equal(o egraph.Language) bool { other, ok := o.(Desc); return ok && other.Key == n.Key }

// Limit is (limit limit offset child).
type Limit struct{ N, Offset, Child Id }

func (Limit) Op() string       { return "limit" }
func (n Limit) Children() []Id { return []Id{n.N, n.Offset, n.Child} }
func (n Limit) String() string {
	return fmt.Sprintf("(limit %s %s %s)", render(n.N), render(n.Offset), render(n.Child))
}
func (n Limit) WithChildren(c []Id) egraph.Language {
	mustArity(c, 3, "limit")
	return Limit{N: c[0], Offset: c[1], Child: c[2]}
}
func (n Limit) Equal(o egraph.Language) bool {
	other, ok := o.(Limit)
	return ok && other.N == n.N && other.Offset == n.Offset && other.Child == n.Child
}

// TopN fuses order+limit: (topn limit offset [order_key..] child).
type TopN struct{ N, Offset, Keys, Child Id }

func (TopN) Op() string       { return "topn" }
func (n TopN) Children() []Id { return []Id{n.N, n.Offset, n.Keys, n.Child} }
func (n TopN) String() string {
	return fmt.Sprintf("(topn %s %s %s %s)", render(n.N), render(n.Offset), render(n.Keys), render(n.Child))
}
func (n TopN) WithChildren(c []Id) egraph.Language {
	mustArity(c, 4, "topn")
	return TopN{N: c[0], Offset: c[1], Keys: c[2], Child: c[3]}
}
func (n TopN) Equal(o egraph.Language) bool {
	other, ok := o.(TopN)
	return ok && other.N == n.N && other.Offset == n.Offset && other.Keys == n.Keys && other.Child == n.Child
}

// Join is a nested-loop-shaped logical join: (join join_type expr left right).
type Join struct {
	Type        JoinType
	Cond        Id
	Left, Right Id
}

func (Join) Op() string       { return "join" }
func (n Join) Children() []Id { return []Id{n.Cond, n.Left, n.Right} }
func (n Join) String() string {
	return fmt.Sprintf("(join %s %s %s %s)", n.Type, render(n.Cond), render(n.Left), render(n.Right))
}
func (n Join) WithChildren(c []Id) egraph.Language {
	mustArity(c, 3, "join")
	return Join{Type: n.Type, Cond: c[0], Left: c[1], Right: c[2]}
}
func (n Join) Equal(o egraph.Language) bool {
	other, ok := o.(Join)
	return ok && other.Type == n.Type && other.Cond == n.Cond && other.Left == n.Left && other.Right == n.Right
}

// HashJoin is a physically-shaped equi-join:
// (hashjoin join_type [left_expr..] [right_expr..] left right).
type HashJoin struct {
	Type        JoinType
	LeftKeys    Id
	RightKeys   Id
	Left, Right Id
}

func (HashJoin) Op() string       { return "hashjoin" }
func (n HashJoin) Children() []Id { return []Id{n.LeftKeys, n.RightKeys, n.Left, n.Right} }
func (n HashJoin) String() string {
	return fmt.Sprintf("(hashjoin %s %s %s %s %s)", n.Type, render(n.LeftKeys), render(n.RightKeys), render(n.Left), render(n.Right))
}
func (n HashJoin) WithChildren(c []Id) egraph.Language {
	mustArity(c, 4, "hashjoin")
	return HashJoin{Type: n.Type, LeftKeys: c[0], RightKeys: c[1], Left: c[2], Right: c[3]}
}
func (n HashJoin) Equal(o egraph.Language) bool {
	other, ok := o.(HashJoin)
	return ok && other.Type == n.Type && other.LeftKeys == n.LeftKeys && other.RightKeys == n.RightKeys &&
		other.Left == n.Left && other.Right == n.Right
}

// Agg is a group-by aggregation: (agg [agg_expr..] [group_key..] child).
// The output schema is aggs ++ group_keys.
type Agg struct{ Aggs, GroupKeys, Child Id }

func (Agg) Op() string       { return "agg" }
func (n Agg) Children() []Id { return []Id{n.Aggs, n.GroupKeys, n.Child} }
func (n Agg) String() string {
	return fmt.Sprintf("(agg %s %s %s)", render(n.Aggs), render(n.GroupKeys), render(n.Child))
}
func (n Agg) WithChildren(c []Id) egraph.Language {
	mustArity(c, 3, "agg")
	return Agg{Aggs: c[0], GroupKeys: c[1], Child: c[2]}
}
func (n Agg) Equal(o egraph.Language) bool {
	other, ok := o.(Agg)
	return ok && other.Aggs == n.Aggs && other.GroupKeys == n.GroupKeys && other.Child == n.Child
}

// ColumnMerge is an internal helper node: (column-merge list1 list2) unions
// the columns referenced by two lists, used by projection-pushdown to
// compute what a pushed-down child must still produce.
type ColumnMerge struct{ A, B Id }

func (ColumnMerge) Op() string       { return "column-merge" }
func (n ColumnMerge) Children() []Id { return []Id{n.A, n.B} }
func (n ColumnMerge) String() string { return renderBinary("column-merge", n.A, n.B) }
func (n ColumnMerge) WithChildren(c []Id) egraph.Language {
	mustArity(c, 2, "column-merge")
	return ColumnMerge{A: c[0], B: c[1]}
}
func (n ColumnMerge) Equal(o egraph.Language) bool {
	other, ok := o.(ColumnMerge)
	return ok && other.A == n.A && other.B == n.B
}

// ColumnPrune is an internal helper node: (column-prune filter list) drops
// elements of list whose column set is not a subset of filter's.
type ColumnPrune struct{ Filter, List Id }

func (ColumnPrune) Op() string       { return "column-prune" }
func (n ColumnPrune) Children() []Id { return []Id{n.Filter, n.List} }
func (n ColumnPrune) String() string { return renderBinary("column-prune", n.Filter, n.List) }
func (n ColumnPrune) WithChildren(c []Id) egraph.Language {
	mustArity(c, 2, "column-prune")
	return ColumnPrune{Filter: c[0], List: c[1]}
}
func (n ColumnPrune) Equal(o egraph.Language) bool {
	other, ok := o.(ColumnPrune)
	return ok && other.Filter == n.Filter && other.List == n.List
}

// Empty returns a zero-row relation with the same schema as child, used by
// the cancellation rules to collapse plans known to produce no rows.
type Empty struct{ Child Id }

func (Empty) Op() string       { return "empty" }
func (n Empty) Children() []Id { return []Id{n.Child} }
func (n Empty) String() string { return "(empty " + render(n.Child) + ")" }
func (n Empty) WithChildren(c []Id) egraph.Language {
	mustArity(c, 1, "empty")
	return Empty{Child: c[0]}
}
func (n Empty) Equal(o egraph.Language) bool { other, ok := o.(Empty); return ok && other.Child == n.Child }

// IsPlanOp reports whether n produces a relation (as opposed to a scalar),
// used by the schema analysis to decide whether a node has a schema.
func IsPlanOp(n egraph.Language) bool {
	switch n.(type) {
	case Scan, Values, Proj, Filter, Order, Limit, TopN, Join, HashJoin, Agg, Empty:
		return true
	default:
		return false
	}
}
