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

// Package aggplan lowers the six clauses of a SELECT into a plan tree rooted
// at Proj, extracting aggregate calls into an Agg node and pinning every
// reference into its output schema behind expr.Nested so the rewrite rules
// in package rules never reshuffle a scalar across the aggregate boundary.
package aggplan

import (
	"context"
	"sort"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-sqlopt/analysis"
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/expr"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrAggInWhere is returned when the WHERE clause references an
	// aggregate function; only HAVING may do that.
	ErrAggInWhere = errors.NewKind("aggregate function not allowed in WHERE clause")
	// ErrAggInGroupBy is returned when the GROUP BY clause references an
	// aggregate function.
	ErrAggInGroupBy = errors.NewKind("aggregate function not allowed in GROUP BY clause")
	// ErrNestedAgg is returned when an aggregate call has another aggregate
	// as a proper descendant, e.g. sum(max(a)).
	ErrNestedAgg = errors.NewKind("nested aggregate function: %s")
	// ErrColumnNotInAgg is returned when, once an aggregate context exists,
	// a projection/having/order-by expression mentions a column that is
	// neither a group key nor inside an aggregate call.
	ErrColumnNotInAgg = errors.NewKind("column %s must appear in GROUP BY or be used in an aggregate function")
)

// PlanSelect builds the plan for a six-clause SELECT: from, where, having,
// groupby and orderby are e-class ids already inserted into g (groupby and
// orderby are List ids, orderby's elements each an Asc/Desc wrapper);
// projection is the List id of the output expression list. It returns the
// id of the resulting plan root.
func PlanSelect(ctx context.Context, g *analysis.Graph, from, where, having, groupby, orderby, projection egraph.Id) (egraph.Id, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "aggplan.PlanSelect")
	defer span.Finish()

	if len(g.Data(where).Aggs) > 0 {
		logrus.WithField("clause", "where").Warn("aggplan: rejected query")
		return 0, ErrAggInWhere.New()
	}
	if len(g.Data(groupby).Aggs) > 0 {
		logrus.WithField("clause", "group-by").Warn("aggplan: rejected query")
		return 0, ErrAggInGroupBy.New()
	}

	plan := g.Add(expr.Filter{Cond: where, Child: from})

	tmp := g.Add(expr.List{Items: []egraph.Id{projection, having, orderby}})
	found := g.Data(tmp).Aggs

	if len(found) == 0 && isEmptyList(g, groupby) {
		plan = g.Add(expr.Filter{Cond: having, Child: plan})
		plan = g.Add(expr.Order{Keys: orderby, Child: plan})
		plan = g.Add(expr.Proj{Exprs: projection, Child: plan})
		span.SetTag("aggregates", 0)
		return plan, nil
	}

	for _, n := range found {
		operand := expr.AggOperand(n)
		if len(g.Data(operand).Aggs) > 0 {
			logrus.WithField("node", n.String()).Warn("aggplan: rejected query")
			return 0, ErrNestedAgg.New(n.String())
		}
	}

	aggIDs := dedupeSorted(g, found)
	aggsList := g.Add(expr.List{Items: aggIDs})
	groupKeys := listItems(g, groupby)

	schema := make(map[egraph.Id]bool, len(aggIDs)+len(groupKeys))
	for _, id := range aggIDs {
		schema[id] = true
	}
	for _, id := range groupKeys {
		schema[g.Find(id)] = true
	}

	plan = g.Add(expr.Agg{Aggs: aggsList, GroupKeys: g.Find(groupby), Child: plan})

	rewrittenProjection, err := pinAggRefs(g, projection, schema)
	if err != nil {
		return 0, err
	}
	rewrittenHaving, err := pinAggRefs(g, having, schema)
	if err != nil {
		return 0, err
	}
	rewrittenOrderby, err := pinAggRefs(g, orderby, schema)
	if err != nil {
		return 0, err
	}

	plan = g.Add(expr.Filter{Cond: rewrittenHaving, Child: plan})
	plan = g.Add(expr.Order{Keys: rewrittenOrderby, Child: plan})
	plan = g.Add(expr.Proj{Exprs: rewrittenProjection, Child: plan})
	span.SetTag("aggregates", len(aggIDs))
	return plan, nil
}

// pinAggRefs recursively rewrites id, replacing any subexpression whose
// class is in schema with a Nested reference to it, and rejecting any
// Column reference not reached that way.
func pinAggRefs(g *analysis.Graph, id egraph.Id, schema map[egraph.Id]bool) (egraph.Id, error) {
	id = g.Find(id)
	if schema[id] {
		return g.Add(expr.Nested{X: id}), nil
	}

	nodes := g.Nodes(id)
	if len(nodes) == 0 {
		return id, nil
	}
	node := nodes[0]

	if col, ok := node.(expr.ColumnRef); ok {
		logrus.WithField("column", col.Name).Warn("aggplan: rejected query")
		return 0, ErrColumnNotInAgg.New(col.Name)
	}

	children := node.Children()
	if len(children) == 0 {
		return id, nil
	}
	newChildren := make([]egraph.Id, len(children))
	for i, c := range children {
		nc, err := pinAggRefs(g, c, schema)
		if err != nil {
			return 0, err
		}
		newChildren[i] = nc
	}
	return g.Add(node.WithChildren(newChildren)), nil
}

// dedupeSorted adds each aggregate node to the graph and returns its
// canonical ids, sorted ascending with duplicates removed.
func dedupeSorted(g *analysis.Graph, nodes []egraph.Language) []egraph.Id {
	seen := map[egraph.Id]bool{}
	ids := make([]egraph.Id, 0, len(nodes))
	for _, n := range nodes {
		id := g.Find(g.Add(n))
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func isEmptyList(g *analysis.Graph, id egraph.Id) bool {
	for _, n := range g.Nodes(id) {
		if l, ok := n.(expr.List); ok {
			return len(l.Items) == 0
		}
	}
	return false
}

func listItems(g *analysis.Graph, id egraph.Id) []egraph.Id {
	for _, n := range g.Nodes(id) {
		if l, ok := n.(expr.List); ok {
			return l.Items
		}
	}
	return nil
}
