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

// Package analysis implements the e-class analysis stacked on
// top of the generic kernel in package egraph: constant folding, the
// column-set used by pushdown conditions, the aggregate set used by the
// planner, and the schema used by the final column-index resolution pass.
package analysis

import (
	"github.com/dolthub/go-sqlopt/egraph"
	"github.com/dolthub/go-sqlopt/value"
)

// Graph is the concrete e-graph type every rule, pattern and planner in this
// module operates on.
type Graph = egraph.Graph[Data]

// ColumnSet is the set of columns an expression or plan node touches.
type ColumnSet map[value.Column]struct{}

func newColumnSet(cols ...value.Column) ColumnSet {
	s := make(ColumnSet, len(cols))
	for _, c := range cols {
		s[c] = struct{}{}
	}
	return s
}

func unionColumnSets(sets ...ColumnSet) ColumnSet {
	out := ColumnSet{}
	for _, s := range sets {
		for c := range s {
			out[c] = struct{}{}
		}
	}
	return out
}

// IsSubset reports whether every column in s is also in other.
func (s ColumnSet) IsSubset(other ColumnSet) bool {
	for c := range s {
		if _, ok := other[c]; !ok {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether s and other share no columns.
func (s ColumnSet) IsDisjoint(other ColumnSet) bool {
	for c := range s {
		if _, ok := other[c]; ok {
			return false
		}
	}
	return true
}

// Schema is the resolved output expression list of a plan node: the Ids of
// the expressions (in order) that node's rows are built from. nil means
// "not known" (e.g. the node sits behind an unresolved column-prune).
type Schema []egraph.Id

func schemaEqual(a, b Schema) bool {
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Data is the analysis payload attached to every e-class, mirroring the
// Rust implementation's struct Data { constant, columns, aggs, schema }.
type Data struct {
	// Constant holds the value of the e-class once any node in it is known
	// to fold to a literal; nil means not (yet) known to be constant.
	Constant *value.Value

	// Columns is the set of columns the class's expression depends on; when
	// two classes merge, the smaller of their two sets is kept.
	Columns ColumnSet

	// Aggs is every aggregate-function call appearing in the class's
	// subtree, not recursing through nested aggregates.
	Aggs []egraph.Language

	// Schema is the output expression list, for plan nodes only.
	Schema Schema
}

// ExprAnalysis is the egraph.Analysis[Data] driving this module's e-graph;
// it has no state of its own (mirrors the zero-sized Rust ExprAnalysis).
type ExprAnalysis struct{}

var _ egraph.Analysis[Data] = ExprAnalysis{}

// Make computes the full Data record for a freshly inserted node.
func (ExprAnalysis) Make(g *Graph, node egraph.Language) Data {
	return Data{
		Constant: evalConstant(g, node),
		Columns:  analyzeColumns(g, node),
		Aggs:     analyzeAggs(g, node),
		Schema:   analyzeSchema(g, node),
	}
}

// Merge folds from into *to, reporting whether *to changed. Each field
// merges independently: take the newly discovered information (constant,
// schema) when it's more precise, or the smaller of the two column sets, as
// egg::merge_max / plan::merge do.
func (ExprAnalysis) Merge(to *Data, from Data) bool {
	changed := false

	if to.Constant == nil && from.Constant != nil {
		to.Constant = from.Constant
		changed = true
	}

	if len(from.Columns) < len(to.Columns) || to.Columns == nil {
		if !columnSetsEqual(to.Columns, from.Columns) {
			to.Columns = from.Columns
			changed = true
		}
	}

	if len(to.Aggs) == 0 && len(from.Aggs) > 0 {
		to.Aggs = from.Aggs
		changed = true
	}

	if to.Schema == nil && from.Schema != nil {
		to.Schema = from.Schema
		changed = true
	}

	return changed
}

// Modify runs union_constant: if id's class is now known to be a constant,
// fold a Constant node for that value into the class.
func (ExprAnalysis) Modify(g *Graph, id egraph.Id) {
	unionConstant(g, id)
}

func columnSetsEqual(a, b ColumnSet) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}
	return true
}
