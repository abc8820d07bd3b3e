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
	"strings"

	"github.com/dolthub/go-sqlopt/egraph"
)

// RecExpr is a flattened term: nodes in dependency order, each node's
// children indexing earlier positions in the slice. The last element is
// the root. This mirrors egg::RecExpr, the format Parse/Insert produce and
// consume before the term ever touches an e-graph.
type RecExpr []egraph.Language

// Root returns the Id of the root node (the last element).
func (r RecExpr) Root() egraph.Id { return egraph.Id(len(r) - 1) }

// String renders r in the canonical S-expression syntax, recursively
// expanding every Id reference, the inverse of Parse.
func (r RecExpr) String() string {
	return r.format(r.Root())
}

func (r RecExpr) format(id egraph.Id) string {
	n := r[id]
	switch v := n.(type) {
	case Constant:
		return v.Val.String()
	case ColumnIndexRef:
		return v.Idx.String()
	case ColumnRef:
		return v.Name.String()
	case Join:
		return fmt.Sprintf("(join %s %s %s %s)", v.Type, r.format(v.Cond), r.format(v.Left), r.format(v.Right))
	case HashJoin:
		return fmt.Sprintf("(hashjoin %s %s %s %s %s)", v.Type,
			r.format(v.LeftKeys), r.format(v.RightKeys), r.format(v.Left), r.format(v.Right))
	default:
		children := n.Children()
		if len(children) == 0 {
			if _, ok := n.(List); ok {
				return "(list)"
			}
			return n.Op()
		}
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(n.Op())
		for _, c := range children {
			b.WriteByte(' ')
			b.WriteString(r.format(c))
		}
		b.WriteByte(')')
		return b.String()
	}
}

// Insert hash-conses every node of r into g and returns the Id of the root,
// the bridge from a standalone RecExpr term into a live e-graph (the
// equivalent of egg::EGraph::add_expr).
func Insert[D any](g *egraph.Graph[D], r RecExpr) egraph.Id {
	remap := make([]egraph.Id, len(r))
	for i, n := range r {
		children := n.Children()
		if len(children) > 0 {
			remapped := make([]egraph.Id, len(children))
			for j, c := range children {
				remapped[j] = remap[c]
			}
			n = n.WithChildren(remapped)
		}
		remap[i] = g.Add(n)
	}
	return remap[len(remap)-1]
}
