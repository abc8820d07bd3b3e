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

package egraph

import (
	"sort"

	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"
)

// Analysis attaches lattice-valued data of type D to every e-class, mirroring
// egg's Analysis trait (Make/Merge/Modify). Concrete
// languages (package analysis) implement this over Graph[analysis.Data].
type Analysis[D any] interface {
	// Make computes the data for a freshly added node, given read-only
	// access to the e-graph so it can inspect the data already attached to
	// the node's children's classes.
	Make(g *Graph[D], node Language) D
	// Merge folds from into *to in place and reports whether *to actually
	// changed, exactly like egg::Analysis::merge / DidMerge. Called when
	// two e-classes carrying different data are unioned.
	Merge(to *D, from D) bool
	// Modify runs after an e-class's data has been finalized by Make/Merge,
	// letting the analysis add equivalent nodes back into the class (e.g.
	// union_constant folding a constant-valued e-class with its literal).
	Modify(g *Graph[D], id Id)
}

// eclass is the internal representation of one e-class: every node known to
// be equivalent to every other, the analysis data for the class, and the
// parent links rebuild needs to restore congruence.
type eclass[D any] struct {
	nodes   []Language
	data    D
	parents []parentLink
}

type parentLink struct {
	node Language
	id   Id
}

type hashKey struct {
	Op       string
	Children []Id
	Repr     string
}

type bucketEntry[D any] struct {
	node Language
	id   Id
}

// Graph is a generic e-graph: hash-consed terms over Language, union-find
// over e-classes, and an Analysis attaching data of type D to each class.
// The kernel never inspects Language payloads beyond the interface, so it
// has no dependency on any concrete node language.
type Graph[D any] struct {
	uf       *unionFind
	classes  map[Id]*eclass[D]
	memo     map[uint64][]bucketEntry[D]
	analysis Analysis[D]
	dirty    []Id

	// Clean reports whether Rebuild has been run since the last mutation;
	// Find/Lookup results are only guaranteed congruence-closed when Clean.
	clean bool
}

// New creates an empty e-graph driven by the given analysis.
func New[D any](a Analysis[D]) *Graph[D] {
	return &Graph[D]{
		uf:       newUnionFind(),
		classes:  make(map[Id]*eclass[D]),
		memo:     make(map[uint64][]bucketEntry[D]),
		analysis: a,
		clean:    true,
	}
}

// Find returns the canonical Id of id's e-class.
func (g *Graph[D]) Find(id Id) Id { return g.uf.find(id) }

// Data returns the analysis data attached to id's e-class.
func (g *Graph[D]) Data(id Id) D {
	return g.classes[g.Find(id)].data
}

// Nodes returns every node known to be a member of id's e-class, in
// insertion order. Callers must not retain the returned slice across a
// mutating call.
func (g *Graph[D]) Nodes(id Id) []Language {
	return g.classes[g.Find(id)].nodes
}

// canonicalize returns a copy of node with every child replaced by its
// current canonical Id. It does not mutate node.
func (g *Graph[D]) canonicalize(node Language) Language {
	children := node.Children()
	if len(children) == 0 {
		return node
	}
	canon := make([]Id, len(children))
	changed := false
	for i, c := range children {
		canon[i] = g.uf.find(c)
		if canon[i] != c {
			changed = true
		}
	}
	if !changed {
		return node
	}
	return node.WithChildren(canon)
}

func (g *Graph[D]) key(node Language) (uint64, hashKey) {
	k := hashKey{Op: node.Op(), Children: node.Children(), Repr: node.String()}
	h, err := hashstructure.Hash(k, nil)
	if err != nil {
		// hashstructure only fails on unsupported field kinds; hashKey is
		// composed solely of two strings and a []Id slice, all supported.
		panic("egraph: failed to hash node: " + err.Error())
	}
	return h, k
}

// Lookup returns the Id of an existing e-class congruent to node, if one has
// already been hash-consed, without inserting anything.
func (g *Graph[D]) Lookup(node Language) (Id, bool) {
	node = g.canonicalize(node)
	h, _ := g.key(node)
	for _, entry := range g.memo[h] {
		if entry.node.Equal(node) {
			return g.uf.find(entry.id), true
		}
	}
	return 0, false
}

// Add inserts node (canonicalizing its children first) and returns the Id of
// its e-class, reusing an existing congruent class via hash-consing instead
// of creating a duplicate.
func (g *Graph[D]) Add(node Language) Id {
	node = g.canonicalize(node)
	h, _ := g.key(node)
	for _, entry := range g.memo[h] {
		if entry.node.Equal(node) {
			return g.uf.find(entry.id)
		}
	}

	id := g.uf.makeSet()
	cls := &eclass[D]{nodes: []Language{node}}
	cls.data = g.analysis.Make(g, node)
	g.classes[id] = cls
	g.memo[h] = append(g.memo[h], bucketEntry[D]{node: node, id: id})

	for _, c := range node.Children() {
		root := g.uf.find(c)
		pcls := g.classes[root]
		pcls.parents = append(pcls.parents, parentLink{node: node, id: id})
	}

	g.analysis.Modify(g, id)
	g.clean = false
	return id
}

// Union merges the e-classes of a and b. It returns the surviving Id and
// whether a merge actually happened (false if they were already the same
// class). The graph is left dirty until Rebuild restores congruence.
func (g *Graph[D]) Union(a, b Id) (Id, bool) {
	ra, rb := g.uf.find(a), g.uf.find(b)
	if ra == rb {
		return ra, false
	}

	survivor := g.uf.union(ra, rb)
	loser := ra
	if survivor == ra {
		loser = rb
	}

	survivorCls, loserCls := g.classes[survivor], g.classes[loser]
	changed := g.analysis.Merge(&survivorCls.data, loserCls.data)
	survivorCls.nodes = append(survivorCls.nodes, loserCls.nodes...)
	survivorCls.parents = append(survivorCls.parents, loserCls.parents...)
	delete(g.classes, loser)

	g.dirty = append(g.dirty, survivor)
	g.clean = false
	if changed {
		g.analysis.Modify(g, survivor)
	}
	return survivor, true
}

// Rebuild restores congruence closure after a batch of Union calls,
// reprocessing every class touched since the last rebuild the way
// egg::EGraph::rebuild does: repeatedly re-canonicalize each dirty class's
// parent nodes, re-hash-cons them, and union any that now collide, until a
// fixed point is reached.
func (g *Graph[D]) Rebuild() {
	rounds := 0
	for len(g.dirty) > 0 {
		todo := g.dirty
		g.dirty = nil
		seen := make(map[Id]bool, len(todo))
		for _, id := range todo {
			root := g.uf.find(id)
			if seen[root] {
				continue
			}
			seen[root] = true
			g.repairClass(root)
		}
		rounds++
	}
	g.clean = true
	logrus.WithFields(logrus.Fields{"rounds": rounds, "classes": len(g.classes)}).Debug("egraph: rebuild complete")
}

func (g *Graph[D]) repairClass(id Id) {
	cls := g.classes[g.uf.find(id)]
	if cls == nil {
		return
	}

	newParents := make([]parentLink, 0, len(cls.parents))
	for _, p := range cls.parents {
		node := g.canonicalize(p.node)
		h, _ := g.key(node)
		pid := g.uf.find(p.id)

		merged := false
		bucket := g.memo[h]
		for i, entry := range bucket {
			entryID := g.uf.find(entry.id)
			if entry.node.Equal(node) && entryID != pid {
				g.memo[h] = append(bucket[:i:i], bucket[i+1:]...)
				g.Union(entryID, pid)
				merged = true
				break
			}
		}
		if !merged {
			g.memo[h] = upsert(g.memo[h], bucketEntry[D]{node: node, id: pid})
			newParents = append(newParents, parentLink{node: node, id: pid})
		}
	}
	cls = g.classes[g.uf.find(id)]
	if cls != nil {
		cls.parents = newParents
	}
}

func upsert[D any](bucket []bucketEntry[D], entry bucketEntry[D]) []bucketEntry[D] {
	for _, e := range bucket {
		if e.node.Equal(entry.node) {
			return bucket
		}
	}
	return append(bucket, entry)
}

// Classes returns every live e-class Id, in ascending order, for
// deterministic iteration by the pattern matcher and rule runner.
func (g *Graph[D]) Classes() []Id {
	ids := make([]Id, 0, len(g.classes))
	for id := range g.classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Size returns the number of live e-classes.
func (g *Graph[D]) Size() int { return len(g.classes) }
