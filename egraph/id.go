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

// Package egraph implements the e-graph kernel: a hash-consed term
// graph with union-find over e-classes, congruence closure restored by
// rebuild, and a pluggable Analysis that attaches lattice-valued data to
// every e-class.
package egraph

import "fmt"

// Id names an e-class. Ids are never reused and never deleted; union only
// merges classes, it does not retire an Id.
type Id uint32

func (id Id) String() string { return fmt.Sprintf("e%d", uint32(id)) }

// Language is the node interface the e-graph kernel operates on. A concrete
// language (package expr implements one) supplies node kinds as Go types
// satisfying this interface; the kernel never inspects node payloads beyond
// what Language exposes.
type Language interface {
	// Op identifies the node's kind for hash-consing and pattern matching,
	// e.g. "scan", "+", "column". Nodes with different Op values can never
	// be congruent.
	Op() string
	// Children returns the node's e-class operands in order. Leaf nodes
	// return nil.
	Children() []Id
	// WithChildren returns a copy of the node with Children() replaced by
	// the given ids, used by canonicalization and by appliers rebuilding a
	// node against freshly unioned classes.
	WithChildren(children []Id) Language
	// Equal reports structural equality against another node of a
	// (potentially) different dynamic type; used to resolve hash-cons
	// collisions and must agree with Op()/Children() plus any leaf
	// payload (e.g. the Value inside a Constant node).
	Equal(other Language) bool
	// String renders the node in the canonical S-expression syntax,
	// formatting any children by the ids already canonicalized into it.
	String() string
}
