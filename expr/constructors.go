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

// Constructors for the binary operator nodes, since binaryNode's field is
// unexported: callers outside this package (the pattern instantiator, the
// rule appliers, the aggregate planner) build nodes through these instead
// of struct literals.

func NewAdd(l, r Id) Add     { return Add{binaryNode{l, r}} }
func NewSub(l, r Id) Sub     { return Sub{binaryNode{l, r}} }
func NewMul(l, r Id) Mul     { return Mul{binaryNode{l, r}} }
func NewDiv(l, r Id) Div     { return Div{binaryNode{l, r}} }
func NewEq(l, r Id) Eq       { return Eq{binaryNode{l, r}} }
func NewNotEq(l, r Id) NotEq { return NotEq{binaryNode{l, r}} }
func NewGt(l, r Id) Gt       { return Gt{binaryNode{l, r}} }
func NewLt(l, r Id) Lt       { return Lt{binaryNode{l, r}} }
func NewGtEq(l, r Id) GtEq   { return GtEq{binaryNode{l, r}} }
func NewLtEq(l, r Id) LtEq   { return LtEq{binaryNode{l, r}} }
func NewAnd(l, r Id) And     { return And{binaryNode{l, r}} }
func NewOr(l, r Id) Or       { return Or{binaryNode{l, r}} }
func NewXor(l, r Id) Xor     { return Xor{binaryNode{l, r}} }
