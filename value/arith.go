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

package value

import "math"

// Arithmetic and three-valued logic. Every function here returns ok=false
// instead of panicking when the operation is undefined for its operand
// kinds or overflows int32: constant analysis must suppress such failures
// (yield "unknown") rather than propagate them into the rewrite engine.

// Add returns v + o.
func Add(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	if v.kind != KindInt || o.kind != KindInt {
		return Value{}, false
	}
	sum := int64(v.i) + int64(o.i)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return Value{}, false
	}
	return Int(int32(sum)), true
}

// Sub returns v - o.
func Sub(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	if v.kind != KindInt || o.kind != KindInt {
		return Value{}, false
	}
	diff := int64(v.i) - int64(o.i)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return Value{}, false
	}
	return Int(int32(diff)), true
}

// Mul returns v * o.
func Mul(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	if v.kind != KindInt || o.kind != KindInt {
		return Value{}, false
	}
	prod := int64(v.i) * int64(o.i)
	if prod < math.MinInt32 || prod > math.MaxInt32 {
		return Value{}, false
	}
	return Int(int32(prod)), true
}

// Div returns v / o. analysis.evalConstant already rejects a zero divisor
// before calling Div; after Null propagation, Div itself also returns
// ok=false for a non-integer operand, a zero divisor, and the int32
// overflow case (MinInt32 / -1).
func Div(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	if v.kind != KindInt || o.kind != KindInt {
		return Value{}, false
	}
	if o.i == 0 {
		return Value{}, false
	}
	if v.i == math.MinInt32 && o.i == -1 {
		return Value{}, false
	}
	return Int(v.i / o.i), true
}

// Neg returns -v.
func Neg(v Value) (Value, bool) {
	if v.IsNull() {
		return Null, true
	}
	if v.kind != KindInt {
		return Value{}, false
	}
	if v.i == math.MinInt32 {
		return Value{}, false
	}
	return Int(-v.i), true
}

// Eq, NotEq, Gt, Lt, GtEq, LtEq implement SQL scalar comparison: Null
// propagates, otherwise compare by the total ordering in Compare.

func Eq(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	return Bool(v.Equal(o)), true
}

func NotEq(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	return Bool(!v.Equal(o)), true
}

func Gt(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	return Bool(v.Compare(o) > 0), true
}

func Lt(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	return Bool(v.Compare(o) < 0), true
}

func GtEq(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	return Bool(v.Compare(o) >= 0), true
}

func LtEq(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	return Bool(v.Compare(o) <= 0), true
}

// And implements Kleene three-valued AND: false short-circuits through Null.
func And(v, o Value) (Value, bool) {
	if v.kind == KindBool && !v.b {
		return Bool(false), true
	}
	if o.kind == KindBool && !o.b {
		return Bool(false), true
	}
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	if v.kind != KindBool || o.kind != KindBool {
		return Value{}, false
	}
	return Bool(v.b && o.b), true
}

// Or implements Kleene three-valued OR: true short-circuits through Null.
func Or(v, o Value) (Value, bool) {
	if v.kind == KindBool && v.b {
		return Bool(true), true
	}
	if o.kind == KindBool && o.b {
		return Bool(true), true
	}
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	if v.kind != KindBool || o.kind != KindBool {
		return Value{}, false
	}
	return Bool(v.b || o.b), true
}

// Xor implements three-valued XOR: Null if either operand is Null.
func Xor(v, o Value) (Value, bool) {
	if v.IsNull() || o.IsNull() {
		return Null, true
	}
	if v.kind != KindBool || o.kind != KindBool {
		return Value{}, false
	}
	return Bool(v.b != o.b), true
}

// Not implements three-valued logical negation.
func Not(v Value) (Value, bool) {
	if v.IsNull() {
		return Null, true
	}
	if v.kind != KindBool {
		return Value{}, false
	}
	return Bool(!v.b), true
}
