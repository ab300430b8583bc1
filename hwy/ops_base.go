// Copyright 2025 go-highway Authors
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

package hwy

// This file provides pure Go (scalar) implementations of the lane operations.
// The fixed-point kernels only need integer lanes, so every operation is a
// plain generic loop over the lane array; wrap-around follows Go's integer
// semantics, exactly as the corresponding scalar expression would. Vectors
// are passed by value and never touch the heap.

// Load creates a vector by loading data from a slice.
// If src is shorter than the lane count, the vector holds len(src) lanes.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:MaxLanes[T]()], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data[:v.n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication, keeping the low bits of each
// product.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n)
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// MulAdd computes a*b + c element-wise.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	var r Vec[T]
	r.n = min(a.n, b.n, c.n)
	for i := range r.n {
		r.data[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return r
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.n {
		v.data[i] >>= bits
	}
	return v
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data[:v.n] {
		sum += x
	}
	return sum
}
