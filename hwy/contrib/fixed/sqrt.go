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

package fixed

import "math/bits"

// SqrtQ31 returns the square root of a non-negative Q31 value in Q31:
// floor(sqrt(x * 2^31)). Zero and negative inputs return 0.
//
// Used on a plain integer n (not a fraction), SqrtQ31(n) >> 15 is
// sqrt(2n) rounded down to within one unit, which is how the edge detector
// turns a halved sum of squares back into a Euclidean norm.
func SqrtQ31(x int32) int32 {
	if x <= 0 {
		return 0
	}
	return int32(isqrt64(uint64(x) << 31))
}

// isqrt64 returns floor(sqrt(n)) using the digit-by-digit method.
func isqrt64(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	var root uint64
	// Highest power of four not above n.
	bit := uint64(1) << ((63 - bits.LeadingZeros64(n)) &^ 1)
	for bit != 0 {
		if n >= root+bit {
			n -= root + bit
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return root
}
