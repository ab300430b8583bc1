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

// cordicAngles holds atan(2^-i) in Q3.29 radians.
var cordicAngles = [...]int64{
	421657428, // atan(2^-0)
	248918915, // atan(2^-1)
	131521918, // atan(2^-2)
	66762579,  // atan(2^-3)
	33510843,  // atan(2^-4)
	16771758,  // atan(2^-5)
	8387925,   // atan(2^-6)
	4194219,   // atan(2^-7)
	2097141,   // atan(2^-8)
	1048575,   // atan(2^-9)
	524288,    // atan(2^-10)
	262144,    // atan(2^-11)
	131072,    // atan(2^-12)
	65536,     // atan(2^-13)
	32768,     // atan(2^-14)
	16384,     // atan(2^-15)
	8192,      // atan(2^-16)
	4096,      // atan(2^-17)
	2048,      // atan(2^-18)
	1024,      // atan(2^-19)
	512,       // atan(2^-20)
}

const cordicPi int64 = 1686629713 // π in Q3.29

const (
	cordicToQ2_13  = 29 - Q2_13Shift
	cordicPrescale = 14
)

// Atan2Q15 returns atan2(y, x) in Q2.13 radians, in [-π, π].
//
// Inputs are Q15 (any common scale works, only the ratio matters).
// atan2(0, 0) is 0. The result is within a few units of the exact angle
// rounded to Q2.13.
func Atan2Q15(y, x int16) int16 {
	switch {
	case y == 0:
		if x < 0 {
			return Q2_13Pi
		}
		return 0
	case x == 0:
		if y > 0 {
			return Q2_13HalfPi
		}
		return -Q2_13HalfPi
	}

	// Rotate the left half-plane onto the right one; CORDIC vectoring
	// converges for |angle| <= 99.9 degrees.
	var base int64
	xs, ys := int64(x), int64(y)
	if xs < 0 {
		xs, ys = -xs, -ys
		if y > 0 {
			base = cordicPi
		} else {
			base = -cordicPi
		}
	}

	xs <<= cordicPrescale
	ys <<= cordicPrescale
	var z int64
	for i, a := range cordicAngles {
		if ys > 0 {
			xs, ys = xs+(ys>>i), ys-(xs>>i)
			z += a
		} else {
			xs, ys = xs-(ys>>i), ys+(xs>>i)
			z -= a
		}
	}

	angle := (base + z + 1<<(cordicToQ2_13-1)) >> cordicToQ2_13
	return int16(max(min(angle, int64(Q2_13Pi)), -int64(Q2_13Pi)))
}
