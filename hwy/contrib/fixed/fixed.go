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

// Package fixed provides the integer fixed-point helpers used by the image
// kernels: formats, conversions, square root and arctangent.
//
// Formats:
//
//	Q15    int16, 1 sign bit and 15 fractional bits, range [-1, 1)
//	Q2.13  int16, 2 integer bits and 13 fractional bits, range [-4, 4)
//	Q31    int32, 1 sign bit and 31 fractional bits, range [-1, 1)
//
// Angles are returned as Q2.13 radians, so the full circle fits in int16.
// None of the hot-path helpers use floating point.
package fixed

import "math"

const (
	// Q2_13Shift is the number of fractional bits of a Q2.13 value.
	Q2_13Shift = 13

	// Q2_13One is 1.0 in Q2.13.
	Q2_13One = 1 << Q2_13Shift

	// Q2_13Pi is π in Q2.13 radians, rounded to nearest.
	Q2_13Pi int16 = 25736

	// Q2_13HalfPi is π/2 in Q2.13 radians, rounded to nearest.
	Q2_13HalfPi int16 = 12868
)

// U8ToQ2_13 scales an 8-bit sample into the Q2.13 gradient domain (<< 5).
// 255 maps to 8160, leaving headroom for the 4x gain of a [1,2,1] tap.
func U8ToQ2_13(v uint8) int16 {
	return int16(v) << 5
}

// DegToRadQ2_13 converts an angle in degrees to Q2.13 radians, rounded to
// nearest. It is meant for computing constants, not for per-pixel use.
func DegToRadQ2_13(deg float64) int16 {
	return int16(math.Round(deg * math.Pi / 180 * Q2_13One))
}

// AbsQ15 returns |x|, saturating -32768 to 32767.
func AbsQ15(x int16) int16 {
	if x >= 0 {
		return x
	}
	if x == math.MinInt16 {
		return math.MaxInt16
	}
	return -x
}

// SaturateQ15 clamps a wider intermediate into the int16 range.
func SaturateQ15(x int32) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}
