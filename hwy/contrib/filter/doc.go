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

// Package filter provides fixed-point separable image filters that stream
// over the image one row at a time.
//
// Every filter is a 3-, 5- or 7-tap kernel applied in two passes: a
// vertical pass reduces K input rows into a single int16 scratch row, and a
// horizontal pass reduces the scratch row into the output row. Scratch
// memory is O(width) and owned by the caller.
//
// # Filters
//
//	Gaussian3x3(in, out)                          // fixed Replicate border, no scratch
//	Gaussian3x3Generic(in, out, scratch, border)  // [1,2,1] x [1,2,1] / 16, uint8 out
//	Gaussian5x5(in, out, scratch, border)         // binomial 5-tap, uint8 out
//	Gaussian7x7(in, out, scratch, border)         // binomial 7-tap, uint8 out
//	SobelX(in, out, scratch, border)              // d/dx, Q2.13 int16 out
//	SobelY(in, out, scratch, border)              // d/dy, Q2.13 int16 out
//
// Scratch sizes are queried with GaussianScratchSize and SobelScratchSize
// (int16 elements) or the matching ...ScratchBytes functions.
//
// # Border Policies
//
// Out-of-image taps are synthesized by one of three policies:
//
//	Replicate  the edge sample repeats          (-1 -> 0)
//	Wrap       the opposite edge continues       (-1 -> n-1)
//	Reflect    mirror without repeating the edge (-1 -> 1)
//
// ResolveOffsets turns a policy and a position class into per-tap offsets,
// so the inner loops never test coordinates.
//
// # Fixed Point
//
// All arithmetic is integer. Weights are powers of two or small integers
// whose vertical sums fit int16 for any 8-bit input; horizontal sums are
// accumulated in int32, shifted, and saturated into the output type.
//
// # Contracts
//
// Undersized scratch or output, images below 2x1, and unknown border
// policies panic once at entry. Build with -tags hwynocheck to drop the
// entry checks; an unknown border policy still panics since no offsets can
// be produced for it.
//
// # Vector Lanes
//
// When hwy reports a SIMD level, rows are reduced hwy.MaxLanes pixels at a
// time; otherwise a scalar loop is used. Both paths are bit-identical.
package filter
