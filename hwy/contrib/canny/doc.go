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

// Package canny implements a fused Sobel gradient and Canny edge detector
// for 8-bit images in Q2.13 fixed point.
//
// CannySobel streams over the input once. It keeps three rows of partial
// smoothing sums, three rows of gradients and three rows of magnitudes in
// a caller-provided scratch buffer, so memory use is 15 int16 values per
// column regardless of the image height:
//
//	scratch := make([]int16, canny.ScratchSize(img.Width()))
//	canny.CannySobel(img, edges, scratch, 40, 100)
//
// Each output pixel is 0xFF on an edge and 0 elsewhere. A pixel is an edge
// when its gradient magnitude is a strict local maximum along the gradient
// direction and either reaches the high threshold itself or touches an
// 8-neighbour that does. Magnitudes below the low threshold are never
// edges. The outermost rows and columns are always 0.
//
// Thresholds are given on the 8-bit input scale and compared against
// magnitudes in Q2.13 (threshold << 5).
//
// # Contracts
//
// The image must be at least 3x3, out must match in, and scratch must hold
// ScratchSize(width) elements. Violations panic at entry; the checks are
// compiled out with the hwynocheck build tag.
package canny
