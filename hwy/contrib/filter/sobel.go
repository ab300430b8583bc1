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

package filter

import "github.com/ajroetker/go-highway-cv/hwy/contrib/image"

// SobelScratchSize returns the scratch length, in int16 elements, needed
// by SobelX and SobelY for images of the given width.
func SobelScratchSize(width int) int {
	return width
}

// SobelScratchBytes returns SobelScratchSize in bytes.
func SobelScratchBytes(width int) int {
	return 2 * SobelScratchSize(width)
}

// SobelX computes the horizontal derivative of in,
//
//	[-1 0 1]
//	[-2 0 2]
//	[-1 0 1]
//
// in Q2.13: each output is (right column minus left column) with the
// [1,2,1] row smoothing scaled by 32, so the range is ±32640. A dark to
// bright step from left to right gives a positive response.
// scratch must hold at least SobelScratchSize(in.Width()) elements and
// must not alias out.
func SobelX(in *image.Image[uint8], out *image.Image[int16], scratch []int16, border BorderPolicy) {
	separable("sobelx", in, out, scratch, border, &sobelXKernel)
}

// SobelY computes the vertical derivative of in,
//
//	[-1 -2 -1]
//	[ 0  0  0]
//	[ 1  2  1]
//
// in Q2.13 (row below minus row above, range ±32640). A dark to bright
// step from top to bottom gives a positive response.
func SobelY(in *image.Image[uint8], out *image.Image[int16], scratch []int16, border BorderPolicy) {
	separable("sobely", in, out, scratch, border, &sobelYKernel)
}
