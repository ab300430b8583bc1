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

// GaussianScratchSize returns the scratch length, in int16 elements, needed
// by the Gaussian filters for images of the given width.
func GaussianScratchSize(width int) int {
	return width
}

// GaussianScratchBytes returns GaussianScratchSize in bytes.
func GaussianScratchBytes(width int) int {
	return 2 * GaussianScratchSize(width)
}

// Gaussian3x3Generic blurs in with the 3x3 kernel [1,2,1]x[1,2,1]/16 and
// writes the result to out, synthesizing border samples with border.
// scratch must hold at least GaussianScratchSize(in.Width()) elements.
func Gaussian3x3Generic(in, out *image.Image[uint8], scratch []int16, border BorderPolicy) {
	separable("gaussian3x3", in, out, scratch, border, &gaussian3Kernel)
}

// Gaussian5x5 blurs in with the binomial 5x5 kernel (sum 256).
func Gaussian5x5(in, out *image.Image[uint8], scratch []int16, border BorderPolicy) {
	separable("gaussian5x5", in, out, scratch, border, &gaussian5Kernel)
}

// Gaussian7x7 blurs in with the binomial 7x7 kernel (sum 4096).
func Gaussian7x7(in, out *image.Image[uint8], scratch []int16, border BorderPolicy) {
	separable("gaussian7x7", in, out, scratch, border, &gaussian7Kernel)
}

// Gaussian3x3 blurs in with the 3x3 kernel [1,2,1]x[1,2,1]/16 using the
// Replicate border and no caller scratch. It keeps the three input rows of
// the current output row and a three-column window of vertical sums, and
// produces exactly the output of Gaussian3x3Generic with Replicate.
func Gaussian3x3(in, out *image.Image[uint8]) {
	if checkContracts {
		checkImages("gaussian3x3", in, out)
	}

	width, height := in.Width(), in.Height()
	for r := 0; r < height; r++ {
		above := in.RowSlice(max(r-1, 0))
		cur := in.RowSlice(r)
		below := in.RowSlice(min(r+1, height-1))
		dst := out.RowSlice(r)

		left := gaussianColumn(above, cur, below, 0)
		mid := left
		for c := 0; c < width; c++ {
			right := gaussianColumn(above, cur, below, min(c+1, width-1))
			dst[c] = uint8((8*left + 16*mid + 8*right) >> 10)
			left, mid = mid, right
		}
	}
}

// gaussianColumn is the vertical [8,16,8] sum of column c.
func gaussianColumn(above, cur, below []uint8, c int) int32 {
	return 8*int32(above[c]) + 16*int32(cur[c]) + 8*int32(below[c])
}

// Gaussian5x5ScratchSize returns the scratch length, in int16 elements,
// needed by Gaussian5x5.
func Gaussian5x5ScratchSize(width int) int {
	return width
}

// Gaussian5x5ScratchBytes returns Gaussian5x5ScratchSize in bytes.
func Gaussian5x5ScratchBytes(width int) int {
	return 2 * Gaussian5x5ScratchSize(width)
}

// Gaussian7x7ScratchSize returns the scratch length, in int16 elements,
// needed by Gaussian7x7.
func Gaussian7x7ScratchSize(width int) int {
	return width
}

// Gaussian7x7ScratchBytes returns Gaussian7x7ScratchSize in bytes.
func Gaussian7x7ScratchBytes(width int) int {
	return 2 * Gaussian7x7ScratchSize(width)
}
