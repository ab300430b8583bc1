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

package canny

import (
	"fmt"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/fixed"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
)

// ScratchSize returns the scratch length, in int16 elements, needed by
// CannySobel for images of the given width.
func ScratchSize(width int) int {
	return 15 * width
}

// ScratchBytes returns ScratchSize in bytes.
func ScratchBytes(width int) int {
	return 2 * ScratchSize(width)
}

// rows is a circular window of three rows carved out of the scratch
// buffer. Row y lives in slot y%3.
type rows [3][]int16

func (w *rows) row(y int) []int16 {
	return w[y%3]
}

// carve splits scratch into three rows of n elements and returns the rest.
func (w *rows) carve(scratch []int16, n int) []int16 {
	for i := range w {
		w[i] = scratch[:n:n]
		scratch = scratch[n:]
	}
	return scratch
}

// state holds the scratch arenas of one CannySobel call.
//
// partial rows hold (rowSmooth, colSmooth) pairs: rowSmooth is the [1,2,1]
// sum along the row, colSmooth the [1,2,1] sum down the column, both in
// Q2.13. grad rows hold (gx, gy) pairs, gx being the derivative down the
// column and gy the derivative along the row.
type state struct {
	width   int
	mag     rows
	partial rows
	grad    rows
}

func newState(scratch []int16, width int) state {
	s := state{width: width}
	scratch = s.mag.carve(scratch, width)
	scratch = s.partial.carve(scratch, 2*width)
	s.grad.carve(scratch, 2*width)
	return s
}

// smoothRow stores the row smoothing of input row y.
func (s *state) smoothRow(in *image.Image[uint8], y int) {
	src := in.RowSlice(y)
	dst := s.partial.row(y)
	for c := 1; c < s.width-1; c++ {
		dst[2*c] = smooth(src[c-1], src[c], src[c+1])
	}
}

// gradientRow completes the gradient and magnitude of row y. Input rows
// y-1 and y+1 must already be row-smoothed.
func (s *state) gradientRow(in *image.Image[uint8], y int) {
	above, cur, below := in.RowSlice(y-1), in.RowSlice(y), in.RowSlice(y+1)
	part := s.partial.row(y)
	for c := range s.width {
		part[2*c+1] = smooth(above[c], cur[c], below[c])
	}

	up, down := s.partial.row(y-1), s.partial.row(y+1)
	grad := s.grad.row(y)
	mag := s.mag.row(y)
	for c := 1; c < s.width-1; c++ {
		gx := up[2*c] - down[2*c]
		gy := part[2*(c-1)+1] - part[2*(c+1)+1]
		grad[2*c], grad[2*c+1] = gx, gy
		mag[c] = magnitude(gx, gy)
	}
}

// suppressRow writes output row y from the magnitudes of rows y-1, y and
// y+1 and the gradients of row y.
func (s *state) suppressRow(dst []uint8, y int, low, high int16) {
	above, cur, below := s.mag.row(y-1), s.mag.row(y), s.mag.row(y+1)
	grad := s.grad.row(y)
	dst[0], dst[s.width-1] = 0, 0
	for c := 1; c < s.width-1; c++ {
		if cur[c] < low {
			dst[c] = 0
			continue
		}
		nb := neighbourhood{
			{above[c-1], above[c], above[c+1]},
			{cur[c-1], cur[c], cur[c+1]},
			{below[c-1], below[c], below[c+1]},
		}
		if !peak(&nb) {
			dst[c] = 0
			continue
		}
		angle := fixed.AbsQ15(fixed.Atan2Q15(grad[2*c], grad[2*c+1]))
		dst[c] = decide(&nb, sectorOf(angle), low, high)
	}
}

// smooth is the [1,2,1] sum of three samples in Q2.13.
func smooth(a, b, c uint8) int16 {
	return (int16(a) + 2*int16(b) + int16(c)) << 5
}

// magnitude returns sqrt(gx²+gy²) in Q2.13, saturated to 0x7FFF.
func magnitude(gx, gy int16) int16 {
	if gx == 0 && gy == 0 {
		return 0
	}
	sq := (int64(gx)*int64(gx) + int64(gy)*int64(gy)) >> 1
	return fixed.SaturateQ15(fixed.SqrtQ31(int32(sq)) >> 15)
}

// CannySobel detects edges in in and writes 0xFF for edge pixels and 0
// elsewhere to out. low and high are the hysteresis thresholds on the
// 8-bit scale. scratch must hold at least ScratchSize(in.Width()) elements;
// its contents on entry are ignored.
func CannySobel(in, out *image.Image[uint8], scratch []int16, low, high uint8) {
	width, height := in.Width(), in.Height()
	if checkContracts {
		if width < 3 || height < 3 {
			panic(fmt.Sprintf("canny: image %dx%d below minimum 3x3", width, height))
		}
		if !image.SameSize(in, out) {
			panic(fmt.Sprintf("canny: output %dx%d does not match input %dx%d",
				out.Width(), out.Height(), width, height))
		}
		if len(scratch) < ScratchSize(width) {
			panic(fmt.Sprintf("canny: scratch too short: %d < %d", len(scratch), ScratchSize(width)))
		}
	}

	scratch = scratch[:ScratchSize(width)]
	clear(scratch)
	s := newState(scratch, width)
	lowQ, highQ := fixed.U8ToQ2_13(low), fixed.U8ToQ2_13(high)

	clear(out.RowSlice(0))
	for r := range height {
		s.smoothRow(in, r)
		if r >= 2 {
			s.gradientRow(in, r-1)
		}
		if r >= 3 {
			s.suppressRow(out.RowSlice(r-2), r-2, lowQ, highQ)
		}
	}

	// The last row has no gradient, so it cannot hold up its neighbour.
	clear(s.mag.row(height - 1))
	s.suppressRow(out.RowSlice(height-2), height-2, lowQ, highQ)
	clear(out.RowSlice(height - 1))
}
