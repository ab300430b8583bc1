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

// processLine computes output row r: the vertical pass reduces the kernel's
// input rows into line, then the horizontal pass reduces line into the
// output row with edge classes for the first and last radius columns.
func processLine[O Output](red *reducer[O], in *image.Image[uint8], out *image.Image[O], line []int16, border BorderPolicy, taps, r int) {
	width, height := in.Width(), in.Height()
	radius := taps / 2
	var offsets [MaxTaps]int

	// Vertical offsets are row deltas; each tap reads a whole input row.
	off := ResolveOffsets(border, classFor(r, height, taps), height, offsets[:taps])
	var rows [MaxTaps][]uint8
	for i, d := range off {
		rows[i] = in.RowSlice(r + d)
	}
	red.vertical(line, &rows)

	dst := out.RowSlice(r)
	for c := 0; c < min(radius, width); c++ {
		off = ResolveOffsets(border, classFor(c, width, taps), width, offsets[:taps])
		red.horizontal(dst[c:c+1], line, c, off)
	}
	if width-radius > radius {
		off = ResolveOffsets(border, PositionClass(radius), width, offsets[:taps])
		red.horizontal(dst[radius:width-radius], line, radius, off)
	}
	for c := max(radius, width-radius); c < width; c++ {
		off = ResolveOffsets(border, classFor(c, width, taps), width, offsets[:taps])
		red.horizontal(dst[c:c+1], line, c, off)
	}
}
