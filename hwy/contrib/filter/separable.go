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

import (
	"fmt"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
)

// separable runs k over every row of in, writing out.
//
// Rows closer than the kernel radius to the top or bottom take their start
// or end position class; all other rows are interior. The scratch row is
// reused for every output row.
func separable[O Output](name string, in *image.Image[uint8], out *image.Image[O], scratch []int16, border BorderPolicy, k *kernel) {
	if checkContracts {
		checkImages(name, in, out)
		if len(scratch) < in.Width() {
			panic(fmt.Sprintf("%s: scratch too short: %d < %d", name, len(scratch), in.Width()))
		}
		if !border.Valid() {
			panic(fmt.Sprintf("%s: unsupported border policy %d", name, int8(border)))
		}
	}

	red := newReducer[O](k)
	line := scratch[:in.Width()]
	taps := k.taps()
	for r := 0; r < in.Height(); r++ {
		processLine(&red, in, out, line, border, taps, r)
	}
}

// checkImages panics unless in is at least 2x1 and out has the same size.
func checkImages[O Output](name string, in *image.Image[uint8], out *image.Image[O]) {
	if in.Width() < 2 || in.Height() < 1 {
		panic(fmt.Sprintf("%s: image %dx%d below minimum 2x1", name, in.Width(), in.Height()))
	}
	if !image.SameSize(in, out) {
		panic(fmt.Sprintf("%s: output %dx%d does not match input %dx%d",
			name, out.Width(), out.Height(), in.Width(), in.Height()))
	}
}
