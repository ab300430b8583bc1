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

import "github.com/ajroetker/go-highway-cv/hwy"

// kernel is a separable fixed-point kernel.
//
// The vertical weights are applied to uint8 samples and must keep every
// sum within int16. The horizontal weights are applied to the int16
// scratch row with int32 accumulation; the sum is shifted right by shift
// and saturated into the output type.
type kernel struct {
	vertical   []int16
	horizontal []int32
	shift      uint
}

func (k *kernel) taps() int {
	return len(k.vertical)
}

var (
	// [1,2,1] x [1,2,1] with weights 8,16,8 on both passes: the total gain
	// of 1024 is removed by the final >> 10, so a flat image is preserved.
	gaussian3Kernel = kernel{
		vertical:   []int16{8, 16, 8},
		horizontal: []int32{8, 16, 8},
		shift:      10,
	}

	// Binomial [1,4,6,4,1]: vertical gain 128, horizontal gain 16.
	gaussian5Kernel = kernel{
		vertical:   []int16{8, 32, 48, 32, 8},
		horizontal: []int32{1, 4, 6, 4, 1},
		shift:      11,
	}

	// Binomial [1,6,15,20,15,6,1]: vertical gain 128, horizontal gain 64.
	gaussian7Kernel = kernel{
		vertical:   []int16{2, 12, 30, 40, 30, 12, 2},
		horizontal: []int32{1, 6, 15, 20, 15, 6, 1},
		shift:      13,
	}

	// Smooth rows with [1,2,1] scaled to Q2.13 (<< 5), then difference
	// columns right minus left.
	sobelXKernel = kernel{
		vertical:   []int16{32, 64, 32},
		horizontal: []int32{-1, 0, 1},
	}

	// Difference rows below minus above in Q2.13, then smooth columns.
	sobelYKernel = kernel{
		vertical:   []int16{-32, 0, 32},
		horizontal: []int32{1, 2, 1},
	}
)

// Output is the set of pixel types a filter can write.
type Output interface {
	uint8 | int16
}

// reducer computes the two passes of a separable kernel over a run of
// pixels. With lanes set it works hwy.MaxLanes pixels at a time and hands
// the tail of each run to the scalar loops; both paths are bit-identical.
//
// A reducer is a plain value: it lives in the caller's frame and its
// vectors never reach the heap.
type reducer[O Output] struct {
	k        *kernel
	lanes    bool
	vweights [MaxTaps]hwy.Vec[int16]
	hweights [MaxTaps]hwy.Vec[int32]
}

// newReducer picks the lane path when a SIMD level is available.
func newReducer[O Output](k *kernel) reducer[O] {
	return makeReducer[O](k, hwy.HasLanes())
}

func makeReducer[O Output](k *kernel, lanes bool) reducer[O] {
	r := reducer[O]{k: k, lanes: lanes}
	if lanes {
		for i, w := range k.vertical {
			r.vweights[i] = hwy.Set(w)
		}
		for i, w := range k.horizontal {
			r.hweights[i] = hwy.Set(w)
		}
	}
	return r
}

// narrow saturates a horizontal sum into the output type.
func narrow[O Output](acc int32) O {
	v := hwy.SaturateI32ToI16(acc)
	var zero O
	if _, ok := any(zero).(uint8); ok {
		return O(hwy.SaturateI16ToU8(v))
	}
	return O(v)
}

// vertical sets dst[y] = sum_i w_i * rows[i][y] for y in [0, len(dst)).
func (r *reducer[O]) vertical(dst []int16, rows *[MaxTaps][]uint8) {
	if !r.lanes {
		r.verticalScalar(dst, rows, 0)
		return
	}
	taps := r.k.taps()
	half := hwy.MaxLanes[uint8]() / 2
	hwy.ProcessWithTail[uint8](len(dst),
		func(y int) {
			var lo, hi hwy.Vec[int16]
			for i := range taps {
				px := hwy.Load(rows[i][y:])
				wv := r.vweights[i]
				if i == 0 {
					lo = hwy.Mul(hwy.PromoteLowerU8ToI16(px), wv)
					hi = hwy.Mul(hwy.PromoteUpperU8ToI16(px), wv)
					continue
				}
				lo = hwy.MulAdd(hwy.PromoteLowerU8ToI16(px), wv, lo)
				hi = hwy.MulAdd(hwy.PromoteUpperU8ToI16(px), wv, hi)
			}
			hwy.Store(lo, dst[y:])
			hwy.Store(hi, dst[y+half:])
		},
		func(y, count int) {
			r.verticalScalar(dst[y:y+count], rows, y)
		},
	)
}

// horizontal sets dst[j] from src[start+j+offsets[i]] for j in [0, len(dst)).
func (r *reducer[O]) horizontal(dst []O, src []int16, start int, offsets []int) {
	if !r.lanes {
		r.horizontalScalar(dst, src, start, offsets)
		return
	}
	taps := r.k.taps()
	shift := int(r.k.shift)
	hwy.ProcessWithTail[int16](len(dst),
		func(j int) {
			var lo, hi hwy.Vec[int32]
			for i := range taps {
				v := hwy.Load(src[start+j+offsets[i]:])
				wv := r.hweights[i]
				if i == 0 {
					lo = hwy.Mul(hwy.PromoteLowerI16ToI32(v), wv)
					hi = hwy.Mul(hwy.PromoteUpperI16ToI32(v), wv)
					continue
				}
				lo = hwy.MulAdd(hwy.PromoteLowerI16ToI32(v), wv, lo)
				hi = hwy.MulAdd(hwy.PromoteUpperI16ToI32(v), wv, hi)
			}
			storeNarrow(hwy.DemoteTwoI32ToI16(hwy.ShiftRight(lo, shift), hwy.ShiftRight(hi, shift)), dst[j:])
		},
		func(j, count int) {
			r.horizontalScalar(dst[j:j+count], src, start+j, offsets)
		},
	)
}

// verticalScalar reduces rows[i][from+y] into dst[y].
func (r *reducer[O]) verticalScalar(dst []int16, rows *[MaxTaps][]uint8, from int) {
	w := r.k.vertical
	for y := range dst {
		var acc int32
		for i, wi := range w {
			acc += int32(wi) * int32(rows[i][from+y])
		}
		dst[y] = int16(acc)
	}
}

func (r *reducer[O]) horizontalScalar(dst []O, src []int16, start int, offsets []int) {
	w := r.k.horizontal
	for j := range dst {
		x := start + j
		var acc int32
		for i, wi := range w {
			acc += wi * int32(src[x+offsets[i]])
		}
		dst[j] = narrow[O](acc >> r.k.shift)
	}
}

// storeNarrow stores a saturated int16 vector into the output row.
func storeNarrow[O Output](v hwy.Vec[int16], dst []O) {
	switch d := any(dst).(type) {
	case []uint8:
		hwy.Store(hwy.DemoteI16ToU8(v), d)
	case []int16:
		hwy.Store(v, d)
	}
}
