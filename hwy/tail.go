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

package hwy

// ProcessWithTail splits a run of size elements into whole vectors of T
// and one remainder.
//
// It calls:
//   - fullFn(offset) for each whole vector, offset being its first index
//   - tailFn(offset, count) once for the remaining count < MaxLanes[T]()
//     elements, if any
//
// The pixel kernels pass their scalar loop as tailFn, so a run shorter than
// one vector is handled entirely by it:
//
//	hwy.ProcessWithTail[int16](len(line),
//	    func(offset int) {
//	        v := hwy.Load(line[offset:])
//	        hwy.Store(hwy.ShiftRight(v, 7), out[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            out[i] = line[i] >> 7
//	        }
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := MaxLanes[T]()
	if size <= 0 || lanes == 0 {
		return
	}

	whole := size / lanes
	for i := range whole {
		fullFn(i * lanes)
	}
	if rem := size % lanes; rem > 0 {
		tailFn(whole*lanes, rem)
	}
}

// AlignedSize rounds size up to a whole number of vectors of T. Image rows
// use it as their stride so every row starts on a vector boundary.
func AlignedSize[T Lanes](size int) int {
	lanes := MaxLanes[T]()
	if lanes == 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}
