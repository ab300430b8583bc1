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
	"strings"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
)

// BorderPolicy selects how samples outside the image are synthesized.
type BorderPolicy int8

const (
	// Replicate repeats the edge sample.
	Replicate BorderPolicy = iota

	// Wrap continues at the opposite edge (toroidal image).
	Wrap

	// Reflect mirrors around the edge sample without repeating it.
	Reflect
)

// String returns the lower-case policy name.
func (p BorderPolicy) String() string {
	switch p {
	case Replicate:
		return "replicate"
	case Wrap:
		return "wrap"
	case Reflect:
		return "reflect"
	default:
		return fmt.Sprintf("BorderPolicy(%d)", int8(p))
	}
}

// Valid reports whether p is one of the three defined policies.
func (p BorderPolicy) Valid() bool {
	return p == Replicate || p == Wrap || p == Reflect
}

// ParseBorderPolicy parses a policy name as returned by String.
func ParseBorderPolicy(s string) (BorderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replicate", "nearest", "clamp":
		return Replicate, nil
	case "wrap":
		return Wrap, nil
	case "reflect", "mirror":
		return Reflect, nil
	}
	return 0, fmt.Errorf("filter: unknown border policy %q", s)
}

// remap returns the index function implementing p.
func (p BorderPolicy) remap() func(index, size int) int {
	switch p {
	case Replicate:
		return image.Clamp
	case Wrap:
		return image.Wrap
	case Reflect:
		return image.Reflect
	}
	panic(fmt.Sprintf("filter: unsupported border policy %d", int8(p)))
}

// PositionClass identifies where along an axis a pixel sits relative to
// the kernel footprint.
//
// For a K-tap kernel with radius R = K/2 the classes are 0..K-1: class
// p < R is the pixel p steps from the start edge, class R is any interior
// pixel, and class p > R is the pixel at index extent-K+p, K-1-p steps
// from the end edge. A 5-tap kernel therefore has far-start, near-start,
// interior, near-end and far-end classes.
type PositionClass int

// Position classes of a 3-tap kernel.
const (
	TopLeft     PositionClass = 0
	Middle      PositionClass = 1
	BottomRight PositionClass = 2
)

// MaxTaps is the largest supported kernel length.
const MaxTaps = 7

// classFor returns the position class of index on an axis of length extent.
func classFor(index, extent, taps int) PositionClass {
	radius := taps / 2
	switch {
	case index < radius:
		return PositionClass(index)
	case index >= extent-radius:
		return PositionClass(taps - (extent - index))
	default:
		return PositionClass(radius)
	}
}

// ResolveOffsets fills dst with the per-tap offsets for a pixel of the
// given position class on an axis of length extent, and returns dst.
// len(dst) is the tap count and must be 3, 5 or 7.
//
// Offset i is added to the pixel's index to fetch tap i. Interior offsets
// are -R..R; edge classes replace the taps that would leave [0, extent)
// with the in-range index chosen by policy, so every dereferenced index
// stays inside the axis. Only Wrap depends on extent beyond the edge
// position itself.
//
// ResolveOffsets panics on an unknown policy, an unsupported tap count, or
// a class that does not fit the extent.
func ResolveOffsets(policy BorderPolicy, class PositionClass, extent int, dst []int) []int {
	taps := len(dst)
	if taps != 3 && taps != 5 && taps != 7 {
		panic(fmt.Sprintf("filter: unsupported tap count %d", taps))
	}
	remap := policy.remap()
	radius := taps / 2
	p := int(class)

	if p == radius {
		for i := range dst {
			dst[i] = i - radius
		}
		return dst
	}

	var index int
	switch {
	case p >= 0 && p < radius:
		index = p
	case p > radius && p < taps:
		index = extent - taps + p
	default:
		panic(fmt.Sprintf("filter: position class %d out of range for %d taps", p, taps))
	}
	if index < 0 || index >= extent {
		panic(fmt.Sprintf("filter: position class %d does not fit extent %d", p, extent))
	}

	for i := range dst {
		dst[i] = remap(index+i-radius, extent) - index
	}
	return dst
}
