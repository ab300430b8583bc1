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

import "github.com/ajroetker/go-highway-cv/hwy/contrib/fixed"

const edge = 0xFF

// neighbourhood holds the magnitudes around a pixel, indexed
// [dRow+1][dCol+1].
type neighbourhood [3][3]int16

// sector is the quantized gradient direction used for suppression.
type sector uint8

const (
	sectorVertical sector = iota
	sector45
	sectorHorizontal
	sector135
)

// Sector boundaries in Q2.13 radians.
var (
	angle22  = fixed.DegToRadQ2_13(22)
	angle67  = fixed.DegToRadQ2_13(67)
	angle112 = fixed.DegToRadQ2_13(112)
	angle160 = fixed.DegToRadQ2_13(160)
)

// sectorOf maps an angle in [0, π] to its sector.
func sectorOf(angle int16) sector {
	switch {
	case angle < angle22:
		return sectorVertical
	case angle < angle67:
		return sector45
	case angle < angle112:
		return sectorHorizontal
	case angle < angle160:
		return sector135
	default:
		return sectorVertical
	}
}

// across lists the (dRow, dCol) pair a pixel must strictly exceed in each
// sector.
var across = [4][2][2]int{
	sectorVertical:   {{0, -1}, {0, 1}},
	sector45:         {{1, -1}, {-1, 1}},
	sectorHorizontal: {{-1, 0}, {1, 0}},
	sector135:        {{-1, -1}, {1, 1}},
}

// support lists the (dRow, dCol) neighbours that promote a weak pixel to an
// edge in each sector. The horizontal and 135° sets are narrower than the
// neighbourhood left over by the suppression pair.
var support = [4][][2]int{
	sectorVertical:   {{-1, -1}, {-1, 0}, {-1, 1}, {1, -1}, {1, 0}, {1, 1}},
	sector45:         {{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, 0}, {1, 1}},
	sectorHorizontal: {{-1, -1}, {0, -1}, {0, 1}, {1, 1}},
	sector135:        {{-1, 0}, {0, -1}, {0, 1}, {1, 0}},
}

// peak reports whether the centre of nb strictly exceeds both pixels of
// the suppression pair of at least one sector. Pixels that fail it are
// suppressed whatever their gradient direction.
func peak(nb *neighbourhood) bool {
	mag := nb[1][1]
	for _, pair := range across {
		if mag > nb[1+pair[0][0]][1+pair[0][1]] && mag > nb[1+pair[1][0]][1+pair[1][1]] {
			return true
		}
	}
	return false
}

// decide returns the output of the centre pixel of nb. low and high are in
// Q2.13.
func decide(nb *neighbourhood, s sector, low, high int16) uint8 {
	mag := nb[1][1]
	if mag < low {
		return 0
	}
	for _, d := range across[s] {
		if mag <= nb[1+d[0]][1+d[1]] {
			return 0
		}
	}
	if mag >= high {
		return edge
	}
	for _, d := range support[s] {
		if nb[1+d[0]][1+d[1]] >= high {
			return edge
		}
	}
	return 0
}
