package canny

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/valyala/fastrand"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/fixed"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
)

func fillImage(width, height int, fn func(c, r int) uint8) *image.Image[uint8] {
	img := image.NewImage[uint8](width, height)
	for r := range height {
		for c := range width {
			img.Set(c, r, fn(c, r))
		}
	}
	return img
}

func run(in *image.Image[uint8], low, high uint8) *image.Image[uint8] {
	out := image.NewImage[uint8](in.Width(), in.Height())
	out.Fill(0x55)
	CannySobel(in, out, make([]int16, ScratchSize(in.Width())), low, high)
	return out
}

func rowOf(img *image.Image[uint8], r int) []uint8 {
	return append([]uint8(nil), img.RowSlice(r)...)
}

func TestScratchSize(t *testing.T) {
	for _, w := range []int{3, 4, 640} {
		if got := ScratchSize(w); got != 15*w {
			t.Errorf("ScratchSize(%d) = %d", w, got)
		}
		if got := ScratchBytes(w); got != 30*w {
			t.Errorf("ScratchBytes(%d) = %d", w, got)
		}
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		gx, gy int16
		want   int16
	}{
		{0, 0, 0},
		{0, -16384, 16384},
		{0, -32640, 32640},
		{16256, 0, 16256},
		{3, 4, 4},
		{32640, 32640, 0x7FFF},
		{-32640, -32640, 0x7FFF},
	}
	for _, tt := range tests {
		if got := magnitude(tt.gx, tt.gy); got != tt.want {
			t.Errorf("magnitude(%d, %d) = %d, want %d", tt.gx, tt.gy, got, tt.want)
		}
	}
}

func TestSectorOf(t *testing.T) {
	tests := []struct {
		angle int16
		want  sector
	}{
		{0, sectorVertical},
		{3145, sectorVertical},
		{3146, sector45},
		{fixed.Q2_13HalfPi / 2, sector45},
		{9579, sectorHorizontal},
		{fixed.Q2_13HalfPi, sectorHorizontal},
		{16013, sector135},
		{22875, sector135},
		{22876, sectorVertical},
		{fixed.Q2_13Pi, sectorVertical},
	}
	for _, tt := range tests {
		if got := sectorOf(tt.angle); got != tt.want {
			t.Errorf("sectorOf(%d) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestDecide(t *testing.T) {
	const low, high = 100, 1000
	tests := []struct {
		name string
		nb   neighbourhood
		s    sector
		want uint8
	}{
		{"below low", neighbourhood{{0, 0, 0}, {0, 99, 0}, {0, 0, 0}}, sectorVertical, 0},
		{"strong maximum", neighbourhood{{0, 0, 0}, {10, 1000, 10}, {0, 0, 0}}, sectorVertical, edge},
		// A tie along the gradient direction suppresses both pixels.
		{"tie left", neighbourhood{{0, 0, 0}, {2000, 2000, 10}, {0, 0, 0}}, sectorVertical, 0},
		{"tie right", neighbourhood{{0, 0, 0}, {10, 2000, 2000}, {0, 0, 0}}, sectorVertical, 0},
		{"larger across", neighbourhood{{0, 3000, 0}, {0, 2000, 0}, {0, 0, 0}}, sectorHorizontal, 0},
		// The same neighbourhood survives when compared along the row.
		{"larger along", neighbourhood{{0, 3000, 0}, {0, 2000, 0}, {0, 0, 0}}, sectorVertical, edge},
		{"45 pair", neighbourhood{{0, 0, 600}, {0, 500, 0}, {0, 0, 0}}, sector45, 0},
		{"135 pair", neighbourhood{{0, 0, 0}, {0, 500, 0}, {0, 0, 600}}, sector135, 0},
		{"weak connected", neighbourhood{{1000, 0, 0}, {0, 500, 0}, {0, 0, 0}}, sectorVertical, edge},
		{"weak connected below", neighbourhood{{0, 0, 0}, {0, 500, 0}, {0, 0, 1200}}, sectorHorizontal, edge},
		{"weak isolated", neighbourhood{{999, 0, 0}, {0, 500, 0}, {0, 0, 999}}, sectorVertical, 0},
		{"weak at low", neighbourhood{{0, 0, 0}, {0, 100, 0}, {0, 1000, 0}}, sectorVertical, edge},
		{"horizontal ignores up right", neighbourhood{{0, 0, 1200}, {0, 500, 0}, {0, 0, 0}}, sectorHorizontal, 0},
		{"horizontal ignores down left", neighbourhood{{0, 0, 0}, {0, 500, 0}, {1200, 0, 0}}, sectorHorizontal, 0},
		{"horizontal connected up left", neighbourhood{{1200, 0, 0}, {0, 500, 0}, {0, 0, 0}}, sectorHorizontal, edge},
		{"135 ignores down left", neighbourhood{{0, 0, 0}, {0, 500, 0}, {1200, 0, 0}}, sector135, 0},
		{"135 ignores up right", neighbourhood{{0, 0, 1200}, {0, 500, 0}, {0, 0, 0}}, sector135, 0},
		{"135 connected above", neighbourhood{{0, 1200, 0}, {0, 500, 0}, {0, 0, 0}}, sector135, edge},
		{"45 connected right", neighbourhood{{0, 0, 0}, {0, 500, 1200}, {0, 0, 0}}, sector45, edge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decide(&tt.nb, tt.s, low, high); got != tt.want {
				t.Errorf("decide = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestPeak(t *testing.T) {
	tests := []struct {
		name string
		nb   neighbourhood
		want bool
	}{
		{"isolated", neighbourhood{{0, 0, 0}, {0, 500, 0}, {0, 0, 0}}, true},
		{"flat", neighbourhood{{500, 500, 500}, {500, 500, 500}, {500, 500, 500}}, false},
		{"pit", neighbourhood{{600, 600, 600}, {600, 500, 600}, {600, 600, 600}}, false},
		{"ridge along row", neighbourhood{{0, 0, 0}, {600, 500, 600}, {0, 0, 0}}, true},
		{"one side of every pair", neighbourhood{{600, 600, 600}, {600, 500, 0}, {0, 0, 0}}, false},
	}
	for _, tt := range tests {
		if got := peak(&tt.nb); got != tt.want {
			t.Errorf("%s: peak = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBlankImage(t *testing.T) {
	for _, v := range []uint8{0, 128, 255} {
		in := fillImage(9, 7, func(c, r int) uint8 { return v })
		out := run(in, 0, 0)
		for r := range 7 {
			if diff := cmp.Diff(make([]uint8, 9), rowOf(out, r)); diff != "" {
				t.Errorf("value %d row %d (-want +got):\n%s", v, r, diff)
			}
		}
	}
}

// Outer rows and columns are 0 no matter the content.
func TestBorderSuppressed(t *testing.T) {
	var rng fastrand.RNG
	for _, sz := range [][2]int{{3, 3}, {4, 3}, {3, 5}, {16, 16}, {37, 11}} {
		w, h := sz[0], sz[1]
		in := fillImage(w, h, func(c, r int) uint8 { return uint8(rng.Uint32()) })
		out := run(in, 10, 20)
		for c := range w {
			if out.At(c, 0) != 0 || out.At(c, h-1) != 0 {
				t.Errorf("%dx%d: border row pixel at column %d set", w, h, c)
			}
		}
		for r := range h {
			if out.At(0, r) != 0 || out.At(w-1, r) != 0 {
				t.Errorf("%dx%d: border column pixel at row %d set", w, h, r)
			}
		}
		for r := range h {
			for c := range w {
				if v := out.At(c, r); v != 0 && v != edge {
					t.Fatalf("%dx%d: pixel (%d,%d) = %#x", w, h, c, r, v)
				}
			}
		}
	}
}

// A symmetric step puts equal magnitudes on both sides of the edge, so
// neither pixel is a strict maximum.
func TestSymmetricStepTie(t *testing.T) {
	in := fillImage(8, 6, func(c, r int) uint8 {
		if c >= 4 {
			return 255
		}
		return 0
	})
	out := run(in, 10, 100)
	for r := range 6 {
		if diff := cmp.Diff(make([]uint8, 8), rowOf(out, r)); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", r, diff)
		}
	}
}

// An asymmetric ramp has a single peak at column 4.
func TestRampEdge(t *testing.T) {
	profile := []uint8{0, 0, 0, 0, 128, 255, 255, 255, 255, 255}
	in := fillImage(len(profile), 7, func(c, r int) uint8 { return profile[c] })
	out := run(in, 10, 100)
	for r := range 7 {
		want := make([]uint8, len(profile))
		if r > 0 && r < 6 {
			want[4] = edge
		}
		if diff := cmp.Diff(want, rowOf(out, r)); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", r, diff)
		}
	}

	// The peak magnitude, 32640 in Q2.13, is above the largest possible
	// high threshold (255 << 5).
	out = run(in, 255, 255)
	if got := out.At(4, 3); got != edge {
		t.Errorf("peak with maximal thresholds = %#x, want %#x", got, edge)
	}
	if got := out.At(3, 3); got != 0 {
		t.Errorf("shoulder with maximal thresholds = %#x, want 0", got)
	}
}

// A horizontal edge is detected in the row with the larger magnitude.
func TestHorizontalEdge(t *testing.T) {
	profile := []uint8{0, 0, 0, 64, 255, 255, 255}
	in := fillImage(6, len(profile), func(c, r int) uint8 { return profile[r] })
	out := run(in, 10, 100)
	for r := range len(profile) {
		want := make([]uint8, 6)
		if r == 3 {
			for c := 1; c < 5; c++ {
				want[c] = edge
			}
		}
		if diff := cmp.Diff(want, rowOf(out, r)); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", r, diff)
		}
	}
}

func TestScratchIgnoredAndSufficient(t *testing.T) {
	profile := []uint8{0, 0, 0, 0, 128, 255, 255, 255, 255, 255}
	in := fillImage(len(profile), 5, func(c, r int) uint8 { return profile[c] })
	want := run(in, 10, 100)

	n := ScratchSize(in.Width())
	scratch := make([]int16, n, n)
	for i := range scratch {
		scratch[i] = int16(i * 7919)
	}
	got := image.NewImage[uint8](in.Width(), in.Height())
	CannySobel(in, got, scratch, 10, 100)
	for r := range in.Height() {
		if diff := cmp.Diff(rowOf(want, r), rowOf(got, r)); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", r, diff)
		}
	}

	small := fillImage(3, 3, func(c, r int) uint8 { return uint8(40 * (c + r)) })
	CannySobel(small, image.NewImage[uint8](3, 3), make([]int16, 45, 45), 0, 0)
}

func TestContractPanics(t *testing.T) {
	if !checkContracts {
		t.Skip("contract checks compiled out")
	}
	tests := []struct {
		name    string
		in, out *image.Image[uint8]
		scratch int
		want    string
	}{
		{"too narrow", image.NewImage[uint8](2, 5), image.NewImage[uint8](2, 5), 30, "canny: image 2x5 below minimum 3x3"},
		{"too short", image.NewImage[uint8](5, 2), image.NewImage[uint8](5, 2), 75, "canny: image 5x2 below minimum 3x3"},
		{"size mismatch", image.NewImage[uint8](4, 4), image.NewImage[uint8](4, 5), 60, "canny: output 4x5 does not match input 4x4"},
		{"scratch", image.NewImage[uint8](4, 4), image.NewImage[uint8](4, 4), 59, "canny: scratch too short: 59 < 60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				msg, _ := r.(string)
				if !strings.Contains(msg, tt.want) {
					t.Errorf("panic %v, want %q", r, tt.want)
				}
			}()
			CannySobel(tt.in, tt.out, make([]int16, tt.scratch), 0, 0)
		})
	}
}

// Most of the per-pixel cost is the magnitude square root; the CORDIC angle
// is only computed for local maxima.
func BenchmarkCannySobel(b *testing.B) {
	var rng fastrand.RNG
	for _, sz := range [][2]int{{320, 240}, {640, 480}} {
		in := fillImage(sz[0], sz[1], func(c, r int) uint8 { return uint8(rng.Uint32n(256)) })
		out := image.NewImage[uint8](sz[0], sz[1])
		scratch := make([]int16, ScratchSize(sz[0]))
		b.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(b *testing.B) {
			b.SetBytes(int64(sz[0] * sz[1]))
			for b.Loop() {
				CannySobel(in, out, scratch, 40, 100)
			}
		})
	}
}
