package filter

import (
	"testing"

	"github.com/valyala/fastrand"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
)

// kernel2D expands k into its full 2D weight matrix.
func kernel2D(k *kernel) *mat.Dense {
	n := k.taps()
	v := make([]float64, n)
	h := make([]float64, n)
	for i := range n {
		v[i] = float64(k.vertical[i])
		h[i] = float64(k.horizontal[i])
	}
	m := mat.NewDense(n, n, nil)
	m.Outer(1, mat.NewVecDense(n, v), mat.NewVecDense(n, h))
	return m
}

// convolve2D applies k as a direct 2D convolution, remapping every
// out-of-range sample with border.
func convolve2D[O Output](in *image.Image[uint8], k *kernel, border BorderPolicy) *image.Image[O] {
	weights := kernel2D(k)
	remap := border.remap()
	radius := k.taps() / 2
	width, height := in.Width(), in.Height()
	out := image.NewImage[O](width, height)
	for r := range height {
		for c := range width {
			var acc int64
			for i := range k.taps() {
				y := remap(r+i-radius, height)
				for j := range k.taps() {
					x := remap(c+j-radius, width)
					acc += int64(weights.At(i, j)) * int64(in.At(x, y))
				}
			}
			out.Set(c, r, narrow[O](int32(acc>>k.shift)))
		}
	}
	return out
}

func randomImage(rng *fastrand.RNG, width, height int) *image.Image[uint8] {
	img := image.NewImage[uint8](width, height)
	for r := range height {
		row := img.RowSlice(r)
		for c := range row {
			row[c] = uint8(rng.Uint32())
		}
	}
	return img
}

func fillImage(width, height int, fn func(c, r int) uint8) *image.Image[uint8] {
	img := image.NewImage[uint8](width, height)
	for r := range height {
		for c := range width {
			img.Set(c, r, fn(c, r))
		}
	}
	return img
}

// diffImages reports the first few mismatching pixels.
func diffImages[O Output](t *testing.T, got, want *image.Image[O]) {
	t.Helper()
	if !image.SameSize(got, want) {
		t.Fatalf("size %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	errs := 0
	for r := range want.Height() {
		for c := range want.Width() {
			if g, w := got.At(c, r), want.At(c, r); g != w {
				t.Errorf("pixel (%d,%d) = %d, want %d", c, r, g, w)
				errs++
				if errs >= 5 {
					t.FailNow()
				}
			}
		}
	}
}
