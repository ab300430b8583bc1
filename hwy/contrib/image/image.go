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

// Package image provides 2D image views for the fixed-point kernels.
//
// An Image wraps a single-channel buffer with a row stride. Images created
// with NewImage pad each row to the vector width; images created with
// FromSlice borrow a caller buffer laid out row-major with no padding.
// Kernels only read and write whole rows through RowSlice.
//
// Example usage:
//
//	in := image.FromSlice(640, 480, pixels)
//	out := image.NewImage[uint8](640, 480)
//	for y := 0; y < in.Height(); y++ {
//	    copy(out.RowSlice(y), in.RowSlice(y))
//	}
package image

import (
	"fmt"

	"github.com/ajroetker/go-highway-cv/hwy"
)

// Image is a single-channel 2D view over a buffer of T.
type Image[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	stride int // elements per row (includes padding)
}

// NewImage creates a new image with the specified dimensions.
// Rows are padded to the vector width.
func NewImage[T hwy.Lanes](width, height int) *Image[T] {
	if width <= 0 || height <= 0 {
		return &Image[T]{}
	}

	// Calculate stride (elements per row, rounded up to vector width)
	stride := hwy.AlignedSize[T](width)

	return &Image[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// FromSlice wraps data as a width x height image with stride == width.
// The image borrows data; writes through the image are visible to the caller.
// It panics if data holds fewer than width*height elements.
func FromSlice[T hwy.Lanes](width, height int, data []T) *Image[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("image: negative dimensions %dx%d", width, height))
	}
	if len(data) < width*height {
		panic(fmt.Sprintf("image: data slice too short: %d < %d", len(data), width*height))
	}
	return &Image[T]{
		data:   data[:width*height],
		width:  width,
		height: height,
		stride: width,
	}
}

// Width returns the image width in pixels.
func (img *Image[T]) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image[T]) Height() int {
	return img.height
}

// Stride returns the number of elements per row (including padding).
func (img *Image[T]) Stride() int {
	return img.stride
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual image width (excluding padding).
func (img *Image[T]) RowSlice(y int) []T {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+img.width]
}

// At returns the value at position (x, y), or zero outside the image.
func (img *Image[T]) At(x, y int) T {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		var zero T
		return zero
	}
	return img.data[y*img.stride+x]
}

// Set sets the value at position (x, y). Positions outside the image are ignored.
func (img *Image[T]) Set(x, y int, value T) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	img.data[y*img.stride+x] = value
}

// SameSize returns true if both images have the same dimensions.
func SameSize[T, U hwy.Lanes](a *Image[T], b *Image[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Fill sets all pixels to the specified value.
func (img *Image[T]) Fill(value T) {
	for i := range img.data {
		img.data[i] = value
	}
}

// Clamp returns index clamped to [0, size-1].
// This is the Replicate border: the edge sample repeats.
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
// This is the toroidal border: one end continues at the other.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index = index % size
	if index < 0 {
		index += size
	}
	return index
}

// Reflect mirrors an out-of-range index back into [0, size) without
// repeating the edge sample: -1 maps to 1 and size maps to size-2.
func Reflect(index, size int) int {
	if size <= 1 {
		return 0
	}
	period := 2 * (size - 1)
	index = Wrap(index, period)
	if index >= size {
		index = period - index
	}
	return index
}
