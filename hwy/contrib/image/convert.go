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

package image

import (
	stdimage "image"
)

// FromGray copies a standard library gray image into a new Image[uint8].
// The result is anchored at (0, 0) regardless of src.Bounds().Min.
func FromGray(src *stdimage.Gray) *Image[uint8] {
	b := src.Bounds()
	img := NewImage[uint8](b.Dx(), b.Dy())
	for y := 0; y < img.height; y++ {
		start := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(img.RowSlice(y), src.Pix[start:start+img.width])
	}
	return img
}

// ToGray copies an Image[uint8] into a new standard library gray image.
func ToGray(img *Image[uint8]) *stdimage.Gray {
	dst := stdimage.NewGray(stdimage.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		copy(dst.Pix[y*dst.Stride:], img.RowSlice(y))
	}
	return dst
}

// GradientToGray maps a signed fixed-point gradient image to 8-bit
// magnitudes, |v| >> shift saturated to 255. A shift of 7 maps the full
// Q2.13 Sobel range (±32640) onto [0, 255].
func GradientToGray(img *Image[int16], shift uint) *stdimage.Gray {
	dst := stdimage.NewGray(stdimage.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		out := dst.Pix[y*dst.Stride : y*dst.Stride+img.width]
		for x, v := range img.RowSlice(y) {
			m := int32(v)
			if m < 0 {
				m = -m
			}
			out[x] = uint8(min(m>>shift, 255))
		}
	}
	return dst
}
