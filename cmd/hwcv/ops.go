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

package main

import (
	stdimage "image"
	"slices"
	"strings"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/canny"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/filter"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
)

// kernelConfig holds the parameters shared by every kernel.
type kernelConfig struct {
	border    filter.BorderPolicy
	low, high uint8
}

// buffers are the per-image outputs a kernel writes into.
type buffers struct {
	out  *image.Image[uint8]
	grad *image.Image[int16]
}

func newBuffers(width, height int) *buffers {
	return &buffers{
		out:  image.NewImage[uint8](width, height),
		grad: image.NewImage[int16](width, height),
	}
}

// kernelOp describes one selectable kernel.
type kernelOp struct {
	name      string
	usage     string
	minWidth  int
	minHeight int
	gradient  bool // writes buffers.grad instead of buffers.out
	scratch   func(width int) int
	apply     func(in *image.Image[uint8], b *buffers, scratch []int16, cfg kernelConfig)
}

// display returns the 8-bit rendering of the kernel's last output.
func (op *kernelOp) display(b *buffers) *stdimage.Gray {
	if op.gradient {
		// Q2.13 Sobel range ±32640 onto [0, 255].
		return image.GradientToGray(b.grad, 7)
	}
	return image.ToGray(b.out)
}

func noScratch(int) int { return 0 }

var kernelOps = []*kernelOp{
	{
		name: "gaussian", usage: "3x3 Gaussian blur",
		minWidth: 2, minHeight: 1,
		scratch: filter.GaussianScratchSize,
		apply: func(in *image.Image[uint8], b *buffers, scratch []int16, cfg kernelConfig) {
			filter.Gaussian3x3Generic(in, b.out, scratch, cfg.border)
		},
	},
	{
		name: "gaussian-fast", usage: "3x3 Gaussian blur, replicate border, no scratch",
		minWidth: 2, minHeight: 1,
		scratch: noScratch,
		apply: func(in *image.Image[uint8], b *buffers, _ []int16, _ kernelConfig) {
			filter.Gaussian3x3(in, b.out)
		},
	},
	{
		name: "gaussian5", usage: "5x5 binomial blur",
		minWidth: 2, minHeight: 1,
		scratch: filter.Gaussian5x5ScratchSize,
		apply: func(in *image.Image[uint8], b *buffers, scratch []int16, cfg kernelConfig) {
			filter.Gaussian5x5(in, b.out, scratch, cfg.border)
		},
	},
	{
		name: "gaussian7", usage: "7x7 binomial blur",
		minWidth: 2, minHeight: 1,
		scratch: filter.Gaussian7x7ScratchSize,
		apply: func(in *image.Image[uint8], b *buffers, scratch []int16, cfg kernelConfig) {
			filter.Gaussian7x7(in, b.out, scratch, cfg.border)
		},
	},
	{
		name: "sobelx", usage: "horizontal derivative, |v| >> 7",
		minWidth: 2, minHeight: 1, gradient: true,
		scratch: filter.SobelScratchSize,
		apply: func(in *image.Image[uint8], b *buffers, scratch []int16, cfg kernelConfig) {
			filter.SobelX(in, b.grad, scratch, cfg.border)
		},
	},
	{
		name: "sobely", usage: "vertical derivative, |v| >> 7",
		minWidth: 2, minHeight: 1, gradient: true,
		scratch: filter.SobelScratchSize,
		apply: func(in *image.Image[uint8], b *buffers, scratch []int16, cfg kernelConfig) {
			filter.SobelY(in, b.grad, scratch, cfg.border)
		},
	},
	{
		name: "canny", usage: "Canny edges with --low/--high hysteresis",
		minWidth: 3, minHeight: 3,
		scratch: canny.ScratchSize,
		apply: func(in *image.Image[uint8], b *buffers, scratch []int16, cfg kernelConfig) {
			canny.CannySobel(in, b.out, scratch, cfg.low, cfg.high)
		},
	},
}

func lookupOp(name string) (*kernelOp, bool) {
	i := slices.IndexFunc(kernelOps, func(op *kernelOp) bool {
		return op.name == strings.ToLower(strings.TrimSpace(name))
	})
	if i < 0 {
		return nil, false
	}
	return kernelOps[i], true
}

func opNames() string {
	names := make([]string, len(kernelOps))
	for i, op := range kernelOps {
		names[i] = op.name
	}
	return strings.Join(names, "|")
}

// fits reports whether the kernel accepts an image of the given size.
func (op *kernelOp) fits(width, height int) bool {
	return width >= op.minWidth && height >= op.minHeight
}
