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

// Package contrib groups the image kernels built on the hwy lane core.
//
// # Subpackages
//
//   - image: the Image[T] container, border index helpers and conversion
//     to and from the standard library image types
//   - fixed: Q15 / Q2.13 / Q31 helpers, integer square root and a CORDIC
//     arctangent
//   - filter: separable 3-, 5- and 7-tap Gaussian and Sobel filters with
//     Replicate, Wrap and Reflect borders
//   - canny: the fused Sobel gradient and Canny edge detector
//   - workerpool: a persistent pool whose workers own kernel scratch
//
// # Example
//
//	import (
//	    "github.com/ajroetker/go-highway-cv/hwy/contrib/filter"
//	    "github.com/ajroetker/go-highway-cv/hwy/contrib/image"
//	)
//
//	in := image.FromGray(gray)
//	out := image.NewImage[uint8](in.Width(), in.Height())
//	scratch := make([]int16, filter.GaussianScratchSize(in.Width()))
//	filter.Gaussian5x5(in, out, scratch, filter.Reflect)
//
// Every kernel streams over its input one row at a time with scratch
// memory proportional to the image width, supplied by the caller. The
// kernels never allocate per pixel and never use floating point.
package contrib
