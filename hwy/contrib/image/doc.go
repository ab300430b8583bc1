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

// Package image provides the image views shared by the fixed-point kernels
// in hwy/contrib.
//
// The core type is Image[T] for single-channel images. Two element types
// occur in practice: uint8 samples (input images, blurred output, edge maps)
// and int16 fixed-point samples (Q2.13 gradients).
//
// # Ownership
//
// Images borrow their buffers. Kernels read their input and write their
// output for the duration of one call and never reallocate either.
//
// # Edge Handling
//
// Coordinate helper functions for handling out-of-bounds pixel access:
//
//	Clamp(index, size)   - repeat edge pixels
//	Wrap(index, size)    - tile/wrap around
//	Reflect(index, size) - mirror without repeating the edge
//
// # Standard Library Interop
//
// FromGray and ToGray copy between Image[uint8] and *image.Gray;
// GradientToGray maps a Q2.13 gradient image to 8-bit magnitudes for display.
package image
