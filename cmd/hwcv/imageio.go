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
	"fmt"
	stdimage "image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
)

// lumaMode selects how color pixels are reduced to one channel.
type lumaMode string

const (
	lumaRec601 lumaMode = "rec601" // image/color gray model
	lumaHCL    lumaMode = "hcl"    // perceptual lightness
)

func parseLuma(s string) (lumaMode, error) {
	switch m := lumaMode(strings.ToLower(strings.TrimSpace(s))); m {
	case lumaRec601, lumaHCL:
		return m, nil
	default:
		return "", fmt.Errorf("unknown luma mode %q (want rec601 or hcl)", s)
	}
}

// decodeFile reads any registered image format and returns its luma plane.
func decodeFile(path string, mode lumaMode) (*image.Image[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return toLuma(src, mode), nil
}

// toLuma converts src to a single 8-bit channel.
func toLuma(src stdimage.Image, mode lumaMode) *image.Image[uint8] {
	if g, ok := src.(*stdimage.Gray); ok {
		return image.FromGray(g)
	}
	b := src.Bounds()
	img := image.NewImage[uint8](b.Dx(), b.Dy())
	for y := range img.Height() {
		row := img.RowSlice(y)
		for x := range row {
			row[x] = luma(src.At(b.Min.X+x, b.Min.Y+y), mode)
		}
	}
	return img
}

func luma(c color.Color, mode lumaMode) uint8 {
	if mode == lumaHCL {
		cf, ok := colorful.MakeColor(c)
		if !ok {
			return 0 // fully transparent
		}
		_, _, l := cf.Hcl()
		return uint8(math.Round(min(max(l, 0), 1) * 255))
	}
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// outputPath names the result of op applied to in, inside dir.
func outputPath(dir, in, op, format string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, op, format))
}

// encodeFile writes img as PNG or TIFF.
func encodeFile(path string, img *stdimage.Gray, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch format {
	case "png":
		err = png.Encode(f, img)
	case "tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
