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
	"io"
	"strings"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-highway-cv/hwy"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/canny"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/filter"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "show the vector target, CPU and scratch sizes",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 640, Usage: "image width for the scratch table"},
		},
		Action: func(c *cli.Context) error {
			width := c.Int("width")
			if width < 1 {
				return cli.Exit("--width must be positive", 2)
			}
			writeInfo(c.App.Writer, width)
			return nil
		},
	}
}

func writeInfo(w io.Writer, width int) {
	fmt.Fprintf(w, "target     %s (%d-byte vectors, %d uint8 lanes)\n",
		hwy.CurrentName(), hwy.CurrentWidth(), hwy.MaxLanes[uint8]())
	if hwy.NoSimdEnv() {
		fmt.Fprintln(w, "           HWY_NO_SIMD is set")
	}
	fmt.Fprintf(w, "cpu        %s\n", cpuid.CPU.BrandName)
	fmt.Fprintf(w, "cores      %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(w, "features   %s\n", cpuFeatures())
	fmt.Fprintf(w, "cache      L1D %s, L2 %s\n", cacheSize(cpuid.CPU.Cache.L1D), cacheSize(cpuid.CPU.Cache.L2))
	fmt.Fprintf(w, "memory     %d MiB\n", memory.TotalMemory()/1024/1024)

	fmt.Fprintf(w, "\nscratch for width %d (int16 elements / bytes)\n", width)
	rows := []struct {
		name          string
		elems, nbytes int
	}{
		{"gaussian3x3", filter.GaussianScratchSize(width), filter.GaussianScratchBytes(width)},
		{"gaussian5x5", filter.Gaussian5x5ScratchSize(width), filter.Gaussian5x5ScratchBytes(width)},
		{"gaussian7x7", filter.Gaussian7x7ScratchSize(width), filter.Gaussian7x7ScratchBytes(width)},
		{"sobel", filter.SobelScratchSize(width), filter.SobelScratchBytes(width)},
		{"canny", canny.ScratchSize(width), canny.ScratchBytes(width)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-12s %8d %8d\n", r.name, r.elems, r.nbytes)
	}
}

func cpuFeatures() string {
	var f []string
	for _, feat := range []struct {
		name string
		ok   bool
	}{
		{"sse2", cpuid.CPU.SSE2()},
		{"avx2", cpuid.CPU.AVX2()},
		{"avx512f", cpuid.CPU.AVX512F()},
		{"avx512bw", cpuid.CPU.AVX512BW()},
	} {
		if feat.ok {
			f = append(f, feat.name)
		}
	}
	if len(f) == 0 {
		return "none detected"
	}
	return strings.Join(f, " ")
}

func cacheSize(bytes int) string {
	if bytes <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d KiB", bytes/1024)
}
