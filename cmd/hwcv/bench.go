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
	"log/slog"
	"slices"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/valyala/fastrand"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-highway-cv/hwy"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/workerpool"
)

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "time a kernel on a random image",
		Flags: append(kernelFlags(),
			&cli.IntFlag{Name: "width", Value: 640, Usage: "image width"},
			&cli.IntFlag{Name: "height", Value: 480, Usage: "image height"},
			&cli.IntFlag{Name: "iterations", Aliases: []string{"n"}, Value: 100, Usage: "timed runs"},
		),
		Action: runBench,
	}
}

// benchResult summarizes per-run timings in microseconds.
type benchResult struct {
	runs           int
	mean, stddev   float64
	median, lowest float64
}

func summarize(samples []float64) benchResult {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	mean, stddev := stat.MeanStdDev(sorted, nil)
	return benchResult{
		runs:   len(sorted),
		mean:   mean,
		stddev: stddev,
		median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		lowest: sorted[0],
	}
}

func randomImage(width, height int) *image.Image[uint8] {
	var rng fastrand.RNG
	img := image.NewImage[uint8](width, height)
	for y := range height {
		row := img.RowSlice(y)
		for x := range row {
			row[x] = uint8(rng.Uint32n(256))
		}
	}
	return img
}

func runBench(c *cli.Context) error {
	op, cfg, err := parseKernel(c)
	if err != nil {
		return err
	}
	width, height, iterations := c.Int("width"), c.Int("height"), c.Int("iterations")
	if !op.fits(width, height) {
		return cli.Exit(fmt.Sprintf("%s needs at least %dx%d, got %dx%d",
			op.name, op.minWidth, op.minHeight, width, height), 2)
	}
	if iterations < 1 {
		return cli.Exit("--iterations must be positive", 2)
	}

	in := randomImage(width, height)
	workers := workerLimit(c.Int("workers"), iterations)
	slog.Debug("bench", "op", op.name, "width", width, "height", height,
		"iterations", iterations, "workers", workers, "target", hwy.CurrentName())

	pool := workerpool.New(workers, op.scratch(width))
	defer pool.Close()

	samples := make([]float64, iterations)
	pool.ParallelFor(iterations, func(scratch []int16, start, end int) {
		b := newBuffers(width, height)
		op.apply(in, b, scratch, cfg) // warm up
		for i := start; i < end; i++ {
			t0 := time.Now()
			op.apply(in, b, scratch, cfg)
			samples[i] = float64(time.Since(t0).Nanoseconds()) / 1e3
		}
	})

	r := summarize(samples)
	mpix := float64(width*height) / 1e6
	fmt.Fprintf(c.App.Writer, "%s %dx%d border=%s target=%s workers=%d\n",
		op.name, width, height, cfg.border, hwy.CurrentName(), workers)
	fmt.Fprintf(c.App.Writer, "  runs    %d\n", r.runs)
	fmt.Fprintf(c.App.Writer, "  mean    %.1f µs ± %.1f\n", r.mean, r.stddev)
	fmt.Fprintf(c.App.Writer, "  median  %.1f µs\n", r.median)
	if r.lowest > 0 {
		fmt.Fprintf(c.App.Writer, "  best    %.1f µs (%.1f MPix/s)\n", r.lowest, mpix/(r.lowest/1e6))
	}
	return nil
}
