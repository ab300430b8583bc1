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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/image"
	"github.com/ajroetker/go-highway-cv/hwy/contrib/workerpool"
)

func filterCommand() *cli.Command {
	return &cli.Command{
		Name:      "filter",
		Usage:     "run a kernel over image files",
		ArgsUsage: "FILES...",
		Flags: append(kernelFlags(),
			&cli.StringFlag{
				Name:    "out",
				Value:   ".",
				Usage:   "output directory",
				EnvVars: []string{"HWCV_OUT"},
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   "png",
				Usage:   "output format: png|tiff",
				EnvVars: []string{"HWCV_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "luma",
				Value:   string(lumaRec601),
				Usage:   "color to gray conversion: rec601|hcl",
				EnvVars: []string{"HWCV_LUMA"},
			},
		),
		Action: runFilter,
	}
}

// job is one input file moving through decode, kernel and encode.
type job struct {
	in  string
	out string
	img *image.Image[uint8]
	buf *buffers
}

func runFilter(c *cli.Context) error {
	op, cfg, err := parseKernel(c)
	if err != nil {
		return err
	}
	mode, err := parseLuma(c.String("luma"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	format := c.String("format")
	if format != "png" && format != "tiff" {
		return cli.Exit(fmt.Sprintf("unsupported --format %q (want png or tiff)", format), 2)
	}
	files := c.Args().Slice()
	if len(files) == 0 {
		return cli.Exit("filter: no input files", 2)
	}
	outDir := c.String("out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	workers := workerLimit(c.Int("workers"), len(files))
	slog.Debug("filter", "op", op.name, "border", cfg.border, "files", len(files), "workers", workers)
	start := time.Now()

	jobs := make([]*job, len(files))
	for i, f := range files {
		jobs[i] = &job{in: f, out: outputPath(outDir, f, op.name, format)}
	}

	// Decode concurrently; a failed file is reported and skipped.
	decode := pool.New().WithErrors().WithMaxGoroutines(workers)
	for _, j := range jobs {
		decode.Go(func() error {
			img, err := decodeFile(j.in, mode)
			if err != nil {
				return err
			}
			if !op.fits(img.Width(), img.Height()) {
				return fmt.Errorf("%s: %dx%d is below the %dx%d minimum of %s",
					j.in, img.Width(), img.Height(), op.minWidth, op.minHeight, op.name)
			}
			j.img = img
			return nil
		})
	}
	decodeErr := decode.Wait()

	ready := jobs[:0:0]
	maxWidth := 0
	for _, j := range jobs {
		if j.img != nil {
			ready = append(ready, j)
			maxWidth = max(maxWidth, j.img.Width())
		}
	}

	// Each kernel call gets a worker's scratch, sized for the widest image.
	kernels := workerpool.New(workers, op.scratch(maxWidth))
	kernels.ParallelForAtomic(len(ready), func(scratch []int16, i int) {
		j := ready[i]
		j.buf = newBuffers(j.img.Width(), j.img.Height())
		op.apply(j.img, j.buf, scratch[:op.scratch(j.img.Width())], cfg)
	})
	kernels.Close()

	encode := pool.New().WithErrors().WithMaxGoroutines(workers)
	for _, j := range ready {
		encode.Go(func() error {
			if err := encodeFile(j.out, op.display(j.buf), format); err != nil {
				return err
			}
			slog.Debug("wrote", "in", j.in, "out", j.out)
			return nil
		})
	}
	encodeErr := encode.Wait()

	slog.Info("filter done", "op", op.name, "decoded", len(ready), "files", len(files), "elapsed", time.Since(start))
	return errors.Join(decodeErr, encodeErr)
}
