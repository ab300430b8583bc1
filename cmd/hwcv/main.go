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

// Command hwcv runs the fixed-point image kernels over image files,
// benchmarks them and reports the detected vector target.
//
// Flags fall back to HWCV_* environment variables, which may also be set
// in a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"

	"github.com/ajroetker/go-highway-cv/hwy/contrib/filter"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		slog.Warn("ignoring .env", "err", err)
	}
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("hwcv failed", "err", err)
		os.Exit(1)
	}
}

// loadDotEnv exports the variables of path that are not already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hwcv",
		Usage: "fixed-point image filters and edge detection",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log at debug level",
				EnvVars: []string{"HWCV_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			setupLogging(c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			filterCommand(),
			benchCommand(),
			infoCommand(),
		},
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// kernelFlags are shared by the filter and bench commands.
func kernelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "op",
			Value:   "gaussian",
			Usage:   "kernel: " + opNames(),
			EnvVars: []string{"HWCV_OP"},
		},
		&cli.StringFlag{
			Name:    "border",
			Value:   filter.Replicate.String(),
			Usage:   "border policy: replicate|wrap|reflect",
			EnvVars: []string{"HWCV_BORDER"},
		},
		&cli.UintFlag{
			Name:    "low",
			Value:   40,
			Usage:   "canny low threshold (0-255)",
			EnvVars: []string{"HWCV_LOW"},
		},
		&cli.UintFlag{
			Name:    "high",
			Value:   100,
			Usage:   "canny high threshold (0-255)",
			EnvVars: []string{"HWCV_HIGH"},
		},
		&cli.IntFlag{
			Name:    "workers",
			Usage:   "concurrent images (0: GOMAXPROCS, bounded by memory)",
			EnvVars: []string{"HWCV_WORKERS"},
		},
	}
}

// parseKernel resolves the kernel flags. Invalid values are usage errors.
func parseKernel(c *cli.Context) (*kernelOp, kernelConfig, error) {
	var cfg kernelConfig
	op, ok := lookupOp(c.String("op"))
	if !ok {
		return nil, cfg, cli.Exit(fmt.Sprintf("unknown --op %q (want %s)", c.String("op"), opNames()), 2)
	}
	border, err := filter.ParseBorderPolicy(c.String("border"))
	if err != nil {
		return nil, cfg, cli.Exit(err.Error(), 2)
	}
	low, high := c.Uint("low"), c.Uint("high")
	if low > 255 || high > 255 {
		return nil, cfg, cli.Exit(fmt.Sprintf("thresholds must be in 0-255, got --low %d --high %d", low, high), 2)
	}
	if low > high {
		return nil, cfg, cli.Exit(fmt.Sprintf("--low %d is above --high %d", low, high), 2)
	}
	cfg = kernelConfig{border: border, low: uint8(low), high: uint8(high)}
	return op, cfg, nil
}

// perImageBudget is the memory set aside for each image in flight.
const perImageBudget = 256 << 20

// workerLimit bounds concurrency by the request, the CPU count, the
// physical memory and the number of jobs.
func workerLimit(requested, jobs int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if total := memory.TotalMemory(); total > 0 {
		n = min(n, max(int(total/perImageBudget), 1))
	}
	return max(min(n, jobs), 1)
}
