// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool in which every
// worker owns a kernel scratch buffer. The row-streaming image kernels are
// single-threaded and need O(width) scratch per call; a Pool lets many
// independent images (or benchmark repetitions) run at once without
// allocating scratch per call or sharing it between goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0), canny.ScratchSize(width))
//	defer pool.Close()
//
//	pool.ParallelForAtomic(len(images), func(scratch []int16, i int) {
//	    canny.CannySobel(images[i], edges[i], scratch, 40, 100)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers and their scratch buffers are created once.
type Pool struct {
	numWorkers int
	scratchLen int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func(scratch []int16)
	barrier *sync.WaitGroup
}

// New creates a pool of numWorkers workers, each holding scratchLen int16
// elements of scratch. If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers, scratchLen int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	scratchLen = max(scratchLen, 0)

	p := &Pool{
		numWorkers: numWorkers,
		scratchLen: scratchLen,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker(make([]int16, scratchLen))
	}

	return p
}

// worker is the main loop for each persistent worker goroutine. The
// scratch buffer never leaves it.
func (p *Pool) worker(scratch []int16) {
	for item := range p.workC {
		item.fn(scratch)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ScratchLen returns the length of each worker's scratch buffer.
func (p *Pool) ScratchLen() int {
	return p.scratchLen
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices with its own scratch.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(scratch []int16, start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(make([]int16, p.scratchLen), 0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			break
		}
		wg.Add(1)
		p.workC <- workItem{
			fn: func(scratch []int16) {
				fn(scratch, start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomic executes fn for each index in [0, n) using atomic work
// stealing. This balances load when work per item varies, e.g. images of
// different sizes. Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(scratch []int16, i int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		scratch := make([]int16, p.scratchLen)
		for i := range n {
			fn(scratch, i)
		}
		return
	}

	workers := min(p.numWorkers, n)

	var nextIdx atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func(scratch []int16) {
				for {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					fn(scratch, idx)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
