// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rangedrv

import (
	"fmt"
	"runtime"

	"github.com/sixprime/sizm/internal/sieve"
)

// clampCores mirrors the reference driver's "min(requested, detected CPU
// count, number of segments)" clamp. There is no fork-absent Go platform,
// so the degrade-to-synchronous path is the cores<=1 branch in Count, not
// a capability probe here.
func clampCores(requested int, segments uint64) int {
	n := requested
	if cpu := runtime.NumCPU(); cpu < n {
		n = cpu
	}
	if segments < uint64(n) {
		n = int(segments)
	}
	if n < 1 {
		n = 1
	}
	return n
}

type workerResult struct {
	sum uint64
	err error
}

// countParallel partitions [m.Ys, m.Ye] into contiguous blocks across a
// bounded pool of goroutines, each carrying its own cloned IZMContext so no
// worker shares mutable state with another (the goroutine analogue of the
// reference driver's independently-forked child processes). Any worker
// error causes the whole count to be reported as failed; every worker is
// drained before Count returns, mirroring "reap every child on every exit
// path". Only called once the caller has confirmed both zs and ze fit a
// uint64, which guarantees m.Ys and m.Ye (derived from zs/ze by floor
// division) fit one too.
func countParallel(ctx *sieve.IZMContext, m rangeMapping, zs, ze uint64, rounds int, cores int) (uint64, error) {
	ys, ye := m.Ys.Low64(), m.Ye.Low64()
	segments := ye - ys + 1
	n := clampCores(cores, segments)
	if n <= 1 {
		var total uint64
		for y := ys; y <= ye; y++ {
			total += emitSegment(ctx, y, rounds, zs, ze, func(uint64) {})
		}
		return total, nil
	}

	block := (segments + uint64(n) - 1) / uint64(n)
	if block == 0 {
		block = 1
	}

	results := make(chan workerResult, n)
	spawned := 0
	for y := ys; y <= ye; y += block {
		hi := y + block - 1
		if hi > ye || y+block > ye {
			hi = ye
		}
		lo := y
		spawned++
		go func(lo, hi uint64) {
			defer func() {
				if r := recover(); r != nil {
					results <- workerResult{0, fmt.Errorf("%w: worker panic: %v", ErrChildFailure, r)}
				}
			}()
			workerCtx := ctx.Clone()
			var sum uint64
			for y := lo; y <= hi; y++ {
				sum += emitSegment(workerCtx, y, rounds, zs, ze, func(uint64) {})
			}
			results <- workerResult{sum, nil}
		}(lo, hi)
		if hi == ye {
			break
		}
	}

	var total uint64
	var firstErr error
	for i := 0; i < spawned; i++ {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = r.err
			continue
		}
		if firstErr == nil {
			total += r.sum
		}
	}
	if firstErr != nil {
		return 0, firstErr
	}
	return total, nil
}
