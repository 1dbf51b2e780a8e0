// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package sieve

import (
	"github.com/sixprime/sizm/internal/bitset"
	"github.com/sixprime/sizm/internal/iz"
	"github.com/sixprime/sizm/internal/oracle"
)

// segmentState is the VX segment lifecycle: Init -> Marked -> optionally
// cleaned -> Collected -> Freed.
type segmentState int

const (
	stateInit segmentState = iota
	stateMarked
	stateCollected
	stateFreed
)

// VXSegment is one y-indexed wheel-width window of the iZ index space,
// owned by exactly one worker for its lifetime.
type VXSegment struct {
	VX           uint64
	Y            uint64
	YVX          uint64
	RootLimit    uint64
	IsLargeLimit bool
	MRRounds     int

	StartX uint64
	EndX   uint64

	X5 *bitset.Bitmap
	X7 *bitset.Bitmap

	PCount   uint64
	BitOps   uint64
	PTestOps uint64

	state segmentState
}

// NewSegment is the exported constructor used by callers outside this
// package (the range driver) that need to drive individual VX segments
// directly instead of going through SiZm/SiZmVY.
func NewSegment(ctx *IZMContext, y uint64, mrRounds int) *VXSegment {
	return newSegment(ctx, y, mrRounds)
}

// Mark is the exported form of mark.
func (seg *VXSegment) Mark(ctx *IZMContext) { seg.mark(ctx) }

// Clean is the exported form of clean.
func (seg *VXSegment) Clean() { seg.clean() }

// Collect is the exported form of collect.
func (seg *VXSegment) Collect(lo, hi uint64, emit func(uint64)) { seg.collect(lo, hi, emit) }

// Free is the exported form of free.
func (seg *VXSegment) Free() { seg.free() }

// newSegment clones the context's base into a fresh segment for y, with
// the given x-range (callers truncate StartX/EndX for the first/last
// segment of a range; full-sieve callers use the defaults below).
func newSegment(ctx *IZMContext, y uint64, mrRounds int) *VXSegment {
	yvx := y * ctx.VX
	upper := 6*(yvx+ctx.VX) + 1
	rootLimit := isqrt(upper)
	seg := &VXSegment{
		VX:           ctx.VX,
		Y:            y,
		YVX:          yvx,
		RootLimit:    rootLimit,
		IsLargeLimit: rootLimit > ctx.VX,
		MRRounds:     mrRounds,
		StartX:       0,
		EndX:         ctx.VX - 1,
		X5:           ctx.BaseX5.Clone(),
		X7:           ctx.BaseX7.Clone(),
		state:        stateInit,
	}
	if y > 0 {
		// The base clears x=0 (the values ±1); for y>0 local x=0 is
		// 6*y*vx±1, coprime to vx and still a candidate.
		seg.X5.Set(0)
		seg.X7.Set(0)
	}
	return seg
}

// mark clears composites of every root prime not already baked into the
// base template (i.e. not a divisor of VX) whose square could still land
// within this segment's bound. Init -> Marked.
func (seg *VXSegment) mark(ctx *IZMContext) {
	if seg.state != stateInit {
		panic("sieve: mark called out of order")
	}
	for _, p := range ctx.RootPrimes {
		if p <= 3 {
			continue // 2 and 3 never appear as iZ line factors
		}
		if p > seg.RootLimit {
			break // RootPrimes is ascending
		}
		if ctx.isWheelPrime(p) {
			continue // already cleared for every y by the base template
		}
		x0Minus := iz.SolveX0(iz.LineMinus, p, seg.VX, seg.Y)
		if seg.Y == 0 && iz.ILine(int64(p)) == iz.LineMinus {
			x0Minus += p // at y=0 the first hit on p's own line is p itself
		}
		seg.X5.ClearSteps(p, x0Minus, seg.X5.Size()-1)
		x0Plus := iz.SolveX0(iz.LinePlus, p, seg.VX, seg.Y)
		if seg.Y == 0 && iz.ILine(int64(p)) == iz.LinePlus {
			x0Plus += p
		}
		seg.X7.ClearSteps(p, x0Plus, seg.X7.Size()-1)
		seg.BitOps += 2
	}
	seg.state = stateMarked
}

// clean runs Miller-Rabin cleanup over [StartX, EndX] when IsLargeLimit is
// true: deterministic marking by root primes up to VX cannot be trusted
// to have caught every composite, so surviving candidates are probed.
func (seg *VXSegment) clean() {
	if seg.state != stateMarked {
		panic("sieve: clean called out of order")
	}
	if seg.IsLargeLimit {
		rounds := oracle.ClampRounds(seg.MRRounds)
		for x := seg.StartX; x <= seg.EndX; x++ {
			if seg.X5.Get(x) {
				n := uint64(iz.IZ(int64(seg.YVX+x), iz.LineMinus))
				seg.PTestOps++
				if !oracle.NewFromUint64(n).ProbablyPrime(rounds) {
					seg.X5.Clear(x)
				}
			}
			if seg.X7.Get(x) {
				n := uint64(iz.IZ(int64(seg.YVX+x), iz.LinePlus))
				seg.PTestOps++
				if !oracle.NewFromUint64(n).ProbablyPrime(rounds) {
					seg.X7.Clear(x)
				}
			}
		}
	}
}

// collect emits iZ(y*vx+x, m) for every surviving candidate in
// [StartX, EndX], x5 line before x7 at the same x, filtering to values in
// [lo, hi] (inclusive). Marked -> Collected.
func (seg *VXSegment) collect(lo, hi uint64, emit func(uint64)) {
	if seg.state != stateMarked {
		panic("sieve: collect called out of order")
	}
	for x := seg.StartX; x <= seg.EndX; x++ {
		if seg.X5.Get(x) {
			n := uint64(iz.IZ(int64(seg.YVX+x), iz.LineMinus))
			if n >= lo && n <= hi {
				emit(n)
				seg.PCount++
			}
		}
		if seg.X7.Get(x) {
			n := uint64(iz.IZ(int64(seg.YVX+x), iz.LinePlus))
			if n >= lo && n <= hi {
				emit(n)
				seg.PCount++
			}
		}
	}
	seg.state = stateCollected
}

// free releases the segment's bitmaps. Collected -> Freed.
func (seg *VXSegment) free() {
	seg.X5 = nil
	seg.X7 = nil
	seg.state = stateFreed
}
