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

// BigVXSegment is a VX segment whose row index y does not fit in a
// uint64 — reached only when the range driver's start coordinate is an
// arbitrarily large decimal (spec.md's "Zs may be an arbitrarily large
// integer"). Root-prime marking still runs against the context's
// precomputed small-prime list via SolveX0Big, but since none of those
// primes' squares can possibly reach a bound this large, every survivor
// is always confirmed by Miller-Rabin rather than trusted outright.
type BigVXSegment struct {
	VX       uint64
	Y        *oracle.Int
	YVX      *oracle.Int
	MRRounds int

	StartX uint64
	EndX   uint64

	X5 *bitset.Bitmap
	X7 *bitset.Bitmap

	PCount uint64

	state segmentState
}

// NewBigSegment builds a segment for an arbitrary-precision row index y.
func NewBigSegment(ctx *IZMContext, y *oracle.Int, mrRounds int) *BigVXSegment {
	seg := &BigVXSegment{
		VX:       ctx.VX,
		Y:        y.Clone(),
		YVX:      y.MulSmall(int64(ctx.VX)),
		MRRounds: mrRounds,
		StartX:   0,
		EndX:     ctx.VX - 1,
		X5:       ctx.BaseX5.Clone(),
		X7:       ctx.BaseX7.Clone(),
		state:    stateInit,
	}
	if y.Sign() != 0 {
		// Local x=0 is ±1 only at y=0; elsewhere it is a candidate.
		seg.X5.Set(0)
		seg.X7.Set(0)
	}
	return seg
}

// Mark clears composites of every root prime not already baked into the
// base template, using the arbitrary-precision solver since Y may exceed
// a uint64. Init -> Marked.
func (seg *BigVXSegment) Mark(ctx *IZMContext) {
	if seg.state != stateInit {
		panic("sieve: big segment mark called out of order")
	}
	for _, p := range ctx.RootPrimes {
		if p <= 3 {
			continue
		}
		if ctx.isWheelPrime(p) {
			continue
		}
		x0Minus := iz.SolveX0Big(iz.LineMinus, p, seg.VX, seg.Y)
		if seg.Y.Sign() == 0 && iz.ILine(int64(p)) == iz.LineMinus {
			x0Minus += p // at y=0 the first hit on p's own line is p itself
		}
		seg.X5.ClearSteps(p, x0Minus, seg.X5.Size()-1)
		x0Plus := iz.SolveX0Big(iz.LinePlus, p, seg.VX, seg.Y)
		if seg.Y.Sign() == 0 && iz.ILine(int64(p)) == iz.LinePlus {
			x0Plus += p
		}
		seg.X7.ClearSteps(p, x0Plus, seg.X7.Size()-1)
	}
	seg.state = stateMarked
}

// value returns the arbitrary-precision iZ value at local offset x on
// line m: 6*(YVX+x) ± 1.
func (seg *BigVXSegment) value(x uint64, m iz.Line) *oracle.Int {
	idx := seg.YVX.AddSmall(int64(x))
	v := idx.MulSmall(6)
	if m == iz.LineMinus {
		return v.SubSmall(1)
	}
	return v.AddSmall(1)
}

// Clean Miller-Rabin-tests every surviving candidate in [StartX, EndX]:
// for a row this large, deterministic root-prime marking alone can never
// be trusted. Marked -> (still Marked; Collect performs the transition).
func (seg *BigVXSegment) Clean() {
	if seg.state != stateMarked {
		panic("sieve: big segment clean called out of order")
	}
	rounds := oracle.ClampRounds(seg.MRRounds)
	for x := seg.StartX; x <= seg.EndX; x++ {
		if seg.X5.Get(x) && !seg.value(x, iz.LineMinus).ProbablyPrime(rounds) {
			seg.X5.Clear(x)
		}
		if seg.X7.Get(x) && !seg.value(x, iz.LinePlus).ProbablyPrime(rounds) {
			seg.X7.Clear(x)
		}
	}
}

// Collect emits the arbitrary-precision iZ value of every surviving
// candidate in [StartX, EndX] whose value falls in [lo, hi] (inclusive).
// Marked -> Collected.
func (seg *BigVXSegment) Collect(lo, hi *oracle.Int, emit func(*oracle.Int)) {
	if seg.state != stateMarked {
		panic("sieve: big segment collect called out of order")
	}
	for x := seg.StartX; x <= seg.EndX; x++ {
		if seg.X5.Get(x) {
			n := seg.value(x, iz.LineMinus)
			if n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0 {
				emit(n)
				seg.PCount++
			}
		}
		if seg.X7.Get(x) {
			n := seg.value(x, iz.LinePlus)
			if n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0 {
				emit(n)
				seg.PCount++
			}
		}
	}
	seg.state = stateCollected
}

// Free releases the segment's bitmaps. Collected -> Freed.
func (seg *BigVXSegment) Free() {
	seg.X5 = nil
	seg.X7 = nil
	seg.state = stateFreed
}
