// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package sieve

import (
	"fmt"

	"github.com/sixprime/sizm/internal/bitset"
	"github.com/sixprime/sizm/internal/intvec"
	"github.com/sixprime/sizm/internal/iz"
	"github.com/sixprime/sizm/internal/oracle"
)

// smallInputThreshold is the point below which the engine delegates to the
// full (non-segmented) iZ sieve rather than standing up a VX wheel.
const smallInputThreshold = 10_000

func (ctx *IZMContext) baseLine(m iz.Line) *bitset.Bitmap {
	if m == iz.LineMinus {
		return ctx.BaseX5
	}
	return ctx.BaseX7
}

// mergeAscending merges two already-ascending slices into one ascending
// slice.
func mergeAscending(a, b []uint64) []uint64 {
	out := make([]uint64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// SiZm is the horizontal segmented sieve: it processes y-indexed VX
// segments in ascending order and returns primes <= n in ascending order.
func SiZm(n uint64) ([]uint64, error) {
	if err := checkBound(n); err != nil {
		return nil, err
	}
	if n < smallInputThreshold {
		return iz.RootPrimes(n)
	}

	vx := iz.ComputeL2VX(n)
	ctx, err := NewIZMContext(vx)
	if err != nil {
		return nil, fmt.Errorf("sieve: SiZm: %w", err)
	}

	xN := n/6 + 1
	yMax := xN / vx

	primes := intvec.New[uint64](estimatePrimeCount(n))
	// Every surviving candidate comes from one of the two lines at some x
	// < xN, so 2*xN+2 is a hard ceiling on the final count; reserving it
	// up front means the Push loop below never triggers a doubling
	// reallocation, however far off the density-based estimate above was.
	primes.ResizeTo(int(2*xN) + 2)
	primes.Push(2)
	primes.Push(3)

	for y := uint64(0); y <= yMax; y++ {
		seg := newSegment(ctx, y, oracle.DefaultRounds)
		if y == 0 {
			seg.StartX = 1
		}
		if y == yMax {
			localEnd := xN - y*vx
			if localEnd > 0 {
				seg.EndX = localEnd - 1
			}
			if seg.EndX > ctx.VX-1 {
				seg.EndX = ctx.VX - 1
			}
		}

		seg.mark(ctx)
		seg.clean()

		if y == 0 {
			// The base template cleared the wheel primes' own bits (they
			// divide vx); re-insert them at the right ascending position.
			bitscan := intvec.New[uint64](len(ctx.WheelPrimes))
			seg.collect(0, n, func(p uint64) { bitscan.Push(p) })
			for _, p := range mergeAscending(bitscan.Slice(), ctx.WheelPrimes) {
				primes.Push(p)
			}
		} else {
			seg.collect(0, n, func(p uint64) { primes.Push(p) })
		}
		seg.free()
	}
	primes.Sort()

	return primes.Slice(), nil
}

// SiZmVY is the vertical segmented sieve: it processes one x-column at a
// time across all y, using solve_y0 to mark composites. Output order is
// not guaranteed; the wheel primes and 2, 3 are appended first.
func SiZmVY(n uint64) ([]uint64, error) {
	if err := checkBound(n); err != nil {
		return nil, err
	}
	if n < smallInputThreshold {
		return iz.RootPrimes(n)
	}

	vx := iz.ComputeL2VX(n)
	ctx, err := NewIZMContext(vx)
	if err != nil {
		return nil, fmt.Errorf("sieve: SiZmVY: %w", err)
	}

	xN := n/6 + 1
	vy := xN/vx + 1

	primes := intvec.New[uint64](estimatePrimeCount(n))
	primes.Push(2)
	primes.Push(3)
	for _, p := range ctx.WheelPrimes {
		primes.Push(p)
	}

	rootLimit := isqrt(6*((vy-1)*vx+vx) + 1)
	largeLimit := rootLimit > vx
	rounds := oracle.ClampRounds(oracle.DefaultRounds)

	for x := uint64(0); x < vx; x++ {
		for _, m := range [...]iz.Line{iz.LineMinus, iz.LinePlus} {
			if x > 0 && !ctx.baseLine(m).Get(x) {
				continue // not coprime to vx on this line
			}
			col, err := bitset.Create(vy, true)
			if err != nil {
				return nil, fmt.Errorf("sieve: SiZmVY: column: %w", err)
			}
			if x == 0 {
				col.Clear(0) // row 0 of column 0 holds ±1
			}

			for _, p := range ctx.RootPrimes {
				if p <= 3 || ctx.isWheelPrime(p) {
					continue
				}
				y0, ok := iz.SolveY0(m, p, vx, x)
				if !ok {
					continue
				}
				if y0 == 0 && uint64(iz.IZ(int64(x), m)) == p {
					y0 = p // row 0 of this column is p itself
				}
				col.ClearSteps(p, y0, vy-1)
			}

			for y := uint64(0); y < vy; y++ {
				if !col.Get(y) {
					continue
				}
				val := uint64(iz.IZ(int64(y*vx+x), m))
				if val > n {
					continue
				}
				if largeLimit && !oracle.NewFromUint64(val).ProbablyPrime(rounds) {
					continue
				}
				primes.Push(val)
			}
		}
	}

	return primes.Slice(), nil
}
