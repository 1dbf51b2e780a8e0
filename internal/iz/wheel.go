// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package iz

import (
	"github.com/sixprime/sizm/internal/bitset"
)

// basePadding extends the base bitmaps a little past vx. Every solve_x0
// start is below p < vx, so marking never needs the extra bits; they are
// carried into each cloned segment and cleared by the same steps.
const basePadding = 2

// ComputeVXK returns the product of the first k primes starting at 5 (the
// wheel width built from exactly k small primes beyond 2 and 3).
func ComputeVXK(k int) uint64 {
	if k <= 0 {
		return 1
	}
	product := uint64(1)
	for _, p := range firstPrimesFrom5(k) {
		product *= p
	}
	return product
}

// l2CacheBits approximates the per-line bit budget of a typical L2 cache
// (256 KiB) for compute_l2_vx's segment-sizing heuristic: a segment's two
// line bitmaps are each vx bits wide, so capping vx itself to this budget
// keeps a segment's working set inside L2.
const l2CacheBits = 256 * 1024 * 8

// ComputeL2VX returns the largest primorial-style VX (product of 5, 7, 11,
// ... in order) whose value is <= min(l2CacheBits, n/6). It always starts
// from 35 = 5*7 and never returns less than 35.
func ComputeL2VX(n uint64) uint64 {
	bound := n / 6
	if l2CacheBits < bound {
		bound = l2CacheBits
	}
	return growPrimorial(bound)
}

// ComputeMaxVX returns the largest primorial-style VX with
// bit_length(vx) < bitSize.
func ComputeMaxVX(bitSize int) uint64 {
	if bitSize <= 0 {
		return 35
	}
	var bound uint64
	if bitSize > 64 {
		bound = ^uint64(0)
	} else {
		bound = (uint64(1) << uint(bitSize-1)) - 1
	}
	return growPrimorial(bound)
}

// growPrimorial builds VX = 5*7*11*..., stopping before the next factor
// would push vx past bound (a value bound, not a bit-length). Never
// returns below 35.
func growPrimorial(bound uint64) uint64 {
	vx := uint64(35)
	nextP := uint64(11)
	for {
		next := vx * nextP
		if next/nextP != vx { // overflow past uint64
			break
		}
		if next > bound {
			break
		}
		vx = next
		nextP = nextPrimeAfter(nextP)
	}
	if vx < 35 {
		vx = 35
	}
	return vx
}

// BuildVXBase returns the pair of bitmaps obtained by pre-sieving exactly
// the small primes dividing vx, plus the ascending list of those primes
// (WheelPrimes; k_vx is its length). Bit 0 of both bitmaps (the values ±1)
// is cleared; reading any other x in [1, vx) from either bitmap is
// equivalent to testing coprimality of iZ(x, ±1) with 2*3*vx — which means
// a wheel prime's own position is cleared too, since it is not coprime to
// vx. Segment y=0 must re-emit these primes explicitly; sieve.SiZm and the
// range driver's y=0 segment do so.
func BuildVXBase(vx uint64) (x5, x7 *bitset.Bitmap, wheelPrimes []uint64, err error) {
	length := vx + basePadding
	x5, err = bitset.Create(length, true)
	if err != nil {
		return nil, nil, nil, err
	}
	x7, err = bitset.Create(length, true)
	if err != nil {
		return nil, nil, nil, err
	}
	x5.Clear(0)
	x7.Clear(0)

	wheelPrimes = primeFactors(vx)
	for _, p := range wheelPrimes {
		xp, ip := primeCoord(p)
		if ip == LineMinus {
			x5.Clear(xp)
		} else {
			x7.Clear(xp)
		}

		x0Minus := SolveX0(LineMinus, p, vx, 0)
		x5.ClearSteps(p, x0Minus, length-1)
		x0Plus := SolveX0(LinePlus, p, vx, 0)
		x7.ClearSteps(p, x0Plus, length-1)
	}
	return x5, x7, wheelPrimes, nil
}
