// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package iz

import (
	"fmt"
	"math"

	"github.com/sixprime/sizm/internal/bitset"
)

// RootPrimes produces all primes <= limit using the full (non-segmented)
// iZ sieve: two bitmaps indexed by x, marked via the same marking identity
// the segmented engine uses at segment y=0. It is the bootstrap the
// segmented engine and range driver call to get root primes up to vx.
func RootPrimes(limit uint64) ([]uint64, error) {
	if limit < 2 {
		return nil, nil
	}
	primes := make([]uint64, 0, 64)
	if limit >= 2 {
		primes = append(primes, 2)
	}
	if limit >= 3 {
		primes = append(primes, 3)
	}
	if limit < 5 {
		return primes, nil
	}

	size := limit/6 + 1
	x5, err := bitset.Create(size, true)
	if err != nil {
		return nil, fmt.Errorf("iz: root primes: %w", err)
	}
	x7, err := bitset.Create(size, true)
	if err != nil {
		return nil, fmt.Errorf("iz: root primes: %w", err)
	}

	sqrtLimit := isqrt(limit)

	markIfRoot := func(n uint64) {
		if n > sqrtLimit {
			return
		}
		x0Minus := SolveX0(LineMinus, n, 0, 0)
		x5.ClearSteps(n, x0Minus, size-1)
		x0Plus := SolveX0(LinePlus, n, 0, 0)
		x7.ClearSteps(n, x0Plus, size-1)
	}

	for x := uint64(1); x < size; x++ {
		if x5.Get(x) {
			n := uint64(IZ(int64(x), LineMinus))
			if n <= limit {
				primes = append(primes, n)
			}
			markIfRoot(n)
		}
		if x7.Get(x) {
			n := uint64(IZ(int64(x), LinePlus))
			if n <= limit {
				primes = append(primes, n)
			}
			markIfRoot(n)
		}
	}

	return primes, nil
}

// isqrt returns floor(sqrt(n)), corrected for float64 rounding error.
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
