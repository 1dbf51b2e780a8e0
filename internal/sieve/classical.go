// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sieve implements the segmented iZ sieve engine (SiZm, SiZm_vy)
// and the classical textbook sieves that share its bitmap primitive:
// straightforward, not where the hard engineering lives.
package sieve

import (
	"fmt"
	"math"

	"github.com/sixprime/sizm/internal/bitset"
)

// checkBound enforces the shared precondition on the classical and iZ
// full-sieve entry points: 10 < n <= 1e12.
func checkBound(n uint64) error {
	const maxN = 1_000_000_000_000
	if n <= 10 || n > maxN {
		return fmt.Errorf("sieve: n=%d outside required range (10, 1e12]", n)
	}
	return nil
}

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

// SoE is the plain Sieve of Eratosthenes over a single bitmap of size n+1.
func SoE(n uint64) ([]uint64, error) {
	if err := checkBound(n); err != nil {
		return nil, err
	}
	b, err := bitset.Create(n+1, true)
	if err != nil {
		return nil, fmt.Errorf("sieve: SoE: %w", err)
	}
	b.Clear(0)
	b.Clear(1)

	limit := isqrt(n)
	for p := uint64(2); p <= limit; p++ {
		if !b.Get(p) {
			continue
		}
		b.ClearSteps(p, p*p, n)
	}

	primes := make([]uint64, 0, estimatePrimeCount(n))
	for x := uint64(2); x <= n; x++ {
		if b.Get(x) {
			primes = append(primes, x)
		}
	}
	return primes, nil
}

// estimatePrimeCount gives a rough capacity hint via the prime counting
// heuristic n/ln(n), avoiding repeated slice growth for large n.
func estimatePrimeCount(n uint64) int {
	if n < 2 {
		return 0
	}
	return int(float64(n)/math.Log(float64(n))*1.2) + 16
}

// segmentSize is the window width SSoE sweeps the remainder of the range
// in, chosen to stay comfortably within L1/L2 cache.
const segmentSize = uint64(1 << 16)

// SSoE is the segmented Sieve of Eratosthenes: base primes up to sqrt(n)
// are found with SoE, then composites are cleared window by window over
// the rest of the range, bounding peak memory to one segment.
func SSoE(n uint64) ([]uint64, error) {
	if err := checkBound(n); err != nil {
		return nil, err
	}
	limit := isqrt(n)
	basePrimes, err := SoE(max64(limit, 11))
	if err != nil {
		return nil, fmt.Errorf("sieve: SSoE: base primes: %w", err)
	}

	primes := make([]uint64, 0, estimatePrimeCount(n))
	for _, p := range basePrimes {
		if p <= limit {
			primes = append(primes, p)
		}
	}

	for lo := limit + 1; lo <= n; lo += segmentSize {
		hi := lo + segmentSize - 1
		if hi > n {
			hi = n
		}
		width := hi - lo + 1
		seg, err := bitset.Create(width, true)
		if err != nil {
			return nil, fmt.Errorf("sieve: SSoE: segment: %w", err)
		}
		for _, p := range basePrimes {
			if p > limit {
				break
			}
			start := ((lo + p - 1) / p) * p
			if start < lo {
				start = lo
			}
			if start < p*p {
				start = p * p
			}
			if start > hi {
				continue
			}
			seg.ClearSteps(p, start-lo, width-1)
		}
		for x := uint64(0); x < width; x++ {
			if seg.Get(x) {
				primes = append(primes, lo+x)
			}
		}
	}
	return primes, nil
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// SoEu is the odd-only Sieve of Eratosthenes: only odd candidates >= 3 are
// represented, index i corresponding to value 2i+3, halving memory use
// relative to SoE.
func SoEu(n uint64) ([]uint64, error) {
	if err := checkBound(n); err != nil {
		return nil, err
	}
	primes := make([]uint64, 0, estimatePrimeCount(n))
	primes = append(primes, 2)

	if n < 3 {
		return primes, nil
	}
	size := (n-3)/2 + 1
	b, err := bitset.Create(size, true)
	if err != nil {
		return nil, fmt.Errorf("sieve: SoEu: %w", err)
	}

	limit := isqrt(n)
	for i := uint64(0); ; i++ {
		p := 2*i + 3
		if p > limit {
			break
		}
		if !b.Get(i) {
			continue
		}
		// First composite of p among odd numbers is p*p (always odd);
		// a step of 2p in value space is a step of p in index space.
		startIdx := (p*p - 3) / 2
		b.ClearSteps(p, startIdx, size-1)
	}

	for i := uint64(0); i < size; i++ {
		if b.Get(i) {
			primes = append(primes, 2*i+3)
		}
	}
	return primes, nil
}

// SoS is the Sieve of Sundaram: numbers k in [1, (n-1)/2] with k = i +
// j + 2ij for some 1<=i<=j are composite under the transform 2k+1; the
// survivors, doubled and incremented, are the odd primes <= n.
func SoS(n uint64) ([]uint64, error) {
	if err := checkBound(n); err != nil {
		return nil, err
	}
	primes := make([]uint64, 0, estimatePrimeCount(n))
	primes = append(primes, 2)

	m := (n - 1) / 2
	if m < 1 {
		return primes, nil
	}
	b, err := bitset.Create(m+1, true)
	if err != nil {
		return nil, fmt.Errorf("sieve: SoS: %w", err)
	}
	b.Clear(0)

	for i := uint64(1); i+i <= m; i++ {
		for j := i; i+j+2*i*j <= m; j++ {
			b.Clear(i + j + 2*i*j)
		}
	}

	for k := uint64(1); k <= m; k++ {
		if b.Get(k) {
			primes = append(primes, 2*k+1)
		}
	}
	return primes, nil
}

// SoA is the Sieve of Atkin: candidates are flagged prime by parity-
// dependent quadratic form counts, then squares of true primes sieve out
// remaining composites.
func SoA(n uint64) ([]uint64, error) {
	if err := checkBound(n); err != nil {
		return nil, err
	}
	b, err := bitset.Create(n+1, false)
	if err != nil {
		return nil, fmt.Errorf("sieve: SoA: %w", err)
	}

	limit := isqrt(n)
	for x := uint64(1); x*x <= n; x++ {
		for y := uint64(1); y*y <= n; y++ {
			val := 4*x*x + y*y
			if val <= n && (val%12 == 1 || val%12 == 5) {
				b.Flip(val)
			}
			val = 3*x*x + y*y
			if val <= n && val%12 == 7 {
				b.Flip(val)
			}
			if x > y {
				val = 3*x*x - y*y
				if val <= n && val%12 == 11 {
					b.Flip(val)
				}
			}
		}
	}

	for p := uint64(5); p <= limit; p++ {
		if !b.Get(p) {
			continue
		}
		b.ClearSteps(p*p, p*p, n)
	}

	primes := make([]uint64, 0, estimatePrimeCount(n))
	if n >= 2 {
		primes = append(primes, 2)
	}
	if n >= 3 {
		primes = append(primes, 3)
	}
	for x := uint64(5); x <= n; x++ {
		if b.Get(x) {
			primes = append(primes, x)
		}
	}
	return primes, nil
}
