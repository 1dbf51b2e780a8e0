// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package iz

// isPrimeTrial is a plain trial-division primality test, used only to
// bootstrap the small-prime sequence (5, 7, 11, 13, ...) that wheel
// construction needs before any sieve exists to consult.
func isPrimeTrial(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for d := uint64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// nextPrimeAfter returns the smallest prime strictly greater than p.
func nextPrimeAfter(p uint64) uint64 {
	candidate := p + 1
	if candidate <= 2 {
		return 2
	}
	if candidate%2 == 0 {
		candidate++
	}
	for !isPrimeTrial(candidate) {
		candidate += 2
	}
	return candidate
}

// firstPrimesFrom5 returns the first k primes starting at 5 (5, 7, 11, ...).
func firstPrimesFrom5(k int) []uint64 {
	primes := make([]uint64, 0, k)
	candidate := uint64(5)
	for len(primes) < k {
		if isPrimeTrial(candidate) {
			primes = append(primes, candidate)
		}
		candidate += 2
	}
	return primes
}

// primeFactors returns the distinct prime factors of n via trial division,
// skipping 2 and 3 since VX is constructed to never carry them.
func primeFactors(n uint64) []uint64 {
	var factors []uint64
	remaining := n
	for d := uint64(5); d*d <= remaining; d += 2 {
		if remaining%d == 0 {
			factors = append(factors, d)
			for remaining%d == 0 {
				remaining /= d
			}
		}
	}
	if remaining > 1 {
		factors = append(factors, remaining)
	}
	return factors
}
