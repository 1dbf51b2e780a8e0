// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package iz

import (
	"math/big"

	"github.com/sixprime/sizm/internal/oracle"
)

var (
	big5 = big.NewInt(5)
	big6 = big.NewInt(6)
	big2 = big.NewInt(2)
	big4 = big.NewInt(4)
)

// firstCandidateOnOrAfter returns the smallest iZ candidate (a number
// coprime to 6, i.e. congruent to 1 or 5 mod 6) that is >= base, except
// that candidates below 5 are rounded up to 5 (2 and 3 are handled by the
// caller as special cases, since they aren't on the 6x+-1 lattice).
func firstCandidateOnOrAfter(base *big.Int) *big.Int {
	if base.Cmp(big5) < 0 {
		return new(big.Int).Set(big5)
	}
	mod := new(big.Int).Mod(base, big6)
	switch mod.Int64() {
	case 0, 4:
		return new(big.Int).Add(base, big.NewInt(1))
	case 1, 5:
		return new(big.Int).Set(base)
	default: // 2, 3
		return new(big.Int).Add(base, new(big.Int).Sub(big5, mod))
	}
}

// lastCandidateOnOrBefore is the mirror of firstCandidateOnOrAfter for the
// backward search.
func lastCandidateOnOrBefore(base *big.Int) *big.Int {
	if base.Cmp(big2) <= 0 {
		return new(big.Int).Set(big2)
	}
	mod := new(big.Int).Mod(base, big6)
	switch mod.Int64() {
	case 1, 5:
		return new(big.Int).Set(base)
	case 0:
		return new(big.Int).Sub(base, big.NewInt(1))
	default: // 2, 3, 4
		return new(big.Int).Sub(base, new(big.Int).Sub(mod, big.NewInt(1)))
	}
}

// nextCandidate advances a coprime-to-6 candidate to the next one on the
// lattice, alternating +2/+4 (5,7,11,13,17,19,...).
func nextCandidate(n *big.Int) *big.Int {
	mod := new(big.Int).Mod(n, big6)
	if mod.Int64() == 5 {
		return new(big.Int).Add(n, big2)
	}
	return new(big.Int).Add(n, big4)
}

// prevCandidate is the mirror of nextCandidate.
func prevCandidate(n *big.Int) *big.Int {
	mod := new(big.Int).Mod(n, big6)
	if mod.Int64() == 1 {
		return new(big.Int).Sub(n, big2)
	}
	return new(big.Int).Sub(n, big4)
}

// NextPrime implements iZ_next_prime: starting from base, walks the iZ
// lattice (skipping everything not coprime to 6, since no prime above 3
// can be) in the requested direction and returns the first probable prime
// found, using rounds Miller-Rabin rounds.
func NextPrime(rounds int, base *big.Int, forward bool) *big.Int {
	rounds = oracle.ClampRounds(rounds)

	if forward {
		if base.Cmp(big2) < 0 {
			return new(big.Int).Set(big2)
		}
		if base.Cmp(big2) == 0 {
			return new(big.Int).Set(big.NewInt(3))
		}
		if base.Cmp(big.NewInt(3)) <= 0 {
			return new(big.Int).Set(big5)
		}
		cand := firstCandidateOnOrAfter(new(big.Int).Add(base, big.NewInt(1)))
		for {
			if oracle.NewFromBigInt(cand).ProbablyPrime(rounds) {
				return cand
			}
			cand = nextCandidate(cand)
		}
	}

	if base.Cmp(big.NewInt(3)) <= 0 {
		if base.Cmp(big.NewInt(3)) == 0 {
			return new(big.Int).Set(big2)
		}
		return nil // no prime strictly below 2
	}
	if base.Cmp(big5) <= 0 {
		return new(big.Int).Set(big.NewInt(3))
	}
	cand := lastCandidateOnOrBefore(new(big.Int).Sub(base, big.NewInt(1)))
	for cand.Cmp(big5) >= 0 {
		if oracle.NewFromBigInt(cand).ProbablyPrime(rounds) {
			return cand
		}
		cand = prevCandidate(cand)
	}
	return new(big.Int).Set(big.NewInt(3))
}
