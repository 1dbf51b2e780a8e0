// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package iz

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/sixprime/sizm/internal/oracle"
	"github.com/sixprime/sizm/lib/rand"
)

// randomOddCandidate returns a uniformly random iZ-lattice candidate with
// exactly bits bits (top bit set), nudged up to the nearest value coprime
// to 6.
func randomOddCandidate(bits int) *big.Int {
	if bits < 3 {
		bits = 3
	}
	top := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	span := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	n := new(big.Int).Add(top, rand.BigInt(span))
	return firstCandidateOnOrAfter(n)
}

// searchRandomPrime is the shared worker loop behind vx_random_prime and
// vy_random_prime: each attempt draws a fresh random candidate, moves it to
// the next value coprime to 6 and tests it once; workers repeat until one
// finds a probable prime. The "vx"
// and "vy" names describe the reference system's horizontal/vertical
// traversal; since a random-prime search has no segment structure to
// traverse, both variants reduce to the same probabilistic hunt and differ
// only in which seed they start from each attempt (kept as two entry
// points to preserve the public API surface).
func searchRandomPrime(rounds, bitSize, cores int, seedOffset int64) (*big.Int, error) {
	if bitSize < 2 {
		return nil, fmt.Errorf("iz: random prime: bit_size must be >= 2")
	}
	rounds = oracle.ClampRounds(rounds)
	if cores < 1 {
		cores = 1
	}

	type result struct {
		n   *big.Int
		err error
	}

	found := make(chan result, cores)
	done := make(chan struct{})
	var once sync.Once

	for w := 0; w < cores; w++ {
		go func() {
			for {
				select {
				case <-done:
					return
				default:
				}
				cand := randomOddCandidate(bitSize)
				cand.Add(cand, big.NewInt(seedOffset))
				cand = firstCandidateOnOrAfter(cand)
				if oracle.NewFromBigInt(cand).ProbablyPrime(rounds) {
					once.Do(func() { close(done) })
					found <- result{n: cand}
					return
				}
			}
		}()
	}

	r := <-found
	return r.n, r.err
}

// RandomPrime implements vx_random_prime: a probabilistic search for a
// probable prime of the given bit size, fanned out across cores workers.
func RandomPrime(rounds, bitSize, cores int) (*big.Int, error) {
	return searchRandomPrime(rounds, bitSize, cores, 0)
}

// RandomPrimeVY implements vy_random_prime: same contract as RandomPrime,
// except that each drawn candidate is offset by 6 before the coprime-to-6
// adjustment. Both draw independently at random, so they can still return
// the same prime.
func RandomPrimeVY(rounds, bitSize, cores int) (*big.Int, error) {
	return searchRandomPrime(rounds, bitSize, cores, 6)
}
