// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package iz

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPrimeSmallValuesForward(t *testing.T) {
	cases := []struct {
		base int64
		want int64
	}{
		{0, 2}, {1, 2}, {2, 3}, {3, 5}, {4, 5}, {5, 7}, {6, 7}, {10, 11}, {28, 29},
	}
	for _, c := range cases {
		got := NextPrime(25, big.NewInt(c.base), true)
		require.Equal(t, big.NewInt(c.want), got, "base=%d", c.base)
	}
}

func TestNextPrimeSmallValuesBackward(t *testing.T) {
	cases := []struct {
		base int64
		want int64
	}{
		{3, 2}, {4, 3}, {5, 3}, {6, 5}, {7, 5}, {8, 7}, {30, 29},
	}
	for _, c := range cases {
		got := NextPrime(25, big.NewInt(c.base), false)
		require.Equal(t, big.NewInt(c.want), got, "base=%d", c.base)
	}
}

func TestNextPrimeBackwardBelowTwoIsNil(t *testing.T) {
	require.Nil(t, NextPrime(25, big.NewInt(2), false))
	require.Nil(t, NextPrime(25, big.NewInt(0), false))
}

func TestNextPrimeAgreesWithRootPrimesOrdering(t *testing.T) {
	primes, err := RootPrimes(1000)
	require.NoError(t, err)

	for i := 0; i+1 < len(primes); i++ {
		got := NextPrime(25, big.NewInt(int64(primes[i])), true)
		require.Equal(t, int64(primes[i+1]), got.Int64(), "after %d", primes[i])
	}
	for i := 1; i < len(primes); i++ {
		got := NextPrime(25, big.NewInt(int64(primes[i])), false)
		require.Equal(t, int64(primes[i-1]), got.Int64(), "before %d", primes[i])
	}
}

func TestRandomPrimeProducesCorrectBitSizeAndPrimality(t *testing.T) {
	p, err := RandomPrime(25, 64, 4)
	require.NoError(t, err)
	require.True(t, p.ProbablyPrime(25))
	require.GreaterOrEqual(t, p.BitLen(), 63)
	require.LessOrEqual(t, p.BitLen(), 65)
}

func TestRandomPrimeVYProducesCorrectBitSizeAndPrimality(t *testing.T) {
	p, err := RandomPrimeVY(25, 64, 4)
	require.NoError(t, err)
	require.True(t, p.ProbablyPrime(25))
	require.GreaterOrEqual(t, p.BitLen(), 63)
}

func TestRandomPrimeRejectsTinyBitSize(t *testing.T) {
	_, err := RandomPrime(25, 1, 1)
	require.Error(t, err)
}
