// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package sieve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestS1SoE mirrors scenario S1: SoE(10^3) -> 168 primes, last = 997.
func TestS1SoE(t *testing.T) {
	primes, err := SoE(1000)
	require.NoError(t, err)
	require.Len(t, primes, 168)
	require.Equal(t, uint64(997), primes[len(primes)-1])
}

func TestClassicalSievesAgree(t *testing.T) {
	const n = 50_000
	want, err := SoE(n)
	require.NoError(t, err)

	for name, fn := range map[string]func(uint64) ([]uint64, error){
		"SSoE": SSoE,
		"SoEu": SoEu,
		"SoS":  SoS,
		"SoA":  SoA,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := fn(n)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestClassicalSievesRejectOutOfBoundN(t *testing.T) {
	for name, fn := range map[string]func(uint64) ([]uint64, error){
		"SoE":  SoE,
		"SSoE": SSoE,
		"SoEu": SoEu,
		"SoS":  SoS,
		"SoA":  SoA,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fn(10)
			require.Error(t, err)
			_, err = fn(1_000_000_000_001)
			require.Error(t, err)
		})
	}
}
