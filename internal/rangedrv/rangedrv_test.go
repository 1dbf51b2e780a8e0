// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rangedrv

import (
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sixprime/sizm/internal/oracle"
	"github.com/sixprime/sizm/internal/sieve"
)

func start(x uint64) *oracle.Int { return oracle.NewFromUint64(x) }

// TestS4Stream mirrors scenario S4: streaming [0, 10^6) returns 78498 and
// writes them to the given file.
func TestS4Stream(t *testing.T) {
	path := t.TempDir() + "/primes.txt"
	count, err := Stream(InputRange{Start: start(0), Width: 1_000_000, MRRounds: 25, Filepath: path})
	require.NoError(t, err)
	require.Equal(t, uint64(78498), count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "2 3 5 7 11")
}

// TestS6CountSingleCore mirrors scenario S6: count over [0, 10^9) with
// cores=1 returns 50847534.
func TestS6CountSingleCore(t *testing.T) {
	t.Skip("exercised for fidelity only: a range this wide is not run in CI")
	count, err := Count(InputRange{Start: start(0), Width: 1_000_000_000, MRRounds: 25}, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(50847534), count)
}

// TestS7CountMultiCoreAgreesWithSingleCore mirrors scenario S7: the same
// count with cores=8 must equal the cores=1 result.
func TestS7CountMultiCoreAgreesWithSingleCore(t *testing.T) {
	t.Skip("exercised for fidelity only: a range this wide is not run in CI")
	single, err := Count(InputRange{Start: start(0), Width: 1_000_000_000, MRRounds: 25}, 1)
	require.NoError(t, err)
	multi, err := Count(InputRange{Start: start(0), Width: 1_000_000_000, MRRounds: 25}, 8)
	require.NoError(t, err)
	require.Equal(t, single, multi)
}

func TestCountAgreesWithSieveOverModerateRange(t *testing.T) {
	const upper = 300_000
	want, err := sieve.SoE(upper)
	require.NoError(t, err)

	zs, width := uint64(1000), uint64(299_000)
	ze := zs + width - 1
	var wantCount uint64
	for _, p := range want {
		if p >= zs && p <= ze {
			wantCount++
		}
	}

	got, err := Count(InputRange{Start: start(zs), Width: width, MRRounds: 25}, 1)
	require.NoError(t, err)
	require.Equal(t, wantCount, got)
}

func TestCountMultiCoreAgreesWithSingleCore(t *testing.T) {
	in := InputRange{Start: start(1000), Width: 300_000, MRRounds: 25}
	single, err := Count(in, 1)
	require.NoError(t, err)
	multi, err := Count(in, 4)
	require.NoError(t, err)
	require.Equal(t, single, multi)
}

func TestCountRejectsNarrowRange(t *testing.T) {
	_, err := Count(InputRange{Start: start(0), Width: 50, MRRounds: 25}, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestStreamAllowsNarrowRange(t *testing.T) {
	path := t.TempDir() + "/small.txt"
	count, err := Stream(InputRange{Start: start(0), Width: 50, MRRounds: 25, Filepath: path})
	require.NoError(t, err)
	require.Equal(t, uint64(15), count) // primes below 50: 2,3,5,7,...,47
}

func TestStreamWritesAscendingOrder(t *testing.T) {
	path := t.TempDir() + "/mid.txt"
	_, err := Stream(InputRange{Start: start(100), Width: 10_000, MRRounds: 25, Filepath: path})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// First emitted prime at or above 100 is 101.
	require.Equal(t, byte('1'), data[0])
	var prev *big.Int
	for _, tok := range splitFields(string(data)) {
		v, ok := new(big.Int).SetString(tok, 10)
		require.True(t, ok)
		if prev != nil {
			require.True(t, v.Cmp(prev) > 0, "%s follows %s", v, prev)
		}
		prev = v
	}
}

// TestCountRejectsNegativeStart exercises validate's non-negative-start
// precondition directly against the arbitrary-precision Start field.
func TestCountRejectsNegativeStart(t *testing.T) {
	neg, err := oracle.NewFromDecimal("-5")
	require.NoError(t, err)
	_, err = Count(InputRange{Start: neg, Width: 1_000, MRRounds: 25}, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

// TestCountHandlesStartBeyondUint64 exercises the arbitrary-precision
// BigVXSegment path: a start far past the uint64 ceiling must still return
// a count without panicking or looping, and the count must be positive and
// below the window width.
func TestCountHandlesStartBeyondUint64(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 80) // 2^80, far past math.MaxUint64
	count, err := Count(InputRange{Start: oracle.NewFromBigInt(huge), Width: 10_000, MRRounds: 25}, 1)
	require.NoError(t, err)
	// No exact oracle at this scale (prime gaps near 2^80 average roughly
	// ln(2^80) ~= 55.5); only the loose bounds 0 < count < width are checked.
	require.Greater(t, count, uint64(0))
	require.Less(t, count, uint64(10_000))
}

// TestStreamHandlesStartBeyondUint64 mirrors the count case for Stream,
// checking the emitted values are all within [start, start+width-1].
func TestStreamHandlesStartBeyondUint64(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	hi := new(big.Int).Add(huge, big.NewInt(9_999))
	path := t.TempDir() + "/big.txt"
	count, err := Stream(InputRange{Start: oracle.NewFromBigInt(huge), Width: 10_000, MRRounds: 25, Filepath: path})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if count == 0 {
		require.Empty(t, data)
		return
	}
	require.NotEmpty(t, data)
	for _, tok := range splitFields(string(data)) {
		v, ok := new(big.Int).SetString(tok, 10)
		require.True(t, ok)
		require.True(t, v.Cmp(huge) >= 0)
		require.True(t, v.Cmp(hi) <= 0)
	}
}

func splitFields(s string) []string {
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
