// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package expr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDecimalPlainAndGrouped(t *testing.T) {
	n, err := ParseDecimal("1000000")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1_000_000), n)

	n, err = ParseDecimal("1,000,000")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1_000_000), n)

	n, err = ParseDecimal("7")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(7), n)
}

func TestParseDecimalRejectsBadGrouping(t *testing.T) {
	_, err := ParseDecimal("1,0000")
	require.Error(t, err)
	_, err = ParseDecimal("1,00")
	require.Error(t, err)
	_, err = ParseDecimal("abc")
	require.Error(t, err)
}

func TestParseExprExamplesFromSpec(t *testing.T) {
	cases := map[string]*big.Int{
		"10^6":        big.NewInt(1_000_000),
		"1e6":         big.NewInt(1_000_000),
		"1,000,000":   big.NewInt(1_000_000),
		"10e9 + 10^3": new(big.Int).Add(big.NewInt(10_000_000_000), big.NewInt(1000)),
	}
	for in, want := range cases {
		got, err := ParseExpr(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseExprBigExponent(t *testing.T) {
	got, err := ParseExpr("10e100")
	require.NoError(t, err)
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(101), nil)
	require.Equal(t, want, got)
}

func TestParseRangeAllFiveSyntaxes(t *testing.T) {
	for _, s := range []string{"5,10", "[5,10]", "range[5,10]", "5..10", "5:10"} {
		lo, hi, err := ParseRange(s)
		require.NoError(t, err, s)
		require.Equal(t, big.NewInt(5), lo, s)
		require.Equal(t, big.NewInt(10), hi, s)
	}
}

func TestParseRangeRejectsDescending(t *testing.T) {
	_, _, err := ParseRange("10,5")
	require.Error(t, err)
}

func TestParseRangeWithExpressionBounds(t *testing.T) {
	lo, hi, err := ParseRange("10^3..10^6")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), lo)
	require.Equal(t, big.NewInt(1_000_000), hi)
}

func TestParseRangeRejectsGarbage(t *testing.T) {
	_, _, err := ParseRange("not a range")
	require.Error(t, err)
}
