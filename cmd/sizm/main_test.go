// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSieveCmdRunsEachAlgorithm(t *testing.T) {
	for _, algo := range []string{"SoE", "SSoE", "SoEu", "SoS", "SoA", "SiZ", "SiZm", "SiZm_vy"} {
		t.Run(algo, func(t *testing.T) {
			c := sieveCmd{Algo: algo, N: 50_000}
			require.NoError(t, c.Run())
		})
	}
}

func TestSieveCmdRejectsUnknownAlgorithm(t *testing.T) {
	c := sieveCmd{Algo: "bogus", N: 1000}
	require.Error(t, c.Run())
}

func TestStreamCmdWritesFile(t *testing.T) {
	path := t.TempDir() + "/out.txt"
	c := streamCmd{Range: "0,1000000", Out: path, MRRounds: 25}
	require.NoError(t, c.Run())
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestCountCmdRejectsNarrowRange(t *testing.T) {
	c := countCmd{Range: "0,50", Cores: 1, MRRounds: 25}
	require.Error(t, c.Run())
}

func TestNextprimeCmdForwardAndBackward(t *testing.T) {
	fwd := nextprimeCmd{Base: "100", MRRounds: 25}
	require.NoError(t, fwd.Run())

	back := nextprimeCmd{Base: "100", Backward: true, MRRounds: 25}
	require.NoError(t, back.Run())
}

func TestRandomprimeCmdBothVariants(t *testing.T) {
	vx := randomprimeCmd{Bits: 32, Cores: 2, MRRounds: 25}
	require.NoError(t, vx.Run())

	vy := randomprimeCmd{Bits: 32, VY: true, Cores: 2, MRRounds: 25}
	require.NoError(t, vy.Run())
}
