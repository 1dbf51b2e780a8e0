// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/sixprime/sizm/internal/expr"
	"github.com/sixprime/sizm/internal/oracle"
	"github.com/sixprime/sizm/internal/rangedrv"
)

type streamCmd struct {
	Range    string `arg:"" help:"Range expression: L,R | [L,R] | range[L,R] | L..R | L:R."`
	Out      string `help:"Output file (/dev/stdout means stdout; empty writes primes-<unix time>.txt)."`
	MRRounds int    `default:"25" help:"Miller-Rabin rounds, clamped to [5,50]."`
}

func (c *streamCmd) Run() error {
	lo, hi, err := expr.ParseRange(c.Range)
	if err != nil {
		return err
	}
	// Zs may be an arbitrarily large integer; only the window width needs
	// to fit in a uint64.
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, big.NewInt(1))
	if !width.IsUint64() {
		return fmt.Errorf("sizm: stream: range width must fit in 64 bits")
	}

	out := c.Out
	if out == "" {
		out = fmt.Sprintf("primes-%d.txt", time.Now().Unix())
	}

	count, err := rangedrv.Stream(rangedrv.InputRange{
		Start:    oracle.NewFromBigInt(lo),
		Width:    width.Uint64(),
		MRRounds: c.MRRounds,
		Filepath: out,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d primes written\n", count)
	return nil
}
