// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"math/big"

	"github.com/sixprime/sizm/internal/expr"
	"github.com/sixprime/sizm/internal/oracle"
	"github.com/sixprime/sizm/internal/rangedrv"
)

type countCmd struct {
	Range    string `arg:"" help:"Range expression: L,R | [L,R] | range[L,R] | L..R | L:R. Width must exceed 100."`
	Cores    int    `default:"1" help:"Worker goroutines to fan the count out across."`
	MRRounds int    `default:"25" help:"Miller-Rabin rounds, clamped to [5,50]."`
}

func (c *countCmd) Run() error {
	lo, hi, err := expr.ParseRange(c.Range)
	if err != nil {
		return err
	}
	// Zs may be an arbitrarily large integer; only the window width needs
	// to fit in a uint64.
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, big.NewInt(1))
	if !width.IsUint64() {
		return fmt.Errorf("sizm: count: range width must fit in 64 bits")
	}

	count, err := rangedrv.Count(rangedrv.InputRange{
		Start:    oracle.NewFromBigInt(lo),
		Width:    width.Uint64(),
		MRRounds: c.MRRounds,
	}, c.Cores)
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}
