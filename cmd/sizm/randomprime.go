// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"math/big"

	"github.com/sixprime/sizm/internal/iz"
)

type randomprimeCmd struct {
	Bits     int  `required:"" help:"Bit size of the generated prime."`
	VY       bool `help:"Use the vertical (vy) traversal variant."`
	Cores    int  `default:"1" help:"Worker goroutines to search with concurrently."`
	MRRounds int  `default:"25" help:"Miller-Rabin rounds, clamped to [5,50]."`
}

func (c *randomprimeCmd) Run() error {
	var (
		p   *big.Int
		err error
	)
	if c.VY {
		p, err = iz.RandomPrimeVY(c.MRRounds, c.Bits, c.Cores)
	} else {
		p, err = iz.RandomPrime(c.MRRounds, c.Bits, c.Cores)
	}
	if err != nil {
		return err
	}
	fmt.Println(p.String())
	return nil
}
