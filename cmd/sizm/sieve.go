// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"

	"github.com/sixprime/sizm/internal/iz"
	"github.com/sixprime/sizm/internal/sieve"
)

type sieveCmd struct {
	Algo string `arg:"" enum:"SoE,SSoE,SoEu,SoS,SoA,SiZ,SiZm,SiZm_vy" help:"Sieve algorithm to run."`
	N    uint64 `arg:"" help:"Upper bound (10 < n <= 1e12)."`
}

func (c *sieveCmd) Run() error {
	var (
		primes []uint64
		err    error
	)
	switch c.Algo {
	case "SoE":
		primes, err = sieve.SoE(c.N)
	case "SSoE":
		primes, err = sieve.SSoE(c.N)
	case "SoEu":
		primes, err = sieve.SoEu(c.N)
	case "SoS":
		primes, err = sieve.SoS(c.N)
	case "SoA":
		primes, err = sieve.SoA(c.N)
	case "SiZ":
		primes, err = iz.RootPrimes(c.N)
	case "SiZm":
		primes, err = sieve.SiZm(c.N)
	case "SiZm_vy":
		primes, err = sieve.SiZmVY(c.N)
	default:
		return fmt.Errorf("sizm: unknown algorithm %q", c.Algo)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%d primes <= %d\n", len(primes), c.N)
	if len(primes) > 0 && c.Algo != "SiZm_vy" {
		fmt.Printf("last: %d\n", primes[len(primes)-1])
	}
	return nil
}
