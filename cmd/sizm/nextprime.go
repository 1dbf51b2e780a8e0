// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"

	"github.com/sixprime/sizm/internal/expr"
	"github.com/sixprime/sizm/internal/iz"
)

type nextprimeCmd struct {
	Base     string `arg:"" help:"Base number or expression (e.g. 10^9)."`
	Backward bool   `help:"Search backward for the previous probable prime instead of forward."`
	MRRounds int    `default:"25" help:"Miller-Rabin rounds, clamped to [5,50]."`
}

func (c *nextprimeCmd) Run() error {
	base, err := expr.ParseExpr(c.Base)
	if err != nil {
		return err
	}
	p := iz.NextPrime(c.MRRounds, base, !c.Backward)
	if p == nil {
		return fmt.Errorf("sizm: nextprime: no probable prime exists in that direction from %s", base)
	}
	fmt.Println(p.String())
	return nil
}
