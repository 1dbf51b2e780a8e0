// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rangedrv implements the range driver: it maps an arbitrary
// numeric interval [Zs, Ze] onto the iZ segmented sieve's (Xs..Xe, Ys..Ye)
// coordinates, then either streams every prime in the interval to a sink
// in ascending order or counts them, optionally fanning the count out
// across a bounded pool of goroutines.
package rangedrv

import (
	"errors"
	"fmt"

	"github.com/sixprime/sizm/internal/oracle"
)

// Sentinel error categories, matched by errors.Is at call sites.
var (
	ErrInvalidInput = errors.New("rangedrv: invalid input")
	ErrIOFailure    = errors.New("rangedrv: io failure")
	ErrChildFailure = errors.New("rangedrv: worker failure")
)

const minRangeWidth = 100

// InputRange is the range driver's single argument: a half-open-in-spirit,
// closed-in-practice interval [Start, Start+Width-1], an MR-rounds budget,
// and an optional output path (Stream only). Start is arbitrary-precision
// (Zs may be an arbitrarily large decimal); only Width is bound to 64 bits.
type InputRange struct {
	Start    *oracle.Int
	Width    uint64
	MRRounds int
	Filepath string // empty or "/dev/stdout" means "write to stdout"
}

// end returns the inclusive upper bound Ze = Zs + width - 1. Width is
// added as a uint64 rather than cast to int64, since it may exceed
// math.MaxInt64.
func (in InputRange) end() *oracle.Int {
	return in.Start.AddUint64(in.Width).SubSmall(1)
}

// validate enforces the shared preconditions: a non-nil, non-negative
// start and a positive width, with Count additionally requiring width >
// 100. Stream does not enforce the width floor (the public API surface
// widens that precondition to Count only), but both call validate so a
// caller can construct either directly without duplicating the sanity
// checks.
func (in InputRange) validate(requireWide bool) error {
	if in.Start == nil || in.Start.Sign() < 0 {
		return fmt.Errorf("%w: start must be a non-negative integer", ErrInvalidInput)
	}
	if in.Width == 0 {
		return fmt.Errorf("%w: range width must be positive", ErrInvalidInput)
	}
	if requireWide && in.Width <= minRangeWidth {
		return fmt.Errorf("%w: range width %d must exceed %d", ErrInvalidInput, in.Width, minRangeWidth)
	}
	rounds := in.MRRounds
	if rounds == 0 {
		rounds = oracle.DefaultRounds
	}
	if rounds < oracle.MinRounds || rounds > oracle.MaxRounds {
		return fmt.Errorf("%w: mr_rounds %d outside [%d,%d]", ErrInvalidInput, rounds, oracle.MinRounds, oracle.MaxRounds)
	}
	return nil
}

func (in InputRange) rounds() int {
	if in.MRRounds == 0 {
		return oracle.DefaultRounds
	}
	return oracle.ClampRounds(in.MRRounds)
}
