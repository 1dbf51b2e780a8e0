// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package sieve

import (
	"fmt"

	"github.com/sixprime/sizm/internal/bitset"
	"github.com/sixprime/sizm/internal/iz"
)

// IZMContext is the shared, read-only wheel context: the VX base template
// and the table of primes up to vx. It is constructed once and handed out
// to workers by deep clone, so no worker ever mutates shared state.
type IZMContext struct {
	VX          uint64
	WheelPrimes []uint64 // primes dividing VX, ascending; their own bit is cleared in BaseX5/BaseX7
	BaseX5      *bitset.Bitmap
	BaseX7      *bitset.Bitmap
	RootPrimes  []uint64 // all primes <= VX, ascending
}

// NewIZMContext builds the wheel base and root-prime table for the given
// VX.
func NewIZMContext(vx uint64) (*IZMContext, error) {
	x5, x7, wheelPrimes, err := iz.BuildVXBase(vx)
	if err != nil {
		return nil, fmt.Errorf("sieve: build VX base: %w", err)
	}
	rootPrimes, err := iz.RootPrimes(vx)
	if err != nil {
		return nil, fmt.Errorf("sieve: root primes: %w", err)
	}
	return &IZMContext{
		VX:          vx,
		WheelPrimes: wheelPrimes,
		BaseX5:      x5,
		BaseX7:      x7,
		RootPrimes:  rootPrimes,
	}, nil
}

// Clone returns an independent deep copy, suitable for handing to a worker
// that must not share mutable state with the parent or its siblings.
func (ctx *IZMContext) Clone() *IZMContext {
	rootPrimes := make([]uint64, len(ctx.RootPrimes))
	copy(rootPrimes, ctx.RootPrimes)
	wheelPrimes := make([]uint64, len(ctx.WheelPrimes))
	copy(wheelPrimes, ctx.WheelPrimes)
	return &IZMContext{
		VX:          ctx.VX,
		WheelPrimes: wheelPrimes,
		BaseX5:      ctx.BaseX5.Clone(),
		BaseX7:      ctx.BaseX7.Clone(),
		RootPrimes:  rootPrimes,
	}
}

// isWheelPrime reports whether p divides VX (and so is already fully
// accounted for in the base template).
func (ctx *IZMContext) isWheelPrime(p uint64) bool {
	for _, wp := range ctx.WheelPrimes {
		if wp == p {
			return true
		}
		if wp > p {
			break
		}
	}
	return false
}
