// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rangedrv

import (
	"math"

	"github.com/sixprime/sizm/internal/iz"
	"github.com/sixprime/sizm/internal/oracle"
)

// rangeMapping is the result of projecting a numeric interval into iZ
// coordinates at a chosen wheel width. Xs/Xe/Ys/Ye are arbitrary-precision
// because Zs may be an arbitrarily large decimal; only the window width is
// bound to 64 bits.
type rangeMapping struct {
	VX     uint64
	Xs, Xe *oracle.Int
	Ys, Ye *oracle.Int
}

// mapRange projects [zs, ze] onto (Xs..Xe, Ys..Ye) at wheel width vx. Xs is
// the smallest x whose line could hold zs; Xe is the largest x whose line
// could hold ze (one past the floor division, so the final segment always
// covers the true upper bound; the engine trims the overshoot itself via
// value-filtered Collect).
func mapRange(zs, ze *oracle.Int, vx uint64) rangeMapping {
	xs, _ := zs.DivModSmall(6)
	xeFloor, _ := ze.DivModSmall(6)
	xe := xeFloor.AddSmall(1)
	ys, _ := xs.DivModSmall(int64(vx))
	ye, _ := xe.DivModSmall(int64(vx))
	return rangeMapping{
		VX: vx,
		Xs: xs,
		Xe: xe,
		Ys: ys,
		Ye: ye,
	}
}

// chooseVX picks the L2-aware wheel width for the upper bound of the range,
// same policy the segmented engine uses for a plain SiZm(n) call. When ze
// doesn't fit a uint64, the L2 cache budget always wins over n/6 anyway
// (n/6 only matters once it's smaller than the cache budget), so any value
// at or past the uint64 ceiling picks the same vx as math.MaxUint64 would.
func chooseVX(ze *oracle.Int) uint64 {
	if ze.FitsUint64() {
		return iz.ComputeL2VX(ze.Low64())
	}
	return iz.ComputeL2VX(math.MaxUint64)
}
