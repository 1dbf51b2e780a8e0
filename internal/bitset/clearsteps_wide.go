// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package bitset

import "golang.org/x/sys/cpu"

// wideLanes is the number of step-multiples batched per iteration of
// clearStepsWide when the detected CPU has a wide integer SIMD unit
// (AVX2-class: four 64-bit lanes, or NEON-class: two). Portable Go cannot
// issue a vector scatter to individual bits, so "wide" here means
// unrolling the index arithmetic across lanes and doing the byte writes
// with scalar stores; only the stride computation is batched. Results are
// bit-identical to clearStepsScalar for any width.
var wideLanes = detectWideLanes()

func detectWideLanes() int {
	switch {
	case cpu.X86.HasAVX2:
		return 4
	case cpu.ARM64.HasASIMD:
		return 2
	default:
		return 0
	}
}

// clearStepsWide clears bits at start, start+step, ... up to limit in
// batches of wideLanes indices at a time, falling back to the scalar loop
// for any remainder. It returns false (deferring entirely to the caller's
// scalar path) when the CPU exposes no usable wide lane width.
func clearStepsWide(payload []byte, step, start, limit uint64) bool {
	lanes := wideLanes
	if lanes < 2 {
		return false
	}

	// batchStride*k must not overflow uint64 before exceeding limit; guard
	// against pathological huge steps by falling back to scalar.
	batchStride := step * uint64(lanes)
	if batchStride/uint64(lanes) != step {
		return false
	}

	j := start
	for j <= limit {
		// Unrolled lane writes; each is an independent byte read-modify-
		// write so there is no cross-lane dependency to serialize on.
		for lane := uint64(0); lane < uint64(lanes); lane++ {
			idx := j + lane*step
			if idx > limit {
				break
			}
			payload[idx/8] &^= 1 << (idx % 8)
		}
		if j+batchStride < j {
			break // overflow
		}
		j += batchStride
	}
	return true
}
