// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rangedrv

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/sixprime/sizm/internal/oracle"
	"github.com/sixprime/sizm/internal/sieve"
	"github.com/sixprime/sizm/internal/slogutil"
)

// logMapping emits the resolved iZ coordinates at debug level. Formatting
// four arbitrary-precision values to decimal is wasted work on every call
// when debug logging is off, so it's deferred behind Expensive.
func logMapping(m rangeMapping) {
	slog.Debug("rangedrv: mapped range", slogutil.VX(m.VX), slog.Any("mapping", slogutil.Expensive(func() any {
		return fmt.Sprintf("xs=%s xe=%s ys=%s ye=%s", m.Xs, m.Xe, m.Ys, m.Ye)
	})))
}

// mergeAscending merges two already-ascending slices into one ascending
// slice (the horizontal engine needs the same trick at segment y=0, since
// the wheel primes are cleared from the base bitmap and must be reinserted
// at the right position rather than simply prepended).
func mergeAscending(a, b []uint64) []uint64 {
	out := make([]uint64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// mergeAscendingBig is mergeAscending for arbitrary-precision values.
func mergeAscendingBig(a, b []*oracle.Int) []*oracle.Int {
	out := make([]*oracle.Int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Cmp(b[j]) <= 0 {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// lowPrimesIn returns 2, 3 and the context's wheel primes that fall inside
// [zs, ze], ascending. Only the segment containing global y=0 needs this:
// elsewhere every prime the base template would have hidden is already a
// multiple of a wheel factor and thus composite, not a missed prime.
func lowPrimesIn(ctx *sieve.IZMContext, zs, ze uint64) []uint64 {
	var out []uint64
	for _, p := range append([]uint64{2, 3}, ctx.WheelPrimes...) {
		if p >= zs && p <= ze {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lowPrimesInBig is lowPrimesIn for an arbitrary-precision [zs, ze].
func lowPrimesInBig(ctx *sieve.IZMContext, zs, ze *oracle.Int) []*oracle.Int {
	var out []*oracle.Int
	for _, p := range append([]uint64{2, 3}, ctx.WheelPrimes...) {
		pBig := oracle.NewFromUint64(p)
		if pBig.Cmp(zs) >= 0 && pBig.Cmp(ze) <= 0 {
			out = append(out, pBig)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })
	return out
}

// emitSegment runs one VX segment's full Init->Marked->Collected->Freed
// lifecycle, filtering surviving candidates into [zs, ze] and handing each
// to emit in ascending order. For the segment holding global y=0, it also
// re-merges the low primes the base template hides. Used only on the fast
// path, where the whole window fits in 64 bits.
func emitSegment(ctx *sieve.IZMContext, y uint64, rounds int, zs, ze uint64, emit func(uint64)) uint64 {
	seg := sieve.NewSegment(ctx, y, rounds)
	if y == 0 {
		seg.StartX = 1 // x=0 on segment zero is +-1, never a candidate
	}
	seg.Mark(ctx)
	seg.Clean()

	if y == 0 {
		var bitscan []uint64
		seg.Collect(zs, ze, func(p uint64) { bitscan = append(bitscan, p) })
		extra := lowPrimesIn(ctx, zs, ze)
		for _, p := range mergeAscending(extra, bitscan) {
			emit(p)
		}
		seg.Free()
		return seg.PCount + uint64(len(extra))
	}

	seg.Collect(zs, ze, emit)
	seg.Free()
	return seg.PCount
}

// emitSegmentBig is emitSegment for a row index that does not fit in a
// uint64, driving sieve.BigVXSegment instead. The low-prime re-merge at
// y=0 is still handled here for completeness, even though y=0 can only
// ever be reached this way when a window wide enough to push Ze just past
// the uint64 ceiling starts at a tiny Zs.
func emitSegmentBig(ctx *sieve.IZMContext, y *oracle.Int, rounds int, zs, ze *oracle.Int, emit func(*oracle.Int)) uint64 {
	seg := sieve.NewBigSegment(ctx, y, rounds)
	if y.Sign() == 0 {
		seg.StartX = 1
	}
	seg.Mark(ctx)
	seg.Clean()

	if y.Sign() == 0 {
		var bitscan []*oracle.Int
		seg.Collect(zs, ze, func(p *oracle.Int) { bitscan = append(bitscan, p) })
		extra := lowPrimesInBig(ctx, zs, ze)
		for _, p := range mergeAscendingBig(extra, bitscan) {
			emit(p)
		}
		seg.Free()
		return seg.PCount + uint64(len(extra))
	}

	seg.Collect(zs, ze, emit)
	seg.Free()
	return seg.PCount
}

// openSink resolves the stream destination: empty path and "/dev/stdout"
// both mean stdout; any other path is truncated and created.
func openSink(path string) (io.WriteCloser, error) {
	if path == "" || path == "/dev/stdout" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Stream writes every prime in [input.Start, input.Start+input.Width-1] to
// input.Filepath (or stdout), space-separated ascending, and returns the
// total count. Start may be arbitrarily large; only Width is bound to 64
// bits.
func Stream(input InputRange) (uint64, error) {
	if err := input.validate(false); err != nil {
		return 0, err
	}
	zs, ze := input.Start, input.end()
	rounds := input.rounds()

	vx := chooseVX(ze)
	ctx, err := sieve.NewIZMContext(vx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	m := mapRange(zs, ze, vx)
	logMapping(m)

	sink, err := openSink(input.Filepath)
	if err != nil {
		return 0, err
	}
	defer sink.Close()
	w := bufio.NewWriter(sink)
	defer w.Flush()

	var total uint64
	first := true
	writeStr := func(s string) {
		if !first {
			w.WriteByte(' ')
		}
		w.WriteString(s)
		first = false
		total++
	}

	if zs.FitsUint64() && ze.FitsUint64() {
		zsU, zeU := zs.Low64(), ze.Low64()
		for y := m.Ys.Low64(); y <= m.Ye.Low64(); y++ {
			emitSegment(ctx, y, rounds, zsU, zeU, func(p uint64) { writeStr(fmt.Sprintf("%d", p)) })
		}
	} else {
		y := m.Ys.Clone()
		for y.Cmp(m.Ye) <= 0 {
			emitSegmentBig(ctx, y, rounds, zs, ze, func(p *oracle.Int) { writeStr(p.String()) })
			y = y.AddSmall(1)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return total, nil
}

// Count returns the number of primes in [input.Start, input.Start+input.
// Width-1], optionally fanning the work out across cores goroutines, each
// with its own deep-cloned IZM context. Start may be arbitrarily large;
// only Width is bound to 64 bits.
func Count(input InputRange, cores int) (uint64, error) {
	if err := input.validate(true); err != nil {
		return 0, err
	}
	zs, ze := input.Start, input.end()
	rounds := input.rounds()

	vx := chooseVX(ze)
	ctx, err := sieve.NewIZMContext(vx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	m := mapRange(zs, ze, vx)
	logMapping(m)

	if zs.FitsUint64() && ze.FitsUint64() {
		zsU, zeU := zs.Low64(), ze.Low64()
		if cores <= 1 {
			var total uint64
			for y := m.Ys.Low64(); y <= m.Ye.Low64(); y++ {
				total += emitSegment(ctx, y, rounds, zsU, zeU, func(uint64) {})
			}
			return total, nil
		}
		return countParallel(ctx, m, zsU, zeU, rounds, cores)
	}

	var total uint64
	y := m.Ys.Clone()
	for y.Cmp(m.Ye) <= 0 {
		total += emitSegmentBig(ctx, y, rounds, zs, ze, func(*oracle.Int) {})
		y = y.AddSmall(1)
	}
	return total, nil
}
