// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package slogutil

import (
	"log/slog"
	"maps"
	"slices"
)

func Error(err any) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func FilePath(path string) slog.Attr {
	return slog.String("path", path)
}

// Segment identifies a VX segment by its y-index, for log lines emitted
// during segmented sieving.
func Segment(y uint64) slog.Attr {
	return slog.Uint64("segment", y)
}

// VX reports the wheel width in effect for a log line.
func VX(vx uint64) slog.Attr {
	return slog.Uint64("vx", vx)
}

func Map[T any](m map[string]T) []any {
	var attrs []any
	for _, key := range slices.Sorted(maps.Keys(m)) {
		attrs = append(attrs, slog.Any(key, m[key]))
	}
	return attrs
}
