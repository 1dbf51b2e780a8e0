// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package slogutil wires log/slog into a per-package level-override table
// and a line recorder, so the CLI's logs subcommand and test assertions can
// both observe log content without reparsing formatted text.
package slogutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// GlobalRecorder and ErrorRecorder are built through NewRecorder (rather
	// than struct-literal'd directly) and type-asserted back to the
	// concrete type, since formattingHandler needs the concrete *lineRecorder
	// to call the unexported record method but every other package only
	// ever sees them through the exported Recorder interface.
	GlobalRecorder = NewRecorder(slog.Level(-1000)).(*lineRecorder)
	ErrorRecorder  = NewRecorder(slog.LevelError).(*lineRecorder)
	globalLevels   = &levelTracker{
		levels: make(map[string]slog.Level),
		descrs: make(map[string]string),
	}
	globalFormatter = &formattingOptions{LineFormat: DefaultLineFormat}
	slogDef         *slog.Logger
)

func init() {
	var out io.Writer = os.Stdout
	if os.Getenv("SIZM_LOG_DISCARD") != "" {
		// Disable logging entirely, for example when benchmarking the
		// segmented sieve.
		out = io.Discard
	}
	globalFormatter.out = out
	globalFormatter.recs = []*lineRecorder{GlobalRecorder, ErrorRecorder}
	slogDef = slog.New(&formattingHandler{opts: globalFormatter})
	slog.SetDefault(slogDef)

	// SIZM_TRACE="iz,sieve:WARN" sets per-package trace levels.
	pkgs := strings.Split(os.Getenv("SIZM_TRACE"), ",")
	for _, pkg := range pkgs {
		pkg = strings.TrimSpace(pkg)
		if pkg == "" {
			continue
		}
		level := slog.LevelDebug
		if cutPkg, levelStr, ok := strings.Cut(pkg, ":"); ok {
			pkg = cutPkg
			if err := level.UnmarshalText([]byte(levelStr)); err != nil {
				slog.Warn("Bad log level requested in SIZM_TRACE", slog.String("pkg", pkg), slog.String("level", levelStr), Error(err))
			}
		}
		globalLevels.Set(pkg, level)
	}
}
