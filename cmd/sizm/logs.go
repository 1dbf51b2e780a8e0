// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"os"
	"time"

	"github.com/sixprime/sizm/internal/slogutil"
)

type logsCmd struct {
	Since  time.Duration `default:"1h" help:"Only show log lines recorded within this long ago."`
	Errors bool          `help:"Show only ERROR-level lines, not every recorded line."`
}

// Run replays the in-process log recorder: every command run in this
// process, regardless of --out redirection, also lands in slogutil's
// GlobalRecorder (or ErrorRecorder for errors-only), so "sizm logs" can
// surface what a prior subcommand in the same invocation logged.
func (c *logsCmd) Run() error {
	var rec slogutil.Recorder = slogutil.GlobalRecorder
	if c.Errors {
		rec = slogutil.ErrorRecorder
	}
	for _, line := range rec.Since(time.Now().Add(-c.Since)) {
		if _, err := line.WriteTo(os.Stdout, slogutil.DefaultLineFormat); err != nil {
			return err
		}
	}
	return nil
}
