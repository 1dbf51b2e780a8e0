// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command sizm is the CLI front end for the iZ-space prime sieve engine:
// sieve, stream, count, nextprime and randomprime subcommands over the
// core packages in internal/.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sixprime/sizm/internal/slogutil"
	_ "github.com/sixprime/sizm/lib/automaxprocs"
)

type cli struct {
	Sieve       sieveCmd       `cmd:"" help:"Run one of the classical or iZ sieves over [0, n]."`
	Stream      streamCmd      `cmd:"" help:"Stream every prime in a range to a file or stdout."`
	Count       countCmd       `cmd:"" help:"Count the primes in a range."`
	Nextprime   nextprimeCmd   `cmd:"" help:"Find the next (or previous) probable prime."`
	Randomprime randomprimeCmd `cmd:"" help:"Generate a random probable prime of a given bit size."`
	Logs        logsCmd        `cmd:"" help:"Replay recently recorded log lines from this process."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("sizm"),
		kong.Description("iZ index-space segmented prime sieve engine."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		slog.Error("sizm: command failed", slogutil.Error(err))
		os.Exit(1)
	}
}
