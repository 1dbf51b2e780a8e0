// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rand implements convenience functions on top of a
// cryptographically secure random number generator. Importantly, the
// output is not predictable even if the caller doesn't consume every
// random number generated, unlike a regular seeded math/rand source.
package rand

import (
	"math/big"
	"math/rand"
	"sync"
)

const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	defaultSource = rand.New(newSecureSource())
	mut           sync.Mutex
)

// String returns a random string of the given length, consisting of
// chars from the set [a-zA-Z0-9].
func String(l int) string {
	bs := make([]byte, l)
	mut.Lock()
	for i := range bs {
		bs[i] = chars[defaultSource.Intn(len(chars))]
	}
	mut.Unlock()
	return string(bs)
}

// Int64 returns a random int64.
func Int64() int64 {
	mut.Lock()
	defer mut.Unlock()
	return defaultSource.Int63()
}

// Uint64 returns a random uint64.
func Uint64() uint64 {
	mut.Lock()
	defer mut.Unlock()
	return defaultSource.Uint64()
}

// Int63n returns, as an int64, a non-negative random number in [0, n).
func Int63n(n int64) int64 {
	mut.Lock()
	defer mut.Unlock()
	return defaultSource.Int63n(n)
}

// BigInt returns a cryptographically random non-negative integer strictly
// less than max.
func BigInt(max *big.Int) *big.Int {
	return bigInt(max)
}
