// Copyright (C) 2016 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package rand

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// secureSource is a math/rand.Source backed by crypto/rand, so every
// caller of the package-level helpers gets cryptographically strong
// randomness without needing to know it.
type secureSource struct{}

func newSecureSource() *secureSource {
	return &secureSource{}
}

func (s *secureSource) Int63() int64 {
	return int64(s.Uint64() &^ (1 << 63))
}

// Seed is a no-op: crypto/rand has no notion of a reproducible seed, and
// nothing in this package needs one.
func (s *secureSource) Seed(int64) {}

func (s *secureSource) Uint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("rand: crypto/rand unavailable: " + err.Error())
	}
	return binary.BigEndian.Uint64(b[:])
}

// bigInt returns a cryptographically random non-negative integer strictly
// less than max.
func bigInt(max *big.Int) *big.Int {
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic("rand: crypto/rand unavailable: " + err.Error())
	}
	return n
}
