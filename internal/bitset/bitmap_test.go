// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package bitset

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAllZeroAllOne(t *testing.T) {
	b0, err := Create(1000, false)
	require.NoError(t, err)
	for i := uint64(0); i < 1000; i++ {
		require.False(t, b0.Get(i))
	}

	b1, err := Create(1000, true)
	require.NoError(t, err)
	for i := uint64(0); i < 1000; i++ {
		require.True(t, b1.Get(i))
	}
}

func TestSetClearFlip(t *testing.T) {
	b, err := Create(64, false)
	require.NoError(t, err)

	b.Set(10)
	require.True(t, b.Get(10))
	b.Clear(10)
	require.False(t, b.Get(10))
	b.Flip(5)
	require.True(t, b.Get(5))
	b.Flip(5)
	require.False(t, b.Get(5))
}

// TestS9ChecksumRoundTrip mirrors scenario S9: Bitmap(size=1000, init=0); set
// all even i; compute_checksum; write; read; verify_checksum true and
// read-back equal to original.
func TestS9ChecksumRoundTrip(t *testing.T) {
	b, err := Create(1000, false)
	require.NoError(t, err)
	for i := uint64(0); i < 1000; i += 2 {
		b.Set(i)
	}
	b.ComputeChecksum()
	require.True(t, b.VerifyChecksum())

	var buf bytes.Buffer
	require.NoError(t, b.WriteStream(&buf))

	got, err := ReadStream(&buf)
	require.NoError(t, err)
	require.True(t, got.VerifyChecksum())
	require.Equal(t, b.Size(), got.Size())
	for i := uint64(0); i < 1000; i++ {
		require.Equal(t, b.Get(i), got.Get(i), "bit %d", i)
	}
}

func TestVerifyChecksumDetectsMutation(t *testing.T) {
	b, err := Create(128, false)
	require.NoError(t, err)
	b.ComputeChecksum()
	require.True(t, b.VerifyChecksum())
	b.Set(3)
	require.False(t, b.VerifyChecksum())
}

func TestClearStepsScalarReference(t *testing.T) {
	b, err := Create(100, true)
	require.NoError(t, err)
	clearStepsScalar(b.Payload(), 3, 1, 99)
	for i := uint64(0); i < 100; i++ {
		want := !(i >= 1 && (i-1)%3 == 0)
		require.Equal(t, want, b.Get(i), "bit %d", i)
	}
}

// TestClearStepsWideMatchesScalar checks the wide path (if the host CPU
// supports it) agrees bit-for-bit with the scalar reference for a range of
// steps and starts.
func TestClearStepsWideMatchesScalar(t *testing.T) {
	steps := []uint64{1, 2, 3, 5, 7, 11, 17}
	for _, step := range steps {
		for _, start := range []uint64{0, 1, step, step + 1} {
			scalar, err := Create(2000, true)
			require.NoError(t, err)
			clearStepsScalar(scalar.Payload(), step, start, 1999)

			wide, err := Create(2000, true)
			require.NoError(t, err)
			wide.ClearSteps(step, start, 1999)

			require.True(t, bytes.Equal(scalar.Payload(), wide.Payload()),
				"step=%d start=%d", step, start)
		}
	}
}

func TestClearStepsPreconditionPanics(t *testing.T) {
	b, err := Create(64, true)
	require.NoError(t, err)
	require.Panics(t, func() {
		b.ClearSteps(0, 0, 63)
	})
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := Create(64, false)
	require.NoError(t, err)
	b.Set(1)
	c := b.Clone()
	c.Set(2)
	require.False(t, b.Get(2))
	require.True(t, c.Get(1))
}

func TestReadStreamChecksumMismatch(t *testing.T) {
	b, err := Create(64, false)
	require.NoError(t, err)
	b.Set(4)
	b.ComputeChecksum()

	var buf bytes.Buffer
	require.NoError(t, b.WriteStream(&buf))
	raw := buf.Bytes()
	// Corrupt a payload byte without updating the checksum.
	raw[8] ^= 0xff

	_, err = ReadStream(bytes.NewReader(raw))
	require.Error(t, err)
}
