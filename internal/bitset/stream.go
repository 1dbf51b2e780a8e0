// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package bitset

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteStream writes [size:u64 LE][payload:byteSize bytes][checksum:32 bytes]
// to w, matching the on-disk bitmap format shared with other sizm tools.
func (b *Bitmap) WriteStream(w io.Writer) error {
	var sizeBuf [8]byte
	binary.LittleEndian.PutUint64(sizeBuf[:], b.size)
	if _, err := w.Write(sizeBuf[:]); err != nil {
		return fmt.Errorf("bitset: write size: %w", err)
	}
	if _, err := w.Write(b.payload); err != nil {
		return fmt.Errorf("bitset: write payload: %w", err)
	}
	if _, err := w.Write(b.checksum[:]); err != nil {
		return fmt.Errorf("bitset: write checksum: %w", err)
	}
	return nil
}

// ReadStream reads a bitmap previously written by WriteStream and verifies
// its checksum. A checksum mismatch is fatal for this load: it returns an
// error and no bitmap.
func ReadStream(r io.Reader) (*Bitmap, error) {
	var sizeBuf [8]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return nil, fmt.Errorf("bitset: read size: %w", err)
	}
	size := binary.LittleEndian.Uint64(sizeBuf[:])
	if size == 0 {
		return nil, fmt.Errorf("bitset: read size: stream declares zero bits")
	}

	payload := make([]byte, byteSize(size))
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("bitset: read payload: %w", err)
	}

	var checksum [ChecksumSize]byte
	if _, err := io.ReadFull(r, checksum[:]); err != nil {
		return nil, fmt.Errorf("bitset: read checksum: %w", err)
	}

	b := &Bitmap{size: size, payload: payload, checksum: checksum}
	if !b.VerifyChecksum() {
		return nil, fmt.Errorf("bitset: checksum mismatch on deserialized bitmap")
	}
	return b, nil
}
