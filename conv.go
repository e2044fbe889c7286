// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Moetsuki
// Source: github.com/Moetsuki/image-astc

package astc

import "encoding/binary"

const (
	// unitSize is the width of one payload pixel unit in bytes.
	unitSize = 4

	maxUint32 = uint64(^uint32(0))
)

// bytesFromUnits reinterprets 32-bit units as their little-endian byte
// sequence, returning an owned copy.
func bytesFromUnits(units []uint32) []byte {
	buf := make([]byte, len(units)*unitSize)
	for i, u := range units {
		binary.LittleEndian.PutUint32(buf[i*unitSize:], u)
	}

	return buf
}
