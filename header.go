package astc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed length of the container header in bytes.
const HeaderSize = 30

const (
	versionOffset = 12
	widthOffset   = 14
	heightOffset  = 22
)

// signature identifies the ASTC container format.
var signature = []byte{
	0xA5, 0x7C, 0xC7, 0x5A, 0x4F, 0xF4, 0x5F, 0x5F, 0x4F, 0xF4, 0x5F, 0x5F,
}

// DecodeHeader validates the container header and returns the declared
// image dimensions. Validation is ordered and short-circuiting: length
// first, then signature, then field extraction; no partial result is
// returned on any failure.
func DecodeHeader(data []byte) (width, height uint32, err error) {
	if len(data) < HeaderSize {
		return 0, 0, fmt.Errorf("%w: %d bytes, need %d", ErrHeaderTooShort, len(data), HeaderSize)
	}

	if !bytes.Equal(data[:versionOffset], signature) {
		return 0, 0, ErrBadSignature
	}

	// 16-bit version, parsed but not validated against a version set.
	_ = binary.LittleEndian.Uint16(data[versionOffset:widthOffset])

	w := binary.LittleEndian.Uint64(data[widthOffset:heightOffset])
	h := binary.LittleEndian.Uint64(data[heightOffset:HeaderSize])

	if w > maxUint32 || h > maxUint32 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, w, h)
	}

	return uint32(w), uint32(h), nil
}
