package astc

import "errors"

var (
	// ErrHeaderTooShort indicates the data cannot contain a full header.
	ErrHeaderTooShort = errors.New("data too short for ASTC header")
	// ErrBadSignature indicates the 12-byte signature does not match.
	ErrBadSignature = errors.New("data does not contain an ASTC signature")
	// ErrDimensionOverflow indicates a declared dimension exceeds 32 bits.
	ErrDimensionOverflow = errors.New("image dimension overflow")
	// ErrInsufficientData indicates the payload cannot fill the declared dimensions.
	ErrInsufficientData = errors.New("insufficient payload for image buffer")
)
