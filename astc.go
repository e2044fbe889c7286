package astc

import (
	"fmt"
	"image"
	"image/color"
)

// DecodeConfig reads the container configuration without decoding the
// payload.
func DecodeConfig(data []byte) (image.Config, error) {
	width, height, err := DecodeHeader(data)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(width),
		Height:     int(height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// LoadFromMemory decodes a whole ASTC container supplied as 32-bit
// units into an image. The payload starts at byte offset HeaderSize
// and must hold at least width*height units, one RGBA pixel each in
// row-major order.
func LoadFromMemory(data []uint32) (image.Image, error) {
	raw := bytesFromUnits(data)

	width, height, err := DecodeHeader(raw)
	if err != nil {
		return nil, err
	}

	// The header is not a whole number of units, so payload units are
	// counted from byte offset HeaderSize, not from a unit index.
	payload := raw[HeaderSize:]
	need := uint64(width) * uint64(height)
	have := uint64(len(payload) / unitSize)
	if have < need {
		return nil, fmt.Errorf("%w: need %d pixel units, have %d", ErrInsufficientData, need, have)
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	copy(img.Pix, payload[:int(need)*unitSize])

	return img, nil
}
