package astc

import "testing"

// benchPayload builds a deterministic payload used by decode benchmarks.
func benchPayload(width, height int) []uint32 {
	payload := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Deterministic pattern with mixed low/high frequencies.
			r := uint32((x*7 + y*3) & 0xff)
			g := uint32((x*13 + y*5) & 0xff)
			b := uint32((x ^ y ^ (x >> 2)) & 0xff)
			payload[y*width+x] = r | g<<8 | b<<16 | 0xff<<24
		}
	}
	return payload
}

func BenchmarkDecodeHeader(b *testing.B) {
	data := makeHeader(1, 512, 512)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := DecodeHeader(data); err != nil {
			b.Fatalf("DecodeHeader: %v", err)
		}
	}
}

func BenchmarkLoadFromMemory(b *testing.B) {
	benchSizes := []struct {
		name   string
		width  int
		height int
	}{
		{name: "64x64", width: 64, height: 64},
		{name: "512x512", width: 512, height: 512},
	}

	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			data := makeContainer(b, uint64(size.width), uint64(size.height), benchPayload(size.width, size.height))

			b.ReportAllocs()
			b.SetBytes(int64(len(data) * unitSize))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := LoadFromMemory(data); err != nil {
					b.Fatalf("LoadFromMemory: %v", err)
				}
			}
		})
	}
}
