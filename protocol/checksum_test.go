package protocol

import "testing"

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0x00,
		},
		{
			name:     "single byte",
			data:     []byte{0x5A},
			expected: 0x5A,
		},
		{
			name:     "set frame rate packet prefix",
			data:     []byte{0x5A, 0x06, 0x03, 0x0A, 0x00},
			expected: 0x6D,
		},
		{
			name:     "sum overflows into low byte",
			data:     []byte{0xFF, 0xFF, 0x03},
			expected: 0x01,
		},
		{
			name:     "all zeros",
			data:     []byte{0x00, 0x00, 0x00},
			expected: 0x00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Checksum(tt.data)
			if result != tt.expected {
				t.Errorf("Checksum() = 0x%02X, want 0x%02X", result, tt.expected)
			}
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	tests := []struct {
		name     string
		frame    []byte
		expected bool
	}{
		{
			name:     "valid frame",
			frame:    []byte{0x5A, 0x06, 0x03, 0x0A, 0x00, 0x6D},
			expected: true,
		},
		{
			name:     "corrupted checksum",
			frame:    []byte{0x5A, 0x06, 0x03, 0x0A, 0x00, 0x6E},
			expected: false,
		},
		{
			name:     "too short to carry a checksum",
			frame:    []byte{0x5A},
			expected: false,
		},
		{
			name:     "empty frame",
			frame:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := VerifyChecksum(tt.frame)
			if result != tt.expected {
				t.Errorf("VerifyChecksum() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// Flipping any single bit anywhere in a sealed frame must break
// verification, including bits of the checksum byte itself.
func TestVerifyChecksumDetectsSingleBitCorruption(t *testing.T) {
	base := []byte{0x5A, 0x08, 0x06, 0x00, 0xC2, 0x01, 0x00}
	frame := append(base, Checksum(base))

	if !VerifyChecksum(frame) {
		t.Fatalf("sealed frame failed verification: % 02X", frame)
	}

	for i := range frame {
		for bit := 0; bit < 8; bit++ {
			corrupted := make([]byte, len(frame))
			copy(corrupted, frame)
			corrupted[i] ^= 1 << bit
			if VerifyChecksum(corrupted) {
				t.Errorf("corruption at byte %d bit %d went undetected", i, bit)
			}
		}
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, MaxPacketSize)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(data)
	}
}
