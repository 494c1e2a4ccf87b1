package protocol

import "testing"

func TestCalculateCRC8DVBS2(t *testing.T) {
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
			name:     "single zero byte",
			data:     []byte{0x00},
			expected: 0x00,
		},
		{
			name:     "single one byte",
			data:     []byte{0x01},
			expected: 0xD5, // one polynomial reduction
		},
		{
			name:     "header byte",
			data:     []byte{0xCC},
			expected: 0xA5,
		},
		{
			name:     "all bits set",
			data:     []byte{0xFF},
			expected: 0xF9,
		},
		{
			name:     "device info request body",
			data:     []byte{0xCC, 0x00},
			expected: 0x60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateCRC8DVBS2(tt.data)
			if result != tt.expected {
				t.Errorf("CalculateCRC8DVBS2() = 0x%02X, want 0x%02X", result, tt.expected)
			}
		})
	}
}

func TestUpdateCRC8DVBS2MatchesFold(t *testing.T) {
	data := []byte{0xCC, 0x04, 0x01, 0x32, 0x99}

	var crc byte
	for _, b := range data {
		crc = UpdateCRC8DVBS2(crc, b)
	}

	if folded := CalculateCRC8DVBS2(data); crc != folded {
		t.Errorf("stepwise CRC = 0x%02X, folded CRC = 0x%02X", crc, folded)
	}
}

func TestCRC8DVBS2FrameFoldsToZero(t *testing.T) {
	// Appending the CRC of a frame body makes the whole frame fold to
	// zero, which is how replies are validated.
	bodies := [][]byte{
		{0xCC, 0x00},
		{0xCC, 0x01, 0x0F, 0x00},
		{0xCC, 0x22},
		{0x00},
		{0xFF, 0xFF, 0xFF},
	}

	for _, body := range bodies {
		frame := append(append([]byte{}, body...), CalculateCRC8DVBS2(body))
		if fold := CalculateCRC8DVBS2(frame); fold != 0 {
			t.Errorf("frame % X folds to 0x%02X, want 0x00", frame, fold)
		}
	}
}

func TestCalculateLegacyCRC8(t *testing.T) {
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
			name:     "single zero byte",
			data:     []byte{0x00},
			expected: 0x00,
		},
		{
			name:     "single one byte",
			data:     []byte{0x01},
			expected: 0x31, // one polynomial reduction
		},
		{
			name:     "rcsplit header byte",
			data:     []byte{0x55},
			expected: 0x8B,
		},
		{
			name:     "all bits set",
			data:     []byte{0xFF},
			expected: 0xAC,
		},
		{
			name:     "legacy reply window",
			data:     []byte{0x55, 0x01, 0x03, 0xAA},
			expected: 0x01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateLegacyCRC8(tt.data)
			if result != tt.expected {
				t.Errorf("CalculateLegacyCRC8() = 0x%02X, want 0x%02X", result, tt.expected)
			}
		})
	}
}

func TestCRC8SingleBitCorruptionDetected(t *testing.T) {
	body := []byte{0xCC, 0x01, 0x02}
	frame := append(append([]byte{}, body...), CalculateCRC8DVBS2(body))

	for i := range frame {
		for bit := 0; bit < BitsPerByte; bit++ {
			corrupted := append([]byte{}, frame...)
			corrupted[i] ^= 1 << bit

			if CalculateCRC8DVBS2(corrupted) == 0 {
				t.Errorf("corruption at byte %d bit %d was not detected", i, bit)
			}
		}
	}
}

func BenchmarkCalculateCRC8DVBS2(b *testing.B) {
	data := make([]byte, MaxPacketSize)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CalculateCRC8DVBS2(data)
	}
}

func BenchmarkCalculateLegacyCRC8(b *testing.B) {
	data := make([]byte, LegacyResponseLength)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CalculateLegacyCRC8(data)
	}
}
