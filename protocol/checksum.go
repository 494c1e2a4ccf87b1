package protocol

// Checksum algorithm constants.
const (
	// CRC8DVBS2Polynomial is the CRC-8 DVB-S2 generator polynomial
	CRC8DVBS2Polynomial = 0xD5

	// LegacyCRC8Polynomial is the RCSplit-era CRC-8 generator polynomial
	LegacyCRC8Polynomial = 0x31

	// CRC8HighBitMask selects the bit shifted out on each CRC step
	CRC8HighBitMask = 0x80

	// BitsPerByte is the number of bits per byte
	BitsPerByte = 8
)

// UpdateCRC8DVBS2 advances a running CRC-8 DVB-S2 value by one byte.
//
// CRC-8 DVB-S2 parameters:
//   - Polynomial: CRC8DVBS2Polynomial
//   - Initial value: 0x00
//   - No input or output reflection, no final XOR
func UpdateCRC8DVBS2(crc, b byte) byte {
	crc ^= b
	for i := 0; i < BitsPerByte; i++ {
		if crc&CRC8HighBitMask != 0 {
			crc = (crc << 1) ^ CRC8DVBS2Polynomial
		} else {
			crc = crc << 1
		}
	}
	return crc
}

// CalculateCRC8DVBS2 folds UpdateCRC8DVBS2 over data starting from zero.
// A well-formed V1 frame folds to zero when its trailing checksum byte
// is included.
func CalculateCRC8DVBS2(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc = UpdateCRC8DVBS2(crc, b)
	}
	return crc
}

// CalculateLegacyCRC8 computes the RCSplit-era CRC-8 over data.
//
// Legacy CRC-8 parameters:
//   - Polynomial: LegacyCRC8Polynomial
//   - Initial value: 0x00
//   - MSB first, no reflection, no final XOR
func CalculateLegacyCRC8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc ^= b
		for i := 0; i < BitsPerByte; i++ {
			if crc&CRC8HighBitMask != 0 {
				crc = (crc << 1) ^ LegacyCRC8Polynomial
			} else {
				crc = crc << 1
			}
		}
	}
	return crc
}
