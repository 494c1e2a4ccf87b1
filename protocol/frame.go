package protocol

import "fmt"

// BuildFrame constructs a V1 command frame.
//
// Frame structure:
//
//	[HEADER][CMD][PARAMS...][CRC8]
//
// The trailing checksum is CRC-8 DVB-S2 over every preceding byte,
// header included. Returns the complete frame ready to transmit, or an
// error when params would overflow MaxPacketSize.
func BuildFrame(command byte, params []byte) ([]byte, error) {
	if len(params) > MaxParamSize {
		return nil, fmt.Errorf("invalid params length: got %d bytes, maximum is %d", len(params), MaxParamSize)
	}

	frame := make([]byte, 0, len(params)+3)
	frame = append(frame, Header)
	frame = append(frame, command)
	frame = append(frame, params...)
	frame = append(frame, CalculateCRC8DVBS2(frame))

	return frame, nil
}

// VerifyResponse reports whether frame is a valid reply under this
// protocol version. The caller's frame is never modified.
//
// V1 replies carry a trailing CRC-8 DVB-S2: the fold over the whole
// frame, checksum byte included, must come out zero.
//
// Legacy replies are exactly LegacyResponseLength bytes with the
// checksum at index 3 and a fixed trailer at index 4. The trailer is
// relocated into the checksum slot of a local copy, the legacy CRC-8 is
// computed over its first four bytes, and the result must match the
// original checksum byte.
//
// Replies under VersionUnknown never validate.
func (v Version) VerifyResponse(frame []byte) bool {
	switch v {
	case VersionV1:
		if len(frame) == 0 {
			return false
		}
		return CalculateCRC8DVBS2(frame) == 0

	case VersionLegacy:
		if len(frame) != LegacyResponseLength {
			return false
		}
		var buf [LegacyResponseLength - 1]byte
		copy(buf[:], frame[:3])
		buf[3] = frame[4]
		return CalculateLegacyCRC8(buf[:]) == frame[3]
	}

	return false
}
