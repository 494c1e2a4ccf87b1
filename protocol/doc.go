// Package protocol implements the RunCam split-camera serial control
// protocol at the wire level.
//
// This package provides frame construction, the two checksum schemes the
// device family has used, and parsers for the typed replies. It holds no
// state and performs no I/O; the rcdevice package drives it against a
// transport.
//
// # Protocol Overview
//
// The device speaks a framed request/reply protocol over a serial link:
//
//	Command: [HEADER][CMD][PARAMS...][CRC8]
//	Reply:   [HEADER][DATA...][CRC8]
//
// Where:
//   - HEADER = 0xCC
//   - CRC8 = CRC-8 DVB-S2 over every preceding byte, header included
//
// A well-formed reply folds to zero when CalculateCRC8DVBS2 is applied
// across all of its bytes, trailing checksum included.
//
// Devices running the original RCSplit firmware (VersionLegacy) answer
// with fixed 5-byte replies checked by a polynomial 0x31 CRC-8 instead;
// see Version.VerifyResponse for the layout.
//
// # Frame Construction
//
// Use BuildFrame to create command frames:
//
//	frame, err := protocol.BuildFrame(protocol.Cmd5KeyConnection,
//	    []byte{protocol.ConnectionOpen})
//
// # Reply Validation and Parsing
//
// Validate a reply under the version that was in force when the request
// went out, then parse it:
//
//	if !version.VerifyResponse(frame) {
//	    // corrupted reply, discard
//	}
//	info, err := protocol.ParseDeviceInfo(frame)
//
// # Reference
//
// Frame layouts and command semantics follow the RunCam Device Protocol
// as implemented by the RunCam Split family and compatible cameras.
package protocol
