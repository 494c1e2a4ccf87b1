package protocol

import "fmt"

// ParseDeviceInfo extracts the device identity from a CmdGetDeviceInfo
// reply. The frame must already have passed checksum validation.
//
// Reply frame (DeviceInfoResponseLength bytes):
//
//	[HEADER][VERSION][FEATURE_L][FEATURE_H][CRC8]
func ParseDeviceInfo(frame []byte) (*DeviceInfo, error) {
	if len(frame) != DeviceInfoResponseLength {
		return nil, fmt.Errorf("invalid device info reply length: got %d bytes, expected %d", len(frame), DeviceInfoResponseLength)
	}

	info := &DeviceInfo{
		Version:  Version(frame[1]),
		Features: Features(frame[3])<<8 | Features(frame[2]),
	}

	return info, nil
}

// ParseConnectionResponse extracts the camera's acknowledgement from a
// Cmd5KeyConnection reply. The frame must already have passed checksum
// validation.
//
// Reply frame (ConnectionResponseLength bytes):
//
//	[HEADER][DATA][CRC8]
//
// The data byte carries the echoed operation in its high nibble and a
// result code in its low nibble, where 1 means accepted.
func ParseConnectionResponse(frame []byte) (*ConnectionStatus, error) {
	if len(frame) != ConnectionResponseLength {
		return nil, fmt.Errorf("invalid connection reply length: got %d bytes, expected %d", len(frame), ConnectionResponseLength)
	}

	status := &ConnectionStatus{
		Operation: frame[1] >> 4,
		Accepted:  frame[1]&0x0F == 1,
	}

	return status, nil
}
