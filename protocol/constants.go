package protocol

// Header is the first byte of every V1 frame, in both directions.
const Header = 0xCC

// MaxPacketSize is the upper bound on any frame, either direction.
// This matches the receive buffer the camera firmware allocates.
const MaxPacketSize = 64

// MaxParamSize is the maximum parameter payload for an outgoing frame:
// MaxPacketSize minus the header, command and checksum bytes.
const MaxParamSize = MaxPacketSize - 3

// Command codes understood by protocol devices.
const (
	// CmdGetDeviceInfo queries the protocol version and feature flags
	CmdGetDeviceInfo = 0x00

	// CmdCameraControl simulates a camera button press (no reply)
	CmdCameraControl = 0x01

	// Cmd5KeySimulationPress simulates pressing a 5-key OSD cable key
	Cmd5KeySimulationPress = 0x02

	// Cmd5KeySimulationRelease simulates releasing the held key
	Cmd5KeySimulationRelease = 0x03

	// Cmd5KeyConnection opens or closes the simulated 5-key cable session
	Cmd5KeyConnection = 0x04
)

// Camera control operations for CmdCameraControl.
const (
	// CameraSimulateWifiButton simulates the camera's wifi button
	CameraSimulateWifiButton = 0x00

	// CameraSimulatePowerButton simulates the camera's power button
	CameraSimulatePowerButton = 0x01

	// CameraChangeMode cycles the camera operating mode
	CameraChangeMode = 0x02

	// CameraStartRecording starts video recording
	CameraStartRecording = 0x03

	// CameraStopRecording stops video recording
	CameraStopRecording = 0x04
)

// Key operations for Cmd5KeySimulationPress.
const (
	// FiveKeyNone selects no key; it is never valid on the wire
	FiveKeyNone = 0x00

	// FiveKeySet is the center confirm key
	FiveKeySet = 0x01

	FiveKeyLeft  = 0x02
	FiveKeyUp    = 0x03
	FiveKeyRight = 0x04
	FiveKeyDown  = 0x05
)

// Session operations for Cmd5KeyConnection.
const (
	// ConnectionOpen starts a 5-key cable session; required before any
	// key simulation
	ConnectionOpen = 0x01

	// ConnectionClose ends the 5-key cable session
	ConnectionClose = 0x02
)

// Reply sizes per command, full frame including header and checksum.
const (
	// DeviceInfoResponseLength is the CmdGetDeviceInfo reply size (5 bytes)
	DeviceInfoResponseLength = 5

	// KeyPressResponseLength is the key press/release reply size (2 bytes)
	KeyPressResponseLength = 2

	// ConnectionResponseLength is the cable session reply size (3 bytes)
	ConnectionResponseLength = 3

	// LegacyResponseLength is the fixed size of every legacy RCSplit
	// reply (5 bytes)
	LegacyResponseLength = 5
)

// ResponseLength returns the expected reply length in bytes for a
// command. Commands the device never answers resolve to 0.
func ResponseLength(command byte) int {
	switch command {
	case CmdGetDeviceInfo:
		return DeviceInfoResponseLength
	case Cmd5KeySimulationPress, Cmd5KeySimulationRelease:
		return KeyPressResponseLength
	case Cmd5KeyConnection:
		return ConnectionResponseLength
	}
	return 0
}
