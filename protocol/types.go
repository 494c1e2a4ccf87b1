package protocol

import "fmt"

// Version identifies which generation of the device protocol a request
// or reply belongs to. The version selects the checksum scheme used to
// validate replies, so it travels with each request rather than being a
// global setting.
type Version byte

const (
	// VersionLegacy is the original RCSplit firmware protocol with
	// fixed 5-byte replies and the polynomial 0x31 checksum.
	VersionLegacy Version = 0x00

	// VersionV1 is the current protocol with CRC-8 DVB-S2 framing.
	VersionV1 Version = 0x01

	// VersionUnknown marks firmware reporting a protocol generation
	// this library does not implement. Requests are never tagged with
	// it; replies carrying it never validate.
	VersionUnknown Version = 0x02
)

// Known reports whether this library implements the version.
func (v Version) Known() bool {
	return v == VersionLegacy || v == VersionV1
}

// String returns a human-readable version name.
func (v Version) String() string {
	switch v {
	case VersionLegacy:
		return "legacy"
	case VersionV1:
		return "1.0"
	}
	return fmt.Sprintf("unknown (0x%02X)", byte(v))
}

// Features is the 16-bit capability mask a device reports in its
// CmdGetDeviceInfo reply.
type Features uint16

// Capability flags advertised by a device.
const (
	// FeatureSimulatePowerButton marks support for CmdCameraControl
	// power button simulation
	FeatureSimulatePowerButton Features = 1 << 0

	// FeatureSimulateWifiButton marks support for CmdCameraControl
	// wifi button simulation
	FeatureSimulateWifiButton Features = 1 << 1

	// FeatureChangeMode marks support for camera mode switching
	FeatureChangeMode Features = 1 << 2

	// FeatureSimulate5KeyOSDCable marks support for the simulated
	// 5-key OSD cable session and key commands
	FeatureSimulate5KeyOSDCable Features = 1 << 3

	// FeatureStartRecording marks support for starting recording
	// through CmdCameraControl
	FeatureStartRecording Features = 1 << 6

	// FeatureStopRecording marks support for stopping recording
	// through CmdCameraControl
	FeatureStopRecording Features = 1 << 7
)

// Has reports whether every flag in mask is set.
func (f Features) Has(mask Features) bool {
	return f&mask == mask
}

// DeviceInfo contains the identity a device reports in its
// CmdGetDeviceInfo reply.
type DeviceInfo struct {
	// Version is the protocol generation the device speaks
	Version Version

	// Features is the capability mask the device advertises
	Features Features
}

// ConnectionStatus is the camera's acknowledgement of a 5-key cable
// session operation.
type ConnectionStatus struct {
	// Operation echoes the requested operation, ConnectionOpen or
	// ConnectionClose
	Operation byte

	// Accepted reports whether the camera accepted the operation
	Accepted bool
}
