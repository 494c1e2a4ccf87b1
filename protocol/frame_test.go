package protocol

import (
	"bytes"
	"testing"
)

func TestBuildFrame(t *testing.T) {
	tests := []struct {
		name     string
		command  byte
		params   []byte
		expected []byte
		wantErr  bool
	}{
		{
			name:     "device info request",
			command:  CmdGetDeviceInfo,
			params:   nil,
			expected: []byte{0xCC, 0x00, 0x60},
		},
		{
			name:     "camera power button",
			command:  CmdCameraControl,
			params:   []byte{CameraSimulatePowerButton},
			expected: []byte{0xCC, 0x01, 0x01, 0xE7},
		},
		{
			name:     "open 5-key session",
			command:  Cmd5KeyConnection,
			params:   []byte{ConnectionOpen},
			expected: []byte{0xCC, 0x04, 0x01, 0xC0},
		},
		{
			name:    "params at maximum length",
			command: Cmd5KeySimulationPress,
			params:  make([]byte, MaxParamSize),
		},
		{
			name:    "params too long",
			command: Cmd5KeySimulationPress,
			params:  make([]byte, MaxParamSize+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildFrame(tt.command, tt.params)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expected != nil && !bytes.Equal(frame, tt.expected) {
				t.Errorf("BuildFrame() = % X, want % X", frame, tt.expected)
			}

			if frame[0] != Header {
				t.Errorf("frame[0] = 0x%02X, want header 0x%02X", frame[0], Header)
			}
			if frame[1] != tt.command {
				t.Errorf("frame[1] = 0x%02X, want command 0x%02X", frame[1], tt.command)
			}
			if len(frame) != len(tt.params)+3 {
				t.Errorf("frame length = %d, want %d", len(frame), len(tt.params)+3)
			}
			if fold := CalculateCRC8DVBS2(frame); fold != 0 {
				t.Errorf("frame folds to 0x%02X, want 0x00", fold)
			}
		})
	}
}

func TestVerifyResponseV1(t *testing.T) {
	valid := []byte{0xCC, 0x01, 0x0F, 0x00, 0xE0}
	if !VersionV1.VerifyResponse(valid) {
		t.Error("valid V1 reply rejected")
	}

	// Frames assembled from their own fold must always validate.
	body := []byte{Header, 0x21}
	assembled := append(append([]byte{}, body...), CalculateCRC8DVBS2(body))
	if !VersionV1.VerifyResponse(assembled) {
		t.Error("assembled V1 reply rejected")
	}

	if VersionV1.VerifyResponse(nil) {
		t.Error("empty frame accepted")
	}

	for i := range valid {
		corrupted := append([]byte{}, valid...)
		corrupted[i] ^= 0x40
		if VersionV1.VerifyResponse(corrupted) {
			t.Errorf("corruption at byte %d accepted", i)
		}
	}
}

func TestVerifyResponseLegacy(t *testing.T) {
	valid := []byte{0x55, 0x01, 0x03, 0x01, 0xAA}
	if !VersionLegacy.VerifyResponse(valid) {
		t.Error("valid legacy reply rejected")
	}

	for i := range valid {
		corrupted := append([]byte{}, valid...)
		corrupted[i] ^= 0x40
		if VersionLegacy.VerifyResponse(corrupted) {
			t.Errorf("corruption at byte %d accepted", i)
		}
	}

	if VersionLegacy.VerifyResponse(valid[:4]) {
		t.Error("short frame accepted")
	}
	if VersionLegacy.VerifyResponse(append(append([]byte{}, valid...), 0x00)) {
		t.Error("long frame accepted")
	}
}

func TestVerifyResponseDoesNotMutateFrame(t *testing.T) {
	frame := []byte{0x55, 0x01, 0x03, 0x01, 0xAA}
	before := append([]byte{}, frame...)

	VersionLegacy.VerifyResponse(frame)

	if !bytes.Equal(frame, before) {
		t.Errorf("frame mutated: % X, want % X", frame, before)
	}
}

func TestVerifyResponseUnknownVersion(t *testing.T) {
	body := []byte{Header, 0x01}
	frame := append(append([]byte{}, body...), CalculateCRC8DVBS2(body))

	if VersionUnknown.VerifyResponse(frame) {
		t.Error("unknown version validated a frame")
	}
	if Version(0x7F).VerifyResponse(frame) {
		t.Error("out-of-range version validated a frame")
	}
}

func TestResponseLength(t *testing.T) {
	tests := []struct {
		name     string
		command  byte
		expected int
	}{
		{"device info", CmdGetDeviceInfo, 5},
		{"camera control has no reply", CmdCameraControl, 0},
		{"key press", Cmd5KeySimulationPress, 2},
		{"key release", Cmd5KeySimulationRelease, 2},
		{"connection", Cmd5KeyConnection, 3},
		{"unknown command", 0x7F, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResponseLength(tt.command); got != tt.expected {
				t.Errorf("ResponseLength(0x%02X) = %d, want %d", tt.command, got, tt.expected)
			}
		})
	}
}

func BenchmarkBuildFrame(b *testing.B) {
	params := []byte{ConnectionOpen}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = BuildFrame(Cmd5KeyConnection, params)
	}
}
