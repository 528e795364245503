package protocol

import (
	"bytes"
	"testing"
)

func TestBuildSetFrameRateCmd(t *testing.T) {
	tests := []struct {
		name     string
		rate     FrameRate
		expected []byte
		wantErr  bool
	}{
		{
			name:     "10 Hz",
			rate:     FrameRate10Hz,
			expected: []byte{0x5A, 0x06, 0x03, 0x0A, 0x00, 0x6D},
		},
		{
			name:     "1000 Hz is little-endian",
			rate:     FrameRate1000Hz,
			expected: []byte{0x5A, 0x06, 0x03, 0xE8, 0x03, 0x4E},
		},
		{
			name:     "trigger-only rate",
			rate:     FrameRate0Hz,
			expected: []byte{0x5A, 0x06, 0x03, 0x00, 0x00, 0x63},
		},
		{
			name:    "unsupported rate",
			rate:    FrameRate(42),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet, err := BuildSetFrameRateCmd(tt.rate)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(packet, tt.expected) {
				t.Errorf("packet = % 02X, want % 02X", packet, tt.expected)
			}
		})
	}
}

func TestBuildSetBaudRateCmd(t *testing.T) {
	tests := []struct {
		name     string
		rate     BaudRate
		expected []byte
		wantErr  bool
	}{
		{
			name: "115200",
			// 115200 = 0x0001C200
			expected: []byte{0x5A, 0x08, 0x06, 0x00, 0xC2, 0x01, 0x00, 0x2B},
			rate:     BaudRate115200,
		},
		{
			name:     "9600",
			expected: []byte{0x5A, 0x08, 0x06, 0x80, 0x25, 0x00, 0x00, 0x0D},
			rate:     BaudRate9600,
		},
		{
			name:    "unsupported rate",
			rate:    BaudRate(14400),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packet, err := BuildSetBaudRateCmd(tt.rate)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(packet, tt.expected) {
				t.Errorf("packet = % 02X, want % 02X", packet, tt.expected)
			}
		})
	}
}

func TestBuildArgumentlessCmds(t *testing.T) {
	tests := []struct {
		name     string
		packet   []byte
		expected []byte
	}{
		{
			name:     "get version",
			packet:   BuildGetVersionCmd(),
			expected: []byte{0x5A, 0x04, 0x01, 0x5F},
		},
		{
			name:     "trigger detection",
			packet:   BuildTriggerDetectionCmd(),
			expected: []byte{0x5A, 0x04, 0x04, 0x62},
		},
		{
			name:     "system reset",
			packet:   BuildSystemResetCmd(),
			expected: []byte{0x5A, 0x04, 0x02, 0x60},
		},
		{
			name:     "factory reset",
			packet:   BuildFactoryResetCmd(),
			expected: []byte{0x5A, 0x04, 0x10, 0x6E},
		},
		{
			name:     "save settings",
			packet:   BuildSaveSettingsCmd(),
			expected: []byte{0x5A, 0x04, 0x11, 0x6F},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.packet, tt.expected) {
				t.Errorf("packet = % 02X, want % 02X", tt.packet, tt.expected)
			}
		})
	}
}

func TestBuildSetI2CAddressCmd(t *testing.T) {
	packet, err := BuildSetI2CAddressCmd(0x20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []byte{0x5A, 0x05, 0x0B, 0x20, 0x8A}
	if !bytes.Equal(packet, expected) {
		t.Errorf("packet = % 02X, want % 02X", packet, expected)
	}

	if _, err := BuildSetI2CAddressCmd(0x90); err == nil {
		t.Error("expected error for 8-bit address, got nil")
	}
}

func TestBuildFlagCmds(t *testing.T) {
	tests := []struct {
		name     string
		packet   []byte
		expected []byte
	}{
		{
			name:     "enable output",
			packet:   BuildEnableOutputCmd(true),
			expected: []byte{0x5A, 0x05, 0x07, 0x01, 0x67},
		},
		{
			name:     "disable output",
			packet:   BuildEnableOutputCmd(false),
			expected: []byte{0x5A, 0x05, 0x07, 0x00, 0x66},
		},
		{
			name:     "get data in millimeters",
			packet:   BuildGetDataCmd(true),
			expected: []byte{0x5A, 0x05, 0x00, 0x01, 0x60},
		},
		{
			name:     "get data in configured unit",
			packet:   BuildGetDataCmd(false),
			expected: []byte{0x5A, 0x05, 0x00, 0x00, 0x5F},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.packet, tt.expected) {
				t.Errorf("packet = % 02X, want % 02X", tt.packet, tt.expected)
			}
		})
	}
}

func TestBuildSetOutputFormatCmd(t *testing.T) {
	packet, err := BuildSetOutputFormatCmd(OutputMM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []byte{0x5A, 0x05, 0x05, 0x06, 0x6A}
	if !bytes.Equal(packet, expected) {
		t.Errorf("packet = % 02X, want % 02X", packet, expected)
	}

	if _, err := BuildSetOutputFormatCmd(OutputFormat(0x03)); err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}

func TestBuildSetCommunicationModeCmd(t *testing.T) {
	packet, err := BuildSetCommunicationModeCmd(ModeI2C)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []byte{0x5A, 0x05, 0x0A, 0x01, 0x6A}
	if !bytes.Equal(packet, expected) {
		t.Errorf("packet = % 02X, want % 02X", packet, expected)
	}

	if _, err := BuildSetCommunicationModeCmd(Mode(0x07)); err == nil {
		t.Error("expected error for unknown mode, got nil")
	}
}

func TestBuildSetIOModeCmd(t *testing.T) {
	packet, err := BuildSetIOModeCmd(IOModeStandard, 0x0123, 0x0045)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packet) != SetIOModePacketSize {
		t.Fatalf("packet size = %d, want %d", len(packet), SetIOModePacketSize)
	}
	if packet[1] != SetIOModePacketSize {
		t.Errorf("length byte = %d, want %d", packet[1], SetIOModePacketSize)
	}
	// mode, then critical distance and hysteresis little-endian
	args := packet[3 : len(packet)-1]
	expected := []byte{0x00, 0x23, 0x01, 0x45, 0x00}
	if !bytes.Equal(args, expected) {
		t.Errorf("arguments = % 02X, want % 02X", args, expected)
	}
	if !VerifyChecksum(packet) {
		t.Errorf("packet checksum invalid: % 02X", packet)
	}
}

// Every builder must produce a packet whose length byte matches its
// actual size and whose checksum seals all preceding bytes.
func TestBuiltPacketsAreSelfConsistent(t *testing.T) {
	frameRate, _ := BuildSetFrameRateCmd(FrameRate100Hz)
	baudRate, _ := BuildSetBaudRateCmd(BaudRate115200)
	format, _ := BuildSetOutputFormatCmd(OutputCM)
	address, _ := BuildSetI2CAddressCmd(DefaultI2CAddress)
	mode, _ := BuildSetCommunicationModeCmd(ModeUART)
	ioMode, _ := BuildSetIOModeCmd(IOModeStandard, 0, 0)

	packets := map[string][]byte{
		"get version":       BuildGetVersionCmd(),
		"set frame rate":    frameRate,
		"set baud rate":     baudRate,
		"set output format": format,
		"set i2c address":   address,
		"set comm mode":     mode,
		"enable output":     BuildEnableOutputCmd(true),
		"get data":          BuildGetDataCmd(false),
		"trigger detection": BuildTriggerDetectionCmd(),
		"system reset":      BuildSystemResetCmd(),
		"factory reset":     BuildFactoryResetCmd(),
		"save settings":     BuildSaveSettingsCmd(),
		"set io mode":       ioMode,
	}

	for name, packet := range packets {
		if packet[0] != FrameStart {
			t.Errorf("%s: frame start = 0x%02X, want 0x%02X", name, packet[0], byte(FrameStart))
		}
		if int(packet[1]) != len(packet) {
			t.Errorf("%s: length byte = %d, actual size %d", name, packet[1], len(packet))
		}
		if !VerifyChecksum(packet) {
			t.Errorf("%s: checksum invalid: % 02X", name, packet)
		}
	}
}
