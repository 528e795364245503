package protocol

import (
	"encoding/binary"
	"fmt"
)

// buildPacket assembles a command packet around the given argument
// bytes and appends the additive checksum.
//
// Packet structure:
//
//	[0x5A][LEN][CMD][ARGS...][CHECKSUM]
//
// LEN is the total packet size including header and checksum; the
// checksum covers every preceding byte. Arguments are taken as-is and
// must already be in little-endian order.
func buildPacket(cmd byte, args ...byte) []byte {
	size := MinPacketSize + len(args)
	frame := make([]byte, 0, size)
	frame = append(frame, FrameStart)
	frame = append(frame, byte(size))
	frame = append(frame, cmd)
	frame = append(frame, args...)
	frame = append(frame, Checksum(frame))
	return frame
}

// BuildGetVersionCmd constructs a Get Version command packet.
// The sensor replies with a GetVersionResponseSize echo carrying the
// firmware version triple.
func BuildGetVersionCmd() []byte {
	return buildPacket(CmdGetVersion)
}

// BuildSetFrameRateCmd constructs a Set Frame Rate command packet.
// The rate must be one of the enumerated FrameRate values.
func BuildSetFrameRateCmd(rate FrameRate) ([]byte, error) {
	if !rate.Valid() {
		return nil, fmt.Errorf("unsupported frame rate %d Hz", rate)
	}
	var arg [2]byte
	binary.LittleEndian.PutUint16(arg[:], uint16(rate))
	return buildPacket(CmdSetFrameRate, arg[0], arg[1]), nil
}

// BuildSetBaudRateCmd constructs a Set Baud Rate command packet.
// The rate must be one of the enumerated BaudRate values.
func BuildSetBaudRateCmd(rate BaudRate) ([]byte, error) {
	if !rate.Valid() {
		return nil, fmt.Errorf("unsupported baud rate %d", rate)
	}
	var arg [4]byte
	binary.LittleEndian.PutUint32(arg[:], uint32(rate))
	return buildPacket(CmdSetBaudRate, arg[0], arg[1], arg[2], arg[3]), nil
}

// BuildSetOutputFormatCmd constructs a Set Output Format command packet.
func BuildSetOutputFormatCmd(format OutputFormat) ([]byte, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("unsupported output format 0x%02X", byte(format))
	}
	return buildPacket(CmdSetOutputFormat, byte(format)), nil
}

// BuildSetI2CAddressCmd constructs a Set I2C Address command packet.
// The address must fit in 7 bits.
func BuildSetI2CAddressCmd(addr byte) ([]byte, error) {
	if addr&0x80 != 0 {
		return nil, fmt.Errorf("address 0x%02X does not fit in 7 bits", addr)
	}
	return buildPacket(CmdSetI2CAddress, addr), nil
}

// BuildSetCommunicationModeCmd constructs a Set Communication Interface
// command packet. The change only takes effect after a Save Settings
// command succeeds.
func BuildSetCommunicationModeCmd(mode Mode) ([]byte, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unsupported communication mode 0x%02X", byte(mode))
	}
	return buildPacket(CmdSetCommunicationMode, byte(mode)), nil
}

// BuildEnableOutputCmd constructs an Enable Output command packet.
func BuildEnableOutputCmd(enabled bool) []byte {
	return buildPacket(CmdEnableOutput, flagByte(enabled))
}

// BuildGetDataCmd constructs a Get Data command packet for the
// addressed bus. The flag requests millimeter output; the sensor
// treats it as a hint only.
func BuildGetDataCmd(inMillimeters bool) []byte {
	return buildPacket(CmdGetData, flagByte(inMillimeters))
}

// BuildTriggerDetectionCmd constructs a Trigger Detection command
// packet, requesting a single measurement while the frame rate is 0 Hz.
func BuildTriggerDetectionCmd() []byte {
	return buildPacket(CmdTriggerDetection)
}

// BuildSystemResetCmd constructs a System Reset command packet.
func BuildSystemResetCmd() []byte {
	return buildPacket(CmdSystemReset)
}

// BuildFactoryResetCmd constructs a Restore Factory Settings command packet.
func BuildFactoryResetCmd() []byte {
	return buildPacket(CmdFactoryReset)
}

// BuildSaveSettingsCmd constructs a Save Settings command packet.
func BuildSaveSettingsCmd() []byte {
	return buildPacket(CmdSaveSettings)
}

// BuildSetIOModeCmd constructs a Set IO Mode command packet.
// criticalDistance and hysteresis are in the sensor's current distance
// unit and only apply to the alarm modes.
func BuildSetIOModeCmd(mode IOMode, criticalDistance, hysteresis uint16) ([]byte, error) {
	if mode != IOModeStandard {
		return nil, fmt.Errorf("unsupported io mode 0x%02X", byte(mode))
	}
	var dist, hyst [2]byte
	binary.LittleEndian.PutUint16(dist[:], criticalDistance)
	binary.LittleEndian.PutUint16(hyst[:], hysteresis)
	return buildPacket(CmdSetIOMode, byte(mode), dist[0], dist[1], hyst[0], hyst[1]), nil
}

func flagByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
