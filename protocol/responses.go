package protocol

import (
	"fmt"
)

// ParseResponse validates a command-echo response and extracts its
// argument payload.
//
// Response structure (same layout as a command packet):
//
//	[0x5A][LEN][CMD][PAYLOAD...][CHECKSUM]
//
// The frame is rejected when its size or embedded length byte disagrees
// with wantSize, or when the trailing checksum does not match. The
// returned payload aliases the input frame; it is the bytes between the
// command code and the checksum.
func ParseResponse(frame []byte, wantSize int) (cmd byte, payload []byte, err error) {
	if len(frame) != wantSize {
		return 0, nil, &LengthMismatchError{Got: len(frame), Want: wantSize}
	}
	if len(frame) < MinPacketSize {
		return 0, nil, fmt.Errorf("response too short: got %d bytes, minimum is %d", len(frame), MinPacketSize)
	}
	if frame[0] != FrameStart {
		return 0, nil, fmt.Errorf("invalid frame start: got 0x%02X, expected 0x%02X", frame[0], FrameStart)
	}
	if int(frame[posLength]) != wantSize {
		return 0, nil, &LengthMismatchError{Got: int(frame[posLength]), Want: wantSize}
	}
	if !VerifyChecksum(frame) {
		return 0, nil, &ChecksumMismatchError{
			Got:  frame[len(frame)-1],
			Want: Checksum(frame[:len(frame)-1]),
		}
	}
	return frame[posCommand], frame[posPayload : len(frame)-1], nil
}

// ParseVersionResponse decodes the Get Version echo payload.
//
// Payload format (3 bytes):
//
//	[REVISION][MINOR][MAJOR]
func ParseVersionResponse(payload []byte) (Version, error) {
	if len(payload) != 3 {
		return Version{}, fmt.Errorf("invalid version payload: got %d bytes, expected 3", len(payload))
	}
	return Version{
		Revision: payload[0],
		Minor:    payload[1],
		Major:    payload[2],
	}, nil
}

// ParseStatusResponse decodes the single status byte echoed by Save
// Settings, System Reset, and Restore Factory Settings. Zero means the
// command was applied.
func ParseStatusResponse(payload []byte) (byte, error) {
	if len(payload) != 1 {
		return 0, fmt.Errorf("invalid status payload: got %d bytes, expected 1", len(payload))
	}
	return payload[0], nil
}

// ParseMeasurementFrame decodes a measurement frame.
//
// Frame format (MeasurementFrameSize bytes, little-endian fields):
//
//	[0x59][0x59][DIST_L][DIST_H][STRENGTH_L][STRENGTH_H][TEMP_L][TEMP_H]
//
// This frame kind carries no checksum byte, so only the header pattern
// and size are validated.
func ParseMeasurementFrame(frame []byte) (Measurement, error) {
	if len(frame) != MeasurementFrameSize {
		return Measurement{}, &LengthMismatchError{Got: len(frame), Want: MeasurementFrameSize}
	}
	if frame[0] != MeasurementHeader || frame[1] != MeasurementHeader {
		return Measurement{}, fmt.Errorf("invalid measurement header: got 0x%02X 0x%02X, expected 0x%02X 0x%02X",
			frame[0], frame[1], byte(MeasurementHeader), byte(MeasurementHeader))
	}
	return Measurement{
		Distance:    uint16(frame[2]) | uint16(frame[3])<<8,
		Strength:    uint16(frame[4]) | uint16(frame[5])<<8,
		Temperature: uint16(frame[6]) | uint16(frame[7])<<8,
	}, nil
}
