// Package protocol implements the TFmini Plus command/response wire protocol.
//
// This package provides functions to build command packets, validate
// response packets, and recover frame boundaries on unframed byte
// streams.
//
// # Protocol Overview
//
// The sensor exchanges two frame kinds:
//
//	Command / echo: [0x5A][LEN][CMD][ARGS...][CHECKSUM]
//	Measurement:    [0x59][0x59][DIST_L][DIST_H][STR_L][STR_H][TEMP_L][TEMP_H]
//
// Where:
//   - LEN = total packet size including header and checksum
//   - CHECKSUM = low 8 bits of the sum of all preceding bytes
//   - multi-byte arguments and fields are little-endian
//
// Measurement frames carry no checksum byte and use a distinct header
// pattern so they can be located mid-stream.
//
// # Command Builders
//
// Use the Build* functions to create command packets:
//
//	packet := protocol.BuildGetVersionCmd()
//	packet, err := protocol.BuildSetFrameRateCmd(protocol.FrameRate100Hz)
//	// ... etc
//
// # Response Parsers
//
// Use ParseResponse to validate a command echo and extract its payload:
//
//	cmd, payload, err := protocol.ParseResponse(frame, protocol.GetVersionResponseSize)
//
// Then use the Parse* functions for command-specific payloads:
//
//	version, err := protocol.ParseVersionResponse(payload)
//	status, err := protocol.ParseStatusResponse(payload)
//
// Measurement frames are decoded whole:
//
//	m, err := protocol.ParseMeasurementFrame(frame)
//
// # Stream Resynchronization
//
// UART delivers measurement frames with no framing guarantees. Use
// SyncMeasurementFrame to discard stale bytes and read the next
// complete frame:
//
//	frame, err := protocol.SyncMeasurementFrame(stream)
//	if errors.Is(err, protocol.ErrSyncTimeout) {
//	    // stream exhausted without a complete frame
//	}
package protocol
