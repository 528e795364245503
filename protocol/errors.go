package protocol

import (
	"errors"
	"fmt"
)

// ErrSyncTimeout indicates the byte stream was exhausted before a
// complete measurement frame could be located.
var ErrSyncTimeout = errors.New("stream exhausted before a measurement frame was found")

// LengthMismatchError indicates a response whose size disagrees with
// what the command catalog expects, either because the transport
// delivered the wrong number of bytes or because the embedded length
// byte is inconsistent.
type LengthMismatchError struct {
	// Got is the length observed (declared or received)
	Got int

	// Want is the length the command catalog expects
	Want int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: got %d bytes, want %d", e.Got, e.Want)
}

// ChecksumMismatchError indicates a response whose trailing checksum
// byte does not match the checksum of the preceding bytes.
type ChecksumMismatchError struct {
	// Got is the checksum byte carried by the frame
	Got byte

	// Want is the checksum computed over the frame contents
	Want byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: got 0x%02X, want 0x%02X", e.Got, e.Want)
}

// UnexpectedEchoError indicates a response that echoes a different
// command code than the one just issued.
type UnexpectedEchoError struct {
	// Got is the command code carried by the response
	Got byte

	// Want is the command code that was sent
	Want byte
}

func (e *UnexpectedEchoError) Error() string {
	return fmt.Sprintf("unexpected command echo: got 0x%02X, want 0x%02X", e.Got, e.Want)
}
