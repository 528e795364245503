package driver

import (
	"errors"
	"fmt"
)

// TransmissionError indicates the transport accepted fewer bytes than
// the command packet contains.
type TransmissionError struct {
	// Requested is the packet size
	Requested int

	// Written is the number of bytes the transport accepted
	Written int
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("transmission incomplete: wrote %d of %d bytes", e.Written, e.Requested)
}

// NotAcknowledgedError indicates a structurally valid response whose
// echoed arguments differ from what was sent, meaning the sensor did
// not apply the setting.
type NotAcknowledgedError struct {
	// Operation is the command that failed
	Operation string

	// Sent are the argument bytes that were transmitted
	Sent []byte

	// Echoed are the argument bytes the sensor returned
	Echoed []byte
}

func (e *NotAcknowledgedError) Error() string {
	return fmt.Sprintf("%s not acknowledged: sent % 02X, sensor echoed % 02X", e.Operation, e.Sent, e.Echoed)
}

// IsNotAcknowledged returns true if the error is a NotAcknowledgedError.
func IsNotAcknowledged(err error) bool {
	var ackErr *NotAcknowledgedError
	return errors.As(err, &ackErr)
}

// StatusError indicates the sensor reported a nonzero status byte for a
// command that replies with a status response.
type StatusError struct {
	// Operation is the command that failed
	Operation string

	// Status is the nonzero status byte from the sensor
	Status byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with status 0x%02X", e.Operation, e.Status)
}
