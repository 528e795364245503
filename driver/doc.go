// Package driver provides a high-level API for a TFmini Plus ranging sensor.
//
// # Overview
//
// The driver runs the sensor's command/response protocol over a
// caller-supplied byte transport: it encodes commands, waits out the
// bus-settle delay where the addressed bus needs one, validates the
// echoed response, and only then reports success or updates session
// state.
//
// # Basic Usage
//
// Over a serial port:
//
//	port, err := serialport.Open(serialport.Config{Device: "/dev/ttyUSB0", Baud: 115200})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	dev := driver.NewUART(port)
//	m, err := dev.ReadMeasurement(context.Background(), false)
//
// Over the addressed bus:
//
//	bus, err := i2cdev.Open("/dev/i2c-1", protocol.DefaultI2CAddress)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
//
//	dev := driver.NewI2C(bus, protocol.DefaultI2CAddress)
//	version, err := dev.Version(context.Background())
//
// # Session State
//
// A Device tracks the communication mode and bus address it was
// constructed with. Configuration operations that change them
// (SetI2CAddress, SetCommunicationMode) update the session only after
// the sensor acknowledges the change, so a failed call never leaves the
// driver pointing at the wrong address or interface.
//
// # Concurrency
//
// The protocol carries no request identifiers, so overlapping commands
// would corrupt response correlation. A Device performs no internal
// locking; callers must serialize access, for example by confining a
// Device to one goroutine.
//
// # Error Handling
//
// All failures are returned as errors, never panics, and no operation
// retries on its own. Structured error types:
//   - TransmissionError: the transport accepted a short write
//   - NotAcknowledgedError: the sensor echoed different argument bytes
//   - StatusError: the sensor reported a nonzero status
//   - protocol.LengthMismatchError, protocol.ChecksumMismatchError,
//     protocol.UnexpectedEchoError: structural response defects
//   - protocol.ErrSyncTimeout: no measurement frame found in the stream
//
// A failed call leaves the Device usable; the transport is assumed to
// recover its own byte boundary before the next exchange.
//
// # Hardware Independence
//
// This package does NOT open hardware. Users provide a Transport (and
// StreamTransport for UART); ready-made implementations live in
// transport/serialport and transport/i2cdev.
package driver
