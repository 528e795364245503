package driver

// Transport is the byte channel connecting the driver to the sensor.
// The driver borrows the transport for its lifetime but never owns it;
// opening, closing, and pin assignment are the caller's concern.
//
// Implementations for common hardware live under transport/; any
// implementation works, including in-memory fakes for testing.
type Transport interface {
	// Write sends the packet and returns the number of bytes written.
	Write(p []byte) (n int, err error)

	// ReadExact blocks until len(p) bytes arrive or the underlying
	// channel gives up (e.g. a read timeout), returning however many
	// bytes it collected.
	ReadExact(p []byte) (n int, err error)
}

// StreamTransport is a Transport with no inherent message boundaries,
// such as a UART. Available lets the frame resynchronizer know when the
// stream is exhausted instead of blocking forever on garbage input.
type StreamTransport interface {
	Transport

	// Available returns the number of bytes readable without blocking.
	Available() int
}

// Addressable is implemented by addressed-bus transports that can be
// retargeted to a different device address. When the borrowed transport
// implements it, the driver retargets the bus after the sensor
// acknowledges a Set I2C Address command.
type Addressable interface {
	// SetTarget selects the 7-bit device address for subsequent transfers.
	SetTarget(addr byte) error
}
