// Package serialport adapts a UART serial port to the driver's
// StreamTransport contract.
package serialport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// fillChunk is how many bytes Available drains from the port per probe.
const fillChunk = 64

// port is the subset of *serial.Port the adapter needs; split out so
// the buffering logic is testable without hardware.
type port interface {
	io.ReadWriter
	Flush() error
	Close() error
}

// Config describes the serial port to open.
type Config struct {
	// Device is the port path, e.g. "/dev/ttyUSB0"
	Device string

	// Baud is the line rate; the sensor ships at 115200
	Baud int

	// ReadTimeout bounds each blocking read. It doubles as the
	// stream-exhaustion signal for frame resynchronization, so keep it
	// comfortably above one frame interval. Defaults to one second.
	ReadTimeout time.Duration
}

// Port is a StreamTransport over a UART serial port. It keeps an
// internal buffer of bytes already drained from the port so that
// Available can answer without consuming the stream.
type Port struct {
	port port
	buf  []byte
}

// Open opens the configured serial port.
func Open(cfg Config) (*Port, error) {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = time.Second
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}
	return &Port{port: p}, nil
}

// Write sends the packet down the wire.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// ReadExact blocks until len(b) bytes arrive or the port read times
// out, returning however many bytes were collected. Bytes already
// drained into the internal buffer are served first.
func (p *Port) ReadExact(b []byte) (int, error) {
	n := copy(b, p.buf)
	p.buf = p.buf[n:]

	for n < len(b) {
		m, err := p.port.Read(b[n:])
		n += m
		if err != nil {
			if errors.Is(err, io.EOF) {
				// read timeout: the port has gone quiet
				return n, nil
			}
			return n, err
		}
		if m == 0 {
			return n, nil
		}
	}
	return n, nil
}

// Available reports how many bytes can be read without blocking,
// topping the internal buffer up with a single timed read when it is
// empty.
func (p *Port) Available() int {
	if len(p.buf) == 0 {
		chunk := make([]byte, fillChunk)
		n, _ := p.port.Read(chunk)
		p.buf = append(p.buf, chunk[:n]...)
	}
	return len(p.buf)
}

// Flush discards both the internal buffer and anything pending in the
// port's own buffers, so the next read starts from live data.
func (p *Port) Flush() error {
	p.buf = nil
	return p.port.Flush()
}

// Close closes the underlying port.
func (p *Port) Close() error {
	return p.port.Close()
}
