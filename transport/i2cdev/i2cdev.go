//go:build linux

package i2cdev

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ioctlSlave is I2C_SLAVE from <linux/i2c-dev.h>: select the target
// device address for subsequent plain read/write calls.
const ioctlSlave = 0x0703

// Bus is a Transport over a Linux i2c-dev character device. Each write
// is one addressed bus write and each ReadExact is one addressed bus
// read, so framing is delimited by the transfer length and no stream
// resynchronization is needed.
type Bus struct {
	file *os.File
	addr byte
}

// Open opens the i2c-dev device (e.g. "/dev/i2c-1") and targets the
// sensor at addr (7-bit).
func Open(device string, addr byte) (*Bus, error) {
	file, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open i2c device: %w", err)
	}

	b := &Bus{file: file}
	if err := b.SetTarget(addr); err != nil {
		file.Close()
		return nil, err
	}
	return b, nil
}

// SetTarget selects the 7-bit device address for subsequent transfers.
// The driver calls this after the sensor acknowledges a Set I2C Address
// command.
func (b *Bus) SetTarget(addr byte) error {
	if addr&0x80 != 0 {
		return fmt.Errorf("address 0x%02X does not fit in 7 bits", addr)
	}
	if err := unix.IoctlSetInt(int(b.file.Fd()), ioctlSlave, int(addr)); err != nil {
		return fmt.Errorf("select i2c target 0x%02X: %w", addr, err)
	}
	b.addr = addr
	return nil
}

// Target returns the currently selected device address.
func (b *Bus) Target() byte {
	return b.addr
}

// Write performs one addressed bus write of the whole packet.
func (b *Bus) Write(p []byte) (int, error) {
	n, err := b.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("i2c write: %w", err)
	}
	return n, nil
}

// ReadExact performs one addressed bus read of len(p) bytes. The kernel
// issues a single fixed-length transfer, so a short count means the
// device ended the transfer early.
func (b *Bus) ReadExact(p []byte) (int, error) {
	n, err := b.file.Read(p)
	if err != nil {
		return n, fmt.Errorf("i2c read: %w", err)
	}
	return n, nil
}

// Close closes the underlying device file.
func (b *Bus) Close() error {
	return b.file.Close()
}
