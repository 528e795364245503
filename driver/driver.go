package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/openrover/go-tfminiplus/protocol"
)

// Device drives a single TFmini Plus ranging sensor over a borrowed
// transport. It keeps the communication-mode and bus-address session
// state and mutates it only after the sensor acknowledges the
// corresponding configuration command.
//
// The protocol has no request identifiers, so a Device supports exactly
// one outstanding command at a time; callers must serialize access.
type Device struct {
	transport Transport
	stream    StreamTransport // non-nil only in UART mode
	config    Config

	mode    protocol.Mode
	address byte
}

// NewUART creates a Device speaking over a stream-oriented serial
// transport. The transport must outlive the Device.
//
// Example:
//
//	port, err := serialport.Open(serialport.Config{Device: "/dev/ttyUSB0", Baud: 115200})
//	dev := driver.NewUART(port)
func NewUART(stream StreamTransport, opts ...Option) *Device {
	if stream == nil {
		panic("stream cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		transport: stream,
		stream:    stream,
		config:    cfg,
		mode:      protocol.ModeUART,
	}
}

// NewI2C creates a Device speaking over an addressed-register bus
// transport targeting the sensor at addr (7-bit). The transport must
// outlive the Device.
//
// Example:
//
//	bus, err := i2cdev.Open("/dev/i2c-1", protocol.DefaultI2CAddress)
//	dev := driver.NewI2C(bus, protocol.DefaultI2CAddress)
func NewI2C(transport Transport, addr byte, opts ...Option) *Device {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		transport: transport,
		config:    cfg,
		mode:      protocol.ModeI2C,
		address:   addr & 0x7F,
	}
}

// Mode returns the communication mode of the current session.
func (d *Device) Mode() protocol.Mode {
	return d.mode
}

// Address returns the sensor's bus address for the current session.
// Meaningful only in I2C mode.
func (d *Device) Address() byte {
	return d.address
}

// Version queries the sensor firmware version.
func (d *Device) Version(ctx context.Context) (protocol.Version, error) {
	payload, err := d.command(ctx, "get version",
		protocol.BuildGetVersionCmd(), protocol.CmdGetVersion, protocol.GetVersionResponseSize)
	if err != nil {
		return protocol.Version{}, err
	}

	version, err := protocol.ParseVersionResponse(payload)
	if err != nil {
		return protocol.Version{}, fmt.Errorf("get version: %w", err)
	}

	d.logDebug("firmware version", "version", version.String())
	return version, nil
}

// SetFrameRate sets the measurement output rate. A rate of 0 Hz
// disables periodic output; use TriggerMeasurement instead.
func (d *Device) SetFrameRate(ctx context.Context, rate protocol.FrameRate) error {
	packet, err := protocol.BuildSetFrameRateCmd(rate)
	if err != nil {
		return fmt.Errorf("set frame rate: %w", err)
	}
	return d.setting(ctx, "set frame rate", packet, protocol.CmdSetFrameRate)
}

// SetBaudRate sets the UART line rate. The new rate takes effect on the
// sensor side immediately; reopening the serial port at the new rate is
// the caller's responsibility.
func (d *Device) SetBaudRate(ctx context.Context, rate protocol.BaudRate) error {
	packet, err := protocol.BuildSetBaudRateCmd(rate)
	if err != nil {
		return fmt.Errorf("set baud rate: %w", err)
	}
	return d.setting(ctx, "set baud rate", packet, protocol.CmdSetBaudRate)
}

// SetOutputFormat selects the measurement frame format. The sensor
// echoes acceptance but has been observed to keep reporting centimeters
// on the addressed bus, so treat the unit as a hint rather than a
// guarantee.
func (d *Device) SetOutputFormat(ctx context.Context, format protocol.OutputFormat) error {
	packet, err := protocol.BuildSetOutputFormatCmd(format)
	if err != nil {
		return fmt.Errorf("set output format: %w", err)
	}
	return d.setting(ctx, "set output format", packet, protocol.CmdSetOutputFormat)
}

// EnableOutput enables or disables measurement output.
func (d *Device) EnableOutput(ctx context.Context, enabled bool) error {
	return d.setting(ctx, "enable output",
		protocol.BuildEnableOutputCmd(enabled), protocol.CmdEnableOutput)
}

// SetI2CAddress assigns a new 7-bit bus address. The session address is
// updated only after the sensor echoes the new address back; when the
// transport supports retargeting, the bus is pointed at the new address
// as well.
func (d *Device) SetI2CAddress(ctx context.Context, addr byte) error {
	packet, err := protocol.BuildSetI2CAddressCmd(addr)
	if err != nil {
		return fmt.Errorf("set i2c address: %w", err)
	}
	if err := d.setting(ctx, "set i2c address", packet, protocol.CmdSetI2CAddress); err != nil {
		return err
	}

	if a, ok := d.transport.(Addressable); ok {
		if err := a.SetTarget(addr); err != nil {
			return fmt.Errorf("set i2c address: retarget bus: %w", err)
		}
	}
	d.address = addr
	d.logInfo("i2c address changed", "address", fmt.Sprintf("0x%02X", addr))
	return nil
}

// SetCommunicationMode switches the sensor between UART and I2C. The
// sensor only applies the change after an explicit Save Settings, so
// the command is written, settings are saved, and the session mode
// flips only once the save is acknowledged. The caller must then swap
// the physical transport; subsequent calls on the old transport will
// fail.
func (d *Device) SetCommunicationMode(ctx context.Context, mode protocol.Mode) error {
	packet, err := protocol.BuildSetCommunicationModeCmd(mode)
	if err != nil {
		return fmt.Errorf("set communication mode: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.send(packet); err != nil {
		return fmt.Errorf("set communication mode: %w", err)
	}

	if err := d.SaveSettings(ctx); err != nil {
		return fmt.Errorf("set communication mode: %w", err)
	}

	d.mode = mode
	d.logInfo("communication mode changed", "mode", mode.String())
	return nil
}

// SetIOMode configures the alarm output pin. The sensor does not echo
// this command; pair it with SaveSettings to persist the change.
func (d *Device) SetIOMode(ctx context.Context, mode protocol.IOMode, criticalDistance, hysteresis uint16) error {
	packet, err := protocol.BuildSetIOModeCmd(mode, criticalDistance, hysteresis)
	if err != nil {
		return fmt.Errorf("set io mode: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.send(packet); err != nil {
		return fmt.Errorf("set io mode: %w", err)
	}
	return nil
}

// SaveSettings persists the current configuration to the sensor's
// non-volatile storage.
func (d *Device) SaveSettings(ctx context.Context) error {
	return d.statusCommand(ctx, "save settings",
		protocol.BuildSaveSettingsCmd(), protocol.CmdSaveSettings)
}

// Reset soft-resets the sensor.
func (d *Device) Reset(ctx context.Context) error {
	return d.statusCommand(ctx, "system reset",
		protocol.BuildSystemResetCmd(), protocol.CmdSystemReset)
}

// FactoryReset restores the sensor's factory settings. The session
// state is left untouched; the sensor keeps its current interface and
// address until reset.
func (d *Device) FactoryReset(ctx context.Context) error {
	return d.statusCommand(ctx, "factory reset",
		protocol.BuildFactoryResetCmd(), protocol.CmdFactoryReset)
}

// ReadMeasurement retrieves one measurement frame. Over UART the frame
// is located in the periodic output stream; on the addressed bus a Get
// Data command stages the frame first. inMillimeters asks the sensor
// for millimeter output on the addressed bus, as a best-effort hint.
//
// No settle delay applies to measurement retrieval.
func (d *Device) ReadMeasurement(ctx context.Context, inMillimeters bool) (protocol.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return protocol.Measurement{}, err
	}

	if d.mode == protocol.ModeI2C {
		if err := d.send(protocol.BuildGetDataCmd(inMillimeters)); err != nil {
			return protocol.Measurement{}, fmt.Errorf("get data: %w", err)
		}
	}
	return d.readMeasurementFrame("get data")
}

// TriggerMeasurement requests a single measurement while the frame rate
// is set to 0 Hz and returns the resulting frame.
func (d *Device) TriggerMeasurement(ctx context.Context) (protocol.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return protocol.Measurement{}, err
	}

	if err := d.send(protocol.BuildTriggerDetectionCmd()); err != nil {
		return protocol.Measurement{}, fmt.Errorf("trigger detection: %w", err)
	}
	d.settle()
	return d.readMeasurementFrame("trigger detection")
}

// setting runs a configuration exchange whose response must echo the
// sent argument bytes exactly.
func (d *Device) setting(ctx context.Context, op string, packet []byte, cmd byte) error {
	payload, err := d.command(ctx, op, packet, cmd, len(packet))
	if err != nil {
		return err
	}

	sent := packet[3 : len(packet)-1]
	if !bytes.Equal(payload, sent) {
		d.logError("setting not acknowledged", "operation", op,
			"sent", fmt.Sprintf("% 02X", sent), "echoed", fmt.Sprintf("% 02X", payload))
		return &NotAcknowledgedError{Operation: op, Sent: sent, Echoed: payload}
	}

	d.logDebug("setting applied", "operation", op)
	return nil
}

// statusCommand runs an exchange whose response carries a single status
// byte, zero meaning success.
func (d *Device) statusCommand(ctx context.Context, op string, packet []byte, cmd byte) error {
	payload, err := d.command(ctx, op, packet, cmd, protocol.StatusResponseSize)
	if err != nil {
		return err
	}

	status, err := protocol.ParseStatusResponse(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if status != 0 {
		return &StatusError{Operation: op, Status: status}
	}
	return nil
}

// command performs one atomic request/response exchange: write the
// packet, settle if on the addressed bus, read the expected echo size,
// and validate structure and command code. Returns the echo payload.
func (d *Device) command(ctx context.Context, op string, packet []byte, cmd byte, wantSize int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := d.send(packet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	d.settle()

	frame := make([]byte, wantSize)
	n, err := d.transport.ReadExact(frame)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}

	echoed, payload, err := protocol.ParseResponse(frame[:n], wantSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if echoed != cmd {
		return nil, fmt.Errorf("%s: %w", op, &protocol.UnexpectedEchoError{Got: echoed, Want: cmd})
	}
	return payload, nil
}

// send writes one command packet to the transport.
func (d *Device) send(packet []byte) error {
	n, err := d.transport.Write(packet)
	if err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	if n != len(packet) {
		return &TransmissionError{Requested: len(packet), Written: n}
	}
	return nil
}

// settle pauses long enough for the sensor to stage its reply. Only the
// addressed bus needs this; UART replies arrive as a stream.
func (d *Device) settle() {
	if d.mode == protocol.ModeI2C && d.config.SettleDelay > 0 {
		d.config.sleep(d.config.SettleDelay)
	}
}

// readMeasurementFrame reads and decodes one measurement frame using
// the framing the current transport provides: resynchronization on the
// raw stream in UART mode, a fixed-length register transfer on the
// addressed bus.
func (d *Device) readMeasurementFrame(op string) (protocol.Measurement, error) {
	var frame []byte
	if d.mode == protocol.ModeUART {
		var err error
		frame, err = protocol.SyncMeasurementFrame(d.stream)
		if err != nil {
			return protocol.Measurement{}, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		frame = make([]byte, protocol.MeasurementFrameSize)
		n, err := d.transport.ReadExact(frame)
		if err != nil && !errors.Is(err, io.EOF) {
			return protocol.Measurement{}, fmt.Errorf("%s: read frame: %w", op, err)
		}
		frame = frame[:n]
	}

	m, err := protocol.ParseMeasurementFrame(frame)
	if err != nil {
		return protocol.Measurement{}, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// logDebug logs a debug message if a logger is configured.
func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (d *Device) logError(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, keysAndValues...)
	}
}
