package protocol

// Frame markers.
const (
	// FrameStart is the header byte of every command packet and
	// command-echo response (0x5A)
	FrameStart = 0x5A

	// MeasurementHeader is the byte repeated twice at the start of a
	// measurement frame (0x59, 0x59)
	MeasurementHeader = 0x59
)

// Packet geometry.
const (
	// MinPacketSize is the size of an argument-less command packet:
	// header(1) + length(1) + command(1) + checksum(1)
	MinPacketSize = 4

	// MeasurementFrameSize is the total size of a measurement frame.
	// Unlike command echoes, this frame kind carries no checksum byte.
	MeasurementFrameSize = 8

	// MaxPacketSize is the largest packet the sensor exchanges
	// (Set IO Mode, 5 argument bytes)
	MaxPacketSize = 9
)

// Byte positions within a command packet or command-echo response.
const (
	posLength  = 1
	posCommand = 2
	posPayload = 3
)

// Command codes understood by the sensor.
const (
	// CmdGetData requests a measurement frame (addressed bus only;
	// over UART frames arrive unsolicited)
	CmdGetData = 0x00

	// CmdGetVersion queries the firmware version triple
	CmdGetVersion = 0x01

	// CmdSystemReset soft-resets the sensor
	CmdSystemReset = 0x02

	// CmdSetFrameRate sets the measurement output rate
	CmdSetFrameRate = 0x03

	// CmdTriggerDetection requests a single measurement when the frame
	// rate is set to 0 Hz
	CmdTriggerDetection = 0x04

	// CmdSetOutputFormat selects the measurement frame format
	CmdSetOutputFormat = 0x05

	// CmdSetBaudRate sets the UART baud rate
	CmdSetBaudRate = 0x06

	// CmdEnableOutput enables or disables measurement output
	CmdEnableOutput = 0x07

	// CmdSetCommunicationMode switches between UART and I2C
	CmdSetCommunicationMode = 0x0A

	// CmdSetI2CAddress assigns a new 7-bit bus address
	CmdSetI2CAddress = 0x0B

	// CmdFactoryReset restores factory settings
	CmdFactoryReset = 0x10

	// CmdSaveSettings persists the current configuration
	CmdSaveSettings = 0x11

	// CmdSetIOMode configures the near/far alarm output pin
	CmdSetIOMode = 0x3B
)

// Packet and response sizes per command, in total bytes including
// header, length, command, and checksum. Command-echo responses mirror
// the size of the command packet that produced them.
const (
	// GetVersionResponseSize is the size of the Get Version echo:
	// [0x5A][0x07][0x01][revision][minor][major][checksum]
	GetVersionResponseSize = 7

	// SetFrameRatePacketSize carries a 2-byte rate argument
	SetFrameRatePacketSize = 6

	// SetBaudRatePacketSize carries a 4-byte rate argument
	SetBaudRatePacketSize = 8

	// SetOutputFormatPacketSize carries a 1-byte format argument
	SetOutputFormatPacketSize = 5

	// SetI2CAddressPacketSize carries a 1-byte address argument
	SetI2CAddressPacketSize = 5

	// EnableOutputPacketSize carries a 1-byte flag argument
	EnableOutputPacketSize = 5

	// SetCommunicationModePacketSize carries a 1-byte mode argument
	SetCommunicationModePacketSize = 5

	// GetDataPacketSize carries a 1-byte unit flag (addressed bus only)
	GetDataPacketSize = 5

	// SetIOModePacketSize carries mode(1) + critical distance(2) + hysteresis(2)
	SetIOModePacketSize = 9

	// StatusResponseSize is the size of the Save Settings, System Reset,
	// and Factory Reset replies: [0x5A][0x05][cmd][status][checksum]
	StatusResponseSize = 5
)

// FrameRate is the measurement output rate in Hz.
// The sensor only accepts the rates enumerated below; 0 Hz disables
// periodic output so that measurements must be triggered explicitly.
type FrameRate uint16

// Supported frame rates.
const (
	FrameRate0Hz    FrameRate = 0
	FrameRate1Hz    FrameRate = 1
	FrameRate2Hz    FrameRate = 2
	FrameRate5Hz    FrameRate = 5
	FrameRate10Hz   FrameRate = 10
	FrameRate20Hz   FrameRate = 20
	FrameRate25Hz   FrameRate = 25
	FrameRate50Hz   FrameRate = 50
	FrameRate100Hz  FrameRate = 100
	FrameRate200Hz  FrameRate = 200
	FrameRate250Hz  FrameRate = 250
	FrameRate500Hz  FrameRate = 500
	FrameRate1000Hz FrameRate = 1000
)

// Valid reports whether the rate is one the sensor accepts.
func (r FrameRate) Valid() bool {
	switch r {
	case FrameRate0Hz, FrameRate1Hz, FrameRate2Hz, FrameRate5Hz,
		FrameRate10Hz, FrameRate20Hz, FrameRate25Hz, FrameRate50Hz,
		FrameRate100Hz, FrameRate200Hz, FrameRate250Hz,
		FrameRate500Hz, FrameRate1000Hz:
		return true
	}
	return false
}

// BaudRate is the UART line rate in bits per second.
type BaudRate uint32

// Supported baud rates.
const (
	BaudRate9600   BaudRate = 9600
	BaudRate19200  BaudRate = 19200
	BaudRate38400  BaudRate = 38400
	BaudRate57600  BaudRate = 57600
	BaudRate115200 BaudRate = 115200
)

// Valid reports whether the rate is one the sensor accepts.
func (r BaudRate) Valid() bool {
	switch r {
	case BaudRate9600, BaudRate19200, BaudRate38400, BaudRate57600, BaudRate115200:
		return true
	}
	return false
}

// OutputFormat selects the measurement frame encoding.
//
// Unit selection is a best-effort hint: the sensor has been observed to
// ignore it on the addressed bus, so callers must not assume the
// reported distance unit changed even after a successful echo.
type OutputFormat byte

// Supported output formats.
const (
	// OutputCM reports distance in centimeters
	OutputCM OutputFormat = 0x01

	// OutputPixhawk reports distance as Pixhawk-compatible text
	OutputPixhawk OutputFormat = 0x02

	// OutputMM reports distance in millimeters
	OutputMM OutputFormat = 0x06
)

// Valid reports whether the format is one the sensor accepts.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputCM, OutputPixhawk, OutputMM:
		return true
	}
	return false
}

// Mode identifies the active communication interface.
type Mode byte

// Communication interfaces.
const (
	// ModeUART is the stream-oriented serial interface
	ModeUART Mode = 0x00

	// ModeI2C is the addressed-register bus interface
	ModeI2C Mode = 0x01
)

// Valid reports whether the mode is one the sensor accepts.
func (m Mode) Valid() bool {
	return m == ModeUART || m == ModeI2C
}

// String returns the interface name.
func (m Mode) String() string {
	switch m {
	case ModeUART:
		return "uart"
	case ModeI2C:
		return "i2c"
	default:
		return "unknown"
	}
}

// IOMode configures the sensor's alarm output pin.
type IOMode byte

// IOModeStandard disables the alarm pin and keeps measurement output
// on the communication interface.
const IOModeStandard IOMode = 0x00

// DefaultI2CAddress is the factory-assigned 7-bit bus address.
const DefaultI2CAddress = 0x10
