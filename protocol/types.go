package protocol

import "fmt"

// Version is the sensor firmware version triple.
// Returned by the Get Version command.
type Version struct {
	// Major is the major version number
	Major byte

	// Minor is the minor version number
	Minor byte

	// Revision is the patch revision
	Revision byte
}

// String formats the version as "major.minor.revision".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Measurement is one decoded measurement frame.
type Measurement struct {
	// Distance to the target, in the sensor's configured unit
	// (centimeters by default)
	Distance uint16

	// Strength is the signal strength of the return; readings below
	// 100 or at 65535 are unreliable per the datasheet
	Strength uint16

	// Temperature is the raw on-chip temperature reading
	Temperature uint16
}

// Celsius converts the raw temperature reading to degrees Celsius
// using the datasheet scaling temp/8 - 256.
func (m Measurement) Celsius() float64 {
	return float64(m.Temperature)/8 - 256
}
