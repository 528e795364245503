package driver

import "time"

// DefaultSettleDelay is the pause between writing a command and reading
// its response on the addressed bus. The sensor needs this long to
// process a command and stage its reply; UART responses arrive as a
// stream and need no delay.
const DefaultSettleDelay = 100 * time.Millisecond

// Config holds the driver configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// SettleDelay is the pause between command write and response read.
	// Applied only in I2C mode, and never for measurement retrieval.
	SettleDelay time.Duration

	// sleep performs the settle delay; replaced in tests
	sleep func(time.Duration)
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		SettleDelay: DefaultSettleDelay,
		sleep:       time.Sleep,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	dev := driver.NewUART(port, driver.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSettleDelay overrides the bus-settle delay applied between
// writing a command and reading its response in I2C mode. Zero disables
// the delay entirely.
//
// Example:
//
//	dev := driver.NewI2C(bus, addr, driver.WithSettleDelay(50*time.Millisecond))
func WithSettleDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SettleDelay = d
		}
	}
}
