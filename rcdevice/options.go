package rcdevice

import (
	"time"

	"github.com/yonglianli/go-rcdevice/protocol"
)

// Config holds the engine configuration.
type Config struct {
	// Logger is used for engine logging (optional)
	Logger Logger

	// Clock returns the current time. All deadline arithmetic goes
	// through it; replace it to drive the engine from simulated time.
	Clock func() time.Time

	// Version is the protocol version assumed before the device has
	// answered a QueryDeviceInfo. It is stamped onto each request at
	// send time.
	Version protocol.Version
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Clock:   time.Now,
		Version: protocol.VersionV1,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithLogger sets a logger for engine operations.
//
// Example:
//
//	dev := rcdevice.New(port, rcdevice.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithClock replaces the engine's time source. Useful for simulations
// and tests that need deterministic timeout behavior.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		if clock != nil {
			c.Clock = clock
		}
	}
}

// WithVersion sets the protocol version assumed before the device has
// reported its own. Default is protocol.VersionV1.
func WithVersion(v protocol.Version) Option {
	return func(c *Config) {
		c.Version = v
	}
}
