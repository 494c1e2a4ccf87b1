package serialport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the line speed RunCam devices use.
const DefaultBaudRate = 115200

// device is the subset of the serial driver the adapter relies on.
// Narrowed from serial.Port so tests can substitute a fake.
type device interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	ResetInputBuffer() error
	Close() error
}

// Config holds the port configuration.
type Config struct {
	// BaudRate is the serial line speed
	BaudRate int

	// PollInterval bounds how long one BytesAvailable call may wait on
	// the driver when no data has arrived
	PollInterval time.Duration

	// ReadChunkSize is the buffer size for each driver read
	ReadChunkSize int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		BaudRate:      DefaultBaudRate,
		PollInterval:  time.Millisecond,
		ReadChunkSize: 64,
	}
}

// Option is a functional option for configuring the port.
type Option func(*Config)

// WithBaudRate overrides the default line speed.
func WithBaudRate(rate int) Option {
	return func(c *Config) {
		if rate > 0 {
			c.BaudRate = rate
		}
	}
}

// WithPollInterval bounds the driver wait inside BytesAvailable.
// Shorter intervals poll more responsively at the cost of more wakeups.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.PollInterval = d
		}
	}
}

// Port adapts a serial device to the non-blocking transport surface the
// rcdevice engine drives. An internal receive buffer decouples the
// engine's byte-at-a-time reads from the driver's block reads.
type Port struct {
	port   device
	config Config
	rx     []byte
	buf    []byte
}

// Open opens a serial device at 8N1 with the configured line speed.
//
// Example:
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
func Open(name string, opts ...Option) (*Port, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	mode := &serial.Mode{
		BaudRate: config.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	if err := p.SetReadTimeout(config.PollInterval); err != nil {
		p.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", name, err)
	}

	return &Port{
		port:   p,
		config: config,
		buf:    make([]byte, config.ReadChunkSize),
	}, nil
}

// Write sends raw bytes to the device.
func (p *Port) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// BytesAvailable reports how many received bytes are ready to read.
// When the internal buffer is empty it performs one driver read,
// bounded by PollInterval, to pick up newly arrived data.
func (p *Port) BytesAvailable() int {
	if len(p.rx) == 0 {
		p.fill()
	}
	return len(p.rx)
}

// fill tops up the receive buffer with one driver read. Driver errors
// leave the buffer empty, so the engine sees an idle line and resolves
// outstanding requests through their timeouts.
func (p *Port) fill() {
	n, err := p.port.Read(p.buf)
	if err != nil {
		return
	}
	if n > 0 {
		p.rx = append(p.rx, p.buf[:n]...)
	}
}

// ReadByte consumes the next received byte. Call only after
// BytesAvailable has reported data.
func (p *Port) ReadByte() (byte, error) {
	if len(p.rx) == 0 {
		return 0, fmt.Errorf("no bytes available")
	}

	b := p.rx[0]
	p.rx = p.rx[1:]
	if len(p.rx) == 0 {
		p.rx = nil
	}
	return b, nil
}

// DiscardInput drops everything received but not yet read, both from
// the internal buffer and from the driver's input queue.
func (p *Port) DiscardInput() error {
	p.rx = nil
	return p.port.ResetInputBuffer()
}

// Close releases the serial device.
func (p *Port) Close() error {
	return p.port.Close()
}
