package rcdevice

import "github.com/yonglianli/go-rcdevice/protocol"

// Callback receives the terminal outcome of a queued request. It runs
// inside the Poll call that resolved the request, before Poll returns,
// and must not call back into Send or Poll on the same Device.
type Callback func(Response)

// DeviceInfoCallback receives the outcome of QueryDeviceInfo. On
// success err is nil and info holds the parsed identity; otherwise
// info is nil and err carries the typed failure.
type DeviceInfoCallback func(info *protocol.DeviceInfo, err error)

// ConnectionCallback receives the outcome of a 5-key cable session open
// or close. On success err is nil and status holds the camera's
// acknowledgement; otherwise status is nil.
type ConnectionCallback func(status *protocol.ConnectionStatus, err error)

// Logger is an optional logging interface for engine internals.
// Compatible with structured loggers like zap's SugaredLogger or a thin
// adapter over log/slog.
type Logger interface {
	// Debug logs a debug message with key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an informational message with key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
