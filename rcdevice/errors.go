package rcdevice

import (
	"errors"
	"fmt"

	"github.com/yonglianli/go-rcdevice/protocol"
)

// QueueFullError indicates a request was rejected at send time because
// the pending-request queue was at capacity. Nothing was transmitted
// and the request's callback will never fire.
type QueueFullError struct {
	// Command is the rejected command identifier
	Command byte
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("pending-request queue full (capacity %d), command 0x%02X rejected", MaxPendingRequests, e.Command)
}

// IsQueueFull returns true if the error is a QueueFullError.
func IsQueueFull(err error) bool {
	var queueErr *QueueFullError
	return errors.As(err, &queueErr)
}

// UnsupportedVersionError indicates an operation that requires a
// specific protocol version was attempted under another. Nothing was
// transmitted.
type UnsupportedVersionError struct {
	// Version is the protocol version currently in force
	Version protocol.Version

	// Required is the version the operation needs
	Required protocol.Version
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("operation requires protocol version %s, device speaks %s", e.Required, e.Version)
}

// ChecksumError indicates a reply arrived in full but failed checksum
// validation.
type ChecksumError struct {
	// Command is the command whose reply was corrupted
	Command byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("reply to command 0x%02X failed checksum validation", e.Command)
}

// TimeoutError indicates no complete reply arrived within the request's
// timeout across all send attempts.
type TimeoutError struct {
	// Command is the unanswered command identifier
	Command byte

	// Attempts is the total number of transmissions, first send
	// included
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no reply to command 0x%02X after %d attempts", e.Command, e.Attempts)
}
