package rcdevice

import (
	"fmt"
	"time"

	"github.com/yonglianli/go-rcdevice/protocol"
)

// Result is the lifecycle state of a request. ResultPending is the only
// non-terminal state; a request reaches exactly one terminal result and
// its callback fires exactly once with it.
type Result uint8

const (
	// ResultPending means the request is queued and awaiting its reply
	ResultPending Result = iota

	// ResultSuccess means a complete reply arrived and passed checksum
	// validation
	ResultSuccess

	// ResultChecksumMismatch means a complete reply arrived but failed
	// checksum validation; corrupted replies are never retried
	ResultChecksumMismatch

	// ResultTimedOut means no complete reply arrived within the timeout
	// across all send attempts
	ResultTimedOut
)

// Terminal reports whether the result ends a request's lifecycle.
func (r Result) Terminal() bool {
	return r != ResultPending
}

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultPending:
		return "pending"
	case ResultSuccess:
		return "success"
	case ResultChecksumMismatch:
		return "checksum mismatch"
	case ResultTimedOut:
		return "timed out"
	}
	return fmt.Sprintf("result(%d)", uint8(r))
}

// Request describes one command for Device.Send.
type Request struct {
	// Command is the protocol command identifier
	Command byte

	// Params is the parameter payload sent with the command. It is
	// encoded into the outgoing frame at send time; the slice is not
	// retained.
	Params []byte

	// Timeout is how long the engine waits for a complete reply before
	// resending or giving up. The window re-arms on every resend.
	Timeout time.Duration

	// MaxRetries is the number of timeout-triggered resends before the
	// request terminates with ResultTimedOut.
	MaxRetries int

	// UserContext is opaque caller data passed through to OnComplete.
	UserContext interface{}

	// OnComplete receives the terminal result. Optional; nil means the
	// outcome is discarded.
	OnComplete Callback
}

// Response is the snapshot handed to a Callback when its request
// reaches a terminal result.
type Response struct {
	// Command echoes the request's command identifier
	Command byte

	// Version is the protocol version the reply was validated under
	Version protocol.Version

	// Result is the terminal outcome
	Result Result

	// Data is the raw reply frame, header through trailing checksum.
	// Meaningful only when Result is ResultSuccess; empty for commands
	// whose reply carries no bytes.
	Data []byte

	// UserContext is the request's opaque passthrough data
	UserContext interface{}
}

// pendingRequest is one in-flight command occupying a queue slot.
type pendingRequest struct {
	command     byte
	frame       []byte // exact bytes sent, resent verbatim on retry
	expectedLen int
	recv        []byte
	deadline    time.Time
	timeout     time.Duration
	retriesLeft int
	version     protocol.Version
	result      Result
	onComplete  Callback
	userContext interface{}
}
