package rcdevice

import (
	"fmt"
	"io"
	"time"

	"github.com/yonglianli/go-rcdevice/protocol"
)

// Port is the transport a Device drives. Implementations must be
// non-blocking: BytesAvailable never waits for data, and ReadByte is
// only called after BytesAvailable reports at least one byte.
type Port interface {
	io.Writer

	// BytesAvailable returns the number of received bytes ready to read
	BytesAvailable() int

	// ReadByte consumes and returns the next received byte
	ReadByte() (byte, error)

	// DiscardInput drops any received bytes not yet read
	DiscardInput() error
}

// Per-command reply policy fixed by the camera firmware.
const (
	// DeviceInfoTimeout is the reply window for QueryDeviceInfo.
	// Cameras can take several seconds to answer after power-on.
	DeviceInfoTimeout = 5 * time.Second

	// DeviceInfoRetries is the resend count for QueryDeviceInfo.
	DeviceInfoRetries = 0

	// FiveKeyTimeout is the reply window for 5-key cable operations.
	FiveKeyTimeout = 200 * time.Millisecond

	// FiveKeyRetries is the resend count for 5-key cable operations.
	FiveKeyRetries = 1
)

// Device drives the request/reply protocol for one camera over one
// transport.
//
// Device is not safe for concurrent use. Send and Poll are built for a
// cooperative polling loop: call them from a single goroutine, or
// serialize access externally. Completion callbacks run inside Poll on
// that same goroutine.
type Device struct {
	port   Port
	config Config

	queue requestQueue

	info    protocol.DeviceInfo
	ready   bool
	version protocol.Version
}

// New creates a Device over the given transport.
//
// Example:
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dev := rcdevice.New(port,
//	    rcdevice.WithLogger(myLogger),
//	)
func New(port Port, opts ...Option) *Device {
	if port == nil {
		panic("port cannot be nil")
	}

	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Device{
		port:    port,
		config:  config,
		version: config.Version,
	}
}

// Send encodes a command frame, transmits it, and queues the request to
// await its reply.
//
// A nil return means the request was accepted: it occupies a queue slot
// and its OnComplete callback is guaranteed to fire exactly once with a
// terminal result from a later Poll. A non-nil return means the request
// was rejected and its callback will never fire; rejections are a full
// queue (QueueFullError) or oversized params.
//
// Stale unread transport bytes are discarded before the frame goes out.
// A Send issued while an earlier request is still awaiting its reply
// can therefore destroy that reply's partially received bytes; the
// earlier request then resolves through its timeout path.
func (d *Device) Send(req Request) error {
	if err := d.port.DiscardInput(); err != nil {
		d.logError("discard input failed", "error", err)
	}

	frame, err := protocol.BuildFrame(req.Command, req.Params)
	if err != nil {
		return err
	}

	expectedLen := protocol.ResponseLength(req.Command)
	pending := pendingRequest{
		command:     req.Command,
		frame:       frame,
		expectedLen: expectedLen,
		recv:        make([]byte, 0, expectedLen),
		deadline:    d.config.Clock().Add(req.Timeout),
		timeout:     req.Timeout,
		retriesLeft: req.MaxRetries,
		version:     d.version,
		onComplete:  req.OnComplete,
		userContext: req.UserContext,
	}

	if !d.queue.push(pending) {
		return &QueueFullError{Command: req.Command}
	}

	d.writeFrame(frame)
	d.logDebug("request sent",
		"command", fmt.Sprintf("0x%02X", req.Command),
		"expected_reply_len", expectedLen,
		"timeout", req.Timeout.String(),
	)
	return nil
}

// Poll advances the protocol state machine; call it repeatedly, for
// example once per scheduler tick.
//
// Each call services the queue head: expired deadlines first (a single
// resend when retries remain, which ends the call; otherwise a terminal
// timeout, cascading across consecutive expired heads), then immediate
// completion of requests expecting no reply bytes, then one byte of
// accumulation per iteration while the transport has data. Callbacks
// for every request resolved by this call run before it returns.
func (d *Device) Poll() {
	for {
		head := d.nextWaiting(d.config.Clock())
		if head == nil {
			return
		}

		if head.expectedLen == 0 {
			head.result = ResultSuccess
			d.finish(head)
			continue
		}

		if d.port.BytesAvailable() == 0 {
			return
		}

		b, err := d.port.ReadByte()
		if err != nil {
			d.logError("transport read failed", "error", err)
			return
		}

		head.recv = append(head.recv, b)
		if len(head.recv) < head.expectedLen {
			continue
		}

		if head.version.VerifyResponse(head.recv) {
			head.result = ResultSuccess
		} else {
			head.result = ResultChecksumMismatch
		}
		d.finish(head)
	}
}

// nextWaiting returns the head entry still inside its reply window,
// resolving expired deadlines on the way. An expired head with retries
// left is resent and nil is returned so the surrounding Poll call ends;
// an expired head out of retries terminates with ResultTimedOut and the
// next entry is considered. The loop is bounded by queue capacity.
func (d *Device) nextWaiting(now time.Time) *pendingRequest {
	head := d.queue.peekFront()
	for head != nil && now.After(head.deadline) {
		if head.retriesLeft > 0 {
			head.retriesLeft--
			head.deadline = now.Add(head.timeout)
			d.writeFrame(head.frame)
			d.logDebug("request resent",
				"command", fmt.Sprintf("0x%02X", head.command),
				"retries_left", head.retriesLeft,
			)
			return nil
		}

		head.result = ResultTimedOut
		d.finish(head)
		head = d.queue.peekFront()
	}
	return head
}

// finish delivers the head's terminal result: snapshot, callback,
// dequeue. The callback sees a copy of the reply bytes, so the queue
// slot can be reused immediately afterwards.
func (d *Device) finish(head *pendingRequest) {
	resp := Response{
		Command:     head.command,
		Version:     head.version,
		Result:      head.result,
		Data:        append([]byte(nil), head.recv...),
		UserContext: head.userContext,
	}

	if head.onComplete != nil {
		head.onComplete(resp)
	}
	d.queue.popFront()

	d.logDebug("request resolved",
		"command", fmt.Sprintf("0x%02X", resp.Command),
		"result", resp.Result.String(),
	)
}

// writeFrame transmits a prebuilt frame. Write errors are logged, not
// returned: an accepted request already owns a queue slot, and a lost
// frame resolves as a timeout through the retry machinery.
func (d *Device) writeFrame(frame []byte) {
	if _, err := d.port.Write(frame); err != nil {
		d.logError("transport write failed", "error", err, "frame_len", len(frame))
	}
}

// QueryDeviceInfo asks the camera for its protocol version and feature
// flags. On a valid reply the device is marked ready, the reported
// version (when this library implements it) is adopted for subsequent
// requests, and cb receives the parsed identity. On failure the device
// is marked not ready and cb receives a ChecksumError or TimeoutError.
// cb may be nil.
func (d *Device) QueryDeviceInfo(cb DeviceInfoCallback) error {
	return d.Send(Request{
		Command:    protocol.CmdGetDeviceInfo,
		Timeout:    DeviceInfoTimeout,
		MaxRetries: DeviceInfoRetries,
		OnComplete: func(resp Response) {
			d.handleDeviceInfo(resp, cb)
		},
	})
}

func (d *Device) handleDeviceInfo(resp Response, cb DeviceInfoCallback) {
	if resp.Result != ResultSuccess {
		d.ready = false
		if cb != nil {
			cb(nil, terminalError(resp, DeviceInfoRetries+1))
		}
		return
	}

	info, err := protocol.ParseDeviceInfo(resp.Data)
	if err != nil {
		d.ready = false
		if cb != nil {
			cb(nil, err)
		}
		return
	}

	d.info = *info
	d.ready = true
	if info.Version.Known() {
		d.version = info.Version
	}
	d.logInfo("device info received",
		"protocol_version", info.Version.String(),
		"features", fmt.Sprintf("0x%04X", uint16(info.Features)),
	)

	if cb != nil {
		cb(info, nil)
	}
}

// Open5KeyConnection starts a simulated 5-key OSD cable session. The
// camera acknowledges with an operation echo and a result code, parsed
// into the ConnectionStatus handed to cb. cb may be nil.
func (d *Device) Open5KeyConnection(cb ConnectionCallback) error {
	return d.sendConnectionEvent(protocol.ConnectionOpen, cb)
}

// Close5KeyConnection ends the simulated 5-key OSD cable session.
// cb may be nil.
func (d *Device) Close5KeyConnection(cb ConnectionCallback) error {
	return d.sendConnectionEvent(protocol.ConnectionClose, cb)
}

func (d *Device) sendConnectionEvent(operation byte, cb ConnectionCallback) error {
	return d.Send(Request{
		Command:    protocol.Cmd5KeyConnection,
		Params:     []byte{operation},
		Timeout:    FiveKeyTimeout,
		MaxRetries: FiveKeyRetries,
		OnComplete: func(resp Response) {
			if cb == nil {
				return
			}
			if resp.Result != ResultSuccess {
				cb(nil, terminalError(resp, FiveKeyRetries+1))
				return
			}
			status, err := protocol.ParseConnectionResponse(resp.Data)
			if err != nil {
				cb(nil, err)
				return
			}
			cb(status, nil)
		},
	})
}

// Press5KeyButton simulates pressing one key of the 5-key OSD cable.
// The operation must name a key: protocol.FiveKeyNone is rejected
// without transport activity. The reply carries no payload, so cb only
// learns the terminal result. cb may be nil.
func (d *Device) Press5KeyButton(operation byte, cb Callback) error {
	if operation == protocol.FiveKeyNone {
		return fmt.Errorf("no key selected for press simulation")
	}
	if operation > protocol.FiveKeyDown {
		return fmt.Errorf("invalid 5-key operation: 0x%02X", operation)
	}

	return d.Send(Request{
		Command:    protocol.Cmd5KeySimulationPress,
		Params:     []byte{operation},
		Timeout:    FiveKeyTimeout,
		MaxRetries: FiveKeyRetries,
		OnComplete: cb,
	})
}

// Release5KeyButton simulates releasing the currently held key of the
// 5-key OSD cable. cb may be nil.
func (d *Device) Release5KeyButton(cb Callback) error {
	return d.Send(Request{
		Command:    protocol.Cmd5KeySimulationRelease,
		Timeout:    FiveKeyTimeout,
		MaxRetries: FiveKeyRetries,
		OnComplete: cb,
	})
}

// SimulateCameraButton fires a camera button operation: wifi, power,
// mode change, or start/stop recording. The command has no reply; the
// frame is written directly, bypassing the pending-request queue and
// the pre-send input flush, and nothing reports whether the camera
// acted on it.
//
// Only protocol version 1.0 devices understand this command. Under any
// other version the call is rejected with UnsupportedVersionError and
// nothing is transmitted.
func (d *Device) SimulateCameraButton(operation byte) error {
	if d.version != protocol.VersionV1 {
		return &UnsupportedVersionError{Version: d.version, Required: protocol.VersionV1}
	}
	if operation > protocol.CameraStopRecording {
		return fmt.Errorf("invalid camera operation: 0x%02X", operation)
	}

	frame, err := protocol.BuildFrame(protocol.CmdCameraControl, []byte{operation})
	if err != nil {
		return err
	}

	d.writeFrame(frame)
	d.logDebug("camera button simulated", "operation", fmt.Sprintf("0x%02X", operation))
	return nil
}

// Ready reports whether the camera has answered a QueryDeviceInfo with
// a valid reply.
func (d *Device) Ready() bool {
	return d.ready
}

// Info returns the camera's last reported identity, or nil before the
// first successful QueryDeviceInfo.
func (d *Device) Info() *protocol.DeviceInfo {
	if !d.ready {
		return nil
	}
	info := d.info
	return &info
}

// Pending returns the number of requests currently awaiting replies.
// Sends are rejected while this equals MaxPendingRequests.
func (d *Device) Pending() int {
	return d.queue.len()
}

// Version returns the protocol version currently stamped onto outgoing
// requests.
func (d *Device) Version() protocol.Version {
	return d.version
}

// terminalError converts a failed terminal response into the typed
// error handed to wrapper callbacks.
func terminalError(resp Response, attempts int) error {
	if resp.Result == ResultTimedOut {
		return &TimeoutError{Command: resp.Command, Attempts: attempts}
	}
	return &ChecksumError{Command: resp.Command}
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
