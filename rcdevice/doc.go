// Package rcdevice provides a high-level API for controlling RunCam
// split-style cameras over a serial link.
//
// # Overview
//
// This package implements the asynchronous request/reply engine the
// camera protocol is built around:
//   - Sending framed commands and queueing them to await replies
//   - Accumulating reply bytes one at a time from a polled transport
//   - Validating replies under the protocol version of their request
//   - Resending unanswered requests and timing them out
//   - Delivering every outcome through a completion callback
//
// # Basic Usage
//
// Query a camera and drive the engine from a polling loop:
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	dev := rcdevice.New(port)
//
//	err = dev.QueryDeviceInfo(func(info *protocol.DeviceInfo, err error) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("protocol %s, features 0x%04X\n", info.Version, uint16(info.Features))
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for !dev.Ready() {
//	    dev.Poll()
//	    time.Sleep(10 * time.Millisecond)
//	}
//
// # The Polling Model
//
// The engine performs no I/O on its own: Send writes one frame, and all
// reply handling happens inside Poll. Call Poll at a steady cadence;
// each call reads whatever bytes have arrived, resolves completed or
// expired requests, and runs their callbacks before returning. Nothing
// happens between calls, so a stopped loop simply freezes the protocol.
//
// # Simulating the 5-Key Pad
//
// Cameras with the 5-key OSD cable feature accept simulated key events
// once a session is open:
//
//	dev.Open5KeyConnection(func(status *protocol.ConnectionStatus, err error) {
//	    // status.Accepted reports whether the camera entered menu mode
//	})
//	dev.Press5KeyButton(protocol.FiveKeyUp, nil)
//	dev.Release5KeyButton(nil)
//	dev.Close5KeyConnection(nil)
//
// Each call queues one request; keep polling until Pending returns zero
// before treating the sequence as delivered.
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	dev := rcdevice.New(port,
//	    rcdevice.WithLogger(myLogger),
//	    rcdevice.WithClock(simClock.Now),
//	    rcdevice.WithVersion(protocol.VersionLegacy),
//	)
//
// # Error Handling
//
// Send reports rejection synchronously; everything after acceptance
// arrives through callbacks. The package provides structured error
// types:
//   - QueueFullError: too many requests already in flight
//   - UnsupportedVersionError: operation not available under the
//     current protocol version
//   - ChecksumError: a reply arrived but was corrupted
//   - TimeoutError: no reply across all send attempts
//
// # Hardware Independence
//
// This package does not open serial devices itself. Any implementation
// of the Port interface works: the serialport package adapts a real
// serial port, and tests or simulators can supply an in-memory fake.
package rcdevice
