// Package serialport adapts a real serial device to the transport
// interface the rcdevice engine drives.
//
// The engine expects a non-blocking surface: BytesAvailable, ReadByte
// and DiscardInput on top of plain writes. Serial drivers expose
// blocking block reads instead, so this package buffers received bytes
// internally and bounds each driver read with a short timeout.
//
// # Usage
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	dev := rcdevice.New(port)
//
// RunCam devices run fixed at 115200 baud 8N1; WithBaudRate exists for
// bench setups that sit behind rate-converting adapters.
package serialport
