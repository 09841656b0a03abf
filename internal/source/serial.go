package source

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"
)

// statusCommand asks the controller for one status line.
const statusCommand = "rs\r\n"

const readChunkSize = 64

// SerialSource polls the controller over a serial line. The port is
// opened per poll and closed afterwards; a mutex serializes concurrent
// polls because there is exactly one physical device behind the port.
type SerialSource struct {
	device  string
	baud    int
	timeout time.Duration

	mu sync.Mutex
}

// NewSerialSource returns a source reading from the given device node
// (e.g. /dev/ttyUSB0) at the given baud rate. timeout bounds the whole
// poll, from write of the status command to the terminating LF.
func NewSerialSource(device string, baud int, timeout time.Duration) *SerialSource {
	return &SerialSource{device: device, baud: baud, timeout: timeout}
}

// ReadFrame writes the status command and reads the response up to and
// including the line feed. Every failure wraps ErrTransport.
func (s *SerialSource) ReadFrame(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	port, err := serial.Open(s.device, &serial.Mode{BaudRate: s.baud})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrTransport, s.device, err)
	}
	defer func() { _ = port.Close() }()

	if err := port.SetReadTimeout(s.timeout); err != nil {
		return nil, fmt.Errorf("%w: set read timeout: %v", ErrTransport, err)
	}
	if _, err := port.Write([]byte(statusCommand)); err != nil {
		return nil, fmt.Errorf("%w: write command: %v", ErrTransport, err)
	}

	return s.readLine(ctx, port)
}

// readLine accumulates bytes until LF. Read returns zero bytes without
// an error when the port timeout expires, which we treat as a dead or
// silent device.
func (s *SerialSource) readLine(ctx context.Context, port serial.Port) ([]byte, error) {
	deadline := time.Now().Add(s.timeout)
	frame := make([]byte, 0, 256)
	chunk := make([]byte, readChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransport, err)
		}
		n, err := port.Read(chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrTransport, s.device, err)
		}
		frame = append(frame, chunk[:n]...)
		if i := bytes.IndexByte(frame, '\n'); i >= 0 {
			return frame[:i+1], nil
		}
		if n == 0 || time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: no response line from %s within %s", ErrTransport, s.device, s.timeout)
		}
	}
}
