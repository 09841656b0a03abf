// Package source supplies raw status frames for the decoder. A source
// owns the transport entirely: timeouts, retries and serialization of
// access to the physical device all happen here, never in the decoder.
package source

import (
	"context"
	"errors"
)

// ErrTransport marks failures to obtain a frame from the device. All
// errors returned by a Source wrap it, so callers can distinguish
// transport trouble from decode trouble with errors.Is.
var ErrTransport = errors.New("source: transport failure")

// Source returns one raw, LF-terminated status frame per call.
type Source interface {
	ReadFrame(ctx context.Context) ([]byte, error)
}
