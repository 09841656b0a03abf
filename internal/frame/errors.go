package frame

import (
	"errors"
	"fmt"
)

// ErrEncoding reports a frame that is not valid UTF-8. The controller
// speaks plain ASCII, so anything else means line noise or a baud-rate
// mismatch.
var ErrEncoding = errors.New("frame: response is not valid text")

// MissingFieldError reports a schema slot the decoder needed but the
// frame was too short to contain.
type MissingFieldError struct {
	Tag Tag
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("frame: missing field %s", e.Tag)
}

// ParseError reports a token that was present but does not parse as the
// declared type of its slot. Raw holds the literal wire token.
type ParseError struct {
	Tag Tag
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("frame: field %s: cannot parse %q", e.Tag, e.Raw)
}
