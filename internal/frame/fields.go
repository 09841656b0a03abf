package frame

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Fields is one tokenized status frame with tokens bound positionally
// to schema tags. Binding never fails on its own: a frame shorter than
// the schema simply leaves the trailing tags unbound, and the error
// surfaces when such a tag is looked up. Extra trailing tokens beyond
// the schema are ignored.
type Fields struct {
	tokens []string
}

// Split tokenizes a raw frame. The trailing line terminator (LF,
// optionally preceded by CR) is stripped; interior tokens are kept
// as-is, even when they look malformed, so that positions stay aligned.
func Split(raw []byte) (Fields, error) {
	if !utf8.Valid(raw) {
		return Fields{}, ErrEncoding
	}
	line := strings.TrimRight(string(raw), "\r\n")
	return Fields{tokens: strings.Split(line, "\t")}, nil
}

func (f Fields) token(tag Tag) (string, error) {
	if int(tag) >= len(f.tokens) {
		return "", &MissingFieldError{Tag: tag}
	}
	return f.tokens[int(tag)], nil
}

// text returns the token verbatim. An empty token is valid and stands
// for an absent firmware or serial value.
func (f Fields) text(tag Tag) (string, error) {
	return f.token(tag)
}

// uint parses the token as an unsigned counter.
func (f Fields) uint(tag Tag) (uint32, error) {
	tok, err := f.token(tag)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &ParseError{Tag: tag, Raw: tok}
	}
	return uint32(v), nil
}

// float parses the token as a float in natural units.
func (f Fields) float(tag Tag) (float64, error) {
	tok, err := f.token(tag)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Tag: tag, Raw: tok}
	}
	return v, nil
}

// scaled parses the token as a float and divides it by the slot's fixed
// scale divisor.
func (f Fields) scaled(tag Tag, divisor float64) (float64, error) {
	v, err := f.float(tag)
	if err != nil {
		return 0, err
	}
	return v / divisor, nil
}

// boolean parses the token as an unsigned integer and maps nonzero to
// true. A non-numeric token is a parse error, never a silent false.
func (f Fields) boolean(tag Tag) (bool, error) {
	tok, err := f.token(tag)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return false, &ParseError{Tag: tag, Raw: tok}
	}
	return v != 0, nil
}
