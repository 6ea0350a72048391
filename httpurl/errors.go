package httpurl

import (
	"errors"
	"fmt"
)

// Errors returned by Parse. Character set violations are wrapped in a
// *ParseError, which names the offending part of the URL.
var (
	ErrUnsupportedProtocol  = errors.New("unsupported URL protocol")
	ErrInvalidPort          = errors.New("wrong port number specified in the URL")
	ErrWrongIPv6Host        = errors.New("wrong IPv6 host specified in the URL")
	ErrEmptyHost            = errors.New("URL host is empty")
	ErrInvalidHost          = errors.New("host is invalid")
	ErrDisallowedCharacter  = errors.New("disallowed character in URL")
	ErrWrongPercentEncoding = errors.New("wrong percent-encoding in URL")
)

// ParseError is an error for a part of a URL which contains invalid
// characters.
type ParseError struct {
	Part string // "host" or "userinfo"
	Pos  int    // byte position within the part
	Err  error  // ErrDisallowedCharacter or ErrWrongPercentEncoding
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s at position %d", e.Err, e.Part, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
