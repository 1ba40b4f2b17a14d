package request

import (
	"errors"
	"fmt"
)

// InvalidURLError reports a url that does not parse as an absolute URI.
type InvalidURLError struct {
	URL   string
	cause error
}

func (e *InvalidURLError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid url %q: %s", e.URL, e.cause)
	}

	return fmt.Sprintf("invalid url %q: not an absolute URI", e.URL)
}

func (e *InvalidURLError) Unwrap() error {
	return e.cause
}

// InvalidBodyPairError reports a body token that does not split into a
// key=value pair.
type InvalidBodyPairError struct {
	Token  string
	Reason string
}

func (e *InvalidBodyPairError) Error() string {
	return fmt.Sprintf("invalid body pair %q: %s", e.Token, e.Reason)
}

// IsUsageError reports whether err stems from malformed command line
// input.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}

	var urlErr *InvalidURLError
	var pairErr *InvalidBodyPairError
	return errors.As(err, &urlErr) || errors.As(err, &pairErr)
}
