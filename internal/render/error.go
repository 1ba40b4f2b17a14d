package render

import (
	"errors"
	"fmt"
)

// BodyReadError reports a failure while buffering the response body.
type BodyReadError struct {
	Cause error
}

func (e *BodyReadError) Error() string {
	return fmt.Sprintf("reading response body: %s", e.Cause)
}

func (e *BodyReadError) Unwrap() error {
	return e.Cause
}

// HighlightError reports a missing language grammar or theme. The
// rendering table asked for something the engine does not ship, which
// is a configuration error rather than a transient condition.
type HighlightError struct {
	Missing string
	cause   error
}

func (e *HighlightError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("highlighting as %q failed: %s", e.Missing, e.cause)
	}

	return fmt.Sprintf("no highlight support for %q", e.Missing)
}

func (e *HighlightError) Unwrap() error {
	return e.cause
}

// IsRenderError reports whether err occurred while rendering the
// response.
func IsRenderError(err error) bool {
	if err == nil {
		return false
	}

	var bodyErr *BodyReadError
	var highlightErr *HighlightError
	return errors.As(err, &bodyErr) || errors.As(err, &highlightErr)
}
