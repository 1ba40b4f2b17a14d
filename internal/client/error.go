package client

import (
	"errors"
	"fmt"
)

// TransportError wraps a network-layer failure: DNS, connection
// refused, TLS handshake, timeout.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func IsTransportError(err error) bool {
	if err == nil {
		return false
	}

	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
