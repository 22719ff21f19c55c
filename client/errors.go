package client

import "fmt"

// TransportError means the backend could not be reached or produced an
// unreadable response. The caller's state is left untouched.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError is a success:false envelope. It is an application-level,
// recoverable rejection regardless of the transport status code.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return "backend rejected the request"
	}
	return e.Message
}
