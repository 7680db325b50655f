package searchlight

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for arguments outside their domain,
	// such as a negative radius.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStreamConsumed is returned when a stream is iterated a second time.
	ErrStreamConsumed = errors.New("stream already consumed")
)

// PatchError identifies the searchlight patch whose DSM could not be computed.
//
// The underlying error can be accessed via errors.Unwrap.
type PatchError struct {
	Series int
	Center int
	cause  error
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch (series %d, center %d): %v", e.Series, e.Center, e.cause)
}

func (e *PatchError) Unwrap() error { return e.cause }
