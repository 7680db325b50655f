package folds

import (
	"errors"
	"fmt"
)

var (
	// ErrLabelMismatch is returned when the label count differs from the item count.
	ErrLabelMismatch = errors.New("number of labels does not match number of items")

	// ErrInvalidFoldCount is returned for a fold count that is neither positive nor Max.
	ErrInvalidFoldCount = errors.New("fold count must be positive or -1")
)

// InsufficientRepetitionsError reports a class with fewer observations than
// the requested number of folds.
type InsufficientRepetitionsError struct {
	Class int
	Count int
	Folds int
}

func (e *InsufficientRepetitionsError) Error() string {
	return fmt.Sprintf("class %d has %d observation(s), not enough for %d folds", e.Class, e.Count, e.Folds)
}
