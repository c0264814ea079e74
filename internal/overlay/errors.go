package overlay

import (
	"errors"
	"fmt"
)

var (
	// ErrPositionOccupied is returned by AddOverlay when the target anchor
	// position already holds an overlay. The caller must remove the existing
	// item first; positions are never silently overwritten.
	ErrPositionOccupied = errors.New("position already occupied")

	// ErrItemNotFound is returned when an overlay item ID does not exist in
	// the configuration.
	ErrItemNotFound = errors.New("overlay item not found")
)

// ValidationError describes a rejected field value. Composition mutations
// fail fast with it and leave the configuration unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure, including the
// position-occupancy sentinel.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrPositionOccupied)
}
