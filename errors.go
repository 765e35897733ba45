package optionbook

import (
	"errors"
	"fmt"
)

// The book reports exactly two kinds of operation failure: invalid input and
// references to entities that are not (or no longer) live. A failed operation
// never leaves partial state behind.

// ValidationError reports malformed or out-of-range input: an empty name or
// symbol, a negative strike or quantity, an unrecognized option kind, or a
// malformed expiration date.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NotFoundError reports a reference to an id that does not correspond to a
// live entity, including ids that were valid in the past but already deleted.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string { return e.msg }

func notFoundf(format string, args ...any) error {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var v *NotFoundError
	return errors.As(err, &v)
}
