package results

import (
	"errors"
	"fmt"

	"result-checker/core/utils"
)

var (
	// ErrValidation marks malformed or empty batch input. Nothing is processed.
	ErrValidation = errors.New("validation failed")
	// ErrStoreUnavailable marks a backing store that cannot be reached at all.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound is returned by lookups for an unknown roll.
	ErrNotFound = errors.New("result not found")
	// ErrDuplicateRoll is returned when an insert collides with the unique roll index.
	ErrDuplicateRoll = errors.New("duplicate roll")
	// ErrInvalidRoll marks an item whose roll is not six digits.
	ErrInvalidRoll = errors.New("invalid roll")
)

// ValidationError describes why a whole batch was rejected.
type ValidationError struct {
	Reason string
}

// NewValidationError returns a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ItemError is a failure confined to one batch item.
type ItemError struct {
	// Roll is the roll value as submitted, which may be missing or malformed.
	Roll any
	Err  error
}

func (e *ItemError) Error() string {
	if errors.Is(e.Err, ErrInvalidRoll) {
		return "Invalid roll: " + DescribeRoll(e.Roll)
	}
	return fmt.Sprintf("%s: %s", DescribeRoll(e.Roll), e.Err.Error())
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// DescribeRoll renders a submitted roll value for error messages.
func DescribeRoll(v any) string {
	if v == nil {
		return "undefined"
	}
	return utils.ToString(v)
}

// Unavailable wraps err so that errors.Is(err, ErrStoreUnavailable) holds.
// Nil and already-wrapped errors are returned unchanged.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
