package common

import (
	"errors"
	"fmt"
)

// ============================================================================
// Typed Value Errors
// ============================================================================

var (
	ErrMissingKey        = errors.New("key is required")
	ErrValueTypeMismatch = errors.New("value does not match value_type")
	ErrInvalidBlob       = errors.New("blob value is not valid base64")
)

// ============================================================================
// Predicate Errors
// ============================================================================

var (
	ErrIllegalOperator = errors.New("operator is not legal for value_type")
)

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrPartOrder = errors.New("invalid artifact part sequence")
)

// ============================================================================
// Pagination Errors
// ============================================================================

var (
	ErrInvalidPagination = errors.New("invalid pagination")
)

// ============================================================================
// Codec Errors
// ============================================================================

var (
	ErrMalformed = errors.New("malformed message")
)

// MismatchError reports a KeyValue whose value kind disagrees with its value_type.
type MismatchError struct {
	Key       string
	ValueType ValueType
	Actual    string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: key %q has value_type %s but carries a %s value",
		ErrValueTypeMismatch.Error(), e.Key, e.ValueType, e.Actual)
}

func (e *MismatchError) Unwrap() error { return ErrValueTypeMismatch }

// ConstraintError reports an operator that cannot be applied to the predicate's value_type.
type ConstraintError struct {
	Operator  Operator
	ValueType ValueType
	Reason    string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s with %s: %s",
		ErrIllegalOperator.Error(), e.Operator, e.ValueType, e.Reason)
}

func (e *ConstraintError) Unwrap() error { return ErrIllegalOperator }

// PartOrderError reports the first offending position in a multipart sequence.
// Got and Want are part numbers; Want is zero when no particular number was expected.
type PartOrderError struct {
	Position int
	Got      uint64
	Want     uint64
	Reason   string
}

func (e *PartOrderError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("%s: position %d: %s", ErrPartOrder.Error(), e.Position, e.Reason)
	}
	return fmt.Sprintf("%s: position %d: got part %d, want %d: %s",
		ErrPartOrder.Error(), e.Position, e.Got, e.Want, e.Reason)
}

func (e *PartOrderError) Unwrap() error { return ErrPartOrder }

func malformed(message string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrMalformed, message)
	}
	return fmt.Errorf("%w: %s: %v", ErrMalformed, message, err)
}
