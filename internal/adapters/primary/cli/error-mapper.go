package cli

import (
	"errors"
	"fmt"

	"modeldb-common/internal/core/services"
	"modeldb-common/pkg/common"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
	ExitMalformed  = 3
	ExitUsage      = 64
)

var errUsage = errors.New("usage")

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func (e *ExitError) ExitCode() int { return e.Code }

func usageError(err error) error {
	return fmt.Errorf("%w: %w", errUsage, err)
}

func mapDomainError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	// Malformed input
	case errors.Is(err, common.ErrMalformed):
		return &ExitError{Code: ExitMalformed, Err: err}

	// Validation errors
	case errors.Is(err, common.ErrMissingKey),
		errors.Is(err, common.ErrValueTypeMismatch),
		errors.Is(err, common.ErrInvalidBlob),
		errors.Is(err, common.ErrIllegalOperator),
		errors.Is(err, common.ErrPartOrder),
		errors.Is(err, common.ErrInvalidPagination):
		return &ExitError{Code: ExitValidation, Err: err}

	// Usage errors
	case errors.Is(err, errUsage),
		errors.Is(err, services.ErrUnknownEnum):
		return &ExitError{Code: ExitUsage, Err: err}

	default:
		return &ExitError{Code: ExitFailure, Err: err}
	}
}
