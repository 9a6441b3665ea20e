package cli

import (
	"errors"
	"fmt"

	"github.com/ppd-dev/ppd/internal/config"
	"github.com/ppd-dev/ppd/internal/items"
)

// Process exit codes.
const (
	ExitCodeOK           = 0
	ExitCodeError        = 1
	ExitCodeInvalidInput = 2
	ExitCodeConfig       = 3
)

// ExitError carries the exit code a failure should end the process with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by the command tree to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}

	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, items.ErrDuplicateID):
		return ExitCodeInvalidInput
	case errors.Is(err, config.ErrUnsupportedVersion):
		return ExitCodeConfig
	default:
		return ExitCodeError
	}
}
