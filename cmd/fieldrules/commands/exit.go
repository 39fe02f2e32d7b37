package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Exit codes.
const (
	// ExitValid indicates the value passed every rule.
	ExitValid = 0

	// ExitInvalid indicates the value failed a rule.
	ExitInvalid = 1

	// ExitConfig indicates bad rules, a bad rules file or bad usage.
	ExitConfig = 2
)

var (
	errInvalidValue = errors.New("value is invalid")
	errLintFailed   = errors.New("rules file has errors")
)

// ExitError wraps an error with the exit code the process should return.
type ExitError struct {
	Err  error
	Code int
}

func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitValid
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, errInvalidValue) {
		return ExitInvalid
	}
	// bad rules, rules file, config or usage
	return ExitConfig
}

// PrintError writes err and its hints. A failed validation was already
// reported on stdout, so it prints nothing.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errInvalidValue) || errors.Is(err, errLintFailed) {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
