package cli

import (
	"errors"
	"fmt"
)

// UsageError indicates a malformed command line. It exits with status 2 and
// prints the usage after the message.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}
