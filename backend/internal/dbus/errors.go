package dbus

import (
	"fmt"
	"time"
)

// TimeoutError is returned when a D-Bus call exceeds its deadline.
// The caller names the method when wrapping it.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	if e.Timeout <= 0 {
		return "dbus: call timed out"
	}
	return fmt.Sprintf("dbus: call timed out after %s", e.Timeout)
}

// ClosedError is returned when a call is attempted on a closed bus.
type ClosedError struct{}

func (e *ClosedError) Error() string { return "dbus: connection closed" }
