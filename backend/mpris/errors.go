package mpris

import "fmt"

// NoPlayerError indicates that an operation needs a selected player and there is none
type NoPlayerError struct{}

func (e *NoPlayerError) Error() string {
	return "no player found"
}

// PlayerNotFoundError indicates that a player doesn't exist
type PlayerNotFoundError struct {
	BusName string
}

func (e *PlayerNotFoundError) Error() string {
	return "player not found: " + e.BusName
}

// TransportError wraps a failed bus call. The underlying error is kept as is.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return e.Method + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates that a property held a value of the wrong type or an
// unknown enumeration string
type DecodeError struct {
	Property string
	Value    interface{}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s value: %v", e.Property, e.Value)
}

// CapabilityError indicates that an action is not supported by the player
type CapabilityError struct {
	Required string
}

func (e *CapabilityError) Error() string {
	return "action not allowed (requires " + e.Required + ")"
}
