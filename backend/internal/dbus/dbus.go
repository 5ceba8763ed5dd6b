package dbus

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/godbus/dbus/v5"
)

// DefaultTimeout is the timeout used for D-Bus calls when none is configured.
var DefaultTimeout = 5 * time.Second

// Bus is a session bus connection bounding every call with a timeout.
// It is safe to share between players: godbus serializes calls on the connection.
type Bus struct {
	conn    *dbus.Conn
	timeout time.Duration
}

// ConnectSession opens a private connection to the session bus.
func ConnectSession(timeout time.Duration) (*Bus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return NewBus(conn, timeout), nil
}

// NewBus wraps an existing connection.
func NewBus(conn *dbus.Conn, timeout time.Duration) *Bus {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bus{conn: conn, timeout: timeout}
}

// Timeout returns the per-call deadline.
func (b *Bus) Timeout() time.Duration {
	return b.timeout
}

// call executes method on obj, bounded by the bus timeout.
func (b *Bus) call(ctx context.Context, obj dbus.BusObject, method string, args ...interface{}) (*dbus.Call, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	call := obj.CallWithContext(ctx, method, 0, args...)
	if call.Err != nil {
		if errors.Is(call.Err, context.DeadlineExceeded) {
			return nil, &TimeoutError{Timeout: b.timeout}
		}
		return nil, call.Err
	}
	return call, nil
}

// ListNames returns every name currently owned on the bus.
func (b *Bus) ListNames(ctx context.Context) ([]string, error) {
	if b.conn == nil {
		return nil, &ClosedError{}
	}
	call, err := b.call(ctx, b.conn.BusObject(), BUS_LIST_NAMES)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := call.Store(&names); err != nil {
		return nil, err
	}
	return names, nil
}

// Call invokes method on the object at path owned by dest and returns the reply body.
func (b *Bus) Call(ctx context.Context, dest, path, method string, args ...interface{}) ([]interface{}, error) {
	if b.conn == nil {
		return nil, &ClosedError{}
	}
	call, err := b.call(ctx, GetObject(b.conn, dest, path), method, args...)
	if err != nil {
		return nil, err
	}
	return call.Body, nil
}

// GetAll retrieves all properties of a D-Bus interface in a single call.
func (b *Bus) GetAll(ctx context.Context, dest, path, iface string) (map[string]dbus.Variant, error) {
	if b.conn == nil {
		return nil, &ClosedError{}
	}
	call, err := b.call(ctx, GetObject(b.conn, dest, path), PROP_GET_ALL, iface)
	if err != nil {
		return nil, err
	}
	var props map[string]dbus.Variant
	if err := call.Store(&props); err != nil {
		return nil, err
	}
	return props, nil
}

// Close closes the underlying connection. Safe to call more than once.
func (b *Bus) Close() error {
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	return err
}

// GetObject returns a D-Bus object for the given service and object path.
func GetObject(conn *dbus.Conn, service, path string) dbus.BusObject {
	return conn.Object(service, dbus.ObjectPath(path))
}

// --- Variant extraction helpers ---

// ExtractString extracts a string from a dbus.Variant.
func ExtractString(v dbus.Variant) (string, bool) {
	val, ok := v.Value().(string)
	return val, ok
}

// ExtractBool extracts a bool from a dbus.Variant.
func ExtractBool(v dbus.Variant) (bool, bool) {
	val, ok := v.Value().(bool)
	return val, ok
}

// ExtractInt64 extracts an int64 from a dbus.Variant.
// Every integer type that fits in an int64 is accepted: players disagree on
// whether lengths and counters are 'x', 'i', 'u' or 't'.
func ExtractInt64(v dbus.Variant) (int64, bool) {
	switch val := v.Value().(type) {
	case int64:
		return val, true
	case int32:
		return int64(val), true
	case int16:
		return int64(val), true
	case byte:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		if val > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	default:
		return 0, false
	}
}

// ExtractFloat64 extracts a float64 from a dbus.Variant.
func ExtractFloat64(v dbus.Variant) (float64, bool) {
	val, ok := v.Value().(float64)
	return val, ok
}

// ExtractStringSlice extracts a []string from a dbus.Variant.
// An advertised empty list yields an empty, non-nil slice.
func ExtractStringSlice(v dbus.Variant) ([]string, bool) {
	val, ok := v.Value().([]string)
	if !ok {
		return nil, false
	}
	if val == nil {
		val = []string{}
	}
	return val, true
}

// ExtractObjectPath extracts an object path from a dbus.Variant.
// Plain strings are accepted, some players send track ids as 's'.
func ExtractObjectPath(v dbus.Variant) (string, bool) {
	switch val := v.Value().(type) {
	case dbus.ObjectPath:
		return string(val), true
	case string:
		return val, true
	default:
		return "", false
	}
}

// ExtractObjectPathSlice extracts a list of object paths from a dbus.Variant.
func ExtractObjectPathSlice(v dbus.Variant) ([]string, bool) {
	switch val := v.Value().(type) {
	case []dbus.ObjectPath:
		out := make([]string, len(val))
		for i, p := range val {
			out[i] = string(p)
		}
		return out, true
	case []string:
		return ExtractStringSlice(v)
	default:
		return nil, false
	}
}

// ExtractVariantMap extracts a map[string]dbus.Variant from a dbus.Variant.
func ExtractVariantMap(v dbus.Variant) (map[string]dbus.Variant, bool) {
	val, ok := v.Value().(map[string]dbus.Variant)
	return val, ok
}

// Keys returns the keys of a props map (useful for debug logging).
func Keys(props map[string]dbus.Variant) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	return keys
}
