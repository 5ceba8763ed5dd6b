package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/b0bbywan/go-mprisctl/backend"
	"github.com/b0bbywan/go-mprisctl/backend/mpris"
	"github.com/b0bbywan/go-mprisctl/config"
)

const propGet = "org.freedesktop.DBus.Properties.Get"

type busCall struct {
	dest   string
	method string
	args   []interface{}
}

// fakeBus serves property maps per service and interface and records calls
type fakeBus struct {
	names []string
	props map[string]map[string]map[string]dbus.Variant
	calls []busCall
}

var _ mpris.Conn = (*fakeBus)(nil)

func newFakeBus(names ...string) *fakeBus {
	return &fakeBus{names: names, props: map[string]map[string]map[string]dbus.Variant{}}
}

func (f *fakeBus) set(service, iface string, kv ...interface{}) {
	if f.props[service] == nil {
		f.props[service] = map[string]map[string]dbus.Variant{}
	}
	props := map[string]dbus.Variant{}
	for i := 0; i+1 < len(kv); i += 2 {
		props[kv[i].(string)] = dbus.MakeVariant(kv[i+1])
	}
	f.props[service][iface] = props
}

func (f *fakeBus) ListNames(ctx context.Context) ([]string, error) {
	return f.names, nil
}

func (f *fakeBus) Call(ctx context.Context, dest, path, method string, args ...interface{}) ([]interface{}, error) {
	f.calls = append(f.calls, busCall{dest: dest, method: method, args: args})
	if method == propGet {
		v, ok := f.props[dest][args[0].(string)][args[1].(string)]
		if !ok {
			return nil, errors.New("org.freedesktop.DBus.Error.InvalidArgs")
		}
		return []interface{}{v}, nil
	}
	return nil, nil
}

func (f *fakeBus) GetAll(ctx context.Context, dest, path, iface string) (map[string]dbus.Variant, error) {
	return f.props[dest][iface], nil
}

// commandCalls returns the recorded calls, skipping property reads
func (f *fakeBus) commandCalls() []busCall {
	var out []busCall
	for _, c := range f.calls {
		if c.method != propGet {
			out = append(out, c)
		}
	}
	return out
}

func newRoot(t *testing.T, bus *fakeBus) *mpris.Root {
	t.Helper()
	root, err := mpris.New(context.Background(), bus)
	if err != nil {
		t.Fatalf("mpris.New() error = %v", err)
	}
	return root
}

// connectTo returns a Connector handing out a registry over bus
func connectTo(t *testing.T, bus *fakeBus) Connector {
	return func(ctx context.Context, cfg *config.DBusConfig) (*backend.Backend, error) {
		return &backend.Backend{MPRIS: newRoot(t, bus)}, nil
	}
}
