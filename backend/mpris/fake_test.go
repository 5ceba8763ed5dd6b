package mpris

import (
	"context"
	"errors"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mprisctl/backend/internal/dbus"
)

var errBusDown = errors.New("org.freedesktop.DBus.Error.ServiceUnknown")

type fakeCall struct {
	dest   string
	path   string
	method string
	args   []interface{}
}

// fakeConn is an in-memory bus. Properties are keyed by service then interface.
type fakeConn struct {
	names     []string
	listErr   error
	props     map[string]map[string]map[string]dbus.Variant
	replies   map[string][]interface{}
	callErr   map[string]error
	getAllErr error
	calls     []fakeCall
}

var _ Conn = (*fakeConn)(nil)

func newFakeConn(names ...string) *fakeConn {
	return &fakeConn{
		names:   names,
		props:   map[string]map[string]map[string]dbus.Variant{},
		replies: map[string][]interface{}{},
		callErr: map[string]error{},
	}
}

func (f *fakeConn) setProps(service, iface string, props map[string]dbus.Variant) {
	if f.props[service] == nil {
		f.props[service] = map[string]map[string]dbus.Variant{}
	}
	f.props[service][iface] = props
}

func (f *fakeConn) ListNames(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.names, nil
}

func (f *fakeConn) Call(ctx context.Context, dest, path, method string, args ...interface{}) ([]interface{}, error) {
	f.calls = append(f.calls, fakeCall{dest: dest, path: path, method: method, args: args})
	if err, ok := f.callErr[method]; ok {
		return nil, err
	}
	if method == idbus.PROP_GET {
		iface, _ := args[0].(string)
		prop, _ := args[1].(string)
		v, ok := f.props[dest][iface][prop]
		if !ok {
			return nil, errors.New("org.freedesktop.DBus.Error.InvalidArgs")
		}
		return []interface{}{v}, nil
	}
	return f.replies[method], nil
}

func (f *fakeConn) GetAll(ctx context.Context, dest, path, iface string) (map[string]dbus.Variant, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.props[dest][iface], nil
}

// methods returns the called method names, skipping property reads.
func (f *fakeConn) methods() []string {
	var out []string
	for _, c := range f.calls {
		if c.method != idbus.PROP_GET {
			out = append(out, c.method)
		}
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// variants builds a property map from alternating keys and values.
func variants(kv ...interface{}) map[string]dbus.Variant {
	props := make(map[string]dbus.Variant, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		props[kv[i].(string)] = dbus.MakeVariant(kv[i+1])
	}
	return props
}
