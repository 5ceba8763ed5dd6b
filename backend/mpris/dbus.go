package mpris

import (
	"context"
	"strings"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mprisctl/backend/internal/dbus"
	"github.com/b0bbywan/go-mprisctl/logger"
)

// isPlayerName reports whether a bus name belongs to the MPRIS namespace
func isPlayerName(busName string) bool {
	return strings.HasPrefix(busName, MPRIS_PREFIX+".")
}

// listPlayerNames lists the MPRIS services currently on the bus
func listPlayerNames(ctx context.Context, conn Conn) ([]string, error) {
	names, err := conn.ListNames(ctx)
	if err != nil {
		return nil, &TransportError{Method: idbus.BUS_LIST_NAMES, Err: err}
	}

	players := make([]string, 0)
	for _, name := range names {
		if isPlayerName(name) {
			players = append(players, name)
		}
	}
	return players, nil
}

// call calls a method on the player object
func (p *Player) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	logger.Debug("[mpris] %s on %s", method, p.Name)
	body, err := p.conn.Call(ctx, p.Name, MPRIS_PATH, method, args...)
	if err != nil {
		return nil, &TransportError{Method: method, Err: err}
	}
	return body, nil
}

// getProperty retrieves a single property
func (p *Player) getProperty(ctx context.Context, iface, prop string) (dbus.Variant, error) {
	body, err := p.call(ctx, idbus.PROP_GET, iface, prop)
	if err != nil {
		return dbus.Variant{}, err
	}
	if len(body) == 0 {
		return dbus.Variant{}, &DecodeError{Property: prop, Value: nil}
	}
	v, ok := body[0].(dbus.Variant)
	if !ok {
		return dbus.Variant{}, &DecodeError{Property: prop, Value: body[0]}
	}
	return v, nil
}

// setProperty sets a single property
func (p *Player) setProperty(ctx context.Context, iface, prop string, value dbus.Variant) error {
	_, err := p.call(ctx, idbus.PROP_SET, iface, prop, value)
	return err
}

// getAllProperties retrieves all properties of a D-Bus interface in a single call
func (p *Player) getAllProperties(ctx context.Context, iface string) (map[string]dbus.Variant, error) {
	props, err := p.conn.GetAll(ctx, p.Name, MPRIS_PATH, iface)
	if err != nil {
		return nil, &TransportError{Method: idbus.PROP_GET_ALL, Err: err}
	}
	logger.Debug("[mpris] %s %s properties: %v", p.Name, iface, idbus.Keys(props))
	return props, nil
}
