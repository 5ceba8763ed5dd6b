package backend

import (
	"context"
	"fmt"

	idbus "github.com/b0bbywan/go-mprisctl/backend/internal/dbus"
	"github.com/b0bbywan/go-mprisctl/backend/mpris"
	"github.com/b0bbywan/go-mprisctl/config"
)

type Backend struct {
	Bus   *idbus.Bus
	MPRIS *mpris.Root
}

// New connects to the session bus and discovers the players on it
func New(ctx context.Context, cfg *config.DBusConfig) (*Backend, error) {
	bus, err := idbus.ConnectSession(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("session bus: %w", err)
	}
	return newWithConn(ctx, bus)
}

func newWithConn(ctx context.Context, bus *idbus.Bus) (*Backend, error) {
	root, err := mpris.New(ctx, bus)
	if err != nil {
		bus.Close()
		return nil, err
	}
	return &Backend{Bus: bus, MPRIS: root}, nil
}

func (b *Backend) Close() {
	if b.Bus != nil {
		b.Bus.Close()
	}
}
