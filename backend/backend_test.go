package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	idbus "github.com/b0bbywan/go-mprisctl/backend/internal/dbus"
	"github.com/b0bbywan/go-mprisctl/backend/mpris"
	"github.com/b0bbywan/go-mprisctl/config"
)

func TestNewSessionBus(t *testing.T) {
	b, err := New(context.Background(), &config.DBusConfig{Timeout: time.Second})
	if err != nil {
		t.Skipf("Skipping test - D-Bus session bus unavailable (expected in test env): %v", err)
	}
	defer b.Close()

	if b.Bus == nil || b.MPRIS == nil {
		t.Fatal("New() should set both the bus and the registry")
	}
	if b.Bus.Timeout() != time.Second {
		t.Errorf("Bus.Timeout() = %v, want 1s", b.Bus.Timeout())
	}
	for _, name := range b.MPRIS.Players() {
		if len(name) <= len(mpris.MPRIS_PREFIX) {
			t.Errorf("discovered non-MPRIS name %q", name)
		}
	}
}

func TestNewClosedBus(t *testing.T) {
	bus := idbus.NewBus(nil, 0)

	_, err := newWithConn(context.Background(), bus)
	var transportErr *mpris.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("newWithConn() error = %v, want TransportError", err)
	}
	var closedErr *idbus.ClosedError
	if !errors.As(err, &closedErr) {
		t.Errorf("error should wrap ClosedError, got %v", err)
	}
}

func TestCloseTwice(t *testing.T) {
	b := &Backend{Bus: idbus.NewBus(nil, 0)}
	b.Close()
	b.Close()

	(&Backend{}).Close()
}
