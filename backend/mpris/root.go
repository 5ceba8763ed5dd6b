package mpris

import (
	"context"
	"sort"
	"time"

	"github.com/b0bbywan/go-mprisctl/logger"
)

// New discovers the MPRIS players on conn and selects the first one in
// lexicographic order, if any.
func New(ctx context.Context, conn Conn) (*Root, error) {
	start := time.Now()

	players, err := listPlayerNames(ctx, conn)
	if err != nil {
		return nil, err
	}
	sort.Strings(players)

	logger.Debug("[mpris] listed %d players in %s", len(players), time.Since(start))

	root := &Root{
		conn:    conn,
		players: players,
		index:   -1,
	}
	if len(players) > 0 {
		root.selectIndex(0)
	}
	return root, nil
}

// Players returns the discovered players in selection order
func (r *Root) Players() []string {
	return append([]string(nil), r.players...)
}

// Player returns the selected player
func (r *Root) Player() (*Player, error) {
	if r.player == nil {
		return nil, &NoPlayerError{}
	}
	return r.player, nil
}

// SetPlayer selects busName, which must be one of the discovered players.
// The selection is left untouched on failure.
func (r *Root) SetPlayer(busName string) error {
	for i, name := range r.players {
		if name == busName {
			r.selectIndex(i)
			return nil
		}
	}
	return &PlayerNotFoundError{BusName: busName}
}

// NextPlayer selects the following player, wrapping around. No-op without a selection.
func (r *Root) NextPlayer() error {
	if r.index < 0 {
		return nil
	}
	return r.SetPlayer(r.players[(r.index+1)%len(r.players)])
}

// PreviousPlayer selects the preceding player, wrapping around. No-op without a selection.
func (r *Root) PreviousPlayer() error {
	if r.index < 0 {
		return nil
	}
	n := len(r.players)
	return r.SetPlayer(r.players[(r.index-1+n)%n])
}

func (r *Root) selectIndex(i int) {
	r.index = i
	r.player = NewPlayer(r.conn, r.players[i])
	logger.Debug("[mpris] selected player %s (%d/%d)", r.players[i], i+1, len(r.players))
}

// Raise raises the selected player
func (r *Root) Raise(ctx context.Context) error {
	player, err := r.Player()
	if err != nil {
		return err
	}
	return player.Raise(ctx)
}

// Quit quits the selected player
func (r *Root) Quit(ctx context.Context) error {
	player, err := r.Player()
	if err != nil {
		return err
	}
	return player.Quit(ctx)
}

// SetFullscreen toggles fullscreen on the selected player
func (r *Root) SetFullscreen(ctx context.Context, enabled bool) error {
	player, err := r.Player()
	if err != nil {
		return err
	}
	return player.SetFullscreen(ctx, enabled)
}

// Properties fetches the root properties of the selected player
func (r *Root) Properties(ctx context.Context) (*RootProperties, error) {
	player, err := r.Player()
	if err != nil {
		return nil, err
	}
	return player.RootProperties(ctx)
}
