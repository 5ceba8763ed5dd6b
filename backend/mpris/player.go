package mpris

import (
	"context"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mprisctl/backend/internal/dbus"
	"github.com/b0bbywan/go-mprisctl/logger"
)

// NewPlayer binds a handle to busName on conn.
func NewPlayer(conn Conn, busName string) *Player {
	return &Player{
		conn: conn,
		Name: busName,
	}
}

func (p *Player) command(ctx context.Context, method string, args ...interface{}) error {
	_, err := p.call(ctx, method, args...)
	return err
}

// Next skips to the next track
func (p *Player) Next(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_NEXT)
}

// Previous skips to the previous track
func (p *Player) Previous(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_PREVIOUS)
}

// Play starts or resumes playback
func (p *Player) Play(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_PLAY)
}

// Pause pauses playback
func (p *Player) Pause(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_PAUSE)
}

// PlayPause toggles between play and pause
func (p *Player) PlayPause(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_PLAY_PAUSE)
}

// Stop stops playback
func (p *Player) Stop(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_STOP)
}

// Raise brings the player's user interface to the front
func (p *Player) Raise(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_RAISE)
}

// Quit asks the player to exit
func (p *Player) Quit(ctx context.Context) error {
	return p.command(ctx, MPRIS_METHOD_QUIT)
}

// OpenURI opens and plays uri
func (p *Player) OpenURI(ctx context.Context, uri string) error {
	return p.command(ctx, MPRIS_METHOD_OPEN_URI, uri)
}

// Seek moves the position by offset microseconds, backwards when negative
func (p *Player) Seek(ctx context.Context, offset int64) error {
	return p.command(ctx, MPRIS_METHOD_SEEK, offset)
}

// SetPosition moves to an absolute position in the current track.
// Without a current track there is nothing to seek in and no call is made.
func (p *Player) SetPosition(ctx context.Context, position int64) error {
	metadata, err := p.Metadata(ctx)
	if err != nil {
		return err
	}
	if metadata.TrackID == nil || *metadata.TrackID == MPRIS_NO_TRACK {
		logger.Debug("[mpris] %s has no current track, ignoring set position", p.Name)
		return nil
	}
	return p.command(ctx, MPRIS_METHOD_SET_POSITION, dbus.ObjectPath(*metadata.TrackID), position)
}

// SetVolume sets the volume, 1.0 being the player's nominal volume
func (p *Player) SetVolume(ctx context.Context, volume float64) error {
	return p.setProperty(ctx, MPRIS_PLAYER_IFACE, "Volume", dbus.MakeVariant(volume))
}

// SetRate sets the playback rate
func (p *Player) SetRate(ctx context.Context, rate float64) error {
	return p.setProperty(ctx, MPRIS_PLAYER_IFACE, "Rate", dbus.MakeVariant(rate))
}

// SetShuffle enables or disables shuffle
func (p *Player) SetShuffle(ctx context.Context, enabled bool) error {
	return p.setProperty(ctx, MPRIS_PLAYER_IFACE, "Shuffle", dbus.MakeVariant(enabled))
}

// SetLoopStatus sets the loop status
func (p *Player) SetLoopStatus(ctx context.Context, status LoopStatus) error {
	return p.setProperty(ctx, MPRIS_PLAYER_IFACE, "LoopStatus", status.Variant())
}

// SetFullscreen enables or disables fullscreen
func (p *Player) SetFullscreen(ctx context.Context, enabled bool) error {
	return p.setProperty(ctx, MPRIS_INTERFACE, "Fullscreen", dbus.MakeVariant(enabled))
}

// Volume returns the current volume
func (p *Player) Volume(ctx context.Context) (float64, error) {
	v, err := p.getProperty(ctx, MPRIS_PLAYER_IFACE, "Volume")
	if err != nil {
		return 0, err
	}
	volume, ok := idbus.ExtractFloat64(v)
	if !ok {
		return 0, &DecodeError{Property: "Volume", Value: v.Value()}
	}
	return volume, nil
}

// PlaybackStatus returns the current playback status
func (p *Player) PlaybackStatus(ctx context.Context) (PlaybackStatus, error) {
	v, err := p.getProperty(ctx, MPRIS_PLAYER_IFACE, "PlaybackStatus")
	if err != nil {
		return "", err
	}
	return PlaybackStatusFromVariant(v)
}

// LoopStatus returns the current loop status
func (p *Player) LoopStatus(ctx context.Context) (LoopStatus, error) {
	v, err := p.getProperty(ctx, MPRIS_PLAYER_IFACE, "LoopStatus")
	if err != nil {
		return "", err
	}
	return LoopStatusFromVariant(v)
}

// Properties fetches the player interface properties
func (p *Player) Properties(ctx context.Context) (*PlayerProperties, error) {
	props, err := p.getAllProperties(ctx, MPRIS_PLAYER_IFACE)
	if err != nil {
		return nil, err
	}
	return playerPropertiesFrom(props), nil
}

// RootProperties fetches the root interface properties
func (p *Player) RootProperties(ctx context.Context) (*RootProperties, error) {
	props, err := p.getAllProperties(ctx, MPRIS_INTERFACE)
	if err != nil {
		return nil, err
	}
	return rootPropertiesFrom(props), nil
}

// Metadata fetches the metadata of the current track
func (p *Player) Metadata(ctx context.Context) (*Metadata, error) {
	v, err := p.getProperty(ctx, MPRIS_PLAYER_IFACE, "Metadata")
	if err != nil {
		return nil, err
	}
	props, ok := idbus.ExtractVariantMap(v)
	if !ok {
		return nil, &DecodeError{Property: "Metadata", Value: v.Value()}
	}
	return metadataFrom(props), nil
}
