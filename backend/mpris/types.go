package mpris

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// PlaybackStatus represents the current playback state
type PlaybackStatus string

// LoopStatus represents the current loop/repeat state
type LoopStatus string

// Conn is the bus transport a Root and its players talk through.
// Property reads and writes are plain calls on org.freedesktop.DBus.Properties.
type Conn interface {
	ListNames(ctx context.Context) ([]string, error)
	Call(ctx context.Context, dest, path, method string, args ...interface{}) ([]interface{}, error)
	GetAll(ctx context.Context, dest, path, iface string) (map[string]dbus.Variant, error)
}

// Root tracks the discovered players and the one currently selected.
// It is meant for a single caller and does no locking.
type Root struct {
	conn    Conn
	players []string
	index   int // -1 when nothing is selected
	player  *Player
}

// Player is a handle on one MPRIS service. It holds no state besides its
// identity and may be copied freely.
type Player struct {
	conn Conn
	Name string `json:"bus_name"`
}

// RootProperties holds the org.mpris.MediaPlayer2 properties.
// A nil field was not advertised or could not be decoded.
type RootProperties struct {
	Identity            *string  `json:"identity,omitempty"`
	DesktopEntry        *string  `json:"desktop_entry,omitempty"`
	Fullscreen          *bool    `json:"fullscreen,omitempty"`
	HasTrackList        *bool    `json:"has_track_list,omitempty"`
	SupportedMimeTypes  []string `json:"supported_mime_types,omitempty"`
	SupportedUriSchemes []string `json:"supported_uri_schemes,omitempty"`

	CanSetFullscreen *bool `json:"can_set_fullscreen,omitempty"`
	CanQuit          *bool `json:"can_quit,omitempty"`
	CanRaise         *bool `json:"can_raise,omitempty"`
}

// PlayerProperties holds the org.mpris.MediaPlayer2.Player properties.
// PlaybackStatus and LoopStatus keep the raw advertised string, use
// Status and Loop for the typed values.
type PlayerProperties struct {
	PlaybackStatus *string  `json:"playback_status,omitempty"`
	LoopStatus     *string  `json:"loop_status,omitempty"`
	Shuffle        *bool    `json:"shuffle,omitempty"`
	Volume         *float64 `json:"volume,omitempty"`
	Position       *int64   `json:"position,omitempty"`
	Rate           *float64 `json:"rate,omitempty"`
	MinimumRate    *float64 `json:"minimum_rate,omitempty"`
	MaximumRate    *float64 `json:"maximum_rate,omitempty"`

	CanControl    *bool `json:"can_control,omitempty"`
	CanPlay       *bool `json:"can_play,omitempty"`
	CanPause      *bool `json:"can_pause,omitempty"`
	CanSeek       *bool `json:"can_seek,omitempty"`
	CanGoNext     *bool `json:"can_go_next,omitempty"`
	CanGoPrevious *bool `json:"can_go_previous,omitempty"`
}

// Metadata describes a track, keyed by the mpris: and xesam: names.
type Metadata struct {
	ArtURL         *string  `json:"art_url,omitempty"`
	Length         *int64   `json:"length,omitempty"`
	TrackID        *string  `json:"track_id,omitempty"`
	Album          *string  `json:"album,omitempty"`
	AlbumArtist    []string `json:"album_artist,omitempty"`
	Artist         []string `json:"artist,omitempty"`
	AsText         *string  `json:"as_text,omitempty"`
	AudioBPM       *int64   `json:"audio_bpm,omitempty"`
	AutoRating     *float64 `json:"auto_rating,omitempty"`
	Comment        []string `json:"comment,omitempty"`
	Composer       []string `json:"composer,omitempty"`
	ContentCreated *string  `json:"content_created,omitempty"`
	DiscNumber     *int64   `json:"disc_number,omitempty"`
	FirstUsed      *string  `json:"first_used,omitempty"`
	Genre          []string `json:"genre,omitempty"`
	LastUsed       *string  `json:"last_used,omitempty"`
	Lyricist       []string `json:"lyricist,omitempty"`
	Title          *string  `json:"title,omitempty"`
	TrackNumber    *int64   `json:"track_number,omitempty"`
	URL            *string  `json:"url,omitempty"`
	UseCount       *int64   `json:"use_count,omitempty"`
	UserRating     *float64 `json:"user_rating,omitempty"`
}

// TrackListProperties holds the org.mpris.MediaPlayer2.TrackList properties.
type TrackListProperties struct {
	Tracks        []string `json:"tracks,omitempty"`
	CanEditTracks *bool    `json:"can_edit_tracks,omitempty"`
}
