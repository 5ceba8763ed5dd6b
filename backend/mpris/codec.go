package mpris

import (
	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mprisctl/backend/internal/dbus"
)

// Each list is the only definition of its enumeration: parsing and
// validation both derive from it.
var (
	playbackStatuses = []PlaybackStatus{StatusPlaying, StatusPaused, StatusStopped}
	loopStatuses     = []LoopStatus{LoopNone, LoopTrack, LoopPlaylist}
)

// PlaybackStatuses returns every valid playback status.
func PlaybackStatuses() []PlaybackStatus {
	return append([]PlaybackStatus(nil), playbackStatuses...)
}

// LoopStatuses returns every valid loop status.
func LoopStatuses() []LoopStatus {
	return append([]LoopStatus(nil), loopStatuses...)
}

// ParsePlaybackStatus decodes an exact-case playback status.
func ParsePlaybackStatus(s string) (PlaybackStatus, error) {
	for _, status := range playbackStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", &DecodeError{Property: "PlaybackStatus", Value: s}
}

// ParseLoopStatus decodes an exact-case loop status.
func ParseLoopStatus(s string) (LoopStatus, error) {
	for _, status := range loopStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", &DecodeError{Property: "LoopStatus", Value: s}
}

// Variant encodes the status as the D-Bus string value.
func (s PlaybackStatus) Variant() dbus.Variant {
	return dbus.MakeVariant(string(s))
}

// Variant encodes the status as the D-Bus string value.
func (s LoopStatus) Variant() dbus.Variant {
	return dbus.MakeVariant(string(s))
}

// PlaybackStatusFromVariant decodes a D-Bus value into a PlaybackStatus.
func PlaybackStatusFromVariant(v dbus.Variant) (PlaybackStatus, error) {
	s, ok := idbus.ExtractString(v)
	if !ok {
		return "", &DecodeError{Property: "PlaybackStatus", Value: v.Value()}
	}
	return ParsePlaybackStatus(s)
}

// LoopStatusFromVariant decodes a D-Bus value into a LoopStatus.
func LoopStatusFromVariant(v dbus.Variant) (LoopStatus, error) {
	s, ok := idbus.ExtractString(v)
	if !ok {
		return "", &DecodeError{Property: "LoopStatus", Value: v.Value()}
	}
	return ParseLoopStatus(s)
}

// Status returns the typed playback status.
func (p *PlayerProperties) Status() (PlaybackStatus, error) {
	if p.PlaybackStatus == nil {
		return "", &DecodeError{Property: "PlaybackStatus", Value: nil}
	}
	return ParsePlaybackStatus(*p.PlaybackStatus)
}

// Loop returns the typed loop status.
func (p *PlayerProperties) Loop() (LoopStatus, error) {
	if p.LoopStatus == nil {
		return "", &DecodeError{Property: "LoopStatus", Value: nil}
	}
	return ParseLoopStatus(*p.LoopStatus)
}
