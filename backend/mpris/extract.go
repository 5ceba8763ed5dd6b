package mpris

import (
	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mprisctl/backend/internal/dbus"
)

// extract returns the value stored under key, or nil when the key is missing or
// conv rejects it. A misbehaving player must not fail a whole fetch.
func extract[T any](props map[string]dbus.Variant, key string, conv func(dbus.Variant) (T, bool)) *T {
	v, ok := props[key]
	if !ok {
		return nil
	}
	val, ok := conv(v)
	if !ok {
		return nil
	}
	return &val
}

// extractList is extract for list fields, which stay nil when absent.
func extractList(props map[string]dbus.Variant, key string, conv func(dbus.Variant) ([]string, bool)) []string {
	if v := extract(props, key, conv); v != nil {
		return *v
	}
	return nil
}

func rootPropertiesFrom(props map[string]dbus.Variant) *RootProperties {
	return &RootProperties{
		Identity:            extract(props, "Identity", idbus.ExtractString),
		DesktopEntry:        extract(props, "DesktopEntry", idbus.ExtractString),
		Fullscreen:          extract(props, "Fullscreen", idbus.ExtractBool),
		HasTrackList:        extract(props, "HasTrackList", idbus.ExtractBool),
		SupportedMimeTypes:  extractList(props, "SupportedMimeTypes", idbus.ExtractStringSlice),
		SupportedUriSchemes: extractList(props, "SupportedUriSchemes", idbus.ExtractStringSlice),

		CanSetFullscreen: extract(props, "CanSetFullscreen", idbus.ExtractBool),
		CanQuit:          extract(props, "CanQuit", idbus.ExtractBool),
		CanRaise:         extract(props, "CanRaise", idbus.ExtractBool),
	}
}

func playerPropertiesFrom(props map[string]dbus.Variant) *PlayerProperties {
	return &PlayerProperties{
		PlaybackStatus: extract(props, "PlaybackStatus", idbus.ExtractString),
		LoopStatus:     extract(props, "LoopStatus", idbus.ExtractString),
		Shuffle:        extract(props, "Shuffle", idbus.ExtractBool),
		Volume:         extract(props, "Volume", idbus.ExtractFloat64),
		Position:       extract(props, "Position", idbus.ExtractInt64),
		Rate:           extract(props, "Rate", idbus.ExtractFloat64),
		MinimumRate:    extract(props, "MinimumRate", idbus.ExtractFloat64),
		MaximumRate:    extract(props, "MaximumRate", idbus.ExtractFloat64),

		CanControl:    extract(props, "CanControl", idbus.ExtractBool),
		CanPlay:       extract(props, "CanPlay", idbus.ExtractBool),
		CanPause:      extract(props, "CanPause", idbus.ExtractBool),
		CanSeek:       extract(props, "CanSeek", idbus.ExtractBool),
		CanGoNext:     extract(props, "CanGoNext", idbus.ExtractBool),
		CanGoPrevious: extract(props, "CanGoPrevious", idbus.ExtractBool),
	}
}

func metadataFrom(props map[string]dbus.Variant) *Metadata {
	return &Metadata{
		ArtURL:         extract(props, "mpris:artUrl", idbus.ExtractString),
		Length:         extract(props, "mpris:length", idbus.ExtractInt64),
		TrackID:        extract(props, "mpris:trackid", idbus.ExtractObjectPath),
		Album:          extract(props, "xesam:album", idbus.ExtractString),
		AlbumArtist:    extractList(props, "xesam:albumArtist", idbus.ExtractStringSlice),
		Artist:         extractList(props, "xesam:artist", idbus.ExtractStringSlice),
		AsText:         extract(props, "xesam:asText", idbus.ExtractString),
		AudioBPM:       extract(props, "xesam:audioBPM", idbus.ExtractInt64),
		AutoRating:     extract(props, "xesam:autoRating", idbus.ExtractFloat64),
		Comment:        extractList(props, "xesam:comment", idbus.ExtractStringSlice),
		Composer:       extractList(props, "xesam:composer", idbus.ExtractStringSlice),
		ContentCreated: extract(props, "xesam:contentCreated", idbus.ExtractString),
		DiscNumber:     extract(props, "xesam:discNumber", idbus.ExtractInt64),
		FirstUsed:      extract(props, "xesam:firstUsed", idbus.ExtractString),
		Genre:          extractList(props, "xesam:genre", idbus.ExtractStringSlice),
		LastUsed:       extract(props, "xesam:lastUsed", idbus.ExtractString),
		Lyricist:       extractList(props, "xesam:lyricist", idbus.ExtractStringSlice),
		Title:          extract(props, "xesam:title", idbus.ExtractString),
		TrackNumber:    extract(props, "xesam:trackNumber", idbus.ExtractInt64),
		URL:            extract(props, "xesam:url", idbus.ExtractString),
		UseCount:       extract(props, "xesam:useCount", idbus.ExtractInt64),
		UserRating:     extract(props, "xesam:userRating", idbus.ExtractFloat64),
	}
}

func trackListPropertiesFrom(props map[string]dbus.Variant) *TrackListProperties {
	return &TrackListProperties{
		Tracks:        extractList(props, "Tracks", idbus.ExtractObjectPathSlice),
		CanEditTracks: extract(props, "CanEditTracks", idbus.ExtractBool),
	}
}
