package mpris

import (
	"strconv"
	"strings"
)

// FieldValue is one advertised property rendered as text.
type FieldValue struct {
	Name  string
	Value string
}

// Record is implemented by every property projection.
type Record interface {
	// Field renders the named property. It reports false for unknown names
	// and for properties the player did not advertise.
	Field(name string) (string, bool)
	// Values renders every advertised property in table order.
	Values() []FieldValue
}

var (
	_ Record = (*RootProperties)(nil)
	_ Record = (*PlayerProperties)(nil)
	_ Record = (*Metadata)(nil)
	_ Record = (*TrackListProperties)(nil)
)

type field[R any] struct {
	name  string
	value func(*R) (string, bool)
}

var rootFields = []field[RootProperties]{
	{"Identity", func(p *RootProperties) (string, bool) { return formatString(p.Identity) }},
	{"DesktopEntry", func(p *RootProperties) (string, bool) { return formatString(p.DesktopEntry) }},
	{"Fullscreen", func(p *RootProperties) (string, bool) { return formatBool(p.Fullscreen) }},
	{"HasTrackList", func(p *RootProperties) (string, bool) { return formatBool(p.HasTrackList) }},
	{"SupportedMimeTypes", func(p *RootProperties) (string, bool) { return formatList(p.SupportedMimeTypes) }},
	{"SupportedUriSchemes", func(p *RootProperties) (string, bool) { return formatList(p.SupportedUriSchemes) }},
	{"CanSetFullscreen", func(p *RootProperties) (string, bool) { return formatBool(p.CanSetFullscreen) }},
	{"CanQuit", func(p *RootProperties) (string, bool) { return formatBool(p.CanQuit) }},
	{"CanRaise", func(p *RootProperties) (string, bool) { return formatBool(p.CanRaise) }},
}

var playerFields = []field[PlayerProperties]{
	{"PlaybackStatus", func(p *PlayerProperties) (string, bool) { return formatString(p.PlaybackStatus) }},
	{"LoopStatus", func(p *PlayerProperties) (string, bool) { return formatString(p.LoopStatus) }},
	{"Shuffle", func(p *PlayerProperties) (string, bool) { return formatBool(p.Shuffle) }},
	{"Volume", func(p *PlayerProperties) (string, bool) { return formatFloat(p.Volume) }},
	{"Position", func(p *PlayerProperties) (string, bool) { return formatInt(p.Position) }},
	{"Rate", func(p *PlayerProperties) (string, bool) { return formatFloat(p.Rate) }},
	{"MinimumRate", func(p *PlayerProperties) (string, bool) { return formatFloat(p.MinimumRate) }},
	{"MaximumRate", func(p *PlayerProperties) (string, bool) { return formatFloat(p.MaximumRate) }},
	{"CanControl", func(p *PlayerProperties) (string, bool) { return formatBool(p.CanControl) }},
	{"CanPlay", func(p *PlayerProperties) (string, bool) { return formatBool(p.CanPlay) }},
	{"CanPause", func(p *PlayerProperties) (string, bool) { return formatBool(p.CanPause) }},
	{"CanSeek", func(p *PlayerProperties) (string, bool) { return formatBool(p.CanSeek) }},
	{"CanGoNext", func(p *PlayerProperties) (string, bool) { return formatBool(p.CanGoNext) }},
	{"CanGoPrevious", func(p *PlayerProperties) (string, bool) { return formatBool(p.CanGoPrevious) }},
}

var metadataFields = []field[Metadata]{
	{"mpris:artUrl", func(m *Metadata) (string, bool) { return formatString(m.ArtURL) }},
	{"mpris:length", func(m *Metadata) (string, bool) { return formatInt(m.Length) }},
	{"mpris:trackid", func(m *Metadata) (string, bool) { return formatString(m.TrackID) }},
	{"xesam:album", func(m *Metadata) (string, bool) { return formatString(m.Album) }},
	{"xesam:albumArtist", func(m *Metadata) (string, bool) { return formatList(m.AlbumArtist) }},
	{"xesam:artist", func(m *Metadata) (string, bool) { return formatList(m.Artist) }},
	{"xesam:asText", func(m *Metadata) (string, bool) { return formatString(m.AsText) }},
	{"xesam:audioBPM", func(m *Metadata) (string, bool) { return formatInt(m.AudioBPM) }},
	{"xesam:autoRating", func(m *Metadata) (string, bool) { return formatFloat(m.AutoRating) }},
	{"xesam:comment", func(m *Metadata) (string, bool) { return formatList(m.Comment) }},
	{"xesam:composer", func(m *Metadata) (string, bool) { return formatList(m.Composer) }},
	{"xesam:contentCreated", func(m *Metadata) (string, bool) { return formatString(m.ContentCreated) }},
	{"xesam:discNumber", func(m *Metadata) (string, bool) { return formatInt(m.DiscNumber) }},
	{"xesam:firstUsed", func(m *Metadata) (string, bool) { return formatString(m.FirstUsed) }},
	{"xesam:genre", func(m *Metadata) (string, bool) { return formatList(m.Genre) }},
	{"xesam:lastUsed", func(m *Metadata) (string, bool) { return formatString(m.LastUsed) }},
	{"xesam:lyricist", func(m *Metadata) (string, bool) { return formatList(m.Lyricist) }},
	{"xesam:title", func(m *Metadata) (string, bool) { return formatString(m.Title) }},
	{"xesam:trackNumber", func(m *Metadata) (string, bool) { return formatInt(m.TrackNumber) }},
	{"xesam:url", func(m *Metadata) (string, bool) { return formatString(m.URL) }},
	{"xesam:useCount", func(m *Metadata) (string, bool) { return formatInt(m.UseCount) }},
	{"xesam:userRating", func(m *Metadata) (string, bool) { return formatFloat(m.UserRating) }},
}

var trackListFields = []field[TrackListProperties]{
	{"Tracks", func(t *TrackListProperties) (string, bool) { return formatList(t.Tracks) }},
	{"CanEditTracks", func(t *TrackListProperties) (string, bool) { return formatBool(t.CanEditTracks) }},
}

// Field names in display order.
var (
	RootFields      = fieldNames(rootFields)
	PlayerFields    = fieldNames(playerFields)
	MetadataFields  = fieldNames(metadataFields)
	TrackListFields = fieldNames(trackListFields)
)

func (p *RootProperties) Field(name string) (string, bool) {
	return lookupField(rootFields, p, name)
}

func (p *RootProperties) Values() []FieldValue {
	return fieldValues(rootFields, p)
}

func (p *PlayerProperties) Field(name string) (string, bool) {
	return lookupField(playerFields, p, name)
}

func (p *PlayerProperties) Values() []FieldValue {
	return fieldValues(playerFields, p)
}

func (m *Metadata) Field(name string) (string, bool) {
	return lookupField(metadataFields, m, name)
}

func (m *Metadata) Values() []FieldValue {
	return fieldValues(metadataFields, m)
}

func (t *TrackListProperties) Field(name string) (string, bool) {
	return lookupField(trackListFields, t, name)
}

func (t *TrackListProperties) Values() []FieldValue {
	return fieldValues(trackListFields, t)
}

func fieldNames[R any](fields []field[R]) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

func lookupField[R any](fields []field[R], rec *R, name string) (string, bool) {
	for _, f := range fields {
		if f.name == name {
			return f.value(rec)
		}
	}
	return "", false
}

func fieldValues[R any](fields []field[R], rec *R) []FieldValue {
	values := make([]FieldValue, 0, len(fields))
	for _, f := range fields {
		if v, ok := f.value(rec); ok {
			values = append(values, FieldValue{Name: f.name, Value: v})
		}
	}
	return values
}

func formatString(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}

func formatBool(v *bool) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatBool(*v), true
}

func formatFloat(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatFloat(*v, 'f', -1, 64), true
}

func formatInt(v *int64) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.FormatInt(*v, 10), true
}

func formatList(v []string) (string, bool) {
	if v == nil {
		return "", false
	}
	return strings.Join(v, ", "), true
}
