package mpris

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// TrackList fetches the track list properties of a player advertising HasTrackList
func (p *Player) TrackList(ctx context.Context) (*TrackListProperties, error) {
	props, err := p.getAllProperties(ctx, MPRIS_TRACKLIST_IFACE)
	if err != nil {
		return nil, err
	}
	return trackListPropertiesFrom(props), nil
}

// TracksMetadata fetches the metadata of the given tracks, in the order the player returns them
func (p *Player) TracksMetadata(ctx context.Context, trackIDs []string) ([]Metadata, error) {
	paths := make([]dbus.ObjectPath, len(trackIDs))
	for i, id := range trackIDs {
		paths[i] = dbus.ObjectPath(id)
	}

	body, err := p.call(ctx, MPRIS_METHOD_GET_TRACKS_METADATA, paths)
	if err != nil {
		return nil, err
	}

	var raw []map[string]dbus.Variant
	if err := dbus.Store(body, &raw); err != nil {
		return nil, &DecodeError{Property: "GetTracksMetadata", Value: err}
	}

	tracks := make([]Metadata, 0, len(raw))
	for _, props := range raw {
		tracks = append(tracks, *metadataFrom(props))
	}
	return tracks, nil
}

// AddTrack inserts uri after the track afterID, or first when afterID is empty.
func (p *Player) AddTrack(ctx context.Context, uri, afterID string, setAsCurrent bool) error {
	if err := p.requireEditableTracks(ctx); err != nil {
		return err
	}
	if afterID == "" {
		afterID = MPRIS_NO_TRACK
	}
	return p.command(ctx, MPRIS_METHOD_ADD_TRACK, uri, dbus.ObjectPath(afterID), setAsCurrent)
}

// RemoveTrack removes a track from the track list
func (p *Player) RemoveTrack(ctx context.Context, trackID string) error {
	if err := p.requireEditableTracks(ctx); err != nil {
		return err
	}
	return p.command(ctx, MPRIS_METHOD_REMOVE_TRACK, dbus.ObjectPath(trackID))
}

// GoTo skips to the given track
func (p *Player) GoTo(ctx context.Context, trackID string) error {
	return p.command(ctx, MPRIS_METHOD_GO_TO, dbus.ObjectPath(trackID))
}

func (p *Player) requireEditableTracks(ctx context.Context) error {
	tracks, err := p.TrackList(ctx)
	if err != nil {
		return err
	}
	if tracks.CanEditTracks == nil || !*tracks.CanEditTracks {
		return &CapabilityError{Required: "CanEditTracks"}
	}
	return nil
}
