package cli

import (
	"fmt"
	"io"

	"github.com/b0bbywan/go-mprisctl/backend/mpris"
)

// printRecord prints every advertised field as "Name: value", or only the
// bare value of field when one is given. Unknown or absent fields print nothing.
func printRecord(w io.Writer, rec mpris.Record, field string) {
	if field != "" {
		if v, ok := rec.Field(field); ok {
			fmt.Fprintln(w, v)
		}
		return
	}
	for _, fv := range rec.Values() {
		fmt.Fprintf(w, "%s: %s\n", fv.Name, fv.Value)
	}
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// nowPlaying renders "Artist - Title" from whatever the metadata carries
func nowPlaying(m *mpris.Metadata) string {
	title, hasTitle := m.Field("xesam:title")
	artist, hasArtist := m.Field("xesam:artist")
	switch {
	case hasTitle && hasArtist && artist != "":
		return artist + " - " + title
	case hasTitle:
		return title
	default:
		url, _ := m.Field("xesam:url")
		return url
	}
}
