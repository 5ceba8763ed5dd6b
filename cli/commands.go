package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/b0bbywan/go-mprisctl/backend/mpris"
)

// invocation holds the positional arguments of a command and, for commands
// declaring their own flags, the parsed flag set.
type invocation struct {
	args  []string
	flags *pflag.FlagSet
}

func (inv invocation) arg(i int) string {
	if i < len(inv.args) {
		return inv.args[i]
	}
	return ""
}

type command struct {
	name  string
	args  string
	about string
	// min and max bound the positional arguments, max < 0 means unbounded
	min, max int
	flags    func(fs *pflag.FlagSet)
	run      func(ctx context.Context, a *App, inv invocation) error
}

// commands lists the subcommands in help order
var commands = []command{
	{name: "next-player", about: "Switch to next player", run: func(ctx context.Context, a *App, _ invocation) error {
		return a.root.NextPlayer()
	}},
	{name: "previous-player", about: "Switch to previous player", run: func(ctx context.Context, a *App, _ invocation) error {
		return a.root.PreviousPlayer()
	}},
	{name: "set-player", args: "NAME", about: "Set active player", min: 1, max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		return a.root.SetPlayer(inv.arg(0))
	}},
	{name: "raise", about: "Raise active player", run: func(ctx context.Context, a *App, _ invocation) error {
		return a.root.Raise(ctx)
	}},
	{name: "quit", about: "Quit active player", run: func(ctx context.Context, a *App, _ invocation) error {
		return a.root.Quit(ctx)
	}},
	{name: "set-fullscreen", args: "true|false", about: "Set fullscreen of active player", min: 1, max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		enabled, err := parseBool("fullscreen", inv.arg(0))
		if err != nil {
			return err
		}
		return a.root.SetFullscreen(ctx, enabled)
	}},

	{name: "next", about: "Skip to next track", run: playerCommand((*mpris.Player).Next)},
	{name: "previous", about: "Skip to previous track", run: playerCommand((*mpris.Player).Previous)},
	{name: "play", about: "Play current track", run: playerCommand((*mpris.Player).Play)},
	{name: "pause", about: "Pause current track", run: playerCommand((*mpris.Player).Pause)},
	{name: "play-pause", about: "Play/Pause current track", run: playerCommand((*mpris.Player).PlayPause)},
	{name: "stop", about: "Stop current track", run: playerCommand((*mpris.Player).Stop)},
	{name: "seek", args: "OFFSET", about: "Seek by OFFSET microseconds in current track", min: 1, max: 1, run: seek},
	{name: "set-position", args: "POSITION", about: "Set the position of current track in microseconds", min: 1, max: 1, run: setPosition},
	{name: "set-volume", args: "VOLUME[+|-]", about: "Set the volume (0-1), or change it with a '+' or '-' suffix", min: 1, max: 1, run: setVolume},
	{name: "set-rate", args: "RATE", about: "Set the playback rate", min: 1, max: 1, run: setRate},
	{name: "set-shuffle", args: "true|false", about: "Set shuffle of active player", min: 1, max: 1, run: setShuffle},
	{name: "set-loop", args: "none|track|playlist", about: "Set the loop status of active player", min: 1, max: 1, run: setLoop},
	{name: "open", args: "URI", about: "Open URI to play", min: 1, max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		p, err := a.root.Player()
		if err != nil {
			return err
		}
		return p.OpenURI(ctx, inv.arg(0))
	}},

	{name: "player", about: "Print active player", run: func(ctx context.Context, a *App, _ invocation) error {
		p, err := a.root.Player()
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, p.Name)
		return nil
	}},
	{name: "players", about: "Print all players", run: func(ctx context.Context, a *App, _ invocation) error {
		printLines(a.out, a.root.Players())
		return nil
	}},
	{name: "status", about: "Print playback status and current track", run: status},
	{name: "metadata", args: "[FIELD]", about: "Print metadata of current track", max: 1, run: metadata},
	{name: "properties", args: "[FIELD]", about: "Print root properties", max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		props, err := a.root.Properties(ctx)
		if err != nil {
			return err
		}
		printRecord(a.out, props, inv.arg(0))
		return nil
	}},
	{name: "player-properties", args: "[FIELD]", about: "Print active player properties", max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		p, err := a.root.Player()
		if err != nil {
			return err
		}
		props, err := p.Properties(ctx)
		if err != nil {
			return err
		}
		printRecord(a.out, props, inv.arg(0))
		return nil
	}},

	{name: "tracklist", args: "[FIELD]", about: "Print track list properties", max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		p, err := a.root.Player()
		if err != nil {
			return err
		}
		tracks, err := p.TrackList(ctx)
		if err != nil {
			return err
		}
		printRecord(a.out, tracks, inv.arg(0))
		return nil
	}},
	{name: "tracks-metadata", args: "ID...", about: "Print metadata of tracks in the track list", min: 1, max: -1, run: tracksMetadata},
	{name: "add-track", args: "URI [AFTER_ID] [--current]", about: "Add URI to the track list after AFTER_ID, or first", min: 1, max: 2,
		flags: func(fs *pflag.FlagSet) {
			fs.Bool("current", false, "make the added track current")
		},
		run: addTrack,
	},
	{name: "remove-track", args: "ID", about: "Remove a track from the track list", min: 1, max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		p, err := a.root.Player()
		if err != nil {
			return err
		}
		return p.RemoveTrack(ctx, inv.arg(0))
	}},
	{name: "go-to", args: "ID", about: "Skip to a track of the track list", min: 1, max: 1, run: func(ctx context.Context, a *App, inv invocation) error {
		p, err := a.root.Player()
		if err != nil {
			return err
		}
		return p.GoTo(ctx, inv.arg(0))
	}},
}

func lookupCommand(name string) (*command, bool) {
	for i := range commands {
		if commands[i].name == name {
			return &commands[i], true
		}
	}
	return nil, false
}

// parse validates the raw arguments of cmd
func (c *command) parse(raw []string) (invocation, error) {
	inv := invocation{args: raw}
	if c.flags != nil {
		fs := pflag.NewFlagSet(c.name, pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		c.flags(fs)
		if err := fs.Parse(raw); err != nil {
			return inv, usageErrorf("%s: %v", c.name, err)
		}
		inv = invocation{args: fs.Args(), flags: fs}
	}

	n := len(inv.args)
	switch {
	case n < c.min:
		return inv, usageErrorf("%s: missing argument %s", c.name, c.args)
	case c.max >= 0 && n > c.max:
		return inv, usageErrorf("%s: unexpected argument %q", c.name, inv.args[c.max])
	}
	return inv, nil
}

func playerCommand(fn func(*mpris.Player, context.Context) error) func(context.Context, *App, invocation) error {
	return func(ctx context.Context, a *App, _ invocation) error {
		p, err := a.root.Player()
		if err != nil {
			return err
		}
		return fn(p, ctx)
	}
}

func parseInt64(what, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, usageErrorf("invalid %s %q: expected an integer", what, s)
	}
	return v, nil
}

func parseFloat(what, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, usageErrorf("invalid %s %q: expected a number", what, s)
	}
	return v, nil
}

func parseBool(what, s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, usageErrorf("invalid %s %q: expected true or false", what, s)
}

func parseLoop(s string) (mpris.LoopStatus, error) {
	for _, status := range mpris.LoopStatuses() {
		if strings.EqualFold(string(status), s) {
			return status, nil
		}
	}
	return "", usageErrorf("invalid loop status %q: expected none, track or playlist", s)
}

func seek(ctx context.Context, a *App, inv invocation) error {
	offset, err := parseInt64("offset", inv.arg(0))
	if err != nil {
		return err
	}
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	return p.Seek(ctx, offset)
}

func setPosition(ctx context.Context, a *App, inv invocation) error {
	position, err := parseInt64("position", inv.arg(0))
	if err != nil {
		return err
	}
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	return p.SetPosition(ctx, position)
}

func setVolume(ctx context.Context, a *App, inv invocation) error {
	vol, err := parseVolume(inv.arg(0))
	if err != nil {
		return err
	}
	p, err := a.root.Player()
	if err != nil {
		return err
	}

	target := vol.value
	if vol.relative() {
		current, err := p.Volume(ctx)
		if err != nil {
			return err
		}
		target = vol.apply(current)
	}
	return p.SetVolume(ctx, target)
}

func setRate(ctx context.Context, a *App, inv invocation) error {
	rate, err := parseFloat("rate", inv.arg(0))
	if err != nil {
		return err
	}
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	return p.SetRate(ctx, rate)
}

func setShuffle(ctx context.Context, a *App, inv invocation) error {
	enabled, err := parseBool("shuffle", inv.arg(0))
	if err != nil {
		return err
	}
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	return p.SetShuffle(ctx, enabled)
}

func setLoop(ctx context.Context, a *App, inv invocation) error {
	loop, err := parseLoop(inv.arg(0))
	if err != nil {
		return err
	}
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	return p.SetLoopStatus(ctx, loop)
}

func metadata(ctx context.Context, a *App, inv invocation) error {
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	m, err := p.Metadata(ctx)
	if err != nil {
		return err
	}
	printRecord(a.out, m, inv.arg(0))
	return nil
}

func status(ctx context.Context, a *App, _ invocation) error {
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	props, err := p.Properties(ctx)
	if err != nil {
		return err
	}
	playback, err := props.Status()
	if err != nil {
		return err
	}
	m, err := p.Metadata(ctx)
	if err != nil {
		return err
	}

	line := string(playback)
	if track := nowPlaying(m); track != "" {
		line += ": " + track
	}
	fmt.Fprintln(a.out, line)
	return nil
}

func tracksMetadata(ctx context.Context, a *App, inv invocation) error {
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	tracks, err := p.TracksMetadata(ctx, inv.args)
	if err != nil {
		return err
	}
	for i := range tracks {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		printRecord(a.out, &tracks[i], "")
	}
	return nil
}

func addTrack(ctx context.Context, a *App, inv invocation) error {
	current, _ := inv.flags.GetBool("current")
	p, err := a.root.Player()
	if err != nil {
		return err
	}
	return p.AddTrack(ctx, inv.arg(0), inv.arg(1), current)
}
