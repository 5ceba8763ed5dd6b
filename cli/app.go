package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/b0bbywan/go-mprisctl/backend"
	"github.com/b0bbywan/go-mprisctl/backend/mpris"
	"github.com/b0bbywan/go-mprisctl/config"
	"github.com/b0bbywan/go-mprisctl/logger"
	"github.com/b0bbywan/go-mprisctl/state"
)

// Connector opens the bus and discovers the players
type Connector func(ctx context.Context, cfg *config.DBusConfig) (*backend.Backend, error)

// App runs commands against one registry
type App struct {
	root  *mpris.Root
	store *state.Store
	out   io.Writer
}

// New creates an App. store may be nil to disable persistence of the active player.
func New(root *mpris.Root, store *state.Store, out io.Writer) *App {
	return &App{root: root, store: store, out: out}
}

// Run executes one command line. The persisted player is selected first,
// then player when non-empty. After a successful command the selection is
// persisted if it changed.
func (a *App) Run(ctx context.Context, player string, args []string) error {
	if len(args) == 0 {
		return usageErrorf("missing command")
	}
	cmd, ok := lookupCommand(args[0])
	if !ok {
		return usageErrorf("unknown command %q", args[0])
	}
	inv, err := cmd.parse(args[1:])
	if err != nil {
		return err
	}

	persisted := a.restore()
	if player != "" {
		if err := a.root.SetPlayer(player); err != nil {
			return err
		}
	}
	before := a.current()

	logger.Debug("[cli] running %s on %q", cmd.name, before)
	if err := cmd.run(ctx, a, inv); err != nil {
		return err
	}

	after := a.current()
	if player != "" && after == before {
		// a one-off --player selection is not remembered
		return nil
	}
	a.persist(persisted, after)
	return nil
}

func (a *App) current() string {
	p, err := a.root.Player()
	if err != nil {
		return ""
	}
	return p.Name
}

// restore selects the persisted player, ignoring every failure
func (a *App) restore() string {
	if a.store == nil {
		return ""
	}
	name, err := a.store.Load()
	if err != nil {
		logger.Warn("[state] failed to read %s: %v", a.store.Path(), err)
		return ""
	}
	if name == "" {
		return ""
	}
	if err := a.root.SetPlayer(name); err != nil {
		logger.Debug("[state] persisted player unavailable: %v", err)
	}
	return name
}

func (a *App) persist(persisted, current string) {
	if a.store == nil || current == "" || current == persisted {
		return
	}
	if err := a.store.Save(current); err != nil {
		logger.Warn("[state] failed to save active player: %v", err)
	}
}

// Main parses args, runs the command and returns the exit status.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer, connect Connector) int {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return report(stderr, fs, &UsageError{Msg: err.Error()})
	}

	if help, _ := fs.GetBool("help"); help {
		Usage(stdout, fs)
		return 0
	}
	if version, _ := fs.GetBool("version"); version {
		Version(stdout)
		return 0
	}

	rest := fs.Args()
	if len(rest) == 0 {
		Usage(stderr, fs)
		return 2
	}
	switch rest[0] {
	case "help":
		Usage(stdout, fs)
		return 0
	case "version":
		Version(stdout)
		return 0
	}
	if _, ok := lookupCommand(rest[0]); !ok {
		return report(stderr, fs, usageErrorf("unknown command %q", rest[0]))
	}

	cfg, err := config.New(fs)
	if err != nil {
		return report(stderr, fs, err)
	}
	configureLogger(cfg)

	b, err := connect(ctx, cfg.DBus)
	if err != nil {
		return report(stderr, fs, err)
	}
	defer b.Close()

	var store *state.Store
	if cfg.State.Enabled {
		store = state.New(cfg.State.File)
	}

	return report(stderr, fs, New(b.MPRIS, store, stdout).Run(ctx, cfg.Player, rest))
}

func configureLogger(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
	logger.SetPackageLevels(cfg.PackageLevels)
	if cfg.Journal && !logger.UseJournal(config.AppName) {
		logger.Warn("[cli] journal unavailable, logging to stderr")
	}
}

// report prints err and returns the matching exit status
func report(w io.Writer, fs *pflag.FlagSet, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "%s: %v\n", config.AppName, err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w)
		Usage(w, fs)
	}
	return ExitCode(err)
}
