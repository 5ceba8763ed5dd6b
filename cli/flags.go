package cli

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/b0bbywan/go-mprisctl/config"
)

// NewFlagSet declares the global flags. Parsing stops at the command name so
// that command arguments such as negative seek offsets are left untouched.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	fs.SortFlags = false

	fs.StringP("player", "p", "", "use player `NAME` for this run")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Duration("timeout", 0, "D-Bus call timeout (default 5s)")
	fs.Bool("journal", false, "log to the systemd journal")
	fs.Bool("no-state", false, "do not read or write the active player file")
	fs.BoolP("help", "h", false, "print help")
	fs.BoolP("version", "V", false, "print version")
	return fs
}
