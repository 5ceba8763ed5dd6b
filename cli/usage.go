package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/b0bbywan/go-mprisctl/config"
)

// Usage prints the command synopsis, the commands and the global flags
func Usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [flags] <command> [args]\n\nCommands:\n", config.AppName)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", c.synopsis(), c.about)
	}
	fmt.Fprintf(tw, "  help\tPrint help\n")
	fmt.Fprintf(tw, "  version\tPrint version\n")
	tw.Flush()

	fmt.Fprintf(w, "\nFlags:\n%s", fs.FlagUsages())
}

// synopsis is the command name followed by its arguments, if any
func (c *command) synopsis() string {
	if c.args == "" {
		return c.name
	}
	return c.name + " " + c.args
}

func Version(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", config.AppName, config.AppVersion)
}
