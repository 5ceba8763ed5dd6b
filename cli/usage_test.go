package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommandSynopsis(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"next-player", "next-player"},
		{"play", "play"},
		{"set-player", "set-player NAME"},
		{"metadata", "metadata [FIELD]"},
		{"add-track", "add-track URI [AFTER_ID] [--current]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := lookupCommand(tt.name)
			if !ok {
				t.Fatalf("lookupCommand(%q) not found", tt.name)
			}
			if got := cmd.synopsis(); got != tt.want {
				t.Errorf("synopsis() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsageListsEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, NewFlagSet())
	out := buf.String()

	for _, c := range commands {
		if !strings.Contains(out, "  "+c.synopsis()+"  ") {
			t.Errorf("usage misses %q:\n%s", c.synopsis(), out)
		}
	}
	if !strings.Contains(out, "--no-state") {
		t.Error("usage misses the global flags")
	}
}
