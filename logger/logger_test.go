package logger

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

func TestLevelThreshold(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		entry Level
		want  bool
	}{
		{"debug passes debug", DEBUG, DEBUG, true},
		{"info passes debug", DEBUG, INFO, true},
		{"debug blocked at info", INFO, DEBUG, false},
		{"error passes info", INFO, ERROR, true},
		{"warn blocked at error", ERROR, WARN, false},
		{"error passes error", ERROR, ERROR, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.level).enabled(tt.entry, "message"); got != tt.want {
				t.Errorf("enabled(%v) at %v = %v, want %v", tt.entry, tt.level, got, tt.want)
			}
		})
	}
}

func TestComponentLevels(t *testing.T) {
	l := New(WARN)
	l.components = map[string]Level{"mpris": DEBUG, "cli": ERROR}

	tests := []struct {
		msg   string
		level Level
		want  bool
	}{
		{"[mpris] listed players", DEBUG, true},
		{"[cli] running command", WARN, false},
		{"[cli] command failed", ERROR, true},
		{"[state] saved", INFO, false},
		{"[state] unreadable", WARN, true},
		{"no component", DEBUG, false},
		{"[unterminated", WARN, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			if got := l.enabled(tt.level, tt.msg); got != tt.want {
				t.Errorf("enabled(%v, %q) = %v, want %v", tt.level, tt.msg, got, tt.want)
			}
		})
	}
}

func TestComponent(t *testing.T) {
	tests := map[string]string{
		"[mpris] selected vlc": "mpris",
		"[dbus]":               "dbus",
		"[]":                   "",
		"[x":                   "",
		"plain":                "",
		"":                     "",
	}

	for msg, want := range tests {
		if got := component(msg); got != want {
			t.Errorf("component(%q) = %q, want %q", msg, got, want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		DEBUG:     "DEBUG",
		INFO:      "INFO ",
		WARN:      "WARN ",
		ERROR:     "ERROR",
		FATAL:     "FATAL",
		Level(42): "L42",
	}

	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}

func TestSetPackageLevelsNil(t *testing.T) {
	saved := defaultLogger.components
	defer func() { defaultLogger.components = saved }()

	SetPackageLevels(nil)
	if defaultLogger.components == nil {
		t.Fatal("SetPackageLevels(nil) left a nil map")
	}
	if !defaultLogger.enabled(ERROR, "[mpris] still logged") {
		t.Error("entries rejected after clearing component levels")
	}
}

func TestDefaultLogger(t *testing.T) {
	if defaultLogger == nil {
		t.Fatal("defaultLogger should be initialized")
	}
	if defaultLogger.level != INFO {
		t.Errorf("defaultLogger.level = %v, want INFO", defaultLogger.level)
	}
	if defaultLogger.journal != nil {
		t.Error("journal enabled without UseJournal")
	}
}

func TestOutputFiltering(t *testing.T) {
	savedLevel := defaultLogger.level
	savedJournal := defaultLogger.journal
	var buf bytes.Buffer
	SetOutput(&buf)
	defaultLogger.journal = nil
	defer func() {
		defaultLogger.level = savedLevel
		defaultLogger.journal = savedJournal
		SetOutput(os.Stderr)
	}()

	SetLevel(WARN)
	Debug("[mpris] hidden %s", "debug")
	Info("hidden info")
	Warn("[cli] shown %d", 1)
	Error("shown %s", "error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below WARN were written: %q", out)
	}
	if !strings.Contains(out, "[WARN ] [cli] shown 1") {
		t.Errorf("warning missing from output: %q", out)
	}
	if !strings.Contains(out, "[ERROR] shown error") {
		t.Errorf("error missing from output: %q", out)
	}
}

type failingSink struct{ calls int }

func (f *failingSink) write(Level, string, string) error {
	f.calls++
	return errors.New("journal socket gone")
}

func TestEmitFallsBackToStream(t *testing.T) {
	var buf bytes.Buffer
	failing := &failingSink{}
	l := New(DEBUG)
	l.stream = &streamSink{out: log.New(&buf, "", 0)}
	l.journal = failing

	l.logf(INFO, "[state] saved %s", "vlc")
	if buf.String() != "[INFO ] [state] saved vlc\n" {
		t.Errorf("stream output = %q", buf.String())
	}
	if failing.calls != 1 {
		t.Errorf("journal sink called %d times, want 1", failing.calls)
	}

	buf.Reset()
	l.logf(DEBUG, "[state] skipped %s", "journal")
	if failing.calls != 2 || buf.Len() == 0 {
		t.Errorf("second entry: journal calls %d, stream %q", failing.calls, buf.String())
	}
}

func BenchmarkEnabled(b *testing.B) {
	l := New(INFO)
	for i := 0; i < b.N; i++ {
		l.enabled(INFO, "[mpris] message")
	}
}
