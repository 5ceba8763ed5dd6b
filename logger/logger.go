package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

// String returns the padded label printed in front of stderr lines
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO "
	case WARN:
		return "WARN "
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	}
	return fmt.Sprintf("L%d", int(l))
}

func (l Level) priority() journal.Priority {
	switch l {
	case DEBUG:
		return journal.PriDebug
	case INFO:
		return journal.PriInfo
	case WARN:
		return journal.PriWarning
	case ERROR:
		return journal.PriErr
	}
	return journal.PriCrit
}

// sink receives entries that passed level filtering.
// component is the "[name]" prefix of msg, empty when there is none.
type sink interface {
	write(level Level, component, msg string) error
}

type streamSink struct {
	out *log.Logger
}

func (s *streamSink) write(level Level, _ string, msg string) error {
	s.out.Printf("[%s] %s", level, msg)
	return nil
}

type journalSink struct {
	identifier string
}

func (s *journalSink) write(level Level, component, msg string) error {
	vars := map[string]string{"SYSLOG_IDENTIFIER": s.identifier}
	if component != "" {
		vars["COMPONENT"] = component
	}
	return journal.Send(msg, level.priority(), vars)
}

type Logger struct {
	level      Level
	components map[string]Level
	stream     *streamSink
	// journal is nil unless UseJournal succeeded
	journal sink
}

var defaultLogger = New(INFO)

// New creates a logger writing to stderr at level
func New(level Level) *Logger {
	return &Logger{
		level:      level,
		components: map[string]Level{},
		stream:     &streamSink{out: log.New(os.Stderr, "", log.LstdFlags)},
	}
}

// SetLevel sets the global logger level
func SetLevel(level Level) {
	defaultLogger.level = level
}

// SetOutput redirects stderr output of the global logger
func SetOutput(w io.Writer) {
	defaultLogger.stream.out.SetOutput(w)
}

// SetPackageLevels sets per-component levels, keyed by the [component]
// message prefix ("mpris", "cli", "state", "config").
func SetPackageLevels(levels map[string]Level) {
	if levels == nil {
		levels = map[string]Level{}
	}
	defaultLogger.components = levels
}

// UseJournal sends entries to journald under identifier. It reports false,
// leaving output on stderr, when no journal socket is reachable.
func UseJournal(identifier string) bool {
	if !journal.Enabled() {
		return false
	}
	defaultLogger.journal = &journalSink{identifier: identifier}
	return true
}

// component returns the name inside a leading "[name]", or "".
func component(msg string) string {
	if !strings.HasPrefix(msg, "[") {
		return ""
	}
	name, _, found := strings.Cut(msg[1:], "]")
	if !found {
		return ""
	}
	return name
}

// enabled reports whether an entry at level passes the threshold of its component,
// or the global one when the component has no level of its own.
func (l *Logger) enabled(level Level, msg string) bool {
	threshold := l.level
	if name := component(msg); name != "" {
		if override, ok := l.components[name]; ok {
			threshold = override
		}
	}
	return level >= threshold
}

func (l *Logger) emit(level Level, msg string) {
	name := component(msg)
	if l.journal != nil && l.journal.write(level, name, msg) == nil {
		return
	}
	l.stream.write(level, name, msg)
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if !l.enabled(level, format) {
		return
	}
	l.emit(level, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...interface{}) { defaultLogger.logf(DEBUG, format, args...) }
func Info(format string, args ...interface{})  { defaultLogger.logf(INFO, format, args...) }
func Warn(format string, args ...interface{})  { defaultLogger.logf(WARN, format, args...) }
func Error(format string, args ...interface{}) { defaultLogger.logf(ERROR, format, args...) }

// Fatal logs regardless of level and exits with status 1
func Fatal(format string, args ...interface{}) {
	defaultLogger.emit(FATAL, fmt.Sprintf(format, args...))
	os.Exit(1)
}
