// Package logger implements ports.Logger for the terminal and for quiet runs.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/deskbridge/pkg/ports"
)

const (
	ansiReset  = "\033[0m"
	ansiGray   = "\033[90m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiCyan   = "\033[36m"
)

// levelColor is the tint applied to a whole line. Info lines stay plain.
var levelColor = map[ports.LogLevel]string{
	ports.LevelDebug: ansiGray,
	ports.LevelWarn:  ansiYellow,
	ports.LevelError: ansiRed,
}

// ConsoleLogger writes translated lines to stdout, or to stderr for
// warnings and errors.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	color     bool
	out       io.Writer
	errOut    io.Writer
}

// NewConsole returns a logger on the process streams. Lines are coloured
// when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	fd := os.Stdout.Fd()
	return &ConsoleLogger{
		level:  level,
		color:  isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// NewWriters returns an uncoloured logger on out and errOut.
func NewWriters(level ports.LogLevel, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{level: level, out: out, errOut: errOut}
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.emit(ports.LevelDebug, msg, args) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.emit(ports.LevelInfo, msg, args) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.emit(ports.LevelWarn, msg, args) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.emit(ports.LevelError, msg, args) }

// WithComponent returns a copy that tags each line with [component].
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	c := *l
	c.component = component
	return &c
}

func (l *ConsoleLogger) emit(level ports.LogLevel, msg string, args []interface{}) {
	if level < l.level {
		return
	}

	line := l10n.F(msg, args...)
	if l.component != "" {
		line = l.paint(ansiCyan, "["+l.component+"]") + " " + line
	}
	if c, ok := levelColor[level]; ok {
		line = l.paint(c, line)
	}

	w := l.out
	if level >= ports.LevelWarn {
		w = l.errOut
	}
	fmt.Fprintln(w, line)
}

func (l *ConsoleLogger) paint(color, s string) string {
	if !l.color {
		return s
	}
	return color + s + ansiReset
}
