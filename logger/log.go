// Package logger provides a leveled console logger.
//
// It is intended for internal use by envlock only. All log output goes to
// stderr so that stdout stays reserved for command output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	nocolor   = "0"
	red       = "31"
	green     = "38;5;48"
	yellow    = "33"
	gray      = "38;5;251"
	lightgray = "38;5;243"
	cyan      = "1;36"
)

const dateFormat = "2006-01-02 15:04:05"

type Logger interface {
	Debug(format string, v ...any)
	Error(format string, v ...any)
	Fatal(format string, v ...any)
	Notice(format string, v ...any)
	Warn(format string, v ...any)
	Info(format string, v ...any)

	WithFields(fields ...Field) Logger
	SetLevel(level Level)
	Level() Level
}

// ConsoleLogger is a Logger that writes formatted lines via a Printer.
type ConsoleLogger struct {
	level   Level
	printer Printer
	fields  Fields
	exitFn  func(int)
}

func NewConsoleLogger(printer Printer, exitFn func(int), fields ...Field) Logger {
	return &ConsoleLogger{
		level:   NOTICE,
		printer: printer,
		fields:  fields,
		exitFn:  exitFn,
	}
}

// WithFields returns a copy of the logger with the provided fields appended.
func (l *ConsoleLogger) WithFields(fields ...Field) Logger {
	clone := *l
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// SetLevel sets the level for the logger.
func (l *ConsoleLogger) SetLevel(level Level) {
	l.level = level
}

func (l *ConsoleLogger) Level() Level {
	return l.level
}

func (l *ConsoleLogger) Debug(format string, v ...any) {
	if l.level == DEBUG {
		l.printer.Print(DEBUG, fmt.Sprintf(format, v...), l.fields)
	}
}

func (l *ConsoleLogger) Error(format string, v ...any) {
	l.printer.Print(ERROR, fmt.Sprintf(format, v...), l.fields)
}

func (l *ConsoleLogger) Fatal(format string, v ...any) {
	l.printer.Print(FATAL, fmt.Sprintf(format, v...), l.fields)
	l.exitFn(1)
}

func (l *ConsoleLogger) Notice(format string, v ...any) {
	if l.level <= NOTICE {
		l.printer.Print(NOTICE, fmt.Sprintf(format, v...), l.fields)
	}
}

func (l *ConsoleLogger) Info(format string, v ...any) {
	if l.level <= INFO {
		l.printer.Print(INFO, fmt.Sprintf(format, v...), l.fields)
	}
}

func (l *ConsoleLogger) Warn(format string, v ...any) {
	if l.level <= WARN {
		l.printer.Print(WARN, fmt.Sprintf(format, v...), l.fields)
	}
}

type Printer interface {
	Print(level Level, message string, fields Fields)
}

// TextPrinter prints log lines as colored, timestamped text.
type TextPrinter struct {
	Colors bool

	mu     sync.Mutex
	writer io.Writer
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{
		Colors: ColorsAvailable(),
		writer: w,
	}
}

// ColorsAvailable reports whether terminal colors can be shown.
func ColorsAvailable() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func (p *TextPrinter) Print(level Level, message string, fields Fields) {
	now := time.Now().Format(dateFormat)

	suffix := ""
	for _, field := range fields {
		suffix += " " + field.Key() + "=" + field.String()
	}

	var line string
	if p.Colors {
		levelColor := green
		messageColor := nocolor

		switch level {
		case DEBUG:
			levelColor = gray
			messageColor = gray
		case NOTICE:
			levelColor = cyan
		case WARN:
			levelColor = yellow
		case ERROR, FATAL:
			levelColor = red
		}

		line = fmt.Sprintf("\x1b[%sm%s %-6s\x1b[0m \x1b[%sm%s\x1b[0m\x1b[%sm%s\x1b[0m\n",
			levelColor, now, level, messageColor, message, lightgray, suffix)
	} else {
		line = fmt.Sprintf("%s %-6s %s%s\n", now, level, message, suffix)
	}

	// Only output a line one at a time
	p.mu.Lock()
	fmt.Fprint(p.writer, line)
	p.mu.Unlock()
}

// Discard is a Logger that outputs nothing.
var Discard = NewConsoleLogger(NewTextPrinter(io.Discard), func(int) {})
