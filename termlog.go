// Package termlog provides a process-wide console logging facility with
// leveled, colourised, optionally timestamped lines and two kinds of
// annotation regions that bracket spans of output.
//
// Key features:
//   - Seven severity levels (None, Debug, Info, Success, Warning, Error, Fatal) with fixed colours and symbols
//   - One lock per Logger serializing every line, config read and config write
//   - Nested blocks whose delimiters widen with depth
//   - Exclusive phases where opening a new phase closes the previous one
//   - Collaborators: a progress bar, a table printer and an elapsed-time clock
//   - Package-level default logger and configurable instances
package termlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// DefaultConfig returns the settings a Logger starts with: every severity is
// emitted, timestamps are off and colours are on.
func DefaultConfig() Config {
	return Config{
		MinLevel:      NoneIssuer,
		ShowTimestamp: false,
		ColorsEnabled: true,
	}
}

// New creates a new Logger writing to writer, configured with DefaultConfig
// and then the provided options.
//
// Panics:
//   - if the writer is nil.
func New(writer io.Writer, opts ...Option) *Logger {
	if writer == nil {
		panic("termlog: invalid writer")
	}
	l := &Logger{
		writer:     writer,
		config:     DefaultConfig(),
		timeFormat: DefaultTimeFormat,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithConfig returns an Option that replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(l *Logger) {
		if c.MinLevel <= FatalIssuer {
			l.config = c
		}
	}
}

// WithLevel returns an Option that sets the minimum severity.
func WithLevel(level Severity) Option {
	return func(l *Logger) {
		if level <= FatalIssuer {
			l.config.MinLevel = level
		}
	}
}

// WithTimestamp returns an Option that toggles the timestamp prefix.
func WithTimestamp(show bool) Option {
	return func(l *Logger) {
		l.config.ShowTimestamp = show
	}
}

// WithColors returns an Option that toggles colour escape sequences.
func WithColors(enabled bool) Option {
	return func(l *Logger) {
		l.config.ColorsEnabled = enabled
	}
}

// WithAutoColor returns an Option that enables colours only when the writer
// is a terminal. Writers that are not an *os.File are treated as non-terminals.
func WithAutoColor() Option {
	return func(l *Logger) {
		l.config.ColorsEnabled = isTerminal(l.writer)
	}
}

// WithTimeFormat returns an Option that sets a custom time format for the timestamp prefix.
// The format should be specified using Go's reference time (Mon Jan 2 15:04:05 MST 2006).
//
// Example:
//
//	logger := New(os.Stdout, WithTimestamp(true), WithTimeFormat("15:04:05.000"))
func WithTimeFormat(format string) Option {
	return func(l *Logger) {
		if format != "" {
			l.timeFormat = format
		}
	}
}

// WithUTC returns an Option that configures the Logger to use UTC for timestamps if set to true,
// or the local time zone if false.
func WithUTC(utc bool) Option {
	return func(l *Logger) {
		l.useUTC = utc
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetConfig replaces the configuration. Emissions in flight on other
// goroutines observe either the old or the new value, never a mix.
// A config with an out-of-range MinLevel is ignored.
func (l *Logger) SetConfig(c Config) {
	if c.MinLevel > FatalIssuer {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config = c
}

// GetConfig returns a copy of the current configuration.
func (l *Logger) GetConfig() Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.config
}

// SetLevel changes the Logger's minimum severity at runtime.
// Levels above FatalIssuer are ignored.
func (l *Logger) SetLevel(level Severity) {
	if level > FatalIssuer {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.MinLevel = level
}

// GetLevel returns the current minimum severity.
func (l *Logger) GetLevel() Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.config.MinLevel
}

// Writer returns the raw output sink. Collaborators such as Table and
// ProgressBar write to it directly, bypassing the Logger's lock.
func (l *Logger) Writer() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writer
}

// UpdateWriter safely updates the Logger's output destination to a new writer.
// If both the current writer and the new writer implement the locker interface but are not the same,
// the update is rejected (returns false) to avoid locking mismatches. Otherwise, the writer is updated.
//
// Returns:
//   - true if the writer was successfully updated.
//   - false if the update was rejected due to nil writer or incompatible locking behavior.
func (l *Logger) UpdateWriter(w io.Writer) bool {
	if w == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	currentLocker, hasLock := l.writer.(locker)
	newLocker, newHasLock := w.(locker)
	if hasLock && newHasLock && currentLocker != newLocker {
		return false
	}
	if hasLock {
		currentLocker.Lock()
		defer currentLocker.Unlock()
	}
	l.writer = w
	return true
}

var severityNames = [...]string{
	NoneIssuer:    "none",
	DebugIssuer:   "debug",
	InfoIssuer:    "info",
	SuccessIssuer: "success",
	WarnIssuer:    "warning",
	ErrorIssuer:   "error",
	FatalIssuer:   "fatal",
}

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	if s <= FatalIssuer {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", uint32(s))
}

// ParseSeverity maps a case-insensitive name to a Severity.
// "warn" is accepted as an alias for "warning", "err" for "error".
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return NoneIssuer, nil
	case "debug":
		return DebugIssuer, nil
	case "info":
		return InfoIssuer, nil
	case "success":
		return SuccessIssuer, nil
	case "warn", "warning":
		return WarnIssuer, nil
	case "error", "err":
		return ErrorIssuer, nil
	case "fatal":
		return FatalIssuer, nil
	default:
		return NoneIssuer, fmt.Errorf("%w: %s", ErrUnknownSeverity, name)
	}
}
