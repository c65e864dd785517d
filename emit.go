package termlog

import (
	"fmt"
	"io"
	"strings"
)

// issuer is the fixed (colour, symbol) pair a severity is rendered with.
type issuer struct {
	color  Color
	symbol byte
}

var issuers = [...]issuer{
	NoneIssuer:    {ColorNone, ' '},
	DebugIssuer:   {ColorBlue, 'D'},
	InfoIssuer:    {ColorInfo, 'i'},
	SuccessIssuer: {ColorOkGreen, '+'},
	WarnIssuer:    {ColorWarning, '!'},
	ErrorIssuer:   {ColorFail, 'E'},
	FatalIssuer:   {ColorFail, 'F'},
}

// Log writes one line at the given severity if it is at or above the configured
// minimum. The message components are combined with fmt.Sprint.
//
// Returns:
//   - An error if there is a failure while writing to the output; otherwise, nil.
func (l *Logger) Log(level Severity, msg ...any) error {
	// Do nothing for unknown levels or when no message is provided.
	if level > FatalIssuer || len(msg) == 0 {
		return nil
	}
	var text string
	if s, ok := msg[0].(string); ok && len(msg) == 1 {
		text = s
	} else {
		text = fmt.Sprint(msg...)
	}
	is := issuers[level]
	return l.emit(level, is.color, is.symbol, text)
}

// Logf writes a formatted line at the given severity.
func (l *Logger) Logf(level Severity, format string, args ...any) error {
	return l.Log(level, fmt.Sprintf(format, args...))
}

// emit composes and writes a single line while holding the logger mutex.
// The filter check, the config read and the write all happen under that one lock.
func (l *Logger) emit(level Severity, c Color, symbol byte, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.config.MinLevel {
		return nil
	}

	msg = strings.TrimSuffix(msg, "\n")
	colored := l.config.ColorsEnabled

	var b strings.Builder
	b.Grow(len(msg) + 24)
	if colored {
		// Empty for ColorNone; the trailing reset is written regardless.
		b.WriteString(c.Code())
	}
	if l.config.ShowTimestamp {
		now := l.now()
		if l.useUTC {
			now = now.UTC()
		}
		b.WriteString(now.Format(l.timeFormat))
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteByte(symbol)
	b.WriteString("] ")
	b.WriteString(msg)
	if colored {
		b.WriteString(Reset)
	}
	b.WriteByte('\n')
	return l.writeLocked(b.String())
}

// Title writes a banner framed by '=' runs. It ignores the severity filter.
func (l *Logger) Title(msg ...any) error {
	return l.title(fmt.Sprint(msg...))
}

// Titlef writes a formatted banner. It ignores the severity filter.
func (l *Logger) Titlef(format string, args ...any) error {
	return l.title(fmt.Sprintf(format, args...))
}

func (l *Logger) title(msg string) error {
	bars := strings.Repeat("=", Bars/2)

	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	b.WriteByte('\n')
	if l.config.ColorsEnabled {
		b.WriteString(ColorHeader.Code())
	}
	b.WriteString(bars)
	b.WriteByte(' ')
	b.WriteString(msg)
	b.WriteByte(' ')
	b.WriteString(bars)
	if l.config.ColorsEnabled {
		b.WriteString(Reset)
	}
	b.WriteByte('\n')
	return l.writeLocked(b.String())
}

// startDelimiter writes a blank line followed by width/2 dashes, text and
// width/2 dashes. Delimiters are neither severity- nor colour-gated.
func (l *Logger) startDelimiter(text string, width int) error {
	return l.delimiter("\n", text, width)
}

// endDelimiter writes width/2 dashes, text and width/2 dashes.
func (l *Logger) endDelimiter(text string, width int) error {
	return l.delimiter("", text, width)
}

func (l *Logger) delimiter(lead, text string, width int) error {
	if width < 0 {
		width = 0
	}
	bars := strings.Repeat("-", width/2)

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writeLocked(lead + bars + text + bars + "\n")
}

// writeLocked writes s to the sink. The caller must hold l.mu. If the writer
// implements locker it is locked for the duration of the write as well.
func (l *Logger) writeLocked(s string) error {
	if lock, ok := l.writer.(locker); ok {
		lock.Lock()
		defer lock.Unlock()
	}
	_, err := io.WriteString(l.writer, s)
	return err
}

// None logs an unlabelled, uncoloured message.
func (l *Logger) None(msg ...any) error {
	return l.Log(NoneIssuer, msg...)
}

// Nonef logs a formatted unlabelled message.
func (l *Logger) Nonef(format string, args ...any) error {
	return l.Logf(NoneIssuer, format, args...)
}

// Debug logs a debug-level message using the Logger instance.
//
// Example:
//
//	logger.Debug("cache warmed")
func (l *Logger) Debug(msg ...any) error {
	return l.Log(DebugIssuer, msg...)
}

// Debugf logs a formatted debug-level message using the Logger instance.
//
// Example:
//
//	logger.Debugf("Debug value: %v", someValue)
func (l *Logger) Debugf(format string, args ...any) error {
	return l.Logf(DebugIssuer, format, args...)
}

// Info logs an informational message using the Logger instance.
func (l *Logger) Info(msg ...any) error {
	return l.Log(InfoIssuer, msg...)
}

// Infof logs a formatted informational message using the Logger instance.
func (l *Logger) Infof(format string, args ...any) error {
	return l.Logf(InfoIssuer, format, args...)
}

// Success logs a success message using the Logger instance.
func (l *Logger) Success(msg ...any) error {
	return l.Log(SuccessIssuer, msg...)
}

// Successf logs a formatted success message using the Logger instance.
func (l *Logger) Successf(format string, args ...any) error {
	return l.Logf(SuccessIssuer, format, args...)
}

// Warning logs a warning message using the Logger instance.
func (l *Logger) Warning(msg ...any) error {
	return l.Log(WarnIssuer, msg...)
}

// Warningf logs a formatted warning message using the Logger instance.
func (l *Logger) Warningf(format string, args ...any) error {
	return l.Logf(WarnIssuer, format, args...)
}

// Error logs an error message using the Logger instance.
func (l *Logger) Error(msg ...any) error {
	return l.Log(ErrorIssuer, msg...)
}

// Errorf logs a formatted error message using the Logger instance.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.Logf(ErrorIssuer, format, args...)
}

// Fatal logs a fatal message using the Logger instance. It neither exits nor panics.
func (l *Logger) Fatal(msg ...any) error {
	return l.Log(FatalIssuer, msg...)
}

// Fatalf logs a formatted fatal message using the Logger instance.
func (l *Logger) Fatalf(format string, args ...any) error {
	return l.Logf(FatalIssuer, format, args...)
}

// SetConfig replaces the configuration of the package-level Default logger.
func SetConfig(c Config) {
	Default.SetConfig(c)
}

// GetConfig returns a copy of the package-level Default logger's configuration.
func GetConfig() Config {
	return Default.GetConfig()
}

// SetLevel changes the minimum severity of the package-level Default logger.
func SetLevel(level Severity) {
	Default.SetLevel(level)
}

// GetLevel returns the minimum severity of the package-level Default logger.
func GetLevel() Severity {
	return Default.GetLevel()
}

// Log writes a message at level using the package-level Default logger.
func Log(level Severity, msg ...any) error {
	return Default.Log(level, msg...)
}

// Title writes a banner using the package-level Default logger.
func Title(msg ...any) error {
	return Default.Title(msg...)
}

// Titlef writes a formatted banner using the package-level Default logger.
func Titlef(format string, args ...any) error {
	return Default.Titlef(format, args...)
}

// None logs an unlabelled message using the package-level Default logger.
func None(msg ...any) error {
	return Default.None(msg...)
}

// Nonef logs a formatted unlabelled message using the package-level Default logger.
func Nonef(format string, args ...any) error {
	return Default.Nonef(format, args...)
}

// Debug logs a debug-level message using the package-level Default logger.
func Debug(msg ...any) error {
	return Default.Debug(msg...)
}

// Debugf logs a formatted debug-level message using the package-level Default logger.
func Debugf(format string, args ...any) error {
	return Default.Debugf(format, args...)
}

// Info logs an informational message using the package-level Default logger.
func Info(msg ...any) error {
	return Default.Info(msg...)
}

// Infof logs a formatted informational message using the package-level Default logger.
func Infof(format string, args ...any) error {
	return Default.Infof(format, args...)
}

// Success logs a success message using the package-level Default logger.
func Success(msg ...any) error {
	return Default.Success(msg...)
}

// Successf logs a formatted success message using the package-level Default logger.
func Successf(format string, args ...any) error {
	return Default.Successf(format, args...)
}

// Warning logs a warning message using the package-level Default logger.
func Warning(msg ...any) error {
	return Default.Warning(msg...)
}

// Warningf logs a formatted warning message using the package-level Default logger.
func Warningf(format string, args ...any) error {
	return Default.Warningf(format, args...)
}

// Error logs an error message using the package-level Default logger.
func Error(msg ...any) error {
	return Default.Error(msg...)
}

// Errorf logs a formatted error message using the package-level Default logger.
func Errorf(format string, args ...any) error {
	return Default.Errorf(format, args...)
}

// Fatal logs a fatal message using the package-level Default logger.
func Fatal(msg ...any) error {
	return Default.Fatal(msg...)
}

// Fatalf logs a formatted fatal message using the package-level Default logger.
func Fatalf(format string, args ...any) error {
	return Default.Fatalf(format, args...)
}
