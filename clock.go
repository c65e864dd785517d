package termlog

import (
	"fmt"
	"strconv"
	"time"
)

// TimeUnit selects the unit Clock.Elapsed reports in.
type TimeUnit int

// Supported time units.
const (
	Seconds TimeUnit = iota
	Milliseconds
	Microseconds
	Nanoseconds
)

// Clock measures time since it was started and reports it as a debug line.
type Clock struct {
	logger *Logger
	start  time.Time
}

// NewClock starts a clock that reports through l.
func NewClock(l *Logger) *Clock {
	return &Clock{logger: l, start: time.Now()}
}

// StartClock starts a clock that reports through the package-level Default logger.
func StartClock() *Clock {
	return NewClock(Default)
}

// Reset restarts the clock from now.
func (c *Clock) Reset() {
	c.start = time.Now()
}

// Since returns the time elapsed since the clock was started or last reset.
func (c *Clock) Since() time.Duration {
	return time.Since(c.start)
}

// Elapsed logs "msg: <value><unit>" at debug level, e.g. "load: 12.5ms".
// An unknown unit returns ErrUnknownTimeUnit and writes nothing.
func (c *Clock) Elapsed(msg string, unit TimeUnit) error {
	value, suffix, err := convertDuration(c.Since(), unit)
	if err != nil {
		return err
	}
	return c.logger.Debugf("%s: %s%s", msg, strconv.FormatFloat(value, 'f', -1, 64), suffix)
}

func convertDuration(d time.Duration, unit TimeUnit) (float64, string, error) {
	switch unit {
	case Seconds:
		return d.Seconds(), "s", nil
	case Milliseconds:
		return float64(d) / float64(time.Millisecond), "ms", nil
	case Microseconds:
		return float64(d) / float64(time.Microsecond), "mcs", nil
	case Nanoseconds:
		return float64(d), "ns", nil
	default:
		return 0, "", fmt.Errorf("%w: %d", ErrUnknownTimeUnit, int(unit))
	}
}
