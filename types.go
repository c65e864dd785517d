package termlog

import (
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Higher values indicate more severe messages; a message is emitted when its
// severity is at or above the configured minimum.
type Severity uint32

// Color is a semantic colour tag resolved to a terminal escape sequence by the palette.
type Color int

// Config holds the process-wide settings read on every emission.
// It is replaced wholesale through SetConfig and copied out through GetConfig.
type Config struct {
	MinLevel      Severity // Lowest severity that is written; lower ones are dropped.
	ShowTimestamp bool     // Prefix each line with the local wall-clock time.
	ColorsEnabled bool     // Wrap each line in its severity's escape sequence.
}

// Logger is the single synchronization point for console output. It owns the
// configuration, the output sink, the nested block depth and the active phase slot.
type Logger struct {
	mu         sync.Mutex       // Guards config, writer and every line written to the sink.
	writer     io.Writer        // Destination for log output (e.g., os.Stdout).
	config     Config           // Current filtering and formatting settings.
	timeFormat string           // Format for timestamps (Go reference time format).
	useUTC     bool             // If true, timestamps are in UTC; otherwise, local time.
	now        func() time.Time // Clock used for timestamps.

	depth atomic.Int64 // Number of open nested blocks.

	phaseMu sync.Mutex // Guards active and the closed flag of every Phase.
	active  *Phase     // Currently open exclusive phase, or nil.
}

// Option defines a functional option for configuring a Logger instance during creation.
type Option func(*Logger)

// Block is a nested annotation region. Opening one draws a start delimiter
// sized to the current nesting depth; closing it draws the matching end delimiter.
type Block struct {
	owner  *Logger
	label  string
	depth  int
	width  int
	closed atomic.Bool
	err    error
}

// Phase is an exclusive annotation region: at most one Phase per Logger is open
// at a time, and opening a new one closes the previous occupant.
type Phase struct {
	owner  *Logger
	label  string
	width  int
	closed bool // guarded by owner.phaseMu
	err    error
}

// locker is an interface that defines basic locking operations.
// If an io.Writer implements this interface, it is locked during writes so that
// other users of the same writer do not interleave with log lines.
type locker interface {
	Lock()
	Unlock()
}
