package termlog

import "errors"

var (
	// ErrUnknownSeverity indicates a severity name that ParseSeverity does not recognise.
	ErrUnknownSeverity = errors.New("unknown severity")
	// ErrUnknownTimeUnit indicates a TimeUnit outside the supported set.
	ErrUnknownTimeUnit = errors.New("unknown time unit")
)
