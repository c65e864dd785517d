package termlog

import "os"

// Predefined severity levels for logging, in ascending order of severity.
const (
	// NoneIssuer marks plain, unlabelled output; as a minimum it lets everything through
	NoneIssuer Severity = iota

	// DebugIssuer represents debug-level messages for development diagnostics
	DebugIssuer

	// InfoIssuer indicates normal operational messages for tracking progress
	InfoIssuer

	// SuccessIssuer reports a completed operation
	SuccessIssuer

	// WarnIssuer signifies potential issues that don't disrupt core functionality
	WarnIssuer

	// ErrorIssuer denotes failures in specific operations or components
	ErrorIssuer

	// FatalIssuer represents critical errors; it is logged like any other level
	FatalIssuer
)

// Bars is the base width of region delimiters and title banners.
const Bars = 50

// DefaultTimeFormat renders timestamps as HH:MM:SS.
const DefaultTimeFormat = "15:04:05"

// Default is a pre-configured Logger writing to os.Stdout with DefaultConfig.
// The package-level functions all operate on it.
var Default = New(os.Stdout)
