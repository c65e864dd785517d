package cli

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger reports the command's own failures on stderr, separate from the
// console output it demonstrates.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "termlog",
})
