package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sivaosorg/termlog"
)

var errInvalidColorMode = errors.New("invalid color mode")

var (
	flagLevel     string
	flagTimestamp bool
	flagColor     string
)

// console is the logger every subcommand writes through. It is rebuilt before
// each run so that it targets the command's output stream.
var console = termlog.Default

var rootCmd = &cobra.Command{
	Use:   "termlog",
	Short: "termlog – console logging showcase",
	Long:  "termlog demonstrates leveled console lines, nested blocks, exclusive phases, tables and progress bars.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newConsole(cmd)
		if err != nil {
			return err
		}
		console = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: run the demo
		return runDemo(cmd.Context())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagLevel, "level", "none", "minimum severity (none, debug, info, success, warning, error, fatal)")
	flags.BoolVar(&flagTimestamp, "timestamp", false, "prefix lines with HH:MM:SS")
	flags.StringVar(&flagColor, "color", "auto", "colour mode (auto, always, never)")
}

func newConsole(cmd *cobra.Command) (*termlog.Logger, error) {
	level, err := termlog.ParseSeverity(flagLevel)
	if err != nil {
		return nil, err
	}
	opts := []termlog.Option{
		termlog.WithLevel(level),
		termlog.WithTimestamp(flagTimestamp),
	}
	switch flagColor {
	case "auto", "":
		opts = append(opts, termlog.WithAutoColor())
	case "always":
		opts = append(opts, termlog.WithColors(true))
	case "never":
		opts = append(opts, termlog.WithColors(false))
	default:
		return nil, fmt.Errorf("%w: %s", errInvalidColorMode, flagColor)
	}
	return termlog.New(cmd.OutOrStdout(), opts...), nil
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		Logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}
