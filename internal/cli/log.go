package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sivaosorg/termlog"
)

func init() {
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log <level> <message...>",
	Short: "Write one console line at the given severity",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := termlog.ParseSeverity(args[0])
		if err != nil {
			return err
		}
		return console.Log(level, strings.Join(args[1:], " "))
	},
}
