package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sivaosorg/termlog"
)

var (
	flagProgressTotal int
	flagProgressDelay time.Duration
	flagProgressDesc  string
)

func init() {
	progressCmd.Flags().IntVar(&flagProgressTotal, "total", 20, "number of steps")
	progressCmd.Flags().DurationVar(&flagProgressDelay, "delay", 50*time.Millisecond, "pause between steps")
	progressCmd.Flags().StringVar(&flagProgressDesc, "desc", "progress", "bar description")
	rootCmd.AddCommand(progressCmd)
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Animate a progress bar",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		bar := termlog.NewProgressBar(flagProgressTotal, flagProgressDesc, termlog.WithProgressWriter(console.Writer()))
		for i := 0; i < flagProgressTotal; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(flagProgressDelay):
			}
			if err := bar.Increment(1); err != nil {
				return err
			}
		}
		return bar.Finish("done")
	},
}
