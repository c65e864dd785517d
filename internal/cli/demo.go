package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/sivaosorg/termlog"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every console component",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.Context())
	},
}

func runDemo(ctx context.Context) error {
	clock := termlog.NewClock(console)

	if err := console.Title("termlog demo"); err != nil {
		return err
	}
	console.None("plain line")
	console.Debug("debug line")
	console.Info("info line")
	console.Success("success line")
	console.Warning("warning line")
	console.Error("error line")
	console.Fatal("fatal line")

	err := console.WithBlock("outer", func() error {
		console.Info("inside outer")
		return console.WithBlock("inner", func() error {
			return console.Info("inside inner")
		})
	})
	if err != nil {
		return err
	}

	console.OpenPhase("fetch")
	console.Info("fetching")
	console.OpenPhase("build")
	console.Info("building")
	if p := console.ActivePhase(); p != nil {
		if err := p.Close(); err != nil {
			return err
		}
	}

	table := termlog.NewTable("component", "kind").
		AddRow("Block", "nested region").
		AddRow("Phase", "exclusive region").
		AddRow("ProgressBar", "collaborator")
	if _, err := table.WriteTo(console.Writer()); err != nil {
		return err
	}

	bar := termlog.NewProgressBar(10, "steps", termlog.WithProgressWriter(console.Writer()), termlog.WithBarWidth(20))
	for i := 0; i < 10; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
		}
		if err := bar.Increment(1); err != nil {
			return err
		}
	}
	if err := bar.Finish("done"); err != nil {
		return err
	}

	return clock.Elapsed("demo", termlog.Milliseconds)
}
