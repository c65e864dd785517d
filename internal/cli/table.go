package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sivaosorg/termlog"
)

var (
	flagTableSep      string
	flagTableMaxWidth int
)

func init() {
	tableCmd.Flags().StringVar(&flagTableSep, "sep", ",", "cell separator")
	tableCmd.Flags().IntVar(&flagTableMaxWidth, "max-width", 0, "truncate cells wider than this (0 = off)")
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render separated rows from stdin as a grid; the first line is the header",
	RunE: func(cmd *cobra.Command, args []string) error {
		var table *termlog.Table
		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			line := sc.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			cells := strings.Split(line, flagTableSep)
			for i := range cells {
				cells[i] = strings.TrimSpace(cells[i])
			}
			if table == nil {
				table = termlog.NewTable(cells...)
				continue
			}
			table.AddRow(cells...)
		}
		if err := sc.Err(); err != nil {
			return err
		}
		if table == nil {
			return nil
		}
		table.SetMaxColumnWidth(flagTableMaxWidth)
		_, err := table.WriteTo(console.Writer())
		return err
	},
}
