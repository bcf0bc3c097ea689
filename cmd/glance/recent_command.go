package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/TristanLaR/glance/internal/config"
	"github.com/TristanLaR/glance/internal/recent"
)

func newRecentCommand() *cobra.Command {
	var limit int
	var prune int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := config.CacheDir()
			if err != nil {
				return err
			}
			store, err := recent.Open(filepath.Join(cache, "history.db"))
			if err != nil {
				return err
			}
			defer store.Close()

			if prune > 0 {
				removed, err := store.Prune(cmd.Context(), prune)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "pruned %d entries\n", removed)
			}

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent files.")
				return nil
			}

			if useTable(os.Stdout) {
				fmt.Fprintln(cmd.OutOrStdout(), renderRecentTable(entries))
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Path)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum entries to show")
	cmd.Flags().IntVar(&prune, "prune", 0, "keep only this many entries before listing")
	return cmd
}

func renderRecentTable(entries []recent.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "Path", "Opened"})

	for _, entry := range entries {
		tw.AppendRow(table.Row{entry.Name, entry.Path, formatOpened(entry.OpenedAt)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func formatOpened(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format("2006-01-02 15:04")
}

// useTable picks plain path-per-line output when stdout is not a terminal,
// keeping the command pipe friendly.
func useTable(writer *os.File) bool {
	fd := writer.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
