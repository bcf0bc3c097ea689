package main

import (
	"github.com/spf13/cobra"
)

var version = "0.4.1"

func newRootCommand() *cobra.Command {
	var noTruncate bool
	var configFlag string

	rootCmd := &cobra.Command{
		Use:     "glance [file]",
		Short:   "A minimal markdown viewer",
		Long:    "glance - a minimal markdown viewer.\n\nThe first launch becomes a long-lived viewer instance; later launches hand\ntheir file to it and exit.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runViewer(cmd.Context(), file, noTruncate, configFlag)
		},
	}

	// Predefine the version flag so it gets the -v shorthand.
	rootCmd.Flags().BoolP("version", "v", false, "Show version")
	rootCmd.Flags().BoolVar(&noTruncate, "no-truncate", false, "Render entire file regardless of size")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.SetVersionTemplate("glance {{.Version}}\n")

	rootCmd.AddCommand(newRecentCommand())

	return rootCmd
}
