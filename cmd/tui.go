package cmd

import (
	"apilens/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the API interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	return tui.Run(tui.Config{LibraryName: "openreview-py"})
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
