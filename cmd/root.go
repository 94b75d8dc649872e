package cmd

import (
	"os"

	"apilens/internal/catalog"
	"apilens/internal/index"
	"apilens/internal/query"

	"github.com/spf13/cobra"
)

var flagJSON bool

var rootCmd = &cobra.Command{
	Use:   "apilens",
	Short: "Explore the openreview-py API surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit raw JSON instead of formatted output")
}

// buildEngine reflects the built-in catalog into a fresh index
// generation and wraps it in a query engine.
func buildEngine() (*query.Engine, error) {
	idx, err := index.FromLibrary(catalog.OpenReview())
	if err != nil {
		return nil, err
	}
	return query.New(index.NewHolder(idx)), nil
}
