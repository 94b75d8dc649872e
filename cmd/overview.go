package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"apilens/internal/index"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show a per-module summary of the indexed API",
	RunE:  runOverview,
}

func runOverview(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	ov := engine.Overview()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ov)
	}

	md := overviewMarkdown(ov)
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return nil
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return nil
	}
	fmt.Print(out)
	return nil
}

func overviewMarkdown(ov index.Overview) string {
	var sb strings.Builder
	sb.WriteString("# openreview-py API overview\n\n")
	fmt.Fprintf(&sb, "**%d** public functions and **%d** classes across **%d** modules.\n\n",
		ov.TotalFunctions, ov.TotalClasses, len(ov.Modules))
	sb.WriteString("| Module | Functions | Classes |\n|---|---|---|\n")
	for _, m := range ov.Modules {
		fmt.Fprintf(&sb, "| `%s` | %d | %d |\n", m.Path, m.Functions, m.Classes)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
