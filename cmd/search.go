package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"apilens/internal/query"

	"github.com/spf13/cobra"
)

var flagLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search functions and classes by name or docstring",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	q := strings.Join(args, " ")
	matches, err := engine.Search(q)
	if err != nil {
		return err
	}
	if flagLimit > 0 && len(matches) > flagLimit {
		matches = matches[:flagLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Printf("No results for %q\n", q)
		return nil
	}

	fmt.Printf("%d results for %q:\n\n", len(matches), q)
	for _, m := range matches {
		if m.Function != nil {
			fmt.Printf("  %-12s %s\n", "["+m.Function.Kind+"]", m.Function.Signature)
			fmt.Printf("               %s\n", m.Function.Path)
		} else {
			fmt.Printf("  %-12s %s\n", "[class]", m.Class.Path)
		}
		if doc := firstLine(docOf(m)); doc != "" {
			fmt.Printf("               %s\n", doc)
		}
		fmt.Println()
	}
	return nil
}

func docOf(m query.Match) string {
	if m.Function != nil {
		return m.Function.Doc
	}
	return m.Class.Doc
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[:i]
	}
	if len(s) > 100 {
		s = s[:100] + "..."
	}
	return s
}

func init() {
	searchCmd.Flags().IntVar(&flagLimit, "limit", 0, "maximum number of results (0 for all)")
	rootCmd.AddCommand(searchCmd)
}
