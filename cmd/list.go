package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ibarra/shelfr/internal/core"
)

// sortKeyFlag is a pflag.Value that rejects unknown sort keys at parse
// time instead of inside the command.
type sortKeyFlag struct {
	key core.SortKey
}

var _ pflag.Value = (*sortKeyFlag)(nil)

func (f *sortKeyFlag) String() string { return string(f.key) }

func (f *sortKeyFlag) Set(v string) error {
	key, err := core.ParseSortKey(v)
	if err != nil {
		return err
	}

	f.key = key

	return nil
}

func (f *sortKeyFlag) Type() string { return "key" }

var (
	listSort sortKeyFlag
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all books",
	Long: `List all books in the library. Sorting is a presentation choice;
the stored order never changes.

Examples:
  shelfr list
  shelfr list --sort Year
  shelfr list --json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Var(&listSort, "sort", "Sort by Title, Author, Year or Genre")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runList(_ *cobra.Command, _ []string) error {
	mgr, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	books := mgr.List(listSort.key)

	if len(books) == 0 {
		if listJSON {
			_, _ = fmt.Fprintln(os.Stdout, "[]")
			return nil
		}

		_, _ = fmt.Fprintln(os.Stdout, "Your library is empty.")
		_, _ = fmt.Fprintln(os.Stdout, "\nAdd a book with: shelfr add <title>")

		return nil
	}

	// JSON output
	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(books)
	}

	renderBooks(os.Stdout, "Your Library", books)

	return nil
}
