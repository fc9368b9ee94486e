package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ibarra/shelfr/internal/core"
)

var searchBy string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search books by title or author",
	Long: `Search for books whose title contains the query, ignoring case.
Use --by Author to search the author field instead.

Examples:
  shelfr search dune
  shelfr search herbert --by Author`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := core.ParseSearchField(searchBy)
		if err != nil {
			return err
		}

		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		results := slices.Collect(mgr.Search(field, args[0]))
		if len(results) == 0 {
			fmt.Println("No matching books found.")
			return nil
		}

		renderBooks(os.Stdout, "Matching Books", results)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchBy, "by", "Title", "Search field: Title or Author")
}
