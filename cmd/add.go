package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibarra/shelfr/internal/core"
	"github.com/ibarra/shelfr/internal/model"
)

var (
	addAuthor string
	addYear   int
	addGenre  string
	addRead   bool
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a book to the library",
	Long: `Add a book to the library. Title, author and genre are required;
year and read status are optional.

Examples:
  shelfr add "Dune" --author "Frank Herbert" --year 1965 --genre "Sci-Fi"
  shelfr add "Dune Messiah" -a "Frank Herbert" -g "Sci-Fi" --read`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		book := model.Book{
			Title:  args[0],
			Author: addAuthor,
			Year:   addYear,
			Genre:  addGenre,
			Read:   addRead,
		}

		if err := mgr.Add(book); err != nil {
			var verr *core.ValidationError
			if errors.As(err, &verr) {
				_, _ = fmt.Fprintf(os.Stdout, "Missing required fields: %s\n", strings.Join(verr.Fields, ", "))
				return nil
			}

			return err
		}

		_, _ = fmt.Fprintf(os.Stdout, "Added: %s\n", book.Title)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "Author name")
	addCmd.Flags().IntVarP(&addYear, "year", "y", 0, "Publication year")
	addCmd.Flags().StringVarP(&addGenre, "genre", "g", "", "Genre")
	addCmd.Flags().BoolVar(&addRead, "read", false, "Mark the book as read")
}
