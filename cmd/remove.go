package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ibarra/shelfr/internal/cli"
	"github.com/ibarra/shelfr/internal/core"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove [title]",
	Aliases: []string{"rm"},
	Short:   "Remove a book from the library",
	Long: `Remove the first book whose title matches, ignoring case. With
duplicate titles only the first match is removed.

You can specify the title as an argument or pick the book from an
interactive list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, cleanup, err := openManager()
		if err != nil {
			return err
		}
		defer cleanup()

		var title string
		if len(args) > 0 {
			title = args[0]
		}

		if title == "" {
			// Interactive mode
			books := mgr.Books()
			if len(books) == 0 {
				fmt.Println("Your library is empty.")
				return nil
			}

			finalModel, err := tea.NewProgram(cli.NewBookList(books, "Select a book to remove")).Run()
			if err != nil {
				return err
			}

			selected := finalModel.(cli.BookListModel).GetSelectedBook()
			if selected == nil {
				return nil
			}

			title = selected.Title
		}

		if !removeYes {
			if !promptConfirm(fmt.Sprintf("Remove '%s' from the library? [y/N]: ", title)) {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := mgr.Remove(title); err != nil {
			if errors.As(err, new(*core.NotFoundError)) {
				fmt.Println("Book not found.")
				return nil
			}

			return err
		}

		fmt.Printf("Removed: %s\n", title)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip confirmation prompt")
}
