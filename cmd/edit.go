package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ibarra/shelfr/internal/core"
)

var editCmd = &cobra.Command{
	Use:   "edit <title>",
	Short: "Edit a book's details",
	Long: `Edit the first book whose title matches, ignoring case. Only the
fields given as flags change; everything else keeps its stored value.

Examples:
  shelfr edit "Dune" --read
  shelfr edit "dune messiah" --author "Frank Herbert" --year 1969`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("author", "", "New author")
	editCmd.Flags().Int("year", 0, "New publication year")
	editCmd.Flags().String("genre", "", "New genre")
	editCmd.Flags().Bool("read", false, "Read status (--read=false marks unread)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	mgr, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	ch := core.Changes{}
	ch.Title, _ = cmd.Flags().GetString("title")
	ch.Author, _ = cmd.Flags().GetString("author")
	ch.Genre, _ = cmd.Flags().GetString("genre")

	// Year and read status distinguish "not given" from their zero
	// values through the flag's changed state.
	if cmd.Flags().Changed("year") {
		year, _ := cmd.Flags().GetInt("year")
		ch.Year = &year
	}

	if cmd.Flags().Changed("read") {
		read, _ := cmd.Flags().GetBool("read")
		ch.Read = &read
	}

	book, err := mgr.Edit(args[0], ch)
	if err != nil {
		if errors.As(err, new(*core.NotFoundError)) {
			fmt.Println("Book not found.")
			return nil
		}

		return err
	}

	fmt.Printf("Updated: %s\n", book.Title)

	return nil
}
