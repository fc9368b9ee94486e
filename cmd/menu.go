package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ibarra/shelfr/internal/cli"
	"github.com/ibarra/shelfr/internal/core"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long: `Open the interactive menu for managing your library. Use arrow keys to
navigate and Enter to select an option. This is also what running shelfr
without a subcommand does on a terminal.`,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	mgr, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	for {
		m := cli.NewMainMenu()
		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		menuModel := finalModel.(cli.MainMenuModel)
		choice := menuModel.GetChoice()

		if choice == "" || choice == "exit" {
			if err := mgr.Save(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

			fmt.Println("Library saved to file. Goodbye!")

			return nil
		}

		if err := menuAction(mgr, choice); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Println("\nPress Enter to continue...")
			_, _ = fmt.Scanln()

			continue
		}

		// The form and picker flows render their own closing view; only
		// pause after plain printed output.
		if choice != "add" && choice != "remove" && choice != "edit" {
			fmt.Println("\nPress Enter to continue...")
			_, _ = fmt.Scanln()
		}
	}
}

func menuAction(mgr *core.LibraryManager, choice string) error {
	switch choice {
	case "add":
		return menuAdd(mgr)
	case "remove":
		return menuRemove(mgr)
	case "edit":
		return menuEdit(mgr)
	case "search":
		return menuSearch(mgr)
	case "list":
		return menuList(mgr)
	case "sort":
		return menuSort(mgr)
	case "stats":
		return menuStats(mgr)
	}

	return nil
}

// menuAdd runs the add form. The form validates, saves and reports the
// outcome itself.
func menuAdd(mgr *core.LibraryManager) error {
	_, err := tea.NewProgram(cli.NewAddForm(mgr)).Run()

	return err
}

// menuRemove lets the user pick the book to remove from a list.
func menuRemove(mgr *core.LibraryManager) error {
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

	if err := mgr.Remove(selected.Title); err != nil {
		if errors.As(err, new(*core.NotFoundError)) {
			fmt.Println("Book not found.")
			return nil
		}

		return err
	}

	fmt.Println("Book removed successfully!")

	return nil
}

// menuEdit asks for a title, then runs the edit form over the matching
// book. Blank form fields keep the stored values.
func menuEdit(mgr *core.LibraryManager) error {
	finalModel, err := tea.NewProgram(cli.NewPrompt("Enter the title of the book to edit", "Dune")).Run()
	if err != nil {
		return err
	}

	prompt := finalModel.(cli.PromptModel)
	if prompt.Cancelled || prompt.Value() == "" {
		return nil
	}

	book, err := mgr.Find(prompt.Value())
	if err != nil {
		if errors.As(err, new(*core.NotFoundError)) {
			fmt.Println("Book not found.")
			return nil
		}

		return err
	}

	_, err = tea.NewProgram(cli.NewEditForm(mgr, book)).Run()

	return err
}

// menuSearch asks for the field and the query, then prints the matches.
func menuSearch(mgr *core.LibraryManager) error {
	finalModel, err := tea.NewProgram(cli.NewPrompt("Search by (Title/Author)", "Title")).Run()
	if err != nil {
		return err
	}

	fieldPrompt := finalModel.(cli.PromptModel)
	if fieldPrompt.Cancelled {
		return nil
	}

	fieldName := fieldPrompt.Value()
	if fieldName == "" {
		fieldName = string(core.SearchByTitle)
	}

	field, err := core.ParseSearchField(fieldName)
	if err != nil {
		fmt.Println("Please choose Title or Author.")
		return nil
	}

	finalModel, err = tea.NewProgram(cli.NewPrompt("Enter the search term", "")).Run()
	if err != nil {
		return err
	}

	queryPrompt := finalModel.(cli.PromptModel)
	if queryPrompt.Cancelled {
		return nil
	}

	results := slices.Collect(mgr.Search(field, queryPrompt.Value()))
	if len(results) == 0 {
		fmt.Println("No matching books found.")
		return nil
	}

	renderBooks(os.Stdout, "Matching Books", results)

	return nil
}

// menuList prints the whole library in stored order.
func menuList(mgr *core.LibraryManager) error {
	books := mgr.Books()
	if len(books) == 0 {
		fmt.Println("Your library is empty.")
		return nil
	}

	renderBooks(os.Stdout, "Your Library", books)

	return nil
}

// menuSort asks for a sort key and prints the library in that order. The
// stored order does not change.
func menuSort(mgr *core.LibraryManager) error {
	if mgr.Len() == 0 {
		fmt.Println("Your library is empty.")
		return nil
	}

	finalModel, err := tea.NewProgram(cli.NewPrompt("Sort by (Title/Author/Year/Genre)", "Title")).Run()
	if err != nil {
		return err
	}

	prompt := finalModel.(cli.PromptModel)
	if prompt.Cancelled {
		return nil
	}

	key, err := core.ParseSortKey(prompt.Value())
	if err != nil {
		fmt.Println("Please choose Title, Author, Year or Genre.")
		return nil
	}

	renderBooks(os.Stdout, "Your Library", mgr.List(key))

	return nil
}

// menuStats prints the statistics panel.
func menuStats(mgr *core.LibraryManager) error {
	fmt.Println(renderStatistics(mgr.Statistics()))

	return nil
}
