package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/ibarra/shelfr/internal/core"
	"github.com/ibarra/shelfr/internal/model"
	"github.com/ibarra/shelfr/internal/store"
)

// openManager opens the configured store and loads the library into a
// manager shared by the command. The returned cleanup closes the store.
func openManager() (*core.LibraryManager, func(), error) {
	st, err := store.Open(appConfig.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	mgr, err := core.NewLibraryManager(st, slog.Default())
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	return mgr, func() { _ = st.Close() }, nil
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Remove this book? [y/N]: ")
func promptConfirm(prompt string) bool {
	_, _ = fmt.Fprint(os.Stdout, prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}

// renderBooks writes a numbered book table to w
func renderBooks(w io.Writer, title string, books []model.Book) {
	if title != "" {
		_, _ = fmt.Fprintln(w, title)
		_, _ = fmt.Fprintln(w)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "NO.\tTITLE\tAUTHOR\tYEAR\tGENRE\tSTATUS")
	_, _ = fmt.Fprintln(tw, "---\t-----\t------\t----\t-----\t------")

	for i, b := range books {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			i+1,
			b.Title,
			b.Author,
			b.Year,
			b.Genre,
			b.Status(),
		)
	}

	_ = tw.Flush()
}

var (
	statsPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	statsTitleStyle = lipgloss.NewStyle().Bold(true)
)

// renderStatistics renders the library summary in a bordered panel
func renderStatistics(stats core.Statistics) string {
	body := fmt.Sprintf("%s\n\nTotal books: %d\nPercentage read: %.2f%%",
		statsTitleStyle.Render("Library Statistics"),
		stats.Total,
		stats.PercentRead,
	)

	return statsPanelStyle.Render(body)
}
