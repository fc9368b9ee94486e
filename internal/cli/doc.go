// Package cli provides the terminal user interface components for shelfr.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - [MainMenuModel]: the interactive menu for selecting operations
//   - [BookListModel]: filterable book list used to pick a book
//   - [BookFormModel]: add/edit form with field navigation
//   - [PromptModel]: single-line text prompt
//
// Components carry no library logic of their own. The form submits through
// a [core.LibraryManager]; everything else hands its result back to the
// command layer, which runs the operation and prints the outcome.
//
// # Styling
//
// Use Lipgloss for consistent styling across components. Common styles
// are defined as package-level variables for reuse.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
