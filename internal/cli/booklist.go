package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ibarra/shelfr/internal/model"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type bookItem struct {
	book model.Book
}

func (i bookItem) Title() string {
	read := ""
	if i.book.Read {
		read = "✓ "
	}

	return fmt.Sprintf("%s%s", read, i.book.Title)
}

func (i bookItem) Description() string {
	return fmt.Sprintf("%s | %d | %s", i.book.Author, i.book.Year, i.book.Genre)
}

func (i bookItem) FilterValue() string {
	return i.book.Title
}

// BookListModel shows books in a filterable list and lets the user pick
// one with enter. Esc leaves without a selection.
type BookListModel struct {
	list         list.Model
	selectedBook *model.Book
	quitting     bool
}

func (m BookListModel) Init() tea.Cmd {
	return nil
}

func (m BookListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(bookItem)
			if ok {
				m.selectedBook = &i.book
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m BookListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedBook returns the picked book, or nil when the user backed out.
func (m BookListModel) GetSelectedBook() *model.Book {
	return m.selectedBook
}

func NewBookList(books []model.Book, title string) BookListModel {
	items := make([]list.Item, len(books))
	for i, book := range books {
		items[i] = bookItem{book: book}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return BookListModel{list: l}
}
