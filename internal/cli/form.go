package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ibarra/shelfr/internal/core"
	"github.com/ibarra/shelfr/internal/model"
)

const fmtField = " %s\n %s\n\n"

var (
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle   = focusedStyle
	noStyle       = lipgloss.NewStyle()
	helpStyleForm = blurredStyle
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

// Form field order.
const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldGenre
	fieldRead
)

// BookFormModel is the add/edit form. In edit mode the placeholders show
// the stored values and a blank field keeps them.
type BookFormModel struct {
	focusIndex int
	inputs     []textinput.Model
	mgr        *core.LibraryManager
	editTitle  string // empty means add mode
	Saved      bool
	Result     model.Book
	Err        error
}

// NewAddForm builds an empty form that appends a book on submit.
func NewAddForm(mgr *core.LibraryManager) BookFormModel {
	m := BookFormModel{
		inputs: make([]textinput.Model, 5),
		mgr:    mgr,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case fieldTitle:
			t.Placeholder = "The Left Hand of Darkness"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case fieldAuthor:
			t.Placeholder = "Ursula K. Le Guin"
		case fieldYear:
			t.Placeholder = "1969"
			t.CharLimit = 6
		case fieldGenre:
			t.Placeholder = "Science Fiction"
		case fieldRead:
			t.Placeholder = "yes/no"
			t.CharLimit = 5
		}

		m.inputs[i] = t
	}

	return m
}

// NewEditForm builds a form for book. Placeholders carry the stored values;
// whatever the user leaves blank stays as it is.
func NewEditForm(mgr *core.LibraryManager, book model.Book) BookFormModel {
	m := NewAddForm(mgr)
	m.editTitle = book.Title

	m.inputs[fieldTitle].Placeholder = book.Title
	m.inputs[fieldAuthor].Placeholder = book.Author
	m.inputs[fieldYear].Placeholder = strconv.Itoa(book.Year)
	m.inputs[fieldGenre].Placeholder = book.Genre
	m.inputs[fieldRead].Placeholder = readAnswer(book.Read)

	return m
}

func readAnswer(read bool) string {
	if read {
		return "yes"
	}

	return "no"
}

func (m BookFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m BookFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		m.Saved = true
		m.Result = msg.book

		return m, tea.Quit

	case errMsg:
		m.Err = msg.err

		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit on enter when on the submit button
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveBook
			}

			// Cycle indexes
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					// Set focused state
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}
				// Remove the focused state
				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	// Handle character input and blinking
	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *BookFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only text inputs with Focus() set will respond, so it's safe to simply
	// update all of them here without any further logic.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m BookFormModel) View() string {
	if m.Saved {
		verb := "Added"
		if m.editTitle != "" {
			verb = "Updated"
		}

		return successStyle.Render(fmt.Sprintf("\n  ✓ %s %q\n\n", verb, m.Result.Title))
	}

	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	var s string
	if m.editTitle == "" {
		s = headerStyle.Render("Add a New Book") + "\n"
		s += blurredStyle.Render("Fill in the fields and press Tab to navigate") + "\n\n"
	} else {
		s = headerStyle.Render(fmt.Sprintf("Edit %q", m.editTitle)) + "\n"
		s += blurredStyle.Render("Leave a field blank to keep the shown value") + "\n\n"
	}

	s += fmt.Sprintf(fmtField, blurredStyle.Render("Title:"), m.inputs[fieldTitle].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Author:"), m.inputs[fieldAuthor].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Year:"), m.inputs[fieldYear].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Genre:"), m.inputs[fieldGenre].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Read (yes/no):"), m.inputs[fieldRead].View())

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n\n %s\n\n", *button)
	s += helpStyleForm.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

func (m *BookFormModel) saveBook() tea.Msg {
	if m.editTitle != "" {
		ch := core.Changes{
			Title:  m.inputs[fieldTitle].Value(),
			Author: m.inputs[fieldAuthor].Value(),
			Genre:  m.inputs[fieldGenre].Value(),
		}

		if v := strings.TrimSpace(m.inputs[fieldYear].Value()); v != "" {
			year, err := core.ParseYear(v)
			if err != nil {
				return errMsg{err}
			}

			ch.Year = &year
		}

		if v := strings.TrimSpace(m.inputs[fieldRead].Value()); v != "" {
			read := core.ParseRead(v)
			ch.Read = &read
		}

		book, err := m.mgr.Edit(m.editTitle, ch)
		if err != nil {
			return errMsg{err}
		}

		return savedMsg{book}
	}

	var year int
	if v := strings.TrimSpace(m.inputs[fieldYear].Value()); v != "" {
		parsed, err := core.ParseYear(v)
		if err != nil {
			return errMsg{err}
		}

		year = parsed
	}

	book := model.Book{
		Title:  m.inputs[fieldTitle].Value(),
		Author: m.inputs[fieldAuthor].Value(),
		Year:   year,
		Genre:  m.inputs[fieldGenre].Value(),
		Read:   core.ParseRead(m.inputs[fieldRead].Value()),
	}

	if err := m.mgr.Add(book); err != nil {
		return errMsg{err}
	}

	return savedMsg{book}
}

type savedMsg struct{ book model.Book }
type errMsg struct{ err error }
