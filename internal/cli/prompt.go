package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel asks for one line of text.
type PromptModel struct {
	input     textinput.Model
	label     string
	Cancelled bool
}

// NewPrompt builds a single-line prompt with the given label above the
// input field.
func NewPrompt(label, placeholder string) PromptModel {
	t := textinput.New()
	t.Placeholder = placeholder
	t.CharLimit = 256
	t.Cursor.Style = cursorStyle
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle
	t.Focus()

	return PromptModel{input: t, label: label}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Cancelled = true

			return m, tea.Quit

		case "enter":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m PromptModel) View() string {
	return fmt.Sprintf("\n %s\n %s\n\n %s\n",
		blurredStyle.Render(m.label),
		m.input.View(),
		helpStyleForm.Render("enter: confirm • esc: cancel"))
}

// Value returns what was typed.
func (m PromptModel) Value() string {
	return m.input.Value()
}
