package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Surfer12/microarch-lab-conversions/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for base-conversion answers:
// digits 0-9, letters A-Z (any case), and a single '.' separator.
type AnswerInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewAnswerInput creates a styled answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, filtering keystrokes that can never be part
// of a valid answer.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !allowedAnswerChar(key[0]) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Render(a.Model.View())
}

// Value returns the current input text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reset clears the input.
func (a *AnswerInput) Reset() {
	a.Model.SetValue("")
}

func allowedAnswerChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c == '.':
		return true
	default:
		return false
	}
}
