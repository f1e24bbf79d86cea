package practice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Surfer12/microarch-lab-conversions/internal/ui/theme"
)

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m *Model) render() string {
	if m.errMsg != "" {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + m.errMsg + "\n\n  Press Ctrl+C to exit.")
	}
	if m.showingQuitConfirm {
		return m.renderQuitConfirm()
	}
	if m.showingFeedback {
		return m.renderFeedback()
	}
	return m.renderQuestion()
}

func (m *Model) renderQuestion() string {
	if m.current == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Generating challenge...")
	}

	var b strings.Builder

	// Status line: level, score, per-question clock.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Level: %s", m.state.Level))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d correct  %ds  ", m.totalCorrect, m.totalAnswered, int(m.elapsed.Seconds())))

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	line += right

	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(m.width-2, 0))))
	b.WriteString("\n\n")

	prompt := fmt.Sprintf("Convert %s from base %d to base %d",
		m.current.Value, m.current.SourceBase, m.current.TargetBase)
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("complexity %.1f", m.current.Complexity)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render("Answer: " + m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Enter submit · Esc quit"))

	return b.String()
}

func (m *Model) renderFeedback() string {
	var b strings.Builder
	b.WriteString("\n\n")

	if m.lastEval.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(theme.Correct.Render("Correct!")))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(theme.Incorrect.Render("Not quite.")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("You answered %q. Correct answer: %s", m.lastUserAnswer, m.lastEval.CorrectAnswer)))
	}

	if m.state.Level != m.levelBefore {
		b.WriteString("\n\n")
		var note string
		if m.state.Level > m.levelBefore {
			note = fmt.Sprintf("Level up! Now at %s.", m.state.Level)
		} else {
			note = fmt.Sprintf("Back to %s for a fresh start.", m.state.Level)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(note))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("Press any key to continue")))

	return b.String()
}

func (m *Model) renderQuitConfirm() string {
	card := theme.Card.Render("End this practice session?\n\n  [Y] Yes   [N] Keep going")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
