package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarrative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleFailure = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleWin = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling. The kind
// is derived from the reply's outcome flags, not from text sniffing.
type lineKind int

const (
	kindNarrative lineKind = iota
	kindFailure
	kindHint
	kindWin
	kindSystem
	kindInput
)

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindInput:
		return stylePlayerInput.Render(line)
	case kindSystem:
		return styleSystem.Render("[" + line + "]")
	case kindFailure:
		return styleFailure.Render(line)
	case kindHint:
		return styleHint.Render(line)
	case kindWin:
		return styleWin.Render(line)
	default:
		return styleNarrative.Render(line)
	}
}
