package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/escapecore/engine/state"
)

// roomDisplayName derives a human-readable name from a room ID.
// "office" -> "Office", "wine_cellar" -> "Wine Cellar".
func roomDisplayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// renderStatusBar produces a full-width inverted status line showing
// the room, facing, inventory, and turn count.
func (m Model) renderStatusBar() string {
	rs := state.Room(m.player, m.roomID)

	left := fmt.Sprintf(" %s | Facing: %s", roomDisplayName(m.roomID), m.sess.Direction)
	right := fmt.Sprintf("T:%d ", rs.Turns)

	// Show inventory items if they fit, otherwise just count.
	if len(rs.CollectedItems) > 0 {
		invStr := strings.Join(rs.CollectedItems, ", ")
		candidate := fmt.Sprintf("Inv: %s | T:%d ", invStr, rs.Turns)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(rs.CollectedItems), rs.Turns)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
