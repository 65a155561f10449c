package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/escapecore/engine"
	"github.com/nathoo/escapecore/engine/parser"
	"github.com/nathoo/escapecore/engine/save"
	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the escapecore TUI.
type Model struct {
	engine *engine.Engine
	player *types.PlayerState
	sess   *types.Session
	roomID string

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	quitting bool
	savePath string
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, player *types.PlayerState, roomID string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	home, _ := os.UserHomeDir()
	return Model{
		engine:   eng,
		player:   player,
		sess:     engine.NewSession(roomID),
		roomID:   roomID,
		input:    ti,
		history:  NewHistory(100),
		savePath: filepath.Join(home, ".escapecore", "save.json"),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, player *types.PlayerState, roomID string) error {
	m := New(eng, player, roomID)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the room intro.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		reply, err := m.engine.EnterRoom(m.player, m.sess, m.roomID)
		if err != nil {
			return outputMsg{lines: []rawLine{{text: err.Error(), kind: kindSystem}}}
		}
		return outputMsg{lines: []rawLine{{text: reply.Text}}}
	}
}

// outputMsg carries output lines into the Update loop.
type outputMsg struct {
	lines []rawLine
	quit  bool
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case outputMsg:
		m = m.appendOutput(msg)
		if msg.quit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		msg := outputMsg{quit: quit}
		msg.lines = append(msg.lines, rawLine{text: "> " + input, kind: kindInput})
		for _, l := range lines {
			msg.lines = append(msg.lines, rawLine{text: l, kind: kindSystem})
		}
		m = m.appendOutput(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Game command.
	reply, err := m.engine.Step(m.player, m.sess, parser.Parse(input))
	msg := outputMsg{quit: reply.Close}
	msg.lines = append(msg.lines, rawLine{text: "> " + input, kind: kindInput})
	if err != nil {
		msg.lines = append(msg.lines, rawLine{text: err.Error(), kind: kindSystem})
	}
	if reply.Text != "" {
		msg.lines = append(msg.lines, rawLine{text: reply.Text, kind: replyKind(reply)})
	}
	m = m.appendOutput(msg)
	if reply.Close {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// replyKind classifies a reply for styling from its outcome flags.
func replyKind(reply types.Reply) lineKind {
	switch {
	case reply.Outcome.Win:
		return kindWin
	case reply.Outcome.Failed:
		return kindFailure
	case len(reply.Suggestion) > 0:
		return kindHint
	default:
		return kindNarrative
	}
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg outputMsg) Model {
	m.rawLines = append(m.rawLines, msg.lines...)

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}
		styled = append(styled, renderLineKind(wordWrap(rl.text, width), rl.kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		return m.cmdSave(arg), false

	case "/load":
		return m.cmdLoad(arg), false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdSave(path string) []string {
	if path == "" {
		path = m.savePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	if err := save.WriteFile(path, m.player); err != nil {
		return []string{fmt.Sprintf("Save failed: %v", err)}
	}
	return []string{fmt.Sprintf("Progress saved to %s.", path)}
}

func (m *Model) cmdLoad(path string) []string {
	if path == "" {
		path = m.savePath
	}
	player, err := save.LoadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("Load failed: %v", err)}
	}
	*m.player = *player

	output := []string{fmt.Sprintf("Progress loaded from %s (turn %d).", path, player.TotalTurns)}
	reply, err := m.engine.EnterRoom(m.player, m.sess, m.roomID)
	if err != nil {
		return append(output, err.Error())
	}
	return append(output, reply.Text)
}

func (m *Model) cmdHelp() []string {
	return []string{
		"System:",
		"  /save [path]  — Save progress",
		"  /load [path]  — Load progress",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"",
		"Game commands:",
		"  look <thing> (l, x)     — Look closely at something",
		"  face <dir>              — Turn to a wall (or just n/s/e/w)",
		"  turn left/right         — Turn relative to where you face",
		"  take <item>             — Pick something up",
		"  drop <item>             — Put something down",
		"  use <item> on <thing>   — Use an item on something",
		"  inventory (i)           — Check what you're carrying",
		"  hint                    — Spend a hint",
		"  restart                 — Start the room over",
		"",
		"Navigation: PgUp/PgDn to scroll, Up/Down for command history",
	}
}

func (m *Model) cmdState() []string {
	rs := state.Room(m.player, m.roomID)
	output := []string{
		fmt.Sprintf("Room: %s", m.roomID),
		fmt.Sprintf("Facing: %s", m.sess.Direction),
		fmt.Sprintf("Turn: %d", rs.Turns),
		fmt.Sprintf("Found: %v", rs.FoundItems),
		fmt.Sprintf("Inventory: %v", rs.CollectedItems),
	}
	if len(rs.Hints) > 0 {
		output = append(output, fmt.Sprintf("Banked hints: %d", len(rs.Hints)))
	}
	if rs.Done {
		output = append(output, "Room finished.")
	}
	return output
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
