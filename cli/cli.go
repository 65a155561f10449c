// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the escapecore engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathoo/escapecore/engine"
	"github.com/nathoo/escapecore/engine/parser"
	"github.com/nathoo/escapecore/engine/save"
	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Player    *types.PlayerState
	RoomID    string
	In        io.Reader
	Out       io.Writer
	SavePath  string
	EchoInput bool // echo each input line after the prompt (for script playback)

	sess *types.Session
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, player *types.PlayerState, roomID string) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:   eng,
		Player:   player,
		RoomID:   roomID,
		In:       os.Stdin,
		Out:      os.Stdout,
		SavePath: filepath.Join(home, ".escapecore", "save.json"),
	}
}

// Run starts the game loop: intro, then prompt → input → step → output.
// It returns when the input ends, the player quits, or the engine closes
// the session.
func (c *CLI) Run() error {
	c.sess = engine.NewSession(c.RoomID)
	reply, err := c.Engine.EnterRoom(c.Player, c.sess, c.RoomID)
	if err != nil {
		return err
	}
	c.printLine(reply.Text)

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return nil
			}
			continue
		}

		reply, err := c.Engine.Step(c.Player, c.sess, parser.Parse(input))
		if err != nil {
			// Content defects still carry a graceful reply.
			c.printSystem(err.Error())
		}
		c.printReply(reply)
		if reply.Close {
			break
		}
	}
	return scanner.Err()
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(path string) {
	if path == "" {
		path = c.SavePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	if err := save.WriteFile(path, c.Player); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Progress saved to %s.", path))
}

func (c *CLI) cmdLoad(path string) {
	if path == "" {
		path = c.SavePath
	}
	player, err := save.LoadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	*c.Player = *player
	c.printSystem(fmt.Sprintf("Progress loaded from %s (turn %d).", path, player.TotalTurns))

	reply, err := c.Engine.EnterRoom(c.Player, c.sess, c.RoomID)
	if err != nil {
		c.printSystem(err.Error())
		return
	}
	c.printLine(reply.Text)
}

func (c *CLI) cmdHelp() {
	help := []string{
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
		"  open <thing> with <item>",
		"  inventory (i)           — Check what you're carrying",
		"  hint                    — Spend a hint",
		"  restart                 — Start the room over",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	rs := state.Room(c.Player, c.RoomID)
	c.printSystem(fmt.Sprintf("Room: %s", c.RoomID))
	c.printSystem(fmt.Sprintf("Facing: %s", c.sess.Direction))
	c.printSystem(fmt.Sprintf("Turn: %d", rs.Turns))
	c.printSystem(fmt.Sprintf("Found: %v", rs.FoundItems))
	c.printSystem(fmt.Sprintf("Inventory: %v", rs.CollectedItems))
	if len(rs.Hints) > 0 {
		c.printSystem(fmt.Sprintf("Banked hints: %d", len(rs.Hints)))
	}
	if rs.Done {
		c.printSystem("Room finished.")
	}
}

func (c *CLI) printReply(reply types.Reply) {
	if reply.Text != "" {
		c.printLine(reply.Text)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
