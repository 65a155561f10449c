package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/escapecore/engine"
	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/types"
)

// testRoom returns a minimal room for CLI testing: a cell with a loose
// brick hiding a key that opens the gate.
func testRoom() *types.Room {
	win := true
	return &types.Room{
		ID:             "cell",
		Intro:          "You are locked in a stone cell.",
		IntroDirection: "north",
		Directions: []types.Direction{
			{Name: "north", Rules: []types.ActionRule{{
				Verbs:    []string{"look"},
				Reveal:   []string{"brick", "gate"},
				Variants: []string{"A loose brick sits low in the wall beside a rusty gate."},
			}}},
		},
		Items: map[string]*types.Item{
			"brick": {ID: "brick", Static: true, Rules: []types.ActionRule{
				{Verbs: []string{"pull", "open"}, Reveal: []string{"key"}, Collect: []string{"key"},
					Variants: []string{"The brick slides out. Behind it lies a key."}},
			}},
			"key": {ID: "key", Rules: []types.ActionRule{
				{Verbs: []string{"look"}, Variants: []string{"A heavy iron key."}},
			}},
			"gate": {ID: "gate", Static: true, Rules: []types.ActionRule{
				{Verbs: []string{"open", "use"}, Tool: "key", Win: &win,
					Variants: []string{"The gate creaks open."}},
			}},
		},
		ItemOrder: []string{"brick", "key", "gate"},
	}
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	eng := engine.New(map[string]*types.Room{"cell": testRoom()}, prompts.New(1), nil)
	var out bytes.Buffer
	return &CLI{
		Engine:   eng,
		Player:   state.NewPlayer(),
		RoomID:   "cell",
		In:       strings.NewReader(input),
		Out:      &out,
		SavePath: filepath.Join(t.TempDir(), "save.json"),
	}, &out
}

func TestRun_IntroShown(t *testing.T) {
	c, out := newTestCLI(t, "")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "stone cell") {
		t.Errorf("output missing intro: %q", out.String())
	}
}

func TestRun_ScriptPlaysThrough(t *testing.T) {
	script := strings.Join([]string{
		"# the walkthrough",
		"face north",
		"pull the brick",
		"open the gate with the key",
	}, "\n")
	c, out := newTestCLI(t, script)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "loose brick") {
		t.Errorf("output missing the north wall: %q", got)
	}
	if !strings.Contains(got, "gate creaks open") {
		t.Errorf("output missing the ending: %q", got)
	}
	rs := state.Room(c.Player, "cell")
	if !rs.Win {
		t.Error("script should win the room")
	}
}

func TestRun_EchoInput(t *testing.T) {
	c, out := newTestCLI(t, "face north\n")
	c.EchoInput = true
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "face north") {
		t.Errorf("output missing echoed input: %q", out.String())
	}
}

func TestRun_CommentLinesSkipped(t *testing.T) {
	c, out := newTestCLI(t, "# just a comment\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "comment") {
		t.Errorf("comment leaked into output: %q", out.String())
	}
}

func TestMeta_QuitExits(t *testing.T) {
	c, out := newTestCLI(t, "/quit\nface north\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Goodbye.") {
		t.Errorf("output missing goodbye: %q", got)
	}
	if strings.Contains(got, "loose brick") {
		t.Error("commands after /quit should not run")
	}
}

func TestMeta_SaveAndLoadRoundTrip(t *testing.T) {
	c, out := newTestCLI(t, "face north\npull brick\n/save\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Progress saved") {
		t.Fatalf("output missing save confirmation: %q", out.String())
	}

	c2, out2 := newTestCLI(t, "/load "+c.SavePath+"\ninventory\n")
	if err := c2.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out2.String()
	if !strings.Contains(got, "Progress loaded") {
		t.Fatalf("output missing load confirmation: %q", got)
	}
	if !strings.Contains(got, "key") {
		t.Errorf("loaded inventory should carry the key: %q", got)
	}
}

func TestMeta_UnknownCommand(t *testing.T) {
	c, out := newTestCLI(t, "/frobnicate\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("output = %q", out.String())
	}
}

func TestMeta_StateDump(t *testing.T) {
	c, out := newTestCLI(t, "face north\n/state\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Facing: north") {
		t.Errorf("state dump missing facing: %q", got)
	}
	if !strings.Contains(got, "brick") {
		t.Errorf("state dump missing found items: %q", got)
	}
}
