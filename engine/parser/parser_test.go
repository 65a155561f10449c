package parser

import (
	"testing"

	"github.com/nathoo/escapecore/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Command
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Command{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Command{},
		},

		// Basic verbs (no item)
		{
			name:  "look",
			input: "look",
			want:  types.Command{Verb: "look"},
		},
		{
			name:  "inventory",
			input: "inventory",
			want:  types.Command{Verb: "inventory"},
		},

		// Verb aliases
		{
			name:  "x alias",
			input: "x drawer",
			want:  types.Command{Verb: "look", Item: "drawer"},
		},
		{
			name:  "get alias",
			input: "get key",
			want:  types.Command{Verb: "take", Item: "key"},
		},
		{
			name:  "help maps to hint",
			input: "help",
			want:  types.Command{Verb: "hint"},
		},
		{
			name:  "unlock maps to open",
			input: "unlock the door",
			want:  types.Command{Verb: "open", Item: "door"},
		},

		// Direction shortcuts
		{
			name:  "bare n expands",
			input: "n",
			want:  types.Command{Verb: "face", Item: "north"},
		},
		{
			name:  "bare east",
			input: "east",
			want:  types.Command{Verb: "face", Item: "east"},
		},
		{
			name:  "bare left is a turn",
			input: "left",
			want:  types.Command{Verb: "turn", Item: "left"},
		},
		{
			name:  "bare around is a turn",
			input: "around",
			want:  types.Command{Verb: "turn", Item: "around"},
		},

		// Multi-word verbs
		{
			name:  "look at",
			input: "look at the safe",
			want:  types.Command{Verb: "look", Item: "safe"},
		},
		{
			name:  "pick up",
			input: "pick up the toothpick",
			want:  types.Command{Verb: "take", Item: "toothpick"},
		},
		{
			name:  "put down",
			input: "put down the key",
			want:  types.Command{Verb: "drop", Item: "key"},
		},
		{
			name:  "check pockets",
			input: "check pockets",
			want:  types.Command{Verb: "inventory"},
		},

		// Articles
		{
			name:  "articles stripped",
			input: "open the drawer",
			want:  types.Command{Verb: "open", Item: "drawer"},
		},
		{
			name:  "multi-word item survives",
			input: "look at the air duct",
			want:  types.Command{Verb: "look", Item: "air duct"},
		},

		// Item and tool
		{
			name:  "with introduces the tool",
			input: "open the box with the toothpick",
			want:  types.Command{Verb: "open", Item: "box", Tool: "toothpick"},
		},
		{
			name:  "using introduces the tool",
			input: "open the vent using the screwdriver",
			want:  types.Command{Verb: "open", Item: "vent", Tool: "screwdriver"},
		},
		{
			name:  "use X on Y targets Y",
			input: "use the toothpick on the box",
			want:  types.Command{Verb: "use", Item: "box", Tool: "toothpick"},
		},
		{
			name:  "knock on door",
			input: "knock on the door",
			want:  types.Command{Verb: "knock", Item: "door"},
		},
		{
			name:  "turn to the right",
			input: "turn to the right",
			want:  types.Command{Verb: "turn", Item: "right"},
		},

		// Case insensitivity
		{
			name:  "mixed case",
			input: "LOOK AT Safe",
			want:  types.Command{Verb: "look", Item: "safe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got.Verb != tt.want.Verb {
				t.Errorf("Verb = %q, want %q", got.Verb, tt.want.Verb)
			}
			if got.Item != tt.want.Item {
				t.Errorf("Item = %q, want %q", got.Item, tt.want.Item)
			}
			if got.Tool != tt.want.Tool {
				t.Errorf("Tool = %q, want %q", got.Tool, tt.want.Tool)
			}
		})
	}
}

func TestParse_PreservesRaw(t *testing.T) {
	got := Parse("  Open the Box with the Toothpick  ")
	if got.Raw != "Open the Box with the Toothpick" {
		t.Errorf("Raw = %q, want the trimmed original text", got.Raw)
	}
}
