// Package parser converts command strings into engine commands.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/escapecore/types"
)

var directionExpansions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
}

// Full direction names that are standalone shortcuts for "face <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
}

// Bare turn words feed the dial puzzle and relative turning.
var turnWords = map[string]bool{
	"left": true, "right": true, "around": true, "back": true, "backwards": true,
}

var verbAliases = map[string]string{
	// Look / Examine
	"l":        "look",
	"x":        "look",
	"study":    "look",
	"observe":  "look",
	"describe": "look",
	"search":   "look",
	"read":     "look",

	// Movement / Facing
	"walk":    "go",
	"run":     "go",
	"head":    "go",
	"proceed": "go",

	// Take / Get
	"get":     "take",
	"hold":    "take",
	"collect": "take",

	// Drop
	"discard": "drop",

	// Use
	"apply":  "use",
	"insert": "use",
	"poke":   "use",

	// Open / Close
	"unlock": "open",

	// Turn
	"rotate": "turn",
	"twist":  "turn",
	"spin":   "turn",

	// Miscellaneous
	"inv":   "inventory",
	"i":     "inventory",
	"help":  "hint",
	"hints": "hint",
	"reset": "restart",
}

// Prepositions introducing a tool: "open the box with the toothpick".
var toolPrepositions = map[string]bool{
	"with": true, "using": true,
}

// Prepositions introducing the target: "use the toothpick on the box".
var targetPrepositions = map[string]bool{
	"on": true, "at": true, "in": true, "into": true, "to": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "my": true,
}

// Parse converts a raw command string into a Command. The raw text is
// preserved for the engine's free-text fallbacks.
func Parse(input string) types.Command {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Command{}
	}

	cmd := types.Command{Raw: input}
	words := strings.Fields(strings.ToLower(input))

	// Shortcuts: bare "n", "east" → face; bare "left" → turn.
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Command{Verb: "face", Item: dir, Raw: input}
		}
		if directionNames[words[0]] {
			return types.Command{Verb: "face", Item: words[0], Raw: input}
		}
		if turnWords[words[0]] {
			return types.Command{Verb: "turn", Item: words[0], Raw: input}
		}
	}

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	cmd.Verb = words[0]
	rest := stripArticles(words[1:])
	cmd.Item, cmd.Tool = splitItemAndTool(cmd.Verb, rest)
	return cmd
}

// expandMultiWordVerbs handles "look at", "pick up", "put down" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "at" || words[1] == "in" || words[1] == "under" || words[1] == "behind" {
			return append([]string{"look"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"take"}, words[2:]...)
		}
	case "put":
		if words[1] == "down" {
			return append([]string{"drop"}, words[2:]...)
		}
	case "check":
		if words[1] == "inventory" || words[1] == "pockets" {
			return []string{"inventory"}
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an", "my") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

// splitItemAndTool splits the words after the verb into the primary item
// and the tool. "with"/"using" introduce the tool; "on"/"at"/"in"/"into"/
// "to" introduce the target, with the words before them as the tool —
// "use the toothpick on the box" targets the box.
func splitItemAndTool(verb string, words []string) (item, tool string) {
	for i, w := range words {
		if toolPrepositions[w] {
			return strings.Join(words[:i], " "), strings.Join(words[i+1:], " ")
		}
		if targetPrepositions[w] {
			before := strings.Join(words[:i], " ")
			after := strings.Join(words[i+1:], " ")
			if verb == "use" && before != "" {
				return after, before
			}
			return after, ""
		}
	}
	return strings.Join(words, " "), ""
}
