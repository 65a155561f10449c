// Escapecore is a deterministic turn-resolution engine for escape-room games.
// Usage: escapecore [flags] <content_directory>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nathoo/escapecore/cli"
	"github.com/nathoo/escapecore/engine"
	"github.com/nathoo/escapecore/engine/save"
	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/loader"
	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/tui"
	"github.com/nathoo/escapecore/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	plain := flag.Bool("plain", false, "use the plain line-based interface")
	scriptFile := flag.String("script", "", "read commands from a file (implies --plain, echoes input)")
	savePath := flag.String("save", "", "save file path (default ~/.escapecore/save.json)")
	roomID := flag.String("room", "", "room to start in (default: first declared room)")
	promptFile := flag.String("prompts", "", "YAML file of prompt overrides")
	seed := flag.Int64("seed", 0, "prompt variant seed (0 = time-based)")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("escapecore %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	contentDir := flag.Arg(0)

	pack, err := loader.Load(contentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}
	for _, w := range pack.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	bank := prompts.New(*seed)
	bank.Merge(pack.Prompts)
	if *promptFile != "" {
		if err := bank.MergeFile(*promptFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading prompts: %v\n", err)
			os.Exit(1)
		}
	}

	eng := engine.New(pack.Rooms, bank, nil)

	start := *roomID
	if start == "" {
		start = firstRoom(pack)
	}
	if _, ok := pack.Rooms[start]; !ok {
		fmt.Fprintf(os.Stderr, "Error: room %q not found in %s\n", start, contentDir)
		os.Exit(1)
	}

	player := loadPlayer(*savePath)

	// Script mode: open file, force plain, echo commands.
	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng, player, start)
		c.In = f
		c.EchoInput = true
		applySavePath(c, *savePath)
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Use the plain CLI if --plain or stdout is not a terminal.
	if *plain || !isTerminal() {
		c := cli.New(eng, player, start)
		applySavePath(c, *savePath)
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(eng, player, start); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: escapecore [--version] [--plain] [--script <file>] [--save <file>] [--room <id>] [--prompts <yaml>] [--seed <n>] <content_directory>\n")
}

// firstRoom picks a deterministic starting room: the lexically first ID.
func firstRoom(pack *loader.Pack) string {
	first := ""
	for id := range pack.Rooms {
		if first == "" || id < first {
			first = id
		}
	}
	return first
}

// loadPlayer resumes a saved game if one exists, else starts fresh.
func loadPlayer(path string) *types.PlayerState {
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".escapecore", "save.json")
	}
	player, err := save.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring unreadable save file: %v\n", err)
		return state.NewPlayer()
	}
	return player
}

func applySavePath(c *cli.CLI, path string) {
	if path != "" {
		c.SavePath = path
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
