package engine

import "github.com/nathoo/escapecore/types"

// NewSession creates the ephemeral per-connection state for a room.
func NewSession(roomID string) *types.Session {
	return &types.Session{
		RoomID:        roomID,
		Direction:     DefaultFacing,
		PromptHistory: map[string]string{},
	}
}

// pushRolling records the newest value in a two-slot rolling window.
func pushRolling(window *[2]string, v string) {
	window[1] = window[0]
	window[0] = v
}

// repeated reports whether the newest raw input exactly repeats the
// previous turn's. Empty input never counts as a repeat.
func repeated(window [2]string) bool {
	return window[0] != "" && window[0] == window[1]
}
