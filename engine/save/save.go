// Package save implements JSON serialization of the durable player state.
// The engine core never touches I/O itself; the clients read the blob at
// the start of a session and write it back after every turn.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/types"
)

// Version identifies the save format.
const Version = "1"

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version string             `json:"version"`
	Player  *types.PlayerState `json:"player"`
}

// Marshal serializes a player state to JSON bytes.
func Marshal(p *types.PlayerState) ([]byte, error) {
	return json.MarshalIndent(SaveData{Version: Version, Player: p}, "", "  ")
}

// Unmarshal deserializes JSON bytes into a player state, repairing any
// maps or lists a hand-edited or older blob may have dropped.
func Unmarshal(data []byte) (*types.PlayerState, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("parse save data: %w", err)
	}
	if sd.Player == nil {
		return nil, errors.New("save data has no player record")
	}
	p := sd.Player
	if p.Rooms == nil {
		p.Rooms = map[string]*types.RoomState{}
	}
	if p.Tips == nil {
		p.Tips = map[string]bool{}
	}
	for _, rs := range p.Rooms {
		repairRoom(rs)
	}
	return p, nil
}

func repairRoom(rs *types.RoomState) {
	if rs.FoundItems == nil {
		rs.FoundItems = append([]string(nil), state.DefaultItems...)
	}
	if rs.FoundItemDirections == nil {
		rs.FoundItemDirections = map[string]string{}
	}
	if rs.FoundDirections == nil {
		rs.FoundDirections = []string{}
	}
	if rs.LookedItems == nil {
		rs.LookedItems = []string{}
	}
	if rs.CollectedItems == nil {
		rs.CollectedItems = []string{}
	}
	if rs.DroppedItems == nil {
		rs.DroppedItems = []string{}
	}
	if rs.Records == nil {
		rs.Records = map[string][]types.ActionRecord{}
	}
	if rs.ClaimedRewards == nil {
		rs.ClaimedRewards = []int{}
	}
	if rs.Hints == nil {
		rs.Hints = []string{}
	}
}

// LoadFile reads a player state from disk. A missing file yields a fresh
// player rather than an error.
func LoadFile(path string) (*types.PlayerState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return state.NewPlayer(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}
	return Unmarshal(data)
}

// WriteFile persists a player state to disk.
func WriteFile(path string, p *types.PlayerState) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	return nil
}
