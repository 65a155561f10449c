// Package state manages the per-player mutable game state: the MRU item
// lists, the per-target interaction history, and room lifecycle.
package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/escapecore/types"
)

// DefaultItems seed every fresh room state: surfaces the player can always
// inspect without discovering them first.
var DefaultItems = []string{"wall", "ceiling", "floor"}

// NewPlayer creates a durable player record with a fresh identifier.
func NewPlayer() *types.PlayerState {
	return &types.PlayerState{
		ID:      uuid.NewString(),
		Created: time.Now().UTC(),
		Rooms:   map[string]*types.RoomState{},
		Tips:    map[string]bool{},
	}
}

// Room returns the player's state for a room, creating a fresh one on
// first entry.
func Room(p *types.PlayerState, roomID string) *types.RoomState {
	if rs, ok := p.Rooms[roomID]; ok {
		return rs
	}
	rs := &types.RoomState{}
	Reset(rs)
	p.Rooms[roomID] = rs
	return rs
}

// Reset reinitializes a room state in place. Used for first entry and for
// an explicit restart.
func Reset(rs *types.RoomState) {
	*rs = types.RoomState{
		FoundItems:          append([]string(nil), DefaultItems...),
		FoundItemDirections: map[string]string{},
		FoundDirections:     []string{},
		LookedItems:         []string{},
		CollectedItems:      []string{},
		DroppedItems:        []string{},
		Records:             map[string][]types.ActionRecord{},
		ClaimedRewards:      []int{},
		Hints:               []string{},
	}
}

// Contains reports whether id is present in list.
func Contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// Add inserts id at the front of the list. If id is already present it is
// moved to the front instead, so every list stays most-recently-used first.
func Add(list []string, id string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, id)
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// AddAll front-inserts each id in order, so the last id ends up first.
func AddAll(list []string, ids ...string) []string {
	for _, id := range ids {
		list = Add(list, id)
	}
	return list
}

// Remove deletes id from the list, preserving order. Absent ids are a no-op.
func Remove(list []string, id string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Record appends an ActionRecord for the target. At most one record per
// verb is kept: re-recording an already-recorded verb is a no-op.
func Record(rs *types.RoomState, target, verb, tool string) {
	for _, r := range rs.Records[target] {
		if r.Verb == verb {
			return
		}
	}
	rs.Records[target] = append(rs.Records[target], types.ActionRecord{Verb: verb, Tool: tool})
}

// HasRecord reports whether the target's history satisfies the given
// verb-set and tool requirement: some record's verb must appear in verbs,
// and its tool must equal tool (both may be empty).
func HasRecord(rs *types.RoomState, target string, verbs []string, tool string) bool {
	for _, r := range rs.Records[target] {
		if r.Tool != tool {
			continue
		}
		for _, v := range verbs {
			if r.Verb == v {
				return true
			}
		}
	}
	return false
}

// DeleteRecord removes every record for the target whose verb is verb.
func DeleteRecord(rs *types.RoomState, target, verb string) {
	recs := rs.Records[target][:0:0]
	for _, r := range rs.Records[target] {
		if r.Verb != verb {
			recs = append(recs, r)
		}
	}
	if len(recs) == 0 {
		delete(rs.Records, target)
		return
	}
	rs.Records[target] = recs
}

// Found reports whether the player has discovered the item. Defensive
// against corrupted state: a collected item counts as found even if the
// found list lost it.
func Found(rs *types.RoomState, id string) bool {
	return Contains(rs.FoundItems, id) || Contains(rs.CollectedItems, id)
}

// Collected reports whether the item is in the inventory.
func Collected(rs *types.RoomState, id string) bool {
	return Contains(rs.CollectedItems, id)
}

// Collect moves an item into the inventory. The item must already be
// found; collecting clears any dropped mark so the two lists never share
// an entry.
func Collect(rs *types.RoomState, id string) {
	rs.DroppedItems = Remove(rs.DroppedItems, id)
	rs.CollectedItems = Add(rs.CollectedItems, id)
}

// Drop moves an item out of the inventory onto the dropped list.
func Drop(rs *types.RoomState, id string) {
	rs.CollectedItems = Remove(rs.CollectedItems, id)
	rs.DroppedItems = Add(rs.DroppedItems, id)
}

// Claimed reports whether a reward index has been claimed.
func Claimed(rs *types.RoomState, idx int) bool {
	for _, i := range rs.ClaimedRewards {
		if i == idx {
			return true
		}
	}
	return false
}

// UndiscoveredDirections returns the compass names of room directions the
// player has not yet faced, in declaration order.
func UndiscoveredDirections(room *types.Room, rs *types.RoomState) []string {
	var out []string
	for _, d := range room.Directions {
		if !Contains(rs.FoundDirections, d.Name) {
			out = append(out, d.Name)
		}
	}
	return out
}

// UnlookedItems returns found items the player has not yet inspected,
// excluding the default surfaces.
func UnlookedItems(rs *types.RoomState) []string {
	var out []string
	for _, id := range rs.FoundItems {
		if Contains(DefaultItems, id) {
			continue
		}
		if !Contains(rs.LookedItems, id) {
			out = append(out, id)
		}
	}
	return out
}
