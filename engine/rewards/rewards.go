// Package rewards grants exploration rewards and serves hints. A reward
// is a room-defined trigger on a look or direction event; matching one
// queues its hint text for later consumption.
package rewards

import (
	"fmt"

	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/types"
)

// Event is the just-occurred observable effect a trigger can match: a
// successful look at an item, or facing a direction.
type Event struct {
	Item      string
	Direction string
}

// Check scans the room's rewards in index order and grants the first
// unclaimed one whose trigger matches the event. The granted hint is
// queued on the room state; the returned text is the framing announcement
// for the player. At most one reward is granted per event.
func Check(room *types.Room, ev Event, rs *types.RoomState, p *types.PlayerState, bank *prompts.Bank, hist map[string]string) (string, bool) {
	for idx, reward := range room.Rewards {
		if state.Claimed(rs, idx) || !matches(reward, ev) {
			continue
		}
		rs.ClaimedRewards = append(rs.ClaimedRewards, idx)
		rs.Hints = append(rs.Hints, reward.Hint)

		if !p.RewardHinted {
			p.RewardHinted = true
			return bank.Pick(hist, "reward_first"), true
		}
		return bank.Pick(hist, "reward"), true
	}
	return "", false
}

func matches(r types.Reward, ev Event) bool {
	switch r.Kind {
	case types.TriggerLookItem:
		return ev.Item != "" && state.Contains(r.Values, ev.Item)
	case types.TriggerDirection:
		return ev.Direction != "" && state.Contains(r.Values, ev.Direction)
	}
	return false
}

// Consume serves one hint. Queued reward hints are taken newest first;
// with an empty queue it falls back to progress heuristics, preferring
// the armed puzzle context, then uninspected items, then unexplored
// directions, then the inventory nudge, then room-level hints.
func Consume(room *types.Room, ctx types.Context, rs *types.RoomState, p *types.PlayerState, bank *prompts.Bank, hist map[string]string) string {
	if n := len(rs.Hints); n > 0 {
		hint := rs.Hints[n-1]
		rs.Hints = rs.Hints[:n-1]
		return fmt.Sprintf(bank.Pick(hist, "hint"), hint)
	}

	switch ctx {
	case types.ContextTurns:
		return bank.Pick(hist, "hint_turns")
	case types.ContextCode:
		return bank.Pick(hist, "hint_code")
	case types.ContextColors:
		return bank.Pick(hist, "hint_colors")
	case types.ContextDirections:
		return bank.Pick(hist, "hint_directions")
	}

	if items := state.UnlookedItems(rs); len(items) > 0 {
		return fmt.Sprintf(bank.Pick(hist, "hint_items"), items[0])
	}
	if dirs := state.UndiscoveredDirections(room, rs); len(dirs) > 0 {
		return fmt.Sprintf(bank.Pick(hist, "hint_direction"), dirs[0])
	}
	if len(rs.CollectedItems) == 0 && !p.Tips["inventory_hint"] {
		p.Tips["inventory_hint"] = true
		return bank.Pick(hist, "hint_inventory")
	}
	if len(room.Hints) > 0 {
		return bank.PickFrom(hist, "room_hint:"+room.ID, room.Hints)
	}
	return bank.Pick(hist, "hint_generic")
}
