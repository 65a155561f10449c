package rewards

import (
	"strings"
	"testing"

	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/types"
)

func testRoom() *types.Room {
	return &types.Room{
		ID: "office",
		Directions: []types.Direction{
			{Name: "north"}, {Name: "east"}, {Name: "south"}, {Name: "west"},
		},
		Rewards: []types.Reward{
			{Kind: types.TriggerLookItem, Values: []string{"desk"}, Hint: "check the drawer"},
			{Kind: types.TriggerDirection, Values: []string{"east"}, Hint: "the painting hides something"},
			{Kind: types.TriggerLookItem, Values: []string{"box"}, Hint: "the pinhole wants something thin"},
		},
		Hints: []string{"everything in this office has a purpose"},
	}
}

func fixture() (*types.Room, *types.RoomState, *types.PlayerState, *prompts.Bank, map[string]string) {
	rs := &types.RoomState{}
	state.Reset(rs)
	return testRoom(), rs, state.NewPlayer(), prompts.New(1), map[string]string{}
}

func TestCheck_LookTriggerGrantsAndQueues(t *testing.T) {
	room, rs, p, bank, hist := fixture()

	text, granted := Check(room, Event{Item: "desk"}, rs, p, bank, hist)
	if !granted {
		t.Fatal("expected a grant")
	}
	if text == "" {
		t.Error("expected framing text")
	}
	if len(rs.Hints) != 1 || rs.Hints[0] != "check the drawer" {
		t.Errorf("expected the hint queued, got %v", rs.Hints)
	}
	if !state.Claimed(rs, 0) {
		t.Error("expected index 0 claimed")
	}
}

func TestCheck_DirectionTrigger(t *testing.T) {
	room, rs, p, bank, hist := fixture()

	if _, granted := Check(room, Event{Direction: "east"}, rs, p, bank, hist); !granted {
		t.Fatal("expected a grant")
	}
	if !state.Claimed(rs, 1) {
		t.Error("expected index 1 claimed")
	}
}

func TestCheck_ClaimedIndexNeverReconsidered(t *testing.T) {
	room, rs, p, bank, hist := fixture()

	Check(room, Event{Item: "desk"}, rs, p, bank, hist)
	if _, granted := Check(room, Event{Item: "desk"}, rs, p, bank, hist); granted {
		t.Error("expected no second grant from the same trigger")
	}
	if len(rs.ClaimedRewards) != 1 {
		t.Errorf("expected one claim, got %v", rs.ClaimedRewards)
	}
}

func TestCheck_AtMostOnePerEvent(t *testing.T) {
	room, rs, p, bank, hist := fixture()
	room.Rewards = append(room.Rewards,
		types.Reward{Kind: types.TriggerLookItem, Values: []string{"desk"}, Hint: "second desk hint"})

	Check(room, Event{Item: "desk"}, rs, p, bank, hist)
	if len(rs.ClaimedRewards) != 1 {
		t.Errorf("expected a single claim per event, got %v", rs.ClaimedRewards)
	}
}

func TestCheck_FirstGrantUsesDistinctFraming(t *testing.T) {
	room, rs, p, bank, hist := fixture()

	first, _ := Check(room, Event{Item: "desk"}, rs, p, bank, hist)
	second, _ := Check(room, Event{Direction: "east"}, rs, p, bank, hist)

	if !strings.Contains(first, "first") {
		t.Errorf("expected first-grant framing, got %q", first)
	}
	if strings.Contains(second, "first") {
		t.Errorf("expected plain framing on the second grant, got %q", second)
	}
}

func TestCheck_MonotonicNeverExceedsRewardCount(t *testing.T) {
	room, rs, p, bank, hist := fixture()
	events := []Event{
		{Item: "desk"}, {Direction: "east"}, {Item: "box"},
		{Item: "desk"}, {Direction: "east"}, {Item: "box"},
	}

	prev := 0
	for _, ev := range events {
		Check(room, ev, rs, p, bank, hist)
		if len(rs.ClaimedRewards) < prev {
			t.Fatal("claimed count decreased")
		}
		prev = len(rs.ClaimedRewards)
	}
	if prev > len(room.Rewards) {
		t.Errorf("claimed %d of %d rewards", prev, len(room.Rewards))
	}
}

func TestConsume_NewestHintFirst(t *testing.T) {
	room, rs, p, bank, hist := fixture()
	Check(room, Event{Item: "desk"}, rs, p, bank, hist)
	Check(room, Event{Item: "box"}, rs, p, bank, hist)

	first := Consume(room, types.ContextNone, rs, p, bank, hist)
	if !strings.Contains(first, "pinhole") {
		t.Errorf("expected the newest hint first, got %q", first)
	}
	second := Consume(room, types.ContextNone, rs, p, bank, hist)
	if !strings.Contains(second, "drawer") {
		t.Errorf("expected the older hint second, got %q", second)
	}
}

func TestConsume_ContextBeatsHeuristics(t *testing.T) {
	room, rs, p, bank, hist := fixture()
	rs.FoundItems = state.Add(rs.FoundItems, "safe")

	got := Consume(room, types.ContextTurns, rs, p, bank, hist)
	if !strings.Contains(strings.ToLower(got), "turn") && !strings.Contains(strings.ToLower(got), "safe") {
		t.Errorf("expected a turns-context hint, got %q", got)
	}
}

func TestConsume_ColorsAndDirectionsContexts(t *testing.T) {
	room, rs, p, bank, hist := fixture()

	got := Consume(room, types.ContextColors, rs, p, bank, hist)
	if !strings.Contains(strings.ToLower(got), "colors") {
		t.Errorf("expected a colors-context hint, got %q", got)
	}

	got = Consume(room, types.ContextDirections, rs, p, bank, hist)
	if !strings.Contains(strings.ToLower(got), "directions") {
		t.Errorf("expected a directions-context hint, got %q", got)
	}
}

func TestConsume_UninspectedItemBeatsDirections(t *testing.T) {
	room, rs, p, bank, hist := fixture()
	rs.FoundItems = state.Add(rs.FoundItems, "drawer")

	got := Consume(room, types.ContextNone, rs, p, bank, hist)
	if !strings.Contains(got, "drawer") {
		t.Errorf("expected a nudge toward the drawer, got %q", got)
	}
}

func TestConsume_DirectionsWhenAllItemsSeen(t *testing.T) {
	room, rs, p, bank, hist := fixture()

	got := Consume(room, types.ContextNone, rs, p, bank, hist)
	if !strings.Contains(got, "north") {
		t.Errorf("expected the first unexplored direction, got %q", got)
	}
}

func TestConsume_RoomHintAfterExploration(t *testing.T) {
	room, rs, p, bank, hist := fixture()
	for _, d := range room.Directions {
		rs.FoundDirections = state.Add(rs.FoundDirections, d.Name)
	}
	rs.CollectedItems = state.Add(rs.CollectedItems, "key")

	got := Consume(room, types.ContextNone, rs, p, bank, hist)
	if got != room.Hints[0] {
		t.Errorf("expected the room-level hint, got %q", got)
	}
}

func TestConsume_InventoryNudgeIsOneShot(t *testing.T) {
	room, rs, p, bank, hist := fixture()
	for _, d := range room.Directions {
		rs.FoundDirections = state.Add(rs.FoundDirections, d.Name)
	}

	first := Consume(room, types.ContextNone, rs, p, bank, hist)
	if !strings.Contains(strings.ToLower(first), "inventory") && !strings.Contains(strings.ToLower(first), "collect") {
		t.Errorf("expected the inventory nudge, got %q", first)
	}
	second := Consume(room, types.ContextNone, rs, p, bank, hist)
	if second == first {
		t.Errorf("expected the nudge to fire once, got %q twice", second)
	}
}
