package state

import (
	"testing"

	"github.com/nathoo/escapecore/types"
)

func testRoomState() *types.RoomState {
	rs := &types.RoomState{}
	Reset(rs)
	return rs
}

func TestNewPlayer_HasIdentifier(t *testing.T) {
	p := NewPlayer()
	if p.ID == "" {
		t.Error("expected a non-empty player ID")
	}
	if p.Created.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

func TestRoom_CreatesOnFirstEntry(t *testing.T) {
	p := NewPlayer()
	rs := Room(p, "office")

	if rs == nil {
		t.Fatal("expected a room state")
	}
	if got := p.Rooms["office"]; got != rs {
		t.Error("expected the room state to be stored on the player")
	}
}

func TestRoom_ReturnsSameStateOnReentry(t *testing.T) {
	p := NewPlayer()
	rs := Room(p, "office")
	rs.Win = true

	if again := Room(p, "office"); !again.Win {
		t.Error("expected the same room state on reentry")
	}
}

func TestReset_SeedsDefaultItems(t *testing.T) {
	rs := testRoomState()

	for _, id := range DefaultItems {
		if !Contains(rs.FoundItems, id) {
			t.Errorf("expected default item %q to be found", id)
		}
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	rs := testRoomState()
	rs.CollectedItems = Add(rs.CollectedItems, "key")
	Record(rs, "box", "use", "toothpick")
	rs.Win = true
	rs.SecretFound = true

	Reset(rs)

	if len(rs.CollectedItems) != 0 {
		t.Errorf("expected empty inventory, got %v", rs.CollectedItems)
	}
	if len(rs.Records) != 0 {
		t.Errorf("expected empty history, got %v", rs.Records)
	}
	if rs.Win || rs.SecretFound {
		t.Error("expected flags cleared")
	}
}

func TestAdd_InsertsAtFront(t *testing.T) {
	list := Add([]string{"desk", "drawer"}, "photo")

	if list[0] != "photo" {
		t.Errorf("expected photo first, got %v", list)
	}
	if len(list) != 3 {
		t.Errorf("expected 3 entries, got %v", list)
	}
}

func TestAdd_ExistingMovesToFront(t *testing.T) {
	list := []string{"desk", "drawer", "photo"}
	list = Add(list, "drawer")

	if list[0] != "drawer" {
		t.Errorf("expected drawer first, got %v", list)
	}
	if len(list) != 3 {
		t.Errorf("expected no duplicate, got %v", list)
	}
}

func TestAddAll_LastEndsUpFirst(t *testing.T) {
	list := AddAll(nil, "box", "key")

	if list[0] != "key" || list[1] != "box" {
		t.Errorf("expected [key box], got %v", list)
	}
}

func TestRemove_DeletesPreservingOrder(t *testing.T) {
	list := Remove([]string{"desk", "drawer", "photo"}, "drawer")

	if len(list) != 2 || list[0] != "desk" || list[1] != "photo" {
		t.Errorf("expected [desk photo], got %v", list)
	}
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	list := Remove([]string{"desk"}, "photo")

	if len(list) != 1 || list[0] != "desk" {
		t.Errorf("expected [desk], got %v", list)
	}
}

func TestRecord_FirstApplicationWins(t *testing.T) {
	rs := testRoomState()
	Record(rs, "box", "use", "toothpick")
	Record(rs, "box", "use", "screwdriver")

	recs := rs.Records["box"]
	if len(recs) != 1 {
		t.Fatalf("expected one record per verb, got %v", recs)
	}
	if recs[0].Tool != "toothpick" {
		t.Errorf("expected the first record to win, got %v", recs[0])
	}
}

func TestRecord_DistinctVerbsAccumulate(t *testing.T) {
	rs := testRoomState()
	Record(rs, "drawer", "open", "")
	Record(rs, "drawer", "close", "")

	if len(rs.Records["drawer"]) != 2 {
		t.Errorf("expected two records, got %v", rs.Records["drawer"])
	}
}

func TestHasRecord_MatchesAnyVerbAlternative(t *testing.T) {
	rs := testRoomState()
	Record(rs, "rug", "move", "")

	if !HasRecord(rs, "rug", []string{"lift", "open", "move"}, "") {
		t.Error("expected the verb set to match the record")
	}
}

func TestHasRecord_ToolMustMatchExactly(t *testing.T) {
	rs := testRoomState()
	Record(rs, "box", "use", "toothpick")

	if HasRecord(rs, "box", []string{"use"}, "") {
		t.Error("expected a tool-less query to miss a tooled record")
	}
	if !HasRecord(rs, "box", []string{"use"}, "toothpick") {
		t.Error("expected the tooled query to hit")
	}
}

func TestHasRecord_UnknownTarget(t *testing.T) {
	rs := testRoomState()

	if HasRecord(rs, "safe", []string{"turns"}, "") {
		t.Error("expected no record for an untouched target")
	}
}

func TestDeleteRecord_RemovesOnlyThatVerb(t *testing.T) {
	rs := testRoomState()
	Record(rs, "drawer", "open", "")
	Record(rs, "drawer", "look", "")

	DeleteRecord(rs, "drawer", "open")

	if HasRecord(rs, "drawer", []string{"open"}, "") {
		t.Error("expected open record gone")
	}
	if !HasRecord(rs, "drawer", []string{"look"}, "") {
		t.Error("expected look record kept")
	}
}

func TestCollectDrop_NeverBothLists(t *testing.T) {
	rs := testRoomState()
	rs.FoundItems = Add(rs.FoundItems, "key")

	Collect(rs, "key")
	Drop(rs, "key")
	Collect(rs, "key")

	if Contains(rs.DroppedItems, "key") {
		t.Error("expected key off the dropped list after re-collecting")
	}
	if !Collected(rs, "key") {
		t.Error("expected key in the inventory")
	}
}

func TestFound_ToleratesCorruptedFoundList(t *testing.T) {
	rs := testRoomState()
	rs.CollectedItems = Add(rs.CollectedItems, "key")

	if !Found(rs, "key") {
		t.Error("expected a collected item to count as found")
	}
}

func TestClaimed(t *testing.T) {
	rs := testRoomState()
	rs.ClaimedRewards = append(rs.ClaimedRewards, 2)

	if !Claimed(rs, 2) {
		t.Error("expected index 2 claimed")
	}
	if Claimed(rs, 0) {
		t.Error("expected index 0 unclaimed")
	}
}

func TestUndiscoveredDirections(t *testing.T) {
	room := &types.Room{
		Directions: []types.Direction{{Name: "north"}, {Name: "east"}, {Name: "south"}},
	}
	rs := testRoomState()
	rs.FoundDirections = Add(rs.FoundDirections, "east")

	got := UndiscoveredDirections(room, rs)
	if len(got) != 2 || got[0] != "north" || got[1] != "south" {
		t.Errorf("expected [north south], got %v", got)
	}
}

func TestUnlookedItems_ExcludesDefaults(t *testing.T) {
	rs := testRoomState()
	rs.FoundItems = Add(rs.FoundItems, "desk")
	rs.FoundItems = Add(rs.FoundItems, "drawer")
	rs.LookedItems = Add(rs.LookedItems, "desk")

	got := UnlookedItems(rs)
	if len(got) != 1 || got[0] != "drawer" {
		t.Errorf("expected [drawer], got %v", got)
	}
}
