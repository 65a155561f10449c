package save

import (
	"path/filepath"
	"testing"

	"github.com/nathoo/escapecore/engine/state"
)

func TestRoundTrip(t *testing.T) {
	p := state.NewPlayer()
	rs := state.Room(p, "office")
	rs.FoundItems = state.Add(rs.FoundItems, "desk")
	state.Collect(rs, "toothpick")
	state.Record(rs, "box", "use", "toothpick")
	rs.ClaimedRewards = append(rs.ClaimedRewards, 0, 2)
	rs.Hints = append(rs.Hints, "check the drawer")
	rs.SecretFound = true
	p.TotalTurns = 42

	data, err := Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	if got.ID != p.ID {
		t.Errorf("ID = %q, want %q", got.ID, p.ID)
	}
	if got.TotalTurns != 42 {
		t.Errorf("TotalTurns = %d", got.TotalTurns)
	}
	grs := got.Rooms["office"]
	if grs == nil {
		t.Fatal("missing office room state")
	}
	if !state.Found(grs, "desk") || !state.Collected(grs, "toothpick") {
		t.Error("item lists lost in round trip")
	}
	if !state.HasRecord(grs, "box", []string{"use"}, "toothpick") {
		t.Error("records lost in round trip")
	}
	if len(grs.ClaimedRewards) != 2 || !grs.SecretFound {
		t.Error("reward state lost in round trip")
	}
	if len(grs.Hints) != 1 || grs.Hints[0] != "check the drawer" {
		t.Errorf("hints lost in round trip: %v", grs.Hints)
	}
}

func TestUnmarshal_RepairsNilMaps(t *testing.T) {
	blob := `{"version":"1","player":{"id":"abc","rooms":{"office":{}}}}`

	p, err := Unmarshal([]byte(blob))
	if err != nil {
		t.Fatal(err)
	}

	rs := p.Rooms["office"]
	if rs.Records == nil || rs.FoundItemDirections == nil {
		t.Error("expected nil maps repaired")
	}
	if rs.CollectedItems == nil || rs.Hints == nil {
		t.Error("expected nil lists repaired")
	}
	if len(rs.FoundItems) != len(state.DefaultItems) {
		t.Errorf("expected default items seeded, got %v", rs.FoundItems)
	}
	if p.Tips == nil {
		t.Error("expected tips map repaired")
	}
}

func TestUnmarshal_RejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("not json")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestUnmarshal_RejectsMissingPlayer(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"version":"1"}`)); err == nil {
		t.Error("expected an error for an empty blob")
	}
}

func TestLoadFile_MissingFileYieldsFreshPlayer(t *testing.T) {
	p, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("expected a fresh player with an ID")
	}
}

func TestWriteThenLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	p := state.NewPlayer()
	rs := state.Room(p, "office")
	rs.Win = true

	if err := WriteFile(path, p); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != p.ID {
		t.Errorf("ID = %q, want %q", got.ID, p.ID)
	}
	if !got.Rooms["office"].Win {
		t.Error("expected the win flag persisted")
	}
}
