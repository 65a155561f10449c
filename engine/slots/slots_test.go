package slots

import (
	"strings"
	"testing"

	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/types"
)

func testSession() *types.Session {
	return &types.Session{PromptHistory: map[string]string{}}
}

func itemRequest() Request {
	return Request{
		Kind:     "item",
		Found:    []string{"toothpick", "drawer", "photo", "wall"},
		Defaults: []string{"wall", "ceiling", "floor"},
	}
}

func TestAdvance_FirstAttemptAsksPlainly(t *testing.T) {
	sess := testSession()
	res := Advance(sess, itemRequest(), prompts.New(1))

	if res.Stage != types.SlotFirst {
		t.Errorf("expected stage 1, got %d", res.Stage)
	}
	if res.Close {
		t.Error("expected the interaction to stay open")
	}
	if res.Prompt == "" {
		t.Error("expected a prompt")
	}
}

func TestAdvance_SecondAttemptOffersTwoFoundCandidates(t *testing.T) {
	sess := testSession()
	bank := prompts.New(1)
	Advance(sess, itemRequest(), bank)
	res := Advance(sess, itemRequest(), bank)

	if res.Stage != types.SlotSecond {
		t.Errorf("expected stage 2, got %d", res.Stage)
	}
	if !strings.Contains(res.Prompt, "a toothpick") || !strings.Contains(res.Prompt, "a drawer") {
		t.Errorf("expected the first two non-default candidates, got %q", res.Prompt)
	}
	if strings.Contains(res.Prompt, "photo") {
		t.Errorf("expected at most two candidates, got %q", res.Prompt)
	}
	if strings.Contains(res.Prompt, "a wall") {
		t.Errorf("expected defaults excluded, got %q", res.Prompt)
	}
}

func TestAdvance_SecondAttemptFallsBackToDefaults(t *testing.T) {
	sess := testSession()
	bank := prompts.New(1)
	req := Request{Kind: "item", Defaults: []string{"wall", "floor"}}
	Advance(sess, req, bank)
	res := Advance(sess, req, bank)

	if !strings.Contains(res.Prompt, "wall") || !strings.Contains(res.Prompt, "floor") {
		t.Errorf("expected the defaults offered, got %q", res.Prompt)
	}
}

func TestAdvance_ThirdAttemptOffersOnlyDefaults(t *testing.T) {
	sess := testSession()
	bank := prompts.New(1)
	for i := 0; i < 2; i++ {
		Advance(sess, itemRequest(), bank)
	}
	res := Advance(sess, itemRequest(), bank)

	if res.Stage != types.SlotThird {
		t.Errorf("expected stage 3, got %d", res.Stage)
	}
	if !strings.Contains(res.Prompt, "wall") {
		t.Errorf("expected defaults, got %q", res.Prompt)
	}
	if strings.Contains(res.Prompt, "toothpick") {
		t.Errorf("expected found candidates dropped, got %q", res.Prompt)
	}
}

func TestAdvance_FourthAttemptAbandons(t *testing.T) {
	sess := testSession()
	bank := prompts.New(1)
	for i := 0; i < 3; i++ {
		if res := Advance(sess, itemRequest(), bank); res.Close {
			t.Fatalf("closed too early at attempt %d", i+1)
		}
	}
	res := Advance(sess, itemRequest(), bank)

	if !res.Close {
		t.Error("expected the fourth attempt to abandon")
	}
	if res.Stage != types.SlotAbandoned {
		t.Errorf("expected abandoned stage, got %d", res.Stage)
	}
}

func TestAdvance_NewKindResetsEscalation(t *testing.T) {
	sess := testSession()
	bank := prompts.New(1)
	Advance(sess, itemRequest(), bank)
	Advance(sess, itemRequest(), bank)

	res := Advance(sess, Request{Kind: "direction", Defaults: []string{"north"}}, bank)
	if res.Stage != types.SlotFirst {
		t.Errorf("expected a fresh escalation for a new slot kind, got stage %d", res.Stage)
	}
}

func TestBegin_ResetsStage(t *testing.T) {
	sess := testSession()
	bank := prompts.New(1)
	Advance(sess, itemRequest(), bank)
	Advance(sess, itemRequest(), bank)

	Begin(sess, "item")
	res := Advance(sess, itemRequest(), bank)
	if res.Stage != types.SlotFirst {
		t.Errorf("expected stage 1 after reset, got %d", res.Stage)
	}
}
