// Package slots implements the missing-parameter retry machine: when a
// command arrives without a required value, it produces up to three
// escalating prompts before abandoning the interaction.
package slots

import (
	"fmt"

	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/types"
)

// Request describes one outstanding slot: what kind of value is missing
// and which candidates could fill it. Found are the player's discovered
// candidates; Defaults are the always-available fallbacks.
type Request struct {
	Kind     string // e.g. "item", "direction"
	Found    []string
	Defaults []string
}

// Result is one machine step: the prompt to speak, whether the
// interaction should be closed, and the advanced stage.
type Result struct {
	Prompt string
	Close  bool
	Stage  types.SlotStage
}

// Begin resets the machine for a new outstanding slot. Called whenever a
// value was supplied or the requested slot kind changes.
func Begin(sess *types.Session, kind string) {
	sess.SlotStage = types.SlotIdle
	sess.SlotKind = kind
}

// Advance moves the machine one escalation forward and returns the
// prompt for it. The first attempt asks plainly; the second offers up to
// two non-default found candidates (else the defaults); the third offers
// only the defaults; a fourth attempt abandons the interaction.
func Advance(sess *types.Session, req Request, bank *prompts.Bank) Result {
	if sess.SlotKind != req.Kind {
		Begin(sess, req.Kind)
	}
	sess.SlotStage++

	hist := sess.PromptHistory
	base := bank.Pick(hist, "which_"+req.Kind)

	switch sess.SlotStage {
	case types.SlotFirst:
		return Result{Prompt: base, Stage: sess.SlotStage}

	case types.SlotSecond:
		if opts := candidates(req); len(opts) > 0 {
			offer := fmt.Sprintf(bank.Pick(hist, "which_item_options"), prompts.OxfordList(opts, "or"))
			return Result{
				Prompt: bank.Pick(hist, "slot_sorry") + " " + offer,
				Stage:  sess.SlotStage,
			}
		}
		if len(req.Defaults) > 0 {
			offer := fmt.Sprintf(bank.Pick(hist, "which_item_defaults"), prompts.OxfordList(req.Defaults, "or"))
			return Result{
				Prompt: bank.Pick(hist, "slot_sorry") + " " + offer,
				Stage:  sess.SlotStage,
			}
		}
		return Result{
			Prompt: bank.Pick(hist, "slot_sorry") + " " + bank.Pick(hist, "look_around"),
			Stage:  sess.SlotStage,
		}

	case types.SlotThird:
		if len(req.Defaults) > 0 {
			offer := fmt.Sprintf(bank.Pick(hist, "which_item_defaults"), prompts.OxfordList(req.Defaults, "or"))
			return Result{Prompt: offer + " " + base, Stage: sess.SlotStage}
		}
		return Result{
			Prompt: bank.Pick(hist, "slot_sorry") + " " + base,
			Stage:  sess.SlotStage,
		}
	}

	sess.SlotStage = types.SlotAbandoned
	return Result{
		Prompt: bank.Pick(hist, "slot_goodbye"),
		Close:  true,
		Stage:  sess.SlotStage,
	}
}

// candidates returns up to two found values outside the default set,
// each with its indefinite article.
func candidates(req Request) []string {
	var out []string
	for _, item := range req.Found {
		if state.Contains(req.Defaults, item) {
			continue
		}
		out = append(out, prompts.Article(item)+" "+item)
		if len(out) == 2 {
			break
		}
	}
	return out
}
