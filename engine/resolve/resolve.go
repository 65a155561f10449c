// Package resolve implements action resolution: selecting the one rule
// that applies to a (verb, tool) pair against a target's declared rules
// and the player's interaction history, then applying its side effects.
package resolve

import (
	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/types"
)

// Target kinds.
const (
	KindRoom      = "room"
	KindDirection = "direction"
	KindItem      = "item"
)

// Target is the entity a rule list is attached to: a room, a direction
// within a room, or an item within a room.
type Target struct {
	ID    string
	Kind  string
	Rules []types.ActionRule
}

// Picker chooses one text variant for a named prompt. The engine supplies
// the session-aware no-repeat selector from the prompts package.
type Picker func(name string, variants []string) string

// Resolve runs the selection funnel over the target's rules and, when a
// rule matches, applies its side effects to the room state. The bool
// reports whether any rule applied; when false the state is untouched and
// the outcome is empty.
//
// facing is the player's current compass direction, used to annotate
// newly revealed items with where they were found.
func Resolve(t Target, verb, tool, facing string, rs *types.RoomState, pick Picker) (types.Outcome, bool) {
	rule := Select(t.Rules, verb, tool, t.ID, rs)
	if rule == nil {
		return types.Outcome{}, false
	}
	return apply(t, rule, verb, tool, facing, rs, pick), true
}

// Select runs the narrowing funnel and returns the winning rule, or nil.
//
// Stage 1 keeps rules whose declared tool equals the supplied one (both
// may be empty). Stage 2 keeps rules whose verb set contains the verb, or
// which declare no verbs. Stage 3 keeps predicate-bearing rules whose
// predicates are all satisfied by the target's history; if none survive,
// the rules that declare no predicates at all are reconsidered. The first
// survivor in declaration order wins.
func Select(rules []types.ActionRule, verb, tool, targetID string, rs *types.RoomState) *types.ActionRule {
	var byTool []*types.ActionRule
	for i := range rules {
		if rules[i].Tool == tool {
			byTool = append(byTool, &rules[i])
		}
	}

	var byVerb []*types.ActionRule
	for _, r := range byTool {
		if len(r.Verbs) == 0 || state.Contains(r.Verbs, verb) {
			byVerb = append(byVerb, r)
		}
	}

	var byState []*types.ActionRule
	for _, r := range byVerb {
		if len(r.Predicates) > 0 && predicatesMet(r, targetID, rs) {
			byState = append(byState, r)
		}
	}
	if len(byState) == 0 {
		for _, r := range byVerb {
			if len(r.Predicates) == 0 {
				byState = append(byState, r)
			}
		}
	}
	if len(byState) == 0 {
		return nil
	}
	return byState[0]
}

// predicatesMet reports whether every predicate of the rule is satisfied.
// A predicate consults the history of its named item, defaulting to the
// rule's own target.
func predicatesMet(r *types.ActionRule, targetID string, rs *types.RoomState) bool {
	for _, p := range r.Predicates {
		item := p.Item
		if item == "" {
			item = targetID
		}
		if !state.HasRecord(rs, item, p.Verbs, p.Tool) {
			return false
		}
	}
	return true
}

func apply(t Target, rule *types.ActionRule, verb, tool, facing string, rs *types.RoomState, pick Picker) types.Outcome {
	out := types.Outcome{
		Text:       pick("action:"+t.ID+":"+verb, rule.Variants),
		Questioned: rule.Question,
		Context:    rule.Context,
	}

	for _, id := range rule.Reveal {
		if facing != "" && !state.Collected(rs, id) {
			rs.FoundItemDirections[id] = facing
		}
	}
	rs.FoundItems = state.AddAll(rs.FoundItems, rule.Reveal...)
	out.Revealed = append(out.Revealed, rule.Reveal...)

	for _, id := range rule.Collect {
		rs.FoundItems = state.Add(rs.FoundItems, id)
		state.Collect(rs, id)
		out.InventoryChanged = true
	}
	for _, id := range rule.Remove {
		if state.Collected(rs, id) {
			rs.CollectedItems = state.Remove(rs.CollectedItems, id)
			out.InventoryChanged = true
		}
	}

	if rule.Secret {
		if rs.SecretFound {
			// One hidden bonus per room; a second grant degrades to a
			// generic refusal.
			out.Text = pick("not_supported", nil)
			out.Failed = true
		} else {
			rs.SecretFound = true
			out.Secret = true
		}
	}

	// Win and lose latch on the first rule ever to set them.
	if !rs.Done {
		if rule.Win != nil && *rule.Win {
			rs.Win = true
			rs.Done = true
			out.Win = true
		} else if rule.Lose != nil && *rule.Lose {
			rs.Lose = true
			rs.Done = true
			out.Lose = true
		}
	}

	save := verb != "look"
	if rule.Save != nil {
		save = *rule.Save
	}
	if save {
		state.Record(rs, t.ID, verb, tool)
		out.Saved = true
	}

	return out
}
