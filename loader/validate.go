package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/types"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validContexts = map[string]bool{
	"turns":      true,
	"code":       true,
	"colors":     true,
	"directions": true,
}

var validTurns = map[string]bool{
	"left":  true,
	"right": true,
}

// validate checks the compiled pack for referential integrity and
// consistency. Errors fail the load; soft findings land in Pack.Warnings.
func validate(pack *Pack) error {
	ve := &ValidationError{}

	for _, room := range pack.Rooms {
		validateRoom(room, pack, ve)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateRoom(room *types.Room, pack *Pack, ve *ValidationError) {
	errf := func(format string, args ...any) {
		ve.Errors = append(ve.Errors, fmt.Sprintf("room %q: ", room.ID)+fmt.Sprintf(format, args...))
	}
	warnf := func(format string, args ...any) {
		pack.Warnings = append(pack.Warnings, fmt.Sprintf("room %q: ", room.ID)+fmt.Sprintf(format, args...))
	}

	if room.Intro == "" {
		errf("intro is required")
	}
	if room.IntroDirection != "" && findDirection(room, room.IntroDirection) == nil {
		errf("facing %q is not a declared direction", room.IntroDirection)
	}

	for i, turn := range room.Turns {
		if !validTurns[turn] {
			errf("turns[%d] is %q, want left or right", i+1, turn)
		}
	}
	for _, r := range room.Code {
		if r < '0' || r > '9' {
			errf("code %q must be digits only", room.Code)
			break
		}
	}

	dirNames := map[string]bool{}
	for _, d := range room.Directions {
		if dirNames[d.Name] {
			errf("direction %q declared twice", d.Name)
		}
		dirNames[d.Name] = true
		validateRules("direction "+d.Name, d.Rules, room, errf, warnf)
	}

	for _, id := range room.ItemOrder {
		validateRules("item "+id, room.Items[id].Rules, room, errf, warnf)
	}

	for i, reward := range room.Rewards {
		switch reward.Kind {
		case types.TriggerLookItem:
			for _, v := range reward.Values {
				if !itemDeclared(room, v) {
					errf("rewards[%d] references undeclared item %q", i+1, v)
				}
			}
		case types.TriggerDirection:
			for _, v := range reward.Values {
				if !dirNames[v] {
					errf("rewards[%d] references undeclared direction %q", i+1, v)
				}
			}
		default:
			errf("rewards[%d] has unknown kind %q", i+1, reward.Kind)
		}
		if reward.Hint == "" {
			errf("rewards[%d] has no hint text", i+1)
		}
	}
}

func validateRules(where string, rules []types.ActionRule, room *types.Room, errf, warnf func(string, ...any)) {
	for i, rule := range rules {
		at := fmt.Sprintf("%s actions[%d]", where, i+1)

		if len(rule.Variants) == 0 && !rule.Question && !affectsState(rule) {
			errf("%s has no variants and no effect", at)
		}
		for _, id := range rule.Reveal {
			if !itemDeclared(room, id) {
				errf("%s reveals undeclared item %q", at, id)
			}
		}
		for _, id := range append(append([]string(nil), rule.Collect...), rule.Remove...) {
			if !itemDeclared(room, id) {
				errf("%s moves undeclared item %q", at, id)
			}
		}
		if rule.Context != "" && !validContexts[rule.Context] {
			errf("%s arms unknown context %q", at, rule.Context)
		}
		if rule.Context == "turns" && len(room.Turns) == 0 {
			errf("%s arms the turns context but the room declares no turns", at)
		}
		if rule.Context == "code" && room.Code == "" {
			errf("%s arms the code context but the room declares no code", at)
		}

		for _, pred := range rule.Predicates {
			if pred.Item != "" && !itemDeclared(room, pred.Item) {
				errf("%s predicate references undeclared item %q", at, pred.Item)
			}
			if !predicateSatisfiable(room, where, rule, pred) {
				warnf("%s predicate on verbs %v can never be satisfied", at, pred.Verbs)
			}
		}

		// A predicate-free rule shadows every later predicate-free rule
		// with the same tool and an overlapping verb set.
		if len(rule.Predicates) == 0 {
			for j := i + 1; j < len(rules); j++ {
				later := rules[j]
				if len(later.Predicates) > 0 || later.Tool != rule.Tool {
					continue
				}
				if verbsOverlap(rule.Verbs, later.Verbs) {
					warnf("%s actions[%d] is unreachable: shadowed by actions[%d]", where, j+1, i+1)
				}
			}
		}
	}
}

func affectsState(rule types.ActionRule) bool {
	return len(rule.Reveal) > 0 || len(rule.Collect) > 0 || len(rule.Remove) > 0 ||
		rule.Secret || rule.Context != "" || rule.Win != nil || rule.Lose != nil
}

// predicateSatisfiable reports whether any rule on the predicate's item
// could ever record the history the predicate demands.
func predicateSatisfiable(room *types.Room, where string, owner types.ActionRule, pred types.Predicate) bool {
	if len(pred.Verbs) == 0 {
		return true
	}
	target := pred.Item
	if target == "" {
		// Predicates default to the rule's own target; for direction
		// rules no item history exists to check against.
		if !strings.HasPrefix(where, "item ") {
			return true
		}
		target = strings.TrimPrefix(where, "item ")
	}
	item, ok := room.Items[target]
	if !ok {
		return state.Contains(state.DefaultItems, target)
	}
	for _, verb := range pred.Verbs {
		// Puzzle completions record their own pseudo-verbs.
		if verb == "turns" && len(room.Turns) > 0 {
			return true
		}
		if verb == "code" && room.Code != "" {
			return true
		}
		for _, rule := range item.Rules {
			if rule.Tool != pred.Tool {
				continue
			}
			if len(rule.Verbs) > 0 && !state.Contains(rule.Verbs, verb) {
				continue
			}
			if rule.Save != nil {
				if *rule.Save {
					return true
				}
				continue
			}
			if verb != "look" {
				return true
			}
		}
	}
	return false
}

func itemDeclared(room *types.Room, id string) bool {
	if _, ok := room.Items[id]; ok {
		return true
	}
	return state.Contains(state.DefaultItems, id)
}

func findDirection(room *types.Room, name string) *types.Direction {
	for i := range room.Directions {
		if room.Directions[i].Name == name {
			return &room.Directions[i]
		}
	}
	return nil
}

func verbsOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, v := range a {
		if state.Contains(b, v) {
			return true
		}
	}
	return false
}
