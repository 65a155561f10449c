package engine

import (
	"fmt"

	"github.com/nathoo/escapecore/engine/resolve"
	"github.com/nathoo/escapecore/engine/rewards"
	"github.com/nathoo/escapecore/engine/slots"
	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/types"
)

// look resolves an inspection. With no item it describes the direction
// the player is facing; with one it runs the item's look rules, tracks
// the inspection, and checks for a reward.
func (e *Engine) look(p *types.PlayerState, sess *types.Session, room *types.Room, rs *types.RoomState, cmd types.Command) (types.Reply, error) {
	if cmd.Item == "" {
		if d := findDirection(room, sess.Direction); d != nil {
			return e.face(p, sess, room, rs, sess.Direction)
		}
		return types.Reply{Text: room.Intro}, nil
	}

	item, it, reply, err := e.lookupItem(sess, room, rs, cmd.Item)
	if reply != nil || err != nil {
		return deref(reply), err
	}
	slots.Begin(sess, "item")
	sess.Item = item
	adjustFacing(sess, rs, item)

	var rules []types.ActionRule
	if it != nil {
		rules = it.Rules
	}
	out, ok := resolve.Resolve(resolve.Target{ID: item, Kind: resolve.KindItem, Rules: rules},
		"look", cmd.Tool, sess.Direction, rs, e.picker(sess))
	if !ok {
		return e.failure(sess), nil
	}

	rs.LookedItems = state.Add(rs.LookedItems, item)
	res := e.finish(p, sess, out)
	if !out.Failed {
		if framing, granted := rewards.Check(room, rewards.Event{Item: item}, rs, p, e.bank, sess.PromptHistory); granted {
			res.Text = framing + " " + res.Text
		}
	}
	return res, nil
}

// face turns the player toward a declared direction, resolves the
// direction's rules, and checks for a direction reward.
func (e *Engine) face(p *types.PlayerState, sess *types.Session, room *types.Room, rs *types.RoomState, dir string) (types.Reply, error) {
	d := findDirection(room, dir)
	if d == nil {
		if !IsCompass(dir) {
			e.log.Warn("unknown direction", "room", room.ID, "direction", dir)
		}
		return types.Reply{
			Text:    e.say(sess, "not_found_direction"),
			Outcome: types.Outcome{Failed: true},
		}, nil
	}

	if IsCompass(dir) {
		sess.Direction = dir
	}
	sess.Item = ""
	rs.FoundDirections = state.Add(rs.FoundDirections, dir)

	var res types.Reply
	out, ok := resolve.Resolve(resolve.Target{ID: dir, Kind: resolve.KindDirection, Rules: d.Rules},
		"look", "", dir, rs, e.picker(sess))
	if ok {
		res = e.finish(p, sess, out)
	} else if len(d.Variants) > 0 {
		res = types.Reply{Text: e.bank.PickFrom(sess.PromptHistory, "direction:"+dir, d.Variants)}
	} else {
		res = types.Reply{Text: e.sayf(sess, "orientation", dir)}
	}

	if !res.Outcome.Failed {
		if framing, granted := rewards.Check(room, rewards.Event{Direction: dir}, rs, p, e.bank, sess.PromptHistory); granted {
			res.Text = framing + " " + res.Text
		}
	}
	return res, nil
}

// act is the general action path: rule resolution for any verb against
// an item, with slot filling when the item is missing and the swapped
// item/tool recovery for use commands.
func (e *Engine) act(p *types.PlayerState, sess *types.Session, room *types.Room, rs *types.RoomState, verb string, cmd types.Command) (types.Reply, error) {
	item, tool := cmd.Item, cmd.Tool

	// A bare "use the toothpick" applies the tool to the item in focus.
	if item == "" && tool != "" && sess.Item != "" {
		item = sess.Item
	}
	// Free-text guessing: words from rule descriptions often identify
	// the item the player is talking about.
	if item == "" && cmd.Raw != "" {
		if guess := e.dicts[room.ID].Item(cmd.Raw); guess != "" && state.Found(rs, guess) {
			item = guess
		}
	}
	if item == "" {
		// Repeating the exact same input never resolves differently.
		if repeated(sess.LastRaws) {
			return types.Reply{Text: e.say(sess, "question_repeat")}, nil
		}
		return e.missingItem(sess, rs), nil
	}

	// Speech front-ends regularly transpose the item and the tool.
	if verb == "use" && tool != "" && !state.Collected(rs, tool) {
		if state.Collected(rs, item) && state.Found(rs, tool) {
			item, tool = tool, item
		} else if state.Found(rs, tool) {
			return types.Reply{
				Text:    e.sayf(sess, "item_not_inventory", tool),
				Outcome: types.Outcome{Failed: true},
			}, nil
		} else {
			return types.Reply{
				Text:    e.say(sess, "need_tool"),
				Outcome: types.Outcome{Failed: true},
			}, nil
		}
	}

	item, it, reply, err := e.lookupItem(sess, room, rs, item)
	if reply != nil || err != nil {
		return deref(reply), err
	}
	slots.Begin(sess, "item")
	sess.Item = item
	adjustFacing(sess, rs, item)

	var rules []types.ActionRule
	if it != nil {
		rules = it.Rules
	}
	out, ok := resolve.Resolve(resolve.Target{ID: item, Kind: resolve.KindItem, Rules: rules},
		verb, tool, sess.Direction, rs, e.picker(sess))
	if !ok {
		return e.failure(sess), nil
	}
	return e.finish(p, sess, out), nil
}

// take moves a found item into the inventory. A declared take rule wins
// over the default behavior, which refuses static items.
func (e *Engine) take(sess *types.Session, room *types.Room, rs *types.RoomState, cmd types.Command) (types.Reply, error) {
	if cmd.Item == "" {
		return e.missingItem(sess, rs), nil
	}
	item, it, reply, err := e.lookupItem(sess, room, rs, cmd.Item)
	if reply != nil || err != nil {
		return deref(reply), err
	}
	slots.Begin(sess, "item")

	if it != nil {
		if out, ok := resolve.Resolve(resolve.Target{ID: item, Kind: resolve.KindItem, Rules: it.Rules},
			"take", cmd.Tool, sess.Direction, rs, e.picker(sess)); ok {
			return types.Reply{Text: out.Text, Outcome: out}, nil
		}
	}
	if state.Collected(rs, item) {
		return types.Reply{Text: e.sayf(sess, "inventory_duplicate", item)}, nil
	}
	if it != nil && it.Static {
		return types.Reply{
			Text:    e.sayf(sess, "cannot_take", item),
			Outcome: types.Outcome{Failed: true},
		}, nil
	}
	state.Collect(rs, item)
	return types.Reply{
		Text:    e.sayf(sess, "inventory_added", item),
		Outcome: types.Outcome{InventoryChanged: true},
	}, nil
}

// drop moves an item out of the inventory. Dropped items stay found and
// can be taken again.
func (e *Engine) drop(sess *types.Session, rs *types.RoomState, cmd types.Command) (types.Reply, error) {
	if cmd.Item == "" {
		return e.missingItem(sess, rs), nil
	}
	item := cmd.Item
	if !state.Collected(rs, item) {
		return types.Reply{
			Text:    e.sayf(sess, "cannot_drop", item),
			Outcome: types.Outcome{Failed: true},
		}, nil
	}
	state.Drop(rs, item)
	return types.Reply{
		Text:    e.sayf(sess, "inventory_removed", item),
		Outcome: types.Outcome{InventoryChanged: true},
	}, nil
}

// inventory lists the collected items, newest first.
func (e *Engine) inventory(p *types.PlayerState, sess *types.Session, rs *types.RoomState) types.Reply {
	if len(rs.CollectedItems) == 0 {
		text := e.say(sess, "inventory_empty")
		if !p.Tips["inventory"] {
			p.Tips["inventory"] = true
			text += " " + e.say(sess, "hint_inventory")
		}
		return types.Reply{Text: text}
	}
	return types.Reply{Text: e.sayf(sess, "inventory_contents", prompts.OxfordList(rs.CollectedItems, "and"))}
}

// missingItem advances the slot-filling machine for the item slot.
func (e *Engine) missingItem(sess *types.Session, rs *types.RoomState) types.Reply {
	req := slots.Request{Kind: "item", Found: nonDefaults(rs.FoundItems), Defaults: state.DefaultItems}
	res := slots.Advance(sess, req, e.bank)
	return types.Reply{Text: res.Prompt, Close: res.Close, Suggestion: req.Found}
}

// lookupItem validates an item reference against content and discovery
// state. It returns a ready reply for the not-found case and an error
// for ids absent from the content entirely.
func (e *Engine) lookupItem(sess *types.Session, room *types.Room, rs *types.RoomState, item string) (string, *types.Item, *types.Reply, error) {
	it, inContent := room.Items[item]
	if !inContent && !state.Contains(state.DefaultItems, item) {
		e.log.Error("command references item outside content", "room", room.ID, "item", item)
		r := e.failure(sess)
		return item, nil, &r, fmt.Errorf("%w: item %q in room %q", ErrUnknownTarget, item, room.ID)
	}
	if !state.Found(rs, item) {
		r := types.Reply{
			Text:    e.say(sess, "not_found_item") + " " + e.say(sess, "look_around"),
			Outcome: types.Outcome{Failed: true},
		}
		return item, nil, &r, nil
	}
	return item, it, nil, nil
}

// finish applies the cross-cutting outcome bookkeeping: arming contexts,
// lifetime counters, and win/lose framing.
func (e *Engine) finish(p *types.PlayerState, sess *types.Session, out types.Outcome) types.Reply {
	if out.Context != "" {
		sess.Context = contextFor(out.Context)
	}
	text := out.Text
	if out.Secret {
		p.SecretsFound++
	}
	if out.Win {
		p.RoomsWon++
		text += " " + e.say(sess, "win")
	}
	if out.Lose {
		text += " " + e.say(sess, "lose")
	}
	if out.Failed {
		text += " " + e.say(sess, "encouragement")
	}
	if out.InventoryChanged && !p.Tips["tip_inventory"] {
		p.Tips["tip_inventory"] = true
		text += " " + e.say(sess, "tip_inventory")
	}
	return types.Reply{Text: text, Suggestion: out.Revealed, Outcome: out}
}

// adjustFacing re-points the player toward where an uncollected item was
// originally found, so later reveals are annotated consistently.
func adjustFacing(sess *types.Session, rs *types.RoomState, item string) {
	if state.Collected(rs, item) {
		return
	}
	if d, ok := rs.FoundItemDirections[item]; ok && d != "" {
		sess.Direction = d
	}
}

func findDirection(room *types.Room, name string) *types.Direction {
	for i := range room.Directions {
		if room.Directions[i].Name == name {
			return &room.Directions[i]
		}
	}
	return nil
}

func nonDefaults(found []string) []string {
	var out []string
	for _, id := range found {
		if !state.Contains(state.DefaultItems, id) {
			out = append(out, id)
		}
	}
	return out
}

func deref(r *types.Reply) types.Reply {
	if r == nil {
		return types.Reply{}
	}
	return *r
}
