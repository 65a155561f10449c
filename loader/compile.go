package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/escapecore/types"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getOptBool returns a bool field as a pointer, or nil if missing.
func getOptBool(tbl *lua.LTable, key string) *bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		val := bool(b)
		return &val
	}
	return nil
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings returns an array field as a string slice, or nil if missing.
func getStrings(tbl *lua.LTable, key string) []string {
	return tableToStrings(getTable(tbl, key))
}

// tableToStrings converts a Lua array table to a string slice.
func tableToStrings(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into a Pack.
func compile(coll *collector) (*Pack, error) {
	pack := &Pack{
		Rooms:   map[string]*types.Room{},
		Prompts: coll.prompts,
	}
	for _, raw := range coll.rooms {
		if _, dup := pack.Rooms[raw.id]; dup {
			return nil, fmt.Errorf("room %q defined twice", raw.id)
		}
		room, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room %s: %w", raw.id, err)
		}
		pack.Rooms[raw.id] = room
	}
	if len(pack.Rooms) == 0 {
		return nil, fmt.Errorf("no Room definitions found")
	}
	return pack, nil
}

func compileRoom(raw rawRoom) (*types.Room, error) {
	tbl := raw.table
	room := &types.Room{
		ID:             raw.id,
		Intro:          getString(tbl, "intro"),
		IntroDirection: getString(tbl, "facing"),
		Items:          map[string]*types.Item{},
		Hints:          getStrings(tbl, "hints"),
		Turns:          getStrings(tbl, "turns"),
		Code:           getString(tbl, "code"),
	}

	if dirs := getTable(tbl, "directions"); dirs != nil {
		for i := 1; i <= dirs.MaxN(); i++ {
			dt, ok := dirs.RawGetInt(i).(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("directions[%d] is not a Direction", i)
			}
			d, err := compileDirection(dt)
			if err != nil {
				return nil, err
			}
			room.Directions = append(room.Directions, d)
		}
	}

	if items := getTable(tbl, "items"); items != nil {
		for i := 1; i <= items.MaxN(); i++ {
			it, ok := items.RawGetInt(i).(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("items[%d] is not an Item", i)
			}
			item, err := compileItem(it)
			if err != nil {
				return nil, err
			}
			if _, dup := room.Items[item.ID]; dup {
				return nil, fmt.Errorf("item %q defined twice", item.ID)
			}
			room.Items[item.ID] = item
			room.ItemOrder = append(room.ItemOrder, item.ID)
		}
	}

	if rewards := getTable(tbl, "rewards"); rewards != nil {
		for i := 1; i <= rewards.MaxN(); i++ {
			rt, ok := rewards.RawGetInt(i).(*lua.LTable)
			if !ok {
				return nil, fmt.Errorf("rewards[%d] is not a reward", i)
			}
			r, err := compileReward(rt)
			if err != nil {
				return nil, err
			}
			room.Rewards = append(room.Rewards, r)
		}
	}

	return room, nil
}

func compileDirection(tbl *lua.LTable) (types.Direction, error) {
	name := getString(tbl, "__direction")
	if name == "" {
		return types.Direction{}, fmt.Errorf("direction entry was not built with Direction %q", name)
	}
	rules, err := compileActions(tbl)
	if err != nil {
		return types.Direction{}, fmt.Errorf("direction %s: %w", name, err)
	}
	return types.Direction{
		Name:     name,
		Rules:    rules,
		Variants: getStrings(tbl, "variants"),
	}, nil
}

func compileItem(tbl *lua.LTable) (*types.Item, error) {
	id := getString(tbl, "__item")
	if id == "" {
		return nil, fmt.Errorf("item entry was not built with Item")
	}
	rules, err := compileActions(tbl)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", id, err)
	}
	return &types.Item{
		ID:       id,
		Static:   getBool(tbl, "static", false),
		Rules:    rules,
		Variants: getStrings(tbl, "variants"),
		Hints:    getStrings(tbl, "hints"),
	}, nil
}

func compileActions(tbl *lua.LTable) ([]types.ActionRule, error) {
	actions := getTable(tbl, "actions")
	if actions == nil {
		return nil, nil
	}
	var rules []types.ActionRule
	for i := 1; i <= actions.MaxN(); i++ {
		at, ok := actions.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("actions[%d] is not an Action", i)
		}
		rule, err := compileAction(at)
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func compileAction(tbl *lua.LTable) (types.ActionRule, error) {
	rule := types.ActionRule{
		Verbs:    getStrings(tbl, "verbs"),
		Tool:     getString(tbl, "tool"),
		Variants: getStrings(tbl, "variants"),
		Reveal:   getStrings(tbl, "reveal"),
		Collect:  getStrings(tbl, "collect"),
		Remove:   getStrings(tbl, "remove"),
		Question: getBool(tbl, "question", false),
		Context:  getString(tbl, "context"),
		Secret:   getBool(tbl, "secret", false),
		Win:      getOptBool(tbl, "win"),
		Lose:     getOptBool(tbl, "lose"),
		Save:     getOptBool(tbl, "save"),
	}

	if when := getTable(tbl, "when"); when != nil {
		for i := 1; i <= when.MaxN(); i++ {
			pt, ok := when.RawGetInt(i).(*lua.LTable)
			if !ok {
				return rule, fmt.Errorf("when[%d] is not a When predicate", i)
			}
			rule.Predicates = append(rule.Predicates, types.Predicate{
				Item:  getString(pt, "item"),
				Verbs: getStrings(pt, "verbs"),
				Tool:  getString(pt, "tool"),
			})
		}
	}
	return rule, nil
}

func compileReward(tbl *lua.LTable) (types.Reward, error) {
	kind := getString(tbl, "__reward")
	if kind == "" {
		return types.Reward{}, fmt.Errorf("reward entry was not built with LookReward or DirectionReward")
	}
	r := types.Reward{
		Kind:   kind,
		Values: getStrings(tbl, "values"),
		Hint:   getString(tbl, "hint"),
	}
	if len(r.Values) == 0 {
		return r, fmt.Errorf("reward has no trigger values")
	}
	return r, nil
}
