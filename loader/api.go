package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua content constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Room "id" { ... } — curried: Room("id") returns a function that
	// takes the definition table.
	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	// Direction "name" { ... } — curried, returns the annotated table so
	// it can sit inline in a room's directions list.
	L.SetGlobal("Direction", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			tbl.RawSetString("__direction", lua.LString(name))
			L.Push(tbl)
			return 1
		}))
		return 1
	}))

	// Item "id" { ... } — curried, returns the annotated table.
	L.SetGlobal("Item", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			tbl.RawSetString("__item", lua.LString(id))
			L.Push(tbl)
			return 1
		}))
		return 1
	}))

	// Action { verbs = {...}, tool = "...", variants = {...}, ... } —
	// pass-through, returns the table.
	L.SetGlobal("Action", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		L.Push(tbl)
		return 1
	}))

	// When { item = "...", verbs = {...}, tool = "..." } — a predicate
	// gating an action on recorded history. Pass-through.
	L.SetGlobal("When", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		L.Push(tbl)
		return 1
	}))

	// LookReward({"desk"}, "The drawer isn't locked.")
	L.SetGlobal("LookReward", L.NewFunction(func(L *lua.LState) int {
		values := L.CheckTable(1)
		hint := L.CheckString(2)
		L.Push(rewardTable(L, "look", values, hint))
		return 1
	}))

	// DirectionReward({"east"}, "Vents usually hide things.")
	L.SetGlobal("DirectionReward", L.NewFunction(func(L *lua.LState) int {
		values := L.CheckTable(1)
		hint := L.CheckString(2)
		L.Push(rewardTable(L, "direction", values, hint))
		return 1
	}))

	// Prompts { name = { "variant", ... }, ... } — overrides and
	// additions merged into the prompt bank.
	L.SetGlobal("Prompts", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		tbl.ForEach(func(k, v lua.LValue) {
			name, ok := k.(lua.LString)
			if !ok {
				return
			}
			if variants, ok := v.(*lua.LTable); ok {
				coll.prompts[string(name)] = tableToStrings(variants)
			}
		})
		return 0
	}))
}

func rewardTable(L *lua.LState, kind string, values *lua.LTable, hint string) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("__reward", lua.LString(kind))
	tbl.RawSetString("values", values)
	tbl.RawSetString("hint", lua.LString(hint))
	return tbl
}
