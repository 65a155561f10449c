package engine

import (
	"github.com/nathoo/escapecore/engine/match"
	"github.com/nathoo/escapecore/engine/resolve"
	"github.com/nathoo/escapecore/types"
)

// turnsPuzzle advances the turn-sequence puzzle while its context is
// armed. A correct turn moves the solution index forward; a wrong one
// resets the sequence. Completing the sequence resolves the armed item
// with the turns verb.
func (e *Engine) turnsPuzzle(p *types.PlayerState, sess *types.Session, room *types.Room, rs *types.RoomState, turn string) types.Reply {
	if len(room.Turns) == 0 || sess.Item == "" {
		sess.Context = types.ContextNone
		return e.failure(sess)
	}

	if turn == room.Turns[sess.SolutionIndex] {
		sess.SolutionIndex++
		if sess.SolutionIndex < len(room.Turns) {
			return types.Reply{Text: e.say(sess, "turns_continue")}
		}
		sess.Context = types.ContextNone
		sess.SolutionIndex = 0

		item := room.Items[sess.Item]
		var rules []types.ActionRule
		if item != nil {
			rules = item.Rules
		}
		out, ok := resolve.Resolve(resolve.Target{ID: sess.Item, Kind: resolve.KindItem, Rules: rules},
			"turns", "", sess.Direction, rs, e.picker(sess))
		if !ok {
			return e.failure(sess)
		}
		return e.finish(p, sess, out)
	}

	// Wrong turn: the mechanism resets, no history is recorded.
	sess.SolutionIndex = 0
	sess.ResetCount++
	text := e.say(sess, "turns_wrong")
	if sess.ResetCount > 2 {
		text += " " + e.say(sess, "turns_reset_hint")
	}
	return types.Reply{Text: text, Outcome: types.Outcome{Failed: true}}
}

// codePuzzle checks a digit code while its context is armed. Cliché
// guesses get their own response and do not count as attempts.
func (e *Engine) codePuzzle(p *types.PlayerState, sess *types.Session, room *types.Room, rs *types.RoomState, code string) types.Reply {
	if room.Code == "" || sess.Item == "" {
		sess.Context = types.ContextNone
		return e.failure(sess)
	}
	if match.Obvious(code) {
		return types.Reply{Text: e.say(sess, "code_obvious"), Outcome: types.Outcome{Failed: true}}
	}

	if code == room.Code {
		sess.Context = types.ContextNone
		sess.CodeAttempts = 0

		item := room.Items[sess.Item]
		var rules []types.ActionRule
		if item != nil {
			rules = item.Rules
		}
		out, ok := resolve.Resolve(resolve.Target{ID: sess.Item, Kind: resolve.KindItem, Rules: rules},
			"code", "", sess.Direction, rs, e.picker(sess))
		if !ok {
			return e.failure(sess)
		}
		return e.finish(p, sess, out)
	}

	sess.CodeAttempts++
	name := "code_wrong"
	if sess.CodeAttempts > 2 {
		name = "code_wrong_again"
	}
	return types.Reply{Text: e.say(sess, name), Outcome: types.Outcome{Failed: true}}
}
