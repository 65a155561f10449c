// Package engine provides the Step() orchestrator that turns one
// normalized player command into a resolved outcome: routing to the
// action funnel, the puzzles, the slot-filling machine, and the reward
// engine, and mutating the player's state along the way.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/nathoo/escapecore/engine/match"
	"github.com/nathoo/escapecore/engine/rewards"
	"github.com/nathoo/escapecore/engine/state"
	"github.com/nathoo/escapecore/prompts"
	"github.com/nathoo/escapecore/types"
)

// ErrUnknownTarget marks a command referencing a room, item, or
// direction absent from the loaded content. This is an authoring or
// integration defect, fatal for the turn.
var ErrUnknownTarget = errors.New("unknown target")

// Engine evaluates commands against the loaded room content. It holds no
// per-player state; everything mutable is passed in per call.
type Engine struct {
	rooms map[string]*types.Room
	bank  *prompts.Bank
	log   *slog.Logger
	dicts map[string]match.Dictionary
}

// New creates an engine over immutable room content.
func New(rooms map[string]*types.Room, bank *prompts.Bank, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	dicts := make(map[string]match.Dictionary, len(rooms))
	for id, room := range rooms {
		dicts[id] = match.NewDictionary(room)
	}
	return &Engine{rooms: rooms, bank: bank, log: log, dicts: dicts}
}

// Room returns the content for a room ID.
func (e *Engine) Room(id string) (*types.Room, bool) {
	room, ok := e.rooms[id]
	return room, ok
}

// EnterRoom initializes the session for a room and returns its intro.
// The player's room state is created on first entry and otherwise kept.
func (e *Engine) EnterRoom(p *types.PlayerState, sess *types.Session, roomID string) (types.Reply, error) {
	room, ok := e.rooms[roomID]
	if !ok {
		e.log.Error("enter unknown room", "room", roomID)
		return types.Reply{}, fmt.Errorf("%w: room %q", ErrUnknownTarget, roomID)
	}
	state.Room(p, roomID)
	sess.RoomID = roomID
	sess.Item = ""
	sess.Context = types.ContextNone
	sess.LastTurnAt = time.Now()
	sess.Direction = DefaultFacing
	if room.IntroDirection != "" {
		sess.Direction = room.IntroDirection
	}
	return types.Reply{Text: room.Intro}, nil
}

// Step processes one normalized command for the player and returns the
// reply. The returned error is non-nil only for content defects; the
// reply still carries a graceful narrative response in that case.
func (e *Engine) Step(p *types.PlayerState, sess *types.Session, cmd types.Command) (types.Reply, error) {
	room, ok := e.rooms[sess.RoomID]
	if !ok {
		e.log.Error("step in unknown room", "room", sess.RoomID)
		return e.failure(sess), fmt.Errorf("%w: room %q", ErrUnknownTarget, sess.RoomID)
	}
	rs := state.Room(p, sess.RoomID)

	verb := strings.ToLower(strings.TrimSpace(cmd.Verb))
	cmd.Item = strings.ToLower(strings.TrimSpace(cmd.Item))
	cmd.Tool = strings.ToLower(strings.TrimSpace(cmd.Tool))

	pushRolling(&sess.LastRaws, cmd.Raw)

	// A changed intent abandons any outstanding slot request.
	if verb != sess.LastVerbs[0] {
		sess.SlotStage = types.SlotIdle
	}
	pushRolling(&sess.LastVerbs, verb)

	rs.Turns++
	p.TotalTurns++

	// Time spent in the room accumulates across turns, not across
	// absences: the gap is measured from the previous turn this session.
	now := time.Now()
	if !sess.LastTurnAt.IsZero() {
		rs.Duration += now.Sub(sess.LastTurnAt)
	}
	sess.LastTurnAt = now

	if rs.Done {
		return e.terminal(p, sess, room, rs, verb), nil
	}

	// An armed puzzle context captures the answer before normal routing.
	switch sess.Context {
	case types.ContextTurns:
		if t := turnInput(cmd); t != "" {
			return e.turnsPuzzle(p, sess, room, rs, t), nil
		}
	case types.ContextCode:
		if code := match.Code(cmd.Raw); code != "" {
			return e.codePuzzle(p, sess, room, rs, code), nil
		}
	}

	// Single words often stand for multi-word found items.
	cmd.Item = match.FoundItem(cmd.Item, rs.FoundItems)
	cmd.Tool = match.FoundItem(cmd.Tool, rs.FoundItems)

	// Direction words route to facing regardless of the verb.
	if IsCompass(cmd.Item) || findDirection(room, cmd.Item) != nil {
		return e.face(p, sess, room, rs, cmd.Item)
	}

	switch verb {
	case "look", "inspect", "examine", "check":
		return e.look(p, sess, room, rs, cmd)
	case "turn":
		if t := turnInput(cmd); t != "" {
			return e.face(p, sess, room, rs, Turn(sess.Direction, t))
		}
		return e.act(p, sess, room, rs, verb, cmd)
	case "face", "go", "move":
		if cmd.Item == "" {
			return types.Reply{Text: e.sayf(sess, "facing", sess.Direction) + " " + e.say(sess, "which_direction")}, nil
		}
		return e.act(p, sess, room, rs, verb, cmd)
	case "take", "grab", "pick":
		return e.take(sess, room, rs, cmd)
	case "drop":
		return e.drop(sess, rs, cmd)
	case "inventory":
		return e.inventory(p, sess, rs), nil
	case "hint":
		p.Tips["hint"] = true
		return types.Reply{Text: rewards.Consume(room, sess.Context, rs, p, e.bank, sess.PromptHistory)}, nil
	case "restart":
		return e.restart(p, sess, room, rs), nil
	default:
		return e.act(p, sess, room, rs, verb, cmd)
	}
}

// terminal handles turns after the room is won or lost: only a restart
// changes anything.
func (e *Engine) terminal(p *types.PlayerState, sess *types.Session, room *types.Room, rs *types.RoomState, verb string) types.Reply {
	switch verb {
	case "restart", "yes", "again", "play":
		return e.restart(p, sess, room, rs)
	case "no", "quit":
		return types.Reply{Text: e.say(sess, "slot_goodbye"), Close: true}
	}
	return types.Reply{Text: e.say(sess, "play_again")}
}

// restart wipes the room state and re-enters.
func (e *Engine) restart(p *types.PlayerState, sess *types.Session, room *types.Room, rs *types.RoomState) types.Reply {
	state.Reset(rs)
	sess.Item = ""
	sess.Context = types.ContextNone
	sess.SolutionIndex = 0
	sess.ResetCount = 0
	sess.CodeAttempts = 0
	sess.SlotStage = types.SlotIdle
	sess.Direction = DefaultFacing
	if room.IntroDirection != "" {
		sess.Direction = room.IntroDirection
	}
	return types.Reply{Text: e.say(sess, "restart") + " " + room.Intro}
}

// say picks a bank prompt variant against the session's history.
func (e *Engine) say(sess *types.Session, name string) string {
	return e.bank.Pick(sess.PromptHistory, name)
}

// sayf picks a bank prompt and interpolates arguments.
func (e *Engine) sayf(sess *types.Session, name string, args ...any) string {
	return fmt.Sprintf(e.bank.Pick(sess.PromptHistory, name), args...)
}

// failure is the graceful narrative response for content defects.
func (e *Engine) failure(sess *types.Session) types.Reply {
	return types.Reply{
		Text:    e.say(sess, "not_supported") + " " + e.say(sess, "encouragement"),
		Outcome: types.Outcome{Failed: true},
	}
}

// picker adapts the prompt bank to the resolve package.
func (e *Engine) picker(sess *types.Session) func(name string, variants []string) string {
	return func(name string, variants []string) string {
		return e.bank.PickFrom(sess.PromptHistory, name, variants)
	}
}

// turnInput extracts a turn word from a command, accepting it as either
// the verb or the item slot.
func turnInput(cmd types.Command) string {
	for _, v := range []string{cmd.Item, strings.ToLower(cmd.Verb)} {
		switch v {
		case "left", "right", "backwards", "around", "back":
			return v
		}
	}
	return ""
}

// contextFor maps a rule's armed context name to the session enum.
func contextFor(name string) types.Context {
	switch name {
	case "turns":
		return types.ContextTurns
	case "code":
		return types.ContextCode
	case "colors":
		return types.ContextColors
	case "directions":
		return types.ContextDirections
	}
	return types.ContextNone
}
