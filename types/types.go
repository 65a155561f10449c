// Package types defines the shared data structures for the escapecore engine.
// This package contains only type definitions — no logic, no methods.
package types

import "time"

// Command is the normalized player input for one turn, as produced by the
// upstream front-end: a verb plus an optional primary item and tool.
type Command struct {
	Verb string
	Item string // optional primary item ID
	Tool string // optional secondary item ID
	Raw  string // untouched user text, for fallback heuristics
}

// Predicate gates a rule on a previously recorded interaction. Verbs lists
// the acceptable alternatives; Tool, when non-empty, must match the record's
// tool exactly, and when empty the record must carry no tool. Item names the
// entity whose history is consulted; empty means the rule's own target.
type Predicate struct {
	Item  string
	Verbs []string
	Tool  string
}

// ActionRule is one declarative interaction rule attached to a target
// (room, direction, or item). Rules are evaluated in declared order.
type ActionRule struct {
	Verbs      []string // verb synonyms; empty matches any verb
	Tool       string   // required secondary item; empty means none allowed
	Predicates []Predicate
	Variants   []string // narrative text variants

	Reveal   []string // item IDs added to the found list
	Collect  []string // item IDs added to the inventory
	Remove   []string // item IDs removed from the inventory
	Question bool     // outcome awaits a follow-up answer
	Context  string   // named context armed for the next turn
	Secret   bool     // grants the room's one hidden bonus
	Win      *bool
	Lose     *bool
	Save     *bool // persist an ActionRecord; nil = default (all verbs but "look")
}

// ActionRecord is the persisted fact that a verb (optionally with a tool)
// has been successfully applied to a target. At most one record per verb
// is kept per target.
type ActionRecord struct {
	Verb string `json:"verb"`
	Tool string `json:"tool,omitempty"`
}

// RewardTrigger kinds.
const (
	TriggerLookItem  = "look"
	TriggerDirection = "direction"
)

// Reward is a room-defined trigger that grants a hint once matched.
type Reward struct {
	Kind   string   // TriggerLookItem or TriggerDirection
	Values []string // item IDs or direction names that satisfy the trigger
	Hint   string
}

// Direction is one compass exit or surface of a room, with its own rules.
type Direction struct {
	Name     string
	Rules    []ActionRule
	Variants []string // description variants shown when facing this way
}

// Item is an interactable object within a room. Static items cannot be
// collected unless a rule explicitly adds them to the inventory.
type Item struct {
	ID       string
	Static   bool
	Rules    []ActionRule
	Variants []string // description variants; also feed the guess dictionary
	Hints    []string // item-specific hint variants
}

// Room is the immutable, author-supplied description of one escape room.
type Room struct {
	ID             string
	Intro          string
	IntroDirection string // facing assigned on entry
	Directions     []Direction
	Items          map[string]*Item
	ItemOrder      []string // declaration order of Items
	Rewards        []Reward
	Hints          []string // room-level hint variants
	Turns          []string // solution for the turn-sequence puzzle, if any
	Code           string   // solution for the digit-code puzzle, if any
}

// RoomState is the per-player, per-room mutable record. All item lists are
// ordered most-recently-affected first.
type RoomState struct {
	FoundItems          []string                  `json:"found_items"`
	FoundItemDirections map[string]string         `json:"found_item_directions"`
	FoundDirections     []string                  `json:"found_directions"`
	LookedItems         []string                  `json:"looked_items"`
	CollectedItems      []string                  `json:"collected_items"`
	DroppedItems        []string                  `json:"dropped_items"`
	Records             map[string][]ActionRecord `json:"records"`
	ClaimedRewards      []int                     `json:"claimed_rewards"`
	Hints               []string                  `json:"hints"`
	SecretFound         bool                      `json:"secret_found"`
	Win                 bool                      `json:"win"`
	Lose                bool                      `json:"lose"`
	Done                bool                      `json:"done"` // win or lose has latched
	Duration            time.Duration             `json:"duration"`
	Turns               int                       `json:"turns"`
}

// PlayerState is the durable per-player blob handed to and from the
// external store each turn.
type PlayerState struct {
	ID           string                `json:"id"`
	Created      time.Time             `json:"created"`
	Rooms        map[string]*RoomState `json:"rooms"`
	TotalTurns   int                   `json:"total_turns"`
	RoomsWon     int                   `json:"rooms_won"`
	SecretsFound int                   `json:"secrets_found"`
	RewardHinted bool                  `json:"reward_hinted"` // first reward framing used
	Tips         map[string]bool       `json:"tips"`          // one-shot explained-this flags
}

// Context names the pending cross-turn interaction a question rule armed.
type Context int

const (
	ContextNone Context = iota
	ContextTurns
	ContextCode
	ContextColors
	ContextDirections
)

// SlotStage tracks the missing-parameter retry escalation.
type SlotStage int

const (
	SlotIdle SlotStage = iota
	SlotFirst
	SlotSecond
	SlotThird
	SlotAbandoned
)

// Session is the ephemeral per-connection state. It may be discarded at
// session end; everything durable lives in PlayerState.
type Session struct {
	RoomID    string
	Direction string // current compass facing
	Item      string // current item in focus

	SolutionIndex int // progress through Room.Turns
	ResetCount    int // wrong entries into the turns puzzle
	CodeAttempts  int

	Context   Context
	SlotStage SlotStage
	SlotKind  string // which logical slot is outstanding

	LastVerbs [2]string // rolling, newest first
	LastRaws  [2]string

	LastTurnAt time.Time // wall clock of the previous turn

	PromptHistory map[string]string // prompt name → variant used last
}

// Outcome is the structured result of resolving one rule.
type Outcome struct {
	Text             string
	Revealed         []string
	InventoryChanged bool
	Questioned       bool
	Failed           bool
	Secret           bool
	Win              bool
	Lose             bool
	Saved            bool
	Context          string
}

// Reply is the engine's output for one full turn: narrative text plus the
// flags the presentation layer needs.
type Reply struct {
	Text       string
	Suggestion []string // candidate values for suggestion rendering
	Close      bool     // terminate the session
	Outcome    Outcome
}
