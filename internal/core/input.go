package core

// Action is a semantic fighter input, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // move left
	ActionRight         // move right
	ActionJump          // jump while grounded
	ActionAttack        // melee strike
	ActionBlock         // hold guard
	numActions
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionBlock:
		return "Block"
	default:
		return "None"
	}
}

// Snapshot is the per-player input state for one simulation tick: five
// independent "key currently held" booleans. The simulation only reads it.
type Snapshot struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
	Block  bool
}

// Has reports whether the given action is held in this snapshot.
// Unknown actions read as false.
func (s Snapshot) Has(a Action) bool {
	switch a {
	case ActionLeft:
		return s.Left
	case ActionRight:
		return s.Right
	case ActionJump:
		return s.Jump
	case ActionAttack:
		return s.Attack
	case ActionBlock:
		return s.Block
	default:
		return false
	}
}

// DefaultHoldTicks is how long a key press counts as "held" when the
// terminal cannot report key releases. Terminal auto-repeat refreshes the
// hold well within this window, so a held key stays held and a tapped key
// expires quickly.
const DefaultHoldTicks = 4

// Held tracks which actions are currently held for one player.
// Terminals deliver key presses (with auto-repeat) but no release events,
// so each press stamps the action with an expiry tick; Snapshot reads the
// actions whose stamps are still live.
type Held struct {
	expiry    [numActions]uint64
	holdTicks uint64
}

// NewHeld creates a hold tracker. holdTicks <= 0 selects DefaultHoldTicks.
func NewHeld(holdTicks int) *Held {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Held{holdTicks: uint64(holdTicks)}
}

// Press marks the action held as of tick now.
func (h *Held) Press(a Action, now uint64) {
	if a <= ActionNone || a >= numActions {
		return
	}
	h.expiry[a] = now + h.holdTicks
}

// Release clears the action immediately.
func (h *Held) Release(a Action) {
	if a <= ActionNone || a >= numActions {
		return
	}
	h.expiry[a] = 0
}

// Clear drops all held actions.
func (h *Held) Clear() {
	h.expiry = [numActions]uint64{}
}

// Snapshot returns the boolean input vector as of tick now.
func (h *Held) Snapshot(now uint64) Snapshot {
	held := func(a Action) bool { return h.expiry[a] > now }
	return Snapshot{
		Left:   held(ActionLeft),
		Right:  held(ActionRight),
		Jump:   held(ActionJump),
		Attack: held(ActionAttack),
		Block:  held(ActionBlock),
	}
}
