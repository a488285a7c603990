package game

import "slices"

// ActionKind names an entry in a RuleSet's action table.
type ActionKind string

const (
	Income      ActionKind = "Income"
	ForeignAid  ActionKind = "ForeignAid"
	Coup        ActionKind = "Coup"
	Tax         ActionKind = "Tax"
	Assassinate ActionKind = "Assassinate"
	Steal       ActionKind = "Steal"
	Exchange    ActionKind = "Exchange"
)

// Effect is the fixed outcome of an action that resolves in the actor's favor.
type Effect struct {
	Gain  int  // coins taken from the treasury
	Steal int  // coins taken from the target, capped by what it holds
	Kill  bool // the target loses one influence
	Draw  int  // cards drawn from the deck for an exchange
}

// ActionRule describes one action of the action table.
type ActionRule struct {
	Kind               ActionKind
	Cost               int // paid when the action is declared
	RequiresTarget     bool
	AllowSelfTarget    bool
	Challengeable      bool
	BlockableBy        []Role
	BlockChallengeable bool
	Effect             Effect
}

func (r ActionRule) Blockable() bool {
	return len(r.BlockableBy) > 0
}

// Action is the action under resolution together with the challenges and blocks
// raised against it. The GameState owns it; callers only ever see copies.
type Action struct {
	Kind   ActionKind
	Actor  int
	Target int // NoPlayer when untargeted
	Paid   int

	Challenger      int // seat that challenged the actor's claim
	Blocker         int
	BlockRole       Role
	BlockChallenger int // seat that challenged the block
	Claimant        int // seat currently proving a claim

	Loser int // seat owing a forced reveal
	then  step

	// Proven card waiting to be shuffled back once the challenger's loss resolves.
	ProofSeat int
	ProofSlot int

	// Cards drawn by an exchange, not yet kept or returned.
	Drawn []Role
}

func newAction(kind ActionKind, actor, target, paid int) *Action {
	return &Action{
		Kind:            kind,
		Actor:           actor,
		Target:          target,
		Paid:            paid,
		Challenger:      NoPlayer,
		Blocker:         NoPlayer,
		BlockChallenger: NoPlayer,
		Claimant:        NoPlayer,
		Loser:           NoPlayer,
		ProofSeat:       NoPlayer,
		ProofSlot:       -1,
	}
}

// Blocked reports whether a block has been announced.
func (a Action) Blocked() bool {
	return a.Blocker != NoPlayer
}

func (a Action) copy() Action {
	a.Drawn = slices.Clone(a.Drawn)
	return a
}
