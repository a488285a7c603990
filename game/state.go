package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"

	"coup/utils"
)

type Phase int

const (
	AwaitingAction         Phase = iota // the active player declares an action
	AwaitingChallenge                   // responders may challenge the actor's claim
	ProvingClaim                        // a challenged claimant reveals a card
	AwaitingBlock                       // eligible responders may block
	AwaitingBlockChallenge              // responders may challenge the block
	ForcedReveal                        // a player loses one influence of their choice
	Exchanging                          // the actor picks which cards to keep
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingAction:
		return "AwaitingAction"
	case AwaitingChallenge:
		return "AwaitingChallenge"
	case ProvingClaim:
		return "ProvingClaim"
	case AwaitingBlock:
		return "AwaitingBlock"
	case AwaitingBlockChallenge:
		return "AwaitingBlockChallenge"
	case ForcedReveal:
		return "ForcedReveal"
	case Exchanging:
		return "Exchanging"
	case GameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// GameState is the authoritative state of one game. It is mutated in place by
// Apply and must not be shared between goroutines; use Copy for rollouts.
type GameState struct {
	rules      *RuleSet
	players    []PlayerState // seat order, fixed for the game
	deck       *Deck
	active     int
	turn       int
	phase      Phase
	pending    *Action // non-nil iff the phase is mid-resolution
	responders []int   // seats still owing a decision in the current window
	winner     int
	history    []Choice
}

// Setup deals a new game. The same rules, players and seed always produce the same game.
func Setup(rules *RuleSet, playerIDs []string, seed uint64) (*GameState, error) {
	if rules == nil {
		return nil, fmt.Errorf("%w: no rule set", ErrConfig)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if n := len(playerIDs); n < rules.MinPlayers || n > rules.MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, rules allow %d to %d", ErrSetup, n, rules.MinPlayers, rules.MaxPlayers)
	}
	for i, id := range playerIDs {
		if id == "" {
			return nil, fmt.Errorf("%w: empty id for seat %d", ErrSetup, i)
		}
		if utils.FindIndex(playerIDs, id) != i {
			return nil, fmt.Errorf("%w: duplicate player id %q", ErrSetup, id)
		}
	}

	gs := &GameState{
		rules:   rules,
		players: make([]PlayerState, len(playerIDs)),
		deck:    NewDeck(rules, seed),
		phase:   AwaitingAction,
		winner:  NoPlayer,
	}
	for seat, id := range playerIDs {
		gs.players[seat] = PlayerState{ID: id, Coins: rules.StartingCoins, Hand: make([]Influence, 0, rules.HandSize)}
	}
	for range rules.HandSize {
		for seat := range gs.players {
			role, ok := gs.deck.Draw()
			if !ok {
				panic("deck ran out while dealing a validated rule set")
			}
			gs.players[seat].Hand = append(gs.players[seat].Hand, Influence{Role: role})
		}
	}
	return gs, nil
}

func (gs *GameState) Rules() *RuleSet {
	return gs.rules
}

func (gs *GameState) Phase() Phase {
	return gs.phase
}

// Active is the seat whose turn it is.
func (gs *GameState) Active() int {
	return gs.active
}

// Turn counts completed turns.
func (gs *GameState) Turn() int {
	return gs.turn
}

func (gs *GameState) NumPlayers() int {
	return len(gs.players)
}

// Player returns a copy of the seat's record.
func (gs *GameState) Player(seat int) PlayerState {
	return gs.players[seat].copy()
}

func (gs *GameState) Players() []PlayerState {
	players := make([]PlayerState, len(gs.players))
	for i, p := range gs.players {
		players[i] = p.copy()
	}
	return players
}

// Pending returns a snapshot of the action under resolution.
func (gs *GameState) Pending() (Action, bool) {
	if gs.pending == nil {
		return Action{}, false
	}
	return gs.pending.copy(), true
}

// Responders lists the seats still owing a decision in the open window, next first.
func (gs *GameState) Responders() []int {
	return slices.Clone(gs.responders)
}

func (gs *GameState) DeckSize() int {
	return gs.deck.Len()
}

// History is the ordered list of applied choices.
func (gs *GameState) History() []Choice {
	history := make([]Choice, len(gs.history))
	for i, c := range gs.history {
		history[i] = c.clone()
	}
	return history
}

// TotalCards counts every card in the game: deck, hands and any exchange pool.
func (gs *GameState) TotalCards() int {
	total := gs.deck.Len()
	for _, p := range gs.players {
		total += len(p.Hand)
	}
	if gs.pending != nil {
		total += len(gs.pending.Drawn)
	}
	return total
}

func (gs *GameState) IsTerminal() bool {
	return gs.phase == GameOver
}

// Winner returns the id of the last player standing.
func (gs *GameState) Winner() (string, bool) {
	if gs.winner == NoPlayer {
		return "", false
	}
	return gs.players[gs.winner].ID, true
}

func (gs *GameState) WinnerSeat() int {
	return gs.winner
}

// Decider is the single seat owing the next decision, or NoPlayer once the game is over.
func (gs *GameState) Decider() int {
	switch gs.phase {
	case AwaitingAction:
		return gs.active
	case AwaitingChallenge, AwaitingBlock, AwaitingBlockChallenge:
		return gs.responders[0]
	case ProvingClaim:
		return gs.pending.Claimant
	case ForcedReveal:
		return gs.pending.Loser
	case Exchanging:
		return gs.pending.Actor
	}
	return NoPlayer
}

// others lists the live seats other than seat, starting with the one after it.
func (gs *GameState) others(seat int) []int {
	var seats []int
	for i := 1; i < len(gs.players); i++ {
		s := (seat + i) % len(gs.players)
		if !gs.players[s].Eliminated() {
			seats = append(seats, s)
		}
	}
	return seats
}

func (gs *GameState) alive() int {
	n := 0
	for _, p := range gs.players {
		if !p.Eliminated() {
			n++
		}
	}
	return n
}

// Copy returns a deep copy sharing only the immutable rule set.
func (gs *GameState) Copy() *GameState {
	players := make([]PlayerState, len(gs.players))
	for i, p := range gs.players {
		players[i] = p.copy()
	}
	var pending *Action
	if gs.pending != nil {
		a := gs.pending.copy()
		pending = &a
	}
	history := make([]Choice, len(gs.history))
	for i, c := range gs.history {
		history[i] = c.clone()
	}
	return &GameState{
		rules:      gs.rules,
		players:    players,
		deck:       gs.deck.Copy(),
		active:     gs.active,
		turn:       gs.turn,
		phase:      gs.phase,
		pending:    pending,
		responders: slices.Clone(gs.responders),
		winner:     gs.winner,
		history:    history,
	}
}

// Hash fingerprints the full state, hidden cards and random source included.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	writeInt := func(v int) {
		binary.Write(hasher, binary.LittleEndian, int64(v))
	}
	writeString := func(s string) {
		writeInt(len(s))
		hasher.Write([]byte(s))
	}

	writeInt(gs.active)
	writeInt(gs.turn)
	writeInt(int(gs.phase))
	writeInt(gs.winner)
	for _, p := range gs.players {
		writeString(p.ID)
		writeInt(p.Coins)
		for _, card := range p.Hand {
			writeString(string(card.Role))
			if card.Revealed {
				writeInt(1)
			} else {
				writeInt(0)
			}
		}
	}
	for _, role := range gs.deck.cards {
		writeString(string(role))
	}
	if state, err := gs.deck.src.MarshalBinary(); err == nil {
		hasher.Write(state)
	}
	if a := gs.pending; a != nil {
		writeString(string(a.Kind))
		for _, v := range []int{a.Actor, a.Target, a.Paid, a.Challenger, a.Blocker, a.BlockChallenger,
			a.Claimant, a.Loser, int(a.then), a.ProofSeat, a.ProofSlot} {
			writeInt(v)
		}
		writeString(string(a.BlockRole))
		for _, role := range a.Drawn {
			writeString(string(role))
		}
	}
	writeInt(len(gs.responders))
	for _, seat := range gs.responders {
		writeInt(seat)
	}
	writeInt(len(gs.history))
	return StateHash(hasher.Sum64())
}
