package game

import (
	"fmt"
	"slices"
)

// step is where resolution continues once a forced reveal is done.
type step int

const (
	stepNone        step = iota
	stepBlockWindow      // the action claim held; offer blocks next
	stepBlockStands      // the block claim held; the action is cancelled
	stepEndTurn
)

// Apply validates c against the current decision point and applies it. An
// error leaves the state untouched; the caller may retry with another choice.
func (gs *GameState) Apply(c Choice) error {
	if err := gs.validate(c); err != nil {
		return err
	}
	entry := c.clone()
	if c.Kind == ChooseKeep {
		entry.Drawn = slices.Clone(gs.pending.Drawn)
	}
	gs.history = append(gs.history, entry)

	switch c.Kind {
	case ChooseAction:
		gs.declare(c)
	case ChooseChallenge:
		gs.challenge(c.Player)
	case ChoosePass:
		gs.pass()
	case ChooseBlock:
		gs.block(c.Player, c.Role)
	case ChooseReveal:
		gs.reveal(c.Role)
	case ChooseKeep:
		gs.keep(c.Keep)
	}
	return nil
}

// Play applies c to a copy, leaving gs as it was.
func (gs *GameState) Play(c Choice) (*GameState, error) {
	next := gs.Copy()
	if err := next.Apply(c); err != nil {
		return nil, err
	}
	return next, nil
}

func (gs *GameState) validate(c Choice) error {
	if gs.phase == GameOver {
		return fmt.Errorf("%w: game is over", ErrInvalidAction)
	}
	if decider := gs.Decider(); c.Player != decider {
		return fmt.Errorf("%w: seat %d cannot decide now, waiting on seat %d", ErrInvalidAction, c.Player, decider)
	}

	switch gs.phase {
	case AwaitingAction:
		if c.Kind != ChooseAction {
			return fmt.Errorf("%w: expected an action, got %s", ErrInvalidAction, c.Kind)
		}
		if err := gs.validateDeclaration(c); err != nil {
			return err
		}
	case AwaitingChallenge, AwaitingBlockChallenge:
		if c.Kind != ChooseChallenge && c.Kind != ChoosePass {
			return fmt.Errorf("%w: expected challenge or pass, got %s", ErrInvalidAction, c.Kind)
		}
	case AwaitingBlock:
		if c.Kind != ChooseBlock && c.Kind != ChoosePass {
			return fmt.Errorf("%w: expected block or pass, got %s", ErrInvalidAction, c.Kind)
		}
		if c.Kind == ChooseBlock && !gs.rules.CanBlock(c.Role, gs.pending.Kind) {
			return fmt.Errorf("%w: %s cannot block %s", ErrInvalidAction, c.Role, gs.pending.Kind)
		}
	case ProvingClaim, ForcedReveal:
		if c.Kind != ChooseReveal {
			return fmt.Errorf("%w: expected a reveal, got %s", ErrInvalidAction, c.Kind)
		}
		if gs.players[c.Player].slotOf(c.Role) < 0 {
			return fmt.Errorf("%w: seat %d holds no unrevealed %s", ErrInvalidAction, c.Player, c.Role)
		}
	case Exchanging:
		if c.Kind != ChooseKeep {
			return fmt.Errorf("%w: expected cards to keep, got %s", ErrInvalidAction, c.Kind)
		}
	}

	legal := gs.LegalChoices()
	if !slices.ContainsFunc(legal, c.Equal) {
		return fmt.Errorf("%w: %s is not a legal choice", ErrInvalidAction, c)
	}
	return nil
}

func (gs *GameState) validateDeclaration(c Choice) error {
	rule, ok := gs.rules.Action(c.Action)
	if !ok {
		return fmt.Errorf("%w: unknown action %q", ErrInvalidAction, c.Action)
	}
	p := gs.players[c.Player]
	if gs.rules.MustCoup(p.Coins) && c.Action != Coup {
		return fmt.Errorf("%w: %d coins, must %s", ErrMandatoryAction, p.Coins, Coup)
	}
	if rule.Cost > p.Coins {
		return fmt.Errorf("%w: %s costs %d, seat %d has %d", ErrInvalidAction, c.Action, rule.Cost, c.Player, p.Coins)
	}
	if rule.RequiresTarget && !gs.validTarget(c.Player, rule, c.Target) {
		return fmt.Errorf("%w: %s cannot target seat %d", ErrInvalidAction, c.Action, c.Target)
	}
	if !rule.RequiresTarget && c.Target != NoPlayer {
		return fmt.Errorf("%w: %s takes no target", ErrInvalidAction, c.Action)
	}
	return nil
}

// declare pays the cost up front and opens the first window.
func (gs *GameState) declare(c Choice) {
	rule, _ := gs.rules.Action(c.Action)
	gs.players[c.Player].Coins -= rule.Cost
	gs.pending = newAction(c.Action, c.Player, c.Target, rule.Cost)
	if rule.Challengeable {
		gs.openWindow(AwaitingChallenge, gs.others(c.Player))
		return
	}
	gs.openBlockWindow()
}

func (gs *GameState) openWindow(phase Phase, seats []int) {
	gs.phase = phase
	gs.responders = seats
	if len(seats) == 0 {
		gs.closeWindow()
	}
}

func (gs *GameState) pass() {
	gs.responders = gs.responders[1:]
	if len(gs.responders) == 0 {
		gs.closeWindow()
	}
}

// closeWindow runs once every responder passed.
func (gs *GameState) closeWindow() {
	gs.responders = nil
	switch gs.phase {
	case AwaitingChallenge:
		gs.openBlockWindow()
	case AwaitingBlock:
		gs.resolveAction()
	case AwaitingBlockChallenge:
		gs.cancel(false)
	default:
		panic("no window open in phase " + gs.phase.String())
	}
}

// openBlockWindow offers a targeted action's block to its target and an
// untargeted one's to every other live player.
func (gs *GameState) openBlockWindow() {
	a := gs.pending
	rule, _ := gs.rules.Action(a.Kind)
	if !rule.Blockable() {
		gs.resolveAction()
		return
	}
	if !rule.RequiresTarget {
		gs.openWindow(AwaitingBlock, gs.others(a.Actor))
		return
	}
	if a.Target == a.Actor || gs.players[a.Target].Eliminated() {
		gs.resolveAction()
		return
	}
	gs.openWindow(AwaitingBlock, []int{a.Target})
}

func (gs *GameState) challenge(seat int) {
	a := gs.pending
	if gs.phase == AwaitingBlockChallenge {
		a.BlockChallenger = seat
		a.Claimant = a.Blocker
	} else {
		a.Challenger = seat
		a.Claimant = a.Actor
	}
	gs.responders = nil
	gs.promptReveal(ProvingClaim)
}

func (gs *GameState) block(seat int, role Role) {
	a := gs.pending
	a.Blocker = seat
	a.BlockRole = role
	gs.responders = nil
	rule, _ := gs.rules.Action(a.Kind)
	if rule.BlockChallengeable {
		gs.openWindow(AwaitingBlockChallenge, gs.others(seat))
		return
	}
	gs.cancel(false)
}

// promptReveal waits on the claimant or loser to pick a card, unless every
// unrevealed card they hold is the same role.
func (gs *GameState) promptReveal(phase Phase) {
	gs.phase = phase
	hidden := distinct(gs.players[gs.Decider()].Hidden())
	if len(hidden) == 1 {
		gs.reveal(hidden[0])
	}
}

func (gs *GameState) reveal(role Role) {
	switch gs.phase {
	case ProvingClaim:
		gs.settleClaim(role)
	case ForcedReveal:
		gs.settleLoss(role)
	default:
		panic("reveal in phase " + gs.phase.String())
	}
}

// settleClaim decides a challenge. A claimant showing the claimed role keeps
// it (swapped for a fresh card) and the challenger loses an influence;
// otherwise the shown card is lost.
func (gs *GameState) settleClaim(role Role) {
	a := gs.pending
	claimant := a.Claimant
	a.Claimant = NoPlayer
	slot := gs.players[claimant].slotOf(role)

	blockClaim := a.BlockChallenger != NoPlayer
	challenger := a.Challenger
	upheld := gs.rules.Enables(role, a.Kind)
	if blockClaim {
		challenger = a.BlockChallenger
		upheld = role == a.BlockRole
	}

	if !upheld {
		gs.players[claimant].Hand[slot].Revealed = true
		if gs.checkTerminal() {
			return
		}
		if blockClaim {
			gs.resolveAction()
		} else {
			gs.cancel(true)
		}
		return
	}

	next := stepBlockWindow
	if blockClaim {
		next = stepBlockStands
	}
	if gs.rules.Replacement == ReplaceBeforeLoss {
		gs.replace(claimant, slot)
	} else {
		a.ProofSeat, a.ProofSlot = claimant, slot
	}
	gs.loseInfluence(challenger, next)
}

func (gs *GameState) replace(seat, slot int) {
	card := &gs.players[seat].Hand[slot]
	card.Role = gs.deck.Swap(card.Role)
}

func (gs *GameState) loseInfluence(seat int, next step) {
	a := gs.pending
	a.then = next
	if gs.players[seat].Eliminated() {
		gs.afterLoss()
		return
	}
	a.Loser = seat
	gs.promptReveal(ForcedReveal)
}

func (gs *GameState) settleLoss(role Role) {
	a := gs.pending
	p := &gs.players[a.Loser]
	p.Hand[p.slotOf(role)].Revealed = true
	a.Loser = NoPlayer
	gs.afterLoss()
}

func (gs *GameState) afterLoss() {
	a := gs.pending
	if a.ProofSeat != NoPlayer {
		gs.replace(a.ProofSeat, a.ProofSlot)
		a.ProofSeat, a.ProofSlot = NoPlayer, -1
	}
	if gs.checkTerminal() {
		return
	}
	next := a.then
	a.then = stepNone
	switch next {
	case stepBlockWindow:
		gs.openBlockWindow()
	case stepBlockStands:
		gs.cancel(false)
	case stepEndTurn:
		gs.endTurn()
	default:
		panic("influence lost with nowhere to continue")
	}
}

// cancel ends the turn without the action's effect, refunding per the rule set.
func (gs *GameState) cancel(byChallenge bool) {
	a := gs.pending
	switch gs.rules.Refund {
	case RefundWhenChallenged:
		if byChallenge {
			gs.players[a.Actor].Coins += a.Paid
		}
	case RefundWhenCancelled:
		gs.players[a.Actor].Coins += a.Paid
	}
	gs.endTurn()
}

// resolveAction applies the effect of an action that survived every challenge and block.
func (gs *GameState) resolveAction() {
	a := gs.pending
	rule, _ := gs.rules.Action(a.Kind)
	effect := rule.Effect
	actor := &gs.players[a.Actor]
	gs.responders = nil

	actor.Coins += effect.Gain
	targetAlive := a.Target != NoPlayer && !gs.players[a.Target].Eliminated()
	if effect.Steal > 0 && targetAlive && a.Target != a.Actor {
		target := &gs.players[a.Target]
		taken := min(effect.Steal, target.Coins)
		target.Coins -= taken
		actor.Coins += taken
	}

	if effect.Draw > 0 {
		for range effect.Draw {
			role, ok := gs.deck.Draw()
			if !ok {
				break
			}
			a.Drawn = append(a.Drawn, role)
		}
		gs.phase = Exchanging
		if keeps := gs.keepChoices(); len(keeps) == 1 {
			gs.keep(keeps[0].Keep)
		}
		return
	}

	if effect.Kill && targetAlive {
		gs.loseInfluence(a.Target, stepEndTurn)
		return
	}
	gs.endTurn()
}

// keep refills the actor's unrevealed slots with kept and returns the rest of the pool.
func (gs *GameState) keep(kept []Role) {
	a := gs.pending
	p := &gs.players[a.Actor]
	rest := append(p.Hidden(), a.Drawn...)
	for _, role := range kept {
		i := slices.Index(rest, role)
		rest = slices.Delete(rest, i, i+1)
	}
	next := 0
	for i := range p.Hand {
		if !p.Hand[i].Revealed {
			p.Hand[i].Role = kept[next]
			next++
		}
	}
	a.Drawn = nil
	gs.deck.Return(rest...)
	gs.endTurn()
}

func (gs *GameState) endTurn() {
	gs.pending = nil
	gs.responders = nil
	if gs.checkTerminal() {
		return
	}
	gs.active = gs.others(gs.active)[0]
	gs.turn++
	gs.phase = AwaitingAction
}

// checkTerminal ends the game when a single player has influence left.
func (gs *GameState) checkTerminal() bool {
	if gs.alive() != 1 {
		return false
	}
	for seat, p := range gs.players {
		if !p.Eliminated() {
			gs.winner = seat
		}
	}
	gs.phase = GameOver
	gs.pending = nil
	gs.responders = nil
	return true
}
