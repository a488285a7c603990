package game

import "slices"

// LegalChoices lists every choice the deciding seat may make, in a fixed order:
// actions in rule-set order with targets in seat order after the actor, then
// challenge before pass, blocks in the action's blocker order before pass,
// reveals in hand order, keeps as sorted multisets. It never mutates the state.
func (gs *GameState) LegalChoices() []Choice {
	switch gs.phase {
	case AwaitingAction:
		return gs.actionChoices()
	case AwaitingChallenge, AwaitingBlockChallenge:
		seat := gs.responders[0]
		return []Choice{ChallengeChoice(seat), PassChoice(seat)}
	case AwaitingBlock:
		seat := gs.responders[0]
		rule, _ := gs.rules.Action(gs.pending.Kind)
		choices := make([]Choice, 0, len(rule.BlockableBy)+1)
		for _, role := range rule.BlockableBy {
			choices = append(choices, BlockChoice(seat, role))
		}
		return append(choices, PassChoice(seat))
	case ProvingClaim, ForcedReveal:
		seat := gs.Decider()
		var choices []Choice
		for _, role := range distinct(gs.players[seat].Hidden()) {
			choices = append(choices, RevealChoice(seat, role))
		}
		return choices
	case Exchanging:
		return gs.keepChoices()
	case GameOver:
		return nil
	}
	panic("unknown phase " + gs.phase.String())
}

func (gs *GameState) actionChoices() []Choice {
	actor := gs.active
	coins := gs.players[actor].Coins
	forced := gs.rules.MustCoup(coins)

	var choices []Choice
	for _, rule := range gs.rules.Actions {
		if forced && rule.Kind != Coup {
			continue
		}
		if rule.Cost > coins {
			continue
		}
		if !rule.RequiresTarget {
			choices = append(choices, ActionChoice(actor, rule.Kind, NoPlayer))
			continue
		}
		if rule.AllowSelfTarget {
			choices = append(choices, ActionChoice(actor, rule.Kind, actor))
		}
		for _, target := range gs.others(actor) {
			choices = append(choices, ActionChoice(actor, rule.Kind, target))
		}
	}
	return choices
}

// keepChoices enumerates the distinct hands the exchanging actor may keep.
func (gs *GameState) keepChoices() []Choice {
	a := gs.pending
	p := gs.players[a.Actor]
	pool := append(p.Hidden(), a.Drawn...)
	slices.Sort(pool)

	var choices []Choice
	var pick func(start int, kept []Role)
	pick = func(start int, kept []Role) {
		if len(kept) == p.Influence() {
			choices = append(choices, KeepChoice(a.Actor, kept...))
			return
		}
		for i := start; i < len(pool); i++ {
			if i > start && pool[i] == pool[i-1] {
				continue
			}
			pick(i+1, append(kept, pool[i]))
		}
	}
	pick(0, make([]Role, 0, p.Influence()))
	return choices
}

func (gs *GameState) validTarget(actor int, rule ActionRule, target int) bool {
	if target < 0 || target >= len(gs.players) {
		return false
	}
	if target == actor {
		return rule.AllowSelfTarget
	}
	return !gs.players[target].Eliminated()
}

func distinct(roles []Role) []Role {
	var out []Role
	for _, r := range roles {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
