package game

import (
	"errors"
	"fmt"
	"slices"

	"coup/utils"
)

// RefundPolicy decides whether a declared action's cost comes back when the action is cancelled.
type RefundPolicy int

const (
	RefundNever          RefundPolicy = iota // the cost is forfeited whatever happens
	RefundWhenChallenged                     // returned when a successful challenge cancels the action
	RefundWhenCancelled                      // returned whenever the action is cancelled, by challenge or block
)

// ReplaceTiming decides when a card proven in a challenge is shuffled back and replaced.
type ReplaceTiming int

const (
	ReplaceBeforeLoss ReplaceTiming = iota // before the losing challenger reveals
	ReplaceAfterLoss                       // once the losing challenger's reveal has resolved
)

// RoleRule lists what a role lets its holder claim.
type RoleRule struct {
	Role    Role
	Actions []ActionKind // actions the role enables
	Blocks  []ActionKind // actions the role may block
}

// RuleSet is the static description of a Coup variant. It must not be modified
// once a game has been set up with it.
type RuleSet struct {
	Roles   []RoleRule
	Actions []ActionRule

	DeckCopiesPerRole int
	StartingCoins     int
	HandSize          int
	MinPlayers        int
	MaxPlayers        int

	ForcedCoupThreshold int // 0 disables the forced coup
	ForcedCoupCost      int

	Refund      RefundPolicy
	Replacement ReplaceTiming
}

// Clone returns a deep copy that shares no slices with rs.
func (rs *RuleSet) Clone() *RuleSet {
	c := *rs
	c.Roles = make([]RoleRule, len(rs.Roles))
	for i, r := range rs.Roles {
		r.Actions = slices.Clone(r.Actions)
		r.Blocks = slices.Clone(r.Blocks)
		c.Roles[i] = r
	}
	c.Actions = make([]ActionRule, len(rs.Actions))
	for i, a := range rs.Actions {
		a.BlockableBy = slices.Clone(a.BlockableBy)
		c.Actions[i] = a
	}
	return &c
}

// Action looks up an action by kind.
func (rs *RuleSet) Action(kind ActionKind) (ActionRule, bool) {
	for _, rule := range rs.Actions {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return ActionRule{}, false
}

func (rs *RuleSet) role(role Role) (RoleRule, bool) {
	for _, rule := range rs.Roles {
		if rule.Role == role {
			return rule, true
		}
	}
	return RoleRule{}, false
}

// ClaimRoles returns the roles that legitimately enable an action.
func (rs *RuleSet) ClaimRoles(kind ActionKind) []Role {
	var roles []Role
	for _, rule := range rs.Roles {
		if utils.Contains(rule.Actions, kind) {
			roles = append(roles, rule.Role)
		}
	}
	return roles
}

// Enables reports whether holding role backs a claim to perform kind.
func (rs *RuleSet) Enables(role Role, kind ActionKind) bool {
	rule, ok := rs.role(role)
	return ok && utils.Contains(rule.Actions, kind)
}

// CanBlock reports whether role may be claimed to block kind.
func (rs *RuleSet) CanBlock(role Role, kind ActionKind) bool {
	rule, ok := rs.Action(kind)
	return ok && utils.Contains(rule.BlockableBy, role)
}

// DeckSize is the number of cards in play for the whole game.
func (rs *RuleSet) DeckSize() int {
	return len(rs.Roles) * rs.DeckCopiesPerRole
}

// MustCoup reports whether a player holding coins is forced to coup.
func (rs *RuleSet) MustCoup(coins int) bool {
	return rs.ForcedCoupThreshold > 0 && coins >= rs.ForcedCoupThreshold
}

// Validate checks the rule set for internal consistency. Every problem found is
// reported, joined under ErrConfig.
func (rs *RuleSet) Validate() error {
	var problems []error
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Errorf(format, args...))
	}

	if len(rs.Roles) == 0 {
		fail("no roles configured")
	}
	if len(rs.Actions) == 0 {
		fail("no actions configured")
	}

	actions := make(map[ActionKind]ActionRule, len(rs.Actions))
	reserve := 0
	for _, a := range rs.Actions {
		if a.Kind == "" {
			fail("action with an empty kind")
			continue
		}
		if _, dup := actions[a.Kind]; dup {
			fail("action %s declared twice", a.Kind)
			continue
		}
		actions[a.Kind] = a
		if a.Cost < 0 {
			fail("action %s has negative cost %d", a.Kind, a.Cost)
		}
		if a.Effect.Gain < 0 || a.Effect.Steal < 0 || a.Effect.Draw < 0 {
			fail("action %s has a negative effect", a.Kind)
		}
		if (a.Effect.Kill || a.Effect.Steal > 0) && !a.RequiresTarget {
			fail("action %s affects a target but does not require one", a.Kind)
		}
		if a.BlockChallengeable && !a.Blockable() {
			fail("action %s allows challenging blocks but nothing can block it", a.Kind)
		}
		reserve = max(reserve, a.Effect.Draw)
	}

	roles := make(map[Role]RoleRule, len(rs.Roles))
	for _, r := range rs.Roles {
		if r.Role == "" {
			fail("role with an empty name")
			continue
		}
		if _, dup := roles[r.Role]; dup {
			fail("role %s declared twice", r.Role)
			continue
		}
		roles[r.Role] = r
		for _, kind := range r.Actions {
			if _, ok := actions[kind]; !ok {
				fail("role %s enables unknown action %s", r.Role, kind)
			}
		}
		for _, kind := range r.Blocks {
			a, ok := actions[kind]
			if !ok {
				fail("role %s blocks unknown action %s", r.Role, kind)
				continue
			}
			if !utils.Contains(a.BlockableBy, r.Role) {
				fail("role %s blocks %s but the action does not list it as a blocker", r.Role, kind)
			}
		}
	}

	for _, a := range rs.Actions {
		for _, role := range a.BlockableBy {
			r, ok := roles[role]
			if !ok {
				fail("action %s is blockable by unknown role %s", a.Kind, role)
				continue
			}
			if !utils.Contains(r.Blocks, a.Kind) {
				fail("action %s is blockable by %s but the role does not list the block", a.Kind, role)
			}
		}
		claimed := len(rs.ClaimRoles(a.Kind)) > 0
		if a.Challengeable && !claimed {
			fail("action %s is challengeable but no role enables it", a.Kind)
		}
		if !a.Challengeable && claimed {
			fail("action %s is enabled by a role but cannot be challenged", a.Kind)
		}
	}

	if rs.DeckCopiesPerRole < 1 {
		fail("deck needs at least one copy per role, got %d", rs.DeckCopiesPerRole)
	}
	if rs.StartingCoins < 0 {
		fail("negative starting coins %d", rs.StartingCoins)
	}
	if rs.HandSize < 1 {
		fail("hand size must be at least 1, got %d", rs.HandSize)
	}
	if rs.MinPlayers < 2 {
		fail("minimum player count must be at least 2, got %d", rs.MinPlayers)
	}
	if rs.MaxPlayers < rs.MinPlayers {
		fail("player count range %d..%d is empty", rs.MinPlayers, rs.MaxPlayers)
	}
	if rs.DeckCopiesPerRole > 0 && rs.HandSize > 0 && rs.MaxPlayers >= rs.MinPlayers {
		if need := rs.MaxPlayers*rs.HandSize + reserve; rs.DeckSize() < need {
			fail("deck of %d cards cannot deal %d cards to %d players with %d in reserve",
				rs.DeckSize(), rs.HandSize, rs.MaxPlayers, reserve)
		}
	}

	if rs.ForcedCoupThreshold < 0 {
		fail("negative forced coup threshold %d", rs.ForcedCoupThreshold)
	}
	if rs.ForcedCoupThreshold > 0 {
		coup, ok := actions[Coup]
		switch {
		case !ok:
			fail("forced coup enabled but no %s action configured", Coup)
		case !coup.RequiresTarget:
			fail("%s must require a target", Coup)
		case coup.Cost != rs.ForcedCoupCost:
			fail("%s costs %d but the forced coup cost is %d", Coup, coup.Cost, rs.ForcedCoupCost)
		}
		if rs.ForcedCoupThreshold < rs.ForcedCoupCost {
			fail("forced coup threshold %d is below its cost %d", rs.ForcedCoupThreshold, rs.ForcedCoupCost)
		}
	}

	switch rs.Refund {
	case RefundNever, RefundWhenChallenged, RefundWhenCancelled:
	default:
		fail("unknown refund policy %d", rs.Refund)
	}
	switch rs.Replacement {
	case ReplaceBeforeLoss, ReplaceAfterLoss:
	default:
		fail("unknown replacement timing %d", rs.Replacement)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrConfig, errors.Join(problems...))
	}
	return nil
}
