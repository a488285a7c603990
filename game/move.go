package game

import (
	"fmt"
	"slices"
	"strings"
)

type ChoiceKind int

const (
	ChooseAction    ChoiceKind = iota // declare an action in AwaitingAction
	ChooseChallenge                   // challenge the claim under consideration
	ChoosePass                        // let the claim or action stand
	ChooseBlock                       // block, claiming Role
	ChooseReveal                      // reveal an unrevealed card of Role
	ChooseKeep                        // finish an exchange keeping Keep
)

func (k ChoiceKind) String() string {
	switch k {
	case ChooseAction:
		return "Action"
	case ChooseChallenge:
		return "Challenge"
	case ChoosePass:
		return "Pass"
	case ChooseBlock:
		return "Block"
	case ChooseReveal:
		return "Reveal"
	case ChooseKeep:
		return "Keep"
	}
	return fmt.Sprintf("ChoiceKind(%d)", int(k))
}

// Choice is one decision made by the seat named in Player.
type Choice struct {
	Player int
	Kind   ChoiceKind
	Action ActionKind // ChooseAction only
	Target int        // ChooseAction only, NoPlayer when untargeted
	Role   Role       // ChooseBlock and ChooseReveal
	Keep   []Role     // ChooseKeep, sorted
	Drawn  []Role     // ChooseKeep history entries: the cards drawn before keeping
}

func ActionChoice(player int, kind ActionKind, target int) Choice {
	return Choice{Player: player, Kind: ChooseAction, Action: kind, Target: target}
}

func ChallengeChoice(player int) Choice {
	return Choice{Player: player, Kind: ChooseChallenge, Target: NoPlayer}
}

func PassChoice(player int) Choice {
	return Choice{Player: player, Kind: ChoosePass, Target: NoPlayer}
}

func BlockChoice(player int, role Role) Choice {
	return Choice{Player: player, Kind: ChooseBlock, Target: NoPlayer, Role: role}
}

func RevealChoice(player int, role Role) Choice {
	return Choice{Player: player, Kind: ChooseReveal, Target: NoPlayer, Role: role}
}

func KeepChoice(player int, keep ...Role) Choice {
	keep = slices.Clone(keep)
	slices.Sort(keep)
	return Choice{Player: player, Kind: ChooseKeep, Target: NoPlayer, Keep: keep}
}

// Equal reports whether two choices make the same decision. Only the fields
// meaningful for the kind are compared, and Keep is compared as a multiset.
func (c Choice) Equal(o Choice) bool {
	if c.Player != o.Player || c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case ChooseAction:
		return c.Action == o.Action && c.Target == o.Target
	case ChooseBlock, ChooseReveal:
		return c.Role == o.Role
	case ChooseKeep:
		a, b := slices.Clone(c.Keep), slices.Clone(o.Keep)
		slices.Sort(a)
		slices.Sort(b)
		return slices.Equal(a, b)
	}
	return true
}

func (c Choice) String() string {
	prefix := fmt.Sprintf("P%d:", c.Player)
	switch c.Kind {
	case ChooseAction:
		if c.Target != NoPlayer {
			return fmt.Sprintf("%s%s->P%d", prefix, c.Action, c.Target)
		}
		return prefix + string(c.Action)
	case ChooseBlock, ChooseReveal:
		return fmt.Sprintf("%s%s(%s)", prefix, c.Kind, c.Role)
	case ChooseKeep:
		keep := make([]string, len(c.Keep))
		for i, r := range c.Keep {
			keep[i] = string(r)
		}
		return fmt.Sprintf("%s%s(%s)", prefix, c.Kind, strings.Join(keep, ","))
	}
	return prefix + c.Kind.String()
}

// Key identifies a choice within the set offered at one decision point.
func (c Choice) Key() string {
	return c.String()
}

func (c Choice) clone() Choice {
	c.Keep = slices.Clone(c.Keep)
	c.Drawn = slices.Clone(c.Drawn)
	return c
}
