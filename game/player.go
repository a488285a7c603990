package game

import "slices"

// PlayerState is one seat's coins and hand. Revealed cards stay in the hand, face up.
type PlayerState struct {
	ID    string
	Coins int
	Hand  []Influence
}

// Eliminated reports whether every card in the hand has been revealed.
func (p PlayerState) Eliminated() bool {
	return p.Influence() == 0
}

// Influence counts the unrevealed cards.
func (p PlayerState) Influence() int {
	n := 0
	for _, card := range p.Hand {
		if !card.Revealed {
			n++
		}
	}
	return n
}

// Hidden lists the unrevealed roles in hand order.
func (p PlayerState) Hidden() []Role {
	var roles []Role
	for _, card := range p.Hand {
		if !card.Revealed {
			roles = append(roles, card.Role)
		}
	}
	return roles
}

func (p PlayerState) RevealedRoles() []Role {
	var roles []Role
	for _, card := range p.Hand {
		if card.Revealed {
			roles = append(roles, card.Role)
		}
	}
	return roles
}

// slotOf finds the first unrevealed card of the given role, or -1.
func (p PlayerState) slotOf(role Role) int {
	for i, card := range p.Hand {
		if !card.Revealed && card.Role == role {
			return i
		}
	}
	return -1
}

func (p PlayerState) copy() PlayerState {
	p.Hand = slices.Clone(p.Hand)
	return p
}
