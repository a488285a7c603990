package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var testIDs = []string{"alice", "bob", "carol", "dave", "erin", "frank"}

func newGame(t *testing.T, rules *RuleSet, players int) *GameState {
	t.Helper()
	gs, err := Setup(rules, testIDs[:players], 7)
	require.NoError(t, err, "Setup should accept a valid player list")
	return gs
}

// rig gives seat the listed roles, trading cards with the deck so the card count is kept.
func rig(t *testing.T, gs *GameState, seat int, roles ...Role) {
	t.Helper()
	hand := gs.players[seat].Hand
	require.Len(t, hand, len(roles), "rig needs one role per card")
	for i := range hand {
		gs.deck.cards = append(gs.deck.cards, hand[i].Role)
	}
	for i, want := range roles {
		j := slices.Index(gs.deck.cards, want)
		require.GreaterOrEqual(t, j, 0, "deck should hold a spare %s", want)
		gs.deck.cards = slices.Delete(gs.deck.cards, j, j+1)
		hand[i] = Influence{Role: want}
	}
}

// deal replaces every hand at once, so earlier hands cannot hold the cards a later one needs.
func deal(t *testing.T, gs *GameState, hands ...[]Role) {
	t.Helper()
	require.Len(t, hands, len(gs.players), "deal needs one hand per seat")
	for seat := range gs.players {
		for _, card := range gs.players[seat].Hand {
			gs.deck.cards = append(gs.deck.cards, card.Role)
		}
		gs.players[seat].Hand = nil
	}
	for seat, roles := range hands {
		for _, want := range roles {
			j := slices.Index(gs.deck.cards, want)
			require.GreaterOrEqual(t, j, 0, "deck should hold a spare %s", want)
			gs.deck.cards = slices.Delete(gs.deck.cards, j, j+1)
			gs.players[seat].Hand = append(gs.players[seat].Hand, Influence{Role: want})
		}
	}
}

// stack moves roles to the top of the deck so they are drawn in the listed order.
func stack(t *testing.T, gs *GameState, roles ...Role) {
	t.Helper()
	for i := len(roles) - 1; i >= 0; i-- {
		j := slices.Index(gs.deck.cards, roles[i])
		require.GreaterOrEqual(t, j, 0, "deck should hold a spare %s", roles[i])
		gs.deck.cards = slices.Delete(gs.deck.cards, j, j+1)
		gs.deck.cards = append(gs.deck.cards, roles[i])
	}
}

func mustApply(t *testing.T, gs *GameState, choices ...Choice) {
	t.Helper()
	for _, c := range choices {
		require.NoError(t, gs.Apply(c), "%s should be accepted in phase %s", c, gs.Phase())
	}
}
