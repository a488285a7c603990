package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countRoles(cards []Role) map[Role]int {
	counts := make(map[Role]int)
	for _, c := range cards {
		counts[c]++
	}
	return counts
}

func TestDeck(t *testing.T) {
	rules := NewBaseRules()

	t.Run("built from the rule set", func(t *testing.T) {
		deck := NewDeck(rules, 1)

		require.Equal(t, 15, deck.Len())
		for _, r := range rules.Roles {
			require.Equal(t, 3, countRoles(deck.Cards())[r.Role], "deck should hold three %s", r.Role)
		}
	})

	t.Run("seeded shuffle", func(t *testing.T) {
		require.Equal(t, NewDeck(rules, 42).Cards(), NewDeck(rules, 42).Cards(), "same seed should give the same order")
		require.NotEqual(t, NewDeck(rules, 42).Cards(), NewDeck(rules, 43).Cards(), "different seeds should give different orders")
	})

	t.Run("draw, return and swap conserve cards", func(t *testing.T) {
		deck := NewDeck(rules, 3)
		before := countRoles(deck.Cards())

		a, ok := deck.Draw()
		require.True(t, ok)
		b, ok := deck.Draw()
		require.True(t, ok)
		require.Equal(t, 13, deck.Len())

		deck.Return(a, b)
		require.Equal(t, 15, deck.Len())
		require.Equal(t, before, countRoles(deck.Cards()))

		top, _ := deck.Draw()
		replacement := deck.Swap(top)
		require.Equal(t, 14, deck.Len())
		after := countRoles(append(deck.Cards(), replacement))
		require.Equal(t, before, after)
	})

	t.Run("empty deck", func(t *testing.T) {
		deck := &Deck{}

		_, ok := deck.Draw()

		require.False(t, ok, "drawing from an empty deck should fail")
	})

	t.Run("copy carries the random state", func(t *testing.T) {
		deck := NewDeck(rules, 9)
		clone := deck.Copy()

		deck.Shuffle()
		clone.Shuffle()
		require.Equal(t, deck.Cards(), clone.Cards(), "copies should shuffle identically")

		deck.Draw()
		require.Equal(t, 14, deck.Len())
		require.Equal(t, 15, clone.Len(), "copy should not share cards")
	})
}
