package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalChoices(t *testing.T) {
	t.Run("opening actions in rule order", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 3)

		require.Equal(t, []Choice{
			ActionChoice(0, Income, NoPlayer),
			ActionChoice(0, ForeignAid, NoPlayer),
			ActionChoice(0, Tax, NoPlayer),
			ActionChoice(0, Steal, 1),
			ActionChoice(0, Steal, 2),
			ActionChoice(0, Exchange, NoPlayer),
		}, gs.LegalChoices(), "Coup and Assassinate should be filtered out at 2 coins")
	})

	t.Run("affordable actions appear", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)
		gs.players[0].Coins = 7

		choices := gs.LegalChoices()

		require.Contains(t, choices, ActionChoice(0, Coup, 1))
		require.Contains(t, choices, ActionChoice(0, Assassinate, 1))
	})

	t.Run("mandatory coup", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 3)
		gs.players[0].Coins = 10

		require.Equal(t, []Choice{ActionChoice(0, Coup, 1), ActionChoice(0, Coup, 2)}, gs.LegalChoices(),
			"only coups should be offered at 10 coins")

		before := gs.Hash()
		require.ErrorIs(t, gs.Apply(ActionChoice(0, Income, NoPlayer)), ErrMandatoryAction)
		require.ErrorIs(t, gs.Apply(ActionChoice(0, Steal, 1)), ErrMandatoryAction)
		require.Equal(t, before, gs.Hash(), "a refused declaration should not change the state")
	})

	t.Run("eliminated players are not targets", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 3)
		gs.players[1].Hand[0].Revealed = true
		gs.players[1].Hand[1].Revealed = true

		for _, c := range gs.LegalChoices() {
			require.NotEqual(t, 1, c.Target, "%s should not target an eliminated seat", c)
		}
		require.ErrorIs(t, gs.Apply(ActionChoice(0, Steal, 1)), ErrInvalidAction)
	})

	t.Run("reveals are distinct roles in hand order", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)
		rig(t, gs, 0, Contessa, Captain)
		gs.players[1].Coins = 7
		gs.active = 1

		mustApply(t, gs, ActionChoice(1, Coup, 0))

		require.Equal(t, ForcedReveal, gs.Phase())
		require.Equal(t, []Choice{RevealChoice(0, Contessa), RevealChoice(0, Captain)}, gs.LegalChoices())
	})

	t.Run("block window offers each blocker then pass", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)

		mustApply(t, gs, ActionChoice(0, Steal, 1), PassChoice(1))

		require.Equal(t, AwaitingBlock, gs.Phase())
		require.Equal(t, []Choice{BlockChoice(1, Captain), BlockChoice(1, Ambassador), PassChoice(1)}, gs.LegalChoices())
	})

	t.Run("nothing to choose once the game is over", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)
		gs.players[1].Hand[0].Revealed = true
		gs.players[0].Coins = 7

		mustApply(t, gs, ActionChoice(0, Coup, 1))

		require.True(t, gs.IsTerminal())
		require.Empty(t, gs.LegalChoices())
	})
}
