package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("deals hands and coins", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)

		require.Equal(t, AwaitingAction, gs.Phase())
		require.Equal(t, 0, gs.Active(), "first seat should open")
		require.Equal(t, 0, gs.Decider())
		require.Equal(t, 11, gs.DeckSize())
		require.Equal(t, 15, gs.TotalCards())
		for seat, p := range gs.Players() {
			require.Equal(t, testIDs[seat], p.ID, "seats should follow the given order")
			require.Equal(t, 2, p.Coins)
			require.Equal(t, 2, p.Influence())
		}
		_, pending := gs.Pending()
		require.False(t, pending, "no action should be pending at the start")
		require.False(t, gs.IsTerminal())
	})

	t.Run("player count out of range", func(t *testing.T) {
		_, err := Setup(NewBaseRules(), testIDs[:1], 1)
		require.ErrorIs(t, err, ErrSetup)

		_, err = Setup(NewBaseRules(), append(testIDs, "grace"), 1)
		require.ErrorIs(t, err, ErrSetup)
	})

	t.Run("bad player ids", func(t *testing.T) {
		_, err := Setup(NewBaseRules(), []string{"alice", "alice"}, 1)
		require.ErrorIs(t, err, ErrSetup)

		_, err = Setup(NewBaseRules(), []string{"alice", ""}, 1)
		require.ErrorIs(t, err, ErrSetup)
	})

	t.Run("bad rules", func(t *testing.T) {
		_, err := Setup(nil, testIDs[:2], 1)
		require.ErrorIs(t, err, ErrConfig)

		rules := NewBaseRules()
		rules.StartingCoins = -2
		_, err = Setup(rules, testIDs[:2], 1)
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("same seed deals the same game", func(t *testing.T) {
		a := newGame(t, NewBaseRules(), 4)
		b := newGame(t, NewBaseRules(), 4)

		require.Equal(t, a.Players(), b.Players())
		require.Equal(t, a.Hash(), b.Hash())
	})
}

func TestCopy(t *testing.T) {
	gs := newGame(t, NewBaseRules(), 3)
	clone := gs.Copy()
	require.Equal(t, gs.Hash(), clone.Hash(), "a copy should hash like the original")

	mustApply(t, clone, ActionChoice(0, Income, NoPlayer))

	require.Equal(t, 2, gs.Player(0).Coins, "original should not see the copy's moves")
	require.Equal(t, 0, gs.Active())
	require.NotEqual(t, gs.Hash(), clone.Hash())
}

func TestPlay(t *testing.T) {
	gs := newGame(t, NewBaseRules(), 2)
	before := gs.Hash()

	next, err := gs.Play(ActionChoice(0, Income, NoPlayer))

	require.NoError(t, err)
	require.Equal(t, 3, next.Player(0).Coins)
	require.Equal(t, before, gs.Hash(), "Play should leave the receiver unchanged")

	_, err = gs.Play(ActionChoice(1, Income, NoPlayer))
	require.ErrorIs(t, err, ErrInvalidAction)
}
