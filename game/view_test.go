package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	t.Run("own hand only", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 3)
		rig(t, gs, 0, Duke, Captain)
		gs.players[2].Hand[1].Revealed = true

		v := gs.View(0)

		require.Equal(t, []Role{Duke, Captain}, v.Hand)
		require.Equal(t, 0, v.Observer)
		require.Equal(t, 0, v.Decider)
		require.Equal(t, 9, v.DeckSize)
		require.Len(t, v.Players, 3)
		require.Equal(t, 2, v.Players[1].Influence)
		require.Empty(t, v.Players[1].Revealed)
		require.Equal(t, 1, v.Players[2].Influence)
		require.Equal(t, []Role{gs.players[2].Hand[1].Role}, v.Players[2].Revealed, "revealed cards should be public")
		require.Equal(t, NoPlayer, v.Winner)
	})

	t.Run("spectator sees no hand", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)

		require.Empty(t, gs.View(NoPlayer).Hand)
	})

	t.Run("exchange pool and kept cards stay private", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)
		mustApply(t, gs, ActionChoice(0, Exchange, NoPlayer), PassChoice(1))

		require.Len(t, gs.View(0).Pending.Drawn, 2, "the exchanging actor should see the drawn cards")
		require.Empty(t, gs.View(1).Pending.Drawn, "others should not see the drawn cards")

		keep := gs.LegalChoices()[0]
		mustApply(t, gs, keep)

		last := len(gs.History()) - 1
		require.Equal(t, keep.Keep, gs.View(0).History[last].Keep)
		require.Nil(t, gs.View(1).History[last].Keep, "others should not learn what was kept")
		require.Nil(t, gs.View(1).Pending)
	})

	t.Run("rules are a private copy", func(t *testing.T) {
		gs := newGame(t, NewBaseRules(), 2)

		v := gs.View(0)
		v.Rules.StartingCoins = 9
		v.Rules.Actions[0].Cost = 5
		v.Rules.Actions[1].BlockableBy[0] = Contessa
		v.Rules.Roles[0].Blocks = nil

		require.Equal(t, NewBaseRules(), gs.Rules(), "changing a view's rules should leave the game's rules alone")
		require.Equal(t, []Choice{
			ActionChoice(0, Income, NoPlayer),
			ActionChoice(0, ForeignAid, NoPlayer),
		}, gs.LegalChoices()[:2])
	})
}

func TestInfosetKey(t *testing.T) {
	a := newGame(t, NewBaseRules(), 2)
	rig(t, a, 0, Captain, Assassin)
	rig(t, a, 1, Duke, Duke)
	b := a.Copy()
	rig(t, b, 1, Contessa, Contessa)

	require.Equal(t, a.View(0).InfosetKey(), b.View(0).InfosetKey(),
		"seat 0 cannot tell the two deals apart")
	require.NotEqual(t, a.View(1).InfosetKey(), b.View(1).InfosetKey(),
		"seat 1 holds different cards in each deal")

	mustApply(t, a, ActionChoice(0, Income, NoPlayer))
	require.NotEqual(t, a.View(0).InfosetKey(), b.View(0).InfosetKey(), "public moves should change the key")
}

func TestInfosetKeyRemembersExchangeDraw(t *testing.T) {
	a := newGame(t, NewBaseRules(), 2)
	rig(t, a, 0, Duke, Contessa)
	rig(t, a, 1, Captain, Captain)
	b := a.Copy()
	stack(t, a, Assassin, Assassin)
	stack(t, b, Ambassador, Duke)

	for _, gs := range []*GameState{a, b} {
		mustApply(t, gs, ActionChoice(0, Exchange, NoPlayer), PassChoice(1), KeepChoice(0, Duke, Contessa))
		require.ElementsMatch(t, []Role{Duke, Contessa}, gs.Player(0).Hidden())
	}

	last := len(a.History()) - 1
	require.ElementsMatch(t, []Role{Assassin, Assassin}, a.View(0).History[last].Drawn)
	require.Nil(t, a.View(1).History[last].Drawn, "others should not learn what was drawn")

	require.NotEqual(t, a.View(0).InfosetKey(), b.View(0).InfosetKey(),
		"the exchanging seat saw different cards in each game")
	require.Equal(t, a.View(1).InfosetKey(), b.View(1).InfosetKey(),
		"the other seat saw the same public moves")
}

func TestEvaluateInfluence(t *testing.T) {
	gs := newGame(t, NewBaseRules(), 3)
	require.Equal(t, 0.0, EvaluateInfluence(gs.View(0)), "an even start should score zero")

	gs.players[0].Coins = 6
	require.Greater(t, EvaluateInfluence(gs.View(0)), 0.0)
	require.Less(t, EvaluateInfluence(gs.View(1)), 0.0)

	gs.players[1].Hand[0].Revealed = true
	gs.players[1].Hand[1].Revealed = true
	gs.players[2].Hand[0].Revealed = true
	gs.players[0].Coins = 7
	mustApply(t, gs, ActionChoice(0, Coup, 2))
	require.True(t, gs.IsTerminal())
	require.Equal(t, 1.0, EvaluateInfluence(gs.View(0)))
	require.Equal(t, -1.0, EvaluateInfluence(gs.View(2)))
}
