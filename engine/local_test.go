package engine

import (
	"fmt"
	"testing"

	"coup/agent"
	"coup/game"

	"github.com/stretchr/testify/require"
)

// stubborn always asks to coup itself, which is never legal.
type stubborn struct{}

func (stubborn) Choose(view game.View, _ []game.Choice) game.Choice {
	return game.ActionChoice(view.Observer, game.Coup, view.Observer)
}

func TestLocalEngine(t *testing.T) {
	t.Run("plays random agents to the end", func(t *testing.T) {
		agents := []agent.Agent{agent.NewRandom(1), agent.NewRandom(2), agent.NewRandom(3)}
		e, err := LocalEngine(game.NewBaseRules(), []string{"P1", "P2", "P3"}, agents, 9, WithMaxMoves(5000))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.True(t, e.State.IsTerminal(), "random play should finish within the move limit")
		require.Contains(t, []string{"P1", "P2", "P3"}, winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.False(t, gameMetric.Truncated)
		require.Equal(t, "P1", gameMetric.StartingPlayer)
		require.Equal(t, uint64(9), gameMetric.Seed)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Positive(t, mm.Choices)
		}
	})

	t.Run("same seeds replay the same game", func(t *testing.T) {
		run := func() (string, int) {
			agents := []agent.Agent{agent.NewWeighted(4, 1, agent.Truthful), agent.NewRandom(5)}
			e, err := LocalEngine(game.NewBaseRules(), []string{"P1", "P2"}, agents, 17)
			require.NoError(t, err)
			winner, gameMetric, _ := e.Run()
			return winner, gameMetric.TotalMoves
		}

		w1, m1 := run()
		w2, m2 := run()
		require.Equal(t, w1, w2)
		require.Equal(t, m1, m2)
	})

	t.Run("illegal choices fall back to the first legal one", func(t *testing.T) {
		agents := []agent.Agent{stubborn{}, stubborn{}}
		e, err := LocalEngine(game.NewBaseRules(), []string{"P1", "P2"}, agents, 1, WithMaxMoves(10))
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.Empty(t, winner, "ten incomes cannot end the game")
		require.True(t, gameMetric.Truncated)
		require.Len(t, moveMetrics, 10)
		require.Equal(t, "P1", gameMetric.Leader, "an even game should go to the first seat")
		for _, mm := range moveMetrics {
			require.Equal(t, fmt.Sprintf("P%d:Income", mm.Player), mm.Choice)
		}
		require.Equal(t, 7, e.State.Player(0).Coins)
	})

	t.Run("evaluation function picks the leader", func(t *testing.T) {
		lastSeat := func(view game.View) float64 {
			return float64(view.Observer)
		}
		agents := []agent.Agent{stubborn{}, stubborn{}, stubborn{}}
		e, err := LocalEngine(game.NewBaseRules(), []string{"P1", "P2", "P3"}, agents, 1,
			WithMaxMoves(3), WithEvaluationFn(lastSeat))
		require.NoError(t, err)

		_, gameMetric, _ := e.Run()

		require.True(t, gameMetric.Truncated)
		require.Equal(t, "P3", gameMetric.Leader)
	})

	t.Run("setup errors are returned", func(t *testing.T) {
		_, err := LocalEngine(game.NewBaseRules(), []string{"P1"}, []agent.Agent{stubborn{}}, 1)

		require.ErrorIs(t, err, game.ErrSetup)
	})
}
