package experiments

import (
	"errors"
	"fmt"
	"sync"

	"coup/agent"
	"coup/config"
	"coup/engine"
	"coup/experiments/metrics"
	"coup/game"

	"github.com/rs/zerolog/log"
)

type result struct {
	agents     []int // AgentConfig.ID per seat
	winnerSeat int
	game       metrics.GameMetric
	moves      []metrics.MoveMetric
}

// seating rotates the agents so that each of them opens the same number of games.
func seating(configs []metrics.AgentConfig, index int) []metrics.AgentConfig {
	n := len(configs)
	seated := make([]metrics.AgentConfig, n)
	for seat := range seated {
		seated[seat] = configs[(seat+index)%n]
	}
	return seated
}

// playAll runs every game of the experiment over a fixed pool of goroutines.
// Game i is dealt with seed cfg.Seed+i, so results do not depend on scheduling.
func playAll(cfg config.Experiment, rules *game.RuleSet, configs []metrics.AgentConfig, collector metrics.Collector) ([]result, error) {
	task := make(chan int, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		task <- i
	}
	close(task)

	results := make([]result, cfg.Games)
	errs := make([]error, cfg.Games)

	collector.Start(cfg.Goroutines)
	var wg sync.WaitGroup
	for i := 0; i < cfg.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for g := range task {
				results[g], errs[g] = playOne(cfg, rules, configs, g)
				if errs[g] == nil {
					collector.AddGame(results[g].game.Truncated)
					collector.AddDecisions(len(results[g].moves))
				}
			}
		}()
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func playOne(cfg config.Experiment, rules *game.RuleSet, configs []metrics.AgentConfig, i int) (result, error) {
	seed := cfg.Seed + uint64(i)
	seated := seating(configs, i)

	players := make([]string, len(seated))
	agents := make([]agent.Agent, len(seated))
	ids := make([]int, len(seated))
	for seat, config := range seated {
		players[seat] = fmt.Sprintf("P%d", seat+1)
		agents[seat] = newAgent(config, seed*uint64(len(seated))+uint64(seat))
		ids[seat] = config.ID
	}

	e, err := engine.LocalEngine(rules, players, agents, seed, engine.WithMaxMoves(cfg.MaxMoves))
	if err != nil {
		return result{}, fmt.Errorf("failed to set up game %d: %w", i+1, err)
	}
	winner, gameMetric, moveMetrics := e.Run()
	log.Debug().Msgf("completed game %d with winner: %s", i+1, winner)

	return result{
		agents:     ids,
		winnerSeat: e.State.WinnerSeat(),
		game:       gameMetric,
		moves:      moveMetrics,
	}, nil
}
