package experiments

import (
	"fmt"

	"coup/agent"
	"coup/config"
	"coup/experiments/metrics"
	"coup/game"

	"github.com/rs/zerolog/log"
)

// Summary is the outcome of one experiment.
type Summary struct {
	Dir       string      // run directory holding the CSV files
	Games     int
	Truncated int
	Wins      map[int]int // AgentConfig.ID -> games won
	Batch     metrics.BatchMetric
}

// Run plays cfg.Games self-play games over a pool of cfg.Goroutines workers and
// stores the agent configs, game records and move records as CSV.
func Run(cfg config.Experiment) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	rules := game.NewBaseRules()
	if cfg.Rules != "" {
		var err error
		rules, err = config.LoadRuleSet(cfg.Rules)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to load rules: %w", err)
		}
	}
	if n := len(cfg.Agents); n < rules.MinPlayers || n > rules.MaxPlayers {
		return Summary{}, fmt.Errorf("%w: %d agents, rules allow %d to %d players", config.ErrExperiment, n, rules.MinPlayers, rules.MaxPlayers)
	}

	configs := make([]metrics.AgentConfig, len(cfg.Agents))
	for i, kind := range cfg.Agents {
		configs[i] = metrics.AgentConfig{ID: i, Kind: kind, Temperature: cfg.Temperature}
	}

	log.Info().Msgf("starting %s experiment: %d games, %d agents, %d goroutines", cfg.Name, cfg.Games, len(configs), cfg.Goroutines)

	collector := metrics.NewCollector()
	results, err := playAll(cfg, rules, configs, collector)
	if err != nil {
		return Summary{}, err
	}
	batch := collector.Complete()

	summary := Summary{Games: len(results), Wins: make(map[int]int), Batch: batch, Truncated: batch.Truncated}
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, res := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agents:     res.agents,
			GameMetric: res.game,
		})
		for _, mm := range res.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
		if res.winnerSeat >= 0 {
			summary.Wins[res.agents[res.winnerSeat]]++
		}
	}

	log.Info().Msgf("completed %s experiment in %s, %d of %d games cut off", cfg.Name, batch.Duration, batch.Truncated, batch.Games)

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return Summary{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return Summary{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteBatchMetric(batch); err != nil {
		return Summary{}, fmt.Errorf("failed to write batch metric: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())

	return summary, nil
}

// newAgent builds a fresh decision source; agents keep random state and are never shared between games.
func newAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case "random":
		return agent.NewRandom(seed)
	case "truthful":
		return agent.NewWeighted(seed, config.Temperature, agent.Truthful)
	}
	panic("unknown agent kind " + config.Kind)
}
