package main

import (
	"flag"
	"os"
	"time"

	"coup/config"
	"coup/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "Experiment config file (yaml, json or toml)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.LoadExperiment(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse log level")
	}
	zerolog.SetGlobalLevel(level)

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for id, kind := range cfg.Agents {
		log.Info().Msgf("agent %d (%s) won %d of %d games", id, kind, summary.Wins[id], summary.Games)
	}
	if summary.Truncated > 0 {
		log.Info().Msgf("%d games were cut off after %d moves", summary.Truncated, cfg.MaxMoves)
	}
}
