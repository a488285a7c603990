package config

import (
	"errors"
	"fmt"
	"strings"

	"coup/meta"
	"coup/utils"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// ErrExperiment reports an unusable experiment configuration.
var ErrExperiment = errors.New("invalid experiment")

// AgentKinds lists the decision sources an experiment can seat.
var AgentKinds = []string{"random", "truthful"}

// Experiment configures a batch of self-play games.
type Experiment struct {
	Name        string   `mapstructure:"name"`
	Games       int      `mapstructure:"games"`
	Goroutines  int      `mapstructure:"goroutines"`
	Seed        uint64   `mapstructure:"seed"`
	MaxMoves    int      `mapstructure:"max_moves"`
	Agents      []string `mapstructure:"agents"` // one kind per seat
	Temperature float64  `mapstructure:"temperature"`
	Rules       string   `mapstructure:"rules"` // rule set file, base game when empty
	OutDir      string   `mapstructure:"out_dir"`
	LogLevel    string   `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "selfplay")
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("goroutines", meta.GO_ROUTINES)
	v.SetDefault("seed", meta.SEED)
	v.SetDefault("max_moves", meta.MAX_MOVES)
	v.SetDefault("agents", []string{"truthful", "random"})
	v.SetDefault("temperature", meta.TEMPERATURE)
	v.SetDefault("rules", "")
	v.SetDefault("out_dir", meta.OUT_DIR)
	v.SetDefault("log_level", meta.LOG_LEVEL)
}

// LoadExperiment reads path (any format viper knows, skipped when empty) over
// the defaults, then applies COUP_* environment overrides.
func LoadExperiment(path string) (Experiment, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("COUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Experiment{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Experiment
	if err := v.Unmarshal(&cfg); err != nil {
		return Experiment{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Experiment{}, err
	}
	return cfg, nil
}

func (e Experiment) Validate() error {
	var problems []error
	if e.Name == "" {
		problems = append(problems, errors.New("name is empty"))
	}
	if e.Games < 1 {
		problems = append(problems, fmt.Errorf("games must be positive, got %d", e.Games))
	}
	if e.Goroutines < 1 {
		problems = append(problems, fmt.Errorf("goroutines must be positive, got %d", e.Goroutines))
	}
	if e.MaxMoves < 1 {
		problems = append(problems, fmt.Errorf("max_moves must be positive, got %d", e.MaxMoves))
	}
	if len(e.Agents) < 2 {
		problems = append(problems, fmt.Errorf("need at least two agents, got %d", len(e.Agents)))
	}
	for _, kind := range e.Agents {
		if !utils.Contains(AgentKinds, kind) {
			problems = append(problems, fmt.Errorf("unknown agent %q, want one of %s", kind, strings.Join(AgentKinds, ", ")))
		}
	}
	if e.Temperature <= 0 {
		problems = append(problems, fmt.Errorf("temperature must be positive, got %g", e.Temperature))
	}
	if _, err := zerolog.ParseLevel(e.LogLevel); err != nil {
		problems = append(problems, fmt.Errorf("log_level: %w", err))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrExperiment, errors.Join(problems...))
	}
	return nil
}
