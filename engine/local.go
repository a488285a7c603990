package engine

import (
	"fmt"
	"time"

	"coup/agent"
	"coup/experiments/metrics"
	"coup/game"
	"coup/meta"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithMaxMoves caps the number of decisions before a game is cut off.
func WithMaxMoves(moves int) Option {
	return func(e *Engine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithEvaluationFn picks the leader of a game that was cut off.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Engine) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

// Engine drives one game: it asks the deciding seat's agent for a choice and
// applies it until the game ends.
type Engine struct {
	State    *game.GameState
	Agents   []agent.Agent // one per seat
	seed     uint64
	maxMoves int
	evaluate game.Evaluate
}

func LocalEngine(rules *game.RuleSet, players []string, agents []agent.Agent, seed uint64, options ...Option) (*Engine, error) {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}

	state, err := game.Setup(rules, players, seed)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		State:    state,
		Agents:   agents,
		seed:     seed,
		maxMoves: meta.MAX_MOVES,
		evaluate: game.EvaluateInfluence,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

var _ Runner = (*Engine)(nil)

// Run executes the game loop until a winner is found or the move limit is hit.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Seed:           e.seed,
		Players:        e.State.NumPlayers(),
		StartingPlayer: e.State.Player(e.State.Active()).ID,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("game with seed %d starting, %d players", e.seed, gameMetric.Players)

	for step := 1; !e.State.IsTerminal() && step <= e.maxMoves; step++ {
		seat := e.State.Decider()
		phase := e.State.Phase()
		choices := e.State.LegalChoices()

		start := time.Now()
		choice := e.Agents[seat].Choose(e.State.View(seat), choices)
		duration := time.Since(start)

		if err := e.State.Apply(choice); err != nil {
			fallback := choices[0]
			log.Warn().Err(err).Msgf("seat %d chose %s, playing %s instead", seat, choice, fallback)
			if err := e.State.Apply(fallback); err != nil {
				panic(fmt.Sprintf("first legal choice %s was refused: %v", fallback, err))
			}
			choice = fallback
		}
		log.Debug().Msgf("step %d %s: %s", step, phase, choice)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   seat,
			Phase:    phase.String(),
			Choices:  len(choices),
			Choice:   choice.String(),
			Duration: duration,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Turns = e.State.Turn()

	winner, ok := e.State.Winner()
	if ok {
		gameMetric.Winner = winner
		log.Debug().Msgf("game with seed %d won by %s after %d moves", e.seed, winner, gameMetric.TotalMoves)
	} else {
		gameMetric.Truncated = true
		gameMetric.Leader = e.leader()
		log.Info().Msgf("game with seed %d stopped after %d moves, %s leads", e.seed, gameMetric.TotalMoves, gameMetric.Leader)
	}
	return winner, gameMetric, moveMetrics
}

// leader is the live player whose own view evaluates best.
func (e *Engine) leader() string {
	best, score := "", -2.0
	for seat, p := range e.State.Players() {
		if p.Eliminated() {
			continue
		}
		if s := e.evaluate(e.State.View(seat)); s > score {
			best, score = p.ID, s
		}
	}
	return best
}
