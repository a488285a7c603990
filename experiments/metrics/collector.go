package metrics

import (
	"sync/atomic"
	"time"
)

type AgentConfig struct {
	ID          int
	Kind        string // random or truthful
	Temperature float64
}

// MoveMetric describes one decision of a game.
type MoveMetric struct {
	Step     int
	Player   int // seat
	Phase    string
	Choices  int // number of legal choices offered
	Choice   string
	Duration time.Duration
}

type GameMetric struct {
	Seed           uint64
	Players        int
	StartingPlayer string
	Winner         string // empty when the game was cut off
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Turns          int
	Truncated      bool
	Leader         string // best evaluated player when the game was cut off
}

// BatchMetric summarizes a batch of games played over a worker pool.
type BatchMetric struct {
	Goroutines int
	Duration   time.Duration
	Games      int
	Truncated  int
	Decisions  int
}

// Collector counts games and decisions across goroutines.
type Collector interface {
	Start(goroutines int)
	AddGame(truncated bool)
	AddDecisions(n int)
	Complete() BatchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	games      atomic.Int32
	truncated  atomic.Int32
	decisions  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
}

func (m *collector) AddGame(truncated bool) {
	m.games.Add(1)
	if truncated {
		m.truncated.Add(1)
	}
}

func (m *collector) AddDecisions(n int) {
	m.decisions.Add(int64(n))
}

func (m *collector) Complete() BatchMetric {
	return BatchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Games:      int(m.games.Load()),
		Truncated:  int(m.truncated.Load()),
		Decisions:  int(m.decisions.Load()),
	}
}
