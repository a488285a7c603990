package agent

import (
	"coup/game"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom picks uniformly among the legal choices. Not safe for concurrent use.
func NewRandom(seed uint64) Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) Choose(_ game.View, choices []game.Choice) game.Choice {
	return choices[r.rng.Intn(len(choices))]
}
