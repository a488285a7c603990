package agent

import (
	"math"
	"slices"

	"coup/game"

	"golang.org/x/exp/rand"
)

// Weigher scores a choice from the decider's point of view. Scores must be positive.
type Weigher func(view game.View, choice game.Choice) float64

type weighted struct {
	rng         *rand.Rand
	temperature float64
	weigh       Weigher
}

// NewWeighted samples choices in proportion to their weights raised to
// 1/temperature. Low temperatures approach the best choice, high ones uniform play.
func NewWeighted(seed uint64, temperature float64, weigh Weigher) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &weighted{rng: rand.New(rand.NewSource(seed)), temperature: temperature, weigh: weigh}
}

func (w *weighted) Choose(view game.View, choices []game.Choice) game.Choice {
	weights := make([]float64, len(choices))
	for i, c := range choices {
		weights[i] = w.weigh(view, c)
	}
	return choices[sample(w.rng, adjustTemperature(weights, w.temperature))]
}

func adjustTemperature(weights []float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(weights))
	for i, weight := range weights {
		prob := math.Pow(weight, exponent)
		sum += prob
		policy[i] = prob
	}
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(rng *rand.Rand, policy []float64) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // rounding
}

// Truthful prefers claims backed by the cards in hand, challenges claims the
// observer can prove impossible, and reveals a proving card when it has one.
func Truthful(view game.View, c game.Choice) float64 {
	rules := view.Rules
	switch c.Kind {
	case game.ChooseAction:
		rule, _ := rules.Action(c.Action)
		weight := 1.0
		if rule.Effect.Kill {
			weight = 3
		}
		claims := rules.ClaimRoles(c.Action)
		if len(claims) > 0 && !holdsAny(view.Hand, claims) {
			weight *= 0.1
		}
		return weight
	case game.ChooseBlock:
		if slices.Contains(view.Hand, c.Role) {
			return 4
		}
		return 0.2
	case game.ChooseChallenge:
		claims := claimedRoles(view)
		if len(claims) > 0 && allAccountedFor(view, claims) {
			return 20
		}
		return 0.25
	case game.ChooseReveal:
		if view.Phase == game.ProvingClaim && slices.Contains(claimedRoles(view), c.Role) {
			return 50
		}
		return 1
	}
	return 1
}

// claimedRoles lists the roles that would back the claim currently under consideration.
func claimedRoles(view game.View) []game.Role {
	a := view.Pending
	if a == nil {
		return nil
	}
	if a.Blocked() {
		return []game.Role{a.BlockRole}
	}
	return view.Rules.ClaimRoles(a.Kind)
}

func holdsAny(hand, roles []game.Role) bool {
	for _, r := range roles {
		if slices.Contains(hand, r) {
			return true
		}
	}
	return false
}

// allAccountedFor reports whether every copy of every claimed role is visible
// to the observer, in hand or face up, so the claim must be a bluff.
func allAccountedFor(view game.View, roles []game.Role) bool {
	for _, role := range roles {
		seen := 0
		for _, r := range view.Hand {
			if r == role {
				seen++
			}
		}
		for _, p := range view.Players {
			for _, r := range p.Revealed {
				if r == role {
					seen++
				}
			}
		}
		if seen < view.Rules.DeckCopiesPerRole {
			return false
		}
	}
	return true
}
