package agent

import (
	"slices"

	"coup/game"
)

type scripted struct {
	script []game.Choice
	next   int
}

// NewScripted replays script in order. Whenever the next scripted choice is not
// on offer, or the script has run out, it takes the first legal choice instead.
func NewScripted(script ...game.Choice) Agent {
	return &scripted{script: script}
}

func (s *scripted) Choose(_ game.View, choices []game.Choice) game.Choice {
	if s.next < len(s.script) {
		c := s.script[s.next]
		if i := slices.IndexFunc(choices, c.Equal); i >= 0 {
			s.next++
			return choices[i]
		}
	}
	return choices[0]
}
