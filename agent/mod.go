package agent

import "coup/game"

// Agent is an external decision source. Choose is handed the decider's view and
// the legal choices, which are never empty, and returns one of them.
type Agent interface {
	Choose(view game.View, choices []game.Choice) game.Choice
}
