package game

import (
	"fmt"
	"slices"
	"strings"
)

// PlayerView is the public face of a seat.
type PlayerView struct {
	ID         string
	Seat       int
	Coins      int
	Influence  int    // unrevealed cards
	Revealed   []Role // face-up cards, out of play
	Eliminated bool
}

// View is what one observer knows about the game: their own hidden cards,
// everything public, and nothing else.
type View struct {
	Rules      *RuleSet // a private copy; changing it does not affect the game
	Observer   int // NoPlayer for a spectator
	Phase      Phase
	Turn       int
	Active     int
	Decider    int
	Winner     int
	DeckSize   int
	Players    []PlayerView
	Hand       []Role  // the observer's unrevealed roles
	Pending    *Action // Drawn is only filled in for the exchanging actor
	Responders []int
	History    []Choice // other players' kept and drawn cards are redacted
}

// View projects the state onto what observer can see.
func (gs *GameState) View(observer int) View {
	v := View{
		Rules:      gs.rules.Clone(),
		Observer:   observer,
		Phase:      gs.phase,
		Turn:       gs.turn,
		Active:     gs.active,
		Decider:    gs.Decider(),
		Winner:     gs.winner,
		DeckSize:   gs.deck.Len(),
		Players:    make([]PlayerView, len(gs.players)),
		Responders: slices.Clone(gs.responders),
		History:    make([]Choice, len(gs.history)),
	}
	for seat, p := range gs.players {
		v.Players[seat] = PlayerView{
			ID:         p.ID,
			Seat:       seat,
			Coins:      p.Coins,
			Influence:  p.Influence(),
			Revealed:   p.RevealedRoles(),
			Eliminated: p.Eliminated(),
		}
	}
	if observer >= 0 && observer < len(gs.players) {
		v.Hand = gs.players[observer].Hidden()
	}
	if gs.pending != nil {
		a := gs.pending.copy()
		if observer != a.Actor {
			a.Drawn = nil
		}
		v.Pending = &a
	}
	for i, c := range gs.history {
		c = c.clone()
		if c.Kind == ChooseKeep && c.Player != observer {
			c.Keep = nil
			c.Drawn = nil
		}
		v.History[i] = c
	}
	return v
}

// InfosetKey identifies the observer's information set. Two states the observer
// cannot tell apart produce the same key.
func (v View) InfosetKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "o%d|%s|d%d|", v.Observer, v.Phase, v.Decider)

	writeRoles(&b, v.Hand)
	if v.Pending != nil && len(v.Pending.Drawn) > 0 {
		b.WriteString("+")
		writeRoles(&b, v.Pending.Drawn)
	}

	for _, p := range v.Players {
		fmt.Fprintf(&b, "|%d:%d:%d", p.Seat, p.Coins, p.Influence)
		for _, r := range p.Revealed {
			b.WriteString(":" + string(r))
		}
	}
	fmt.Fprintf(&b, "|deck%d|", v.DeckSize)
	for _, c := range v.History {
		if c.Kind == ChooseKeep && c.Keep == nil {
			fmt.Fprintf(&b, "P%d:Keep;", c.Player)
			continue
		}
		b.WriteString(c.Key())
		if len(c.Drawn) > 0 {
			b.WriteString("+")
			writeRoles(&b, c.Drawn)
		}
		b.WriteByte(';')
	}
	return b.String()
}

// writeRoles writes roles in sorted order so draw order does not split a key.
func writeRoles(b *strings.Builder, roles []Role) {
	roles = slices.Clone(roles)
	slices.Sort(roles)
	for _, r := range roles {
		b.WriteString(string(r))
		b.WriteByte(',')
	}
}
