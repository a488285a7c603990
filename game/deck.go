package game

import (
	"slices"

	"golang.org/x/exp/rand"
)

// Deck is the court: the face-down cards no player holds. It owns its random
// source, so copying a deck copies the shuffle state with it.
type Deck struct {
	cards []Role
	src   rand.PCGSource
}

// NewDeck builds DeckCopiesPerRole copies of every role and shuffles them with seed.
func NewDeck(rules *RuleSet, seed uint64) *Deck {
	d := &Deck{cards: make([]Role, 0, rules.DeckSize())}
	d.src.Seed(seed)
	for _, r := range rules.Roles {
		for i := 0; i < rules.DeckCopiesPerRole; i++ {
			d.cards = append(d.cards, r.Role)
		}
	}
	d.Shuffle()
	return d
}

func (d *Deck) Shuffle() {
	rand.New(&d.src).Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes the top card. It reports false on an empty deck.
func (d *Deck) Draw() (Role, bool) {
	if len(d.cards) == 0 {
		return "", false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Return puts cards back and reshuffles.
func (d *Deck) Return(cards ...Role) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// Swap returns card to the deck, shuffles and draws a replacement, which may be the same role.
func (d *Deck) Swap(card Role) Role {
	d.Return(card)
	replacement, ok := d.Draw()
	if !ok {
		panic("deck empty right after a card was returned")
	}
	return replacement
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck contents, top card last.
func (d *Deck) Cards() []Role {
	return slices.Clone(d.cards)
}

func (d *Deck) Copy() *Deck {
	return &Deck{cards: slices.Clone(d.cards), src: d.src}
}
