// Package deck implements the engine's shuffled 52-card deck, drawn from
// an explicitly-seeded RNG so a (seed, actions) pair always replays to the
// same cards.
package deck

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-rl-engine/card"
)

// Deck is a shuffled stack of cards; Draw consumes from the top.
type Deck struct {
	cards []card.Card
	next  int
	rng   *rand.Rand
}

// New builds a freshly shuffled 52-card deck using rng. rng must be
// non-nil: the engine never falls back to process-global randomness.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("deck: rng must not be nil")
	}
	d := &Deck{cards: make([]card.Card, 52), rng: rng}
	for i := 0; i < 52; i++ {
		d.cards[i] = card.Card(i)
	}
	d.Shuffle()
	return d
}

// Shuffle resets the draw cursor and re-shuffles in place (Fisher-Yates).
func (d *Deck) Shuffle() {
	d.next = 0
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the next n cards from the top of the deck.
func (d *Deck) Draw(n int) []card.Card {
	if d.next+n > len(d.cards) {
		panic("deck: draw exceeds remaining cards")
	}
	out := append([]card.Card(nil), d.cards[d.next:d.next+n]...)
	d.next += n
	return out
}

// DrawOne draws a single card.
func (d *Deck) DrawOne() card.Card {
	return d.Draw(1)[0]
}

// Remaining returns an independent copy of the cards not yet drawn, in
// their current (shuffled) order — used by the equity estimator to sample
// over truly-unseen cards.
func (d *Deck) Remaining() []card.Card {
	return append([]card.Card(nil), d.cards[d.next:]...)
}

// RemainingCount reports how many cards are left to draw.
func (d *Deck) RemainingCount() int {
	return len(d.cards) - d.next
}
