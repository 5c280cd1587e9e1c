package game

import (
	"fmt"
	"math/rand"
	"time"
)

// RNG is the source of randomness threaded through the board, engine and AI.
// *rand.Rand satisfies it; tests substitute a scripted stub.
type RNG interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRNG returns a seeded generator. A zero seed uses the current time.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Deck is an ordered pile of cards. Draw takes from the front, Add appends to the back.
type Deck struct {
	cards []*Card
	rng   RNG
}

// NewDeck creates an empty deck that shuffles with rng.
func NewDeck(rng RNG) *Deck {
	return &Deck{rng: rng}
}

// Add puts a card at the bottom of the deck.
func (d *Deck) Add(card *Card) {
	d.cards = append(d.cards, card)
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.cards) == 0 {
		return nil, fmt.Errorf("%w: deck is empty", ErrInvalidState)
	}
	card := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return card, nil
}

// Shuffle randomizes the deck order.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the cards in draw order. The slice must not be modified.
func (d *Deck) Cards() []*Card {
	return d.cards
}

// Reset restores every card to its initial state and shuffles.
func (d *Deck) Reset() {
	for _, card := range d.cards {
		card.Reset()
	}
	d.Shuffle()
}
