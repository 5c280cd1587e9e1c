package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubRNG replays scripted values. Once a script runs out, Intn and Float64
// return 0. Shuffle keeps the current order.
type stubRNG struct {
	ints   []int
	floats []float64
}

func (s *stubRNG) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *stubRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *stubRNG) Shuffle(n int, swap func(i, j int)) {}

func newTestBoard() (*Board, *stubRNG) {
	rng := &stubRNG{}
	b := NewBoard(NewPlayer("Human", StartingHP), NewPlayer("Computer", StartingHP), rng)
	return b, rng
}

func newTestEngine() (*Engine, *stubRNG) {
	b, rng := newTestBoard()
	return NewEngine(b, rng, nil), rng
}

func neutral(name string, maxHP int, ap AP) *Card {
	return NewCard(name, CardTypeNeutral, 1, maxHP, ap)
}

func typed(name string, t CardType, maxHP int, ap AP) *Card {
	return NewCard(name, t, 1, maxHP, ap)
}

// give assigns a card to a player's hand without going through the deck.
func give(p *Player, card *Card) *Card {
	card.Owner = p
	p.AddToHand(card)
	return card
}

// put gives a card to p and places it, failing the test if placement fails.
func put(t *testing.T, b *Board, p *Player, card *Card, row, col int) *Card {
	t.Helper()
	give(p, card)
	placed, err := b.PlaceCard(card, row, col)
	require.NoError(t, err)
	require.True(t, placed, "cell (%d,%d) should be empty", row, col)
	return card
}

// fillerDeck returns n plain cards for matches that only need bodies.
func fillerDeck(n int) []*Card {
	cards := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, neutral(fmt.Sprintf("Filler %d", i+1), 10, AP{Upper: 2, Lower: 2, Left: 2, Right: 2}))
	}
	return cards
}

// firstEmptyController places the first hand card on the first empty cell.
type firstEmptyController struct {
	moves int
}

func (c *firstEmptyController) ChooseMove(ctx context.Context, board *Board, player *Player) (Move, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 || player.HandCount() == 0 {
		return Move{}, fmt.Errorf("%w: no move available", ErrInvalidState)
	}
	c.moves++
	return Move{Card: player.Hand[0], Row: cells[0][0], Col: cells[0][1]}, nil
}

// scriptedController replays fixed cells, always with the first hand card.
type scriptedController struct {
	t     *testing.T
	cells [][2]int
	pos   int
}

func (c *scriptedController) ChooseMove(ctx context.Context, board *Board, player *Player) (Move, error) {
	if c.pos >= len(c.cells) {
		c.t.Fatalf("scripted controller ran out of moves at turn %d", board.Turn())
	}
	cell := c.cells[c.pos]
	c.pos++
	return Move{Card: player.Hand[0], Row: cell[0], Col: cell[1]}, nil
}
