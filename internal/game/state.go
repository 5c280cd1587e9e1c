package game

import (
	"fmt"
	"slices"
)

const (
	StartingHP = 500
	BoardSize  = 5
	CellCount  = BoardSize * BoardSize
)

// Player represents one contestant.
type Player struct {
	Name  string
	HP    int
	MaxHP int
	Hand  []*Card // insertion-ordered, no duplicates
}

// NewPlayer creates a player at full HP with an empty hand.
func NewPlayer(name string, maxHP int) *Player {
	return &Player{Name: name, HP: maxHP, MaxHP: maxHP}
}

func (p *Player) String() string {
	return p.Name
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// InHand reports whether the exact card is in the hand.
func (p *Player) InHand(card *Card) bool {
	return slices.Contains(p.Hand, card)
}

// AddToHand appends a card to the hand unless it is already there.
func (p *Player) AddToHand(card *Card) {
	if p.InHand(card) {
		return
	}
	p.Hand = append(p.Hand, card)
}

// RemoveFromHand removes a card from the hand. Returns false if it was not there.
func (p *Player) RemoveFromHand(card *Card) bool {
	i := slices.Index(p.Hand, card)
	if i < 0 {
		return false
	}
	p.Hand = slices.Delete(p.Hand, i, i+1)
	return true
}

// SubtractHP lowers the player's HP.
func (p *Player) SubtractHP(n int) {
	p.HP -= n
}

// Reset clears the hand and restores HP.
func (p *Player) Reset() {
	p.Hand = nil
	p.HP = p.MaxHP
}

// --- Board ---

type cell struct {
	card *Card
	zone Zone
}

// Board is the 5x5 grid plus the draw deck, discard pile, turn counter and
// difficulty of a match. A card lives in exactly one of: a hand, the grid,
// the deck or the discard pile.
type Board struct {
	Human      *Player
	Computer   *Player
	Difficulty Difficulty

	cells   [BoardSize][BoardSize]cell
	deck    *Deck
	discard *Deck
	turn    int
}

// NewBoard creates an empty board. The rng drives deck shuffles.
func NewBoard(human, computer *Player, rng RNG) *Board {
	return &Board{
		Human:    human,
		Computer: computer,
		deck:     NewDeck(rng),
		discard:  NewDeck(rng),
		turn:     1,
	}
}

func checkPos(row, col int) error {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return nil
}

// InBounds reports whether (row, col) is a cell of the grid.
func InBounds(row, col int) bool {
	return checkPos(row, col) == nil
}

// CardAt returns the card in a cell, or nil if the cell is empty.
func (b *Board) CardAt(row, col int) (*Card, error) {
	if err := checkPos(row, col); err != nil {
		return nil, err
	}
	return b.cells[row][col].card, nil
}

// ZoneAt returns the zone of a cell (ZoneNone if there is none).
func (b *Board) ZoneAt(row, col int) (Zone, error) {
	if err := checkPos(row, col); err != nil {
		return ZoneNone, err
	}
	return b.cells[row][col].zone, nil
}

// card is the unchecked accessor used by sweeps that only visit valid cells.
func (b *Board) card(row, col int) *Card {
	return b.cells[row][col].card
}

// Neighbor returns the card adjacent to (row, col) on the given side. ok is
// false when that side faces the board edge.
func (b *Board) Neighbor(row, col int, side Side) (card *Card, ok bool) {
	dr, dc := side.offset()
	r, c := row+dr, col+dc
	if !InBounds(r, c) {
		return nil, false
	}
	return b.cells[r][c].card, true
}

// PlaceCard puts a card from its owner's hand onto an empty cell, applying the
// cell's zone bonus first. Returns false (and no error) if the cell is occupied.
func (b *Board) PlaceCard(card *Card, row, col int) (bool, error) {
	if err := checkPos(row, col); err != nil {
		return false, err
	}
	if card == nil {
		return false, fmt.Errorf("%w: nil card", ErrInvalidArgument)
	}
	c := &b.cells[row][col]
	if c.card != nil {
		return false, nil
	}
	if card.Owner == nil || !card.Owner.RemoveFromHand(card) {
		return false, fmt.Errorf("%w: %s is not in its owner's hand", ErrInvalidState, card.Name)
	}
	card.HP, card.AP = c.zone.Bonus(card.Type, card.HP, card.AP)
	c.card = card
	return true, nil
}

// RemoveCard moves the card in a cell to the discard pile and returns it.
func (b *Board) RemoveCard(row, col int) (*Card, error) {
	if err := checkPos(row, col); err != nil {
		return nil, err
	}
	c := &b.cells[row][col]
	if c.card == nil {
		return nil, fmt.Errorf("%w: cell (%d,%d) is empty", ErrInvalidState, row, col)
	}
	card := c.card
	c.card = nil
	b.discard.Add(card)
	return card, nil
}

// DrawCard takes the front card of the deck. If player is non-nil the card is
// assigned to them and added to their hand; otherwise it belongs to nobody.
func (b *Board) DrawCard(player *Player) (*Card, error) {
	card, err := b.deck.Draw()
	if err != nil {
		return nil, err
	}
	if player != nil {
		card.Owner = player
		player.AddToHand(card)
	}
	return card, nil
}

// AddCardToDeck appends a card to the bottom of the deck.
func (b *Board) AddCardToDeck(card *Card) {
	b.deck.Add(card)
}

// SetZone overwrites the zone of a cell. A card already in the cell is not affected.
func (b *Board) SetZone(zone Zone, row, col int) error {
	if err := checkPos(row, col); err != nil {
		return err
	}
	b.cells[row][col].zone = zone
	return nil
}

// IsFull reports whether every cell holds a card.
func (b *Board) IsFull() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col].card == nil {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the unoccupied cells in row-major order.
func (b *Board) EmptyCells() [][2]int {
	var result [][2]int
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col].card == nil {
				result = append(result, [2]int{row, col})
			}
		}
	}
	return result
}

// CardsOf returns the cards a player has on the grid, in row-major order.
func (b *Board) CardsOf(p *Player) []*Card {
	var result []*Card
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if c := b.cells[row][col].card; c != nil && c.Owner == p {
				result = append(result, c)
			}
		}
	}
	return result
}

// Turn returns the current turn number (starting at 1).
func (b *Board) Turn() int {
	return b.turn
}

// IncrementTurn advances the turn counter by one.
func (b *Board) IncrementTurn() {
	b.turn++
}

// DeckCount returns the number of undealt cards.
func (b *Board) DeckCount() int {
	return b.deck.Len()
}

// DiscardCount returns the number of cards in the discard pile.
func (b *Board) DiscardCount() int {
	return b.discard.Len()
}

// Outcome applies the winner check to the players' HP.
func (b *Board) Outcome() Outcome {
	humanAlive := b.Human.HP > 0
	computerAlive := b.Computer.HP > 0
	switch {
	case humanAlive && !computerAlive:
		return OutcomeHumanWins
	case !humanAlive && computerAlive:
		return OutcomeComputerWins
	case !humanAlive && !computerAlive:
		return OutcomeTie
	default:
		return OutcomeNone
	}
}

// Reset empties the grid and zones, returns every card to the deck, resets
// and reshuffles the deck, restores both players and sets the turn to 1.
func (b *Board) Reset() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col].card != nil {
				_, _ = b.RemoveCard(row, col)
			}
			b.cells[row][col].zone = ZoneNone
		}
	}
	for _, p := range []*Player{b.Human, b.Computer} {
		for _, card := range p.Hand {
			b.deck.Add(card)
		}
		p.Reset()
	}
	for !b.discard.IsEmpty() {
		card, _ := b.discard.Draw()
		b.deck.Add(card)
	}
	b.deck.Reset()
	b.turn = 1
}
