package game

import (
	"fmt"
	"math"

	"github.com/peterkuimelis/cardbattle/internal/log"
)

// AI places cards for the computer player. It keeps no state between turns
// besides its difficulty and RNG.
type AI struct {
	board      *Board
	difficulty Difficulty
	rng        RNG
	logger     log.EventLogger
}

// NewAI creates an AI for the board's computer player.
func NewAI(board *Board, difficulty Difficulty, rng RNG, logger log.EventLogger) (*AI, error) {
	if !difficulty.valid() {
		return nil, fmt.Errorf("%w: invalid difficulty %d", ErrInvalidArgument, int(difficulty))
	}
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	board.Difficulty = difficulty
	return &AI{board: board, difficulty: difficulty, rng: rng, logger: logger}, nil
}

// Difficulty returns the policy the AI plays with.
func (ai *AI) Difficulty() Difficulty {
	return ai.difficulty
}

// ComputerTurn places one card for the computer and then draws one card
// (when the deck still has cards). The board must have an empty cell and the
// computer's hand must not be empty.
func (ai *AI) ComputerTurn() (Move, error) {
	b := ai.board
	me := b.Computer
	if b.IsFull() {
		return Move{}, fmt.Errorf("%w: board is full", ErrInvalidState)
	}
	if me.HandCount() == 0 {
		return Move{}, fmt.Errorf("%w: %s has no cards in hand", ErrInvalidState, me.Name)
	}

	var mv Move
	var err error
	if ai.difficulty == DifficultyEasy {
		mv, err = ai.placeRandom()
	} else {
		mv, err = ai.placeBest()
	}
	if err != nil {
		return Move{}, err
	}
	logPlacement(ai.logger, b, me, mv)

	if b.DeckCount() > 0 {
		card, err := b.DrawCard(me)
		if err != nil {
			return mv, err
		}
		ai.logger.Log(log.NewDrawEvent(b.Turn(), log.PhasePlacement, me.Name, card.Name))
	}
	return mv, nil
}

// placeRandom retries random (cell, card) pairs until a placement succeeds.
func (ai *AI) placeRandom() (Move, error) {
	b := ai.board
	hand := b.Computer.Hand
	for {
		slot := ai.rng.Intn(CellCount)
		card := hand[ai.rng.Intn(len(hand))]
		row, col := slot/BoardSize, slot%BoardSize
		placed, err := b.PlaceCard(card, row, col)
		if err != nil {
			return Move{}, err
		}
		if placed {
			return Move{Card: card, Row: row, Col: col}, nil
		}
	}
}

// placeBest places the highest scoring (cell, card) pair.
func (ai *AI) placeBest() (Move, error) {
	mv, ok := ai.BestMove()
	if !ok {
		return Move{}, fmt.Errorf("%w: no legal move", ErrInvalidState)
	}
	placed, err := ai.board.PlaceCard(mv.Card, mv.Row, mv.Col)
	if err != nil {
		return Move{}, err
	}
	if !placed {
		return Move{}, fmt.Errorf("%w: chosen cell (%d,%d) is occupied", ErrInvalidState, mv.Row, mv.Col)
	}
	return mv, nil
}

// BestMove scans every empty cell (row-major) and every hand card (hand order)
// and returns the pair with the strictly greatest Score; ties keep the first found.
func (ai *AI) BestMove() (Move, bool) {
	b := ai.board
	best := Move{}
	bestScore := math.MinInt
	found := false
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.card(row, col) != nil {
				continue
			}
			for _, card := range b.Computer.Hand {
				score := ai.Score(card, row, col)
				if score > bestScore {
					best = Move{Card: card, Row: row, Col: col}
					bestScore = score
					found = true
				}
			}
		}
	}
	return best, found
}

// Score rates placing card at (row, col) for the AI's difficulty. Medium scores
// damage given minus damage taken; Hard adds the card's unwasted potential.
// Easy does not score moves and uses the Medium formula here.
func (ai *AI) Score(card *Card, row, col int) int {
	given, taken := ai.Exchange(card, row, col)
	score := given - taken
	if ai.difficulty == DifficultyHard {
		score += ai.Potential(card, row, col)
	}
	return score
}

// Exchange previews one combat sweep for card at (row, col). For each enemy
// neighbor, given adds min(card's facing AP, enemy HP) and taken adds
// min(enemy's facing AP, card's MaxHP).
func (ai *AI) Exchange(card *Card, row, col int) (given, taken int) {
	me := ai.board.Computer
	for _, side := range combatSides {
		enemy, ok := ai.board.Neighbor(row, col, side)
		if !ok || enemy == nil || enemy.Owner == me {
			continue
		}
		given += min(card.AP.Get(side), enemy.HP)
		taken += min(enemy.AP.Get(side.Opposite()), card.MaxHP)
	}
	return given, taken
}

// Potential is the sum of card's AP minus every side that faces the board edge
// or a friendly card, i.e. attack that could never land.
func (ai *AI) Potential(card *Card, row, col int) int {
	me := ai.board.Computer
	potential := card.AP.Sum()
	for _, side := range combatSides {
		neighbor, ok := ai.board.Neighbor(row, col, side)
		if !ok || (neighbor != nil && neighbor.Owner == me) {
			potential -= card.AP.Get(side)
		}
	}
	return potential
}
