package game

import (
	"errors"
	"fmt"
	"strings"
)

// --- Errors ---

var (
	// ErrInvalidState is returned when an operation's preconditions on board
	// state do not hold (empty deck, empty cell, card not in hand).
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidArgument is returned for malformed inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for grid coordinates outside the board.
	ErrOutOfRange = fmt.Errorf("%w: coordinates out of range", ErrInvalidArgument)

	// ErrCellOccupied is returned by Match when a human move targets an occupied cell.
	ErrCellOccupied = fmt.Errorf("%w: cell is occupied", ErrInvalidArgument)
)

// --- Enums ---

type CardType int

const (
	CardTypeNeutral CardType = iota
	CardTypeDurable
	CardTypeCharged
	CardTypeImpaired
	CardTypeFeral
	CardTypeToxic
	CardTypeHot
	CardTypeCold
)

// AllCardTypes lists every card type in declaration order.
var AllCardTypes = []CardType{
	CardTypeNeutral,
	CardTypeDurable,
	CardTypeCharged,
	CardTypeImpaired,
	CardTypeFeral,
	CardTypeToxic,
	CardTypeHot,
	CardTypeCold,
}

func (ct CardType) String() string {
	switch ct {
	case CardTypeNeutral:
		return "Neutral"
	case CardTypeDurable:
		return "Durable"
	case CardTypeCharged:
		return "Charged"
	case CardTypeImpaired:
		return "Impaired"
	case CardTypeFeral:
		return "Feral"
	case CardTypeToxic:
		return "Toxic"
	case CardTypeHot:
		return "Hot"
	case CardTypeCold:
		return "Cold"
	default:
		return "Unknown"
	}
}

// ParseCardType converts a type name (case-insensitive) to a CardType.
func ParseCardType(s string) (CardType, error) {
	for _, ct := range AllCardTypes {
		if strings.EqualFold(strings.TrimSpace(s), ct.String()) {
			return ct, nil
		}
	}
	return CardTypeNeutral, fmt.Errorf("%w: unknown card type %q", ErrInvalidArgument, s)
}

// Side is one of the four attack directions of a card.
type Side int

const (
	SideUpper Side = iota
	SideLower
	SideLeft
	SideRight
)

// combatSides is the neighbor scan order used by every sweep.
var combatSides = [4]Side{SideUpper, SideLeft, SideRight, SideLower}

func (s Side) String() string {
	switch s {
	case SideUpper:
		return "upper"
	case SideLower:
		return "lower"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return ""
	}
}

// Opposite returns the side facing back from a neighbor.
func (s Side) Opposite() Side {
	switch s {
	case SideUpper:
		return SideLower
	case SideLower:
		return SideUpper
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// offset returns the row/column delta toward the neighbor on this side.
func (s Side) offset() (int, int) {
	switch s {
	case SideUpper:
		return -1, 0
	case SideLower:
		return 1, 0
	case SideLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts "Easy", "Medium" or "Hard" (case-insensitive) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("%w: invalid difficulty %q", ErrInvalidArgument, s)
}

func (d Difficulty) valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// Outcome is the result of the winner check.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHumanWins
	OutcomeComputerWins
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHumanWins:
		return "human_wins"
	case OutcomeComputerWins:
		return "computer_wins"
	case OutcomeTie:
		return "tie"
	default:
		return "in_progress"
	}
}

// --- Zones ---

// Zone is the modifier carried by a cell. ZoneNone means the cell has no zone.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneHot
	ZoneCold
)

func (z Zone) String() string {
	switch z {
	case ZoneHot:
		return "Hot"
	case ZoneCold:
		return "Cold"
	default:
		return ""
	}
}

// Bonus returns the HP and AP a card of the given type ends up with after being
// placed on this zone. Hot scales AP, Cold scales HP: doubled for a matching
// card type, quartered for the opposite type, halved otherwise.
func (z Zone) Bonus(t CardType, hp int, ap AP) (int, AP) {
	switch z {
	case ZoneHot:
		switch t {
		case CardTypeHot:
			return hp, ap.Scale(2, 1)
		case CardTypeCold:
			return hp, ap.Scale(1, 4)
		default:
			return hp, ap.Scale(1, 2)
		}
	case ZoneCold:
		switch t {
		case CardTypeCold:
			return hp * 2, ap
		case CardTypeHot:
			return hp / 4, ap
		default:
			return hp / 2, ap
		}
	}
	return hp, ap
}

// Move is a card placement decision.
type Move struct {
	Card *Card
	Row  int
	Col  int
}

func (m Move) String() string {
	return fmt.Sprintf("%s at (%d,%d)", m.Card, m.Row, m.Col)
}
