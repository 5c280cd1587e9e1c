package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/peterkuimelis/cardbattle/internal/log"
)

// Controller supplies the human player's moves (console, MCP, scripted tests).
type Controller interface {
	// ChooseMove picks a card from player's hand and an empty cell.
	ChooseMove(ctx context.Context, board *Board, player *Player) (Move, error)
}

// MatchConfig holds configuration for creating a new match.
type MatchConfig struct {
	HumanName    string
	ComputerName string
	Difficulty   Difficulty
	Deck         []*Card // cards for the shared draw deck
	Rules        Rules   // zero value means DefaultRules()
	Logger       log.EventLogger
	Seed         int64 // RNG seed (0 for random)
	HumanFirst   *bool // skip the opening roll and fix the move order
}

// Match runs a human-vs-computer game on one board. Each round is: bonus
// triggers, first mover's placement, second mover's placement, combat.
type Match struct {
	ID     string
	Board  *Board
	Engine *Engine
	AI     *AI
	Logger log.EventLogger

	rules         Rules
	rng           RNG
	fixedOrder    *bool
	humanFirst    bool
	started       bool
	awaitingHuman bool
	over          bool
	outcome       Outcome
	result        string
}

// NewMatch creates a match from the given config. The deck is loaded onto the
// board; Start deals and begins the first round.
func NewMatch(cfg MatchConfig) (*Match, error) {
	rules := cfg.Rules
	if rules == (Rules{}) {
		rules = DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Deck) < 2*rules.InitialHandSize {
		return nil, fmt.Errorf("%w: deck has %d cards, need at least %d", ErrInvalidArgument, len(cfg.Deck), 2*rules.InitialHandSize)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	humanName := cfg.HumanName
	if humanName == "" {
		humanName = "Human"
	}
	computerName := cfg.ComputerName
	if computerName == "" {
		computerName = "Computer"
	}

	rng := NewRNG(cfg.Seed)
	board := NewBoard(NewPlayer(humanName, rules.PlayerMaxHP), NewPlayer(computerName, rules.PlayerMaxHP), rng)
	for _, card := range cfg.Deck {
		board.AddCardToDeck(card)
	}
	ai, err := NewAI(board, cfg.Difficulty, rng, logger)
	if err != nil {
		return nil, err
	}

	return &Match{
		ID:         uuid.NewString(),
		Board:      board,
		Engine:     NewEngine(board, rng, logger),
		AI:         ai,
		Logger:     logger,
		rules:      rules,
		rng:        rng,
		fixedOrder: cfg.HumanFirst,
	}, nil
}

func (m *Match) log(event log.GameEvent) {
	m.Logger.Log(event)
}

// Rules returns the rule set the match plays with.
func (m *Match) Rules() Rules {
	return m.rules
}

// Start resets the board, generates zones, deals opening hands, settles the
// move order and plays up to the human's first decision. Calling Start again
// begins a fresh game on the same deck.
func (m *Match) Start() error {
	b := m.Board
	b.Reset()
	m.started = true
	m.over = false
	m.outcome = OutcomeNone
	m.result = ""
	m.awaitingHuman = false

	m.log(log.NewShuffleEvent(b.Turn(), b.DeckCount()))
	m.Engine.GenerateZones(m.rules.ZoneChance)
	if err := m.Engine.InitialDraw(m.rules.InitialHandSize); err != nil {
		return err
	}
	m.rollForOrder()
	return m.beginRound()
}

// rollForOrder rolls a d20 for each side; the higher roll (human on a tie)
// gets the advantage of moving second each round.
func (m *Match) rollForOrder() {
	b := m.Board
	if m.fixedOrder != nil {
		m.humanFirst = *m.fixedOrder
		return
	}
	humanRoll := m.rng.Intn(20) + 1
	computerRoll := m.rng.Intn(20) + 1
	m.humanFirst = humanRoll < computerRoll
	if m.humanFirst {
		m.log(log.NewTurnOrderEvent(b.Turn(), b.Human.Name, b.Computer.Name, humanRoll, computerRoll))
	} else {
		m.log(log.NewTurnOrderEvent(b.Turn(), b.Computer.Name, b.Human.Name, computerRoll, humanRoll))
	}
}

// HumanFirst reports whether the human places first each round.
func (m *Match) HumanFirst() bool {
	return m.humanFirst
}

// beginRound applies the bonus triggers and, if the computer moves first,
// its placement. It leaves the match waiting for the human.
func (m *Match) beginRound() error {
	m.log(log.NewTurnEvent(m.Board.Turn()))
	m.Engine.ApplyImpairedBonus()
	m.Engine.ApplyChargedBonus()
	if !m.humanFirst {
		if err := m.computerMove(); err != nil {
			return err
		}
	}
	m.awaitingHuman = true
	return nil
}

func (m *Match) computerMove() error {
	b := m.Board
	if b.IsFull() || b.Computer.HandCount() == 0 {
		return nil
	}
	if _, err := m.AI.ComputerTurn(); err != nil {
		return fmt.Errorf("computer turn: %w", err)
	}
	return nil
}

// NeedsHumanMove reports whether the match is waiting on HumanMove.
func (m *Match) NeedsHumanMove() bool {
	return m.started && !m.over && m.awaitingHuman
}

// HumanCanMove reports whether the human has a legal placement this round.
func (m *Match) HumanCanMove() bool {
	return !m.Board.IsFull() && m.Board.Human.HandCount() > 0
}

// HumanMove plays the human's placement for the round (nil passes, which is
// only allowed when no placement is possible), then the computer's placement if
// it moves second, then combat. It returns once the next human decision is
// pending or the match is over. A card that is not in the human's hand returns
// ErrInvalidState and an occupied target cell returns ErrCellOccupied; both
// leave the match unchanged.
func (m *Match) HumanMove(mv *Move) error {
	if !m.NeedsHumanMove() {
		return fmt.Errorf("%w: not waiting for a human move", ErrInvalidState)
	}
	b := m.Board
	if mv == nil {
		if m.HumanCanMove() {
			return fmt.Errorf("%w: a placement is required", ErrInvalidArgument)
		}
	} else {
		if mv.Card != nil && (mv.Card.Owner != b.Human || !b.Human.InHand(mv.Card)) {
			return fmt.Errorf("%w: %s is not in %s's hand", ErrInvalidState, mv.Card.Name, b.Human.Name)
		}
		placed, err := b.PlaceCard(mv.Card, mv.Row, mv.Col)
		if err != nil {
			return err
		}
		if !placed {
			return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, mv.Row, mv.Col)
		}
		logPlacement(m.Logger, b, b.Human, *mv)
		if b.DeckCount() > 0 {
			card, err := b.DrawCard(b.Human)
			if err != nil {
				return err
			}
			m.log(log.NewDrawEvent(b.Turn(), log.PhasePlacement, b.Human.Name, card.Name))
		}
	}
	m.awaitingHuman = false

	if m.humanFirst {
		if err := m.computerMove(); err != nil {
			return err
		}
	}
	m.Engine.EndTurn()

	if m.checkOver() {
		return nil
	}
	return m.beginRound()
}

// checkOver runs the winner check and the turn limit.
func (m *Match) checkOver() bool {
	b := m.Board
	switch outcome := b.Outcome(); outcome {
	case OutcomeHumanWins:
		m.finish(outcome, fmt.Sprintf("%s wins: %s's HP reached 0", b.Human.Name, b.Computer.Name))
		m.log(log.NewWinEvent(b.Turn(), b.Human.Name, b.Computer.Name+"'s HP reached 0"))
		return true
	case OutcomeComputerWins:
		m.finish(outcome, fmt.Sprintf("%s wins: %s's HP reached 0", b.Computer.Name, b.Human.Name))
		m.log(log.NewWinEvent(b.Turn(), b.Computer.Name, b.Human.Name+"'s HP reached 0"))
		return true
	case OutcomeTie:
		m.finish(outcome, "Tie: both players' HP reached 0")
		m.log(log.NewTieEvent(b.Turn(), "both players' HP reached 0"))
		return true
	}
	if b.Turn() > m.rules.MaxTurns {
		m.finish(OutcomeTie, fmt.Sprintf("Tie: turn limit reached (%d turns)", m.rules.MaxTurns))
		m.log(log.NewTurnLimitEvent(b.Turn(), m.rules.MaxTurns))
		return true
	}
	return false
}

func (m *Match) finish(outcome Outcome, result string) {
	m.over = true
	m.awaitingHuman = false
	m.outcome = outcome
	m.result = result
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.over
}

// Outcome returns the final outcome, or OutcomeNone while in progress.
func (m *Match) Outcome() Outcome {
	return m.outcome
}

// Result returns a human-readable description of how the match ended.
func (m *Match) Result() string {
	return m.result
}

// Run plays the whole match, asking ctrl for every human placement. It starts
// the match if Start has not been called yet.
func (m *Match) Run(ctx context.Context, ctrl Controller) (Outcome, error) {
	if !m.started {
		if err := m.Start(); err != nil {
			return OutcomeNone, err
		}
	}
	for !m.over {
		if err := ctx.Err(); err != nil {
			return OutcomeNone, err
		}
		if !m.HumanCanMove() {
			if err := m.HumanMove(nil); err != nil {
				return OutcomeNone, err
			}
			continue
		}
		mv, err := ctrl.ChooseMove(ctx, m.Board, m.Board.Human)
		if err != nil {
			return OutcomeNone, fmt.Errorf("choose move: %w", err)
		}
		if err := m.HumanMove(&mv); err != nil {
			if errors.Is(err, ErrCellOccupied) {
				continue
			}
			return OutcomeNone, err
		}
	}
	return m.outcome, nil
}
