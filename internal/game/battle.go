package game

import (
	"fmt"

	"github.com/peterkuimelis/cardbattle/internal/log"
)

const (
	// ContaminationTurns is how long a Toxic hit keeps damaging its target.
	ContaminationTurns = 5
	// Contamination damage per turn is drawn uniformly from [min, min+spread).
	contaminationMinDamage = 3
	contaminationSpread    = 5
)

// Engine resolves the end-of-round combat and the bonus triggers on a Board.
type Engine struct {
	Board  *Board
	Logger log.EventLogger
	rng    RNG
}

// NewEngine creates an engine for the board. A nil logger records to memory.
func NewEngine(board *Board, rng RNG, logger log.EventLogger) *Engine {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Engine{Board: board, Logger: logger, rng: rng}
}

func (e *Engine) log(event log.GameEvent) {
	e.Logger.Log(event)
}

// EndTurn resolves one round of combat:
//  1. every card hits each orthogonal enemy neighbor with the AP on that side,
//     in row-major order with damage applied immediately; Toxic attackers set
//     the defender's contamination to ContaminationTurns;
//  2. contaminated cards take 3-7 damage and their counter decreases;
//  3. cards at or below 0 HP cost their owner their MaxHP and are discarded;
//  4. the turn counter advances.
func (e *Engine) EndTurn() {
	b := e.Board
	turn := b.Turn()

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			attacker := b.card(row, col)
			if attacker == nil {
				continue
			}
			for _, side := range combatSides {
				defender, ok := b.Neighbor(row, col, side)
				if !ok || defender == nil || defender.Owner == attacker.Owner {
					continue
				}
				damage := attacker.AP.Get(side)
				defender.SubtractHP(damage)
				e.log(log.NewAttackEvent(turn, attacker.Owner.Name, attacker.Name, defender.Name, damage, defender.HP))
				if attacker.Type == CardTypeToxic {
					defender.ContaminatedTurnsLeft = ContaminationTurns
					e.log(log.NewContaminateEvent(turn, attacker.Owner.Name, attacker.Name, defender.Name, ContaminationTurns))
				}
			}
		}
	}

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			card := b.card(row, col)
			if card == nil || !card.Contaminated() {
				continue
			}
			damage := contaminationMinDamage + e.rng.Intn(contaminationSpread)
			card.SubtractHP(damage)
			card.ContaminatedTurnsLeft--
			e.log(log.NewContaminationDamageEvent(turn, card.Owner.Name, card.Name, damage, card.ContaminatedTurnsLeft))
		}
	}

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			card := b.card(row, col)
			if card == nil || card.HP > 0 {
				continue
			}
			owner := card.Owner
			oldHP := owner.HP
			owner.SubtractHP(card.MaxHP)
			// The cell is known to be occupied.
			_, _ = b.RemoveCard(row, col)
			e.log(log.NewDestroyEvent(turn, owner.Name, card.Name))
			e.log(log.NewHPChangeEvent(turn, log.PhaseCombat, owner.Name, oldHP, owner.HP, card.Name+" destroyed"))
		}
	}

	b.IncrementTurn()
}

// logPlacement records a placement and, when the cell carries a zone, the
// stats the card ended up with.
func logPlacement(logger log.EventLogger, b *Board, player *Player, mv Move) {
	turn := b.Turn()
	logger.Log(log.NewPlaceEvent(turn, player.Name, mv.Card.Name, mv.Row, mv.Col))
	if zone := b.cells[mv.Row][mv.Col].zone; zone != ZoneNone {
		logger.Log(log.NewZoneBonusEvent(turn, player.Name, mv.Card.Name, zone.String(),
			fmt.Sprintf("now HP %d, %s", mv.Card.HP, mv.Card.AP)))
	}
}
