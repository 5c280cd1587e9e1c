package game

import (
	"fmt"

	"github.com/peterkuimelis/cardbattle/internal/log"
)

const (
	// impairedAidThreshold: aid fires when a uniform draw exceeds it (20% chance).
	impairedAidThreshold = 0.8
	// ChargedLinkBonus is added to all four AP of both linked Charged cards.
	ChargedLinkBonus = 2
)

// ApplyImpairedBonus gives every Impaired card on the grid a 20% chance of aid:
// an unowned card is drawn from the deck, half its MaxHP and half of each of its
// current AP are added to the Impaired card, and the donor goes back to the
// bottom of the deck. Returns true if any aid happened. Aid is skipped while
// the deck is empty.
func (e *Engine) ApplyImpairedBonus() bool {
	b := e.Board
	happened := false
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			card := b.card(row, col)
			if card == nil || card.Type != CardTypeImpaired {
				continue
			}
			if e.rng.Float64() <= impairedAidThreshold {
				continue
			}
			donor, err := b.DrawCard(nil)
			if err != nil {
				continue
			}
			card.HP += donor.MaxHP / 2
			card.AP = card.AP.Plus(donor.AP.Scale(1, 2))
			b.AddCardToDeck(donor)
			happened = true
			e.log(log.NewImpairedAidEvent(b.Turn(), card.Owner.Name, card.Name, donor.Name))
		}
	}
	return happened
}

// ApplyChargedBonus boosts every pair of orthogonally adjacent Charged cards
// with the same owner by ChargedLinkBonus on all four AP. Each card of a pair
// is visited in turn, so a pair is boosted once from each side per call.
// Returns true if any link fired.
func (e *Engine) ApplyChargedBonus() bool {
	b := e.Board
	happened := false
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			card := b.card(row, col)
			if card == nil || card.Type != CardTypeCharged {
				continue
			}
			for _, side := range combatSides {
				ally, ok := b.Neighbor(row, col, side)
				if !ok || ally == nil || ally.Type != CardTypeCharged || ally.Owner != card.Owner {
					continue
				}
				card.AP = card.AP.AddAll(ChargedLinkBonus)
				ally.AP = ally.AP.AddAll(ChargedLinkBonus)
				happened = true
				e.log(log.NewChargedLinkEvent(b.Turn(), card.Owner.Name, card.Name, ally.Name, ChargedLinkBonus))
			}
		}
	}
	return happened
}

// GenerateZones gives each cell, in row-major order, the given chance of a
// zone; a zone is Hot or Cold with equal probability.
func (e *Engine) GenerateZones(chance float64) {
	b := e.Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if e.rng.Float64() <= 1-chance {
				continue
			}
			zone := ZoneCold
			if e.rng.Intn(2) == 1 {
				zone = ZoneHot
			}
			b.cells[row][col].zone = zone
			e.log(log.NewZoneGeneratedEvent(b.Turn(), zone.String(), row, col))
		}
	}
}

// InitialDraw deals n cards to each player, alternating human then computer.
func (e *Engine) InitialDraw(n int) error {
	b := e.Board
	for i := 0; i < n; i++ {
		for _, p := range []*Player{b.Human, b.Computer} {
			card, err := b.DrawCard(p)
			if err != nil {
				return fmt.Errorf("initial draw for %s: %w", p.Name, err)
			}
			e.log(log.NewDrawEvent(b.Turn(), log.PhaseSetup, p.Name, card.Name))
		}
	}
	return nil
}
