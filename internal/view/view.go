// Package view builds the JSON-friendly snapshots shown to frontends.
package view

import (
	"github.com/peterkuimelis/cardbattle/internal/game"
	"github.com/peterkuimelis/cardbattle/internal/log"
)

// StateView is the match state from one player's perspective.
type StateView struct {
	MatchID      string                                   `json:"match_id,omitempty"`
	Turn         int                                      `json:"turn"`
	MaxTurns     int                                      `json:"max_turns,omitempty"`
	Difficulty   string                                   `json:"difficulty"`
	You          PlayerView                               `json:"you"`
	Opponent     PlayerView                               `json:"opponent"`
	Grid         [game.BoardSize][game.BoardSize]CellView `json:"grid"`
	DeckCount    int                                      `json:"deck_count"`
	DiscardCount int                                      `json:"discard_count"`
	Over         bool                                     `json:"over"`
	Outcome      string                                   `json:"outcome,omitempty"`
	Result       string                                   `json:"result,omitempty"`
}

// PlayerView shows one contestant.
type PlayerView struct {
	Name      string     `json:"name"`
	HP        int        `json:"hp"`
	MaxHP     int        `json:"max_hp"`
	HandCount int        `json:"hand_count"`
	Hand      []CardView `json:"hand,omitempty"` // only for "you"
}

// CellView describes a single grid cell.
type CellView struct {
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	Zone string    `json:"zone,omitempty"`
	Card *CardView `json:"card,omitempty"`
}

// CardView describes a card in a hand or on the grid.
type CardView struct {
	Index        int    `json:"index,omitempty"` // 1-based hand position
	Name         string `json:"name"`
	Type         string `json:"type"`
	Level        int    `json:"level"`
	HP           int    `json:"hp"`
	MaxHP        int    `json:"max_hp"`
	Upper        int    `json:"upper"`
	Lower        int    `json:"lower"`
	Left         int    `json:"left"`
	Right        int    `json:"right"`
	Owner        string `json:"owner,omitempty"`
	Mine         bool   `json:"mine,omitempty"` // owned by the viewing player
	Contaminated int    `json:"contaminated,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  string `json:"player,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// Card creates a CardView. index is the 1-based hand position, or 0 on the grid.
func Card(c *game.Card, index int) CardView {
	cv := CardView{
		Index:        index,
		Name:         c.Name,
		Type:         c.Type.String(),
		Level:        c.Level,
		HP:           c.HP,
		MaxHP:        c.MaxHP,
		Upper:        c.AP.Upper,
		Lower:        c.AP.Lower,
		Left:         c.AP.Left,
		Right:        c.AP.Right,
		Contaminated: c.ContaminatedTurnsLeft,
	}
	if c.Owner != nil {
		cv.Owner = c.Owner.Name
	}
	return cv
}

// BuildStateView creates a StateView of the board as seen by me.
func BuildStateView(b *game.Board, me *game.Player) *StateView {
	opp := b.Computer
	if me == b.Computer {
		opp = b.Human
	}

	sv := &StateView{
		Turn:         b.Turn(),
		Difficulty:   b.Difficulty.String(),
		You:          playerView(me, true),
		Opponent:     playerView(opp, false),
		DeckCount:    b.DeckCount(),
		DiscardCount: b.DiscardCount(),
	}
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			cv := CellView{Row: row, Col: col}
			if z, _ := b.ZoneAt(row, col); z != game.ZoneNone {
				cv.Zone = z.String()
			}
			if c, _ := b.CardAt(row, col); c != nil {
				card := Card(c, 0)
				card.Mine = c.Owner == me
				cv.Card = &card
			}
			sv.Grid[row][col] = cv
		}
	}
	return sv
}

// BuildMatchView creates a StateView of a match from the human's perspective.
func BuildMatchView(m *game.Match) *StateView {
	sv := BuildStateView(m.Board, m.Board.Human)
	sv.MatchID = m.ID
	sv.MaxTurns = m.Rules().MaxTurns
	sv.Over = m.Over()
	if sv.Over {
		sv.Outcome = m.Outcome().String()
		sv.Result = m.Result()
	}
	return sv
}

func playerView(p *game.Player, isYou bool) PlayerView {
	pv := PlayerView{
		Name:      p.Name,
		HP:        p.HP,
		MaxHP:     p.MaxHP,
		HandCount: p.HandCount(),
	}
	if isYou {
		for i, c := range p.Hand {
			card := Card(c, i+1)
			card.Mine = true
			pv.Hand = append(pv.Hand, card)
		}
	}
	return pv
}

// Events converts logged events to EventViews.
func Events(events []log.GameEvent) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Turn:    e.Turn,
			Phase:   e.Phase,
			Player:  e.Player,
			Type:    e.Type.String(),
			Card:    e.Card,
			Details: e.Details,
		})
	}
	return views
}
