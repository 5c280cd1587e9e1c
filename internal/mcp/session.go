package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/peterkuimelis/cardbattle/internal/content"
	"github.com/peterkuimelis/cardbattle/internal/game"
	"github.com/peterkuimelis/cardbattle/internal/log"
	"github.com/peterkuimelis/cardbattle/internal/view"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	MatchID     string           `json:"match_id"`
	Events      []view.EventView `json:"events"`
	TotalEvents int              `json:"total_events"` // events logged since start_game
	State       *view.StateView  `json:"state,omitempty"`
	YourMove    bool             `json:"your_move"`
	CanPlace    bool             `json:"can_place"`
	GameOver    bool             `json:"game_over"`
	Outcome     string           `json:"outcome,omitempty"`
	Result      string           `json:"result,omitempty"`
}

// GameSession holds the state of a single MCP game session. The agent plays
// the human seat; the built-in AI plays the computer.
type GameSession struct {
	match   *game.Match
	logger  *log.MemoryLogger
	lastSeq int
}

// NewGameSession generates a deck, creates the match and starts it.
func NewGameSession(difficulty game.Difficulty, seed int64, name string, rulesFile, contentFile string) (*GameSession, error) {
	rules, err := game.LoadRules(rulesFile)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	tables, err := content.LoadTables(contentFile)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	logger := log.NewMemoryLogger()
	gen := content.NewGenerator(tables, game.NewRNG(seed))
	match, err := game.NewMatch(game.MatchConfig{
		HumanName:  name,
		Difficulty: difficulty,
		Deck:       gen.GenerateDeck(rules.DeckSize),
		Rules:      rules,
		Logger:     logger,
		Seed:       seed,
	})
	if err != nil {
		return nil, err
	}
	if err := match.Start(); err != nil {
		return nil, err
	}
	return &GameSession{match: match, logger: logger}, nil
}

// place plays the human's move using a 1-based hand index.
func (s *GameSession) place(cardNum, row, col int) error {
	human := s.match.Board.Human
	if cardNum < 1 || cardNum > human.HandCount() {
		return fmt.Errorf("card must be between 1 and %d", human.HandCount())
	}
	return s.match.HumanMove(&game.Move{Card: human.Hand[cardNum-1], Row: row, Col: col})
}

// pass ends the human's part of the round when no placement is possible.
func (s *GameSession) pass() error {
	return s.match.HumanMove(nil)
}

// drainEvents returns the events logged since the last call.
func (s *GameSession) drainEvents() []view.EventView {
	events := s.logger.EventsSince(s.lastSeq)
	if n := len(events); n > 0 {
		s.lastSeq = events[n-1].Seq
	}
	return view.Events(events)
}

// response builds the tool response for the current state.
func (s *GameSession) response() *ToolResponse {
	m := s.match
	resp := &ToolResponse{
		MatchID:     m.ID,
		Events:      s.drainEvents(),
		TotalEvents: s.logger.Len(),
		State:       view.BuildMatchView(m),
		YourMove:    m.NeedsHumanMove(),
		CanPlace:    m.NeedsHumanMove() && m.HumanCanMove(),
		GameOver:    m.Over(),
	}
	if m.Over() {
		resp.Outcome = m.Outcome().String()
		resp.Result = m.Result()
	}
	return resp
}

// respondJSON marshals a response as indented JSON.
func respondJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
