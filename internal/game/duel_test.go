package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/cardbattle/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules(maxTurns int) Rules {
	return Rules{
		PlayerMaxHP:     30,
		DeckSize:        20,
		InitialHandSize: 5,
		ZoneChance:      0,
		MaxTurns:        maxTurns,
	}
}

func newTestMatch(t *testing.T, d Difficulty, humanFirst bool, rules Rules) (*Match, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	m, err := NewMatch(MatchConfig{
		Difficulty: d,
		Deck:       fillerDeck(rules.DeckSize),
		Rules:      rules,
		Logger:     logger,
		Seed:       99,
		HumanFirst: &humanFirst,
	})
	require.NoError(t, err)
	return m, logger
}

func TestNewMatch_Validation(t *testing.T) {
	_, err := NewMatch(MatchConfig{Difficulty: DifficultyEasy, Deck: fillerDeck(9)})
	assert.ErrorIs(t, err, ErrInvalidArgument, "deck smaller than two opening hands")

	bad := DefaultRules()
	bad.ZoneChance = 1.5
	_, err = NewMatch(MatchConfig{Difficulty: DifficultyEasy, Deck: fillerDeck(20), Rules: bad})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewMatch(MatchConfig{Difficulty: Difficulty(-1), Deck: fillerDeck(20)})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	m, err := NewMatch(MatchConfig{Difficulty: DifficultyEasy, Deck: fillerDeck(20)})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, DefaultRules(), m.Rules())
	assert.Equal(t, "Human", m.Board.Human.Name)
	assert.Equal(t, "Computer", m.Board.Computer.Name)
	assert.False(t, m.NeedsHumanMove(), "not started")
}

func TestMatch_StartHumanFirst(t *testing.T) {
	m, logger := newTestMatch(t, DifficultyMedium, true, testRules(50))
	require.NoError(t, m.Start())

	b := m.Board
	assert.True(t, m.HumanFirst())
	assert.True(t, m.NeedsHumanMove())
	assert.Equal(t, 5, b.Human.HandCount())
	assert.Equal(t, 5, b.Computer.HandCount())
	assert.Equal(t, 10, b.DeckCount())
	assert.Len(t, b.EmptyCells(), CellCount, "computer waits for the human")
	assert.Equal(t, 30, b.Human.HP)

	assert.Len(t, logger.EventsOfType(log.EventDraw), 10)
	assert.Len(t, logger.EventsOfType(log.EventNewTurn), 1)
}

func TestMatch_StartComputerFirst(t *testing.T) {
	m, _ := newTestMatch(t, DifficultyHard, false, testRules(50))
	require.NoError(t, m.Start())

	b := m.Board
	assert.False(t, m.HumanFirst())
	assert.True(t, m.NeedsHumanMove())
	assert.Len(t, b.CardsOf(b.Computer), 1, "computer already placed")
	assert.Equal(t, 5, b.Computer.HandCount(), "and drew a replacement")
}

func TestMatch_HumanMoveRound(t *testing.T) {
	m, logger := newTestMatch(t, DifficultyMedium, true, testRules(50))
	require.NoError(t, m.Start())
	b := m.Board

	assert.ErrorIs(t, m.HumanMove(nil), ErrInvalidArgument, "cannot pass while a placement is possible")

	card := b.Human.Hand[0]
	require.NoError(t, m.HumanMove(&Move{Card: card, Row: 0, Col: 0}))

	got, _ := b.CardAt(0, 0)
	assert.Same(t, card, got)
	assert.Equal(t, 5, b.Human.HandCount(), "human drew after placing")
	assert.Len(t, b.CardsOf(b.Computer), 1)
	assert.Equal(t, 2, b.Turn(), "combat ran")
	assert.True(t, m.NeedsHumanMove())

	err := m.HumanMove(&Move{Card: b.Human.Hand[0], Row: 0, Col: 0})
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Equal(t, 2, b.Turn(), "rejected move leaves the round unchanged")
	assert.Equal(t, 5, b.Human.HandCount())

	err = m.HumanMove(&Move{Card: b.Human.Hand[0], Row: 9, Col: 0})
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.NotEmpty(t, logger.EventsOfType(log.EventPlace))
}

func TestMatch_HumanMoveRejectsCardOutsideHand(t *testing.T) {
	m, logger := newTestMatch(t, DifficultyMedium, true, testRules(50))
	require.NoError(t, m.Start())
	b := m.Board
	humanHand := append([]*Card(nil), b.Human.Hand...)
	computerHand := append([]*Card(nil), b.Computer.Hand...)
	deck := b.DeckCount()
	events := logger.Len()

	stolen := b.Computer.Hand[0]
	err := m.HumanMove(&Move{Card: stolen, Row: 4, Col: 4})
	assert.ErrorIs(t, err, ErrInvalidState, "opponent's card")

	stray := NewCard("Stray Imp", CardTypeNeutral, 1, 10, AP{Upper: 1})
	stray.Owner = b.Human
	err = m.HumanMove(&Move{Card: stray, Row: 4, Col: 4})
	assert.ErrorIs(t, err, ErrInvalidState, "card owned by the human but never dealt")

	assert.Same(t, b.Computer, stolen.Owner)
	assert.Equal(t, humanHand, b.Human.Hand)
	assert.Equal(t, computerHand, b.Computer.Hand)
	assert.Equal(t, deck, b.DeckCount())
	assert.Len(t, b.EmptyCells(), CellCount)
	assert.Equal(t, 1, b.Turn())
	assert.Equal(t, events, logger.Len(), "nothing logged")
	assert.True(t, m.NeedsHumanMove())

	require.NoError(t, m.HumanMove(&Move{Card: b.Human.Hand[0], Row: 4, Col: 4}))
	assert.Equal(t, 2, b.Turn())
}

func TestMatch_TurnLimitIsTie(t *testing.T) {
	m, logger := newTestMatch(t, DifficultyEasy, true, testRules(1))
	require.NoError(t, m.Start())

	require.NoError(t, m.HumanMove(&Move{Card: m.Board.Human.Hand[0], Row: 2, Col: 2}))
	assert.True(t, m.Over())
	assert.False(t, m.NeedsHumanMove())
	assert.Equal(t, OutcomeTie, m.Outcome())
	assert.Contains(t, m.Result(), "turn limit")
	assert.Len(t, logger.EventsOfType(log.EventTurnLimit), 1)

	assert.ErrorIs(t, m.HumanMove(nil), ErrInvalidState)
}

func TestMatch_WinnerCheck(t *testing.T) {
	m, logger := newTestMatch(t, DifficultyEasy, true, testRules(50))
	require.NoError(t, m.Start())
	m.Board.Computer.HP = 0

	require.NoError(t, m.HumanMove(&Move{Card: m.Board.Human.Hand[0], Row: 2, Col: 2}))
	assert.True(t, m.Over())
	assert.Equal(t, OutcomeHumanWins, m.Outcome())
	wins := logger.EventsOfType(log.EventWin)
	require.Len(t, wins, 1)
	assert.Equal(t, "Human", wins[0].Player)
}

func TestMatch_RunToCompletion(t *testing.T) {
	for _, d := range allDifficulties {
		t.Run(d.String(), func(t *testing.T) {
			m, logger := newTestMatch(t, d, false, testRules(60))
			ctrl := &firstEmptyController{}

			outcome, err := m.Run(context.Background(), ctrl)
			defer func() {
				if t.Failed() {
					t.Logf("event log:\n%s", log.FormatAll(logger.Events()))
				}
			}()
			require.NoError(t, err)
			assert.True(t, m.Over())
			assert.NotEqual(t, OutcomeNone, outcome)
			assert.Equal(t, outcome, m.Outcome())
			assert.NotEmpty(t, m.Result())
			assert.Positive(t, ctrl.moves)
			assert.LessOrEqual(t, m.Board.Turn(), 61)
			assert.NotEmpty(t, logger.EventsOfType(log.EventAttack))
		})
	}
}

func TestMatch_RunRetriesOccupiedCell(t *testing.T) {
	m, _ := newTestMatch(t, DifficultyMedium, true, testRules(2))
	ctrl := &scriptedController{t: t, cells: [][2]int{{0, 0}, {0, 0}, {4, 4}}}

	_, err := m.Run(context.Background(), ctrl)
	require.NoError(t, err)
	assert.Equal(t, 3, ctrl.pos)

	got, _ := m.Board.CardAt(4, 4)
	require.NotNil(t, got)
	assert.Same(t, m.Board.Human, got.Owner)
}

func TestMatch_RunHonorsContext(t *testing.T) {
	m, _ := newTestMatch(t, DifficultyEasy, true, testRules(50))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Run(ctx, &firstEmptyController{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatch_DeterministicWithSeed(t *testing.T) {
	play := func() []string {
		logger := log.NewMemoryLogger()
		m, err := NewMatch(MatchConfig{
			Difficulty: DifficultyEasy,
			Deck:       fillerDeck(20),
			Rules:      testRules(40),
			Logger:     logger,
			Seed:       1234,
		})
		require.NoError(t, err)
		_, err = m.Run(context.Background(), &firstEmptyController{})
		require.NoError(t, err)

		var lines []string
		for _, e := range logger.Events() {
			lines = append(lines, log.FormatEvent(e))
		}
		return lines
	}
	assert.Equal(t, play(), play())
}

func TestMatch_RestartReusesDeck(t *testing.T) {
	m, _ := newTestMatch(t, DifficultyEasy, true, testRules(3))
	_, err := m.Run(context.Background(), &firstEmptyController{})
	require.NoError(t, err)
	require.True(t, m.Over())

	require.NoError(t, m.Start())
	b := m.Board
	assert.False(t, m.Over())
	assert.Equal(t, OutcomeNone, m.Outcome())
	assert.Equal(t, 1, b.Turn())
	assert.Equal(t, 30, b.Human.HP)
	assert.Equal(t, 30, b.Computer.HP)
	assert.Equal(t, 5, b.Human.HandCount())
	assert.Equal(t, 10, b.DeckCount())
	assert.Zero(t, b.DiscardCount())
}
