package game

import (
	"testing"

	"github.com/peterkuimelis/cardbattle/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndTurn_AttackThenDeath: A hits B with its right AP for two rounds; B
// dies on the second and costs its owner its MaxHP.
func TestEndTurn_AttackThenDeath(t *testing.T) {
	e, _ := newTestEngine()
	b := e.Board
	a := put(t, b, b.Human, neutral("A", 10, AP{Upper: 3, Lower: 2, Left: 1, Right: 4}), 0, 0)
	bb := put(t, b, b.Computer, neutral("B", 5, AP{}), 0, 1)

	e.EndTurn()
	assert.Equal(t, 1, bb.HP)
	assert.Equal(t, 10, a.HP)
	assert.Equal(t, 2, b.Turn())
	assert.Equal(t, StartingHP, b.Computer.HP)

	e.EndTurn()
	got, _ := b.CardAt(0, 1)
	assert.Nil(t, got, "B should be removed")
	assert.Equal(t, -3, bb.HP)
	assert.Equal(t, 1, b.DiscardCount())
	assert.Equal(t, StartingHP-5, b.Computer.HP)
	assert.Equal(t, StartingHP, b.Human.HP)
	assert.Equal(t, 3, b.Turn())

	logger := e.Logger.(*log.MemoryLogger)
	destroys := logger.EventsOfType(log.EventDestroy)
	require.Len(t, destroys, 1)
	assert.Equal(t, "B", destroys[0].Card)
	assert.Equal(t, "Computer", destroys[0].Player)
}

func TestEndTurn_FriendlyNeighborsDoNotFight(t *testing.T) {
	e, _ := newTestEngine()
	b := e.Board
	a := put(t, b, b.Human, neutral("A", 10, AP{Right: 9}), 2, 2)
	c := put(t, b, b.Human, neutral("C", 10, AP{Left: 9}), 2, 3)

	e.EndTurn()
	assert.Equal(t, 10, a.HP)
	assert.Equal(t, 10, c.HP)
}

// TestEndTurn_DamageIsImmediate: the attack sweep is not double-buffered, so a
// defender killed mid-sweep still strikes back in the same sweep and both die.
func TestEndTurn_DamageIsImmediate(t *testing.T) {
	e, _ := newTestEngine()
	b := e.Board
	a := put(t, b, b.Human, neutral("A", 4, AP{Lower: 10}), 0, 0)
	d := put(t, b, b.Computer, neutral("D", 6, AP{Upper: 10}), 1, 0)

	e.EndTurn()
	assert.Equal(t, -6, a.HP)
	assert.Equal(t, -4, d.HP)
	assert.Equal(t, StartingHP-4, b.Human.HP)
	assert.Equal(t, StartingHP-6, b.Computer.HP)
	assert.Equal(t, OutcomeNone, b.Outcome())
}

func TestEndTurn_MultipleAttackersStack(t *testing.T) {
	e, _ := newTestEngine()
	b := e.Board
	target := put(t, b, b.Computer, neutral("Target", 100, AP{}), 2, 2)
	put(t, b, b.Human, neutral("N", 10, AP{Lower: 1}), 1, 2)
	put(t, b, b.Human, neutral("W", 10, AP{Right: 2}), 2, 1)
	put(t, b, b.Human, neutral("E", 10, AP{Left: 3}), 2, 3)
	put(t, b, b.Human, neutral("S", 10, AP{Upper: 4}), 3, 2)

	e.EndTurn()
	assert.Equal(t, 90, target.HP)
}

func TestEndTurn_ToxicContamination(t *testing.T) {
	e, rng := newTestEngine()
	b := e.Board
	put(t, b, b.Human, typed("Tox", CardTypeToxic, 10, AP{Right: 1}), 0, 0)
	victim := put(t, b, b.Computer, neutral("Victim", 100, AP{}), 0, 1)

	// Contamination rolls: 3 + 4 = 7, then 3 + 0 = 3.
	rng.ints = []int{4, 0}
	e.EndTurn()
	assert.Equal(t, 100-1-7, victim.HP)
	assert.Equal(t, ContaminationTurns-1, victim.ContaminatedTurnsLeft)

	// A second hit overwrites the counter rather than adding to it.
	e.EndTurn()
	assert.Equal(t, 92-1-3, victim.HP)
	assert.Equal(t, ContaminationTurns-1, victim.ContaminatedTurnsLeft)

	logger := e.Logger.(*log.MemoryLogger)
	assert.Len(t, logger.EventsOfType(log.EventContaminate), 2)
	assert.Len(t, logger.EventsOfType(log.EventContaminationDamage), 2)
}

func TestEndTurn_ContaminationWearsOffAndCanKill(t *testing.T) {
	e, _ := newTestEngine()
	b := e.Board
	sick := put(t, b, b.Computer, neutral("Sick", 9, AP{}), 4, 4)
	sick.ContaminatedTurnsLeft = 2

	// Stub returns 0, so each tick is the minimum of 3.
	e.EndTurn()
	assert.Equal(t, 6, sick.HP)
	e.EndTurn()
	assert.Equal(t, 3, sick.HP)
	assert.False(t, sick.Contaminated())
	e.EndTurn()
	assert.Equal(t, 3, sick.HP, "no damage once the counter is spent")

	sick.ContaminatedTurnsLeft = 1
	e.EndTurn()
	got, _ := b.CardAt(4, 4)
	assert.Nil(t, got)
	assert.Equal(t, StartingHP-9, b.Computer.HP, "contamination deaths cost the full MaxHP")
}

func TestEndTurn_DeterministicReplay(t *testing.T) {
	run := func() (int, int, int, []int) {
		e, rng := newTestEngine()
		b := e.Board
		rng.ints = []int{1, 2, 3, 4, 0, 1, 2, 3, 4, 0, 2, 2}
		put(t, b, b.Human, typed("Tox", CardTypeToxic, 40, AP{Upper: 5, Lower: 6, Left: 7, Right: 8}), 1, 1)
		put(t, b, b.Human, neutral("H2", 30, AP{Upper: 9, Lower: 1, Left: 1, Right: 1}), 3, 3)
		put(t, b, b.Computer, neutral("C1", 35, AP{Upper: 4, Lower: 4, Left: 4, Right: 4}), 1, 2)
		put(t, b, b.Computer, typed("Tox2", CardTypeToxic, 25, AP{Upper: 2, Lower: 2, Left: 2, Right: 2}), 2, 3)
		for i := 0; i < 4; i++ {
			e.EndTurn()
		}
		var hps []int
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				if c := b.card(row, col); c != nil {
					hps = append(hps, c.HP)
				}
			}
		}
		return b.Human.HP, b.Computer.HP, b.Turn(), hps
	}

	// C1 and Tox2 both fall in the third round; H2 keeps ticking in the fourth.
	h1, c1, t1, cards1 := run()
	assert.Equal(t, StartingHP, h1)
	assert.Equal(t, StartingHP-35-25, c1)
	assert.Equal(t, 5, t1)
	assert.Equal(t, []int{28, 3}, cards1, "Tox at (1,1), H2 at (3,3)")

	h2, c2, t2, cards2 := run()
	assert.Equal(t, h1, h2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, cards1, cards2)
}

func TestZone_HotCardOnHotZone(t *testing.T) {
	e, _ := newTestEngine()
	b := e.Board
	require.NoError(t, b.SetZone(ZoneHot, 2, 2))
	hot := put(t, b, b.Human, typed("Blaze", CardTypeHot, 30, AP{Upper: 1, Lower: 2, Left: 3, Right: 4}), 2, 2)

	want := AP{Upper: 2, Lower: 4, Left: 6, Right: 8}
	assert.Equal(t, want, hot.AP)
	assert.Equal(t, 30, hot.HP)

	e.EndTurn()
	e.EndTurn()
	assert.Equal(t, want, hot.AP, "zone bonus is applied once, at placement")
}

func TestZone_Bonus(t *testing.T) {
	ap := AP{Upper: 8, Lower: 12, Left: 4, Right: 0}
	tests := []struct {
		zone   Zone
		ct     CardType
		wantHP int
		wantAP AP
	}{
		{ZoneHot, CardTypeHot, 40, AP{Upper: 16, Lower: 24, Left: 8, Right: 0}},
		{ZoneHot, CardTypeCold, 40, AP{Upper: 2, Lower: 3, Left: 1, Right: 0}},
		{ZoneHot, CardTypeFeral, 40, AP{Upper: 4, Lower: 6, Left: 2, Right: 0}},
		{ZoneCold, CardTypeCold, 80, ap},
		{ZoneCold, CardTypeHot, 10, ap},
		{ZoneCold, CardTypeNeutral, 20, ap},
		{ZoneNone, CardTypeHot, 40, ap},
	}
	for _, tt := range tests {
		hp, got := tt.zone.Bonus(tt.ct, 40, ap)
		assert.Equal(t, tt.wantHP, hp, "%s zone, %s card", tt.zone, tt.ct)
		assert.Equal(t, tt.wantAP, got, "%s zone, %s card", tt.zone, tt.ct)
	}
}

func TestPlacement_LogsZoneBonus(t *testing.T) {
	b, _ := newTestBoard()
	logger := log.NewMemoryLogger()
	require.NoError(t, b.SetZone(ZoneCold, 0, 0))
	card := put(t, b, b.Human, typed("Frost", CardTypeCold, 10, AP{}), 0, 0)

	logPlacement(logger, b, b.Human, Move{Card: card, Row: 0, Col: 0})
	require.Len(t, logger.Events(), 2)
	assert.Equal(t, log.EventPlace, logger.Events()[0].Type)
	bonus := logger.LastEvent()
	assert.Equal(t, log.EventZoneBonus, bonus.Type)
	assert.Contains(t, bonus.Details, "Cold")
	assert.Contains(t, bonus.Details, "HP 20")
}
