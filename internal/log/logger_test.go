package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLogger_Sequence(t *testing.T) {
	l := NewMemoryLogger()
	assert.Equal(t, GameEvent{}, l.LastEvent())
	assert.Nil(t, l.EventsSince(0))

	l.Log(NewTurnEvent(1))
	l.Log(NewPlaceEvent(1, "Human", "Imp", 2, 3))
	l.Log(NewAttackEvent(1, "Human", "Imp", "Ogre", 4, 6))

	events := l.Events()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Equal(t, EventAttack, l.LastEvent().Type)

	since := l.EventsSince(1)
	require.Len(t, since, 2)
	assert.Equal(t, EventPlace, since[0].Type)
	assert.Empty(t, l.EventsSince(3))

	places := l.EventsOfType(EventPlace)
	require.Len(t, places, 1)
	assert.Equal(t, "Imp", places[0].Card)
	assert.Equal(t, "Human", places[0].Player)
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)

	l.Log(NewZoneGeneratedEvent(1, "Hot", 0, 4))
	l.Log(NewHPChangeEvent(3, PhaseCombat, "Computer", 500, 480, "Ogre destroyed"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "T1   Setup     | A Hot zone forms at (0,4)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "T3   Combat    | "))
	assert.Contains(t, lines[1], "480")

	assert.Len(t, l.Events(), 2, "text logger also keeps events")
	assert.Equal(t, buf.String(), FormatAll(l.Events()))
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "ContaminationDamage", EventContaminationDamage.String())
	assert.Equal(t, "TurnLimit", EventTurnLimit.String())
	assert.Equal(t, "Unknown", EventType(99).String())
}

func TestEventDetails(t *testing.T) {
	e := NewTurnOrderEvent(1, "Human", "Computer", 4, 17)
	assert.Contains(t, e.Details, "Human moves first")
	assert.Equal(t, PhaseSetup, e.Phase)

	e = NewContaminateEvent(2, "Computer", "Putrid Imp", "Plain Ogre", 5)
	assert.Equal(t, EventContaminate, e.Type)
	assert.Contains(t, e.Details, "Plain Ogre")

	e = NewWinEvent(9, "Human", "Computer's HP reached 0")
	assert.Equal(t, "Human", e.Player)
	assert.Contains(t, e.Details, "wins")
}
