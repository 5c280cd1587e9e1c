package log

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// EventLogger receives every event a match produces.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// MemoryLogger numbers events and keeps them in order. The MCP session drains
// it incrementally with EventsSince; tests query it by type.
type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

// Log assigns the next sequence number and records the event.
func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// Len returns the number of recorded events.
func (l *MemoryLogger) Len() int {
	return len(l.events)
}

// EventsOfType returns the events whose type is any of types, in log order.
func (l *MemoryLogger) EventsOfType(types ...EventType) []GameEvent {
	var matched []GameEvent
	for _, e := range l.events {
		if slices.Contains(types, e.Type) {
			matched = append(matched, e)
		}
	}
	return matched
}

// EventsSince returns the events with a sequence number greater than seq.
// Sequence numbers are contiguous, so this is a suffix of Events.
func (l *MemoryLogger) EventsSince(seq int) []GameEvent {
	i, _ := slices.BinarySearchFunc(l.events, seq+1, func(e GameEvent, target int) int {
		return e.Seq - target
	})
	if i >= len(l.events) {
		return nil
	}
	return l.events[i:]
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if n := len(l.events); n > 0 {
		return l.events[n-1]
	}
	return GameEvent{}
}

// TextLogger records like MemoryLogger and also prints each event as one
// FormatEvent line.
type TextLogger struct {
	MemoryLogger
	out io.Writer
}

func NewTextLogger(out io.Writer) *TextLogger {
	return &TextLogger{out: out}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.out, FormatEvent(l.LastEvent()))
}

// FormatEvent renders "T<turn> <phase>| <details>" with the phase padded to 10 columns.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("T%-3d %-10s| %s", e.Turn, e.Phase, e.Details)
}

// FormatAll renders one FormatEvent line per event.
func FormatAll(events []GameEvent) string {
	lines := make([]string, 0, len(events)+1)
	for _, e := range events {
		lines = append(lines, FormatEvent(e))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// --- Event constructors ---

func NewTurnEvent(turn int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseBonus,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewZoneGeneratedEvent(turn int, zone string, row, col int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseSetup,
		Type:    EventZoneGenerated,
		Details: fmt.Sprintf("A %s zone forms at (%d,%d)", zone, row, col),
	}
}

func NewTurnOrderEvent(turn int, first, second string, firstRoll, secondRoll int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseSetup,
		Player:  second,
		Type:    EventTurnOrder,
		Details: fmt.Sprintf("%s rolls %d, %s rolls %d: %s moves first, %s moves second", first, firstRoll, second, secondRoll, first, second),
	}
}

func NewShuffleEvent(turn int, cards int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseSetup,
		Type:    EventShuffle,
		Details: fmt.Sprintf("The deck is shuffled (%d cards)", cards),
	}
}

func NewDrawEvent(turn int, phase string, player string, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", player, cardName),
	}
}

func NewPlaceEvent(turn int, player string, cardName string, row, col int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhasePlacement,
		Player:  player,
		Type:    EventPlace,
		Card:    cardName,
		Details: fmt.Sprintf("%s places %s at (%d,%d)", player, cardName, row, col),
	}
}

func NewZoneBonusEvent(turn int, player string, cardName string, zone string, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhasePlacement,
		Player:  player,
		Type:    EventZoneBonus,
		Card:    cardName,
		Details: fmt.Sprintf("%s is affected by the %s zone (%s)", cardName, zone, details),
	}
}

func NewAttackEvent(turn int, player string, attacker, defender string, damage, hpLeft int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseCombat,
		Player:  player,
		Type:    EventAttack,
		Card:    attacker,
		Details: fmt.Sprintf("%s hits %s for %d (HP left %d)", attacker, defender, damage, hpLeft),
	}
}

func NewContaminateEvent(turn int, player string, attacker, defender string, turns int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseCombat,
		Player:  player,
		Type:    EventContaminate,
		Card:    defender,
		Details: fmt.Sprintf("%s contaminates %s for %d turns", attacker, defender, turns),
	}
}

func NewContaminationDamageEvent(turn int, player string, cardName string, damage, turnsLeft int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseCombat,
		Player:  player,
		Type:    EventContaminationDamage,
		Card:    cardName,
		Details: fmt.Sprintf("%s suffers %d contamination damage (%d turns left)", cardName, damage, turnsLeft),
	}
}

func NewDestroyEvent(turn int, player string, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseCombat,
		Player:  player,
		Type:    EventDestroy,
		Card:    cardName,
		Details: fmt.Sprintf("%s's %s is destroyed and sent to the discard pile", player, cardName),
	}
}

func NewHPChangeEvent(turn int, phase string, player string, oldHP, newHP int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventHPChange,
		Details: fmt.Sprintf("%s HP: %d → %d (%s)", player, oldHP, newHP, reason),
	}
}

func NewImpairedAidEvent(turn int, player string, cardName, donorName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseBonus,
		Player:  player,
		Type:    EventImpairedAid,
		Card:    cardName,
		Details: fmt.Sprintf("A %s sees the impaired %s and comes to its aid", donorName, cardName),
	}
}

func NewChargedLinkEvent(turn int, player string, cardName, allyName string, bonus int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseBonus,
		Player:  player,
		Type:    EventChargedLink,
		Card:    cardName,
		Details: fmt.Sprintf("%s links with %s: both gain +%d AP", cardName, allyName, bonus),
	}
}

func NewWinEvent(turn int, winner string, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseCombat,
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", winner, reason),
	}
}

func NewTieEvent(turn int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseCombat,
		Type:    EventTie,
		Details: fmt.Sprintf("The match is a tie (%s)", reason),
	}
}

func NewTurnLimitEvent(turn int, limit int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   PhaseCombat,
		Type:    EventTurnLimit,
		Details: fmt.Sprintf("Turn limit reached (%d turns)", limit),
	}
}
