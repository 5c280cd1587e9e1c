package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventZoneGenerated
	EventTurnOrder
	EventShuffle
	EventDraw
	EventPlace
	EventZoneBonus
	EventAttack
	EventContaminate
	EventContaminationDamage
	EventDestroy
	EventHPChange
	EventImpairedAid
	EventChargedLink
	EventWin
	EventTie
	EventTurnLimit
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventZoneGenerated:
		return "ZoneGenerated"
	case EventTurnOrder:
		return "TurnOrder"
	case EventShuffle:
		return "Shuffle"
	case EventDraw:
		return "Draw"
	case EventPlace:
		return "Place"
	case EventZoneBonus:
		return "ZoneBonus"
	case EventAttack:
		return "Attack"
	case EventContaminate:
		return "Contaminate"
	case EventContaminationDamage:
		return "ContaminationDamage"
	case EventDestroy:
		return "Destroy"
	case EventHPChange:
		return "HPChange"
	case EventImpairedAid:
		return "ImpairedAid"
	case EventChargedLink:
		return "ChargedLink"
	case EventWin:
		return "Win"
	case EventTie:
		return "Tie"
	case EventTurnLimit:
		return "TurnLimit"
	default:
		return "Unknown"
	}
}

// Phase names used in GameEvent.Phase.
const (
	PhaseSetup     = "Setup"
	PhaseBonus     = "Bonus"
	PhasePlacement = "Placement"
	PhaseCombat    = "Combat"
)

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // board turn counter when the event happened
	Phase   string    // round step (e.g. "Combat")
	Player  string    // acting or affected player name, if any
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
