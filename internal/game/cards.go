package game

import "fmt"

// AP holds the four directional attack values of a card.
type AP struct {
	Upper int
	Lower int
	Left  int
	Right int
}

// Get returns the attack value on the given side.
func (a AP) Get(s Side) int {
	switch s {
	case SideUpper:
		return a.Upper
	case SideLower:
		return a.Lower
	case SideLeft:
		return a.Left
	default:
		return a.Right
	}
}

// Sum returns the total of all four values.
func (a AP) Sum() int {
	return a.Upper + a.Lower + a.Left + a.Right
}

// Scale multiplies every value by num/den using integer division.
func (a AP) Scale(num, den int) AP {
	return AP{
		Upper: a.Upper * num / den,
		Lower: a.Lower * num / den,
		Left:  a.Left * num / den,
		Right: a.Right * num / den,
	}
}

// AddAll adds n to every value.
func (a AP) AddAll(n int) AP {
	return AP{Upper: a.Upper + n, Lower: a.Lower + n, Left: a.Left + n, Right: a.Right + n}
}

// Plus adds two AP sets side by side.
func (a AP) Plus(o AP) AP {
	return AP{Upper: a.Upper + o.Upper, Lower: a.Lower + o.Lower, Left: a.Left + o.Left, Right: a.Right + o.Right}
}

func (a AP) String() string {
	return fmt.Sprintf("↑%d ↓%d ←%d →%d", a.Upper, a.Lower, a.Left, a.Right)
}

// Card is a monster card. Name, Type, Level, MaxHP and InitialAP are fixed at
// generation; HP, AP and ContaminatedTurnsLeft change during play.
type Card struct {
	Name      string
	Type      CardType
	Level     int
	MaxHP     int
	InitialAP AP

	HP                    int
	AP                    AP
	Owner                 *Player // nil while in the deck or discard pile
	ContaminatedTurnsLeft int
}

// NewCard creates a card with its current stats equal to its initial stats.
func NewCard(name string, t CardType, level, maxHP int, ap AP) *Card {
	return &Card{
		Name:      name,
		Type:      t,
		Level:     level,
		MaxHP:     maxHP,
		InitialAP: ap,
		HP:        maxHP,
		AP:        ap,
	}
}

func (c *Card) String() string {
	if c == nil {
		return "(empty)"
	}
	return c.Name
}

// DisplayString returns a human-readable description for the event log.
func (c *Card) DisplayString() string {
	if c == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (Lv%d %s, HP %d/%d, %s)", c.Name, c.Level, c.Type, c.HP, c.MaxHP, c.AP)
}

// SubtractHP lowers current HP. HP is not clamped at zero.
func (c *Card) SubtractHP(n int) {
	c.HP -= n
}

// Contaminated reports whether the card is still taking contamination damage.
func (c *Card) Contaminated() bool {
	return c.ContaminatedTurnsLeft > 0
}

// Reset restores initial stats and clears ownership and contamination.
func (c *Card) Reset() {
	c.HP = c.MaxHP
	c.AP = c.InitialAP
	c.Owner = nil
	c.ContaminatedTurnsLeft = 0
}
