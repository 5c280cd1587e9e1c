package game

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Rules holds the tunable match parameters, loaded from YAML.
type Rules struct {
	PlayerMaxHP     int     `yaml:"player_max_hp" validate:"gte=1"`
	DeckSize        int     `yaml:"deck_size" validate:"gte=2"`
	InitialHandSize int     `yaml:"initial_hand_size" validate:"gte=1"`
	ZoneChance      float64 `yaml:"zone_chance" validate:"gte=0,lte=1"`
	MaxTurns        int     `yaml:"max_turns" validate:"gte=1"`
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		PlayerMaxHP:     StartingHP,
		DeckSize:        100,
		InitialHandSize: 5,
		ZoneChance:      0.1,
		MaxTurns:        200,
	}
}

// Validate checks field ranges and that the deck can cover both opening hands.
func (r Rules) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: rules: %v", ErrInvalidArgument, err)
	}
	if r.DeckSize < 2*r.InitialHandSize {
		return fmt.Errorf("%w: rules: deck_size %d cannot deal two hands of %d", ErrInvalidArgument, r.DeckSize, r.InitialHandSize)
	}
	return nil
}

// ParseRules decodes YAML over the default rules, so omitted keys keep their defaults.
func ParseRules(data []byte) (Rules, error) {
	r := DefaultRules()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parse rules YAML: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// LoadRules reads a rules file. An empty path returns the defaults.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}
	return ParseRules(data)
}
