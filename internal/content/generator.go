// Package content invents random monster cards from name and adjective tables.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/peterkuimelis/cardbattle/internal/game"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultTables []byte

const (
	minimumHP = 20
	hpSpread  = 11 // base HP is minimumHP + [0, hpSpread)
	apSpread  = 11 // base AP per side is [0, apSpread)
	maxLevel  = 5
)

// TablesFile represents the top-level YAML structure of a content file.
type TablesFile struct {
	Names      []string            `yaml:"names"`
	Adjectives map[string][]string `yaml:"adjectives"`
}

// Tables are the parsed, validated generator inputs.
type Tables struct {
	Names      []string
	Adjectives map[game.CardType][]string
}

// ParseTables parses a YAML content file. Every card type needs at least one
// adjective; unknown type names are rejected.
func ParseTables(data []byte) (*Tables, error) {
	var tf TablesFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse content YAML: %w", err)
	}
	if len(tf.Names) == 0 {
		return nil, fmt.Errorf("%w: content has no names", game.ErrInvalidArgument)
	}
	t := &Tables{Names: tf.Names, Adjectives: make(map[game.CardType][]string)}
	for key, adjs := range tf.Adjectives {
		ct, err := game.ParseCardType(key)
		if err != nil {
			return nil, fmt.Errorf("content adjectives: %w", err)
		}
		t.Adjectives[ct] = append(t.Adjectives[ct], adjs...)
	}
	for _, ct := range game.AllCardTypes {
		if len(t.Adjectives[ct]) == 0 {
			return nil, fmt.Errorf("%w: content has no adjectives for type %s", game.ErrInvalidArgument, ct)
		}
	}
	return t, nil
}

// LoadTables reads a content file. An empty path returns the built-in tables.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTables(data)
}

// DefaultTables returns the tables shipped with the binary.
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultTables)
}

// Generator creates random cards.
type Generator struct {
	tables *Tables
	rng    game.RNG
}

// NewGenerator creates a generator over the given tables.
func NewGenerator(tables *Tables, rng game.RNG) *Generator {
	return &Generator{tables: tables, rng: rng}
}

// Generate creates a card of a random type.
func (g *Generator) Generate() *game.Card {
	t := game.AllCardTypes[g.rng.Intn(len(game.AllCardTypes))]
	return g.GenerateOfType(t)
}

// GenerateOfType creates a card of the given type named "<Adjective> <Name>".
func (g *Generator) GenerateOfType(t game.CardType) *game.Card {
	adjs := g.tables.Adjectives[t]
	name := adjs[g.rng.Intn(len(adjs))] + " " + g.tables.Names[g.rng.Intn(len(g.tables.Names))]
	level, maxHP, ap := g.rollStats(t)
	return game.NewCard(name, t, level, maxHP, ap)
}

// GenerateDeck creates n random cards.
func (g *Generator) GenerateDeck(n int) []*game.Card {
	cards := make([]*game.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, g.Generate())
	}
	return cards
}

// rollStats rolls level, HP and AP scaled by level, then applies the type's modifier.
func (g *Generator) rollStats(t game.CardType) (int, int, game.AP) {
	level := g.rng.Intn(maxLevel) + 1
	maxHP := (minimumHP + g.rng.Intn(hpSpread)) * level
	ap := game.AP{
		Upper: g.rng.Intn(apSpread) * level,
		Lower: g.rng.Intn(apSpread) * level,
		Left:  g.rng.Intn(apSpread) * level,
		Right: g.rng.Intn(apSpread) * level,
	}
	return level, typeHP(t, maxHP), typeAP(t, ap)
}

func typeHP(t game.CardType, hp int) int {
	switch t {
	case game.CardTypeDurable:
		return hp * 2
	case game.CardTypeImpaired, game.CardTypeFeral:
		return hp / 4
	case game.CardTypeToxic:
		return hp / 2
	default:
		return hp
	}
}

func typeAP(t game.CardType, ap game.AP) game.AP {
	switch t {
	case game.CardTypeDurable, game.CardTypeImpaired:
		return ap.Scale(1, 4)
	case game.CardTypeFeral:
		return ap.Scale(2, 1)
	case game.CardTypeToxic:
		return ap.Scale(1, 2)
	default:
		return ap
	}
}
