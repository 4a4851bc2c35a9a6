package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shatterloop/skirmish/internal/engine"
)

// loadoutFile is the top-level YAML structure of a loadout file.
type loadoutFile struct {
	Loadouts []loadoutEntry `yaml:"loadouts"`
}

// loadoutEntry is a named list of cards a fighter brings into combat.
type loadoutEntry struct {
	Name  string      `yaml:"name"`
	Cards []cardCount `yaml:"cards"`
}

type cardCount struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Loadout is a resolved, ordered card list.
type Loadout struct {
	Name  string
	Cards []*engine.Card
}

// ParseLoadouts resolves a loadout file against a card library. Every
// referenced card must exist; a dangling name fails the whole load.
func ParseLoadouts(data []byte, lib *Library) ([]Loadout, error) {
	var lf loadoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse loadout YAML: %w", err)
	}

	loadouts := make([]Loadout, 0, len(lf.Loadouts))
	for _, entry := range lf.Loadouts {
		lo := Loadout{Name: entry.Name}
		for _, cc := range entry.Cards {
			card, ok := lib.Lookup(cc.Name)
			if !ok {
				return nil, fmt.Errorf("loadout %q: unknown card %q", entry.Name, cc.Name)
			}
			count := cc.Count
			if count <= 0 {
				count = 1
			}
			for i := 0; i < count; i++ {
				lo.Cards = append(lo.Cards, card)
			}
		}
		loadouts = append(loadouts, lo)
	}
	return loadouts, nil
}

// LoadLoadouts reads and resolves a loadout file.
func LoadLoadouts(path string, lib *Library) ([]Loadout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLoadouts(data, lib)
}

// LoadoutByNumber returns the Nth loadout (1-indexed).
func LoadoutByNumber(loadouts []Loadout, n int) (Loadout, error) {
	if n < 1 || n > len(loadouts) {
		return Loadout{}, fmt.Errorf("loadout %d not found (have %d)", n, len(loadouts))
	}
	return loadouts[n-1], nil
}
