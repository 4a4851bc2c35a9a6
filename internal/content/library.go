package content

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/shatterloop/skirmish/internal/engine"
)

//go:embed cards.yaml
var defaultCards []byte

// Library maps card names to their immutable definitions. Lookups hand
// out the shared definition; cards carry no per-fight state so sharing
// is safe.
type Library struct {
	cards map[string]*engine.Card
}

// ParseLibrary parses a YAML card library. Any malformed card fails the
// whole load; a half-parsed library never reaches the resolver.
func ParseLibrary(data []byte) (*Library, error) {
	var cf cardFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse card YAML: %w", err)
	}
	if len(cf.Cards) == 0 {
		return nil, fmt.Errorf("card library is empty")
	}

	lib := &Library{cards: make(map[string]*engine.Card, len(cf.Cards))}
	for _, entry := range cf.Cards {
		card, err := entry.toCard()
		if err != nil {
			return nil, err
		}
		if _, dup := lib.cards[card.Name]; dup {
			return nil, fmt.Errorf("duplicate card %q", card.Name)
		}
		lib.cards[card.Name] = card
	}
	return lib, nil
}

// LoadLibrary reads and parses a card library file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLibrary(data)
}

// DefaultLibrary parses the embedded card set. The embedded file is part
// of the build, so a parse failure is a programming error.
func DefaultLibrary() *Library {
	lib, err := ParseLibrary(defaultCards)
	if err != nil {
		panic(fmt.Sprintf("embedded card library is broken: %v", err))
	}
	return lib
}

// Lookup returns the card definition for a name.
func (l *Library) Lookup(name string) (*engine.Card, bool) {
	c, ok := l.cards[name]
	return c, ok
}

// Names returns all card names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.cards))
	for name := range l.cards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cards returns all definitions sorted by name.
func (l *Library) Cards() []*engine.Card {
	out := make([]*engine.Card, 0, len(l.cards))
	for _, name := range l.Names() {
		out = append(out, l.cards[name])
	}
	return out
}

// Len returns the number of cards in the library.
func (l *Library) Len() int {
	return len(l.cards)
}
