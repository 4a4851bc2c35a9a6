package engine

import (
	"context"
	"fmt"

	"github.com/shatterloop/skirmish/internal/log"
)

// ActionType is what a fighter chose to do with their turn.
type ActionType int

const (
	ActionPlayCard ActionType = iota
	ActionEndTurn
)

// Action is one fighter decision. HandIndex is only meaningful for
// ActionPlayCard.
type Action struct {
	Type      ActionType
	HandIndex int
}

// FighterController supplies decisions for one seat. Implementations
// block until the player (human, network peer, or agent) answers.
type FighterController interface {
	// ChooseAction picks the next action. playable lists the hand indices
	// affordable with the current energy; it may be empty, in which case
	// only ActionEndTurn is legal.
	ChooseAction(ctx context.Context, f *Fight, seat int, playable []int) (Action, error)

	// Notify delivers a combat event as it happens.
	Notify(ctx context.Context, event log.CombatEvent) error
}

// Fighter is one seat in a fight: the combatant plus its card piles. The
// piles live here, outside the rules engine; their sizes are mirrored
// into the entity before every resolution so pile conditions see them.
type Fighter struct {
	Entity  *Entity
	Deck    []*Card
	Hand    []*Card
	Discard []*Card
}

func (ft *Fighter) syncPiles() {
	ft.Entity.Piles = PileCounts{
		Hand:    len(ft.Hand),
		Deck:    len(ft.Deck),
		Discard: len(ft.Discard),
	}
}

// draw moves up to n cards from deck to hand, recycling the discard pile
// in order when the deck runs dry.
func (ft *Fighter) draw(n int) {
	for i := 0; i < n; i++ {
		if len(ft.Deck) == 0 {
			if len(ft.Discard) == 0 {
				return
			}
			ft.Deck = ft.Discard
			ft.Discard = nil
		}
		ft.Hand = append(ft.Hand, ft.Deck[0])
		ft.Deck = ft.Deck[1:]
	}
}

// FightConfig describes a two-seat fight.
type FightConfig struct {
	Names     [2]string
	IDs       [2]EntityID
	Loadouts  [2][]*Card
	MaxHealth int // default 50
	MaxEnergy int // default 3
	HandSize  int // default 5
	MaxRounds int // default 50; hitting it is a draw
	Logger    log.EventLogger
}

// Fight runs a two-seat combat to completion: rounds, turns, card plays
// and the win check. Deterministic by construction: cards are drawn in
// loadout order and all state changes flow through the resolver.
type Fight struct {
	Combat   *Combat
	Fighters [2]*Fighter
	Result   string

	controllers [2]FighterController
	handSize    int
	maxRounds   int
	notified    int // events already delivered to controllers
}

// NewFight sets up a fight from a config and two controllers.
func NewFight(cfg FightConfig, c0, c1 FighterController) *Fight {
	if cfg.MaxHealth <= 0 {
		cfg.MaxHealth = 50
	}
	if cfg.MaxEnergy <= 0 {
		cfg.MaxEnergy = 3
	}
	if cfg.HandSize <= 0 {
		cfg.HandSize = 5
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = 50
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	f := &Fight{
		Combat:      NewCombat(logger),
		controllers: [2]FighterController{c0, c1},
		handSize:    cfg.HandSize,
		maxRounds:   cfg.MaxRounds,
	}
	for seat := 0; seat < 2; seat++ {
		id := cfg.IDs[seat]
		if id == "" {
			id = EntityID(fmt.Sprintf("seat-%d", seat))
		}
		name := cfg.Names[seat]
		if name == "" {
			name = fmt.Sprintf("Fighter %d", seat+1)
		}
		ft := &Fighter{Entity: NewEntity(id, name, cfg.MaxHealth, cfg.MaxEnergy)}
		ft.Deck = append(ft.Deck, cfg.Loadouts[seat]...)
		ft.syncPiles()
		f.Fighters[seat] = ft
		f.Combat.AddEntity(ft.Entity)
	}
	return f
}

// Run plays the fight to its end. Returns the winning seat, or -1 for a
// draw. Result carries a human-readable outcome either way.
func (f *Fight) Run(ctx context.Context) (int, error) {
	for {
		if f.Combat.Round() >= f.maxRounds {
			f.Result = fmt.Sprintf("Draw after %d rounds", f.maxRounds)
			return -1, nil
		}
		f.Combat.BeginRound()

		for seat := 0; seat < 2; seat++ {
			if err := f.takeTurn(ctx, seat); err != nil {
				return -1, err
			}
			if winner, over := f.winner(); over {
				f.Result = f.resultFor(winner)
				return winner, f.flushEvents(ctx)
			}
		}
	}
}

func (f *Fight) takeTurn(ctx context.Context, seat int) error {
	ft := f.Fighters[seat]
	e := ft.Entity
	if !e.Alive() {
		return nil
	}

	// A stun present at turn start skips this turn's actions even though
	// the turn tick below may expire it.
	stunned := e.Statuses.Has(StatusStun)

	f.Combat.BeginTurn(e.ID)
	if !e.Alive() {
		// Over-time damage finished them before they could act.
		return f.flushEvents(ctx)
	}

	e.Energy = e.MaxEnergy
	ft.draw(f.handSize - len(ft.Hand))
	ft.syncPiles()

	if err := f.flushEvents(ctx); err != nil {
		return err
	}
	if stunned {
		return nil
	}

	for {
		playable := ft.playableIndices()
		action, err := f.controllers[seat].ChooseAction(ctx, f, seat, playable)
		if err != nil {
			return fmt.Errorf("seat %d choose action: %w", seat, err)
		}
		if action.Type == ActionEndTurn {
			return nil
		}

		if action.HandIndex < 0 || action.HandIndex >= len(ft.Hand) {
			continue
		}
		card := ft.Hand[action.HandIndex]
		if card.Cost > e.Energy {
			continue
		}

		e.Energy -= card.Cost
		ft.Hand = append(ft.Hand[:action.HandIndex], ft.Hand[action.HandIndex+1:]...)
		ft.Discard = append(ft.Discard, card)
		ft.syncPiles()

		opp := f.Fighters[1-seat].Entity
		f.Combat.ResolveCard(card, e.ID, []EntityID{opp.ID})
		if err := f.flushEvents(ctx); err != nil {
			return err
		}
		if _, over := f.winner(); over {
			return nil
		}
	}
}

func (ft *Fighter) playableIndices() []int {
	var playable []int
	for i, card := range ft.Hand {
		if card.Cost <= ft.Entity.Energy {
			playable = append(playable, i)
		}
	}
	return playable
}

// winner reports whether the fight has ended and which seat won. A
// double knockout counts as a draw.
func (f *Fight) winner() (int, bool) {
	alive0 := f.Fighters[0].Entity.Alive()
	alive1 := f.Fighters[1].Entity.Alive()
	switch {
	case alive0 && alive1:
		return 0, false
	case alive0:
		return 0, true
	case alive1:
		return 1, true
	default:
		return -1, true
	}
}

func (f *Fight) resultFor(winner int) string {
	if winner < 0 {
		return "Double knockout"
	}
	return fmt.Sprintf("%s wins", f.Fighters[winner].Entity.Name)
}

// flushEvents delivers events logged since the last flush to both
// controllers.
func (f *Fight) flushEvents(ctx context.Context) error {
	events := f.Combat.Logger().Events()
	for ; f.notified < len(events); f.notified++ {
		for seat := 0; seat < 2; seat++ {
			if err := f.controllers[seat].Notify(ctx, events[f.notified]); err != nil {
				return fmt.Errorf("seat %d notify: %w", seat, err)
			}
		}
	}
	return nil
}
