package engine

import (
	"github.com/shatterloop/skirmish/internal/log"
)

// Combat owns the mutable state of one fight: every participating entity
// with its status store and ledger, keyed by entity id. Entities in one
// combat share nothing with entities in another, so instances need no
// locking; the caller serializes card plays against a single instance.
type Combat struct {
	entities map[EntityID]*Entity
	order    []EntityID // registration order, for deterministic iteration
	logger   log.EventLogger
	round    int
}

// NewCombat creates an empty combat instance. A nil logger falls back to
// an in-memory one.
func NewCombat(logger log.EventLogger) *Combat {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Combat{
		entities: make(map[EntityID]*Entity),
		logger:   logger,
	}
}

// AddEntity registers a combatant. Re-adding an id replaces the entity
// but keeps its position in iteration order.
func (c *Combat) AddEntity(e *Entity) {
	if _, exists := c.entities[e.ID]; !exists {
		c.order = append(c.order, e.ID)
	}
	c.entities[e.ID] = e
}

// Entity looks up a combatant by id.
func (c *Combat) Entity(id EntityID) (*Entity, bool) {
	e, ok := c.entities[id]
	return e, ok
}

// Entities returns all combatants in registration order.
func (c *Combat) Entities() []*Entity {
	out := make([]*Entity, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entities[id])
	}
	return out
}

// Round returns the current 1-based round number (0 before the first
// BeginRound).
func (c *Combat) Round() int {
	return c.round
}

// Logger exposes the event log for callers that replay or render events.
func (c *Combat) Logger() log.EventLogger {
	return c.logger
}

// BeginRound advances the round counter. The turn controller calls it
// once per round, before the first entity's BeginTurn.
func (c *Combat) BeginRound() {
	c.round++
	c.logger.Log(log.NewRoundStartEvent(c.round))
}

// BeginTurn runs the turn-boundary work for one entity: over-time status
// effects fire, timed statuses age out, and the per-turn ledger counters
// roll over. Must run exactly once per entity per turn, before any card
// of that turn resolves.
func (c *Combat) BeginTurn(id EntityID) {
	e, ok := c.entities[id]
	if !ok {
		return
	}
	c.logger.Log(log.NewTurnStartEvent(c.round, e.Name))

	// Over-time effects fire before durations tick, so a one-turn Poison
	// still deals its damage.
	if p := e.Statuses.Active(StatusPoison); p > 0 && e.Alive() {
		dealt := p
		if dealt > e.Health {
			dealt = e.Health
		}
		e.Health -= dealt
		e.Ledger.RecordDamageTaken(dealt)
		c.logger.Log(log.NewPoisonTickEvent(c.round, e.Name, dealt, e.Health))
		if e.Health == 0 {
			c.logger.Log(log.NewKnockoutEvent(c.round, e.Name))
		}
	}
	if r := e.Statuses.Active(StatusRegen); r > 0 && e.Alive() {
		healed := r
		if headroom := e.MaxHealth - e.Health; healed > headroom {
			healed = headroom
		}
		e.Health += healed
		e.Ledger.RecordHealingReceived(healed)
		c.logger.Log(log.NewRegenTickEvent(c.round, e.Name, healed, e.Health))
	}

	for _, expired := range e.Statuses.Tick() {
		c.logger.Log(log.NewStatusExpiredEvent(c.round, e.Name, expired.Kind.String()))
	}
	if !e.Statuses.Has(StatusStun) {
		e.Ledger.SetStunned(false)
	}
	e.Ledger.SetStrengthStacks(e.Statuses.Active(StatusStrength))

	e.Ledger.ResetForNewTurn()
}

// ResetFight restores every entity to full health and energy, clears all
// status effects (whole-fight ones included) and zeroes all ledgers.
func (c *Combat) ResetFight() {
	c.round = 0
	for _, id := range c.order {
		e := c.entities[id]
		e.Health = e.MaxHealth
		e.Energy = e.MaxEnergy
		e.Statuses.ClearAll()
		e.Ledger.ResetForNewFight()
	}
	c.logger.Log(log.NewFightResetEvent(c.round))
}

// ActiveEffects returns a snapshot of an entity's status effects, for UI
// and test harnesses.
func (c *Combat) ActiveEffects(id EntityID) []StatusEffect {
	e, ok := c.entities[id]
	if !ok {
		return nil
	}
	return e.Statuses.Snapshot()
}

// LedgerSnapshot returns a value copy of an entity's ledger.
func (c *Combat) LedgerSnapshot(id EntityID) (Ledger, bool) {
	e, ok := c.entities[id]
	if !ok {
		return Ledger{}, false
	}
	return e.Ledger.Snapshot(), true
}
