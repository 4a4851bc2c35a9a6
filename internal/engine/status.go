package engine

// DurationWholeFight marks a status effect that never decays from turn
// ticks; only ClearAll removes it.
const DurationWholeFight = -1

// StatusEffect is one active, timed modifier on an entity. SourceID is a
// weak reference: the source entity may already be gone.
type StatusEffect struct {
	Kind     StatusKind
	Potency  int
	Duration int // remaining turns, or DurationWholeFight
	SourceID EntityID
}

// StatusStore holds the stacked status effects of a single entity, in
// application order.
type StatusStore struct {
	effects []StatusEffect
}

func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

// Add applies a status effect. Stacking kinds append a new instance;
// single-instance kinds (Stun, Focus) are idempotent — a second add keeps
// the higher potency and the longer duration instead of stacking.
func (s *StatusStore) Add(kind StatusKind, potency, duration int, sourceID EntityID) {
	if kind.SingleInstance() {
		for i := range s.effects {
			if s.effects[i].Kind != kind {
				continue
			}
			if potency > s.effects[i].Potency {
				s.effects[i].Potency = potency
			}
			if longerDuration(duration, s.effects[i].Duration) {
				s.effects[i].Duration = duration
			}
			s.effects[i].SourceID = sourceID
			return
		}
	}
	s.effects = append(s.effects, StatusEffect{
		Kind:     kind,
		Potency:  potency,
		Duration: duration,
		SourceID: sourceID,
	})
}

// longerDuration reports whether a outlasts b, treating the whole-fight
// sentinel as infinite.
func longerDuration(a, b int) bool {
	if a == DurationWholeFight {
		return b != DurationWholeFight
	}
	if b == DurationWholeFight {
		return false
	}
	return a > b
}

// Remove drops all instances of the given kind.
func (s *StatusStore) Remove(kind StatusKind) {
	filtered := s.effects[:0]
	for _, e := range s.effects {
		if e.Kind != kind {
			filtered = append(filtered, e)
		}
	}
	s.effects = filtered
}

// RemoveFromSource drops instances of the given kind applied by one source.
func (s *StatusStore) RemoveFromSource(kind StatusKind, sourceID EntityID) {
	filtered := s.effects[:0]
	for _, e := range s.effects {
		if e.Kind != kind || e.SourceID != sourceID {
			filtered = append(filtered, e)
		}
	}
	s.effects = filtered
}

// ClearAll removes every status effect, including whole-fight ones.
// Called at fight reset.
func (s *StatusStore) ClearAll() {
	s.effects = nil
}

// Tick ages every timed effect by one turn and removes those that reach
// zero. Whole-fight effects are untouched. Returns the expired effects in
// store order.
func (s *StatusStore) Tick() []StatusEffect {
	var expired []StatusEffect
	kept := s.effects[:0]
	for _, e := range s.effects {
		if e.Duration == DurationWholeFight {
			kept = append(kept, e)
			continue
		}
		e.Duration--
		if e.Duration <= 0 {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
	return expired
}

// Active returns the summed potency of all instances of the given kind.
func (s *StatusStore) Active(kind StatusKind) int {
	total := 0
	for _, e := range s.effects {
		if e.Kind == kind {
			total += e.Potency
		}
	}
	return total
}

// Has reports whether at least one instance of the kind is active.
func (s *StatusStore) Has(kind StatusKind) bool {
	for _, e := range s.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the active effects in application order, for
// state-diff logging and result records.
func (s *StatusStore) Snapshot() []StatusEffect {
	out := make([]StatusEffect, len(s.effects))
	copy(out, s.effects)
	return out
}

// ConsumeShield absorbs up to amount damage from active Shield instances,
// oldest first, and returns how much was absorbed. Spent instances are
// removed; a partially spent instance keeps its remaining potency.
func (s *StatusStore) ConsumeShield(amount int) int {
	if amount <= 0 {
		return 0
	}
	absorbed := 0
	kept := s.effects[:0]
	for _, e := range s.effects {
		if e.Kind != StatusShield || amount <= 0 {
			kept = append(kept, e)
			continue
		}
		if e.Potency > amount {
			absorbed += amount
			e.Potency -= amount
			amount = 0
			kept = append(kept, e)
			continue
		}
		absorbed += e.Potency
		amount -= e.Potency
	}
	s.effects = kept
	return absorbed
}

// DamageModifiers projects the store into the flat/percentage terms the
// damage pipeline consumes. Weak potency is percent reduction (25 → ×0.75
// per stack); Break potency is percent amplification (50 → ×1.5).
func (s *StatusStore) DamageModifiers() ModifierSet {
	var m ModifierSet
	for _, e := range s.effects {
		switch e.Kind {
		case StatusStrength:
			m.FlatBonus += e.Potency
		case StatusCurse:
			m.FlatPenalty += e.Potency
		case StatusWeak:
			m.OutgoingFactors = append(m.OutgoingFactors, 1-float64(e.Potency)/100)
		case StatusBreak:
			m.IncomingFactors = append(m.IncomingFactors, 1+float64(e.Potency)/100)
		case StatusArmor:
			m.ArmorFlat += e.Potency
		}
	}
	return m
}
