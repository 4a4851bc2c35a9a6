package log

// EventType enumerates all observable combat events.
type EventType int

const (
	EventFightReset EventType = iota
	EventRoundStart
	EventTurnStart
	EventCardPlayed
	EventDamage
	EventHeal
	EventEnergy
	EventStatusApplied
	EventStatusExpired
	EventStatusRemoved
	EventPoisonTick
	EventRegenTick
	EventShieldAbsorb
	EventThornsReflect
	EventEffectSkipped
	EventConfigError
	EventKnockout
)

func (e EventType) String() string {
	switch e {
	case EventFightReset:
		return "FightReset"
	case EventRoundStart:
		return "RoundStart"
	case EventTurnStart:
		return "TurnStart"
	case EventCardPlayed:
		return "CardPlayed"
	case EventDamage:
		return "Damage"
	case EventHeal:
		return "Heal"
	case EventEnergy:
		return "Energy"
	case EventStatusApplied:
		return "StatusApplied"
	case EventStatusExpired:
		return "StatusExpired"
	case EventStatusRemoved:
		return "StatusRemoved"
	case EventPoisonTick:
		return "PoisonTick"
	case EventRegenTick:
		return "RegenTick"
	case EventShieldAbsorb:
		return "ShieldAbsorb"
	case EventThornsReflect:
		return "ThornsReflect"
	case EventEffectSkipped:
		return "EffectSkipped"
	case EventConfigError:
		return "ConfigError"
	case EventKnockout:
		return "Knockout"
	default:
		return "Unknown"
	}
}

// CombatEvent represents a single observable event during resolution.
type CombatEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based)
	Entity  string    // acting/affected entity name (if applicable)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
