package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging combat events.
type EventLogger interface {
	Log(event CombatEvent)
	Events() []CombatEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []CombatEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event CombatEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []CombatEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []CombatEvent {
	var result []CombatEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() CombatEvent {
	if len(l.events) == 0 {
		return CombatEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event CombatEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e CombatEvent) string {
	entity := e.Entity
	// Pad entity to 12 chars for alignment
	for len(entity) < 12 {
		entity += " "
	}
	return fmt.Sprintf("R%-2d %s| %s", e.Round, entity, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []CombatEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewFightResetEvent(round int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Type:    EventFightReset,
		Details: "=== Fight reset ===",
	}
}

func NewRoundStartEvent(round int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Type:    EventRoundStart,
		Details: fmt.Sprintf("=== Round %d ===", round),
	}
}

func NewTurnStartEvent(round int, entity string) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventTurnStart,
		Details: fmt.Sprintf("%s begins their turn", entity),
	}
}

func NewCardPlayedEvent(round int, entity, card string) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventCardPlayed,
		Card:    card,
		Details: fmt.Sprintf("%s plays %s", entity, card),
	}
}

func NewDamageEvent(round int, source, target, card string, amount, newHealth int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  target,
		Type:    EventDamage,
		Card:    card,
		Details: fmt.Sprintf("%s takes %d damage from %s (HP %d)", target, amount, source, newHealth),
	}
}

func NewHealEvent(round int, source, target, card string, amount, newHealth int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  target,
		Type:    EventHeal,
		Card:    card,
		Details: fmt.Sprintf("%s heals %d from %s (HP %d)", target, amount, source, newHealth),
	}
}

func NewEnergyEvent(round int, entity string, amount, newEnergy int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventEnergy,
		Details: fmt.Sprintf("%s gains %d energy (EN %d)", entity, amount, newEnergy),
	}
}

func NewStatusAppliedEvent(round int, target, kind string, potency, duration int) CombatEvent {
	durDesc := fmt.Sprintf("%d turns", duration)
	if duration < 0 {
		durDesc = "whole fight"
	}
	return CombatEvent{
		Round:   round,
		Entity:  target,
		Type:    EventStatusApplied,
		Details: fmt.Sprintf("%s gains %s %d (%s)", target, kind, potency, durDesc),
	}
}

func NewStatusExpiredEvent(round int, entity, kind string) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventStatusExpired,
		Details: fmt.Sprintf("%s on %s wears off", kind, entity),
	}
}

func NewStatusRemovedEvent(round int, entity, kind string) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventStatusRemoved,
		Details: fmt.Sprintf("%s on %s is removed", kind, entity),
	}
}

func NewPoisonTickEvent(round int, entity string, amount, newHealth int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventPoisonTick,
		Details: fmt.Sprintf("%s suffers %d poison damage (HP %d)", entity, amount, newHealth),
	}
}

func NewRegenTickEvent(round int, entity string, amount, newHealth int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventRegenTick,
		Details: fmt.Sprintf("%s regenerates %d health (HP %d)", entity, amount, newHealth),
	}
}

func NewShieldAbsorbEvent(round int, entity string, absorbed int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventShieldAbsorb,
		Details: fmt.Sprintf("%s's shield absorbs %d damage", entity, absorbed),
	}
}

func NewThornsReflectEvent(round int, target, source string, amount, newHealth int) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  source,
		Type:    EventThornsReflect,
		Details: fmt.Sprintf("%s's thorns reflect %d damage to %s (HP %d)", target, amount, source, newHealth),
	}
}

func NewEffectSkippedEvent(round int, target, card, reason string) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  target,
		Type:    EventEffectSkipped,
		Card:    card,
		Details: fmt.Sprintf("effect of %s skipped for %s (%s)", card, target, reason),
	}
}

func NewConfigErrorEvent(round int, card, reason string) CombatEvent {
	return CombatEvent{
		Round:   round,
		Type:    EventConfigError,
		Card:    card,
		Details: fmt.Sprintf("%s misconfigured: %s", card, reason),
	}
}

func NewKnockoutEvent(round int, entity string) CombatEvent {
	return CombatEvent{
		Round:   round,
		Entity:  entity,
		Type:    EventKnockout,
		Details: fmt.Sprintf("%s is knocked out", entity),
	}
}
