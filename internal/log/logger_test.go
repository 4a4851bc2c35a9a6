package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerSequencing(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewRoundStartEvent(1))
	l.Log(NewTurnStartEvent(1, "Hero"))
	l.Log(NewCardPlayedEvent(1, "Hero", "Strike"))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}
	if l.LastEvent().Type != EventCardPlayed {
		t.Errorf("last event type wrong: %s", l.LastEvent().Type)
	}
}

func TestMemoryLoggerEventsOfType(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewDamageEvent(1, "Hero", "Foe", "Strike", 6, 34))
	l.Log(NewHealEvent(1, "Hero", "Hero", "Mend", 3, 50))
	l.Log(NewDamageEvent(1, "Hero", "Foe", "Strike", 6, 28))

	if got := len(l.EventsOfType(EventDamage)); got != 2 {
		t.Errorf("expected 2 damage events, got %d", got)
	}
	if got := len(l.EventsOfType(EventKnockout)); got != 0 {
		t.Errorf("expected no knockout events, got %d", got)
	}
}

func TestTextLoggerWrites(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewDamageEvent(2, "Hero", "Foe", "Strike", 6, 34))

	line := sb.String()
	if !strings.HasPrefix(line, "R2 ") {
		t.Errorf("line should carry the round prefix: %q", line)
	}
	if !strings.Contains(line, "Foe takes 6 damage from Hero") {
		t.Errorf("line should describe the damage: %q", line)
	}
	if len(l.Events()) != 1 {
		t.Error("text logger should also retain events in memory")
	}
}

func TestStatusAppliedEventWholeFight(t *testing.T) {
	e := NewStatusAppliedEvent(1, "Foe", "Curse", 2, -1)
	if !strings.Contains(e.Details, "whole fight") {
		t.Errorf("whole-fight duration should be spelled out: %q", e.Details)
	}
}
