package engine

import "testing"

func TestStatusStoreStacking(t *testing.T) {
	s := NewStatusStore()
	s.Add(StatusStrength, 2, 3, "a")
	s.Add(StatusStrength, 3, 1, "b")

	if got := s.Active(StatusStrength); got != 5 {
		t.Errorf("expected summed potency 5, got %d", got)
	}
	if n := len(s.Snapshot()); n != 2 {
		t.Errorf("expected 2 instances, got %d", n)
	}
}

func TestStatusStoreSingleInstance(t *testing.T) {
	s := NewStatusStore()
	s.Add(StatusStun, 1, 1, "a")
	s.Add(StatusStun, 1, 3, "b")

	snap := s.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("stun must not stack, got %d instances", len(snap))
	}
	if snap[0].Duration != 3 {
		t.Errorf("second add should keep the longer duration, got %d", snap[0].Duration)
	}

	s.Add(StatusStun, 1, DurationWholeFight, "c")
	if d := s.Snapshot()[0].Duration; d != DurationWholeFight {
		t.Errorf("whole-fight duration should win, got %d", d)
	}
}

func TestStatusStoreTick(t *testing.T) {
	s := NewStatusStore()
	s.Add(StatusWeak, 25, 2, "a")
	s.Add(StatusArmor, 5, 1, "a")
	s.Add(StatusCurse, 3, DurationWholeFight, "a")

	expired := s.Tick()
	if len(expired) != 1 || expired[0].Kind != StatusArmor {
		t.Fatalf("expected only armor to expire, got %v", expired)
	}
	if !s.Has(StatusWeak) || !s.Has(StatusCurse) {
		t.Error("weak and curse should survive the first tick")
	}

	expired = s.Tick()
	if len(expired) != 1 || expired[0].Kind != StatusWeak {
		t.Fatalf("expected weak to expire on second tick, got %v", expired)
	}
	if !s.Has(StatusCurse) {
		t.Error("whole-fight curse must never tick away")
	}
}

func TestStatusStoreRemoveFromSource(t *testing.T) {
	s := NewStatusStore()
	s.Add(StatusPoison, 2, 3, "viper")
	s.Add(StatusPoison, 4, 3, "widow")

	s.RemoveFromSource(StatusPoison, "viper")
	if got := s.Active(StatusPoison); got != 4 {
		t.Errorf("expected only widow's poison to remain, got potency %d", got)
	}
}

func TestStatusStoreClearAll(t *testing.T) {
	s := NewStatusStore()
	s.Add(StatusCurse, 1, DurationWholeFight, "a")
	s.Add(StatusShield, 10, 2, "a")
	s.ClearAll()
	if len(s.Snapshot()) != 0 {
		t.Error("clear must drop whole-fight effects too")
	}
}

func TestConsumeShield(t *testing.T) {
	s := NewStatusStore()
	s.Add(StatusShield, 4, 2, "a")
	s.Add(StatusShield, 6, 2, "a")

	if got := s.ConsumeShield(7); got != 7 {
		t.Fatalf("expected 7 absorbed, got %d", got)
	}
	// Oldest instance fully spent, second keeps 3.
	snap := s.Snapshot()
	if len(snap) != 1 || snap[0].Potency != 3 {
		t.Errorf("expected one shield with potency 3, got %v", snap)
	}

	if got := s.ConsumeShield(10); got != 3 {
		t.Errorf("expected remaining 3 absorbed, got %d", got)
	}
	if s.Has(StatusShield) {
		t.Error("shield should be fully spent")
	}
}

func TestDamageModifiersProjection(t *testing.T) {
	s := NewStatusStore()
	s.Add(StatusStrength, 4, 2, "a")
	s.Add(StatusCurse, 1, 2, "a")
	s.Add(StatusWeak, 25, 2, "a")
	s.Add(StatusBreak, 50, 2, "a")
	s.Add(StatusArmor, 7, 2, "a")
	s.Add(StatusFocus, 10, 2, "a") // no pipeline term

	m := s.DamageModifiers()
	if m.FlatBonus != 4 || m.FlatPenalty != 1 || m.ArmorFlat != 7 {
		t.Errorf("flat terms wrong: %+v", m)
	}
	if len(m.OutgoingFactors) != 1 || m.OutgoingFactors[0] != 0.75 {
		t.Errorf("weak factor wrong: %v", m.OutgoingFactors)
	}
	if len(m.IncomingFactors) != 1 || m.IncomingFactors[0] != 1.5 {
		t.Errorf("break factor wrong: %v", m.IncomingFactors)
	}
}
