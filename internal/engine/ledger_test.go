package engine

import "testing"

func TestLedgerCardCounts(t *testing.T) {
	l := NewLedger()
	l.RecordCardPlayed(1, false, CardTypeStrike, false)
	l.RecordCardPlayed(0, true, CardTypeSkill, true)
	l.RecordCardPlayed(0, true, CardTypeSkill, true)

	if l.CardsPlayedThisTurn != 3 || l.CardsPlayedThisFight != 3 {
		t.Errorf("card counts wrong: %+v", l)
	}
	if l.ZeroCostThisTurn != 2 || l.ZeroCostThisFight != 2 {
		t.Errorf("zero-cost counts wrong: %+v", l)
	}
	if l.ComboCount != 2 {
		t.Errorf("expected combo count 2, got %d", l.ComboCount)
	}
	if l.LastCardType != CardTypeSkill {
		t.Errorf("expected last card type Skill, got %s", l.LastCardType)
	}
}

func TestLedgerComboBreaks(t *testing.T) {
	l := NewLedger()
	l.RecordCardPlayed(1, true, CardTypeStrike, false)
	l.RecordCardPlayed(1, true, CardTypeStrike, false)
	l.RecordCardPlayed(2, false, CardTypeGuard, false)
	if l.ComboCount != 0 {
		t.Errorf("non-combo card must reset the chain, got %d", l.ComboCount)
	}
}

func TestLedgerTurnReset(t *testing.T) {
	l := NewLedger()
	l.RecordCardPlayed(0, false, CardTypeStrike, true)
	l.RecordDamageTaken(6)
	l.RecordHealingReceived(3)
	l.RecordDamageDealt(9)

	l.ResetForNewTurn()

	if l.CardsPlayedThisTurn != 0 || l.ZeroCostThisTurn != 0 {
		t.Errorf("per-turn counters must reset: %+v", l)
	}
	if l.CardsPlayedThisFight != 1 || l.DamageDealtThisFight != 9 {
		t.Errorf("fight counters must survive the turn: %+v", l)
	}
	if l.DamageTakenLastRound != 6 || l.DamageTakenThisRound != 0 {
		t.Errorf("damage rollover wrong: %+v", l)
	}
	if l.HealingReceivedLastRound != 3 || l.HealingReceivedThisRound != 0 {
		t.Errorf("healing rollover wrong: %+v", l)
	}
}

func TestLedgerPerfectionStreak(t *testing.T) {
	l := NewLedger()

	l.ResetForNewTurn()
	l.ResetForNewTurn()
	if l.PerfectionStreak != 2 {
		t.Errorf("two clean rounds should give streak 2, got %d", l.PerfectionStreak)
	}

	l.RecordDamageTaken(1)
	if l.PerfectionStreak != 0 {
		t.Errorf("taking damage must break the streak immediately, got %d", l.PerfectionStreak)
	}
	l.ResetForNewTurn()
	if l.PerfectionStreak != 0 {
		t.Errorf("the round damage was taken does not count, got %d", l.PerfectionStreak)
	}
	l.ResetForNewTurn()
	if l.PerfectionStreak != 1 {
		t.Errorf("streak should rebuild after a clean round, got %d", l.PerfectionStreak)
	}
}

func TestLedgerFightReset(t *testing.T) {
	l := NewLedger()
	l.RecordCardPlayed(1, true, CardTypeStrike, false)
	l.RecordDamageDealt(20)
	l.SetStance(StanceAggressive)
	l.SetStunned(true)

	l.ResetForNewFight()
	if *l != (Ledger{}) {
		t.Errorf("fight reset must zero every field: %+v", l)
	}
}

func TestLedgerNegativeClamps(t *testing.T) {
	l := NewLedger()
	l.RecordDamageDealt(-4)
	l.RecordDamageTaken(-4)
	l.RecordHealingReceived(-4)
	if l.DamageDealtThisFight != 0 || l.DamageTakenThisFight != 0 || l.HealingReceivedThisFight != 0 {
		t.Errorf("negative amounts must clamp to zero: %+v", l)
	}
}
