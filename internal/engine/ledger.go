package engine

// Ledger tracks one entity's running combat counters. Conditions and
// scaling clauses read it; the resolver writes it. All counters are
// non-negative. One ledger per entity, reset fully at fight start and
// partially at turn start.
type Ledger struct {
	CardsPlayedThisTurn  int
	CardsPlayedThisFight int
	ZeroCostThisTurn     int
	ZeroCostThisFight    int

	DamageDealtThisFight int
	DamageTakenThisFight int
	DamageTakenThisRound int
	DamageTakenLastRound int

	HealingGivenThisFight    int
	HealingReceivedThisFight int
	HealingReceivedThisRound int
	HealingReceivedLastRound int

	ComboCount       int
	Stance           Stance
	PerfectionStreak int
	Stunned          bool
	StrengthStacks   int
	LastCardType     CardType
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// RecordCardPlayed notes a completed card play for turn and fight counts.
func (l *Ledger) RecordCardPlayed(cost int, isCombo bool, cardType CardType, isZeroCost bool) {
	l.CardsPlayedThisTurn++
	l.CardsPlayedThisFight++
	if isZeroCost {
		l.ZeroCostThisTurn++
		l.ZeroCostThisFight++
	}
	if isCombo {
		l.ComboCount++
	} else {
		l.ComboCount = 0
	}
	l.LastCardType = cardType
}

func (l *Ledger) RecordDamageDealt(n int) {
	if n < 0 {
		n = 0
	}
	l.DamageDealtThisFight += n
}

func (l *Ledger) RecordDamageTaken(n int) {
	if n < 0 {
		n = 0
	}
	l.DamageTakenThisFight += n
	l.DamageTakenThisRound += n
	if n > 0 {
		l.PerfectionStreak = 0
	}
}

func (l *Ledger) RecordHealingGiven(n int) {
	if n < 0 {
		n = 0
	}
	l.HealingGivenThisFight += n
}

func (l *Ledger) RecordHealingReceived(n int) {
	if n < 0 {
		n = 0
	}
	l.HealingReceivedThisFight += n
	l.HealingReceivedThisRound += n
}

func (l *Ledger) SetComboCount(n int) {
	if n < 0 {
		n = 0
	}
	l.ComboCount = n
}

func (l *Ledger) SetStance(s Stance) {
	l.Stance = s
}

func (l *Ledger) SetStunned(b bool) {
	l.Stunned = b
}

func (l *Ledger) SetStrengthStacks(n int) {
	if n < 0 {
		n = 0
	}
	l.StrengthStacks = n
}

// ResetForNewFight zeroes everything. Must run before the first card of a
// fight resolves.
func (l *Ledger) ResetForNewFight() {
	*l = Ledger{}
}

// ResetForNewTurn clears the per-turn counters and rolls the current-round
// totals into the LastRound slots. Must run exactly once per turn before
// any card of the new turn resolves, or LastRound comparisons go stale.
// If the entity took no damage this round its perfection streak grows.
func (l *Ledger) ResetForNewTurn() {
	l.CardsPlayedThisTurn = 0
	l.ZeroCostThisTurn = 0

	if l.DamageTakenThisRound == 0 {
		l.PerfectionStreak++
	}
	l.DamageTakenLastRound = l.DamageTakenThisRound
	l.DamageTakenThisRound = 0
	l.HealingReceivedLastRound = l.HealingReceivedThisRound
	l.HealingReceivedThisRound = 0
}

// Snapshot returns a value copy for read-only consumers.
func (l *Ledger) Snapshot() Ledger {
	return *l
}
