package engine

// --- Enums ---

// EntityID identifies a combatant within a combat instance. Networked
// callers mint UUIDs; tests use plain names.
type EntityID string

type Stance int

const (
	StanceNone Stance = iota
	StanceAggressive
	StanceDefensive
	StanceFocused
)

func (s Stance) String() string {
	switch s {
	case StanceAggressive:
		return "Aggressive"
	case StanceDefensive:
		return "Defensive"
	case StanceFocused:
		return "Focused"
	default:
		return "None"
	}
}

type CardType int

const (
	CardTypeNone CardType = iota
	CardTypeStrike
	CardTypeGuard
	CardTypeSkill
	CardTypePower
)

func (ct CardType) String() string {
	switch ct {
	case CardTypeStrike:
		return "Strike"
	case CardTypeGuard:
		return "Guard"
	case CardTypeSkill:
		return "Skill"
	case CardTypePower:
		return "Power"
	default:
		return "None"
	}
}

// StatusKind enumerates the closed set of status effect kinds.
type StatusKind int

const (
	StatusStrength StatusKind = iota // flat bonus to outgoing damage
	StatusCurse                      // flat penalty to outgoing damage
	StatusWeak                       // percentage reduction of outgoing damage
	StatusBreak                      // percentage amplification of incoming damage
	StatusArmor                      // flat reduction of incoming damage
	StatusPoison                     // damage at the owner's turn start
	StatusRegen                      // healing at the owner's turn start
	StatusShield                     // absorbs damage before health
	StatusThorns                     // reflects damage to attackers
	StatusStun                       // skip flag; single instance
	StatusFocus                      // critical chance boost; single instance
)

func (k StatusKind) String() string {
	switch k {
	case StatusStrength:
		return "Strength"
	case StatusCurse:
		return "Curse"
	case StatusWeak:
		return "Weak"
	case StatusBreak:
		return "Break"
	case StatusArmor:
		return "Armor"
	case StatusPoison:
		return "Poison"
	case StatusRegen:
		return "Regen"
	case StatusShield:
		return "Shield"
	case StatusThorns:
		return "Thorns"
	case StatusStun:
		return "Stun"
	case StatusFocus:
		return "Focus"
	default:
		return "Unknown"
	}
}

// SingleInstance reports whether adding the kind twice is idempotent
// rather than stacking.
func (k StatusKind) SingleInstance() bool {
	return k == StatusStun || k == StatusFocus
}

// EffectKind maps a status kind back to the ApplyX effect kind that
// grants it.
func (k StatusKind) EffectKind() EffectKind {
	switch k {
	case StatusStrength:
		return EffectApplyStrength
	case StatusCurse:
		return EffectApplyCurse
	case StatusWeak:
		return EffectApplyWeak
	case StatusBreak:
		return EffectApplyBreak
	case StatusArmor:
		return EffectApplyArmor
	case StatusPoison:
		return EffectApplyPoison
	case StatusRegen:
		return EffectApplyRegen
	case StatusShield:
		return EffectApplyShield
	case StatusThorns:
		return EffectApplyThorns
	case StatusStun:
		return EffectApplyStun
	default:
		return EffectApplyFocus
	}
}

// EffectKind enumerates what a card effect does when it resolves.
type EffectKind int

const (
	EffectDamage EffectKind = iota
	EffectHeal
	EffectEnergy
	EffectApplyStrength
	EffectApplyCurse
	EffectApplyWeak
	EffectApplyBreak
	EffectApplyArmor
	EffectApplyPoison
	EffectApplyRegen
	EffectApplyShield
	EffectApplyThorns
	EffectApplyStun
	EffectApplyFocus
)

func (k EffectKind) String() string {
	switch k {
	case EffectDamage:
		return "Damage"
	case EffectHeal:
		return "Heal"
	case EffectEnergy:
		return "Energy"
	case EffectApplyStrength:
		return "ApplyStrength"
	case EffectApplyCurse:
		return "ApplyCurse"
	case EffectApplyWeak:
		return "ApplyWeak"
	case EffectApplyBreak:
		return "ApplyBreak"
	case EffectApplyArmor:
		return "ApplyArmor"
	case EffectApplyPoison:
		return "ApplyPoison"
	case EffectApplyRegen:
		return "ApplyRegen"
	case EffectApplyShield:
		return "ApplyShield"
	case EffectApplyThorns:
		return "ApplyThorns"
	case EffectApplyStun:
		return "ApplyStun"
	case EffectApplyFocus:
		return "ApplyFocus"
	default:
		return "Unknown"
	}
}

// StatusKind maps an ApplyX effect kind to the status kind it grants.
// ok is false for Damage, Heal and Energy.
func (k EffectKind) StatusKind() (StatusKind, bool) {
	switch k {
	case EffectApplyStrength:
		return StatusStrength, true
	case EffectApplyCurse:
		return StatusCurse, true
	case EffectApplyWeak:
		return StatusWeak, true
	case EffectApplyBreak:
		return StatusBreak, true
	case EffectApplyArmor:
		return StatusArmor, true
	case EffectApplyPoison:
		return StatusPoison, true
	case EffectApplyRegen:
		return StatusRegen, true
	case EffectApplyShield:
		return StatusShield, true
	case EffectApplyThorns:
		return StatusThorns, true
	case EffectApplyStun:
		return StatusStun, true
	case EffectApplyFocus:
		return StatusFocus, true
	default:
		return 0, false
	}
}

// Hostile reports whether the kind is a negative effect from the target's
// point of view. Entities at zero health are invalid targets for hostile
// effects only.
func (k EffectKind) Hostile() bool {
	switch k {
	case EffectDamage, EffectApplyCurse, EffectApplyWeak, EffectApplyBreak,
		EffectApplyPoison, EffectApplyStun:
		return true
	default:
		return false
	}
}

// TargetSelector decides which entities a card effect resolves against.
type TargetSelector int

const (
	// TargetChosen applies to each target the orchestrator passed in.
	TargetChosen TargetSelector = iota
	// TargetSelf applies to the card's source.
	TargetSelf
	// TargetAllFoes applies to every passed-in target; the orchestrator
	// expands "all" before calling the engine.
	TargetAllFoes
	// TargetOwner applies to the source's owning player (pets), or the
	// source itself when it has no owner.
	TargetOwner
)

func (t TargetSelector) String() string {
	switch t {
	case TargetSelf:
		return "Self"
	case TargetAllFoes:
		return "AllFoes"
	case TargetOwner:
		return "Owner"
	default:
		return "Chosen"
	}
}

// ConditionType enumerates the closed set of card effect conditions.
// Each type is bound to exactly one comparison operator (see Evaluate).
type ConditionType int

const (
	CondSourceHealthBelow ConditionType = iota // strict <
	CondSourceHealthAbove                      // strict >
	CondTargetHealthBelow                      // strict <
	CondTargetHealthAbove                      // strict >
	CondDamageTakenThisFight                   // >=
	CondDamageTakenLastRound                   // >=
	CondHealingReceivedThisFight               // >=
	CondHealingReceivedLastRound               // >=
	CondCardsPlayedThisTurn                    // >=
	CondCardsPlayedThisFight                   // >=
	CondComboCount                             // >=
	CondPerfectionStreak                       // >=
	CondZeroCostThisTurn                       // >=
	CondZeroCostThisFight                      // >=
	CondCardsInHand                            // >=
	CondCardsInDeck                            // >=
	CondCardsInDiscard                         // >=
	CondEnergyRemaining                        // >=
	CondStanceIs                               // ==
	CondLastCardType                           // ==
)

func (c ConditionType) String() string {
	switch c {
	case CondSourceHealthBelow:
		return "SourceHealthBelow"
	case CondSourceHealthAbove:
		return "SourceHealthAbove"
	case CondTargetHealthBelow:
		return "TargetHealthBelow"
	case CondTargetHealthAbove:
		return "TargetHealthAbove"
	case CondDamageTakenThisFight:
		return "DamageTakenThisFight"
	case CondDamageTakenLastRound:
		return "DamageTakenLastRound"
	case CondHealingReceivedThisFight:
		return "HealingReceivedThisFight"
	case CondHealingReceivedLastRound:
		return "HealingReceivedLastRound"
	case CondCardsPlayedThisTurn:
		return "CardsPlayedThisTurn"
	case CondCardsPlayedThisFight:
		return "CardsPlayedThisFight"
	case CondComboCount:
		return "ComboCount"
	case CondPerfectionStreak:
		return "PerfectionStreak"
	case CondZeroCostThisTurn:
		return "ZeroCostThisTurn"
	case CondZeroCostThisFight:
		return "ZeroCostThisFight"
	case CondCardsInHand:
		return "CardsInHand"
	case CondCardsInDeck:
		return "CardsInDeck"
	case CondCardsInDiscard:
		return "CardsInDiscard"
	case CondEnergyRemaining:
		return "EnergyRemaining"
	case CondStanceIs:
		return "StanceIs"
	case CondLastCardType:
		return "LastCardType"
	default:
		return "Unknown"
	}
}

// ScalingType enumerates which tracked value a scaling clause reads.
type ScalingType int

const (
	ScaleComboCount ScalingType = iota
	ScaleCardsPlayedThisTurn
	ScaleCardsPlayedThisFight
	ScaleDamageDealtThisFight
	ScaleDamageTakenThisFight
	ScaleMissingHealth
	ScaleZeroCostThisTurn
	ScaleZeroCostThisFight
	ScaleStrengthStacks
)

func (s ScalingType) String() string {
	switch s {
	case ScaleComboCount:
		return "ComboCount"
	case ScaleCardsPlayedThisTurn:
		return "CardsPlayedThisTurn"
	case ScaleCardsPlayedThisFight:
		return "CardsPlayedThisFight"
	case ScaleDamageDealtThisFight:
		return "DamageDealtThisFight"
	case ScaleDamageTakenThisFight:
		return "DamageTakenThisFight"
	case ScaleMissingHealth:
		return "MissingHealth"
	case ScaleZeroCostThisTurn:
		return "ZeroCostThisTurn"
	case ScaleZeroCostThisFight:
		return "ZeroCostThisFight"
	case ScaleStrengthStacks:
		return "StrengthStacks"
	default:
		return "Unknown"
	}
}

// AltLogic selects how a conditional effect's alternative combines with
// the main effect.
type AltLogic int

const (
	// LogicReplace: condition met → main effect, not met → alternative.
	// Exactly one of the two applies.
	LogicReplace AltLogic = iota
	// LogicAdditional: main effect always applies; the alternative applies
	// as a bonus only when the condition is met.
	LogicAdditional
)

func (l AltLogic) String() string {
	if l == LogicAdditional {
		return "Additional"
	}
	return "Replace"
}

// --- Card definition (static, authored content) ---

// Condition gates a card effect on a tracked or snapshot value.
type Condition struct {
	Type      ConditionType
	Threshold int
}

// Alternative is the secondary outcome of a conditional effect.
type Alternative struct {
	Kind     EffectKind
	Amount   int
	Duration int // for status kinds
	Logic    AltLogic
}

// Scaling grows an effect's amount from a tracked value:
// bonus = floor(tracked * Multiplier), clamped to [0, Cap].
// Cap <= 0 means uncapped.
type Scaling struct {
	Type       ScalingType
	Multiplier float64
	Cap        int
}

// CardEffect is one immutable effect clause on a card. A card may carry
// several; they resolve in declaration order.
type CardEffect struct {
	Kind        EffectKind
	Amount      int
	Target      TargetSelector
	Duration    int // for status kinds; DurationWholeFight for the whole fight
	Condition   *Condition
	Alternative *Alternative
	Scaling     *Scaling
}

// Card is an immutable authored card definition. It references no entity;
// it is bound to source/target entities only at resolution time.
type Card struct {
	Name        string
	Description string
	Type        CardType
	Cost        int
	IsCombo     bool
	Effects     []CardEffect
}

func (c *Card) String() string {
	return c.Name
}

// --- Entity (runtime combatant) ---

// PileCounts mirrors the orchestrator's hand/deck/discard sizes. Card
// containers live outside the engine; the orchestrator pushes counts in
// so pile conditions can be evaluated.
type PileCounts struct {
	Hand    int
	Deck    int
	Discard int
}

// Entity is a combatant participating in a combat instance. It owns one
// StatusStore and one Ledger for the lifetime of its participation.
type Entity struct {
	ID        EntityID
	Name      string
	OwnerID   EntityID // owning player for pets; empty for players
	Health    int
	MaxHealth int
	Energy    int
	MaxEnergy int
	Piles     PileCounts

	Statuses *StatusStore
	Ledger   *Ledger
}

// NewEntity creates a combatant at full health and energy.
func NewEntity(id EntityID, name string, maxHealth, maxEnergy int) *Entity {
	return &Entity{
		ID:        id,
		Name:      name,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
		Statuses:  NewStatusStore(),
		Ledger:    NewLedger(),
	}
}

// Alive reports whether the entity is still a legal target for hostile
// effects.
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// EntitySnapshot is a read-only view of an entity at evaluation time.
type EntitySnapshot struct {
	ID        EntityID
	Name      string
	Health    int
	MaxHealth int
	Energy    int
	MaxEnergy int
	Piles     PileCounts
	Stunned   bool
}

// Snapshot captures the entity's current values for condition and scaling
// evaluation.
func (e *Entity) Snapshot() EntitySnapshot {
	return EntitySnapshot{
		ID:        e.ID,
		Name:      e.Name,
		Health:    e.Health,
		MaxHealth: e.MaxHealth,
		Energy:    e.Energy,
		MaxEnergy: e.MaxEnergy,
		Piles:     e.Piles,
		Stunned:   e.Statuses.Has(StatusStun),
	}
}
