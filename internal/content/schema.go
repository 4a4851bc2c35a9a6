package content

import (
	"fmt"

	"github.com/shatterloop/skirmish/internal/engine"
)

// cardFile is the top-level YAML structure of a card library file.
type cardFile struct {
	Cards []cardEntry `yaml:"cards"`
}

type cardEntry struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Type        string        `yaml:"type"`
	Cost        int           `yaml:"cost"`
	Combo       bool          `yaml:"combo"`
	Effects     []effectEntry `yaml:"effects"`
}

type effectEntry struct {
	Kind        string            `yaml:"kind"`
	Amount      int               `yaml:"amount"`
	Target      string            `yaml:"target"`
	Duration    int               `yaml:"duration"`
	Condition   *conditionEntry   `yaml:"condition"`
	Alternative *alternativeEntry `yaml:"alternative"`
	Scaling     *scalingEntry     `yaml:"scaling"`
}

type conditionEntry struct {
	Type      string `yaml:"type"`
	Threshold int    `yaml:"threshold"`
	Stance    string `yaml:"stance"`    // for stance_is
	CardType  string `yaml:"card_type"` // for last_card_type
}

type alternativeEntry struct {
	Kind     string `yaml:"kind"`
	Amount   int    `yaml:"amount"`
	Duration int    `yaml:"duration"`
	Logic    string `yaml:"logic"`
}

type scalingEntry struct {
	Type       string  `yaml:"type"`
	Multiplier float64 `yaml:"multiplier"`
	Cap        int     `yaml:"cap"`
}

func (ce cardEntry) toCard() (*engine.Card, error) {
	if ce.Name == "" {
		return nil, fmt.Errorf("card with empty name")
	}
	cardType, err := parseCardType(ce.Type)
	if err != nil {
		return nil, fmt.Errorf("card %q: %w", ce.Name, err)
	}
	if len(ce.Effects) == 0 {
		return nil, fmt.Errorf("card %q: no effects", ce.Name)
	}

	card := &engine.Card{
		Name:        ce.Name,
		Description: ce.Description,
		Type:        cardType,
		Cost:        ce.Cost,
		IsCombo:     ce.Combo,
	}
	for i, ee := range ce.Effects {
		eff, err := ee.toEffect()
		if err != nil {
			return nil, fmt.Errorf("card %q effect %d: %w", ce.Name, i+1, err)
		}
		card.Effects = append(card.Effects, eff)
	}
	return card, nil
}

func (ee effectEntry) toEffect() (engine.CardEffect, error) {
	kind, err := parseEffectKind(ee.Kind)
	if err != nil {
		return engine.CardEffect{}, err
	}
	target, err := parseTarget(ee.Target)
	if err != nil {
		return engine.CardEffect{}, err
	}
	if _, isStatus := kind.StatusKind(); isStatus && ee.Duration == 0 {
		return engine.CardEffect{}, fmt.Errorf("%s effect needs a duration (-1 for the whole fight)", ee.Kind)
	}

	eff := engine.CardEffect{
		Kind:     kind,
		Amount:   ee.Amount,
		Target:   target,
		Duration: ee.Duration,
	}

	if ee.Condition != nil {
		cond, err := ee.Condition.toCondition()
		if err != nil {
			return engine.CardEffect{}, err
		}
		if ee.Alternative == nil {
			return engine.CardEffect{}, fmt.Errorf("condition without alternative")
		}
		eff.Condition = &cond
	}
	if ee.Alternative != nil {
		if ee.Condition == nil {
			return engine.CardEffect{}, fmt.Errorf("alternative without condition")
		}
		alt, err := ee.Alternative.toAlternative()
		if err != nil {
			return engine.CardEffect{}, err
		}
		eff.Alternative = &alt
	}
	if ee.Scaling != nil {
		sc, err := ee.Scaling.toScaling()
		if err != nil {
			return engine.CardEffect{}, err
		}
		eff.Scaling = &sc
	}
	return eff, nil
}

func (ce conditionEntry) toCondition() (engine.Condition, error) {
	condType, err := parseConditionType(ce.Type)
	if err != nil {
		return engine.Condition{}, err
	}
	threshold := ce.Threshold
	switch condType {
	case engine.CondStanceIs:
		stance, err := parseStance(ce.Stance)
		if err != nil {
			return engine.Condition{}, err
		}
		threshold = int(stance)
	case engine.CondLastCardType:
		ct, err := parseCardType(ce.CardType)
		if err != nil {
			return engine.Condition{}, err
		}
		threshold = int(ct)
	}
	return engine.Condition{Type: condType, Threshold: threshold}, nil
}

func (ae alternativeEntry) toAlternative() (engine.Alternative, error) {
	kind, err := parseEffectKind(ae.Kind)
	if err != nil {
		return engine.Alternative{}, err
	}
	if _, isStatus := kind.StatusKind(); isStatus && ae.Duration == 0 {
		return engine.Alternative{}, fmt.Errorf("%s alternative needs a duration", ae.Kind)
	}
	logic, err := parseLogic(ae.Logic)
	if err != nil {
		return engine.Alternative{}, err
	}
	return engine.Alternative{
		Kind:     kind,
		Amount:   ae.Amount,
		Duration: ae.Duration,
		Logic:    logic,
	}, nil
}

func (se scalingEntry) toScaling() (engine.Scaling, error) {
	scType, err := parseScalingType(se.Type)
	if err != nil {
		return engine.Scaling{}, err
	}
	if se.Multiplier <= 0 {
		return engine.Scaling{}, fmt.Errorf("scaling needs a positive multiplier")
	}
	return engine.Scaling{Type: scType, Multiplier: se.Multiplier, Cap: se.Cap}, nil
}

// --- Enum name parsing. Unknown names are errors, never defaults. ---

func parseCardType(s string) (engine.CardType, error) {
	switch s {
	case "strike":
		return engine.CardTypeStrike, nil
	case "guard":
		return engine.CardTypeGuard, nil
	case "skill":
		return engine.CardTypeSkill, nil
	case "power":
		return engine.CardTypePower, nil
	default:
		return 0, fmt.Errorf("unknown card type %q", s)
	}
}

func parseEffectKind(s string) (engine.EffectKind, error) {
	switch s {
	case "damage":
		return engine.EffectDamage, nil
	case "heal":
		return engine.EffectHeal, nil
	case "energy":
		return engine.EffectEnergy, nil
	case "strength":
		return engine.EffectApplyStrength, nil
	case "curse":
		return engine.EffectApplyCurse, nil
	case "weak":
		return engine.EffectApplyWeak, nil
	case "break":
		return engine.EffectApplyBreak, nil
	case "armor":
		return engine.EffectApplyArmor, nil
	case "poison":
		return engine.EffectApplyPoison, nil
	case "regen":
		return engine.EffectApplyRegen, nil
	case "shield":
		return engine.EffectApplyShield, nil
	case "thorns":
		return engine.EffectApplyThorns, nil
	case "stun":
		return engine.EffectApplyStun, nil
	case "focus":
		return engine.EffectApplyFocus, nil
	default:
		return 0, fmt.Errorf("unknown effect kind %q", s)
	}
}

func parseTarget(s string) (engine.TargetSelector, error) {
	switch s {
	case "", "chosen":
		return engine.TargetChosen, nil
	case "self":
		return engine.TargetSelf, nil
	case "all_foes":
		return engine.TargetAllFoes, nil
	case "owner":
		return engine.TargetOwner, nil
	default:
		return 0, fmt.Errorf("unknown target %q", s)
	}
}

func parseConditionType(s string) (engine.ConditionType, error) {
	switch s {
	case "source_health_below":
		return engine.CondSourceHealthBelow, nil
	case "source_health_above":
		return engine.CondSourceHealthAbove, nil
	case "target_health_below":
		return engine.CondTargetHealthBelow, nil
	case "target_health_above":
		return engine.CondTargetHealthAbove, nil
	case "damage_taken_this_fight":
		return engine.CondDamageTakenThisFight, nil
	case "damage_taken_last_round":
		return engine.CondDamageTakenLastRound, nil
	case "healing_received_this_fight":
		return engine.CondHealingReceivedThisFight, nil
	case "healing_received_last_round":
		return engine.CondHealingReceivedLastRound, nil
	case "cards_played_this_turn":
		return engine.CondCardsPlayedThisTurn, nil
	case "cards_played_this_fight":
		return engine.CondCardsPlayedThisFight, nil
	case "combo_count":
		return engine.CondComboCount, nil
	case "perfection_streak":
		return engine.CondPerfectionStreak, nil
	case "zero_cost_this_turn":
		return engine.CondZeroCostThisTurn, nil
	case "zero_cost_this_fight":
		return engine.CondZeroCostThisFight, nil
	case "cards_in_hand":
		return engine.CondCardsInHand, nil
	case "cards_in_deck":
		return engine.CondCardsInDeck, nil
	case "cards_in_discard":
		return engine.CondCardsInDiscard, nil
	case "energy_remaining":
		return engine.CondEnergyRemaining, nil
	case "stance_is":
		return engine.CondStanceIs, nil
	case "last_card_type":
		return engine.CondLastCardType, nil
	default:
		return 0, fmt.Errorf("unknown condition type %q", s)
	}
}

func parseScalingType(s string) (engine.ScalingType, error) {
	switch s {
	case "combo_count":
		return engine.ScaleComboCount, nil
	case "cards_played_this_turn":
		return engine.ScaleCardsPlayedThisTurn, nil
	case "cards_played_this_fight":
		return engine.ScaleCardsPlayedThisFight, nil
	case "damage_dealt_this_fight":
		return engine.ScaleDamageDealtThisFight, nil
	case "damage_taken_this_fight":
		return engine.ScaleDamageTakenThisFight, nil
	case "missing_health":
		return engine.ScaleMissingHealth, nil
	case "zero_cost_this_turn":
		return engine.ScaleZeroCostThisTurn, nil
	case "zero_cost_this_fight":
		return engine.ScaleZeroCostThisFight, nil
	case "strength_stacks":
		return engine.ScaleStrengthStacks, nil
	default:
		return 0, fmt.Errorf("unknown scaling type %q", s)
	}
}

func parseStance(s string) (engine.Stance, error) {
	switch s {
	case "aggressive":
		return engine.StanceAggressive, nil
	case "defensive":
		return engine.StanceDefensive, nil
	case "focused":
		return engine.StanceFocused, nil
	case "none":
		return engine.StanceNone, nil
	default:
		return 0, fmt.Errorf("unknown stance %q", s)
	}
}

func parseLogic(s string) (engine.AltLogic, error) {
	switch s {
	case "replace":
		return engine.LogicReplace, nil
	case "additional":
		return engine.LogicAdditional, nil
	default:
		return 0, fmt.Errorf("unknown alternative logic %q", s)
	}
}
