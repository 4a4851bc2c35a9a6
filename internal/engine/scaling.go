package engine

import (
	"fmt"
	"math"
)

// Scale computes a scaled effect amount from the source's tracked state:
// bonus = floor(tracked * multiplier), clamped to [0, cap], added to the
// base amount. A Cap <= 0 leaves the bonus uncapped. Missing-health
// scaling uses (maxHealth - currentHealth) as the tracked value, not a
// percentage; the cap still bounds the bonus.
//
// An unknown scaling type is a configuration error; the base amount is
// returned unchanged alongside the error.
func Scale(base int, sc Scaling, ledger Ledger, snap EntitySnapshot) (int, error) {
	tracked, err := trackedValue(sc.Type, ledger, snap)
	if err != nil {
		return base, err
	}

	bonus := int(math.Floor(float64(tracked) * sc.Multiplier))
	if bonus < 0 {
		bonus = 0
	}
	if sc.Cap > 0 && bonus > sc.Cap {
		bonus = sc.Cap
	}
	return base + bonus, nil
}

func trackedValue(t ScalingType, ledger Ledger, snap EntitySnapshot) (int, error) {
	switch t {
	case ScaleComboCount:
		return ledger.ComboCount, nil
	case ScaleCardsPlayedThisTurn:
		return ledger.CardsPlayedThisTurn, nil
	case ScaleCardsPlayedThisFight:
		return ledger.CardsPlayedThisFight, nil
	case ScaleDamageDealtThisFight:
		return ledger.DamageDealtThisFight, nil
	case ScaleDamageTakenThisFight:
		return ledger.DamageTakenThisFight, nil
	case ScaleMissingHealth:
		missing := snap.MaxHealth - snap.Health
		if missing < 0 {
			missing = 0
		}
		return missing, nil
	case ScaleZeroCostThisTurn:
		return ledger.ZeroCostThisTurn, nil
	case ScaleZeroCostThisFight:
		return ledger.ZeroCostThisFight, nil
	case ScaleStrengthStacks:
		return ledger.StrengthStacks, nil
	default:
		return 0, fmt.Errorf("%w: scaling type %d", ErrUnknownScaling, t)
	}
}
