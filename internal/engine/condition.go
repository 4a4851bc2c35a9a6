package engine

import "fmt"

// Evaluate answers whether a condition holds for the given source/target
// pair. Each condition type carries its comparison operator by definition:
// health conditions compare strictly, counter conditions use >=, and
// stance/last-card-type use equality. Counter, pile and energy conditions
// read the card player's own side (source snapshot and ledger).
//
// An unknown condition type fails closed: false plus a configuration
// error, never a guessed default.
func Evaluate(cond Condition, source, target EntitySnapshot, sourceLedger, targetLedger Ledger) (bool, error) {
	t := cond.Threshold
	switch cond.Type {
	case CondSourceHealthBelow:
		return source.Health < t, nil
	case CondSourceHealthAbove:
		return source.Health > t, nil
	case CondTargetHealthBelow:
		return target.Health < t, nil
	case CondTargetHealthAbove:
		return target.Health > t, nil
	case CondDamageTakenThisFight:
		return sourceLedger.DamageTakenThisFight >= t, nil
	case CondDamageTakenLastRound:
		return sourceLedger.DamageTakenLastRound >= t, nil
	case CondHealingReceivedThisFight:
		return sourceLedger.HealingReceivedThisFight >= t, nil
	case CondHealingReceivedLastRound:
		return sourceLedger.HealingReceivedLastRound >= t, nil
	case CondCardsPlayedThisTurn:
		return sourceLedger.CardsPlayedThisTurn >= t, nil
	case CondCardsPlayedThisFight:
		return sourceLedger.CardsPlayedThisFight >= t, nil
	case CondComboCount:
		return sourceLedger.ComboCount >= t, nil
	case CondPerfectionStreak:
		return sourceLedger.PerfectionStreak >= t, nil
	case CondZeroCostThisTurn:
		return sourceLedger.ZeroCostThisTurn >= t, nil
	case CondZeroCostThisFight:
		return sourceLedger.ZeroCostThisFight >= t, nil
	case CondCardsInHand:
		return source.Piles.Hand >= t, nil
	case CondCardsInDeck:
		return source.Piles.Deck >= t, nil
	case CondCardsInDiscard:
		return source.Piles.Discard >= t, nil
	case CondEnergyRemaining:
		return source.Energy >= t, nil
	case CondStanceIs:
		return sourceLedger.Stance == Stance(t), nil
	case CondLastCardType:
		return sourceLedger.LastCardType == CardType(t), nil
	default:
		return false, fmt.Errorf("%w: condition type %d", ErrUnknownCondition, cond.Type)
	}
}
