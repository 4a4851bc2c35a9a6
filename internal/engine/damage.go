package engine

import "math"

// ModifierSet is the projection of a status store that the damage
// pipeline consumes. Source-side fields are FlatBonus, FlatPenalty and
// OutgoingFactors; target-side fields are IncomingFactors and ArmorFlat.
type ModifierSet struct {
	FlatBonus       int       // Strength
	FlatPenalty     int       // Curse
	OutgoingFactors []float64 // Weak, one factor per stack
	IncomingFactors []float64 // Break, one factor per stack
	ArmorFlat       int       // Armor
}

// ResolveDamage runs the ordered damage modification pipeline. The
// evaluation order is the correctness contract and must not be reordered:
//
//  1. subtract the source's flat penalties from the base amount
//  2. add the source's flat bonuses
//  3. clamp the intermediate to >= 0
//  4. multiply by the source's outgoing factors (Weak)
//  5. multiply by the target's incoming factors (Break)
//  6. subtract the target's flat armor
//  7. if the pre-armor amount was > 0 the result never drops below 1;
//     if it was 0 the result stays 0
//  8. round half-to-even to an integer
//
// A base amount of 0 short-circuits to 0 regardless of modifiers. The
// function is pure: same inputs, same integer, every call.
func ResolveDamage(base int, source, target ModifierSet) int {
	if base <= 0 {
		return 0
	}

	amount := float64(base - source.FlatPenalty + source.FlatBonus)
	if amount < 0 {
		amount = 0
	}
	for _, f := range source.OutgoingFactors {
		amount *= f
	}
	for _, f := range target.IncomingFactors {
		amount *= f
	}
	if amount <= 0 {
		return 0
	}

	// Pre-armor amount is positive: armor can chip it down but never below 1.
	final := amount - float64(target.ArmorFlat)
	if final < 1 {
		final = 1
	}
	return int(math.RoundToEven(final))
}
