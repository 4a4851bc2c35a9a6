package engine

import (
	"fmt"

	"github.com/shatterloop/skirmish/internal/log"
)

// Application records one concrete change the resolver made to one
// target: the effect kind, the amount that actually landed (health lost
// after shields and clamps, healing after the max-health clamp), and the
// target's status effects after the change.
type Application struct {
	TargetID EntityID
	Kind     EffectKind
	Amount   int
	Statuses []StatusEffect
}

// EffectResult summarizes the resolution of one card play. Succeeded is
// false when any effect on the card hit a configuration error; effects
// that resolved before and after the bad one still stand, and their
// applications are listed.
type EffectResult struct {
	Card          string
	SourceID      EntityID
	Succeeded     bool
	FailureReason string
	Applications  []Application
}

// ResolveCard resolves every effect of a card in listed order against
// live combat state. Each effect observes the state changes of the
// effects before it. The card play itself is recorded on the source's
// ledger after all effects resolve, so play-count conditions and
// scalings see only prior plays.
//
// A configuration error in one effect marks the result failed and skips
// that effect; the remaining effects still resolve. An invalid target id
// skips only that target.
func (c *Combat) ResolveCard(card *Card, sourceID EntityID, targetIDs []EntityID) EffectResult {
	res := EffectResult{Card: card.Name, SourceID: sourceID, Succeeded: true}

	source, ok := c.entities[sourceID]
	if !ok {
		res.Succeeded = false
		res.FailureReason = ErrUnknownSource.Error()
		c.logger.Log(log.NewConfigErrorEvent(c.round, card.Name, res.FailureReason))
		return res
	}
	c.logger.Log(log.NewCardPlayedEvent(c.round, source.Name, card.Name))

	for i := range card.Effects {
		c.resolveEffect(&res, card, &card.Effects[i], source, targetIDs)
	}

	source.Ledger.RecordCardPlayed(card.Cost, card.IsCombo, card.Type, card.Cost == 0)
	return res
}

func (c *Combat) resolveEffect(res *EffectResult, card *Card, eff *CardEffect, source *Entity, targetIDs []EntityID) {
	amount := eff.Amount
	if eff.Scaling != nil {
		scaled, err := Scale(amount, *eff.Scaling, source.Ledger.Snapshot(), source.Snapshot())
		if err != nil {
			c.configError(res, card, err)
			return
		}
		amount = scaled
	}

	if eff.Condition != nil && eff.Alternative == nil {
		c.configError(res, card, fmt.Errorf("%w: %s effect", ErrMissingAlternative, eff.Kind))
		return
	}

	for _, target := range c.resolveTargets(card, eff.Target, source, targetIDs) {
		if eff.Condition == nil {
			c.applyOne(res, card, source, target, eff.Kind, amount, eff.Duration)
			continue
		}

		met, err := Evaluate(*eff.Condition, source.Snapshot(), target.Snapshot(),
			source.Ledger.Snapshot(), target.Ledger.Snapshot())
		if err != nil {
			c.configError(res, card, err)
			return
		}

		alt := eff.Alternative
		switch alt.Logic {
		case LogicReplace:
			if met {
				c.applyOne(res, card, source, target, eff.Kind, amount, eff.Duration)
			} else {
				c.applyOne(res, card, source, target, alt.Kind, alt.Amount, alt.Duration)
			}
		case LogicAdditional:
			c.applyOne(res, card, source, target, eff.Kind, amount, eff.Duration)
			if met {
				c.applyOne(res, card, source, target, alt.Kind, alt.Amount, alt.Duration)
			}
		}
	}
}

// resolveTargets maps a target selector to concrete entities. Unknown
// chosen-target ids are skipped individually; the rest of the effect
// still resolves.
func (c *Combat) resolveTargets(card *Card, sel TargetSelector, source *Entity, targetIDs []EntityID) []*Entity {
	switch sel {
	case TargetSelf:
		return []*Entity{source}
	case TargetOwner:
		if owner, ok := c.entities[source.OwnerID]; ok {
			return []*Entity{owner}
		}
		// Unowned entities direct owner effects at themselves.
		return []*Entity{source}
	default: // TargetChosen, TargetAllFoes: the caller picks the ids
		targets := make([]*Entity, 0, len(targetIDs))
		for _, id := range targetIDs {
			t, ok := c.entities[id]
			if !ok {
				c.logger.Log(log.NewEffectSkippedEvent(c.round, string(id), card.Name, "target not in combat"))
				continue
			}
			targets = append(targets, t)
		}
		return targets
	}
}

func (c *Combat) applyOne(res *EffectResult, card *Card, source, target *Entity, kind EffectKind, amount, duration int) {
	if !target.Alive() && kind.Hostile() {
		c.logger.Log(log.NewEffectSkippedEvent(c.round, target.Name, card.Name, "target already down"))
		return
	}

	switch kind {
	case EffectDamage:
		c.applyDamage(res, card, source, target, amount)
	case EffectHeal:
		c.applyHeal(res, card, source, target, amount)
	case EffectEnergy:
		c.applyEnergy(res, target, amount)
	default:
		statusKind, ok := kind.StatusKind()
		if !ok {
			c.configError(res, card, fmt.Errorf("%w: kind %d", ErrUnknownEffectKind, kind))
			return
		}
		c.applyStatus(res, card, source, target, statusKind, amount, duration)
	}
}

// applyDamage runs the modification pipeline, burns through any shield,
// then deducts health. Thorns on the target reflect back at the source
// as unmodified flat damage.
func (c *Combat) applyDamage(res *EffectResult, card *Card, source, target *Entity, base int) {
	final := ResolveDamage(base, source.Statuses.DamageModifiers(), target.Statuses.DamageModifiers())

	absorbed := target.Statuses.ConsumeShield(final)
	if absorbed > 0 {
		c.logger.Log(log.NewShieldAbsorbEvent(c.round, target.Name, absorbed))
	}

	dealt := final - absorbed
	if dealt > target.Health {
		dealt = target.Health
	}
	target.Health -= dealt
	source.Ledger.RecordDamageDealt(dealt)
	target.Ledger.RecordDamageTaken(dealt)

	c.logger.Log(log.NewDamageEvent(c.round, source.Name, target.Name, card.Name, final, target.Health))
	res.Applications = append(res.Applications, Application{
		TargetID: target.ID,
		Kind:     EffectDamage,
		Amount:   dealt,
		Statuses: target.Statuses.Snapshot(),
	})

	if target.Health == 0 {
		c.logger.Log(log.NewKnockoutEvent(c.round, target.Name))
	}

	if thorns := target.Statuses.Active(StatusThorns); thorns > 0 && target.ID != source.ID && source.Alive() {
		reflected := thorns
		if reflected > source.Health {
			reflected = source.Health
		}
		source.Health -= reflected
		target.Ledger.RecordDamageDealt(reflected)
		source.Ledger.RecordDamageTaken(reflected)
		c.logger.Log(log.NewThornsReflectEvent(c.round, target.Name, source.Name, reflected, source.Health))
		if source.Health == 0 {
			c.logger.Log(log.NewKnockoutEvent(c.round, source.Name))
		}
	}
}

func (c *Combat) applyHeal(res *EffectResult, card *Card, source, target *Entity, amount int) {
	healed := amount
	if headroom := target.MaxHealth - target.Health; healed > headroom {
		healed = headroom
	}
	if healed < 0 {
		healed = 0
	}
	target.Health += healed
	source.Ledger.RecordHealingGiven(healed)
	target.Ledger.RecordHealingReceived(healed)

	c.logger.Log(log.NewHealEvent(c.round, source.Name, target.Name, card.Name, healed, target.Health))
	res.Applications = append(res.Applications, Application{
		TargetID: target.ID,
		Kind:     EffectHeal,
		Amount:   healed,
		Statuses: target.Statuses.Snapshot(),
	})
}

func (c *Combat) applyEnergy(res *EffectResult, target *Entity, amount int) {
	gained := amount
	if headroom := target.MaxEnergy - target.Energy; gained > headroom {
		gained = headroom
	}
	if gained < 0 {
		gained = 0
	}
	target.Energy += gained

	c.logger.Log(log.NewEnergyEvent(c.round, target.Name, gained, target.Energy))
	res.Applications = append(res.Applications, Application{
		TargetID: target.ID,
		Kind:     EffectEnergy,
		Amount:   gained,
		Statuses: target.Statuses.Snapshot(),
	})
}

func (c *Combat) applyStatus(res *EffectResult, card *Card, source, target *Entity, kind StatusKind, potency, duration int) {
	if duration == 0 {
		c.configError(res, card, fmt.Errorf("%w: %s", ErrMissingDuration, kind))
		return
	}

	target.Statuses.Add(kind, potency, duration, source.ID)
	switch kind {
	case StatusStun:
		target.Ledger.SetStunned(true)
	case StatusStrength:
		target.Ledger.SetStrengthStacks(target.Statuses.Active(StatusStrength))
	}

	c.logger.Log(log.NewStatusAppliedEvent(c.round, target.Name, kind.String(), potency, duration))
	res.Applications = append(res.Applications, Application{
		TargetID: target.ID,
		Kind:     kind.EffectKind(),
		Amount:   potency,
		Statuses: target.Statuses.Snapshot(),
	})
}

func (c *Combat) configError(res *EffectResult, card *Card, err error) {
	res.Succeeded = false
	if res.FailureReason == "" {
		res.FailureReason = err.Error()
	}
	c.logger.Log(log.NewConfigErrorEvent(c.round, card.Name, err.Error()))
}
