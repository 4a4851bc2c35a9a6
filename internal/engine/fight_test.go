package engine

import (
	"context"
	"testing"

	"github.com/shatterloop/skirmish/internal/log"
)

// ScriptedController plays cards by name from a predefined script, then
// ends its turn. Used in tests to deterministically drive a fight.
type ScriptedController struct {
	t     *testing.T
	plays []string
	pos   int
}

func NewScriptedController(t *testing.T, plays ...string) *ScriptedController {
	return &ScriptedController{t: t, plays: plays}
}

func (sc *ScriptedController) ChooseAction(ctx context.Context, f *Fight, seat int, playable []int) (Action, error) {
	if sc.pos >= len(sc.plays) {
		return Action{Type: ActionEndTurn}, nil
	}
	want := sc.plays[sc.pos]
	ft := f.Fighters[seat]
	for _, i := range playable {
		if ft.Hand[i].Name == want {
			sc.pos++
			return Action{Type: ActionPlayCard, HandIndex: i}, nil
		}
	}
	// Scripted card not affordable or not in hand yet: end the turn and
	// retry next turn.
	return Action{Type: ActionEndTurn}, nil
}

func (sc *ScriptedController) Notify(ctx context.Context, event log.CombatEvent) error {
	return nil
}

func cardN(name string, n int) []*Card {
	lib := map[string]*Card{
		"Strike": strike(6),
		"Jab": {Name: "Jab", Type: CardTypeStrike, Cost: 0, IsCombo: true,
			Effects: []CardEffect{{Kind: EffectDamage, Amount: 3, Target: TargetChosen}}},
		"Daze": {Name: "Daze", Type: CardTypeSkill, Cost: 2,
			Effects: []CardEffect{{Kind: EffectApplyStun, Amount: 1, Target: TargetChosen, Duration: 1}}},
	}
	card, ok := lib[name]
	if !ok {
		panic("unknown test card " + name)
	}
	out := make([]*Card, n)
	for i := range out {
		out[i] = card
	}
	return out
}

func TestFightRunsToKnockout(t *testing.T) {
	// Seat 0 strikes every turn; seat 1 does nothing. 50 HP at 6 a hit
	// falls inside nine rounds.
	cfg := FightConfig{
		Names:    [2]string{"Hero", "Dummy"},
		Loadouts: [2][]*Card{cardN("Strike", 20), cardN("Strike", 20)},
		Logger:   log.NewMemoryLogger(),
	}
	c0 := NewScriptedController(t,
		"Strike", "Strike", "Strike", "Strike", "Strike",
		"Strike", "Strike", "Strike", "Strike")
	c1 := NewScriptedController(t)

	f := NewFight(cfg, c0, c1)
	winner, err := f.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if winner != 0 {
		t.Fatalf("expected seat 0 to win, got %d (%s)", winner, f.Result)
	}
	if f.Fighters[1].Entity.Health != 0 {
		t.Errorf("loser should be at 0 HP, at %d", f.Fighters[1].Entity.Health)
	}
	if f.Result != "Hero wins" {
		t.Errorf("result string wrong: %q", f.Result)
	}
}

func TestFightEnergyGatesPlays(t *testing.T) {
	cfg := FightConfig{
		Loadouts:  [2][]*Card{cardN("Strike", 10), cardN("Strike", 10)},
		MaxEnergy: 2,
		MaxRounds: 1,
	}
	// Script wants three strikes in the turn but only two are affordable.
	c0 := NewScriptedController(t, "Strike", "Strike", "Strike")
	c1 := NewScriptedController(t)

	f := NewFight(cfg, c0, c1)
	if _, err := f.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if hp := f.Fighters[1].Entity.Health; hp != 38 {
		t.Errorf("only two strikes should land, opponent at %d", hp)
	}
}

func TestFightMaxRoundsIsDraw(t *testing.T) {
	cfg := FightConfig{
		Loadouts:  [2][]*Card{cardN("Strike", 5), cardN("Strike", 5)},
		MaxRounds: 3,
	}
	f := NewFight(cfg, NewScriptedController(t), NewScriptedController(t))
	winner, err := f.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if winner != -1 {
		t.Errorf("expected a draw, got winner %d", winner)
	}
	if f.Result == "" {
		t.Error("draw should still set a result string")
	}
}

func TestFightDeckRecyclesDiscard(t *testing.T) {
	cfg := FightConfig{
		Loadouts:  [2][]*Card{cardN("Jab", 3), cardN("Strike", 5)},
		MaxRounds: 6,
	}
	c0 := NewScriptedController(t, "Jab", "Jab", "Jab", "Jab", "Jab", "Jab")
	f := NewFight(cfg, c0, NewScriptedController(t))
	if _, err := f.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// Three jabs in the deck, six plays: the discard must have recycled.
	if hp := f.Fighters[1].Entity.Health; hp != 50-6*3 {
		t.Errorf("expected six jabs to land, opponent at %d", hp)
	}
}

func TestFightStunSkipsActions(t *testing.T) {
	cfg := FightConfig{
		Names:     [2]string{"Caster", "Victim"},
		Loadouts:  [2][]*Card{cardN("Daze", 5), cardN("Strike", 5)},
		MaxRounds: 2,
	}
	c0 := NewScriptedController(t, "Daze", "Daze")
	c1 := NewScriptedController(t, "Strike", "Strike")

	f := NewFight(cfg, c0, c1)
	if _, err := f.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// The victim is stunned before every turn it gets; no strike lands.
	if hp := f.Fighters[0].Entity.Health; hp != 50 {
		t.Errorf("stunned fighter should never act, caster at %d HP", hp)
	}
}

func TestFightPilesVisibleToConditions(t *testing.T) {
	handCard := &Card{
		Name: "Crowd Surge",
		Type: CardTypeSkill,
		Cost: 1,
		Effects: []CardEffect{
			{
				Kind:      EffectDamage,
				Amount:    10,
				Target:    TargetChosen,
				Condition: &Condition{CondCardsInHand, 4},
				Alternative: &Alternative{
					Kind:   EffectDamage,
					Amount: 1,
					Logic:  LogicReplace,
				},
			},
		},
	}
	loadout := make([]*Card, 8)
	for i := range loadout {
		loadout[i] = handCard
	}
	cfg := FightConfig{
		Loadouts:  [2][]*Card{loadout, cardN("Strike", 5)},
		MaxRounds: 1,
	}
	c0 := NewScriptedController(t, "Crowd Surge")
	f := NewFight(cfg, c0, NewScriptedController(t))
	if _, err := f.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	// Hand is 4 after playing the card itself; the condition sees 4.
	if hp := f.Fighters[1].Entity.Health; hp != 40 {
		t.Errorf("hand-size condition should be met, opponent at %d", hp)
	}
}
