package content

import (
	"strings"
	"testing"

	"github.com/shatterloop/skirmish/internal/engine"
)

func TestDefaultLibraryParses(t *testing.T) {
	lib := DefaultLibrary()
	if lib.Len() < 15 {
		t.Fatalf("embedded library suspiciously small: %d cards", lib.Len())
	}

	strike, ok := lib.Lookup("Strike")
	if !ok {
		t.Fatal("Strike missing from default library")
	}
	if strike.Type != engine.CardTypeStrike || strike.Cost != 1 {
		t.Errorf("Strike parsed wrong: %+v", strike)
	}
	if len(strike.Effects) != 1 || strike.Effects[0].Kind != engine.EffectDamage {
		t.Errorf("Strike effects parsed wrong: %+v", strike.Effects)
	}
}

func TestParseLibraryConditionalCard(t *testing.T) {
	lib := DefaultLibrary()

	riposte, ok := lib.Lookup("Riposte")
	if !ok {
		t.Fatal("Riposte missing")
	}
	eff := riposte.Effects[0]
	if eff.Condition == nil || eff.Condition.Type != engine.CondDamageTakenLastRound {
		t.Errorf("condition parsed wrong: %+v", eff.Condition)
	}
	if eff.Alternative == nil || eff.Alternative.Logic != engine.LogicReplace {
		t.Errorf("alternative parsed wrong: %+v", eff.Alternative)
	}

	echo, _ := lib.Lookup("Echo Strike")
	cond := echo.Effects[0].Condition
	if cond.Type != engine.CondLastCardType || cond.Threshold != int(engine.CardTypeStrike) {
		t.Errorf("last_card_type should carry the card type as threshold: %+v", cond)
	}
}

func TestParseLibraryWholeFightDuration(t *testing.T) {
	lib := DefaultLibrary()
	hex, _ := lib.Lookup("Hex")
	if hex.Effects[0].Duration != engine.DurationWholeFight {
		t.Errorf("Hex duration should be whole-fight, got %d", hex.Effects[0].Duration)
	}
}

func TestParseLibraryRejectsBadContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			"unknown effect kind",
			"cards:\n  - name: Bad\n    type: skill\n    effects:\n      - kind: vaporize\n        amount: 3\n",
			"unknown effect kind",
		},
		{
			"unknown condition",
			"cards:\n  - name: Bad\n    type: skill\n    effects:\n      - kind: damage\n        amount: 3\n        condition:\n          type: moon_phase\n          threshold: 1\n        alternative:\n          kind: damage\n          amount: 1\n          logic: replace\n",
			"unknown condition type",
		},
		{
			"condition without alternative",
			"cards:\n  - name: Bad\n    type: skill\n    effects:\n      - kind: damage\n        amount: 3\n        condition:\n          type: combo_count\n          threshold: 1\n",
			"condition without alternative",
		},
		{
			"status without duration",
			"cards:\n  - name: Bad\n    type: skill\n    effects:\n      - kind: curse\n        amount: 2\n",
			"needs a duration",
		},
		{
			"unknown card type",
			"cards:\n  - name: Bad\n    type: ritual\n    effects:\n      - kind: damage\n        amount: 3\n",
			"unknown card type",
		},
		{
			"duplicate names",
			"cards:\n  - name: Twin\n    type: skill\n    effects:\n      - kind: damage\n        amount: 1\n  - name: Twin\n    type: skill\n    effects:\n      - kind: damage\n        amount: 2\n",
			"duplicate card",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLibrary([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestParseLoadouts(t *testing.T) {
	lib := DefaultLibrary()
	data := []byte("loadouts:\n  - name: Brawler\n    cards:\n      - name: Strike\n        count: 3\n      - name: Guard Up\n        count: 2\n")

	loadouts, err := ParseLoadouts(data, lib)
	if err != nil {
		t.Fatal(err)
	}
	if len(loadouts) != 1 || loadouts[0].Name != "Brawler" {
		t.Fatalf("loadouts parsed wrong: %+v", loadouts)
	}
	if len(loadouts[0].Cards) != 5 {
		t.Errorf("expected 5 cards, got %d", len(loadouts[0].Cards))
	}

	if _, err := LoadoutByNumber(loadouts, 2); err == nil {
		t.Error("out-of-range loadout number should error")
	}
}

func TestParseLoadoutsUnknownCard(t *testing.T) {
	lib := DefaultLibrary()
	data := []byte("loadouts:\n  - name: Broken\n    cards:\n      - name: Nonexistent\n        count: 1\n")
	if _, err := ParseLoadouts(data, lib); err == nil || !strings.Contains(err.Error(), "unknown card") {
		t.Errorf("expected an unknown card error, got %v", err)
	}
}

func TestDefaultLibraryResolvesCleanly(t *testing.T) {
	// Every embedded card must resolve without configuration errors.
	lib := DefaultLibrary()
	for _, card := range lib.Cards() {
		c := engine.NewCombat(nil)
		hero := engine.NewEntity("hero", "Hero", 50, 5)
		foe := engine.NewEntity("foe", "Foe", 50, 5)
		c.AddEntity(hero)
		c.AddEntity(foe)
		c.BeginRound()

		res := c.ResolveCard(card, hero.ID, []engine.EntityID{foe.ID})
		if !res.Succeeded {
			t.Errorf("card %q failed to resolve: %s", card.Name, res.FailureReason)
		}
	}
}
