package engine

import "testing"

func TestResolveDamageUnmodified(t *testing.T) {
	got := ResolveDamage(10, ModifierSet{}, ModifierSet{})
	if got != 10 {
		t.Errorf("expected 10 damage, got %d", got)
	}
}

func TestResolveDamagePipeline(t *testing.T) {
	weak := []float64{0.75}
	brk := []float64{1.5}

	tests := []struct {
		name   string
		base   int
		source ModifierSet
		target ModifierSet
		want   int
	}{
		{"weak reduces by 25 percent", 10, ModifierSet{OutgoingFactors: weak}, ModifierSet{}, 8},
		{"break amplifies by 50 percent", 10, ModifierSet{}, ModifierSet{IncomingFactors: brk}, 15},
		{"strength adds flat", 10, ModifierSet{FlatBonus: 5}, ModifierSet{}, 15},
		{"armor floors at one", 5, ModifierSet{}, ModifierSet{ArmorFlat: 10}, 1},
		{"stacked modifiers", 20, ModifierSet{FlatBonus: 8, FlatPenalty: 4, OutgoingFactors: weak}, ModifierSet{}, 18},
		{"strength then break", 1, ModifierSet{FlatBonus: 100}, ModifierSet{IncomingFactors: brk}, 152},
		{"curse below zero clamps", 3, ModifierSet{FlatPenalty: 10}, ModifierSet{}, 0},
		{"armor exact cancel still floors", 10, ModifierSet{}, ModifierSet{ArmorFlat: 10}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDamage(tt.base, tt.source, tt.target)
			if got != tt.want {
				t.Errorf("ResolveDamage(%d) = %d, want %d", tt.base, got, tt.want)
			}
		})
	}
}

func TestResolveDamageZeroShortCircuits(t *testing.T) {
	source := ModifierSet{FlatBonus: 50}
	target := ModifierSet{IncomingFactors: []float64{2.0}}
	if got := ResolveDamage(0, source, target); got != 0 {
		t.Errorf("zero base must stay zero, got %d", got)
	}
	if got := ResolveDamage(-5, source, target); got != 0 {
		t.Errorf("negative base must stay zero, got %d", got)
	}
}

func TestResolveDamageBankersRounding(t *testing.T) {
	// Half-to-even: .5 fractions round toward the even integer.
	tests := []struct {
		base   int
		factor float64
		want   int
	}{
		{15, 0.5, 8},  // 7.5 -> 8
		{17, 0.5, 8},  // 8.5 -> 8
		{45, 0.5, 22}, // 22.5 -> 22
		{47, 0.5, 24}, // 23.5 -> 24
	}
	for _, tt := range tests {
		src := ModifierSet{OutgoingFactors: []float64{tt.factor}}
		got := ResolveDamage(tt.base, src, ModifierSet{})
		if got != tt.want {
			t.Errorf("ResolveDamage(%d) with factor %v = %d, want %d", tt.base, tt.factor, got, tt.want)
		}
	}
}

func TestResolveDamageWeakStacksMultiply(t *testing.T) {
	src := ModifierSet{OutgoingFactors: []float64{0.75, 0.75}}
	// 16 * 0.75 * 0.75 = 9
	if got := ResolveDamage(16, src, ModifierSet{}); got != 9 {
		t.Errorf("two weak stacks on 16 = %d, want 9", got)
	}
}

func TestResolveDamageDeterministic(t *testing.T) {
	src := ModifierSet{FlatBonus: 3, OutgoingFactors: []float64{0.9}}
	tgt := ModifierSet{IncomingFactors: []float64{1.25}, ArmorFlat: 2}
	first := ResolveDamage(13, src, tgt)
	for i := 0; i < 100; i++ {
		if got := ResolveDamage(13, src, tgt); got != first {
			t.Fatalf("call %d returned %d, first call returned %d", i, got, first)
		}
	}
}
