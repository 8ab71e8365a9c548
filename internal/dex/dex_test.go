package dex

import (
	"testing"

	"github.com/samber/lo"
)

func mustGen(t *testing.T, gen int) *Dex {
	t.Helper()
	d, err := ForGen(gen)
	if err != nil {
		t.Fatalf("ForGen(%d): %v", gen, err)
	}
	return d
}

func TestForGenRejectsUnknownGeneration(t *testing.T) {
	for _, gen := range []int{0, 5, -1} {
		if _, err := ForGen(gen); err == nil {
			t.Errorf("ForGen(%d) should fail", gen)
		}
	}
}

func TestPatchedMoveDiffersAcrossGenerations(t *testing.T) {
	g1, g2 := mustGen(t, 1), mustGen(t, 2)

	bite1, _ := g1.Move("bite")
	bite2, _ := g2.Move("Bite")
	if bite1.Type != TypeNormal || bite2.Type != TypeDark {
		t.Errorf("bite types = %s/%s, want Normal/Dark", bite1.Type, bite2.Type)
	}
	if bite1.Secondary.Chance != 10 || bite2.Secondary.Chance != 30 {
		t.Errorf("bite flinch = %d/%d, want 10/30", bite1.Secondary.Chance, bite2.Secondary.Chance)
	}

	rw1, _ := g1.Move("razor-wind")
	rw2, _ := g2.Move("razor-wind")
	if rw1.CritRatio != 1 || rw2.CritRatio != 2 {
		t.Errorf("razor wind crit ratio = %d/%d, want 1/2", rw1.CritRatio, rw2.CritRatio)
	}
}

func TestUnpatchedMoveIdenticalAcrossGenerations(t *testing.T) {
	var first *Move
	for gen := MinGen; gen <= MaxGen; gen++ {
		m, ok := mustGen(t, gen).Move("tackle")
		if !ok {
			t.Fatalf("gen %d: tackle missing", gen)
		}
		if first == nil {
			first = m
			continue
		}
		if m.Power != first.Power || m.Accuracy != first.Accuracy || m.Type != first.Type || m.PP != first.PP {
			t.Errorf("gen %d tackle = %+v, want %+v", gen, *m, *first)
		}
	}
}

func TestPatchesAccumulate(t *testing.T) {
	g3, g4 := mustGen(t, 3), mustGen(t, 4)
	dig3, _ := g3.Move("dig")
	dig4, _ := g4.Move("dig")
	if dig3.Power != 60 || dig4.Power != 80 {
		t.Errorf("dig power = %d/%d, want 60/80", dig3.Power, dig4.Power)
	}
	// gen 2 change survives the gen 3 and gen 4 layers
	bite4, _ := g4.Move("bite")
	if bite4.Type != TypeDark {
		t.Errorf("gen 4 bite type = %s", bite4.Type)
	}
	if _, ok := mustGen(t, 1).Move("protect"); ok {
		t.Error("protect should not exist in gen 1")
	}
	if _, ok := g3.Move("close-combat"); ok {
		t.Error("close combat should not exist in gen 3")
	}
}

func TestSlicesReplaceWholesale(t *testing.T) {
	g2 := mustGen(t, 2)
	psy, _ := g2.Move("psychic")
	if len(psy.Secondary.Stages) != 1 || psy.Secondary.Stages[0].Stat != StatSpD {
		t.Errorf("gen 2 psychic secondary = %+v", psy.Secondary)
	}
	mag1, _ := mustGen(t, 1).Species("magneton")
	mag2, _ := g2.Species("magneton")
	if len(mag1.Types) != 1 || len(mag2.Types) != 2 || mag2.Types[1] != TypeSteel {
		t.Errorf("magneton types = %v / %v", mag1.Types, mag2.Types)
	}
}

func TestMergeLeavesBaseUntouched(t *testing.T) {
	base := BaseTables()
	before := base.Moves["bite"]
	_ = base.Merge(Patches[0])
	if base.Moves["bite"].Type != before.Type {
		t.Error("merge mutated the base table")
	}
	if base.TypeChart.Lookup(TypeGhost, TypePsychic) != Immune {
		t.Error("merge mutated the base type chart")
	}
}

func TestTypeChartCorrections(t *testing.T) {
	tests := []struct {
		atk, def Type
		gen1     int
		gen2     int
	}{
		{TypeGhost, TypePsychic, Immune, SuperEff},
		{TypeBug, TypePoison, SuperEff, Resisted},
		{TypePoison, TypeBug, SuperEff, Neutral},
		{TypeIce, TypeFire, Neutral, Resisted},
		{TypeNormal, TypeGhost, Immune, Immune},
		{TypeWater, TypeFire, SuperEff, SuperEff},
	}
	g1, g2 := mustGen(t, 1), mustGen(t, 2)
	for _, tt := range tests {
		if got := g1.TypeChart.Lookup(tt.atk, tt.def); got != tt.gen1 {
			t.Errorf("gen1 %s->%s = %d, want %d", tt.atk, tt.def, got, tt.gen1)
		}
		if got := g2.TypeChart.Lookup(tt.atk, tt.def); got != tt.gen2 {
			t.Errorf("gen2 %s->%s = %d, want %d", tt.atk, tt.def, got, tt.gen2)
		}
	}
	if got := g2.Effectiveness(TypeGround, []Type{TypeFire, TypeFlying}); got[0] != SuperEff || got[1] != Immune {
		t.Errorf("ground vs fire/flying = %v", got)
	}
}

func TestSpecialSplit(t *testing.T) {
	zap1, _ := mustGen(t, 1).Species("zapdos")
	zap2, _ := mustGen(t, 2).Species("zapdos")
	if zap1.BaseStats[StatSpA] != zap1.BaseStats[StatSpD] {
		t.Error("gen 1 special should be unified")
	}
	if zap2.BaseStats[StatSpA] != 125 || zap2.BaseStats[StatSpD] != 90 {
		t.Errorf("gen 2 zapdos special = %d/%d", zap2.BaseStats[StatSpA], zap2.BaseStats[StatSpD])
	}
}

func TestAbilitiesAndItemsArriveByGeneration(t *testing.T) {
	snorlax1, _ := mustGen(t, 2).Species("snorlax")
	snorlax3, _ := mustGen(t, 3).Species("snorlax")
	if len(snorlax1.Abilities) != 0 || !lo.Contains(snorlax3.Abilities, "thick-fat") {
		t.Errorf("snorlax abilities gen2=%v gen3=%v", snorlax1.Abilities, snorlax3.Abilities)
	}
	if _, ok := mustGen(t, 1).Item("leftovers"); ok {
		t.Error("items should not exist in gen 1")
	}
	sitrus3, _ := mustGen(t, 3).Item("sitrus-berry")
	sitrus4, _ := mustGen(t, 4).Item("Sitrus Berry")
	if sitrus3.Desc == sitrus4.Desc {
		t.Error("gen 4 sitrus berry should replace the gen 3 record")
	}
	for _, id := range snorlax3.Abilities {
		if _, ok := mustGen(t, 3).Ability(id); !ok {
			t.Errorf("ability %q referenced but not defined", id)
		}
	}
}

func TestEverySpeciesAbilityDefined(t *testing.T) {
	for gen := 3; gen <= MaxGen; gen++ {
		d := mustGen(t, gen)
		for _, id := range d.SpeciesIDs() {
			s, _ := d.Species(id)
			for _, a := range s.Abilities {
				if _, ok := d.Ability(a); !ok {
					t.Errorf("gen %d %s: undefined ability %q", gen, id, a)
				}
			}
		}
	}
}

func TestNatures(t *testing.T) {
	d := mustGen(t, 3)
	adamant, ok := d.Nature("adamant")
	if !ok || adamant.Plus != StatAtk || adamant.Minus != StatSpA {
		t.Errorf("adamant = %+v", adamant)
	}
	hardy, _ := d.Nature("Hardy")
	if !hardy.Neutral() {
		t.Error("hardy should be neutral")
	}
	if _, ok := mustGen(t, 2).Nature("adamant"); ok {
		t.Error("natures should not exist before gen 3")
	}
}

func TestMoveIDsSorted(t *testing.T) {
	ids := mustGen(t, 4).MoveIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("move IDs not sorted at %d: %s >= %s", i, ids[i-1], ids[i])
		}
	}
}

func TestToID(t *testing.T) {
	tests := map[string]string{
		"Hi Jump Kick": "hi-jump-kick",
		"King's Rock":  "kings-rock",
		"U-turn":       "u-turn",
		"soft-boiled":  "soft-boiled",
		" Porygon2 ":   "porygon2",
	}
	for in, want := range tests {
		if got := ToID(in); got != want {
			t.Errorf("ToID(%q) = %q, want %q", in, got, want)
		}
	}
}
