package game

import (
	"slices"
	"testing"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

func TestDerivedFlags(t *testing.T) {
	b, _ := startBattle(t, config(2,
		team(mon("snorlax", "splash")),
		team(mon("electrode", "splash")),
	))
	a := b.FindPlayer("p1").Active
	if a.Flags() != 0 {
		t.Fatalf("Expected a fresh combatant to have no flags, got %v", a.Flags().Names())
	}
	a.SubstituteHP = 5
	a.ConfusionTurns = 2
	a.Set(FlagLeechSeed | FlagConfused)

	got := a.Flags().Names()
	for _, want := range []string{"confused", "substitute", "leech-seed"} {
		if !slices.Contains(got, want) {
			t.Errorf("Expected %q in %v", want, got)
		}
	}
	a.ConfusionTurns = 0
	if a.Has(FlagConfused) {
		t.Error("Expected confusion to clear with its counter, since Set ignores derived flags")
	}
	a.Clear(FlagLeechSeed)
	if a.Has(FlagLeechSeed) {
		t.Error("Expected leech seed to clear")
	}
}

// TestSwitchOutDropsVolatiles: a combatant comes back with none of its
// previous volatile state, and its foe loses every relation to it.
func TestSwitchOutDropsVolatiles(t *testing.T) {
	b, _ := startBattle(t, config(2,
		team(mon("snorlax", "splash"), mon("chansey", "splash")),
		team(mon("electrode", "splash")),
	))
	p1 := b.FindPlayer("p1")
	snorlax := p1.Active
	foe := b.FindPlayer("p2").Active
	snorlax.ModifyStage(dex.StatAtk, 2)
	snorlax.Set(FlagFocusEnergy)
	foe.MeanLookedBy = "p1"
	foe.AttractedTo = "p1"

	play(t, b, "s1", "m0")
	if foe.MeanLookedBy != "" || foe.AttractedTo != "" {
		t.Error("Expected the foe's relations to p1 to lapse")
	}
	play(t, b, "s0", "m0")
	back := p1.Active
	if back == snorlax {
		t.Fatal("Expected a fresh volatile record")
	}
	if back.Stage(dex.StatAtk) != 0 || back.Has(FlagFocusEnergy) {
		t.Error("Expected stages and flags to reset on switch-in")
	}
}

func TestVolatileDiffsRideOnEvents(t *testing.T) {
	b, _ := startBattle(t, config(2,
		team(mon("snorlax", "swords-dance")),
		team(mon("electrode", "splash")),
	))
	res := play(t, b, "m0", "m0")
	var diff *log.VolatileDiff
	for _, e := range res.Events {
		if e.Type == log.EventStageChange {
			if d, ok := e.Volatiles["p1"]; ok {
				diff = &d
			}
		}
	}
	if diff == nil || diff.Stages["atk"] != 2 {
		t.Fatalf("Expected the stage event to carry p1's new stages, got %+v", diff)
	}
}
