package game

import (
	"testing"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/samber/lo"
)

func countMoves(events []log.Event, player string) int {
	n := 0
	for _, e := range moveEvents(events) {
		if e.Player == player {
			n++
		}
	}
	return n
}

// TestThrashLengthAndConfusion: at the top roll a rampage lasts 1+3 uses in
// gen 1 and 1+2 in gen 2, then leaves the user confused.
func TestThrashLengthAndConfusion(t *testing.T) {
	for _, tc := range []struct {
		gen  int
		uses int
	}{
		{1, 4},
		{2, 3},
	} {
		b, _ := startBattle(t, config(tc.gen,
			team(PokemonSet{Species: "snorlax", Level: 5, Moves: []string{"thrash", "splash"}}),
			team(mon("chansey", "splash")),
		))
		snorlax := b.FindPlayer("p1").Active

		uses, ended := 0, 0
		for turn := 1; turn <= 6 && ended == 0; turn++ {
			res := playLegal(t, b)
			uses += countMoves(res.Events, "p1")
			if hasInfo(res.Events, "p1", log.InfoThrashEnded) {
				ended = uses
			}
		}
		if ended != tc.uses {
			t.Errorf("gen %d: Expected the rampage to end on use %d, got %d", tc.gen, tc.uses, ended)
		}
		if snorlax.Lock.Kind != dex.LockNone {
			t.Errorf("gen %d: Expected the lock to be released, got %v", tc.gen, snorlax.Lock.Kind)
		}
		if snorlax.ConfusionTurns == 0 {
			t.Errorf("gen %d: Expected the rampage to confuse the user", tc.gen)
		}
		if opts := b.FindPlayer("p1").Options(); opts == nil || opts.Forced {
			t.Errorf("gen %d: Expected a free choice after the rampage", tc.gen)
		}
	}
}

// TestBideReleasesDoubleDamage: two turns of stored damage come back
// doubled on the third.
func TestBideReleasesDoubleDamage(t *testing.T) {
	b, _ := startBattle(t, config(2,
		team(mon("electrode", "bide")),
		team(mon("chansey", "seismic-toss")),
	))
	electrode, chansey := b.FindPlayer("p1").Active, b.FindPlayer("p2").Active

	for turn := 1; turn <= 2; turn++ {
		res := playLegal(t, b)
		if !hasInfo(res.Events, "p1", log.InfoBideStore) {
			t.Fatalf("Expected bide to store on turn %d", turn)
		}
		if chansey.Pokemon.HP != chansey.Pokemon.MaxHP {
			t.Fatalf("Expected no damage while storing, got %d/%d", chansey.Pokemon.HP, chansey.Pokemon.MaxHP)
		}
	}
	stored := electrode.Lock.Damage
	if stored != 2*chansey.Pokemon.Level {
		t.Fatalf("Expected two seismic tosses stored, got %d", stored)
	}

	res := playLegal(t, b)
	if !hasInfo(res.Events, "p1", log.InfoBideRelease) {
		t.Fatal("Expected bide to release on the third turn")
	}
	if lost := chansey.Pokemon.MaxHP - chansey.Pokemon.HP; lost != 2*stored {
		t.Errorf("Expected %d damage, got %d", 2*stored, lost)
	}
	if electrode.Lock.Kind != dex.LockNone {
		t.Errorf("Expected the lock to be released, got %v", electrode.Lock.Kind)
	}
}

// TestRechargeTurnIsLost: after Hyper Beam the user spends its next action
// recharging and then chooses freely.
func TestRechargeTurnIsLost(t *testing.T) {
	b, _ := startBattle(t, config(2,
		team(mon("snorlax", "hyper-beam", "splash")),
		team(mon("chansey", "splash")),
	))
	p1 := b.FindPlayer("p1")

	play(t, b, "m0", "m0")
	if p1.Active.Lock.Kind != dex.LockRecharge {
		t.Fatalf("Expected a recharge lock, got %v", p1.Active.Lock.Kind)
	}
	if opts := p1.Options(); opts == nil || !opts.Forced {
		t.Fatal("Expected the recharge turn to be forced")
	}

	res := play(t, b, "", "m0")
	if !hasInfo(res.Events, "p1", log.InfoRecharge) {
		t.Error("Expected a must-recharge event")
	}
	if n := countMoves(res.Events, "p1"); n != 0 {
		t.Errorf("Expected no move while recharging, got %d", n)
	}

	res = play(t, b, "m1", "m0")
	if n := countMoves(res.Events, "p1"); n != 1 {
		t.Errorf("Expected a free move after recharging, got %d", n)
	}
}

// TestChargeTurnIsSemiInvulnerable: Dig dodges a normal hit on its charge
// turn and strikes on the next.
func TestChargeTurnIsSemiInvulnerable(t *testing.T) {
	b, _ := startBattle(t, config(2,
		team(mon("dugtrio", "dig")),
		team(mon("chansey", "tackle")),
	))
	dugtrio, chansey := b.FindPlayer("p1").Active, b.FindPlayer("p2").Active

	res := play(t, b, "m0", "m0")
	if len(lo.Filter(res.Events, func(e log.Event, _ int) bool { return e.Type == log.EventCharge })) != 1 {
		t.Error("Expected a charge event")
	}
	if !dugtrio.Has(FlagSemiInvulnerable) {
		t.Fatal("Expected dugtrio to be underground")
	}
	if !hasInfo(res.Events, "p1", log.InfoMiss) || dugtrio.Pokemon.HP != dugtrio.Pokemon.MaxHP {
		t.Errorf("Expected tackle to miss, HP %d/%d", dugtrio.Pokemon.HP, dugtrio.Pokemon.MaxHP)
	}
	if chansey.Pokemon.HP != chansey.Pokemon.MaxHP {
		t.Error("Expected no damage on the charge turn")
	}

	play(t, b, "", "m0")
	if chansey.Pokemon.HP >= chansey.Pokemon.MaxHP {
		t.Error("Expected dig to land on the second turn")
	}
	if dugtrio.Has(FlagSemiInvulnerable) || dugtrio.Lock.Kind != dex.LockNone {
		t.Error("Expected dugtrio to surface")
	}
	if dugtrio.Pokemon.HP == dugtrio.Pokemon.MaxHP {
		t.Error("Expected tackle to connect once dugtrio surfaced")
	}
}

// TestMultiHitDistribution: the eight weight slots map to 2, 2, 2, 3, 3, 3,
// 4 and 5 hits.
func TestMultiHitDistribution(t *testing.T) {
	b, _ := startBattle(t, config(1,
		team(mon("persian", "fury-swipes")),
		team(mon("chansey", "splash")),
	))
	m := mustMove(t, b, "fury-swipes")

	counts := map[int]int{}
	for roll := 0; roll < 8; roll++ {
		b.rng = NewRNGWithSource(funcSource(func(n int) int {
			if n != 8 {
				t.Fatalf("Expected a draw out of 8, got %d", n)
			}
			return roll
		}))
		counts[b.rollHits(m)]++
	}
	want := map[int]int{2: 3, 3: 3, 4: 1, 5: 1}
	for hits, n := range want {
		if counts[hits] != n {
			t.Errorf("Expected %d hits in %d of 8 slots, got %d", hits, n, counts[hits])
		}
	}

	b.rng = NewRNGWithSource(funcSource(func(int) int {
		t.Fatal("Expected no draw for a fixed hit count")
		return 0
	}))
	if got := b.rollHits(mustMove(t, b, "double-kick")); got != 2 {
		t.Errorf("Expected double kick to hit twice, got %d", got)
	}
}

// TestMultiHitStopsEarly: the sequence ends on a faint or a broken
// substitute, and the hit count reports what landed.
func TestMultiHitStopsEarly(t *testing.T) {
	for _, tc := range []struct {
		name  string
		setup func(target *ActivePokemon)
		check func(t *testing.T, target *ActivePokemon, events []log.Event)
	}{
		{
			name:  "faint",
			setup: func(target *ActivePokemon) { target.Pokemon.HP = 1 },
			check: func(t *testing.T, target *ActivePokemon, _ []log.Event) {
				if !target.Pokemon.Fainted {
					t.Error("Expected the target to faint")
				}
			},
		},
		{
			name:  "substitute",
			setup: func(target *ActivePokemon) { target.SubstituteHP = 1 },
			check: func(t *testing.T, target *ActivePokemon, events []log.Event) {
				if target.Pokemon.HP != target.Pokemon.MaxHP {
					t.Errorf("Expected the substitute to take the hit, HP %d/%d", target.Pokemon.HP, target.Pokemon.MaxHP)
				}
				if !lo.SomeBy(events, func(e log.Event) bool { return e.Type == log.EventSubstituteBreak }) {
					t.Error("Expected the substitute to break")
				}
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := startBattle(t, config(1,
				team(mon("persian", "fury-swipes")),
				team(mon("chansey", "splash")),
			))
			target := b.FindPlayer("p2").Active
			tc.setup(target)

			res := play(t, b, "m0", "m0")
			counts := lo.Filter(res.Events, func(e log.Event, _ int) bool {
				return e.Type == log.EventInfo && e.Info == log.InfoHitCount
			})
			if len(counts) != 1 || counts[0].Amount != 1 {
				t.Errorf("Expected a single hit to be reported, got %+v", counts)
			}
			tc.check(t, target, res.Events)
		})
	}
}
