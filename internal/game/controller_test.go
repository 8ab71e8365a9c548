package game

import (
	"context"
	"errors"
	"testing"

	"github.com/peterkuimelis/pokesim/internal/log"
)

// TestRunPlaysToTheEnd: two first-legal controllers finish a battle.
func TestRunPlaysToTheEnd(t *testing.T) {
	cfg := config(1,
		team(mon("pikachu", "thunderbolt"), mon("snorlax", "body-slam")),
		team(mon("gyarados", "tackle")),
	)
	b, logger := startBattle(t, cfg)

	turns := 0
	err := Run(context.Background(), b, FirstLegal{}, FirstLegal{}, 0, func(*TurnResult) { turns++ })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !b.Over() {
		t.Fatal("Expected the battle to be over")
	}
	if b.Winner() != "p1" {
		t.Errorf("Expected p1 to win, got %q", b.Winner())
	}
	if turns == 0 {
		t.Error("Expected onTurn to be called")
	}
	if len(logger.EventsOfType(log.EventVictory)) != 1 {
		t.Error("Expected one victory event")
	}
}

// TestRunStopsAtTurnLimit: a battle nobody can win hits the limit.
func TestRunStopsAtTurnLimit(t *testing.T) {
	cfg := config(1, team(mon("gengar", "splash")), team(mon("snorlax", "splash")))
	b, _ := startBattle(t, cfg)

	err := Run(context.Background(), b, FirstLegal{}, FirstLegal{}, 3, nil)
	if err == nil {
		t.Fatal("Expected a turn limit error")
	}
	if b.Turn() != 3 {
		t.Errorf("Expected to stop at turn 3, got %d", b.Turn())
	}
}

// TestRunHonorsContext: a cancelled context stops the loop.
func TestRunHonorsContext(t *testing.T) {
	cfg := config(1, team(mon("gengar", "splash")), team(mon("snorlax", "splash")))
	b, _ := startBattle(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, b, FirstLegal{}, FirstLegal{}, 0, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

// TestRandomControllerOnlyPicksLegalChoices: random play across a whole
// battle never submits a rejected choice.
func TestRandomControllerOnlyPicksLegalChoices(t *testing.T) {
	p1 := team(mon("jolteon", "thunderbolt", "double-kick"), mon("snorlax", "body-slam", "rest"), mon("chansey", "seismic-toss"))
	p2 := team(mon("starmie", "surf", "recover"), mon("alakazam", "psychic"), mon("rhydon", "earthquake"))
	cfg := Config{Gen: 2, Seed: 7, P1: PlayerConfig{ID: "p1", Team: p1}, P2: PlayerConfig{ID: "p2", Team: p2}}
	b, _ := startBattle(t, cfg)

	r1 := &RandomController{RNG: NewRNG(1), SwitchWeight: 1}
	r2 := NewRandomController(2)
	if err := Run(context.Background(), b, r1, r2, 200, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

// TestControllerFunc: a function controller is asked once per decision.
func TestControllerFunc(t *testing.T) {
	cfg := config(1, team(mon("pikachu", "thunderbolt")), team(mon("gyarados", "tackle")))
	b, _ := startBattle(t, cfg)

	asked := 0
	counting := ControllerFunc(func(ctx context.Context, b *Battle, p *Player) (Choice, error) {
		asked++
		return FirstLegal{}.Decide(ctx, b, p)
	})
	if err := Run(context.Background(), b, counting, FirstLegal{}, 0, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if asked != b.Turn() {
		t.Errorf("Expected one decision per turn (%d), got %d", b.Turn(), asked)
	}
}
