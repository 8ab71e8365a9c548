package mcp

import (
	"fmt"

	"github.com/peterkuimelis/pokesim/internal/game"
)

// Opponent kinds accepted by start_battle.
const (
	OpponentFirst  = "first"
	OpponentRandom = "random"
)

// newOpponent builds the controller that plays the other side.
func newOpponent(kind string, seed int64) (game.Controller, error) {
	switch kind {
	case "", OpponentRandom:
		return &game.RandomController{RNG: game.NewRNG(seed ^ 0x5eed), SwitchWeight: 1}, nil
	case OpponentFirst:
		return game.FirstLegal{}, nil
	default:
		return nil, fmt.Errorf("unknown opponent %q (want %q or %q)", kind, OpponentFirst, OpponentRandom)
	}
}
