package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

var gen4Patch = RulesetPatch{
	Gen: 4,

	SleepTurns:    &Range{2, 5},
	DisableTurns:  &Range{4, 7},
	EncoreTurns:   &Range{4, 8},
	TauntTurns:    &Range{3, 5},
	TypeItemBoost: &Fraction{12, 10},
	RestTurns:     lo.ToPtr(3),

	CategoryOf: moveCategory,

	CustomMoves: map[string]MoveHandler{
		"u-turn": moveUTurn,
	},
}

// moveCategory uses the move's own physical or special classification.
func moveCategory(m *dex.Move) dex.Category { return m.Category }
