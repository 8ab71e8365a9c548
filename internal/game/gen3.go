package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

// modernStages is the (2+n)/2 stat curve used from generation 3.
var modernStages = [13]Fraction{
	{2, 8}, {2, 7}, {2, 6}, {2, 5}, {2, 4}, {2, 3},
	{2, 2},
	{3, 2}, {4, 2}, {5, 2}, {6, 2}, {7, 2}, {8, 2},
}

// modernAccuracyStages is the (3+n)/3 accuracy and evasion curve.
var modernAccuracyStages = [13]Fraction{
	{3, 9}, {3, 8}, {3, 7}, {3, 6}, {3, 5}, {3, 4},
	{3, 3},
	{4, 3}, {5, 3}, {6, 3}, {7, 3}, {8, 3}, {9, 3},
}

var gen3Patch = RulesetPatch{
	Gen:           3,
	DisableQuirks: QuirkByteOverflowStats | QuirkBurnHalvesAttackStat | QuirkBellyDrumFailBoost,

	DVs:       lo.ToPtr(false),
	DefaultEV: lo.ToPtr(0),

	StatStages:     &modernStages,
	AccuracyStages: &modernAccuracyStages,
	CritStages:     []Fraction{{1, 16}, {1, 8}, {1, 4}, {1, 3}, {1, 2}},

	FocusEnergyStages: lo.ToPtr(2),

	SleepTurns:   &Range{3, 6},
	DisableTurns: &Range{2, 5},
	EncoreTurns:  &Range{3, 7},
	TauntTurns:   &Range{2, 2},
	MaxSpikes:    lo.ToPtr(3),
	SpikesDamage: []int{8, 6, 4},

	FullParalysis:    &Fraction{1, 4},
	ThawInMove:       &Fraction{1, 5},
	ThawBetweenTurns: &Fraction{0, 1},
	QuickClaw:        &Fraction{1, 5},

	Residual: &ResidualRates{
		Poison: 8, Burn: 8, Toxic: 16, LeechSeed: 8, Curse: 4, Nightmare: 4,
		Weather: 16, PartialTrap: 16, Leftovers: 16, Ingrain: 16,
	},

	CalcStat:        modernCalcStat,
	Damage:          modernDamage,
	CheckAccuracy:   modernCheckAccuracy,
	SecondaryChance: modernSecondaryChance,
	BeforeMove:      gen3BeforeMove,

	CustomMoves: map[string]MoveHandler{
		"taunt":   moveTaunt,
		"yawn":    moveYawn,
		"ingrain": moveIngrain,
	},
}

// modernCalcStat is the IV, EV and nature formula.
func modernCalcStat(stat dex.Stat, base, iv, ev, level int, nature *dex.Nature) int {
	core := (2*base + iv + ev/4) * level / 100
	if stat == dex.StatHP {
		return core + level + 10
	}
	v := core + 5
	if nature != nil && !nature.Neutral() {
		switch stat {
		case nature.Plus:
			v = v * 110 / 100
		case nature.Minus:
			v = v * 90 / 100
		}
	}
	return v
}

var gen3Gates = []moveGate{gateTruant, gateSleep, gateFreeze, gateRecharge, gateFlinch, gateConfusion, gateAttract, gateParalysis}

func gen3BeforeMove(b *Battle, user *ActivePokemon) bool {
	return b.runGates(user, gen3Gates)
}
