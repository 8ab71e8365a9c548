package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

// classicStages is the 25/100 .. 400/100 stage curve of generations 1 and 2.
var classicStages = [13]Fraction{
	{25, 100}, {28, 100}, {33, 100}, {40, 100}, {50, 100}, {66, 100},
	{100, 100},
	{150, 100}, {200, 100}, {250, 100}, {300, 100}, {350, 100}, {400, 100},
}

// gen1Rules is the base every later generation patches.
func gen1Rules() Ruleset {
	return Ruleset{
		Gen: 1,
		Quirks: QuirkUnifiedSpecial | QuirkSubstituteExtraHP | QuirkSelfDestructSparedBySub |
			QuirkBurnHalvesAttackStat | QuirkStatusPenaltyGlitch | QuirkStatCapBlocksBoost |
			QuirkRecoverFailGlitch | QuirkPhasingFails | QuirkRechargeSkippedOnKO |
			QuirkKeepInvulnerableOnParaInterrupt | QuirkZeroDamageMisses | QuirkPartialTrapLocksUser |
			QuirkSecondaryBlockedBySameType | QuirkResidualAfterMove | QuirkScreensAreVolatile |
			QuirkByteOverflowStats | QuirkFocusEnergyBug | QuirkHazeCuresFoe |
			QuirkRageLocks | QuirkPPWrapAvailable,

		DVs:       true,
		DefaultIV: 31,
		DefaultEV: 252,

		StatStages:      classicStages,
		AccuracyStages:  classicStages,
		MultiHitWeights: []int{3, 3, 1, 1},

		SleepTurns:       Range{1, 7},
		ConfusionTurns:   Range{2, 5},
		ThrashTurns:      Range{2, 3},
		BideTurns:        Range{2, 3},
		DisableTurns:     Range{1, 8},
		PartialTrapTurns: Range{2, 5},
		RestTurns:        2,
		TypeItemBoost:    Fraction{1, 1},

		FullParalysis:    Fraction{63, 256},
		ConfusionSelfHit: Fraction{1, 2},
		Infatuation:      Fraction{1, 2},
		ThawInMove:       Fraction{0, 1},
		ThawBetweenTurns: Fraction{0, 1},
		QuickClaw:        Fraction{0, 1},

		Residual: ResidualRates{Poison: 16, Burn: 16, Toxic: 16, LeechSeed: 16},

		Interrupts: map[dex.LockKind]Cause{
			dex.LockCharge:      CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit | CauseBound,
			dex.LockThrash:      CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit | CauseBound,
			dex.LockBide:        CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit | CauseBound,
			dex.LockPartialTrap: CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit,
			dex.LockRecharge:    CauseSleep | CauseFreeze,
		},
		StatusImmunity: map[dex.Status][]dex.Type{
			dex.StatusBurn:   {dex.TypeFire},
			dex.StatusFreeze: {dex.TypeIce},
			dex.StatusPoison: {dex.TypePoison},
		},

		CalcStat:        classicCalcStat,
		ClampStat:       gen1ClampStat,
		CategoryOf:      typeSplitCategory,
		Damage:          gen1Damage,
		IsCrit:          gen1IsCrit,
		CheckAccuracy:   gen1CheckAccuracy,
		SecondaryChance: gen1SecondaryChance,
		BeforeMove:      gen1BeforeMove,
		BetweenTurns:    classicBetweenTurns,
		IsValidMove:     isValidMove,

		CustomMoves: map[string]MoveHandler{
			"bide":         moveBide,
			"counter":      moveCounter,
			"metronome":    moveMetronome,
			"mirror-move":  moveMirrorMove,
			"rest":         moveRest,
			"substitute":   moveSubstitute,
			"transform":    moveTransform,
			"mimic":        moveMimic,
			"conversion":   moveConversion,
			"haze":         moveHaze,
			"disable":      moveDisable,
			"leech-seed":   moveLeechSeed,
			"focus-energy": moveFocusEnergy,
			"teleport":     moveNothing,
			"splash":       moveNothing,
		},
	}
}

// classicCalcStat is the DV and stat-experience formula. The EV argument
// stands in for the square root of stat experience.
func classicCalcStat(stat dex.Stat, base, iv, ev, level int, _ *dex.Nature) int {
	core := ((base+iv)*2 + ev/4) * level / 100
	if stat == dex.StatHP {
		return core + level + 10
	}
	return core + 5
}

// gen1ClampStat keeps the low ten bits of a modified stat before clamping
// it into range, so a boosted stat past 1023 wraps around to a small one.
func gen1ClampStat(v int) int {
	return lo.Clamp(v&1023, 1, 999)
}

func clampStat(v int) int { return lo.Clamp(v, 1, 999) }

// typeSplitCategory derives the category from the move's type.
func typeSplitCategory(m *dex.Move) dex.Category {
	if m.Category == dex.CategoryStatus {
		return dex.CategoryStatus
	}
	if m.Type.IsPhysical() {
		return dex.CategoryPhysical
	}
	return dex.CategorySpecial
}

var gen1Gates = []moveGate{gateSleep, gateFreeze, gateBound, gateRecharge, gateFlinch, gateConfusion, gateParalysis}

func gen1BeforeMove(b *Battle, user *ActivePokemon) bool {
	return b.runGates(user, gen1Gates)
}

// isValidMove reports whether a slot may be chosen this turn.
func isValidMove(b *Battle, a *ActivePokemon, i int) bool {
	slot := a.Slot(i)
	if slot == nil || slot.PP <= 0 {
		return false
	}
	switch {
	case a.Disabled.Turns > 0 && a.Disabled.Slot == i:
		return false
	case a.TauntTurns > 0 && slot.Move.Category == dex.CategoryStatus:
		return false
	case a.EncoreTurns > 0 && a.EncoreSlot != i:
		return false
	case a.ChoiceSlot >= 0 && a.ChoiceSlot != i:
		return false
	}
	return true
}
