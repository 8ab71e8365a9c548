package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

var gen2Patch = RulesetPatch{
	Gen:          2,
	EnableQuirks: QuirkWakeTurnActs | QuirkBellyDrumFailBoost,
	DisableQuirks: QuirkUnifiedSpecial | QuirkSubstituteExtraHP | QuirkSelfDestructSparedBySub |
		QuirkStatusPenaltyGlitch | QuirkStatCapBlocksBoost | QuirkRecoverFailGlitch |
		QuirkPhasingFails | QuirkRechargeSkippedOnKO | QuirkKeepInvulnerableOnParaInterrupt |
		QuirkZeroDamageMisses | QuirkPartialTrapLocksUser | QuirkSecondaryBlockedBySameType |
		QuirkResidualAfterMove | QuirkScreensAreVolatile | QuirkFocusEnergyBug |
		QuirkHazeCuresFoe | QuirkRageLocks | QuirkPPWrapAvailable,

	CritStages:        []Fraction{{17, 256}, {32, 256}, {64, 256}, {85, 256}, {128, 256}},
	FocusEnergyStages: lo.ToPtr(1),

	SleepTurns:   &Range{2, 7},
	ThrashTurns:  &Range{1, 2},
	BideTurns:    &Range{2, 2},
	DisableTurns: &Range{2, 8},
	EncoreTurns:  &Range{3, 6},
	ScreenTurns:  lo.ToPtr(5),
	WeatherTurns: lo.ToPtr(5),
	MaxSpikes:    lo.ToPtr(1),
	SpikesDamage: []int{8},
	RestTurns:    lo.ToPtr(3),

	TypeItemBoost:    &Fraction{11, 10},
	ThawBetweenTurns: &Fraction{25, 256},
	QuickClaw:        &Fraction{60, 256},

	Residual: &ResidualRates{
		Poison: 8, Burn: 8, Toxic: 16, LeechSeed: 8, Curse: 4, Nightmare: 4,
		Weather: 8, PartialTrap: 16, Leftovers: 16,
	},

	Interrupts: map[dex.LockKind]Cause{
		dex.LockCharge:      CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit | CauseFlinch | CauseAttract,
		dex.LockThrash:      CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit | CauseFlinch | CauseAttract,
		dex.LockBide:        CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit | CauseFlinch | CauseAttract,
		dex.LockPartialTrap: 0,
		dex.LockRage:        CauseSleep | CauseFreeze | CauseFullPara | CauseConfusionHit | CauseFlinch | CauseAttract,
	},
	StatusImmunity: map[dex.Status][]dex.Type{
		dex.StatusPoison: {dex.TypePoison, dex.TypeSteel},
	},

	ClampStat:     clampStat,
	Damage:        gen2Damage,
	IsCrit:        stagedIsCrit,
	CheckAccuracy: gen2CheckAccuracy,
	BeforeMove:    gen2BeforeMove,
	BetweenTurns:  modernBetweenTurns,

	CustomMoves: map[string]MoveHandler{
		"spikes":       moveSpikes,
		"perish-song":  movePerishSong,
		"encore":       moveEncore,
		"attract":      moveAttract,
		"curse":        moveCurse,
		"pain-split":   movePainSplit,
		"belly-drum":   moveBellyDrum,
		"swagger":      moveSwagger,
		"conversion-2": moveConversion2,
		"nightmare":    moveNightmare,
		"foresight":    moveForesight,
		"rapid-spin":   moveRapidSpin,
		"magnitude":    moveMagnitude,
		"present":      movePresent,
		"mirror-coat":  moveMirrorCoat,
		"tri-attack":   moveTriAttack,
	},
}

var gen2Gates = []moveGate{gateSleep, gateFreeze, gateRecharge, gateFlinch, gateConfusion, gateAttract, gateParalysis}

func gen2BeforeMove(b *Battle, user *ActivePokemon) bool {
	return b.runGates(user, gen2Gates)
}
