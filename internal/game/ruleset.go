package game

import (
	"fmt"
	"sync"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

// Fraction is an exact ratio used by the stage and probability tables.
type Fraction struct{ Num, Den int }

// Apply scales v by the fraction, truncating.
func (f Fraction) Apply(v int) int { return v * f.Num / f.Den }

// Range is an inclusive range of turns.
type Range struct{ Min, Max int }

// Quirk is a bitmask of generation-gated behaviors. The legacy ones
// reproduce the original cartridges' bugs and must stay as they are.
type Quirk uint32

const (
	QuirkUnifiedSpecial Quirk = 1 << iota
	QuirkSubstituteExtraHP
	QuirkSelfDestructSparedBySub
	QuirkBurnHalvesAttackStat
	QuirkStatusPenaltyGlitch
	QuirkStatCapBlocksBoost
	QuirkRecoverFailGlitch
	QuirkPhasingFails
	QuirkRechargeSkippedOnKO
	QuirkKeepInvulnerableOnParaInterrupt
	QuirkZeroDamageMisses
	QuirkPartialTrapLocksUser
	QuirkSecondaryBlockedBySameType
	QuirkResidualAfterMove
	QuirkScreensAreVolatile
	QuirkWakeTurnActs
	QuirkByteOverflowStats
	QuirkBellyDrumFailBoost
	QuirkFocusEnergyBug
	QuirkHazeCuresFoe
	QuirkRageLocks
	QuirkPPWrapAvailable
)

func (q Quirk) Has(f Quirk) bool { return q&f == f }

// Cause is a bitmask of the things that can stop a combatant from acting.
// Lock interruption rules are written in terms of it.
type Cause uint16

const (
	CauseFlinch Cause = 1 << iota
	CauseFullPara
	CauseConfusionHit
	CauseSleep
	CauseFreeze
	CauseAttract
	CauseRecharge
	CauseBound
	CauseTruant
)

// ResidualRates are the between-turn fractions of max HP, as denominators.
type ResidualRates struct {
	Poison      int
	Burn        int
	Toxic       int // per toxic counter step
	LeechSeed   int
	Curse       int
	Nightmare   int
	Weather     int
	PartialTrap int
	Leftovers   int
	Ingrain     int
}

// MoveHandler executes one move kind or one custom move.
type MoveHandler func(b *Battle, mc *moveContext)

// Ruleset is one generation's rules: numeric tables, formulas and hooks.
// Generation 1 is the base; later generations are RulesetPatch values merged
// over it.
type Ruleset struct {
	Gen    int
	Quirks Quirk

	DVs       bool // individual values are 0-15 DVs; HP's is derived from the others
	DefaultIV int
	DefaultEV int

	StatStages      [13]Fraction // indexed by stage + 6
	AccuracyStages  [13]Fraction // indexed by stage + 6
	CritStages      []Fraction
	MultiHitWeights []int // weights for 2, 3, 4 and 5 hits

	FocusEnergyStages int // crit stages added by focus energy

	SleepTurns       Range
	ConfusionTurns   Range
	ThrashTurns      Range
	BideTurns        Range
	DisableTurns     Range
	EncoreTurns      Range
	TauntTurns       Range
	PartialTrapTurns Range
	ScreenTurns      int
	WeatherTurns     int
	MaxSpikes        int
	SpikesDamage     []int // denominator by layer count, index 0 = one layer
	RestTurns        int
	TypeItemBoost    Fraction

	FullParalysis    Fraction
	ConfusionSelfHit Fraction
	Infatuation      Fraction
	ThawInMove       Fraction
	ThawBetweenTurns Fraction
	QuickClaw        Fraction

	Residual ResidualRates

	// Interrupts maps each multi-turn lock to the causes that end it when
	// the user fails to act.
	Interrupts map[dex.LockKind]Cause

	// StatusImmunity maps a status to the types that can never receive it.
	StatusImmunity map[dex.Status][]dex.Type

	CalcStat        func(stat dex.Stat, base, iv, ev, level int, nature *dex.Nature) int
	ClampStat       func(v int) int
	CategoryOf      func(m *dex.Move) dex.Category
	Damage          func(b *Battle, h *Hit) int
	IsCrit          func(b *Battle, h *Hit) bool
	CheckAccuracy   func(b *Battle, user, target *ActivePokemon, m *dex.Move) bool
	SecondaryChance func(b *Battle, user *ActivePokemon, pct int) bool
	BeforeMove      func(b *Battle, user *ActivePokemon) (canceled bool)
	BetweenTurns    func(b *Battle)
	IsValidMove     func(b *Battle, a *ActivePokemon, slot int) bool

	// CustomMoves holds the handlers for moves of KindCustom, by move ID.
	CustomMoves map[string]MoveHandler
}

// RulesetPatch overrides selected fields of a Ruleset. Nil pointers, nil
// funcs and nil collections leave the base value alone; a non-nil slice
// replaces the base slice wholesale and a non-nil map is merged key by key.
type RulesetPatch struct {
	Gen           int
	EnableQuirks  Quirk
	DisableQuirks Quirk

	DVs       *bool
	DefaultIV *int
	DefaultEV *int

	StatStages      *[13]Fraction
	AccuracyStages  *[13]Fraction
	CritStages      []Fraction
	MultiHitWeights []int

	FocusEnergyStages *int

	SleepTurns       *Range
	ConfusionTurns   *Range
	ThrashTurns      *Range
	BideTurns        *Range
	DisableTurns     *Range
	EncoreTurns      *Range
	TauntTurns       *Range
	PartialTrapTurns *Range
	ScreenTurns      *int
	WeatherTurns     *int
	MaxSpikes        *int
	SpikesDamage     []int
	RestTurns        *int
	TypeItemBoost    *Fraction

	FullParalysis    *Fraction
	ConfusionSelfHit *Fraction
	Infatuation      *Fraction
	ThawInMove       *Fraction
	ThawBetweenTurns *Fraction
	QuickClaw        *Fraction

	Residual *ResidualRates

	Interrupts     map[dex.LockKind]Cause
	StatusImmunity map[dex.Status][]dex.Type

	CalcStat        func(stat dex.Stat, base, iv, ev, level int, nature *dex.Nature) int
	ClampStat       func(v int) int
	CategoryOf      func(m *dex.Move) dex.Category
	Damage          func(b *Battle, h *Hit) int
	IsCrit          func(b *Battle, h *Hit) bool
	CheckAccuracy   func(b *Battle, user, target *ActivePokemon, m *dex.Move) bool
	SecondaryChance func(b *Battle, user *ActivePokemon, pct int) bool
	BeforeMove      func(b *Battle, user *ActivePokemon) bool
	BetweenTurns    func(b *Battle)
	IsValidMove     func(b *Battle, a *ActivePokemon, slot int) bool

	CustomMoves map[string]MoveHandler
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Merge returns a copy of r with the patch applied. r is not modified.
func (r Ruleset) Merge(p RulesetPatch) Ruleset {
	out := r
	out.Gen = p.Gen
	out.Quirks = (r.Quirks | p.EnableQuirks) &^ p.DisableQuirks

	override(&out.DVs, p.DVs)
	override(&out.DefaultIV, p.DefaultIV)
	override(&out.DefaultEV, p.DefaultEV)
	override(&out.StatStages, p.StatStages)
	override(&out.AccuracyStages, p.AccuracyStages)
	if p.CritStages != nil {
		out.CritStages = p.CritStages
	}
	if p.MultiHitWeights != nil {
		out.MultiHitWeights = p.MultiHitWeights
	}
	override(&out.FocusEnergyStages, p.FocusEnergyStages)

	override(&out.SleepTurns, p.SleepTurns)
	override(&out.ConfusionTurns, p.ConfusionTurns)
	override(&out.ThrashTurns, p.ThrashTurns)
	override(&out.BideTurns, p.BideTurns)
	override(&out.DisableTurns, p.DisableTurns)
	override(&out.EncoreTurns, p.EncoreTurns)
	override(&out.TauntTurns, p.TauntTurns)
	override(&out.PartialTrapTurns, p.PartialTrapTurns)
	override(&out.ScreenTurns, p.ScreenTurns)
	override(&out.WeatherTurns, p.WeatherTurns)
	override(&out.MaxSpikes, p.MaxSpikes)
	if p.SpikesDamage != nil {
		out.SpikesDamage = p.SpikesDamage
	}
	override(&out.RestTurns, p.RestTurns)
	override(&out.TypeItemBoost, p.TypeItemBoost)

	override(&out.FullParalysis, p.FullParalysis)
	override(&out.ConfusionSelfHit, p.ConfusionSelfHit)
	override(&out.Infatuation, p.Infatuation)
	override(&out.ThawInMove, p.ThawInMove)
	override(&out.ThawBetweenTurns, p.ThawBetweenTurns)
	override(&out.QuickClaw, p.QuickClaw)
	override(&out.Residual, p.Residual)

	if p.Interrupts != nil {
		out.Interrupts = lo.Assign(r.Interrupts, p.Interrupts)
	}
	if p.StatusImmunity != nil {
		out.StatusImmunity = lo.Assign(r.StatusImmunity, p.StatusImmunity)
	}
	if p.CustomMoves != nil {
		out.CustomMoves = lo.Assign(r.CustomMoves, p.CustomMoves)
	}

	if p.CalcStat != nil {
		out.CalcStat = p.CalcStat
	}
	if p.ClampStat != nil {
		out.ClampStat = p.ClampStat
	}
	if p.CategoryOf != nil {
		out.CategoryOf = p.CategoryOf
	}
	if p.Damage != nil {
		out.Damage = p.Damage
	}
	if p.IsCrit != nil {
		out.IsCrit = p.IsCrit
	}
	if p.CheckAccuracy != nil {
		out.CheckAccuracy = p.CheckAccuracy
	}
	if p.SecondaryChance != nil {
		out.SecondaryChance = p.SecondaryChance
	}
	if p.BeforeMove != nil {
		out.BeforeMove = p.BeforeMove
	}
	if p.BetweenTurns != nil {
		out.BetweenTurns = p.BetweenTurns
	}
	if p.IsValidMove != nil {
		out.IsValidMove = p.IsValidMove
	}
	return out
}

// RulesetPatches lists the per-generation rule deltas, applied in order.
var RulesetPatches = []RulesetPatch{gen2Patch, gen3Patch, gen4Patch}

var (
	rulesMu    sync.Mutex
	rulesCache = map[int]*Ruleset{}
)

// RulesetFor returns the merged rules for a generation.
func RulesetFor(gen int) (*Ruleset, error) {
	if gen < dex.MinGen || gen > dex.MaxGen {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedGen, gen)
	}
	rulesMu.Lock()
	defer rulesMu.Unlock()
	if r, ok := rulesCache[gen]; ok {
		return r, nil
	}
	r := gen1Rules()
	for _, p := range RulesetPatches {
		if p.Gen > gen {
			break
		}
		r = r.Merge(p)
	}
	rulesCache[gen] = &r
	return &r, nil
}

// spreads resolves a set's IVs and EVs into per-stat arrays, filling the
// generation's defaults. Under DVs the HP value is derived from the others.
func (r *Ruleset) spreads(set PokemonSet) (ivs, evs dex.Stats, err error) {
	for s := dex.StatHP; s <= dex.StatSpe; s++ {
		ivs[s] = r.DefaultIV
		evs[s] = r.DefaultEV
	}
	for name, v := range set.IVs {
		s, perr := dex.ParseStat(name)
		if perr != nil {
			return ivs, evs, fmt.Errorf("%w: %v", ErrBadRoster, perr)
		}
		if v < 0 || v > 31 {
			return ivs, evs, fmt.Errorf("%w: iv %s=%d", ErrBadRoster, name, v)
		}
		ivs[s] = v
	}
	for name, v := range set.EVs {
		s, perr := dex.ParseStat(name)
		if perr != nil {
			return ivs, evs, fmt.Errorf("%w: %v", ErrBadRoster, perr)
		}
		if v < 0 || v > 255 {
			return ivs, evs, fmt.Errorf("%w: ev %s=%d", ErrBadRoster, name, v)
		}
		evs[s] = v
	}
	if r.DVs {
		for s := dex.StatHP; s <= dex.StatSpe; s++ {
			ivs[s] /= 2
		}
		// one Special DV serves both special stats
		ivs[dex.StatSpD] = ivs[dex.StatSpA]
		ivs[dex.StatHP] = (ivs[dex.StatAtk]&1)<<3 | (ivs[dex.StatDef]&1)<<2 |
			(ivs[dex.StatSpe]&1)<<1 | ivs[dex.StatSpA]&1
	}
	return ivs, evs, nil
}

// StageMultiplier returns the stat-stage fraction for a stage.
func (r *Ruleset) StageMultiplier(stage int) Fraction {
	return r.StatStages[lo.Clamp(stage, -6, 6)+6]
}

func (r *Ruleset) rollTurns(b *Battle, rg Range) int {
	return b.rng.IntRange(rg.Min, rg.Max)
}

// immuneToStatus reports whether types alone rule out the status.
func (r *Ruleset) immuneToStatus(a *ActivePokemon, s dex.Status) bool {
	check := s
	if s == dex.StatusToxic {
		check = dex.StatusPoison
	}
	for _, t := range r.StatusImmunity[check] {
		if a.HasType(t) {
			return true
		}
	}
	return false
}
