package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// moveGate is one pre-move check. A non-zero Cause stops the action.
type moveGate func(b *Battle, a *ActivePokemon) Cause

// runGates runs the checks in order and reports whether the action was
// canceled. A canceled action may end the user's multi-turn lock.
func (b *Battle) runGates(a *ActivePokemon, gates []moveGate) bool {
	for _, gate := range gates {
		if cause := gate(b, a); cause != 0 {
			b.interruptLock(a, cause)
			return true
		}
	}
	return false
}

// roll draws against a fraction. Certain and impossible outcomes do not
// consume a draw.
func (b *Battle) roll(f Fraction) bool {
	if f.Num <= 0 {
		return false
	}
	if f.Num >= f.Den {
		return true
	}
	return b.rng.Chance(f.Num, f.Den)
}

// interruptLock ends the user's lock when the generation says this cause
// breaks it.
func (b *Battle) interruptLock(a *ActivePokemon, cause Cause) {
	kind := a.Lock.Kind
	if kind == dex.LockNone || b.rules.Interrupts[kind]&cause == 0 {
		return
	}
	if kind == dex.LockCharge && !(cause == CauseFullPara && b.rules.Quirks.Has(QuirkKeepInvulnerableOnParaInterrupt)) {
		a.Clear(FlagSemiInvulnerable)
	}
	if kind == dex.LockPartialTrap {
		b.releaseTrap(a)
	}
	a.Lock = LockState{}
}

// releaseTrap frees the foe this combatant was binding.
func (b *Battle) releaseTrap(trapper *ActivePokemon) {
	if foe := b.foeOf(trapper); foe != nil && foe.TrappedBy == trapper.Owner() {
		foe.TrappedBy = ""
	}
}

func gateSleep(b *Battle, a *ActivePokemon) Cause {
	p := a.Pokemon
	if p.Status != dex.StatusSleep {
		return 0
	}
	p.SleepTurns--
	if a.Ability == "early-bird" {
		p.SleepTurns--
	}
	if p.SleepTurns > 0 {
		b.info(a, log.InfoFastAsleep)
		return CauseSleep
	}
	b.cureStatus(a)
	b.info(a, log.InfoWokeUp)
	if b.rules.Quirks.Has(QuirkWakeTurnActs) {
		return 0
	}
	return CauseSleep
}

func gateFreeze(b *Battle, a *ActivePokemon) Cause {
	if a.Pokemon.Status != dex.StatusFreeze {
		return 0
	}
	if b.roll(b.rules.ThawInMove) {
		b.cureStatus(a)
		b.info(a, log.InfoThawed)
		return 0
	}
	b.info(a, log.InfoFrozen)
	return CauseFreeze
}

// gateBound stops a combatant held by a generation 1 trapping move.
func gateBound(b *Battle, a *ActivePokemon) Cause {
	if a.TrappedBy == "" || !b.rules.Quirks.Has(QuirkPartialTrapLocksUser) {
		return 0
	}
	b.info(a, log.InfoBound)
	return CauseBound
}

func gateRecharge(b *Battle, a *ActivePokemon) Cause {
	if a.Lock.Kind != dex.LockRecharge {
		return 0
	}
	a.Lock = LockState{}
	b.info(a, log.InfoRecharge)
	return CauseRecharge
}

func gateFlinch(b *Battle, a *ActivePokemon) Cause {
	if !a.Has(FlagFlinch) {
		return 0
	}
	a.Clear(FlagFlinch)
	b.info(a, log.InfoFlinch)
	if a.Ability == "steadfast" {
		b.changeStage(a, dex.StatSpe, 1, a, false)
	}
	return CauseFlinch
}

func gateConfusion(b *Battle, a *ActivePokemon) Cause {
	if a.ConfusionTurns == 0 {
		return 0
	}
	a.ConfusionTurns--
	if a.ConfusionTurns == 0 {
		b.info(a, log.InfoConfusionEnded)
		return 0
	}
	b.info(a, log.InfoConfused)
	if !b.roll(b.rules.ConfusionSelfHit) {
		return 0
	}
	b.dealDamage(a, b.confusionDamage(a), "confusion", true)
	return CauseConfusionHit
}

func gateAttract(b *Battle, a *ActivePokemon) Cause {
	if a.AttractedTo == "" {
		return 0
	}
	b.info(a, log.InfoInfatuated)
	if b.roll(b.rules.Infatuation) {
		return CauseAttract
	}
	return 0
}

func gateParalysis(b *Battle, a *ActivePokemon) Cause {
	if a.Pokemon.Status != dex.StatusParalysis || !b.roll(b.rules.FullParalysis) {
		return 0
	}
	b.info(a, log.InfoFullPara)
	return CauseFullPara
}

// gateTruant makes the combatant skip every other action.
func gateTruant(b *Battle, a *ActivePokemon) Cause {
	if a.Ability != "truant" {
		return 0
	}
	if a.Loafing {
		a.Loafing = false
		b.info(a, log.InfoLoafing)
		return CauseTruant
	}
	a.Loafing = true
	return 0
}

// inflict tries to give target a non-volatile status. source is the
// combatant responsible, nil for field effects. Loud failures emit an info
// event; quiet ones (secondary effects) fail silently.
func (b *Battle) inflict(target *ActivePokemon, s dex.Status, source *ActivePokemon, m *dex.Move, loud bool) bool {
	p := target.Pokemon
	fail := func(info string) bool {
		if loud {
			b.info(target, info)
		}
		return false
	}
	if p.Fainted {
		return false
	}
	if p.Status != dex.StatusNone {
		return fail(log.InfoFailed)
	}
	if b.rules.immuneToStatus(target, s) {
		return fail(log.InfoImmune)
	}
	if !loud && m != nil && b.rules.Quirks.Has(QuirkSecondaryBlockedBySameType) && target.HasType(m.Type) {
		return false
	}
	foeCaused := source != nil && source != target
	if foeCaused && b.playerOf(target).Side.Safeguard > 0 {
		return fail(log.InfoProtected)
	}
	if b.abilityBlocksStatus(target, s) {
		return fail(log.InfoImmune)
	}
	if s == dex.StatusFreeze && b.Field.Weather == dex.WeatherSun {
		return false
	}
	if foeCaused && b.clauseBlocks(target, s) {
		return fail(log.InfoFailed)
	}

	p.SetStatus(s, false)
	if s == dex.StatusSleep {
		p.SleepTurns = b.rules.rollTurns(b, b.rules.SleepTurns)
		p.selfSlept = !foeCaused
	}
	target.Recalculate(b.rules)
	e := log.NewStatusEvent(target.Owner(), target.Name(), s.String())
	if foeCaused {
		e.Source = source.Owner()
	}
	b.emit(e)

	if foeCaused && target.Ability == "synchronize" {
		switch s {
		case dex.StatusBurn, dex.StatusParalysis, dex.StatusPoison, dex.StatusToxic:
			b.inflict(source, s, target, nil, false)
		}
	}
	b.berryCheck(target)
	return true
}

// clauseBlocks applies the sleep and freeze clauses: a side may only have
// one combatant slept or frozen by the opponent at a time.
func (b *Battle) clauseBlocks(target *ActivePokemon, s dex.Status) bool {
	var on bool
	switch s {
	case dex.StatusSleep:
		on = b.mods.SleepClause
	case dex.StatusFreeze:
		on = b.mods.FreezeClause
	}
	if !on {
		return false
	}
	for _, mon := range b.playerOf(target).Team {
		if mon != target.Pokemon && !mon.Fainted && mon.Status == s && !mon.selfSlept {
			return true
		}
	}
	return false
}

// cureStatus clears the non-volatile status and announces it.
func (b *Battle) cureStatus(a *ActivePokemon) {
	old := a.Pokemon.ClearStatus()
	if old == dex.StatusNone {
		return
	}
	a.Clear(FlagNightmare)
	a.Recalculate(b.rules)
	b.emit(log.NewCureStatusEvent(a.Owner(), a.Name(), old.String()))
}

// confuse confuses the target for a rolled number of its actions.
func (b *Battle) confuse(target, source *ActivePokemon, loud bool) bool {
	fail := func(info string) bool {
		if loud {
			b.info(target, info)
		}
		return false
	}
	if target.Pokemon.Fainted {
		return false
	}
	if target.ConfusionTurns > 0 {
		return fail(log.InfoFailed)
	}
	if target.Ability == "own-tempo" {
		return fail(log.InfoImmune)
	}
	if source != nil && source != target && b.playerOf(target).Side.Safeguard > 0 {
		return fail(log.InfoProtected)
	}
	target.ConfusionTurns = b.rules.rollTurns(b, b.rules.ConfusionTurns) + 1
	b.info(target, log.InfoConfused)
	b.berryCheck(target)
	return true
}

// changeStage moves one stat stage. source is the combatant whose move
// caused it; drops from the opponent can be blocked. Reports whether the
// stage moved.
func (b *Battle) changeStage(target *ActivePokemon, s dex.Stat, delta int, source *ActivePokemon, loud bool) bool {
	fail := func(info string) bool {
		if loud {
			b.info(target, info)
		}
		return false
	}
	if target.Pokemon.Fainted || delta == 0 {
		return false
	}
	foeCaused := source != nil && source != target
	if foeCaused && delta < 0 {
		if target.Has(FlagMist) || b.playerOf(target).Side.Mist > 0 {
			return fail(log.InfoProtected)
		}
		if b.abilityBlocksDrop(target, s) {
			return fail(log.InfoFailed)
		}
	}
	stats := []dex.Stat{s}
	if b.rules.Quirks.Has(QuirkUnifiedSpecial) && (s == dex.StatSpA || s == dex.StatSpD) {
		stats = []dex.Stat{dex.StatSpA, dex.StatSpD}
	}
	if delta > 0 && s <= dex.StatSpe && b.rules.Quirks.Has(QuirkStatCapBlocksBoost) && target.Stats[s] >= 999 {
		return fail(log.InfoNoEffect)
	}
	applied := 0
	for _, st := range stats {
		applied = target.ModifyStage(st, delta)
		if st <= dex.StatSpe {
			target.RecalculateStat(b.rules, st)
		}
	}
	if applied == 0 {
		return fail(log.InfoNoEffect)
	}
	e := log.NewStageEvent(target.Owner(), target.Name(), s.String(), applied, target.Stage(s))
	if foeCaused {
		e.Source = source.Owner()
	}
	b.emit(e)
	if applied < 0 && foeCaused {
		b.whiteHerb(target)
	}

	if source != nil && b.rules.Quirks.Has(QuirkStatusPenaltyGlitch) {
		if foe := b.foeOf(source); foe != nil && foe != target {
			b.reapplyPenalty(foe)
		}
	}
	return true
}

// reapplyPenalty divides the burn or paralysis stat again on top of the
// current value, stacking with any earlier application.
func (b *Battle) reapplyPenalty(a *ActivePokemon) {
	switch a.Pokemon.Status {
	case dex.StatusParalysis:
		a.Stats[dex.StatSpe] = max(a.Stats[dex.StatSpe]/4, 1)
	case dex.StatusBurn:
		a.Stats[dex.StatAtk] = max(a.Stats[dex.StatAtk]/2, 1)
	}
}
