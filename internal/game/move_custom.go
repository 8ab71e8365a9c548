package game

import (
	"slices"
	"strconv"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/samber/lo"
)

// callMove runs a move picked by another move. It is announced as its own
// move and counts as the user's last move.
func (b *Battle) callMove(mc *moveContext, m *dex.Move) {
	b.emit(log.NewMoveEvent(mc.user.Owner(), mc.user.Name(), m.Name))
	mc.user.LastMove = m
	b.executeMove(&moveContext{user: mc.user, target: b.foeOf(mc.user), move: m, slot: -1, called: true})
}

func moveNothing(b *Battle, mc *moveContext) {
	b.info(mc.user, log.InfoNothing)
}

// bideStoring reports whether the next bide action still stores damage.
func bideStoring(a *ActivePokemon) bool {
	return a.Lock.Kind != dex.LockBide || a.Lock.Turns > 1
}

func moveBide(b *Battle, mc *moveContext) {
	user := mc.user
	if user.Lock.Kind != dex.LockBide {
		user.Lock = LockState{
			Kind:  dex.LockBide,
			Move:  mc.move,
			Slot:  mc.slot,
			Turns: b.rules.rollTurns(b, b.rules.BideTurns),
		}
		b.info(user, log.InfoBideStore)
		return
	}
	user.Lock.Turns--
	if user.Lock.Turns > 0 {
		b.info(user, log.InfoBideStore)
		return
	}
	stored := user.Lock.Damage
	user.Lock = LockState{}
	b.info(user, log.InfoBideRelease)
	if stored == 0 {
		b.info(user, log.InfoFailed)
		return
	}
	res := b.dealDamage(mc.target, stored*2, "", false)
	mc.hits++
	mc.dealt += res.Dealt
}

func moveCounter(b *Battle, mc *moveContext) { b.reflectDamage(mc, dex.CategoryPhysical) }

func moveMirrorCoat(b *Battle, mc *moveContext) { b.reflectDamage(mc, dex.CategorySpecial) }

// reflectDamage returns double the damage the user last took. Generation 1
// checks the foe's last move type and never forgets old damage; later
// generations need a hit of the right category this turn.
func (b *Battle) reflectDamage(mc *moveContext, cat dex.Category) {
	user, target := mc.user, mc.target
	taken := user.LastDamageTaken
	ok := taken > 0
	if b.Gen == 1 {
		last := target.LastMove
		ok = ok && last != nil && last.Power > 0 && last.ID != "counter" &&
			(last.Type == dex.TypeNormal || last.Type == dex.TypeFighting)
	} else {
		ok = ok && user.LastDamageTurn == b.turn && user.LastDamageCategory == cat
	}
	if !ok {
		b.info(user, log.InfoFailed)
		return
	}
	if b.Gen >= 2 && b.newHit(user, target, mc.move, 0).Immune() {
		b.info(target, log.InfoImmune)
		return
	}
	res := b.dealDamage(target, taken*2, "", false)
	mc.hits++
	mc.dealt += res.Dealt
}

func moveMetronome(b *Battle, mc *moveContext) {
	pool := lo.Filter(b.Dex.MoveIDs(), func(id string, _ int) bool {
		m, _ := b.Dex.Move(id)
		return !m.Flags.Has(dex.FlagNoMetronome) && id != dex.StruggleID
	})
	if len(pool) == 0 {
		b.info(mc.user, log.InfoFailed)
		return
	}
	b.callMove(mc, b.Dex.MustMove(pool[b.rng.IntN(len(pool))]))
}

func moveMirrorMove(b *Battle, mc *moveContext) {
	last := mc.target.LastMove
	if last == nil || last.ID == "mirror-move" || b.Gen >= 2 && !last.Flags.Has(dex.FlagMirror) {
		b.info(mc.user, log.InfoFailed)
		return
	}
	b.callMove(mc, last)
}

func moveRest(b *Battle, mc *moveContext) {
	user := mc.user
	p := user.Pokemon
	missing := p.MaxHP - p.HP
	if missing == 0 || b.rules.Quirks.Has(QuirkRecoverFailGlitch) && missing%256 == 255 {
		b.info(user, log.InfoFailed)
		return
	}
	if p.Status != dex.StatusSleep {
		p.SetStatus(dex.StatusSleep, true)
	}
	p.SleepTurns = b.rules.RestTurns
	p.selfSlept = true
	user.Recalculate(b.rules)
	b.emit(log.NewStatusEvent(user.Owner(), user.Name(), dex.StatusSleep.String()))
	b.heal(user, missing)
}

func moveSubstitute(b *Battle, mc *moveContext) {
	user := mc.user
	p := user.Pokemon
	cost := p.MaxHP / 4
	if user.SubstituteHP > 0 {
		b.info(user, log.InfoFailed)
		return
	}
	if b.rules.Quirks.Has(QuirkSubstituteExtraHP) {
		// paying exactly the remaining HP faints the user
		if p.HP < cost {
			b.info(user, log.InfoFailed)
			return
		}
		b.dealDamage(user, cost, "substitute", true)
		if p.Fainted {
			return
		}
		user.SubstituteHP = cost + 1
	} else {
		if cost == 0 || p.HP <= cost {
			b.info(user, log.InfoFailed)
			return
		}
		b.dealDamage(user, cost, "substitute", true)
		user.SubstituteHP = cost
	}
	if user.Lock.Kind == dex.LockPartialTrap {
		b.releaseTrap(user)
		user.Lock = LockState{}
	}
	b.emit(log.Event{Type: log.EventSubstitute, Player: user.Owner(), Species: user.Name(), Amount: user.SubstituteHP})
}

func moveTransform(b *Battle, mc *moveContext) {
	user, target := mc.user, mc.target
	if target.Has(FlagTransformed) && b.Gen >= 3 || target.SubstituteHP > 0 && b.Gen >= 2 {
		b.info(user, log.InfoFailed)
		return
	}
	var stats dex.Stats
	for s := dex.StatHP; s <= dex.StatSpe; s++ {
		stats[s] = target.baseStat(s)
	}
	stats[dex.StatHP] = user.Pokemon.MaxHP
	user.transformStats = &stats
	user.Types = slices.Clone(target.Types)
	user.Stages = target.Stages
	if b.Gen >= 3 {
		user.Ability = target.Ability
	}
	user.overlay = lo.Map(target.Slots(), func(s *MoveSlot, _ int) *MoveSlot {
		return &MoveSlot{Move: s.Move, PP: 5, MaxPP: 5}
	})
	user.ChoiceSlot = -1
	user.Disabled = DisableState{Slot: -1}
	user.Set(FlagTransformed)
	user.Recalculate(b.rules)
	b.emit(log.Event{Type: log.EventTransform, Player: user.Owner(), Species: user.Name(), Value: target.Name()})
}

func moveMimic(b *Battle, mc *moveContext) {
	user, target := mc.user, mc.target
	if mc.slot < 0 {
		b.info(user, log.InfoFailed)
		return
	}
	var m *dex.Move
	pp := 5
	if b.Gen == 1 {
		slots := target.Slots()
		m = slots[b.rng.IntN(len(slots))].Move
		pp = user.Slot(mc.slot).PP
	} else {
		m = target.LastMove
	}
	if m == nil || m.ID == dex.StruggleID || m.ID == "mimic" || m.ID == "transform" || m.ID == "metronome" ||
		b.Gen >= 2 && user.SlotOf(m.ID) >= 0 {
		b.info(user, log.InfoFailed)
		return
	}
	user.replaceSlot(mc.slot, &MoveSlot{Move: m, PP: pp, MaxPP: max(pp, 5)})
	b.emit(log.Event{Type: log.EventMimic, Player: user.Owner(), Species: user.Name(), Move: m.Name})
}

func moveConversion(b *Battle, mc *moveContext) {
	user := mc.user
	var types []dex.Type
	if b.Gen == 1 {
		if foe := b.foeOf(user); foe != nil {
			types = slices.Clone(foe.Types)
		}
	} else {
		candidates := lo.Uniq(lo.FilterMap(user.Slots(), func(s *MoveSlot, _ int) (dex.Type, bool) {
			t := s.Move.Type
			return t, t != dex.TypeNone && s.Move.ID != "conversion" && !user.HasType(t)
		}))
		if len(candidates) > 0 {
			types = []dex.Type{candidates[b.rng.IntN(len(candidates))]}
		}
	}
	if len(types) == 0 {
		b.info(user, log.InfoFailed)
		return
	}
	b.setTypes(user, types)
}

func moveConversion2(b *Battle, mc *moveContext) {
	user := mc.user
	foe := b.foeOf(user)
	if foe == nil || foe.LastMove == nil || foe.LastMove.Type == dex.TypeNone {
		b.info(user, log.InfoFailed)
		return
	}
	atk := foe.LastMove.Type
	var resist []dex.Type
	for t := dex.TypeNormal; t < dex.NumTypes; t++ {
		if b.Dex.TypeChart.Lookup(atk, t) < dex.Neutral && !user.HasType(t) {
			resist = append(resist, t)
		}
	}
	if len(resist) == 0 {
		b.info(user, log.InfoFailed)
		return
	}
	b.setTypes(user, []dex.Type{resist[b.rng.IntN(len(resist))]})
}

// setTypes replaces a combatant's types until it leaves the field.
func (b *Battle) setTypes(a *ActivePokemon, types []dex.Type) {
	a.Types = types
	b.emit(log.Event{Type: log.EventTypeConversion, Player: a.Owner(), Species: a.Name(), Types: a.TypeNames()})
}

func moveHaze(b *Battle, mc *moveContext) {
	b.info(mc.user, log.InfoHaze)
	for _, p := range b.players {
		a := p.Active
		if a == nil || a.Pokemon.Fainted {
			continue
		}
		a.clearStages(b.rules)
		if b.Gen > 1 {
			continue
		}
		a.Clear(FlagFocusEnergy | FlagLeechSeed | FlagMist | FlagReflect | FlagLightScreen)
		a.SeededBy = ""
		a.ConfusionTurns = 0
		a.Disabled = DisableState{Slot: -1}
		if a.Pokemon.Status == dex.StatusToxic {
			a.Pokemon.Status = dex.StatusPoison
		}
		if a != mc.user && b.rules.Quirks.Has(QuirkHazeCuresFoe) {
			b.cureStatus(a)
		}
	}
}

func moveDisable(b *Battle, mc *moveContext) {
	target := mc.target
	if target.Disabled.Turns > 0 {
		b.info(target, log.InfoFailed)
		return
	}
	slot := -1
	if b.Gen == 1 {
		var usable []int
		for i, s := range target.Slots() {
			if s.PP > 0 {
				usable = append(usable, i)
			}
		}
		if len(usable) > 0 {
			slot = usable[b.rng.IntN(len(usable))]
		}
	} else if s := target.Slot(target.LastMoveSlot); s != nil && s.PP > 0 && target.LastMove == s.Move {
		slot = target.LastMoveSlot
	}
	if slot < 0 {
		b.info(target, log.InfoFailed)
		return
	}
	target.Disabled = DisableState{Slot: slot, Turns: b.rules.rollTurns(b, b.rules.DisableTurns)}
	b.emit(log.Event{Type: log.EventDisable, Player: target.Owner(), Species: target.Name(), Move: target.Slot(slot).Move.Name})
}

func moveLeechSeed(b *Battle, mc *moveContext) {
	target := mc.target
	if b.blockedBySub(mc) {
		return
	}
	if target.HasType(dex.TypeGrass) {
		b.info(target, log.InfoImmune)
		return
	}
	if target.Has(FlagLeechSeed) {
		b.info(target, log.InfoFailed)
		return
	}
	target.Set(FlagLeechSeed)
	target.SeededBy = mc.user.Owner()
	b.info(target, log.InfoLeechSeed)
}

func moveFocusEnergy(b *Battle, mc *moveContext) {
	if mc.user.Has(FlagFocusEnergy) {
		b.info(mc.user, log.InfoFailed)
		return
	}
	mc.user.Set(FlagFocusEnergy)
	b.info(mc.user, log.InfoFocusEnergy)
}

// --- Generation 2 ---

func moveSpikes(b *Battle, mc *moveContext) {
	foe := b.OpponentOf(b.playerOf(mc.user))
	if foe.Side.Spikes >= b.rules.MaxSpikes {
		b.info(mc.user, log.InfoFailed)
		return
	}
	foe.Side.Spikes++
	b.emit(log.Event{Type: log.EventInfo, Player: foe.ID, Info: log.InfoSpikes, Amount: foe.Side.Spikes})
}

func movePerishSong(b *Battle, mc *moveContext) {
	affected := 0
	for _, p := range b.players {
		a := p.Active
		if a == nil || a.Pokemon.Fainted || a.PerishCount > 0 || a.Ability == "soundproof" {
			continue
		}
		a.PerishCount = 4
		affected++
	}
	if affected == 0 {
		b.info(mc.user, log.InfoFailed)
		return
	}
	b.info(mc.user, log.InfoPerish)
}

func moveEncore(b *Battle, mc *moveContext) {
	target := mc.target
	last := target.LastMove
	s := target.Slot(target.LastMoveSlot)
	if last == nil || s == nil || s.Move != last || s.PP == 0 || target.EncoreTurns > 0 {
		b.info(target, log.InfoFailed)
		return
	}
	switch last.ID {
	case "encore", "mirror-move", "transform", "mimic", dex.StruggleID:
		b.info(target, log.InfoFailed)
		return
	}
	target.EncoreSlot = target.LastMoveSlot
	target.EncoreTurns = b.rules.rollTurns(b, b.rules.EncoreTurns)
	b.info(target, log.InfoEncore)
	if act := b.pendingAction(b.playerOf(target)); act != nil && act.choice.Kind == ChoiceMove {
		act.choice.Slot = target.EncoreSlot
	}
}

func moveAttract(b *Battle, mc *moveContext) {
	user, target := mc.user, mc.target
	ug, tg := user.Pokemon.Gender, target.Pokemon.Gender
	if ug == "N" || tg == "N" || ug == tg || target.AttractedTo != "" {
		b.info(target, log.InfoFailed)
		return
	}
	if target.Ability == "oblivious" {
		b.showAbility(target)
		b.info(target, log.InfoImmune)
		return
	}
	target.AttractedTo = user.Owner()
	b.info(target, log.InfoInfatuated)
}

func moveCurse(b *Battle, mc *moveContext) {
	user := mc.user
	if !user.HasType(dex.TypeGhost) {
		b.changeStage(user, dex.StatSpe, -1, user, true)
		b.changeStage(user, dex.StatAtk, 1, user, true)
		b.changeStage(user, dex.StatDef, 1, user, true)
		return
	}
	target := b.foeOf(user)
	if target == nil || target.Pokemon.Fainted || target.Has(FlagCurse) {
		b.info(user, log.InfoFailed)
		return
	}
	b.dealDamage(user, max(user.Pokemon.MaxHP/2, 1), "curse", true)
	target.Set(FlagCurse)
	b.info(target, log.InfoCurse)
}

func movePainSplit(b *Battle, mc *moveContext) {
	if b.blockedBySub(mc) {
		return
	}
	user, target := mc.user, mc.target
	avg := (user.Pokemon.HP + target.Pokemon.HP) / 2
	b.info(user, log.InfoPainSplit)
	for _, a := range []*ActivePokemon{user, target} {
		if diff := a.Pokemon.HP - avg; diff > 0 {
			b.dealDamage(a, diff, "pain-split", true)
		} else if diff < 0 {
			b.heal(a, -diff)
		}
	}
}

func moveBellyDrum(b *Battle, mc *moveContext) {
	user := mc.user
	cost := user.Pokemon.MaxHP / 2
	if user.Pokemon.HP <= cost || user.Stage(dex.StatAtk) == 6 {
		if b.rules.Quirks.Has(QuirkBellyDrumFailBoost) && user.Pokemon.HP <= cost {
			b.changeStage(user, dex.StatAtk, 2, user, false)
		}
		b.info(user, log.InfoFailed)
		return
	}
	b.dealDamage(user, cost, "belly-drum", true)
	b.changeStage(user, dex.StatAtk, 12, user, true)
}

func moveSwagger(b *Battle, mc *moveContext) {
	if b.blockedBySub(mc) {
		return
	}
	b.changeStage(mc.target, dex.StatAtk, 2, mc.user, true)
	b.confuse(mc.target, mc.user, true)
}

func moveNightmare(b *Battle, mc *moveContext) {
	target := mc.target
	if b.blockedBySub(mc) {
		return
	}
	if target.Pokemon.Status != dex.StatusSleep || target.Has(FlagNightmare) {
		b.info(target, log.InfoFailed)
		return
	}
	target.Set(FlagNightmare)
	b.info(target, log.InfoNightmare)
}

func moveForesight(b *Battle, mc *moveContext) {
	mc.target.Set(FlagForesight)
	b.info(mc.target, log.InfoForesight)
}

func moveRapidSpin(b *Battle, mc *moveContext) {
	moveDamage(b, mc)
	user := mc.user
	if mc.hits == 0 || user.Pokemon.Fainted {
		return
	}
	if user.TrappedBy != "" {
		if foe := b.foeOf(user); foe != nil && foe.Lock.Kind == dex.LockPartialTrap {
			foe.Lock = LockState{}
		}
		user.TrappedBy = ""
		user.TrapTurns = 0
	}
	user.Clear(FlagLeechSeed)
	user.SeededBy = ""
	if side := &b.playerOf(user).Side; side.Spikes > 0 {
		side.Spikes = 0
		b.info(user, log.InfoSpikesCleared)
	}
}

var (
	magnitudes      = []int{4, 5, 6, 7, 8, 9, 10}
	magnitudePower  = map[int]int{4: 10, 5: 30, 6: 50, 7: 70, 8: 90, 9: 110, 10: 150}
	magnitudeWeight = []int{5, 10, 20, 30, 20, 10, 5}
)

func moveMagnitude(b *Battle, mc *moveContext) {
	mag := WeightedChoice(b.rng, magnitudes, magnitudeWeight)
	b.emit(log.Event{Type: log.EventMagnitude, Player: mc.user.Owner(), Species: mc.user.Name(), Amount: mag, Value: strconv.Itoa(mag)})
	mc.power = magnitudePower[mag]
	moveDamage(b, mc)
}

func movePresent(b *Battle, mc *moveContext) {
	power := WeightedChoice(b.rng, []int{40, 80, 120, 0}, []int{102, 76, 26, 52})
	if power > 0 {
		mc.power = power
		moveDamage(b, mc)
		return
	}
	target := mc.target
	if target.Pokemon.HP == target.Pokemon.MaxHP {
		b.info(target, log.InfoFailed)
		return
	}
	b.heal(target, fraction(target, 4))
}

func moveTriAttack(b *Battle, mc *moveContext) {
	moveDamage(b, mc)
	target := mc.target
	if mc.hits == 0 || mc.hitSub || target.Pokemon.Fainted || !b.rules.SecondaryChance(b, mc.user, 20) {
		return
	}
	s := []dex.Status{dex.StatusBurn, dex.StatusFreeze, dex.StatusParalysis}[b.rng.IntN(3)]
	b.inflict(target, s, mc.user, mc.move, false)
}

// --- Generation 3 ---

func moveTaunt(b *Battle, mc *moveContext) {
	target := mc.target
	if target.TauntTurns > 0 {
		b.info(target, log.InfoFailed)
		return
	}
	target.TauntTurns = b.rules.rollTurns(b, b.rules.TauntTurns)
	if !target.Moved {
		target.TauntTurns++
	}
	b.info(target, log.InfoTaunt)
}

func moveYawn(b *Battle, mc *moveContext) {
	target := mc.target
	if b.blockedBySub(mc) {
		return
	}
	if target.Pokemon.Status != dex.StatusNone || target.YawnTurns > 0 ||
		b.playerOf(target).Side.Safeguard > 0 || b.abilityBlocksStatus(target, dex.StatusSleep) {
		b.info(target, log.InfoFailed)
		return
	}
	target.YawnTurns = 2
	b.info(target, log.InfoYawn)
}

func moveIngrain(b *Battle, mc *moveContext) {
	if mc.user.Has(FlagIngrain) {
		b.info(mc.user, log.InfoFailed)
		return
	}
	mc.user.Set(FlagIngrain)
	b.info(mc.user, log.InfoIngrain)
}

// --- Generation 4 ---

// moveUTurn hits, then pulls the user out mid-turn when a replacement is
// available.
func moveUTurn(b *Battle, mc *moveContext) {
	moveDamage(b, mc)
	user := mc.user
	p := b.playerOf(user)
	if mc.hits == 0 || user.Pokemon.Fainted || len(p.bench()) == 0 || b.OpponentOf(p).Defeated() {
		return
	}
	b.info(user, log.InfoSwitchOut)
	p.needSwitch = true
}
