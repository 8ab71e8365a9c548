package game

import (
	"fmt"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// StruggleSlot is the slot index that selects Struggle.
const StruggleSlot = -1

// moveContext carries one use of a move through its handler.
type moveContext struct {
	user   *ActivePokemon
	target *ActivePokemon // the opposing combatant, nil when none is out
	move   *dex.Move
	slot   int  // slot the move came from, -1 for Struggle and called moves
	called bool // invoked through another move (metronome, mirror move)
	power  int  // overrides the move's base power when non-zero

	hits     int
	dealt    int // damage dealt to the target across every hit
	hitSub   bool
	brokeSub bool
	missed   bool
}

// kindHandler selects the shared handler for a move kind. Every kind below
// NumMoveKinds has one.
func kindHandler(k dex.MoveKind) MoveHandler {
	switch k {
	case dex.KindDamage:
		return moveDamage
	case dex.KindStatus:
		return moveInflict
	case dex.KindStage:
		return moveStage
	case dex.KindConfuse:
		return moveConfuse
	case dex.KindRecover:
		return moveRecover
	case dex.KindScreen:
		return moveScreen
	case dex.KindWeather:
		return moveWeather
	case dex.KindSwitch:
		return moveBatonPass
	case dex.KindPhase:
		return movePhase
	case dex.KindProtect:
		return moveProtect
	case dex.KindPreventEscape:
		return movePreventEscape
	case dex.KindLockOn:
		return moveLockOn
	case dex.KindCustom:
		return moveCustom
	}
	return nil
}

// runMove performs a combatant's chosen move action: the generation's
// pre-move checks, PP, the move announcement and the handler.
func (b *Battle) runMove(user *ActivePokemon, slot int) {
	if b.rules.BeforeMove(b, user) {
		return
	}

	var m *dex.Move
	switch {
	case user.Lock.Move != nil && user.Lock.Kind != dex.LockRecharge && b.lockForcesMove(user):
		m, slot = user.Lock.Move, user.Lock.Slot
		if b.trapRestarts(user) {
			b.deductPP(user, slot)
		}
	case slot == StruggleSlot:
		m = b.Dex.MustMove(dex.StruggleID)
	default:
		s := user.Slot(slot)
		if s == nil {
			b.fail(fmt.Errorf("%w: %s has no slot %d", ErrBattleBroken, user.Name(), slot))
			return
		}
		m = s.Move
		b.deductPP(user, slot)
	}

	if m.Kind != dex.KindProtect {
		user.ProtectCount = 0
	}
	if user.Lock.Kind == dex.LockRage && m.Lock != dex.LockRage {
		user.Lock = LockState{}
	}
	b.emit(log.NewMoveEvent(user.Owner(), user.Name(), m.Name))
	user.LastMove = m
	user.LastMoveSlot = slot

	b.executeMove(&moveContext{user: user, target: b.foeOf(user), move: m, slot: slot})

	if slot >= 0 && user.ChoiceSlot < 0 && isChoiceItem(user.Pokemon.Item) && !user.Pokemon.Fainted {
		user.ChoiceSlot = slot
	}
}

// lockForcesMove reports whether the current lock repeats its move this
// action instead of the chosen one.
func (b *Battle) lockForcesMove(a *ActivePokemon) bool {
	switch a.Lock.Kind {
	case dex.LockCharge, dex.LockThrash, dex.LockBide:
		return true
	case dex.LockRage:
		return b.rules.Quirks.Has(QuirkRageLocks)
	case dex.LockPartialTrap:
		return b.rules.Quirks.Has(QuirkPartialTrapLocksUser)
	}
	return false
}

// trapRestarts reports whether a generation 1 binding move must start over
// because its target left the field. The restart costs PP again.
func (b *Battle) trapRestarts(a *ActivePokemon) bool {
	if a.Lock.Kind != dex.LockPartialTrap {
		return false
	}
	foe := b.foeOf(a)
	return foe == nil || foe.TrappedBy != a.Owner()
}

// deductPP spends one PP, two against pressure. Under the generation 1 wrap
// mod a move used at 0 PP rolls over to 63.
func (b *Battle) deductPP(user *ActivePokemon, slot int) {
	s := user.Slot(slot)
	if s == nil {
		return
	}
	if s.PP <= 0 {
		if b.mods.PPWrap && b.rules.Quirks.Has(QuirkPPWrapAvailable) {
			s.PP = 63
		}
		return
	}
	cost := 1
	if foe := b.foeOf(user); foe != nil && foe.Ability == "pressure" {
		cost = 2
	}
	s.PP = max(s.PP-cost, 0)
}

// executeMove resolves one move use, including moves called by other moves.
func (b *Battle) executeMove(mc *moveContext) {
	m := mc.move
	handler := kindHandler(m.Kind)
	if m.Kind == dex.KindCustom {
		h, ok := b.rules.CustomMoves[m.ID]
		if !ok {
			b.fail(fmt.Errorf("%w: %s in gen %d", ErrNoHandler, m.ID, b.Gen))
			return
		}
		handler = h
	}
	if handler == nil {
		b.fail(fmt.Errorf("%w: kind %s", ErrNoHandler, m.Kind))
		return
	}

	if m.Lock == dex.LockCharge {
		if mc.user.Lock.Kind != dex.LockCharge {
			if b.startCharge(mc) {
				return
			}
		} else {
			mc.user.Lock = LockState{}
			mc.user.Clear(FlagSemiInvulnerable)
		}
	}

	if m.Flags.Has(dex.FlagSelfDestruct) {
		defer b.selfDestruct(mc)
	}

	skipTarget := b.continuingTrap(mc) || m.Lock == dex.LockBide && bideStoring(mc.user)
	if m.Target == dex.TargetFoe && !skipTarget && !b.reachTarget(mc) {
		mc.missed = true
		b.afterMiss(mc)
		return
	}
	handler(b, mc)
}

// reachTarget runs the checks every foe-targeting move shares: a target
// exists, it is not protected or out of reach, and the accuracy roll.
func (b *Battle) reachTarget(mc *moveContext) bool {
	user, target, m := mc.user, mc.target, mc.move
	if target == nil || target.Pokemon.Fainted {
		b.info(user, log.InfoFailed)
		return false
	}
	if target.Has(FlagProtect) && m.Flags.Has(dex.FlagProtectable) {
		b.info(target, log.InfoProtected)
		return false
	}
	if semiInvulnerableDodge(target, m) {
		b.info(target, log.InfoMiss)
		return false
	}
	if m.Flags.Has(dex.FlagSound) && target.Ability == "soundproof" {
		b.showAbility(target)
		b.info(target, log.InfoImmune)
		return false
	}
	if !b.rules.CheckAccuracy(b, user, target, m) {
		b.info(target, log.InfoMiss)
		return false
	}
	return true
}

// afterMiss applies what a missed move still does: crash damage, and the
// thrash lock keeps running.
func (b *Battle) afterMiss(mc *moveContext) {
	if mc.move.Flags.Has(dex.FlagCrash) {
		crash := 1
		if b.Gen >= 2 {
			crash = fraction(mc.user, 8)
		}
		b.dealDamage(mc.user, crash, "crash", true)
	}
	switch mc.move.Lock {
	case dex.LockThrash:
		b.advanceThrash(mc)
	case dex.LockBide:
		mc.user.Lock = LockState{}
	}
}

// startCharge begins a two-turn move. It reports false when the move skips
// its charge turn and fires at once.
func (b *Battle) startCharge(mc *moveContext) bool {
	m, user := mc.move, mc.user
	if m.Flags.Has(dex.FlagSunSkipsCharge) && b.Field.Weather == dex.WeatherSun {
		return false
	}
	user.Lock = LockState{Kind: dex.LockCharge, Move: m, Slot: mc.slot}
	if m.Flags.Has(dex.FlagInvulnerable) {
		user.Set(FlagSemiInvulnerable)
	}
	b.emit(log.Event{Type: log.EventCharge, Player: user.Owner(), Species: user.Name(), Move: m.Name})
	for _, c := range m.Stages {
		b.changeStage(user, c.Stat, c.Delta, user, false)
	}
	return true
}

// selfDestruct faints the user after an exploding move, unless generation 1
// spares it for breaking a substitute.
func (b *Battle) selfDestruct(mc *moveContext) {
	if mc.user.Pokemon.Fainted {
		return
	}
	if mc.brokeSub && b.rules.Quirks.Has(QuirkSelfDestructSparedBySub) {
		return
	}
	b.dealDamage(mc.user, mc.user.Pokemon.HP, "self-destruct", true)
}

// moveCustom looks the move up in the generation's custom handlers.
func moveCustom(b *Battle, mc *moveContext) {
	h, ok := b.rules.CustomMoves[mc.move.ID]
	if !ok {
		b.fail(fmt.Errorf("%w: %s in gen %d", ErrNoHandler, mc.move.ID, b.Gen))
		return
	}
	h(b, mc)
}

// --- Damaging moves ---

func moveDamage(b *Battle, mc *moveContext) {
	user, target, m := mc.user, mc.target, mc.move
	if b.continuingTrap(mc) {
		b.continueTrap(mc)
		return
	}
	if b.absorbedByAbility(mc) {
		return
	}

	hits := 1
	if m.IsMultiHit() {
		hits = b.rollHits(m)
	}
	for i := 0; i < hits; i++ {
		if !b.strike(mc, i == 0) {
			break
		}
		if target.Pokemon.Fainted || user.Pokemon.Fainted || mc.brokeSub {
			break
		}
	}
	if mc.hits == 0 {
		if m.Lock == dex.LockThrash {
			b.advanceThrash(mc)
		}
		return
	}
	if m.IsMultiHit() {
		b.emit(log.Event{Type: log.EventInfo, Player: target.Owner(), Species: target.Name(), Info: log.InfoHitCount, Amount: mc.hits})
	}
	b.afterDamage(mc)
}

// rollHits picks how many times a multi-hit move strikes.
func (b *Battle) rollHits(m *dex.Move) int {
	if m.Flags.Has(dex.FlagFixedHits) {
		return m.MultiHit[0]
	}
	return WeightedChoice(b.rng, []int{2, 3, 4, 5}, b.rules.MultiHitWeights)
}

// strike resolves a single hit. It reports false when the hit did nothing,
// which ends a multi-hit sequence.
func (b *Battle) strike(mc *moveContext, first bool) bool {
	user, target, m := mc.user, mc.target, mc.move
	h := b.newHit(user, target, m, b.movePower(mc))
	if h.Immune() && m.Type != dex.TypeNone {
		b.info(target, log.InfoImmune)
		return false
	}

	dmg, fixed := b.fixedDamage(user, target, m)
	if fixed && m.Fixed == dex.FixedOHKO && !b.ohkoLands(user, target) {
		return false
	}
	if !fixed {
		if !b.mods.NoCrit && b.rules.IsCrit(b, h) {
			h.Crit = true
		}
		dmg = b.rules.Damage(b, h)
		if dmg == 0 {
			if b.rules.Quirks.Has(QuirkZeroDamageMisses) {
				b.info(target, log.InfoMiss)
				return false
			}
			dmg = 1
		}
		if h.Crit {
			b.info(target, log.InfoCrit)
		}
	}
	if first && !fixed {
		switch {
		case h.SuperEffective():
			b.info(target, log.InfoSuperEffective)
		case h.Resisted():
			b.info(target, log.InfoResisted)
		}
	}

	direct := m.Flags.Has(dex.FlagBypassSub)
	if target.SubstituteHP == 0 || direct {
		dmg = b.survivalCap(mc, dmg)
	}
	res := b.dealDamage(target, dmg, "", direct)
	mc.hits++
	mc.dealt += res.Dealt
	if res.HitSubstitute {
		mc.hitSub = true
	}
	if res.BrokeSubstitute {
		mc.brokeSub = true
	}
	if !res.HitSubstitute {
		target.LastDamageTaken = res.Dealt
		target.LastDamageCategory = h.Category
		target.LastDamageType = h.Type
		target.LastDamageTurn = b.turn
		if target.Lock.Kind == dex.LockBide {
			target.Lock.Damage += res.Dealt
		}
		b.contactAbility(mc)
	}
	b.rageTrigger(target)
	return true
}

// movePower is the base power after the generation's power modifiers.
func (b *Battle) movePower(mc *moveContext) int {
	power := mc.move.Power
	if mc.power > 0 {
		power = mc.power
	}
	if mc.move.Flags.Has(dex.FlagStatusBoost) && mc.user.Pokemon.Status != dex.StatusNone {
		power *= 2
	}
	power = b.abilityPowerMod(mc, power)
	return b.itemPowerMod(mc, power)
}

// ohkoLands applies the one-hit KO restrictions. Generation 1 compares
// speed; later generations compare level.
func (b *Battle) ohkoLands(user, target *ActivePokemon) bool {
	if target.Ability == "sturdy" {
		b.showAbility(target)
		b.info(target, log.InfoImmune)
		return false
	}
	if b.Gen == 1 && user.Stats[dex.StatSpe] < target.Stats[dex.StatSpe] ||
		b.Gen >= 2 && user.Pokemon.Level < target.Pokemon.Level {
		b.info(target, log.InfoFailed)
		return false
	}
	return true
}

// survivalCap leaves the target at 1 HP when something lets it hang on.
func (b *Battle) survivalCap(mc *moveContext, dmg int) int {
	target := mc.target
	hp := target.Pokemon.HP
	if dmg < hp {
		return dmg
	}
	switch {
	case mc.move.Flags.Has(dex.FlagFalseSwipe):
	case target.Has(FlagEndure):
		b.info(target, log.InfoEndured)
	case target.Pokemon.Item == "focus-sash" && hp == target.Pokemon.MaxHP:
		b.consumeItem(target)
	case target.Pokemon.Item == "focus-band" && b.rng.Chance(30, 256):
		b.itemEvent(target, "focus-band")
	default:
		return dmg
	}
	return hp - 1
}

// afterDamage runs everything that follows a move's hits.
func (b *Battle) afterDamage(mc *moveContext) {
	user, target, m := mc.user, mc.target, mc.move

	if m.Drain > 0 && mc.dealt > 0 && !user.Pokemon.Fainted {
		b.heal(user, max(mc.dealt*m.Drain/100, 1))
	}
	b.recoil(mc)

	if !mc.hitSub && !target.Pokemon.Fainted {
		b.secondary(mc)
	}
	if !user.Pokemon.Fainted && m.Lock != dex.LockCharge {
		for _, c := range m.Stages {
			b.changeStage(user, c.Stat, c.Delta, user, false)
		}
	}

	switch m.Lock {
	case dex.LockRecharge:
		skip := b.rules.Quirks.Has(QuirkRechargeSkippedOnKO) && (target.Pokemon.Fainted || mc.brokeSub)
		if !skip && !user.Pokemon.Fainted {
			user.Lock = LockState{Kind: dex.LockRecharge, Move: m, Slot: mc.slot}
		}
	case dex.LockThrash:
		b.advanceThrash(mc)
	case dex.LockPartialTrap:
		b.startTrap(mc)
	case dex.LockRage:
		if !user.Pokemon.Fainted {
			user.Lock = LockState{Kind: dex.LockRage, Move: m, Slot: mc.slot}
		}
	}
	b.afterHitItems(mc)
}

// recoil charges the user for a recoil move. Struggle's recoil is never
// blocked; from generation 4 it costs a quarter of max HP.
func (b *Battle) recoil(mc *moveContext) {
	user, m := mc.user, mc.move
	if user.Pokemon.Fainted || mc.dealt == 0 {
		return
	}
	struggle := m.ID == dex.StruggleID
	switch {
	case struggle && b.Gen >= 4:
		b.dealDamage(user, fraction(user, 4), "recoil", true)
	case m.Recoil > 0 && (struggle || user.Ability != "rock-head" && user.Ability != "magic-guard"):
		b.dealDamage(user, max(mc.dealt*m.Recoil/100, 1), "recoil", true)
	}
}

// secondary rolls and applies a damaging move's added effect.
func (b *Battle) secondary(mc *moveContext) {
	user, target, m := mc.user, mc.target, mc.move
	sec := m.Secondary
	if sec == nil {
		b.kingsRock(mc)
		return
	}
	if !sec.Self && target.Ability == "shield-dust" {
		return
	}
	if !b.rules.SecondaryChance(b, user, sec.Chance) {
		return
	}
	if sec.Status != dex.StatusNone {
		b.inflict(target, sec.Status, user, m, false)
	}
	if sec.Confuse {
		b.confuse(target, user, false)
	}
	if sec.Flinch && !target.Moved && target.Ability != "inner-focus" {
		target.Set(FlagFlinch)
	}
	for _, c := range sec.Stages {
		if sec.Self {
			b.changeStage(user, c.Stat, c.Delta, user, false)
		} else {
			b.changeStage(target, c.Stat, c.Delta, user, false)
		}
	}
}

// rageTrigger raises a raging combatant's attack each time it is hit.
func (b *Battle) rageTrigger(a *ActivePokemon) {
	if a.Lock.Kind != dex.LockRage || a.Pokemon.Fainted {
		return
	}
	b.info(a, log.InfoRage)
	b.changeStage(a, dex.StatAtk, 1, a, false)
}

// advanceThrash starts or continues a rampage. When it runs out the user
// becomes confused.
func (b *Battle) advanceThrash(mc *moveContext) {
	user := mc.user
	if user.Pokemon.Fainted {
		return
	}
	if user.Lock.Kind != dex.LockThrash {
		user.Lock = LockState{
			Kind:  dex.LockThrash,
			Move:  mc.move,
			Slot:  mc.slot,
			Turns: b.rules.rollTurns(b, b.rules.ThrashTurns),
		}
	} else {
		user.Lock.Turns--
	}
	if user.Lock.Turns > 0 {
		return
	}
	user.Lock = LockState{}
	b.info(user, log.InfoThrashEnded)
	b.confuse(user, user, false)
}

// startTrap binds the target after a trapping move connects.
func (b *Battle) startTrap(mc *moveContext) {
	user, target := mc.user, mc.target
	if target.Pokemon.Fainted || mc.hitSub || user.Pokemon.Fainted {
		return
	}
	turns := b.rules.rollTurns(b, b.rules.PartialTrapTurns)
	target.TrappedBy = user.Owner()
	b.info(target, log.InfoTrapped)
	if b.rules.Quirks.Has(QuirkPartialTrapLocksUser) {
		user.Lock = LockState{Kind: dex.LockPartialTrap, Move: mc.move, Slot: mc.slot, Turns: turns - 1, Damage: mc.dealt}
		if turns <= 1 {
			user.Lock = LockState{}
			target.TrappedBy = ""
		}
		return
	}
	target.TrapTurns = turns
}

// continuingTrap reports whether this use repeats a generation 1 binding
// move on the same target.
func (b *Battle) continuingTrap(mc *moveContext) bool {
	u := mc.user
	return u.Lock.Kind == dex.LockPartialTrap && u.Lock.Move == mc.move &&
		mc.target != nil && mc.target.TrappedBy == u.Owner()
}

// continueTrap deals the stored damage again, with no roll, until the
// turns run out.
func (b *Battle) continueTrap(mc *moveContext) {
	user, target := mc.user, mc.target
	res := b.dealDamage(target, user.Lock.Damage, "", false)
	mc.hits++
	mc.dealt += res.Dealt
	if user.Lock.Turns <= 1 || target.Pokemon.Fainted {
		user.Lock = LockState{}
		if target.TrappedBy == user.Owner() {
			target.TrappedBy = ""
		}
		return
	}
	user.Lock.Turns--
}

// --- Non-damaging kinds ---

// blockedBySub fails a foe-targeting status move against a substitute.
func (b *Battle) blockedBySub(mc *moveContext) bool {
	if mc.target.SubstituteHP > 0 && !mc.move.Flags.Has(dex.FlagBypassSub) {
		b.info(mc.target, log.InfoFailed)
		return true
	}
	return false
}

func moveInflict(b *Battle, mc *moveContext) {
	if b.blockedBySub(mc) {
		return
	}
	m := mc.move
	if m.Flags.Has(dex.FlagCheckImmunity) {
		h := b.newHit(mc.user, mc.target, m, 0)
		if h.Immune() {
			b.info(mc.target, log.InfoImmune)
			return
		}
	}
	b.inflict(mc.target, m.Status, mc.user, m, true)
}

func moveStage(b *Battle, mc *moveContext) {
	m, user := mc.move, mc.user
	if m.Target == dex.TargetSelf {
		switch m.ID {
		case "defense-curl":
			user.Set(FlagDefenseCurl)
		case "minimize":
			user.Set(FlagMinimize)
		}
		for _, c := range m.Stages {
			b.changeStage(user, c.Stat, c.Delta, user, true)
		}
		return
	}
	if b.blockedBySub(mc) {
		return
	}
	for _, c := range m.Stages {
		b.changeStage(mc.target, c.Stat, c.Delta, user, true)
	}
}

func moveConfuse(b *Battle, mc *moveContext) {
	if b.blockedBySub(mc) {
		return
	}
	b.confuse(mc.target, mc.user, true)
}

func moveRecover(b *Battle, mc *moveContext) {
	user := mc.user
	p := user.Pokemon
	missing := p.MaxHP - p.HP
	if missing == 0 || b.rules.Quirks.Has(QuirkRecoverFailGlitch) && missing%256 == 255 {
		b.info(user, log.InfoFailed)
		return
	}
	amount := p.MaxHP * mc.move.Heal / 100
	if mc.move.Flags.Has(dex.FlagWeatherHeal) {
		switch b.Field.Weather {
		case dex.WeatherNone:
		case dex.WeatherSun:
			amount = p.MaxHP * 2 / 3
		default:
			amount = p.MaxHP / 4
		}
	}
	b.heal(user, max(amount, 1))
}

func moveScreen(b *Battle, mc *moveContext) {
	user := mc.user
	p := b.playerOf(user)
	screen := mc.move.Screen
	if b.rules.Quirks.Has(QuirkScreensAreVolatile) {
		var flag VolatileFlag
		switch screen {
		case dex.ScreenReflect:
			flag = FlagReflect
		case dex.ScreenLightScreen:
			flag = FlagLightScreen
		case dex.ScreenMist:
			flag = FlagMist
		}
		if flag == 0 || user.Has(flag) {
			b.info(user, log.InfoFailed)
			return
		}
		user.Set(flag)
		b.emit(log.NewScreenEvent(p.ID, screen.String(), true))
		return
	}
	counter := p.Side.counter(screen)
	if counter == nil || *counter > 0 {
		b.info(user, log.InfoFailed)
		return
	}
	*counter = b.rules.ScreenTurns
	b.emit(log.NewScreenEvent(p.ID, screen.String(), true))
}

// counter returns the turn counter for a screen.
func (s *SideConditions) counter(screen dex.Screen) *int {
	switch screen {
	case dex.ScreenReflect:
		return &s.Reflect
	case dex.ScreenLightScreen:
		return &s.LightScreen
	case dex.ScreenSafeguard:
		return &s.Safeguard
	case dex.ScreenMist:
		return &s.Mist
	}
	return nil
}

func moveWeather(b *Battle, mc *moveContext) {
	if b.Field.Weather == mc.move.Weather {
		b.info(mc.user, log.InfoFailed)
		return
	}
	b.setWeather(mc.move.Weather, b.rules.WeatherTurns)
}

// setWeather starts a weather. turns of 0 makes it permanent.
func (b *Battle) setWeather(w dex.Weather, turns int) {
	b.Field.Weather = w
	b.Field.WeatherTurns = turns
	b.emit(log.NewWeatherEvent(w.String()))
}

func moveBatonPass(b *Battle, mc *moveContext) {
	p := b.playerOf(mc.user)
	if len(p.bench()) == 0 {
		b.info(mc.user, log.InfoFailed)
		return
	}
	b.info(mc.user, log.InfoBatonPass)
	p.needSwitch = true
	p.passing = true
}

func movePhase(b *Battle, mc *moveContext) {
	user, target := mc.user, mc.target
	if b.rules.Quirks.Has(QuirkPhasingFails) {
		b.info(user, log.InfoFailed)
		return
	}
	foe := b.playerOf(target)
	bench := foe.bench()
	if len(bench) == 0 || target.Has(FlagIngrain) {
		b.info(user, log.InfoFailed)
		return
	}
	b.drag(foe, bench[b.rng.IntN(len(bench))])
}

func moveProtect(b *Battle, mc *moveContext) {
	user := mc.user
	if b.actingLast(user) {
		user.ProtectCount = 0
		b.info(user, log.InfoFailed)
		return
	}
	if user.ProtectCount > 0 && !b.rng.Chance(1, 1<<min(user.ProtectCount, 8)) {
		user.ProtectCount = 0
		b.info(user, log.InfoFailed)
		return
	}
	user.ProtectCount++
	if mc.move.ID == "endure" {
		user.Set(FlagEndure)
		b.info(user, log.InfoEndured)
		return
	}
	user.Set(FlagProtect)
	b.info(user, log.InfoProtect)
}

func movePreventEscape(b *Battle, mc *moveContext) {
	target := mc.target
	if target.MeanLookedBy != "" {
		b.info(target, log.InfoFailed)
		return
	}
	if b.blockedBySub(mc) {
		return
	}
	target.MeanLookedBy = mc.user.Owner()
	b.info(target, log.InfoMeanLook)
}

func moveLockOn(b *Battle, mc *moveContext) {
	if b.blockedBySub(mc) {
		return
	}
	mc.user.LockOnTarget = mc.target.Owner()
	mc.user.LockOnTurns = 2
	b.info(mc.user, log.InfoLockedOn)
}
