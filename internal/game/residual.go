package game

import (
	"slices"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// residual deals max(maxHP/den, 1) of between-turn damage. A zero
// denominator means the generation has no such damage.
func (b *Battle) residual(a *ActivePokemon, den int, cause string) DamageResult {
	if den <= 0 || a.Pokemon.Fainted {
		return DamageResult{}
	}
	return b.dealDamage(a, fraction(a, den), cause, true)
}

// gen1Residual is the generation 1 damage a combatant takes right after
// its own action. Leech seed shares the toxic counter, so a badly poisoned
// combatant loses more to the seed with every tick.
func (b *Battle) gen1Residual(a *ActivePokemon) {
	p := a.Pokemon
	if p.Fainted {
		return
	}
	r := b.rules.Residual
	switch p.Status {
	case dex.StatusBurn:
		b.residual(a, r.Burn, "burn")
	case dex.StatusPoison:
		b.residual(a, r.Poison, "poison")
	case dex.StatusToxic:
		a.ToxicCounter++
		b.dealDamage(a, fraction(a, r.Toxic)*a.ToxicCounter, "poison", true)
	}
	if p.Fainted || !a.Has(FlagLeechSeed) {
		return
	}
	dmg := fraction(a, r.LeechSeed)
	if p.Status == dex.StatusToxic {
		a.ToxicCounter++
		dmg *= a.ToxicCounter
	}
	res := b.dealDamage(a, dmg, "leech-seed", true)
	if foe := b.foeOf(a); foe != nil && !foe.Pokemon.Fainted && res.Dealt > 0 {
		b.heal(foe, res.Dealt)
	}
}

// classicBetweenTurns is the generation 1 end of turn. Residual damage
// already happened after each action.
func classicBetweenTurns(b *Battle) {
	for _, a := range b.activesBySpeed() {
		b.countDown(&a.Disabled.Turns, a, log.InfoDisableEnded, func() { a.Disabled.Slot = -1 })
	}
}

// modernBetweenTurns is the end of turn from generation 2 on: weather,
// per-combatant residuals in speed order, then the field counters.
func modernBetweenTurns(b *Battle) {
	b.weatherTick()
	actives := b.activesBySpeed()
	for _, a := range actives {
		b.residualSteps(a)
	}
	b.sideTick()
	for _, a := range actives {
		if a.Pokemon.Fainted {
			continue
		}
		b.perishTick(a)
		b.volatileCountdowns(a)
		b.endOfTurnAbility(a)
		if a.Pokemon.Status == dex.StatusFreeze && b.roll(b.rules.ThawBetweenTurns) {
			b.cureStatus(a)
			b.info(a, log.InfoThawed)
		}
	}
}

// activesBySpeed returns the combatants on the field, fastest first.
func (b *Battle) activesBySpeed() []*ActivePokemon {
	var out []*ActivePokemon
	for _, p := range b.players {
		if p.Active != nil && !p.Active.Pokemon.Fainted {
			out = append(out, p.Active)
		}
	}
	slices.SortStableFunc(out, func(x, y *ActivePokemon) int {
		return b.effectiveSpeed(y) - b.effectiveSpeed(x)
	})
	return out
}

func (b *Battle) weatherTick() {
	w := b.Field.Weather
	if w == dex.WeatherNone {
		return
	}
	if b.Field.WeatherTurns > 0 {
		b.Field.WeatherTurns--
		if b.Field.WeatherTurns == 0 {
			b.Field.Weather = dex.WeatherNone
			b.emit(log.NewWeatherEvent(dex.WeatherNone.String()))
			return
		}
	}
	if w != dex.WeatherSand && w != dex.WeatherHail {
		return
	}
	for _, a := range b.activesBySpeed() {
		if w == dex.WeatherHail && a.Ability == "ice-body" {
			if a.Pokemon.HP < a.Pokemon.MaxHP {
				b.showAbility(a)
				b.heal(a, fraction(a, 16))
			}
			continue
		}
		if weatherImmune(a, w) || !takesIndirectDamage(a) {
			continue
		}
		b.residual(a, b.rules.Residual.Weather, w.String())
	}
}

func weatherImmune(a *ActivePokemon, w dex.Weather) bool {
	switch w {
	case dex.WeatherSand:
		return a.HasType(dex.TypeRock) || a.HasType(dex.TypeGround) || a.HasType(dex.TypeSteel) || a.Ability == "sand-veil"
	case dex.WeatherHail:
		return a.HasType(dex.TypeIce)
	}
	return true
}

// residualSteps runs each residual source in order. A combatant that
// faints to one source skips the rest.
func (b *Battle) residualSteps(a *ActivePokemon) {
	steps := []func(*ActivePokemon){
		b.ingrainTick,
		b.residualItem,
		b.leechSeedTick,
		b.statusTick,
		b.nightmareTick,
		b.curseTick,
		b.trapTick,
	}
	for _, step := range steps {
		if a.Pokemon.Fainted {
			return
		}
		step(a)
	}
}

func (b *Battle) ingrainTick(a *ActivePokemon) {
	den := b.rules.Residual.Ingrain
	if !a.Has(FlagIngrain) || den <= 0 || a.Pokemon.HP == a.Pokemon.MaxHP {
		return
	}
	b.heal(a, fraction(a, den))
}

func (b *Battle) leechSeedTick(a *ActivePokemon) {
	if !a.Has(FlagLeechSeed) || !takesIndirectDamage(a) {
		return
	}
	foe := b.foeOf(a)
	if foe == nil || foe.Pokemon.Fainted {
		return
	}
	res := b.residual(a, b.rules.Residual.LeechSeed, "leech-seed")
	if res.Dealt == 0 {
		return
	}
	if a.Ability == "liquid-ooze" {
		b.showAbility(a)
		b.dealDamage(foe, res.Dealt, "liquid-ooze", true)
		return
	}
	b.heal(foe, res.Dealt)
}

func (b *Battle) statusTick(a *ActivePokemon) {
	p := a.Pokemon
	r := b.rules.Residual
	switch p.Status {
	case dex.StatusBurn:
		if takesIndirectDamage(a) {
			b.residual(a, r.Burn, "burn")
		}
	case dex.StatusPoison, dex.StatusToxic:
		if p.Status == dex.StatusToxic {
			a.ToxicCounter++
		}
		if a.Ability == "poison-heal" {
			if p.HP < p.MaxHP {
				b.showAbility(a)
				b.heal(a, fraction(a, 8))
			}
			return
		}
		if !takesIndirectDamage(a) {
			return
		}
		if p.Status == dex.StatusToxic {
			b.dealDamage(a, fraction(a, r.Toxic)*a.ToxicCounter, "poison", true)
			return
		}
		b.residual(a, r.Poison, "poison")
	}
}

func (b *Battle) nightmareTick(a *ActivePokemon) {
	if !a.Has(FlagNightmare) {
		return
	}
	if a.Pokemon.Status != dex.StatusSleep {
		a.Clear(FlagNightmare)
		return
	}
	if takesIndirectDamage(a) {
		b.residual(a, b.rules.Residual.Nightmare, "nightmare")
	}
}

func (b *Battle) curseTick(a *ActivePokemon) {
	if a.Has(FlagCurse) && takesIndirectDamage(a) {
		b.residual(a, b.rules.Residual.Curse, "curse")
	}
}

// trapTick deals binding damage while the trap lasts.
func (b *Battle) trapTick(a *ActivePokemon) {
	if a.TrapTurns == 0 {
		return
	}
	if a.TrappedBy == "" {
		a.TrapTurns = 0
		return
	}
	a.TrapTurns--
	if a.TrapTurns == 0 {
		a.TrappedBy = ""
		return
	}
	if takesIndirectDamage(a) {
		b.residual(a, b.rules.Residual.PartialTrap, "partial-trap")
	}
}

// sideTick counts the side conditions down.
func (b *Battle) sideTick() {
	screens := []dex.Screen{dex.ScreenReflect, dex.ScreenLightScreen, dex.ScreenSafeguard, dex.ScreenMist}
	for _, p := range b.players {
		for _, screen := range screens {
			c := p.Side.counter(screen)
			if *c == 0 {
				continue
			}
			*c--
			if *c == 0 {
				b.emit(log.NewScreenEvent(p.ID, screen.String(), false))
			}
		}
	}
}

// perishTick counts perish song down; the combatant faints at zero.
func (b *Battle) perishTick(a *ActivePokemon) {
	if a.PerishCount == 0 {
		return
	}
	a.PerishCount--
	b.emit(log.Event{Type: log.EventInfo, Player: a.Owner(), Species: a.Name(), Info: log.InfoPerish, Amount: a.PerishCount})
	if a.PerishCount == 0 {
		b.dealDamage(a, a.Pokemon.HP, "perish-song", true)
	}
}

// volatileCountdowns ends the timed restrictions.
func (b *Battle) volatileCountdowns(a *ActivePokemon) {
	if a.EncoreTurns > 0 {
		if s := a.Slot(a.EncoreSlot); s == nil || s.PP == 0 {
			a.EncoreTurns = 1
		}
	}
	b.countDown(&a.EncoreTurns, a, log.InfoEncoreEnded, func() { a.EncoreSlot = -1 })
	b.countDown(&a.Disabled.Turns, a, log.InfoDisableEnded, func() { a.Disabled.Slot = -1 })
	b.countDown(&a.TauntTurns, a, log.InfoTauntEnded, nil)

	if a.YawnTurns > 0 {
		a.YawnTurns--
		if a.YawnTurns == 0 {
			b.inflict(a, dex.StatusSleep, b.foeOf(a), nil, false)
		}
	}
}

// countDown decrements a turn counter and announces its expiry.
func (b *Battle) countDown(turns *int, a *ActivePokemon, info string, onEnd func()) {
	if *turns == 0 {
		return
	}
	*turns--
	if *turns > 0 {
		return
	}
	if onEnd != nil {
		onEnd()
	}
	b.info(a, info)
}
