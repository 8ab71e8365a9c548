package game

import (
	"slices"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// showAbility announces that an ability took effect.
func (b *Battle) showAbility(a *ActivePokemon) {
	b.emit(log.Event{Type: log.EventAbility, Player: a.Owner(), Species: a.Name(), Value: a.Ability})
}

func (b *Battle) abilityAttackMod(h *Hit, s dex.Stat, atk int) int {
	u := h.User
	if s == dex.StatAtk {
		switch u.Ability {
		case "huge-power", "pure-power":
			atk *= 2
		case "hustle":
			atk = atk * 3 / 2
		case "guts":
			if u.Pokemon.Status != dex.StatusNone {
				atk = atk * 3 / 2
			}
		}
	}
	if h.Target.Ability == "thick-fat" && (h.Type == dex.TypeFire || h.Type == dex.TypeIce) {
		atk /= 2
	}
	return atk
}

func (b *Battle) abilityDefenseMod(h *Hit, s dex.Stat, def int) int {
	if s == dex.StatDef && h.Target.Ability == "marvel-scale" && h.Target.Pokemon.Status != dex.StatusNone {
		def = def * 3 / 2
	}
	return def
}

func (b *Battle) abilityAccuracyMod(user, target *ActivePokemon, m *dex.Move, acc int) int {
	if user.Ability == "compound-eyes" {
		acc = acc * 13 / 10
	}
	if user.Ability == "hustle" && b.rules.CategoryOf(m) == dex.CategoryPhysical {
		acc = acc * 8 / 10
	}
	if target.Ability == "sand-veil" && b.Field.Weather == dex.WeatherSand {
		acc = acc * 4 / 5
	}
	return acc
}

// abilityPowerMod applies the abilities that scale base power.
func (b *Battle) abilityPowerMod(mc *moveContext, power int) int {
	u, m := mc.user, mc.move
	switch u.Ability {
	case "technician":
		if power <= 60 {
			power = power * 3 / 2
		}
	case "iron-fist":
		if m.Flags.Has(dex.FlagPunch) {
			power = power * 12 / 10
		}
	case "blaze", "torrent", "overgrow", "swarm":
		if pinchType[u.Ability] == m.Type && u.Pokemon.HP <= u.Pokemon.MaxHP/3 {
			power = power * 3 / 2
		}
	}
	return power
}

var pinchType = map[string]dex.Type{
	"blaze":    dex.TypeFire,
	"torrent":  dex.TypeWater,
	"overgrow": dex.TypeGrass,
	"swarm":    dex.TypeBug,
}

// abilityBlocksStatus reports whether the target's ability rules the
// status out.
func (b *Battle) abilityBlocksStatus(a *ActivePokemon, s dex.Status) bool {
	switch a.Ability {
	case "limber":
		return s == dex.StatusParalysis
	case "immunity":
		return s.IsPoison()
	}
	return false
}

// abilityBlocksDrop reports whether the target's ability stops a foe from
// lowering the stat.
func (b *Battle) abilityBlocksDrop(a *ActivePokemon, s dex.Stat) bool {
	blocked := false
	switch a.Ability {
	case "clear-body":
		blocked = true
	case "hyper-cutter":
		blocked = s == dex.StatAtk
	case "keen-eye":
		blocked = s == dex.StatAccuracy
	}
	if blocked {
		b.showAbility(a)
	}
	return blocked
}

// absorbedByAbility handles the abilities that turn a damaging move away
// entirely. It reports whether the move was stopped.
func (b *Battle) absorbedByAbility(mc *moveContext) bool {
	target, m := mc.target, mc.move
	if m.Type == dex.TypeNone {
		return false
	}
	switch target.Ability {
	case "volt-absorb", "water-absorb":
		want := dex.TypeElectric
		if target.Ability == "water-absorb" {
			want = dex.TypeWater
		}
		if m.Type != want {
			return false
		}
		b.showAbility(target)
		if b.heal(target, fraction(target, 4)) == 0 {
			b.info(target, log.InfoImmune)
		}
		return true
	case "flash-fire":
		if m.Type != dex.TypeFire || target.Pokemon.Status == dex.StatusFreeze {
			return false
		}
		b.showAbility(target)
		target.Set(FlagFlashFire)
		b.info(target, log.InfoImmune)
		return true
	case "levitate":
		if m.Type != dex.TypeGround {
			return false
		}
	case "wonder-guard":
		h := b.newHit(mc.user, target, m, 0)
		if h.SuperEffective() || h.Immune() {
			return false
		}
	default:
		return false
	}
	b.showAbility(target)
	b.info(target, log.InfoImmune)
	return true
}

// contactAbility rolls the defender's on-contact ability against the
// attacker.
func (b *Battle) contactAbility(mc *moveContext) {
	user, target := mc.user, mc.target
	if !mc.move.Flags.Has(dex.FlagContact) || user.Pokemon.Fainted {
		return
	}
	switch target.Ability {
	case "static":
		if b.rng.Chance(30, 100) && b.inflict(user, dex.StatusParalysis, target, nil, false) {
			b.showAbility(target)
		}
	case "effect-spore":
		if b.rng.Chance(10, 100) {
			s := []dex.Status{dex.StatusPoison, dex.StatusParalysis, dex.StatusSleep}[b.rng.IntN(3)]
			if b.inflict(user, s, target, nil, false) {
				b.showAbility(target)
			}
		}
	case "cute-charm":
		ug, tg := user.Pokemon.Gender, target.Pokemon.Gender
		if ug == "N" || tg == "N" || ug == tg || user.AttractedTo != "" || user.Ability == "oblivious" {
			return
		}
		if b.rng.Chance(30, 100) {
			b.showAbility(target)
			user.AttractedTo = target.Owner()
			b.info(user, log.InfoInfatuated)
		}
	}
}

// runSwitchInAbilities fires entry abilities, fastest combatant first.
func (b *Battle) runSwitchInAbilities(actives ...*ActivePokemon) {
	actives = slices.DeleteFunc(slices.Clone(actives), func(a *ActivePokemon) bool {
		return a == nil || a.Pokemon.Fainted
	})
	slices.SortStableFunc(actives, func(x, y *ActivePokemon) int {
		return b.effectiveSpeed(y) - b.effectiveSpeed(x)
	})
	for _, a := range actives {
		if a.Pokemon.Fainted {
			continue
		}
		foe := b.foeOf(a)
		switch a.Ability {
		case "intimidate":
			if foe != nil && !foe.Pokemon.Fainted {
				b.showAbility(a)
				b.changeStage(foe, dex.StatAtk, -1, a, true)
			}
		case "drizzle":
			b.abilityWeather(a, dex.WeatherRain)
		case "drought":
			b.abilityWeather(a, dex.WeatherSun)
		case "sand-stream":
			b.abilityWeather(a, dex.WeatherSand)
		case "snow-warning":
			b.abilityWeather(a, dex.WeatherHail)
		case "trace":
			if foe != nil && foe.Ability != "" && foe.Ability != "trace" {
				a.Ability = foe.Ability
				b.emit(log.Event{Type: log.EventAbility, Player: a.Owner(), Species: a.Name(), Value: "trace", Info: foe.Ability})
			}
		}
	}
}

// abilityWeather starts a weather that lasts until replaced.
func (b *Battle) abilityWeather(a *ActivePokemon, w dex.Weather) {
	if b.Field.Weather == w && b.Field.WeatherTurns == 0 {
		return
	}
	b.showAbility(a)
	b.setWeather(w, 0)
}

// endOfTurnAbility runs the abilities that act after residual damage.
func (b *Battle) endOfTurnAbility(a *ActivePokemon) {
	if a.Pokemon.Fainted {
		return
	}
	switch a.Ability {
	case "speed-boost":
		if a.TurnsActive > 0 && a.Stage(dex.StatSpe) < 6 {
			b.showAbility(a)
			b.changeStage(a, dex.StatSpe, 1, a, false)
		}
	case "shed-skin":
		if a.Pokemon.Status != dex.StatusNone && b.rng.Chance(30, 100) {
			b.showAbility(a)
			b.cureStatus(a)
		}
	case "rain-dish":
		if b.Field.Weather == dex.WeatherRain && a.Pokemon.HP < a.Pokemon.MaxHP {
			b.showAbility(a)
			b.heal(a, fraction(a, 16))
		}
	}
}

// takesIndirectDamage is false for combatants shielded from residual and
// recoil damage.
func takesIndirectDamage(a *ActivePokemon) bool { return a.Ability != "magic-guard" }
