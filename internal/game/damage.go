package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

// Hit is the input to one damage calculation.
type Hit struct {
	User, Target *ActivePokemon
	Move         *dex.Move
	Type         dex.Type
	Category     dex.Category
	Power        int
	Crit         bool
	Effect       []int // effectiveness against each defending type, in tenths
}

func (b *Battle) newHit(user, target *ActivePokemon, m *dex.Move, power int) *Hit {
	h := &Hit{
		User:     user,
		Target:   target,
		Move:     m,
		Type:     m.Type,
		Category: b.rules.CategoryOf(m),
		Power:    power,
	}
	h.Effect = b.effectiveness(h.Type, target)
	return h
}

// effectiveness looks the attack type up against each of the target's
// current types. Foresight lets normal and fighting moves touch ghosts.
func (b *Battle) effectiveness(t dex.Type, target *ActivePokemon) []int {
	eff := b.Dex.Effectiveness(t, target.Types)
	if target.Has(FlagForesight) && (t == dex.TypeNormal || t == dex.TypeFighting) {
		for i, dt := range target.Types {
			if dt == dex.TypeGhost {
				eff[i] = dex.Neutral
			}
		}
	}
	return eff
}

// multiplier returns the combined effectiveness as a fraction.
func (h *Hit) multiplier() (num, den int) {
	num, den = 1, 1
	for _, e := range h.Effect {
		num *= e
		den *= dex.Neutral
	}
	return num, den
}

// Immune reports whether any defending type is immune.
func (h *Hit) Immune() bool { return lo.Contains(h.Effect, dex.Immune) }

// SuperEffective reports a combined effectiveness above neutral.
func (h *Hit) SuperEffective() bool {
	num, den := h.multiplier()
	return num > den
}

// Resisted reports a combined effectiveness between immune and neutral.
func (h *Hit) Resisted() bool {
	num, den := h.multiplier()
	return num > 0 && num < den
}

// applyEffect scales damage by each type in turn, truncating after each.
func (h *Hit) applyEffect(dmg int) int {
	for _, e := range h.Effect {
		dmg = dmg * e / dex.Neutral
	}
	return dmg
}

func (h *Hit) stab() bool {
	return h.Type != dex.TypeNone && h.User.HasType(h.Type)
}

// statPair returns the attacking and defending stat for the category.
func (h *Hit) statPair() (atk, def dex.Stat) {
	if h.Category == dex.CategorySpecial {
		return dex.StatSpA, dex.StatSpD
	}
	return dex.StatAtk, dex.StatDef
}

// rawStat is a stat at the given stage with no status penalty applied.
func (b *Battle) rawStat(a *ActivePokemon, s dex.Stat, stage int) int {
	return b.rules.ClampStat(b.rules.StageMultiplier(stage).Apply(a.baseStat(s)))
}

// screened reports whether a screen on the target's side covers the hit.
func (b *Battle) screened(h *Hit) bool {
	side := b.playerOf(h.Target).Side
	switch h.Category {
	case dex.CategoryPhysical:
		if b.rules.Quirks.Has(QuirkScreensAreVolatile) {
			return h.Target.Has(FlagReflect)
		}
		return side.Reflect > 0
	case dex.CategorySpecial:
		if b.rules.Quirks.Has(QuirkScreensAreVolatile) {
			return h.Target.Has(FlagLightScreen)
		}
		return side.LightScreen > 0
	}
	return false
}

func (b *Battle) damageRoll(low, high int) int {
	if b.mods.MaxDamageRoll {
		return high
	}
	return b.rng.IntRange(low, high)
}

// byteStats reproduces the cartridge's one-byte stat arithmetic: when either
// stat needs more than a byte both are quartered and truncated to eight bits.
func (b *Battle) byteStats(atk, def int) (int, int) {
	if b.rules.Quirks.Has(QuirkByteOverflowStats) && (atk > 255 || def > 255) {
		atk = (atk / 4) & 0xFF
		def = (def / 4) & 0xFF
	}
	if def == 0 {
		def = 1
	}
	return atk, def
}

func classicBase(level, power, atk, def int) int {
	return (2*level/5 + 2) * power * atk / def / 50
}

// classicFinish applies the shared tail of the generation 1 and 2
// formulas: STAB, type effectiveness and the 217-255 random roll.
func (b *Battle) classicFinish(h *Hit, dmg int) int {
	if h.stab() {
		dmg += dmg / 2
	}
	dmg = h.applyEffect(dmg)
	if dmg == 0 {
		return 0
	}
	if dmg > 1 {
		dmg = dmg * b.damageRoll(217, 255) / 255
	}
	return dmg
}

func gen1Damage(b *Battle, h *Hit) int {
	as, ds := h.statPair()
	atk, def := h.User.Stats[as], h.Target.Stats[ds]
	level := h.User.Pokemon.Level
	if h.Crit {
		atk, def = h.User.baseStat(as), h.Target.baseStat(ds)
		level *= 2
	} else if b.screened(h) {
		def *= 2
	}
	if h.Move.Flags.Has(dex.FlagSelfDestruct) {
		def = max(def/2, 1)
	}
	atk, def = b.byteStats(atk, def)
	dmg := min(classicBase(level, h.Power, atk, def), 997) + 2
	return b.classicFinish(h, dmg)
}

func gen2Damage(b *Battle, h *Hit) int {
	as, ds := h.statPair()
	atk, def := h.User.Stats[as], h.Target.Stats[ds]
	// a crit ignores stages only when they would not favor the attacker
	if h.Crit && h.User.Stage(as) <= h.Target.Stage(ds) {
		atk, def = h.User.baseStat(as), h.Target.baseStat(ds)
	} else if !h.Crit && b.screened(h) {
		def *= 2
	}
	atk = b.itemAttackMod(h, as, atk)
	def = b.itemDefenseMod(h, ds, def)
	if h.Move.Flags.Has(dex.FlagSelfDestruct) {
		def = max(def/2, 1)
	}
	atk, def = b.byteStats(atk, def)
	dmg := classicBase(h.User.Pokemon.Level, h.Power, atk, def)
	if h.Crit {
		dmg *= 2
	}
	dmg = b.itemTypeBoost(h, dmg)
	dmg = min(dmg, 997) + 2
	dmg = b.weatherDamageMod(h.Type, dmg)
	return b.classicFinish(h, dmg)
}

func modernDamage(b *Battle, h *Hit) int {
	as, ds := h.statPair()
	atk, def := h.User.Stats[as], h.Target.Stats[ds]
	if h.Crit {
		atk = b.rawStat(h.User, as, max(h.User.Stage(as), 0))
		def = b.rawStat(h.Target, ds, min(h.Target.Stage(ds), 0))
	}
	atk = b.abilityAttackMod(h, as, atk)
	atk = b.itemAttackMod(h, as, atk)
	def = b.abilityDefenseMod(h, ds, def)
	def = b.itemDefenseMod(h, ds, def)
	if h.Move.Flags.Has(dex.FlagSelfDestruct) {
		def = max(def/2, 1)
	}
	dmg := classicBase(h.User.Pokemon.Level, h.Power, max(atk, 1), max(def, 1))
	if h.Category == dex.CategoryPhysical && h.User.Pokemon.Status == dex.StatusBurn && h.User.Ability != "guts" {
		dmg /= 2
	}
	if !h.Crit && b.screened(h) {
		dmg /= 2
	}
	dmg = b.weatherDamageMod(h.Type, dmg)
	if h.Type == dex.TypeFire && h.User.Has(FlagFlashFire) {
		dmg = dmg * 3 / 2
	}
	dmg += 2
	if h.Crit {
		if h.User.Ability == "sniper" {
			dmg *= 3
		} else {
			dmg *= 2
		}
	}
	if h.User.Pokemon.Item == "life-orb" {
		dmg = dmg * 13 / 10
	}
	dmg = dmg * b.damageRoll(85, 100) / 100
	if h.stab() {
		if h.User.Ability == "adaptability" {
			dmg *= 2
		} else {
			dmg = dmg * 3 / 2
		}
	}
	dmg = h.applyEffect(dmg)
	if h.SuperEffective() {
		if h.Target.Ability == "solid-rock" {
			dmg = dmg * 3 / 4
		}
		if h.User.Pokemon.Item == "expert-belt" {
			dmg = dmg * 6 / 5
		}
	}
	if h.Immune() {
		return 0
	}
	return max(dmg, 1)
}

// weatherDamageMod applies rain and sun to water and fire moves.
func (b *Battle) weatherDamageMod(t dex.Type, dmg int) int {
	switch {
	case b.Field.Weather == dex.WeatherRain && t == dex.TypeWater,
		b.Field.Weather == dex.WeatherSun && t == dex.TypeFire:
		return dmg * 3 / 2
	case b.Field.Weather == dex.WeatherRain && t == dex.TypeFire,
		b.Field.Weather == dex.WeatherSun && t == dex.TypeWater:
		return dmg / 2
	}
	return dmg
}

// confusionDamage is the typeless 40-power hit a confused combatant deals
// itself: no STAB, no effectiveness, no crit and no roll.
func (b *Battle) confusionDamage(a *ActivePokemon) int {
	atk, def := b.byteStats(a.Stats[dex.StatAtk], a.Stats[dex.StatDef])
	dmg := classicBase(a.Pokemon.Level, 40, atk, def)
	if b.rules.Quirks.Has(QuirkByteOverflowStats) {
		dmg = min(dmg, 997)
	}
	return dmg + 2
}

// fixedDamage resolves the formula-free moves. ok is false for moves that
// use the formula.
func (b *Battle) fixedDamage(user, target *ActivePokemon, m *dex.Move) (dmg int, ok bool) {
	switch m.Fixed {
	case dex.FixedAmount:
		return m.FixedAmount, true
	case dex.FixedLevel:
		return user.Pokemon.Level, true
	case dex.FixedHalfHP:
		return max(target.Pokemon.HP/2, 1), true
	case dex.FixedPsywave:
		top := user.Pokemon.Level * 3 / 2
		if b.Gen >= 3 {
			return max(user.Pokemon.Level*b.rng.IntRange(50, 150)/100, 1), true
		}
		// generation 1 and 2 never roll zero for the attacker
		return b.rng.IntRange(1, max(top-1, 1)), true
	case dex.FixedOHKO:
		return target.Pokemon.HP, true
	}
	return 0, false
}
