package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

// semiInvulnerableDodge reports whether a target up in the air or
// underground avoids the move.
func semiInvulnerableDodge(target *ActivePokemon, m *dex.Move) bool {
	if !target.Has(FlagSemiInvulnerable) {
		return false
	}
	if target.Lock.Move == nil {
		return true
	}
	switch target.Lock.Move.ID {
	case "fly":
		return !m.Flags.Has(dex.FlagHitsFlying)
	case "dig":
		return !m.Flags.Has(dex.FlagHitsDigging)
	}
	return true
}

// lockedOn reports whether the user has a guaranteed hit on the target.
func lockedOn(user, target *ActivePokemon) bool {
	return user.LockOnTurns > 0 && user.LockOnTarget == target.Owner()
}

// classicAccuracy is the 0-255 accuracy byte after stages, as both early
// generations compute it.
func (b *Battle) classicAccuracy(user, target *ActivePokemon, m *dex.Move) int {
	acc := m.Accuracy * 255 / 100
	acc = b.rules.AccuracyStages[user.Stage(dex.StatAccuracy)+6].Apply(acc)
	evasion := target.Stage(dex.StatEvasion)
	if target.Has(FlagForesight) {
		evasion = min(evasion, 0)
	}
	acc = b.rules.AccuracyStages[-evasion+6].Apply(acc)
	return lo.Clamp(acc, 1, 255)
}

// gen1CheckAccuracy rolls a byte against the accuracy byte, so even a
// perfectly accurate move misses one time in 256.
func gen1CheckAccuracy(b *Battle, user, target *ActivePokemon, m *dex.Move) bool {
	if m.Accuracy == 0 {
		return true
	}
	return b.rng.IntN(256) < b.classicAccuracy(user, target, m)
}

func gen2CheckAccuracy(b *Battle, user, target *ActivePokemon, m *dex.Move) bool {
	if m.Accuracy == 0 || lockedOn(user, target) {
		return true
	}
	acc := b.classicAccuracy(user, target, m)
	if target.Pokemon.Item == "bright-powder" {
		acc = max(acc-20, 1)
	}
	if acc >= 255 {
		return true
	}
	return b.rng.IntN(256) < acc
}

func modernCheckAccuracy(b *Battle, user, target *ActivePokemon, m *dex.Move) bool {
	if user.Ability == "no-guard" || target.Ability == "no-guard" {
		return true
	}
	if m.Accuracy == 0 || lockedOn(user, target) {
		return true
	}
	evasion := target.Stage(dex.StatEvasion)
	if target.Has(FlagForesight) {
		evasion = min(evasion, 0)
	}
	stage := lo.Clamp(user.Stage(dex.StatAccuracy)-evasion, -6, 6)
	acc := b.rules.AccuracyStages[stage+6].Apply(m.Accuracy)
	acc = b.abilityAccuracyMod(user, target, m, acc)
	if target.Pokemon.Item == "bright-powder" {
		acc = acc * 9 / 10
	}
	return b.rng.IntN(100) < acc
}

// gen1IsCrit derives the crit chance from the user's base speed. Focus
// Energy quarters it instead of raising it.
func gen1IsCrit(b *Battle, h *Hit) bool {
	t := h.User.Pokemon.Species.BaseStats[dex.StatSpe] / 2
	if h.User.Has(FlagFocusEnergy) {
		if b.rules.Quirks.Has(QuirkFocusEnergyBug) {
			t /= 4
		} else {
			t *= 4
		}
	}
	if h.Move.CritRatio > 1 {
		t *= 8
	}
	return b.rng.IntN(256) < min(t, 255)
}

// stagedIsCrit looks the crit stage up in the generation's table.
func stagedIsCrit(b *Battle, h *Hit) bool {
	if h.Target.Ability == "shell-armor" || h.Target.Ability == "battle-armor" {
		return false
	}
	stage := h.Move.CritRatio - 1
	if h.User.Has(FlagFocusEnergy) {
		stage += b.rules.FocusEnergyStages
	}
	if h.User.Pokemon.Item == "scope-lens" {
		stage++
	}
	if h.User.Ability == "super-luck" {
		stage++
	}
	f := b.rules.CritStages[min(stage, len(b.rules.CritStages)-1)]
	return b.rng.Chance(f.Num, f.Den)
}

// gen1SecondaryChance rolls a byte, so a 10% effect lands 25 times in 256.
func gen1SecondaryChance(b *Battle, _ *ActivePokemon, pct int) bool {
	if pct >= 100 {
		return true
	}
	return b.rng.IntN(256) < pct*256/100
}

func modernSecondaryChance(b *Battle, user *ActivePokemon, pct int) bool {
	if user.Ability == "serene-grace" {
		pct *= 2
	}
	if pct >= 100 {
		return true
	}
	return b.rng.IntN(100) < pct
}
