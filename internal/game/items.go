package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

func isChoiceItem(id string) bool {
	switch id {
	case "choice-band", "choice-specs", "choice-scarf":
		return true
	}
	return false
}

// itemEvent announces that a held item took effect.
func (b *Battle) itemEvent(a *ActivePokemon, id string) {
	b.emit(log.Event{Type: log.EventItem, Player: a.Owner(), Species: a.Name(), Value: id})
}

// consumeItem announces and removes a single-use item.
func (b *Battle) consumeItem(a *ActivePokemon) {
	b.itemEvent(a, a.Pokemon.Item)
	a.Pokemon.Item = ""
}

func (b *Battle) itemAttackMod(h *Hit, s dex.Stat, atk int) int {
	p := h.User.Pokemon
	switch p.Item {
	case "choice-band":
		if s == dex.StatAtk {
			atk = atk * 3 / 2
		}
	case "choice-specs":
		if s == dex.StatSpA {
			atk = atk * 3 / 2
		}
	case "light-ball":
		if p.Species.ID == "pikachu" && (s == dex.StatSpA || b.Gen >= 4) {
			atk *= 2
		}
	case "thick-club":
		if s == dex.StatAtk && (p.Species.ID == "cubone" || p.Species.ID == "marowak") {
			atk *= 2
		}
	}
	return atk
}

func (b *Battle) itemDefenseMod(h *Hit, s dex.Stat, def int) int {
	t := h.Target
	if t.Pokemon.Item == "metal-powder" && t.Pokemon.Species.ID == "ditto" && !t.Has(FlagTransformed) {
		if s == dex.StatDef || b.Gen == 2 {
			def *= 2
		}
	}
	return def
}

// boostsType reports whether the holder's item powers up moves of type t.
func (b *Battle) boostsType(a *ActivePokemon, t dex.Type) bool {
	if a.Pokemon.Item == "" {
		return false
	}
	it, ok := b.Dex.Item(a.Pokemon.Item)
	return ok && it.BoostType != dex.TypeNone && it.BoostType == t
}

// itemTypeBoost scales damage for a matching type item, the generation 2
// placement of the boost.
func (b *Battle) itemTypeBoost(h *Hit, dmg int) int {
	if b.boostsType(h.User, h.Type) {
		return b.rules.TypeItemBoost.Apply(dmg)
	}
	return dmg
}

// itemPowerMod applies the items that scale base power, from generation 3.
func (b *Battle) itemPowerMod(mc *moveContext, power int) int {
	if b.Gen < 3 {
		return power
	}
	u := mc.user
	if b.boostsType(u, mc.move.Type) {
		power = b.rules.TypeItemBoost.Apply(power)
	}
	switch cat := b.rules.CategoryOf(mc.move); {
	case u.Pokemon.Item == "muscle-band" && cat == dex.CategoryPhysical,
		u.Pokemon.Item == "wise-glasses" && cat == dex.CategorySpecial:
		power = power * 11 / 10
	}
	return power
}

// afterHitItems runs the attacker's items that react to a finished move.
func (b *Battle) afterHitItems(mc *moveContext) {
	u := mc.user
	if u.Pokemon.Fainted || mc.dealt == 0 {
		return
	}
	switch u.Pokemon.Item {
	case "shell-bell":
		if u.Pokemon.HP < u.Pokemon.MaxHP {
			b.itemEvent(u, "shell-bell")
			b.heal(u, max(mc.dealt/8, 1))
		}
	case "life-orb":
		if takesIndirectDamage(u) {
			b.dealDamage(u, fraction(u, 10), "life-orb", true)
		}
	}
}

// kingsRock adds a flinch chance to damaging moves that have no added
// effect of their own.
func (b *Battle) kingsRock(mc *moveContext) {
	target := mc.target
	if mc.user.Pokemon.Item != "kings-rock" || target.Moved || target.Ability == "inner-focus" {
		return
	}
	chance := Fraction{1, 10}
	if b.Gen == 2 {
		chance = Fraction{30, 256}
	}
	if b.roll(chance) {
		target.Set(FlagFlinch)
	}
}

// berryHeal is the HP a pinch berry restores, or 0 for other items.
func (b *Battle) berryHeal(a *ActivePokemon) int {
	switch a.Pokemon.Item {
	case "berry", "oran-berry":
		return 10
	case "gold-berry":
		return 30
	case "sitrus-berry":
		if b.Gen >= 4 {
			return fraction(a, 4)
		}
		return 30
	}
	return 0
}

// berryCures maps status berries to what they cure.
var berryCures = map[string][]dex.Status{
	"mint-berry":     {dex.StatusSleep},
	"chesto-berry":   {dex.StatusSleep},
	"prz-cure-berry": {dex.StatusParalysis},
	"cheri-berry":    {dex.StatusParalysis},
	"burnt-berry":    {dex.StatusFreeze},
	"aspear-berry":   {dex.StatusFreeze},
	"ice-berry":      {dex.StatusBurn},
	"rawst-berry":    {dex.StatusBurn},
	"psn-cure-berry": {dex.StatusPoison, dex.StatusToxic},
	"pecha-berry":    {dex.StatusPoison, dex.StatusToxic},
}

// berryCheck eats a held berry whose trigger condition now holds.
func (b *Battle) berryCheck(a *ActivePokemon) {
	p := a.Pokemon
	if p.Fainted || p.Item == "" {
		return
	}
	if heal := b.berryHeal(a); heal > 0 {
		if p.HP <= p.MaxHP/2 {
			b.consumeItem(a)
			b.heal(a, heal)
		}
		return
	}
	switch p.Item {
	case "bitter-berry", "persim-berry":
		if a.ConfusionTurns > 0 {
			b.consumeItem(a)
			a.ConfusionTurns = 0
			b.info(a, log.InfoConfusionEnded)
		}
		return
	case "miracle-berry", "lum-berry":
		if p.Status == dex.StatusNone && a.ConfusionTurns == 0 {
			return
		}
		b.consumeItem(a)
		b.cureStatus(a)
		if a.ConfusionTurns > 0 {
			a.ConfusionTurns = 0
			b.info(a, log.InfoConfusionEnded)
		}
		return
	}
	for _, s := range berryCures[p.Item] {
		if p.Status == s {
			b.consumeItem(a)
			b.cureStatus(a)
			return
		}
	}
}

// whiteHerb restores lowered stages once.
func (b *Battle) whiteHerb(a *ActivePokemon) {
	if a.Pokemon.Item != "white-herb" || a.Pokemon.Fainted {
		return
	}
	lowered := false
	for i, v := range a.Stages {
		if v < 0 {
			a.Stages[i] = 0
			lowered = true
		}
	}
	if lowered {
		a.Recalculate(b.rules)
		b.consumeItem(a)
	}
}

// residualItem runs the held items that act between turns.
func (b *Battle) residualItem(a *ActivePokemon) {
	p := a.Pokemon
	if p.Fainted {
		return
	}
	switch p.Item {
	case "leftovers":
		if p.HP < p.MaxHP {
			b.itemEvent(a, p.Item)
			b.heal(a, fraction(a, b.rules.Residual.Leftovers))
		}
	case "black-sludge":
		if a.HasType(dex.TypePoison) {
			if p.HP < p.MaxHP {
				b.itemEvent(a, p.Item)
				b.heal(a, fraction(a, 16))
			}
		} else if takesIndirectDamage(a) {
			b.itemEvent(a, p.Item)
			b.dealDamage(a, fraction(a, 8), "black-sludge", true)
		}
	}
}
