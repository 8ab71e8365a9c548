package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// dealDamage applies damage and emits the matching events. Direct damage
// skips the substitute. cause names residual and recoil sources and is
// empty for a move's own hit.
func (b *Battle) dealDamage(target *ActivePokemon, amount int, cause string, direct bool) DamageResult {
	res := target.ApplyDamage(amount, direct)
	if res.HitSubstitute {
		b.emit(log.Event{
			Type:    log.EventHitSubstitute,
			Player:  target.Owner(),
			Species: target.Name(),
			Amount:  res.Dealt,
			Value:   cause,
		})
		if res.BrokeSubstitute {
			b.emit(log.Event{Type: log.EventSubstituteBreak, Player: target.Owner(), Species: target.Name()})
		}
		return res
	}
	if res.Dealt == 0 {
		return res
	}
	p := target.Pokemon
	b.emit(log.NewDamageEvent(target.Owner(), target.Name(), res.Dealt, p.HP, p.MaxHP, cause))
	if res.Fainted {
		b.faint(target)
	} else {
		b.berryCheck(target)
	}
	return res
}

// heal restores HP and announces it. It returns what was restored.
func (b *Battle) heal(a *ActivePokemon, amount int) int {
	got := a.Pokemon.Recover(amount)
	if got > 0 {
		b.emit(log.NewRecoverEvent(a.Owner(), a.Name(), got, a.Pokemon.HP, a.Pokemon.MaxHP))
	}
	return got
}

// faint announces a knockout and drops every relation the opponent held
// toward the fainted combatant.
func (b *Battle) faint(a *ActivePokemon) {
	a.Pokemon.Fainted = true
	b.emit(log.NewFaintEvent(a.Owner(), a.Name()))
	a.Lock = LockState{}
	if foe := b.foeOf(a); foe != nil {
		foe.ClearRelationsTo(a.Owner())
		if foe.Lock.Kind == dex.LockPartialTrap {
			foe.Lock = LockState{}
		}
	}
}

// fraction returns max(maxHP/den, 1), the size of most residual ticks.
func fraction(a *ActivePokemon, den int) int {
	return max(a.Pokemon.MaxHP/den, 1)
}
