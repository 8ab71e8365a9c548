package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// bench returns the healthy roster members that are not on the field.
func (p *Player) bench() []*Pokemon {
	var out []*Pokemon
	for _, mon := range p.Team {
		if mon.Healthy() && (p.Active == nil || p.Active.Pokemon != mon) {
			out = append(out, mon)
		}
	}
	return out
}

// switchIn sends mon out for p. With pass set the incoming combatant
// inherits the baton pass subset from the outgoing one.
func (b *Battle) switchIn(p *Player, mon *Pokemon, pass bool) {
	b.replaceActive(p, mon, pass, log.EventSwitch)
}

// drag forces mon in for p, the way roar and whirlwind do.
func (b *Battle) drag(p *Player, mon *Pokemon) {
	b.replaceActive(p, mon, false, log.EventDrag)
	b.runSwitchInAbilities(p.Active)
}

func (b *Battle) replaceActive(p *Player, mon *Pokemon, pass bool, kind log.EventType) {
	old := p.Active
	if old != nil {
		b.switchOut(p)
	}
	a := newActive(mon, b.rules)
	if pass && old != nil {
		old.passTo(a, b.rules)
	}
	p.Active = a
	b.log.Debug().Str("player", p.ID).Str("species", mon.Species.ID).Bool("pass", pass).Msg("switch in")

	e := log.NewSwitchEvent(p.ID, mon.Name(), mon.TeamIndex, mon.Level, mon.HP, mon.MaxHP)
	e.Type = kind
	if mon.Status != dex.StatusNone {
		e.Status = mon.Status.String()
	}
	b.emit(e)
	b.entryHazards(p, a)
}

// switchOut takes the active combatant off the field. Everything it held
// on the opponent lapses with it.
func (b *Battle) switchOut(p *Player) {
	a := p.Active
	if a == nil {
		return
	}
	if foe := b.OpponentOf(p).Active; foe != nil {
		foe.ClearRelationsTo(p.ID)
		if foe.Lock.Kind == dex.LockPartialTrap && !b.rules.Quirks.Has(QuirkPartialTrapLocksUser) {
			foe.Lock = LockState{}
		}
	}
	mon := a.Pokemon
	if !mon.Fainted {
		if a.Ability == "natural-cure" && mon.Status != dex.StatusNone {
			b.showAbility(a)
			b.cureStatus(a)
		}
		if mon.Status == dex.StatusToxic && b.Gen <= 2 {
			mon.Status = dex.StatusPoison
		}
	}
	mon.Active = nil
	p.Active = nil
}

// entryHazards applies spikes to a grounded newcomer.
func (b *Battle) entryHazards(p *Player, a *ActivePokemon) {
	layers := p.Side.Spikes
	if layers == 0 || !a.IsGrounded() || !takesIndirectDamage(a) || len(b.rules.SpikesDamage) == 0 {
		return
	}
	den := b.rules.SpikesDamage[min(layers, len(b.rules.SpikesDamage))-1]
	b.dealDamage(a, fraction(a, den), "spikes", true)
}
