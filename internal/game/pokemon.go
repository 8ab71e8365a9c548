package game

import (
	"fmt"

	"github.com/peterkuimelis/pokesim/internal/dex"
)

// MaxMoves is the number of move slots a combatant carries.
const MaxMoves = 4

// MoveSlot is one known move and its remaining PP.
type MoveSlot struct {
	Move  *dex.Move
	PP    int
	MaxPP int
}

// Pokemon is a roster member's persistent in-battle identity. It lives for
// the whole battle; everything that is cleared on switch-out lives on
// ActivePokemon instead.
type Pokemon struct {
	Species    *dex.Species
	Nickname   string
	Level      int
	Stats      dex.Stats // calculated once at battle start
	MaxHP      int
	HP         int
	Status     dex.Status
	SleepTurns int // turns left asleep, counted down on each move attempt
	Moves      []MoveSlot
	Item       string // item ID, "" when none or consumed
	Ability    string // ability ID, "" before generation 3
	Gender     string // "M", "F" or "N"
	TeamIndex  int
	Owner      string // player ID
	Fainted    bool

	selfSlept bool // asleep from its own move, ignored by the sleep clause

	// Active is the volatile state while this combatant is deployed.
	Active *ActivePokemon
}

// Name returns the nickname if one was given, else the species name.
func (p *Pokemon) Name() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Species.Name
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("%s L%d %d/%d", p.Name(), p.Level, p.HP, p.MaxHP)
}

// Healthy reports whether the combatant can still battle.
func (p *Pokemon) Healthy() bool { return !p.Fainted && p.HP > 0 }

// Recover restores up to amount HP, never above MaxHP, and returns what was
// actually restored. A fainted combatant cannot be healed.
func (p *Pokemon) Recover(amount int) int {
	if p.Fainted || amount <= 0 {
		return 0
	}
	applied := min(amount, p.MaxHP-p.HP)
	p.HP += applied
	return applied
}

// SetStatus applies a non-volatile status. A combatant holds at most one, so
// the call is rejected when one is present unless overwrite is set.
func (p *Pokemon) SetStatus(s dex.Status, overwrite bool) bool {
	if p.Fainted || s == dex.StatusNone {
		return false
	}
	if p.Status != dex.StatusNone && !overwrite {
		return false
	}
	p.Status = s
	if s != dex.StatusSleep {
		p.SleepTurns = 0
	}
	if p.Active != nil && s == dex.StatusToxic {
		p.Active.ToxicCounter = 0
	}
	return true
}

// ClearStatus removes the non-volatile status and returns what it was.
func (p *Pokemon) ClearStatus() dex.Status {
	old := p.Status
	p.Status = dex.StatusNone
	p.SleepTurns = 0
	p.selfSlept = false
	return old
}

// loseHP lowers HP by at most amount and returns the HP actually lost.
// Reaching zero marks the combatant fainted.
func (p *Pokemon) loseHP(amount int) int {
	if p.Fainted || amount <= 0 {
		return 0
	}
	dealt := min(amount, p.HP)
	p.HP -= dealt
	if p.HP == 0 {
		p.Fainted = true
	}
	return dealt
}

// HasMove reports whether one of the permanent slots holds the move.
func (p *Pokemon) HasMove(id string) bool {
	for _, s := range p.Moves {
		if s.Move.ID == id {
			return true
		}
	}
	return false
}

// maxPP applies three PP Ups to a base PP value.
func maxPP(base int) int {
	if base <= 1 {
		return base
	}
	return base * 8 / 5
}

// newPokemon builds a roster member from a set, resolving every name
// against the generation's tables.
func newPokemon(d *dex.Dex, rules *Ruleset, set PokemonSet, owner string, index int) (*Pokemon, error) {
	sp, ok := d.Species(set.Species)
	if !ok {
		return nil, fmt.Errorf("%w: %q in gen %d", ErrUnknownSpecies, set.Species, d.Gen)
	}
	if len(set.Moves) == 0 || len(set.Moves) > MaxMoves {
		return nil, fmt.Errorf("%w: %s has %d moves", ErrBadRoster, sp.Name, len(set.Moves))
	}
	level := set.Level
	if level == 0 {
		level = 100
	}
	if level < 1 || level > 100 {
		return nil, fmt.Errorf("%w: %s level %d", ErrBadRoster, sp.Name, level)
	}

	p := &Pokemon{
		Species:   sp,
		Nickname:  set.Nickname,
		Level:     level,
		TeamIndex: index,
		Owner:     owner,
		Gender:    set.Gender,
	}
	if sp.Genderless {
		p.Gender = "N"
	} else if p.Gender == "" {
		p.Gender = "M"
	}

	for _, id := range set.Moves {
		m, ok := d.Move(id)
		if !ok || m.ID == dex.StruggleID {
			return nil, fmt.Errorf("%w: %q in gen %d", ErrUnknownMove, id, d.Gen)
		}
		if p.HasMove(m.ID) {
			return nil, fmt.Errorf("%w: %s knows %s twice", ErrBadRoster, sp.Name, m.Name)
		}
		pp := maxPP(m.PP)
		p.Moves = append(p.Moves, MoveSlot{Move: m, PP: pp, MaxPP: pp})
	}

	if set.Item != "" {
		it, ok := d.Item(set.Item)
		if !ok {
			return nil, fmt.Errorf("%w: %q in gen %d", ErrUnknownItem, set.Item, d.Gen)
		}
		p.Item = it.ID
	}
	if set.Ability != "" {
		a, ok := d.Ability(set.Ability)
		if !ok {
			return nil, fmt.Errorf("%w: %q in gen %d", ErrUnknownAbility, set.Ability, d.Gen)
		}
		p.Ability = a.ID
	} else if len(sp.Abilities) > 0 {
		p.Ability = sp.Abilities[0]
	}

	var nature *dex.Nature
	if set.Nature != "" {
		n, ok := d.Nature(set.Nature)
		if !ok {
			return nil, fmt.Errorf("%w: unknown nature %q", ErrBadRoster, set.Nature)
		}
		nature = n
	}

	ivs, evs, err := rules.spreads(set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sp.Name, err)
	}
	for s := dex.StatHP; s <= dex.StatSpe; s++ {
		p.Stats[s] = rules.CalcStat(s, sp.BaseStats[s], ivs[s], evs[s], level, nature)
	}
	if rules.Gen >= 3 && sp.ID == "shedinja" {
		p.Stats[dex.StatHP] = 1
	}
	p.MaxHP = p.Stats[dex.StatHP]
	p.HP = p.MaxHP
	return p, nil
}
