package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

// VolatileFlag is a bitmask of in-battle conditions. Observers receive the
// whole mask as one value, so a single integer diff describes every change.
type VolatileFlag uint64

const (
	// Derived flags, computed from counters and relations by Flags.
	FlagConfused VolatileFlag = 1 << iota
	FlagSubstitute
	FlagDisabled
	FlagEncored
	FlagTaunted
	FlagAttracted
	FlagMeanLooked
	FlagPartiallyTrapped
	FlagCharging
	FlagRecharging
	FlagThrashing
	FlagBiding
	FlagRaging
	FlagLockedOn
	FlagPerishSong
	FlagDrowsy

	// Stored flags.
	FlagProtect
	FlagEndure
	FlagFlinch
	FlagFocusEnergy
	FlagMist
	FlagReflect
	FlagLightScreen
	FlagLeechSeed
	FlagCurse
	FlagNightmare
	FlagForesight
	FlagDefenseCurl
	FlagMinimize
	FlagTransformed
	FlagIngrain
	FlagSemiInvulnerable
	FlagFlashFire
)

var flagNames = []string{
	"confused", "substitute", "disabled", "encored", "taunted", "attracted",
	"mean-looked", "partially-trapped", "charging", "recharging", "thrashing",
	"biding", "raging", "locked-on", "perish-song", "drowsy",
	"protect", "endure", "flinch", "focus-energy", "mist", "reflect",
	"light-screen", "leech-seed", "curse", "nightmare", "foresight",
	"defense-curl", "minimize", "transformed", "ingrain", "semi-invulnerable",
	"flash-fire",
}

// Names lists the set flags in bit order.
func (f VolatileFlag) Names() []string {
	var out []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}

// Has reports whether every bit of g is set.
func (f VolatileFlag) Has(g VolatileFlag) bool { return f&g == g }

// batonPassFlags survive a baton pass along with stages, substitute,
// confusion, perish count and lock-on.
const batonPassFlags = FlagFocusEnergy | FlagLeechSeed | FlagCurse | FlagIngrain

// LockState is the multi-turn state a move put its user in.
type LockState struct {
	Kind   dex.LockKind
	Move   *dex.Move
	Slot   int
	Turns  int // turns remaining after the current one
	Damage int // bide: damage stored so far; partial trap: damage per turn in gen 1
}

// DisableState marks one move slot as unusable.
type DisableState struct {
	Slot  int
	Turns int
}

// ActivePokemon is the ephemeral state of a deployed combatant. It is built
// fresh on every switch-in and discarded on switch-out.
type ActivePokemon struct {
	Pokemon *Pokemon

	Stages [dex.NumBoosts]int // indexed by Stat.BoostIndex
	Stats  dex.Stats          // effective stats after stages and status penalties
	Types  []dex.Type
	Ability string

	flags VolatileFlag // stored flags only

	SubstituteHP   int
	ConfusionTurns int
	Lock           LockState
	Disabled       DisableState
	EncoreSlot     int
	EncoreTurns    int
	TauntTurns     int
	PerishCount    int
	YawnTurns      int
	TrapTurns      int // turns left held by a trapping move, generation 2 on
	LockOnTurns    int
	ToxicCounter   int
	ProtectCount   int
	TurnsActive    int
	ChoiceSlot     int // slot a choice item locked in, -1 when free

	// Relations to the opposing side, by player ID. They are cleared when
	// the referenced combatant leaves the field.
	AttractedTo  string
	MeanLookedBy string
	TrappedBy    string
	LockOnTarget string
	SeededBy     string

	LastMove           *dex.Move
	LastMoveSlot       int
	LastDamageTaken    int
	LastDamageCategory dex.Category
	LastDamageType     dex.Type
	LastDamageTurn     int
	Moved              bool // acted this turn
	Loafing            bool // truant: skips the next action

	// transformStats replaces the base stats while transformed.
	transformStats *dex.Stats

	// overlay replaces the move list while transformed or after mimic. Its
	// entries may alias the permanent slots so PP stays shared.
	overlay []*MoveSlot
}

func newActive(p *Pokemon, rules *Ruleset) *ActivePokemon {
	a := &ActivePokemon{
		Pokemon:      p,
		Types:        append([]dex.Type(nil), p.Species.Types...),
		Ability:      p.Ability,
		ChoiceSlot:   -1,
		LastMoveSlot: -1,
		Disabled:     DisableState{Slot: -1},
		EncoreSlot:   -1,
	}
	p.Active = a
	a.Recalculate(rules)
	return a
}

// Flags returns the stored flags together with the derived ones.
func (a *ActivePokemon) Flags() VolatileFlag {
	f := a.flags
	set := func(cond bool, flag VolatileFlag) {
		if cond {
			f |= flag
		}
	}
	set(a.ConfusionTurns > 0, FlagConfused)
	set(a.SubstituteHP > 0, FlagSubstitute)
	set(a.Disabled.Turns > 0, FlagDisabled)
	set(a.EncoreTurns > 0, FlagEncored)
	set(a.TauntTurns > 0, FlagTaunted)
	set(a.AttractedTo != "", FlagAttracted)
	set(a.MeanLookedBy != "", FlagMeanLooked)
	set(a.TrappedBy != "", FlagPartiallyTrapped)
	set(a.Lock.Kind == dex.LockCharge, FlagCharging)
	set(a.Lock.Kind == dex.LockRecharge, FlagRecharging)
	set(a.Lock.Kind == dex.LockThrash, FlagThrashing)
	set(a.Lock.Kind == dex.LockBide, FlagBiding)
	set(a.Lock.Kind == dex.LockRage, FlagRaging)
	set(a.LockOnTurns > 0, FlagLockedOn)
	set(a.PerishCount > 0, FlagPerishSong)
	set(a.YawnTurns > 0, FlagDrowsy)
	return f
}

// Has reports whether a stored or derived flag is set.
func (a *ActivePokemon) Has(f VolatileFlag) bool { return a.Flags().Has(f) }

// Set turns stored flags on. Derived flags are ignored.
func (a *ActivePokemon) Set(f VolatileFlag) { a.flags |= f & storedFlagMask }

// Clear turns stored flags off.
func (a *ActivePokemon) Clear(f VolatileFlag) { a.flags &^= f }

const storedFlagMask = ^(FlagProtect - 1)

// Stage returns the current stage of a boostable stat.
func (a *ActivePokemon) Stage(s dex.Stat) int { return a.Stages[s.BoostIndex()] }

// ModifyStage moves a stage by delta, clamped to [-6, 6], and returns the
// change actually applied. Zero means the stage was already at its bound.
func (a *ActivePokemon) ModifyStage(s dex.Stat, delta int) int {
	i := s.BoostIndex()
	old := a.Stages[i]
	a.Stages[i] = lo.Clamp(old+delta, -6, 6)
	return a.Stages[i] - old
}

// Recalculate derives every effective stat from the base stats, the current
// stages and the status penalties. Penalties are reapplied each time rather
// than stored, so they always compose with the latest stage.
func (a *ActivePokemon) Recalculate(rules *Ruleset) {
	for s := dex.StatAtk; s <= dex.StatSpe; s++ {
		a.RecalculateStat(rules, s)
	}
}

// RecalculateStat refreshes one effective stat.
func (a *ActivePokemon) RecalculateStat(rules *Ruleset, s dex.Stat) {
	base := a.baseStat(s)
	f := rules.StatStages[a.Stage(s)+6]
	v := rules.ClampStat(base * f.Num / f.Den)
	switch {
	case s == dex.StatAtk && a.Pokemon.Status == dex.StatusBurn && rules.Quirks.Has(QuirkBurnHalvesAttackStat):
		v = max(v/2, 1)
	case s == dex.StatSpe && a.Pokemon.Status == dex.StatusParalysis:
		v = max(v/4, 1)
	}
	a.Stats[s] = v
}

// baseStat is the unboosted stat, which transform replaces.
func (a *ActivePokemon) baseStat(s dex.Stat) int {
	if a.transformStats != nil {
		return a.transformStats[s]
	}
	return a.Pokemon.Stats[s]
}

// DamageResult describes what one application of damage did.
type DamageResult struct {
	Dealt           int
	HitSubstitute   bool
	BrokeSubstitute bool
	Fainted         bool
}

// ApplyDamage routes damage through the substitute unless direct is set, and
// never takes HP or substitute HP below zero.
func (a *ActivePokemon) ApplyDamage(amount int, direct bool) DamageResult {
	if amount <= 0 || a.Pokemon.Fainted {
		return DamageResult{}
	}
	if a.SubstituteHP > 0 && !direct {
		dealt := min(amount, a.SubstituteHP)
		a.SubstituteHP -= dealt
		return DamageResult{Dealt: dealt, HitSubstitute: true, BrokeSubstitute: a.SubstituteHP == 0}
	}
	dealt := a.Pokemon.loseHP(amount)
	return DamageResult{Dealt: dealt, Fainted: a.Pokemon.Fainted}
}

// Slots returns the usable move list: the overlay while one is in place,
// otherwise the permanent slots.
func (a *ActivePokemon) Slots() []*MoveSlot {
	if a.overlay != nil {
		return a.overlay
	}
	out := make([]*MoveSlot, len(a.Pokemon.Moves))
	for i := range a.Pokemon.Moves {
		out[i] = &a.Pokemon.Moves[i]
	}
	return out
}

// Slot returns one move slot, or nil when out of range.
func (a *ActivePokemon) Slot(i int) *MoveSlot {
	slots := a.Slots()
	if i < 0 || i >= len(slots) {
		return nil
	}
	return slots[i]
}

// SlotOf finds the slot index of a move, or -1.
func (a *ActivePokemon) SlotOf(id string) int {
	for i, s := range a.Slots() {
		if s.Move.ID == id {
			return i
		}
	}
	return -1
}

// replaceSlot swaps one slot for a new move, leaving the permanent moves
// untouched.
func (a *ActivePokemon) replaceSlot(i int, slot *MoveSlot) {
	if a.overlay == nil {
		a.overlay = a.Slots()
	}
	a.overlay[i] = slot
}

// HasType reports whether t is one of the current types.
func (a *ActivePokemon) HasType(t dex.Type) bool { return lo.Contains(a.Types, t) }

// IsGrounded is false for flying types and levitating combatants.
func (a *ActivePokemon) IsGrounded() bool {
	return !a.HasType(dex.TypeFlying) && a.Ability != "levitate"
}

// Owner returns the ID of the controlling player.
func (a *ActivePokemon) Owner() string { return a.Pokemon.Owner }

// Name returns the display name.
func (a *ActivePokemon) Name() string { return a.Pokemon.Name() }

// ClearRelationsTo drops every relation that points at the given player's
// combatant. Called when that combatant leaves the field.
func (a *ActivePokemon) ClearRelationsTo(player string) {
	if a.AttractedTo == player {
		a.AttractedTo = ""
	}
	if a.MeanLookedBy == player {
		a.MeanLookedBy = ""
	}
	if a.TrappedBy == player {
		a.TrappedBy = ""
	}
	if a.LockOnTarget == player {
		a.LockOnTarget = ""
		a.LockOnTurns = 0
	}
	if a.SeededBy == player {
		a.SeededBy = ""
	}
}

// passTo copies the baton pass subset onto the incoming combatant.
func (a *ActivePokemon) passTo(next *ActivePokemon, rules *Ruleset) {
	next.Stages = a.Stages
	next.flags |= a.flags & batonPassFlags
	next.SubstituteHP = a.SubstituteHP
	next.ConfusionTurns = a.ConfusionTurns
	next.PerishCount = a.PerishCount
	next.MeanLookedBy = a.MeanLookedBy
	next.SeededBy = a.SeededBy
	next.LockOnTarget = a.LockOnTarget
	next.LockOnTurns = a.LockOnTurns
	next.Recalculate(rules)
}

// clearStages resets every stage to zero.
func (a *ActivePokemon) clearStages(rules *Ruleset) {
	a.Stages = [dex.NumBoosts]int{}
	a.Recalculate(rules)
}

// StageMap returns the non-zero stages keyed by stat name.
func (a *ActivePokemon) StageMap() map[string]int {
	out := map[string]int{}
	for i, v := range a.Stages {
		if v != 0 {
			out[dex.BoostStat(i).String()] = v
		}
	}
	return out
}

// TypeNames returns the current types as display names.
func (a *ActivePokemon) TypeNames() []string {
	return lo.Map(a.Types, func(t dex.Type, _ int) string { return t.String() })
}
