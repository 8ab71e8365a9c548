package game

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/samber/lo"
)

// ChoiceKind distinguishes a move selection from a switch.
type ChoiceKind int

const (
	ChoiceMove ChoiceKind = iota
	ChoiceSwitch
)

func (k ChoiceKind) String() string {
	if k == ChoiceSwitch {
		return "switch"
	}
	return "move"
}

// Choice is a player's submitted action for the current decision.
type Choice struct {
	Kind      ChoiceKind
	Slot      int // move slot, or StruggleSlot
	TeamIndex int // switch target
}

// MoveOption is one move slot as the player sees it.
type MoveOption struct {
	Slot     int    `json:"slot"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	PP       int    `json:"pp"`
	MaxPP    int    `json:"maxPP"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Options lists what a player may submit right now.
type Options struct {
	Moves       []MoveOption `json:"moves,omitempty"`
	Switches    []int        `json:"switches,omitempty"` // team indices
	ForceSwitch bool         `json:"forceSwitch,omitempty"`
	Trapped     bool         `json:"trapped,omitempty"`
	Forced      bool         `json:"forced,omitempty"` // the move is locked in
}

// CanMove reports whether slot is a selectable move.
func (o *Options) CanMove(slot int) bool {
	for _, m := range o.Moves {
		if m.Slot == slot && !m.Disabled {
			return true
		}
	}
	return false
}

// CanSwitch reports whether teamIndex is a legal switch target.
func (o *Options) CanSwitch(teamIndex int) bool {
	for _, i := range o.Switches {
		if i == teamIndex {
			return true
		}
	}
	return false
}

// Choice returns the pending submission, or nil.
func (p *Player) Choice() *Choice { return p.choice }

// Decided reports whether the player has nothing left to submit.
func (p *Player) Decided() bool { return p.choice != nil || !p.mustDecide() }

// mustDecide reports whether the battle is waiting on this player.
func (p *Player) mustDecide() bool {
	b := p.battle
	if b.Over() || b.broken != nil {
		return false
	}
	if b.State() == StateSwitching {
		return p.needSwitch
	}
	return b.State() == StateAwaiting && p.Active != nil && !p.Active.Pokemon.Fainted
}

// Options returns the legal submissions, or nil when the player has
// nothing to decide.
func (p *Player) Options() *Options {
	if !p.mustDecide() {
		return nil
	}
	b := p.battle
	opts := &Options{}
	for _, mon := range p.bench() {
		opts.Switches = append(opts.Switches, mon.TeamIndex)
	}
	if p.needSwitch {
		opts.ForceSwitch = true
		return opts
	}

	a := p.Active
	if b.trapped(a) {
		opts.Trapped = true
		opts.Switches = nil
	}
	if slot, ok := b.forcedSlot(a); ok {
		opts.Forced = true
		opts.Switches = nil
		opts.Moves = []MoveOption{b.moveOption(a, slot)}
		return opts
	}
	for i := range a.Slots() {
		o := b.moveOption(a, i)
		o.Disabled = !b.rules.IsValidMove(b, a, i)
		opts.Moves = append(opts.Moves, o)
	}
	if !lo.SomeBy(opts.Moves, func(m MoveOption) bool { return !m.Disabled }) {
		opts.Moves = []MoveOption{b.moveOption(a, StruggleSlot)}
	}
	return opts
}

func (b *Battle) moveOption(a *ActivePokemon, slot int) MoveOption {
	if s := a.Slot(slot); s != nil {
		return MoveOption{Slot: slot, ID: s.Move.ID, Name: s.Move.Name, PP: s.PP, MaxPP: s.MaxPP}
	}
	if a.Lock.Move != nil && slot == a.Lock.Slot {
		return MoveOption{Slot: slot, ID: a.Lock.Move.ID, Name: a.Lock.Move.Name}
	}
	m := b.Dex.MustMove(dex.StruggleID)
	return MoveOption{Slot: StruggleSlot, ID: m.ID, Name: m.Name}
}

// forcedSlot returns the slot a multi-turn lock commits the combatant to.
func (b *Battle) forcedSlot(a *ActivePokemon) (int, bool) {
	if a.Lock.Kind == dex.LockRecharge || (a.Lock.Move != nil && b.lockForcesMove(a)) {
		return a.Lock.Slot, true
	}
	return 0, false
}

// trapped reports whether the combatant may not switch out.
func (b *Battle) trapped(a *ActivePokemon) bool {
	if a.Pokemon.Item == "shed-shell" {
		return false
	}
	if a.MeanLookedBy != "" || a.Has(FlagIngrain) {
		return true
	}
	if a.TrappedBy != "" && !b.rules.Quirks.Has(QuirkPartialTrapLocksUser) {
		return true
	}
	foe := b.foeOf(a)
	if foe == nil || foe.Pokemon.Fainted {
		return false
	}
	switch foe.Ability {
	case "shadow-tag":
		return a.Ability != "shadow-tag"
	case "arena-trap":
		return a.IsGrounded()
	case "magnet-pull":
		return a.HasType(dex.TypeSteel)
	}
	return false
}

// ChooseMove submits a move. A combatant with no usable move submits
// StruggleSlot.
func (p *Player) ChooseMove(slot int) error {
	b := p.battle
	if b.Over() {
		return ErrBattleOver
	}
	opts := p.Options()
	if opts == nil {
		return rejectChoice(p, ErrNoDecision, "no decision pending")
	}
	if opts.ForceSwitch {
		return rejectChoice(p, ErrInvalidChoice, "a replacement must be sent out")
	}
	if p.choice != nil && p.wasForced {
		return rejectChoice(p, ErrLocked, "the move is locked in")
	}
	if opts.Forced && opts.Moves[0].Slot != slot {
		return rejectChoice(p, ErrLocked, "locked into %s", opts.Moves[0].Name)
	}
	if !opts.CanMove(slot) {
		return rejectChoice(p, ErrInvalidChoice, "move slot %d cannot be used", slot)
	}
	p.choice = &Choice{Kind: ChoiceMove, Slot: slot}
	p.wasForced = false
	return nil
}

// ChooseSwitch submits a switch to the roster member at teamIndex.
func (p *Player) ChooseSwitch(teamIndex int) error {
	b := p.battle
	if b.Over() {
		return ErrBattleOver
	}
	opts := p.Options()
	if opts == nil {
		return rejectChoice(p, ErrNoDecision, "no decision pending")
	}
	if p.choice != nil && p.wasForced {
		return rejectChoice(p, ErrLocked, "the move is locked in")
	}
	if opts.Trapped {
		return rejectChoice(p, ErrTrapped, "%s cannot escape", p.Active.Name())
	}
	if !opts.CanSwitch(teamIndex) {
		return rejectChoice(p, ErrInvalidChoice, "team index %d cannot switch in", teamIndex)
	}
	p.choice = &Choice{Kind: ChoiceSwitch, TeamIndex: teamIndex}
	p.wasForced = false
	return nil
}

// CancelChoice withdraws the pending submission. Choices the battle made on
// the player's behalf cannot be withdrawn.
func (p *Player) CancelChoice() error {
	if p.battle.Over() {
		return ErrBattleOver
	}
	if p.choice == nil {
		return rejectChoice(p, ErrNoDecision, "nothing to cancel")
	}
	if p.wasForced {
		return rejectChoice(p, ErrLocked, "the move is locked in")
	}
	p.choice = nil
	return nil
}

// autoChoose submits the choices a player has no say in: a locked-in move,
// or struggle when there is nothing else to do.
func (b *Battle) autoChoose() {
	for _, p := range b.players {
		if p.choice != nil {
			continue
		}
		opts := p.Options()
		if opts == nil || opts.ForceSwitch || len(opts.Moves) != 1 {
			continue
		}
		only := opts.Moves[0]
		if opts.Forced || (only.Slot == StruggleSlot && len(opts.Switches) == 0) {
			p.choice = &Choice{Kind: ChoiceMove, Slot: only.Slot}
			p.wasForced = true
		}
	}
}
