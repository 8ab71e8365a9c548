package game

import (
	"fmt"
	"slices"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/samber/lo"
)

// switchPriority puts switches ahead of every move.
const switchPriority = 7

// TurnResult is what one AdvanceTurn call produced.
type TurnResult struct {
	Turn   int
	Events []log.Event
	// IsSwitchTurn is set when the next decision is a replacement rather
	// than a full turn.
	IsSwitchTurn bool
	Over         bool
	Winner       string
}

// action is one queued choice for the current turn.
type action struct {
	player   *Player
	choice   Choice
	actor    *ActivePokemon // the combatant that chose it
	priority int
	speed    int
	quick    bool // quick claw activated
}

// AdvanceTurn resolves the pending decision once both players have
// submitted. It returns nil, nil while a choice is still missing. A
// non-nil error means the battle hit an internal fault and is unusable.
func (b *Battle) AdvanceTurn() (*TurnResult, error) {
	if b.broken != nil {
		return nil, b.broken
	}
	if b.Over() {
		return nil, ErrBattleOver
	}
	for _, p := range b.players {
		if !p.Decided() {
			return nil, nil
		}
	}

	switch st := b.State(); st {
	case StateAwaiting:
		b.resolveTurn()
	case StateSwitching:
		b.resolveSwitches()
	default:
		return nil, b.fail(fmt.Errorf("%w: advance called in state %s", ErrBattleBroken, st))
	}
	if b.broken != nil {
		b.flush()
		return nil, b.broken
	}
	b.autoChoose()
	res := &TurnResult{
		Turn:         b.turn,
		Events:       b.flush(),
		IsSwitchTurn: b.State() == StateSwitching,
		Over:         b.Over(),
		Winner:       b.winner,
	}
	b.log.Debug().Int("turn", b.turn).Int("events", len(res.Events)).Str("state", b.State()).Msg("advanced")
	return res, nil
}

func (b *Battle) step(event string) {
	if err := b.transition(event); err != nil {
		b.fail(err)
	}
}

func (b *Battle) resolveTurn() {
	b.turn++
	b.emit(log.NewTurnEvent(b.turn))
	b.step("resolve")
	for _, p := range b.players {
		if p.Active != nil {
			p.Active.Moved = false
		}
	}
	b.queue = b.orderActions()
	for _, p := range b.players {
		p.choice = nil
		p.wasForced = false
	}
	b.runQueue()
}

// orderActions sorts the submitted choices: priority, then quick claw, then
// effective speed. A full tie is settled by a coin flip.
func (b *Battle) orderActions() []*action {
	var acts []*action
	for _, p := range b.players {
		if p.choice == nil || p.Active == nil {
			continue
		}
		a := p.Active
		act := &action{player: p, choice: *p.choice, actor: a, speed: b.effectiveSpeed(a)}
		if act.choice.Kind == ChoiceSwitch {
			act.priority = switchPriority
		} else {
			act.priority = b.movePriority(a, act.choice.Slot)
			if a.Pokemon.Item == "quick-claw" && b.roll(b.rules.QuickClaw) {
				act.quick = true
			}
		}
		acts = append(acts, act)
	}
	slices.SortStableFunc(acts, compareActions)
	if len(acts) == 2 && compareActions(acts[0], acts[1]) == 0 && b.rng.Bool() {
		acts[0], acts[1] = acts[1], acts[0]
	}
	for _, act := range acts {
		if act.quick {
			b.itemEvent(act.actor, "quick-claw")
		}
	}
	return acts
}

func compareActions(x, y *action) int {
	if x.priority != y.priority {
		return y.priority - x.priority
	}
	if x.quick != y.quick {
		if x.quick {
			return -1
		}
		return 1
	}
	return y.speed - x.speed
}

// movePriority is the priority of the move the slot resolves to this turn.
func (b *Battle) movePriority(a *ActivePokemon, slot int) int {
	switch {
	case a.Lock.Move != nil && b.lockForcesMove(a):
		return a.Lock.Move.Priority
	case slot == StruggleSlot:
		return b.Dex.MustMove(dex.StruggleID).Priority
	}
	if s := a.Slot(slot); s != nil {
		return s.Move.Priority
	}
	return 0
}

// effectiveSpeed is the speed used for ordering, after weather abilities
// and items.
func (b *Battle) effectiveSpeed(a *ActivePokemon) int {
	spe := a.Stats[dex.StatSpe]
	switch {
	case a.Ability == "swift-swim" && b.Field.Weather == dex.WeatherRain,
		a.Ability == "chlorophyll" && b.Field.Weather == dex.WeatherSun:
		spe *= 2
	}
	if a.Pokemon.Item == "choice-scarf" {
		spe = spe * 3 / 2
	}
	return spe
}

// runQueue executes queued actions until the turn ends, the battle ends or
// a move asks its user's side for a replacement.
func (b *Battle) runQueue() {
	for len(b.queue) > 0 {
		act := b.queue[0]
		b.queue = b.queue[1:]
		p := act.player

		switch act.choice.Kind {
		case ChoiceSwitch:
			mon := p.Team[act.choice.TeamIndex]
			if p.Active != act.actor || !mon.Healthy() {
				continue
			}
			b.switchIn(p, mon, false)
			b.runSwitchInAbilities(p.Active)
		case ChoiceMove:
			a := act.actor
			if p.Active != a || a.Pokemon.Fainted {
				continue
			}
			a.Moved = true
			b.runMove(a, act.choice.Slot)
		}
		if b.rules.Quirks.Has(QuirkResidualAfterMove) && p.Active != nil {
			b.gen1Residual(p.Active)
		}

		if b.broken != nil || b.checkVictory() {
			b.queue = nil
			return
		}
		if b.pauseForSwitch() {
			return
		}
	}
	b.endTurn()
}

// pauseForSwitch stops the turn when a move pulled its user out. The rest
// of the queue runs once the replacement is in.
func (b *Battle) pauseForSwitch() bool {
	waiting := lo.SomeBy(b.players[:], func(p *Player) bool { return p.needSwitch })
	if !waiting {
		return false
	}
	b.midTurn = true
	b.step("replace")
	return true
}

// resolveSwitches sends in the chosen replacements.
func (b *Battle) resolveSwitches() {
	b.step("resolve")
	var entered []*ActivePokemon
	for _, p := range b.players {
		if !p.needSwitch || p.choice == nil {
			continue
		}
		b.switchIn(p, p.Team[p.choice.TeamIndex], p.passing)
		p.needSwitch, p.passing = false, false
		p.choice, p.wasForced = nil, false
		entered = append(entered, p.Active)
	}
	b.runSwitchInAbilities(entered...)
	if b.checkVictory() {
		return
	}
	if b.midTurn {
		b.midTurn = false
		b.runQueue()
		return
	}
	b.nextDecision()
}

// endTurn runs the between-turn phase and sets up the next decision.
func (b *Battle) endTurn() {
	b.step("residual")
	b.rules.BetweenTurns(b)
	if b.broken != nil {
		return
	}
	for _, p := range b.players {
		a := p.Active
		if a == nil {
			continue
		}
		a.Clear(FlagProtect | FlagEndure | FlagFlinch)
		a.Moved = false
		a.TurnsActive++
		if a.LockOnTurns > 0 {
			a.LockOnTurns--
		}
	}
	if b.checkVictory() {
		return
	}
	b.nextDecision()
}

// nextDecision asks for replacements when an active combatant is down and
// a move choice otherwise.
func (b *Battle) nextDecision() {
	replace := false
	for _, p := range b.players {
		if (p.Active == nil || p.Active.Pokemon.Fainted) && len(p.bench()) > 0 {
			p.needSwitch = true
			replace = true
		}
	}
	if replace {
		b.step("replace")
		return
	}
	b.step("await")
}

// pendingAction returns the player's action still waiting in this turn's
// queue, or nil.
func (b *Battle) pendingAction(p *Player) *action {
	for _, act := range b.queue {
		if act.player == p {
			return act
		}
	}
	return nil
}

// actingLast reports whether nothing else will act after a this turn.
func (b *Battle) actingLast(a *ActivePokemon) bool {
	return !lo.SomeBy(b.queue, func(act *action) bool {
		return act.actor != a && act.player.Active == act.actor && !act.actor.Pokemon.Fainted
	})
}
