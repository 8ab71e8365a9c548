package game

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/looplab/fsm"
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/rs/zerolog"
)

// MaxTeamSize is the largest roster a player may bring.
const MaxTeamSize = 6

// Battle states.
const (
	StateAwaiting  = "awaiting"
	StateResolving = "resolving"
	StateBetween   = "between"
	StateSwitching = "switching"
	StateFinished  = "finished"
)

// PlayerConfig describes one side at battle start.
type PlayerConfig struct {
	ID   string
	Name string
	Team []PokemonSet
}

// Config holds everything needed to start a battle.
type Config struct {
	Gen    int
	Mods   []string
	Seed   int64
	RNG    *RNG // overrides Seed when set
	P1, P2 PlayerConfig
	Logger log.EventLogger
	Log    *zerolog.Logger
}

// SideConditions are the per-side field effects, as turns remaining.
type SideConditions struct {
	Reflect     int
	LightScreen int
	Safeguard   int
	Mist        int
	Spikes      int // layers
}

// Field is the state shared by both sides.
type Field struct {
	Weather      dex.Weather
	WeatherTurns int // 0 while the weather is permanent
}

// Player is one side of the battle.
type Player struct {
	ID     string
	Name   string
	Team   []*Pokemon
	Active *ActivePokemon
	Side   SideConditions

	battle     *Battle
	choice     *Choice
	needSwitch bool // a replacement must be chosen before play continues
	passing    bool // the replacement inherits baton pass state
	wasForced  bool // the pending choice was submitted automatically
}

// Healthy returns the roster members that can still battle.
func (p *Player) Healthy() []*Pokemon {
	var out []*Pokemon
	for _, mon := range p.Team {
		if mon.Healthy() {
			out = append(out, mon)
		}
	}
	return out
}

// Defeated reports whether every roster member has fainted.
func (p *Player) Defeated() bool { return len(p.Healthy()) == 0 }

// Battle is one two-player singles battle. It is single-threaded: callers
// must not use a Battle from more than one goroutine at a time.
type Battle struct {
	Gen   int
	Dex   *dex.Dex
	Field Field

	rules   *Ruleset
	mods    Mods
	rng     *RNG
	players [2]*Player
	machine *fsm.FSM
	logger  log.EventLogger
	log     zerolog.Logger

	turn   int
	seq    int
	events []log.Event // emitted since the last flush

	queue     []*action // actions left in the current turn
	midTurn   bool      // a move paused the queue for a replacement
	lastDiffs map[string]log.VolatileDiff
	winner    string
	broken    error
}

// Start validates the configuration, builds both rosters, sends out the
// leads and returns the opening events.
func Start(cfg Config) (*Battle, []log.Event, error) {
	rules, err := RulesetFor(cfg.Gen)
	if err != nil {
		return nil, nil, err
	}
	d, err := dex.ForGen(cfg.Gen)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedGen, err)
	}
	mods, err := ParseMods(cfg.Mods...)
	if err != nil {
		return nil, nil, err
	}
	if cfg.P1.ID == "" || cfg.P2.ID == "" || cfg.P1.ID == cfg.P2.ID {
		return nil, nil, fmt.Errorf("%w: player IDs must be distinct and non-empty", ErrBadRoster)
	}

	b := &Battle{
		Gen:       cfg.Gen,
		Dex:       d,
		rules:     rules,
		mods:      mods,
		rng:       cfg.RNG,
		logger:    cfg.Logger,
		log:       zerolog.Nop(),
		lastDiffs: map[string]log.VolatileDiff{},
	}
	if b.rng == nil {
		b.rng = NewRNG(cfg.Seed)
	}
	if b.logger == nil {
		b.logger = log.NewMemoryLogger()
	}
	if cfg.Log != nil {
		b.log = cfg.Log.With().Int("gen", cfg.Gen).Logger()
	}

	for i, pc := range []PlayerConfig{cfg.P1, cfg.P2} {
		p, err := b.newPlayer(pc)
		if err != nil {
			return nil, nil, err
		}
		b.players[i] = p
	}

	b.machine = fsm.NewFSM(StateAwaiting,
		fsm.Events{
			{Name: "resolve", Src: []string{StateAwaiting, StateSwitching}, Dst: StateResolving},
			{Name: "residual", Src: []string{StateResolving}, Dst: StateBetween},
			{Name: "await", Src: []string{StateResolving, StateBetween}, Dst: StateAwaiting},
			{Name: "replace", Src: []string{StateResolving, StateBetween}, Dst: StateSwitching},
			{Name: "finish", Src: []string{StateAwaiting, StateResolving, StateBetween, StateSwitching}, Dst: StateFinished},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				b.log.Debug().Int("turn", b.turn).Str("from", e.Src).Str("to", e.Dst).Msg("battle state")
			},
		},
	)

	for _, p := range b.players {
		b.switchIn(p, p.Team[0], false)
	}
	b.runSwitchInAbilities(b.players[0].Active, b.players[1].Active)
	b.log.Info().Str("p1", b.players[0].ID).Str("p2", b.players[1].ID).Msg("battle started")
	b.autoChoose()
	return b, b.flush(), nil
}

func (b *Battle) newPlayer(pc PlayerConfig) (*Player, error) {
	if len(pc.Team) == 0 || len(pc.Team) > MaxTeamSize {
		return nil, fmt.Errorf("%w: %s brought %d combatants", ErrBadRoster, pc.ID, len(pc.Team))
	}
	p := &Player{ID: pc.ID, Name: pc.Name, battle: b}
	if p.Name == "" {
		p.Name = pc.ID
	}
	for i, set := range pc.Team {
		mon, err := newPokemon(b.Dex, b.rules, set, p.ID, i)
		if err != nil {
			return nil, fmt.Errorf("%s slot %d: %w", p.ID, i+1, err)
		}
		p.Team = append(p.Team, mon)
	}
	return p, nil
}

// Rules returns the merged generation rules in force.
func (b *Battle) Rules() *Ruleset { return b.rules }

// Mods returns the house rules in force.
func (b *Battle) Mods() Mods { return b.mods }

// Turn returns the current turn number. Turn 0 is the lead switch-in.
func (b *Battle) Turn() int { return b.turn }

// Players returns both sides, player one first.
func (b *Battle) Players() [2]*Player { return b.players }

// FindPlayer looks a side up by ID.
func (b *Battle) FindPlayer(id string) *Player {
	for _, p := range b.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// OpponentOf returns the other side.
func (b *Battle) OpponentOf(p *Player) *Player {
	if b.players[0] == p {
		return b.players[1]
	}
	return b.players[0]
}

// foeOf returns the opposing active combatant, or nil.
func (b *Battle) foeOf(a *ActivePokemon) *ActivePokemon {
	return b.OpponentOf(b.playerOf(a)).Active
}

func (b *Battle) playerOf(a *ActivePokemon) *Player {
	return b.FindPlayer(a.Owner())
}

// Over reports whether the battle has ended.
func (b *Battle) Over() bool { return b.machine.Current() == StateFinished }

// Winner returns the winning player's ID, or "" for a draw or an unfinished
// battle.
func (b *Battle) Winner() string { return b.winner }

// State returns the lifecycle state.
func (b *Battle) State() string { return b.machine.Current() }

// Events returns every event logged so far.
func (b *Battle) Events() []log.Event { return b.logger.Events() }

func (b *Battle) transition(event string) error {
	err := b.machine.Event(context.Background(), event)
	var noop fsm.NoTransitionError
	if err != nil && !errors.As(err, &noop) {
		return fmt.Errorf("%w: %s from %s: %v", ErrBattleBroken, event, b.machine.Current(), err)
	}
	return nil
}

// fail marks the battle broken after an internal invariant violation.
func (b *Battle) fail(err error) error {
	if b.broken == nil {
		b.broken = err
		b.log.Error().Err(err).Int("turn", b.turn).Msg("battle aborted")
	}
	return b.broken
}

// emit stamps and records one event. Any change to either active
// combatant's volatiles since the last event rides along with it.
func (b *Battle) emit(e log.Event) {
	b.seq++
	e.Seq = b.seq
	e.Turn = b.turn
	if diffs := b.volatileDiffs(); len(diffs) > 0 {
		e.Volatiles = diffs
	}
	b.events = append(b.events, e)
	b.logger.Log(e)
}

func (b *Battle) volatileDiffs() map[string]log.VolatileDiff {
	var out map[string]log.VolatileDiff
	for _, p := range b.players {
		if p.Active == nil {
			continue
		}
		cur := log.VolatileDiff{
			Flags:  uint64(p.Active.Flags()),
			Stages: p.Active.StageMap(),
			Types:  p.Active.TypeNames(),
		}
		last, seen := b.lastDiffs[p.ID]
		if seen && last.Flags == cur.Flags && maps.Equal(last.Stages, cur.Stages) && slices.Equal(last.Types, cur.Types) {
			continue
		}
		b.lastDiffs[p.ID] = cur
		if out == nil {
			out = map[string]log.VolatileDiff{}
		}
		out[p.ID] = cur
	}
	return out
}

func (b *Battle) flush() []log.Event {
	out := b.events
	b.events = nil
	return out
}

// info emits an informational event about a combatant.
func (b *Battle) info(a *ActivePokemon, info string) {
	b.emit(log.NewInfoEvent(a.Owner(), a.Name(), info))
}

// Forfeit ends the battle in the opponent's favor. A timeout forfeit is
// marked as such in the event.
func (b *Battle) Forfeit(p *Player, isTimeout bool) *TurnResult {
	if b.Over() {
		return &TurnResult{Turn: b.turn, Over: true, Winner: b.winner}
	}
	b.queue = nil
	b.emit(log.NewForfeitEvent(p.ID, isTimeout))
	b.finish(b.OpponentOf(p).ID)
	b.log.Info().Str("player", p.ID).Bool("timeout", isTimeout).Msg("forfeit")
	return &TurnResult{Turn: b.turn, Events: b.flush(), Over: true, Winner: b.winner}
}

// finish ends the battle. An empty winner is a draw.
func (b *Battle) finish(winner string) {
	b.winner = winner
	if winner == "" {
		b.emit(log.NewDrawEvent())
	} else {
		b.emit(log.NewVictoryEvent(winner))
	}
	for _, p := range b.players {
		p.choice = nil
		p.needSwitch = false
	}
	if err := b.transition("finish"); err != nil {
		b.fail(err)
	}
}

// checkVictory ends the battle when a side has nothing left. Both sides
// running out at once is a draw.
func (b *Battle) checkVictory() bool {
	if b.Over() {
		return true
	}
	out0, out1 := b.players[0].Defeated(), b.players[1].Defeated()
	switch {
	case out0 && out1:
		b.finish("")
	case out0:
		b.finish(b.players[1].ID)
	case out1:
		b.finish(b.players[0].ID)
	default:
		return false
	}
	return true
}
