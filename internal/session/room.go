package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/rs/zerolog"
)

// Update is one resolved decision as a single subscriber sees it. Events are
// already censored for the subscriber.
type Update struct {
	Room         string      `json:"room"`
	Seq          int         `json:"seq"`
	Turn         int         `json:"turn"`
	Events       []log.Event `json:"events"`
	View         *View       `json:"view"`
	IsSwitchTurn bool        `json:"isSwitchTurn,omitempty"`
	Over         bool        `json:"over,omitempty"`
	Winner       string      `json:"winner,omitempty"`
}

type subscriber struct {
	viewer string
	ch     chan Update
}

// Room owns exactly one battle. Every operation on the battle runs on the
// room's own goroutine, one at a time.
type Room struct {
	ID  string
	Gen int

	battle  *game.Battle
	bots    map[string]game.Controller
	timeout time.Duration
	buffer  int
	log     zerolog.Logger

	// Owned by the actor goroutine.
	seq     int
	history []log.Event
	subs    map[int]*subscriber
	nextSub int
	timers  map[string]*time.Timer
	broken  error

	reqs      chan func()
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newRoom(id string, b *game.Battle, opening []log.Event, bots map[string]game.Controller, opts Options) *Room {
	return &Room{
		ID:      id,
		Gen:     b.Gen,
		battle:  b,
		bots:    bots,
		timeout: opts.Timeout,
		buffer:  opts.Buffer,
		log:     opts.Log.With().Str("room", id).Logger(),
		history: opening,
		subs:    make(map[int]*subscriber),
		timers:  make(map[string]*time.Timer),
		reqs:    make(chan func()),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (r *Room) run() {
	defer close(r.done)
	for {
		select {
		case fn := <-r.reqs:
			fn()
		case <-r.quit:
			r.stopTimers()
			for id, s := range r.subs {
				close(s.ch)
				delete(r.subs, id)
			}
			r.log.Debug().Msg("room closed")
			return
		}
	}
}

// do runs fn on the room goroutine and waits for it.
func (r *Room) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	select {
	case r.reqs <- func() { fn(); close(finished) }:
	case <-r.quit:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-finished
	return nil
}

// Close stops the room. Subscriber channels are closed.
func (r *Room) Close() {
	r.closeOnce.Do(func() { close(r.quit) })
	<-r.done
}

// Done is closed once the room has stopped.
func (r *Room) Done() <-chan struct{} { return r.done }

// Submit applies a player's choice for decision seq. When every player has
// decided the decision resolves and all subscribers get an update.
func (r *Room) Submit(ctx context.Context, player string, seq int, c game.Choice) error {
	var err error
	derr := r.do(ctx, func() {
		var p *game.Player
		if p, err = r.player(player, seq); err != nil {
			return
		}
		if err = game.Apply(p, c); err != nil {
			return
		}
		r.stopTimer(player)
		r.settle(false)
	})
	if derr != nil {
		return derr
	}
	return err
}

// Cancel withdraws a player's choice for decision seq.
func (r *Room) Cancel(ctx context.Context, player string, seq int) error {
	var err error
	derr := r.do(ctx, func() {
		var p *game.Player
		if p, err = r.player(player, seq); err != nil {
			return
		}
		if err = p.CancelChoice(); err != nil {
			return
		}
		r.armPlayer(p)
	})
	if derr != nil {
		return derr
	}
	return err
}

// Forfeit ends the battle in the opponent's favor.
func (r *Room) Forfeit(ctx context.Context, player string) error {
	var err error
	derr := r.do(ctx, func() {
		p := r.battle.FindPlayer(player)
		if p == nil {
			err = fmt.Errorf("%w: %q", ErrUnknownPlayer, player)
			return
		}
		if r.battle.Over() {
			err = game.ErrBattleOver
			return
		}
		r.publish(r.battle.Forfeit(p, false))
	})
	if derr != nil {
		return derr
	}
	return err
}

// View returns the room as viewer sees it. An empty viewer is a spectator.
func (r *Room) View(ctx context.Context, viewer string) (*View, error) {
	var v *View
	err := r.do(ctx, func() { v = buildView(r.ID, r.seq, r.battle, viewer) })
	return v, err
}

// History returns every event so far, censored for viewer.
func (r *Room) History(ctx context.Context, viewer string) ([]log.Event, error) {
	var events []log.Event
	err := r.do(ctx, func() { events = log.CensorEvents(r.history, viewer) })
	return events, err
}

// Subscribe registers for updates as viewer sees them. The first update
// carries the history so far. The channel is closed when the battle ends or
// the room closes; cancel unsubscribes early.
func (r *Room) Subscribe(ctx context.Context, viewer string) (<-chan Update, func(), error) {
	var id int
	var sub *subscriber
	err := r.do(ctx, func() {
		id = r.nextSub
		r.nextSub++
		sub = &subscriber{viewer: viewer, ch: make(chan Update, r.buffer)}
		sub.ch <- Update{
			Room:   r.ID,
			Seq:    r.seq,
			Turn:   r.battle.Turn(),
			Events: log.CensorEvents(r.history, viewer),
			View:   buildView(r.ID, r.seq, r.battle, viewer),
			Over:   r.battle.Over(),
			Winner: r.battle.Winner(),
		}
		if r.battle.Over() {
			close(sub.ch)
			return
		}
		r.subs[id] = sub
	})
	if err != nil {
		return nil, nil, err
	}
	cancel := func() {
		_ = r.do(context.Background(), func() {
			if s, ok := r.subs[id]; ok {
				close(s.ch)
				delete(r.subs, id)
			}
		})
	}
	return sub.ch, cancel, nil
}

// start runs the bots and arms the timers for the opening decision.
func (r *Room) start(ctx context.Context) error {
	return r.do(ctx, func() { r.settle(true) })
}

func (r *Room) player(id string, seq int) (*game.Player, error) {
	if r.broken != nil {
		return nil, r.broken
	}
	p := r.battle.FindPlayer(id)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, id)
	}
	if r.battle.Over() {
		return nil, game.ErrBattleOver
	}
	if seq != r.seq {
		r.log.Warn().Str("player", id).Int("seq", seq).Int("current", r.seq).Msg("stale submission")
		return nil, fmt.Errorf("%w: got %d, room is at %d", ErrStaleSequence, seq, r.seq)
	}
	return p, nil
}

// settle lets the bots decide and resolves decisions until a human has to
// act or the battle ends. Timers are re-armed whenever a new decision
// starts.
func (r *Room) settle(fresh bool) {
	for !r.battle.Over() {
		for _, p := range r.battle.Players() {
			bot := r.bots[p.ID]
			if bot == nil || p.Decided() {
				continue
			}
			c, err := bot.Decide(context.Background(), r.battle, p)
			if err == nil {
				err = game.Apply(p, c)
			}
			if err != nil {
				r.log.Error().Err(err).Str("player", p.ID).Msg("bot choice rejected")
				r.publish(r.battle.Forfeit(p, false))
				return
			}
		}
		if !r.allDecided() {
			break
		}
		res, err := r.battle.AdvanceTurn()
		if err != nil {
			r.broken = fmt.Errorf("room %s: %w", r.ID, err)
			r.log.Error().Err(err).Msg("battle failed")
			r.stopTimers()
			return
		}
		if res == nil {
			break
		}
		r.publish(res)
		fresh = true
	}
	if fresh {
		r.arm()
	}
}

func (r *Room) allDecided() bool {
	for _, p := range r.battle.Players() {
		if !p.Decided() {
			return false
		}
	}
	return true
}

// publish records a resolved decision and fans it out.
func (r *Room) publish(res *game.TurnResult) {
	r.seq++
	r.history = append(r.history, res.Events...)
	for id, s := range r.subs {
		u := Update{
			Room:         r.ID,
			Seq:          r.seq,
			Turn:         res.Turn,
			Events:       log.CensorEvents(res.Events, s.viewer),
			View:         buildView(r.ID, r.seq, r.battle, s.viewer),
			IsSwitchTurn: res.IsSwitchTurn,
			Over:         res.Over,
			Winner:       res.Winner,
		}
		select {
		case s.ch <- u:
		default:
			r.log.Warn().Int("subscriber", id).Str("viewer", s.viewer).Msg("subscriber too slow, dropping")
			close(s.ch)
			delete(r.subs, id)
			continue
		}
		if res.Over {
			close(s.ch)
			delete(r.subs, id)
		}
	}
	if res.Over {
		r.stopTimers()
		r.log.Info().Str("winner", res.Winner).Int("turn", res.Turn).Msg("battle over")
	}
}

// arm starts an inactivity timer for every human player who has to decide.
func (r *Room) arm() {
	r.stopTimers()
	if r.timeout <= 0 || r.battle.Over() {
		return
	}
	for _, p := range r.battle.Players() {
		r.armPlayer(p)
	}
}

func (r *Room) armPlayer(p *game.Player) {
	if r.timeout <= 0 || r.bots[p.ID] != nil || p.Decided() {
		return
	}
	r.stopTimer(p.ID)
	id, seq := p.ID, r.seq
	r.timers[id] = time.AfterFunc(r.timeout, func() {
		_ = r.do(context.Background(), func() { r.expire(id, seq) })
	})
}

// expire forfeits a player who let decision seq run out.
func (r *Room) expire(id string, seq int) {
	p := r.battle.FindPlayer(id)
	if seq != r.seq || r.battle.Over() || p.Decided() {
		return
	}
	delete(r.timers, id)
	r.log.Info().Str("player", id).Int("seq", seq).Msg("inactivity timeout")
	r.publish(r.battle.Forfeit(p, true))
}

func (r *Room) stopTimer(id string) {
	if t, ok := r.timers[id]; ok {
		t.Stop()
		delete(r.timers, id)
	}
}

func (r *Room) stopTimers() {
	for id := range r.timers {
		r.stopTimer(id)
	}
}
