package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/rs/zerolog"
)

type funcSource func(n int) int

func (f funcSource) IntN(n int) int { return f(n) }

// calm hits every accuracy roll and keeps every other roll at its maximum.
func calm() *game.RNG {
	return game.NewRNGWithSource(funcSource(func(n int) int {
		if n == 100 || n == 256 {
			return 0
		}
		return n - 1
	}))
}

func battleConfig() game.Config {
	return game.Config{
		Gen:  1,
		Mods: []string{"no-crit", "max-damage-roll"},
		RNG:  calm(),
		P1:   game.PlayerConfig{ID: "p1", Team: []game.PokemonSet{{Species: "snorlax", Moves: []string{"tackle"}}}},
		P2:   game.PlayerConfig{ID: "p2", Team: []game.PokemonSet{{Species: "chansey", Moves: []string{"tackle"}}}},
	}
}

var move0 = game.Choice{Kind: game.ChoiceMove, Slot: 0}

func openRoom(t *testing.T, opts Options, bots map[string]game.Controller) (*Manager, *Room) {
	t.Helper()
	opts.Log = zerolog.Nop()
	m := NewManager(opts)
	t.Cleanup(m.Shutdown)
	r, err := m.Create(context.Background(), battleConfig(), bots)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return m, r
}

func subscribe(t *testing.T, r *Room, viewer string) <-chan Update {
	t.Helper()
	ch, cancel, err := r.Subscribe(context.Background(), viewer)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	t.Cleanup(cancel)
	first := <-ch
	if first.Seq != 0 || len(first.Events) == 0 {
		t.Fatalf("Expected the opening update at seq 0, got seq %d with %d events", first.Seq, len(first.Events))
	}
	return ch
}

func next(t *testing.T, ch <-chan Update) Update {
	t.Helper()
	select {
	case u, ok := <-ch:
		if !ok {
			t.Fatal("update channel closed")
		}
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an update")
	}
	return Update{}
}

func damageTo(events []log.Event, player string) *log.Event {
	for i, e := range events {
		if e.Type == log.EventDamage && e.Player == player {
			return &events[i]
		}
	}
	return nil
}

// TestSubmitResolvesWhenBothDecide: nothing happens until the second
// choice arrives.
func TestSubmitResolvesWhenBothDecide(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, nil)
	ch := subscribe(t, r, "p1")

	if err := r.Submit(ctx, "p1", 0, move0); err != nil {
		t.Fatalf("p1 submit: %v", err)
	}
	select {
	case u := <-ch:
		t.Fatalf("Expected no update before p2 decides, got seq %d", u.Seq)
	default:
	}
	v, err := r.View(ctx, "p1")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !v.Decided {
		t.Error("Expected p1 to be marked decided")
	}

	if err := r.Submit(ctx, "p2", 0, move0); err != nil {
		t.Fatalf("p2 submit: %v", err)
	}
	u := next(t, ch)
	if u.Seq != 1 || u.Turn != 1 {
		t.Errorf("Expected seq 1 turn 1, got seq %d turn %d", u.Seq, u.Turn)
	}
	if len(u.Events) == 0 {
		t.Error("Expected turn events")
	}
	if u.View == nil || u.View.Seq != 1 {
		t.Error("Expected a view at seq 1")
	}
}

// TestUpdatesAreCensoredPerViewer: exact HP only for one's own side.
func TestUpdatesAreCensoredPerViewer(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, nil)
	mine := subscribe(t, r, "p1")
	spectator := subscribe(t, r, "")

	_ = r.Submit(ctx, "p1", 0, move0)
	_ = r.Submit(ctx, "p2", 0, move0)

	u := next(t, mine)
	own := damageTo(u.Events, "p1")
	foe := damageTo(u.Events, "p2")
	if own == nil || foe == nil {
		t.Fatalf("Expected damage to both sides:\n%s", log.FormatAll(u.Events))
	}
	if own.HP.Censored || own.Amount == 0 {
		t.Error("Expected exact HP for the viewer's own combatant")
	}
	if !foe.HP.Censored || foe.Amount != 0 || foe.HP.Max != 100 {
		t.Errorf("Expected censored foe HP, got %+v amount %d", *foe.HP, foe.Amount)
	}
	if u.View.Opponent.Active.HP.Max != 100 || u.View.Opponent.Team != nil {
		t.Error("Expected the opponent view to hide exact HP and the roster")
	}

	s := next(t, spectator)
	if d := damageTo(s.Events, "p1"); d == nil || !d.HP.Censored {
		t.Error("Expected spectators to see censored HP for both sides")
	}
	if len(s.View.Sides) != 2 {
		t.Errorf("Expected a spectator view of two sides, got %d", len(s.View.Sides))
	}
}

// TestStaleSequenceRejected: a submission for an old decision is refused.
func TestStaleSequenceRejected(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, nil)
	_ = r.Submit(ctx, "p1", 0, move0)
	_ = r.Submit(ctx, "p2", 0, move0)

	err := r.Submit(ctx, "p1", 0, move0)
	if !errors.Is(err, ErrStaleSequence) {
		t.Fatalf("Expected ErrStaleSequence, got %v", err)
	}
	v, _ := r.View(ctx, "p1")
	if v.Decided {
		t.Error("Expected the stale submission to leave p1 undecided")
	}
	if err := r.Submit(ctx, "p1", 1, move0); err != nil {
		t.Errorf("Expected the current sequence to be accepted, got %v", err)
	}
}

// TestInvalidChoiceLeavesRoomUnchanged: engine rejections pass through.
func TestInvalidChoiceLeavesRoomUnchanged(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, nil)

	err := r.Submit(ctx, "p1", 0, game.Choice{Kind: game.ChoiceMove, Slot: 3})
	if !errors.Is(err, game.ErrInvalidChoice) {
		t.Fatalf("Expected ErrInvalidChoice, got %v", err)
	}
	if err := r.Submit(ctx, "nobody", 0, move0); !errors.Is(err, ErrUnknownPlayer) {
		t.Errorf("Expected ErrUnknownPlayer, got %v", err)
	}
	v, _ := r.View(ctx, "p1")
	if v.Decided || v.Seq != 0 {
		t.Error("Expected the room to be unchanged")
	}
}

// TestCancelChoice: a choice can be withdrawn before the decision resolves.
func TestCancelChoice(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, nil)

	_ = r.Submit(ctx, "p1", 0, move0)
	if err := r.Cancel(ctx, "p1", 0); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	v, _ := r.View(ctx, "p1")
	if v.Decided {
		t.Error("Expected p1 to be undecided after cancel")
	}
	if err := r.Cancel(ctx, "p1", 0); !errors.Is(err, game.ErrNoDecision) {
		t.Errorf("Expected ErrNoDecision cancelling twice, got %v", err)
	}
}

// TestBotOpponentAnswersImmediately: a bot side never holds up a turn.
func TestBotOpponentAnswersImmediately(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, map[string]game.Controller{"p2": game.FirstLegal{}})
	ch := subscribe(t, r, "p1")

	if err := r.Submit(ctx, "p1", 0, move0); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	u := next(t, ch)
	if u.Seq != 1 {
		t.Errorf("Expected the turn to resolve, got seq %d", u.Seq)
	}
	if len(moves(u.Events)) != 2 {
		t.Errorf("Expected both sides to move:\n%s", log.FormatAll(u.Events))
	}
}

func moves(events []log.Event) []log.Event {
	var out []log.Event
	for _, e := range events {
		if e.Type == log.EventMove {
			out = append(out, e)
		}
	}
	return out
}

// TestForfeitEndsBattle: the opponent wins and subscriptions close.
func TestForfeitEndsBattle(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, nil)
	ch := subscribe(t, r, "p2")

	if err := r.Forfeit(ctx, "p1"); err != nil {
		t.Fatalf("Forfeit: %v", err)
	}
	u := next(t, ch)
	if !u.Over || u.Winner != "p2" {
		t.Errorf("Expected p2 to win, got over=%v winner=%q", u.Over, u.Winner)
	}
	if _, ok := <-ch; ok {
		t.Error("Expected the channel to close after the final update")
	}
	if err := r.Submit(ctx, "p2", 1, move0); !errors.Is(err, game.ErrBattleOver) {
		t.Errorf("Expected ErrBattleOver, got %v", err)
	}
	if err := r.Forfeit(ctx, "p2"); !errors.Is(err, game.ErrBattleOver) {
		t.Errorf("Expected ErrBattleOver forfeiting twice, got %v", err)
	}
}

// TestTimeoutForfeitsIdlePlayer: the player who never decided loses.
func TestTimeoutForfeitsIdlePlayer(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{Timeout: 30 * time.Millisecond}, nil)
	ch := subscribe(t, r, "")

	if err := r.Submit(ctx, "p1", 0, move0); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	u := next(t, ch)
	if !u.Over || u.Winner != "p1" {
		t.Fatalf("Expected p2 to time out, got over=%v winner=%q", u.Over, u.Winner)
	}
	var forfeit *log.Event
	for i, e := range u.Events {
		if e.Type == log.EventForfeit {
			forfeit = &u.Events[i]
		}
	}
	if forfeit == nil || forfeit.Player != "p2" || forfeit.Info != log.InfoTimeout {
		t.Errorf("Expected a timeout forfeit by p2:\n%s", log.FormatAll(u.Events))
	}
}

// TestHistoryReplaysEverything: late joiners get the full censored log.
func TestHistoryReplaysEverything(t *testing.T) {
	ctx := context.Background()
	_, r := openRoom(t, Options{}, nil)
	_ = r.Submit(ctx, "p1", 0, move0)
	_ = r.Submit(ctx, "p2", 0, move0)

	events, err := r.History(ctx, "p2")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	turns := 0
	for _, e := range events {
		if e.Type == log.EventTurn {
			turns++
		}
	}
	if turns != 1 {
		t.Errorf("Expected one turn marker:\n%s", log.FormatAll(events))
	}
	if d := damageTo(events, "p1"); d == nil || !d.HP.Censored {
		t.Error("Expected p1's damage censored for p2")
	}
}

// TestManagerLookups: rooms are found by ID until closed.
func TestManagerLookups(t *testing.T) {
	m, r := openRoom(t, Options{}, nil)

	got, err := m.Room(r.ID)
	if err != nil || got != r {
		t.Fatalf("Expected to find room %s, got %v", r.ID, err)
	}
	if ids := m.Rooms(); len(ids) != 1 || ids[0] != r.ID {
		t.Errorf("Expected one listed room, got %v", ids)
	}

	m.Close(r.ID)
	if _, err := m.Room(r.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
	if err := r.Submit(context.Background(), "p1", 0, move0); !errors.Is(err, ErrRoomClosed) {
		t.Errorf("Expected ErrRoomClosed, got %v", err)
	}
}

// TestCreateRejectsBadConfig: engine validation surfaces from Create.
func TestCreateRejectsBadConfig(t *testing.T) {
	m := NewManager(Options{Log: zerolog.Nop()})
	cfg := battleConfig()
	cfg.Gen = 9
	if _, err := m.Create(context.Background(), cfg, nil); !errors.Is(err, game.ErrUnsupportedGen) {
		t.Errorf("Expected ErrUnsupportedGen, got %v", err)
	}
	if len(m.Rooms()) != 0 {
		t.Error("Expected no room to be registered")
	}
}
