package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// DefaultBuffer is the per-subscriber update backlog.
const DefaultBuffer = 64

// Options configures a Manager.
type Options struct {
	// Timeout forfeits a player who leaves a decision open this long.
	// Zero disables it.
	Timeout time.Duration
	Buffer  int
	Log     zerolog.Logger
}

// Manager tracks the live rooms.
type Manager struct {
	opts  Options
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewManager(opts Options) *Manager {
	if opts.Buffer <= 0 {
		opts.Buffer = DefaultBuffer
	}
	return &Manager{opts: opts, rooms: make(map[string]*Room)}
}

// Create starts a battle in a new room. Players listed in bots are played
// by their controller; everyone else submits through the room. A zero
// cfg.Seed is replaced by one derived from the room ID.
func (m *Manager) Create(ctx context.Context, cfg game.Config, bots map[string]game.Controller) (*Room, error) {
	id := uuid.NewString()
	if cfg.Seed == 0 && cfg.RNG == nil {
		cfg.Seed = game.SeedFromString(id)
	}
	if cfg.Log == nil {
		l := m.opts.Log.With().Str("room", id).Logger()
		cfg.Log = &l
	}
	b, opening, err := game.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("start battle: %w", err)
	}
	r := newRoom(id, b, opening, bots, m.opts)
	go r.run()

	m.mu.Lock()
	m.rooms[id] = r
	m.mu.Unlock()

	if err := r.start(ctx); err != nil {
		m.Close(id)
		return nil, err
	}
	m.opts.Log.Info().Str("room", id).Int("gen", cfg.Gen).Str("p1", cfg.P1.ID).Str("p2", cfg.P2.ID).Msg("room created")
	return r, nil
}

// Room looks a room up by ID.
func (m *Manager) Room(id string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return r, nil
}

// Rooms lists the room IDs in sorted order.
func (m *Manager) Rooms() []string {
	m.mu.Lock()
	ids := lo.Keys(m.rooms)
	m.mu.Unlock()
	slices.Sort(ids)
	return ids
}

// Close stops a room and forgets it.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	r, ok := m.rooms[id]
	delete(m.rooms, id)
	m.mu.Unlock()
	if ok {
		r.Close()
	}
}

// Shutdown closes every room.
func (m *Manager) Shutdown() {
	for _, id := range m.Rooms() {
		m.Close(id)
	}
}
