package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/peterkuimelis/pokesim/internal/session"
)

// Player is the side the MCP client plays in every battle it starts.
const Player = "p1"

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Room     string        `json:"room"`
	Events   []string      `json:"events"`
	View     *session.View `json:"view,omitempty"`
	GameOver bool          `json:"game_over"`
	Winner   string        `json:"winner,omitempty"`
	Result   string        `json:"result,omitempty"`
}

// GameSession follows one room from the MCP client's seat. Updates are
// queued on the room subscription and drained by each tool call.
type GameSession struct {
	room    *session.Room
	updates <-chan session.Update
	cancel  func()

	mu       sync.Mutex
	view     *session.View
	gameOver bool
	winner   string
}

func newGameSession(ctx context.Context, room *session.Room) (*GameSession, error) {
	updates, cancel, err := room.Subscribe(ctx, Player)
	if err != nil {
		return nil, err
	}
	return &GameSession{room: room, updates: updates, cancel: cancel}, nil
}

// drainEvents collects every queued update. Rooms publish before a call
// returns, so whatever the last call caused is already queued.
func (s *GameSession) drainEvents() []log.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var events []log.Event
	for {
		select {
		case u, ok := <-s.updates:
			if !ok {
				s.updates = nil
				return events
			}
			events = append(events, u.Events...)
			s.view = u.View
			if u.Over {
				s.gameOver, s.winner = true, u.Winner
			}
		default:
			return events
		}
	}
}

// seq is the decision the client is answering.
func (s *GameSession) seq() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return 0
	}
	return s.view.Seq
}

// respond drains the queue and builds the tool response around the
// room's current view.
func (s *GameSession) respond(ctx context.Context) *ToolResponse {
	events := s.drainEvents()
	v, err := s.room.View(ctx, Player)
	s.mu.Lock()
	if err == nil {
		s.view = v
	}
	defer s.mu.Unlock()
	resp := &ToolResponse{
		Room:     s.room.ID,
		Events:   make([]string, 0, len(events)),
		View:     s.view,
		GameOver: s.gameOver,
		Winner:   s.winner,
	}
	for _, e := range events {
		resp.Events = append(resp.Events, log.FormatEvent(e))
	}
	if s.gameOver {
		switch s.winner {
		case "":
			resp.Result = "Draw."
		case Player:
			resp.Result = "You won."
		default:
			resp.Result = "You lost."
		}
	}
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
