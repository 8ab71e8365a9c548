package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/session"
	"github.com/rs/zerolog"
)

// PlayerConn seats one player of a room on a connection: updates go out
// as JSON lines and client messages come back in as choices.
type PlayerConn struct {
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	room   *session.Room
	player string
	log    zerolog.Logger
	mu     sync.Mutex
}

// NewPlayerConn creates a bridge for the given player.
func NewPlayerConn(conn net.Conn, room *session.Room, player string, logger zerolog.Logger) *PlayerConn {
	return &PlayerConn{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    json.NewDecoder(conn),
		room:   room,
		player: player,
		log:    logger.With().Str("player", player).Logger(),
	}
}

// send writes a server message to the client.
func (pc *PlayerConn) send(msg ServerMessage) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.enc.Encode(msg)
}

func (pc *PlayerConn) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := pc.dec.Decode(&msg)
	return msg, err
}

// Serve pushes room updates to the client and applies its messages until
// the battle ends or the connection drops. It returns nil once the game
// over message has been sent.
func (pc *PlayerConn) Serve(ctx context.Context) error {
	updates, cancel, err := pc.room.Subscribe(ctx, pc.player)
	if err != nil {
		return err
	}
	defer cancel()

	if err := pc.send(ServerMessage{Type: MsgWelcome, Room: pc.room.ID, Player: pc.player}); err != nil {
		return fmt.Errorf("send welcome: %w", err)
	}

	readErr := make(chan error, 1)
	go func() { readErr <- pc.readLoop(ctx) }()

	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if err := pc.send(ServerMessage{Type: MsgUpdate, Update: &u}); err != nil {
				return fmt.Errorf("send update: %w", err)
			}
			if u.Over {
				return pc.send(ServerMessage{Type: MsgGameOver, Winner: u.Winner, Result: result(u.Winner, pc.player)})
			}
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (pc *PlayerConn) readLoop(ctx context.Context) error {
	for {
		msg, err := pc.recv()
		if err != nil {
			return err
		}
		if err := pc.handle(ctx, msg); err != nil {
			pc.log.Debug().Err(err).Str("type", msg.Type).Msg("rejected")
			if err := pc.send(ServerMessage{Type: MsgError, Error: err.Error()}); err != nil {
				return err
			}
		}
	}
}

func (pc *PlayerConn) handle(ctx context.Context, msg ClientMessage) error {
	return Dispatch(ctx, pc.room, pc.player, msg)
}

// Dispatch applies one client message to the room on player's behalf.
func Dispatch(ctx context.Context, room *session.Room, player string, msg ClientMessage) error {
	switch msg.Type {
	case MsgMove:
		return room.Submit(ctx, player, msg.Seq, game.Choice{Kind: game.ChoiceMove, Slot: msg.Index})
	case MsgSwitch:
		return room.Submit(ctx, player, msg.Seq, game.Choice{Kind: game.ChoiceSwitch, TeamIndex: msg.Index})
	case MsgCancel:
		return room.Cancel(ctx, player, msg.Seq)
	case MsgForfeit:
		return room.Forfeit(ctx, player)
	default:
		return fmt.Errorf("unknown message type %q", msg.Type)
	}
}

func result(winner, player string) string {
	switch winner {
	case "":
		return "Draw."
	case player:
		return "You won!"
	default:
		return "You lost."
	}
}
