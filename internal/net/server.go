package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/session"
	"github.com/rs/zerolog"
)

// Server hosts a battle between the local player and one TCP client.
type Server struct {
	TeamFile string
	Port     string
	HostTeam int // host's team number (1-indexed)
	HostName string
	Mods     []string
	Seed     int64
	Timeout  time.Duration
	Log      zerolog.Logger
}

// Run starts the server, waits for a client to join, then runs the battle.
func (s *Server) Run(ctx context.Context) error {
	teams, err := game.LoadTeams(s.TeamFile)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	host, err := teams.TeamByNumber(s.HostTeam)
	if err != nil {
		return fmt.Errorf("host team: %w", err)
	}

	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for opponent on port %s...\n", s.Port)

	// Accept exactly one connection (the joiner)
	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	s.Log.Info().Str("remote", conn.RemoteAddr().String()).Msg("opponent connected")

	// Read the joiner's team choice
	var joinMsg ClientMessage
	if err := json.NewDecoder(conn).Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	if joinMsg.Type != MsgJoin {
		return fmt.Errorf("expected join, got %q", joinMsg.Type)
	}
	joinerNumber := joinMsg.TeamNumber
	if joinerNumber == 0 {
		joinerNumber = 2
	}
	joiner, err := teams.TeamByNumber(joinerNumber)
	if err != nil {
		_ = json.NewEncoder(conn).Encode(ServerMessage{Type: MsgError, Error: err.Error()})
		return fmt.Errorf("joiner team: %w", err)
	}
	if joiner.Gen != host.Gen {
		msg := fmt.Sprintf("team %q is for generation %d, the host plays generation %d", joiner.Name, joiner.Gen, host.Gen)
		_ = json.NewEncoder(conn).Encode(ServerMessage{Type: MsgError, Error: msg})
		return fmt.Errorf("joiner team: %s", msg)
	}

	fmt.Printf("Host: %s (%d pokemon)\n", host.Name, len(host.Pokemon))
	fmt.Printf("Joiner: %s (%d pokemon)\n", joiner.Name, len(joiner.Pokemon))

	mgr := session.NewManager(session.Options{Timeout: s.Timeout, Log: s.Log})
	defer mgr.Shutdown()
	room, err := mgr.Create(ctx, game.Config{
		Gen:  host.Gen,
		Mods: s.Mods,
		Seed: s.Seed,
		P1:   game.PlayerConfig{ID: "p1", Name: orDefault(s.HostName, "Host"), Team: host.Pokemon},
		P2:   game.PlayerConfig{ID: "p2", Name: orDefault(joinMsg.Name, "Guest"), Team: joiner.Pokemon},
	}, nil)
	if err != nil {
		_ = json.NewEncoder(conn).Encode(ServerMessage{Type: MsgError, Error: err.Error()})
		return err
	}

	// Create a pipe for the host's local connection
	hostConn, hostServerConn := net.Pipe()
	defer hostServerConn.Close()

	// Player p1 = host, p2 = joiner
	hostPC := NewPlayerConn(hostServerConn, room, "p1", s.Log)
	joinerPC := NewPlayerConn(conn, room, "p2", s.Log)

	joinerDone := make(chan struct{})
	for _, pc := range []*PlayerConn{hostPC, joinerPC} {
		go func() {
			if err := pc.Serve(ctx); err != nil {
				s.Log.Warn().Err(err).Str("player", pc.player).Msg("connection ended")
			}
			if pc == joinerPC {
				close(joinerDone)
			}
		}()
	}

	// The host's REPL returning (game over or quit) ends the session.
	client := NewClient(hostConn, os.Stdin, os.Stdout)
	err = client.RunREPL(ctx)

	// Let the joiner see the final messages before the connection closes.
	select {
	case <-joinerDone:
	case <-time.After(2 * time.Second):
	}
	return err
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
