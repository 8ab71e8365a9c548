package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/game"
	pokenet "github.com/peterkuimelis/pokesim/internal/net"
	"github.com/peterkuimelis/pokesim/internal/session"
	"github.com/rs/zerolog"
)

//go:embed static
var staticFiles embed.FS

// SpeciesInfo is the JSON representation of a species for /api/species.
type SpeciesInfo struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Types     []string       `json:"types"`
	BaseStats map[string]int `json:"baseStats"`
	Abilities []string       `json:"abilities,omitempty"`
}

// MoveInfo is the JSON representation of a move for /api/moves.
type MoveInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    int    `json:"power,omitempty"`
	Accuracy int    `json:"accuracy,omitempty"`
	PP       int    `json:"pp"`
	Priority int    `json:"priority,omitempty"`
}

// Server is the pokesim web UI server.
type Server struct {
	teamsFile string
	manager   *session.Manager
	log       zerolog.Logger
	mux       *http.ServeMux
}

// NewServer creates a new web server. Battles started from the browser
// are hosted by manager.
func NewServer(teamsFile string, manager *session.Manager, logger zerolog.Logger) *Server {
	s := &Server{
		teamsFile: teamsFile,
		manager:   manager,
		log:       logger,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Embedded static files
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	// Static CSS/JS
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// API endpoints
	s.mux.HandleFunc("GET /api/species", s.handleSpecies)
	s.mux.HandleFunc("GET /api/moves", s.handleMoves)
	s.mux.HandleFunc("GET /api/teams", s.handleTeams)
	s.mux.HandleFunc("GET /api/rooms", s.handleRooms)

	// Battle socket
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler { return s.mux }

// dexFor resolves the ?gen= parameter, defaulting to generation 4.
func dexFor(w http.ResponseWriter, r *http.Request) (*dex.Dex, bool) {
	gen := 4
	if g := r.URL.Query().Get("gen"); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil {
			http.Error(w, "gen must be a number", http.StatusBadRequest)
			return nil, false
		}
		gen = n
	}
	d, err := dex.ForGen(gen)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return d, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	d, ok := dexFor(w, r)
	if !ok {
		return
	}
	var out []SpeciesInfo
	for _, id := range d.SpeciesIDs() {
		sp, _ := d.Species(id)
		info := SpeciesInfo{ID: sp.ID, Name: sp.Name, BaseStats: make(map[string]int), Abilities: sp.Abilities}
		for _, t := range sp.Types {
			info.Types = append(info.Types, t.String())
		}
		for i, v := range sp.BaseStats {
			info.BaseStats[dex.Stat(i).String()] = v
		}
		out = append(out, info)
	}
	writeJSON(w, out)
}

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	d, ok := dexFor(w, r)
	if !ok {
		return
	}
	var out []MoveInfo
	for _, id := range d.MoveIDs() {
		m, _ := d.Move(id)
		out = append(out, MoveInfo{
			ID:       m.ID,
			Name:     m.Name,
			Type:     m.Type.String(),
			Category: m.Category.String(),
			Power:    m.Power,
			Accuracy: m.Accuracy,
			PP:       m.PP,
			Priority: m.Priority,
		})
	}
	writeJSON(w, out)
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.manager.Rooms())
}

// startMessage is the browser's first message on /ws: either start a
// battle against a built-in opponent or watch a running room.
type startMessage struct {
	Type         string   `json:"type"` // "start" or "watch"
	Team         string   `json:"team"`
	OpponentTeam string   `json:"opponent_team"`
	Mods         []string `json:"mods"`
	Seed         int64    `json:"seed"`
	Room         string   `json:"room"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket accept")
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	var start startMessage
	if err := wsjson.Read(ctx, wsConn, &start); err != nil {
		s.log.Debug().Err(err).Msg("websocket read start")
		return
	}

	var room *session.Room
	player := ""
	switch start.Type {
	case "start":
		room, err = s.startBattle(ctx, start)
		player = "p1"
	case "watch":
		room, err = s.manager.Room(start.Room)
	default:
		err = errors.New("expected a start or watch message")
	}
	if err != nil {
		wsjson.Write(ctx, wsConn, pokenet.ServerMessage{Type: pokenet.MsgError, Error: err.Error()})
		wsConn.Close(websocket.StatusPolicyViolation, "could not join")
		return
	}
	if player != "" {
		defer s.manager.Close(room.ID)
	}

	if err := s.bridge(ctx, wsConn, room, player); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Debug().Err(err).Str("room", room.ID).Msg("websocket ended")
	}
	wsConn.Close(websocket.StatusNormalClosure, "battle ended")
}

func (s *Server) startBattle(ctx context.Context, start startMessage) (*session.Room, error) {
	tf, err := game.LoadTeams(s.teamsFile)
	if err != nil {
		return nil, err
	}
	mine, ok := tf.Find(start.Team)
	if !ok {
		return nil, errors.New("unknown team " + strconv.Quote(start.Team))
	}
	theirs, ok := tf.Find(start.OpponentTeam)
	if !ok {
		return nil, errors.New("unknown team " + strconv.Quote(start.OpponentTeam))
	}
	if mine.Gen != theirs.Gen {
		return nil, errors.New("teams are for different generations")
	}
	return s.manager.Create(ctx, game.Config{
		Gen:  mine.Gen,
		Mods: start.Mods,
		Seed: start.Seed,
		P1:   game.PlayerConfig{ID: "p1", Name: "You", Team: mine.Pokemon},
		P2:   game.PlayerConfig{ID: "p2", Name: "Opponent", Team: theirs.Pokemon},
	}, map[string]game.Controller{"p2": &game.RandomController{RNG: game.NewRNG(start.Seed + 1), SwitchWeight: 1}})
}

// bridge relays room updates to the browser and browser messages to the
// room, speaking the same messages as the TCP protocol. Spectators only
// receive.
func (s *Server) bridge(ctx context.Context, c *websocket.Conn, room *session.Room, player string) error {
	updates, cancel, err := room.Subscribe(ctx, player)
	if err != nil {
		return err
	}
	defer cancel()

	if err := wsjson.Write(ctx, c, pokenet.ServerMessage{Type: pokenet.MsgWelcome, Room: room.ID, Player: player}); err != nil {
		return err
	}

	readErr := make(chan error, 1)
	if player != "" {
		go func() {
			for {
				var msg pokenet.ClientMessage
				if err := wsjson.Read(ctx, c, &msg); err != nil {
					readErr <- err
					return
				}
				if err := pokenet.Dispatch(ctx, room, player, msg); err != nil {
					if werr := wsjson.Write(ctx, c, pokenet.ServerMessage{Type: pokenet.MsgError, Error: err.Error()}); werr != nil {
						readErr <- werr
						return
					}
				}
			}
		}()
	}

	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			if err := wsjson.Write(ctx, c, pokenet.ServerMessage{Type: pokenet.MsgUpdate, Update: &u}); err != nil {
				return err
			}
			if u.Over {
				return wsjson.Write(ctx, c, pokenet.ServerMessage{Type: pokenet.MsgGameOver, Winner: u.Winner})
			}
		case err := <-readErr:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
