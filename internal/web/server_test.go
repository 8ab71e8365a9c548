package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	pokenet "github.com/peterkuimelis/pokesim/internal/net"
	"github.com/peterkuimelis/pokesim/internal/session"
	"github.com/rs/zerolog"
)

const teamsYAML = `
teams:
  - name: kanto
    gen: 1
    pokemon:
      - species: snorlax
        moves: [body-slam, rest]
      - species: chansey
        moves: [seismic-toss]
  - name: rival
    gen: 1
    pokemon:
      - species: alakazam
        moves: [psychic]
`

func newTestServer(t *testing.T) (*httptest.Server, *session.Manager) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte(teamsYAML), 0o644); err != nil {
		t.Fatalf("write teams: %v", err)
	}
	mgr := session.NewManager(session.Options{Log: zerolog.Nop()})
	t.Cleanup(mgr.Shutdown)
	ts := httptest.NewServer(NewServer(path, mgr, zerolog.Nop()).Handler())
	t.Cleanup(ts.Close)
	return ts, mgr
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

// TestIndexPage: the embedded page is served at the root.
func TestIndexPage(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Errorf("Expected the index page, got %d %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	if code := getJSON(t, ts.URL+"/nope", nil); code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown paths, got %d", code)
	}
}

// TestSpeciesEndpointFollowsGeneration: later species only appear in
// their generation.
func TestSpeciesEndpointFollowsGeneration(t *testing.T) {
	ts, _ := newTestServer(t)

	has := func(list []SpeciesInfo, id string) *SpeciesInfo {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
		return nil
	}

	var gen1, gen2 []SpeciesInfo
	getJSON(t, ts.URL+"/api/species?gen=1", &gen1)
	getJSON(t, ts.URL+"/api/species?gen=2", &gen2)
	snorlax := has(gen1, "snorlax")
	if snorlax == nil || len(snorlax.BaseStats) != 6 {
		t.Fatalf("Expected snorlax with base stats in gen 1")
	}
	if has(gen1, "skarmory") != nil {
		t.Error("Expected no skarmory in gen 1")
	}
	if has(gen2, "skarmory") == nil {
		t.Error("Expected skarmory in gen 2")
	}
}

// TestMovesEndpointRejectsBadGen: generations outside 1-4 are a 400.
func TestMovesEndpointRejectsBadGen(t *testing.T) {
	ts, _ := newTestServer(t)
	var moves []MoveInfo
	if code := getJSON(t, ts.URL+"/api/moves?gen=3", &moves); code != http.StatusOK || len(moves) == 0 {
		t.Errorf("Expected gen 3 moves, got %d with %d moves", code, len(moves))
	}
	if code := getJSON(t, ts.URL+"/api/moves?gen=9", nil); code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", code)
	}
	if code := getJSON(t, ts.URL+"/api/moves?gen=x", nil); code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", code)
	}
}

// TestTeamsEndpoint: teams are numbered in file order with display names.
func TestTeamsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)
	var teams []TeamInfo
	getJSON(t, ts.URL+"/api/teams", &teams)
	if len(teams) != 2 {
		t.Fatalf("Expected 2 teams, got %d", len(teams))
	}
	if teams[0].Number != 1 || teams[0].Name != "kanto" || teams[0].Pokemon[0] != "Snorlax" {
		t.Errorf("Unexpected first team %+v", teams[0])
	}
}

// TestWebSocketBattle: start a battle, get the opening update, forfeit.
func TestWebSocketBattle(t *testing.T) {
	ts, mgr := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.CloseNow()

	if err := wsjson.Write(ctx, c, startMessage{Type: "start", Team: "kanto", OpponentTeam: "rival", Seed: 11}); err != nil {
		t.Fatalf("write start: %v", err)
	}

	var msg pokenet.ServerMessage
	if err := wsjson.Read(ctx, c, &msg); err != nil || msg.Type != pokenet.MsgWelcome || msg.Player != "p1" {
		t.Fatalf("Expected welcome, got %+v (%v)", msg, err)
	}
	if rooms := mgr.Rooms(); len(rooms) != 1 || rooms[0] != msg.Room {
		t.Errorf("Expected the room to be listed, got %v", rooms)
	}

	msg = pokenet.ServerMessage{}
	if err := wsjson.Read(ctx, c, &msg); err != nil || msg.Type != pokenet.MsgUpdate {
		t.Fatalf("Expected the opening update, got %+v (%v)", msg, err)
	}
	if len(msg.Update.View.You.Team) != 2 {
		t.Errorf("Expected to see our own roster of 2")
	}

	if err := wsjson.Write(ctx, c, pokenet.ClientMessage{Type: pokenet.MsgForfeit}); err != nil {
		t.Fatalf("write forfeit: %v", err)
	}
	msg = pokenet.ServerMessage{}
	if err := wsjson.Read(ctx, c, &msg); err != nil || msg.Type != pokenet.MsgUpdate || !msg.Update.Over {
		t.Fatalf("Expected the final update, got %+v (%v)", msg, err)
	}
	msg = pokenet.ServerMessage{}
	if err := wsjson.Read(ctx, c, &msg); err != nil || msg.Type != pokenet.MsgGameOver || msg.Winner != "p2" {
		t.Fatalf("Expected game over won by p2, got %+v (%v)", msg, err)
	}
}

// TestWebSocketRejectsUnknownTeam: a bad start message is answered with an
// error.
func TestWebSocketRejectsUnknownTeam(t *testing.T) {
	ts, _ := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.CloseNow()

	_ = wsjson.Write(ctx, c, startMessage{Type: "start", Team: "nobody", OpponentTeam: "rival"})
	var msg pokenet.ServerMessage
	if err := wsjson.Read(ctx, c, &msg); err != nil || msg.Type != pokenet.MsgError {
		t.Fatalf("Expected an error message, got %+v (%v)", msg, err)
	}
}
