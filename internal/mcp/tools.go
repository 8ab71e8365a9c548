package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/session"
	"github.com/samber/lo"
)

// Tools serves battles to an MCP client. The client always plays p1; the
// other side is played by a built-in opponent.
type Tools struct {
	teamsFile string
	manager   *session.Manager

	mu       sync.Mutex
	sessions map[string]*GameSession
}

// NewTools creates the tool set. teamsFile is the YAML roster file.
func NewTools(teamsFile string, manager *session.Manager) *Tools {
	return &Tools{teamsFile: teamsFile, manager: manager, sessions: make(map[string]*GameSession)}
}

// RegisterTools adds all battle tools to the MCP server.
func RegisterTools(s *server.MCPServer, t *Tools) {
	s.AddTool(listTeamsTool(), t.handleListTeams)
	s.AddTool(startBattleTool(), t.handleStartBattle)
	s.AddTool(chooseMoveTool(), t.handleChooseMove)
	s.AddTool(chooseSwitchTool(), t.handleChooseSwitch)
	s.AddTool(getBattleTool(), t.handleGetBattle)
	s.AddTool(forfeitTool(), t.handleForfeit)
}

// --- Tool definitions ---

func listTeamsTool() mcp.Tool {
	return mcp.NewTool("list_teams",
		mcp.WithDescription("List the teams in the team file with their generation and members."),
		mcp.WithNumber("gen", mcp.Description("Only list teams for this generation (1-4)")),
	)
}

func startBattleTool() mcp.Tool {
	return mcp.NewTool("start_battle",
		mcp.WithDescription("Start a singles battle. You play p1 with `team`; the opponent plays `opponent_team`. "+
			"Both teams must be for the same generation. Returns the room ID, the opening events and your view."),
		mcp.WithString("team", mcp.Required(), mcp.Description("Name of your team in the team file")),
		mcp.WithString("opponent_team", mcp.Required(), mcp.Description("Name of the opponent's team")),
		mcp.WithString("opponent", mcp.Description("Opponent strategy: 'random' (default) or 'first'")),
		mcp.WithString("mods", mcp.Description("Comma-separated house rules, e.g. 'sleep-clause,freeze-clause'")),
		mcp.WithNumber("seed", mcp.Description("RNG seed; omitted or 0 derives one from the room ID")),
	)
}

func chooseMoveTool() mcp.Tool {
	return mcp.NewTool("choose_move",
		mcp.WithDescription("Use a move. `slot` is the slot from view.options.moves (-1 is Struggle when offered)."),
		mcp.WithString("room", mcp.Required(), mcp.Description("Room ID from start_battle")),
		mcp.WithNumber("slot", mcp.Required(), mcp.Description("Move slot to use")),
	)
}

func chooseSwitchTool() mcp.Tool {
	return mcp.NewTool("choose_switch",
		mcp.WithDescription("Switch to a team member. `index` is a team index from view.options.switches. "+
			"Required when view.options.forceSwitch is set."),
		mcp.WithString("room", mcp.Required(), mcp.Description("Room ID from start_battle")),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Team index to send in")),
	)
}

func getBattleTool() mcp.Tool {
	return mcp.NewTool("get_battle",
		mcp.WithDescription("Get the events since the last call and your current view without acting. Read-only."),
		mcp.WithString("room", mcp.Required(), mcp.Description("Room ID from start_battle")),
	)
}

func forfeitTool() mcp.Tool {
	return mcp.NewTool("forfeit",
		mcp.WithDescription("Forfeit the battle."),
		mcp.WithString("room", mcp.Required(), mcp.Description("Room ID from start_battle")),
	)
}

// --- Tool handlers ---

// TeamSummary describes one team for list_teams.
type TeamSummary struct {
	Name    string   `json:"name"`
	Gen     int      `json:"gen"`
	Pokemon []string `json:"pokemon"`
}

func (t *Tools) handleListTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tf, err := game.LoadTeams(t.teamsFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Could not load teams: %v", err), nil
	}
	teams := tf.Teams
	if gen := request.GetInt("gen", 0); gen != 0 {
		teams = tf.ForGen(gen)
	}
	out := lo.Map(teams, func(e game.TeamEntry, _ int) TeamSummary {
		return TeamSummary{
			Name: e.Name,
			Gen:  e.Gen,
			Pokemon: lo.Map(e.Pokemon, func(p game.PokemonSet, _ int) string {
				return p.Species
			}),
		}
	})
	data, err := json.Marshal(out)
	if err != nil {
		return mcp.NewToolResultErrorf("marshal error: %v", err), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (t *Tools) handleStartBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tf, err := game.LoadTeams(t.teamsFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Could not load teams: %v", err), nil
	}
	mine, ok := tf.Find(request.GetString("team", ""))
	if !ok {
		return mcp.NewToolResultErrorf("Unknown team %q. Use list_teams.", request.GetString("team", "")), nil
	}
	theirs, ok := tf.Find(request.GetString("opponent_team", ""))
	if !ok {
		return mcp.NewToolResultErrorf("Unknown team %q. Use list_teams.", request.GetString("opponent_team", "")), nil
	}
	if mine.Gen != theirs.Gen {
		return mcp.NewToolResultErrorf("Team %q is generation %d but %q is generation %d.", mine.Name, mine.Gen, theirs.Name, theirs.Gen), nil
	}

	var mods []string
	if m := strings.TrimSpace(request.GetString("mods", "")); m != "" {
		mods = lo.Map(strings.Split(m, ","), func(s string, _ int) string { return strings.TrimSpace(s) })
	}
	seed := int64(request.GetInt("seed", 0))
	opponent, err := newOpponent(request.GetString("opponent", ""), seed)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	room, err := t.manager.Create(ctx, game.Config{
		Gen:  mine.Gen,
		Mods: mods,
		Seed: seed,
		P1:   game.PlayerConfig{ID: Player, Name: "You", Team: mine.Pokemon},
		P2:   game.PlayerConfig{ID: "p2", Name: "Opponent", Team: theirs.Pokemon},
	}, map[string]game.Controller{"p2": opponent})
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start battle: %v", err), nil
	}
	sess, err := newGameSession(ctx, room)
	if err != nil {
		t.manager.Close(room.ID)
		return mcp.NewToolResultErrorf("Failed to join battle: %v", err), nil
	}

	t.mu.Lock()
	t.sessions[room.ID] = sess
	t.mu.Unlock()

	return mcp.NewToolResultText(respondJSON(sess.respond(ctx))), nil
}

func (t *Tools) handleChooseMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot := request.GetInt("slot", -2)
	return t.submit(ctx, request, game.Choice{Kind: game.ChoiceMove, Slot: slot})
}

func (t *Tools) handleChooseSwitch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index := request.GetInt("index", -1)
	return t.submit(ctx, request, game.Choice{Kind: game.ChoiceSwitch, TeamIndex: index})
}

func (t *Tools) submit(ctx context.Context, request mcp.CallToolRequest, c game.Choice) (*mcp.CallToolResult, error) {
	sess, errResult := t.session(request)
	if errResult != nil {
		return errResult, nil
	}
	if err := sess.room.Submit(ctx, Player, sess.seq(), c); err != nil {
		return mcp.NewToolResultErrorf("Choice rejected: %v", err), nil
	}
	return t.finish(ctx, sess), nil
}

func (t *Tools) handleGetBattle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := t.session(request)
	if errResult != nil {
		return errResult, nil
	}
	return t.finish(ctx, sess), nil
}

func (t *Tools) handleForfeit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := t.session(request)
	if errResult != nil {
		return errResult, nil
	}
	if err := sess.room.Forfeit(ctx, Player); err != nil && !errors.Is(err, game.ErrBattleOver) {
		return mcp.NewToolResultErrorf("Forfeit failed: %v", err), nil
	}
	return t.finish(ctx, sess), nil
}

// session looks up the room named in the request.
func (t *Tools) session(request mcp.CallToolRequest) (*GameSession, *mcp.CallToolResult) {
	id := request.GetString("room", "")
	t.mu.Lock()
	sess, ok := t.sessions[id]
	t.mu.Unlock()
	if !ok {
		return nil, mcp.NewToolResultErrorf("No battle %q. Use start_battle first.", id)
	}
	return sess, nil
}

// finish builds the response and forgets battles that have ended.
func (t *Tools) finish(ctx context.Context, sess *GameSession) *mcp.CallToolResult {
	resp := sess.respond(ctx)
	if resp.GameOver {
		t.mu.Lock()
		delete(t.sessions, sess.room.ID)
		t.mu.Unlock()
		sess.cancel()
		t.manager.Close(sess.room.ID)
	}
	return mcp.NewToolResultText(respondJSON(resp))
}
