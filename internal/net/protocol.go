package net

import "github.com/peterkuimelis/pokesim/internal/session"

// Message types for the JSON-lines protocol over TCP.

// --- Server → Client messages ---

const (
	MsgWelcome  = "welcome"
	MsgUpdate   = "update"
	MsgError    = "error"
	MsgGameOver = "game_over"
)

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "welcome"
	Room   string `json:"room,omitempty"`
	Player string `json:"player,omitempty"`

	// For "update"
	Update *session.Update `json:"update,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`

	// For "game_over"
	Winner string `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// --- Client → Server messages ---

const (
	MsgJoin    = "join"
	MsgMove    = "move"
	MsgSwitch  = "switch"
	MsgCancel  = "cancel"
	MsgForfeit = "forfeit"
)

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "move" and "switch": the decision being answered and the move
	// slot or team index.
	Seq   int `json:"seq,omitempty"`
	Index int `json:"index,omitempty"`

	// For "join" (initial handshake)
	TeamNumber int    `json:"team_number,omitempty"`
	Name       string `json:"name,omitempty"`
}
