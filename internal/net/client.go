package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/peterkuimelis/pokesim/internal/log"
	"github.com/peterkuimelis/pokesim/internal/session"
)

// Client connects to a battle server and provides a terminal REPL.
type Client struct {
	conn   net.Conn
	in     *bufio.Reader
	out    io.Writer
	player string
}

// action is one numbered entry of the prompt.
type action struct {
	desc string
	msg  ClientMessage
}

// NewClient wraps an established connection.
func NewClient(conn net.Conn, in io.Reader, out io.Writer) *Client {
	return &Client{conn: conn, in: bufio.NewReader(in), out: out}
}

// Connect connects to a server, sends the team choice, and runs the REPL.
func Connect(ctx context.Context, addr string, teamNumber int, name string, in io.Reader, out io.Writer) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	// Send join message with team choice
	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: MsgJoin, TeamNumber: teamNumber, Name: name}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Fprintln(out, "Connected! Waiting for the battle to start...")

	return NewClient(conn, in, out).RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	var last *session.Update

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		var prompt *session.Update
		switch msg.Type {
		case MsgWelcome:
			c.player = msg.Player
			fmt.Fprintf(c.out, "Joined room %s as %s\n", msg.Room, msg.Player)

		case MsgUpdate:
			if msg.Update == nil {
				continue
			}
			last = msg.Update
			c.renderEvents(last.Events)
			if !last.Over {
				prompt = last
			}

		case MsgError:
			fmt.Fprintf(c.out, "Rejected: %s\n", msg.Error)
			prompt = last

		case MsgGameOver:
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, "          BATTLE OVER")
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, msg.Result)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			return nil
		}

		if prompt == nil || prompt.View == nil {
			continue
		}
		actions := c.actions(prompt)
		if len(actions) == 0 {
			continue
		}
		c.renderView(prompt.View)
		c.renderActions(actions)
		idx, err := c.readChoice(len(actions))
		if err != nil {
			return err
		}
		if err := enc.Encode(actions[idx].msg); err != nil {
			return fmt.Errorf("send choice: %w", err)
		}
	}
}

// actions lists what the player can send for the update's decision.
func (c *Client) actions(u *session.Update) []action {
	v := u.View
	if v.Options == nil || v.Decided || v.Options.Forced {
		return nil
	}
	var out []action
	for _, m := range v.Options.Moves {
		if m.Disabled {
			continue
		}
		out = append(out, action{
			desc: fmt.Sprintf("Use %s (PP %d/%d)", m.Name, m.PP, m.MaxPP),
			msg:  ClientMessage{Type: MsgMove, Seq: v.Seq, Index: m.Slot},
		})
	}
	for _, i := range v.Options.Switches {
		name := fmt.Sprintf("#%d", i+1)
		if v.You != nil && i < len(v.You.Team) {
			mon := v.You.Team[i]
			name = fmt.Sprintf("%s (%d/%d)", mon.Name, mon.HP.Current, mon.HP.Max)
		}
		out = append(out, action{
			desc: "Switch to " + name,
			msg:  ClientMessage{Type: MsgSwitch, Seq: v.Seq, Index: i},
		})
	}
	out = append(out, action{desc: "Forfeit", msg: ClientMessage{Type: MsgForfeit}})
	return out
}

func (c *Client) renderEvents(events []log.Event) {
	for _, e := range events {
		fmt.Fprintf(c.out, "T%-2d | %s\n", e.Turn, log.FormatEvent(e))
	}
}

func (c *Client) renderView(v *session.View) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")
	if opp := v.Opponent; opp != nil {
		fmt.Fprintf(c.out, "║  OPPONENT %s  Remaining: %d\n", opp.ID, opp.Remaining)
		fmt.Fprintf(c.out, "║  %s\n", formatMon(opp.Active))
	}
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")
	if you := v.You; you != nil {
		fmt.Fprintf(c.out, "║  %s\n", formatMon(you.Active))
		fmt.Fprintf(c.out, "║  YOU %s  Remaining: %d\n", you.ID, you.Remaining)
	}
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")
	fmt.Fprintf(c.out, "Turn %d | %s\n", v.Turn, v.State)
}

func formatMon(mv *session.MonView) string {
	if mv == nil {
		return "[ ]"
	}
	hp := fmt.Sprintf("%d%%", mv.HP.Percent)
	if !mv.HP.Censored {
		hp = fmt.Sprintf("%d/%d", mv.HP.Current, mv.HP.Max)
	}
	s := fmt.Sprintf("[%s L%d %s]", mv.Name, mv.Level, hp)
	if mv.Status != "" {
		s += " " + strings.ToUpper(mv.Status)
	}
	for _, stat := range slices.Sorted(maps.Keys(mv.Stages)) {
		if stage := mv.Stages[stat]; stage != 0 {
			s += fmt.Sprintf(" %s%+d", stat, stage)
		}
	}
	return s
}

func (c *Client) renderActions(actions []action) {
	fmt.Fprintln(c.out, "\nActions:")
	for i, a := range actions {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, a.desc)
	}
}

func (c *Client) readChoice(count int) (int, error) {
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		line = strings.TrimSpace(line)
		n, convErr := strconv.Atoi(line)
		if convErr == nil && n >= 1 && n <= count {
			return n - 1, nil // convert to 0-indexed
		}
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintf(c.out, "Enter a number between 1 and %d\n", count)
	}
}
