package game

import (
	"strconv"
	"testing"

	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// funcSource is a scripted Source.
type funcSource func(n int) int

func (f funcSource) IntN(n int) int { return f(n) }

// calmSource makes accuracy rolls (out of 100 or 256) hit and every other
// roll take its highest value, so most chance effects do not happen.
func calmSource() funcSource {
	return func(n int) int {
		if n == 100 || n == 256 {
			return 0
		}
		return n - 1
	}
}

// seqSource returns the scripted values in order and 0 once they run out.
type seqSource struct {
	vals []int
	pos  int
}

func (s *seqSource) IntN(n int) int {
	if s.pos >= len(s.vals) {
		return 0
	}
	v := s.vals[s.pos]
	s.pos++
	return v
}

func mon(species string, moves ...string) PokemonSet {
	return PokemonSet{Species: species, Moves: moves}
}

func team(sets ...PokemonSet) []PokemonSet { return sets }

// config builds a two-player battle config with no crits and maximum
// damage rolls.
func config(gen int, p1, p2 []PokemonSet) Config {
	return Config{
		Gen:  gen,
		Mods: []string{"no-crit", "max-damage-roll"},
		RNG:  NewRNGWithSource(calmSource()),
		P1:   PlayerConfig{ID: "p1", Team: p1},
		P2:   PlayerConfig{ID: "p2", Team: p2},
	}
}

func startBattle(t *testing.T, cfg Config) (*Battle, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	b, _, err := Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return b, logger
}

// submit applies one scripted command: "m<slot>" chooses a move, "s<index>"
// a switch and "" leaves the player alone.
func submit(t *testing.T, p *Player, cmd string) {
	t.Helper()
	if cmd == "" {
		return
	}
	n, err := strconv.Atoi(cmd[1:])
	if err != nil {
		t.Fatalf("bad command %q", cmd)
	}
	switch cmd[0] {
	case 'm':
		err = p.ChooseMove(n)
	case 's':
		err = p.ChooseSwitch(n)
	default:
		t.Fatalf("bad command %q", cmd)
	}
	if err != nil {
		t.Fatalf("%s %s: %v", p.ID, cmd, err)
	}
}

// play submits both commands and resolves the decision.
func play(t *testing.T, b *Battle, c1, c2 string) *TurnResult {
	t.Helper()
	submit(t, b.players[0], c1)
	submit(t, b.players[1], c2)
	res, err := b.AdvanceTurn()
	if err != nil {
		t.Fatalf("AdvanceTurn: %v", err)
	}
	if res == nil {
		t.Fatalf("turn %d still awaiting a choice", b.Turn())
	}
	t.Logf("\n%s", log.FormatAll(res.Events))
	return res
}

// playLegal resolves a decision with both players on their first legal
// choice, which keeps a locked combatant on its forced move.
func playLegal(t *testing.T, b *Battle) *TurnResult {
	t.Helper()
	firstLegal(t, b.players[0])
	firstLegal(t, b.players[1])
	res, err := b.AdvanceTurn()
	if err != nil {
		t.Fatalf("AdvanceTurn: %v", err)
	}
	if res == nil {
		t.Fatalf("turn %d still awaiting a choice", b.Turn())
	}
	t.Logf("\n%s", log.FormatAll(res.Events))
	return res
}

// firstLegal picks the first usable move, or the first switch when only a
// switch is allowed.
func firstLegal(t *testing.T, p *Player) {
	t.Helper()
	opts := p.Options()
	if opts == nil || p.Choice() != nil {
		return
	}
	if opts.ForceSwitch {
		submit(t, p, "s"+strconv.Itoa(opts.Switches[0]))
		return
	}
	for _, m := range opts.Moves {
		if !m.Disabled {
			if err := p.ChooseMove(m.Slot); err != nil {
				t.Fatalf("%s move %d: %v", p.ID, m.Slot, err)
			}
			return
		}
	}
	t.Fatalf("%s has no legal choice", p.ID)
}

func moveEvents(events []log.Event) []log.Event {
	var out []log.Event
	for _, e := range events {
		if e.Type == log.EventMove {
			out = append(out, e)
		}
	}
	return out
}

func hasInfo(events []log.Event, player, info string) bool {
	for _, e := range events {
		if e.Type == log.EventInfo && e.Player == player && e.Info == info {
			return true
		}
	}
	return false
}

func mustMove(t *testing.T, b *Battle, id string) *dex.Move {
	t.Helper()
	m, ok := b.Dex.Move(id)
	if !ok {
		t.Fatalf("gen %d has no %s", b.Gen, id)
	}
	return m
}
