package session

import (
	"github.com/peterkuimelis/pokesim/internal/dex"
	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// MonView describes one roster member. Opponent views carry only what the
// field shows: species, level, percentage HP and status.
type MonView struct {
	TeamIndex *int              `json:"teamIndex,omitempty"`
	Species   string            `json:"species"`
	Name      string            `json:"name"`
	Level     int               `json:"level"`
	HP        *log.HP           `json:"hp"`
	Status    string            `json:"status,omitempty"`
	Fainted   bool              `json:"fainted,omitempty"`
	Item      string            `json:"item,omitempty"`
	Ability   string            `json:"ability,omitempty"`
	Moves     []game.MoveOption `json:"moves,omitempty"`
	Stages    map[string]int    `json:"stages,omitempty"`
	Volatiles []string          `json:"volatiles,omitempty"`
}

// SideView is one side of the field. Team is only filled for the viewer's
// own side.
type SideView struct {
	ID        string              `json:"id"`
	Name      string              `json:"name,omitempty"`
	Active    *MonView            `json:"active,omitempty"`
	Team      []MonView           `json:"team,omitempty"`
	Remaining int                 `json:"remaining"`
	Side      game.SideConditions `json:"side"`
}

// View is the room as one viewer sees it.
type View struct {
	Room     string        `json:"room"`
	Gen      int           `json:"gen"`
	Seq      int           `json:"seq"`
	Turn     int           `json:"turn"`
	State    string        `json:"state"`
	You      *SideView     `json:"you,omitempty"`
	Opponent *SideView     `json:"opponent,omitempty"`
	Sides    []SideView    `json:"sides,omitempty"` // spectators
	Options  *game.Options `json:"options,omitempty"`
	Decided  bool          `json:"decided,omitempty"`
	Over     bool          `json:"over"`
	Winner   string        `json:"winner,omitempty"`
}

// buildView creates a View from viewer's perspective. An empty viewer is a
// spectator and sees both sides censored.
func buildView(room string, seq int, b *game.Battle, viewer string) *View {
	v := &View{
		Room:   room,
		Gen:    b.Gen,
		Seq:    seq,
		Turn:   b.Turn(),
		State:  b.State(),
		Over:   b.Over(),
		Winner: b.Winner(),
	}
	me := b.FindPlayer(viewer)
	if me == nil {
		for _, p := range b.Players() {
			v.Sides = append(v.Sides, *sideView(p, false))
		}
		return v
	}
	v.You = sideView(me, true)
	v.Opponent = sideView(b.OpponentOf(me), false)
	v.Options = me.Options()
	v.Decided = me.Choice() != nil
	return v
}

func sideView(p *game.Player, own bool) *SideView {
	sv := &SideView{ID: p.ID, Name: p.Name, Remaining: len(p.Healthy()), Side: p.Side}
	if p.Active != nil {
		sv.Active = monView(p.Active.Pokemon, own)
		if !p.Active.Pokemon.Fainted {
			sv.Active.Stages = p.Active.StageMap()
			sv.Active.Volatiles = p.Active.Flags().Names()
		}
	}
	if own {
		for _, mon := range p.Team {
			sv.Team = append(sv.Team, *monView(mon, true))
		}
	}
	return sv
}

func monView(mon *game.Pokemon, own bool) *MonView {
	mv := &MonView{
		Species: mon.Species.Name,
		Name:    mon.Name(),
		Level:   mon.Level,
		HP:      log.NewHP(mon.HP, mon.MaxHP),
		Fainted: mon.Fainted,
	}
	if mon.Status != dex.StatusNone {
		mv.Status = mon.Status.String()
	}
	if !own {
		mv.HP = &log.HP{Current: mv.HP.Percent, Max: 100, Percent: mv.HP.Percent, Censored: true}
		return mv
	}
	idx := mon.TeamIndex
	mv.TeamIndex = &idx
	mv.Item = mon.Item
	mv.Ability = mon.Ability
	for i, slot := range mon.Moves {
		mv.Moves = append(mv.Moves, game.MoveOption{Slot: i, ID: slot.Move.ID, Name: slot.Move.Name, PP: slot.PP, MaxPP: slot.MaxPP})
	}
	return mv
}
