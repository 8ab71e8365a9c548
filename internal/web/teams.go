package web

import (
	"net/http"

	"github.com/peterkuimelis/pokesim/internal/game"
	"github.com/peterkuimelis/pokesim/internal/log"
)

// TeamInfo is the JSON representation of a team for the /api/teams endpoint.
type TeamInfo struct {
	Number  int      `json:"number"`
	Name    string   `json:"name"`
	Gen     int      `json:"gen"`
	Pokemon []string `json:"pokemon"`
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	tf, err := game.LoadTeams(s.teamsFile)
	if err != nil {
		http.Error(w, "could not read teams file", http.StatusInternalServerError)
		return
	}

	var teams []TeamInfo
	for i, t := range tf.Teams {
		ti := TeamInfo{
			Number: i + 1,
			Name:   t.Name,
			Gen:    t.Gen,
		}
		for _, p := range t.Pokemon {
			name := p.Nickname
			if name == "" {
				name = log.Title(p.Species)
			}
			ti.Pokemon = append(ti.Pokemon, name)
		}
		teams = append(teams, ti)
	}
	writeJSON(w, teams)
}
