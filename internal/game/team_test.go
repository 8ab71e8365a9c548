package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const teamsYAML = `
teams:
  - name: classic
    gen: 1
    pokemon:
      - species: Snorlax
        moves: [body-slam, earthquake, rest, amnesia]
      - species: Chansey
        level: 90
        moves: [soft-boiled, thunder-wave, seismic-toss]
  - name: johto
    gen: 2
    pokemon:
      - species: Skarmory
        item: leftovers
        moves: [spikes, whirlwind, steel-wing]
        ivs: {atk: 26}
`

func TestParseTeams(t *testing.T) {
	tf, err := ParseTeams([]byte(teamsYAML))
	if err != nil {
		t.Fatalf("ParseTeams: %v", err)
	}
	if len(tf.Teams) != 2 {
		t.Fatalf("Expected 2 teams, got %d", len(tf.Teams))
	}
	classic, ok := tf.Find("classic")
	if !ok || len(classic.Pokemon) != 2 || classic.Pokemon[1].Level != 90 {
		t.Errorf("Unexpected classic team %+v", classic)
	}
	if got := tf.ForGen(2); len(got) != 1 || got[0].Name != "johto" {
		t.Errorf("Expected one gen 2 team, got %+v", got)
	}
	if tf.Teams[1].Pokemon[0].IVs["atk"] != 26 {
		t.Error("Expected the IV map to decode")
	}
	if _, err := tf.TeamByNumber(3); err == nil {
		t.Error("Expected team 3 to be missing")
	}
	if e, err := tf.TeamByNumber(1); err != nil || e.Name != "classic" {
		t.Errorf("Expected team 1 to be classic, got %+v, %v", e, err)
	}
}

func TestParseTeamsRejectsBadFiles(t *testing.T) {
	if _, err := ParseTeams([]byte("teams: [")); err == nil {
		t.Error("Expected malformed YAML to fail")
	}
	if _, err := ParseTeams([]byte("teams:\n  - gen: 1\n    pokemon: [{species: mew, moves: [psychic]}]\n")); err == nil {
		t.Error("Expected an unnamed team to fail")
	}
	if _, err := ParseTeams([]byte("teams:\n  - name: empty\n    gen: 1\n")); !errors.Is(err, ErrBadRoster) {
		t.Errorf("Expected an empty team to be a bad roster, got %v", err)
	}
}

func TestLoadedTeamStartsABattle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte(teamsYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	tf, err := LoadTeams(path)
	if err != nil {
		t.Fatalf("LoadTeams: %v", err)
	}
	classic, _ := tf.Find("classic")
	b, _ := startBattle(t, config(1, classic.Pokemon, classic.Pokemon))
	chansey := b.FindPlayer("p1").Team[1]
	if chansey.Level != 90 || chansey.Species.ID != "chansey" {
		t.Errorf("Unexpected second roster member %s", chansey)
	}

	johto, _ := tf.Find("johto")
	if _, _, err := Start(config(1, johto.Pokemon, classic.Pokemon)); !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("Expected Skarmory to be unknown in gen 1, got %v", err)
	}
}

// TestBundledTeamsBuild: every roster in the repository's teams.yaml is
// legal for its generation.
func TestBundledTeamsBuild(t *testing.T) {
	tf, err := LoadTeams(filepath.Join("..", "..", "teams.yaml"))
	if err != nil {
		t.Fatalf("LoadTeams: %v", err)
	}
	for _, entry := range tf.Teams {
		_, _, err := Start(Config{
			Gen: entry.Gen,
			P1:  PlayerConfig{ID: "p1", Team: entry.Pokemon},
			P2:  PlayerConfig{ID: "p2", Team: entry.Pokemon},
		})
		if err != nil {
			t.Errorf("Team %s: %v", entry.Name, err)
		}
	}
}
