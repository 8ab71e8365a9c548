package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PokemonSet is one roster entry as written in a team file. Names are
// matched case-insensitively against the generation's tables.
type PokemonSet struct {
	Species  string         `yaml:"species" json:"species"`
	Nickname string         `yaml:"nickname,omitempty" json:"nickname,omitempty"`
	Level    int            `yaml:"level,omitempty" json:"level,omitempty"`
	Moves    []string       `yaml:"moves" json:"moves"`
	Item     string         `yaml:"item,omitempty" json:"item,omitempty"`
	Ability  string         `yaml:"ability,omitempty" json:"ability,omitempty"`
	Nature   string         `yaml:"nature,omitempty" json:"nature,omitempty"`
	Gender   string         `yaml:"gender,omitempty" json:"gender,omitempty"`
	IVs      map[string]int `yaml:"ivs,omitempty" json:"ivs,omitempty"`
	EVs      map[string]int `yaml:"evs,omitempty" json:"evs,omitempty"`
}

// TeamFile is the top-level YAML structure of a team file.
type TeamFile struct {
	Teams []TeamEntry `yaml:"teams"`
}

// TeamEntry is a named roster for one generation.
type TeamEntry struct {
	Name    string       `yaml:"name"`
	Gen     int          `yaml:"gen"`
	Pokemon []PokemonSet `yaml:"pokemon"`
}

// ParseTeams decodes a YAML team file.
func ParseTeams(data []byte) (TeamFile, error) {
	var tf TeamFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return tf, fmt.Errorf("parse team YAML: %w", err)
	}
	for i, t := range tf.Teams {
		if t.Name == "" {
			return tf, fmt.Errorf("team %d has no name", i+1)
		}
		if len(t.Pokemon) == 0 || len(t.Pokemon) > MaxTeamSize {
			return tf, fmt.Errorf("%w: team %q has %d entries", ErrBadRoster, t.Name, len(t.Pokemon))
		}
	}
	return tf, nil
}

// LoadTeams reads and decodes a team file.
func LoadTeams(path string) (TeamFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TeamFile{}, err
	}
	return ParseTeams(data)
}

// Find returns the team with the given name.
func (tf TeamFile) Find(name string) (TeamEntry, bool) {
	for _, t := range tf.Teams {
		if t.Name == name {
			return t, true
		}
	}
	return TeamEntry{}, false
}

// ForGen returns the teams written for a generation, in file order.
func (tf TeamFile) ForGen(gen int) []TeamEntry {
	var out []TeamEntry
	for _, t := range tf.Teams {
		if t.Gen == gen {
			out = append(out, t)
		}
	}
	return out
}

// TeamByNumber returns the Nth team (1-indexed) in file order.
func (tf TeamFile) TeamByNumber(n int) (TeamEntry, error) {
	if n < 1 || n > len(tf.Teams) {
		return TeamEntry{}, fmt.Errorf("team %d not found (have %d teams)", n, len(tf.Teams))
	}
	return tf.Teams[n-1], nil
}
