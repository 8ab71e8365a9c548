package game

import (
	"fmt"
	"strings"

	"github.com/peterkuimelis/pokesim/internal/dex"
)

// Mods are optional house rules layered over a generation's rules.
type Mods struct {
	SleepClause   bool // only one foe may be put to sleep at a time
	FreezeClause  bool // only one foe may be frozen at a time
	PPWrap        bool // generation 1: using a move at 0 PP wraps it to 63
	NoCrit        bool
	MaxDamageRoll bool // damage rolls always take their top value
}

var modSetters = map[string]func(*Mods){
	"sleep-clause":    func(m *Mods) { m.SleepClause = true },
	"freeze-clause":   func(m *Mods) { m.FreezeClause = true },
	"gen1-pp-wrap":    func(m *Mods) { m.PPWrap = true },
	"no-crit":         func(m *Mods) { m.NoCrit = true },
	"max-damage-roll": func(m *Mods) { m.MaxDamageRoll = true },
}

// ParseMods resolves mod names case-insensitively. Each entry may itself be
// a comma-separated list.
func ParseMods(names ...string) (Mods, error) {
	var m Mods
	for _, raw := range names {
		for _, name := range strings.Split(raw, ",") {
			id := dex.ToID(name)
			if id == "" {
				continue
			}
			set, ok := modSetters[id]
			if !ok {
				return Mods{}, fmt.Errorf("%w: %q", ErrUnknownMod, name)
			}
			set(&m)
		}
	}
	return m, nil
}
