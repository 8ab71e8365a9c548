package dex

import (
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// MinGen and MaxGen bound the supported rule generations.
const (
	MinGen = 1
	MaxGen = 4
)

// Tables is a full set of static records for one generation.
type Tables struct {
	TypeChart TypeChart
	Species   map[string]Species
	Moves     map[string]Move
	Abilities map[string]Ability
	Items     map[string]Item
	Natures   map[string]Nature
}

// BaseTables returns the generation 1 tables every later generation is
// patched from.
func BaseTables() Tables {
	return Tables{
		TypeChart: gen1TypeChart,
		Species:   baseSpecies,
		Moves:     baseMoves,
		Abilities: map[string]Ability{},
		Items:     map[string]Item{},
		Natures:   map[string]Nature{},
	}
}

// Patches lists the per-generation deltas, applied in order.
var Patches = []Patch{
	{Gen: 2, TypeChart: gen2TypeChart, Species: gen2Species, Moves: gen2Moves, Items: gen2Items},
	{Gen: 3, Species: gen3Species, Moves: gen3Moves, Abilities: gen3Abilities, Items: gen3Items, Natures: gen3Natures},
	{Gen: 4, Species: gen4Species, Moves: gen4Moves, Abilities: gen4Abilities, Items: gen4Items},
}

// Dex is the immutable, generation-scoped view of the tables. A Dex is safe
// to share between battles.
type Dex struct {
	Gen       int
	TypeChart TypeChart
	species   map[string]*Species
	moves     map[string]*Move
	abilities map[string]*Ability
	items     map[string]*Item
	natures   map[string]*Nature
	moveIDs   []string
}

var (
	cacheMu sync.Mutex
	cache   = map[int]*Dex{}
)

// ForGen returns the tables for gen, building and caching them on first use.
func ForGen(gen int) (*Dex, error) {
	if gen < MinGen || gen > MaxGen {
		return nil, fmt.Errorf("generation %d not supported (want %d-%d)", gen, MinGen, MaxGen)
	}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if d, ok := cache[gen]; ok {
		return d, nil
	}
	d := Build(gen, BaseTables(), Patches)
	cache[gen] = d
	return d, nil
}

// Build layers every patch up to and including gen over base.
func Build(gen int, base Tables, patches []Patch) *Dex {
	t := base
	for _, p := range patches {
		if p.Gen > gen {
			break
		}
		t = t.Merge(p)
	}
	d := &Dex{
		Gen:       gen,
		TypeChart: t.TypeChart,
		species:   pointers(t.Species, func(id string, s *Species) { s.ID = id }),
		moves:     pointers(t.Moves, func(id string, m *Move) { m.ID = id }),
		abilities: pointers(t.Abilities, func(id string, a *Ability) { a.ID = id }),
		items:     pointers(t.Items, func(id string, it *Item) { it.ID = id }),
		natures:   pointers(t.Natures, func(id string, n *Nature) { n.ID = id }),
	}
	d.moveIDs = lo.Keys(d.moves)
	slices.Sort(d.moveIDs)
	return d
}

func pointers[V any](in map[string]V, fix func(string, *V)) map[string]*V {
	out := make(map[string]*V, len(in))
	for id, v := range in {
		rec := v
		fix(id, &rec)
		out[id] = &rec
	}
	return out
}

func (d *Dex) Species(id string) (*Species, bool) {
	s, ok := d.species[ToID(id)]
	return s, ok
}

func (d *Dex) Move(id string) (*Move, bool) {
	m, ok := d.moves[ToID(id)]
	return m, ok
}

func (d *Dex) Ability(id string) (*Ability, bool) {
	a, ok := d.abilities[ToID(id)]
	return a, ok
}

func (d *Dex) Item(id string) (*Item, bool) {
	it, ok := d.items[ToID(id)]
	return it, ok
}

func (d *Dex) Nature(id string) (*Nature, bool) {
	n, ok := d.natures[ToID(id)]
	return n, ok
}

// MustMove panics on a missing move. Only for IDs the engine itself relies on.
func (d *Dex) MustMove(id string) *Move {
	m, ok := d.Move(id)
	if !ok {
		panic(fmt.Sprintf("move not found in gen %d dex: %s", d.Gen, id))
	}
	return m
}

// MoveIDs returns every move ID in sorted order.
func (d *Dex) MoveIDs() []string { return d.moveIDs }

// SpeciesIDs returns every species ID in sorted order.
func (d *Dex) SpeciesIDs() []string {
	ids := lo.Keys(d.species)
	slices.Sort(ids)
	return ids
}

// Effectiveness returns the per-type effectiveness (in tenths) of an attack
// type against each defending type, in order.
func (d *Dex) Effectiveness(atk Type, defenders []Type) []int {
	return lo.Map(defenders, func(def Type, _ int) int { return d.TypeChart.Lookup(atk, def) })
}
