package dex

import "github.com/samber/lo"

// Patch is one generation's delta over the tables of the generation before
// it. Pointer fields override when non-nil; slices replace wholesale when
// non-nil; maps merge key by key.
type Patch struct {
	Gen       int
	TypeChart TypeChart
	Species   map[string]SpeciesPatch
	Moves     map[string]MovePatch
	Abilities map[string]Ability
	Items     map[string]Item
	Natures   map[string]Nature
}

type SpeciesPatch struct {
	Name       *string
	Types      []Type
	BaseStats  *Stats
	Abilities  []string
	Genderless *bool
}

func (p SpeciesPatch) apply(s Species) Species {
	set(&s.Name, p.Name)
	set(&s.BaseStats, p.BaseStats)
	set(&s.Genderless, p.Genderless)
	if p.Types != nil {
		s.Types = p.Types
	}
	if p.Abilities != nil {
		s.Abilities = p.Abilities
	}
	return s
}

type MovePatch struct {
	Name           *string
	Type           *Type
	Category       *Category
	Power          *int
	Accuracy       *int
	PP             *int
	Priority       *int
	Kind           *MoveKind
	Target         *Target
	CritRatio      *int
	Flags          *MoveFlag
	Secondary      *Secondary
	ClearSecondary bool
	Status         *Status
	Stages         []StageChange
	MultiHit       *[2]int
	Drain          *int
	Recoil         *int
	Heal           *int
	Lock           *LockKind
	Fixed          *FixedDamage
	FixedAmount    *int
	Weather        *Weather
	Screen         *Screen
	Desc           *string
}

func (p MovePatch) apply(m Move) Move {
	set(&m.Name, p.Name)
	set(&m.Type, p.Type)
	set(&m.Category, p.Category)
	set(&m.Power, p.Power)
	set(&m.Accuracy, p.Accuracy)
	set(&m.PP, p.PP)
	set(&m.Priority, p.Priority)
	set(&m.Kind, p.Kind)
	set(&m.Target, p.Target)
	set(&m.CritRatio, p.CritRatio)
	set(&m.Flags, p.Flags)
	set(&m.Status, p.Status)
	set(&m.MultiHit, p.MultiHit)
	set(&m.Drain, p.Drain)
	set(&m.Recoil, p.Recoil)
	set(&m.Heal, p.Heal)
	set(&m.Lock, p.Lock)
	set(&m.Fixed, p.Fixed)
	set(&m.FixedAmount, p.FixedAmount)
	set(&m.Weather, p.Weather)
	set(&m.Screen, p.Screen)
	set(&m.Desc, p.Desc)
	if p.ClearSecondary {
		m.Secondary = nil
	}
	if p.Secondary != nil {
		sec := *p.Secondary
		m.Secondary = &sec
	}
	if p.Stages != nil {
		m.Stages = p.Stages
	}
	return m
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// mergeTable layers patch records over a copy of base. Keys absent from base
// start from fresh(key), so a patch can introduce new records.
func mergeTable[V any, P any](base map[string]V, patch map[string]P, apply func(V, P) V, fresh func(string) V) map[string]V {
	out := lo.Assign(base)
	for id, p := range patch {
		v, ok := out[id]
		if !ok {
			v = fresh(id)
		}
		out[id] = apply(v, p)
	}
	return out
}

// mergeChart deep-merges a type chart: each attacking row merges cell by cell.
func mergeChart(base, patch TypeChart) TypeChart {
	out := make(TypeChart, len(base))
	for atk, row := range base {
		out[atk] = lo.Assign(row)
	}
	for atk, row := range patch {
		out[atk] = lo.Assign(out[atk], row)
	}
	return out
}

func replaceRecord[V any](_ V, v V) V { return v }

// Merge returns a new table set with p layered on top of t. Neither input is
// modified.
func (t Tables) Merge(p Patch) Tables {
	return Tables{
		TypeChart: mergeChart(t.TypeChart, p.TypeChart),
		Species: mergeTable(t.Species, p.Species, func(s Species, sp SpeciesPatch) Species { return sp.apply(s) },
			func(id string) Species { return Species{ID: id} }),
		Moves: mergeTable(t.Moves, p.Moves, func(m Move, mp MovePatch) Move { return mp.apply(m) },
			func(id string) Move { return Move{ID: id, CritRatio: 1} }),
		Abilities: mergeTable(t.Abilities, p.Abilities, replaceRecord[Ability],
			func(id string) Ability { return Ability{ID: id} }),
		Items: mergeTable(t.Items, p.Items, replaceRecord[Item],
			func(id string) Item { return Item{ID: id} }),
		Natures: mergeTable(t.Natures, p.Natures, replaceRecord[Nature],
			func(id string) Nature { return Nature{ID: id} }),
	}
}
