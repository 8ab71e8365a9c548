package dex

var natureGrid = [5][5]string{
	{"Hardy", "Lonely", "Brave", "Adamant", "Naughty"},
	{"Bold", "Docile", "Relaxed", "Impish", "Lax"},
	{"Timid", "Hasty", "Serious", "Jolly", "Naive"},
	{"Modest", "Mild", "Quiet", "Bashful", "Rash"},
	{"Calm", "Gentle", "Sassy", "Careful", "Quirky"},
}

// The grid rows are the raised stat and the columns the lowered stat, in
// the order Atk, Def, Spe, SpA, SpD.
var natureStats = [5]Stat{StatAtk, StatDef, StatSpe, StatSpA, StatSpD}

func buildNatures() map[string]Nature {
	out := make(map[string]Nature, 25)
	for i, row := range natureGrid {
		for j, name := range row {
			id := ToID(name)
			out[id] = Nature{ID: id, Name: name, Plus: natureStats[i], Minus: natureStats[j]}
		}
	}
	return out
}

var gen3Natures = buildNatures()
