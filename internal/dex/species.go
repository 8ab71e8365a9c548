package dex

func species(name string, types []Type, hp, atk, def, spa, spd, spe int) Species {
	return Species{
		ID:        ToID(name),
		Name:      name,
		Types:     types,
		BaseStats: Stats{hp, atk, def, spa, spd, spe},
	}
}

// gen1Species is a single-Special roster: SpA and SpD carry the same base.
func gen1Species(name string, types []Type, hp, atk, def, spc, spe int) Species {
	return species(name, types, hp, atk, def, spc, spc, spe)
}

func genderless(s Species) Species {
	s.Genderless = true
	return s
}

func types(t ...Type) []Type { return t }

func stats(hp, atk, def, spa, spd, spe int) *Stats {
	return &Stats{hp, atk, def, spa, spd, spe}
}

func newSpecies(name string, t []Type, hp, atk, def, spa, spd, spe int, abilities ...string) SpeciesPatch {
	return SpeciesPatch{Name: &name, Types: t, BaseStats: stats(hp, atk, def, spa, spd, spe), Abilities: abilities}
}

func splitSpecial(spa, spd int, base Stats) *Stats {
	base[StatSpA] = spa
	base[StatSpD] = spd
	return &base
}

func abilities(ids ...string) SpeciesPatch { return SpeciesPatch{Abilities: ids} }

var baseSpecies = tableOf(func(s Species) string { return s.ID },
	gen1Species("Venusaur", types(TypeGrass, TypePoison), 80, 82, 83, 100, 80),
	gen1Species("Charizard", types(TypeFire, TypeFlying), 78, 84, 78, 85, 100),
	gen1Species("Blastoise", types(TypeWater), 79, 83, 100, 85, 78),
	gen1Species("Pikachu", types(TypeElectric), 35, 55, 30, 50, 90),
	gen1Species("Raichu", types(TypeElectric), 60, 90, 55, 90, 100),
	gen1Species("Clefable", types(TypeNormal), 95, 70, 73, 85, 60),
	gen1Species("Dugtrio", types(TypeGround), 35, 80, 50, 70, 120),
	gen1Species("Persian", types(TypeNormal), 65, 70, 60, 65, 115),
	gen1Species("Alakazam", types(TypePsychic), 55, 50, 45, 135, 120),
	gen1Species("Machamp", types(TypeFighting), 90, 130, 80, 65, 55),
	gen1Species("Golem", types(TypeRock, TypeGround), 80, 110, 130, 55, 45),
	gen1Species("Slowbro", types(TypeWater, TypePsychic), 95, 75, 110, 80, 30),
	genderless(gen1Species("Magneton", types(TypeElectric), 50, 60, 95, 120, 70)),
	gen1Species("Cloyster", types(TypeWater, TypeIce), 50, 95, 180, 85, 70),
	gen1Species("Gengar", types(TypeGhost, TypePoison), 60, 65, 60, 130, 110),
	genderless(gen1Species("Electrode", types(TypeElectric), 60, 50, 70, 80, 140)),
	gen1Species("Exeggutor", types(TypeGrass, TypePsychic), 95, 95, 85, 125, 55),
	gen1Species("Marowak", types(TypeGround), 60, 80, 110, 50, 45),
	gen1Species("Rhydon", types(TypeGround, TypeRock), 105, 130, 120, 45, 40),
	gen1Species("Chansey", types(TypeNormal), 250, 5, 5, 105, 50),
	gen1Species("Starmie", types(TypeWater, TypePsychic), 60, 75, 85, 100, 115),
	gen1Species("Tauros", types(TypeNormal), 75, 100, 95, 70, 110),
	gen1Species("Gyarados", types(TypeWater, TypeFlying), 95, 125, 79, 100, 81),
	gen1Species("Lapras", types(TypeWater, TypeIce), 130, 85, 80, 95, 60),
	genderless(gen1Species("Ditto", types(TypeNormal), 48, 48, 48, 48, 48)),
	gen1Species("Jolteon", types(TypeElectric), 65, 65, 60, 110, 130),
	gen1Species("Snorlax", types(TypeNormal), 160, 110, 65, 65, 30),
	genderless(gen1Species("Zapdos", types(TypeElectric, TypeFlying), 90, 90, 85, 125, 100)),
	gen1Species("Dragonite", types(TypeDragon, TypeFlying), 91, 134, 95, 100, 80),
	genderless(gen1Species("Mewtwo", types(TypePsychic), 106, 110, 90, 154, 130)),
	genderless(gen1Species("Mew", types(TypePsychic), 100, 100, 100, 100, 100)),
)

func splitFrom(id string, spa, spd int) *Stats {
	return splitSpecial(spa, spd, baseSpecies[id].BaseStats)
}

// Generation 2 splits Special, adds Steel to Magneton and introduces the
// Johto roster.
var gen2Species = map[string]SpeciesPatch{
	"venusaur":  {BaseStats: splitFrom("venusaur", 100, 100)},
	"charizard": {BaseStats: splitFrom("charizard", 109, 85)},
	"blastoise": {BaseStats: splitFrom("blastoise", 85, 105)},
	"pikachu":   {BaseStats: splitFrom("pikachu", 50, 40)},
	"raichu":    {BaseStats: splitFrom("raichu", 90, 80)},
	"clefable":  {BaseStats: splitFrom("clefable", 85, 90)},
	"dugtrio":   {BaseStats: splitFrom("dugtrio", 50, 70)},
	"persian":   {BaseStats: splitFrom("persian", 65, 65)},
	"alakazam":  {BaseStats: splitFrom("alakazam", 135, 85)},
	"machamp":   {BaseStats: splitFrom("machamp", 65, 85)},
	"golem":     {BaseStats: splitFrom("golem", 55, 65)},
	"slowbro":   {BaseStats: splitFrom("slowbro", 100, 80)},
	"magneton":  {Types: types(TypeElectric, TypeSteel), BaseStats: splitFrom("magneton", 120, 70)},
	"cloyster":  {BaseStats: splitFrom("cloyster", 85, 45)},
	"gengar":    {BaseStats: splitFrom("gengar", 130, 75)},
	"electrode": {BaseStats: splitFrom("electrode", 80, 80)},
	"exeggutor": {BaseStats: splitFrom("exeggutor", 125, 65)},
	"marowak":   {BaseStats: splitFrom("marowak", 50, 80)},
	"rhydon":    {BaseStats: splitFrom("rhydon", 45, 45)},
	"chansey":   {BaseStats: splitFrom("chansey", 35, 105)},
	"starmie":   {BaseStats: splitFrom("starmie", 100, 85)},
	"tauros":    {BaseStats: splitFrom("tauros", 40, 70)},
	"gyarados":  {BaseStats: splitFrom("gyarados", 60, 100)},
	"lapras":    {BaseStats: splitFrom("lapras", 85, 95)},
	"jolteon":   {BaseStats: splitFrom("jolteon", 110, 95)},
	"snorlax":   {BaseStats: splitFrom("snorlax", 65, 110)},
	"zapdos":    {BaseStats: splitFrom("zapdos", 125, 90)},
	"mewtwo":    {BaseStats: splitFrom("mewtwo", 154, 90)},

	"azumarill":  newSpecies("Azumarill", types(TypeWater), 100, 50, 80, 50, 80, 50),
	"espeon":     newSpecies("Espeon", types(TypePsychic), 65, 65, 60, 130, 95, 110),
	"umbreon":    newSpecies("Umbreon", types(TypeDark), 95, 65, 110, 60, 130, 65),
	"forretress": newSpecies("Forretress", types(TypeBug, TypeSteel), 75, 90, 140, 60, 60, 40),
	"steelix":    newSpecies("Steelix", types(TypeSteel, TypeGround), 75, 85, 200, 55, 65, 30),
	"scizor":     newSpecies("Scizor", types(TypeBug, TypeSteel), 70, 130, 100, 55, 80, 65),
	"heracross":  newSpecies("Heracross", types(TypeBug, TypeFighting), 80, 125, 75, 40, 95, 85),
	"skarmory":   newSpecies("Skarmory", types(TypeSteel, TypeFlying), 65, 80, 140, 40, 70, 70),
	"houndoom":   newSpecies("Houndoom", types(TypeDark, TypeFire), 75, 90, 50, 110, 80, 95),
	"kingdra":    newSpecies("Kingdra", types(TypeWater, TypeDragon), 75, 95, 95, 95, 95, 85),
	"porygon2":   genderlessPatch(newSpecies("Porygon2", types(TypeNormal), 85, 80, 90, 105, 95, 60)),
	"miltank":    newSpecies("Miltank", types(TypeNormal), 95, 80, 105, 40, 70, 100),
	"blissey":    newSpecies("Blissey", types(TypeNormal), 255, 10, 10, 75, 135, 55),
	"suicune":    genderlessPatch(newSpecies("Suicune", types(TypeWater), 100, 75, 115, 90, 115, 85)),
	"tyranitar":  newSpecies("Tyranitar", types(TypeRock, TypeDark), 100, 134, 110, 95, 100, 61),
}

func genderlessPatch(p SpeciesPatch) SpeciesPatch {
	t := true
	p.Genderless = &t
	return p
}

// Generation 3 assigns abilities to every existing species and adds Hoenn.
var gen3Species = map[string]SpeciesPatch{
	"venusaur":   abilities("overgrow"),
	"charizard":  abilities("blaze"),
	"blastoise":  abilities("torrent"),
	"pikachu":    abilities("static"),
	"raichu":     abilities("static"),
	"clefable":   abilities("cute-charm"),
	"dugtrio":    abilities("arena-trap", "sand-veil"),
	"persian":    abilities("limber"),
	"alakazam":   abilities("synchronize", "inner-focus"),
	"machamp":    abilities("guts"),
	"golem":      abilities("rock-head", "sturdy"),
	"slowbro":    abilities("own-tempo", "oblivious"),
	"magneton":   abilities("sturdy"),
	"cloyster":   abilities("shell-armor"),
	"gengar":     abilities("levitate"),
	"electrode":  abilities("soundproof", "static"),
	"exeggutor":  abilities("chlorophyll"),
	"marowak":    abilities("rock-head", "lightning-rod"),
	"rhydon":     abilities("rock-head", "lightning-rod"),
	"chansey":    abilities("natural-cure", "serene-grace"),
	"starmie":    abilities("natural-cure", "illuminate"),
	"tauros":     abilities("intimidate"),
	"gyarados":   abilities("intimidate"),
	"lapras":     abilities("water-absorb", "shell-armor"),
	"ditto":      abilities("limber"),
	"jolteon":    abilities("volt-absorb"),
	"snorlax":    abilities("immunity", "thick-fat"),
	"zapdos":     abilities("pressure"),
	"dragonite":  abilities("inner-focus"),
	"mewtwo":     abilities("pressure"),
	"mew":        abilities("synchronize"),
	"azumarill":  abilities("huge-power", "thick-fat"),
	"espeon":     abilities("synchronize"),
	"umbreon":    abilities("synchronize"),
	"forretress": abilities("sturdy"),
	"steelix":    abilities("rock-head", "sturdy"),
	"scizor":     abilities("swarm"),
	"heracross":  abilities("swarm", "guts"),
	"skarmory":   abilities("keen-eye", "sturdy"),
	"houndoom":   abilities("early-bird", "flash-fire"),
	"kingdra":    abilities("swift-swim"),
	"porygon2":   abilities("trace"),
	"miltank":    abilities("thick-fat"),
	"blissey":    abilities("natural-cure", "serene-grace"),
	"suicune":    abilities("pressure"),
	"tyranitar":  abilities("sand-stream"),

	"blaziken":  newSpecies("Blaziken", types(TypeFire, TypeFighting), 80, 120, 70, 110, 70, 80, "blaze"),
	"swampert":  newSpecies("Swampert", types(TypeWater, TypeGround), 100, 110, 90, 85, 90, 60, "torrent"),
	"gardevoir": newSpecies("Gardevoir", types(TypePsychic), 68, 65, 65, 125, 115, 80, "synchronize", "trace"),
	"breloom":   newSpecies("Breloom", types(TypeGrass, TypeFighting), 60, 130, 80, 60, 60, 70, "effect-spore"),
	"slaking":   newSpecies("Slaking", types(TypeNormal), 150, 160, 100, 95, 65, 100, "truant"),
	"shedinja":  genderlessPatch(newSpecies("Shedinja", types(TypeBug, TypeGhost), 1, 90, 45, 30, 30, 40, "wonder-guard")),
	"aggron":    newSpecies("Aggron", types(TypeSteel, TypeRock), 70, 110, 180, 60, 60, 50, "sturdy", "rock-head"),
	"medicham":  newSpecies("Medicham", types(TypeFighting, TypePsychic), 60, 60, 75, 60, 75, 80, "pure-power"),
	"flygon":    newSpecies("Flygon", types(TypeGround, TypeDragon), 80, 100, 80, 80, 80, 100, "levitate"),
	"milotic":   newSpecies("Milotic", types(TypeWater), 95, 60, 79, 100, 125, 81, "marvel-scale"),
	"salamence": newSpecies("Salamence", types(TypeDragon, TypeFlying), 95, 135, 80, 110, 80, 100, "intimidate"),
	"metagross": genderlessPatch(newSpecies("Metagross", types(TypeSteel, TypePsychic), 80, 135, 130, 95, 90, 70, "clear-body")),
}

// Generation 4 reworks a handful of abilities and adds Sinnoh.
var gen4Species = map[string]SpeciesPatch{
	"machamp":   abilities("guts", "no-guard"),
	"scizor":    abilities("swarm", "technician"),
	"breloom":   abilities("effect-spore", "poison-heal"),
	"kingdra":   abilities("swift-swim", "sniper"),

	"infernape": newSpecies("Infernape", types(TypeFire, TypeFighting), 76, 104, 71, 104, 71, 108, "blaze", "iron-fist"),
	"lucario":   newSpecies("Lucario", types(TypeFighting, TypeSteel), 70, 110, 70, 115, 70, 90, "steadfast", "inner-focus"),
	"garchomp":  newSpecies("Garchomp", types(TypeDragon, TypeGround), 108, 130, 95, 80, 85, 102, "sand-veil"),
	"togekiss":  newSpecies("Togekiss", types(TypeNormal, TypeFlying), 85, 50, 95, 120, 115, 80, "hustle", "serene-grace"),
	"weavile":   newSpecies("Weavile", types(TypeDark, TypeIce), 70, 120, 65, 45, 85, 125, "pressure"),
	"gliscor":   newSpecies("Gliscor", types(TypeGround, TypeFlying), 75, 95, 125, 45, 75, 95, "hyper-cutter", "sand-veil"),
	"magnezone": genderlessPatch(newSpecies("Magnezone", types(TypeElectric, TypeSteel), 70, 70, 115, 130, 90, 60, "sturdy")),
	"heatran":   newSpecies("Heatran", types(TypeFire, TypeSteel), 91, 90, 106, 130, 106, 77, "flash-fire"),
}

func tableOf[V any](key func(V) string, records ...V) map[string]V {
	out := make(map[string]V, len(records))
	for _, r := range records {
		out[key(r)] = r
	}
	return out
}
