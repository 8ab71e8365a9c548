package dex

import "github.com/samber/lo"

// full turns a complete record into a patch, used when a generation
// introduces a move that has no earlier definition.
func full(m Move) MovePatch {
	p := MovePatch{
		Name:        lo.ToPtr(m.Name),
		Type:        lo.ToPtr(m.Type),
		Category:    lo.ToPtr(m.Category),
		Power:       lo.ToPtr(m.Power),
		Accuracy:    lo.ToPtr(m.Accuracy),
		PP:          lo.ToPtr(m.PP),
		Priority:    lo.ToPtr(m.Priority),
		Kind:        lo.ToPtr(m.Kind),
		Target:      lo.ToPtr(m.Target),
		CritRatio:   lo.ToPtr(m.CritRatio),
		Flags:       lo.ToPtr(m.Flags),
		Secondary:   m.Secondary,
		Status:      lo.ToPtr(m.Status),
		Stages:      m.Stages,
		MultiHit:    lo.ToPtr(m.MultiHit),
		Drain:       lo.ToPtr(m.Drain),
		Recoil:      lo.ToPtr(m.Recoil),
		Heal:        lo.ToPtr(m.Heal),
		Lock:        lo.ToPtr(m.Lock),
		Fixed:       lo.ToPtr(m.Fixed),
		FixedAmount: lo.ToPtr(m.FixedAmount),
		Weather:     lo.ToPtr(m.Weather),
		Screen:      lo.ToPtr(m.Screen),
		Desc:        lo.ToPtr(m.Desc),
	}
	return p
}

// movePatches combines edits to existing moves with brand new moves.
func movePatches(edits map[string]MovePatch, added ...Move) map[string]MovePatch {
	out := lo.Assign(edits)
	for _, m := range added {
		out[m.ID] = full(m)
	}
	return out
}

func sec(s Secondary) *Secondary { return &s }

var gen2Moves = movePatches(map[string]MovePatch{
	"bite":          {Type: lo.ToPtr(TypeDark), Secondary: sec(flinch(30))},
	"karate-chop":   {Type: lo.ToPtr(TypeFighting)},
	"gust":          {Type: lo.ToPtr(TypeFlying), Flags: lo.ToPtr(FlagProtectable | FlagMirror | FlagHitsFlying)},
	"sand-attack":   {Type: lo.ToPtr(TypeGround)},
	"explosion":     {Power: lo.ToPtr(250)},
	"self-destruct": {Power: lo.ToPtr(200)},
	"double-edge":   {Power: lo.ToPtr(120)},
	"dig":           {Power: lo.ToPtr(60)},
	"thunder":       {Secondary: sec(chance(30, StatusParalysis)), Flags: lo.ToPtr(FlagProtectable | FlagMirror | FlagHitsFlying)},
	"fire-blast":    {Secondary: sec(chance(10, StatusBurn))},
	"blizzard":      {Accuracy: lo.ToPtr(70)},
	"psychic":       {Secondary: sec(lower(10, stage(StatSpD, -1)))},
	"poison-sting":  {Secondary: sec(chance(30, StatusPoison))},
	"rock-slide":    {Secondary: sec(flinch(30))},
	"acid":          {Secondary: sec(lower(10, stage(StatDef, -1)))},
	"tri-attack":    {Kind: lo.ToPtr(KindCustom)},
	"razor-wind":    {CritRatio: lo.ToPtr(2), Accuracy: lo.ToPtr(100)},
	"skull-bash":    {Stages: []StageChange{stage(StatDef, 1)}},
	"struggle":      {Type: lo.ToPtr(TypeNone), Recoil: lo.ToPtr(25)},
	"roar":          {Priority: lo.ToPtr(-1)},
	"whirlwind":     {Priority: lo.ToPtr(-1), Accuracy: lo.ToPtr(100)},
	"wrap":          {Accuracy: lo.ToPtr(85)},
},
	effect("Protect", TypeNormal, KindProtect, TargetSelf, 0, 10).priority(3),
	effect("Detect", TypeFighting, KindProtect, TargetSelf, 0, 5).priority(3),
	effect("Endure", TypeNormal, KindProtect, TargetSelf, 0, 10).priority(3),
	effect("Mean Look", TypeNormal, KindPreventEscape, TargetFoe, 0, 5),
	effect("Spider Web", TypeBug, KindPreventEscape, TargetFoe, 0, 10),
	effect("Lock-On", TypeNormal, KindLockOn, TargetFoe, 100, 5),
	effect("Mind Reader", TypeNormal, KindLockOn, TargetFoe, 100, 5),
	effect("Baton Pass", TypeNormal, KindSwitch, TargetSelf, 0, 40),
	withWeather(effect("Rain Dance", TypeWater, KindWeather, TargetField, 0, 5), WeatherRain),
	withWeather(effect("Sunny Day", TypeFire, KindWeather, TargetField, 0, 5), WeatherSun),
	withWeather(effect("Sandstorm", TypeRock, KindWeather, TargetField, 0, 10), WeatherSand),
	withScreen(effect("Safeguard", TypeNormal, KindScreen, TargetSelf, 0, 25), ScreenSafeguard),
	effect("Milk Drink", TypeNormal, KindRecover, TargetSelf, 0, 10).heal(50),
	effect("Morning Sun", TypeNormal, KindRecover, TargetSelf, 0, 5).heal(50).flags(FlagWeatherHeal),
	effect("Synthesis", TypeGrass, KindRecover, TargetSelf, 0, 5).heal(50).flags(FlagWeatherHeal),
	effect("Moonlight", TypeNormal, KindRecover, TargetSelf, 0, 5).heal(50).flags(FlagWeatherHeal),
	effect("Sweet Kiss", TypeNormal, KindConfuse, TargetFoe, 75, 10),
	drop("Scary Face", TypeNormal, 90, 10, stage(StatSpe, -2)),
	drop("Cotton Spore", TypeGrass, 85, 40, stage(StatSpe, -2)),
	drop("Charm", TypeNormal, 100, 20, stage(StatAtk, -2)),
	custom("Spikes", TypeGround, TargetField, 0, 20),
	custom("Perish Song", TypeNormal, TargetField, 0, 5).flags(FlagSound),
	custom("Encore", TypeNormal, TargetFoe, 100, 5),
	custom("Attract", TypeNormal, TargetFoe, 100, 15),
	custom("Curse", TypeNone, TargetSelf, 0, 10),
	custom("Pain Split", TypeNormal, TargetFoe, 0, 20),
	custom("Belly Drum", TypeNormal, TargetSelf, 0, 10),
	custom("Swagger", TypeNormal, TargetFoe, 90, 15),
	custom("Conversion 2", TypeNormal, TargetSelf, 0, 30),
	custom("Nightmare", TypeGhost, TargetFoe, 100, 15),
	custom("Foresight", TypeNormal, TargetFoe, 100, 40),
	attack("Rapid Spin", TypeNormal, phys, 20, 100, 40).contact().asCustom(),
	attack("Magnitude", TypeGround, phys, 0, 100, 30).asCustom().flags(FlagHitsDigging),
	attack("Present", TypeNormal, phys, 0, 90, 15).asCustom(),
	attack("Mirror Coat", TypePsychic, spec, 0, 100, 20).priority(-1).asCustom().flags(FlagNoMetronome),
	attack("Crunch", TypeDark, phys, 80, 100, 15).contact().secondary(lower(20, stage(StatSpD, -1))),
	attack("Shadow Ball", TypeGhost, spec, 80, 100, 15).secondary(lower(20, stage(StatSpD, -1))),
	attack("Cross Chop", TypeFighting, phys, 100, 80, 5).contact().highCrit(),
	attack("Megahorn", TypeBug, phys, 120, 85, 10).contact(),
	attack("Iron Tail", TypeSteel, phys, 100, 75, 15).contact().secondary(lower(30, stage(StatDef, -1))),
	attack("Steel Wing", TypeSteel, phys, 70, 90, 25).contact().secondary(raiseSelf(10, stage(StatDef, 1))),
	attack("Metal Claw", TypeSteel, phys, 50, 95, 35).contact().secondary(raiseSelf(10, stage(StatAtk, 1))),
	attack("Dynamic Punch", TypeFighting, phys, 100, 50, 5).punch().secondary(confuse(100)),
	attack("Zap Cannon", TypeElectric, spec, 100, 50, 5).secondary(chance(100, StatusParalysis)),
	attack("Return", TypeNormal, phys, 102, 100, 20).contact(),
	attack("Sludge Bomb", TypePoison, spec, 90, 100, 10).secondary(chance(30, StatusPoison)),
	attack("Giga Drain", TypeGrass, spec, 60, 100, 5).drain(50),
	attack("False Swipe", TypeNormal, phys, 40, 100, 40).contact().flags(FlagFalseSwipe),
	attack("Extreme Speed", TypeNormal, phys, 80, 100, 5).contact().priority(1),
	attack("Mach Punch", TypeFighting, phys, 40, 100, 30).punch().priority(1),
	attack("Vital Throw", TypeFighting, phys, 70, 0, 10).contact().priority(-1),
	attack("Outrage", TypeDragon, phys, 90, 100, 15).contact().lock(LockThrash),
	attack("Ancient Power", TypeRock, spec, 60, 100, 5).secondary(raiseSelf(10,
		stage(StatAtk, 1), stage(StatDef, 1), stage(StatSpA, 1), stage(StatSpD, 1), stage(StatSpe, 1))),
	attack("Bone Rush", TypeGround, phys, 25, 80, 10).hits(2, 5),
	attack("Dragon Breath", TypeDragon, spec, 60, 100, 20).secondary(chance(30, StatusParalysis)),
	attack("Icy Wind", TypeIce, spec, 55, 95, 15).secondary(lower(100, stage(StatSpe, -1))),
	attack("Whirlpool", TypeWater, spec, 15, 70, 15).lock(LockPartialTrap),
)

var gen3Moves = movePatches(map[string]MovePatch{
	"roar":        {Priority: lo.ToPtr(-6)},
	"whirlwind":   {Priority: lo.ToPtr(-6)},
	"protect":     {Priority: lo.ToPtr(4)},
	"detect":      {Priority: lo.ToPtr(4)},
	"endure":      {Priority: lo.ToPtr(4)},
	"sky-attack":  {CritRatio: lo.ToPtr(2), Secondary: sec(flinch(30))},
	"counter":     {Priority: lo.ToPtr(-5)},
	"mirror-coat": {Priority: lo.ToPtr(-5)},
},
	custom("Taunt", TypeDark, TargetFoe, 100, 20),
	custom("Yawn", TypeNormal, TargetFoe, 0, 10),
	custom("Ingrain", TypeGrass, TargetSelf, 0, 20),
	inflict("Will-O-Wisp", TypeFire, StatusBurn, 75, 15).flags(FlagCheckImmunity),
	boost("Calm Mind", TypePsychic, 20, stage(StatSpA, 1), stage(StatSpD, 1)),
	boost("Bulk Up", TypeFighting, 20, stage(StatAtk, 1), stage(StatDef, 1)),
	boost("Dragon Dance", TypeDragon, 20, stage(StatAtk, 1), stage(StatSpe, 1)),
	boost("Iron Defense", TypeSteel, 15, stage(StatDef, 2)),
	withWeather(effect("Hail", TypeIce, KindWeather, TargetField, 0, 10), WeatherHail),
	effect("Block", TypeNormal, KindPreventEscape, TargetFoe, 0, 5),
	attack("Overheat", TypeFire, spec, 140, 90, 5).selfStages(stage(StatSpA, -2)),
	attack("Superpower", TypeFighting, phys, 120, 100, 5).contact().selfStages(stage(StatAtk, -1), stage(StatDef, -1)),
	attack("Leaf Blade", TypeGrass, phys, 70, 100, 15).contact().highCrit(),
	attack("Brick Break", TypeFighting, phys, 75, 100, 15).contact().flags(FlagBreaksScreens),
	attack("Fake Out", TypeNormal, phys, 40, 100, 10).contact().priority(1).flags(FlagFakeOut),
	attack("Facade", TypeNormal, phys, 70, 100, 20).contact().flags(FlagStatusBoost),
	attack("Rock Tomb", TypeRock, phys, 50, 80, 10).secondary(lower(100, stage(StatSpe, -1))),
	attack("Aerial Ace", TypeFlying, phys, 60, 0, 20).contact(),
	attack("Bullet Seed", TypeGrass, phys, 10, 100, 30).hits(2, 5),
	attack("Rock Blast", TypeRock, phys, 25, 80, 10).hits(2, 5),
)

var gen4Moves = movePatches(map[string]MovePatch{
	"dig":           {Power: lo.ToPtr(80)},
	"fly":           {Power: lo.ToPtr(90)},
	"outrage":       {Power: lo.ToPtr(120)},
	"petal-dance":   {Power: lo.ToPtr(90)},
	"giga-drain":    {PP: lo.ToPtr(10)},
	"fire-spin":     {Power: lo.ToPtr(35), Accuracy: lo.ToPtr(85)},
	"leaf-blade":    {Power: lo.ToPtr(90)},
	"crunch":        {Secondary: sec(lower(20, stage(StatDef, -1)))},
	"acid":          {Secondary: sec(lower(10, stage(StatSpD, -1)))},
	"hi-jump-kick":  {Power: lo.ToPtr(100)},
	"jump-kick":     {Power: lo.ToPtr(85)},
	"extreme-speed": {Priority: lo.ToPtr(2)},
	"disable":       {Accuracy: lo.ToPtr(80)},
	"zap-cannon":    {Power: lo.ToPtr(120)},
	"struggle":      {Recoil: lo.ToPtr(0)},
},
	attack("Close Combat", TypeFighting, phys, 120, 100, 5).contact().selfStages(stage(StatDef, -1), stage(StatSpD, -1)),
	attack("Earth Power", TypeGround, spec, 90, 100, 10).secondary(lower(10, stage(StatSpD, -1))),
	attack("Flare Blitz", TypeFire, phys, 120, 100, 15).contact().recoil(33).secondary(chance(10, StatusBurn)),
	attack("Brave Bird", TypeFlying, phys, 120, 100, 15).contact().recoil(33),
	attack("U-turn", TypeBug, phys, 70, 100, 20).contact().asCustom(),
	attack("Dragon Pulse", TypeDragon, spec, 90, 100, 10),
	attack("Flash Cannon", TypeSteel, spec, 80, 100, 10).secondary(lower(10, stage(StatSpD, -1))),
	attack("Focus Blast", TypeFighting, spec, 120, 70, 5).secondary(lower(10, stage(StatSpD, -1))),
	attack("Aura Sphere", TypeFighting, spec, 90, 0, 20),
	attack("Ice Shard", TypeIce, phys, 40, 100, 30).priority(1),
	attack("Bullet Punch", TypeSteel, phys, 40, 100, 30).punch().priority(1),
	attack("X-Scissor", TypeBug, phys, 80, 100, 15).contact(),
	attack("Shadow Claw", TypeGhost, phys, 70, 100, 15).contact().highCrit(),
	attack("Stone Edge", TypeRock, phys, 100, 80, 5).highCrit(),
	attack("Night Slash", TypeDark, phys, 70, 100, 15).contact().highCrit(),
	boost("Nasty Plot", TypeDark, 20, stage(StatSpA, 2)),
	effect("Roost", TypeFlying, KindRecover, TargetSelf, 0, 10).heal(50),
)
