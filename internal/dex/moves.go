package dex

const (
	phys = CategoryPhysical
	spec = CategorySpecial
)

// attack builds a damaging move that targets the foe.
func attack(name string, t Type, cat Category, power, acc, pp int) Move {
	return Move{
		ID:        ToID(name),
		Name:      name,
		Type:      t,
		Category:  cat,
		Power:     power,
		Accuracy:  acc,
		PP:        pp,
		Kind:      KindDamage,
		Target:    TargetFoe,
		CritRatio: 1,
		Flags:     FlagProtectable | FlagMirror,
	}
}

// effect builds a non-damaging move.
func effect(name string, t Type, kind MoveKind, target Target, acc, pp int) Move {
	m := Move{
		ID:        ToID(name),
		Name:      name,
		Type:      t,
		Category:  CategoryStatus,
		Accuracy:  acc,
		PP:        pp,
		Kind:      kind,
		Target:    target,
		CritRatio: 1,
	}
	if target == TargetFoe {
		m.Flags = FlagProtectable | FlagMirror
	}
	return m
}

func boost(name string, t Type, pp int, changes ...StageChange) Move {
	m := effect(name, t, KindStage, TargetSelf, 0, pp)
	m.Stages = changes
	return m
}

func drop(name string, t Type, acc, pp int, changes ...StageChange) Move {
	m := effect(name, t, KindStage, TargetFoe, acc, pp)
	m.Stages = changes
	return m
}

func inflict(name string, t Type, status Status, acc, pp int) Move {
	m := effect(name, t, KindStatus, TargetFoe, acc, pp)
	m.Status = status
	return m
}

func custom(name string, t Type, target Target, acc, pp int) Move {
	return effect(name, t, KindCustom, target, acc, pp)
}

func stage(s Stat, d int) StageChange { return StageChange{Stat: s, Delta: d} }

func (m Move) contact() Move { m.Flags |= FlagContact; return m }

func (m Move) punch() Move { m.Flags |= FlagContact | FlagPunch; return m }

func (m Move) flags(f MoveFlag) Move { m.Flags |= f; return m }

func (m Move) priority(p int) Move { m.Priority = p; return m }

func (m Move) highCrit() Move { m.CritRatio = 2; return m }

func (m Move) hits(min, max int) Move {
	m.MultiHit = [2]int{min, max}
	if min == max {
		m.Flags |= FlagFixedHits
	}
	return m
}

func (m Move) recoil(pct int) Move { m.Recoil = pct; return m }

func (m Move) drain(pct int) Move { m.Drain = pct; return m }

func (m Move) lock(l LockKind) Move { m.Lock = l; return m }

func (m Move) fixed(f FixedDamage, amount int) Move {
	m.Fixed = f
	m.FixedAmount = amount
	return m
}

func (m Move) secondary(s Secondary) Move { m.Secondary = &s; return m }

func (m Move) selfStages(changes ...StageChange) Move { m.Stages = changes; return m }

func (m Move) asCustom() Move { m.Kind = KindCustom; return m }

func (m Move) heal(pct int) Move { m.Heal = pct; return m }

func chance(pct int, s Status) Secondary { return Secondary{Chance: pct, Status: s} }

func flinch(pct int) Secondary { return Secondary{Chance: pct, Flinch: true} }

func confuse(pct int) Secondary { return Secondary{Chance: pct, Confuse: true} }

func lower(pct int, changes ...StageChange) Secondary { return Secondary{Chance: pct, Stages: changes} }

func raiseSelf(pct int, changes ...StageChange) Secondary {
	return Secondary{Chance: pct, Stages: changes, Self: true}
}

// Struggle is the fallback used when no move slot is usable.
const StruggleID = "struggle"

// baseMoves carries generation 1 values.
var baseMoves = tableOf(func(m Move) string { return m.ID },
	// Normal
	attack("Tackle", TypeNormal, phys, 35, 95, 35).contact(),
	attack("Quick Attack", TypeNormal, phys, 40, 100, 30).contact().priority(1),
	attack("Body Slam", TypeNormal, phys, 85, 100, 15).contact().secondary(chance(30, StatusParalysis)),
	attack("Hyper Beam", TypeNormal, spec, 150, 90, 5).lock(LockRecharge),
	attack("Double-Edge", TypeNormal, phys, 100, 100, 15).contact().recoil(25),
	attack("Slash", TypeNormal, phys, 70, 100, 20).contact().highCrit(),
	attack("Swift", TypeNormal, spec, 60, 0, 20),
	attack("Strength", TypeNormal, phys, 80, 100, 15).contact(),
	attack("Headbutt", TypeNormal, phys, 70, 100, 15).contact().secondary(flinch(30)),
	attack("Stomp", TypeNormal, phys, 65, 100, 20).contact().secondary(flinch(30)),
	attack("Mega Kick", TypeNormal, phys, 120, 75, 5).contact(),
	attack("Self-Destruct", TypeNormal, phys, 130, 100, 5).flags(FlagSelfDestruct),
	attack("Explosion", TypeNormal, phys, 170, 100, 5).flags(FlagSelfDestruct),
	attack("Fury Swipes", TypeNormal, phys, 18, 80, 15).contact().hits(2, 5),
	attack("Rage", TypeNormal, phys, 20, 100, 20).contact().lock(LockRage),
	attack("Thrash", TypeNormal, phys, 90, 100, 20).contact().lock(LockThrash),
	attack("Super Fang", TypeNormal, phys, 0, 90, 10).contact().fixed(FixedHalfHP, 0),
	attack("Sonic Boom", TypeNormal, spec, 0, 90, 20).fixed(FixedAmount, 20),
	attack("Wrap", TypeNormal, phys, 15, 85, 20).contact().lock(LockPartialTrap),
	attack("Bind", TypeNormal, phys, 15, 75, 20).contact().lock(LockPartialTrap),
	attack("Tri Attack", TypeNormal, spec, 80, 100, 10),
	attack("Karate Chop", TypeNormal, phys, 50, 100, 25).contact().highCrit(),
	attack("Bite", TypeNormal, phys, 60, 100, 25).contact().secondary(flinch(10)),
	attack("Gust", TypeNormal, spec, 40, 100, 35),
	attack("Razor Wind", TypeNormal, spec, 80, 75, 10).lock(LockCharge),
	attack("Skull Bash", TypeNormal, phys, 100, 100, 15).contact().lock(LockCharge),
	attack("Horn Drill", TypeNormal, phys, 0, 30, 5).contact().fixed(FixedOHKO, 0),
	attack("Guillotine", TypeNormal, phys, 0, 30, 5).contact().fixed(FixedOHKO, 0),
	attack("Bide", TypeNormal, phys, 0, 0, 10).contact().lock(LockBide).asCustom(),
	attack("Struggle", TypeNormal, phys, 50, 100, 1).contact().recoil(50).flags(FlagNoMetronome),
	custom("Metronome", TypeNormal, TargetSelf, 0, 10).flags(FlagNoMetronome),
	custom("Mirror Move", TypeFlying, TargetFoe, 0, 20).flags(FlagNoMetronome),

	// Fighting
	attack("Seismic Toss", TypeFighting, phys, 0, 100, 20).contact().fixed(FixedLevel, 0),
	attack("Counter", TypeFighting, phys, 0, 100, 20).contact().priority(-1).asCustom().flags(FlagNoMetronome),
	attack("Double Kick", TypeFighting, phys, 30, 100, 30).contact().hits(2, 2),
	attack("Submission", TypeFighting, phys, 80, 80, 25).contact().recoil(25),
	attack("Hi Jump Kick", TypeFighting, phys, 85, 90, 20).contact().flags(FlagCrash),
	attack("Jump Kick", TypeFighting, phys, 70, 95, 25).contact().flags(FlagCrash),

	// Flying / Ground / Rock / Bug
	attack("Sky Attack", TypeFlying, phys, 140, 90, 5).lock(LockCharge),
	attack("Fly", TypeFlying, phys, 70, 95, 15).contact().lock(LockCharge).flags(FlagInvulnerable),
	attack("Dig", TypeGround, phys, 100, 100, 10).contact().lock(LockCharge).flags(FlagInvulnerable),
	attack("Earthquake", TypeGround, phys, 100, 100, 10).flags(FlagHitsDigging),
	attack("Fissure", TypeGround, phys, 0, 30, 5).fixed(FixedOHKO, 0).flags(FlagHitsDigging),
	attack("Rock Slide", TypeRock, phys, 75, 90, 10),
	attack("Twineedle", TypeBug, phys, 25, 100, 20).hits(2, 2).secondary(chance(20, StatusPoison)),
	attack("Pin Missile", TypeBug, phys, 14, 85, 20).hits(2, 5),
	attack("Leech Life", TypeBug, phys, 20, 100, 15).contact().drain(50),

	// Electric
	attack("Thunderbolt", TypeElectric, spec, 95, 100, 15).secondary(chance(10, StatusParalysis)),
	attack("Thunder", TypeElectric, spec, 120, 70, 10).secondary(chance(10, StatusParalysis)),
	attack("Thunder Shock", TypeElectric, spec, 40, 100, 30).secondary(chance(10, StatusParalysis)),
	attack("Thunder Punch", TypeElectric, phys, 75, 100, 15).punch().secondary(chance(10, StatusParalysis)),

	// Ice
	attack("Ice Beam", TypeIce, spec, 95, 100, 10).secondary(chance(10, StatusFreeze)),
	attack("Blizzard", TypeIce, spec, 120, 90, 5).secondary(chance(10, StatusFreeze)),
	attack("Ice Punch", TypeIce, phys, 75, 100, 15).punch().secondary(chance(10, StatusFreeze)),

	// Fire
	attack("Flamethrower", TypeFire, spec, 95, 100, 15).secondary(chance(10, StatusBurn)),
	attack("Fire Blast", TypeFire, spec, 120, 85, 5).secondary(chance(30, StatusBurn)),
	attack("Fire Punch", TypeFire, phys, 75, 100, 15).punch().secondary(chance(10, StatusBurn)),
	attack("Ember", TypeFire, spec, 40, 100, 25).secondary(chance(10, StatusBurn)),
	attack("Fire Spin", TypeFire, spec, 15, 70, 15).lock(LockPartialTrap),

	// Water
	attack("Surf", TypeWater, spec, 95, 100, 15),
	attack("Hydro Pump", TypeWater, spec, 120, 80, 5),
	attack("Water Gun", TypeWater, spec, 40, 100, 25),
	attack("Crabhammer", TypeWater, phys, 90, 85, 10).contact().highCrit(),
	attack("Clamp", TypeWater, phys, 35, 75, 10).contact().lock(LockPartialTrap),

	// Psychic / Ghost / Dragon
	attack("Psychic", TypePsychic, spec, 90, 100, 10).secondary(lower(33, stage(StatSpD, -1))),
	attack("Psybeam", TypePsychic, spec, 65, 100, 20).secondary(confuse(10)),
	attack("Confusion", TypePsychic, spec, 50, 100, 25).secondary(confuse(10)),
	attack("Psywave", TypePsychic, spec, 0, 80, 15).fixed(FixedPsywave, 0),
	attack("Night Shade", TypeGhost, spec, 0, 100, 15).fixed(FixedLevel, 0),
	attack("Dragon Rage", TypeDragon, spec, 0, 100, 10).fixed(FixedAmount, 40),

	// Grass / Poison
	attack("Mega Drain", TypeGrass, spec, 40, 100, 10).drain(50),
	attack("Absorb", TypeGrass, spec, 20, 100, 20).drain(50),
	attack("Razor Leaf", TypeGrass, phys, 55, 95, 25).highCrit(),
	attack("Vine Whip", TypeGrass, phys, 35, 100, 10).contact(),
	attack("Petal Dance", TypeGrass, spec, 70, 100, 20).contact().lock(LockThrash),
	attack("Solar Beam", TypeGrass, spec, 120, 100, 10).lock(LockCharge).flags(FlagSunSkipsCharge),
	attack("Sludge", TypePoison, spec, 65, 100, 20).secondary(chance(30, StatusPoison)),
	attack("Acid", TypePoison, spec, 40, 100, 30).secondary(lower(33, stage(StatDef, -1))),
	attack("Poison Sting", TypePoison, phys, 15, 100, 35).secondary(chance(20, StatusPoison)),

	// Stat stages
	boost("Swords Dance", TypeNormal, 30, stage(StatAtk, 2)),
	boost("Sharpen", TypeNormal, 30, stage(StatAtk, 1)),
	boost("Meditate", TypePsychic, 40, stage(StatAtk, 1)),
	boost("Harden", TypeNormal, 30, stage(StatDef, 1)),
	boost("Withdraw", TypeWater, 40, stage(StatDef, 1)),
	boost("Defense Curl", TypeNormal, 40, stage(StatDef, 1)),
	boost("Barrier", TypePsychic, 30, stage(StatDef, 2)),
	boost("Acid Armor", TypePoison, 40, stage(StatDef, 2)),
	boost("Agility", TypePsychic, 30, stage(StatSpe, 2)),
	boost("Amnesia", TypePsychic, 20, stage(StatSpD, 2)),
	boost("Growth", TypeNormal, 40, stage(StatSpA, 1)),
	boost("Double Team", TypeNormal, 15, stage(StatEvasion, 1)),
	boost("Minimize", TypeNormal, 20, stage(StatEvasion, 1)),
	drop("Growl", TypeNormal, 100, 40, stage(StatAtk, -1)).flags(FlagSound),
	drop("Leer", TypeNormal, 100, 30, stage(StatDef, -1)),
	drop("Tail Whip", TypeNormal, 100, 30, stage(StatDef, -1)),
	drop("Screech", TypeNormal, 85, 40, stage(StatDef, -2)).flags(FlagSound),
	drop("String Shot", TypeBug, 95, 40, stage(StatSpe, -1)),
	drop("Sand Attack", TypeNormal, 100, 15, stage(StatAccuracy, -1)),
	drop("Smokescreen", TypeNormal, 100, 20, stage(StatAccuracy, -1)),
	drop("Flash", TypeNormal, 70, 20, stage(StatAccuracy, -1)),
	drop("Kinesis", TypePsychic, 80, 15, stage(StatAccuracy, -1)),

	// Status
	inflict("Thunder Wave", TypeElectric, StatusParalysis, 100, 20).flags(FlagCheckImmunity),
	inflict("Toxic", TypePoison, StatusToxic, 85, 10),
	inflict("Poison Powder", TypeGrass, StatusPoison, 75, 35),
	inflict("Poison Gas", TypePoison, StatusPoison, 55, 40),
	inflict("Stun Spore", TypeGrass, StatusParalysis, 75, 30),
	inflict("Glare", TypeNormal, StatusParalysis, 75, 30),
	inflict("Sleep Powder", TypeGrass, StatusSleep, 75, 15),
	inflict("Spore", TypeGrass, StatusSleep, 100, 15),
	inflict("Hypnosis", TypePsychic, StatusSleep, 60, 20),
	inflict("Sing", TypeNormal, StatusSleep, 55, 15).flags(FlagSound),
	inflict("Lovely Kiss", TypeNormal, StatusSleep, 75, 10),
	effect("Confuse Ray", TypeGhost, KindConfuse, TargetFoe, 100, 10),
	effect("Supersonic", TypeNormal, KindConfuse, TargetFoe, 55, 20).flags(FlagSound),

	// Recovery, screens, field
	effect("Recover", TypeNormal, KindRecover, TargetSelf, 0, 20).heal(50),
	effect("Soft-Boiled", TypeNormal, KindRecover, TargetSelf, 0, 10).heal(50),
	withScreen(effect("Light Screen", TypePsychic, KindScreen, TargetSelf, 0, 30), ScreenLightScreen),
	withScreen(effect("Reflect", TypePsychic, KindScreen, TargetSelf, 0, 20), ScreenReflect),
	withScreen(effect("Mist", TypeIce, KindScreen, TargetSelf, 0, 30), ScreenMist),
	effect("Roar", TypeNormal, KindPhase, TargetFoe, 100, 20).flags(FlagSound),
	effect("Whirlwind", TypeNormal, KindPhase, TargetFoe, 85, 20),

	// Custom
	custom("Rest", TypePsychic, TargetSelf, 0, 10),
	custom("Substitute", TypeNormal, TargetSelf, 0, 10),
	custom("Transform", TypeNormal, TargetFoe, 0, 10).flags(FlagNoMetronome),
	custom("Mimic", TypeNormal, TargetFoe, 0, 10).flags(FlagNoMetronome),
	custom("Conversion", TypeNormal, TargetSelf, 0, 30),
	custom("Haze", TypeIce, TargetField, 0, 30),
	custom("Disable", TypeNormal, TargetFoe, 55, 20),
	custom("Leech Seed", TypeGrass, TargetFoe, 90, 10),
	custom("Focus Energy", TypeNormal, TargetSelf, 0, 30),
	custom("Teleport", TypePsychic, TargetSelf, 0, 20),
	custom("Splash", TypeNormal, TargetSelf, 0, 40),
)

func withScreen(m Move, s Screen) Move {
	m.Screen = s
	return m
}

func withWeather(m Move, w Weather) Move {
	m.Weather = w
	return m
}
