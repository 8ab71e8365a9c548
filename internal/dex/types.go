package dex

import (
	"fmt"
	"strings"
)

// --- Elemental types ---

type Type int

const (
	TypeNone Type = iota // typeless ("???"): struggle, confusion self-hits, bide
	TypeNormal
	TypeFighting
	TypeFlying
	TypePoison
	TypeGround
	TypeRock
	TypeBug
	TypeGhost
	TypeSteel
	TypeFire
	TypeWater
	TypeGrass
	TypeElectric
	TypePsychic
	TypeIce
	TypeDragon
	TypeDark
	NumTypes
)

var typeNames = [NumTypes]string{
	"???", "Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost",
	"Steel", "Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon", "Dark",
}

func (t Type) String() string {
	if t < 0 || t >= NumTypes {
		return "???"
	}
	return typeNames[t]
}

// ParseType resolves a type by name, case-insensitively.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(name, s) {
			return Type(i), nil
		}
	}
	return TypeNone, fmt.Errorf("unknown type %q", s)
}

// IsPhysical reports whether moves of this type use Attack/Defense under the
// type-based split used before generation 4.
func (t Type) IsPhysical() bool {
	switch t {
	case TypeNone, TypeNormal, TypeFighting, TypeFlying, TypePoison, TypeGround,
		TypeRock, TypeBug, TypeGhost, TypeSteel:
		return true
	}
	return false
}

// --- Stats ---

type Stat int

const (
	StatHP Stat = iota
	StatAtk
	StatDef
	StatSpA
	StatSpD
	StatSpe
	StatAccuracy
	StatEvasion
)

// NumStats is the number of permanent stats (HP through Speed).
const NumStats = 6

// NumBoosts is the number of stats that carry a stage (everything but HP).
const NumBoosts = 7

func (s Stat) String() string {
	switch s {
	case StatHP:
		return "hp"
	case StatAtk:
		return "atk"
	case StatDef:
		return "def"
	case StatSpA:
		return "spa"
	case StatSpD:
		return "spd"
	case StatSpe:
		return "spe"
	case StatAccuracy:
		return "accuracy"
	case StatEvasion:
		return "evasion"
	default:
		return "?"
	}
}

// BoostIndex maps a boostable stat onto its index in a stage array.
func (s Stat) BoostIndex() int { return int(s) - 1 }

// BoostStat is the inverse of BoostIndex.
func BoostStat(i int) Stat { return Stat(i + 1) }

// ParseStat accepts the short names used in team files.
func ParseStat(s string) (Stat, error) {
	switch strings.ToLower(s) {
	case "hp":
		return StatHP, nil
	case "atk", "attack":
		return StatAtk, nil
	case "def", "defense":
		return StatDef, nil
	case "spa", "spatk", "special":
		return StatSpA, nil
	case "spd", "spdef":
		return StatSpD, nil
	case "spe", "speed":
		return StatSpe, nil
	}
	return StatHP, fmt.Errorf("unknown stat %q", s)
}

// Stats holds one value per permanent stat, indexed by Stat.
type Stats [NumStats]int

// --- Non-volatile status ---

type Status int

const (
	StatusNone Status = iota
	StatusBurn
	StatusFreeze
	StatusParalysis
	StatusPoison
	StatusToxic
	StatusSleep
)

func (s Status) String() string {
	switch s {
	case StatusBurn:
		return "brn"
	case StatusFreeze:
		return "frz"
	case StatusParalysis:
		return "par"
	case StatusPoison:
		return "psn"
	case StatusToxic:
		return "tox"
	case StatusSleep:
		return "slp"
	default:
		return ""
	}
}

// IsPoison is true for both regular and bad poison.
func (s Status) IsPoison() bool { return s == StatusPoison || s == StatusToxic }

// --- Moves ---

type Category int

const (
	CategoryPhysical Category = iota
	CategorySpecial
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "Physical"
	case CategorySpecial:
		return "Special"
	default:
		return "Status"
	}
}

// MoveKind selects the shared handler that executes a move.
type MoveKind int

const (
	KindDamage MoveKind = iota
	KindStatus
	KindStage
	KindConfuse
	KindRecover
	KindScreen
	KindWeather
	KindSwitch
	KindPhase
	KindProtect
	KindPreventEscape
	KindLockOn
	KindCustom
	NumMoveKinds
)

func (k MoveKind) String() string {
	switch k {
	case KindDamage:
		return "damage"
	case KindStatus:
		return "status"
	case KindStage:
		return "stage"
	case KindConfuse:
		return "confuse"
	case KindRecover:
		return "recover"
	case KindScreen:
		return "screen"
	case KindWeather:
		return "weather"
	case KindSwitch:
		return "switch"
	case KindPhase:
		return "phase"
	case KindProtect:
		return "protect"
	case KindPreventEscape:
		return "prevent-escape"
	case KindLockOn:
		return "lock-on"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

type Target int

const (
	TargetFoe Target = iota
	TargetSelf
	TargetField
)

// LockKind names the multi-turn state a move puts its user in.
type LockKind int

const (
	LockNone LockKind = iota
	LockCharge
	LockRecharge
	LockThrash
	LockBide
	LockPartialTrap
	LockRage
)

func (l LockKind) String() string {
	switch l {
	case LockCharge:
		return "charge"
	case LockRecharge:
		return "recharge"
	case LockThrash:
		return "thrash"
	case LockBide:
		return "bide"
	case LockPartialTrap:
		return "partial-trap"
	case LockRage:
		return "rage"
	default:
		return "none"
	}
}

// FixedDamage marks moves whose damage ignores the formula.
type FixedDamage int

const (
	FixedNone FixedDamage = iota
	FixedAmount
	FixedLevel
	FixedHalfHP
	FixedPsywave
	FixedOHKO
)

type MoveFlag uint32

const (
	FlagContact MoveFlag = 1 << iota
	FlagProtectable
	FlagSound
	FlagPunch
	FlagMirror
	FlagNoMetronome
	FlagInvulnerable // semi-invulnerable while charging (fly, dig)
	FlagSelfDestruct
	FlagCrash // crash damage on miss
	FlagHitsFlying
	FlagHitsDigging
	FlagCheckImmunity // status move that respects type immunity
	FlagBypassSub
	FlagFalseSwipe
	FlagSunSkipsCharge
	FlagWeatherHeal
	FlagBreaksScreens
	FlagFakeOut
	FlagStatusBoost // facade: doubled power while statused
	FlagFixedHits   // MultiHit is an exact count, not a range
)

// Has reports whether all bits of f are set.
func (m MoveFlag) Has(f MoveFlag) bool { return m&f == f }

// --- Field ---

type Weather int

const (
	WeatherNone Weather = iota
	WeatherRain
	WeatherSun
	WeatherSand
	WeatherHail
)

func (w Weather) String() string {
	switch w {
	case WeatherRain:
		return "rain"
	case WeatherSun:
		return "sun"
	case WeatherSand:
		return "sandstorm"
	case WeatherHail:
		return "hail"
	default:
		return "none"
	}
}

type Screen int

const (
	ScreenNone Screen = iota
	ScreenReflect
	ScreenLightScreen
	ScreenSafeguard
	ScreenMist
)

func (s Screen) String() string {
	switch s {
	case ScreenReflect:
		return "reflect"
	case ScreenLightScreen:
		return "light-screen"
	case ScreenSafeguard:
		return "safeguard"
	case ScreenMist:
		return "mist"
	default:
		return "none"
	}
}

// ToID normalizes a display name into a table key: lowercase letters and
// digits, with spaces and underscores turned into dashes.
func ToID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
