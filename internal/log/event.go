package log

import "fmt"

// EventType enumerates all observable battle events.
type EventType int

const (
	EventTurn EventType = iota
	EventSwitch
	EventDrag
	EventMove
	EventDamage
	EventRecover
	EventHitSubstitute
	EventSubstituteBreak
	EventSubstitute
	EventFaint
	EventStatus
	EventCureStatus
	EventStageChange
	EventInfo
	EventTransform
	EventDisable
	EventCharge
	EventMimic
	EventTypeConversion
	EventMagnitude
	EventWeather
	EventScreen
	EventAbility
	EventItem
	EventForfeit
	EventVictory
	EventDraw
)

func (e EventType) String() string {
	switch e {
	case EventTurn:
		return "turn"
	case EventSwitch:
		return "switch"
	case EventDrag:
		return "drag"
	case EventMove:
		return "move"
	case EventDamage:
		return "damage"
	case EventRecover:
		return "recover"
	case EventHitSubstitute:
		return "hit-substitute"
	case EventSubstituteBreak:
		return "substitute-break"
	case EventSubstitute:
		return "substitute"
	case EventFaint:
		return "faint"
	case EventStatus:
		return "status"
	case EventCureStatus:
		return "cure-status"
	case EventStageChange:
		return "stage-change"
	case EventInfo:
		return "info"
	case EventTransform:
		return "transform"
	case EventDisable:
		return "disable"
	case EventCharge:
		return "charge"
	case EventMimic:
		return "mimic"
	case EventTypeConversion:
		return "type-conversion"
	case EventMagnitude:
		return "magnitude"
	case EventWeather:
		return "weather"
	case EventScreen:
		return "screen"
	case EventAbility:
		return "ability"
	case EventItem:
		return "item"
	case EventForfeit:
		return "forfeit"
	case EventVictory:
		return "victory"
	case EventDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// MarshalText encodes the type as its wire name.
func (e EventType) MarshalText() ([]byte, error) {
	s := e.String()
	if s == "unknown" {
		return nil, fmt.Errorf("unknown event type %d", int(e))
	}
	return []byte(s), nil
}

func (e *EventType) UnmarshalText(b []byte) error {
	for t := EventTurn; t <= EventDraw; t++ {
		if t.String() == string(b) {
			*e = t
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", string(b))
}

// Info keys carried by EventInfo.
const (
	InfoMiss           = "miss"
	InfoImmune         = "immune"
	InfoFailed         = "failed"
	InfoNoEffect       = "no-effect"
	InfoProtected      = "protected"
	InfoEndured        = "endured"
	InfoFastAsleep     = "fast-asleep"
	InfoWokeUp         = "woke-up"
	InfoFrozen         = "frozen"
	InfoThawed         = "thawed"
	InfoFullPara       = "full-paralysis"
	InfoConfused       = "confused"
	InfoConfusionEnded = "confusion-ended"
	InfoFlinch         = "flinch"
	InfoRecharge       = "must-recharge"
	InfoCrit           = "critical-hit"
	InfoSuperEffective = "super-effective"
	InfoResisted       = "resisted"
	InfoHitCount       = "hit-count"
	InfoBound          = "bound"
	InfoInfatuated     = "infatuated"
	InfoLoafing        = "loafing"
	InfoPerish         = "perish"
	InfoTrapped        = "trapped"
	InfoLockedOn       = "locked-on"
	InfoLeechSeed      = "leech-seed"
	InfoDisableEnded   = "disable-ended"
	InfoEncore         = "encore"
	InfoEncoreEnded    = "encore-ended"
	InfoTaunt          = "taunt"
	InfoTauntEnded     = "taunt-ended"
	InfoScreenEnded    = "screen-ended"
	InfoWeatherEnded   = "weather-ended"
	InfoBideStore      = "bide-store"
	InfoBideRelease    = "bide-release"
	InfoThrashEnded    = "thrash-ended"
	InfoRage           = "rage"
	InfoSpikes         = "spikes"
	InfoSpikesCleared  = "spikes-cleared"
	InfoHaze           = "haze"
	InfoFocusEnergy    = "focus-energy"
	InfoCurse          = "curse"
	InfoNightmare      = "nightmare"
	InfoForesight      = "foresight"
	InfoIngrain        = "ingrain"
	InfoYawn           = "yawn"
	InfoPainSplit      = "pain-split"
	InfoNothing        = "nothing-happened"
	InfoProtect        = "protect"
	InfoMeanLook       = "mean-look"
	InfoBatonPass      = "baton-pass"
	InfoSwitchOut      = "switch-out"
	InfoTimeout        = "timeout"
)

// HP is an HP snapshot. For the owner it carries exact values; censored
// copies carry Current == Percent over a Max of 100.
type HP struct {
	Current  int  `json:"current"`
	Max      int  `json:"max"`
	Percent  int  `json:"percent"`
	Censored bool `json:"censored,omitempty"`
}

// VolatileDiff is the post-event volatile state of one side's active
// combatant, sent whenever it changed since the last broadcast.
type VolatileDiff struct {
	Flags  uint64         `json:"flags"`
	Stages map[string]int `json:"stages,omitempty"`
	Types  []string       `json:"types,omitempty"`
}

// Event is a single observable battle event. Player is the side the event
// is about (the acting or affected combatant's owner); Source is the other
// side when it caused the event.
type Event struct {
	Seq       int                     `json:"seq"`
	Turn      int                     `json:"turn"`
	Type      EventType               `json:"type"`
	Player    string                  `json:"player,omitempty"`
	Source    string                  `json:"source,omitempty"`
	Species   string                  `json:"species,omitempty"`
	TeamIndex *int                    `json:"teamIndex,omitempty"`
	Level     int                     `json:"level,omitempty"`
	Move      string                  `json:"move,omitempty"`
	Amount    int                     `json:"amount,omitempty"`
	HP        *HP                     `json:"hp,omitempty"`
	Status    string                  `json:"status,omitempty"`
	Stat      string                  `json:"stat,omitempty"`
	Stage     int                     `json:"stage,omitempty"`
	Delta     int                     `json:"delta,omitempty"`
	Info      string                  `json:"info,omitempty"`
	Value     string                  `json:"value,omitempty"`
	Types     []string                `json:"types,omitempty"`
	Winner    string                  `json:"winner,omitempty"`
	Volatiles map[string]VolatileDiff `json:"volatiles,omitempty"`
}

// Percent rounds current/max up to a whole percentage, so anything still
// standing shows at least 1%.
func Percent(current, max int) int {
	if max <= 0 || current <= 0 {
		return 0
	}
	return (current*100 + max - 1) / max
}

// NewHP builds an exact HP snapshot.
func NewHP(current, max int) *HP {
	return &HP{Current: current, Max: max, Percent: Percent(current, max)}
}
