package log

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EventLogger is the interface for logging battle events. The battle
// assigns Seq and Turn before an event reaches a logger.
type EventLogger interface {
	Log(event Event)
	Events() []Event
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []Event
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event Event) {
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []Event {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []Event {
	var result []Event
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() Event {
	if len(l.events) == 0 {
		return Event{}
	}
	return l.events[len(l.events)-1]
}

// HasInfo reports whether any info event carries the given key.
func (l *MemoryLogger) HasInfo(info string) bool {
	for _, e := range l.events {
		if e.Type == EventInfo && e.Info == info {
			return true
		}
	}
	return false
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event Event) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- MultiLogger: fans events out to several loggers ---

type MultiLogger struct {
	loggers []EventLogger
}

func NewMultiLogger(loggers ...EventLogger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (l *MultiLogger) Log(event Event) {
	for _, sub := range l.loggers {
		sub.Log(event)
	}
}

// Events returns the first logger's events.
func (l *MultiLogger) Events() []Event {
	if len(l.loggers) == 0 {
		return nil
	}
	return l.loggers[0].Events()
}

// --- Formatting ---

// Title turns an ID such as "light-screen" into "Light Screen". Casers are
// stateful, so each call gets its own.
func Title(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

var statusNames = map[string]string{
	"brn": "burn",
	"frz": "freeze",
	"par": "paralysis",
	"psn": "poison",
	"tox": "bad poison",
	"slp": "sleep",
}

func statusName(s string) string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return s
}

func who(e Event) string {
	if e.Species == "" {
		return e.Player
	}
	return e.Player + "'s " + e.Species
}

func hpText(hp *HP) string {
	if hp == nil {
		return ""
	}
	if hp.Censored {
		return fmt.Sprintf(" [%d%%]", hp.Percent)
	}
	return fmt.Sprintf(" [%d/%d]", hp.Current, hp.Max)
}

func describe(e Event) string {
	switch e.Type {
	case EventTurn:
		return fmt.Sprintf("=== Turn %d ===", e.Turn)
	case EventSwitch:
		return fmt.Sprintf("%s sent out %s (L%d)%s", e.Player, e.Species, e.Level, hpText(e.HP))
	case EventDrag:
		return fmt.Sprintf("%s was dragged out%s", who(e), hpText(e.HP))
	case EventMove:
		return fmt.Sprintf("%s used %s", who(e), e.Move)
	case EventDamage:
		s := fmt.Sprintf("%s lost HP", who(e))
		if e.Amount > 0 {
			s = fmt.Sprintf("%s took %d damage", who(e), e.Amount)
		}
		if e.Value != "" {
			s += " from " + strings.ReplaceAll(e.Value, "-", " ")
		}
		return s + hpText(e.HP)
	case EventRecover:
		s := fmt.Sprintf("%s restored HP", who(e))
		if e.Amount > 0 {
			s = fmt.Sprintf("%s restored %d HP", who(e), e.Amount)
		}
		return s + hpText(e.HP)
	case EventHitSubstitute:
		return fmt.Sprintf("%s's substitute took the hit", e.Player)
	case EventSubstituteBreak:
		return fmt.Sprintf("%s's substitute broke", e.Player)
	case EventSubstitute:
		return fmt.Sprintf("%s put up a substitute", who(e))
	case EventFaint:
		return fmt.Sprintf("%s fainted", who(e))
	case EventStatus:
		return fmt.Sprintf("%s is afflicted with %s", who(e), statusName(e.Status))
	case EventCureStatus:
		return fmt.Sprintf("%s was cured of %s", who(e), statusName(e.Status))
	case EventStageChange:
		verb := "rose"
		if e.Delta < 0 {
			verb = "fell"
		}
		return fmt.Sprintf("%s's %s %s by %d (now %+d)", who(e), Title(e.Stat), verb, abs(e.Delta), e.Stage)
	case EventInfo:
		s := fmt.Sprintf("%s: %s", who(e), Title(e.Info))
		if e.Value != "" {
			s += " (" + e.Value + ")"
		}
		return s
	case EventTransform:
		return fmt.Sprintf("%s transformed into %s", who(e), e.Value)
	case EventDisable:
		return fmt.Sprintf("%s's %s was disabled", who(e), e.Move)
	case EventCharge:
		return fmt.Sprintf("%s is charging %s", who(e), e.Move)
	case EventMimic:
		return fmt.Sprintf("%s learned %s", who(e), e.Move)
	case EventTypeConversion:
		return fmt.Sprintf("%s became %s type", who(e), strings.Join(e.Types, "/"))
	case EventMagnitude:
		return fmt.Sprintf("Magnitude %s!", e.Value)
	case EventWeather:
		if e.Value == "none" {
			return "The weather cleared"
		}
		return fmt.Sprintf("Weather: %s", Title(e.Value))
	case EventScreen:
		return fmt.Sprintf("%s: %s %s", e.Player, Title(e.Value), e.Info)
	case EventAbility:
		return fmt.Sprintf("%s's %s activated", who(e), Title(e.Value))
	case EventItem:
		return fmt.Sprintf("%s's %s activated", who(e), Title(e.Value))
	case EventForfeit:
		if e.Info == InfoTimeout {
			return fmt.Sprintf("%s ran out of time", e.Player)
		}
		return fmt.Sprintf("%s forfeited", e.Player)
	case EventVictory:
		return fmt.Sprintf("%s wins!", e.Winner)
	case EventDraw:
		return "The battle ended in a draw"
	}
	return e.Type.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e Event) string {
	return fmt.Sprintf("T%-2d %-16s| %s", e.Turn, e.Type, describe(e))
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int) Event {
	return Event{Turn: turn, Type: EventTurn}
}

func NewSwitchEvent(player, species string, teamIndex, level, hp, maxHP int) Event {
	return Event{
		Type:      EventSwitch,
		Player:    player,
		Species:   species,
		TeamIndex: &teamIndex,
		Level:     level,
		HP:        NewHP(hp, maxHP),
	}
}

func NewMoveEvent(player, species, move string) Event {
	return Event{Type: EventMove, Player: player, Species: species, Move: move}
}

// NewDamageEvent records HP lost. cause is empty for direct move damage
// and names the residual or recoil source otherwise.
func NewDamageEvent(player, species string, amount, hp, maxHP int, cause string) Event {
	return Event{
		Type:    EventDamage,
		Player:  player,
		Species: species,
		Amount:  amount,
		HP:      NewHP(hp, maxHP),
		Value:   cause,
	}
}

func NewRecoverEvent(player, species string, amount, hp, maxHP int) Event {
	return Event{
		Type:    EventRecover,
		Player:  player,
		Species: species,
		Amount:  amount,
		HP:      NewHP(hp, maxHP),
	}
}

func NewFaintEvent(player, species string) Event {
	return Event{Type: EventFaint, Player: player, Species: species}
}

func NewStatusEvent(player, species, status string) Event {
	return Event{Type: EventStatus, Player: player, Species: species, Status: status}
}

func NewCureStatusEvent(player, species, status string) Event {
	return Event{Type: EventCureStatus, Player: player, Species: species, Status: status}
}

func NewStageEvent(player, species, stat string, delta, stage int) Event {
	return Event{Type: EventStageChange, Player: player, Species: species, Stat: stat, Delta: delta, Stage: stage}
}

func NewInfoEvent(player, species, info string) Event {
	return Event{Type: EventInfo, Player: player, Species: species, Info: info}
}

func NewWeatherEvent(weather string) Event {
	return Event{Type: EventWeather, Value: weather}
}

func NewScreenEvent(player, screen string, started bool) Event {
	info := "ended"
	if started {
		info = "started"
	}
	return Event{Type: EventScreen, Player: player, Value: screen, Info: info}
}

func NewForfeitEvent(player string, timeout bool) Event {
	e := Event{Type: EventForfeit, Player: player}
	if timeout {
		e.Info = InfoTimeout
	}
	return e
}

func NewVictoryEvent(winner string) Event {
	return Event{Type: EventVictory, Winner: winner}
}

func NewDrawEvent() Event {
	return Event{Type: EventDraw}
}
