package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestEventTypeJSONUsesWireNames(t *testing.T) {
	e := NewDamageEvent("p2", "Snorlax", 35, 165, 200, "")
	e.Seq = 4
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"type":"damage"`) {
		t.Errorf("encoded event = %s", data)
	}

	var back Event
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Type != EventDamage || back.HP.Current != 165 || back.Seq != 4 {
		t.Errorf("decoded = %+v", back)
	}

	var bad EventType
	if err := bad.UnmarshalText([]byte("summon")); err == nil {
		t.Error("unknown type name should fail to decode")
	}
}

func TestEveryEventTypeHasAName(t *testing.T) {
	seen := map[string]EventType{}
	for et := EventTurn; et <= EventDraw; et++ {
		name := et.String()
		if name == "unknown" {
			t.Errorf("event type %d has no name", et)
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("event types %d and %d share name %q", prev, et, name)
		}
		seen[name] = et
	}
}

func TestPercentRoundsUp(t *testing.T) {
	tests := []struct{ cur, max, want int }{
		{200, 200, 100},
		{1, 200, 1},
		{0, 200, 0},
		{99, 200, 50},
		{100, 300, 34},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.cur, tt.max); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.cur, tt.max, got, tt.want)
		}
	}
}

func TestCensorEventsHidesOpponentDetails(t *testing.T) {
	events := []Event{
		NewSwitchEvent("p1", "Pikachu", 2, 50, 110, 110),
		NewSwitchEvent("p2", "Snorlax", 0, 50, 220, 220),
		NewDamageEvent("p2", "Snorlax", 35, 185, 220, ""),
		NewRecoverEvent("p1", "Pikachu", 10, 110, 110),
	}

	seen := CensorEvents(events, "p1")
	if len(seen) != len(events) {
		t.Fatalf("len = %d", len(seen))
	}

	own := seen[0]
	if own.TeamIndex == nil || *own.TeamIndex != 2 || own.HP.Censored || own.HP.Current != 110 {
		t.Errorf("own switch should be untouched: %+v", own)
	}
	if seen[3].Amount != 10 {
		t.Errorf("own recover amount = %d", seen[3].Amount)
	}

	foe := seen[1]
	if foe.TeamIndex != nil {
		t.Error("foe team index should be stripped")
	}
	if !foe.HP.Censored || foe.HP.Current != 100 || foe.HP.Max != 100 {
		t.Errorf("foe hp = %+v", foe.HP)
	}

	dmg := seen[2]
	if dmg.Amount != 0 {
		t.Errorf("foe damage amount leaked: %d", dmg.Amount)
	}
	if dmg.HP.Percent != 85 {
		t.Errorf("foe damage percent = %d, want 85", dmg.HP.Percent)
	}

	// the input slice is not modified
	if events[2].Amount != 35 || events[1].TeamIndex == nil || events[1].HP.Censored {
		t.Error("CensorEvents mutated its input")
	}
}

func TestCensorEventsSpectatorSeesNothingExact(t *testing.T) {
	events := []Event{
		NewSwitchEvent("p1", "Pikachu", 0, 50, 110, 110),
		NewDamageEvent("p1", "Pikachu", 12, 98, 110, "poison"),
	}
	for _, e := range CensorEvents(events, "") {
		if e.TeamIndex != nil || !e.HP.Censored || e.Amount != 0 {
			t.Errorf("spectator saw %+v", e)
		}
	}
}

// The substitute's HP is a quarter of max HP, so only its owner sees it.
func TestCensorEventsHidesSubstituteHP(t *testing.T) {
	events := []Event{{Type: EventSubstitute, Player: "p1", Species: "Snorlax", Amount: 130}}
	if own := CensorEvents(events, "p1"); own[0].Amount != 130 {
		t.Errorf("own substitute amount = %d, want 130", own[0].Amount)
	}
	if foe := CensorEvents(events, "p2"); foe[0].Amount != 0 {
		t.Errorf("foe substitute amount leaked: %d", foe[0].Amount)
	}
	if spec := CensorEvents(events, ""); spec[0].Amount != 0 {
		t.Errorf("spectator substitute amount leaked: %d", spec[0].Amount)
	}
}

func TestCensorIsIdempotent(t *testing.T) {
	events := []Event{NewDamageEvent("p2", "Snorlax", 35, 185, 220, "")}
	once := CensorEvents(events, "p1")
	twice := CensorEvents(once, "p1")
	if *once[0].HP != *twice[0].HP {
		t.Errorf("censoring twice changed hp: %+v vs %+v", once[0].HP, twice[0].HP)
	}
}

func TestMemoryLoggerQueries(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnEvent(1))
	l.Log(NewMoveEvent("p1", "Pikachu", "Thunderbolt"))
	l.Log(NewInfoEvent("p2", "Snorlax", InfoMiss))

	if got := len(l.EventsOfType(EventMove)); got != 1 {
		t.Errorf("move events = %d", got)
	}
	if l.LastEvent().Info != InfoMiss {
		t.Errorf("last event = %+v", l.LastEvent())
	}
	if !l.HasInfo(InfoMiss) || l.HasInfo(InfoCrit) {
		t.Error("HasInfo mismatch")
	}
	if (&MemoryLogger{}).LastEvent().Type != EventTurn {
		t.Error("empty logger should return a zero event")
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	e := NewStageEvent("p1", "Snorlax", "atk", 2, 2)
	e.Turn = 3
	l.Log(e)
	l.Log(NewWeatherEvent("sandstorm"))

	out := buf.String()
	if !strings.Contains(out, "p1's Snorlax's Atk rose by 2 (now +2)") {
		t.Errorf("stage line = %q", out)
	}
	if !strings.Contains(out, "Weather: Sandstorm") {
		t.Errorf("weather line = %q", out)
	}
	if !strings.HasPrefix(out, "T3  stage-change") {
		t.Errorf("prefix = %q", out)
	}
	if len(l.Events()) != 2 {
		t.Errorf("text logger should also keep events, got %d", len(l.Events()))
	}
}

func TestMultiLoggerFansOut(t *testing.T) {
	a, b := NewMemoryLogger(), NewMemoryLogger()
	m := NewMultiLogger(a, b)
	m.Log(NewDrawEvent())
	if len(a.Events()) != 1 || len(b.Events()) != 1 || len(m.Events()) != 1 {
		t.Error("multi logger did not reach every logger")
	}
}

func TestTitle(t *testing.T) {
	if got := Title("light-screen"); got != "Light Screen" {
		t.Errorf("Title = %q", got)
	}
}
