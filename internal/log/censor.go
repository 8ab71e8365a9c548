package log

// CensorEvents returns a copy of events as seen by viewer. Events about the
// viewer's own side pass through untouched; for everything else exact HP is
// replaced by a percentage, HP amounts (substitute HP included) are dropped
// and team slot identity is stripped. An empty viewer is a spectator and sees
// every event censored.
func CensorEvents(events []Event, viewer string) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		if viewer == "" || e.Player != viewer {
			e = censor(e)
		}
		out[i] = e
	}
	return out
}

func censor(e Event) Event {
	if e.HP != nil && !e.HP.Censored {
		pct := Percent(e.HP.Current, e.HP.Max)
		e.HP = &HP{Current: pct, Max: 100, Percent: pct, Censored: true}
	}
	switch e.Type {
	case EventDamage, EventRecover, EventHitSubstitute, EventSubstitute:
		e.Amount = 0
	}
	e.TeamIndex = nil
	return e
}
