package director

// Cause labels the source of a health change.
type Cause int

const (
	CauseWeapon Cause = iota
	CauseBomb
	CauseHeal
)

// String returns the cause name used in logs.
func (c Cause) String() string {
	switch c {
	case CauseWeapon:
		return "weapon"
	case CauseBomb:
		return "bomb"
	case CauseHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// HealthEvent records one time-stamped HP change. Delta is negative for
// damage and positive for heals.
type HealthEvent struct {
	T     float64
	Agent string
	Delta int
	Cause Cause
}

// History holds the trailing health-change record the director samples.
// Events past the retention horizon are pruned on every analysis pass.
type History struct {
	events    []HealthEvent
	retention float64
}

// NewHistory creates a history with the given retention horizon in seconds.
func NewHistory(retention float64) *History {
	return &History{retention: retention}
}

// Record appends an event. Events arrive in tick order, so the slice
// stays sorted by time.
func (h *History) Record(ev HealthEvent) {
	h.events = append(h.events, ev)
}

// Prune drops events older than the retention horizon.
func (h *History) Prune(now float64) {
	cutoff := now - h.retention
	i := 0
	for i < len(h.events) && h.events[i].T < cutoff {
		i++
	}
	if i > 0 {
		h.events = append(h.events[:0], h.events[i:]...)
	}
}

// DamageRate estimates net HP lost per second over the trailing window.
// Heals count against damage. Returns ok=false when the window holds no
// damage events, in which case callers fall back to a phase default.
func (h *History) DamageRate(now, window float64) (rate float64, ok bool) {
	cutoff := now - window
	net := 0
	sawDamage := false
	for _, ev := range h.events {
		if ev.T < cutoff {
			continue
		}
		net -= ev.Delta
		if ev.Delta < 0 {
			sawDamage = true
		}
	}
	if !sawDamage || window <= 0 {
		return 0, false
	}
	if net < 0 {
		net = 0
	}
	return float64(net) / window, true
}

// Oscillating reports whether the agent's recent history shows a
// damage/heal/damage alternation within the lookback window. A heal
// granted now would continue the oscillation and should be suppressed.
func (h *History) Oscillating(agent string, now, lookback float64) bool {
	cutoff := now - lookback
	var recent []HealthEvent
	for _, ev := range h.events {
		if ev.Agent == agent && ev.T >= cutoff {
			recent = append(recent, ev)
		}
	}
	if len(recent) < 3 {
		return false
	}
	last := recent[len(recent)-3:]
	return last[0].Delta < 0 && last[1].Delta > 0 && last[2].Delta < 0
}

// Events returns the retained events, oldest first.
func (h *History) Events() []HealthEvent {
	return h.events
}
