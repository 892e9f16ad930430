package director

import (
	"math"
	"testing"
)

func TestDamageRateCountsNetLoss(t *testing.T) {
	h := NewHistory(15)
	h.Record(HealthEvent{T: 1, Agent: "Crimson", Delta: -2, Cause: CauseWeapon})
	h.Record(HealthEvent{T: 3, Agent: "Azure", Delta: -1, Cause: CauseWeapon})
	h.Record(HealthEvent{T: 5, Agent: "Crimson", Delta: 1, Cause: CauseHeal})

	// Net 2 HP lost over an 8 second window.
	rate, ok := h.DamageRate(8, 8)
	if !ok {
		t.Fatal("Window with damage events should report a rate")
	}
	if math.Abs(rate-0.25) > 1e-9 {
		t.Errorf("Net 2 HP over 8s should be 0.25/s, got %f", rate)
	}
}

func TestDamageRateFallsBackWithoutDamage(t *testing.T) {
	h := NewHistory(15)

	if _, ok := h.DamageRate(10, 8); ok {
		t.Error("Empty history should not report a rate")
	}

	// Heals alone do not count as damage activity.
	h.Record(HealthEvent{T: 9, Agent: "Crimson", Delta: 1, Cause: CauseHeal})
	if _, ok := h.DamageRate(10, 8); ok {
		t.Error("Heal-only history should not report a rate")
	}

	// Damage outside the window does not count either.
	h.Record(HealthEvent{T: 1, Agent: "Azure", Delta: -1, Cause: CauseWeapon})
	if _, ok := h.DamageRate(20, 8); ok {
		t.Error("Stale damage should not report a rate")
	}
}

func TestDamageRateClampsNegativeNet(t *testing.T) {
	h := NewHistory(15)
	h.Record(HealthEvent{T: 1, Agent: "Crimson", Delta: -1, Cause: CauseWeapon})
	h.Record(HealthEvent{T: 2, Agent: "Crimson", Delta: 3, Cause: CauseHeal})

	rate, ok := h.DamageRate(4, 8)
	if !ok {
		t.Fatal("Window with a damage event should report a rate")
	}
	if rate != 0 {
		t.Errorf("Heals exceeding damage should clamp the rate at 0, got %f", rate)
	}
}

func TestPruneDropsOldEvents(t *testing.T) {
	h := NewHistory(10)
	h.Record(HealthEvent{T: 1, Agent: "Crimson", Delta: -1, Cause: CauseWeapon})
	h.Record(HealthEvent{T: 5, Agent: "Azure", Delta: -1, Cause: CauseWeapon})
	h.Record(HealthEvent{T: 12, Agent: "Crimson", Delta: -1, Cause: CauseBomb})

	h.Prune(14)

	events := h.Events()
	if len(events) != 2 {
		t.Fatalf("Prune at t=14 with retention 10 should keep 2 events, got %d", len(events))
	}
	if events[0].T != 5 {
		t.Errorf("Oldest surviving event should be t=5, got t=%f", events[0].T)
	}
}

func TestOscillationDetection(t *testing.T) {
	h := NewHistory(15)
	h.Record(HealthEvent{T: 1, Agent: "Crimson", Delta: -1, Cause: CauseWeapon})
	h.Record(HealthEvent{T: 2, Agent: "Crimson", Delta: 1, Cause: CauseHeal})
	h.Record(HealthEvent{T: 3, Agent: "Crimson", Delta: -1, Cause: CauseWeapon})

	if !h.Oscillating("Crimson", 4, 5) {
		t.Error("Damage/heal/damage within the lookback should flag oscillation")
	}
	if h.Oscillating("Azure", 4, 5) {
		t.Error("Another agent's events should not flag oscillation")
	}

	// Outside the lookback window the pattern no longer counts.
	if h.Oscillating("Crimson", 20, 5) {
		t.Error("Stale oscillation should not flag")
	}

	// A trailing heal breaks the pattern.
	h.Record(HealthEvent{T: 4, Agent: "Crimson", Delta: 1, Cause: CauseHeal})
	if h.Oscillating("Crimson", 5, 5) {
		t.Error("Heal-terminated history should not flag oscillation")
	}
}
