package entity

import (
	"math"
	"testing"

	"github.com/vovakirdan/orbarena/internal/core"
	"github.com/vovakirdan/orbarena/internal/physics"
)

func testBody() *physics.Body {
	return &physics.Body{Kind: physics.KindAgent, Pos: core.V(400, 400)}
}

func TestAgentStartsHealthy(t *testing.T) {
	a := NewAgent("Crimson", 7, 60, "red", testBody())

	if a.State() != StateHealthy {
		t.Errorf("New agent should be healthy, got %s", a.State())
	}
	if a.HP != 7 {
		t.Errorf("New agent should start at full HP, got %d", a.HP)
	}
	if a.Body.Radius != 60 {
		t.Errorf("Full HP agent should start at base radius, got %f", a.Body.Radius)
	}
}

func TestApplyDamageClampsAtZero(t *testing.T) {
	a := NewAgent("Crimson", 3, 60, "red", testBody())

	dealt := a.ApplyDamage(2)
	if dealt != 2 || a.HP != 1 {
		t.Errorf("Damage 2 from HP 3 should leave 1, dealt=%d hp=%d", dealt, a.HP)
	}
	if a.State() != StateDamaged {
		t.Errorf("Agent with partial HP should be damaged, got %s", a.State())
	}

	// Overkill clamps at 0 and reports only what was removed.
	dealt = a.ApplyDamage(5)
	if dealt != 1 || a.HP != 0 {
		t.Errorf("Overkill should clamp at 0, dealt=%d hp=%d", dealt, a.HP)
	}
	if a.State() != StateDead {
		t.Errorf("Agent at 0 HP should be dead, got %s", a.State())
	}

	// Dead agents accept no further effects.
	if a.ApplyDamage(1) != 0 {
		t.Error("Dead agent should take no damage")
	}
	if a.Heal(1) != 0 {
		t.Error("Dead agent should not heal")
	}
}

func TestHealClampsAtMax(t *testing.T) {
	a := NewAgent("Azure", 7, 60, "blue", testBody())
	a.ApplyDamage(3)

	healed := a.Heal(10)
	if healed != 3 || a.HP != 7 {
		t.Errorf("Heal should clamp at MaxHP, healed=%d hp=%d", healed, a.HP)
	}

	// Healing at full HP is a no-op.
	if a.Heal(1) != 0 {
		t.Error("Healing a full-HP agent should restore nothing")
	}
	if a.ApplyDamage(0) != 0 || a.Heal(-2) != 0 {
		t.Error("Non-positive amounts should be no-ops")
	}
}

func TestTargetRadiusTracksHP(t *testing.T) {
	a := NewAgent("Crimson", 10, 100, "red", testBody())

	if a.TargetRadius() != 100 {
		t.Errorf("Full HP target radius should be base radius, got %f", a.TargetRadius())
	}

	a.HP = 5
	mid := a.TargetRadius()
	a.HP = 0
	floor := a.TargetRadius()

	if mid >= 100 || mid <= floor {
		t.Errorf("Target radius should shrink monotonically with HP, mid=%f floor=%f", mid, floor)
	}
	if math.Abs(floor-60) > 1e-9 {
		t.Errorf("Zero HP target radius should be 60%% of base, got %f", floor)
	}
}

func TestRadiusAnimationSettlesOnTarget(t *testing.T) {
	a := NewAgent("Crimson", 10, 100, "red", testBody())
	a.ApplyDamage(5)

	target := a.TargetRadius()
	before := a.Radius()

	// Partway through, the radius sits strictly between start and target.
	a.Update(RadiusAnimDuration / 2)
	partial := a.Radius()
	if partial >= before || partial <= target {
		t.Errorf("Mid-animation radius should be between %f and %f, got %f", target, before, partial)
	}

	// Past the full duration it settles exactly on the target.
	a.Update(RadiusAnimDuration)
	if a.Radius() != target {
		t.Errorf("Radius should settle on target %f, got %f", target, a.Radius())
	}
}

func TestRadiusAnimationRestartsFromCurrent(t *testing.T) {
	a := NewAgent("Crimson", 10, 100, "red", testBody())
	a.ApplyDamage(5)
	a.Update(RadiusAnimDuration / 4)
	midway := a.Radius()

	// A heal mid-shrink eases from the current radius, with no jump.
	a.Heal(5)
	a.Update(0)
	if math.Abs(a.Radius()-midway) > 1e-9 {
		t.Errorf("Retargeted animation should start at current radius %f, got %f", midway, a.Radius())
	}
}

func TestEquipRequiresEmptySlot(t *testing.T) {
	world := physics.NewWorld(physics.Params{SubSteps: 1, Damping: 1, WallRestitution: 1, BodyRestitution: 1}, nil)
	a := NewAgent("Crimson", 7, 60, "red", world.AddDynamicCircle(physics.KindAgent, core.V(400, 400), core.V(0, 0), 60))

	w1 := NewWeapon(a, world.AddSensorCircle(physics.KindWeapon, a.Body.Pos, 18), 1, 26, 4.2)
	if !a.Equip(w1) {
		t.Fatal("Equipping an unarmed agent should succeed")
	}
	if !a.Armed() {
		t.Error("Agent should be armed after equip")
	}

	w2 := NewWeapon(a, world.AddSensorCircle(physics.KindWeapon, a.Body.Pos, 18), 1, 26, 4.2)
	if a.Equip(w2) {
		t.Error("Equipping an armed agent should fail")
	}

	// After the held weapon is destroyed the slot opens again.
	w1.Destroy()
	if a.Armed() {
		t.Error("Agent should be unarmed after weapon destruction")
	}
	if !a.Equip(w2) {
		t.Error("Equipping after destruction should succeed")
	}
}

func TestAggressionAccruesWhileArmed(t *testing.T) {
	world := physics.NewWorld(physics.Params{SubSteps: 1, Damping: 1, WallRestitution: 1, BodyRestitution: 1}, nil)
	a := NewAgent("Crimson", 7, 60, "red", world.AddDynamicCircle(physics.KindAgent, core.V(400, 400), core.V(0, 0), 60))

	a.Update(1.0)
	if a.Aggression != 0 {
		t.Errorf("Unarmed agent should accrue no aggression, got %f", a.Aggression)
	}

	w := NewWeapon(a, world.AddSensorCircle(physics.KindWeapon, a.Body.Pos, 18), 1, 26, 4.2)
	a.Equip(w)
	a.Update(1.0)
	a.Update(0.5)
	if math.Abs(a.Aggression-1.5) > 1e-9 {
		t.Errorf("Armed agent should accrue aggression over time, got %f", a.Aggression)
	}
}
