package predict

import (
	"math"
	"testing"

	"github.com/vovakirdan/orbarena/internal/core"
)

func testWorldParams() WorldParams {
	return WorldParams{
		ArenaWidth:      800,
		ArenaHeight:     800,
		WallThickness:   2,
		Damping:         1.0,
		WallRestitution: 1.0,
		BodyRestitution: 1.0,
		SubSteps:        4,
		TickRate:        60,
		SpeedCap:        320,
	}
}

func TestPredictAdvancesAlongVelocity(t *testing.T) {
	target := AgentProxy{Pos: core.V(200, 400), Vel: core.V(120, 0), Radius: 20}

	pos := Predict(target, nil, testWorldParams(), 1.0)

	// Open space, no damping: one second at 120 u/s. Step rounding may
	// add up to one extra tick of travel.
	if math.Abs(pos.X-320) > 2.5 {
		t.Errorf("Target should advance about 120 units in 1s, got X=%f", pos.X)
	}
	if math.Abs(pos.Y-400) > 1e-6 {
		t.Errorf("Target should not drift vertically, got Y=%f", pos.Y)
	}
}

func TestPredictAccountsForWallBounce(t *testing.T) {
	// 60 units from the left wall band, heading into it at 300 u/s: the
	// proxy bounces and ends up moving right.
	target := AgentProxy{Pos: core.V(82, 400), Vel: core.V(-300, 0), Radius: 20}

	pos := Predict(target, nil, testWorldParams(), 1.0)

	if pos.X <= 82 {
		t.Errorf("Predicted position should be past the start after a bounce, got X=%f", pos.X)
	}
	if pos.X < 22 {
		t.Errorf("Predicted position should be outside the wall band, got X=%f", pos.X)
	}
}

func TestPredictClampsShortHorizon(t *testing.T) {
	target := AgentProxy{Pos: core.V(400, 400), Vel: core.V(120, 0), Radius: 20}
	params := testWorldParams()

	// Zero and negative horizons advance exactly one step.
	step := Predict(target, nil, params, 0)
	want := 400 + 120/float64(params.TickRate)
	if math.Abs(step.X-want) > 1e-6 {
		t.Errorf("Zero horizon should advance one tick to X=%f, got %f", want, step.X)
	}

	neg := Predict(target, nil, params, -3)
	if neg != step {
		t.Errorf("Negative horizon should match the one-tick result, got %v vs %v", neg, step)
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	target := AgentProxy{Pos: core.V(150, 200), Vel: core.V(-250, 180), Radius: 20}
	others := []AgentProxy{{Pos: core.V(500, 500), Vel: core.V(-100, -90), Radius: 25}}

	p1 := Predict(target, others, testWorldParams(), 2.0)
	p2 := Predict(target, others, testWorldParams(), 2.0)

	if p1 != p2 {
		t.Errorf("Identical inputs should predict identical positions, got %v vs %v", p1, p2)
	}
}

func TestPredictLeavesInputsUntouched(t *testing.T) {
	target := AgentProxy{Pos: core.V(150, 200), Vel: core.V(-250, 180), Radius: 20}
	others := []AgentProxy{{Pos: core.V(500, 500), Vel: core.V(-100, -90), Radius: 25}}

	Predict(target, others, testWorldParams(), 2.0)

	if target.Pos != core.V(150, 200) || target.Vel != core.V(-250, 180) {
		t.Error("Prediction should not mutate the target proxy")
	}
	if others[0].Pos != core.V(500, 500) || others[0].Vel != core.V(-100, -90) {
		t.Error("Prediction should not mutate the other proxies")
	}
}

func TestSafeInteriorInsetsAllMargins(t *testing.T) {
	params := testWorldParams()
	interior := SafeInterior(params, 60, 14)

	// Inset by wall 2 + agent 60 + pickup 14 = 76 on every side.
	if interior.MinX != 76 || interior.MinY != 76 {
		t.Errorf("Interior min should be 76, got (%f, %f)", interior.MinX, interior.MinY)
	}
	if interior.MaxX != 724 || interior.MaxY != 724 {
		t.Errorf("Interior max should be 724, got (%f, %f)", interior.MaxX, interior.MaxY)
	}

	// Points outside clamp onto the interior boundary.
	clamped := interior.ClampPoint(core.V(-50, 900))
	if clamped.X != 76 || clamped.Y != 724 {
		t.Errorf("Clamp should land on the interior corner, got (%f, %f)", clamped.X, clamped.Y)
	}
}
