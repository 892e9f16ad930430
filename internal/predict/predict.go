// Package predict provides a disposable forward-trajectory simulation.
// It builds an isolated scratch world containing only the boundary
// geometry and point-mass proxies for the living agents, advances it a
// short horizon with the live world's integration rules, and returns the
// target proxy's final position. The scratch world never escapes a call,
// so prediction is side-effect-free on the live match.
package predict

import (
	"math"

	"github.com/vovakirdan/orbarena/internal/core"
	"github.com/vovakirdan/orbarena/internal/physics"
)

// AgentProxy is the simplified point-mass stand-in for a living agent:
// position, velocity, radius. No weapons, pickups, shields, or rotation.
type AgentProxy struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// WorldParams describe the live world closely enough for the scratch
// simulation to track it: same geometry, integration constants, sub-step
// count, timestep, and velocity cap.
type WorldParams struct {
	ArenaWidth    float64
	ArenaHeight   float64
	WallThickness float64

	Damping         float64
	WallRestitution float64
	BodyRestitution float64
	SubSteps        int

	TickRate int
	SpeedCap float64
}

// Predict advances a scratch copy of the world by horizon seconds and
// returns the target proxy's final position. A non-positive horizon is
// clamped to one minimum positive step. Deterministic for identical
// inputs. The caller is expected to re-clamp the result into the arena's
// safe interior before using it as a spawn point, since discretization
// can land on or past a wall.
func Predict(target AgentProxy, others []AgentProxy, params WorldParams, horizon float64) core.Vec2 {
	world := physics.NewWorld(physics.Params{
		Damping:         params.Damping,
		WallRestitution: params.WallRestitution,
		BodyRestitution: params.BodyRestitution,
		SubSteps:        params.SubSteps,
	}, nil)
	addBounds(world, params)

	targetBody := world.AddDynamicCircle(physics.KindAgent, target.Pos, target.Vel, target.Radius)
	targetBody.MaxSpeed = params.SpeedCap
	for _, proxy := range others {
		b := world.AddDynamicCircle(physics.KindAgent, proxy.Pos, proxy.Vel, proxy.Radius)
		b.MaxSpeed = params.SpeedCap
	}

	dt := 1 / float64(params.TickRate)
	if horizon < dt {
		horizon = dt
	}
	steps := int(math.Ceil(horizon / dt))
	for range steps {
		world.Step(dt)
	}
	return targetBody.Pos
}

// SafeInterior returns the rectangle a predicted spawn point must be
// clamped into: the arena inset by wall thickness plus the agent and
// pickup radii, so a pickup never spawns inside or flush against a wall.
func SafeInterior(params WorldParams, agentRadius, pickupRadius float64) core.Rect {
	arena := core.NewRect(0, 0, params.ArenaWidth, params.ArenaHeight)
	return arena.Inset(params.WallThickness + agentRadius + pickupRadius)
}

// addBounds adds the four boundary segments, identical to the live world.
func addBounds(world *physics.World, params WorldParams) {
	w, h, t := params.ArenaWidth, params.ArenaHeight, params.WallThickness
	world.AddStaticSegment(core.V(0, 0), core.V(w, 0), t)
	world.AddStaticSegment(core.V(w, 0), core.V(w, h), t)
	world.AddStaticSegment(core.V(w, h), core.V(0, h), t)
	world.AddStaticSegment(core.V(0, h), core.V(0, 0), t)
}
