// Package physics implements the rigid body world for the arena: dynamic
// circles bouncing between static boundary segments with fixed sub-stepping,
// global damping, per-class restitution, and post-step velocity caps.
// It knows nothing about gameplay; contact events are reported to the caller.
package physics

import "github.com/vovakirdan/orbarena/internal/core"

// BodyKind tags a body with its gameplay role. The set is closed: the
// collision resolver dispatches exhaustively over these tags plus walls.
type BodyKind int

const (
	KindAgent BodyKind = iota
	KindWeapon
	KindPickup
)

// String returns a human-readable name for the kind.
func (k BodyKind) String() string {
	switch k {
	case KindAgent:
		return "agent"
	case KindWeapon:
		return "weapon"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Body is a dynamic circle in the world.
// Sensor bodies detect overlap but exchange no momentum and are not
// integrated: the caller positions them directly (weapons follow their
// owner, pickups sit still).
type Body struct {
	ID     int
	Kind   BodyKind
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Sensor bool

	// MaxSpeed caps the speed after every step. Zero means uncapped.
	MaxSpeed float64

	// PerturbBounce adds a small random offset to the rebound angle on
	// wall bounces, breaking perfectly periodic orbits. Set for agents
	// that carry a weapon.
	PerturbBounce bool
}

// Segment is a static boundary wall with thickness.
type Segment struct {
	P1, P2    core.Vec2
	Thickness float64
}

// closestPoint returns the point on the segment nearest to p.
func (s Segment) closestPoint(p core.Vec2) core.Vec2 {
	edge := s.P2.Sub(s.P1)
	lenSq := edge.LengthSq()
	if lenSq == 0 {
		return s.P1
	}
	t := core.Clamp(p.Sub(s.P1).Dot(edge)/lenSq, 0, 1)
	return s.P1.Add(edge.Scale(t))
}

// Contact reports two bodies that came into contact during a step, or a
// body that bounced off a wall (B nil). Normal points from A toward B,
// or away from the wall for wall contacts.
type Contact struct {
	A, B   *Body
	Normal core.Vec2
}

// Wall reports whether the contact is against a boundary segment.
func (c Contact) Wall() bool {
	return c.B == nil
}
