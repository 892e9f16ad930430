package physics

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/orbarena/internal/core"
)

// maxBouncePerturb is the largest rebound angle offset (radians) applied
// to bodies with PerturbBounce set.
const maxBouncePerturb = 0.12

// Params configure the integration and collision response.
type Params struct {
	// Damping is the fraction of velocity retained per second.
	Damping float64

	// WallRestitution applies to body-wall bounces. Values above 1.0
	// inject energy on every bounce to keep the arena lively.
	WallRestitution float64

	// BodyRestitution applies to body-body collisions.
	BodyRestitution float64

	// SubSteps is the number of equal sub-steps per Step call. More
	// sub-steps keep fast bodies from tunneling through thin walls.
	SubSteps int
}

// World integrates dynamic circles against static boundary segments.
type World struct {
	params   Params
	bodies   []*Body
	segments []Segment
	rng      *rand.Rand
	touching map[pairKey]bool
	nextID   int
}

// pairKey identifies an unordered body pair for first-contact tracking.
type pairKey struct {
	low, high int
}

func makePairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{low: a, high: b}
}

// NewWorld creates an empty world. The rng drives rebound perturbation
// only; it may be shared with other seeded consumers.
func NewWorld(params Params, rng *rand.Rand) *World {
	if params.SubSteps < 1 {
		params.SubSteps = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &World{
		params:   params,
		rng:      rng,
		touching: make(map[pairKey]bool),
	}
}

// AddDynamicCircle adds a body integrated by Step.
func (w *World) AddDynamicCircle(kind BodyKind, pos, vel core.Vec2, radius float64) *Body {
	b := &Body{
		ID:     w.nextID,
		Kind:   kind,
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
	}
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// AddSensorCircle adds an overlap-only body. It exchanges no momentum and
// is never integrated; the caller moves it directly.
func (w *World) AddSensorCircle(kind BodyKind, pos core.Vec2, radius float64) *Body {
	b := w.AddDynamicCircle(kind, pos, core.Vec2{}, radius)
	b.Sensor = true
	return b
}

// AddStaticSegment adds a boundary wall.
func (w *World) AddStaticSegment(p1, p2 core.Vec2, thickness float64) {
	w.segments = append(w.segments, Segment{P1: p1, P2: p2, Thickness: thickness})
}

// RemoveBody takes a body out of collision participation. The body struct
// keeps its last position so late queries still resolve.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns the live body list in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Segments returns the static boundary segments.
func (w *World) Segments() []Segment {
	return w.segments
}

// Step advances the world by dt using the configured number of equal
// sub-steps and returns the contacts that began during this step.
// Body-body contacts are reported once per first touch; wall contacts
// are reported once per bounce. Speed caps apply after integration.
func (w *World) Step(dt float64) []Contact {
	var contacts []Contact
	h := dt / float64(w.params.SubSteps)
	dampingFactor := math.Pow(w.params.Damping, h)
	overlapping := make(map[pairKey]bool)

	for range w.params.SubSteps {
		w.integrate(h, dampingFactor)
		contacts = w.collideWalls(contacts)
		contacts = w.collideBodies(contacts, overlapping)
	}

	// Pairs that separated this step may fire again on the next touch.
	for key := range w.touching {
		if !overlapping[key] {
			delete(w.touching, key)
		}
	}
	for key := range overlapping {
		w.touching[key] = true
	}

	w.applySpeedCaps()
	return contacts
}

// integrate applies damping and advances non-sensor bodies.
func (w *World) integrate(h, dampingFactor float64) {
	for _, b := range w.bodies {
		if b.Sensor {
			continue
		}
		b.Vel = b.Vel.Scale(dampingFactor)
		b.Pos = b.Pos.Add(b.Vel.Scale(h))
	}
}

// collideWalls resolves body-wall penetration with elastic response.
func (w *World) collideWalls(contacts []Contact) []Contact {
	for _, b := range w.bodies {
		if b.Sensor {
			continue
		}
		for _, seg := range w.segments {
			closest := seg.closestPoint(b.Pos)
			offset := b.Pos.Sub(closest)
			dist := offset.Length()
			minDist := b.Radius + seg.Thickness
			if dist >= minDist {
				continue
			}

			var normal core.Vec2
			if dist > 0 {
				normal = offset.Scale(1 / dist)
			} else {
				normal = core.V(0, -1)
			}

			// Push out of the wall, then reflect approaching velocity.
			b.Pos = closest.Add(normal.Scale(minDist))
			vn := b.Vel.Dot(normal)
			if vn >= 0 {
				continue
			}
			b.Vel = b.Vel.Sub(normal.Scale((1 + w.params.WallRestitution) * vn))
			if b.PerturbBounce {
				angle := (w.rng.Float64()*2 - 1) * maxBouncePerturb
				b.Vel = b.Vel.Rotate(angle)
			}
			contacts = append(contacts, Contact{A: b, Normal: normal})
		}
	}
	return contacts
}

// collideBodies resolves body-body collisions. Pairs involving a sensor
// only report overlap; pairs of solid bodies exchange momentum as
// equal-mass elastic circles.
func (w *World) collideBodies(contacts []Contact, overlapping map[pairKey]bool) []Contact {
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			a, b := w.bodies[i], w.bodies[j]
			offset := b.Pos.Sub(a.Pos)
			minDist := a.Radius + b.Radius
			if offset.LengthSq() >= minDist*minDist {
				continue
			}

			dist := offset.Length()
			var normal core.Vec2
			if dist > 0 {
				normal = offset.Scale(1 / dist)
			} else {
				normal = core.V(1, 0)
			}

			key := makePairKey(a.ID, b.ID)
			firstTouch := !w.touching[key] && !overlapping[key]
			overlapping[key] = true

			if !a.Sensor && !b.Sensor {
				w.bounceBodies(a, b, normal, minDist-dist)
			}
			if firstTouch {
				contacts = append(contacts, Contact{A: a, B: b, Normal: normal})
			}
		}
	}
	return contacts
}

// bounceBodies separates two solid circles and exchanges momentum along
// the contact normal with the configured restitution. Masses are equal.
func (w *World) bounceBodies(a, b *Body, normal core.Vec2, penetration float64) {
	half := normal.Scale(penetration / 2)
	a.Pos = a.Pos.Sub(half)
	b.Pos = b.Pos.Add(half)

	relVel := b.Vel.Sub(a.Vel).Dot(normal)
	if relVel >= 0 {
		return // already separating
	}
	impulse := -(1 + w.params.BodyRestitution) * relVel / 2
	a.Vel = a.Vel.Sub(normal.Scale(impulse))
	b.Vel = b.Vel.Add(normal.Scale(impulse))
}

// applySpeedCaps rescales any body above its cap down to the cap.
func (w *World) applySpeedCaps() {
	for _, b := range w.bodies {
		if b.Sensor || b.MaxSpeed <= 0 {
			continue
		}
		speed := b.Vel.Length()
		if speed > b.MaxSpeed {
			b.Vel = b.Vel.Scale(b.MaxSpeed / speed)
		}
	}
}
