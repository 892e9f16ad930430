package entity

import (
	"math"

	"github.com/vovakirdan/orbarena/internal/core"
	"github.com/vovakirdan/orbarena/internal/physics"
)

// Weapon is an owner-following hazard. It orbits its owner every tick and
// damages any non-owner agent on first contact, destroying itself.
// Destroyed is terminal.
type Weapon struct {
	Owner  *Agent
	Body   *physics.Body
	Alive  bool
	Damage int

	orbitOffset float64
	orbitSpeed  float64
	angle       float64
}

// NewWeapon creates an active weapon orbiting the owner. orbitOffset is
// the gap between the owner's surface and the weapon's center; orbitSpeed
// is in radians per second.
func NewWeapon(owner *Agent, body *physics.Body, damage int, orbitOffset, orbitSpeed float64) *Weapon {
	w := &Weapon{
		Owner:       owner,
		Body:        body,
		Alive:       true,
		Damage:      damage,
		orbitOffset: orbitOffset,
		orbitSpeed:  orbitSpeed,
	}
	w.place()
	return w
}

// Update tracks the owner's position for this tick, advancing the orbit.
func (w *Weapon) Update(dt float64) {
	if !w.Alive {
		return
	}
	w.angle = math.Mod(w.angle+w.orbitSpeed*dt, 2*math.Pi)
	w.place()
}

// place positions the weapon body relative to its owner.
func (w *Weapon) place() {
	dist := w.Owner.Radius() + w.orbitOffset
	offset := core.V(math.Cos(w.angle), math.Sin(w.angle)).Scale(dist)
	w.Body.Pos = w.Owner.Body.Pos.Add(offset)
}

// Destroy moves the weapon to its terminal state and clears the owner's
// slot. Safe to call more than once.
func (w *Weapon) Destroy() {
	if !w.Alive {
		return
	}
	w.Alive = false
	if w.Owner != nil && w.Owner.Weapon == w {
		w.Owner.Weapon = nil
	}
}
