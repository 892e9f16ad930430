package entity

import "github.com/vovakirdan/orbarena/internal/physics"

// PickupKind identifies the effect a pickup grants on contact.
type PickupKind int

const (
	PickupHeal PickupKind = iota
	PickupWeapon
	PickupShield
	PickupBomb
)

// String returns the pickup kind name used in logs and storage.
func (k PickupKind) String() string {
	switch k {
	case PickupHeal:
		return "heal"
	case PickupWeapon:
		return "weapon"
	case PickupShield:
		return "shield"
	case PickupBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Kinds lists every pickup kind in draw-table order.
var Kinds = []PickupKind{PickupHeal, PickupWeapon, PickupShield, PickupBomb}

// Pickup is a single-use item in the arena. Spawned -> Consumed, never
// reactivated; it applies its effect at most once regardless of outcome.
type Pickup struct {
	Kind  PickupKind
	Body  *physics.Body
	Alive bool
}

// NewPickup creates a live pickup attached to its sensor body.
func NewPickup(kind PickupKind, body *physics.Body) *Pickup {
	return &Pickup{Kind: kind, Body: body, Alive: true}
}

// Consume transitions the pickup to its terminal state. Returns false if
// it was consumed already, which gates a second agent touching it in the
// same tick.
func (p *Pickup) Consume() bool {
	if !p.Alive {
		return false
	}
	p.Alive = false
	return true
}
