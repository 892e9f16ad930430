// Package entity defines the gameplay state machines layered on top of the
// physics bodies: agents, their owner-following weapons, and single-use
// pickups. Transition rules live here; collision mechanics do not.
package entity

import "github.com/vovakirdan/orbarena/internal/physics"

// AgentState is the main life-cycle state of an agent.
// Healthy and Damaged are interchangeable as HP moves; Dead is terminal.
type AgentState int

const (
	StateHealthy AgentState = iota
	StateDamaged
	StateDead
)

// String returns a human-readable name for the state.
func (s AgentState) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateDamaged:
		return "damaged"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Agent is a combatant. It is created at match start and never destroyed
// as an object; at 0 HP it becomes inert and stops accepting effects.
// ShieldActive and the weapon slot toggle independently of the HP state.
type Agent struct {
	Name         string
	MaxHP        int
	HP           int
	ShieldActive bool
	Weapon       *Weapon
	OutlineColor string
	Aggression   float64
	BaseRadius   float64
	Body         *physics.Body

	anim radiusAnim
}

// NewAgent creates an agent at full HP attached to its physics body.
func NewAgent(name string, maxHP int, baseRadius float64, outlineColor string, body *physics.Body) *Agent {
	a := &Agent{
		Name:         name,
		MaxHP:        maxHP,
		HP:           maxHP,
		OutlineColor: outlineColor,
		BaseRadius:   baseRadius,
		Body:         body,
	}
	a.anim.to = a.TargetRadius()
	body.Radius = a.anim.to
	return a
}

// State returns the agent's life-cycle state derived from HP.
func (a *Agent) State() AgentState {
	switch {
	case a.HP <= 0:
		return StateDead
	case a.HP < a.MaxHP:
		return StateDamaged
	default:
		return StateHealthy
	}
}

// Alive reports whether the agent still participates in the match.
func (a *Agent) Alive() bool {
	return a.HP > 0
}

// Armed reports whether the agent currently holds a live weapon.
func (a *Agent) Armed() bool {
	return a.Weapon != nil && a.Weapon.Alive
}

// TargetRadius is the radius the agent's body eases toward: a monotonic
// function of the HP fraction, shrinking as the agent loses health.
func (a *Agent) TargetRadius() float64 {
	frac := float64(a.HP) / float64(a.MaxHP)
	return a.BaseRadius * (minRadiusScale + (1-minRadiusScale)*frac)
}

// ApplyDamage subtracts up to amount HP, clamped at 0, and starts the
// shrink animation. Dead agents take no damage. Returns the HP actually
// removed.
func (a *Agent) ApplyDamage(amount int) int {
	if !a.Alive() || amount <= 0 {
		return 0
	}
	before := a.HP
	a.HP -= amount
	if a.HP < 0 {
		a.HP = 0
	}
	a.anim.start(a.anim.current(), a.TargetRadius())
	return before - a.HP
}

// Heal adds up to amount HP, clamped at MaxHP, and starts the grow
// animation. Healing a dead or full-HP agent is a no-op. Returns the HP
// actually restored.
func (a *Agent) Heal(amount int) int {
	if !a.Alive() || amount <= 0 || a.HP >= a.MaxHP {
		return 0
	}
	before := a.HP
	a.HP += amount
	if a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}
	a.anim.start(a.anim.current(), a.TargetRadius())
	return a.HP - before
}

// Equip attaches a weapon. Returns false if the agent is dead or the slot
// is already occupied; an agent holds at most one weapon.
func (a *Agent) Equip(w *Weapon) bool {
	if !a.Alive() || a.Armed() {
		return false
	}
	a.Weapon = w
	return true
}

// Update advances the radius animation and accrues aggression while the
// agent holds a weapon. Called once per tick in the entity-update phase.
func (a *Agent) Update(dt float64) {
	a.Body.Radius = a.anim.advance(dt)
	if a.Alive() && a.Armed() {
		a.Aggression += dt
	}
}

// Radius returns the current animated radius.
func (a *Agent) Radius() float64 {
	return a.Body.Radius
}
