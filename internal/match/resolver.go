package match

import (
	"github.com/vovakirdan/orbarena/internal/core"
	"github.com/vovakirdan/orbarena/internal/director"
	"github.com/vovakirdan/orbarena/internal/entity"
	"github.com/vovakirdan/orbarena/internal/physics"
)

// resolve routes the tick's contact events to gameplay consequences.
// Dispatch is exhaustive over the closed tag set {Agent, Weapon, Pickup,
// Wall}; a pair is normalized so the agent comes first.
func (m *Match) resolve(contacts []physics.Contact) {
	for _, c := range contacts {
		if m.done {
			// The match ended this tick; no further effects apply.
			return
		}
		if c.Wall() {
			m.resolveWall(c.A)
			continue
		}

		a, b := c.A, c.B
		if b.Kind == physics.KindAgent && a.Kind != physics.KindAgent {
			a, b = b, a
		}
		switch {
		case a.Kind == physics.KindAgent && b.Kind == physics.KindAgent:
			// Bounce only; combat damage is exclusively delivered by
			// weapons and bombs.
		case a.Kind == physics.KindAgent && b.Kind == physics.KindWeapon:
			m.resolveAgentWeapon(m.bodyAgents[a.ID], m.bodyWeapons[b.ID])
		case a.Kind == physics.KindAgent && b.Kind == physics.KindPickup:
			m.resolveAgentPickup(m.bodyAgents[a.ID], m.bodyPickups[b.ID])
		default:
			// Weapon-weapon, weapon-pickup, pickup-pickup: no effect.
		}
	}
}

// resolveWall fires the bounce callback for agents. The physics layer has
// already applied the elastic response and any rebound perturbation.
func (m *Match) resolveWall(b *physics.Body) {
	if b.Kind != physics.KindAgent {
		return
	}
	if agent := m.bodyAgents[b.ID]; agent != nil && agent.Alive() {
		m.events.fireWallBounce(agent.Name)
	}
}

// resolveAgentWeapon applies a weapon hit: the owner is ignored, a shield
// absorbs exactly one hit, otherwise the weapon deals its damage. The
// weapon is one-shot either way.
func (m *Match) resolveAgentWeapon(agent *entity.Agent, weapon *entity.Weapon) {
	if agent == nil || weapon == nil || !weapon.Alive || !agent.Alive() {
		return
	}
	if weapon.Owner == agent {
		return
	}
	if agent.ShieldActive {
		agent.ShieldActive = false
		m.destroyWeapon(weapon)
		m.events.fireShieldBroken(agent.Name)
		return
	}
	m.destroyWeapon(weapon)
	m.dealDamage(agent, weapon.Damage, director.CauseWeapon)
}

// resolveAgentPickup applies a pickup's effect on first contact. Dead
// agents never receive or trigger effects; the alive flag gates a second
// agent touching the pickup in the same tick. The pickup is consumed in
// every case, regardless of effect outcome.
func (m *Match) resolveAgentPickup(agent *entity.Agent, pickup *entity.Pickup) {
	if agent == nil || pickup == nil || !agent.Alive() {
		return
	}
	if !pickup.Consume() {
		return
	}
	pos := pickup.Body.Pos
	m.world.RemoveBody(pickup.Body)
	delete(m.bodyPickups, pickup.Body.ID)

	switch pickup.Kind {
	case entity.PickupHeal:
		m.applyHeal(agent)
	case entity.PickupWeapon:
		m.equipWeapon(agent)
	case entity.PickupShield:
		agent.ShieldActive = true // idempotent refresh
	case entity.PickupBomb:
		m.explodeBomb(pos, agent)
	}
}

// applyHeal heals the agent unless it is at full HP or the director's
// repetition guard rejects a heal that would continue a damage/heal
// oscillation.
func (m *Match) applyHeal(agent *entity.Agent) {
	if agent.HP >= agent.MaxHP {
		return
	}
	if !m.dir.AllowHeal(agent.Name, m.elapsed) {
		return
	}
	healed := agent.Heal(m.cfg.Pickups.HealAmount)
	if healed <= 0 {
		return
	}
	m.dir.RecordHeal(m.elapsed, agent.Name, healed)
	m.events.fireAgentHealed(agent.Name, healed, agent.HP)
}

// equipWeapon attaches a new weapon unless the agent already holds one.
func (m *Match) equipWeapon(agent *entity.Agent) {
	if agent.Armed() {
		return
	}
	body := m.world.AddSensorCircle(physics.KindWeapon, agent.Body.Pos, m.cfg.Weapon.Radius)
	weapon := entity.NewWeapon(agent, body, m.cfg.Weapon.Damage, m.cfg.Weapon.OrbitOffset, m.cfg.Weapon.OrbitSpeed)
	if !agent.Equip(weapon) {
		m.world.RemoveBody(body)
		return
	}
	m.weapons = append(m.weapons, weapon)
	m.bodyWeapons[body.ID] = weapon
	m.events.fireWeaponEquipped(agent.Name)
}

// explodeBomb resolves immediately, no fuse: every living agent inside the
// blast radius takes bomb damage and an outward impulse. The triggering
// agent receives a larger impulse. Bomb damage never reduces an agent
// below 1 HP: only weapons deliver the finishing blow.
func (m *Match) explodeBomb(center core.Vec2, trigger *entity.Agent) {
	var hit []string
	for _, a := range m.agents {
		if !a.Alive() {
			continue
		}
		offset := a.Body.Pos.Sub(center)
		if offset.Length() > m.cfg.Bomb.Radius {
			continue
		}

		damage := m.cfg.Bomb.Damage
		if damage >= a.HP {
			damage = a.HP - 1
		}
		if damage > 0 {
			m.dealDamage(a, damage, director.CauseBomb)
		}

		dir := offset.Normalize()
		if dir == (core.Vec2{}) {
			dir = core.V(1, 0)
		}
		impulse := m.cfg.Bomb.Impulse
		if a == trigger {
			impulse *= m.cfg.Bomb.SelfMultiplier
		}
		a.Body.Vel = a.Body.Vel.Add(dir.Scale(impulse))
		hit = append(hit, a.Name)
	}
	m.events.fireBombExploded(center, hit)
}

// dealDamage applies damage, records it for the director, and handles the
// death transition: the body leaves collision, the agent's weapon dies
// with it, and the last agent standing wins the match this tick.
func (m *Match) dealDamage(agent *entity.Agent, amount int, cause director.Cause) {
	dealt := agent.ApplyDamage(amount)
	if dealt <= 0 {
		return
	}
	m.dir.RecordDamage(m.elapsed, agent.Name, dealt, cause)
	m.events.fireAgentDamaged(agent.Name, dealt, agent.HP)

	if agent.Alive() {
		return
	}
	// Inert agents leave collision; their last-known state stays
	// queryable through the snapshot surface.
	m.world.RemoveBody(agent.Body)
	delete(m.bodyAgents, agent.Body.ID)
	if agent.Weapon != nil {
		m.destroyWeapon(agent.Weapon)
	}

	var lastAlive *entity.Agent
	living := 0
	for _, a := range m.agents {
		if a.Alive() {
			living++
			lastAlive = a
		}
	}
	if living == 1 {
		m.winner = lastAlive
		m.done = true
		m.events.fireMatchWon(lastAlive.Name, m.tick)
	}
}

// destroyWeapon retires a weapon's body and marks it destroyed.
func (m *Match) destroyWeapon(w *entity.Weapon) {
	if !w.Alive {
		return
	}
	w.Destroy()
	m.world.RemoveBody(w.Body)
	delete(m.bodyWeapons, w.Body.ID)
}
