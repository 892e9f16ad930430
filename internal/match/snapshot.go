package match

// Snapshot is the per-tick read-only query surface for rendering and
// tests. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    int
	Elapsed float64
	Done    bool
	Winner  string // empty until decided

	Agents  []AgentSnapshot
	Weapons []WeaponSnapshot
	Pickups []PickupSnapshot
}

// AgentSnapshot is one combatant's visible state. Dead agents keep their
// last-known position and radius.
type AgentSnapshot struct {
	Name         string
	X, Y         float64
	VX, VY       float64
	Radius       float64
	HP           int
	MaxHP        int
	Shield       bool
	Armed        bool
	Alive        bool
	OutlineColor string
	Aggression   float64
}

// WeaponSnapshot is one live weapon's visible state.
type WeaponSnapshot struct {
	Owner  string
	X, Y   float64
	Radius float64
}

// PickupSnapshot is one live pickup's visible state.
type PickupSnapshot struct {
	Kind   string
	X, Y   float64
	Radius float64
}

// Snapshot captures the current state. Consumed pickups and destroyed
// weapons are omitted.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    m.tick,
		Elapsed: m.elapsed,
		Done:    m.done,
		Winner:  m.Winner(),
	}
	for _, a := range m.agents {
		snap.Agents = append(snap.Agents, AgentSnapshot{
			Name:         a.Name,
			X:            a.Body.Pos.X,
			Y:            a.Body.Pos.Y,
			VX:           a.Body.Vel.X,
			VY:           a.Body.Vel.Y,
			Radius:       a.Radius(),
			HP:           a.HP,
			MaxHP:        a.MaxHP,
			Shield:       a.ShieldActive,
			Armed:        a.Armed(),
			Alive:        a.Alive(),
			OutlineColor: a.OutlineColor,
			Aggression:   a.Aggression,
		})
	}
	for _, w := range m.weapons {
		if !w.Alive {
			continue
		}
		snap.Weapons = append(snap.Weapons, WeaponSnapshot{
			Owner:  w.Owner.Name,
			X:      w.Body.Pos.X,
			Y:      w.Body.Pos.Y,
			Radius: w.Body.Radius,
		})
	}
	for _, p := range m.pickups {
		if !p.Alive {
			continue
		}
		snap.Pickups = append(snap.Pickups, PickupSnapshot{
			Kind:   p.Kind.String(),
			X:      p.Body.Pos.X,
			Y:      p.Body.Pos.Y,
			Radius: p.Body.Radius,
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Done)
	for _, c := range snap.Winner {
		h = h*31 + uint64(c)
	}
	for _, a := range snap.Agents {
		h = h*31 + uint64(a.HP)    //#nosec G115 -- hash computation
		h = h*31 + uint64(a.MaxHP) //#nosec G115 -- hash computation
		h = h*31 + hashFloat(a.X)
		h = h*31 + hashFloat(a.Y)
		h = h*31 + hashFloat(a.VX)
		h = h*31 + hashFloat(a.VY)
		h = h*31 + boolBit(a.Shield)
		h = h*31 + boolBit(a.Armed)
		h = h*31 + boolBit(a.Alive)
	}
	for _, w := range snap.Weapons {
		h = h*31 + hashFloat(w.X)
		h = h*31 + hashFloat(w.Y)
	}
	for _, p := range snap.Pickups {
		h = h*31 + hashFloat(p.X)
		h = h*31 + hashFloat(p.Y)
		for _, c := range p.Kind {
			h = h*31 + uint64(c)
		}
	}
	return h
}

func hashFloat(f float64) uint64 {
	// Quantize so the hash is stable under formatting, not under drift.
	return uint64(int64(f * 1000)) //#nosec G115 -- hash computation
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
