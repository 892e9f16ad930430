// Package match owns the tick driver for one arena battle. Each tick runs,
// strictly in order: physics sub-steps, entity updates, collision/effect
// resolution, and (on its own cadence) director analysis and pickup
// spawning. The agent, weapon, and pickup lists are owned here and mutated
// only in their designated phase.
package match

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/orbarena/internal/config"
	"github.com/vovakirdan/orbarena/internal/core"
	"github.com/vovakirdan/orbarena/internal/director"
	"github.com/vovakirdan/orbarena/internal/entity"
	"github.com/vovakirdan/orbarena/internal/physics"
	"github.com/vovakirdan/orbarena/internal/predict"
)

// Match is one deterministic arena battle. Identical configuration plus an
// identical seed reproduce the same winner, tick count, and per-tick HP
// trajectories.
type Match struct {
	cfg    config.MatchConfig
	seed   int64
	rng    *rand.Rand
	world  *physics.World
	dir    *director.Director
	events Events

	agents  []*entity.Agent
	weapons []*entity.Weapon
	pickups []*entity.Pickup

	bodyAgents  map[int]*entity.Agent
	bodyWeapons map[int]*entity.Weapon
	bodyPickups map[int]*entity.Pickup

	interior core.Rect
	dt       float64
	tick     int
	elapsed  float64
	maxTicks int
	winner   *entity.Agent
	done     bool
}

// Result summarizes a finished match.
type Result struct {
	Title      string
	Seed       int64
	Winner     string // empty when the hard tick limit was reached first
	Ticks      int
	Duration   float64
	FinalHP    map[string]int
	Aggression map[string]float64 // seconds each agent spent armed
}

// New validates the configuration and assembles the match. The seed drives
// every random draw in the simulation.
func New(cfg config.MatchConfig, seed int64, events Events) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("match: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	world := physics.NewWorld(physics.Params{
		Damping:         cfg.Physics.Damping,
		WallRestitution: cfg.Physics.WallRestitution,
		BodyRestitution: cfg.Physics.BodyRestitution,
		SubSteps:        cfg.Timing.SubSteps,
	}, rng)

	w, h, t := cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.WallThickness
	world.AddStaticSegment(core.V(0, 0), core.V(w, 0), t)
	world.AddStaticSegment(core.V(w, 0), core.V(w, h), t)
	world.AddStaticSegment(core.V(w, h), core.V(0, h), t)
	world.AddStaticSegment(core.V(0, h), core.V(0, 0), t)

	m := &Match{
		cfg:         cfg,
		seed:        seed,
		rng:         rng,
		world:       world,
		events:      events,
		bodyAgents:  make(map[int]*entity.Agent),
		bodyWeapons: make(map[int]*entity.Weapon),
		bodyPickups: make(map[int]*entity.Pickup),
		dt:          1 / float64(cfg.Timing.TickRate),
		maxTicks:    cfg.MaxTicks(),
	}

	maxAgentRadius := 0.0
	for _, ac := range cfg.Agents {
		body := world.AddDynamicCircle(physics.KindAgent, core.V(ac.X, ac.Y), core.V(ac.VX, ac.VY), ac.Radius)
		body.MaxSpeed = cfg.Physics.SpeedCap
		agent := entity.NewAgent(ac.Name, ac.MaxHP, ac.Radius, ac.OutlineColor, body)
		m.agents = append(m.agents, agent)
		m.bodyAgents[body.ID] = agent
		if ac.Radius > maxAgentRadius {
			maxAgentRadius = ac.Radius
		}
	}

	// Safe interior for pickup placement: inset by wall thickness plus
	// agent and pickup radii so spawns never hug a wall.
	m.interior = core.NewRect(0, 0, w, h).Inset(t + maxAgentRadius + cfg.Pickups.Radius)

	m.dir = director.New(cfg.Director, cfg.Timing, cfg.Bomb.MaxSpawns, rng)
	return m, nil
}

// Step advances the match by one tick. Once the match has ended, Step is
// a no-op: no further effects apply.
func (m *Match) Step() {
	if m.done {
		return
	}

	contacts := m.world.Step(m.dt)
	m.updateEntities()
	m.resolve(contacts)

	if !m.done && m.dir.Due(m.elapsed) {
		m.directorPass()
	}

	m.tick++
	m.elapsed += m.dt
	if !m.done && m.tick >= m.maxTicks {
		m.done = true
	}
}

// Run steps the match to completion and returns the result.
func (m *Match) Run() Result {
	for !m.done {
		m.Step()
	}
	return m.Result()
}

// Result summarizes the match so far; meaningful once Done reports true.
func (m *Match) Result() Result {
	res := Result{
		Title:      m.cfg.Title,
		Seed:       m.seed,
		Ticks:      m.tick,
		Duration:   m.elapsed,
		FinalHP:    make(map[string]int, len(m.agents)),
		Aggression: make(map[string]float64, len(m.agents)),
	}
	if m.winner != nil {
		res.Winner = m.winner.Name
	}
	for _, a := range m.agents {
		res.FinalHP[a.Name] = a.HP
		res.Aggression[a.Name] = a.Aggression
	}
	return res
}

// Done reports whether the match has ended.
func (m *Match) Done() bool { return m.done }

// Tick returns the number of completed ticks.
func (m *Match) Tick() int { return m.tick }

// Elapsed returns the simulated time in seconds.
func (m *Match) Elapsed() float64 { return m.elapsed }

// Winner returns the winning agent's name, or empty while the match runs
// or when it timed out without a decision.
func (m *Match) Winner() string {
	if m.winner == nil {
		return ""
	}
	return m.winner.Name
}

// Config returns the match configuration.
func (m *Match) Config() config.MatchConfig { return m.cfg }

// updateEntities runs the entity-update phase: radius animation and
// aggression accrual, speed-cap selection, weapon tracking, and weapon
// self-destruction when the owner has become inert.
func (m *Match) updateEntities() {
	for _, a := range m.agents {
		if !a.Alive() {
			continue
		}
		a.Update(m.dt)
		if a.Armed() {
			a.Body.MaxSpeed = m.cfg.Physics.ArmedSpeedCap
			a.Body.PerturbBounce = true
		} else {
			a.Body.MaxSpeed = m.cfg.Physics.SpeedCap
			a.Body.PerturbBounce = false
		}
	}
	for _, w := range m.weapons {
		if !w.Alive {
			continue
		}
		if !w.Owner.Alive() {
			// A weapon whose owner died self-destroys before it can
			// hit anyone else.
			m.destroyWeapon(w)
			continue
		}
		w.Update(m.dt)
	}
}

// directorPass samples the match, asks the director for a spawn decision,
// places it on the target's predicted path, and spawns the pickup.
func (m *Match) directorPass() {
	view := m.directorView()
	spawn, ok := m.dir.Decide(view)
	if !ok {
		return
	}
	if m.livePickupCount() >= m.cfg.Pickups.MaxOnField {
		return
	}
	target := m.agentByName(spawn.Target)
	if target == nil || !target.Alive() {
		return
	}
	pos := m.predictPlacement(target)
	m.spawnPickup(spawn.Kind, pos)
}

// predictPlacement runs the disposable forward simulation for the target
// and clamps the result into the safe interior.
func (m *Match) predictPlacement(target *entity.Agent) core.Vec2 {
	params := predict.WorldParams{
		ArenaWidth:      m.cfg.Arena.Width,
		ArenaHeight:     m.cfg.Arena.Height,
		WallThickness:   m.cfg.Arena.WallThickness,
		Damping:         m.cfg.Physics.Damping,
		WallRestitution: m.cfg.Physics.WallRestitution,
		BodyRestitution: m.cfg.Physics.BodyRestitution,
		SubSteps:        m.cfg.Timing.SubSteps,
		TickRate:        m.cfg.Timing.TickRate,
		SpeedCap:        m.cfg.Physics.SpeedCap,
	}
	proxy := predict.AgentProxy{Pos: target.Body.Pos, Vel: target.Body.Vel, Radius: target.Radius()}
	var others []predict.AgentProxy
	for _, a := range m.agents {
		if a == target || !a.Alive() {
			continue
		}
		others = append(others, predict.AgentProxy{Pos: a.Body.Pos, Vel: a.Body.Vel, Radius: a.Radius()})
	}
	pos := predict.Predict(proxy, others, params, placementHorizon)
	return m.interior.ClampPoint(pos)
}

// placementHorizon is how far ahead (seconds) pickups are placed along an
// agent's likely path.
const placementHorizon = 1.2

// spawnPickup adds a live pickup at pos.
func (m *Match) spawnPickup(kind entity.PickupKind, pos core.Vec2) {
	body := m.world.AddSensorCircle(physics.KindPickup, pos, m.cfg.Pickups.Radius)
	p := entity.NewPickup(kind, body)
	m.pickups = append(m.pickups, p)
	m.bodyPickups[body.ID] = p
}

// livePickupCount counts pickups still on the field.
func (m *Match) livePickupCount() int {
	n := 0
	for _, p := range m.pickups {
		if p.Alive {
			n++
		}
	}
	return n
}

func (m *Match) agentByName(name string) *entity.Agent {
	for _, a := range m.agents {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// directorView builds the read-only sample the director analyzes.
func (m *Match) directorView() director.MatchView {
	view := director.MatchView{
		Now:            m.elapsed,
		PickupsOnField: m.livePickupCount(),
	}
	for _, a := range m.agents {
		view.Agents = append(view.Agents, director.AgentView{
			Name:       a.Name,
			HP:         a.HP,
			MaxHP:      a.MaxHP,
			Alive:      a.Alive(),
			Armed:      a.Armed(),
			Shielded:   a.ShieldActive,
			Aggression: a.Aggression,
		})
	}
	return view
}
