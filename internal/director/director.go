// Package director implements the adaptive pacing controller. It samples
// match state on a fixed cadence, estimates when the match will end, and
// steers the item-spawn policy to keep the finish inside the target
// duration window without repetitive or wasted effects.
package director

import (
	"math/rand"

	"github.com/vovakirdan/orbarena/internal/config"
	"github.com/vovakirdan/orbarena/internal/entity"
)

// AgentView is the read-only per-agent state the director samples.
type AgentView struct {
	Name       string
	HP         int
	MaxHP      int
	Alive      bool
	Armed      bool
	Shielded   bool
	Aggression float64
}

// MatchView is one sample of match state.
type MatchView struct {
	Now            float64
	Agents         []AgentView
	PickupsOnField int
}

// Analysis is the derived state of one sampling pass, exposed for tests
// and diagnostics.
type Analysis struct {
	TotalHP      int
	AverageHP    float64
	HPDisparity  int // strongest minus weakest among the living
	LowHPAgents  []string
	DamageRate   float64
	RateFallback bool // true when no recent damage events existed
	PredictedEnd float64
	Pressure     float64
}

// Spawn is a director decision: place a pickup of Kind on the predicted
// path of Target.
type Spawn struct {
	Kind   entity.PickupKind
	Target string
}

type cooldownKey struct {
	agent string
	kind  entity.PickupKind
}

// Director keeps the pacing state across analysis passes.
type Director struct {
	cfg    config.DirectorConfig
	timing config.TimingConfig
	rng    *rand.Rand
	hist   *History
	rules  []PolicyRule

	cooldowns    map[cooldownKey]float64
	bombCap      int
	bombsSpawned int
	lastAnalysis float64
}

// New creates a director. The rng must come from the match's seeded
// stream so decisions replay identically.
func New(cfg config.DirectorConfig, timing config.TimingConfig, bombCap int, rng *rand.Rand) *Director {
	return &Director{
		cfg:          cfg,
		timing:       timing,
		rng:          rng,
		hist:         NewHistory(cfg.HistoryRetention),
		rules:        DefaultRules(),
		cooldowns:    make(map[cooldownKey]float64),
		bombCap:      bombCap,
		lastAnalysis: -cfg.AnalysisInterval, // analyze on the first chance
	}
}

// RecordDamage notes a damage event at time t.
func (d *Director) RecordDamage(t float64, agent string, amount int, cause Cause) {
	d.hist.Record(HealthEvent{T: t, Agent: agent, Delta: -amount, Cause: cause})
}

// RecordHeal notes a heal event at time t.
func (d *Director) RecordHeal(t float64, agent string, amount int) {
	d.hist.Record(HealthEvent{T: t, Agent: agent, Delta: amount, Cause: CauseHeal})
}

// AllowHeal is the repetition guard: it rejects a heal that would continue
// a damage/heal/damage oscillation within the lookback window.
func (d *Director) AllowHeal(agent string, now float64) bool {
	return !d.hist.Oscillating(agent, now, d.cfg.RepetitionLookback)
}

// BombsSpawned returns the bomb-spawn counter.
func (d *Director) BombsSpawned() int {
	return d.bombsSpawned
}

// Due reports whether the analysis interval has elapsed since the last
// sampling pass.
func (d *Director) Due(now float64) bool {
	return now-d.lastAnalysis >= d.cfg.AnalysisInterval
}

// Analyze derives the control signals from one match sample.
func (d *Director) Analyze(view MatchView) Analysis {
	var an Analysis
	living := 0
	weakest := -1
	strongest := 0
	for _, a := range view.Agents {
		if !a.Alive {
			continue
		}
		living++
		an.TotalHP += a.HP
		if weakest < 0 || a.HP < weakest {
			weakest = a.HP
		}
		if a.HP > strongest {
			strongest = a.HP
		}
		if a.HP <= d.cfg.LowHPThreshold {
			an.LowHPAgents = append(an.LowHPAgents, a.Name)
		}
	}
	if living > 0 {
		an.AverageHP = float64(an.TotalHP) / float64(living)
		an.HPDisparity = strongest - weakest
	}

	rate, ok := d.hist.DamageRate(view.Now, d.cfg.DamageRateWindow)
	if !ok || rate <= 0 {
		rate = d.phaseDefaultRate(view.Now)
		an.RateFallback = true
	}
	an.DamageRate = rate

	if weakest < 0 {
		weakest = 0
	}
	buffer := d.cfg.DramaticBuffer
	an.PredictedEnd = view.Now + float64(weakest)/rate + buffer
	an.Pressure = d.pressure(an.PredictedEnd)
	return an
}

// phaseDefaultRate is the fallback damage rate when no recent damage
// events exist: slow early, faster late.
func (d *Director) phaseDefaultRate(now float64) float64 {
	phase := now / d.timing.MaxDuration
	switch {
	case phase < 0.33:
		return 0.08
	case phase < 0.66:
		return 0.15
	default:
		return 0.3
	}
}

// pressure is the signed control signal: positive when the predicted end
// overshoots the window midpoint (accelerate), negative when it
// undershoots (extend), zero inside the dead-band.
func (d *Director) pressure(predictedEnd float64) float64 {
	mid := (d.timing.MinDuration + d.timing.MaxDuration) / 2
	diff := predictedEnd - mid
	if diff > -d.cfg.PressureDeadband && diff < d.cfg.PressureDeadband {
		return 0
	}
	halfWindow := (d.timing.MaxDuration - d.timing.MinDuration) / 2
	if halfWindow <= 0 {
		halfWindow = 1
	}
	// Clamp to [-1, 1] so policy multipliers stay bounded.
	p := diff / halfWindow
	if p > 1 {
		p = 1
	}
	if p < -1 {
		p = -1
	}
	return p
}

// Decide runs one sampling pass and returns a spawn decision, if any.
// The emergency assist path runs before the weighted draw.
func (d *Director) Decide(view MatchView) (Spawn, bool) {
	d.lastAnalysis = view.Now
	d.hist.Prune(view.Now)
	an := d.Analyze(view)

	if spawn, ok := d.emergencyAssist(view, an); ok {
		return spawn, true
	}
	return d.weightedDraw(view, an)
}

// emergencyAssist grants a prioritized pickup to an agent at or below the
// low-HP threshold, subject to a per-(agent,kind) cooldown. First eligible
// kind wins: heal, then a weapon if the agent lacks one, then a shield if
// the agent lacks one.
func (d *Director) emergencyAssist(view MatchView, an Analysis) (Spawn, bool) {
	for _, name := range an.LowHPAgents {
		agent, ok := findAgent(view.Agents, name)
		if !ok {
			continue
		}
		candidates := []entity.PickupKind{entity.PickupHeal}
		if !agent.Armed {
			candidates = append(candidates, entity.PickupWeapon)
		}
		if !agent.Shielded {
			candidates = append(candidates, entity.PickupShield)
		}
		for _, kind := range candidates {
			key := cooldownKey{agent: name, kind: kind}
			if until, held := d.cooldowns[key]; held && view.Now < until {
				continue
			}
			d.cooldowns[key] = view.Now + d.cfg.AssistCooldown
			return Spawn{Kind: kind, Target: name}, true
		}
	}
	return Spawn{}, false
}

// weightedDraw performs one draw over the phase table adjusted by the
// policy rules.
func (d *Director) weightedDraw(view MatchView, an Analysis) (Spawn, bool) {
	target, ok := d.pickTarget(view.Agents)
	if !ok {
		return Spawn{}, false
	}

	ctx := RuleContext{
		Now:          view.Now,
		Tmin:         d.timing.MinDuration,
		Tmax:         d.timing.MaxDuration,
		Pressure:     an.Pressure,
		Target:       target,
		BombsSpawned: d.bombsSpawned,
		BombCap:      d.bombCap,
		FinalWindow:  d.cfg.FinalPushWindow,
	}
	weights := BaseWeights(view.Now / d.timing.MaxDuration)
	for _, rule := range d.rules {
		rule(ctx, &weights)
	}

	kind, ok := d.draw(weights)
	if !ok {
		return Spawn{}, false
	}
	if kind == entity.PickupBomb {
		d.bombsSpawned++
	}
	return Spawn{Kind: kind, Target: target.Name}, true
}

// pickTarget selects the default target: a uniform draw over the living.
func (d *Director) pickTarget(agents []AgentView) (AgentView, bool) {
	var living []AgentView
	for _, a := range agents {
		if a.Alive {
			living = append(living, a)
		}
	}
	if len(living) == 0 {
		return AgentView{}, false
	}
	return living[d.rng.Intn(len(living))], true
}

// draw performs the weighted random draw over the adjusted table.
func (d *Director) draw(w Weights) (entity.PickupKind, bool) {
	total := w.Total()
	if total <= 0 {
		return 0, false
	}
	r := d.rng.Float64() * total
	for _, kind := range entity.Kinds {
		v := w.Get(kind)
		if v <= 0 {
			continue
		}
		if r < v {
			return kind, true
		}
		r -= v
	}
	return entity.Kinds[len(entity.Kinds)-1], true
}

func findAgent(agents []AgentView, name string) (AgentView, bool) {
	for _, a := range agents {
		if a.Name == name {
			return a, true
		}
	}
	return AgentView{}, false
}
