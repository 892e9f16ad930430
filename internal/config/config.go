// Package config provides YAML-based match configuration loading and
// fail-fast validation for the arena battle core.
package config

import "fmt"

// MatchConfig contains everything needed to run one match.
type MatchConfig struct {
	Title    string         `yaml:"title"`
	Arena    ArenaConfig    `yaml:"arena"`
	Timing   TimingConfig   `yaml:"timing"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Agents   []AgentConfig  `yaml:"agents"`
	Pickups  PickupConfig   `yaml:"pickups"`
	Weapon   WeaponConfig   `yaml:"weapon"`
	Bomb     BombConfig     `yaml:"bomb"`
	Director DirectorConfig `yaml:"director"`
}

// ArenaConfig defines the bounded arena geometry.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// TimingConfig defines the tick cadence and the target duration window.
type TimingConfig struct {
	TickRate    int     `yaml:"tick_rate"`    // Simulation ticks per second
	SubSteps    int     `yaml:"sub_steps"`    // Physics sub-steps per tick
	MinDuration float64 `yaml:"min_duration"` // Tmin, seconds
	MaxDuration float64 `yaml:"max_duration"` // Tmax, seconds; also the hard tick limit
}

// PhysicsConfig defines integration and collision-response parameters.
type PhysicsConfig struct {
	Damping         float64 `yaml:"damping"`          // Velocity retained per second
	WallRestitution float64 `yaml:"wall_restitution"` // >1.0 injects energy on wall bounces
	BodyRestitution float64 `yaml:"body_restitution"`
	SpeedCap        float64 `yaml:"speed_cap"`       // Post-step speed cap, units/s
	ArmedSpeedCap   float64 `yaml:"armed_speed_cap"` // Cap while carrying a weapon
}

// AgentConfig defines one combatant's starting state.
type AgentConfig struct {
	Name         string  `yaml:"name"`
	MaxHP        int     `yaml:"max_hp"`
	Radius       float64 `yaml:"radius"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	VX           float64 `yaml:"vx"`
	VY           float64 `yaml:"vy"`
	OutlineColor string  `yaml:"outline_color"`
}

// PickupConfig defines pickup geometry and effect amounts.
type PickupConfig struct {
	Radius     float64 `yaml:"radius"`
	MaxOnField int     `yaml:"max_on_field"` // Cap on simultaneous live pickups
	HealAmount int     `yaml:"heal_amount"`
}

// WeaponConfig defines the owner-following hazard.
type WeaponConfig struct {
	Damage      int     `yaml:"damage"`
	Radius      float64 `yaml:"radius"`
	OrbitOffset float64 `yaml:"orbit_offset"` // Gap between owner surface and weapon center
	OrbitSpeed  float64 `yaml:"orbit_speed"`  // Radians per second
}

// BombConfig defines the area explosion effect.
type BombConfig struct {
	Radius         float64 `yaml:"radius"` // Blast radius
	Damage         int     `yaml:"damage"`
	Impulse        float64 `yaml:"impulse"`         // Outward impulse magnitude
	SelfMultiplier float64 `yaml:"self_multiplier"` // Extra impulse on the triggering agent
	MaxSpawns      int     `yaml:"max_spawns"`      // Hard cap on bomb pickups per match
}

// DirectorConfig tunes the adaptive pacing controller.
type DirectorConfig struct {
	AnalysisInterval   float64 `yaml:"analysis_interval"`   // Seconds between samples
	DamageRateWindow   float64 `yaml:"damage_rate_window"`  // Trailing window for rate estimation
	HistoryRetention   float64 `yaml:"history_retention"`   // Health events older than this are pruned
	LowHPThreshold     int     `yaml:"low_hp_threshold"`    // At or below triggers the assist path
	AssistCooldown     float64 `yaml:"assist_cooldown"`     // Per-(agent,kind) cooldown, seconds
	PressureDeadband   float64 `yaml:"pressure_deadband"`   // Seconds of slack before pressure engages
	DramaticBuffer     float64 `yaml:"dramatic_buffer"`     // Added to the predicted end, seconds
	RepetitionLookback float64 `yaml:"repetition_lookback"` // Oscillation-guard window, seconds
	FinalPushWindow    float64 `yaml:"final_push_window"`   // Seconds before Tmax to force a finish
}

// Validate rejects configurations the core cannot run to completion.
// Called at match construction; errors here are fail-fast.
func (c MatchConfig) Validate() error {
	if len(c.Agents) < 2 {
		return fmt.Errorf("config: need at least 2 agents, got %d", len(c.Agents))
	}
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena dimensions must be positive, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	for _, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("config: agent with empty name")
		}
		if a.MaxHP <= 0 {
			return fmt.Errorf("config: agent %s: max_hp must be positive, got %d", a.Name, a.MaxHP)
		}
		if a.Radius <= 0 {
			return fmt.Errorf("config: agent %s: radius must be positive, got %g", a.Name, a.Radius)
		}
		if 2*a.Radius >= c.Arena.Width || 2*a.Radius >= c.Arena.Height {
			return fmt.Errorf("config: agent %s does not fit in the arena", a.Name)
		}
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Timing.SubSteps <= 0 {
		return fmt.Errorf("config: sub_steps must be positive, got %d", c.Timing.SubSteps)
	}
	if c.Timing.MaxDuration <= 0 {
		return fmt.Errorf("config: max_duration must be positive, got %g", c.Timing.MaxDuration)
	}
	if c.Timing.MinDuration > c.Timing.MaxDuration {
		return fmt.Errorf("config: min_duration %g exceeds max_duration %g",
			c.Timing.MinDuration, c.Timing.MaxDuration)
	}
	if c.Physics.SpeedCap <= 0 || c.Physics.ArmedSpeedCap <= 0 {
		return fmt.Errorf("config: speed caps must be positive")
	}
	if c.Pickups.Radius <= 0 {
		return fmt.Errorf("config: pickup radius must be positive, got %g", c.Pickups.Radius)
	}
	if c.Pickups.MaxOnField <= 0 {
		return fmt.Errorf("config: max_on_field must be positive, got %d", c.Pickups.MaxOnField)
	}
	if c.Weapon.Damage <= 0 {
		return fmt.Errorf("config: weapon damage must be positive, got %d", c.Weapon.Damage)
	}
	if c.Bomb.MaxSpawns < 0 {
		return fmt.Errorf("config: bomb max_spawns cannot be negative, got %d", c.Bomb.MaxSpawns)
	}
	if c.Director.AnalysisInterval <= 0 {
		return fmt.Errorf("config: analysis_interval must be positive, got %g", c.Director.AnalysisInterval)
	}
	return nil
}

// MaxTicks returns the hard tick limit derived from the duration window.
func (c MatchConfig) MaxTicks() int {
	return int(c.Timing.MaxDuration * float64(c.Timing.TickRate))
}
