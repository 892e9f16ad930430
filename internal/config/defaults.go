package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the built-in two-agent demo match. Used as a
// last resort when the embedded YAML cannot be parsed, and by tests.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Title: "Orb Arena",
		Arena: ArenaConfig{
			Width:         800,
			Height:        800,
			WallThickness: 2,
		},
		Timing: TimingConfig{
			TickRate:    60,
			SubSteps:    4,
			MinDuration: 45,
			MaxDuration: 75,
		},
		Physics: PhysicsConfig{
			Damping:         0.99,
			WallRestitution: 1.05,
			BodyRestitution: 1.0,
			SpeedCap:        320,
			ArmedSpeedCap:   380,
		},
		Agents: []AgentConfig{
			{Name: "Crimson", MaxHP: 7, Radius: 60, X: 200, Y: 200, VX: 250, VY: 150, OutlineColor: "red"},
			{Name: "Azure", MaxHP: 7, Radius: 60, X: 600, Y: 600, VX: -200, VY: 230, OutlineColor: "blue"},
		},
		Pickups: PickupConfig{
			Radius:     14,
			MaxOnField: 3,
			HealAmount: 1,
		},
		Weapon: WeaponConfig{
			Damage:      1,
			Radius:      18,
			OrbitOffset: 26,
			OrbitSpeed:  4.2,
		},
		Bomb: BombConfig{
			Radius:         140,
			Damage:         2,
			Impulse:        260,
			SelfMultiplier: 1.5,
			MaxSpawns:      2,
		},
		Director: DirectorConfig{
			AnalysisInterval:   1.0,
			DamageRateWindow:   8.0,
			HistoryRetention:   15.0,
			LowHPThreshold:     2,
			AssistCooldown:     6.0,
			PressureDeadband:   5.0,
			DramaticBuffer:     4.0,
			RepetitionLookback: 5.0,
			FinalPushWindow:    10.0,
		},
	}
}
