package director

import "github.com/vovakirdan/orbarena/internal/entity"

// Weights is the spawn draw table over pickup kinds. Negative values are
// treated as zero at draw time.
type Weights struct {
	Heal   float64
	Weapon float64
	Shield float64
	Bomb   float64
}

// Get returns the weight for a kind.
func (w Weights) Get(kind entity.PickupKind) float64 {
	switch kind {
	case entity.PickupHeal:
		return w.Heal
	case entity.PickupWeapon:
		return w.Weapon
	case entity.PickupShield:
		return w.Shield
	case entity.PickupBomb:
		return w.Bomb
	default:
		return 0
	}
}

// Total sums the positive weights.
func (w Weights) Total() float64 {
	total := 0.0
	for _, kind := range entity.Kinds {
		if v := w.Get(kind); v > 0 {
			total += v
		}
	}
	return total
}

// RuleContext is the read-only state a policy rule adjusts weights from.
type RuleContext struct {
	Now      float64
	Tmin     float64
	Tmax     float64
	Pressure float64 // >0 accelerate, <0 extend, 0 inside the dead-band

	Target       AgentView // Agent the spawn is aimed at
	BombsSpawned int
	BombCap      int
	FinalWindow  float64 // Seconds before Tmax that force a decisive finish
}

// PolicyRule is a pure weight adjustment. Rules compose left-to-right so
// each one stays independently testable.
type PolicyRule func(ctx RuleContext, w *Weights)

// DefaultRules is the ordered rule chain applied after the phase base
// table. Order matters: hard zeroing rules run last so multiplicative
// biases cannot resurrect a forbidden kind.
func DefaultRules() []PolicyRule {
	return []PolicyRule{
		ExtensionBias,
		AccelerationBias,
		FinalPush,
		FullHPNoHeal,
		EarlyGameGuard,
		BombCapRule,
	}
}

// BaseWeights returns the phase-based starting table. Phase is elapsed
// time as a fraction of Tmax.
func BaseWeights(phase float64) Weights {
	switch {
	case phase < 0.33:
		return Weights{Heal: 3, Weapon: 2, Shield: 2, Bomb: 0.5}
	case phase < 0.66:
		return Weights{Heal: 2, Weapon: 3, Shield: 2, Bomb: 1}
	default:
		return Weights{Heal: 1, Weapon: 4, Shield: 1, Bomb: 1.5}
	}
}

// ExtensionBias boosts heal/shield and suppresses weapon/bomb when the
// match is predicted to end before the window midpoint.
func ExtensionBias(ctx RuleContext, w *Weights) {
	if ctx.Pressure >= 0 {
		return
	}
	strength := -ctx.Pressure // (0, 1]
	w.Heal *= 1 + 2*strength
	w.Shield *= 1 + 1.5*strength
	w.Weapon *= 1 - 0.7*strength
	w.Bomb *= 1 - 0.7*strength
}

// AccelerationBias boosts weapon/bomb and suppresses heal/shield when the
// match is predicted to run past the window midpoint.
func AccelerationBias(ctx RuleContext, w *Weights) {
	if ctx.Pressure <= 0 {
		return
	}
	strength := ctx.Pressure
	w.Weapon *= 1 + 2*strength
	w.Bomb *= 1 + 1.5*strength
	w.Heal *= 1 - 0.7*strength
	w.Shield *= 1 - 0.7*strength
}

// FinalPush biases heavily toward weapons (and bombs, if still permitted)
// in the last seconds before Tmax to force a decisive finish.
func FinalPush(ctx RuleContext, w *Weights) {
	if ctx.Now < ctx.Tmax-ctx.FinalWindow {
		return
	}
	w.Weapon *= 6
	w.Bomb *= 4
	w.Heal *= 0.05
	w.Shield *= 0.05
}

// FullHPNoHeal zeroes the heal weight for a target already at max HP.
func FullHPNoHeal(ctx RuleContext, w *Weights) {
	if ctx.Target.HP >= ctx.Target.MaxHP {
		w.Heal = 0
	}
}

// EarlyGameGuard forbids bombs before Tmin and biases toward heal/shield
// so the match cannot end too soon.
func EarlyGameGuard(ctx RuleContext, w *Weights) {
	if ctx.Now >= ctx.Tmin {
		return
	}
	w.Bomb = 0
	w.Heal *= 3
	w.Shield *= 2
}

// BombCapRule zeroes the bomb weight once the spawn counter hits the cap.
func BombCapRule(ctx RuleContext, w *Weights) {
	if ctx.BombsSpawned >= ctx.BombCap {
		w.Bomb = 0
	}
}
