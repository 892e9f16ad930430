package entity

// Radius animation constants
const (
	// RadiusAnimDuration is how long (seconds) an agent takes to ease
	// toward its HP-derived radius after a damage or heal.
	RadiusAnimDuration = 0.25

	// minRadiusScale is the radius fraction an agent shrinks to at 0 HP.
	minRadiusScale = 0.6
)

// radiusAnim eases a radius from one value to another over a fixed
// duration. Progress is a function of elapsed animation time only, so the
// result is independent of frame rate.
type radiusAnim struct {
	from, to float64
	elapsed  float64
	active   bool
}

// start begins easing from the current value toward a new target.
func (a *radiusAnim) start(from, to float64) {
	a.from = from
	a.to = to
	a.elapsed = 0
	a.active = true
}

// advance moves the animation forward by dt and returns the current radius.
// Once the duration elapses it settles on the target.
func (a *radiusAnim) advance(dt float64) float64 {
	if !a.active {
		return a.to
	}
	a.elapsed += dt
	if a.elapsed >= RadiusAnimDuration {
		a.active = false
		return a.to
	}
	t := easeOutQuad(a.elapsed / RadiusAnimDuration)
	return a.from + (a.to-a.from)*t
}

// current returns the radius at the present animation time without
// advancing it.
func (a *radiusAnim) current() float64 {
	if !a.active {
		return a.to
	}
	t := easeOutQuad(a.elapsed / RadiusAnimDuration)
	return a.from + (a.to-a.from)*t
}

// easeOutQuad provides smooth deceleration toward the target.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
