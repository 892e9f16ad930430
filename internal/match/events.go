package match

import "github.com/vovakirdan/orbarena/internal/core"

// Events are the presentation/audio callbacks the core fires synchronously
// at the moment an effect is applied. All fields are optional; return
// values do not exist because the core ignores presentation outcomes.
type Events struct {
	OnAgentDamaged   func(agent string, amount, hp int)
	OnAgentHealed    func(agent string, amount, hp int)
	OnShieldBroken   func(agent string)
	OnWeaponEquipped func(agent string)
	OnBombExploded   func(pos core.Vec2, hit []string)
	OnWallBounce     func(agent string)
	OnMatchWon       func(winner string, tick int)
}

func (e Events) fireAgentDamaged(agent string, amount, hp int) {
	if e.OnAgentDamaged != nil {
		e.OnAgentDamaged(agent, amount, hp)
	}
}

func (e Events) fireAgentHealed(agent string, amount, hp int) {
	if e.OnAgentHealed != nil {
		e.OnAgentHealed(agent, amount, hp)
	}
}

func (e Events) fireShieldBroken(agent string) {
	if e.OnShieldBroken != nil {
		e.OnShieldBroken(agent)
	}
}

func (e Events) fireWeaponEquipped(agent string) {
	if e.OnWeaponEquipped != nil {
		e.OnWeaponEquipped(agent)
	}
}

func (e Events) fireBombExploded(pos core.Vec2, hit []string) {
	if e.OnBombExploded != nil {
		e.OnBombExploded(pos, hit)
	}
}

func (e Events) fireWallBounce(agent string) {
	if e.OnWallBounce != nil {
		e.OnWallBounce(agent)
	}
}

func (e Events) fireMatchWon(winner string, tick int) {
	if e.OnMatchWon != nil {
		e.OnMatchWon(winner, tick)
	}
}
