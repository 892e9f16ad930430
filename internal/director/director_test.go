package director

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/orbarena/internal/config"
	"github.com/vovakirdan/orbarena/internal/entity"
)

func testDirectorConfig() config.DirectorConfig {
	return config.DirectorConfig{
		AnalysisInterval:   1.0,
		DamageRateWindow:   8.0,
		HistoryRetention:   15.0,
		LowHPThreshold:     2,
		AssistCooldown:     6.0,
		PressureDeadband:   5.0,
		DramaticBuffer:     4.0,
		RepetitionLookback: 5.0,
		FinalPushWindow:    10.0,
	}
}

func testTiming() config.TimingConfig {
	return config.TimingConfig{
		TickRate:    60,
		SubSteps:    4,
		MinDuration: 45,
		MaxDuration: 75,
	}
}

func healthyView(now float64) MatchView {
	return MatchView{
		Now: now,
		Agents: []AgentView{
			{Name: "Crimson", HP: 7, MaxHP: 7, Alive: true},
			{Name: "Azure", HP: 7, MaxHP: 7, Alive: true},
		},
	}
}

func TestDueFollowsAnalysisInterval(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(1)))

	if !d.Due(0) {
		t.Error("Director should be due on the first tick")
	}
	d.Decide(healthyView(0))
	if d.Due(0.5) {
		t.Error("Director should not be due half an interval later")
	}
	if !d.Due(1.0) {
		t.Error("Director should be due a full interval later")
	}
}

func TestAnalyzePredictedEndFromMeasuredRate(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(1)))

	// 4 HP lost over the trailing 8s window: rate 0.5/s.
	d.RecordDamage(22, "Crimson", 2, CauseWeapon)
	d.RecordDamage(26, "Azure", 2, CauseWeapon)

	view := MatchView{
		Now: 30,
		Agents: []AgentView{
			{Name: "Crimson", HP: 5, MaxHP: 7, Alive: true},
			{Name: "Azure", HP: 3, MaxHP: 7, Alive: true},
		},
	}
	an := d.Analyze(view)

	if an.RateFallback {
		t.Error("Measured damage should not use the fallback rate")
	}
	if math.Abs(an.DamageRate-0.5) > 1e-9 {
		t.Errorf("Rate should be 0.5/s, got %f", an.DamageRate)
	}
	// Weakest has 3 HP: 30 + 3/0.5 + 4s buffer = 40.
	if math.Abs(an.PredictedEnd-40) > 1e-9 {
		t.Errorf("Predicted end should be 40, got %f", an.PredictedEnd)
	}
	if an.HPDisparity != 2 {
		t.Errorf("HP disparity should be 2, got %d", an.HPDisparity)
	}
}

func TestAnalyzeFallbackRateByPhase(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(1)))

	early := d.Analyze(healthyView(5))
	if !early.RateFallback {
		t.Error("No damage history should trigger the fallback rate")
	}
	late := d.Analyze(healthyView(70))
	if late.DamageRate <= early.DamageRate {
		t.Errorf("Fallback rate should rise with phase, early=%f late=%f", early.DamageRate, late.DamageRate)
	}
}

func TestPressureSignAndDeadband(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(1)))

	// Window is [45, 75], midpoint 60, deadband 5.
	if p := d.pressure(60); p != 0 {
		t.Errorf("Predicted end at midpoint should give zero pressure, got %f", p)
	}
	if p := d.pressure(63); p != 0 {
		t.Errorf("Predicted end inside the deadband should give zero pressure, got %f", p)
	}
	if p := d.pressure(72); p <= 0 {
		t.Errorf("Late predicted end should give positive pressure, got %f", p)
	}
	if p := d.pressure(40); p >= 0 {
		t.Errorf("Early predicted end should give negative pressure, got %f", p)
	}
	if p := d.pressure(200); p != 1 {
		t.Errorf("Pressure should clamp at 1, got %f", p)
	}
	if p := d.pressure(-200); p != -1 {
		t.Errorf("Pressure should clamp at -1, got %f", p)
	}
}

func TestEmergencyAssistPrefersHeal(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(1)))

	view := MatchView{
		Now: 20,
		Agents: []AgentView{
			{Name: "Crimson", HP: 1, MaxHP: 7, Alive: true},
			{Name: "Azure", HP: 6, MaxHP: 7, Alive: true},
		},
	}
	spawn, ok := d.Decide(view)
	if !ok {
		t.Fatal("A low-HP agent should force a spawn")
	}
	if spawn.Kind != entity.PickupHeal || spawn.Target != "Crimson" {
		t.Errorf("Assist should grant a heal to the weak agent, got %s for %s", spawn.Kind, spawn.Target)
	}
}

func TestEmergencyAssistCooldownWalksCandidates(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(1)))

	view := MatchView{
		Now: 20,
		Agents: []AgentView{
			{Name: "Crimson", HP: 1, MaxHP: 7, Alive: true},
			{Name: "Azure", HP: 6, MaxHP: 7, Alive: true},
		},
	}

	first, _ := d.Decide(view)
	if first.Kind != entity.PickupHeal {
		t.Fatalf("First assist should be a heal, got %s", first.Kind)
	}

	// Within the cooldown the heal slot is held, so the next eligible
	// kind is drawn instead.
	view.Now = 21
	second, ok := d.Decide(view)
	if !ok {
		t.Fatal("Second pass should still assist")
	}
	if second.Kind != entity.PickupWeapon || second.Target != "Crimson" {
		t.Errorf("Cooldown should skip to the weapon, got %s for %s", second.Kind, second.Target)
	}

	view.Now = 22
	third, _ := d.Decide(view)
	if third.Kind != entity.PickupShield {
		t.Errorf("Third pass should grant the shield, got %s", third.Kind)
	}

	// After the cooldown expires the heal is available again.
	view.Now = 27
	fourth, _ := d.Decide(view)
	if fourth.Kind != entity.PickupHeal {
		t.Errorf("Expired cooldown should allow the heal again, got %s", fourth.Kind)
	}
}

func TestBombCapNeverExceeded(t *testing.T) {
	const bombCap = 2
	d := New(testDirectorConfig(), testTiming(), bombCap, rand.New(rand.NewSource(7)))

	// Drive many decisions through the bomb-friendly late phase.
	bombs := 0
	for i := 0; i < 500; i++ {
		view := healthyView(70)
		spawn, ok := d.Decide(view)
		if !ok {
			continue
		}
		if spawn.Kind == entity.PickupBomb {
			bombs++
		}
	}

	if bombs > bombCap {
		t.Errorf("Bomb spawns should never exceed the cap of %d, got %d", bombCap, bombs)
	}
	if d.BombsSpawned() > bombCap {
		t.Errorf("Bomb counter should never exceed the cap, got %d", d.BombsSpawned())
	}
}

func TestNoBombsBeforeMinDuration(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 10, rand.New(rand.NewSource(3)))

	for i := 0; i < 500; i++ {
		spawn, ok := d.Decide(healthyView(10))
		if ok && spawn.Kind == entity.PickupBomb {
			t.Fatal("No bomb should spawn before the minimum duration")
		}
	}
}

func TestDecideSkipsDeadAgentsAsTargets(t *testing.T) {
	d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(5)))

	view := MatchView{
		Now: 50,
		Agents: []AgentView{
			{Name: "Crimson", HP: 0, MaxHP: 7, Alive: false},
			{Name: "Azure", HP: 5, MaxHP: 7, Alive: true},
		},
	}
	for i := 0; i < 50; i++ {
		spawn, ok := d.Decide(view)
		if ok && spawn.Target != "Azure" {
			t.Fatalf("Only living agents should be targeted, got %s", spawn.Target)
		}
	}
}

func TestDecideDeterministicPerSeed(t *testing.T) {
	run := func(seed int64) []Spawn {
		d := New(testDirectorConfig(), testTiming(), 2, rand.New(rand.NewSource(seed)))
		var spawns []Spawn
		for i := 0; i < 60; i++ {
			now := float64(i)
			if !d.Due(now) {
				continue
			}
			if spawn, ok := d.Decide(healthyView(now)); ok {
				spawns = append(spawns, spawn)
			}
		}
		return spawns
	}

	a := run(42)
	b := run(42)
	if len(a) != len(b) {
		t.Fatalf("Same seed should produce the same spawn count, got %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Spawn %d differs between identical seeds: %v vs %v", i, a[i], b[i])
		}
	}
}
