package shooter

import (
	"testing"

	"github.com/stardrift/stardrift/internal/config"
	"github.com/stardrift/stardrift/internal/core"
	"github.com/stardrift/stardrift/internal/stats"
)

func testConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Health.StartInvulnerable = false
	return cfg
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func stepN(g *Game, n int, f core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(f)
	}
}

func TestResetInitializesState(t *testing.T) {
	g := newTestGame(1)
	state := g.State()

	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("fresh game state = %+v", state)
	}
	if state.Level != 1 {
		t.Errorf("level = %d, expected 1", state.Level)
	}
	if state.Wave != 1 {
		t.Errorf("wave = %d, expected 1", state.Wave)
	}
	if state.Lives != 3 {
		t.Errorf("lives = %d, expected 3", state.Lives)
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	a := newTestGame(77)
	b := newTestGame(77)

	in := frame(core.ActionFire, core.ActionLeft)
	for i := 0; i < 300; i++ {
		a.Step(in)
		b.Step(in)
	}

	if a.State() != b.State() {
		t.Errorf("states diverged: %+v vs %+v", a.State(), b.State())
	}
	if len(a.enemies) != len(b.enemies) {
		t.Fatalf("enemy counts diverged: %d vs %d", len(a.enemies), len(b.enemies))
	}
	for i := range a.enemies {
		if a.enemies[i].Pos != b.enemies[i].Pos {
			t.Errorf("enemy %d positions diverged: %v vs %v", i, a.enemies[i].Pos, b.enemies[i].Pos)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(5)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	ticks := g.ticks
	stepN(g, 60, frame(core.ActionFire))
	if g.ticks != ticks {
		t.Error("paused game should not advance ticks")
	}
	if len(g.bullets) != 0 {
		t.Error("paused game should not fire")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestFireSpawnsBulletAndCooldownGates(t *testing.T) {
	g := newTestGame(5)

	g.Step(frame(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Fatalf("got %d bullets after first shot, expected 1", len(g.bullets))
	}

	// Default single shot at fire rate 1: one second of cooldown
	g.Step(frame(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Errorf("got %d bullets during cooldown, expected still 1", len(g.bullets))
	}
}

func TestMovementUpdatesAimAndPosition(t *testing.T) {
	g := newTestGame(5)
	start := g.ship

	stepN(g, 30, frame(core.ActionRight))

	if g.ship.X <= start.X {
		t.Errorf("ship.X = %v, expected movement right from %v", g.ship.X, start.X)
	}
	if g.aim != core.NewVec2(1, 0) {
		t.Errorf("aim = %v, expected (1,0) after moving right", g.aim)
	}
}

func TestShipStaysInsidePlayfield(t *testing.T) {
	g := newTestGame(5)

	stepN(g, 3000, frame(core.ActionLeft, core.ActionUp))

	if g.ship.X < 1 || g.ship.Y < HUDRows+1 {
		t.Errorf("ship escaped the playfield: %v", g.ship)
	}
}

func TestWeaponSelectionInputs(t *testing.T) {
	g := newTestGame(5)

	g.Step(frame(core.ActionWeapon4))
	if g.gun.Active().Name() != "spread" {
		t.Errorf("active = %s, expected spread after pressing 4", g.gun.Active().Name())
	}

	g.Step(frame(core.ActionCycle))
	if g.gun.Active().Name() != "circle" {
		t.Errorf("active = %s, expected circle after cycling", g.gun.Active().Name())
	}
}

func TestBulletKillRewardsScoreAndXP(t *testing.T) {
	g := newTestGame(5)

	g.enemies = append(g.enemies, &Enemy{Pos: core.NewVec2(40, 10), Health: 5})
	g.bullets = append(g.bullets, Bullet{Pos: core.NewVec2(40, 10), Damage: 10})

	g.resolveBulletHits()

	if len(g.enemies) != 0 {
		t.Error("enemy should be destroyed")
	}
	if len(g.bullets) != 0 {
		t.Error("bullet should be spent")
	}
	if g.kills != 1 {
		t.Errorf("kills = %d, expected 1", g.kills)
	}
	if g.score != g.game.Enemies.ScoreReward {
		t.Errorf("score = %d, expected %d", g.score, g.game.Enemies.ScoreReward)
	}
	if g.sheet.Progression.XP() != g.game.Enemies.XPReward {
		t.Errorf("xp = %v, expected %v", g.sheet.Progression.XP(), g.game.Enemies.XPReward)
	}
}

func TestWoundedEnemySurvivesWeakBullet(t *testing.T) {
	g := newTestGame(5)

	g.enemies = append(g.enemies, &Enemy{Pos: core.NewVec2(40, 10), Health: 20})
	g.bullets = append(g.bullets, Bullet{Pos: core.NewVec2(40, 10), Damage: 7})

	g.resolveBulletHits()

	if len(g.enemies) != 1 {
		t.Fatal("enemy should survive")
	}
	if g.enemies[0].Health != 13 {
		t.Errorf("enemy health = %v, expected 13", g.enemies[0].Health)
	}
	if len(g.bullets) != 0 {
		t.Error("bullet should be spent even without a kill")
	}
}

func TestEnemyContactHitsShieldFirst(t *testing.T) {
	g := newTestGame(5)

	g.enemies = append(g.enemies, &Enemy{Pos: g.ship, Damage: 30})
	g.moveEnemies(0, true)

	if len(g.enemies) != 0 {
		t.Error("ramming enemy should be destroyed")
	}
	if got := g.sheet.Health.Shield(); got != 20 {
		t.Errorf("shield = %v, expected 50-30", got)
	}
	if got := g.sheet.Health.Current(); got != 100 {
		t.Errorf("health = %v, expected untouched 100", got)
	}
}

func TestEnemiesShootOnTheirInterval(t *testing.T) {
	g := newTestGame(5)
	g.enemies = append(g.enemies, &Enemy{
		Pos: core.NewVec2(40, 5), Damage: 10, FireInterval: 0.5, FireIn: 0.5,
	})

	g.fireEnemies(0.5)
	if len(g.enemyBullets) != 1 {
		t.Fatalf("got %d enemy bullets, expected 1", len(g.enemyBullets))
	}

	want := g.ship.Sub(core.NewVec2(40, 5)).Normalize().Scale(EnemyBulletSpeed)
	if g.enemyBullets[0].Vel != want {
		t.Errorf("bullet velocity = %v, expected aimed at ship %v", g.enemyBullets[0].Vel, want)
	}

	g.fireEnemies(0.2)
	if len(g.enemyBullets) != 1 {
		t.Error("no shot should come due before the interval elapses")
	}
}

func TestEnemiesWithoutFireIntervalNeverShoot(t *testing.T) {
	g := newTestGame(5)
	g.enemies = append(g.enemies, &Enemy{Pos: core.NewVec2(40, 5), Damage: 10})

	g.fireEnemies(10)

	if len(g.enemyBullets) != 0 {
		t.Errorf("got %d enemy bullets, expected none", len(g.enemyBullets))
	}
}

func TestEnemyBulletHitsShieldFirst(t *testing.T) {
	g := newTestGame(5)

	g.enemyBullets = append(g.enemyBullets, Bullet{Pos: g.ship, Damage: 30})
	g.moveEnemyBullets(0, true)

	if len(g.enemyBullets) != 0 {
		t.Error("bullet should be consumed on hit")
	}
	if got := g.sheet.Health.Shield(); got != 20 {
		t.Errorf("shield = %v, expected 50-30", got)
	}
	if got := g.sheet.Health.Current(); got != 100 {
		t.Errorf("health = %v, expected untouched 100", got)
	}
}

func TestDeathCancelsQueuedBurst(t *testing.T) {
	g := newTestGame(5)

	g.Step(frame(core.ActionWeapon2)) // burst
	g.Step(frame(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Fatalf("got %d bullets, expected the first burst bullet", len(g.bullets))
	}

	// Kill through shield and hull before the queued bullets come due
	g.sheet.Health.TakeDamage(1000)

	maxBullets := len(g.bullets)
	for i := 0; i < 60; i++ {
		g.Step(frame())
		if len(g.bullets) > maxBullets {
			maxBullets = len(g.bullets)
		}
	}
	if maxBullets > 1 {
		t.Errorf("queued burst bullets fired after death: saw %d", maxBullets)
	}
}

func TestDeadShipCannotFireOrMove(t *testing.T) {
	g := newTestGame(5)

	g.sheet.Health.TakeDamage(1000)
	g.Step(frame()) // Drain the death event
	pos := g.ship

	g.Step(frame(core.ActionFire, core.ActionRight))

	if len(g.bullets) != 0 {
		t.Error("dead ship fired")
	}
	if g.ship != pos {
		t.Error("dead ship moved")
	}
}

func TestRespawnRecentersWithGrace(t *testing.T) {
	g := newTestGame(5)

	stepN(g, 60, frame(core.ActionRight))
	moved := g.ship

	g.sheet.Health.TakeDamage(1000)
	// Respawn delay is 2s at 60fps
	stepN(g, 125, frame())

	if g.sheet.Health.State() != stats.Alive {
		t.Fatalf("state = %v, expected respawned Alive", g.sheet.Health.State())
	}
	if g.ship == moved {
		t.Error("respawn should recenter the ship")
	}
	if !g.sheet.Health.Invulnerable() {
		t.Error("respawn should grant invulnerability")
	}

	// Grace period expires
	stepN(g, 125, frame())
	if g.sheet.Health.Invulnerable() {
		t.Error("invulnerability should expire")
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	g := newTestGame(5)

	// Each cycle: die, respawn after 2s, outlast the 2s grace period
	for i := 0; i < 3; i++ {
		g.sheet.Health.TakeDamage(1000)
		stepN(g, 270, frame())
	}

	if !g.State().GameOver {
		t.Fatal("game should be over after losing all lives")
	}

	ticks := g.ticks
	stepN(g, 10, frame(core.ActionFire))
	if g.ticks != ticks {
		t.Error("finished game should not keep simulating")
	}
}

func TestWaveClearedAdvancesAndRewards(t *testing.T) {
	g := newTestGame(5)

	g.spawner.toSpawn = 0
	g.enemies = nil
	xpBefore := g.sheet.Progression.XP()

	g.checkWaveCleared()

	if g.spawner.Wave() != 2 {
		t.Errorf("wave = %d, expected 2", g.spawner.Wave())
	}
	if g.sheet.Progression.XP() != xpBefore+WaveClearBonusXP {
		t.Errorf("xp = %v, expected wave bonus added", g.sheet.Progression.XP())
	}

	found := false
	for _, evt := range g.pending {
		if evt.Kind == core.EventWaveCleared && evt.Value == 1 {
			found = true
		}
	}
	if !found {
		t.Error("wave-cleared event for wave 1 should be pending")
	}
}

func TestWaveNotClearedWithEnemiesAlive(t *testing.T) {
	g := newTestGame(5)

	g.spawner.toSpawn = 0
	g.enemies = []*Enemy{{Pos: core.NewVec2(10, 10), Health: 5}}

	g.checkWaveCleared()

	if g.spawner.Wave() != 1 {
		t.Errorf("wave = %d, expected still 1", g.spawner.Wave())
	}
}

func TestStepEmitsEventsOnce(t *testing.T) {
	g := newTestGame(5)

	g.sheet.Health.TakeDamage(10)
	res := g.Step(frame())

	if len(res.Events) == 0 {
		t.Fatal("damage events should surface in the step result")
	}

	res = g.Step(frame())
	for _, evt := range res.Events {
		if evt.Kind == core.EventShieldHit {
			t.Error("events should not be delivered twice")
		}
	}
}

func TestSpawnerHonorsCapAndQuota(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies.SpawnInterval = 0.01
	cfg.Enemies.MaxAlive = 3
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})

	// Park the ship far from spawns so nothing dies to contact
	stepN(g, 600, frame())

	if len(g.enemies) > 3 {
		t.Errorf("alive enemies = %d, expected cap 3", len(g.enemies))
	}
}

func TestRenderDrawsHUDAndShip(t *testing.T) {
	g := newTestGame(5)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if screen.Get(int(g.ship.X), int(g.ship.Y)) != ShipChar {
		t.Error("ship glyph missing from render")
	}
	row := screen.Row(0)
	if row == "" || row[1] != 'H' { // " HP ..." HUD prefix
		t.Errorf("HUD row = %q", row)
	}
}
