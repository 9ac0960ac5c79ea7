// Package shooter implements a 2D space shooter. The player pilots a
// ship through enemy waves, levelling up from kills while switching
// between five shooting patterns.
package shooter

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/stardrift/stardrift/internal/config"
	"github.com/stardrift/stardrift/internal/core"
	"github.com/stardrift/stardrift/internal/registry"
	"github.com/stardrift/stardrift/internal/stats"
	"github.com/stardrift/stardrift/internal/weapon"
)

// Tuning constants not worth a config knob
const (
	BulletSpeed      = 30.0 // Cells per second
	EnemyBulletSpeed = 12.0
	BulletHitRadius  = 1.2
	ShipHitRadius    = 1.5
	InvulnerableTime = 2.0 // Seconds of grace after spawn/respawn
	WaveClearBonusXP = 50.0
	HUDRows          = 1
)

// Visual characters for rendering
const (
	ShipChar        = '▲'
	EnemyChar       = '◆'
	BulletChar      = '•'
	EnemyBulletChar = '·'
)

// Bullet is a live player projectile.
type Bullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Damage float64
}

// Game implements the space shooter logic.
type Game struct {
	cfg  core.RuntimeConfig
	game config.ShooterConfig
	diff *config.DifficultyManager

	sheet *stats.Sheet
	gun   *weapon.Weapon

	ship      core.Vec2
	aim       core.Vec2
	shipSpeed float64

	bullets      []Bullet
	enemyBullets []Bullet
	enemies      []*Enemy
	spawner      *Spawner

	score       int
	kills       int
	paused      bool
	ticks       int
	elapsed     float64
	invulnTimer float64

	pending []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a shooter instance, loading configuration from the usual
// search paths. Out-of-range values are replaced with defaults and
// reported through the standard logger.
func New() *Game {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}

	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}

	config.Sanitize(&cfg, log.Warnf)

	return NewWithConfig(cfg)
}

// NewWithConfig creates a shooter with the given configuration.
// Callers are expected to have run config.Sanitize first.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{game: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stardrift"
}

// SetMoveSpeed receives the effective ship speed from the movement
// stat block whenever it changes.
func (g *Game) SetMoveSpeed(speed float64) {
	g.shipSpeed = speed
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.paused = false
	g.score = 0
	g.kills = 0
	g.ticks = 0
	g.elapsed = 0
	g.bullets = nil
	g.enemyBullets = nil
	g.enemies = nil
	g.pending = nil

	sink := func(evt core.Event) { g.pending = append(g.pending, evt) }
	rng := rand.New(rand.NewSource(cfg.Seed))

	g.sheet = stats.NewSheet(stats.SheetConfig{
		Health:      healthConfig(g.game.Health),
		Combat:      combatConfig(g.game.Combat),
		Defense:     defenseConfig(g.game.Defense),
		Movement:    movementConfig(g.game.Movement),
		Progression: progressionConfig(g.game.Progression),
	}, rng, sink, nil)
	g.sheet.Movement.AddConsumer(g)

	g.gun = buildLoadout(g.game.Weapons, g.sheet.Combat, sink)

	g.diff = config.NewDifficultyManager(g.game.Difficulty)
	if g.spawner == nil {
		g.spawner = NewSpawner(g.game.Enemies, g.diff, cfg.Seed, cfg.ScreenW, cfg.ScreenH)
	} else {
		g.spawner.cfg = g.game.Enemies
		g.spawner.diff = g.diff
		g.spawner.UpdateScreenSize(cfg.ScreenW, cfg.ScreenH)
		g.spawner.Reset(cfg.Seed)
	}

	g.centerShip()
	g.aim = core.NewVec2(0, -1) // Screen-up
	g.invulnTimer = InvulnerableTime
	if g.game.Health.StartInvulnerable {
		g.sheet.Health.SetInvulnerable(true)
	}
}

func (g *Game) centerShip() {
	g.ship = core.NewVec2(float64(g.cfg.ScreenW)/2, float64(g.cfg.ScreenH)-3)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.GameOver() {
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	dt := g.cfg.DeltaTime()
	g.ticks++
	g.elapsed += dt

	alive := g.sheet.Health.State() == stats.Alive

	if alive {
		g.handleWeaponInput(in)
		g.handleMovement(in, dt)
		if in.Has(core.ActionFire) {
			g.bullets = appendBullets(g.bullets, g.gun.TryFire(g.ship, g.aim))
		}
	}

	// Queued burst bullets still fire while alive; death cancels the
	// sequence below before the next tick can reach here.
	g.bullets = appendBullets(g.bullets, g.gun.Advance(dt))

	g.sheet.Advance(dt)
	g.advanceInvulnerability(dt)

	g.moveBullets(dt)
	g.spawnEnemies()
	g.moveEnemies(dt, alive)
	g.fireEnemies(dt)
	g.moveEnemyBullets(dt, alive)
	g.resolveBulletHits()
	g.checkWaveCleared()

	return g.result()
}

// result drains pending events, reacting to lifecycle ones first.
func (g *Game) result() core.StepResult {
	events := g.pending
	g.pending = nil

	for _, evt := range events {
		switch evt.Kind {
		case core.EventDeath:
			// A dead ship fires nothing: drop any queued burst bullets
			g.gun.Cancel()
		case core.EventRespawn:
			g.centerShip()
			g.sheet.Health.SetInvulnerable(true)
			g.invulnTimer = InvulnerableTime
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) handleWeaponInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionWeapon1):
		g.gun.Select(0)
	case in.Has(core.ActionWeapon2):
		g.gun.Select(1)
	case in.Has(core.ActionWeapon3):
		g.gun.Select(2)
	case in.Has(core.ActionWeapon4):
		g.gun.Select(3)
	case in.Has(core.ActionWeapon5):
		g.gun.Select(4)
	case in.Has(core.ActionCycle):
		g.gun.Cycle()
	}
}

func (g *Game) handleMovement(in core.InputFrame, dt float64) {
	var dir core.Vec2
	if in.Has(core.ActionUp) {
		dir.Y--
	}
	if in.Has(core.ActionDown) {
		dir.Y++
	}
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}
	if dir.IsZero() {
		return
	}

	dir = dir.Normalize()
	g.aim = dir
	g.ship = g.ship.Add(dir.Scale(g.shipSpeed * dt))

	// Keep the ship inside the playfield
	g.ship.X = core.ClampF(g.ship.X, 1, float64(g.cfg.ScreenW-2))
	g.ship.Y = core.ClampF(g.ship.Y, HUDRows+1, float64(g.cfg.ScreenH-2))
}

func (g *Game) advanceInvulnerability(dt float64) {
	if g.invulnTimer <= 0 {
		return
	}
	g.invulnTimer -= dt
	if g.invulnTimer <= 0 && g.sheet.Health.State() == stats.Alive {
		g.sheet.Health.SetInvulnerable(false)
	}
}

func (g *Game) moveBullets(dt float64) {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.Pos.X < 0 || b.Pos.X >= float64(g.cfg.ScreenW) ||
			b.Pos.Y < HUDRows || b.Pos.Y >= float64(g.cfg.ScreenH) {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

func (g *Game) spawnEnemies() {
	dt := g.cfg.DeltaTime()
	if e := g.spawner.Advance(dt, len(g.enemies), g.score, g.ticks); e != nil {
		g.enemies = append(g.enemies, e)
	}
}

func (g *Game) moveEnemies(dt float64, shipAlive bool) {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		e.Seek(g.ship, dt)

		// Ramming an enemy destroys it and hurts the ship
		if shipAlive && e.Pos.Sub(g.ship).Len() < ShipHitRadius {
			damage := g.sheet.Defense.ApplyDefense(e.Damage)
			g.sheet.Health.TakeDamage(damage)
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept
}

// fireEnemies lets due enemies shoot at the ship's current position.
func (g *Game) fireEnemies(dt float64) {
	for _, e := range g.enemies {
		if !e.TickFire(dt) {
			continue
		}
		dir := g.ship.Sub(e.Pos).Normalize()
		g.enemyBullets = append(g.enemyBullets, Bullet{
			Pos:    e.Pos,
			Vel:    dir.Scale(EnemyBulletSpeed),
			Damage: e.Damage,
		})
	}
}

func (g *Game) moveEnemyBullets(dt float64, shipAlive bool) {
	kept := g.enemyBullets[:0]
	for _, b := range g.enemyBullets {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if b.Pos.X < 0 || b.Pos.X >= float64(g.cfg.ScreenW) ||
			b.Pos.Y < HUDRows || b.Pos.Y >= float64(g.cfg.ScreenH) {
			continue
		}
		if shipAlive && b.Pos.Sub(g.ship).Len() < ShipHitRadius {
			damage := g.sheet.Defense.ApplyDefense(b.Damage)
			g.sheet.Health.TakeDamage(damage)
			continue
		}
		kept = append(kept, b)
	}
	g.enemyBullets = kept
}

func (g *Game) resolveBulletHits() {
	for bi := 0; bi < len(g.bullets); bi++ {
		b := g.bullets[bi]
		for ei, e := range g.enemies {
			if b.Pos.Sub(e.Pos).Len() >= BulletHitRadius {
				continue
			}

			e.Health -= b.Damage
			if e.Health <= 0 {
				g.enemies = append(g.enemies[:ei], g.enemies[ei+1:]...)
				g.kills++
				g.score += g.game.Enemies.ScoreReward
				g.sheet.Progression.AddXP(g.game.Enemies.XPReward)
			}

			// The bullet is spent either way
			g.bullets = append(g.bullets[:bi], g.bullets[bi+1:]...)
			bi--
			break
		}
	}
}

func (g *Game) checkWaveCleared() {
	if !g.spawner.WaveCleared(len(g.enemies)) {
		return
	}

	cleared := g.spawner.Wave()
	g.spawner.NextWave()
	g.sheet.Progression.AddXP(WaveClearBonusXP)
	g.pending = append(g.pending, core.Event{
		Kind:  core.EventWaveCleared,
		Value: float64(cleared),
	})
}

func appendBullets(bullets []Bullet, reqs []weapon.SpawnRequest) []Bullet {
	for _, r := range reqs {
		bullets = append(bullets, Bullet{
			Pos:    r.Origin,
			Vel:    r.Direction.Scale(BulletSpeed),
			Damage: r.Damage,
		})
	}
	return bullets
}

// GameOver reports whether the run has ended.
func (g *Game) GameOver() bool {
	return g.sheet != nil && g.sheet.Health.State() == stats.GameOver
}

// Kills returns the number of enemies destroyed this run.
func (g *Game) Kills() int {
	return g.kills
}

// Elapsed returns the run duration in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Sheet exposes the player stat sheet for the platform HUD.
func (g *Game) Sheet() *stats.Sheet {
	return g.sheet
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Score:  g.score,
		Paused: g.paused,
	}
	if g.sheet != nil {
		state.Level = g.sheet.Progression.Level()
		state.Lives = g.sheet.Health.Lives()
		state.GameOver = g.GameOver()
	}
	if g.spawner != nil {
		state.Wave = g.spawner.Wave()
	}
	return state
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, b := range g.bullets {
		dst.SetColored(int(b.Pos.X), int(b.Pos.Y), BulletChar, core.ColorYellow)
	}
	for _, b := range g.enemyBullets {
		dst.SetColored(int(b.Pos.X), int(b.Pos.Y), EnemyBulletChar, core.ColorMagenta)
	}
	for _, e := range g.enemies {
		dst.SetColored(int(e.Pos.X), int(e.Pos.Y), EnemyChar, core.ColorRed)
	}

	if g.sheet.Health.State() == stats.Alive {
		color := core.ColorBrightCyan
		if g.sheet.Health.Invulnerable() {
			color = core.ColorGray
		}
		dst.SetColored(int(g.ship.X), int(g.ship.Y), ShipChar, color)
	}

	g.drawHUD(dst)

	if g.sheet.Health.State() == stats.Dead {
		g.drawCenteredMessage(dst, "SHIP DESTROYED",
			fmt.Sprintf("Respawn in %.1fs", g.sheet.Health.RespawnIn()))
	}
	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Wave: %d  |  Press R to restart", g.score, g.spawner.Wave()))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	h := g.sheet.Health
	p := g.sheet.Progression

	left := fmt.Sprintf(" HP %3.0f/%-3.0f  SH %3.0f/%-3.0f  Lives %d ",
		h.Current(), h.MaxHealth(), h.Shield(), h.MaxShield(), h.Lives())
	dst.DrawTextColored(0, 0, left, core.ColorBrightGreen)

	// The active weapon shows parenthesized while cooling down
	wpn := g.gun.Active().Name()
	if !g.gun.Ready() {
		wpn = "(" + wpn + ")"
	}

	right := fmt.Sprintf(" Lv%d %3.0f/%-3.0f  Wave %d  %s  Score %d ",
		p.Level(), p.XP(), p.XPForNextLevel(), g.spawner.Wave(),
		wpn, g.score)
	dst.DrawTextColored(dst.Width()-len(right), 0, right, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
