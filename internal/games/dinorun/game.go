// Package dinorun implements Dino Run: the player dodges projectiles and
// collects coins on a 3x16 grid until a projectile hits.
//
// The Controller owns all game state. Keyboard input is applied immediately
// through HandleMove, while Tick advances projectiles and spawns entities on a
// fixed period. Collision and pickup checks use the player position as it
// stood when the tick started. The platform must call every method from a
// single goroutine; the Controller does no locking.
package dinorun

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/core"
)

// ID is the identifier used for score storage.
const ID = "dinorun"

// Notifier receives every movement code handled by the controller.
// Implementations must not block.
type Notifier interface {
	Notify(code core.MoveCode)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(code core.MoveCode)

// Notify calls f(code).
func (f NotifierFunc) Notify(code core.MoveCode) {
	f(code)
}

type nopNotifier struct{}

func (nopNotifier) Notify(core.MoveCode) {}

// Controller holds the state of one game session.
type Controller struct {
	cfg      config.DinoRunConfig
	runtime  core.RuntimeConfig
	rng      Random
	fixedRNG bool // rng was injected and survives Reset
	notifier Notifier

	player      core.Point
	jumping     bool
	facing      Direction
	projectiles []Projectile
	coins       []Coin
	score       int
	gameOver    bool
	explosion   *core.Point
	nextID      uint64
	tickCount   int
}

// Option customizes a Controller.
type Option func(*Controller)

// WithConfig sets the game tunables.
func WithConfig(cfg config.DinoRunConfig) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithNotifier sets where movement codes are forwarded.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithRandom replaces the seeded RNG, mainly for tests.
func WithRandom(r Random) Option {
	return func(c *Controller) {
		c.rng = r
		c.fixedRNG = true
	}
}

// New creates a controller with default tuning and no notifier.
// The RNG is seeded with zero until Reset supplies a runtime seed.
func New(opts ...Option) *Controller {
	c := &Controller{
		cfg:      config.DefaultDinoRunConfig(),
		runtime:  core.DefaultConfig(),
		notifier: nopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(c.runtime.Seed))
	}
	c.resetBoard()
	return c
}

// ID returns the unique identifier for this game.
func (c *Controller) ID() string {
	return ID
}

// Title returns the display name for this game.
func (c *Controller) Title() string {
	return "Dino Run"
}

// Reset starts a fresh session: the board is cleared, the game-over flag is
// lowered and the RNG is reseeded from the runtime config.
func (c *Controller) Reset(runtime core.RuntimeConfig) {
	c.runtime = runtime
	if !c.fixedRNG {
		c.rng = rand.New(rand.NewSource(runtime.Seed))
	}
	c.resetBoard()
	c.gameOver = false
	c.explosion = nil
	c.jumping = false
	c.facing = Right
	c.tickCount = 0
}

// Config returns the current tunables.
func (c *Controller) Config() config.DinoRunConfig {
	return c.cfg
}

// SetConfig swaps the tunables of a running game. Spawn chances apply from
// the next tick; a changed start column only applies on the next restart.
func (c *Controller) SetConfig(cfg config.DinoRunConfig) {
	c.cfg = cfg
}

// resetBoard restores score, player position and clears all entities.
func (c *Controller) resetBoard() {
	c.score = 0
	c.player = core.Pt(c.cfg.Player.StartX, GroundRow)
	c.projectiles = nil
	c.coins = nil
}

// Move shifts the player one column. It is ignored while jumping, after game
// over, or when the target column is off the grid. Facing only changes on a
// successful move. Returns whether the player moved.
func (c *Controller) Move(dir Direction) bool {
	if c.jumping || c.gameOver {
		return false
	}

	target := c.player.Add(dir.dx(), 0)
	if !target.In(bounds) {
		return false
	}

	c.player = target
	c.facing = dir
	return true
}

// Jump lifts the player to the apex row. The platform must call Land once the
// jump duration has elapsed. Requests during a jump or after game over are
// rejected, not queued. Returns whether a jump started.
func (c *Controller) Jump() bool {
	if c.jumping || c.gameOver {
		return false
	}

	c.jumping = true
	c.player.Y = ApexRow
	return true
}

// Land ends a jump. It always applies, even after a restart or game over,
// because the jump timer cannot be cancelled.
func (c *Controller) Land() {
	c.player.Y = GroundRow
	c.jumping = false
}

// JumpDuration is how long the platform waits before calling Land.
func (c *Controller) JumpDuration() time.Duration {
	return c.cfg.Timing.JumpDuration()
}

// TickInterval is the period at which the platform calls Tick.
func (c *Controller) TickInterval() time.Duration {
	return c.cfg.Timing.TickInterval()
}

// HandleMove dispatches a movement code and then forwards it to the notifier,
// whether or not the local action was accepted. Returns whether the local
// action was accepted.
func (c *Controller) HandleMove(code core.MoveCode) bool {
	var accepted bool
	switch code {
	case core.MoveJump:
		accepted = c.Jump()
	case core.MoveLeft:
		accepted = c.Move(Left)
	case core.MoveRight:
		accepted = c.Move(Right)
	}

	c.notifier.Notify(code)
	return accepted
}

// Tick advances the game by one period. It is a no-op after game over.
//
// Ordering within a tick:
//  1. projectiles move one cell and those leaving the grid are dropped
//  2. a projectile may spawn
//  3. a coin may spawn
//  4. the projectiles present at tick start are checked against the player;
//     a hit ends the game, records the explosion and clears all projectiles
//  5. the coins (including one spawned in step 3) are checked against the
//     player; the first match scores one point and only that coin is removed
func (c *Controller) Tick() core.StepResult {
	if c.gameOver {
		return core.StepResult{State: c.State()}
	}

	c.tickCount++
	player := c.player
	atStart := c.projectiles

	c.advanceProjectiles()
	c.maybeSpawnProjectile()
	c.maybeSpawnCoin()

	var result core.StepResult
	for _, p := range atStart {
		if p.Pos == player {
			c.gameOver = true
			boom := player
			c.explosion = &boom
			c.projectiles = nil
			result.Collided = true
			break
		}
	}

	for i, coin := range c.coins {
		if coin.Pos == player {
			c.score++
			c.coins = removeCoin(c.coins, i)
			result.PickedUp = true
			break
		}
	}

	result.State = c.State()
	return result
}

// advanceProjectiles moves every projectile into a fresh slice so the
// tick-start snapshot stays intact.
func (c *Controller) advanceProjectiles() {
	moved := make([]Projectile, 0, len(c.projectiles)+1)
	for _, p := range c.projectiles {
		p.Pos = p.Pos.Add(p.Dir.dx(), 0)
		if p.Pos.X >= 0 && p.Pos.X < Cols {
			moved = append(moved, p)
		}
	}
	c.projectiles = moved
}

func removeCoin(coins []Coin, i int) []Coin {
	out := make([]Coin, 0, len(coins)-1)
	out = append(out, coins[:i]...)
	return append(out, coins[i+1:]...)
}

// Restart is the in-game restart control. It resets score, position,
// projectiles and coins. Unless gameplay.restart_resumes is set, it also
// raises the game-over flag, so the round stays stopped after a restart.
// Returns whether play resumed.
func (c *Controller) Restart() bool {
	c.resetBoard()
	if c.cfg.Gameplay.RestartResumes {
		c.gameOver = false
		c.explosion = nil
		c.tickCount = 0
		return true
	}
	c.gameOver = true
	return false
}

// State returns the current game state.
func (c *Controller) State() core.GameState {
	return core.GameState{
		Score:    c.score,
		GameOver: c.gameOver,
	}
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	Player      core.Point
	Jumping     bool
	Facing      Direction
	Projectiles []Projectile
	Coins       []Coin
	Score       int
	GameOver    bool
	Explosion   *core.Point
	Ticks       int
}

// Snapshot copies the current state so callers cannot mutate the controller.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Player:      c.player,
		Jumping:     c.jumping,
		Facing:      c.facing,
		Projectiles: append([]Projectile(nil), c.projectiles...),
		Coins:       append([]Coin(nil), c.coins...),
		Score:       c.score,
		GameOver:    c.gameOver,
		Ticks:       c.tickCount,
	}
	if c.explosion != nil {
		boom := *c.explosion
		s.Explosion = &boom
	}
	return s
}
