package dinorun

import "github.com/vovakirdan/dino-run/internal/core"

// Random is the source of randomness used for spawning.
// *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// coinFlip returns true with probability one half.
func coinFlip(rng Random) bool {
	return rng.Float64() < 0.5
}

// randomLaneRow picks row 1 or 2 uniformly.
func randomLaneRow(rng Random) int {
	if coinFlip(rng) {
		return GroundRow
	}
	return DirtRow
}

// maybeSpawnProjectile adds a projectile with the configured probability.
// Edge, row and heading are drawn independently, so a projectile may spawn
// pointing off the grid and vanish on the next tick.
func (c *Controller) maybeSpawnProjectile() {
	if c.rng.Float64() >= c.cfg.Spawn.ProjectileChance {
		return
	}

	x := Cols - 1
	if coinFlip(c.rng) {
		x = 0
	}
	y := randomLaneRow(c.rng)
	dir := Left
	if coinFlip(c.rng) {
		dir = Right
	}

	c.projectiles = append(c.projectiles, Projectile{
		ID:  c.newID(),
		Pos: core.Pt(x, y),
		Dir: dir,
	})
}

// maybeSpawnCoin adds a coin at a random column with the configured probability.
func (c *Controller) maybeSpawnCoin() {
	if c.rng.Float64() >= c.cfg.Spawn.CoinChance {
		return
	}

	x := c.rng.Intn(Cols)
	y := randomLaneRow(c.rng)

	c.coins = append(c.coins, Coin{
		ID:  c.newID(),
		Pos: core.Pt(x, y),
	})
}

func (c *Controller) newID() uint64 {
	c.nextID++
	return c.nextID
}
