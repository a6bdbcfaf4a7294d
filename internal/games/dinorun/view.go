package dinorun

// Terrain is the background of a grid row.
type Terrain int

const (
	TerrainSky  Terrain = iota // row 0, clouds
	TerrainLane                // row 1, open air over the ground
	TerrainDirt                // row 2
)

// terrainFor returns the background for a row.
func terrainFor(row int) Terrain {
	switch row {
	case ApexRow:
		return TerrainSky
	case GroundRow:
		return TerrainLane
	default:
		return TerrainDirt
	}
}

// Sprite is the topmost thing drawn in a tile.
type Sprite int

const (
	SpriteNone Sprite = iota
	SpritePlayer
	SpriteExplosion
	SpriteCoin
	SpriteProjectile
)

// Tile describes everything visible in one grid cell.
type Tile struct {
	Terrain       Terrain
	Player        bool // false when an explosion occupies the same cell
	Facing        Direction
	Jumping       bool
	Explosion     bool
	Coin          bool
	Projectile    bool
	ProjectileDir Direction
}

// Top returns the sprite that is drawn last.
// Layering: player < explosion < coin < projectile.
func (t Tile) Top() Sprite {
	switch {
	case t.Projectile:
		return SpriteProjectile
	case t.Coin:
		return SpriteCoin
	case t.Explosion:
		return SpriteExplosion
	case t.Player:
		return SpritePlayer
	default:
		return SpriteNone
	}
}

// Grid is the rendered view of the board, indexed [row][col].
type Grid [Rows][Cols]Tile

// View builds the grid for a snapshot. It depends on nothing but s.
// Coins and projectiles in the dirt row stay hidden.
func View(s Snapshot) Grid {
	var g Grid
	for y := range g {
		for x := range g[y] {
			g[y][x].Terrain = terrainFor(y)
		}
	}

	if s.Explosion != nil && s.Explosion.In(bounds) {
		g[s.Explosion.Y][s.Explosion.X].Explosion = true
	}

	if s.Player.In(bounds) {
		t := &g[s.Player.Y][s.Player.X]
		if !t.Explosion {
			t.Player = true
			t.Facing = s.Facing
			t.Jumping = s.Jumping
		}
	}

	for _, p := range s.Projectiles {
		if p.Pos.Y == DirtRow || !p.Pos.In(bounds) {
			continue
		}
		t := &g[p.Pos.Y][p.Pos.X]
		t.Projectile = true
		t.ProjectileDir = p.Dir
	}

	for _, c := range s.Coins {
		if c.Pos.Y == DirtRow || !c.Pos.In(bounds) {
			continue
		}
		g[c.Pos.Y][c.Pos.X].Coin = true
	}

	return g
}
