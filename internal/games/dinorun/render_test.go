package dinorun

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-run/internal/core"
)

func TestViewTerrain(t *testing.T) {
	g := View(Snapshot{Player: core.Pt(-1, -1)})

	want := []Terrain{TerrainSky, TerrainLane, TerrainDirt}
	for y, terrain := range want {
		for x := 0; x < Cols; x++ {
			if g[y][x].Terrain != terrain {
				t.Fatalf("tile (%d, %d) terrain = %d, expected %d", x, y, g[y][x].Terrain, terrain)
			}
		}
	}
}

func TestViewZOrder(t *testing.T) {
	at := core.Pt(5, GroundRow)
	boom := at

	tests := []struct {
		name string
		snap Snapshot
		want Sprite
	}{
		{
			name: "player alone",
			snap: Snapshot{Player: at},
			want: SpritePlayer,
		},
		{
			name: "coin over player",
			snap: Snapshot{Player: at, Coins: []Coin{{Pos: at}}},
			want: SpriteCoin,
		},
		{
			name: "projectile over coin",
			snap: Snapshot{
				Player:      at,
				Coins:       []Coin{{Pos: at}},
				Projectiles: []Projectile{{Pos: at, Dir: Left}},
			},
			want: SpriteProjectile,
		},
		{
			name: "explosion replaces player",
			snap: Snapshot{Player: at, Explosion: &boom},
			want: SpriteExplosion,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := View(tc.snap)
			if got := g[at.Y][at.X].Top(); got != tc.want {
				t.Errorf("Top() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestViewExplosionHidesPlayer(t *testing.T) {
	boom := core.Pt(8, GroundRow)
	g := View(Snapshot{Player: boom, Explosion: &boom})

	tile := g[boom.Y][boom.X]
	if tile.Player {
		t.Error("player should not be drawn under the explosion")
	}
	if !tile.Explosion {
		t.Error("explosion should be drawn")
	}
}

func TestViewHidesDirtRowEntities(t *testing.T) {
	g := View(Snapshot{
		Player:      core.Pt(0, GroundRow),
		Coins:       []Coin{{Pos: core.Pt(3, DirtRow)}},
		Projectiles: []Projectile{{Pos: core.Pt(4, DirtRow), Dir: Right}},
	})

	for x := 0; x < Cols; x++ {
		if top := g[DirtRow][x].Top(); top != SpriteNone {
			t.Errorf("dirt tile %d shows sprite %d", x, top)
		}
	}
}

func TestViewCarriesFacingAndJump(t *testing.T) {
	g := View(Snapshot{Player: core.Pt(2, ApexRow), Facing: Left, Jumping: true})

	tile := g[ApexRow][2]
	if !tile.Player || tile.Facing != Left || !tile.Jumping {
		t.Errorf("tile = %+v, expected jumping player facing left", tile)
	}
}

func TestViewIsPure(t *testing.T) {
	c := newQuiet()
	c.coins = []Coin{{ID: 1, Pos: core.Pt(3, GroundRow)}}
	s := c.Snapshot()

	if View(s) != View(s) {
		t.Error("View should return the same grid for the same snapshot")
	}
	if len(c.coins) != 1 {
		t.Error("View should not touch the controller")
	}
}

func TestRenderShowsScoreAndBoard(t *testing.T) {
	c := newQuiet()
	c.score = 7

	screen := core.NewScreen(80, 24)
	c.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Dino Run") {
		t.Error("header should contain the title")
	}
	if !strings.Contains(out, "Score: 7") {
		t.Error("score line missing")
	}
	if !strings.Contains(out, "◆") {
		t.Error("player sprite missing")
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("game over box shown during play")
	}
}

func TestRenderGameOver(t *testing.T) {
	c := newQuiet()
	c.projectiles = []Projectile{{ID: 1, Pos: core.Pt(8, GroundRow), Dir: Right}}
	c.Tick()

	screen := core.NewScreen(80, 24)
	c.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over box missing")
	}
	if !strings.Contains(out, "Press R to restart") {
		t.Error("restart hint missing")
	}
}

func TestDrawGridColorsTerrain(t *testing.T) {
	screen := core.NewScreen(BoardW, BoardH)
	DrawGrid(screen, View(Snapshot{Player: core.Pt(-1, -1)}), 0, 0)

	if bg := screen.GetCell(1, 0).Bg; bg != core.ColorSky {
		t.Errorf("sky background = %v, expected sky", bg)
	}
	if bg := screen.GetCell(1, DirtRow*TileH).Bg; bg != core.ColorDirt {
		t.Errorf("dirt background = %v, expected dirt", bg)
	}
}
