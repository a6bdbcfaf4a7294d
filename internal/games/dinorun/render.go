package dinorun

import (
	"fmt"

	"github.com/vovakirdan/dino-run/internal/core"
)

// Tile size in terminal characters.
const (
	TileW = 4
	TileH = 2
)

// Board size in characters including the border.
const (
	BoardW = Cols*TileW + 2
	BoardH = Rows*TileH + 2
)

// sprite is a TileW x TileH glyph block. Spaces are transparent.
type sprite [TileH]string

var (
	playerRight = sprite{" ◆█ ", " ╱╲ "}
	playerLeft  = sprite{" █◆ ", " ╱╲ "}
	explosion   = sprite{"\\**/", "/**\\"}
	coinSprite  = sprite{" /\\ ", " \\/ "}
	shotRight   = sprite{"-==>", "    "}
	shotLeft    = sprite{"<==-", "    "}
	cloud       = sprite{" .-.", "(__)"}
	dirt        = sprite{"▒░▒░", "░▒░▒"}
)

// Render draws the current game state to the screen.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()
	snap := c.Snapshot()

	// Header bar
	dst.DrawTextColored(2, 0, c.Title(), core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	boardX := (dst.Width() - BoardW) / 2
	boardY := (dst.Height() - BoardH) / 2
	if boardX < 0 {
		boardX = 0
	}
	if boardY < 3 {
		boardY = 3
	}

	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(boardX, boardY-1, scoreText)

	dst.DrawBox(core.NewRect(boardX, boardY, BoardW, BoardH))
	DrawGrid(dst, View(snap), boardX+1, boardY+1)

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// DrawGrid paints a grid with its top-left tile at (ox, oy).
func DrawGrid(dst *core.Screen, g Grid, ox, oy int) {
	for row := range g {
		for col, t := range g[row] {
			drawTile(dst, t, col, ox+col*TileW, oy+row*TileH)
		}
	}
}

func drawTile(dst *core.Screen, t Tile, col, x, y int) {
	bg := TerrainColor(t.Terrain)
	dst.FillRect(core.NewRect(x, y, TileW, TileH), core.Cell{Rune: ' ', Bg: bg})

	switch t.Terrain {
	case TerrainSky:
		// Every third tile carries a cloud so the sky row reads as sky.
		if col%3 == 0 {
			drawSprite(dst, cloud, x, y, core.ColorBrightWhite)
		}
	case TerrainDirt:
		drawSprite(dst, dirt, x, y, core.ColorOrange)
	}

	switch t.Top() {
	case SpritePlayer:
		s := playerRight
		if t.Facing == Left {
			s = playerLeft
		}
		drawSprite(dst, s, x, y, core.ColorGreen)
	case SpriteExplosion:
		drawSprite(dst, explosion, x, y, core.ColorBrightRed)
	case SpriteCoin:
		drawSprite(dst, coinSprite, x, y, core.ColorBrightYellow)
	case SpriteProjectile:
		s := shotRight
		if t.ProjectileDir == Left {
			s = shotLeft
		}
		drawSprite(dst, s, x, y, core.ColorRed)
	}
}

func drawSprite(dst *core.Screen, s sprite, x, y int, fg core.Color) {
	for dy, line := range s {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				cell := dst.GetCell(x+dx, y+dy)
				cell.Rune = r
				cell.Fg = fg
				dst.SetCell(x+dx, y+dy, cell)
			}
			dx++
		}
	}
}

// TerrainColor returns the background color of a terrain.
func TerrainColor(t Terrain) core.Color {
	if t == TerrainDirt {
		return core.ColorDirt
	}
	return core.ColorSky
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
