// Package snapshot exports game frames as text and PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/games/dinorun"
)

// Image layout in pixels.
const (
	BlockSize    = 32
	HeaderHeight = 20
)

// Render draws the grid with a score header.
func Render(g dinorun.Grid, score int) image.Image {
	width := dinorun.Cols * BlockSize
	height := HeaderHeight + dinorun.Rows*BlockSize

	dc := gg.NewContext(width, height)
	dc.SetColor(hexColor(core.ColorBlack.Hex()))
	dc.Clear()

	dc.SetColor(hexColor(core.ColorBrightWhite.Hex()))
	dc.DrawStringAnchored(fmt.Sprintf("Dino Run  Score: %d", score), 4, HeaderHeight/2, 0, 0.5)

	for row := range g {
		for col, t := range g[row] {
			x := float64(col * BlockSize)
			y := float64(HeaderHeight + row*BlockSize)
			drawTile(dc, t, col, x, y)
		}
	}

	renderGrid(dc, width, height)
	return dc.Image()
}

func drawTile(dc *gg.Context, t dinorun.Tile, col int, x, y float64) {
	const b = float64(BlockSize)

	dc.SetColor(hexColor(dinorun.TerrainColor(t.Terrain).Hex()))
	dc.DrawRectangle(x, y, b, b)
	dc.Fill()

	switch t.Terrain {
	case dinorun.TerrainSky:
		if col%3 == 0 {
			dc.SetColor(hexColor(core.ColorBrightWhite.Hex()))
			dc.DrawEllipse(x+b*0.5, y+b*0.35, b*0.3, b*0.12)
			dc.Fill()
		}
	case dinorun.TerrainDirt:
		dc.SetColor(hexColor(core.ColorOrange.Hex()))
		for i := 1; i < 4; i++ {
			dc.DrawRectangle(x+float64(i)*b/4-2, y+float64(i%2)*b/2+b/4, 4, 3)
		}
		dc.Fill()
	}

	switch t.Top() {
	case dinorun.SpritePlayer:
		dc.SetColor(hexColor(core.ColorGreen.Hex()))
		dc.DrawRectangle(x+b*0.3, y+b*0.3, b*0.4, b*0.5)
		headX := x + b*0.6
		if t.Facing == dinorun.Left {
			headX = x + b*0.2
		}
		dc.DrawRectangle(headX, y+b*0.15, b*0.2, b*0.2)
		dc.Fill()
	case dinorun.SpriteExplosion:
		dc.SetColor(hexColor(core.ColorBrightRed.Hex()))
		dc.DrawRegularPolygon(8, x+b/2, y+b/2, b*0.45, 0)
		dc.Fill()
		dc.SetColor(hexColor(core.ColorBrightYellow.Hex()))
		dc.DrawCircle(x+b/2, y+b/2, b*0.18)
		dc.Fill()
	case dinorun.SpriteCoin:
		dc.SetColor(hexColor(core.ColorBrightYellow.Hex()))
		dc.DrawRegularPolygon(4, x+b/2, y+b/2, b*0.35, 0)
		dc.Fill()
	case dinorun.SpriteProjectile:
		dc.SetColor(hexColor(core.ColorRed.Hex()))
		tip, tail := x+b*0.9, x+b*0.1
		if t.ProjectileDir == dinorun.Left {
			tip, tail = tail, tip
		}
		dc.MoveTo(tail, y+b*0.4)
		dc.LineTo(tip, y+b*0.5)
		dc.LineTo(tail, y+b*0.6)
		dc.ClosePath()
		dc.Fill()
	}
}

func renderGrid(dc *gg.Context, width, height int) {
	dc.SetRGBA(0, 0, 0, 0.15)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += BlockSize {
		dc.DrawLine(float64(x), HeaderHeight, float64(x), float64(height))
		dc.Stroke()
	}
	for y := HeaderHeight; y <= height; y += BlockSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

// hexColor parses "#RRGGBB". Anything else yields black.
func hexColor(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// SavePNG renders the grid and writes it to path.
func SavePNG(path string, g dinorun.Grid, score int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir: %w", err)
	}
	if err := gg.SavePNG(path, Render(g, score)); err != nil {
		return fmt.Errorf("snapshot: save png: %w", err)
	}
	return nil
}

// SaveText writes the screen as plain text.
func SaveText(path string, s *core.Screen) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(s.String()), 0o644); err != nil {
		return fmt.Errorf("snapshot: save text: %w", err)
	}
	return nil
}

// DefaultDir returns ~/.dinorun/screenshots.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("snapshot: home dir: %w", err)
	}
	return filepath.Join(home, ".dinorun", "screenshots"), nil
}

// Save writes a text and a PNG capture into dir, named after the time.
// It returns the path of the PNG.
func Save(dir string, at time.Time, s *core.Screen, g dinorun.Grid, score int) (string, error) {
	base := filepath.Join(dir, at.Format("20060102-150405.000"))

	if err := SaveText(base+".txt", s); err != nil {
		return "", err
	}
	pngPath := base + ".png"
	if err := SavePNG(pngPath, g, score); err != nil {
		return "", err
	}
	return pngPath, nil
}
