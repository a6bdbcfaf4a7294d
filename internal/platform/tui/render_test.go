package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-run/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(1, 0, "Dino")
	s.DrawText(0, 1, "Run")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenKeepsColoredText(t *testing.T) {
	s := core.NewScreen(12, 1)
	s.FillRect(core.NewRect(0, 0, 12, 1), core.Cell{Rune: ' ', Bg: core.ColorSky})
	s.DrawTextColored(2, 0, "coin", core.ColorBrightYellow)

	out := RenderScreen(s)
	if !strings.Contains(out, "coin") {
		t.Errorf("colored text missing from %q", out)
	}
	if strings.Count(out, "\n") != 0 {
		t.Error("single row should not contain newlines")
	}
}

func TestTerminalColor(t *testing.T) {
	if _, ok := terminalColor(core.ColorDefault); ok {
		t.Error("default color should not be styled")
	}
	if c, ok := terminalColor(core.ColorSky); !ok || string(c) != core.ColorSky.Hex() {
		t.Errorf("sky = %q, expected its hex value", c)
	}
	if c, ok := terminalColor(core.ColorRed); !ok || c != "1" {
		t.Errorf("red = %q, expected ANSI 1", c)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText() = %q", got)
	}
}
