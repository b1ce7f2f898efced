package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-robots/internal/core"
	"github.com/vovakirdan/tui-robots/internal/robots"
)

// Board glyphs. Cells are two columns wide so the grid looks square.
const (
	glyphEmpty   = '.'
	glyphPlayer  = '@'
	glyphCaught  = 'X'
	glyphPursuer = '+'
	glyphDebris  = '*'

	hudLines   = 3
	energyBarW = 20
)

var cannonGlyphs = map[core.Point]rune{
	{X: 0, Y: -1}:  '↑',
	{X: 1, Y: -1}:  '↗',
	{X: 1, Y: 0}:   '→',
	{X: 1, Y: 1}:   '↘',
	{X: 0, Y: 1}:   '↓',
	{X: -1, Y: 1}:  '↙',
	{X: -1, Y: 0}:  '←',
	{X: -1, Y: -1}: '↖',
}

// HUD carries the front-end state shown under the board.
type HUD struct {
	Variant  string
	Seed     int64
	StepMode bool
	Muted    bool
}

// BoardSize returns the screen size needed to draw a w×h grid with its HUD.
func BoardSize(w, h int) (int, int) {
	return 2*w + 1, h + 2 + hudLines
}

// DrawBoard draws the snapshot, centered horizontally on dst.
func DrawBoard(dst *core.Screen, s robots.Snapshot, hud HUD) {
	boardW, _ := BoardSize(s.Width, s.Height)
	ox := core.Max(0, (dst.Width()-boardW)/2)

	dst.DrawBox(core.NewRect(ox, 0, boardW, s.Height+2), core.ColorGray)

	cell := func(p core.Point, r rune, c core.Color) {
		dst.SetColor(ox+1+2*p.X, 1+p.Y, r, c)
	}

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			cell(core.Pt(x, y), glyphEmpty, core.ColorGray)
		}
	}
	for _, p := range s.Obstacles {
		cell(p, glyphDebris, core.ColorOrange)
	}
	if s.Cannon != nil {
		cell(s.Cannon.Pos, cannonGlyphs[s.Cannon.Heading], core.ColorBrightCyan)
	}
	for _, p := range s.Pursuers {
		cell(p, glyphPursuer, core.ColorBrightRed)
	}
	if s.Over() {
		cell(s.Player, glyphCaught, core.ColorRed)
	} else {
		cell(s.Player, glyphPlayer, core.ColorBrightYellow)
	}

	switch {
	case s.Over():
		drawBanner(dst, ox, boardW, s.Height/2+1, " CAUGHT! enter: new game ", core.ColorBrightRed)
	case s.Clear():
		drawBanner(dst, ox, boardW, s.Height/2+1, " CLEAR! enter: next level ", core.ColorBrightGreen)
	}

	drawHUD(dst, ox, s.Height+2, s, hud)
}

func drawBanner(dst *core.Screen, ox, boardW, y int, text string, c core.Color) {
	x := ox + core.Max(0, (boardW-len([]rune(text)))/2)
	dst.DrawTextColor(x, y, text, c)
}

func drawHUD(dst *core.Screen, ox, y int, s robots.Snapshot, hud HUD) {
	stats := fmt.Sprintf("LEVEL %d  ROBOTS %d/%d  DESTROYED %d  TICK %d",
		s.Level, len(s.Pursuers), s.InitialCount, s.Destroyed, s.Tick)
	dst.DrawTextColor(ox, y, stats, core.ColorBrightWhite)

	if s.EnergyOn {
		dst.DrawTextColor(ox, y+1, energyBar(s.Energy, s.EnergyMax), core.ColorBrightBlue)
	} else {
		dst.DrawTextColor(ox, y+1, "TELEPORT free", core.ColorBrightBlue)
	}

	var flags []string
	if hud.Variant != "" {
		flags = append(flags, hud.Variant)
	}
	flags = append(flags, fmt.Sprintf("seed %d", hud.Seed))
	if s.Replaying {
		flags = append(flags, "[REPLAY]")
	}
	if hud.StepMode {
		flags = append(flags, "[STEP]")
	}
	if hud.Muted {
		flags = append(flags, "[MUTE]")
	}
	dst.DrawTextColor(ox, y+2, strings.Join(flags, "  "), core.ColorGray)
}

func energyBar(energy, max float64) string {
	filled := 0
	if max > 0 {
		filled = int(energy / max * energyBarW)
	}
	filled = core.Clamp(filled, 0, energyBarW)
	return fmt.Sprintf("ENERGY [%s%s] %.0f/%.0f",
		strings.Repeat("#", filled), strings.Repeat("-", energyBarW-filled), energy, max)
}
