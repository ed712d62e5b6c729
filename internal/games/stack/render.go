package stack

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack/sim"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.world == nil {
		g.drawCenteredMessage(dst, "TERMINAL TOO SMALL",
			fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	field := core.NewRect(g.fieldX, hudHeight, g.fieldW, g.fieldH)
	dst.DrawBox(core.NewRect(0, hudHeight-1, dst.Width(), g.fieldH+2))

	// Ground sits under the seed block while it is in view
	groundY := g.screenY(float64(g.fieldH - g.cfg.Block.BaseOffset))
	if groundY < field.Bottom() {
		for x := field.X; x < field.Right(); x++ {
			dst.SetColor(x, groundY, GroundChar, core.ColorGray)
		}
	}

	for i, e := range g.world.Entities() {
		color := core.PaletteColor(i)
		if sim.EntityID(i) == g.missed {
			color = core.ColorGray
		}
		g.drawBlock(dst, field, e, color)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  |  B menu", g.world.Placed()))
	}
}

// screenY converts a world level to a screen row.
func (g *Game) screenY(level float64) int {
	return hudHeight + int(math.Round(level-g.camera))
}

// drawBlock renders one entity clipped to the playfield.
func (g *Game) drawBlock(dst *core.Screen, field core.Rect, e sim.Entity, color core.Color) {
	r := core.RectF{
		X: float64(field.X) + e.Left(),
		Y: float64(g.screenY(e.Level())),
		W: e.Size.Width,
		H: e.Size.Height,
	}.Cells()

	clipped := clip(r, field)
	if clipped.W <= 0 || clipped.H <= 0 {
		return
	}
	dst.DrawRectColor(clipped, BlockChar, color)
}

// clip returns the intersection of r with bounds.
func clip(r, bounds core.Rect) core.Rect {
	left := core.Max(r.X, bounds.X)
	top := core.Max(r.Y, bounds.Y)
	right := core.Min(r.Right(), bounds.Right())
	bottom := core.Min(r.Bottom(), bounds.Bottom())
	return core.NewRect(left, top, right-left, bottom-top)
}

// drawHUD renders the score line.
func (g *Game) drawHUD(dst *core.Screen) {
	speed := 0.0
	if active, ok := g.world.Active(); ok {
		speed = active.Speed
	}
	state := g.State()
	hud := fmt.Sprintf(" Score: %d  Height: %d  Speed: %.1f ", state.Score, state.Height, speed)
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)

	help := "Space: drop  P: pause  Q: quit "
	if x := dst.Width() - len(help); x > len(hud)+1 {
		dst.DrawTextColor(x, 0, help, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
