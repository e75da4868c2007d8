package snake

import (
	"fmt"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

const (
	hudHeight = 1
	cellCols  = 2 // Terminal columns per grid cell, keeps cells roughly square
)

// headGlyphs draws the head with its eyes on the leading side.
var headGlyphs = map[core.Direction][cellCols]rune{
	core.DirRight: {'█', '>'},
	core.DirLeft:  {'<', '█'},
	core.DirUp:    {'^', '^'},
	core.DirDown:  {'v', 'v'},
}

// BoardSize returns the screen size needed to draw the game.
func (g *Game) BoardSize() (w, h int) {
	return g.cfg.Grid.Width*cellCols + 2, g.cfg.Grid.Height + 2 + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := g.BoardSize()
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, resize to continue", w, h), core.ColorGray)
		return
	}

	ox := (dst.Width() - w) / 2
	oy := (dst.Height() - h) / 2

	g.renderHUD(dst, ox, oy, w)

	frame := core.NewRect(ox, oy+hudHeight, w, h-hudHeight)
	dst.DrawBox(frame, core.ColorNokiaDark)
	title := " " + g.Title() + " "
	dst.DrawText(frame.X+(frame.W-len(title))/2, frame.Bottom()-1, title, core.ColorNokia)

	// Grid origin inside the frame
	gx, gy := frame.X+1, frame.Y+1

	g.renderSnake(dst, gx, gy)

	if g.Bounds().ContainsPoint(g.fruit) {
		x := gx + g.fruit.X*cellCols
		y := gy + g.fruit.Y
		dst.SetColor(x, y, '(', core.ColorRed)
		dst.SetColor(x+1, y, ')', core.ColorRed)
	}

	g.renderParticles(dst, gx, gy)

	if g.gameOver {
		g.renderOverlay(dst, frame, "GAME OVER", "Show UP gesture to restart")
	}
}

// renderHUD draws the status line above the board.
func (g *Game) renderHUD(dst *core.Screen, ox, oy, w int) {
	hud := fmt.Sprintf(" Score: %d  Speed: %d  Dir: %s", g.score, g.tickRate, g.direction)
	dst.DrawText(ox, oy, hud, core.ColorNokiaLight)

	if g.tickRate > g.cfg.Speed.Base {
		label := "BOOST! "
		dst.DrawText(ox+w-len(label), oy, label, core.ColorBrightRed)
	}
}

// renderSnake draws the body, then the head on top.
func (g *Game) renderSnake(dst *core.Screen, gx, gy int) {
	for i, seg := range g.body.points() {
		x := gx + seg.X*cellCols
		y := gy + seg.Y
		if i == 0 {
			glyph := headGlyphs[g.direction]
			dst.SetColor(x, y, glyph[0], core.ColorNokiaLight)
			dst.SetColor(x+1, y, glyph[1], core.ColorNokiaLight)
			continue
		}
		dst.SetColor(x, y, '█', core.ColorNokia)
		dst.SetColor(x+1, y, '█', core.ColorNokia)
	}
}

// renderParticles maps pixel positions to terminal cells. Particles fade
// from '*' to '.' over the second half of their life.
func (g *Game) renderParticles(dst *core.Screen, gx, gy int) {
	cs := float64(g.cfg.Grid.CellSize)
	maxX := float64(g.cfg.Grid.Width) * cs
	maxY := float64(g.cfg.Grid.Height) * cs

	for _, p := range g.particles {
		if p.Pos.X < 0 || p.Pos.Y < 0 || p.Pos.X >= maxX || p.Pos.Y >= maxY {
			continue
		}
		col := int(p.Pos.X * cellCols / cs)
		row := int(p.Pos.Y / cs)

		ch, color := '*', core.ColorBrightYellow
		if p.Life*2 <= g.cfg.Particles.Life {
			ch, color = '.', core.ColorYellow
		}
		dst.SetColor(gx+col, gy+row, ch, color)
	}
}

// renderOverlay draws a centered message box inside r.
func (g *Game) renderOverlay(dst *core.Screen, r core.Rect, line1, line2 string) {
	line3 := fmt.Sprintf("Score: %d", g.score)

	boxW := max(len(line1), len(line2), len(line3)) + 4
	boxH := 5
	cx, cy := r.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorNokiaLight)

	dst.DrawText(box.X+(boxW-len(line1))/2, box.Y+1, line1, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(line3))/2, box.Y+2, line3, core.ColorNokiaLight)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2, core.ColorNokiaLight)
}
