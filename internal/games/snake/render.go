package snake

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/mapgen"
)

// hudWidth is the width of the text column left of the map.
const hudWidth = 22

// MinSize returns the smallest screen the layout fits in.
func (a *App) MinSize() (w, h int) {
	return hudWidth + 1 + a.cfg.Grid.Width, a.cfg.Grid.Height
}

// mapOrigin returns the screen position of grid cell (0, 0).
func (a *App) mapOrigin() (x, y int) {
	free := a.screenW - hudWidth - 1 - a.cfg.Grid.Width
	return hudWidth + 1 + max(free, 0)/2, max(a.screenH-a.cfg.Grid.Height, 0) / 2
}

// Render draws the active screen over the rain. dst must have been sized
// with the last Resize.
func (a *App) Render(dst *core.Screen) {
	dst.Clear()
	a.rain.Render(dst)

	if a.tooSmall {
		w, h := a.MinSize()
		renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to at least %dx%d", w, h))
		return
	}

	switch a.screen {
	case ScreenLobby:
		a.renderLobby(dst)
	case ScreenSettings:
		a.renderSettings(dst)
	case ScreenPlaying:
		a.renderPlaying(dst)
	case ScreenGameOver:
		a.renderPlaying(dst)
		renderOverlay(dst, "GAME OVER", "R: Restart  Enter: Lobby  Q: Quit")
	}
}

func (a *App) renderLobby(dst *core.Screen) {
	l := a.lobby
	dst.DrawText(1, 1, "MATRIX SNAKE", core.ColorHead)

	for i := range lobbyItemCount {
		label := i.String()
		switch i {
		case ItemDensity:
			label = fmt.Sprintf("%-13s%3.0f%%", label, l.Density()*100)
		case ItemSpeed:
			label = fmt.Sprintf("%-13s%3dms", label, l.Interval().Milliseconds())
		}
		if i == l.Selected() {
			dst.DrawText(1, 3+int(i), "> "+label, core.ColorSelected)
		} else {
			dst.DrawText(1, 3+int(i), "  "+label, core.ColorMuted)
		}
	}

	dst.DrawText(1, 9, "S: Settings", core.ColorMuted)
	dst.DrawText(1, 11, fmt.Sprintf("Best: %d", a.best), core.ColorBody)
	dst.DrawText(1, 12, "Seed:", core.ColorText)
	dst.DrawText(1, 13, fmt.Sprintf(" %d", l.Seed()), core.ColorText)

	hints := []string{"-/+  wall density", "[/]  speed", "R    reseed", "Q    quit"}
	for i, h := range hints {
		dst.DrawText(1, 15+i, h, core.ColorMuted)
	}

	ox, oy := a.mapOrigin()
	preview := l.Preview()
	blankGrid(dst, preview, ox, oy)
	drawWalls(dst, preview, ox, oy)

	head, _ := l.PreviewHead()
	dst.SetCell(ox+head.X, oy+head.Y, mapgen.GlyphFor(head), speedColor(l.SpeedFactor()))
}

// speedColor shifts the preview head from green to red as the snake
// gets faster.
func speedColor(factor float64) core.Color {
	switch {
	case factor < 1:
		return core.ColorBody
	case factor < 1.5:
		return core.ColorHead
	case factor < 2.5:
		return core.ColorWarm
	default:
		return core.ColorHot
	}
}

func (a *App) renderSettings(dst *core.Screen) {
	s := a.settings
	y := dst.Height() / 4
	dst.DrawTextCentered(y, "SETTINGS", core.ColorHead)

	pct := s.Percent()
	dst.DrawTextCentered(y+2, fmt.Sprintf("Volume: %3d%%", pct), core.ColorSelected)
	bar := strings.Repeat("#", pct/5) + strings.Repeat("-", 20-pct/5)
	dst.DrawTextCentered(y+3, "["+bar+"]", core.ColorBody)

	dst.DrawTextCentered(y+5, "Left/Right or -/+ : Adjust volume   M: Mute/Unmute", core.ColorMuted)
	dst.DrawTextCentered(y+6, "Enter/Esc: Back", core.ColorMuted)
}

func (a *App) renderPlaying(dst *core.Screen) {
	g := a.game
	ox, oy := a.mapOrigin()
	walls := g.Walls()

	blankGrid(dst, walls, ox, oy)
	drawWalls(dst, walls, ox, oy)

	for i, seg := range g.Snake() {
		color := core.ColorBody
		if i == 0 {
			color = core.ColorHead
		}
		dst.SetCell(ox+seg.X, oy+seg.Y, seg.Glyph, color)
	}
	if food, glyph, ok := g.Food(); ok {
		dst.SetCell(ox+food.X, oy+food.Y, glyph, core.ColorFood)
	}

	dst.DrawText(1, 1, "MATRIX SNAKE", core.ColorHead)
	dst.DrawText(1, 3, fmt.Sprintf("Score: %d", g.Score()), core.ColorBody)
	dst.DrawText(1, 4, fmt.Sprintf("Best:  %d", max(a.best, g.Score())), core.ColorBody)
	dst.DrawText(1, 6, fmt.Sprintf("Density: %.0f%%", a.run.Density*100), core.ColorText)
	dst.DrawText(1, 7, fmt.Sprintf("Speed:   %dms", g.Interval().Milliseconds()), core.ColorText)

	status := "Arrows/WASD to move"
	switch {
	case g.Dead():
		status = "Game Over"
	case g.Paused():
		status = "Paused - P to resume"
	}
	dst.DrawText(1, 9, status, core.ColorWall)
	dst.DrawText(1, 10, "P pause  Q quit", core.ColorMuted)
}

// blankGrid clears the map area so the rain does not show through.
func blankGrid(dst *core.Screen, walls *mapgen.WallSet, ox, oy int) {
	dst.FillRect(core.NewRect(ox, oy, walls.Width(), walls.Height()), ' ', core.ColorDefault)
}

func drawWalls(dst *core.Screen, walls *mapgen.WallSet, ox, oy int) {
	for y := range walls.Height() {
		for x := range walls.Width() {
			if walls.IsWall(x, y) {
				dst.SetCell(ox+x, oy+y, mapgen.GlyphFor(mapgen.Cell{X: x, Y: y}), core.ColorWall)
			}
		}
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorHead)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorHead)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorText)
}
