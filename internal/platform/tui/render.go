package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorHead:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorFood:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorRain:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorMuted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorWarm:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorHot:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
