package tui

import (
	"strings"

	"gridsketch/internal/grid"
)

func fmtCoord(v float64) string { return grid.FormatCoord(v) }

// renderCanvas draws the canvas and marks the snapped pointer cell.
func (m Model) renderCanvas(w, h int) string {
	lines := m.canvas.Render(w, h)
	if m.hovering {
		cx := int(m.pointer.X) / 2
		cy := int(m.pointer.Y) / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				// rebuild the row with the styled cursor at cx
				lines[cy] = string(r[:cx]) + cursorStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}
