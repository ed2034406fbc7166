package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"

	"gridsketch/internal/draw"
	"gridsketch/internal/geom"
	"gridsketch/internal/grid"
)

type shapeItem struct {
	shape draw.Shape
}

func (s shapeItem) Title() string       { return string(s.shape.Type) + " " + shortID(s.shape.ID) }
func (s shapeItem) Description() string { return describe(s.shape) }
func (s shapeItem) FilterValue() string { return s.Title() }

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func describe(s draw.Shape) string {
	switch s.Type {
	case draw.ShapePolygon:
		pts, err := draw.PolygonVertices(s)
		if err != nil {
			return "invalid"
		}
		bb, err := geom.ShapeBounds(s)
		if err != nil {
			return "invalid"
		}
		return fmt.Sprintf("%d vertices, %sx%s", len(pts),
			grid.FormatCoord(bb.Width()), grid.FormatCoord(bb.Height()))
	case draw.ShapeCircle:
		c, r, err := draw.CircleGeometry(s)
		if err != nil {
			return "invalid"
		}
		return fmt.Sprintf("c=%s r=%.2f", c, r)
	}
	return ""
}

func (m *Model) refreshList() {
	items := make([]list.Item, 0, len(m.book.shapes))
	for _, s := range m.book.shapes {
		items = append(items, shapeItem{shape: s})
	}
	m.l.SetItems(items)
}

// refreshAttrs rebuilds the table rows from the finalized shapes.
func (m *Model) refreshAttrs() {
	if len(m.book.shapes) == 0 {
		m.showAttrs = false
		m.status = "no shapes to tabulate"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 10},
		{Title: "type", Width: 8},
		{Title: "bbox", Width: 22},
		{Title: "style", Width: 24},
	}
	rows := make([]table.Row, 0, len(m.book.shapes))
	for i, s := range m.book.shapes {
		bbox := "invalid"
		if bb, err := geom.ShapeBounds(s); err == nil {
			bbox = fmt.Sprintf("[%s,%s %s,%s]",
				grid.FormatCoord(bb.MinX), grid.FormatCoord(bb.MinY),
				grid.FormatCoord(bb.MaxX), grid.FormatCoord(bb.MaxY))
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			shortID(s.ID),
			string(s.Type),
			bbox,
			styleSummary(s.Attributes),
		})
	}
	// clear rows before swapping columns so widths never mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func styleSummary(a draw.Attributes) string {
	var parts []string
	for _, k := range []string{"fill", "stroke"} {
		if v, ok := a[k]; ok {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, " ")
}

// wktText lists every shape as WKT, one per line.
func (m Model) wktText() string {
	lines := make([]string, 0, len(m.book.shapes))
	for _, s := range m.book.shapes {
		w, err := geom.ShapeWKT(s)
		if err != nil {
			w = "-- " + err.Error()
		}
		lines = append(lines, w)
	}
	return strings.Join(lines, "\n")
}
