package tui

import (
	"context"
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"gridsketch/internal/draw"
	"gridsketch/internal/geom"
	"gridsketch/internal/grid"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout returns the map origin and size in cells; it must match View.
func (m Model) layout() (originX, originY, mapW, mapH int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	mapW = max(10, contentWidth-sw-1)
	return sw, headerHeight, mapW, contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, mw, mh := m.layout()
		m.canvas.Resize(mw*2, mh*4)
		m.l.SetSize(sidebarWidth-2, mh-2)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.wktMode {
			switch msg.String() {
			case "esc", "w":
				m.wktMode = false
				m.ta.Blur()
				m.status = "draw mode"
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "p":
			m.useTool(toolPolygon)
		case "c":
			m.useTool(toolCircle)
		case "esc":
			if m.showAttrs {
				m.showAttrs = false
				return m, nil
			}
			m.session.CancelActive()
			m.status = "cancelled " + m.tool.String()
		case "g":
			m.canvas.SetGrid(!m.canvas.Grid())
			m.status = fmt.Sprintf("grid: %v", m.canvas.Grid())
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshList()
			}
			_, _, mw, mh := m.layout()
			m.canvas.Resize(mw*2, mh*4)
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "w":
			m.wktMode = true
			m.ta.SetValue(m.wktText())
			m.status = "wkt: " + plural(len(m.book.shapes), "shape")
			return m, m.ta.Focus()
		case "x":
			if err := geom.WriteGeoJSON(m.cfg.ExportPath, m.book.shapes); err != nil {
				m.status = "export error: " + err.Error()
			} else {
				m.status = fmt.Sprintf("exported %s to %s", plural(len(m.book.shapes), "shape"), m.cfg.ExportPath)
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(shapeItem); ok {
					m.book.selectShape(it.shape.ID)
					m.status = "selected " + it.Title()
				}
			}
		}
	case tea.MouseMsg:
		if !m.showAttrs && !m.wktMode {
			m.handleMouse(msg)
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) useTool(t tool) {
	if t == m.tool {
		return
	}
	switch t {
	case toolPolygon:
		m.session.SetActiveHandler(m.polygon)
	case toolCircle:
		m.session.SetActiveHandler(m.circle)
	}
	m.tool = t
	m.status = "tool: " + t.String()
}

// handleMouse maps a terminal cell to canvas micro pixels and feeds the canvas.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	ox, oy, mw, mh := m.layout()
	cx, cy := msg.X-ox, msg.Y-oy
	if cx < 0 || cy < 0 || cx >= mw || cy >= mh {
		m.hovering = false
		return
	}
	ev := draw.PointerEvent{OffsetX: float64(cx * 2), OffsetY: float64(cy * 4)}
	m.hovering = true
	m.pointer = grid.Snap(ev.Point(), m.cfg.Subdivision)

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.canvas.Move(ev)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		before := len(m.book.shapes)
		m.canvas.Click(ev)
		m.afterClick(before)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight:
		if m.canvas.Select(ev) {
			if s, ok := m.book.find(m.book.selected); ok {
				m.status = "selected " + string(s.Type) + " " + shortID(s.ID)
			}
		} else {
			m.book.selected = ""
			m.status = "nothing selected"
		}
	}
}

func (m *Model) afterClick(before int) {
	if len(m.book.shapes) > before {
		s := m.book.shapes[len(m.book.shapes)-1]
		if err := m.book.lastErr; err != nil {
			m.status = "save error: " + err.Error()
		} else {
			m.status = "saved " + string(s.Type) + " " + shortID(s.ID)
			if m.book.store != nil {
				if n, err := m.book.store.Count(context.Background()); err == nil {
					m.status += fmt.Sprintf(" (%s stored)", plural(n, "shape"))
				}
			}
		}
		m.refreshList()
		if m.showAttrs {
			m.refreshAttrs()
		}
		return
	}
	switch m.tool {
	case toolPolygon:
		m.status = fmt.Sprintf("polygon: %d vertices", len(m.polygon.Vertices()))
	case toolCircle:
		if c, ok := m.circle.Center(); ok {
			m.status = "circle: center " + c.String()
		}
	}
}
