package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsketch/internal/config"
	"gridsketch/internal/draw"
)

type memStore struct {
	saved   []draw.Shape
	saveErr error
	listErr error
}

func (s *memStore) Save(_ context.Context, sh draw.Shape) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, sh)
	return nil
}

func (s *memStore) Count(context.Context) (int, error) { return len(s.saved), nil }

func (s *memStore) List(context.Context) ([]draw.Shape, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]draw.Shape(nil), s.saved...), nil
}

func testConfig(t *testing.T) config.Config {
	return config.Config{
		Subdivision: 2,
		DBPath:      "unused.db",
		ExportPath:  filepath.Join(t.TempDir(), "shapes.geojson"),
		Fill:        "none",
		Stroke:      "black",
		ShowGrid:    true,
	}
}

func newTestModel(t *testing.T, st *memStore) Model {
	t.Helper()
	m := New(testConfig(t), st)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press clicks the map cell (col, row); row 0 is the first map row.
func press(col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row + headerHeight, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func rightPress(col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row + headerHeight, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
}

func motion(col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row + headerHeight, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func TestDrawPolygon(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	w, h := m.canvas.Size()
	assert.Equal(t, 79*2, w)
	assert.Equal(t, 21*4, h)

	for _, c := range [][2]int{{0, 0}, {5, 0}, {5, 2}} {
		m = send(t, m, press(c[0], c[1]))
	}
	assert.Equal(t, "polygon: 3 vertices", m.status)
	assert.Equal(t, 3, m.canvas.Len())

	m = send(t, m, press(0, 0))
	require.Len(t, st.saved, 1)
	assert.Equal(t, draw.ShapePolygon, st.saved[0].Type)
	assert.Equal(t, "0,0 10,0 10,8", st.saved[0].Attributes["points"])
	assert.Equal(t, "none", st.saved[0].Attributes["fill"])
	assert.Equal(t, 1, m.canvas.Len(), "segments replaced by one polygon")
	assert.Contains(t, m.status, "saved polygon")
	assert.True(t, strings.HasSuffix(m.status, "(1 shape stored)"), m.status)
	require.Len(t, m.l.Items(), 1)
	assert.Equal(t, "3 vertices, 10x8", m.l.Items()[0].(shapeItem).Description())
}

func TestDrawCircle(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	m = send(t, m, key("c"))
	assert.Equal(t, toolCircle, m.tool)

	m = send(t, m, press(10, 4))
	assert.Equal(t, "circle: center 20,16", m.status)
	m = send(t, m, motion(13, 4))
	assert.True(t, m.hovering)
	m = send(t, m, press(13, 4))

	require.Len(t, st.saved, 1)
	assert.Equal(t, draw.ShapeCircle, st.saved[0].Type)
	assert.Equal(t, "20", st.saved[0].Attributes["cx"])
	assert.Equal(t, "16", st.saved[0].Attributes["cy"])
	assert.Equal(t, "6", st.saved[0].Attributes["r"])

	m = send(t, m, rightPress(10, 4))
	assert.Equal(t, st.saved[0].ID, m.book.selected)
	assert.Contains(t, m.status, "selected circle")

	m = send(t, m, rightPress(60, 18))
	assert.Empty(t, m.book.selected)
}

func TestEscCancelsDraft(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	m = send(t, m, press(0, 0))
	m = send(t, m, press(4, 0))
	assert.Equal(t, 2, m.canvas.Len())

	m = send(t, m, key("esc"))
	assert.Equal(t, 0, m.canvas.Len())
	assert.Equal(t, draw.PolygonIdle, m.polygon.State())
	assert.Empty(t, st.saved)
}

func TestSwitchToolCancelsDraft(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	m = send(t, m, press(0, 0))
	m = send(t, m, press(4, 0))
	m = send(t, m, key("c"))
	assert.Equal(t, 0, m.canvas.Len())
	assert.Equal(t, "tool: circle", m.status)

	// selecting the current tool again keeps the draft
	m = send(t, m, press(3, 3))
	m = send(t, m, key("c"))
	assert.Equal(t, draw.CircleSizing, m.circle.State())
	assert.Empty(t, st.saved)
}

func TestClicksOutsideMapIgnored(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	m = send(t, m, tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, m.canvas.Len())
	assert.False(t, m.hovering)
}

func TestRestoreSavedShapes(t *testing.T) {
	st := &memStore{saved: []draw.Shape{
		{ID: "p1", Type: draw.ShapePolygon, Attributes: draw.Attributes{"points": "0,0 8,0 8,8"}},
		{ID: "c1", Type: draw.ShapeCircle, Attributes: draw.Attributes{"cx": "40", "cy": "40", "r": "4"}},
	}}
	m := newTestModel(t, st)
	assert.Equal(t, 2, m.canvas.Len())
	assert.Len(t, m.book.shapes, 2)
	assert.Equal(t, "restored 2 shapes", m.status)

	m = send(t, m, rightPress(20, 10))
	assert.Equal(t, "c1", m.book.selected)
}

func TestRestoreError(t *testing.T) {
	m := New(testConfig(t), &memStore{listErr: errors.New("boom")})
	assert.Equal(t, "load error: boom", m.status)
}

func TestSaveErrorIsReported(t *testing.T) {
	st := &memStore{saveErr: errors.New("disk full")}
	m := newTestModel(t, st)
	m = send(t, m, key("c"))
	m = send(t, m, press(2, 2))
	m = send(t, m, press(3, 2))
	assert.Equal(t, "save error: disk full", m.status)
	assert.Len(t, m.book.shapes, 1, "shape stays on the canvas")
}

func TestExportAndWKT(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	m = send(t, m, key("c"))
	m = send(t, m, press(2, 2))
	m = send(t, m, press(4, 2))

	m = send(t, m, key("x"))
	assert.Contains(t, m.status, "exported 1 shape")
	data, err := os.ReadFile(m.cfg.ExportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)

	m = send(t, m, key("w"))
	assert.True(t, m.wktMode)
	assert.Equal(t, "POINT(4 8)", m.ta.Value())

	// pointer events are ignored while the pane is open
	m = send(t, m, press(10, 10))
	assert.Equal(t, 1, m.canvas.Len())

	m = send(t, m, key("esc"))
	assert.False(t, m.wktMode)
}

func TestAttributesTable(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	m = send(t, m, key("a"))
	assert.False(t, m.showAttrs)
	assert.Equal(t, "no shapes to tabulate", m.status)

	m = send(t, m, key("c"))
	m = send(t, m, press(2, 2))
	m = send(t, m, press(4, 2))
	m = send(t, m, key("a"))
	assert.True(t, m.showAttrs)
	require.Len(t, m.tbl.Rows(), 1)
	assert.Equal(t, "circle", m.tbl.Rows()[0][2])
	assert.Equal(t, "[0,4 8,12]", m.tbl.Rows()[0][3])

	m = send(t, m, key("esc"))
	assert.False(t, m.showAttrs)
}

func TestSidebarShiftsMap(t *testing.T) {
	st := &memStore{}
	m := newTestModel(t, st)
	m = send(t, m, key("tab"))
	assert.True(t, m.showSidebar)
	ox, _, mw, _ := m.layout()
	assert.Equal(t, sidebarWidth+1, ox)
	w, _ := m.canvas.Size()
	assert.Equal(t, mw*2, w)

	// a click inside the sidebar does not reach the canvas
	m = send(t, m, press(5, 5))
	assert.Equal(t, 0, m.canvas.Len())
	m = send(t, m, press(ox, 0))
	assert.Equal(t, 1, m.canvas.Len())
}

func TestGridToggleAndView(t *testing.T) {
	m := newTestModel(t, &memStore{})
	assert.Contains(t, m.View(), "gridsketch")
	m = send(t, m, key("g"))
	assert.False(t, m.canvas.Grid())
	assert.Equal(t, "grid: false", m.status)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewBeforeResize(t *testing.T) {
	m := New(testConfig(t), nil)
	assert.Equal(t, "", m.View())
}
