package tui

import (
	"context"
	"log"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"gridsketch/internal/canvas"
	"gridsketch/internal/config"
	"gridsketch/internal/draw"
	"gridsketch/internal/grid"
)

// Store is where finalized shapes end up.
type Store interface {
	Save(ctx context.Context, s draw.Shape) error
	List(ctx context.Context) ([]draw.Shape, error)
	Count(ctx context.Context) (int, error)
}

type tool int

const (
	toolPolygon tool = iota
	toolCircle
)

func (t tool) String() string {
	if t == toolCircle {
		return "circle"
	}
	return "polygon"
}

type Model struct {
	width  int
	height int

	cfg config.Config

	canvas  *canvas.Canvas
	session *draw.Session
	polygon *draw.PolygonHandler
	circle  *draw.CircleHandler
	book    *shapeBook
	tool    tool

	showSidebar bool
	helpVisible bool

	status string

	// shape list
	l list.Model

	// attributes table
	showAttrs bool
	tbl       table.Model

	// WKT pane
	wktMode bool
	ta      textarea.Model

	// pointer, in snapped micro pixels
	hovering bool
	pointer  grid.Point
}

// shapeBook is the persistence relay target: it keeps the session's shapes
// and forwards each one to the store.
type shapeBook struct {
	store    Store
	shapes   []draw.Shape
	selected string
	lastErr  error
}

func (b *shapeBook) ShapeFinalized(s draw.Shape) {
	b.shapes = append(b.shapes, s)
	b.lastErr = nil
	if b.store == nil {
		return
	}
	if err := b.store.Save(context.Background(), s); err != nil {
		log.Printf("save %s %s: %v", s.Type, s.ID, err)
		b.lastErr = err
		return
	}
	log.Printf("saved %s %s", s.Type, s.ID)
}

func (b *shapeBook) selectShape(id string) { b.selected = id }

func (b *shapeBook) find(id string) (draw.Shape, bool) {
	for _, s := range b.shapes {
		if s.ID == id {
			return s, true
		}
	}
	return draw.Shape{}, false
}

func New(cfg config.Config, st Store) Model {
	m := Model{
		cfg:         cfg,
		helpVisible: true,
		status:      "gridsketch ready",
		book:        &shapeBook{store: st},
	}
	m.canvas = canvas.New(0, 0, cfg.Subdivision)
	m.canvas.SetGrid(cfg.ShowGrid)
	m.session = draw.NewSession(m.canvas, cfg.Subdivision, m.book, draw.WithSelectHook(m.book.selectShape))

	style := draw.Attributes{"fill": cfg.Fill, "stroke": cfg.Stroke}
	m.polygon = draw.NewPolygonHandler(m.session, style)
	m.circle = draw.NewCircleHandler(m.session, style)
	m.session.SetActiveHandler(m.polygon)
	m.tool = toolPolygon

	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Shapes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "No shapes yet."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup (columns are fixed, rows follow the shapes)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.restore()
	return m
}

// restore puts previously saved shapes back on the canvas.
func (m *Model) restore() {
	if m.book.store == nil {
		return
	}
	shapes, err := m.book.store.List(context.Background())
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	book := m.book
	for _, s := range shapes {
		id := s.ID
		m.canvas.Restore(s, func() { book.selectShape(id) })
	}
	m.book.shapes = shapes
	m.refreshList()
	if len(shapes) > 0 {
		m.status = "restored " + plural(len(shapes), "shape")
	}
}

func (m Model) Init() tea.Cmd { return nil }
