package draw

import "gridsketch/internal/grid"

type PolygonState int

const (
	PolygonIdle PolygonState = iota
	PolygonDrawing
)

func (s PolygonState) String() string {
	if s == PolygonDrawing {
		return "drawing"
	}
	return "idle"
}

var segmentStyle = Attributes{"stroke": "black"}

// PolygonHandler traces a polygon as chained segments. The polygon closes
// when a committed segment ends on any previously visited vertex.
type PolygonHandler struct {
	session *Session
	style   Attributes

	active   Handle
	lines    []Handle
	vertices []grid.Point
	visited  map[grid.VertexKey]struct{}
}

func NewPolygonHandler(s *Session, style Attributes) *PolygonHandler {
	return &PolygonHandler{
		session: s,
		style:   style.Clone(),
		visited: make(map[grid.VertexKey]struct{}),
	}
}

// SetStyle replaces the attributes applied to finalized polygons.
func (h *PolygonHandler) SetStyle(style Attributes) { h.style = style.Clone() }

func (h *PolygonHandler) State() PolygonState {
	if h.active != 0 {
		return PolygonDrawing
	}
	return PolygonIdle
}

// Vertices returns the committed vertices of the draft in visiting order.
func (h *PolygonHandler) Vertices() []grid.Point {
	return append([]grid.Point(nil), h.vertices...)
}

func (h *PolygonHandler) Click(ev PointerEvent) {
	surface := h.session.surface
	p := h.session.snap(ev)

	if h.active != 0 {
		surface.Update(h.active, Attributes{
			"x2": grid.FormatCoord(p.X),
			"y2": grid.FormatCoord(p.Y),
		})
		h.lines = append(h.lines, h.active)
		h.active = 0
		if _, seen := h.visited[p.Key()]; seen {
			h.close()
			return
		}
	}

	h.visit(p)
	h.active = surface.Create(KindLine, segmentStyle.With(Attributes{
		"x1": grid.FormatCoord(p.X),
		"y1": grid.FormatCoord(p.Y),
		"x2": grid.FormatCoord(p.X),
		"y2": grid.FormatCoord(p.Y),
	}))
	surface.Add(h.active)
}

// Move drags the free end of the in-progress segment; it is snapped only
// when the next click commits it.
func (h *PolygonHandler) Move(ev PointerEvent) {
	if h.active == 0 {
		return
	}
	h.session.surface.Update(h.active, Attributes{
		"x2": grid.FormatCoord(ev.OffsetX),
		"y2": grid.FormatCoord(ev.OffsetY),
	})
}

func (h *PolygonHandler) Cancel() {
	h.removeSegments()
	h.reset()
}

func (h *PolygonHandler) visit(p grid.Point) {
	if _, seen := h.visited[p.Key()]; seen {
		return
	}
	h.visited[p.Key()] = struct{}{}
	h.vertices = append(h.vertices, p)
}

func (h *PolygonHandler) close() {
	h.removeSegments()

	surface := h.session.surface
	id := h.session.newID()
	attrs := h.style.With(Attributes{"points": grid.FormatPoints(h.vertices)})

	poly := surface.Create(KindPolygon, attrs.With(Attributes{"id": id}))
	surface.Add(poly)
	h.session.attachSelect(poly, id)
	h.session.RelayFinalizedShape(id, ShapePolygon, attrs)

	h.reset()
}

func (h *PolygonHandler) removeSegments() {
	surface := h.session.surface
	if h.active != 0 {
		surface.Remove(h.active)
	}
	for _, l := range h.lines {
		surface.Remove(l)
	}
}

func (h *PolygonHandler) reset() {
	h.active = 0
	h.lines = nil
	h.vertices = nil
	h.visited = make(map[grid.VertexKey]struct{})
}
