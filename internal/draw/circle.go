package draw

import "gridsketch/internal/grid"

type CircleState int

const (
	CircleIdle CircleState = iota
	CircleSizing
)

func (s CircleState) String() string {
	if s == CircleSizing {
		return "sizing"
	}
	return "idle"
}

// CircleHandler draws a circle by click (center), move (radius preview) and
// click (commit). A zero radius is accepted.
type CircleHandler struct {
	session *Session
	style   Attributes

	circle Handle
	center grid.Point
}

func NewCircleHandler(s *Session, style Attributes) *CircleHandler {
	return &CircleHandler{session: s, style: style.Clone()}
}

func (h *CircleHandler) SetStyle(style Attributes) { h.style = style.Clone() }

func (h *CircleHandler) State() CircleState {
	if h.circle != 0 {
		return CircleSizing
	}
	return CircleIdle
}

// Center reports the fixed center while sizing.
func (h *CircleHandler) Center() (grid.Point, bool) {
	return h.center, h.circle != 0
}

func (h *CircleHandler) Click(ev PointerEvent) {
	surface := h.session.surface
	if h.circle == 0 {
		h.center = h.session.snap(ev)
		h.circle = surface.Create(KindCircle, h.style.With(Attributes{
			"cx": grid.FormatCoord(h.center.X),
			"cy": grid.FormatCoord(h.center.Y),
			"r":  "0",
		}))
		surface.Add(h.circle)
		return
	}

	r := h.radius(ev)
	id := h.session.newID()
	surface.Update(h.circle, Attributes{"r": grid.FormatCoord(r), "id": id})
	h.session.attachSelect(h.circle, id)
	h.session.RelayFinalizedShape(id, ShapeCircle, h.style.With(Attributes{
		"cx": grid.FormatCoord(h.center.X),
		"cy": grid.FormatCoord(h.center.Y),
		"r":  grid.FormatCoord(r),
	}))
	h.reset()
}

func (h *CircleHandler) Move(ev PointerEvent) {
	if h.circle == 0 {
		return
	}
	h.session.surface.Update(h.circle, Attributes{"r": grid.FormatCoord(h.radius(ev))})
}

func (h *CircleHandler) Cancel() {
	if h.circle == 0 {
		return
	}
	h.session.surface.Remove(h.circle)
	h.reset()
}

// radius is measured to the raw pointer position, not the snapped one.
func (h *CircleHandler) radius(ev PointerEvent) float64 {
	return grid.Distance(h.center, ev.Point())
}

func (h *CircleHandler) reset() {
	h.circle = 0
	h.center = grid.Point{}
}
