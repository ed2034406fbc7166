package draw

import (
	"github.com/google/uuid"

	"gridsketch/internal/grid"
)

// Session routes pointer events to the active Handler and relays finalized
// shapes to the Persister.
type Session struct {
	surface     Surface
	persister   Persister
	subdivision float64
	newID       func() string
	onSelect    func(id string)

	active    Handler
	listening bool
}

type Option func(*Session)

// WithIDGenerator overrides uuid-based shape ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// WithSelectHook sets the callback fired when a finalized shape is clicked.
func WithSelectHook(fn func(id string)) Option {
	return func(s *Session) { s.onSelect = fn }
}

// NewSession expects a positive subdivision; validate it before calling.
func NewSession(surface Surface, subdivision float64, p Persister, opts ...Option) *Session {
	s := &Session{
		surface:     surface,
		persister:   p,
		subdivision: subdivision,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ActiveHandler() Handler { return s.active }

// SetActiveHandler cancels the current draft, if any, and installs h.
// The session subscribes to the surface's pointer events on first use.
func (s *Session) SetActiveHandler(h Handler) {
	s.CancelActive()
	s.active = h
	if !s.listening {
		s.surface.Listen(s)
		s.listening = true
	}
}

// CancelActive discards the active handler's draft.
func (s *Session) CancelActive() {
	if s.active != nil {
		s.active.Cancel()
	}
}

func (s *Session) Click(ev PointerEvent) {
	if s.active == nil {
		return
	}
	s.active.Click(ev)
}

func (s *Session) Move(ev PointerEvent) {
	if s.active == nil {
		return
	}
	s.active.Move(ev)
}

// RelayFinalizedShape forwards a completed shape to the persister unchanged.
func (s *Session) RelayFinalizedShape(id string, typ ShapeType, attrs Attributes) {
	if s.persister == nil {
		return
	}
	s.persister.ShapeFinalized(Shape{ID: id, Type: typ, Attributes: attrs})
}

func (s *Session) snap(ev PointerEvent) grid.Point {
	return grid.Snap(ev.Point(), s.subdivision)
}

// attachSelect wires the selection hook onto a finalized primitive.
func (s *Session) attachSelect(h Handle, id string) {
	s.surface.OnClick(h, func() {
		if s.onSelect != nil {
			s.onSelect(id)
		}
	})
}
