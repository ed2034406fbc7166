// Package draw holds the interactive shape-drawing core: a Session that owns
// one active Handler and relays finished shapes to a Persister, plus the
// polygon and circle handlers.
//
// Everything here runs on the host's event goroutine. Handlers assume events
// arrive one at a time and never block.
package draw

import (
	"strconv"

	"gridsketch/internal/grid"
)

type ShapeType string

const (
	ShapePolygon ShapeType = "polygon"
	ShapeCircle  ShapeType = "circle"
)

// Attributes are string-valued primitive attributes, SVG style.
type Attributes map[string]string

func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// With returns a copy of a overlaid with b.
func (a Attributes) With(b Attributes) Attributes {
	out := a.Clone()
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Float parses the attribute under key as a number.
func (a Attributes) Float(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Shape is a finalized, immutable shape record.
type Shape struct {
	ID         string
	Type       ShapeType
	Attributes Attributes
}

// PointerEvent carries surface-relative pointer coordinates.
type PointerEvent struct {
	OffsetX float64
	OffsetY float64
}

func (e PointerEvent) Point() grid.Point { return grid.Pt(e.OffsetX, e.OffsetY) }

// Persister receives every finalized shape exactly once.
type Persister interface {
	ShapeFinalized(s Shape)
}

type PersisterFunc func(s Shape)

func (f PersisterFunc) ShapeFinalized(s Shape) { f(s) }

// Handler is a per-shape interaction state machine.
type Handler interface {
	Click(ev PointerEvent)
	Move(ev PointerEvent)
	Cancel()
}
