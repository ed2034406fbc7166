// Package canvas is an in-memory drawing surface rendered to terminal braille.
// Coordinates are micro pixels: two per column and four per row.
package canvas

import (
	"math"
	"slices"

	"gridsketch/internal/draw"
	"gridsketch/internal/grid"
)

type primitive struct {
	kind  draw.Kind
	attrs draw.Attributes
	added bool
	hook  func()
}

// Canvas implements draw.Surface.
type Canvas struct {
	width, height int
	subdivision   float64
	showGrid      bool

	next      draw.Handle
	prims     map[draw.Handle]*primitive
	order     []draw.Handle
	listeners []draw.PointerListener
}

var _ draw.Surface = (*Canvas)(nil)

func New(width, height int, subdivision float64) *Canvas {
	return &Canvas{
		width:       width,
		height:      height,
		subdivision: subdivision,
		showGrid:    true,
		prims:       make(map[draw.Handle]*primitive),
	}
}

func (c *Canvas) Size() (int, int) { return c.width, c.height }

func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
}

func (c *Canvas) SetGrid(on bool) { c.showGrid = on }
func (c *Canvas) Grid() bool      { return c.showGrid }

func (c *Canvas) Create(kind draw.Kind, attrs draw.Attributes) draw.Handle {
	c.next++
	c.prims[c.next] = &primitive{kind: kind, attrs: attrs.Clone()}
	return c.next
}

func (c *Canvas) Add(h draw.Handle) {
	p, ok := c.prims[h]
	if !ok || p.added {
		return
	}
	p.added = true
	c.order = append(c.order, h)
}

// Remove drops a primitive. Unknown handles are ignored.
func (c *Canvas) Remove(h draw.Handle) {
	if _, ok := c.prims[h]; !ok {
		return
	}
	delete(c.prims, h)
	if i := slices.Index(c.order, h); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
}

func (c *Canvas) Update(h draw.Handle, attrs draw.Attributes) {
	p, ok := c.prims[h]
	if !ok {
		return
	}
	for k, v := range attrs {
		p.attrs[k] = v
	}
}

func (c *Canvas) OnClick(h draw.Handle, fn func()) {
	if p, ok := c.prims[h]; ok {
		p.hook = fn
	}
}

func (c *Canvas) Listen(l draw.PointerListener) {
	c.listeners = append(c.listeners, l)
}

// Click delivers a pointer click to every listener.
func (c *Canvas) Click(ev draw.PointerEvent) {
	for _, l := range c.listeners {
		l.Click(ev)
	}
}

// Move delivers pointer motion to every listener.
func (c *Canvas) Move(ev draw.PointerEvent) {
	for _, l := range c.listeners {
		l.Move(ev)
	}
}

// Select fires the click hook of the topmost hooked primitive under ev.
func (c *Canvas) Select(ev draw.PointerEvent) bool {
	pt := ev.Point()
	for i := len(c.order) - 1; i >= 0; i-- {
		p := c.prims[c.order[i]]
		if p.hook == nil || !p.contains(pt) {
			continue
		}
		p.hook()
		return true
	}
	return false
}

// Len reports how many primitives are on the canvas.
func (c *Canvas) Len() int { return len(c.order) }

// Attributes returns a copy of a primitive's attributes.
func (c *Canvas) Attributes(h draw.Handle) (draw.Attributes, bool) {
	p, ok := c.prims[h]
	if !ok {
		return nil, false
	}
	return p.attrs.Clone(), true
}

// Restore places an already finalized shape on the canvas.
func (c *Canvas) Restore(s draw.Shape, onClick func()) draw.Handle {
	kind := draw.KindPolygon
	if s.Type == draw.ShapeCircle {
		kind = draw.KindCircle
	}
	h := c.Create(kind, s.Attributes.With(draw.Attributes{"id": s.ID}))
	c.Add(h)
	if onClick != nil {
		c.OnClick(h, onClick)
	}
	return h
}

func (p *primitive) contains(pt grid.Point) bool {
	switch p.kind {
	case draw.KindPolygon:
		pts, err := grid.ParsePoints(p.attrs["points"])
		if err != nil {
			return false
		}
		return insidePolygon(pts, pt)
	case draw.KindCircle:
		cx, ok1 := p.attrs.Float("cx")
		cy, ok2 := p.attrs.Float("cy")
		r, ok3 := p.attrs.Float("r")
		if !ok1 || !ok2 || !ok3 {
			return false
		}
		// one micro pixel of slack so tiny circles stay clickable
		return grid.Distance(grid.Pt(cx, cy), pt) <= r+1
	}
	return false
}

// insidePolygon is the even-odd rule; points on a vertex count as inside.
func insidePolygon(pts []grid.Point, pt grid.Point) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if a == pt {
			return true
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				in = !in
			}
		}
	}
	return in
}

func px(v float64) int { return int(math.Round(v)) }
