package canvas

import (
	"sort"

	"gridsketch/internal/draw"
	"gridsketch/internal/grid"
)

// Render draws the canvas into cols x rows terminal cells.
func (c *Canvas) Render(cols, rows int) []string {
	d := newDots(cols, rows)
	// a grid finer than one micro pixel would paint every dot
	if c.showGrid && c.subdivision >= 1 {
		c.renderGrid(d)
	}
	for _, h := range c.order {
		p := c.prims[h]
		switch p.kind {
		case draw.KindLine:
			renderLine(d, p.attrs)
		case draw.KindPolygon:
			renderPolygon(d, p.attrs)
		case draw.KindCircle:
			renderCircle(d, p.attrs)
		}
	}
	return d.lines()
}

func (c *Canvas) renderGrid(d *dots) {
	for y := 0.0; y <= float64(c.height); y += c.subdivision {
		for x := 0.0; x <= float64(c.width); x += c.subdivision {
			d.set(px(x), px(y))
		}
	}
}

func renderLine(d *dots, a draw.Attributes) {
	x1, _ := a.Float("x1")
	y1, _ := a.Float("y1")
	x2, _ := a.Float("x2")
	y2, _ := a.Float("y2")
	d.line(px(x1), px(y1), px(x2), px(y2))
}

func filled(a draw.Attributes) bool {
	f := a["fill"]
	return f != "" && f != "none"
}

func renderPolygon(d *dots, a draw.Attributes) {
	pts, err := grid.ParsePoints(a["points"])
	if err != nil {
		return
	}
	ring := make([][2]int, len(pts))
	for i, p := range pts {
		ring[i] = [2]int{px(p.X), px(p.Y)}
	}
	if filled(a) && len(ring) >= 3 {
		scanFill(d, ring)
	}
	for i := range ring {
		p, q := ring[i], ring[(i+1)%len(ring)]
		d.line(p[0], p[1], q[0], q[1])
	}
}

// scanFill fills a ring with the even-odd rule, one micro row at a time.
func scanFill(d *dots, ring [][2]int) {
	for y := 0; y < d.rows*4; y++ {
		var xs []int
		for i := range ring {
			a, b := ring[i], ring[(i+1)%len(ring)]
			if a[1] == b[1] {
				continue
			}
			if (y >= a[1] && y < b[1]) || (y >= b[1] && y < a[1]) {
				t := float64(y-a[1]) / float64(b[1]-a[1])
				xs = append(xs, int(float64(a[0])+t*float64(b[0]-a[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			d.span(y, xs[i], xs[i+1])
		}
	}
}

func renderCircle(d *dots, a draw.Attributes) {
	cx, _ := a.Float("cx")
	cy, _ := a.Float("cy")
	r, _ := a.Float("r")
	x, y, ri := px(cx), px(cy), px(r)
	if filled(a) {
		for dy := -ri; dy <= ri; dy++ {
			w := 0
			for (w+1)*(w+1)+dy*dy <= ri*ri {
				w++
			}
			d.span(y+dy, x-w, x+w)
		}
	}
	d.circle(x, y, ri)
}
