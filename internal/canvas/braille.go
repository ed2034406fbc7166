package canvas

// Dot bits of a braille cell, indexed by [column][row] of the 2x4 micro grid.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// dots is a monochrome micro-pixel buffer rendered as braille, 2x4 pixels per
// terminal cell.
type dots struct {
	cols, rows int
	mask       [][]uint8
}

func newDots(cols, rows int) *dots {
	mask := make([][]uint8, rows)
	for i := range mask {
		mask[i] = make([]uint8, cols)
	}
	return &dots{cols: cols, rows: rows, mask: mask}
}

func (d *dots) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= d.cols || cy >= d.rows {
		return
	}
	d.mask[cy][cx] |= brailleBits[x%2][y%4]
}

// line plots a Bresenham segment.
func (d *dots) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// span fills a horizontal run, clipped to the buffer.
func (d *dots) span(y, x0, x1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := max(0, x0); x <= x1 && x < d.cols*2; x++ {
		d.set(x, y)
	}
}

// circle plots a midpoint circle outline.
func (d *dots) circle(cx, cy, r int) {
	if r <= 0 {
		d.set(cx, cy)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			d.set(cx+p[0], cy+p[1])
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func (d *dots) lines() []string {
	out := make([]string, d.rows)
	for y := 0; y < d.rows; y++ {
		row := make([]rune, d.cols)
		for x := 0; x < d.cols; x++ {
			if m := d.mask[y][x]; m == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(m))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
