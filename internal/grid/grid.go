// Package grid maps raw pointer coordinates onto the snapping lattice.
package grid

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Point struct {
	X float64
	Y float64
}

// VertexKey identifies a grid-aligned point in vertex sets.
type VertexKey struct {
	x, y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Key() VertexKey { return VertexKey{x: p.X, y: p.Y} }

func (p Point) String() string { return FormatCoord(p.X) + "," + FormatCoord(p.Y) }

// Snap rounds each coordinate to the nearest multiple of subdivision.
// Halves round toward +Inf. subdivision must be positive.
func Snap(p Point, subdivision float64) Point {
	return Point{
		X: snapCoord(p.X, subdivision),
		Y: snapCoord(p.Y, subdivision),
	}
}

func snapCoord(v, s float64) float64 {
	n := math.Floor(v/s + 0.5)
	if n == 0 {
		// avoid -0 leaking into keys and formatted output
		return 0
	}
	return n * s
}

// Distance is the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPoints joins points as "x,y x,y ...".
func FormatPoints(pts []Point) string {
	parts := make([]string, 0, len(pts))
	for _, p := range pts {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " ")
}

// ParsePoints reads the FormatPoints representation back.
func ParsePoints(s string) ([]Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New("points: empty")
	}
	out := make([]Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, errors.New("points: malformed pair " + strconv.Quote(f))
		}
		x, err1 := strconv.ParseFloat(xs, 64)
		y, err2 := strconv.ParseFloat(ys, 64)
		if err1 != nil || err2 != nil {
			return nil, errors.New("points: invalid number in " + strconv.Quote(f))
		}
		out = append(out, Point{X: x, Y: y})
	}
	return out, nil
}
